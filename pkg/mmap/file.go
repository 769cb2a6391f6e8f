// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package mmap

import (
	"errors"
	"io"
	"runtime/debug"
	"syscall"

	pkgErrors "github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// File represents a read-only memory-mapped file, such as a program or circuit
// being loaded.
type File struct {
	path string
	data []byte
}

// Open maps the contents of a given file into memory.  An empty file is not
// mapped, but is otherwise treated as any other.
func Open(path string) (*File, error) {
	fd, err := unix.Open(path, unix.O_RDONLY, 0)
	if err != nil {
		return nil, pkgErrors.Wrapf(err, "failed to open file %#v", path)
	}
	//
	defer unix.Close(fd)
	//
	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		return nil, pkgErrors.Wrapf(err, "failed to obtain size of file %#v", path)
	} else if stat.Size == 0 {
		return &File{path, nil}, nil
	}
	//
	data, err := unix.Mmap(fd, 0, int(stat.Size), syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		return nil, pkgErrors.Wrapf(err, "failed to memory map file %#v", path)
	}
	//
	return &File{path, data}, nil
}

// ReadFile reads the entire contents of a given file through a memory map.
func ReadFile(path string) ([]byte, error) {
	file, err := Open(path)
	if err != nil {
		return nil, err
	}
	//
	bytes := make([]byte, file.Size())
	//
	if _, err := file.ReadAt(bytes, 0); err != nil && !errors.Is(err, io.EOF) {
		_ = file.Close()
		return nil, pkgErrors.Wrapf(err, "failed to read file %#v", path)
	}
	//
	return bytes, file.Close()
}

// Path returns the path of the mapped file.
func (p *File) Path() string {
	return p.path
}

// Size returns the number of bytes mapped.
func (p *File) Size() int {
	return len(p.data)
}

// ReadAt reads through the memory map at a given offset.
func (p *File) ReadAt(bytes []byte, off int64) (n int, err error) {
	if off < 0 {
		return 0, syscall.EINVAL
	} else if off > int64(len(p.data)) {
		return 0, io.EOF
	}
	// Install a page fault handler, so that I/O errors against the
	// memory map (e.g., due to the file being truncated) don't cause us to
	// crash.
	old := debug.SetPanicOnFault(true)
	defer func() {
		debug.SetPanicOnFault(old)

		if recover() != nil {
			err = errors.New("page fault occurred while reading from memory map")
		}
	}()
	//
	n = copy(bytes, p.data[off:])
	if n < len(bytes) {
		err = io.EOF
	}
	//
	return
}

// Close unmaps this file.  The file cannot be read afterwards.
func (p *File) Close() error {
	if p.data == nil {
		return nil
	}
	//
	data := p.data
	p.data = nil
	//
	return pkgErrors.Wrapf(unix.Munmap(data), "failed to unmap file %#v", p.path)
}
