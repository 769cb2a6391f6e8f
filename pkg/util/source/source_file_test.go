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
package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_Lines(t *testing.T) {
	file := NewSourceFile("prog", []byte("cpy 1 a\n\ninc a\n"))
	lines := file.Lines()
	//
	require.Len(t, lines, 3)
	assert.Equal(t, "cpy 1 a", lines[0].String())
	assert.Equal(t, "", lines[1].String())
	assert.Equal(t, "inc a", lines[2].String())
	assert.Equal(t, 3, lines[2].Number())
	assert.Equal(t, 9, lines[2].Start())
}

func TestFile_LinesUnterminated(t *testing.T) {
	file := NewSourceFileFromLines("prog", "inc a", "dec b")
	lines := file.Lines()
	//
	require.Len(t, lines, 2)
	assert.Equal(t, "dec b", lines[1].String())
	assert.Equal(t, 5, lines[1].Length())
}

func TestFile_SyntaxError(t *testing.T) {
	file := NewSourceFileFromLines("prog", "inc a", "foo b")
	span := NewSpan(6, 9)
	err := file.SyntaxError(span, "unknown instruction")
	//
	line := err.FirstEnclosingLine()
	assert.Equal(t, 2, line.Number())
	assert.Equal(t, "foo", file.Text(span))
	assert.Equal(t, "prog:2: unknown instruction", err.Error())
}

func TestSpan_Shift(t *testing.T) {
	span := NewSpan(1, 3).Shift(10)
	//
	assert.Equal(t, 11, span.Start())
	assert.Equal(t, 13, span.End())
	assert.Panics(t, func() { NewSpan(3, 1) })
}

func TestFile_ReadFiles(t *testing.T) {
	var (
		dir   = t.TempDir()
		first = filepath.Join(dir, "first.asm")
		empty = filepath.Join(dir, "empty.asm")
	)
	//
	require.NoError(t, os.WriteFile(first, []byte("cpy 1 a\ninc a\n"), 0o600))
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	//
	files, err := ReadFiles(first, empty)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, first, files[0].Filename())
	assert.Equal(t, "inc a", files[0].Lines()[1].String())
	assert.Empty(t, files[1].Contents())
	//
	_, err = ReadFiles(first, filepath.Join(dir, "missing.asm"))
	assert.Error(t, err)
}
