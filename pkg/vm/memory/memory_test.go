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
package memory

import (
	"testing"

	"github.com/consensys/go-isavm/pkg/vm/word"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArray_LettersDisjoint(t *testing.T) {
	mem := NewArray[word.Int]("registers", LetterDecoder{})
	//
	mem.Set("a", 1)
	mem.Set("A", 2)
	mem.Set("0", 3)
	//
	assert.Equal(t, word.Int(1), mem.Get("a"))
	assert.Equal(t, word.Int(2), mem.Get("A"))
	assert.Equal(t, word.Int(3), mem.Get("0"))
	// Everything else remains zero
	var nonzero int
	//
	for _, w := range mem.Contents() {
		if !w.IsZero() {
			nonzero++
		}
	}
	//
	assert.Equal(t, 3, nonzero)
}

func TestLetterDecoder_Ranges(t *testing.T) {
	var (
		decoder = LetterDecoder{}
		seen    = make(map[uint]string)
	)
	//
	for _, r := range []string{"abcdefghijklmnopqrstuvwxyz", "ABCDEFGHIJKLMNOPQRSTUVWXYZ", "0123456789"} {
		for _, c := range r {
			address, err := decoder.Decode(string(c))
			require.NoError(t, err)
			assert.Less(t, address, decoder.Size())
			//
			if other, ok := seen[address]; ok {
				t.Errorf("registers %s and %c alias at address %d", other, c, address)
			}
			//
			seen[address] = string(c)
		}
	}
	//
	assert.Len(t, seen, int(decoder.Size()))
	//
	for _, key := range []string{"", "ab", "-", "_"} {
		_, err := decoder.Decode(key)
		assert.Error(t, err, key)
	}
}

func TestNameDecoder(t *testing.T) {
	var decoder = NameDecoder{}
	//
	acc, err := decoder.Decode("acc")
	require.NoError(t, err)
	a, err := decoder.Decode("a")
	require.NoError(t, err)
	b, err := decoder.Decode("bx")
	require.NoError(t, err)
	//
	assert.Equal(t, a, acc)
	assert.NotEqual(t, a, b)
	//
	_, err = decoder.Decode("")
	assert.Error(t, err)
}

func TestIndexDecoder(t *testing.T) {
	mem := NewArray[word.Big]("ram", NewIndexDecoder(8))
	//
	mem.Set("7", word.FromInt64[word.Big](42))
	assert.Equal(t, "42", mem.Get("7").String())
	assert.True(t, mem.Get("3").IsZero())
	//
	_, err := mem.Address("8")
	assert.Error(t, err)
	_, err = mem.Address("x")
	assert.Error(t, err)
}

func TestArray_Init(t *testing.T) {
	mem := NewArray("ram", NewIndexDecoder(4), word.Int(5), word.Int(6))
	//
	assert.Equal(t, []word.Int{5, 6, 0, 0}, mem.Contents())
	//
	mem.Reset()
	assert.Equal(t, []word.Int{0, 0, 0, 0}, mem.Contents())
	//
	assert.Panics(t, func() { NewArray("ram", NewIndexDecoder(1), word.Int(1), word.Int(2)) })
}

func TestArray_OutOfBounds(t *testing.T) {
	mem := NewArray[word.Int]("ram", NewIndexDecoder(2))
	//
	assert.Panics(t, func() { mem.Read(2) })
	assert.Panics(t, func() { mem.Write(5, 1) })
	assert.Panics(t, func() { mem.Get("?") })
}
