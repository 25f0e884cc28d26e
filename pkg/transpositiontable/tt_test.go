/*
 * chessframe - a chess position and move generation library in GO
 *
 * MIT License
 *
 * Copyright (c) 2024-2025 Zirconium419122
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableSizing(t *testing.T) {
	assert := assert.New(t)

	// capacity is rounded up to the next power of two
	assert.Equal(uint64(1024), NewTable[uint64](1000).Capacity())
	assert.Equal(uint64(1024), NewTable[uint64](1024).Capacity())
	assert.Equal(uint64(2048), NewTable[uint64](1025).Capacity())
	assert.Equal(uint64(1), NewTable[uint64](0).Capacity())
}

func TestNewTableSizeMB(t *testing.T) {
	tt := NewTableSizeMB[uint64](1)
	// power of two and within the requested size
	capacity := tt.Capacity()
	assert.Zero(t, capacity&(capacity-1))
	assert.LessOrEqual(t, capacity*24, uint64(2*1024*1024))
}

func TestStoreAndGet(t *testing.T) {
	assert := assert.New(t)
	tt := NewTable[uint64](16)

	tt.Store(0x1234, 42, 3)

	entry, ok := tt.Get(0x1234)
	require.True(t, ok)
	assert.Equal(uint64(0x1234), entry.Key)
	assert.Equal(uint64(42), entry.Value)
	assert.Equal(uint8(3), entry.Depth)

	// a probe with a different key mapping to the same slot misses
	_, ok = tt.Get(0x1234 + 16)
	assert.False(ok)

	assert.Equal(uint64(1), tt.Len())
}

func TestReplacementSameKey(t *testing.T) {
	assert := assert.New(t)
	tt := NewTable[uint64](16)

	tt.Store(7, 1, 5)

	// shallower entries do not replace deeper ones
	tt.Store(7, 2, 3)
	entry, _ := tt.Get(7)
	assert.Equal(uint64(1), entry.Value)

	// equal depth overwrites
	tt.Store(7, 3, 5)
	entry, _ = tt.Get(7)
	assert.Equal(uint64(3), entry.Value)

	// deeper overwrites
	tt.Store(7, 4, 9)
	entry, _ = tt.Get(7)
	assert.Equal(uint64(4), entry.Value)
	assert.Equal(uint8(9), entry.Depth)
}

func TestReplacementCollision(t *testing.T) {
	tt := NewTable[uint64](16)

	tt.Store(5, 1, 9)
	// different key, same slot - always replaced regardless of depth
	tt.Store(5+16, 2, 1)

	_, ok := tt.Get(5)
	assert.False(t, ok)
	entry, ok := tt.Get(5 + 16)
	require.True(t, ok)
	assert.Equal(t, uint64(2), entry.Value)
	assert.Equal(t, uint64(1), tt.Stats.Collisions)
}

func TestClear(t *testing.T) {
	tt := NewTable[uint64](16)
	tt.Store(1, 1, 1)
	tt.Store(2, 2, 2)
	require.Equal(t, uint64(2), tt.Len())

	tt.Clear()

	assert.Equal(t, uint64(0), tt.Len())
	_, ok := tt.Get(1)
	assert.False(t, ok)
}

func TestHashfull(t *testing.T) {
	tt := NewTable[uint64](4)
	assert.Equal(t, 0, tt.Hashfull())
	tt.Store(1, 1, 1)
	tt.Store(2, 1, 1)
	assert.Equal(t, 500, tt.Hashfull())
}

func TestString(t *testing.T) {
	tt := NewTable[uint64](16)
	tt.Store(1, 1, 1)
	assert.Contains(t, tt.String(), "entries")
}
