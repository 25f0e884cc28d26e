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

// Package transpositiontable implements a small fixed-capacity
// transposition table keyed by zobrist hashes, used by perft and by
// embedding searches. The table is open addressed into a power of two
// sized array with depth preferred replacement. It is not thread safe
// and needs to be synchronized externally if used from multiple
// goroutines.
package transpositiontable

import (
	"math/bits"
	"unsafe"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Zirconium419122/chessframe/internal/logging"
)

var out = message.NewPrinter(language.English)

// MaxSizeInMB maximal memory usage of a table
const MaxSizeInMB = 65_536

// Entry is a single transposition table slot
type Entry[V any] struct {
	Key   uint64
	Value V
	Depth uint8
}

// Table is a transposition table storing values of type V.
// Create with NewTable or NewTableSizeMB.
type Table[V any] struct {
	data            []Entry[V]
	hashKeyMask     uint64
	maxEntries      uint64
	numberOfEntries uint64
	Stats           Stats
}

// Stats holds statistical data on table usage
type Stats struct {
	Puts       uint64
	Collisions uint64
	Updates    uint64
	Probes     uint64
	Hits       uint64
	Misses     uint64
}

// NewTable creates a table with capacity for at least the requested
// number of entries, rounded up to the next power of two
func NewTable[V any](requestedEntries int) *Table[V] {
	if requestedEntries < 1 {
		requestedEntries = 1
	}
	size := nextPowerOfTwo(uint64(requestedEntries))
	tt := &Table[V]{
		data:        make([]Entry[V], size),
		hashKeyMask: size - 1,
		maxEntries:  size,
	}
	return tt
}

// NewTableSizeMB creates a table sized to the number of entries
// fitting into the given amount of memory
func NewTableSizeMB[V any](sizeInMB int) *Table[V] {
	if sizeInMB > MaxSizeInMB {
		logging.GetLog().Errorf("Requested TT size of %d MB reduced to max of %d MB", sizeInMB, MaxSizeInMB)
		sizeInMB = MaxSizeInMB
	}
	entrySize := int(unsafe.Sizeof(Entry[V]{}))
	numEntries := sizeInMB * 1024 * 1024 / entrySize
	// round down to a power of two so the table fits the requested size
	if numEntries > 1 {
		numEntries = 1 << (bits.Len64(uint64(numEntries)) - 1)
	}
	return NewTable[V](numEntries)
}

// Store writes an entry for the key. Replacement rule: write if the
// slot is empty, if the slot holds the same key and the new depth is
// greater or equal, or unconditionally on a key collision.
func (tt *Table[V]) Store(key uint64, value V, depth uint8) {
	entry := &tt.data[tt.hash(key)]
	tt.Stats.Puts++

	switch {
	case entry.Key == 0:
		tt.numberOfEntries++
	case entry.Key == key:
		tt.Stats.Updates++
		if depth < entry.Depth {
			return
		}
	default:
		tt.Stats.Collisions++
	}

	entry.Key = key
	entry.Value = value
	entry.Depth = depth
}

// Get returns the entry stored for the key. The stored key is checked
// against the probe key - a slot written by a different position
// reports a miss.
func (tt *Table[V]) Get(key uint64) (Entry[V], bool) {
	tt.Stats.Probes++
	entry := tt.data[tt.hash(key)]
	if entry.Key == key {
		tt.Stats.Hits++
		return entry, true
	}
	tt.Stats.Misses++
	return Entry[V]{}, false
}

// Clear empties all slots of the table
func (tt *Table[V]) Clear() {
	tt.data = make([]Entry[V], tt.maxEntries)
	tt.numberOfEntries = 0
	tt.Stats = Stats{}
}

// Len returns the number of non empty entries
func (tt *Table[V]) Len() uint64 {
	return tt.numberOfEntries
}

// Capacity returns the number of slots of the table
func (tt *Table[V]) Capacity() uint64 {
	return tt.maxEntries
}

// Hashfull returns how full the table is in permill
func (tt *Table[V]) Hashfull() int {
	if tt.maxEntries == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / tt.maxEntries)
}

// String returns a string representation of the table state
func (tt *Table[V]) String() string {
	return out.Sprintf("TT: capacity %d entries of %d bytes, entries %d (%d%%) puts %d "+
		"updates %d collisions %d probes %d hits %d misses %d",
		tt.maxEntries, unsafe.Sizeof(Entry[V]{}), tt.numberOfEntries, tt.Hashfull()/10,
		tt.Stats.Puts, tt.Stats.Updates, tt.Stats.Collisions, tt.Stats.Probes,
		tt.Stats.Hits, tt.Stats.Misses)
}

// hash maps a zobrist key to a slot index
func (tt *Table[V]) hash(key uint64) uint64 {
	return key & tt.hashKeyMask
}

func nextPowerOfTwo(n uint64) uint64 {
	if n&(n-1) == 0 {
		return n
	}
	return 1 << bits.Len64(n)
}
