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

package tablegen

import "math/bits"

// ChaCha8 is the pseudo random number generator of the table
// generation pipeline - an 8 round ChaCha stream keyed from a 64 bit
// seed. The zobrist keys and magic multipliers shipped in pkg/types
// were drawn from this generator, so its output stream must stay
// stable: the seed is expanded to the 256 bit key with the PCG32
// output function and the stream is consumed as little endian 64 bit
// pairs of consecutive 32 bit words.
type ChaCha8 struct {
	key     [8]uint32
	counter uint64
	buf     [16]uint32
	idx     int
}

// NewChaCha8 creates a generator from a 64 bit seed
func NewChaCha8(seed uint64) *ChaCha8 {
	const mul = 6364136223846793005
	const inc = 11634580027462260723

	r := &ChaCha8{idx: 16}
	state := seed
	for i := 0; i < 8; i++ {
		state = state*mul + inc
		xorshifted := uint32(((state >> 18) ^ state) >> 27)
		rot := uint(state >> 59)
		r.key[i] = bits.RotateLeft32(xorshifted, -int(rot))
	}
	return r
}

func quarterRound(s *[16]uint32, a, b, c, d int) {
	s[a] += s[b]
	s[d] = bits.RotateLeft32(s[d]^s[a], 16)
	s[c] += s[d]
	s[b] = bits.RotateLeft32(s[b]^s[c], 12)
	s[a] += s[b]
	s[d] = bits.RotateLeft32(s[d]^s[a], 8)
	s[c] += s[d]
	s[b] = bits.RotateLeft32(s[b]^s[c], 7)
}

func (r *ChaCha8) block() {
	state := [16]uint32{
		0x61707865, 0x3320646E, 0x79622D32, 0x6B206574,
		r.key[0], r.key[1], r.key[2], r.key[3],
		r.key[4], r.key[5], r.key[6], r.key[7],
		uint32(r.counter), uint32(r.counter >> 32), 0, 0,
	}
	working := state
	for i := 0; i < 4; i++ {
		quarterRound(&working, 0, 4, 8, 12)
		quarterRound(&working, 1, 5, 9, 13)
		quarterRound(&working, 2, 6, 10, 14)
		quarterRound(&working, 3, 7, 11, 15)
		quarterRound(&working, 0, 5, 10, 15)
		quarterRound(&working, 1, 6, 11, 12)
		quarterRound(&working, 2, 7, 8, 13)
		quarterRound(&working, 3, 4, 9, 14)
	}
	for i := range r.buf {
		r.buf[i] = working[i] + state[i]
	}
	r.counter++
	r.idx = 0
}

// NextUint32 returns the next 32 bit of the stream
func (r *ChaCha8) NextUint32() uint32 {
	if r.idx >= 16 {
		r.block()
	}
	v := r.buf[r.idx]
	r.idx++
	return v
}

// NextUint64 returns the next 64 bit of the stream, low word first
func (r *ChaCha8) NextUint64() uint64 {
	lo := uint64(r.NextUint32())
	hi := uint64(r.NextUint32())
	return lo | hi<<32
}

// SparseUint64 returns the AND of three samples. Candidates with few
// bits set empirically find collision free magics much faster.
func (r *ChaCha8) SparseUint64() uint64 {
	return r.NextUint64() & r.NextUint64() & r.NextUint64()
}
