// Copyright Hoodiv Software Inc.
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
package bitvec

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Vector is a fixed-length sequence of bits, indexable from 0 up to (but not
// including) its length.  Unlike the underlying bitset, a vector retains its
// length regardless of which bits are set, so "1100" and "11" are distinct
// vectors.
type Vector struct {
	bits   *bitset.BitSet
	length uint
}

// New constructs a vector of a given length with all bits clear.
func New(length uint) Vector {
	return Vector{bitset.New(length), length}
}

// Ones constructs a vector of a given length with all bits set.
func Ones(length uint) Vector {
	return New(length).Not()
}

// Parse converts a string of '0' and '1' characters into a vector whose
// length is that of the string, where bit i is set iff character i is '1'.
// Any other character yields an InvalidCharacterError.
func Parse(text string) (Vector, error) {
	vector := New(uint(len(text)))
	//
	for i, c := range text {
		switch c {
		case '1':
			vector.bits.Set(uint(i))
		case '0':
			// clear already
		default:
			return Vector{}, &InvalidCharacterError{text, c}
		}
	}
	//
	return vector, nil
}

// Len returns the length of this vector.
func (p Vector) Len() uint {
	return p.length
}

// Get the value of the iᵗʰ bit.
func (p Vector) Get(i uint) bool {
	return p.bits.Test(i)
}

// Set the iᵗʰ bit to v.
func (p Vector) Set(i uint, v bool) {
	p.bits.SetTo(i, v)
}

// Not flips every bit of this vector in place, returning the mutated
// receiver.  The receiver's storage is reused as the result.
func (p Vector) Not() Vector {
	p.bits.FlipRange(0, p.length)
	return p
}

// And computes the bitwise intersection of this vector with another of the
// same length, in place.  The receiver's storage is reused as the result.
func (p Vector) And(other Vector) Vector {
	p.bits.InPlaceIntersection(other.bits)
	return p
}

// Or computes the bitwise union of this vector with another of the same
// length, in place.  The receiver's storage is reused as the result.
func (p Vector) Or(other Vector) Vector {
	p.bits.InPlaceUnion(other.bits)
	return p
}

// Clone creates a true copy of this vector which ensures no aliasing between
// this vector and the result.
func (p Vector) Clone() Vector {
	return Vector{p.bits.Clone(), p.length}
}

// Equals checks whether two vectors have the same length and the same bits.
func (p Vector) Equals(other Vector) bool {
	return p.length == other.length && p.bits.Equal(other.bits)
}

// String renders this vector as a string of '0' and '1' characters, one per
// bit of its length, bit 0 first.  Parse inverts it.
func (p Vector) String() string {
	var builder strings.Builder
	//
	for i := uint(0); i < p.length; i++ {
		if p.bits.Test(i) {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}
	//
	return builder.String()
}

// LengthMismatchError indicates a literal whose length differs from the
// length required by the enclosing evaluation context.
type LengthMismatchError struct {
	// The offending literal text.
	Literal string
	// The length the context requires.
	Expected uint
}

func (p *LengthMismatchError) Error() string {
	return fmt.Sprintf("%s must have a length of %d", p.Literal, p.Expected)
}

// InvalidCharacterError indicates a literal containing a character other than
// '0' or '1'.
type InvalidCharacterError struct {
	// The offending literal text.
	Literal string
	// The first character which is neither '0' nor '1'.
	Char rune
}

func (p *InvalidCharacterError) Error() string {
	return fmt.Sprintf("%s contains the wrong character '%c'", p.Literal, p.Char)
}
