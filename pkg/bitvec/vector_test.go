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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"0",
		"1",
		"01",
		"10",
		"1100",
		"0000",
		"1111",
		// Trailing zeros must survive the round trip.
		"1000",
		"0010",
		"101010101010101010101010101010101010101010101010101010101010101010",
	}
	//
	for _, input := range inputs {
		vector, err := Parse(input)
		require.NoError(t, err)
		assert.Equal(t, input, vector.String())
		assert.Equal(t, uint(len(input)), vector.Len())
	}
}

func TestVector_ParseInvalid(t *testing.T) {
	_, err := Parse("0120")
	//
	require.Error(t, err)
	//
	invalid, ok := err.(*InvalidCharacterError)
	require.True(t, ok)
	assert.Equal(t, "0120", invalid.Literal)
	assert.Equal(t, '2', invalid.Char)
}

func TestVector_GetSet(t *testing.T) {
	vector := New(4)
	//
	assert.False(t, vector.Get(0))
	vector.Set(0, true)
	vector.Set(3, true)
	assert.True(t, vector.Get(0))
	assert.False(t, vector.Get(1))
	assert.Equal(t, "1001", vector.String())
	vector.Set(0, false)
	assert.Equal(t, "0001", vector.String())
}

func TestVector_Not(t *testing.T) {
	vector, err := Parse("1100")
	require.NoError(t, err)
	//
	assert.Equal(t, "0011", vector.Not().String())
	// Double negation restores the original
	original, _ := Parse("0110")
	assert.True(t, original.Clone().Not().Not().Equals(original))
}

func TestVector_AndOr(t *testing.T) {
	tests := []struct {
		lhs string
		rhs string
		and string
		or  string
	}{
		{"0011", "1010", "0010", "1011"},
		{"1111", "1100", "1100", "1111"},
		{"0000", "0000", "0000", "0000"},
		{"", "", "", ""},
	}
	//
	for _, test := range tests {
		lhs, err := Parse(test.lhs)
		require.NoError(t, err)
		rhs, err := Parse(test.rhs)
		require.NoError(t, err)
		//
		assert.Equal(t, test.and, lhs.Clone().And(rhs).String())
		assert.Equal(t, test.or, lhs.Clone().Or(rhs).String())
	}
}

func TestVector_InPlace(t *testing.T) {
	// And reuses the first operand's storage.
	lhs, _ := Parse("0011")
	rhs, _ := Parse("1010")
	result := lhs.And(rhs)
	//
	assert.True(t, result.Equals(lhs))
	assert.Equal(t, "0010", lhs.String())
	// Clone decouples storage.
	clone := rhs.Clone()
	clone.Set(0, false)
	assert.Equal(t, "1010", rhs.String())
	assert.Equal(t, "0010", clone.String())
}

func TestVector_Equals(t *testing.T) {
	lhs, _ := Parse("1100")
	rhs, _ := Parse("1100")
	other, _ := Parse("1101")
	//
	assert.True(t, lhs.Equals(rhs))
	assert.False(t, lhs.Equals(other))
	// Same bits, different length
	assert.False(t, New(2).Equals(New(3)))
}

func TestVector_ZeroLength(t *testing.T) {
	assert.Equal(t, "", New(0).String())
	assert.Equal(t, "", Ones(0).String())
	assert.True(t, New(0).Equals(Ones(0)))
}
