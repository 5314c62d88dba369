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
package lex

import (
	"slices"
	"testing"

	"github.com/hoodiv/bveval/pkg/util/source"
)

const END_OF uint = 0
const WSPACE uint = 1
const LBRACE uint = 2
const RBRACE uint = 3
const WORD uint = 4
const MINUS uint = 5

var rules []LexRule = []LexRule{
	Rule(Unit('('), LBRACE),
	Rule(Unit(')'), RBRACE),
	Rule(Unit('-'), MINUS),
	Rule(Many(Or(Unit(' '), Unit('\t'))), WSPACE),
	Rule(Many(Or(Within('0', '9'), Within('a', 'z'))), WORD),
	Rule(Eof(), END_OF),
}

func TestLexer_00(t *testing.T) {
	var tokens []Token = []Token{
		{END_OF, source.NewSpan(0, 0)},
	}

	checkLexer(t, "", 0, tokens...)
}

func TestLexer_01(t *testing.T) {
	var tokens []Token = []Token{
		{LBRACE, source.NewSpan(0, 1)},
		{END_OF, source.NewSpan(1, 1)},
	}

	checkLexer(t, "(", 0, tokens...)
}

func TestLexer_02(t *testing.T) {
	var tokens []Token = []Token{
		{LBRACE, source.NewSpan(0, 1)},
		{RBRACE, source.NewSpan(1, 2)},
		{END_OF, source.NewSpan(2, 2)},
	}

	checkLexer(t, "()", 0, tokens...)
}

func TestLexer_03(t *testing.T) {
	var tokens []Token = []Token{}

	checkLexer(t, "%", 1, tokens...)
}

func TestLexer_04(t *testing.T) {
	var tokens []Token = []Token{
		{LBRACE, source.NewSpan(0, 1)},
		{WSPACE, source.NewSpan(1, 2)},
		{RBRACE, source.NewSpan(2, 3)},
		{END_OF, source.NewSpan(3, 3)},
	}

	checkLexer(t, "( )", 0, tokens...)
}

func TestLexer_05(t *testing.T) {
	var tokens []Token = []Token{
		{WORD, source.NewSpan(0, 4)},
		{END_OF, source.NewSpan(4, 4)},
	}

	checkLexer(t, "1100", 0, tokens...)
}

func TestLexer_06(t *testing.T) {
	var tokens []Token = []Token{
		{MINUS, source.NewSpan(0, 1)},
		{WORD, source.NewSpan(1, 6)},
		{END_OF, source.NewSpan(6, 6)},
	}

	checkLexer(t, "-false", 0, tokens...)
}

func TestLexer_07(t *testing.T) {
	var tokens []Token = []Token{
		{WORD, source.NewSpan(0, 2)},
		{WSPACE, source.NewSpan(2, 3)},
		{WORD, source.NewSpan(3, 5)},
		{END_OF, source.NewSpan(5, 5)},
	}

	checkLexer(t, "ab cd", 0, tokens...)
}

func TestLexer_08(t *testing.T) {
	var tokens []Token = []Token{
		{WORD, source.NewSpan(0, 2)},
	}

	checkLexer(t, "ab%cd", 3, tokens...)
}

func TestLexer_09(t *testing.T) {
	var tokens []Token = []Token{
		{MINUS, source.NewSpan(0, 1)},
		{LBRACE, source.NewSpan(1, 2)},
		{WORD, source.NewSpan(2, 4)},
		{RBRACE, source.NewSpan(4, 5)},
		{END_OF, source.NewSpan(5, 5)},
	}

	checkLexer(t, "-(10)", 0, tokens...)
}

func checkLexer(t *testing.T, input string, remaining uint, tokens ...Token) {
	lexer := NewLexer([]rune(input), rules...)
	// Collect as many tokens as possible
	actual := lexer.Collect()
	//
	if lexer.Remaining() != remaining {
		t.Errorf("expected %d characters remaining, got %d", remaining, lexer.Remaining())
	} else if !slices.Equal(actual, tokens) {
		t.Errorf("expected tokens %v, got %v", tokens, actual)
	}
}
