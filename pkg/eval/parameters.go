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
package eval

// Associativity determines, for operators of equal precedence, whether the
// leftmost or rightmost application binds first.
type Associativity uint8

const (
	// LeftAssociative operators of equal precedence apply left-to-right.
	LeftAssociative Associativity = iota
	// RightAssociative operators of equal precedence apply right-to-left.
	RightAssociative
)

// Operator describes a prefix or infix operator: its symbol, the number of
// operands it consumes (one or two), its associativity and its precedence
// rank (higher ranks bind tighter).  Operators are immutable once
// constructed, and are matched by identity during evaluation.
type Operator struct {
	symbol        string
	operands      uint
	associativity Associativity
	precedence    uint
}

// NewOperator constructs a new operator with a given symbol, operand count,
// associativity and precedence.
func NewOperator(symbol string, operands uint, associativity Associativity, precedence uint) *Operator {
	if symbol == "" {
		panic("operator requires a symbol")
	} else if operands == 0 || operands > 2 {
		panic("operator requires one or two operands")
	}
	//
	return &Operator{symbol, operands, associativity, precedence}
}

// Symbol returns the symbol of this operator.
func (p *Operator) Symbol() string {
	return p.symbol
}

// Operands returns the number of operands this operator consumes.
func (p *Operator) Operands() uint {
	return p.operands
}

// Associativity returns the associativity of this operator.
func (p *Operator) Associativity() Associativity {
	return p.associativity
}

// Precedence returns the precedence rank of this operator, where higher ranks
// bind tighter.
func (p *Operator) Precedence() uint {
	return p.precedence
}

// Constant describes a named symbolic token, such as "true".  Constants are
// immutable once constructed, and are matched by identity during evaluation.
type Constant struct {
	name string
}

// NewConstant constructs a new constant with a given name.
func NewConstant(name string) *Constant {
	if name == "" {
		panic("constant requires a name")
	}
	//
	return &Constant{name}
}

// Name returns the name of this constant.
func (p *Constant) Name() string {
	return p.name
}

// BracketPair describes a pair of runes used for grouping sub-expressions.
type BracketPair struct {
	open  rune
	close rune
}

// Parentheses is the usual bracket pair.
var Parentheses = BracketPair{'(', ')'}

// NewBracketPair constructs a bracket pair from a given opening and closing
// rune.
func NewBracketPair(open rune, close rune) BracketPair {
	return BracketPair{open, close}
}

// Open returns the opening rune of this bracket pair.
func (p BracketPair) Open() rune {
	return p.open
}

// Close returns the closing rune of this bracket pair.
func (p BracketPair) Close() rune {
	return p.close
}

// Parameters collects together the operators, constants and bracket pairs
// which make up an expression language.  A Parameters instance is populated
// once, before constructing an evaluator from it, and never mutated
// afterwards.
type Parameters struct {
	operators []*Operator
	constants []*Constant
	brackets  []BracketPair
}

// NewParameters constructs an empty set of parameters.
func NewParameters() *Parameters {
	return &Parameters{}
}

// AddOperator registers a given operator.  Each symbol identifies exactly one
// operator, hence registering two operators with the same symbol panics.
func (p *Parameters) AddOperator(operator *Operator) {
	if p.operatorOf(operator.symbol) != nil {
		panic("duplicate operator symbol " + operator.symbol)
	}
	//
	p.operators = append(p.operators, operator)
}

// AddConstant registers a given constant.  Registering two constants with the
// same name panics.
func (p *Parameters) AddConstant(constant *Constant) {
	if p.constantOf(constant.name) != nil {
		panic("duplicate constant name " + constant.name)
	}
	//
	p.constants = append(p.constants, constant)
}

// AddBracketPair registers a given bracket pair for grouping sub-expressions.
func (p *Parameters) AddBracketPair(pair BracketPair) {
	p.brackets = append(p.brackets, pair)
}

// Determine the operator (if any) registered for a given symbol.
func (p *Parameters) operatorOf(symbol string) *Operator {
	for _, op := range p.operators {
		if op.symbol == symbol {
			return op
		}
	}
	//
	return nil
}

// Determine the constant (if any) registered for a given name.
func (p *Parameters) constantOf(name string) *Constant {
	for _, c := range p.constants {
		if c.name == name {
			return c
		}
	}
	//
	return nil
}

// Determine the closing rune paired with a given opening rune.
func (p *Parameters) closeOf(open rune) (rune, bool) {
	for _, b := range p.brackets {
		if b.open == open {
			return b.close, true
		}
	}
	//
	return 0, false
}
