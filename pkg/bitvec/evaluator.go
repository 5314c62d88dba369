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

	"github.com/hoodiv/bveval/pkg/eval"
	"github.com/hoodiv/bveval/pkg/util/source"
)

// NOT is the unary negate operator.  It binds tightest.
var NOT = eval.NewOperator("-", 1, eval.RightAssociative, 3)

// AND is the bitwise intersection operator.
var AND = eval.NewOperator("*", 2, eval.LeftAssociative, 2)

// OR is the bitwise union operator.  It binds loosest.
var OR = eval.NewOperator("+", 2, eval.LeftAssociative, 1)

// TRUE is the all-ones constant.
var TRUE = eval.NewConstant("true")

// FALSE is the all-zeroes constant.
var FALSE = eval.NewConstant("false")

// The evaluator shared by all evaluations.  Immutable after construction.
var evaluator = eval.NewEvaluator[Vector](parameters())

func parameters() *eval.Parameters {
	params := eval.NewParameters()
	// Add the supported operators
	params.AddOperator(NOT)
	params.AddOperator(AND)
	params.AddOperator(OR)
	// Add the supported constants
	params.AddConstant(TRUE)
	params.AddConstant(FALSE)
	// Add the default bracket pair
	params.AddBracketPair(eval.Parentheses)
	//
	return params
}

// Context carries the configuration of a single evaluation run, namely the
// fixed length every literal and every computed vector must have.
type Context struct {
	// Required vector length.
	Length uint
}

// Evaluate a given expression over bit vectors of the length fixed by the
// given context.  For example, "true * 1100" under a context of length 4
// evaluates to the vector 1100.  Any lexical, structural or length failure is
// reported as one (or more) syntax errors tagged with positions in the
// expression; length and character failures additionally unwrap to
// LengthMismatchError and InvalidCharacterError respectively.
func Evaluate(input string, context Context) (Vector, []source.SyntaxError) {
	return evaluator.Evaluate(input, &semantics{context})
}

// Semantics of the bit-vector expression language, parameterised by the
// context of the current run.
type semantics struct {
	context Context
}

// Literal converts a string of '0' and '1' characters into a vector, checking
// it against the context length first.
func (p *semantics) Literal(text string) (Vector, error) {
	if uint(len(text)) != p.context.Length {
		return Vector{}, &LengthMismatchError{text, p.context.Length}
	}
	//
	return Parse(text)
}

// Operator applies one of the three supported operators.  In each case the
// first operand's storage is mutated and returned as the result.
func (p *semantics) Operator(operator *eval.Operator, operands []Vector) (Vector, error) {
	switch operator {
	case NOT:
		return operands[0].Not(), nil
	case AND:
		return operands[0].And(operands[1]), nil
	case OR:
		return operands[0].Or(operands[1]), nil
	}
	//
	return Vector{}, fmt.Errorf("unsupported operator \"%s\"", operator.Symbol())
}

// Constant produces a freshly allocated vector of the context length: all
// bits set for TRUE, all bits clear for FALSE.
func (p *semantics) Constant(constant *eval.Constant) (Vector, error) {
	switch constant {
	case TRUE:
		return Ones(p.context.Length), nil
	case FALSE:
		return New(p.context.Length), nil
	}
	//
	return Vector{}, fmt.Errorf("unsupported constant \"%s\"", constant.Name())
}
