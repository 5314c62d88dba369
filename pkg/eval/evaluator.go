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

import (
	"slices"

	log "github.com/sirupsen/logrus"

	"github.com/hoodiv/bveval/pkg/util/lex"
	"github.com/hoodiv/bveval/pkg/util/source"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// OPEN_BRACKET signals an opening bracket
const OPEN_BRACKET uint = 2

// CLOSE_BRACKET signals a closing bracket
const CLOSE_BRACKET uint = 3

// WORD signals a literal or constant name
const WORD uint = 4

// OPERATOR_BASE is the kind of the first registered operator.  Operator i in
// the parameters is lexed with kind OPERATOR_BASE + i.
const OPERATOR_BASE uint = 5

// Semantics determines the meaning of literals, operators and constants for a
// given value type.  The evaluation loop drives these callbacks in evaluation
// order; any error returned aborts the evaluation and is reported against the
// span of the triggering token.
type Semantics[V any] interface {
	// Literal converts the text of a literal token into a value.
	Literal(text string) (V, error)
	// Operator applies a registered operator to already-evaluated operands,
	// given in source order (first operand first).  Implementations are free
	// to mutate an operand's storage and return it as the result, hence
	// callers must not assume operand immutability across this call.
	Operator(operator *Operator, operands []V) (V, error)
	// Constant produces the value of a registered constant.
	Constant(constant *Constant) (V, error)
}

// Evaluator evaluates expressions over values of type V, with the expression
// language determined by a set of parameters and the meaning of its tokens by
// a Semantics instance supplied per evaluation.  Evaluation is driven directly
// off the token stream (no intermediate tree), resolving operator precedence
// and associativity against the registered tables.  An evaluator is immutable
// and safe for concurrent use.
type Evaluator[V any] struct {
	params *Parameters
	rules  []lex.LexRule
}

// NewEvaluator constructs an evaluator from a given set of parameters.  The
// parameters must not be modified afterwards.
func NewEvaluator[V any](params *Parameters) *Evaluator[V] {
	return &Evaluator[V]{params, rulesOf(params)}
}

// Evaluate a given input expression, reporting either the resulting value or
// one (or more) syntax errors tagged with positions in the input.
func (e *Evaluator[V]) Evaluate(input string, semantics Semantics[V]) (V, []source.SyntaxError) {
	var (
		empty   V
		srcfile = source.NewSourceFile("expr", []byte(input))
		lexer   = lex.NewLexer(srcfile.Contents(), e.rules...)
		// Lex as many tokens as possible
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := int(lexer.Index()), int(lexer.Index()+lexer.Remaining())
		err := srcfile.SyntaxError(source.NewSpan(start, end), "unknown text encountered")
		//
		return empty, []source.SyntaxError{*err}
	}
	//
	log.Debugf("lexed %d tokens from \"%s\"", len(tokens), input)
	//
	r := &run[V]{e.params, semantics, srcfile, nil, nil}
	//
	return r.evaluate(tokens)
}

// Construct the lexing rules implied by a given set of parameters.
func rulesOf(params *Parameters) []lex.LexRule {
	var rules []lex.LexRule
	//
	for _, pair := range params.brackets {
		rules = append(rules, lex.Rule(lex.Unit(pair.open), OPEN_BRACKET))
		rules = append(rules, lex.Rule(lex.Unit(pair.close), CLOSE_BRACKET))
	}
	// Longest symbols first, so no operator is shadowed by a prefix of it.
	indices := make([]int, len(params.operators))
	for i := range indices {
		indices[i] = i
	}
	//
	slices.SortStableFunc(indices, func(l int, r int) int {
		return len(params.operators[r].symbol) - len(params.operators[l].symbol)
	})
	//
	for _, i := range indices {
		symbol := lex.String(params.operators[i].symbol)
		rules = append(rules, lex.Rule(symbol, OPERATOR_BASE+uint(i)))
	}
	//
	return append(rules,
		lex.Rule(whitespace, WHITESPACE),
		lex.Rule(word, WORD),
		lex.Rule(lex.Eof(), END_OF))
}

// Rule for describing whitespace
var whitespace lex.Scanner = lex.Many(lex.Or(
	lex.Unit(' '),
	lex.Unit('\t'),
	lex.Unit('\n'),
	lex.Unit('\r')))

// Rule for describing literals and constant names
var word lex.Scanner = lex.Many(lex.Or(
	lex.Unit('_'),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z')))

// Run captures the state of a single evaluation: the value stack and the
// stack of pending operator (and open bracket) tokens.
type run[V any] struct {
	params    *Parameters
	semantics Semantics[V]
	srcfile   *source.File
	values    []V
	operators []lex.Token
}

func (p *run[V]) evaluate(tokens []lex.Token) (V, []source.SyntaxError) {
	var empty V
	//
	for _, token := range tokens {
		var err *source.SyntaxError
		//
		switch token.Kind {
		case END_OF, WHITESPACE:
			continue
		case WORD:
			err = p.evaluateWord(token)
		case OPEN_BRACKET:
			p.operators = append(p.operators, token)
		case CLOSE_BRACKET:
			err = p.closeBracket(token)
		default:
			err = p.pushOperator(token)
		}
		//
		if err != nil {
			return empty, []source.SyntaxError{*err}
		}
	}
	// Apply any operators still outstanding
	for len(p.operators) > 0 {
		token := p.pop()
		//
		if token.Kind == OPEN_BRACKET {
			return empty, p.syntaxErrors(token, "unmatched bracket")
		} else if err := p.apply(token); err != nil {
			return empty, []source.SyntaxError{*err}
		}
	}
	// Exactly one value must remain
	span := source.NewSpan(0, len(p.srcfile.Contents()))
	//
	switch len(p.values) {
	case 1:
		return p.values[0], nil
	case 0:
		return empty, []source.SyntaxError{*p.srcfile.SyntaxError(span, "empty expression")}
	default:
		return empty, []source.SyntaxError{*p.srcfile.SyntaxError(span, "malformed expression")}
	}
}

// Evaluate a word token, which is either a registered constant or a literal.
func (p *run[V]) evaluateWord(token lex.Token) *source.SyntaxError {
	var (
		text  = p.text(token)
		value V
		err   error
	)
	//
	if constant := p.params.constantOf(text); constant != nil {
		value, err = p.semantics.Constant(constant)
	} else {
		value, err = p.semantics.Literal(text)
	}
	//
	if err != nil {
		return p.srcfile.WrapError(token.Span, err)
	}
	//
	p.values = append(p.values, value)
	//
	return nil
}

// Push an operator token, first applying any outstanding operators which bind
// at least as tightly (per precedence and associativity).
func (p *run[V]) pushOperator(token lex.Token) *source.SyntaxError {
	operator := p.operatorOf(token)
	//
	for len(p.operators) > 0 {
		top := p.operators[len(p.operators)-1]
		//
		if top.Kind < OPERATOR_BASE || !yieldsTo(operator, p.operatorOf(top)) {
			break
		}
		//
		p.pop()
		//
		if err := p.apply(top); err != nil {
			return err
		}
	}
	//
	p.operators = append(p.operators, token)
	//
	return nil
}

// Determine whether an incoming operator yields to the operator currently on
// top of the stack.
func yieldsTo(incoming *Operator, top *Operator) bool {
	if incoming.associativity == LeftAssociative {
		return incoming.precedence <= top.precedence
	}
	// Right associative
	return incoming.precedence < top.precedence
}

// Close a bracket by applying all operators down to the matching opening
// bracket.
func (p *run[V]) closeBracket(token lex.Token) *source.SyntaxError {
	for len(p.operators) > 0 {
		top := p.pop()
		//
		if top.Kind == OPEN_BRACKET {
			// Sanity check the pair actually corresponds
			open := p.srcfile.Contents()[top.Span.Start()]
			if closer, ok := p.params.closeOf(open); !ok || closer != p.rune(token) {
				return p.srcfile.SyntaxError(token.Span, "mismatched bracket")
			}
			//
			return nil
		} else if err := p.apply(top); err != nil {
			return err
		}
	}
	//
	return p.srcfile.SyntaxError(token.Span, "unmatched bracket")
}

// Apply a pending operator token to the values on top of the value stack.
func (p *run[V]) apply(token lex.Token) *source.SyntaxError {
	var (
		operator = p.operatorOf(token)
		n        = int(operator.operands)
	)
	//
	if len(p.values) < n {
		return p.srcfile.SyntaxErrorf(token.Span, "missing operand for \"%s\"", operator.symbol)
	}
	// Operands are passed in source order, first operand first.
	operands := p.values[len(p.values)-n:]
	p.values = p.values[:len(p.values)-n]
	//
	value, err := p.semantics.Operator(operator, operands)
	if err != nil {
		return p.srcfile.WrapError(token.Span, err)
	}
	//
	p.values = append(p.values, value)
	//
	return nil
}

// Pop the top token of the operator stack.
func (p *run[V]) pop() lex.Token {
	top := p.operators[len(p.operators)-1]
	p.operators = p.operators[:len(p.operators)-1]
	//
	return top
}

// Determine the operator registered under a given token's kind.
func (p *run[V]) operatorOf(token lex.Token) *Operator {
	return p.params.operators[token.Kind-OPERATOR_BASE]
}

// Get the text representing the given token as a string.
func (p *run[V]) text(token lex.Token) string {
	start, end := token.Span.Start(), token.Span.End()
	return string(p.srcfile.Contents()[start:end])
}

// Get the first rune of a given token.
func (p *run[V]) rune(token lex.Token) rune {
	return p.srcfile.Contents()[token.Span.Start()]
}

func (p *run[V]) syntaxErrors(token lex.Token, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.srcfile.SyntaxError(token.Span, msg)}
}
