// Package formula evaluates the arithmetic pricing expressions attached to
// product templates.
//
// The language is deliberately tiny: numeric literals, identifiers bound in
// the caller's scope, + - * / and parentheses. Function calls, assignments
// and everything else are rejected so a pricing field can never execute
// anything. Evaluation is pure and deterministic: the same formula and
// scope always produce the same number, which is what lets the configurator
// preview, the persisted total and the printed quote agree bit-for-bit.
//
// Reserved scope names (public contract, not incidental behavior):
//   - MaterialPrice: the material unit price in effect for the item
//     (snapshotted or live), 0 when no material is selected.
//   - PI: fixed at 3.14. Historical quotes were computed with this
//     approximation; changing it would silently reprice them.
package formula

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// PI is the fixed approximation used in every formula scope.
	PI = 3.14

	// MaterialPriceVar is the reserved scope name for the material unit price.
	MaterialPriceVar = "MaterialPrice"

	piVar = "PI"
)

// EvalError reports why a formula could not be evaluated. Callers must
// treat it as "price unknown", never as zero, unless they are an
// interactive preview that explicitly coerces.
type EvalError struct {
	Message string
}

func (e *EvalError) Error() string {
	return e.Message
}

func evalErrorf(format string, args ...any) *EvalError {
	return &EvalError{Message: fmt.Sprintf(format, args...)}
}

// Evaluate parses and evaluates formula against scope.
//
// It fails with *EvalError when the expression is malformed, references an
// identifier missing from scope, or produces a non-finite result (e.g.
// division by zero).
func Evaluate(formula string, scope map[string]float64) (float64, error) {
	p := &parser{input: formula, scope: scope}
	p.next()
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.err != nil {
		return 0, p.err
	}
	if p.tok.kind != tokEOF {
		return 0, evalErrorf("unexpected %q at position %d", p.tok.text, p.tok.pos+1)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, evalErrorf("formula does not produce a finite number")
	}
	return v, nil
}

// Preview evaluates with interactive semantics: errors, negative and
// non-finite results all display as 0, with the error text returned
// separately so the UI can show it without ever crashing on partial input.
func Preview(formula string, scope map[string]float64) (float64, string) {
	v, err := Evaluate(formula, scope)
	if err != nil {
		return 0, err.Error()
	}
	if v < 0 {
		return 0, ""
	}
	return v, ""
}

// Scope builds the evaluation scope for one item: every declared slug is
// present (0 when the user has not entered a value yet), then the reserved
// names. Entered values win over the slug default; the reserved names win
// over everything.
func Scope(params map[string]float64, slugs []string, materialPrice float64) map[string]float64 {
	scope := make(map[string]float64, len(params)+len(slugs)+2)
	for _, slug := range slugs {
		scope[slug] = 0
	}
	for k, v := range params {
		scope[k] = v
	}
	scope[MaterialPriceVar] = materialPrice
	scope[piVar] = PI
	return scope
}

// Validate checks a template formula against a representative scope (every
// declared slug = 1, MaterialPrice = 1) so admins cannot save an expression
// that could never price. Ones rather than zeros keep a plain division by a
// parameter from failing as a spurious divide-by-zero.
func Validate(formula string, slugs []string) error {
	if strings.TrimSpace(formula) == "" {
		return evalErrorf("formula is empty")
	}
	scope := make(map[string]float64, len(slugs)+2)
	for _, slug := range slugs {
		scope[slug] = 1
	}
	scope[MaterialPriceVar] = 1
	scope[piVar] = PI
	_, err := Evaluate(formula, scope)
	return err
}

// References reports whether formula mentions name as an identifier.
func References(formula, name string) bool {
	p := &parser{input: formula}
	for {
		p.next()
		if p.err != nil || p.tok.kind == tokEOF {
			return false
		}
		if p.tok.kind == tokIdent && p.tok.text == name {
			return true
		}
	}
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	val  float64
	pos  int
}

type parser struct {
	input string
	pos   int
	tok   token
	scope map[string]float64
	err   *EvalError
}

func (p *parser) next() {
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			p.pos++
			continue
		}
		break
	}
	start := p.pos
	if p.pos >= len(p.input) {
		p.tok = token{kind: tokEOF, pos: start}
		return
	}
	c := p.input[p.pos]
	switch {
	case c >= '0' && c <= '9' || c == '.':
		for p.pos < len(p.input) && (p.input[p.pos] >= '0' && p.input[p.pos] <= '9' || p.input[p.pos] == '.') {
			p.pos++
		}
		text := p.input[start:p.pos]
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			p.err = evalErrorf("invalid number %q at position %d", text, start+1)
			p.tok = token{kind: tokEOF, pos: start}
			return
		}
		p.tok = token{kind: tokNumber, text: text, val: v, pos: start}
	case isIdentStart(c):
		for p.pos < len(p.input) && isIdentPart(p.input[p.pos]) {
			p.pos++
		}
		p.tok = token{kind: tokIdent, text: p.input[start:p.pos], pos: start}
	default:
		p.pos++
		switch c {
		case '+':
			p.tok = token{kind: tokPlus, text: "+", pos: start}
		case '-':
			p.tok = token{kind: tokMinus, text: "-", pos: start}
		case '*':
			p.tok = token{kind: tokStar, text: "*", pos: start}
		case '/':
			p.tok = token{kind: tokSlash, text: "/", pos: start}
		case '(':
			p.tok = token{kind: tokLParen, text: "(", pos: start}
		case ')':
			p.tok = token{kind: tokRParen, text: ")", pos: start}
		default:
			p.err = evalErrorf("unexpected character %q at position %d", string(c), start+1)
			p.tok = token{kind: tokEOF, pos: start}
		}
	}
}

func (p *parser) parseExpr() (float64, error) {
	v, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		switch p.tok.kind {
		case tokPlus:
			p.next()
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v += rhs
		case tokMinus:
			p.next()
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			v -= rhs
		default:
			return v, nil
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	v, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		switch p.tok.kind {
		case tokStar:
			p.next()
			rhs, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			v *= rhs
		case tokSlash:
			p.next()
			rhs, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			v /= rhs
		default:
			return v, nil
		}
	}
}

func (p *parser) parseUnary() (float64, error) {
	switch p.tok.kind {
	case tokMinus:
		p.next()
		v, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return -v, nil
	case tokPlus:
		p.next()
		return p.parseUnary()
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (float64, error) {
	if p.err != nil {
		return 0, p.err
	}
	switch p.tok.kind {
	case tokNumber:
		v := p.tok.val
		p.next()
		if p.err != nil {
			return 0, p.err
		}
		return v, nil
	case tokIdent:
		name := p.tok.text
		p.next()
		if p.err != nil {
			return 0, p.err
		}
		if p.tok.kind == tokLParen {
			return 0, evalErrorf("function calls are not allowed: %q", name)
		}
		v, ok := p.scope[name]
		if !ok {
			return 0, evalErrorf("unknown variable %q", name)
		}
		return v, nil
	case tokLParen:
		p.next()
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if p.tok.kind != tokRParen {
			return 0, evalErrorf("missing closing parenthesis at position %d", p.tok.pos+1)
		}
		p.next()
		if p.err != nil {
			return 0, p.err
		}
		return v, nil
	case tokEOF:
		return 0, evalErrorf("unexpected end of formula")
	default:
		return 0, evalErrorf("unexpected %q at position %d", p.tok.text, p.tok.pos+1)
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}
