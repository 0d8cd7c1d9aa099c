/*
File    : monkeylang/parser/precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/monkeylang/token"

// precedence is the Pratt parser's binding-power ranking, lowest to
// highest. Prefix is never reached from precedenceOf — it is used only
// internally by parseExpression when recursing into a unary operator's
// operand, which is why `-a * b` parses as `(-a) * b` rather than
// `-(a * b)`.
type precedence int

const (
	Lowest precedence = iota + 1
	Equals
	Ordering
	Sum
	Product
	Prefix
	Call
)

// precedences maps an infix-capable token kind to its binding power.
// Kinds absent from this map default to Lowest.
var precedences = map[token.Kind]precedence{
	token.Eq:     Equals,
	token.NotEq:  Equals,
	token.Lt:     Ordering,
	token.Gt:     Ordering,
	token.Plus:   Sum,
	token.Minus:  Sum,
	token.Slash:  Product,
	token.Star:   Product,
	token.LParen: Call,
}

// precedenceOf looks up the binding power of kind, defaulting to Lowest.
func precedenceOf(kind token.Kind) precedence {
	if p, ok := precedences[kind]; ok {
		return p
	}
	return Lowest
}
