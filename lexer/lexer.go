/*
File    : monkeylang/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer performs lexical analysis of Monkey source code: a
// stateful character cursor that produces one Token at a time on demand.
package lexer

import (
	"github.com/akashmaji946/monkeylang/token"
)

// Lexer scans a fixed input buffer and hands back tokens one at a time.
// The input is materialized as a rune slice up front so indexed access
// (current/peek) is O(1) regardless of any multi-byte UTF-8 runes in the
// source text.
type Lexer struct {
	input        []rune
	position     int  // index of ch in input
	readPosition int  // index of the next rune to read
	ch           rune // rune under examination, 0 (NUL) at end of input
}

// New constructs a Lexer over src and primes it so the first call to
// NextToken sees the first character of the input.
func New(src string) *Lexer {
	l := &Lexer{input: []rune(src)}
	l.readChar()
	return l
}

// readChar advances the cursor by one rune, setting ch to NUL once the
// input is exhausted.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

// peekChar looks one rune ahead without consuming it, returning NUL past
// the end of input.
func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// NextToken returns the next token in the input, advancing past it.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	var tok token.Token

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			tok = token.Token{Kind: token.Eq, Literal: string(ch) + string(l.ch)}
		} else {
			tok = token.Token{Kind: token.Assign, Literal: "="}
		}
	case '!':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			tok = token.Token{Kind: token.NotEq, Literal: string(ch) + string(l.ch)}
		} else {
			tok = token.Token{Kind: token.Bang, Literal: "!"}
		}
	case '+':
		tok = token.Token{Kind: token.Plus, Literal: "+"}
	case '-':
		tok = token.Token{Kind: token.Minus, Literal: "-"}
	case '*':
		tok = token.Token{Kind: token.Star, Literal: "*"}
	case '/':
		tok = token.Token{Kind: token.Slash, Literal: "/"}
	case '<':
		tok = token.Token{Kind: token.Lt, Literal: "<"}
	case '>':
		tok = token.Token{Kind: token.Gt, Literal: ">"}
	case ',':
		tok = token.Token{Kind: token.Comma, Literal: ","}
	case ';':
		tok = token.Token{Kind: token.Semicolon, Literal: ";"}
	case '(':
		tok = token.Token{Kind: token.LParen, Literal: "("}
	case ')':
		tok = token.Token{Kind: token.RParen, Literal: ")"}
	case '{':
		tok = token.Token{Kind: token.LBrace, Literal: "{"}
	case '}':
		tok = token.Token{Kind: token.RBrace, Literal: "}"}
	case 0:
		tok = token.Token{Kind: token.Eof, Literal: ""}
	default:
		if isLetter(l.ch) {
			literal := l.readIdentifier()
			return token.Token{Kind: token.LookupIdent(literal), Literal: literal}
		} else if isDigit(l.ch) {
			return token.Token{Kind: token.Int, Literal: l.readNumber()}
		}
		tok = token.Token{Kind: token.Illegal, Literal: string(l.ch)}
	}

	l.readChar()
	return tok
}

// skipWhitespace consumes space, tab, newline, and carriage return.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier consumes a maximal run of letters/digits/underscore and
// returns it without consuming the character that ends the run.
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return string(l.input[start:l.position])
}

// readNumber consumes a maximal run of ASCII digits and returns it without
// consuming the character that ends the run.
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return string(l.input[start:l.position])
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
