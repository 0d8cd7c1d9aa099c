/*
File    : monkeylang/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a Pratt parser (top-down operator precedence
// parser) for the Monkey language.
//
// The parser converts the lexer's token stream into an *ast.Program. It
// resolves prefix/infix precedence and associativity, supports nested
// grouping, block statements, if/else, function literals, and call
// expressions, and recovers from syntax errors instead of aborting on the
// first one.
package parser

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/monkeylang/ast"
	"github.com/akashmaji946/monkeylang/lexer"
	"github.com/akashmaji946/monkeylang/token"
)

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser holds the parsing state: the lexer it pulls tokens from, one
// token of lookahead, the accumulated error list, and the prefix/infix
// dispatch tables keyed by token kind.
type Parser struct {
	lex *lexer.Lexer

	currToken token.Token
	peekToken token.Token

	errors []string

	prefixParseFns map[token.Kind]prefixParseFn
	infixParseFns  map[token.Kind]infixParseFn
}

// New creates a Parser over lex, registers every prefix/infix handler,
// and advances twice so currToken/peekToken are both populated.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{
		lex:    lex,
		errors: []string{},
	}

	p.prefixParseFns = map[token.Kind]prefixParseFn{
		token.Ident:    p.parseIdentifier,
		token.Int:      p.parseIntegerLiteral,
		token.Bang:     p.parsePrefixExpression,
		token.Minus:    p.parsePrefixExpression,
		token.True:     p.parseBoolean,
		token.False:    p.parseBoolean,
		token.LParen:   p.parseGroupedExpression,
		token.If:       p.parseIfExpression,
		token.Function: p.parseFunctionLiteral,
	}

	p.infixParseFns = map[token.Kind]infixParseFn{
		token.Plus:   p.parseInfixExpression,
		token.Minus:  p.parseInfixExpression,
		token.Slash:  p.parseInfixExpression,
		token.Star:   p.parseInfixExpression,
		token.Eq:     p.parseInfixExpression,
		token.NotEq:  p.parseInfixExpression,
		token.Lt:     p.parseInfixExpression,
		token.Gt:     p.parseInfixExpression,
		token.LParen: p.parseCallExpression,
	}

	p.nextToken()
	p.nextToken()

	return p
}

// Errors returns the parser's accumulated error messages.
func (p *Parser) Errors() []string {
	return p.errors
}

func (p *Parser) nextToken() {
	p.currToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

// ParseProgram parses the whole input into a Program, synchronizing past
// any statement-level errors instead of stopping at the first one.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}

	for !p.currTokenIs(token.Eof) {
		stmt, ok := p.parseStatement()
		if ok {
			program.Statements = append(program.Statements, stmt)
		} else {
			p.synchronize()
		}
		p.nextToken()
	}

	return program
}

// synchronize advances past tokens until a plausible restart point so one
// syntax error doesn't cascade into many: it consumes a terminating ';' or
// '}', stops before a statement-starting keyword, and stops at EOF.
func (p *Parser) synchronize() {
	for !p.currTokenIs(token.Eof) {
		switch p.currToken.Kind {
		case token.Semicolon, token.RBrace:
			return
		}
		// Stop one token short of a keyword so the caller's advance lands on it.
		switch p.peekToken.Kind {
		case token.Let, token.Return, token.If, token.Else, token.Function:
			return
		}
		p.nextToken()
	}
}

func (p *Parser) parseStatement() (ast.Statement, bool) {
	switch p.currToken.Kind {
	case token.Let:
		return p.parseLetStatement()
	case token.Return:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() (ast.Statement, bool) {
	stmt := &ast.LetStatement{Token: p.currToken}

	if !p.expectPeek(token.Ident) {
		return nil, false
	}

	stmt.Name = &ast.Identifier{Token: p.currToken, Name: p.currToken.Literal}

	if !p.expectPeek(token.Assign) {
		return nil, false
	}

	p.nextToken()

	stmt.Value = p.parseExpression(Lowest)

	if p.peekTokenIs(token.Semicolon) {
		p.nextToken()
	}

	return stmt, true
}

func (p *Parser) parseReturnStatement() (ast.Statement, bool) {
	stmt := &ast.ReturnStatement{Token: p.currToken}

	p.nextToken()

	stmt.Value = p.parseExpression(Lowest)

	if p.peekTokenIs(token.Semicolon) {
		p.nextToken()
	}

	return stmt, true
}

func (p *Parser) parseExpressionStatement() (ast.Statement, bool) {
	stmt := &ast.ExpressionStatement{Token: p.currToken}

	stmt.Expression = p.parseExpression(Lowest)
	if stmt.Expression == nil {
		return nil, false
	}

	// A trailing semicolon is consumed but never required, which lets a
	// bare expression such as `{ x }` serve as an if-arm's implicit value.
	if p.peekTokenIs(token.Semicolon) {
		p.nextToken()
	}

	return stmt, true
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.currToken, Statements: []ast.Statement{}}

	p.nextToken()

	for !p.currTokenIs(token.RBrace) && !p.currTokenIs(token.Eof) {
		stmt, ok := p.parseStatement()
		if ok {
			block.Statements = append(block.Statements, stmt)
		} else {
			p.synchronize()
		}
		p.nextToken()
	}

	return block
}

// parseExpression is the Pratt parser's core loop: obtain a left operand
// from the prefix table, then repeatedly extend it with infix handlers as
// long as the next operator binds tighter than minPrec. Strict `<` (not
// `<=`) makes every level left-associative.
func (p *Parser) parseExpression(minPrec precedence) ast.Expression {
	prefix, ok := p.prefixParseFns[p.currToken.Kind]
	if !ok {
		p.noPrefixParseFnError(p.currToken.Kind)
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(token.Semicolon) && minPrec < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peekToken.Kind]
		if !ok {
			return left
		}

		p.nextToken()

		left = infix(left)
	}

	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.currToken, Name: p.currToken.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.currToken}

	value, err := strconv.ParseInt(p.currToken.Literal, 10, 64)
	if err != nil {
		p.errors = append(p.errors, fmt.Sprintf("could not parse %q as integer", p.currToken.Literal))
		return nil
	}

	lit.Value = value
	return lit
}

func (p *Parser) parseBoolean() ast.Expression {
	return &ast.BooleanLiteral{Token: p.currToken, Value: p.currTokenIs(token.True)}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{Token: p.currToken, Operator: p.currToken.Literal}

	p.nextToken()

	expr.Right = p.parseExpression(Prefix)

	return expr
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{
		Token:    p.currToken,
		Left:     left,
		Operator: p.currToken.Literal,
	}

	prec := p.currPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(prec)

	return expr
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()

	expr := p.parseExpression(Lowest)

	if !p.expectPeek(token.RParen) {
		return nil
	}

	return expr
}

func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpression{Token: p.currToken}

	if !p.expectPeek(token.LParen) {
		return nil
	}

	p.nextToken()
	expr.Condition = p.parseExpression(Lowest)

	if !p.expectPeek(token.RParen) {
		return nil
	}

	if !p.expectPeek(token.LBrace) {
		return nil
	}

	expr.Consequence = p.parseBlockStatement()

	if p.peekTokenIs(token.Else) {
		p.nextToken()

		if !p.expectPeek(token.LBrace) {
			return nil
		}

		expr.Alternative = p.parseBlockStatement()
	}

	return expr
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	lit := &ast.FunctionLiteral{Token: p.currToken}

	if !p.expectPeek(token.LParen) {
		return nil
	}

	lit.Parameters = p.parseFunctionParameters()

	if !p.expectPeek(token.LBrace) {
		return nil
	}

	lit.Body = p.parseBlockStatement()

	return lit
}

func (p *Parser) parseFunctionParameters() []*ast.Identifier {
	identifiers := []*ast.Identifier{}

	if p.peekTokenIs(token.RParen) {
		p.nextToken()
		return identifiers
	}

	p.nextToken()
	identifiers = append(identifiers, &ast.Identifier{Token: p.currToken, Name: p.currToken.Literal})

	for p.peekTokenIs(token.Comma) {
		p.nextToken()
		p.nextToken()
		identifiers = append(identifiers, &ast.Identifier{Token: p.currToken, Name: p.currToken.Literal})
	}

	if !p.expectPeek(token.RParen) {
		return nil
	}

	return identifiers
}

func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	expr := &ast.CallExpression{Token: p.currToken, Function: function}
	expr.Arguments = p.parseExpressionList(token.RParen)
	return expr
}

func (p *Parser) parseExpressionList(end token.Kind) []ast.Expression {
	list := []ast.Expression{}

	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	list = append(list, p.parseExpression(Lowest))

	for p.peekTokenIs(token.Comma) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(Lowest))
	}

	if !p.expectPeek(end) {
		return nil
	}

	return list
}

func (p *Parser) currTokenIs(kind token.Kind) bool {
	return p.currToken.Kind == kind
}

func (p *Parser) peekTokenIs(kind token.Kind) bool {
	return p.peekToken.Kind == kind
}

// expectPeek enforces a grammar-mandated next token: on a match it
// advances past it, otherwise it records an "unexpected token" error and
// leaves the cursor where it is for synchronize to clean up.
func (p *Parser) expectPeek(kind token.Kind) bool {
	if p.peekTokenIs(kind) {
		p.nextToken()
		return true
	}
	p.peekError(kind)
	return false
}

func (p *Parser) peekError(kind token.Kind) {
	msg := fmt.Sprintf("expected next token to be %s, got %s instead", kind, p.peekToken.Kind)
	p.errors = append(p.errors, msg)
}

func (p *Parser) noPrefixParseFnError(kind token.Kind) {
	msg := fmt.Sprintf("no prefix parse function for %s found", kind)
	p.errors = append(p.errors, msg)
}

func (p *Parser) peekPrecedence() precedence {
	return precedenceOf(p.peekToken.Kind)
}

func (p *Parser) currPrecedence() precedence {
	return precedenceOf(p.currToken.Kind)
}
