/*
File    : monkeylang/evaluator/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/monkeylang/ast"
	"github.com/akashmaji946/monkeylang/lexer"
	"github.com/akashmaji946/monkeylang/object"
	"github.com/akashmaji946/monkeylang/parser"
)

func testEval(t *testing.T, input string) object.Object {
	t.Helper()
	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()
	require.Empty(t, p.Errors())
	return Eval(program)
}

func TestEvalIntegerExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"5", 5},
		{"10", 10},
		{"-5", -5},
		{"-10", -10},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		integer, ok := result.(*object.Integer)
		require.Truef(t, ok, "object is not Integer, got %T (%+v)", result, result)
		assert.Equal(t, tt.expected, integer.Value)
	}
}

func TestEvalBooleanExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"false", false},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		boolean, ok := result.(*object.Boolean)
		require.Truef(t, ok, "object is not Boolean, got %T (%+v)", result, result)
		assert.Equal(t, tt.expected, boolean.Value)
	}
}

func TestBangOperator(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"!true", false},
		{"!false", true},
		{"!5", false},
		{"!!true", true},
		{"!!false", false},
		{"!!5", true},
	}

	for _, tt := range tests {
		result := testEval(t, tt.input)
		boolean, ok := result.(*object.Boolean)
		require.Truef(t, ok, "object is not Boolean, got %T (%+v)", result, result)
		assert.Equal(t, tt.expected, boolean.Value)
	}
}

func TestUnsupportedExpressionsYieldNoValue(t *testing.T) {
	tests := []string{
		`x`,
		`if (true) { 1 }`,
		`fn(x) { x }`,
		`1 + 2`,
	}

	for _, input := range tests {
		result := testEval(t, input)
		assert.Nil(t, result)
	}
}

func TestEmptyProgramHasNoValue(t *testing.T) {
	assert.Nil(t, testEval(t, ""))
}

func TestMinusOnNonIntegerYieldsNoValue(t *testing.T) {
	assert.Nil(t, testEval(t, "-true"))
}

func TestProgramValueIsLastStatement(t *testing.T) {
	result := testEval(t, "5; true; 3")
	integer, ok := result.(*object.Integer)
	require.True(t, ok)
	assert.Equal(t, int64(3), integer.Value)
}

// sanity check that ast.Program round-trips through the evaluator the way
// the REPL drives it: parse, then evaluate the same tree.
func TestEvalAcceptsParsedProgram(t *testing.T) {
	l := lexer.New("1 + 1")
	p := parser.New(l)
	program := p.ParseProgram()
	require.IsType(t, &ast.Program{}, program)
	require.Empty(t, p.Errors())
	// 1 + 1 is an InfixExpression, unsupported by this core's evaluator.
	assert.Nil(t, Eval(program))
}
