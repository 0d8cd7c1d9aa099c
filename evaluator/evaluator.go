/*
File    : monkeylang/evaluator/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package evaluator walks the AST produced by the parser and reduces it
// to runtime objects. Evaluation is recursive, synchronous, and pure: no
// side effects, no shared state across calls.
//
// This core evaluates integers, booleans, and the prefix operators `!`
// and `-`; every other expression and statement variant is recognized by
// the parser but is not evaluated here (per the language's scoped object
// model), and Eval returns nil — an absent value rather than an error —
// for any of them.
package evaluator

import (
	"github.com/akashmaji946/monkeylang/ast"
	"github.com/akashmaji946/monkeylang/object"
)

// Eval evaluates program, returning the last statement's value, or nil if
// the program is empty or its statements produced no value.
func Eval(program *ast.Program) object.Object {
	var result object.Object

	for _, stmt := range program.Statements {
		result = evalStatement(stmt)
	}

	return result
}

// evalStatement evaluates a single top-level statement. Only expression
// statements carry a value in this core; let/return are parsed but their
// evaluation semantics are out of scope, so they yield no value.
func evalStatement(stmt ast.Statement) object.Object {
	switch stmt := stmt.(type) {
	case *ast.ExpressionStatement:
		return evalExpression(stmt.Expression)
	default:
		return nil
	}
}

// evalExpression dispatches on the concrete expression variant. Variants
// beyond integer/boolean literals and the two prefix operators are
// unsupported in this core and evaluate to nil.
func evalExpression(expr ast.Expression) object.Object {
	switch expr := expr.(type) {
	case *ast.IntegerLiteral:
		return &object.Integer{Value: expr.Value}
	case *ast.BooleanLiteral:
		return nativeBoolToBooleanObject(expr.Value)
	case *ast.PrefixExpression:
		right := evalExpression(expr.Right)
		return evalPrefixExpression(expr.Operator, right)
	default:
		return nil
	}
}

func evalPrefixExpression(operator string, right object.Object) object.Object {
	switch operator {
	case "!":
		return evalBangOperatorExpression(right)
	case "-":
		return evalMinusPrefixOperatorExpression(right)
	default:
		return nil
	}
}

// evalBangOperatorExpression implements `!` per its truth table:
// Boolean(false) and Null negate to true, Boolean(true) negates to
// false, and any other operand (including an unsupported/absent one)
// also negates to false.
func evalBangOperatorExpression(right object.Object) object.Object {
	switch right {
	case object.TRUE:
		return object.FALSE
	case object.FALSE:
		return object.TRUE
	case object.NULL:
		return object.TRUE
	default:
		return object.FALSE
	}
}

// evalMinusPrefixOperatorExpression implements unary `-`: negates an
// Integer operand, and yields no value for anything else.
func evalMinusPrefixOperatorExpression(right object.Object) object.Object {
	intObj, ok := right.(*object.Integer)
	if !ok {
		return nil
	}
	return &object.Integer{Value: -intObj.Value}
}

func nativeBoolToBooleanObject(value bool) *object.Boolean {
	if value {
		return object.TRUE
	}
	return object.FALSE
}
