/*
File    : sloth/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements Sloth's tree-walking evaluator: a recursive
// Eval(node, env) that dispatches on the closed ast.Node sum and
// produces object.Object values over a chain of object.Environment
// scopes.
//
// Non-local control flow for `return` and Fault is modeled as a result
// wrapper rather than a host exception: returnValue wraps a returned
// value and is unwrapped at the nearest function-call boundary;
// object.Fault already carries enough information to be its own signal,
// since a Fault is absorbed by propagating unchanged until the
// top-level sequence returns it.
package eval

import (
	"fmt"

	"github.com/akashmaji946/sloth/ast"
	"github.com/akashmaji946/sloth/object"
)

// returnValue wraps the value carried by a ReturnStatement as it
// unwinds through nested blocks. The function-call boundary converts it
// back to a plain object.Object; Program, being outermost, also unwraps
// it since there is no further boundary to cross.
type returnValue struct {
	Value object.Object
}

func (rv *returnValue) Type() object.Type { return returnValueObj }
func (rv *returnValue) Inspect() string   { return rv.Value.Inspect() }

// Eval walks node, dispatching on its concrete type, and returns the
// object.Object it evaluates to.
func Eval(node ast.Node, env *object.Environment) object.Object {
	switch node := node.(type) {

	case *ast.Program:
		return evalProgram(node, env)

	case *ast.ExpressionStatement:
		return Eval(node.Expression, env)

	case *ast.BlockStatement:
		return evalBlockStatement(node, env)

	case *ast.VarStatement:
		val := Eval(node.Value, env)
		if isFault(val) {
			return val
		}
		env.Set(node.Name.Value, val)
		return object.NULL

	case *ast.ReturnStatement:
		val := Eval(node.Expression, env)
		if isFault(val) {
			return val
		}
		return &returnValue{Value: val}

	case *ast.IntegerLiteral:
		return &object.Integer{Value: node.Value}

	case *ast.StringLiteral:
		return &object.String{Value: node.Value}

	case *ast.BooleanLiteral:
		return object.NativeBoolToBooleanObject(node.Value)

	case *ast.Identifier:
		return evalIdentifier(node, env)

	case *ast.PrefixExpression:
		right := Eval(node.Right, env)
		if isFault(right) {
			return right
		}
		return evalPrefixExpression(node.Operator, right)

	case *ast.InfixExpression:
		left := Eval(node.Left, env)
		if isFault(left) {
			return left
		}
		right := Eval(node.Right, env)
		if isFault(right) {
			return right
		}
		return evalInfixExpression(node.Operator, left, right)

	case *ast.IfElseExpression:
		return evalIfElseExpression(node, env)

	case *ast.FunctionLiteral:
		return &object.Function{Parameters: node.Parameters, Body: node.Body, Env: env}

	case *ast.CallExpression:
		return evalCallExpression(node, env)
	}

	return object.NULL
}

func isFault(obj object.Object) bool {
	if obj == nil {
		return false
	}
	return obj.Type() == object.FaultObj
}

func newFault(format string, a ...interface{}) *object.Fault {
	return &object.Fault{Message: fmt.Sprintf(format, a...)}
}
