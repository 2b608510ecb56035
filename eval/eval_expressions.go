/*
File    : sloth/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/sloth/ast"
	"github.com/akashmaji946/sloth/object"
)

// evalIdentifier looks a name up in the environment chain; a missing
// binding is a Fault, not a Go panic.
func evalIdentifier(node *ast.Identifier, env *object.Environment) object.Object {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	return newFault("name %s is not defined", node.Value)
}

// evalPrefixExpression dispatches `!` and `-`; any other prefix operator
// is a Fault.
func evalPrefixExpression(operator string, right object.Object) object.Object {
	switch operator {
	case "!":
		return evalBangOperatorExpression(right)
	case "-":
		return evalMinusPrefixOperatorExpression(right)
	default:
		return newFault("unknown operator: %s%s", operator, right.Type())
	}
}

// evalBangOperatorExpression: TRUE -> FALSE, FALSE -> TRUE, any Integer
// -> FALSE (including zero — `!` does not route through the general
// truthiness helper, it has its own Integer special case), NULL -> TRUE,
// anything else -> NULL.
func evalBangOperatorExpression(right object.Object) object.Object {
	switch right := right.(type) {
	case *object.Boolean:
		if right == object.TRUE {
			return object.FALSE
		}
		return object.TRUE
	case *object.Integer:
		return object.FALSE
	case *object.Null:
		return object.TRUE
	default:
		return object.NULL
	}
}

// evalMinusPrefixOperatorExpression: Integer(n) -> Integer(-n); any other
// value -> NULL.
func evalMinusPrefixOperatorExpression(right object.Object) object.Object {
	intVal, ok := right.(*object.Integer)
	if !ok {
		return object.NULL
	}
	return &object.Integer{Value: -intVal.Value}
}

// evalInfixExpression dispatches on the pair of already-evaluated
// operand kinds.
func evalInfixExpression(operator string, left, right object.Object) object.Object {
	switch {
	case left.Type() == object.IntegerObj && right.Type() == object.IntegerObj:
		return evalIntegerInfixExpression(operator, left.(*object.Integer), right.(*object.Integer))
	case left.Type() == object.BooleanObj && right.Type() == object.BooleanObj:
		return evalBooleanInfixExpression(operator, left.(*object.Boolean), right.(*object.Boolean))
	case left.Type() == object.StringObj && right.Type() == object.StringObj:
		return evalStringInfixExpression(operator, left.(*object.String), right.(*object.String))
	default:
		return newFault("%s and %s combination not supported", left.Type(), right.Type())
	}
}

func evalIntegerInfixExpression(operator string, left, right *object.Integer) object.Object {
	switch operator {
	case "+":
		return &object.Integer{Value: left.Value + right.Value}
	case "-":
		return &object.Integer{Value: left.Value - right.Value}
	case "*":
		return &object.Integer{Value: left.Value * right.Value}
	case "/":
		if right.Value == 0 {
			return newFault("can not divide by zero")
		}
		return &object.Integer{Value: left.Value / right.Value}
	case "==":
		return object.NativeBoolToBooleanObject(left.Value == right.Value)
	case "!=":
		return object.NativeBoolToBooleanObject(left.Value != right.Value)
	case "<":
		return object.NativeBoolToBooleanObject(left.Value < right.Value)
	case ">":
		return object.NativeBoolToBooleanObject(left.Value > right.Value)
	default:
		return newFault("unknown operator: INTEGER %s INTEGER", operator)
	}
}

func evalBooleanInfixExpression(operator string, left, right *object.Boolean) object.Object {
	switch operator {
	case "==":
		return object.NativeBoolToBooleanObject(left == right)
	case "!=":
		return object.NativeBoolToBooleanObject(left != right)
	default:
		return newFault("operator \"%s\" for BOOLEAN is not supported", operator)
	}
}

func evalStringInfixExpression(operator string, left, right *object.String) object.Object {
	switch operator {
	case "+":
		return &object.String{Value: left.Value + right.Value}
	default:
		return newFault("operator \"%s\" for STRING is not supported", operator)
	}
}

// isTruthy implements the truthiness rule used by `if`: exactly FALSE,
// NULL, and Integer(0) are falsy.
func isTruthy(obj object.Object) bool {
	switch obj := obj.(type) {
	case *object.Boolean:
		return obj != object.FALSE
	case *object.Null:
		return false
	case *object.Integer:
		return obj.Value != 0
	default:
		return true
	}
}
