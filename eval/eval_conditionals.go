/*
File    : sloth/eval/eval_conditionals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/sloth/ast"
	"github.com/akashmaji946/sloth/object"
)

// evalIfElseExpression evaluates the condition, then the consequence if
// truthy, else the alternative if present, else NULL.
func evalIfElseExpression(ie *ast.IfElseExpression, env *object.Environment) object.Object {
	condition := Eval(ie.Condition, env)
	if isFault(condition) {
		return condition
	}

	if isTruthy(condition) {
		return Eval(ie.Consequence, env)
	} else if ie.Alternative != nil {
		return Eval(ie.Alternative, env)
	}

	return object.NULL
}
