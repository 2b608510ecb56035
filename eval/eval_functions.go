/*
File    : sloth/eval/eval_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/sloth/ast"
	"github.com/akashmaji946/sloth/object"
)

// evalCallExpression evaluates the callee, evaluates arguments strictly
// left-to-right in the caller's environment, checks arity, binds
// parameters in a new environment whose outer link is the function's
// *captured* environment (not the caller's), evaluates the body there,
// and unwraps a return signal.
func evalCallExpression(ce *ast.CallExpression, env *object.Environment) object.Object {
	callee := Eval(ce.Callee, env)
	if isFault(callee) {
		return callee
	}

	fn, ok := callee.(*object.Function)
	if !ok {
		return newFault("not a function: %s", callee.Type())
	}

	args := evalExpressions(ce.Arguments, env)
	if len(args) == 1 && isFault(args[0]) {
		return args[0]
	}

	if len(args) != len(fn.Parameters) {
		return newFault("arguments passed %d, expected %d", len(args), len(fn.Parameters))
	}

	callEnv := extendFunctionEnv(fn, args)
	evaluated := Eval(fn.Body, callEnv)

	return unwrapReturnValue(evaluated)
}

// evalExpressions evaluates each expression in order, in env, stopping
// at the first Fault it produces.
func evalExpressions(exps []ast.Expression, env *object.Environment) []object.Object {
	var result []object.Object

	for _, e := range exps {
		evaluated := Eval(e, env)
		if isFault(evaluated) {
			return []object.Object{evaluated}
		}
		result = append(result, evaluated)
	}

	return result
}

// extendFunctionEnv builds the call's fresh environment: a new scope
// enclosing the function's captured environment, with parameters bound
// to the supplied arguments.
func extendFunctionEnv(fn *object.Function, args []object.Object) *object.Environment {
	env := object.NewEnclosedEnvironment(fn.Env)

	for i, param := range fn.Parameters {
		env.Set(param.Value, args[i])
	}

	return env
}

// unwrapReturnValue converts a Returning signal into the call's plain
// result; a non-return value (the body's last statement) passes through
// unchanged.
func unwrapReturnValue(obj object.Object) object.Object {
	if rv, ok := obj.(*returnValue); ok {
		return rv.Value
	}
	return obj
}
