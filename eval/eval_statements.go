/*
File    : sloth/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/sloth/ast"
	"github.com/akashmaji946/sloth/object"
)

// evalProgram evaluates the program's statements in order and returns
// the last value, short-circuiting on Fault or return. Program is the
// outermost boundary, so — unlike evalBlockStatement — it unwraps a
// returnValue to the plain object it carries: a top-level `return` is
// not inside any function, so nothing else will ever unwrap it.
func evalProgram(program *ast.Program, env *object.Environment) object.Object {
	var result object.Object = object.NULL

	for _, stmt := range program.Statements {
		result = Eval(stmt, env)

		switch result := result.(type) {
		case *object.Fault:
			return result
		case *returnValue:
			return result.Value
		}
	}

	return result
}

// evalBlockStatement evaluates a block's statements in order, sharing
// the enclosing environment. Unlike evalProgram, it does NOT unwrap a
// returnValue — it propagates the wrapper unchanged so an enclosing
// block (or, ultimately, the call boundary) can see the return signal
// and stop executing its own remaining statements too.
func evalBlockStatement(block *ast.BlockStatement, env *object.Environment) object.Object {
	var result object.Object = object.NULL

	for _, stmt := range block.Body {
		result = Eval(stmt, env)

		if result != nil {
			rt := result.Type()
			if rt == object.FaultObj || rt == returnValueObj {
				return result
			}
		}
	}

	return result
}

const returnValueObj object.Type = "RETURN_VALUE"
