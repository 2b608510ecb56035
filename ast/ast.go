/*
File    : sloth/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the closed set of AST node variants the parser
// builds and the evaluator walks: Program, four Statement variants, and
// nine Expression variants. Every node retains the token that produced
// it so String() can reproduce the surface operator text. String()
// parenthesizes every prefix and infix expression per precedence, so the
// output for an operator expression re-parses to the same tree. Block
// bodies are printed without braces and statements without separators,
// so the output for if/func expressions and multi-statement programs
// does not re-parse to the same tree.
package ast

import (
	"bytes"

	"github.com/akashmaji946/sloth/token"
)

// Node is the root of the AST interface hierarchy. TokenLiteral exists
// mainly for debugging; String is what pretty-printing and re-parse
// round-tripping rely on.
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement is a Node that occupies a statement position: a top-level or
// block-body slot.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that produces a value. An absent expression is
// always recorded as a parse error; a tree built from input with parse
// errors can hold a nil Expression in the position that failed.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root node: an ordered sequence of top-level statements.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

// Identifier is a name reference, either in expression position or as a
// binding target (VarStatement.Name, FunctionLiteral.Parameters).
type Identifier struct {
	Token token.Token // the token.IDENT token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }
