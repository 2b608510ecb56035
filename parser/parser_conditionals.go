/*
File    : sloth/parser/parser_conditionals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/sloth/ast"
	"github.com/akashmaji946/sloth/token"
)

// parseIfElseExpression requires `(`, parses the condition at LOWEST,
// requires `)` then `{`, parses the consequence block; if the following
// token is ELSE and then `{`, parses an alternative block, otherwise
// Alternative stays nil.
func (p *Parser) parseIfElseExpression() ast.Expression {
	expr := &ast.IfElseExpression{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	p.nextToken()
	expr.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	expr.Consequence = p.parseBlockStatement()

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()

		if !p.expectPeek(token.LBRACE) {
			return nil
		}

		expr.Alternative = p.parseBlockStatement()
	}

	return expr
}
