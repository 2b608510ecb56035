/*
File    : sloth/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"
	"testing"

	"github.com/akashmaji946/sloth/ast"
	"github.com/akashmaji946/sloth/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	p := New(lexer.New(input))
	program := p.ParseProgram()
	require.Empty(t, p.Errors(), "parser errors: %v", p.Errors())
	return program
}

func TestVarStatements(t *testing.T) {
	tests := []struct {
		input         string
		expectedIdent string
	}{
		{"var x = 5;", "x"},
		{"var y = true;", "y"},
		{"var foobar = y;", "foobar"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		require.Len(t, program.Statements, 1)

		stmt, ok := program.Statements[0].(*ast.VarStatement)
		require.True(t, ok)
		assert.Equal(t, "var", stmt.TokenLiteral())
		assert.Equal(t, tt.expectedIdent, stmt.Name.Value)
	}
}

func TestReturnStatements(t *testing.T) {
	program := parseProgram(t, "return 5; return 10; return 993322;")
	require.Len(t, program.Statements, 3)

	for _, s := range program.Statements {
		stmt, ok := s.(*ast.ReturnStatement)
		require.True(t, ok)
		assert.Equal(t, "return", stmt.TokenLiteral())
	}
}

func TestIntegerLiteralExpression(t *testing.T) {
	program := parseProgram(t, "5;")
	require.Len(t, program.Statements, 1)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	lit, ok := stmt.Expression.(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, int64(5), lit.Value)
}

func TestStringLiteralExpression(t *testing.T) {
	program := parseProgram(t, `"hello world";`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	lit, ok := stmt.Expression.(*ast.StringLiteral)
	require.True(t, ok)
	assert.Equal(t, "hello world", lit.Value)
}

func TestParsingPrefixExpressions(t *testing.T) {
	tests := []struct {
		input    string
		operator string
	}{
		{"!5;", "!"},
		{"-15;", "-"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		expr, ok := stmt.Expression.(*ast.PrefixExpression)
		require.True(t, ok)
		assert.Equal(t, tt.operator, expr.Operator)
	}
}

func TestOperatorPrecedenceParsing(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{
			"3 + 4 * 5 == 3 * 1 + 4 * 5",
			"((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))",
		},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"2 / (5 + 5)", "(2 / (5 + 5))"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{
			"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))",
			"add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))",
		},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		assert.Equal(t, tt.expected, program.String(), "input: %s", tt.input)
	}
}

func TestIfElseExpression(t *testing.T) {
	program := parseProgram(t, "if (x < y) { x } else { y }")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	expr, ok := stmt.Expression.(*ast.IfElseExpression)
	require.True(t, ok)
	require.Len(t, expr.Consequence.Body, 1)
	require.NotNil(t, expr.Alternative)
	require.Len(t, expr.Alternative.Body, 1)
}

func TestIfExpressionNoAlternative(t *testing.T) {
	program := parseProgram(t, "if (x < y) { x }")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	expr, ok := stmt.Expression.(*ast.IfElseExpression)
	require.True(t, ok)
	assert.Nil(t, expr.Alternative)
}

func TestFunctionLiteralParsing(t *testing.T) {
	program := parseProgram(t, "func(x, y) { x + y; }")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	fn, ok := stmt.Expression.(*ast.FunctionLiteral)
	require.True(t, ok)
	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, "x", fn.Parameters[0].Value)
	assert.Equal(t, "y", fn.Parameters[1].Value)
	require.Len(t, fn.Body.Body, 1)
}

func TestFunctionParameterParsing(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"func() {};", []string{}},
		{"func(x) {};", []string{"x"}},
		{"func(x, y, z) {};", []string{"x", "y", "z"}},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		fn := stmt.Expression.(*ast.FunctionLiteral)

		require.Len(t, fn.Parameters, len(tt.expected))
		for i, ident := range tt.expected {
			assert.Equal(t, ident, fn.Parameters[i].Value)
		}
	}
}

func TestCallExpressionParsing(t *testing.T) {
	program := parseProgram(t, "add(1, 2 * 3, 4 + 5);")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	call, ok := stmt.Expression.(*ast.CallExpression)
	require.True(t, ok)

	ident, ok := call.Callee.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "add", ident.Value)
	require.Len(t, call.Arguments, 3)
}

func TestParserErrors_MissingPrefix(t *testing.T) {
	p := New(lexer.New(";"))
	p.ParseProgram()
	require.NotEmpty(t, p.Errors())
	assert.Contains(t, p.Errors()[0], "no prefix parser")
}

func TestParserErrors_MalformedGrouping(t *testing.T) {
	p := New(lexer.New("(1 + 2"))
	p.ParseProgram()
	require.NotEmpty(t, p.Errors())
}

func TestParserErrors_VarMissingAssign(t *testing.T) {
	p := New(lexer.New("var x 5;"))
	p.ParseProgram()
	require.NotEmpty(t, p.Errors())
}

func TestParserErrors_StillBuildsWhatItCan(t *testing.T) {
	p := New(lexer.New("var x = 5; @ var y = 10;"))
	program := p.ParseProgram()
	require.NotEmpty(t, p.Errors())
	// The well-formed statements around the error are still present.
	var varCount int
	for _, s := range program.Statements {
		if _, ok := s.(*ast.VarStatement); ok {
			varCount++
		}
	}
	assert.Equal(t, 2, varCount)
}

func TestIdentifierExpression(t *testing.T) {
	program := parseProgram(t, "foobar;")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	ident, ok := stmt.Expression.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "foobar", ident.Value)
	assert.Equal(t, "foobar", ident.TokenLiteral())
}

func TestBooleanExpression(t *testing.T) {
	for _, b := range []bool{true, false} {
		program := parseProgram(t, fmt.Sprintf("%t;", b))
		stmt := program.Statements[0].(*ast.ExpressionStatement)
		lit, ok := stmt.Expression.(*ast.BooleanLiteral)
		require.True(t, ok)
		assert.Equal(t, b, lit.Value)
	}
}
