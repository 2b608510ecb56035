/*
File    : sloth/token/token_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdent_Keywords(t *testing.T) {
	cases := map[string]Type{
		"var":    VAR,
		"func":   FUNC,
		"return": RETURN,
		"if":     IF,
		"else":   ELSE,
		"true":   TRUE,
		"false":  FALSE,
	}

	for word, want := range cases {
		assert.Equal(t, want, LookupIdent(word), "word %q", word)
	}
}

func TestLookupIdent_PlainIdentifier(t *testing.T) {
	assert.Equal(t, IDENT, LookupIdent("x"))
	assert.Equal(t, IDENT, LookupIdent("variable"))
	assert.Equal(t, IDENT, LookupIdent("_private"))
}

func TestNew(t *testing.T) {
	tok := New(PLUS, "+")
	assert.Equal(t, PLUS, tok.Type)
	assert.Equal(t, "+", tok.Literal)
}
