package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenScannerRead(t *testing.T) {
	scanner := NewTokenScanner(NewLexer("a b"))

	token, ok := scanner.Read()
	require.True(t, ok)
	assert.Equal(t, Token{Kind: IDENT, Len: 1}, token)

	token, ok = scanner.Read()
	require.True(t, ok)
	assert.Equal(t, Token{Kind: WHITESPACE, Len: 1}, token)

	token, ok = scanner.Read()
	require.True(t, ok)
	assert.Equal(t, Token{Kind: IDENT, Len: 1}, token)

	_, ok = scanner.Read()
	assert.False(t, ok)
}

func TestTokenScannerUnread(t *testing.T) {
	scanner := NewTokenScanner(NewLexer(";!"))

	token, ok := scanner.Read()
	require.True(t, ok)
	assert.Equal(t, SEMICOLON, token.Kind)

	scanner.Unread()

	// The pushed-back token comes out again before the stream resumes
	token, ok = scanner.Read()
	require.True(t, ok)
	assert.Equal(t, SEMICOLON, token.Kind)

	token, ok = scanner.Read()
	require.True(t, ok)
	assert.Equal(t, XMARK, token.Kind)
}

func TestTokenScannerUnreadWithoutRead(t *testing.T) {
	scanner := NewTokenScanner(NewLexer("a"))

	assert.Panics(t, func() {
		scanner.Unread()
	})
}

func TestTokenScannerUnreadTwice(t *testing.T) {
	scanner := NewTokenScanner(NewLexer("a b"))

	_, _ = scanner.Read()
	scanner.Unread()

	assert.Panics(t, func() {
		scanner.Unread()
	})
}
