package lexer

import (
	"fmt"

	"github.com/fennec-lang/fennec/internal/compiler_errors"
)

// The lexer itself never fails: bad input shapes travel through the token
// stream as data. Diagnose is the downstream judgment, turning UNKNOWN
// tokens and unterminated literals into reportable errors.

type LexerError struct {
	Message string
}

func newUnexpectedError(unexpected string) *LexerError {
	return &LexerError{
		Message: fmt.Sprintf("unexpected character: '%s'", unexpected),
	}
}

func newUnterminatedLiteralError(literal string) *LexerError {
	return &LexerError{
		Message: fmt.Sprintf("unterminated string literal: %s", literal),
	}
}

func (e *LexerError) GetMessage() string {
	return e.Message
}

// Diagnose walks a token stream produced from input and reports every
// UNKNOWN token and unterminated literal to the error handler. Token
// lengths partition the input, so the offending text is recovered by
// accumulating lengths over the input's codepoints.
func Diagnose(input string, tokens []Token, eh compiler_errors.ErrorHandler) {
	runes := []rune(input)

	offset := 0
	for _, token := range tokens {
		text := string(runes[offset : offset+token.Len])
		offset += token.Len

		switch {
		case token.Kind == UNKNOWN:
			eh.AddError(newUnexpectedError(text))

		case token.Kind == LITERAL && !token.Lit.Terminated:
			eh.AddError(newUnterminatedLiteralError(text))
		}
	}
}
