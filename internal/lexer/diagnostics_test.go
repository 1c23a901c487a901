package lexer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fennec-lang/fennec/internal/compiler_errors"
)

func TestDiagnoseCleanInput(t *testing.T) {
	input := "fn main() {\n}"

	var out bytes.Buffer
	eh := compiler_errors.NewErrorHandler(&out)

	Diagnose(input, collectTokens(input), eh)

	assert.False(t, eh.HasErrors())
}

func TestDiagnoseUnknownToken(t *testing.T) {
	input := "fn # main"

	var out bytes.Buffer
	eh := compiler_errors.NewErrorHandler(&out)

	Diagnose(input, collectTokens(input), eh)
	assert.True(t, eh.HasErrors())

	eh.Report()
	assert.Contains(t, out.String(), "unexpected character: '#'")
}

func TestDiagnoseUnterminatedLiteral(t *testing.T) {
	input := `fn "hi`

	var out bytes.Buffer
	eh := compiler_errors.NewErrorHandler(&out)

	Diagnose(input, collectTokens(input), eh)
	assert.True(t, eh.HasErrors())

	eh.Report()
	assert.Contains(t, out.String(), `unterminated string literal: "hi`)
}

func TestDiagnoseRecoversUnicodeText(t *testing.T) {
	// Offsets are codepoint-based, so the offending text must come out
	// right even after multi-byte identifiers.
	input := "héllo ¤"

	var out bytes.Buffer
	eh := compiler_errors.NewErrorHandler(&out)

	Diagnose(input, collectTokens(input), eh)
	assert.True(t, eh.HasErrors())

	eh.Report()
	assert.Contains(t, out.String(), "unexpected character: '¤'")
}
