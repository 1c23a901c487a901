package lexer

import "unicode"

// ASCII lookup tables for identifier classification; codepoints above 127
// fall back to the unicode package.
var (
	asciiIdentStart [128]bool
	asciiIdentPart  [128]bool
)

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)
		letter := ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
		digit := '0' <= ch && ch <= '9'

		asciiIdentStart[i] = letter || ch == '_'
		asciiIdentPart[i] = letter || digit || ch == '_'
	}
}

// isWhitespace matches exactly space, tab and newline. This is a fixed set,
// not the full Unicode whitespace category.
func isWhitespace(c rune) bool {
	switch c {
	case ' ', '\t', '\n':
		return true
	}

	return false
}

// isIdentStart matches underscore or any letter.
func isIdentStart(c rune) bool {
	if c < 128 {
		return asciiIdentStart[c]
	}

	return unicode.IsLetter(c)
}

// isIdentPart matches letters, digits and underscore.
func isIdentPart(c rune) bool {
	if c < 128 {
		return asciiIdentPart[c]
	}

	return unicode.IsLetter(c) || unicode.IsDigit(c)
}
