package lexer

import (
	"iter"
	"log/slog"
	"os"

	"github.com/xyproto/env/v2"
)

// Lexer classifies an input string into a stream of tokens. Each Lexer owns
// one Cursor for the lifetime of a single tokenization run; nothing is
// shared between runs.
type Lexer struct {
	cursor *Cursor
	logger *slog.Logger
}

func NewLexer(input string) *Lexer {
	return &Lexer{
		cursor: NewCursor(input),
		logger: newDebugLogger(),
	}
}

// newDebugLogger builds the lexer's logger. Debug output is off unless the
// FENNEC_DEBUG_LEXER environment variable is set.
func newDebugLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if env.Bool("FENNEC_DEBUG_LEXER") {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Timestamps are noise when tracing token scans
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// Tokenize lexes input as a lazy sequence of tokens. Exactly one token is
// scanned per pull, so the scan for token N+1 never runs before token N has
// been consumed; the sequence ends exactly when the input does. Every
// codepoint of the input belongs to exactly one token.
func Tokenize(input string) iter.Seq[Token] {
	l := NewLexer(input)
	return func(yield func(Token) bool) {
		for {
			token, ok := l.NextToken()
			if !ok {
				return
			}
			if !yield(token) {
				return
			}
		}
	}
}

// NextToken scans and returns the next token. The second return is false
// once the input is exhausted.
func (l *Lexer) NextToken() (Token, bool) {
	if l.cursor.IsEmpty() {
		return Token{}, false
	}

	l.cursor.resetLenConsumed()
	token := l.eatToken()

	l.logger.Debug("scanned token",
		"kind", token.Kind.String(),
		"len", token.Len)

	return token, true
}

// eatToken consumes exactly one token worth of input. The first codepoint
// picks the scan rule. Must only be called with a non-empty cursor; an empty
// cursor here means the driving loop is broken, not that the input is bad.
func (l *Lexer) eatToken() Token {
	first, ok := l.cursor.Advance()
	if !ok {
		panic("lexer: eatToken called with an empty cursor")
	}

	var kind TokenKind
	var lit Lit

	switch {
	case isWhitespace(first):
		l.cursor.AdvanceWhile(isWhitespace)
		kind = WHITESPACE

	case isIdentStart(first):
		l.cursor.AdvanceWhile(isIdentPart)
		kind = IDENT

	case first == '"':
		kind = LITERAL
		lit = Lit{Kind: STR, Terminated: l.eatStringLiteral()}

	default:
		kind = singleCharKind(first)
	}

	return Token{
		Kind: kind,
		Lit:  lit,
		Len:  l.cursor.LenConsumed(),
	}
}

// eatStringLiteral scans past the opening quote looking for the closing one
// and reports whether it was found before the input ran out. Escapes are not
// processed at this layer: a backslash is ordinary content, so a literal
// containing `\"` terminates early. A later stage deals with that.
func (l *Lexer) eatStringLiteral() bool {
	for {
		c, ok := l.cursor.Advance()
		if !ok {
			return false
		}
		if c == '"' {
			return true
		}
	}
}

// singleCharKind maps recognized single-codepoint tokens to their kind;
// everything unrecognized becomes UNKNOWN.
func singleCharKind(c rune) TokenKind {
	switch c {
	case ';':
		return SEMICOLON
	case '(':
		return LPAREN
	case ')':
		return RPAREN
	case '{':
		return LBRACE
	case '}':
		return RBRACE
	case '!':
		return XMARK
	}

	return UNKNOWN
}
