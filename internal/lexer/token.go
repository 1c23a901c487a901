package lexer

import (
	"fmt"
)

type TokenKind int

const (
	// Multi-codepoint tokens
	WHITESPACE TokenKind = iota
	IDENT
	LITERAL

	// Single-codepoint tokens
	SEMICOLON // ;
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	XMARK     // !

	UNKNOWN
)

func (tk TokenKind) String() string {
	switch tk {
	case WHITESPACE:
		return "WHITESPACE"
	case IDENT:
		return "IDENT"
	case LITERAL:
		return "LITERAL"
	case SEMICOLON:
		return "SEMICOLON"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case LBRACE:
		return "LBRACE"
	case RBRACE:
		return "RBRACE"
	case XMARK:
		return "XMARK"
	case UNKNOWN:
		return "UNKNOWN"
	default:
		panic(fmt.Sprintf("TokenKind.String(): received illegal token kind: %d", tk))
	}
}

type LitKind int

const (
	STR LitKind = iota
)

func (lk LitKind) String() string {
	switch lk {
	case STR:
		return "STR"
	default:
		panic(fmt.Sprintf("LitKind.String(): received illegal literal kind: %d", lk))
	}
}

// Lit describes a literal token. Terminated is false when the input ran out
// before the closing delimiter; the literal is still emitted as data and a
// later stage decides how to report it.
type Lit struct {
	Kind       LitKind
	Terminated bool
}

// Token is a classified span of the input. Len is the number of codepoints
// from the start of this token up to the start of the next one; keywords are
// not distinguished from identifiers at this layer.
type Token struct {
	Kind TokenKind
	Lit  Lit // meaningful only when Kind == LITERAL
	Len  int
}

func (t *Token) String() string {
	if t.Kind == LITERAL {
		return fmt.Sprintf("%s(%s, terminated: %t, %d)", t.Kind, t.Lit.Kind, t.Lit.Terminated, t.Len)
	}

	return fmt.Sprintf("%s(%d)", t.Kind, t.Len)
}
