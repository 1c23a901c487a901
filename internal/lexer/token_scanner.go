package lexer

// TokenScanner reads tokens one at a time with single-token unread. This is
// the boundary a parser pulls from; tokens are scanned on demand, never
// ahead of the reader.
type TokenScanner interface {
	Read() (Token, bool)
	Unread()
}

type lexerTokenScanner struct {
	lexer *Lexer

	pending    Token
	hasPending bool
	last       Token
	canUnread  bool
}

func NewTokenScanner(lexer *Lexer) TokenScanner {
	return &lexerTokenScanner{
		lexer: lexer,
	}
}

func (s *lexerTokenScanner) Read() (Token, bool) {
	if s.hasPending {
		s.hasPending = false
		s.canUnread = true

		return s.pending, true
	}

	token, ok := s.lexer.NextToken()
	if !ok {
		return Token{}, false
	}

	s.last = token
	s.canUnread = true

	return token, true
}

// Unread pushes the last read token back so the next Read returns it again.
// Only one token of lookback is kept.
func (s *lexerTokenScanner) Unread() {
	if !s.canUnread {
		panic("lexer: Unread called without a preceding Read")
	}

	s.pending = s.last
	s.hasPending = true
	s.canUnread = false
}
