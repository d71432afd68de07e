package tape

import "fmt"

// TokenType classifies a lexer token.
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenNewline
	TokenWord    // bare word, may contain key=value
	TokenString  // double-quoted string, unescaped
	TokenIllegal // e.g. unterminated string
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenNewline:
		return "newline"
	case TokenWord:
		return "word"
	case TokenString:
		return "string"
	case TokenIllegal:
		return "illegal"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token is one lexical unit with its 1-based position.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}
