package tape

import "strings"

// Lexer splits a tape script into tokens. A '#' where a token would start
// begins a comment running to the end of the line.
type Lexer struct {
	input  string
	pos    int
	line   int
	column int
}

// New creates a lexer over input.
func New(input string) *Lexer {
	return &Lexer{input: input, line: 1, column: 1}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) advance() byte {
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

// NextToken returns the next token. After the input is exhausted it keeps
// returning TokenEOF.
func (l *Lexer) NextToken() Token {
	l.skipBlank()
	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Line: l.line, Column: l.column}
	}

	line, col := l.line, l.column
	if l.peek() == '\n' {
		l.advance()
		return Token{Type: TokenNewline, Literal: "\n", Line: line, Column: col}
	}
	if l.peek() == '"' {
		s, ok := l.readQuoted()
		if !ok {
			return Token{Type: TokenIllegal, Literal: "unterminated string", Line: line, Column: col}
		}
		return Token{Type: TokenString, Literal: s, Line: line, Column: col}
	}

	var sb strings.Builder
	for l.pos < len(l.input) {
		ch := l.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			break
		}
		if ch == '"' {
			s, ok := l.readQuoted()
			if !ok {
				return Token{Type: TokenIllegal, Literal: "unterminated string", Line: line, Column: col}
			}
			sb.WriteString(s)
			continue
		}
		sb.WriteByte(l.advance())
	}
	return Token{Type: TokenWord, Literal: sb.String(), Line: line, Column: col}
}

func (l *Lexer) skipBlank() {
	for l.pos < len(l.input) {
		switch l.peek() {
		case ' ', '\t', '\r':
			l.advance()
		case '#':
			for l.pos < len(l.input) && l.peek() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

// readQuoted consumes a double-quoted string starting at the opening quote.
// \" and \\ are the only escapes; other backslashes are kept.
func (l *Lexer) readQuoted() (string, bool) {
	l.advance() // opening quote
	var sb strings.Builder
	for l.pos < len(l.input) && l.peek() != '\n' {
		ch := l.advance()
		switch {
		case ch == '"':
			return sb.String(), true
		case ch == '\\' && (l.peek() == '"' || l.peek() == '\\'):
			sb.WriteByte(l.advance())
		default:
			sb.WriteByte(ch)
		}
	}
	return "", false
}
