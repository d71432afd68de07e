package tape

import "testing"

func TestLexerTokens(t *testing.T) {
	input := "Panel main 0 0 5 10 border # trailing comment\n" +
		"# full line comment\n" +
		"Write main 1 2 \"say \\\"hi\\\" \\\\ ok\" fg=\"#ff0000\"\n"

	want := []Token{
		{Type: TokenWord, Literal: "Panel", Line: 1, Column: 1},
		{Type: TokenWord, Literal: "main", Line: 1, Column: 7},
		{Type: TokenWord, Literal: "0", Line: 1, Column: 12},
		{Type: TokenWord, Literal: "0", Line: 1, Column: 14},
		{Type: TokenWord, Literal: "5", Line: 1, Column: 16},
		{Type: TokenWord, Literal: "10", Line: 1, Column: 18},
		{Type: TokenWord, Literal: "border", Line: 1, Column: 21},
		{Type: TokenNewline, Literal: "\n", Line: 1, Column: 46},
		{Type: TokenNewline, Literal: "\n", Line: 2, Column: 20},
		{Type: TokenWord, Literal: "Write", Line: 3, Column: 1},
		{Type: TokenWord, Literal: "main", Line: 3, Column: 7},
		{Type: TokenWord, Literal: "1", Line: 3, Column: 12},
		{Type: TokenWord, Literal: "2", Line: 3, Column: 14},
		{Type: TokenString, Literal: `say "hi" \ ok`, Line: 3, Column: 16},
		{Type: TokenWord, Literal: "fg=#ff0000", Line: 3, Column: 35},
		{Type: TokenNewline, Literal: "\n", Line: 3, Column: 47},
		{Type: TokenEOF, Line: 4, Column: 1},
	}

	l := New(input)
	for i, w := range want {
		got := l.NextToken()
		if got != w {
			t.Fatalf("token %d = %+v, want %+v", i, got, w)
		}
	}
	if tok := l.NextToken(); tok.Type != TokenEOF {
		t.Errorf("after EOF got %+v", tok)
	}
}

func TestLexerUnterminatedString(t *testing.T) {
	l := New("Write p 0 0 \"oops\nRefresh")
	var types []TokenType
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == TokenEOF {
			break
		}
	}
	want := []TokenType{TokenWord, TokenWord, TokenWord, TokenWord, TokenIllegal, TokenNewline, TokenWord, TokenEOF}
	if len(types) != len(want) {
		t.Fatalf("types = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, types[i], want[i])
		}
	}
}
