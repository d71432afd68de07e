package tape

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// ParseError is a problem on one script line.
type ParseError struct {
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d:%d: %s", e.Line, e.Column, e.Message)
}

// Parser turns lexer tokens into validated commands. Lines with errors are
// skipped and reported by Errors.
type Parser struct {
	l      *Lexer
	errors []*ParseError
}

// NewParser creates a parser reading from l.
func NewParser(l *Lexer) *Parser {
	return &Parser{l: l}
}

// Errors returns every problem found by Parse.
func (p *Parser) Errors() []*ParseError {
	return p.errors
}

// Err joins Errors into one error, or returns nil.
func (p *Parser) Err() error {
	errs := make([]error, len(p.errors))
	for i, e := range p.errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

func (p *Parser) errorf(tok Token, format string, args ...any) {
	p.errors = append(p.errors, &ParseError{Line: tok.Line, Column: tok.Column, Message: fmt.Sprintf(format, args...)})
}

// Parse reads the whole script.
func (p *Parser) Parse() []Command {
	var commands []Command
	for {
		line, eof := p.readLine()
		if len(line) > 0 {
			if cmd, ok := p.parseLine(line); ok {
				commands = append(commands, cmd)
			}
		}
		if eof {
			return commands
		}
	}
}

func (p *Parser) readLine() ([]Token, bool) {
	var line []Token
	for {
		tok := p.l.NextToken()
		switch tok.Type {
		case TokenEOF:
			return line, true
		case TokenNewline:
			return line, false
		default:
			line = append(line, tok)
		}
	}
}

func (p *Parser) parseLine(line []Token) (Command, bool) {
	for _, tok := range line {
		if tok.Type == TokenIllegal {
			p.errorf(tok, "%s", tok.Literal)
			return Command{}, false
		}
	}

	head := line[0]
	if head.Type != TokenWord {
		p.errorf(head, "expected command, got %s", head.Type)
		return Command{}, false
	}
	ct, ok := lookupCommand(head.Literal)
	if !ok {
		p.errorf(head, "unknown command %q", head.Literal)
		return Command{}, false
	}
	spec := commandSpecs[ct]
	cmd := Command{Type: ct, Line: head.Line}

	var positional []Token
	for _, tok := range line[1:] {
		if key, value, isOpt := splitOption(tok); isOpt {
			if !slices.Contains(spec.options, key) {
				p.errorf(tok, "%s does not accept option %q", ct, key)
				return Command{}, false
			}
			if cmd.Options == nil {
				cmd.Options = make(map[string]string)
			}
			cmd.Options[key] = value
			continue
		}
		positional = append(positional, tok)
	}

	required := len(spec.args) - spec.optional
	if len(positional) < required || len(positional) > len(spec.args) {
		want := strconv.Itoa(required)
		if spec.optional > 0 {
			want = fmt.Sprintf("%d to %d", required, len(spec.args))
		}
		p.errorf(head, "%s takes %s argument(s), got %d", ct, want, len(positional))
		return Command{}, false
	}

	for i, tok := range positional {
		if !p.checkArg(spec, spec.args[i], tok) {
			return Command{}, false
		}
		cmd.Args = append(cmd.Args, tok.Literal)
	}
	return cmd, true
}

func (p *Parser) checkArg(spec commandSpec, kind argKind, tok Token) bool {
	switch kind {
	case argName:
		if tok.Literal == "" {
			p.errorf(tok, "empty panel name")
			return false
		}
	case argInt:
		if _, err := strconv.Atoi(tok.Literal); err != nil {
			p.errorf(tok, "expected integer, got %q", tok.Literal)
			return false
		}
	case argDuration:
		if _, err := time.ParseDuration(tok.Literal); err != nil {
			p.errorf(tok, "invalid duration %q", tok.Literal)
			return false
		}
	case argFlag:
		if !strings.EqualFold(tok.Literal, spec.flag) {
			p.errorf(tok, "expected %q, got %q", spec.flag, tok.Literal)
			return false
		}
	}
	return true
}

// splitOption recognizes key=value words with a lowercase alphabetic key.
func splitOption(tok Token) (key, value string, ok bool) {
	if tok.Type != TokenWord {
		return "", "", false
	}
	key, value, found := strings.Cut(tok.Literal, "=")
	if !found || key == "" {
		return "", "", false
	}
	for i := 0; i < len(key); i++ {
		if key[i] < 'a' || key[i] > 'z' {
			return "", "", false
		}
	}
	return key, value, true
}

// ParseScript lexes and parses src, failing if any line is invalid.
func ParseScript(src string) ([]Command, error) {
	p := NewParser(New(src))
	cmds := p.Parse()
	if err := p.Err(); err != nil {
		return nil, err
	}
	return cmds, nil
}
