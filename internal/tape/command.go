package tape

import (
	"strconv"
	"strings"
	"time"
)

// CommandType names a tape command.
type CommandType string

const (
	CommandTypePanel    CommandType = "Panel"
	CommandTypeWrite    CommandType = "Write"
	CommandTypeBorder   CommandType = "Border"
	CommandTypeNoBorder CommandType = "NoBorder"
	CommandTypeMove     CommandType = "Move"
	CommandTypeResize   CommandType = "Resize"
	CommandTypeTop      CommandType = "Top"
	CommandTypeBottom   CommandType = "Bottom"
	CommandTypeRemove   CommandType = "Remove"
	CommandTypeRefresh  CommandType = "Refresh"
	CommandTypeSleep    CommandType = "Sleep"
)

// argKind describes how a positional argument is checked.
type argKind int

const (
	argName argKind = iota
	argInt
	argText
	argDuration
	argFlag // literal keyword, see commandSpec.flag
)

type commandSpec struct {
	args     []argKind
	optional int      // trailing args that may be omitted
	options  []string // allowed key=value options
	flag     string   // keyword accepted by argFlag
}

var commandSpecs = map[CommandType]commandSpec{
	CommandTypePanel:    {args: []argKind{argName, argInt, argInt, argInt, argInt, argFlag}, optional: 1, flag: "border"},
	CommandTypeWrite:    {args: []argKind{argName, argInt, argInt, argText}, options: []string{"fg", "bg", "attrs"}},
	CommandTypeBorder:   {args: []argKind{argName}, options: []string{"fg", "bg"}},
	CommandTypeNoBorder: {args: []argKind{argName}},
	CommandTypeMove:     {args: []argKind{argName, argInt, argInt}},
	CommandTypeResize:   {args: []argKind{argName, argInt, argInt}},
	CommandTypeTop:      {args: []argKind{argName}},
	CommandTypeBottom:   {args: []argKind{argName}},
	CommandTypeRemove:   {args: []argKind{argName}},
	CommandTypeRefresh:  {},
	CommandTypeSleep:    {args: []argKind{argDuration}},
}

// lookupCommand matches a command keyword case-insensitively.
func lookupCommand(word string) (CommandType, bool) {
	for ct := range commandSpecs {
		if strings.EqualFold(string(ct), word) {
			return ct, true
		}
	}
	return "", false
}

// Command is one parsed, validated script line.
type Command struct {
	Type    CommandType
	Args    []string
	Options map[string]string
	Line    int
}

// Arg returns positional argument i, or "" when absent.
func (c *Command) Arg(i int) string {
	if i < 0 || i >= len(c.Args) {
		return ""
	}
	return c.Args[i]
}

// Int returns positional argument i as an int. The parser has already
// checked it, so a malformed value yields 0.
func (c *Command) Int(i int) int {
	n, _ := strconv.Atoi(c.Arg(i))
	return n
}

// Duration returns positional argument i as a duration.
func (c *Command) Duration(i int) time.Duration {
	d, _ := time.ParseDuration(c.Arg(i))
	return d
}

// Option returns a key=value option, or "" when unset.
func (c *Command) Option(key string) string {
	return c.Options[key]
}
