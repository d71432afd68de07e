package tape

import (
	"context"
	"fmt"
	"time"
)

// StyleOptions carries the unresolved fg, bg and attrs options of a
// command. Empty fields mean "use the default".
type StyleOptions struct {
	Fg    string
	Bg    string
	Attrs string
}

// Executor executes tape commands by directly manipulating panels on a
// screen. Panels are addressed by the name given in their Panel command.
type Executor interface {
	CreatePanel(name string, y, x, lines, cols int, border bool) error
	WriteText(name string, y, x int, text string, opts StyleOptions) error
	DrawBorder(name string, opts StyleOptions) error
	RemoveBorder(name string) error
	MovePanel(name string, y, x int) error
	ResizePanel(name string, lines, cols int) error
	RaisePanel(name string) error
	LowerPanel(name string) error
	RemovePanel(name string) error
	Refresh() error
}

// CommandExecutor dispatches commands to an Executor.
type CommandExecutor struct {
	executor Executor
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewCommandExecutor creates a new command executor
func NewCommandExecutor(executor Executor) *CommandExecutor {
	return &CommandExecutor{executor: executor, sleep: sleepContext}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func styleOptions(cmd *Command) StyleOptions {
	return StyleOptions{
		Fg:    cmd.Option("fg"),
		Bg:    cmd.Option("bg"),
		Attrs: cmd.Option("attrs"),
	}
}

// Execute executes a command
func (ce *CommandExecutor) Execute(ctx context.Context, cmd *Command) error {
	if ce.executor == nil {
		return nil
	}

	switch cmd.Type {
	case CommandTypePanel:
		return ce.executor.CreatePanel(cmd.Arg(0), cmd.Int(1), cmd.Int(2), cmd.Int(3), cmd.Int(4), len(cmd.Args) > 5)

	case CommandTypeWrite:
		return ce.executor.WriteText(cmd.Arg(0), cmd.Int(1), cmd.Int(2), cmd.Arg(3), styleOptions(cmd))

	case CommandTypeBorder:
		return ce.executor.DrawBorder(cmd.Arg(0), styleOptions(cmd))

	case CommandTypeNoBorder:
		return ce.executor.RemoveBorder(cmd.Arg(0))

	case CommandTypeMove:
		return ce.executor.MovePanel(cmd.Arg(0), cmd.Int(1), cmd.Int(2))

	case CommandTypeResize:
		return ce.executor.ResizePanel(cmd.Arg(0), cmd.Int(1), cmd.Int(2))

	case CommandTypeTop:
		return ce.executor.RaisePanel(cmd.Arg(0))

	case CommandTypeBottom:
		return ce.executor.LowerPanel(cmd.Arg(0))

	case CommandTypeRemove:
		return ce.executor.RemovePanel(cmd.Arg(0))

	case CommandTypeRefresh:
		return ce.executor.Refresh()

	case CommandTypeSleep:
		return ce.sleep(ctx, cmd.Duration(0))

	default:
		return fmt.Errorf("unsupported command %q", cmd.Type)
	}
}

// Run executes cmds in order and stops at the first failure.
func (ce *CommandExecutor) Run(ctx context.Context, cmds []Command) error {
	for i := range cmds {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := ce.Execute(ctx, &cmds[i]); err != nil {
			return fmt.Errorf("line %d: %s: %w", cmds[i].Line, cmds[i].Type, err)
		}
	}
	return nil
}
