package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/tuipanel/internal/app"
	"github.com/Gaurav-Gosain/tuipanel/internal/config"
	"github.com/Gaurav-Gosain/tuipanel/internal/style"
	"github.com/Gaurav-Gosain/tuipanel/internal/tape"
	"github.com/Gaurav-Gosain/tuipanel/internal/terminal"
	"github.com/Gaurav-Gosain/tuipanel/pkg/tuipanel"
)

var errNotTerminal = errors.New("stdout is not a terminal")

// loadConfig reads the user config and resolves the runtime settings from
// it and the CLI flags. A broken config falls back to defaults.
func loadConfig() *config.UserConfig {
	var (
		userConfig *config.UserConfig
		err        error
	)
	if configFile != "" {
		userConfig, err = config.LoadUserConfigFrom(configFile)
	} else {
		userConfig, err = config.LoadUserConfig()
	}
	if err != nil {
		log.Warn("failed to load config, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}

	config.ApplyOverrides(config.Overrides{
		MaxPanels: maxPanels,
		Strict:    strictMode,
		Debug:     debugMode,
		Hold:      hold,
	}, userConfig)
	return userConfig
}

// openLogger sends logs to a file, since stdout is the drawing surface.
// The returned close func is never nil.
func openLogger(userConfig *config.UserConfig) (*log.Logger, func(), error) {
	path := logFile
	if path == "" {
		p, err := config.GetLogPath(userConfig)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get log path: %w", err)
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	// #nosec G304 - log path comes from the user
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          config.AppName,
	})
	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	// Package-level logging from config must not land on the screen either.
	prev := log.Default()
	log.SetDefault(logger)
	return logger, func() {
		log.SetDefault(prev)
		_ = f.Close()
	}, nil
}

// openScreen takes over stdout with the resolved runtime settings.
func openScreen(logger *log.Logger) (*tuipanel.Screen, error) {
	if !terminal.IsTerminal(os.Stdout) {
		return nil, errNotTerminal
	}
	fg, err := style.ParseRGB(config.BorderFg)
	if err != nil {
		return nil, fmt.Errorf("border fg: %w", err)
	}
	bg, err := style.ParseRGB(config.BorderBg)
	if err != nil {
		return nil, fmt.Errorf("border bg: %w", err)
	}
	return tuipanel.New(
		tuipanel.WithRenderer(terminal.Stdout()),
		tuipanel.WithMaxPanels(config.MaxPanels),
		tuipanel.WithStrictBounds(config.BoundsMode == "strict"),
		tuipanel.WithBorderColors(fg, bg),
		tuipanel.WithLogger(logger),
	)
}

// signalContext is canceled on SIGINT or SIGTERM so the screen is always
// torn down.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// holdScreen keeps the picture up for the configured duration.
func holdScreen(ctx context.Context) {
	t := time.NewTimer(config.HoldDuration)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func runDemo(parent context.Context) error {
	userConfig := loadConfig()
	logger, closeLog, err := openLogger(userConfig)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := signalContext(parent)
	defer cancel()

	width, height := terminal.Size(int(os.Stdout.Fd()))
	if width < config.MinDemoWidth || height < config.MinDemoHeight {
		return fmt.Errorf("terminal is %dx%d, the demo needs at least %dx%d",
			width, height, config.MinDemoWidth, config.MinDemoHeight)
	}

	screen, err := openScreen(logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := screen.Close(); cerr != nil {
			logger.Error("failed to restore terminal", "err", cerr)
		}
	}()

	logger.Info("demo started", "width", width, "height", height)
	if err := drawDemo(ctx, screen, width, height); err != nil {
		logger.Error("demo failed", "err", err)
		return err
	}
	holdScreen(ctx)
	return nil
}

// drawDemo lays out a background and two overlapping panels, then swaps
// their stacking order and repaints.
func drawDemo(ctx context.Context, screen *tuipanel.Screen, width, height int) error {
	bg, err := screen.AddPanel(0, 0, height, width, false)
	if err != nil {
		return err
	}
	title := tuipanel.NewStyle(tuipanel.NewRGB(255, 200, 0), tuipanel.NewRGB(0, 0, 0), tuipanel.AttrBold)
	if err := bg.WriteStr(0, 1, title, config.AppName+" "+version); err != nil {
		return err
	}

	lines, cols := height/2, width/2
	left, err := screen.AddPanel(2, 2, lines, cols, true)
	if err != nil {
		return err
	}
	right, err := screen.AddPanel(2+lines/2, 2+cols/2, lines, cols, true)
	if err != nil {
		return err
	}

	text := tuipanel.NewStyle(tuipanel.NewRGB(255, 255, 255), tuipanel.NewRGB(0, 0, 96), tuipanel.AttrReset)
	accent := tuipanel.NewStyle(tuipanel.NewRGB(0, 255, 128), tuipanel.NewRGB(0, 0, 0), tuipanel.AttrUnderline)
	if err := left.WriteStr(1, 1, text, "left panel"); err != nil {
		return err
	}
	if err := left.WriteStr(2, 1, accent, "raised after a pause"); err != nil {
		return err
	}
	if err := right.WriteStr(1, 1, text, "right panel"); err != nil {
		return err
	}
	if err := screen.Refresh(); err != nil {
		return err
	}

	pause := config.HoldDuration / 2
	t := time.NewTimer(pause)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return nil
	case <-t.C:
	}

	if err := screen.ToTop(left); err != nil {
		return err
	}
	return screen.Refresh()
}

func runTape(parent context.Context, path string) error {
	cmds, err := readTape(path)
	if err != nil {
		return err
	}

	userConfig := loadConfig()
	logger, closeLog, err := openLogger(userConfig)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := signalContext(parent)
	defer cancel()

	screen, err := openScreen(logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := screen.Close(); cerr != nil {
			logger.Error("failed to restore terminal", "err", cerr)
		}
	}()

	logger.Info("playing tape", "file", path, "commands", len(cmds))
	executor := tape.NewCommandExecutor(app.NewScreenExecutor(screen, userConfig))
	if err := executor.Run(ctx, cmds); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		logger.Error("tape failed", "file", path, "err", err)
		return fmt.Errorf("%s: %w", path, err)
	}
	holdScreen(ctx)
	return nil
}

func readTape(path string) ([]tape.Command, error) {
	// #nosec G304 - reading a user-chosen tape file is intentional
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tape file: %w", err)
	}
	cmds, err := tape.ParseScript(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cmds, nil
}

func validateTapeFile(path string) error {
	cmds, err := readTape(path)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d command(s), OK\n", path, len(cmds))
	return nil
}

func printConfigPath() error {
	path, err := config.GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	fmt.Println(path)
	return nil
}

func showConfig() error {
	var (
		userConfig *config.UserConfig
		err        error
	)
	if configFile != "" {
		userConfig, err = config.LoadUserConfigFrom(configFile)
	} else {
		userConfig, err = config.LoadUserConfig()
	}
	if err != nil {
		return err
	}
	return config.Encode(os.Stdout, userConfig)
}

func resetConfigToDefaults() error {
	path, err := config.ResetConfig()
	if err != nil {
		return err
	}
	fmt.Printf("Configuration reset to defaults: %s\n", path)
	return nil
}
