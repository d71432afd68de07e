package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
)

// UserConfig represents the user's custom configuration
type UserConfig struct {
	Screen  ScreenConfig      `toml:"screen"`
	Border  BorderConfig      `toml:"border"`
	Log     LogConfig         `toml:"log"`
	Palette map[string]string `toml:"palette"` // Named colors usable in tape scripts, e.g. accent = "#ff8800"
}

// ScreenConfig holds compositor settings
type ScreenConfig struct {
	MaxPanels  int    `toml:"max_panels"`  // Maximum number of registered panels (default: 255, min: 1, max: 65535)
	BoundsMode string `toml:"bounds_mode"` // Out-of-range writes: clamp or strict (default: clamp)
}

// BorderConfig holds the style used for panel borders
type BorderConfig struct {
	Fg string `toml:"fg"` // Border foreground as #rrggbb (default: #000000)
	Bg string `toml:"bg"` // Border background as #rrggbb (default: #ffffff)
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error (default: info)
	File  string `toml:"file"`  // Log file path (default: $XDG_STATE_HOME/tuipanel/tuipanel.log)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Screen: ScreenConfig{
			MaxPanels:  DefaultMaxPanels,
			BoundsMode: DefaultBoundsMode,
		},
		Border: BorderConfig{
			Fg: DefaultBorderFg,
			Bg: DefaultBorderBg,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Palette: map[string]string{},
	}
}

// LoadUserConfig loads the user configuration from XDG config directory,
// creating a commented default file when none exists.
func LoadUserConfig() (*UserConfig, error) {
	configPath, err := xdg.SearchConfigFile(ConfigFileName)
	if err != nil {
		// Config doesn't exist, create default
		return createDefaultConfig()
	}
	return LoadUserConfigFrom(configPath)
}

// LoadUserConfigFrom loads, completes and validates the config at path.
func LoadUserConfigFrom(path string) (*UserConfig, error) {
	// #nosec G304 - reading a user-chosen config file is intentional
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaultCfg := DefaultConfig()
	fillMissingScreen(&cfg, defaultCfg)
	fillMissingBorder(&cfg, defaultCfg)
	fillMissingLog(&cfg, defaultCfg)
	if cfg.Palette == nil {
		cfg.Palette = map[string]string{}
	}

	validation := ValidateConfig(&cfg)
	if validation.HasErrors() {
		for _, e := range validation.Errors {
			log.Error("config error", "section", e.Field, "key", e.Key, "message", e.Message)
		}
		return nil, fmt.Errorf("configuration has %d error(s): %w", len(validation.Errors), validation.Err())
	}
	for _, w := range validation.Warnings {
		log.Warn("config warning", "section", w.Field, "key", w.Key, "message", w.Message)
	}

	return &cfg, nil
}

// createDefaultConfig creates a default config file in the user's config directory
func createDefaultConfig() (*UserConfig, error) {
	configPath, err := xdg.ConfigFile(ConfigFileName)
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	cfg := DefaultConfig()
	if err := WriteConfig(configPath, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WriteConfig writes cfg to path as TOML behind a commented header,
// creating parent directories as needed.
func WriteConfig(path string, cfg *UserConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# tuipanel Configuration File\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + path + "\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# SCREEN SETTINGS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# max_panels: Maximum number of panels on one screen\n")
	sb.WriteString("#   Range: 1 to 65535\n")
	sb.WriteString("#   Default: 255\n")
	sb.WriteString("#\n")
	sb.WriteString("# bounds_mode: What happens to writes outside a panel\n")
	sb.WriteString("#   Options: clamp (land on the nearest edge), strict (reject with an error)\n")
	sb.WriteString("#   Default: clamp\n")
	sb.WriteString("#\n")
	sb.WriteString("# [border] fg / bg: Colors of panel borders as #rrggbb\n")
	sb.WriteString("#   Default: fg = #000000, bg = #ffffff\n")
	sb.WriteString("#\n")
	sb.WriteString("# [log] level: debug, info, warn, error (default: info)\n")
	sb.WriteString("# [log] file: Log file path (default: XDG state dir)\n")
	sb.WriteString("#\n")
	sb.WriteString("# [palette]: Named colors for tape scripts, e.g. accent = \"#ff8800\"\n")
	sb.WriteString("# ============================================================================\n\n")
	sb.Write(data)

	if err := os.WriteFile(path, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Encode writes cfg to w as plain TOML.
func Encode(w io.Writer, cfg *UserConfig) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ResetConfig overwrites the config file with defaults and returns its path.
func ResetConfig() (string, error) {
	path, err := xdg.ConfigFile(ConfigFileName)
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}
	if err := WriteConfig(path, DefaultConfig()); err != nil {
		return "", err
	}
	return path, nil
}

// fillMissingScreen fills in any missing screen settings with defaults
func fillMissingScreen(cfg, defaultCfg *UserConfig) {
	if cfg.Screen.MaxPanels == 0 {
		cfg.Screen.MaxPanels = defaultCfg.Screen.MaxPanels
	}
	if cfg.Screen.BoundsMode == "" {
		cfg.Screen.BoundsMode = defaultCfg.Screen.BoundsMode
	}
}

// fillMissingBorder fills in any missing border colors with defaults
func fillMissingBorder(cfg, defaultCfg *UserConfig) {
	if cfg.Border.Fg == "" {
		cfg.Border.Fg = defaultCfg.Border.Fg
	}
	if cfg.Border.Bg == "" {
		cfg.Border.Bg = defaultCfg.Border.Bg
	}
}

func fillMissingLog(cfg, defaultCfg *UserConfig) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultCfg.Log.Level
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile(ConfigFileName)
	if err != nil {
		// Return where it would be created
		return xdg.ConfigFile(ConfigFileName)
	}
	return path, nil
}

// GetLogPath returns the log file path from cfg, or the XDG state default.
func GetLogPath(cfg *UserConfig) (string, error) {
	if cfg != nil && cfg.Log.File != "" {
		return cfg.Log.File, nil
	}
	return xdg.StateFile(LogFileName)
}

// ConfigExists reports whether a config file is present at path.
func ConfigExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
