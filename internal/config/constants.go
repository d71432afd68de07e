// Package config provides configuration constants, runtime settings and the
// user's TOML configuration file.
package config

import "time"

// =============================================================================
// File Locations
// =============================================================================

const (
	// AppName is the directory name used under the XDG base directories.
	AppName = "tuipanel"

	// ConfigFileName is the config file path relative to the XDG config home.
	ConfigFileName = AppName + "/config.toml"

	// LogFileName is the log file path relative to the XDG state home.
	LogFileName = AppName + "/" + AppName + ".log"
)

// =============================================================================
// Screen Defaults
// =============================================================================

const (
	// DefaultMaxPanels is the registry bound used when none is configured.
	DefaultMaxPanels = 255

	// MinMaxPanels and MaxMaxPanels bound the configurable registry size.
	MinMaxPanels = 1
	MaxMaxPanels = 65535

	// DefaultBoundsMode saturates out-of-range writes.
	DefaultBoundsMode = "clamp"
)

// =============================================================================
// Border and Logging Defaults
// =============================================================================

const (
	DefaultBorderFg = "#000000"
	DefaultBorderBg = "#ffffff"

	// DefaultLogLevel is used when neither the config nor a flag sets one.
	DefaultLogLevel = "info"
)

// =============================================================================
// Demo
// =============================================================================

const (
	// DefaultHoldDuration is how long the demo keeps its picture on screen.
	DefaultHoldDuration = 3 * time.Second

	// MinDemoWidth and MinDemoHeight are the smallest terminal the demo lays
	// its panels out for.
	MinDemoWidth  = 40
	MinDemoHeight = 12
)

// =============================================================================
// Runtime Settings
// =============================================================================

// Runtime settings, resolved from the user config and CLI flags by
// ApplyOverrides.
var (
	MaxPanels    = DefaultMaxPanels
	BoundsMode   = DefaultBoundsMode
	BorderFg     = DefaultBorderFg
	BorderBg     = DefaultBorderBg
	LogLevel     = DefaultLogLevel
	HoldDuration = DefaultHoldDuration
)

// ResetRuntime restores every runtime setting to its default.
func ResetRuntime() {
	MaxPanels = DefaultMaxPanels
	BoundsMode = DefaultBoundsMode
	BorderFg = DefaultBorderFg
	BorderBg = DefaultBorderBg
	LogLevel = DefaultLogLevel
	HoldDuration = DefaultHoldDuration
}
