package config

import (
	"time"

	"github.com/charmbracelet/log"
)

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user config default.
type Overrides struct {
	// MaxPanels overrides the registry bound (0 means use config)
	MaxPanels int

	// Strict selects strict bounds checking
	Strict bool

	// Debug lowers the log level to debug
	Debug bool

	// Hold overrides how long the demo stays on screen (0 means default)
	Hold time.Duration
}

// ApplyOverrides applies CLI flag overrides to the runtime settings, falling back to user config defaults.
// If userConfig is nil, only CLI flag values (when set) are applied.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) {
	// Max Panels - CLI flag takes precedence, otherwise use user config
	if overrides.MaxPanels > 0 {
		n := overrides.MaxPanels
		if n > MaxMaxPanels {
			log.Warn("max panels clamped", "requested", n, "max", MaxMaxPanels)
			n = MaxMaxPanels
		}
		MaxPanels = n
	} else if userConfig != nil && userConfig.Screen.MaxPanels > 0 {
		MaxPanels = userConfig.Screen.MaxPanels
	}

	// Bounds Mode - strict flag wins
	if overrides.Strict {
		BoundsMode = "strict"
	} else if userConfig != nil && userConfig.Screen.BoundsMode != "" {
		BoundsMode = userConfig.Screen.BoundsMode
	}

	// Border colors - only from user config
	if userConfig != nil {
		if userConfig.Border.Fg != "" {
			BorderFg = userConfig.Border.Fg
		}
		if userConfig.Border.Bg != "" {
			BorderBg = userConfig.Border.Bg
		}
	}

	// Log Level - debug flag wins
	if overrides.Debug {
		LogLevel = "debug"
	} else if userConfig != nil && userConfig.Log.Level != "" {
		LogLevel = userConfig.Log.Level
	}

	if overrides.Hold > 0 {
		HoldDuration = overrides.Hold
	}
}
