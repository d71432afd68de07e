package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/tuipanel/internal/style"
)

// ValidationIssue is one problem found in a config file.
type ValidationIssue struct {
	Field   string // section, e.g. "screen"
	Key     string
	Message string
}

func (v ValidationIssue) Error() string {
	return fmt.Sprintf("[%s] %s: %s", v.Field, v.Key, v.Message)
}

// ValidationResult collects errors (fatal) and warnings (reported only).
type ValidationResult struct {
	Errors   []ValidationIssue
	Warnings []ValidationIssue
}

// HasErrors reports whether any fatal issue was found.
func (r *ValidationResult) HasErrors() bool { return len(r.Errors) > 0 }

// HasWarnings reports whether any non-fatal issue was found.
func (r *ValidationResult) HasWarnings() bool { return len(r.Warnings) > 0 }

// Err joins all errors, or returns nil.
func (r *ValidationResult) Err() error {
	errs := make([]error, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

func (r *ValidationResult) addError(field, key, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationIssue{Field: field, Key: key, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) addWarning(field, key, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationIssue{Field: field, Key: key, Message: fmt.Sprintf(format, args...)})
}

var paletteNameRE = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// ValidateConfig checks cfg. Missing values must already be filled in.
func ValidateConfig(cfg *UserConfig) *ValidationResult {
	r := &ValidationResult{}

	if n := cfg.Screen.MaxPanels; n < MinMaxPanels || n > MaxMaxPanels {
		r.addError("screen", "max_panels", "must be between %d and %d, got %d", MinMaxPanels, MaxMaxPanels, n)
	}
	switch cfg.Screen.BoundsMode {
	case "clamp", "strict":
	default:
		r.addError("screen", "bounds_mode", "must be clamp or strict, got %q", cfg.Screen.BoundsMode)
	}

	fg, fgErr := style.ParseRGB(cfg.Border.Fg)
	if fgErr != nil {
		r.addError("border", "fg", "%v", fgErr)
	}
	bg, bgErr := style.ParseRGB(cfg.Border.Bg)
	if bgErr != nil {
		r.addError("border", "bg", "%v", bgErr)
	}
	if fgErr == nil && bgErr == nil && fg == bg {
		r.addWarning("border", "fg", "border foreground equals background (%s)", fg.Hex())
	}

	if _, err := log.ParseLevel(cfg.Log.Level); err != nil {
		r.addError("log", "level", "unknown level %q", cfg.Log.Level)
	}

	for name, value := range cfg.Palette {
		if !paletteNameRE.MatchString(name) {
			r.addWarning("palette", name, "name should be lowercase letters, digits, - or _")
		}
		if strings.HasPrefix(name, "#") {
			r.addError("palette", name, "name must not start with #")
			continue
		}
		if _, err := style.ParseRGB(value); err != nil {
			r.addError("palette", name, "%v", err)
		}
	}

	return r
}
