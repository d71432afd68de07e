package config

import (
	"fmt"
	"strings"

	"github.com/Gaurav-Gosain/tuipanel/internal/style"
)

// builtinPalette is always available to scripts. User entries with the same
// name win.
var builtinPalette = map[string]style.RGB{
	"black":   style.Black,
	"white":   style.White,
	"red":     {R: 205, G: 49, B: 49},
	"green":   {R: 13, G: 188, B: 121},
	"yellow":  {R: 229, G: 229, B: 16},
	"blue":    {R: 36, G: 114, B: 200},
	"magenta": {R: 188, G: 63, B: 188},
	"cyan":    {R: 17, G: 168, B: 205},
	"gray":    {R: 128, G: 128, B: 128},
}

// ResolveColor turns "#rrggbb", "#rgb" or a palette name into a color.
func (c *UserConfig) ResolveColor(s string) (style.RGB, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return style.ParseRGB(s)
	}
	name := strings.ToLower(s)
	if c != nil {
		if hex, ok := c.Palette[name]; ok {
			return style.ParseRGB(hex)
		}
	}
	if rgb, ok := builtinPalette[name]; ok {
		return rgb, nil
	}
	return style.RGB{}, fmt.Errorf("unknown color %q", s)
}
