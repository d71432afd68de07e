package app

import "fmt"

// Point is an absolute terminal coordinate, 0-indexed, row first.
type Point struct {
	Y, X int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Y, p.X)
}

// Add returns p translated by (dy, dx).
func (p Point) Add(dy, dx int) Point {
	return Point{Y: p.Y + dy, X: p.X + dx}
}

// BoundsMode selects what a panel does with writes outside its extent.
type BoundsMode int

const (
	// BoundsClamp saturates out-of-range coordinates to the nearest edge.
	BoundsClamp BoundsMode = iota
	// BoundsStrict rejects out-of-range writes with a *cellbuf.BoundsError.
	BoundsStrict
)

func (m BoundsMode) String() string {
	switch m {
	case BoundsClamp:
		return "clamp"
	case BoundsStrict:
		return "strict"
	default:
		return fmt.Sprintf("BoundsMode(%d)", int(m))
	}
}

// ParseBoundsMode parses "clamp" or "strict". The empty string is clamp.
func ParseBoundsMode(s string) (BoundsMode, error) {
	switch s {
	case "", "clamp":
		return BoundsClamp, nil
	case "strict":
		return BoundsStrict, nil
	default:
		return BoundsClamp, fmt.Errorf("unknown bounds mode %q (want clamp or strict)", s)
	}
}
