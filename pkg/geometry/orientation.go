package geometry

import (
	"fmt"

	"github.com/df07/go-plane-tracer/pkg/core"
)

// Orientation picks which way a plane's normal faces for a queried point
type Orientation int

const (
	// OriginRelative orients by dot(p, n), measuring p from the coordinate origin.
	// This ignores where the plane sits; it is kept for compatibility with existing scenes.
	OriginRelative Orientation = iota
	// AnchorRelative orients by dot(p - anchor, n)
	AnchorRelative
)

// Orient returns n or -n: n when the side test is positive, -n otherwise (zero included)
func (o Orientation) Orient(p, anchor, n core.Vec3) core.Vec3 {
	side := p
	if o == AnchorRelative {
		side = p.Subtract(anchor)
	}
	if side.Dot(n) > 0 {
		return n
	}
	return n.Negate()
}

func (o Orientation) String() string {
	switch o {
	case OriginRelative:
		return "origin"
	case AnchorRelative:
		return "anchor"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation parses "origin" or "anchor"; an empty string selects OriginRelative
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "", "origin":
		return OriginRelative, nil
	case "anchor":
		return AnchorRelative, nil
	default:
		return 0, fmt.Errorf("unknown orientation %q", s)
	}
}
