package geometry

import (
	"fmt"

	"github.com/df07/go-plane-tracer/pkg/core"
)

// MissReason explains why a ray produced no intersection
type MissReason int

const (
	NoMiss        MissReason = iota
	Parallel                 // ray direction lies in the plane
	Degenerate               // zero denominator or non-finite parameter
	BehindOrigin             // the plane is behind the ray
	OriginOnPlane            // the ray starts on the plane
	OutOfRange               // hit point coordinates exceed the configured bound
)

var missReasonNames = [...]string{
	NoMiss:        "none",
	Parallel:      "parallel",
	Degenerate:    "degenerate",
	BehindOrigin:  "behind-origin",
	OriginOnPlane: "origin-on-plane",
	OutOfRange:    "out-of-range",
}

func (r MissReason) String() string {
	if r >= 0 && int(r) < len(missReasonNames) {
		return missReasonNames[r]
	}
	return fmt.Sprintf("MissReason(%d)", int(r))
}

// Intersection is the classified result of a ray query: a hit, or a miss with a reason
type Intersection struct {
	Reason MissReason // NoMiss for hits
	T      float64    // Ray parameter, valid for hits
	Point  core.Vec3  // Hit point, valid for hits
}

// Hit reports whether the ray hit
func (i Intersection) Hit() bool {
	return i.Reason == NoMiss
}

func hit(t float64, p core.Vec3) Intersection {
	return Intersection{Reason: NoMiss, T: t, Point: p}
}

func miss(reason MissReason) Intersection {
	return Intersection{Reason: reason}
}

func (i Intersection) String() string {
	if i.Hit() {
		return fmt.Sprintf("hit t=%g at %v", i.T, i.Point)
	}
	return "miss (" + i.Reason.String() + ")"
}
