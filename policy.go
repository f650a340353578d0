package tinyrender

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"
)

// DegenerateTrianglePolicy selects what the triangle rasterizer does with a
// covered sample whose barycentric solve hit the near-zero-area fallback.
type DegenerateTrianglePolicy uint8

const (
	// DegenerateSentinel interpolates with SentinelWeights unchanged.
	// This is the default.
	DegenerateSentinel DegenerateTrianglePolicy = iota

	// DegenerateSkip drops the sample.
	DegenerateSkip

	// DegenerateClamp clamps negative weights to zero and renormalizes.
	// Samples whose clamped weights sum to zero are dropped.
	DegenerateClamp
)

// SentinelWeights are the barycentric weights returned for triangles whose
// doubled area is within barycentricEpsilon of zero. They sum to one but
// are not a valid point of the triangle.
var SentinelWeights = Vec3{X: -1, Y: 1, Z: 1}

// String returns the policy name.
func (p DegenerateTrianglePolicy) String() string {
	switch p {
	case DegenerateSentinel:
		return "sentinel"
	case DegenerateSkip:
		return "skip"
	case DegenerateClamp:
		return "clamp"
	default:
		return "unknown"
	}
}

// ParseDegeneratePolicy parses a policy name as printed by String.
// The empty string selects DegenerateSentinel.
func ParseDegeneratePolicy(s string) (DegenerateTrianglePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sentinel":
		return DegenerateSentinel, nil
	case "skip":
		return DegenerateSkip, nil
	case "clamp":
		return DegenerateClamp, nil
	default:
		return DegenerateSentinel, fmt.Errorf("%w: degenerate policy %q", ErrInvalidOption, s)
	}
}

// resolve applies the policy to degenerate weights.
// It reports false when the sample must be dropped.
func (p DegenerateTrianglePolicy) resolve(w Vec3) (Vec3, bool) {
	switch p {
	case DegenerateSkip:
		return w, false
	case DegenerateClamp:
		w = Vec3{X: max(w.X, 0), Y: max(w.Y, 0), Z: max(w.Z, 0)}
		sum := w.X + w.Y + w.Z
		if sum == 0 {
			return w, false
		}
		return w.Mul(1 / sum), true
	default:
		return w, true
	}
}

// SamplePattern lists sub-pixel sample offsets relative to the pixel's
// lower-left corner.
type SamplePattern []Vec2

var (
	// Pattern4x is the default four-sample supersampling grid.
	Pattern4x = SamplePattern{{0.25, 0.25}, {0.75, 0.25}, {0.25, 0.75}, {0.75, 0.75}}

	// Pattern1x samples the pixel centre only.
	Pattern1x = SamplePattern{{0.5, 0.5}}
)

// SamplePatternFor returns the pattern for a multisample state.
// Count 0 and 4 select Pattern4x and Count 1 selects Pattern1x. Other
// counts fall back to Pattern4x and report false.
func SamplePatternFor(ms gputypes.MultisampleState) (SamplePattern, bool) {
	switch ms.Count {
	case 0, 4:
		return Pattern4x, true
	case 1:
		return Pattern1x, true
	default:
		return Pattern4x, false
	}
}
