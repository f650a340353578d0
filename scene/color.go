package scene

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/colornames"

	"github.com/gogpu/tinyrender"
)

// ParseColor parses an SVG color name ("cornflowerblue"), "#rgb",
// "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (gputypes.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return tinyrender.FromColor(c), nil
	}
	if !strings.HasPrefix(s, "#") {
		return gputypes.Color{}, fmt.Errorf("%w: unknown color %q", ErrInvalidScene, s)
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return gputypes.Color{}, fmt.Errorf("%w: bad hex color %q", ErrInvalidScene, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return gputypes.Color{}, fmt.Errorf("%w: bad hex color %q", ErrInvalidScene, s)
	}
	return gputypes.Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}
