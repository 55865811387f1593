package units

import (
	"fmt"
	"strings"

	"github.com/lestrrat-go/gdtf/deparse"
)

// ColorCIE is a color in the CIE 1931 xyY space.
type ColorCIE struct {
	X         float64 `json:"x" yaml:"x" cbor:"x"`
	Y         float64 `json:"y" yaml:"y" cbor:"y"`
	Luminance float64 `json:"Y" yaml:"Y" cbor:"Y"`
}

// ParseColorCIE reads a color written as "x,y,Y".
func ParseColorCIE(s string) (ColorCIE, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return ColorCIE{}, deparse.ValueConversionError(nil, "color %q: want 3 components, got %d", s, len(parts))
	}

	var v [3]float64
	for i, part := range parts {
		f, err := deparse.ParseFloat(strings.TrimSpace(part))
		if err != nil {
			return ColorCIE{}, deparse.ValueConversionError(err, "color %q", s)
		}
		v[i] = f
	}
	return ColorCIE{X: v[0], Y: v[1], Luminance: v[2]}, nil
}

func (c ColorCIE) String() string {
	return fmt.Sprintf("%s,%s,%s", deparse.FormatFloat(c.X), deparse.FormatFloat(c.Y), deparse.FormatFloat(c.Luminance))
}
