package units

import (
	"strconv"
	"strings"

	"github.com/lestrrat-go/gdtf/deparse"
)

// DmxValue is a DMX value with its resolution, written as
// "Value/Bytes" with an optional trailing "s" when the value is meant
// to be byte shifted, e.g. "32768/2" or "255/1s".
type DmxValue struct {
	Value    uint32
	Bytes    uint8
	Shifting bool
}

// IsZero reports whether v is the zero DmxValue.
func (v DmxValue) IsZero() bool {
	return v == DmxValue{}
}

// ParseDmxValue reads a DmxValue. Bytes must be between 1 and 4.
func ParseDmxValue(s string) (DmxValue, error) {
	body, shifting := strings.CutSuffix(s, "s")
	value, res, ok := strings.Cut(body, "/")
	if !ok {
		return DmxValue{}, deparse.ValueConversionError(nil, "DMX value %q: missing resolution", s)
	}

	v, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return DmxValue{}, deparse.ValueConversionError(err, "DMX value %q", s)
	}
	n, err := strconv.ParseUint(res, 10, 8)
	if err != nil {
		return DmxValue{}, deparse.ValueConversionError(err, "DMX value %q", s)
	}
	if n < 1 || n > 4 {
		return DmxValue{}, deparse.ValueConversionError(nil, "DMX value %q: resolution must be 1 to 4 bytes", s)
	}
	return DmxValue{Value: uint32(v), Bytes: uint8(n), Shifting: shifting}, nil
}

func (v DmxValue) String() string {
	s := strconv.FormatUint(uint64(v.Value), 10) + "/" + strconv.FormatUint(uint64(v.Bytes), 10)
	if v.Shifting {
		s += "s"
	}
	return s
}

func (v DmxValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// DmxBreak is the DMX break a channel is patched to. Overwrite means
// the break is taken from the referencing geometry.
type DmxBreak struct {
	Break     int
	Overwrite bool
}

// DefaultDmxBreak is the value of an absent DMXBreak attribute.
var DefaultDmxBreak = DmxBreak{Break: 1}

// DmxBreakOverwrite is the "Overwrite" break.
var DmxBreakOverwrite = DmxBreak{Overwrite: true}

// ParseDmxBreak reads a decimal break number or "Overwrite".
func ParseDmxBreak(s string) (DmxBreak, error) {
	if s == "Overwrite" {
		return DmxBreakOverwrite, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return DefaultDmxBreak, deparse.ValueConversionError(err, "DMX break %q", s)
	}
	return DmxBreak{Break: n}, nil
}

func (b DmxBreak) String() string {
	if b.Overwrite {
		return "Overwrite"
	}
	return strconv.Itoa(b.Break)
}

func (b DmxBreak) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Offset lists the DMX addresses a channel occupies, most significant
// byte first. A nil Offset is written "None".
type Offset []int

// ParseOffset reads a comma separated Offset. "None" and the empty
// string are the nil Offset.
func ParseOffset(s string) (Offset, error) {
	if s == "" || s == "None" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	o := make(Offset, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, deparse.ValueConversionError(err, "offset %q", s)
		}
		o[i] = n
	}
	return o, nil
}

func (o Offset) String() string {
	if o == nil {
		return "None"
	}
	parts := make([]string, len(o))
	for i, n := range o {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
