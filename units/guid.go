package units

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lestrrat-go/gdtf/deparse"
)

// GUID identifies a fixture type across revisions.
type GUID struct {
	uuid.UUID
}

// NoGUID is the value of an empty GUID attribute.
var NoGUID = GUID{}

// ParseGUID reads a GUID in its canonical dashed form. The empty string
// is NoGUID.
func ParseGUID(s string) (GUID, error) {
	if s == "" {
		return NoGUID, nil
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return NoGUID, deparse.ValueConversionError(err, "GUID %q", s)
	}
	return GUID{UUID: u}, nil
}

// MustParseGUID is ParseGUID for literals known to be valid.
func MustParseGUID(s string) GUID {
	g, err := ParseGUID(s)
	if err != nil {
		panic(err)
	}
	return g
}

// String renders g in upper case, the way authoring tools write it.
// NoGUID renders as the empty string.
func (g GUID) String() string {
	if g == NoGUID {
		return ""
	}
	return g.Canonical()
}

// Canonical renders g in upper case dashed form. Unlike String it
// writes NoGUID as the nil UUID.
func (g GUID) Canonical() string {
	return strings.ToUpper(g.UUID.String())
}

func (g GUID) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g GUID) MarshalCBOR() ([]byte, error) {
	return cborString(g.String())
}
