// Package units holds the value types that appear in description
// attributes: names, reference paths, physical units, colors and DMX
// values. Each type has a zero value constant that is used when the
// attribute is absent.
package units

import (
	"encoding/xml"
	"fmt"
	"unicode/utf8"

	"github.com/lestrrat-go/gdtf/deparse"
)

// MaxNameLength is the longest name, in runes, NewName accepts.
const MaxNameLength = 256

// Name is a short identifier used as a key or as a reference target.
type Name string

// NoName is the empty name, the value of every absent Name attribute.
const NoName Name = ""

var nameChars [128]bool

func init() {
	for c := '0'; c <= '9'; c++ {
		nameChars[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		nameChars[c] = true
		nameChars[c-'a'+'A'] = true
	}
	for _, c := range " !\"#$%&'()*+,-/:;<=>?@[\\]^_`|~" {
		nameChars[c] = true
	}
}

// IsNameChar reports whether r may appear in a validated Name.
func IsNameChar(r rune) bool {
	return r >= 0 && r < utf8.RuneSelf && nameChars[r]
}

// NewName validates s and returns it as a Name. s must not be longer
// than MaxNameLength and may only hold ASCII letters, digits, space and
// the punctuation `!"#$%&'()*+,-/:;<=>?@[\]^_`|~`.
func NewName(s string) (Name, error) {
	var n int
	for _, r := range s {
		if !IsNameChar(r) {
			return NoName, deparse.InvalidIdentifierError(s, fmt.Sprintf("character %q is not allowed", r))
		}
		n++
	}
	if n > MaxNameLength {
		return NoName, deparse.InvalidIdentifierError(s, fmt.Sprintf("longer than %d characters", MaxNameLength))
	}
	return Name(s), nil
}

// UncheckedName returns s as a Name without validating it.
func UncheckedName(s string) Name {
	return Name(s)
}

func (n Name) String() string {
	return string(n)
}

// AttrName reads a Name attribute, validating it when the cursor was
// created with deparse.WithStrictNames(true).
func AttrName(c *deparse.Cursor, attr xml.Attr) (Name, error) {
	if c.Strict() {
		return NewName(attr.Value)
	}
	return UncheckedName(attr.Value), nil
}
