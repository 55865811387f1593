package deparse

import (
	"encoding/xml"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AttrKey returns the attribute's name as written in the markup,
// including any prefix. Entities match attributes on this key so that
// a prefixed x:Name is never taken for Name.
func AttrKey(attr xml.Attr) string {
	return TagName(attr.Name)
}

// AttrStringOption returns a pointer to the attribute's value.
func AttrStringOption(attr xml.Attr) *string {
	v := attr.Value
	return &v
}

// AttrParse converts the attribute's value with fn. Errors from fn that
// are not already a *ParseError become ValueConversionFailure.
func AttrParse[T any](attr xml.Attr, fn func(string) (T, error)) (T, error) {
	v, err := fn(attr.Value)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return v, err
		}
		return v, ValueConversionError(err, "attribute %s=%q", AttrKey(attr), attr.Value)
	}
	return v, nil
}

// AttrParseOption is AttrParse returning a pointer to the result.
func AttrParseOption[T any](attr xml.Attr, fn func(string) (T, error)) (*T, error) {
	v, err := AttrParse(attr, fn)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ParseFloat reads a decimal number. Hexadecimal notation and values
// that are not finite (NaN, Inf) are rejected.
func ParseFloat(s string) (float64, error) {
	if strings.ContainsAny(s, "xX") {
		return 0, fmt.Errorf("%q is not a decimal number", s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return f, nil
}

// AttrFloat parses the attribute as a finite float64.
func AttrFloat(attr xml.Attr) (float64, error) {
	return AttrParse(attr, ParseFloat)
}

// AttrInt parses the attribute as a decimal int.
func AttrInt(attr xml.Attr) (int, error) {
	return AttrParse(attr, strconv.Atoi)
}

// RequireAttrs fails with RequiredValueNotFound when start lacks any of
// the named attributes.
func RequireAttrs(start xml.StartElement, names ...string) error {
	for _, name := range names {
		var found bool
		for _, attr := range start.Attr {
			if AttrKey(attr) == name {
				found = true
				break
			}
		}
		if !found {
			return RequiredValueError("<%s> has no %s attribute", TagName(start.Name), name)
		}
	}
	return nil
}

// FormatFloat renders f the way AttrFloat reads it back.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
