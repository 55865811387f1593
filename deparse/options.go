package deparse

import (
	"io"

	"github.com/lestrrat-go/option"
)

// Option configures a Cursor.
type Option = option.Interface

type identStrictNames struct{}
type identCharsetReader struct{}

// CharsetReaderFunc converts input in the named charset to UTF-8.
type CharsetReaderFunc func(charset string, input io.Reader) (io.Reader, error)

// WithStrictNames makes name and path attributes go through the
// validating constructors. A violation fails the parse with
// InvalidIdentifier. The default is false: names are taken verbatim.
func WithStrictNames(v bool) Option {
	return option.New(identStrictNames{}, v)
}

// WithCharsetReader replaces the function used to decode documents whose
// XML declaration names an encoding other than UTF-8.
func WithCharsetReader(fn CharsetReaderFunc) Option {
	return option.New(identCharsetReader{}, fn)
}
