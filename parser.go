package gdtf

import (
	"bytes"
	"context"
	"io"

	"github.com/lestrrat-go/gdtf/deparse"
	"github.com/lestrrat-go/gdtf/s11n"
	"github.com/pkg/errors"
)

// Version of the library, reported by gdtf-lint --version.
const Version = "0.1.0"

// Option configures a parse.
type Option = deparse.Option

// WithStrictNames makes the parser validate every name and reference.
// See deparse.WithStrictNames.
func WithStrictNames(v bool) Option {
	return deparse.WithStrictNames(v)
}

// WithTraceLogger returns a context that makes parses log their
// progress to the given logger at debug level.
var WithTraceLogger = deparse.WithTraceLogger

// Parse decodes a description.xml document.
func Parse(ctx context.Context, data []byte, options ...Option) (*GDTF, error) {
	return ParseReader(ctx, bytes.NewReader(data), options...)
}

// ParseReader is Parse reading from r.
func ParseReader(ctx context.Context, r io.Reader, options ...Option) (*GDTF, error) {
	doc, err := deparse.UnmarshalReader[GDTF](ctx, r, options...)
	if err != nil {
		return nil, errors.Wrap(err, `failed to parse description`)
	}
	return &doc, nil
}

// Marshal writes doc as an indented description.xml document.
func Marshal(doc *GDTF) ([]byte, error) {
	var buf bytes.Buffer
	w := s11n.NewWriter(&buf)
	w.SetIndent("  ")
	if err := w.Declaration(); err != nil {
		return nil, errors.Wrap(err, `failed to write declaration`)
	}
	if err := doc.MarshalGDTF(w); err != nil {
		return nil, errors.Wrap(err, `failed to write description`)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
