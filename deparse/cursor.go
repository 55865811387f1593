package deparse

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/lestrrat-go/gdtf/encoding"
	"github.com/lestrrat-go/gdtf/internal/stack"
	"github.com/lestrrat-go/pdebug"
)

// EventKind is the kind of an Event returned by Cursor.Next.
type EventKind int

const (
	EventStart EventKind = iota + 1
	EventEnd
	EventEOF
)

// Event is one element-level event. Character data, comments,
// processing instructions and directives never surface as events.
type Event struct {
	Kind  EventKind
	Start xml.StartElement // valid for EventStart
	End   xml.EndElement   // valid for EventEnd
}

// Cursor is a forward-only reader over one document. A Cursor must not
// be shared between goroutines; parse documents in parallel by giving
// each its own Cursor.
type Cursor struct {
	dec    *xml.Decoder
	open   stack.Stack[xml.Name]
	eof    bool
	strict bool
	log    *slog.Logger
}

// NewCursor creates a Cursor reading from r. The trace logger, if any,
// is taken from ctx.
func NewCursor(ctx context.Context, r io.Reader, options ...Option) *Cursor {
	charsetReader := CharsetReaderFunc(encoding.CharsetReader)
	var strict bool
	for _, option := range options {
		switch option.Ident() {
		case identStrictNames{}:
			strict = option.Value().(bool)
		case identCharsetReader{}:
			charsetReader = option.Value().(CharsetReaderFunc)
		}
	}

	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader
	return &Cursor{
		dec:    dec,
		strict: strict,
		log:    getTraceLogFromContext(ctx),
	}
}

// NewCursorBytes is a shorthand for NewCursor over an in-memory document.
func NewCursorBytes(ctx context.Context, data []byte, options ...Option) *Cursor {
	return NewCursor(ctx, bytes.NewReader(data), options...)
}

// Strict reports whether names must be validated.
func (c *Cursor) Strict() bool {
	return c.strict
}

// Logger returns the trace logger of the parse.
func (c *Cursor) Logger() *slog.Logger {
	return c.log
}

// Pos returns the line and column of the reader.
func (c *Cursor) Pos() (line, column int) {
	return c.dec.InputPos()
}

// Depth returns the number of currently open elements.
func (c *Cursor) Depth() int {
	return c.open.Len()
}

func (c *Cursor) tokenizerError(err error) error {
	line, column := c.Pos()
	var serr *xml.SyntaxError
	if errors.As(err, &serr) {
		line = serr.Line
		column = 0
	}
	return &ParseError{
		Kind:   TokenizerFailure,
		Err:    err,
		Line:   line,
		Column: column,
	}
}

// Next returns the next element event. The end of input is reported as
// an EventEOF event, not as an error, so a truncated document closes
// every element that is still open. Any tokenizer failure, including an
// end tag that does not match the open element or an attribute given
// twice on one element, is a TokenizerFailure.
func (c *Cursor) Next() (Event, error) {
	for {
		tok, err := c.dec.RawToken()
		if err != nil {
			if errors.Is(err, io.EOF) {
				c.eof = true
				if pdebug.Enabled {
					pdebug.Printf("cursor: EOF with %d open elements", c.open.Len())
				}
				return Event{Kind: EventEOF}, nil
			}
			return Event{}, c.tokenizerError(err)
		}

		switch tok := tok.(type) {
		case xml.StartElement:
			for i, attr := range tok.Attr {
				for _, prev := range tok.Attr[:i] {
					if prev.Name == attr.Name {
						return Event{}, c.tokenizerError(fmt.Errorf("attribute %s repeated in <%s>", TagName(attr.Name), TagName(tok.Name)))
					}
				}
			}
			c.open.Push(tok.Name)
			return Event{Kind: EventStart, Start: tok}, nil
		case xml.EndElement:
			top, ok := c.open.Peek()
			if !ok {
				return Event{}, c.tokenizerError(fmt.Errorf("unexpected end element </%s>", TagName(tok.Name)))
			}
			if top != tok.Name {
				return Event{}, c.tokenizerError(fmt.Errorf("element <%s> closed by </%s>", TagName(top), TagName(tok.Name)))
			}
			c.open.Pop(1)
			return Event{Kind: EventEnd, End: tok}, nil
		}
	}
}

// TagName returns the name of an element as written in the markup,
// including any prefix.
func TagName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
