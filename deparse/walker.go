package deparse

import (
	"encoding/xml"
	"fmt"
	"log/slog"

	"github.com/lestrrat-go/pdebug"
)

// HandlerFunc builds something from the element that starts with start.
// When it returns without error the cursor must be positioned after the
// element's end tag.
type HandlerFunc func(c *Cursor, start xml.StartElement) error

// Handlers maps child tag names to the function handling them.
type Handlers map[string]HandlerFunc

// Add registers fn for tag. Each tag may be registered once per table;
// a second registration panics.
func (h Handlers) Add(tag string, fn HandlerFunc) {
	if _, ok := h[tag]; ok {
		panic(fmt.Sprintf("deparse: handler for <%s> registered twice", tag))
	}
	h[tag] = fn
}

// Walk consumes the children of the element whose start tag was the
// last event read, up to and including its end tag. Children whose tag
// is registered in h are handed to their handler; anything else is
// skipped along with its whole subtree, except that registered tags are
// still recognized inside skipped subtrees. The end of input ends the
// walk without error.
func (c *Cursor) Walk(h Handlers) error {
	if pdebug.Enabled {
		pdebug.Printf("walk: start at depth %d", c.Depth())
	}

	var depth int
	for {
		ev, err := c.Next()
		if err != nil {
			return err
		}

		switch ev.Kind {
		case EventEOF:
			return nil
		case EventEnd:
			if depth == 0 {
				return nil
			}
			depth--
		case EventStart:
			name := TagName(ev.Start.Name)
			if fn, ok := h[name]; ok {
				c.log.Debug("dispatching element", slog.String("tag", name))
				if err := fn(c, ev.Start); err != nil {
					return err
				}
				continue
			}
			c.log.Debug("skipping element", slog.String("tag", name), slog.Int("depth", depth))
			depth++
		}
	}
}

// Skip consumes the rest of the current element without handling any
// of its children.
func (c *Cursor) Skip() error {
	return c.Walk(nil)
}
