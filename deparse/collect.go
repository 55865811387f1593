package deparse

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"io"
)

// Presence records whether a Single handler saw its element.
type Presence struct {
	found bool
}

// Found reports whether the element was present.
func (p *Presence) Found() bool {
	return p != nil && p.found
}

// locate fills in the reader position of a ParseError that does not
// carry one yet.
func (c *Cursor) locate(err error) error {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Line == 0 {
		pe.Line, pe.Column = c.Pos()
	}
	return err
}

// Decode builds a T from the element that starts with start. The value
// is only returned when every step of building it succeeded.
func Decode[T any, PT EntityPtr[T]](c *Cursor, start xml.StartElement) (T, error) {
	var v T
	depth := c.Depth()
	if err := PT(&v).UnmarshalGDTF(c, start); err != nil {
		var zero T
		return zero, c.locate(err)
	}

	// an entity that returned early still owns the rest of its element
	for c.Depth() >= depth && !c.eof {
		if err := c.Skip(); err != nil {
			var zero T
			return zero, err
		}
	}
	return v, nil
}

// Single registers T's tag in h. The matching child is decoded into
// dst; when there is none dst keeps its value, and the returned
// Presence lets the caller decide whether that is an error.
func Single[T any, PT EntityPtr[T]](h Handlers, dst *T) *Presence {
	p := &Presence{}
	h.Add(tagNameOf[T, PT](), func(c *Cursor, start xml.StartElement) error {
		v, err := Decode[T, PT](c, start)
		if err != nil {
			return err
		}
		*dst = v
		p.found = true
		return nil
	})
	return p
}

// List registers T in h so that every matching child is appended to
// dst in document order. Types that declare a container tag are
// expected inside that container; all others are expected bare.
func List[T any, PT EntityPtr[T]](h Handlers, dst *[]T) {
	if tag, ok := ContainerTagName[T, PT](); ok {
		h.Add(tag, func(c *Cursor, _ xml.StartElement) error {
			items, err := ReadList[T, PT](c)
			if err != nil {
				return err
			}
			*dst = append(*dst, items...)
			return nil
		})
		return
	}

	h.Add(tagNameOf[T, PT](), func(c *Cursor, start xml.StartElement) error {
		v, err := Decode[T, PT](c, start)
		if err != nil {
			return err
		}
		*dst = append(*dst, v)
		return nil
	})
}

// Map is List for keyed entities: children are stored in dst under
// their primary key. When a key repeats the later child replaces the
// earlier one.
func Map[K comparable, T any, PT KeyedPtr[K, T]](h Handlers, dst *map[K]T) {
	store := func(v T) {
		if *dst == nil {
			*dst = make(map[K]T)
		}
		(*dst)[PT(&v).PrimaryKey()] = v
	}

	if tag, ok := ContainerTagName[T, PT](); ok {
		h.Add(tag, func(c *Cursor, _ xml.StartElement) error {
			items, err := ReadMap[K, T, PT](c)
			if err != nil {
				return err
			}
			for _, v := range items {
				store(v)
			}
			return nil
		})
		return
	}

	h.Add(tagNameOf[T, PT](), func(c *Cursor, start xml.StartElement) error {
		v, err := Decode[T, PT](c, start)
		if err != nil {
			return err
		}
		store(v)
		return nil
	})
}

// ReadList decodes every T child of the current element, in order.
// The result is nil when there are none.
func ReadList[T any, PT EntityPtr[T]](c *Cursor) ([]T, error) {
	var items []T
	h := Handlers{}
	h.Add(tagNameOf[T, PT](), func(c *Cursor, start xml.StartElement) error {
		v, err := Decode[T, PT](c, start)
		if err != nil {
			return err
		}
		items = append(items, v)
		return nil
	})
	if err := c.Walk(h); err != nil {
		return nil, err
	}
	return items, nil
}

// ReadMap decodes every T child of the current element into a map keyed
// by primary key, last one wins. The result is nil when there are none.
func ReadMap[K comparable, T any, PT KeyedPtr[K, T]](c *Cursor) (map[K]T, error) {
	var items map[K]T
	h := Handlers{}
	h.Add(tagNameOf[T, PT](), func(c *Cursor, start xml.StartElement) error {
		v, err := Decode[T, PT](c, start)
		if err != nil {
			return err
		}
		if items == nil {
			items = make(map[K]T)
		}
		items[PT(&v).PrimaryKey()] = v
		return nil
	})
	if err := c.Walk(h); err != nil {
		return nil, err
	}
	return items, nil
}

// Unmarshal decodes the first element named after T found in data.
func Unmarshal[T any, PT EntityPtr[T]](ctx context.Context, data []byte, options ...Option) (T, error) {
	return UnmarshalReader[T, PT](ctx, bytes.NewReader(data), options...)
}

// UnmarshalReader is Unmarshal reading from r. A document without a T
// element fails with RequiredValueNotFound.
func UnmarshalReader[T any, PT EntityPtr[T]](ctx context.Context, r io.Reader, options ...Option) (T, error) {
	var zero T
	tag := tagNameOf[T, PT]()
	c := NewCursor(ctx, r, options...)
	for {
		ev, err := c.Next()
		if err != nil {
			return zero, err
		}
		switch ev.Kind {
		case EventEOF:
			return zero, RequiredValueError("document has no <%s> element", tag)
		case EventStart:
			if TagName(ev.Start.Name) == tag {
				return Decode[T, PT](c, ev.Start)
			}
		}
	}
}
