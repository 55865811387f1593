package deparse

import (
	"bytes"
	"cmp"
	"maps"
	"slices"

	"github.com/lestrrat-go/gdtf/s11n"
)

// MarshalPtr constrains PT to be a pointer to T that can be read and
// written back.
type MarshalPtr[T any] interface {
	*T
	Entity
	Marshaler
}

// KeyedMarshalPtr is MarshalPtr for keyed entities.
type KeyedMarshalPtr[K comparable, T any] interface {
	*T
	Keyed[K]
	Marshaler
}

// Marshal writes v as a compact XML fragment.
func Marshal(v Marshaler) ([]byte, error) {
	var buf bytes.Buffer
	w := s11n.NewWriter(&buf)
	if err := v.MarshalGDTF(w); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalList writes items in order, wrapped in T's container element
// when it declares one. Nothing is written for an empty list.
func MarshalList[T any, PT MarshalPtr[T]](w *s11n.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}

	tag, wrapped := ContainerTagName[T, PT]()
	if wrapped {
		if err := w.StartElement(tag); err != nil {
			return err
		}
	}
	for i := range items {
		if err := PT(&items[i]).MarshalGDTF(w); err != nil {
			return err
		}
	}
	if wrapped {
		return w.EndElement(tag)
	}
	return nil
}

// MarshalMap writes the values of m ordered by key, wrapped in T's
// container element when it declares one.
func MarshalMap[K cmp.Ordered, T any, PT KeyedMarshalPtr[K, T]](w *s11n.Writer, m map[K]T) error {
	if len(m) == 0 {
		return nil
	}

	var v T
	tag, wrapped := any(PT(&v)).(Container)
	if wrapped {
		if err := w.StartElement(tag.ContainerTagName()); err != nil {
			return err
		}
	}
	for _, key := range slices.Sorted(maps.Keys(m)) {
		item := m[key]
		if err := PT(&item).MarshalGDTF(w); err != nil {
			return err
		}
	}
	if wrapped {
		return w.EndElement(tag.ContainerTagName())
	}
	return nil
}
