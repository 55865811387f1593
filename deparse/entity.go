package deparse

import (
	"encoding/xml"

	"github.com/lestrrat-go/gdtf/s11n"
)

// Entity is implemented by every type that can be built from one
// element of a description.
type Entity interface {
	// TagName is the name of the element the entity is built from.
	TagName() string
	// UnmarshalGDTF fills the receiver from start's attributes and the
	// children that follow. It must consume exactly its own element.
	UnmarshalGDTF(c *Cursor, start xml.StartElement) error
}

// Container is implemented by entities that normally appear as children
// of a wrapping collection element, such as Attribute inside Attributes.
type Container interface {
	ContainerTagName() string
}

// Keyed is an Entity stored in a map under its primary key.
type Keyed[K comparable] interface {
	Entity
	PrimaryKey() K
}

// Marshaler writes an entity back out as the element it was built from.
type Marshaler interface {
	MarshalGDTF(w *s11n.Writer) error
}

// EntityPtr constrains PT to be a pointer to T implementing Entity.
type EntityPtr[T any] interface {
	*T
	Entity
}

// KeyedPtr constrains PT to be a pointer to T implementing Keyed[K].
type KeyedPtr[K comparable, T any] interface {
	*T
	Keyed[K]
}

// ContainerTagName returns the container tag declared by T, if any.
func ContainerTagName[T any, PT EntityPtr[T]]() (string, bool) {
	var v T
	if ct, ok := any(PT(&v)).(Container); ok {
		return ct.ContainerTagName(), true
	}
	return "", false
}

func tagNameOf[T any, PT EntityPtr[T]]() string {
	var v T
	return PT(&v).TagName()
}
