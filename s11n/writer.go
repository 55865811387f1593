// Package s11n writes entity graphs back out as XML.
package s11n

import (
	"fmt"
	"io"
	"strings"
)

// Attr is one attribute of an element being written.
type Attr struct {
	Name  string
	Value string
}

// Attrs collects attributes in the order they are added.
type Attrs []Attr

// Add appends an attribute.
func (a *Attrs) Add(name, value string) {
	*a = append(*a, Attr{Name: name, Value: value})
}

// AddOption appends an attribute only if value is non-nil.
func (a *Attrs) AddOption(name string, value *string) {
	if value == nil {
		return
	}
	a.Add(name, *value)
}

// AddNonEmpty appends an attribute only if value is not empty.
func (a *Attrs) AddNonEmpty(name, value string) {
	if value == "" {
		return
	}
	a.Add(name, value)
}

// Writer emits XML elements. Errors are sticky: once a write fails every
// later call returns the same error.
type Writer struct {
	out    io.Writer
	indent string
	open   []string
	wrote  bool
	err    error
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// SetIndent makes the writer put each element on its own line, indented
// by one copy of s per nesting level.
func (w *Writer) SetIndent(s string) {
	w.indent = s
}

// Err returns the first error encountered.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) writeString(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.out, s)
	w.wrote = true
}

func (w *Writer) newline() {
	if w.indent == "" || !w.wrote {
		return
	}
	w.writeString("\n" + strings.Repeat(w.indent, len(w.open)))
}

// Declaration writes the XML declaration.
func (w *Writer) Declaration() error {
	w.writeString(`<?xml version="1.0" encoding="UTF-8" standalone="no" ?>`)
	return w.err
}

func (w *Writer) startTag(name string, attrs []Attr) {
	w.newline()
	w.writeString("<" + name)
	for _, attr := range attrs {
		w.writeString(" " + attr.Name + `="`)
		if w.err == nil {
			w.err = EscapeAttrValue(w.out, attr.Value)
		}
		w.writeString(`"`)
	}
}

// StartElement writes a start tag. Every StartElement must be matched
// by an EndElement with the same name.
func (w *Writer) StartElement(name string, attrs ...Attr) error {
	w.startTag(name, attrs)
	w.writeString(">")
	w.open = append(w.open, name)
	return w.err
}

// EmptyElement writes a self-closing element.
func (w *Writer) EmptyElement(name string, attrs ...Attr) error {
	w.startTag(name, attrs)
	w.writeString("/>")
	return w.err
}

// EndElement closes the most recently started element.
func (w *Writer) EndElement(name string) error {
	if w.err != nil {
		return w.err
	}
	l := len(w.open)
	if l == 0 {
		w.err = fmt.Errorf("s11n: end element </%s> without a start element", name)
		return w.err
	}
	if top := w.open[l-1]; top != name {
		w.err = fmt.Errorf("s11n: end element </%s> does not close <%s>", name, top)
		return w.err
	}
	w.open = w.open[:l-1]
	w.newline()
	w.writeString("</" + name + ">")
	return w.err
}
