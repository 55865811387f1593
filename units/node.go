package units

import (
	"encoding/xml"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/lestrrat-go/gdtf/deparse"
)

// Node is a reference to another entity, written as names joined by
// dots, e.g. "Beam.Gobo1". A Node is either absent (NoNode) or holds
// an ordered list of names.
type Node struct {
	names   []Name
	present bool
}

// NoNode is the absent reference.
var NoNode = Node{}

// Resolver parses Node attributes. The empty string and Sentinel, when
// set, both stand for the absent reference.
type Resolver struct {
	Sentinel string
}

// ChannelFunctionAttributeResolver reads ChannelFunction Attribute
// references, which use "NoFeature" for no reference.
var ChannelFunctionAttributeResolver = Resolver{Sentinel: "NoFeature"}

func (r Resolver) absent(s string) bool {
	return s == "" || (r.Sentinel != "" && s == r.Sentinel)
}

// Parse splits s on '.' and validates every segment with NewName. The
// first invalid segment fails the parse.
func (r Resolver) Parse(s string) (Node, error) {
	if r.absent(s) {
		return NoNode, nil
	}
	return NodeFromStrings(strings.Split(s, ".")...)
}

// ParseUnchecked is Parse without validation. It never fails.
func (r Resolver) ParseUnchecked(s string) Node {
	if r.absent(s) {
		return NoNode
	}
	return NodeFromStringsUnchecked(strings.Split(s, ".")...)
}

// Format renders n so that r parses it back to an equal Node.
func (r Resolver) Format(n Node) string {
	if !n.present {
		return r.Sentinel
	}
	return n.String()
}

// Attr reads a Node attribute, validating it in strict mode.
func (r Resolver) Attr(c *deparse.Cursor, attr xml.Attr) (Node, error) {
	if c.Strict() {
		return r.Parse(attr.Value)
	}
	return r.ParseUnchecked(attr.Value), nil
}

// ParseNode parses s with no sentinel.
func ParseNode(s string) (Node, error) {
	return Resolver{}.Parse(s)
}

// ParseNodeUnchecked parses s with no sentinel and no validation.
func ParseNodeUnchecked(s string) Node {
	return Resolver{}.ParseUnchecked(s)
}

// AttrNode reads a Node attribute with no sentinel.
func AttrNode(c *deparse.Cursor, attr xml.Attr) (Node, error) {
	return Resolver{}.Attr(c, attr)
}

// NodeFromStrings builds a present Node from validated segments.
func NodeFromStrings(segments ...string) (Node, error) {
	names := make([]Name, 0, len(segments))
	for _, s := range segments {
		n, err := NewName(s)
		if err != nil {
			return NoNode, err
		}
		names = append(names, n)
	}
	return Node{names: names, present: true}, nil
}

// NodeFromStringsUnchecked builds a present Node from segments taken
// verbatim. Unlike ParseNodeUnchecked(""), NodeFromStringsUnchecked("")
// is a one-segment Node holding the empty name.
func NodeFromStringsUnchecked(segments ...string) Node {
	names := make([]Name, len(segments))
	for i, s := range segments {
		names[i] = UncheckedName(s)
	}
	return Node{names: names, present: true}
}

// IsAbsent reports whether n is NoNode.
func (n Node) IsAbsent() bool {
	return !n.present
}

// Names returns a copy of the segments of n, nil when absent.
func (n Node) Names() []Name {
	if !n.present {
		return nil
	}
	names := make([]Name, len(n.names))
	copy(names, n.names)
	return names
}

func (n Node) String() string {
	var sb strings.Builder
	for i, name := range n.names {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(string(name))
	}
	return sb.String()
}

// Equal reports whether n and o are the same reference. Two absent
// Nodes are equal.
func (n Node) Equal(o Node) bool {
	if n.present != o.present || len(n.names) != len(o.names) {
		return false
	}
	for i := range n.names {
		if n.names[i] != o.names[i] {
			return false
		}
	}
	return true
}

// EqualAllowEmpty is Equal for test assertions: two absent Nodes are
// only equal when allowEmpty is set.
func (n Node) EqualAllowEmpty(o Node, allowEmpty bool) bool {
	if !n.present && !o.present {
		return allowEmpty
	}
	return n.Equal(o)
}

func (n Node) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n Node) MarshalCBOR() ([]byte, error) {
	if !n.present {
		return cbor.Marshal(nil)
	}
	return cborString(n.String())
}

func cborString(s string) ([]byte, error) {
	return cbor.Marshal(s)
}
