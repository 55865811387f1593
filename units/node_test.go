package units_test

import (
	"context"
	"encoding/xml"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/lestrrat-go/gdtf/deparse"
	"github.com/lestrrat-go/gdtf/units"
	"github.com/stretchr/testify/require"
)

func TestParseNode(t *testing.T) {
	t.Run("segments in order", func(t *testing.T) {
		r := rand.New(rand.NewPCG(5, 6))
		for range 200 {
			segments := make([]string, 1+r.IntN(5))
			for i := range segments {
				segments[i] = randomName(r, nameAlphabet, 1+r.IntN(12))
			}
			s := strings.Join(segments, ".")

			n, err := units.ParseNode(s)
			require.NoError(t, err, "ParseNode(%q) should succeed", s)
			require.False(t, n.IsAbsent())
			require.Len(t, n.Names(), len(segments))
			for i, name := range n.Names() {
				require.Equal(t, segments[i], string(name))
			}
			require.Equal(t, s, n.String())
		}
	})
	t.Run("empty string is absent", func(t *testing.T) {
		n, err := units.ParseNode("")
		require.NoError(t, err)
		require.True(t, n.IsAbsent())
		require.True(t, n.Equal(units.NoNode))
		require.Nil(t, n.Names())

		require.True(t, units.ParseNodeUnchecked("").IsAbsent())
	})
	t.Run("invalid segment", func(t *testing.T) {
		_, err := units.ParseNode("Beam.Go{bo")
		require.True(t, errors.Is(err, deparse.ErrInvalidIdentifier))

		n := units.ParseNodeUnchecked("Beam.Go{bo")
		require.Equal(t, []units.Name{"Beam", "Go{bo"}, n.Names())
	})
	t.Run("sentinel", func(t *testing.T) {
		r := units.ChannelFunctionAttributeResolver
		n, err := r.Parse("NoFeature")
		require.NoError(t, err)
		require.True(t, n.IsAbsent())
		require.True(t, r.ParseUnchecked("NoFeature").IsAbsent())
		require.Equal(t, "NoFeature", r.Format(units.NoNode))

		n, err = units.ParseNode("NoFeature")
		require.NoError(t, err)
		require.False(t, n.IsAbsent(), "only resolvers with a sentinel treat it specially")

		dimmer, err := r.Parse("Dimmer")
		require.NoError(t, err)
		require.Equal(t, "Dimmer", r.Format(dimmer))
	})
	t.Run("explicit empty segment", func(t *testing.T) {
		n := units.NodeFromStringsUnchecked("")
		require.False(t, n.IsAbsent())
		require.Equal(t, []units.Name{""}, n.Names())

		empty := units.NodeFromStringsUnchecked()
		require.False(t, empty.IsAbsent())
		require.Empty(t, empty.Names())
		require.False(t, empty.Equal(units.NoNode))
	})
}

func TestNodeEqual(t *testing.T) {
	one := units.NodeFromStringsUnchecked("One")
	oneTwo := units.NodeFromStringsUnchecked("One", "Two")
	twoOne := units.NodeFromStringsUnchecked("Two", "One")

	require.True(t, units.NoNode.Equal(units.NoNode))
	require.True(t, oneTwo.Equal(units.ParseNodeUnchecked("One.Two")))
	require.False(t, oneTwo.Equal(one), "lengths differ")
	require.False(t, oneTwo.Equal(twoOne), "order matters")
	require.False(t, units.NoNode.Equal(units.NodeFromStringsUnchecked()))

	require.True(t, units.NoNode.EqualAllowEmpty(units.NoNode, true))
	require.False(t, units.NoNode.EqualAllowEmpty(units.NoNode, false), "absent is not equal to itself without allowEmpty")
	require.True(t, one.EqualAllowEmpty(units.NodeFromStringsUnchecked("One"), false))
	require.False(t, one.EqualAllowEmpty(units.NoNode, true))
}

func TestNodeFromStrings(t *testing.T) {
	n, err := units.NodeFromStrings("test", "other")
	require.NoError(t, err)
	require.Equal(t, "test.other", n.String())

	_, err = units.NodeFromStrings("test", "asdf{")
	require.Error(t, err)
}

func TestNodeAttr(t *testing.T) {
	attr := xml.Attr{Name: xml.Name{Local: "Attribute"}, Value: "Some{Invalid.Two"}

	lax := deparse.NewCursorBytes(context.Background(), nil)
	n, err := units.AttrNode(lax, attr)
	require.NoError(t, err)
	require.Equal(t, []units.Name{"Some{Invalid", "Two"}, n.Names())

	strict := deparse.NewCursorBytes(context.Background(), nil, deparse.WithStrictNames(true))
	_, err = units.AttrNode(strict, attr)
	require.True(t, errors.Is(err, deparse.ErrInvalidIdentifier))
}

func TestNodeMarshal(t *testing.T) {
	n := units.ParseNodeUnchecked("Beam.Gobo1")
	text, err := n.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "Beam.Gobo1", string(text))

	b, err := cbor.Marshal(n)
	require.NoError(t, err)
	var s string
	require.NoError(t, cbor.Unmarshal(b, &s))
	require.Equal(t, "Beam.Gobo1", s)

	b, err = cbor.Marshal(units.NoNode)
	require.NoError(t, err)
	var p *string
	require.NoError(t, cbor.Unmarshal(b, &p))
	require.Nil(t, p, "absent nodes are CBOR null")
}
