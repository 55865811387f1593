package s11n_test

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/lestrrat-go/gdtf/s11n"
	"github.com/stretchr/testify/require"
)

func TestEscapeAttrValue(t *testing.T) {
	inputs := map[string]string{
		`plain`:          `plain`,
		`a "quoted" one`: `a &#34;quoted&#34; one`,
		`<&>`:            `&lt;&amp;&gt;`,
		"tab\tnl\ncr\r":  `tab&#9;nl&#10;cr&#13;`,
		"Café":           "Café",
		"bad\x00char":    "bad\uFFFDchar",
	}
	for input, expected := range inputs {
		var buf bytes.Buffer
		require.NoError(t, s11n.EscapeAttrValue(&buf, input), "EscapeAttrValue(%q) should succeed", input)
		require.Equal(t, expected, buf.String(), "EscapeAttrValue(%q)", input)
	}
}

func TestEscapeAttrValueIsReversible(t *testing.T) {
	const value = "P&T <\"pan\">\n\ttilt"

	var buf bytes.Buffer
	w := s11n.NewWriter(&buf)
	require.NoError(t, w.EmptyElement("A", s11n.Attr{Name: "Name", Value: value}))

	dec := xml.NewDecoder(strings.NewReader(buf.String()))
	tok, err := dec.Token()
	require.NoError(t, err)
	start, ok := tok.(xml.StartElement)
	require.True(t, ok, "first token should be a start element")
	require.Len(t, start.Attr, 1)
	require.Equal(t, value, start.Attr[0].Value)
}

func TestWriter(t *testing.T) {
	t.Run("compact", func(t *testing.T) {
		var buf bytes.Buffer
		w := s11n.NewWriter(&buf)
		var attrs s11n.Attrs
		attrs.Add("Name", "Mode 1")
		attrs.AddOption("Missing", nil)
		attrs.AddNonEmpty("Empty", "")
		require.NoError(t, w.StartElement("DMXMode", attrs...))
		require.NoError(t, w.EmptyElement("DMXChannels"))
		require.NoError(t, w.EndElement("DMXMode"))
		require.Equal(t, `<DMXMode Name="Mode 1"><DMXChannels/></DMXMode>`, buf.String())
	})
	t.Run("indented", func(t *testing.T) {
		var buf bytes.Buffer
		w := s11n.NewWriter(&buf)
		w.SetIndent("  ")
		require.NoError(t, w.Declaration())
		require.NoError(t, w.StartElement("GDTF"))
		require.NoError(t, w.EmptyElement("FixtureType"))
		require.NoError(t, w.EndElement("GDTF"))
		const expected = `<?xml version="1.0" encoding="UTF-8" standalone="no" ?>
<GDTF>
  <FixtureType/>
</GDTF>`
		require.Equal(t, expected, buf.String())
	})
	t.Run("mismatched end", func(t *testing.T) {
		var buf bytes.Buffer
		w := s11n.NewWriter(&buf)
		require.NoError(t, w.StartElement("A"))
		require.Error(t, w.EndElement("B"), "closing the wrong element should fail")
		require.Error(t, w.EmptyElement("C"), "errors are sticky")
		require.Error(t, w.Err())
	})
	t.Run("end without start", func(t *testing.T) {
		w := s11n.NewWriter(&bytes.Buffer{})
		require.Error(t, w.EndElement("A"))
	})
}
