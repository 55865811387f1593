// Package gdtf reads GDTF fixture descriptions into typed entities and
// writes them back out.
//
// A description is parsed in one forward pass. Unknown elements are
// skipped, so descriptions written for newer revisions of the format
// still load; the first real problem aborts the parse with a
// *deparse.ParseError describing it.
package gdtf

import (
	"encoding/xml"

	"github.com/lestrrat-go/gdtf/deparse"
	"github.com/lestrrat-go/gdtf/fixturetype"
	"github.com/lestrrat-go/gdtf/s11n"
)

// GDTF is the root element of description.xml.
type GDTF struct {
	DataVersion string
	FixtureType fixturetype.FixtureType
}

func (GDTF) TagName() string { return "GDTF" }

func (g *GDTF) UnmarshalGDTF(c *deparse.Cursor, start xml.StartElement) error {
	for _, attr := range start.Attr {
		if deparse.AttrKey(attr) == "DataVersion" {
			g.DataVersion = attr.Value
		}
	}

	h := deparse.Handlers{}
	ft := deparse.Single(h, &g.FixtureType)
	if err := c.Walk(h); err != nil {
		return err
	}
	if !ft.Found() {
		return deparse.RequiredValueError("<GDTF> has no <FixtureType>")
	}
	return nil
}

func (g *GDTF) MarshalGDTF(w *s11n.Writer) error {
	var attrs s11n.Attrs
	attrs.AddNonEmpty("DataVersion", g.DataVersion)
	if err := w.StartElement(g.TagName(), attrs...); err != nil {
		return err
	}
	if err := g.FixtureType.MarshalGDTF(w); err != nil {
		return err
	}
	return w.EndElement(g.TagName())
}
