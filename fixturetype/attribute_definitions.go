package fixturetype

import (
	"encoding/xml"

	"github.com/lestrrat-go/gdtf/deparse"
	"github.com/lestrrat-go/gdtf/s11n"
	"github.com/lestrrat-go/gdtf/units"
)

// AttributeDefinitions lists every attribute used by the fixture type,
// together with the groups those attributes are organized in.
type AttributeDefinitions struct {
	ActivationGroups []ActivationGroup
	FeatureGroups    map[units.Name]FeatureGroup
	Attributes       map[units.Name]Attribute
}

func (AttributeDefinitions) TagName() string { return "AttributeDefinitions" }

func (d *AttributeDefinitions) UnmarshalGDTF(c *deparse.Cursor, _ xml.StartElement) error {
	h := deparse.Handlers{}
	deparse.List(h, &d.ActivationGroups)
	deparse.Map(h, &d.FeatureGroups)
	deparse.Map(h, &d.Attributes)
	return c.Walk(h)
}

func (d *AttributeDefinitions) MarshalGDTF(w *s11n.Writer) error {
	if err := w.StartElement(d.TagName()); err != nil {
		return err
	}
	if err := deparse.MarshalList(w, d.ActivationGroups); err != nil {
		return err
	}
	if err := deparse.MarshalMap(w, d.FeatureGroups); err != nil {
		return err
	}
	if err := deparse.MarshalMap(w, d.Attributes); err != nil {
		return err
	}
	return w.EndElement(d.TagName())
}

// ActivationGroup groups attributes that can only be applied together,
// such as pan and tilt.
type ActivationGroup struct {
	Name units.Name
}

func (ActivationGroup) TagName() string          { return "ActivationGroup" }
func (ActivationGroup) ContainerTagName() string { return "ActivationGroups" }

func (g *ActivationGroup) UnmarshalGDTF(c *deparse.Cursor, start xml.StartElement) error {
	for _, attr := range start.Attr {
		if deparse.AttrKey(attr) == "Name" {
			name, err := units.AttrName(c, attr)
			if err != nil {
				return err
			}
			g.Name = name
		}
	}
	return c.Skip()
}

func (g *ActivationGroup) MarshalGDTF(w *s11n.Writer) error {
	var attrs s11n.Attrs
	attrs.AddNonEmpty("Name", g.Name.String())
	return w.EmptyElement(g.TagName(), attrs...)
}

// FeatureGroup is a named group of features, e.g. "Position".
type FeatureGroup struct {
	Name     units.Name
	Pretty   string
	Features []Feature
}

func (FeatureGroup) TagName() string          { return "FeatureGroup" }
func (FeatureGroup) ContainerTagName() string { return "FeatureGroups" }
func (g FeatureGroup) PrimaryKey() units.Name { return g.Name }

func (g *FeatureGroup) UnmarshalGDTF(c *deparse.Cursor, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch deparse.AttrKey(attr) {
		case "Name":
			name, err := units.AttrName(c, attr)
			if err != nil {
				return err
			}
			g.Name = name
		case "Pretty":
			g.Pretty = attr.Value
		}
	}

	h := deparse.Handlers{}
	deparse.List(h, &g.Features)
	return c.Walk(h)
}

func (g *FeatureGroup) MarshalGDTF(w *s11n.Writer) error {
	var attrs s11n.Attrs
	attrs.Add("Name", g.Name.String())
	attrs.AddNonEmpty("Pretty", g.Pretty)
	if len(g.Features) == 0 {
		return w.EmptyElement(g.TagName(), attrs...)
	}
	if err := w.StartElement(g.TagName(), attrs...); err != nil {
		return err
	}
	if err := deparse.MarshalList(w, g.Features); err != nil {
		return err
	}
	return w.EndElement(g.TagName())
}

// Feature is one feature of a FeatureGroup, e.g. "PanTilt".
type Feature struct {
	Name units.Name
}

func (Feature) TagName() string { return "Feature" }

func (f *Feature) UnmarshalGDTF(c *deparse.Cursor, start xml.StartElement) error {
	for _, attr := range start.Attr {
		if deparse.AttrKey(attr) == "Name" {
			name, err := units.AttrName(c, attr)
			if err != nil {
				return err
			}
			f.Name = name
		}
	}
	return c.Skip()
}

func (f *Feature) MarshalGDTF(w *s11n.Writer) error {
	return w.EmptyElement(f.TagName(), s11n.Attr{Name: "Name", Value: f.Name.String()})
}

// Attribute describes one mutually exclusive control function, e.g.
// "Pan" or "Gobo1".
type Attribute struct {
	Name            units.Name
	Pretty          string
	ActivationGroup *string
	Feature         units.Node
	MainAttribute   *string
	PhysicalUnit    units.PhysicalUnit
	// Color is nil when absent and when the attribute value is not a
	// valid color.
	Color *units.ColorCIE
}

func (Attribute) TagName() string          { return "Attribute" }
func (Attribute) ContainerTagName() string { return "Attributes" }
func (a Attribute) PrimaryKey() units.Name { return a.Name }

func (a *Attribute) UnmarshalGDTF(c *deparse.Cursor, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch deparse.AttrKey(attr) {
		case "Name":
			name, err := units.AttrName(c, attr)
			if err != nil {
				return err
			}
			a.Name = name
		case "Pretty":
			a.Pretty = attr.Value
		case "ActivationGroup":
			a.ActivationGroup = deparse.AttrStringOption(attr)
		case "Feature":
			feature, err := units.AttrNode(c, attr)
			if err != nil {
				return err
			}
			a.Feature = feature
		case "MainAttribute":
			a.MainAttribute = deparse.AttrStringOption(attr)
		case "PhysicalUnit":
			a.PhysicalUnit = units.ParsePhysicalUnit(attr.Value)
		case "Color":
			if color, err := units.ParseColorCIE(attr.Value); err == nil {
				a.Color = &color
			} else {
				c.Logger().Debug("ignoring malformed color", "attribute", a.Name, "error", err)
			}
		}
	}
	return c.Skip()
}

func (a *Attribute) MarshalGDTF(w *s11n.Writer) error {
	var attrs s11n.Attrs
	attrs.Add("Name", a.Name.String())
	attrs.AddNonEmpty("Pretty", a.Pretty)
	attrs.AddOption("ActivationGroup", a.ActivationGroup)
	attrs.AddNonEmpty("Feature", a.Feature.String())
	attrs.AddOption("MainAttribute", a.MainAttribute)
	attrs.Add("PhysicalUnit", a.PhysicalUnit.String())
	if a.Color != nil {
		attrs.Add("Color", a.Color.String())
	}
	return w.EmptyElement(a.TagName(), attrs...)
}
