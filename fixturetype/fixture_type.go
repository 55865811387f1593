// Package fixturetype holds the entities of a GDTF fixture type: the
// fixture type itself, its attribute definitions and its DMX modes.
package fixturetype

import (
	"encoding/xml"

	"github.com/lestrrat-go/gdtf/deparse"
	"github.com/lestrrat-go/gdtf/s11n"
	"github.com/lestrrat-go/gdtf/units"
)

// FixtureType is the starting point of a fixture description.
type FixtureType struct {
	Name          units.Name
	ShortName     string
	LongName      string
	Manufacturer  string
	Description   string
	FixtureTypeID units.GUID
	// Thumbnail is the file name, without extension, of the thumbnail
	// resources in the archive.
	Thumbnail *string
	// RefFT references the fixture type this one was derived from.
	RefFT                *units.GUID
	AttributeDefinitions AttributeDefinitions
	DmxModes             map[units.Name]DmxMode
}

func (FixtureType) TagName() string { return "FixtureType" }

func (ft *FixtureType) UnmarshalGDTF(c *deparse.Cursor, start xml.StartElement) error {
	var hasID bool
	for _, attr := range start.Attr {
		var err error
		switch deparse.AttrKey(attr) {
		case "Name":
			ft.Name, err = units.AttrName(c, attr)
		case "ShortName":
			ft.ShortName = attr.Value
		case "LongName":
			ft.LongName = attr.Value
		case "Manufacturer":
			ft.Manufacturer = attr.Value
		case "Description":
			ft.Description = attr.Value
		case "FixtureTypeID":
			hasID = attr.Value != ""
			ft.FixtureTypeID, err = deparse.AttrParse(attr, units.ParseGUID)
		case "Thumbnail":
			ft.Thumbnail = deparse.AttrStringOption(attr)
		case "RefFT":
			if attr.Value != "" {
				ft.RefFT, err = deparse.AttrParseOption(attr, units.ParseGUID)
			}
		}
		if err != nil {
			return err
		}
	}

	if ft.Name == units.NoName {
		return deparse.RequiredValueError("<FixtureType> has no Name")
	}
	if !hasID {
		return deparse.RequiredValueError("<FixtureType %s> has no FixtureTypeID", ft.Name)
	}

	h := deparse.Handlers{}
	defs := deparse.Single(h, &ft.AttributeDefinitions)
	deparse.Map(h, &ft.DmxModes)
	if err := c.Walk(h); err != nil {
		return err
	}
	if !defs.Found() {
		return deparse.RequiredValueError("<FixtureType %s> has no <AttributeDefinitions>", ft.Name)
	}
	return nil
}

func (ft *FixtureType) MarshalGDTF(w *s11n.Writer) error {
	var attrs s11n.Attrs
	attrs.Add("Name", ft.Name.String())
	attrs.AddNonEmpty("ShortName", ft.ShortName)
	attrs.AddNonEmpty("LongName", ft.LongName)
	attrs.AddNonEmpty("Manufacturer", ft.Manufacturer)
	attrs.AddNonEmpty("Description", ft.Description)
	attrs.Add("FixtureTypeID", ft.FixtureTypeID.Canonical())
	attrs.AddOption("Thumbnail", ft.Thumbnail)
	if ft.RefFT != nil {
		attrs.Add("RefFT", ft.RefFT.Canonical())
	}

	if err := w.StartElement(ft.TagName(), attrs...); err != nil {
		return err
	}
	if err := ft.AttributeDefinitions.MarshalGDTF(w); err != nil {
		return err
	}
	if err := deparse.MarshalMap(w, ft.DmxModes); err != nil {
		return err
	}
	return w.EndElement(ft.TagName())
}
