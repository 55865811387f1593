package fixturetype

import (
	"encoding/xml"
	"strconv"

	"github.com/lestrrat-go/gdtf/deparse"
	"github.com/lestrrat-go/gdtf/s11n"
	"github.com/lestrrat-go/gdtf/units"
)

// DmxMode describes how a part of the device is controlled in one mode.
type DmxMode struct {
	Name units.Name
	// Geometry is the first geometry of the device the mode applies to.
	Geometry    units.Name
	DmxChannels []DmxChannel
}

func (DmxMode) TagName() string          { return "DMXMode" }
func (DmxMode) ContainerTagName() string { return "DMXModes" }
func (m DmxMode) PrimaryKey() units.Name { return m.Name }

func (m *DmxMode) UnmarshalGDTF(c *deparse.Cursor, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch deparse.AttrKey(attr) {
		case "Name":
			name, err := units.AttrName(c, attr)
			if err != nil {
				return err
			}
			m.Name = name
		case "Geometry":
			geometry, err := units.AttrName(c, attr)
			if err != nil {
				return err
			}
			m.Geometry = geometry
		}
	}

	h := deparse.Handlers{}
	deparse.List(h, &m.DmxChannels)
	return c.Walk(h)
}

func (m *DmxMode) MarshalGDTF(w *s11n.Writer) error {
	var attrs s11n.Attrs
	attrs.Add("Name", m.Name.String())
	attrs.AddNonEmpty("Geometry", m.Geometry.String())
	if err := w.StartElement(m.TagName(), attrs...); err != nil {
		return err
	}
	if err := deparse.MarshalList(w, m.DmxChannels); err != nil {
		return err
	}
	return w.EndElement(m.TagName())
}

// DmxChannel is one channel of a DMX mode, possibly spanning several
// DMX addresses.
type DmxChannel struct {
	DmxBreak units.DmxBreak
	// Offset is nil for virtual channels.
	Offset          units.Offset
	InitialFunction units.Node
	Highlight       *units.DmxValue
	Geometry        units.Name
	LogicalChannels []LogicalChannel
}

func (DmxChannel) TagName() string          { return "DMXChannel" }
func (DmxChannel) ContainerTagName() string { return "DMXChannels" }

func (ch *DmxChannel) UnmarshalGDTF(c *deparse.Cursor, start xml.StartElement) error {
	ch.DmxBreak = units.DefaultDmxBreak
	for _, attr := range start.Attr {
		var err error
		switch deparse.AttrKey(attr) {
		case "DMXBreak":
			ch.DmxBreak, err = deparse.AttrParse(attr, units.ParseDmxBreak)
		case "Offset":
			ch.Offset, err = deparse.AttrParse(attr, units.ParseOffset)
		case "InitialFunction":
			ch.InitialFunction, err = units.AttrNode(c, attr)
		case "Highlight":
			if attr.Value != "None" {
				ch.Highlight, err = deparse.AttrParseOption(attr, units.ParseDmxValue)
			}
		case "Geometry":
			ch.Geometry, err = units.AttrName(c, attr)
		}
		if err != nil {
			return err
		}
	}

	h := deparse.Handlers{}
	deparse.List(h, &ch.LogicalChannels)
	return c.Walk(h)
}

func (ch *DmxChannel) MarshalGDTF(w *s11n.Writer) error {
	var attrs s11n.Attrs
	attrs.Add("DMXBreak", ch.DmxBreak.String())
	attrs.Add("Offset", ch.Offset.String())
	attrs.AddNonEmpty("InitialFunction", ch.InitialFunction.String())
	if ch.Highlight != nil {
		attrs.Add("Highlight", ch.Highlight.String())
	} else {
		attrs.Add("Highlight", "None")
	}
	attrs.AddNonEmpty("Geometry", ch.Geometry.String())

	if err := w.StartElement(ch.TagName(), attrs...); err != nil {
		return err
	}
	if err := deparse.MarshalList(w, ch.LogicalChannels); err != nil {
		return err
	}
	return w.EndElement(ch.TagName())
}

// LogicalChannel binds a DMX channel to one attribute.
type LogicalChannel struct {
	Attribute          units.Node
	Snap               units.Snap
	Master             units.Master
	MibFade            float64
	DmxChangeTimeLimit float64
	ChannelFunctions   []ChannelFunction
}

func (LogicalChannel) TagName() string { return "LogicalChannel" }

func (lc *LogicalChannel) UnmarshalGDTF(c *deparse.Cursor, start xml.StartElement) error {
	for _, attr := range start.Attr {
		var err error
		switch deparse.AttrKey(attr) {
		case "Attribute":
			lc.Attribute, err = units.AttrNode(c, attr)
		case "Snap":
			lc.Snap = units.ParseSnap(attr.Value)
		case "Master":
			lc.Master = units.ParseMaster(attr.Value)
		case "MibFade":
			lc.MibFade, err = deparse.AttrFloat(attr)
		case "DMXChangeTimeLimit":
			lc.DmxChangeTimeLimit, err = deparse.AttrFloat(attr)
		}
		if err != nil {
			return err
		}
	}

	h := deparse.Handlers{}
	deparse.List(h, &lc.ChannelFunctions)
	return c.Walk(h)
}

func (lc *LogicalChannel) MarshalGDTF(w *s11n.Writer) error {
	var attrs s11n.Attrs
	attrs.AddNonEmpty("Attribute", lc.Attribute.String())
	attrs.Add("Snap", lc.Snap.String())
	attrs.Add("Master", lc.Master.String())
	attrs.Add("MibFade", deparse.FormatFloat(lc.MibFade))
	attrs.Add("DMXChangeTimeLimit", deparse.FormatFloat(lc.DmxChangeTimeLimit))

	if err := w.StartElement(lc.TagName(), attrs...); err != nil {
		return err
	}
	if err := deparse.MarshalList(w, lc.ChannelFunctions); err != nil {
		return err
	}
	return w.EndElement(lc.TagName())
}

// ChannelFunction is a range of DMX values of a logical channel with
// one meaning.
type ChannelFunction struct {
	Name units.Name
	// Attribute is absent for "NoFeature".
	Attribute         units.Node
	OriginalAttribute string
	DmxFrom           units.DmxValue
	Default           units.DmxValue
	PhysicalFrom      float64
	PhysicalTo        float64
	RealFade          float64
	Wheel             units.Node
	Emitter           units.Node
	Filter            units.Node
	ModeMaster        units.Node
	ModeFrom          units.DmxValue
	ModeTo            units.DmxValue
	ChannelSets       []ChannelSet
}

func (ChannelFunction) TagName() string { return "ChannelFunction" }

func (f *ChannelFunction) UnmarshalGDTF(c *deparse.Cursor, start xml.StartElement) error {
	f.PhysicalTo = 1
	for _, attr := range start.Attr {
		var err error
		switch deparse.AttrKey(attr) {
		case "Name":
			f.Name, err = units.AttrName(c, attr)
		case "Attribute":
			f.Attribute, err = units.ChannelFunctionAttributeResolver.Attr(c, attr)
		case "OriginalAttribute":
			f.OriginalAttribute = attr.Value
		case "DMXFrom":
			f.DmxFrom, err = deparse.AttrParse(attr, units.ParseDmxValue)
		case "Default":
			f.Default, err = deparse.AttrParse(attr, units.ParseDmxValue)
		case "PhysicalFrom":
			f.PhysicalFrom, err = deparse.AttrFloat(attr)
		case "PhysicalTo":
			f.PhysicalTo, err = deparse.AttrFloat(attr)
		case "RealFade":
			f.RealFade, err = deparse.AttrFloat(attr)
		case "Wheel":
			f.Wheel, err = units.AttrNode(c, attr)
		case "Emitter":
			f.Emitter, err = units.AttrNode(c, attr)
		case "Filter":
			f.Filter, err = units.AttrNode(c, attr)
		case "ModeMaster":
			f.ModeMaster, err = units.AttrNode(c, attr)
		case "ModeFrom":
			f.ModeFrom, err = deparse.AttrParse(attr, units.ParseDmxValue)
		case "ModeTo":
			f.ModeTo, err = deparse.AttrParse(attr, units.ParseDmxValue)
		}
		if err != nil {
			return err
		}
	}

	h := deparse.Handlers{}
	deparse.List(h, &f.ChannelSets)
	return c.Walk(h)
}

func (f *ChannelFunction) MarshalGDTF(w *s11n.Writer) error {
	var attrs s11n.Attrs
	attrs.AddNonEmpty("Name", f.Name.String())
	attrs.Add("Attribute", units.ChannelFunctionAttributeResolver.Format(f.Attribute))
	attrs.AddNonEmpty("OriginalAttribute", f.OriginalAttribute)
	addDmxValue(&attrs, "DMXFrom", f.DmxFrom)
	addDmxValue(&attrs, "Default", f.Default)
	attrs.Add("PhysicalFrom", deparse.FormatFloat(f.PhysicalFrom))
	attrs.Add("PhysicalTo", deparse.FormatFloat(f.PhysicalTo))
	attrs.Add("RealFade", deparse.FormatFloat(f.RealFade))
	attrs.AddNonEmpty("Wheel", f.Wheel.String())
	attrs.AddNonEmpty("Emitter", f.Emitter.String())
	attrs.AddNonEmpty("Filter", f.Filter.String())
	attrs.AddNonEmpty("ModeMaster", f.ModeMaster.String())
	addDmxValue(&attrs, "ModeFrom", f.ModeFrom)
	addDmxValue(&attrs, "ModeTo", f.ModeTo)

	if len(f.ChannelSets) == 0 {
		return w.EmptyElement(f.TagName(), attrs...)
	}
	if err := w.StartElement(f.TagName(), attrs...); err != nil {
		return err
	}
	if err := deparse.MarshalList(w, f.ChannelSets); err != nil {
		return err
	}
	return w.EndElement(f.TagName())
}

// ChannelSet names a sub range of a channel function, e.g. one gobo.
type ChannelSet struct {
	Name           units.Name
	DmxFrom        units.DmxValue
	PhysicalFrom   float64
	PhysicalTo     float64
	WheelSlotIndex int
}

func (ChannelSet) TagName() string { return "ChannelSet" }

func (s *ChannelSet) UnmarshalGDTF(c *deparse.Cursor, start xml.StartElement) error {
	for _, attr := range start.Attr {
		var err error
		switch deparse.AttrKey(attr) {
		case "Name":
			s.Name, err = units.AttrName(c, attr)
		case "DMXFrom":
			s.DmxFrom, err = deparse.AttrParse(attr, units.ParseDmxValue)
		case "PhysicalFrom":
			s.PhysicalFrom, err = deparse.AttrFloat(attr)
		case "PhysicalTo":
			s.PhysicalTo, err = deparse.AttrFloat(attr)
		case "WheelSlotIndex":
			s.WheelSlotIndex, err = deparse.AttrInt(attr)
		}
		if err != nil {
			return err
		}
	}
	return c.Skip()
}

func (s *ChannelSet) MarshalGDTF(w *s11n.Writer) error {
	var attrs s11n.Attrs
	attrs.AddNonEmpty("Name", s.Name.String())
	addDmxValue(&attrs, "DMXFrom", s.DmxFrom)
	if s.PhysicalFrom != 0 {
		attrs.Add("PhysicalFrom", deparse.FormatFloat(s.PhysicalFrom))
	}
	if s.PhysicalTo != 0 {
		attrs.Add("PhysicalTo", deparse.FormatFloat(s.PhysicalTo))
	}
	if s.WheelSlotIndex != 0 {
		attrs.Add("WheelSlotIndex", strconv.Itoa(s.WheelSlotIndex))
	}
	return w.EmptyElement(s.TagName(), attrs...)
}

func addDmxValue(attrs *s11n.Attrs, name string, v units.DmxValue) {
	if v.IsZero() {
		return
	}
	attrs.Add(name, v.String())
}
