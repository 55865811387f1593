package units

// Snap tells whether a logical channel jumps between values or fades.
type Snap int

const (
	SnapNo Snap = iota
	SnapYes
	SnapOn
	SnapOff
)

// ParseSnap reads a Snap attribute. Anything unknown is SnapNo.
func ParseSnap(s string) Snap {
	switch s {
	case "Yes":
		return SnapYes
	case "On":
		return SnapOn
	case "Off":
		return SnapOff
	}
	return SnapNo
}

func (s Snap) String() string {
	switch s {
	case SnapYes:
		return "Yes"
	case SnapOn:
		return "On"
	case SnapOff:
		return "Off"
	}
	return "No"
}

func (s Snap) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Master is how a logical channel reacts to grand and group masters.
type Master int

const (
	MasterNone Master = iota
	MasterGrand
	MasterGroup
)

// ParseMaster reads a Master attribute. Anything unknown is MasterNone.
func ParseMaster(s string) Master {
	switch s {
	case "Grand":
		return MasterGrand
	case "Group":
		return MasterGroup
	}
	return MasterNone
}

func (m Master) String() string {
	switch m {
	case MasterGrand:
		return "Grand"
	case MasterGroup:
		return "Group"
	}
	return "None"
}

func (m Master) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
