package units

// PhysicalUnit is the unit an Attribute's physical values are given in.
type PhysicalUnit int

const (
	PhysicalUnitNone PhysicalUnit = iota
	PhysicalUnitPercent
	PhysicalUnitLength
	PhysicalUnitMass
	PhysicalUnitTime
	PhysicalUnitTemperature
	PhysicalUnitLuminousIntensity
	PhysicalUnitAngle
	PhysicalUnitForce
	PhysicalUnitFrequency
	PhysicalUnitCurrent
	PhysicalUnitVoltage
	PhysicalUnitPower
	PhysicalUnitEnergy
	PhysicalUnitArea
	PhysicalUnitVolume
	PhysicalUnitSpeed
	PhysicalUnitAcceleration
	PhysicalUnitAngularSpeed
	PhysicalUnitAngularAccc
	PhysicalUnitWaveLength
	PhysicalUnitColorComponent
)

var physicalUnitNames = [...]string{
	PhysicalUnitNone:              "None",
	PhysicalUnitPercent:           "Percent",
	PhysicalUnitLength:            "Length",
	PhysicalUnitMass:              "Mass",
	PhysicalUnitTime:              "Time",
	PhysicalUnitTemperature:       "Temperature",
	PhysicalUnitLuminousIntensity: "LuminousIntensity",
	PhysicalUnitAngle:             "Angle",
	PhysicalUnitForce:             "Force",
	PhysicalUnitFrequency:         "Frequency",
	PhysicalUnitCurrent:           "Current",
	PhysicalUnitVoltage:           "Voltage",
	PhysicalUnitPower:             "Power",
	PhysicalUnitEnergy:            "Energy",
	PhysicalUnitArea:              "Area",
	PhysicalUnitVolume:            "Volume",
	PhysicalUnitSpeed:             "Speed",
	PhysicalUnitAcceleration:      "Acceleration",
	PhysicalUnitAngularSpeed:      "AngularSpeed",
	PhysicalUnitAngularAccc:       "AngularAccc",
	PhysicalUnitWaveLength:        "WaveLength",
	PhysicalUnitColorComponent:    "ColorComponent",
}

// ParsePhysicalUnit maps a PhysicalUnit attribute value to its unit.
// Unknown values, including the empty string, are PhysicalUnitNone.
func ParsePhysicalUnit(s string) PhysicalUnit {
	for i, name := range physicalUnitNames {
		if name == s {
			return PhysicalUnit(i)
		}
	}
	return PhysicalUnitNone
}

func (u PhysicalUnit) String() string {
	if u < 0 || int(u) >= len(physicalUnitNames) {
		return physicalUnitNames[PhysicalUnitNone]
	}
	return physicalUnitNames[u]
}

func (u PhysicalUnit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}
