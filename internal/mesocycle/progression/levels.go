package progression

// SorenessLevel is the answer to a soreness check, asked before a muscle group is trained again.
type SorenessLevel string

const (
	SorenessNone          SorenessLevel = "none"
	SorenessMedium        SorenessLevel = "medium"
	SorenessVerySore      SorenessLevel = "very_sore"
	SorenessExtremelySore SorenessLevel = "extremely_sore"
)

func (s SorenessLevel) String() string {
	return string(s)
}

func (s SorenessLevel) IsValid() bool {
	switch s {
	case SorenessNone,
		SorenessMedium,
		SorenessVerySore,
		SorenessExtremelySore:
		return true
	default:
		return false
	}
}

// Healed reports whether the muscle group recovered fully since it was last trained.
func (s SorenessLevel) Healed() bool {
	return s == SorenessNone
}

// PumpLevel is the muscle pump reported after a muscle group is done for the day.
type PumpLevel string

const (
	PumpNone    PumpLevel = "none"
	PumpMedium  PumpLevel = "medium"
	PumpAmazing PumpLevel = "amazing"

	// DefaultPump is assumed for muscle groups without any reported pump.
	DefaultPump = PumpMedium
)

func (p PumpLevel) String() string {
	return string(p)
}

func (p PumpLevel) IsValid() bool {
	switch p {
	case PumpNone, PumpMedium, PumpAmazing:
		return true
	default:
		return false
	}
}
