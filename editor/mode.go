package editor

// Mode is the active editing mode.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeInsert
	// ModeOperator is reserved for operator-pending input. It has a dispatch
	// table, but no binding enters it.
	ModeOperator
	ModeEx
)

// Modes lists every mode in declaration order.
func Modes() []Mode {
	return []Mode{ModeNormal, ModeInsert, ModeOperator, ModeEx}
}

// String returns the mode label shown to the user.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeOperator:
		return "OPERATOR"
	case ModeEx:
		return "EX"
	default:
		return "UNKNOWN"
	}
}
