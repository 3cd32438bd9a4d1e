package program

// UnitType is a bit set that classifies a decoded program unit.
type UnitType uint8

const (
	CodeUnit UnitType = 1 << iota // complete instruction with all operands

	// RawByte marks the single byte fallback, it is always combined with
	// the reason why the byte could not be decoded.
	RawByte
	UnknownOpcode
	TruncatedInstruction
)

// IsType returns whether any of the given type bits is set for the unit.
func (i Instruction) IsType(typ UnitType) bool {
	return i.Type&typ != 0
}
