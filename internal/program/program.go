// Package program represents a disassembled 3000 program.
package program

import (
	"github.com/retroenv/stew3d/internal/arch/stew3d"
)

// Operand is a decoded operand value of an instruction.
type Operand struct {
	Kind  stew3d.OperandKind
	Value uint
}

// Instruction is a decoded unit of the program, either a complete
// instruction or a single raw byte that could not be decoded.
type Instruction struct {
	Address int    // offset of the first byte in the program
	Bytes   []byte // all bytes that are part of the unit
	Type    UnitType

	// Opcode is set for decoded instructions and for raw bytes of truncated
	// instructions, it is nil for raw bytes of unknown opcodes.
	Opcode   *stew3d.Opcode
	Operands []Operand
}

// Size returns the number of bytes of the unit.
func (i Instruction) Size() int {
	return len(i.Bytes)
}

// End returns the offset of the first byte after the unit.
func (i Instruction) End() int {
	return i.Address + len(i.Bytes)
}

// IsRaw returns whether the unit is a raw byte fallback.
func (i Instruction) IsRaw() bool {
	return i.IsType(RawByte)
}

// Mnemonic returns the mnemonic of a decoded instruction, raw bytes have none.
func (i Instruction) Mnemonic() string {
	if i.IsRaw() || i.Opcode == nil {
		return ""
	}
	return i.Opcode.Name
}

// CodeAddresses returns the values of all code address operands.
func (i Instruction) CodeAddresses() []int {
	var addresses []int
	for _, op := range i.Operands {
		if op.Kind == stew3d.CodeAddress {
			addresses = append(addresses, int(op.Value))
		}
	}
	return addresses
}

// Program defines a 3000 program that contains code and undecodable bytes.
type Program struct {
	Name string // display name of the source
	Data []byte // raw program bytes, never modified

	Instructions []Instruction
}

// New creates a new program for the given buffer.
func New(name string, data []byte) *Program {
	return &Program{
		Name: name,
		Data: data,
	}
}

// Size returns the size of the program in bytes.
func (p *Program) Size() int {
	return len(p.Data)
}

// InstructionAt returns the index of the unit that covers the given offset,
// or -1 if no unit covers it.
func (p *Program) InstructionAt(address int) int {
	lo, hi := 0, len(p.Instructions)
	for lo < hi {
		mid := (lo + hi) / 2
		ins := p.Instructions[mid]
		switch {
		case address < ins.Address:
			hi = mid
		case address >= ins.End():
			lo = mid + 1
		default:
			return mid
		}
	}
	return -1
}
