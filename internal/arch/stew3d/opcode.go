package stew3d

import (
	"strconv"
	"strings"
)

// Opcode range of the 3000 instruction set, bytes above MaxOpcode are not
// assigned to any instruction.
const (
	MinOpcode = 0x00
	MaxOpcode = 0xc8
)

// placeholder marks the position of an operand value in the opcode syntax.
const placeholder = "{}"

// OperandKind defines how the value of an operand byte is interpreted.
type OperandKind uint8

// operand kinds.
const (
	Immediate   OperandKind = iota // plain numeric value
	CodeAddress                    // destination offset of a control transfer
)

// String returns the name of the operand kind.
func (k OperandKind) String() string {
	switch k {
	case Immediate:
		return "immediate"
	case CodeAddress:
		return "code address"
	default:
		return "unknown"
	}
}

// Operand describes an operand that follows the opcode byte.
type Operand struct {
	Kind  OperandKind
	Width int // in bytes
}

// Opcode describes the encoding and syntax of a single opcode.
type Opcode struct {
	Value    byte
	Name     string    // mnemonic
	Syntax   string    // operand syntax, {} is replaced by the operand values in order
	Operands []Operand // operands in encoding order
}

// Size returns the total encoded length of the instruction in bytes.
func (o *Opcode) Size() int {
	size := 1
	for _, op := range o.Operands {
		size += op.Width
	}
	return size
}

// IsControlFlow returns whether the instruction transfers control to a code address.
func (o *Opcode) IsControlFlow() bool {
	for _, op := range o.Operands {
		if op.Kind == CodeAddress {
			return true
		}
	}
	return false
}

// Format returns the assembly text of the instruction, with the given operand
// texts substituted in order. Missing operand texts leave the placeholder
// in place.
func (o *Opcode) Format(operands ...string) string {
	if o.Syntax == "" {
		return o.Name
	}

	syntax := o.Syntax
	for _, s := range operands {
		syntax = strings.Replace(syntax, placeholder, s, 1)
	}
	return o.Name + " " + syntax
}

// String returns the assembly syntax of the opcode with operands shown by kind.
func (o *Opcode) String() string {
	operands := make([]string, len(o.Operands))
	for i, op := range o.Operands {
		if op.Kind == CodeAddress {
			operands[i] = "addr"
		} else {
			operands[i] = "byte"
		}
	}
	return o.Format(operands...)
}

// Lookup returns the opcode for the given byte, or false if the byte
// does not encode a known instruction.
func Lookup(b byte) (*Opcode, bool) {
	if int(b) >= len(opcodes) {
		return nil, false
	}
	return &opcodes[b], true
}

// Opcodes returns all opcodes of the instruction set in opcode order.
func Opcodes() []*Opcode {
	result := make([]*Opcode, len(opcodes))
	for i := range opcodes {
		result[i] = &opcodes[i]
	}
	return result
}

// FormatValue returns the textual representation of an immediate value,
// the 3000 assembler uses decimal numbers.
func FormatValue(value uint) string {
	return strconv.FormatUint(uint64(value), 10)
}
