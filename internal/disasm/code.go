package disasm

import (
	"github.com/retroenv/stew3d/internal/arch/stew3d"
	"github.com/retroenv/stew3d/internal/program"
)

// decodeInstruction decodes the unit that starts at the given address.
// It never reads past the end of the buffer.
func decodeInstruction(data []byte, address int) program.Instruction {
	opcode, ok := stew3d.Lookup(data[address])
	if !ok {
		return rawByte(data, address, nil, program.UnknownOpcode)
	}

	size := opcode.Size()
	if len(data)-address < size {
		return rawByte(data, address, opcode, program.TruncatedInstruction)
	}

	ins := program.Instruction{
		Address:  address,
		Bytes:    data[address : address+size : address+size],
		Type:     program.CodeUnit,
		Opcode:   opcode,
		Operands: make([]program.Operand, 0, len(opcode.Operands)),
	}

	offset := address + 1
	for _, op := range opcode.Operands {
		ins.Operands = append(ins.Operands, program.Operand{
			Kind:  op.Kind,
			Value: readValue(data[offset : offset+op.Width]),
		})
		offset += op.Width
	}

	return ins
}

// rawByte returns a single byte unit for a byte that can not be decoded.
func rawByte(data []byte, address int, opcode *stew3d.Opcode, reason program.UnitType) program.Instruction {
	return program.Instruction{
		Address: address,
		Bytes:   data[address : address+1 : address+1],
		Type:    program.RawByte | reason,
		Opcode:  opcode,
	}
}

// readValue reads a little endian operand value.
func readValue(b []byte) uint {
	var value uint
	for i := len(b) - 1; i >= 0; i-- {
		value = value<<8 | uint(b[i])
	}
	return value
}
