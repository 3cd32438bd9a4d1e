package symbols

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/stew3d/internal/arch/stew3d"
	"github.com/retroenv/stew3d/internal/program"
)

// opcodes used by the tests.
const (
	opJmp  byte = 0xb1
	opCall byte = 0xbc
	opRet  byte = 0xbd
	opHlt  byte = 0xc7
	opNop  byte = 0xc8
)

func code(address int, value byte, operands ...byte) program.Instruction {
	op, _ := stew3d.Lookup(value)
	ins := program.Instruction{
		Address: address,
		Bytes:   append([]byte{value}, operands...),
		Type:    program.CodeUnit,
		Opcode:  op,
	}
	for i, operand := range op.Operands {
		ins.Operands = append(ins.Operands, program.Operand{Kind: operand.Kind, Value: uint(operands[i])})
	}
	return ins
}

func raw(address int, value byte) program.Instruction {
	return program.Instruction{
		Address: address,
		Bytes:   []byte{value},
		Type:    program.RawByte | program.UnknownOpcode,
	}
}

func TestResolve(t *testing.T) {
	// mvi 10, a; call 5; hlt; addi 4, a; ret
	instructions := []program.Instruction{
		code(0, 0x7f, 0x0a),
		code(2, opCall, 0x05),
		code(4, opHlt),
		code(5, 0x0c, 0x04),
		code(7, opRet),
	}

	table := Resolve(instructions)
	assert.Equal(t, 1, table.Len())
	assert.Equal(t, []Label{{Address: 5, Name: "l0"}}, table.Labels())

	name, ok := table.Name(5)
	assert.True(t, ok)
	assert.Equal(t, "l0", name)
	assert.False(t, table.Has(0))
	assert.Equal(t, 0, len(table.Unresolved()))
}

func TestResolve_AddressOrder(t *testing.T) {
	// targets are referenced in descending order but labels follow the address order
	instructions := []program.Instruction{
		code(0, opJmp, 0x08),
		code(2, opCall, 0x08),
		code(4, opCall, 0x06),
		code(6, opNop),
		code(7, opNop),
		code(8, opJmp, 0x00),
	}

	table := Resolve(instructions)
	expected := []Label{
		{Address: 0, Name: "l0"},
		{Address: 6, Name: "l1"},
		{Address: 8, Name: "l2"},
	}
	assert.Equal(t, expected, table.Labels())
}

func TestResolve_Unresolved(t *testing.T) {
	instructions := []program.Instruction{
		code(0, opJmp, 0x03), // into the operand of mvi
		code(2, 0x7f, 0x01),
		code(4, opJmp, 0x40), // past the end of the buffer
		raw(6, 0xff),
		code(7, opJmp, 0x06), // to a raw byte
	}

	table := Resolve(instructions)
	assert.Equal(t, 0, table.Len())

	expected := []Reference{
		{From: 0, Target: 3},
		{From: 4, Target: 0x40},
		{From: 7, Target: 6},
	}
	assert.Equal(t, expected, table.Unresolved())
}

func TestResolve_Empty(t *testing.T) {
	table := Resolve(nil)
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, 0, len(table.Labels()))
}

func TestTable_Nil(t *testing.T) {
	var table *Table
	_, ok := table.Name(0)
	assert.False(t, ok)
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, 0, len(table.Labels()))
	assert.Equal(t, 0, len(table.Unresolved()))
}

func TestResolve_Deterministic(t *testing.T) {
	instructions := []program.Instruction{
		code(0, opJmp, 0x04),
		code(2, opCall, 0x02),
		code(4, opJmp, 0x00),
	}

	first := Resolve(instructions)
	second := Resolve(instructions)
	assert.Equal(t, first.Labels(), second.Labels())
}

func TestResolve_OnlyControlFlow(t *testing.T) {
	instructions := []program.Instruction{
		code(0, 0x7f, 0x02), // mvi 2, a: immediate that equals an instruction start
		code(2, 0x0c, 0x00), // addi 0, a
		{
			Address: 4,
			Bytes:   []byte{opCall},
			Type:    program.RawByte | program.TruncatedInstruction,
			Opcode:  mustLookup(t, opCall),
		},
	}

	table := Resolve(instructions)
	assert.Equal(t, 0, table.Len())
	assert.Empty(t, table.Unresolved())
}

func mustLookup(t *testing.T, value byte) *stew3d.Opcode {
	t.Helper()
	op, ok := stew3d.Lookup(value)
	assert.True(t, ok)
	return op
}
