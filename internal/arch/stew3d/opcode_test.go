package stew3d

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		value  byte
		ok     bool
		opName string
		size   int
	}{
		{"add a, a", 0x00, true, "add", 1},
		{"addi a", 0x0c, true, "addi", 2},
		{"not a", 0x55, true, "not", 1},
		{"mvi a", 0x7f, true, "mvi", 2},
		{"lds a", 0x97, true, "lds", 2},
		{"stsi", 0x9e, true, "stsi", 3},
		{"jne", 0xb3, true, "jne", 2},
		{"call", 0xbc, true, "call", 2},
		{"outi", 0xc1, true, "outi", 2},
		{"nop", 0xc8, true, "nop", 1},
		{"first invalid", 0xc9, false, "", 0},
		{"last invalid", 0xff, false, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, ok := Lookup(tt.value)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				assert.True(t, op == nil)
				return
			}
			assert.Equal(t, tt.value, op.Value)
			assert.Equal(t, tt.opName, op.Name)
			assert.Equal(t, tt.size, op.Size())
		})
	}
}

func TestOpcodeTable(t *testing.T) {
	ops := Opcodes()
	assert.Equal(t, MaxOpcode-MinOpcode+1, len(ops))

	sizes := map[int]int{}
	for i, op := range ops {
		assert.Equal(t, byte(i), op.Value)
		assert.True(t, op.Name != "")
		assert.Equal(t, strings.Count(op.Syntax, placeholder), len(op.Operands))
		sizes[op.Size()]++
	}

	assert.Equal(t, 144, sizes[1])
	assert.Equal(t, 56, sizes[2])
	assert.Equal(t, 1, sizes[3])
}

func TestControlFlow(t *testing.T) {
	var controlFlow []string
	for _, op := range Opcodes() {
		if op.IsControlFlow() {
			controlFlow = append(controlFlow, op.Name)
		}
	}

	expected := []string{"jmp", "je", "jne", "jg", "jge", "jl", "jle", "ja", "jae", "jb", "jbe", "call"}
	assert.Equal(t, expected, controlFlow)

	ret, _ := Lookup(0xbd)
	assert.False(t, ret.IsControlFlow())
}

func TestOpcodeFormat(t *testing.T) {
	tests := []struct {
		value    byte
		operands []string
		expected string
	}{
		{0x7f, []string{"10"}, "mvi 10, a"},
		{0x0c, []string{"4"}, "addi 4, a"},
		{0x9d, []string{"7"}, "sts z, 7"},
		{0xab, []string{"3"}, "cmpi a, 3"},
		{0xac, []string{"3"}, "cmpi 3, a"},
		{0x9e, []string{"1", "2"}, "stsi 1, 2"},
		{0xbc, []string{"l0"}, "call l0"},
		{0xbd, nil, "ret"},
		{0xa1, nil, "cmp a, z"},
	}

	for _, tt := range tests {
		op, ok := Lookup(tt.value)
		assert.True(t, ok)
		assert.Equal(t, tt.expected, op.Format(tt.operands...))
	}
}

func TestOpcodeString(t *testing.T) {
	op, _ := Lookup(0x9e)
	assert.Equal(t, "stsi byte, byte", op.String())
	op, _ = Lookup(0xb1)
	assert.Equal(t, "jmp addr", op.String())
}
