// Package stew3d provides the instruction set of the 3000, a small 8-bit
// accumulator machine.
//
// # Instruction Set
//
// The 3000 uses a one byte opcode followed by zero, one or two operand bytes:
//   - 0x00-0xc8: assigned opcodes, every byte above 0xc8 is invalid
//   - Register operands (a, b, c, z, sp) are encoded in the opcode itself
//   - Immediate operands are plain byte values and written in decimal
//   - Code address operands are byte offsets into the program and used by
//     the jump and call instructions
//
// stsi is the only three byte instruction, it stores an immediate value at
// an immediate stack offset.
//
// # Usage Example
//
//	op, ok := stew3d.Lookup(0x7f)
//	if ok {
//		fmt.Println(op.Format("10")) // mvi 10, a
//	}
package stew3d
