package stew3d

var (
	immediate   = []Operand{{Kind: Immediate, Width: 1}}
	immediate2  = []Operand{{Kind: Immediate, Width: 1}, {Kind: Immediate, Width: 1}}
	codeAddress = []Operand{{Kind: CodeAddress, Width: 1}}
)

// opcodes lists every opcode of the 3000 in opcode order, the index of an
// entry equals its opcode value.
var opcodes = [...]Opcode{
	// register addition
	{0x00, "add", "a, a", nil},
	{0x01, "add", "a, b", nil},
	{0x02, "add", "a, c", nil},
	{0x03, "add", "a, sp", nil},
	{0x04, "add", "b, a", nil},
	{0x05, "add", "b, b", nil},
	{0x06, "add", "b, c", nil},
	{0x07, "add", "b, sp", nil},
	{0x08, "add", "c, a", nil},
	{0x09, "add", "c, b", nil},
	{0x0a, "add", "c, c", nil},
	{0x0b, "add", "c, sp", nil},
	// immediate addition
	{0x0c, "addi", "{}, a", immediate},
	{0x0d, "addi", "{}, b", immediate},
	{0x0e, "addi", "{}, c", immediate},
	{0x0f, "addi", "{}, sp", immediate},
	// addition with carry
	{0x10, "addc", "a, a", nil},
	{0x11, "addc", "a, b", nil},
	{0x12, "addc", "a, c", nil},
	{0x13, "addc", "a, sp", nil},
	{0x14, "addc", "b, a", nil},
	{0x15, "addc", "b, b", nil},
	{0x16, "addc", "b, c", nil},
	{0x17, "addc", "b, sp", nil},
	{0x18, "addc", "c, a", nil},
	{0x19, "addc", "c, b", nil},
	{0x1a, "addc", "c, c", nil},
	{0x1b, "addc", "c, sp", nil},
	// immediate addition with carry
	{0x1c, "addci", "{}, a", immediate},
	{0x1d, "addci", "{}, b", immediate},
	{0x1e, "addci", "{}, c", immediate},
	{0x1f, "addci", "{}, sp", immediate},
	// subtraction
	{0x20, "sub", "b, a", nil},
	{0x21, "sub", "c, a", nil},
	{0x22, "sub", "a, b", nil},
	{0x23, "sub", "c, b", nil},
	{0x24, "sub", "a, c", nil},
	{0x25, "sub", "b, c", nil},
	{0x26, "sub", "a, sp", nil},
	{0x27, "sub", "b, sp", nil},
	{0x28, "sub", "c, sp", nil},
	// immediate subtraction
	{0x29, "subi", "{}, a", immediate},
	{0x2a, "subi", "{}, b", immediate},
	{0x2b, "subi", "{}, c", immediate},
	{0x2c, "subi", "{}, sp", immediate},
	// subtraction with borrow
	{0x2d, "subb", "b, a", nil},
	{0x2e, "subb", "c, a", nil},
	{0x2f, "subb", "a, b", nil},
	{0x30, "subb", "c, b", nil},
	{0x31, "subb", "a, c", nil},
	{0x32, "subb", "b, c", nil},
	{0x33, "subb", "a, sp", nil},
	{0x34, "subb", "b, sp", nil},
	{0x35, "subb", "c, sp", nil},
	// immediate subtraction with borrow
	{0x36, "subbi", "{}, a", immediate},
	{0x37, "subbi", "{}, b", immediate},
	{0x38, "subbi", "{}, c", immediate},
	{0x39, "subbi", "{}, sp", immediate},
	// and
	{0x3a, "and", "b, a", nil},
	{0x3b, "and", "c, a", nil},
	{0x3c, "and", "a, b", nil},
	{0x3d, "and", "c, b", nil},
	{0x3e, "and", "a, c", nil},
	{0x3f, "and", "b, c", nil},
	{0x40, "ani", "{}, a", immediate},
	{0x41, "ani", "{}, b", immediate},
	{0x42, "ani", "{}, c", immediate},
	// or
	{0x43, "or", "b, a", nil},
	{0x44, "or", "c, a", nil},
	{0x45, "or", "a, b", nil},
	{0x46, "or", "c, b", nil},
	{0x47, "or", "a, c", nil},
	{0x48, "or", "b, c", nil},
	{0x49, "ori", "{}, a", immediate},
	{0x4a, "ori", "{}, b", immediate},
	{0x4b, "ori", "{}, c", immediate},
	// xor
	{0x4c, "xor", "b, a", nil},
	{0x4d, "xor", "c, a", nil},
	{0x4e, "xor", "a, b", nil},
	{0x4f, "xor", "c, b", nil},
	{0x50, "xor", "a, c", nil},
	{0x51, "xor", "b, c", nil},
	{0x52, "xri", "{}, a", immediate},
	{0x53, "xri", "{}, b", immediate},
	{0x54, "xri", "{}, c", immediate},
	// not, neg
	{0x55, "not", "a", nil},
	{0x56, "not", "b", nil},
	{0x57, "not", "c", nil},
	{0x58, "neg", "a", nil},
	{0x59, "neg", "b", nil},
	{0x5a, "neg", "c", nil},
	// increment, decrement
	{0x5b, "inr", "a", nil},
	{0x5c, "inr", "b", nil},
	{0x5d, "inr", "c", nil},
	{0x5e, "inr", "sp", nil},
	{0x5f, "inr2", "a", nil},
	{0x60, "inr2", "b", nil},
	{0x61, "inr2", "c", nil},
	{0x62, "inr2", "sp", nil},
	{0x63, "inr3", "a", nil},
	{0x64, "inr3", "b", nil},
	{0x65, "inr3", "c", nil},
	{0x66, "inr3", "sp", nil},
	{0x67, "dcr", "a", nil},
	{0x68, "dcr", "b", nil},
	{0x69, "dcr", "c", nil},
	{0x6a, "dcr", "sp", nil},
	{0x6b, "dcr2", "a", nil},
	{0x6c, "dcr2", "b", nil},
	{0x6d, "dcr2", "c", nil},
	{0x6e, "dcr2", "sp", nil},
	{0x6f, "dcr3", "a", nil},
	{0x70, "dcr3", "b", nil},
	{0x71, "dcr3", "c", nil},
	{0x72, "dcr3", "sp", nil},
	// register moves, immediate loads
	{0x73, "mov", "a, b", nil},
	{0x74, "mov", "a, c", nil},
	{0x75, "mov", "b, a", nil},
	{0x76, "mov", "b, c", nil},
	{0x77, "mov", "c, a", nil},
	{0x78, "mov", "c, b", nil},
	{0x79, "mov", "z, a", nil},
	{0x7a, "mov", "z, b", nil},
	{0x7b, "mov", "z, c", nil},
	{0x7c, "mov", "sp, a", nil},
	{0x7d, "mov", "sp, b", nil},
	{0x7e, "mov", "sp, c", nil},
	{0x7f, "mvi", "{}, a", immediate},
	{0x80, "mvi", "{}, b", immediate},
	{0x81, "mvi", "{}, c", immediate},
	// memory loads and stores
	{0x82, "ld", "a, a", nil},
	{0x83, "ld", "b, a", nil},
	{0x84, "ld", "c, a", nil},
	{0x85, "ld", "a, b", nil},
	{0x86, "ld", "b, b", nil},
	{0x87, "ld", "c, b", nil},
	{0x88, "ld", "a, c", nil},
	{0x89, "ld", "b, c", nil},
	{0x8a, "ld", "c, c", nil},
	{0x8b, "st", "a, a", nil},
	{0x8c, "st", "a, b", nil},
	{0x8d, "st", "a, c", nil},
	{0x8e, "st", "b, a", nil},
	{0x8f, "st", "b, b", nil},
	{0x90, "st", "b, c", nil},
	{0x91, "st", "c, a", nil},
	{0x92, "st", "c, b", nil},
	{0x93, "st", "c, c", nil},
	{0x94, "st", "z, a", nil},
	{0x95, "st", "z, b", nil},
	{0x96, "st", "z, c", nil},
	// stack loads and stores
	{0x97, "lds", "{}, a", immediate},
	{0x98, "lds", "{}, b", immediate},
	{0x99, "lds", "{}, c", immediate},
	{0x9a, "sts", "a, {}", immediate},
	{0x9b, "sts", "b, {}", immediate},
	{0x9c, "sts", "c, {}", immediate},
	{0x9d, "sts", "z, {}", immediate},
	{0x9e, "stsi", "{}, {}", immediate2},
	// compare
	{0x9f, "cmp", "a, b", nil},
	{0xa0, "cmp", "a, c", nil},
	{0xa1, "cmp", "a, z", nil},
	{0xa2, "cmp", "b, a", nil},
	{0xa3, "cmp", "b, c", nil},
	{0xa4, "cmp", "b, z", nil},
	{0xa5, "cmp", "c, a", nil},
	{0xa6, "cmp", "c, b", nil},
	{0xa7, "cmp", "c, z", nil},
	{0xa8, "cmp", "z, a", nil},
	{0xa9, "cmp", "z, b", nil},
	{0xaa, "cmp", "z, c", nil},
	{0xab, "cmpi", "a, {}", immediate},
	{0xac, "cmpi", "{}, a", immediate},
	{0xad, "cmpi", "b, {}", immediate},
	{0xae, "cmpi", "{}, b", immediate},
	{0xaf, "cmpi", "c, {}", immediate},
	{0xb0, "cmpi", "{}, c", immediate},
	// control flow
	{0xb1, "jmp", "{}", codeAddress},
	{0xb2, "je", "{}", codeAddress},
	{0xb3, "jne", "{}", codeAddress},
	{0xb4, "jg", "{}", codeAddress},
	{0xb5, "jge", "{}", codeAddress},
	{0xb6, "jl", "{}", codeAddress},
	{0xb7, "jle", "{}", codeAddress},
	{0xb8, "ja", "{}", codeAddress},
	{0xb9, "jae", "{}", codeAddress},
	{0xba, "jb", "{}", codeAddress},
	{0xbb, "jbe", "{}", codeAddress},
	{0xbc, "call", "{}", codeAddress},
	{0xbd, "ret", "", nil},
	// i/o, halt
	{0xbe, "out", "a", nil},
	{0xbf, "out", "b", nil},
	{0xc0, "out", "c", nil},
	{0xc1, "outi", "{}", immediate},
	{0xc2, "dic", "{}", immediate},
	{0xc3, "did", "{}", immediate},
	{0xc4, "dd", "a", nil},
	{0xc5, "dd", "b", nil},
	{0xc6, "dd", "c", nil},
	{0xc7, "hlt", "", nil},
	{0xc8, "nop", "", nil},
}
