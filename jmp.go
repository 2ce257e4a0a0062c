// Completion: 100% - Instruction implementation complete
package main

// Relative jumps with 32-bit displacements. The CPU resolves the
// displacement relative to the address immediately after the jump
// encoding itself, so backpatching arithmetic in codegen.go accounts for
// the 5 (jmp) or 6 (jz/jnz) bytes of the instruction.

// jccEncodedLen is the encoded length of Jz and Jnz
const jccEncodedLen = 6

// Jmp generates JMP rel32
func (o *Out) Jmp(disp int32) {
	o.trace("jmp %d", disp)

	// E9 cd
	o.Write(0xE9)
	o.writeImm32(uint32(disp))
}

// Jz generates JZ rel32
func (o *Out) Jz(disp int32) {
	o.trace("jz %d", disp)

	// 0F 84 cd
	o.Write(0x0F)
	o.Write(0x84)
	o.writeImm32(uint32(disp))
}

// Jnz generates JNZ rel32
func (o *Out) Jnz(disp int32) {
	o.trace("jnz %d", disp)

	// 0F 85 cd
	o.Write(0x0F)
	o.Write(0x85)
	o.writeImm32(uint32(disp))
}
