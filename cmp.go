// Completion: 100% - Instruction implementation complete
package main

// CMP instruction forms. Loop tests only ever compare the accumulator
// against zero, but both accumulator widths are supported.

// CmpImmToAL generates CMP al, imm8
func (o *Out) CmpImmToAL(imm uint8) {
	o.trace("cmp al, %d", imm)

	// 3C ib
	o.Write(0x3C)
	o.Write(imm)
}

// CmpImmToEAX generates CMP eax, imm32
func (o *Out) CmpImmToEAX(imm uint32) {
	o.trace("cmp eax, %d", imm)

	// 3D id
	o.Write(0x3D)
	o.writeImm32(imm)
}
