// Completion: 100% - Instruction implementation complete
package main

// ADD instruction forms. The cell-increment path goes through the 8-bit
// accumulator form; tape pointer moves use the 64-bit immediate form.

// AddImmToReg generates ADD dst, imm32 for a 64-bit register
func (o *Out) AddImmToReg(dst string, imm uint32) {
	dstReg, ok := GetRegister(dst)
	if !ok {
		return
	}

	o.trace("add %s, %d", dst, imm)

	// REX.W + 81 /0 id
	o.Write(0x48)
	o.Write(0x81)
	o.Write(0xC0 | dstReg.Encoding)
	o.writeImm32(imm)
}

// AddImmToAL generates ADD al, imm8 (the accumulator-only short form)
func (o *Out) AddImmToAL(imm uint8) {
	o.trace("add al, %d", imm)

	// 04 ib
	o.Write(0x04)
	o.Write(imm)
}

// AddRegToReg generates ADD dst, src for two 32-bit registers
func (o *Out) AddRegToReg(dst, src string) {
	dstReg, dstOk := GetRegister(dst)
	srcReg, srcOk := GetRegister(src)
	if !dstOk || !srcOk {
		return
	}

	o.trace("add %s, %s", dst, src)

	// 01 /r
	o.Write(0x01)
	o.Write(0xC0 | srcReg.Encoding<<3 | dstReg.Encoding)
}
