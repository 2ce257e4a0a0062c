// Completion: 100% - Instruction implementation complete
package main

// SUB instruction forms, mirroring add.go

// SubImmToReg generates SUB dst, imm32 for a 64-bit register
func (o *Out) SubImmToReg(dst string, imm uint32) {
	dstReg, ok := GetRegister(dst)
	if !ok {
		return
	}

	o.trace("sub %s, %d", dst, imm)

	// REX.W + 81 /5 id
	o.Write(0x48)
	o.Write(0x81)
	o.Write(0xE8 | dstReg.Encoding)
	o.writeImm32(imm)
}

// SubImmToAL generates SUB al, imm8 (the accumulator-only short form)
func (o *Out) SubImmToAL(imm uint8) {
	o.trace("sub al, %d", imm)

	// 2C ib
	o.Write(0x2C)
	o.Write(imm)
}

// SubRegToReg generates SUB dst, src for two 32-bit registers
func (o *Out) SubRegToReg(dst, src string) {
	dstReg, dstOk := GetRegister(dst)
	srcReg, srcOk := GetRegister(src)
	if !dstOk || !srcOk {
		return
	}

	o.trace("sub %s, %s", dst, src)

	// 29 /r
	o.Write(0x29)
	o.Write(0xC0 | srcReg.Encoding<<3 | dstReg.Encoding)
}
