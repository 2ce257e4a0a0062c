// Completion: 100% - Instruction implementation complete
package main

// MOV instruction forms used by the code generator:
//   - immediate loads for syscall numbers and arguments
//   - register-to-register moves for the prologue and syscall save/restore
//   - single-byte loads and stores through the tape pointer

// MovRegToReg generates MOV dst, src for two 64-bit registers
func (o *Out) MovRegToReg(dst, src string) {
	dstReg, dstOk := GetRegister(dst)
	srcReg, srcOk := GetRegister(src)
	if !dstOk || !srcOk {
		return
	}

	o.trace("mov %s, %s", dst, src)

	// REX.W + 89 /r
	o.Write(0x48)
	o.Write(0x89)
	o.Write(0xC0 | srcReg.Encoding<<3 | dstReg.Encoding)
}

// MovImmToReg generates MOV dst, imm32 for a 32-bit register
func (o *Out) MovImmToReg(dst string, imm uint32) {
	dstReg, ok := GetRegister(dst)
	if !ok {
		return
	}

	o.trace("mov %s, %d", dst, imm)

	// B8+rd id
	o.Write(0xB8 | dstReg.Encoding)
	o.writeImm32(imm)
}

// MovImm64ToReg generates MOV dst, imm64 for a 64-bit register
func (o *Out) MovImm64ToReg(dst string, imm uint64) {
	dstReg, ok := GetRegister(dst)
	if !ok {
		return
	}

	o.trace("mov %s, %d", dst, imm)

	// REX.W + B8+rd io
	o.Write(0x48)
	o.Write(0xB8 | dstReg.Encoding)
	o.writeImm64(imm)
}

// MovMemToReg generates MOV dst, [src]: load the byte at the address held
// in the 64-bit register src into the 8-bit register dst
func (o *Out) MovMemToReg(dst, src string) {
	dstReg, dstOk := GetRegister(dst)
	srcReg, srcOk := GetRegister(src)
	if !dstOk || !srcOk {
		return
	}

	o.trace("mov %s, [%s]", dst, src)

	// 8A /r with mod=00
	o.Write(0x8A)
	o.Write(dstReg.Encoding<<3 | srcReg.Encoding)
}

// MovRegToMem generates MOV [dst], src: store the 8-bit register src to
// the address held in the 64-bit register dst
func (o *Out) MovRegToMem(dst, src string) {
	dstReg, dstOk := GetRegister(dst)
	srcReg, srcOk := GetRegister(src)
	if !dstOk || !srcOk {
		return
	}

	o.trace("mov [%s], %s", dst, src)

	// 88 /r with mod=00
	o.Write(0x88)
	o.Write(srcReg.Encoding<<3 | dstReg.Encoding)
}
