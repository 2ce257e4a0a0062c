package main

import (
	"bytes"
	"testing"
)

// TestMovRegToReg tests the 64-bit register-to-register move encoding
func TestMovRegToReg(t *testing.T) {
	out := NewOut()
	out.MovRegToReg("rcx", "rdi")
	want := []byte{0x48, 0x89, 0xF9}
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("mov rcx, rdi: expected % x, got % x", want, out.Bytes())
	}
}

// TestMovImmediateForms tests both immediate load widths
func TestMovImmediateForms(t *testing.T) {
	out := NewOut()
	out.MovImmToReg("eax", 0x12345678)
	want := []byte{0xB8, 0x78, 0x56, 0x34, 0x12}
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("mov eax, imm32: expected % x, got % x", want, out.Bytes())
	}

	out = NewOut()
	out.MovImm64ToReg("rax", 1)
	want = []byte{0x48, 0xB8, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("mov rax, imm64: expected % x, got % x", want, out.Bytes())
	}

	out = NewOut()
	out.MovImm64ToReg("rdi", 0)
	want = []byte{0x48, 0xBF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("mov rdi, imm64: expected % x, got % x", want, out.Bytes())
	}
}

// TestByteLoadStore tests the single-byte load and store through a
// register-held address
func TestByteLoadStore(t *testing.T) {
	out := NewOut()
	out.MovMemToReg("al", "rcx")
	want := []byte{0x8A, 0x01}
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("mov al, [rcx]: expected % x, got % x", want, out.Bytes())
	}

	out = NewOut()
	out.MovRegToMem("rcx", "al")
	want = []byte{0x88, 0x01}
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("mov [rcx], al: expected % x, got % x", want, out.Bytes())
	}
}

// TestAccumulatorArithmetic tests the 8-bit accumulator-only add and sub
func TestAccumulatorArithmetic(t *testing.T) {
	out := NewOut()
	out.AddImmToAL(5)
	out.SubImmToAL(3)
	want := []byte{0x04, 0x05, 0x2C, 0x03}
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("add/sub al: expected % x, got % x", want, out.Bytes())
	}
}

// TestImmediateArithmetic64 tests 64-bit add and sub with a 32-bit immediate
func TestImmediateArithmetic64(t *testing.T) {
	out := NewOut()
	out.AddImmToReg("rcx", 7)
	want := []byte{0x48, 0x81, 0xC1, 0x07, 0x00, 0x00, 0x00}
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("add rcx, 7: expected % x, got % x", want, out.Bytes())
	}

	out = NewOut()
	out.SubImmToReg("rcx", 7)
	want = []byte{0x48, 0x81, 0xE9, 0x07, 0x00, 0x00, 0x00}
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("sub rcx, 7: expected % x, got % x", want, out.Bytes())
	}
}

// TestRegisterArithmetic32 tests the 32-bit register-to-register add and sub
func TestRegisterArithmetic32(t *testing.T) {
	out := NewOut()
	out.AddRegToReg("eax", "ebx")
	want := []byte{0x01, 0xD8}
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("add eax, ebx: expected % x, got % x", want, out.Bytes())
	}

	out = NewOut()
	out.SubRegToReg("eax", "ebx")
	want = []byte{0x29, 0xD8}
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("sub eax, ebx: expected % x, got % x", want, out.Bytes())
	}
}

// TestCompareForms tests both accumulator compare widths
func TestCompareForms(t *testing.T) {
	out := NewOut()
	out.CmpImmToAL(0)
	want := []byte{0x3C, 0x00}
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("cmp al, 0: expected % x, got % x", want, out.Bytes())
	}

	out = NewOut()
	out.CmpImmToEAX(256)
	want = []byte{0x3D, 0x00, 0x01, 0x00, 0x00}
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("cmp eax, 256: expected % x, got % x", want, out.Bytes())
	}
}

// TestJumpForms tests the three relative jumps, including a negative
// displacement in two's complement
func TestJumpForms(t *testing.T) {
	out := NewOut()
	out.Jmp(16)
	want := []byte{0xE9, 0x10, 0x00, 0x00, 0x00}
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("jmp 16: expected % x, got % x", want, out.Bytes())
	}

	out = NewOut()
	out.Jz(16)
	want = []byte{0x0F, 0x84, 0x10, 0x00, 0x00, 0x00}
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("jz 16: expected % x, got % x", want, out.Bytes())
	}

	out = NewOut()
	out.Jnz(-32)
	want = []byte{0x0F, 0x85, 0xE0, 0xFF, 0xFF, 0xFF}
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("jnz -32: expected % x, got % x", want, out.Bytes())
	}

	if out.Len() != jccEncodedLen {
		t.Errorf("Expected jnz length %d, got %d", jccEncodedLen, out.Len())
	}
}

// TestSyscallAndRet tests the service call and return encodings
func TestSyscallAndRet(t *testing.T) {
	out := NewOut()
	out.Syscall()
	out.Ret()
	want := []byte{0x0F, 0x05, 0xC3}
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("syscall; ret: expected % x, got % x", want, out.Bytes())
	}
}

// TestUnknownRegisterIgnored tests that a bad register name emits nothing
func TestUnknownRegisterIgnored(t *testing.T) {
	out := NewOut()
	out.MovRegToReg("r42", "rdi")
	out.AddImmToReg("zmm1", 1)
	if out.Len() != 0 {
		t.Errorf("Expected empty buffer, got % x", out.Bytes())
	}
}

// TestLengthTracking tests that Len follows the appended encodings
func TestLengthTracking(t *testing.T) {
	out := NewOut()
	steps := []struct {
		emit func()
		want int
	}{
		{func() { out.MovMemToReg("al", "rcx") }, 2},
		{func() { out.CmpImmToAL(0) }, 4},
		{func() { out.Jz(0) }, 10},
	}
	for i, step := range steps {
		step.emit()
		if out.Len() != step.want {
			t.Fatalf("Step %d: expected length %d, got %d", i, step.want, out.Len())
		}
	}
}
