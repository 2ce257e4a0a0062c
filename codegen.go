// Completion: 100% - Code generation and loop backpatching complete
package main

import "fmt"

// Fixed register assignment. The instruction set never has more than
// three live values, so no allocator is needed:
//   rcx - tape pointer (self-advancing data pointer)
//   al  - accumulator for cell arithmetic and loop tests
//   rbx - preserves rcx across syscalls
const (
	tapeReg = "rcx"
	saveReg = "rbx"
)

// Linux syscall numbers used by the generated code
const (
	sysRead  = 0
	sysWrite = 1
)

// codeGen lays out one Out buffer per program block, bracketed by a
// prologue and an epilogue buffer. bufs[i+1] belongs to program block i.
type codeGen struct {
	bufs []*Out
}

// GenerateCode translates a Program into one flat machine code sequence
// implementing a function with the System V signature
//
//	int64 fn(uint8 *tape)
//
// The only failure mode is a loop boundary mismatch, which the frontend
// guarantees against; it is reported as an internal error and no bytes
// are returned.
func GenerateCode(p *Program) ([]byte, error) {
	g := &codeGen{}
	g.prologue()
	for _, block := range p.Blocks {
		g.block(block)
	}
	if err := g.patchLoops(p); err != nil {
		return nil, err
	}
	g.epilogue()

	total := 0
	for _, buf := range g.bufs {
		total += buf.Len()
	}
	code := make([]byte, 0, total)
	for _, buf := range g.bufs {
		code = append(code, buf.Bytes()...)
	}
	return code, nil
}

// prologue copies the incoming tape pointer argument (rdi under the
// System V calling convention) into the tape register.
func (g *codeGen) prologue() {
	out := NewOut()
	out.MovRegToReg(tapeReg, "rdi")
	g.bufs = append(g.bufs, out)
}

// epilogue zeroes the return value register and returns
func (g *codeGen) epilogue() {
	out := NewOut()
	out.MovImm64ToReg("rax", 0)
	out.Ret()
	g.bufs = append(g.bufs, out)
}

func (g *codeGen) block(b *Block) {
	out := NewOut()
	for _, in := range b.Instructions {
		g.instruction(in, out)
	}
	g.bufs = append(g.bufs, out)
}

func (g *codeGen) instruction(in Instruction, out *Out) {
	switch in.Op {
	case OpAdd:
		out.MovMemToReg("al", tapeReg)
		out.AddImmToAL(uint8(in.Arg)) // cell arithmetic wraps mod 256
		out.MovRegToMem(tapeReg, "al")
	case OpSub:
		out.MovMemToReg("al", tapeReg)
		out.SubImmToAL(uint8(in.Arg))
		out.MovRegToMem(tapeReg, "al")
	case OpRight:
		out.AddImmToReg(tapeReg, uint32(in.Arg))
	case OpLeft:
		out.SubImmToReg(tapeReg, uint32(in.Arg))
	case OpWrite:
		g.serviceCall(out, sysWrite)
	case OpRead:
		g.serviceCall(out, sysRead)
	case OpLoopStart, OpLoopEnd:
		// Test only; the branch is appended by patchLoops once the
		// body length is known.
		out.MovMemToReg("al", tapeReg)
		out.CmpImmToAL(0)
	}
}

// serviceCall emits a single-byte read or write syscall on the current
// tape position. The fd doubles as the syscall number (stdin=0/read=0,
// stdout=1/write=1). rcx is stashed in rbx because SYSCALL overwrites it.
func (g *codeGen) serviceCall(out *Out, nr uint64) {
	out.MovImm64ToReg("rax", nr)
	out.MovImm64ToReg("rdi", nr)
	out.MovRegToReg("rsi", tapeReg)
	out.MovImm64ToReg("rdx", 1)
	out.MovRegToReg(saveReg, tapeReg)
	out.Syscall()
	out.MovRegToReg(tapeReg, saveReg)
}

// patchLoops finalizes loop branches with an explicit stack of open
// LoopStart block indices. Walking blocks in order means every nested
// loop is finalized before the loop that contains it, so the body span
// summed here is always a final byte length.
func (g *codeGen) patchLoops(p *Program) error {
	var open []int
	for i, block := range p.Blocks {
		if len(block.Instructions) == 0 {
			continue
		}
		switch block.Instructions[0].Op {
		case OpLoopStart:
			open = append(open, i)
		case OpLoopEnd:
			if len(open) == 0 {
				return fmt.Errorf("internal error: loop end in block %d without a matching loop start", i)
			}
			start := open[len(open)-1]
			open = open[:len(open)-1]

			body := 0
			for j := start + 1; j < i; j++ {
				body += g.bufs[j+1].Len()
			}

			// Forward: skip the body when the cell is already zero,
			// landing on the end block's test.
			g.bufs[start+1].Jz(int32(body))

			// Backward: land exactly on the start block's test. The
			// displacement is measured from the end of the jnz itself.
			span := g.bufs[start+1].Len() + body + g.bufs[i+1].Len() + jccEncodedLen
			g.bufs[i+1].Jnz(int32(-span))
		}
	}
	if len(open) > 0 {
		return fmt.Errorf("internal error: %d unclosed loop(s) after block walk", len(open))
	}
	return nil
}
