// Completion: 100% - Data model complete
package main

import (
	"fmt"
	"io"
)

// Opcode identifies one language-level instruction kind
type Opcode int

const (
	OpAdd Opcode = iota
	OpSub
	OpRight
	OpLeft
	OpWrite
	OpRead
	OpLoopStart
	OpLoopEnd
)

func (op Opcode) String() string {
	switch op {
	case OpAdd:
		return "Add"
	case OpSub:
		return "Sub"
	case OpRight:
		return "Right"
	case OpLeft:
		return "Left"
	case OpWrite:
		return "Write"
	case OpRead:
		return "Read"
	case OpLoopStart:
		return "Loop"
	case OpLoopEnd:
		return "EndLoop"
	default:
		return "unknown"
	}
}

// Instruction is one folded language-level instruction. Arg is the
// run-length-folded magnitude for Add/Sub/Right/Left and 0 otherwise.
type Instruction struct {
	Op  Opcode
	Arg int
}

func (in Instruction) String() string {
	switch in.Op {
	case OpAdd, OpSub, OpRight, OpLeft:
		return fmt.Sprintf("%s(%d)", in.Op, in.Arg)
	default:
		return in.Op.String()
	}
}

// Block is an ordered run of instructions compiled into one code buffer.
// Loop boundary instructions always sit alone in their own block.
type Block struct {
	Instructions []Instruction
}

func (b *Block) append(in Instruction) {
	b.Instructions = append(b.Instructions, in)
}

// IsBoundary reports whether the block holds a LoopStart or LoopEnd.
func (b *Block) IsBoundary() bool {
	if len(b.Instructions) != 1 {
		return false
	}
	op := b.Instructions[0].Op
	return op == OpLoopStart || op == OpLoopEnd
}

// Program is the ordered block sequence produced by the frontend and
// consumed once by the code generator.
type Program struct {
	Blocks []*Block
}

func (p *Program) appendNewBlock() {
	p.Blocks = append(p.Blocks, &Block{})
}

func (p *Program) appendInstruction(in Instruction) {
	p.Blocks[len(p.Blocks)-1].append(in)
}

// Dump writes a readable listing of the program, one block per section
func (p *Program) Dump(w io.Writer) {
	for idx, block := range p.Blocks {
		fmt.Fprintf(w, "Block %d\n", idx)
		for _, in := range block.Instructions {
			fmt.Fprintf(w, "  %s\n", in)
		}
	}
}
