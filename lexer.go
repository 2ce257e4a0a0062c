// Completion: 100% - Frontend complete, folding and bracket validation working
package main

// CompileProgram converts source text into a Program. Consecutive '+'/'-'
// fold into a single Add or Sub carrying the net count; '<'/'>' fold the
// same way into Left or Right. A net count of zero emits nothing. '[' and
// ']' each close the current block and take a block of their own, so that
// boundary instructions are always alone in their block. Every other byte
// is ignored. An unmatched bracket yields a *SyntaxError and no Program.
func CompileProgram(source string) (*Program, error) {
	p := &Program{}
	p.appendNewBlock()

	var openOffsets []int
	for i := 0; i < len(source); i++ {
		switch source[i] {
		case '+', '-':
			total := 0
			for ; i < len(source) && (source[i] == '+' || source[i] == '-'); i++ {
				if source[i] == '+' {
					total++
				} else {
					total--
				}
			}
			i-- // the outer loop increments past the run otherwise
			if total > 0 {
				p.appendInstruction(Instruction{Op: OpAdd, Arg: total})
			} else if total < 0 {
				p.appendInstruction(Instruction{Op: OpSub, Arg: -total})
			}
		case '<', '>':
			total := 0
			for ; i < len(source) && (source[i] == '<' || source[i] == '>'); i++ {
				if source[i] == '>' {
					total++
				} else {
					total--
				}
			}
			i--
			if total > 0 {
				p.appendInstruction(Instruction{Op: OpRight, Arg: total})
			} else if total < 0 {
				p.appendInstruction(Instruction{Op: OpLeft, Arg: -total})
			}
		case '.':
			p.appendInstruction(Instruction{Op: OpWrite})
		case ',':
			p.appendInstruction(Instruction{Op: OpRead})
		case '[':
			openOffsets = append(openOffsets, i)
			p.appendNewBlock()
			p.appendInstruction(Instruction{Op: OpLoopStart})
			p.appendNewBlock()
		case ']':
			if len(openOffsets) == 0 {
				return nil, &SyntaxError{Message: "unmatched ']'", Offset: i}
			}
			openOffsets = openOffsets[:len(openOffsets)-1]
			p.appendNewBlock()
			p.appendInstruction(Instruction{Op: OpLoopEnd})
			p.appendNewBlock()
		}
	}
	if len(openOffsets) > 0 {
		return nil, &SyntaxError{Message: "unmatched '['", Offset: openOffsets[0]}
	}
	return p, nil
}
