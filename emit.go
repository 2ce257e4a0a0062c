// Completion: 100% - Instruction buffer complete
package main

import (
	"bytes"
	"fmt"
	"os"
)

// VerboseMode enables instruction tracing to stderr
var VerboseMode bool

// Out is an append-only machine code buffer. One Out holds the encoding
// of one basic block; the code generator concatenates them in block order.
type Out struct {
	buf bytes.Buffer
}

func NewOut() *Out {
	return &Out{}
}

func (o *Out) Write(b uint8) {
	o.buf.WriteByte(b)
}

// writeImm32 appends a 32-bit immediate in little-endian byte order
func (o *Out) writeImm32(v uint32) {
	o.Write(uint8(v & 0xFF))
	o.Write(uint8((v >> 8) & 0xFF))
	o.Write(uint8((v >> 16) & 0xFF))
	o.Write(uint8((v >> 24) & 0xFF))
}

// writeImm64 appends a 64-bit immediate in little-endian byte order
func (o *Out) writeImm64(v uint64) {
	o.writeImm32(uint32(v & 0xFFFFFFFF))
	o.writeImm32(uint32(v >> 32))
}

// Len returns the number of bytes emitted so far
func (o *Out) Len() int {
	return o.buf.Len()
}

// Bytes returns the accumulated encoding
func (o *Out) Bytes() []byte {
	return o.buf.Bytes()
}

func (o *Out) trace(format string, args ...any) {
	if VerboseMode {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// Ret generates RET
func (o *Out) Ret() {
	o.trace("ret")
	o.Write(0xC3)
}
