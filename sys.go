// Completion: 100% - Instruction implementation complete
package main

// Syscall generates SYSCALL. The instruction clobbers rcx (it saves the
// continuation address there), so callers that keep live state in rcx
// must stash it in a spare register around the call.
func (o *Out) Syscall() {
	o.trace("syscall")

	// 0F 05
	o.Write(0x0F)
	o.Write(0x05)
}
