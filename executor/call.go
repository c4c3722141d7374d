package executor

import (
	"unsafe"

	"github.com/runeforge/x86rt/internal/asm"
)

// unsafeSliceAddr returns the address of mem's backing array.
func unsafeSliceAddr(mem []byte) uintptr {
	return uintptr(unsafe.Pointer(&mem[0]))
}

// rawCall transfers control to the machine code at code, passing arg in rdi
// and returning whatever the code leaves in rax. Implemented in
// call_amd64.s: the generated code follows the System V convention for a
// single-integer-argument function and clobbers callee-saved registers
// freely (the stack-math and exchange programs use rbx and r13-r15), so the
// trampoline saves and restores those around the call. r14 must survive in
// particular: the Go runtime keeps the current goroutine pointer there.
func rawCall(code uintptr, arg int64) int64

// Call invokes the mapped program with arg in the argument register (rdi)
// and returns the value the program leaves in rax. The mapping must outlive
// the call; Release must not be invoked until Call returns.
func (p *Program) Call(arg int64) int64 {
	if p.mem == nil {
		asm.Fail("Program.Call", "called after Release")
	}
	return rawCall(p.base, arg)
}
