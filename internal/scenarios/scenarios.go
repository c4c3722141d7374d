// Package scenarios assembles the canonical end-to-end programs used to
// exercise the encoder and executor together: one argument in (rdi), one
// result out (rax), covering identity, stack arithmetic, a counting loop,
// an indirect call through a bound label, an extended-register exchange,
// and a floating-point conversion pipeline.
package scenarios

import (
	"fmt"

	"github.com/runeforge/x86rt/architecture/x64"
	"github.com/runeforge/x86rt/internal/asm"
)

// Scenario is one named, buildable program.
type Scenario struct {
	Name        string
	Description string
	Build       func() *x64.Assembler
}

// All lists every canonical scenario, in the order they're introduced.
func All() []Scenario {
	return []Scenario{
		{Name: "identity", Description: "returns its argument unchanged", Build: buildIdentity},
		{Name: "stack-math", Description: "spills the argument to the stack and sums it with registers and constants (3*arg+22)", Build: buildStackMath},
		{Name: "countdown", Description: "counts the argument down to zero, quadrupling it along the way", Build: buildCountdown},
		{Name: "proc-call", Description: "calls a bound subprocedure indirectly and returns its fixed result", Build: buildProcCall},
		{Name: "xchg", Description: "masks the argument in extended registers and exchanges rax with r15 before returning", Build: buildXchg},
		{Name: "fp-pipeline", Description: "round-trips the argument through a scalar-double pipeline", Build: buildFPPipeline},
	}
}

// Find returns the scenario named name, or an error if none matches.
func Find(name string) (Scenario, error) {
	for _, s := range All() {
		if s.Name == name {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("unknown scenario %q", name)
}

// buildIdentity: rax = rdi; ret.
func buildIdentity() *x64.Assembler {
	a := x64.New()
	a.Movq(asm.R(x64.RAX), asm.R(x64.RDI))
	a.Ret(asm.EmptyOperand)
	return a
}

// buildStackMath opens a stack frame, spills the argument into it, then
// sums registers and memory against the slot twice over. mem = arg+5;
// rbx = mem+mem+7 = 2*arg+17; rax = rbx+mem = 3*arg+22 (13589 -> 40789).
func buildStackMath() *x64.Assembler {
	a := x64.New()
	slot := asm.Mem(x64.RBP, -8)

	a.Pushq(asm.R(x64.RBP))
	a.Movq(asm.R(x64.RBP), asm.R(x64.RSP))
	a.Subq(asm.R(x64.RSP), asm.Imm8(8))

	a.Movq(slot, asm.R(x64.RDI))
	a.Addq(slot, asm.Imm32(5))
	a.Movq(asm.R(x64.RBX), slot)
	a.Addq(asm.R(x64.RBX), slot)
	a.Addq(asm.R(x64.RBX), asm.Imm8(7))
	a.Movq(asm.R(x64.RAX), asm.R(x64.RBX))
	a.Addq(asm.R(x64.RAX), slot)

	a.Movq(asm.R(x64.RSP), asm.R(x64.RBP))
	a.Popq(asm.R(x64.RBP))
	a.Ret(asm.EmptyOperand)
	return a
}

// buildCountdown: counts rdi down to zero in rcx, accumulating rax += 4 per
// iteration (100 -> 400), exercising a backward label bind and a forward
// Jcc over the loop body.
func buildCountdown() *x64.Assembler {
	a := x64.New()
	top := a.Label()
	done := a.Label()

	a.Movq(asm.R(x64.RCX), asm.R(x64.RDI))
	a.Movq(asm.R(x64.RAX), asm.Imm32(0))

	a.Bind(top)
	a.Cmpq(asm.R(x64.RCX), asm.Imm32(0))
	a.Jcc(x64.Equal, done)
	a.Addq(asm.R(x64.RAX), asm.Imm32(4))
	a.Decq(asm.R(x64.RCX))
	a.Jmp(top)

	a.Bind(done)
	a.Ret(asm.EmptyOperand)
	return a
}

// buildProcCall: loads the address of a bound subprocedure via MovqProc and
// calls it indirectly; the subprocedure ignores its argument and always
// returns 123.
func buildProcCall() *x64.Assembler {
	a := x64.New()
	sub := a.Label()

	a.MovqProc(asm.R(x64.RAX), sub)
	a.Callq(asm.R(x64.RAX))
	a.Ret(asm.EmptyOperand)

	a.Bind(sub)
	a.Movq(asm.R(x64.RAX), asm.Imm32(123))
	a.Ret(asm.EmptyOperand)
	return a
}

// buildXchg splits the argument into its low and high byte-pairs using the
// extended registers r13-r15, sums them back together through rax, and
// routes the sum through an Xchgq round trip against r15 to exercise the
// REX.B-bearing short exchange form. (arg & 0x00ff) + (arg & 0xff00) equals
// arg whenever arg fits in 16 bits (0x1234 -> 0x1234).
func buildXchg() *x64.Assembler {
	a := x64.New()
	a.Movq(asm.R(x64.R13), asm.R(x64.RDI))
	a.Andq(asm.R(x64.R13), asm.Imm32(0x00ff))

	a.Movq(asm.R(x64.R14), asm.R(x64.RDI))
	a.Andq(asm.R(x64.R14), asm.Imm32(0xff00))

	a.Movq(asm.R(x64.RAX), asm.R(x64.R13))
	a.Addq(asm.R(x64.RAX), asm.R(x64.R14))

	a.Movq(asm.R(x64.R15), asm.Imm32(0))
	a.Xchgq(asm.R(x64.RAX), asm.R(x64.R15))
	a.Xchgq(asm.R(x64.RAX), asm.R(x64.R15))

	a.Ret(asm.EmptyOperand)
	return a
}

// buildFPPipeline converts rdi to a scalar double and computes
// ceil(((arg / 23.0) + 5) * 10) before converting back (13589 -> 5959).
func buildFPPipeline() *x64.Assembler {
	a := x64.New()
	a.Cvtsi2sd(asm.X(x64.XMM0), asm.R(x64.RDI))
	a.Movq(asm.R(x64.RAX), asm.Imm32(23))
	a.Cvtsi2sd(asm.X(x64.XMM1), asm.R(x64.RAX))
	a.Divsd(asm.X(x64.XMM0), asm.X(x64.XMM1))
	a.Movq(asm.R(x64.RAX), asm.Imm32(5))
	a.Cvtsi2sd(asm.X(x64.XMM1), asm.R(x64.RAX))
	a.Addsd(asm.X(x64.XMM0), asm.X(x64.XMM1))
	a.Movq(asm.R(x64.RAX), asm.Imm32(10))
	a.Cvtsi2sd(asm.X(x64.XMM1), asm.R(x64.RAX))
	a.Mulsd(asm.X(x64.XMM0), asm.X(x64.XMM1))
	a.Roundsd(asm.X(x64.XMM0), asm.X(x64.XMM0), x64.RoundUp)
	a.Cvtsd2si(asm.R(x64.RAX), asm.X(x64.XMM0))
	a.Ret(asm.EmptyOperand)
	return a
}
