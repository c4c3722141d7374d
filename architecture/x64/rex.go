package x64

import "github.com/runeforge/x86rt/internal/asm"

// emitREX always emits a REX prefix byte: 0100WR0B, with W forced to 1,
// R taken from reg's extension bit and B from rm's. x64 math/branch/basic
// forms that operate on 64-bit GPRs always carry REX.W, since it is what
// selects the 64-bit operand size in the first place.
func emitREX(b *asm.Buffer, reg, rm asm.Operand) {
	b.EmitU8(0b0100_1_0_0_0 | reg.High()<<2 | rm.High())
}

// emitOptREX emits a REX prefix only when one is actually needed: an
// extended register (R8-R15/XMM8-XMM15) on either operand. Forms that are
// REX-optional (the SSE2 scalar forms, whose operand size is already fixed
// by the mandatory prefix and opcode) use this instead of emitREX.
func emitOptREX(b *asm.Buffer, reg, rm asm.Operand) {
	if reg.High() == 0 && rm.High() == 0 {
		return
	}
	b.EmitU8(0b0100_0_0_0_0 | reg.High()<<2 | rm.High())
}
