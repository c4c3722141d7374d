package x64

import "github.com/runeforge/x86rt/internal/asm"

// Movq moves between two 64-bit general-purpose locations, or loads an
// immediate. dst must be a register or memory operand; src may be a
// register, memory, or an immediate (32-bit sign-extended form via 0xc7,
// or the full 64-bit "movabs" form via 0xb8+r when dst is a register and
// src is Imm64).
func (a *Assembler) Movq(dst, src asm.Operand) {
	switch {
	case dst.IsRM() && src.IsReg():
		emitREX(a.buf, src, dst)
		a.buf.EmitU8(0x89)
		a.buf.EmitModRM(src, dst)
	case dst.IsReg() && src.IsMem():
		emitREX(a.buf, dst, src)
		a.buf.EmitU8(0x8b)
		a.buf.EmitModRM(dst, src)
	case dst.IsRM() && src.Kind() == asm.KindImm32:
		emitREX(a.buf, asm.EmptyOperand, dst)
		a.buf.EmitU8(0xc7)
		a.buf.EmitModRM(asm.OpN(0), dst)
		a.buf.EmitU32(uint32(src.Imm()))
	case dst.IsReg() && src.Kind() == asm.KindImm64:
		emitREX(a.buf, asm.EmptyOperand, dst)
		a.buf.EmitU8(0xb8 + dst.Low())
		a.buf.EmitU64(src.Imm())
	default:
		asm.Fail("Movq", "unsupported operand shape dst=%s src=%s", dst, src)
	}
}

// MovqProc loads dst with the absolute runtime address that label resolves
// to once mapped: a movabs whose immediate is an absolute relocation
// instead of a literal, used to call into another bound label indirectly.
func (a *Assembler) MovqProc(dst asm.Operand, label *asm.Label) {
	if !dst.IsReg() {
		asm.Fail("MovqProc", "dst must be a register, got %s", dst)
	}
	emitREX(a.buf, asm.EmptyOperand, dst)
	a.buf.EmitU8(0xb8 + dst.Low())
	a.buf.EmitUse(label, asm.RelocAbsolute, asm.RelocQuad, 0)
}

// Pushq pushes src (a register, memory operand, or immediate) onto the
// stack. Register and memory operands both go through 0xff /6 with REX.W
// forced; immediates use the dedicated 0x6a/0x68 opcodes.
func (a *Assembler) Pushq(src asm.Operand) {
	switch {
	case src.IsRM():
		emitREX(a.buf, asm.EmptyOperand, src)
		a.buf.EmitU8(0xff)
		a.buf.EmitModRM(asm.OpN(6), src)
	case src.Kind() == asm.KindImm8:
		a.buf.EmitU8(0x6a)
		a.buf.EmitU8(uint8(src.Imm()))
	case src.Kind() == asm.KindImm32:
		a.buf.EmitU8(0x68)
		a.buf.EmitU32(uint32(src.Imm()))
	default:
		asm.Fail("Pushq", "unsupported operand shape %s", src)
	}
}

// Popq pops the top of the stack into dst (a register or memory operand).
func (a *Assembler) Popq(dst asm.Operand) {
	switch {
	case dst.IsReg():
		emitOptREX(a.buf, asm.EmptyOperand, dst)
		a.buf.EmitU8(0x58 + dst.Low())
	case dst.IsMem():
		emitOptREX(a.buf, asm.EmptyOperand, dst)
		a.buf.EmitU8(0x8f)
		a.buf.EmitModRM(asm.OpN(0), dst)
	default:
		asm.Fail("Popq", "unsupported operand shape %s", dst)
	}
}

// Ret returns to the caller, optionally popping imm16 extra bytes of
// arguments off the stack (the near-ret-imm16 form).
func (a *Assembler) Ret(imm asm.Operand) {
	switch imm.Kind() {
	case asm.KindEmpty:
		a.buf.EmitU8(0xc3)
	case asm.KindImm16:
		a.buf.EmitU8(0xc2)
		a.buf.EmitU16(uint16(imm.Imm()))
	default:
		asm.Fail("Ret", "unsupported operand shape %s", imm)
	}
}

// Xchgq exchanges dst and src, full 64-bit width (REX.W forced). Either
// operand being RAX selects the short 0x90+r form; otherwise the general
// ModR/M form (0x87).
func (a *Assembler) Xchgq(dst, src asm.Operand) {
	switch {
	case dst.IsReg() && dst.Reg() == RAX && src.IsReg():
		emitREX(a.buf, asm.EmptyOperand, src)
		a.buf.EmitU8(0x90 + src.Low())
	case src.IsReg() && src.Reg() == RAX && dst.IsReg():
		emitREX(a.buf, asm.EmptyOperand, dst)
		a.buf.EmitU8(0x90 + dst.Low())
	case dst.IsRM() && src.IsReg():
		emitREX(a.buf, src, dst)
		a.buf.EmitU8(0x87)
		a.buf.EmitModRM(src, dst)
	default:
		asm.Fail("Xchgq", "unsupported operand shape dst=%s src=%s", dst, src)
	}
}
