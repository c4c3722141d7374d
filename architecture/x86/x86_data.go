package x86

import "github.com/runeforge/x86rt/internal/asm"

// Movl moves between two 32-bit general-purpose locations, or loads an
// immediate. IA-32 has no REX prefix, so every form here is prefix-free.
func (a *Assembler) Movl(dst, src asm.Operand) {
	switch {
	case dst.IsRM() && src.IsReg():
		a.buf.EmitU8(0x89)
		a.buf.EmitModRM(src, dst)
	case dst.IsReg() && src.IsMem():
		a.buf.EmitU8(0x8b)
		a.buf.EmitModRM(dst, src)
	case dst.IsReg() && src.Kind() == asm.KindImm32:
		a.buf.EmitU8(0xb8 + dst.Low())
		a.buf.EmitU32(uint32(src.Imm()))
	case dst.IsMem() && src.Kind() == asm.KindImm32:
		a.buf.EmitU8(0xc7)
		a.buf.EmitModRM(asm.OpN(0), dst)
		a.buf.EmitU32(uint32(src.Imm()))
	default:
		asm.Fail("Movl", "unsupported operand shape dst=%s src=%s", dst, src)
	}
}

// Movlzxb zero-extends an 8-bit rm into a 32-bit register.
func (a *Assembler) Movlzxb(dst, src asm.Operand) {
	a.buf.EmitU8(0x0f)
	a.buf.EmitU8(0xb6)
	a.buf.EmitModRM(dst, src)
}

// Movlzxl zero-extends a 16-bit rm into a 32-bit register.
func (a *Assembler) Movlzxl(dst, src asm.Operand) {
	a.buf.EmitU8(0x0f)
	a.buf.EmitU8(0xb7)
	a.buf.EmitModRM(dst, src)
}

// MovlProc loads dst with the absolute runtime address label resolves to,
// truncated to 32 bits (IA-32 has no 64-bit immediate form).
func (a *Assembler) MovlProc(dst asm.Operand, label *asm.Label) {
	if !dst.IsReg() {
		asm.Fail("MovlProc", "dst must be a register, got %s", dst)
	}
	a.buf.EmitU8(0xb8 + dst.Low())
	a.buf.EmitUse(label, asm.RelocAbsolute, asm.RelocLong, 0)
}

// Xchgl exchanges dst and src. Either operand being EAX selects the
// single-byte short form (0x90+r); otherwise the general ModR/M form.
func (a *Assembler) Xchgl(dst, src asm.Operand) {
	switch {
	case dst.IsReg() && dst.Reg() == EAX && src.IsReg():
		a.buf.EmitU8(0x90 + src.Low())
	case src.IsReg() && src.Reg() == EAX && dst.IsReg():
		a.buf.EmitU8(0x90 + dst.Low())
	case dst.IsRM() && src.IsReg():
		a.buf.EmitU8(0x87)
		a.buf.EmitModRM(src, dst)
	default:
		asm.Fail("Xchgl", "unsupported operand shape dst=%s src=%s", dst, src)
	}
}

// Pushl pushes src (a register, memory operand, or immediate) onto the
// stack. Register and memory operands both go through 0xff /6; immediates
// use the dedicated 0x6a/0x68 opcodes.
func (a *Assembler) Pushl(src asm.Operand) {
	switch {
	case src.IsRM():
		a.buf.EmitU8(0xff)
		a.buf.EmitModRM(asm.OpN(6), src)
	case src.Kind() == asm.KindImm8:
		a.buf.EmitU8(0x6a)
		a.buf.EmitU8(uint8(src.Imm()))
	case src.Kind() == asm.KindImm32:
		a.buf.EmitU8(0x68)
		a.buf.EmitU32(uint32(src.Imm()))
	default:
		asm.Fail("Pushl", "unsupported operand shape %s", src)
	}
}

// Popl pops the top of the stack into dst (a register or memory operand).
func (a *Assembler) Popl(dst asm.Operand) {
	switch {
	case dst.IsReg():
		a.buf.EmitU8(0x58 + dst.Low())
	case dst.IsMem():
		a.buf.EmitU8(0x8f)
		a.buf.EmitModRM(asm.OpN(0), dst)
	default:
		asm.Fail("Popl", "unsupported operand shape %s", dst)
	}
}

// Ret returns to the caller, optionally popping imm16 extra bytes of
// arguments off the stack.
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
