package x64

import "github.com/runeforge/x86rt/internal/asm"

// Movsd moves a scalar double between two XMM locations, or loads/stores one
// to/from memory. The load (0F 10) and store (0F 11) opcodes differ only in
// operand direction, exactly like Movq's 0x8b/0x89 pair.
func (a *Assembler) Movsd(dst, src asm.Operand) {
	switch {
	case dst.IsXM() && src.IsXReg():
		a.buf.EmitU8(0xf2)
		emitOptREX(a.buf, src, dst)
		a.buf.EmitU8(0x0f)
		a.buf.EmitU8(0x11)
		a.buf.EmitModRM(src, dst)
	case dst.IsXReg() && src.IsXM():
		a.buf.EmitU8(0xf2)
		emitOptREX(a.buf, dst, src)
		a.buf.EmitU8(0x0f)
		a.buf.EmitU8(0x10)
		a.buf.EmitModRM(dst, src)
	default:
		asm.Fail("Movsd", "unsupported operand shape dst=%s src=%s", dst, src)
	}
}

// emitSSE emits a scalar-double ALU form: mandatory prefix, optional REX,
// 0F <opcode> /r with dst as reg and src as rm.
func emitSSE(b *asm.Buffer, prefix, opcode byte, dst, src asm.Operand) {
	b.EmitU8(prefix)
	emitOptREX(b, dst, src)
	b.EmitU8(0x0f)
	b.EmitU8(opcode)
	b.EmitModRM(dst, src)
}

// Addsd computes dst += src (scalar double).
func (a *Assembler) Addsd(dst, src asm.Operand) { emitSSE(a.buf, 0xf2, 0x58, dst, src) }

// Subsd computes dst -= src (scalar double).
func (a *Assembler) Subsd(dst, src asm.Operand) { emitSSE(a.buf, 0xf2, 0x5c, dst, src) }

// Mulsd computes dst *= src (scalar double).
func (a *Assembler) Mulsd(dst, src asm.Operand) { emitSSE(a.buf, 0xf2, 0x59, dst, src) }

// Divsd computes dst /= src (scalar double).
func (a *Assembler) Divsd(dst, src asm.Operand) { emitSSE(a.buf, 0xf2, 0x5e, dst, src) }

// Andpd computes dst &= src (bitwise, packed double).
func (a *Assembler) Andpd(dst, src asm.Operand) { emitSSE(a.buf, 0x66, 0x54, dst, src) }

// Orpd computes dst |= src (bitwise, packed double).
func (a *Assembler) Orpd(dst, src asm.Operand) { emitSSE(a.buf, 0x66, 0x56, dst, src) }

// Xorpd computes dst ^= src (bitwise, packed double).
func (a *Assembler) Xorpd(dst, src asm.Operand) { emitSSE(a.buf, 0x66, 0x57, dst, src) }

// Ucomisd compares dst and src (scalar double) and sets EFLAGS, unordered
// variant (no signaling on NaN).
func (a *Assembler) Ucomisd(dst, src asm.Operand) { emitSSE(a.buf, 0x66, 0x2e, dst, src) }

// Cvtsi2sd converts the 64-bit signed integer in src to a scalar double in
// dst. REX.W is mandatory, since it selects the 64-bit integer source size.
func (a *Assembler) Cvtsi2sd(dst, src asm.Operand) {
	a.buf.EmitU8(0xf2)
	emitREX(a.buf, dst, src)
	a.buf.EmitU8(0x0f)
	a.buf.EmitU8(0x2a)
	a.buf.EmitModRM(dst, src)
}

// Cvtsd2si converts src (scalar double) to a 64-bit signed integer in dst,
// rounding per the current MXCSR rounding mode.
func (a *Assembler) Cvtsd2si(dst, src asm.Operand) {
	a.buf.EmitU8(0xf2)
	emitREX(a.buf, dst, src)
	a.buf.EmitU8(0x0f)
	a.buf.EmitU8(0x2d)
	a.buf.EmitModRM(dst, src)
}

// Cvttsd2si converts src (scalar double) to a 64-bit signed integer in dst,
// truncating toward zero regardless of the MXCSR rounding mode.
func (a *Assembler) Cvttsd2si(dst, src asm.Operand) {
	a.buf.EmitU8(0xf2)
	emitREX(a.buf, dst, src)
	a.buf.EmitU8(0x0f)
	a.buf.EmitU8(0x2c)
	a.buf.EmitModRM(dst, src)
}

// RoundMode selects Roundsd's rounding behavior.
type RoundMode byte

const (
	RoundNearest RoundMode = iota
	RoundDown
	RoundUp
	RoundTruncate
)

// Roundsd rounds src (scalar double) to an integral value per mode, into
// dst. The trailing immediate byte always sets bit 3 (the precision-
// exception-suppress bit) alongside the two-bit mode field: a rounding
// precision exception is never wanted here.
func (a *Assembler) Roundsd(dst, src asm.Operand, mode RoundMode) {
	a.buf.EmitU8(0x66)
	emitOptREX(a.buf, dst, src)
	a.buf.EmitU8(0x0f)
	a.buf.EmitU8(0x3a)
	a.buf.EmitU8(0x0b)
	a.buf.EmitModRM(dst, src)
	a.buf.EmitU8(0b1000 | byte(mode))
}

// CmpPredicate selects Cmpsd's comparison predicate.
type CmpPredicate byte

const (
	CmpEqual CmpPredicate = iota
	CmpLess
	CmpLessOrEqual
	CmpUnordered
	CmpNotEqual
	CmpNotLess
	CmpNotLessOrEqual
	CmpOrdered
)

// Cmpsd compares dst and src (scalar double) per predicate, writing an
// all-ones or all-zeros mask into dst.
func (a *Assembler) Cmpsd(dst, src asm.Operand, predicate CmpPredicate) {
	a.buf.EmitU8(0xf2)
	emitOptREX(a.buf, dst, src)
	a.buf.EmitU8(0x0f)
	a.buf.EmitU8(0xc2)
	a.buf.EmitModRM(dst, src)
	a.buf.EmitU8(byte(predicate))
}
