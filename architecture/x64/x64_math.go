package x64

import "github.com/runeforge/x86rt/internal/asm"

// Incq increments rm in place (ModR/M opcode extension /0).
func (a *Assembler) Incq(rm asm.Operand) {
	emitREX(a.buf, asm.EmptyOperand, rm)
	a.buf.EmitU8(0xff)
	a.buf.EmitModRM(asm.OpN(0), rm)
}

// Decq decrements rm in place (ModR/M opcode extension /1).
func (a *Assembler) Decq(rm asm.Operand) {
	emitREX(a.buf, asm.EmptyOperand, rm)
	a.buf.EmitU8(0xff)
	a.buf.EmitModRM(asm.OpN(1), rm)
}

// arithOp names the classic ALU opcode group (add/or/and/sub/xor/cmp),
// sharing the same /digit, MR, RM and RAX-short-immediate opcode layout.
type arithOp struct {
	ext    byte
	mr     byte // opcode: rm dst, reg src
	rm     byte // opcode: reg dst, rm src
	raxImm byte // opcode: rax dst, imm32 src (short form)
}

var (
	addOp = arithOp{ext: 0, mr: 0x01, rm: 0x03, raxImm: 0x05}
	orOp  = arithOp{ext: 1, mr: 0x09, rm: 0x0b, raxImm: 0x0d}
	andOp = arithOp{ext: 4, mr: 0x21, rm: 0x23, raxImm: 0x25}
	subOp = arithOp{ext: 5, mr: 0x29, rm: 0x2b, raxImm: 0x2d}
	xorOp = arithOp{ext: 6, mr: 0x31, rm: 0x33, raxImm: 0x35}
	cmpOp = arithOp{ext: 7, mr: 0x39, rm: 0x3b, raxImm: 0x3d}
)

// emitArith encodes one ALU-group instruction for (dst, src), covering all
// four operand shapes: rm/imm8 (sign-extended), rm/imm32, rm-dst/reg-src,
// and reg-dst/rm-src, plus the RAX/imm32 short form.
func emitArith(b *asm.Buffer, op arithOp, dst, src asm.Operand) {
	switch {
	case dst.IsReg() && dst.Reg() == RAX && src.Kind() == asm.KindImm32:
		emitREX(b, asm.EmptyOperand, asm.EmptyOperand)
		b.EmitU8(op.raxImm)
		b.EmitU32(uint32(src.Imm()))
	case dst.IsRM() && src.Kind() == asm.KindImm8:
		emitREX(b, asm.EmptyOperand, dst)
		b.EmitU8(0x83)
		b.EmitModRM(asm.OpN(op.ext), dst)
		b.EmitU8(uint8(src.Imm()))
	case dst.IsRM() && src.Kind() == asm.KindImm32:
		emitREX(b, asm.EmptyOperand, dst)
		b.EmitU8(0x81)
		b.EmitModRM(asm.OpN(op.ext), dst)
		b.EmitU32(uint32(src.Imm()))
	case dst.IsRM() && src.IsReg():
		emitREX(b, src, dst)
		b.EmitU8(op.mr)
		b.EmitModRM(src, dst)
	case dst.IsReg() && src.IsMem():
		emitREX(b, dst, src)
		b.EmitU8(op.rm)
		b.EmitModRM(dst, src)
	default:
		asm.Fail("emitArith", "unsupported operand shape dst=%s src=%s", dst, src)
	}
}

// Addq computes dst += src.
func (a *Assembler) Addq(dst, src asm.Operand) { emitArith(a.buf, addOp, dst, src) }

// Orq computes dst |= src.
func (a *Assembler) Orq(dst, src asm.Operand) { emitArith(a.buf, orOp, dst, src) }

// Andq computes dst &= src.
func (a *Assembler) Andq(dst, src asm.Operand) { emitArith(a.buf, andOp, dst, src) }

// Subq computes dst -= src, covering the full ALU-group shape set
// including the rm-dst/reg-src form (0x29 /r).
func (a *Assembler) Subq(dst, src asm.Operand) { emitArith(a.buf, subOp, dst, src) }

// Xorq computes dst ^= src.
func (a *Assembler) Xorq(dst, src asm.Operand) { emitArith(a.buf, xorOp, dst, src) }

// emitDivMul encodes the single-operand 0xf7 opcode-extension group.
func emitDivMul(b *asm.Buffer, ext byte, rm asm.Operand) {
	emitREX(b, asm.EmptyOperand, rm)
	b.EmitU8(0xf7)
	b.EmitModRM(asm.OpN(ext), rm)
}

// Divq computes rdx:rax / rm (unsigned), quotient in rax, remainder in rdx.
func (a *Assembler) Divq(rm asm.Operand) { emitDivMul(a.buf, 6, rm) }

// Mulq computes rdx:rax = rax * rm (unsigned).
func (a *Assembler) Mulq(rm asm.Operand) { emitDivMul(a.buf, 4, rm) }

// Idivq computes rdx:rax / rm (signed), quotient in rax, remainder in rdx.
func (a *Assembler) Idivq(rm asm.Operand) { emitDivMul(a.buf, 7, rm) }

// Imulq computes rdx:rax = rax * rm (signed).
func (a *Assembler) Imulq(rm asm.Operand) { emitDivMul(a.buf, 5, rm) }

// Notq computes the one's complement of rm in place.
func (a *Assembler) Notq(rm asm.Operand) { emitDivMul(a.buf, 2, rm) }

// Negq computes the two's complement (arithmetic negation) of rm in place.
func (a *Assembler) Negq(rm asm.Operand) { emitDivMul(a.buf, 3, rm) }

// emitShift encodes the single-operand 0xc1 opcode-extension group: the
// shift forms whose count is an explicit 8-bit immediate.
func emitShift(b *asm.Buffer, ext byte, rm asm.Operand, count asm.Operand) {
	if count.Kind() != asm.KindImm8 {
		asm.Fail("emitShift", "shift count must be an 8-bit immediate, got %s", count)
	}
	emitREX(b, asm.EmptyOperand, rm)
	b.EmitU8(0xc1)
	b.EmitModRM(asm.OpN(ext), rm)
	b.EmitU8(uint8(count.Imm()))
}

// Shlq shifts rm left by the immediate count.
func (a *Assembler) Shlq(rm, count asm.Operand) { emitShift(a.buf, 4, rm, count) }

// Shrq shifts rm right (logical) by the immediate count.
func (a *Assembler) Shrq(rm, count asm.Operand) { emitShift(a.buf, 5, rm, count) }

// Sarq shifts rm right (arithmetic) by the immediate count.
func (a *Assembler) Sarq(rm, count asm.Operand) { emitShift(a.buf, 7, rm, count) }
