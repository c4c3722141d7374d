package x86

import "github.com/runeforge/x86rt/internal/asm"

// Incl increments rm in place.
func (a *Assembler) Incl(rm asm.Operand) {
	a.buf.EmitU8(0xff)
	a.buf.EmitModRM(asm.OpN(0), rm)
}

// Decl decrements rm in place.
func (a *Assembler) Decl(rm asm.Operand) {
	a.buf.EmitU8(0xff)
	a.buf.EmitModRM(asm.OpN(1), rm)
}

// arithOp names the classic ALU opcode group (add/or/and/sub/xor/cmp),
// sharing the same /digit, MR, RM and EAX-short-immediate opcode layout.
type arithOp struct {
	ext    byte
	mr     byte // opcode: rm dst, reg src
	rm     byte // opcode: reg dst, rm src
	eaxImm byte // opcode: eax dst, imm32 src (short form)
}

var (
	addOp = arithOp{ext: 0, mr: 0x01, rm: 0x03, eaxImm: 0x05}
	orOp  = arithOp{ext: 1, mr: 0x09, rm: 0x0b, eaxImm: 0x0d}
	andOp = arithOp{ext: 4, mr: 0x21, rm: 0x23, eaxImm: 0x25}
	subOp = arithOp{ext: 5, mr: 0x29, rm: 0x2b, eaxImm: 0x2d}
	xorOp = arithOp{ext: 6, mr: 0x31, rm: 0x33, eaxImm: 0x35}
	cmpOp = arithOp{ext: 7, mr: 0x39, rm: 0x3b, eaxImm: 0x3d}
)

// emitArith encodes one ALU-group instruction for (dst, src).
func emitArith(b *asm.Buffer, op arithOp, dst, src asm.Operand) {
	switch {
	case dst.IsReg() && dst.Reg() == EAX && src.Kind() == asm.KindImm32:
		b.EmitU8(op.eaxImm)
		b.EmitU32(uint32(src.Imm()))
	case dst.IsRM() && src.Kind() == asm.KindImm8:
		b.EmitU8(0x83)
		b.EmitModRM(asm.OpN(op.ext), dst)
		b.EmitU8(uint8(src.Imm()))
	case dst.IsRM() && src.Kind() == asm.KindImm32:
		b.EmitU8(0x81)
		b.EmitModRM(asm.OpN(op.ext), dst)
		b.EmitU32(uint32(src.Imm()))
	case dst.IsRM() && src.IsReg():
		b.EmitU8(op.mr)
		b.EmitModRM(src, dst)
	case dst.IsReg() && src.IsMem():
		b.EmitU8(op.rm)
		b.EmitModRM(dst, src)
	default:
		asm.Fail("emitArith", "unsupported operand shape dst=%s src=%s", dst, src)
	}
}

// Addl computes dst += src.
func (a *Assembler) Addl(dst, src asm.Operand) { emitArith(a.buf, addOp, dst, src) }

// Orl computes dst |= src.
func (a *Assembler) Orl(dst, src asm.Operand) { emitArith(a.buf, orOp, dst, src) }

// Andl computes dst &= src.
func (a *Assembler) Andl(dst, src asm.Operand) { emitArith(a.buf, andOp, dst, src) }

// Subl computes dst -= src, covering the full ALU-group shape set
// including the register-to-rm form (0x29 /r).
func (a *Assembler) Subl(dst, src asm.Operand) { emitArith(a.buf, subOp, dst, src) }

// Xorl computes dst ^= src.
func (a *Assembler) Xorl(dst, src asm.Operand) { emitArith(a.buf, xorOp, dst, src) }

// emitGroup3 encodes the single-operand 0xf7 opcode-extension group
// (not/neg/mul/imul/div/idiv).
func emitGroup3(b *asm.Buffer, ext byte, rm asm.Operand) {
	b.EmitU8(0xf7)
	b.EmitModRM(asm.OpN(ext), rm)
}

// Divl computes edx:eax / rm (unsigned), quotient in eax, remainder in edx.
func (a *Assembler) Divl(rm asm.Operand) { emitGroup3(a.buf, 6, rm) }

// Mull computes edx:eax = eax * rm (unsigned).
func (a *Assembler) Mull(rm asm.Operand) { emitGroup3(a.buf, 4, rm) }

// Idivl computes edx:eax / rm (signed), quotient in eax, remainder in edx.
func (a *Assembler) Idivl(rm asm.Operand) { emitGroup3(a.buf, 7, rm) }

// Imull computes edx:eax = eax * rm (signed).
func (a *Assembler) Imull(rm asm.Operand) { emitGroup3(a.buf, 5, rm) }

// Notl computes the one's complement of rm in place.
func (a *Assembler) Notl(rm asm.Operand) { emitGroup3(a.buf, 2, rm) }

// Negl computes the two's complement (arithmetic negation) of rm in place.
func (a *Assembler) Negl(rm asm.Operand) { emitGroup3(a.buf, 3, rm) }

// emitShift encodes the immediate-count 0xc1 opcode-extension group.
func emitShift(b *asm.Buffer, ext byte, rm asm.Operand, count asm.Operand) {
	if count.Kind() != asm.KindImm8 {
		asm.Fail("emitShift", "shift count must be an 8-bit immediate, got %s", count)
	}
	b.EmitU8(0xc1)
	b.EmitModRM(asm.OpN(ext), rm)
	b.EmitU8(uint8(count.Imm()))
}

// Shll shifts rm left by the immediate count.
func (a *Assembler) Shll(rm, count asm.Operand) { emitShift(a.buf, 4, rm, count) }

// Shrl shifts rm right (logical) by the immediate count.
func (a *Assembler) Shrl(rm, count asm.Operand) { emitShift(a.buf, 5, rm, count) }

// Sarl shifts rm right (arithmetic) by the immediate count.
func (a *Assembler) Sarl(rm, count asm.Operand) { emitShift(a.buf, 7, rm, count) }
