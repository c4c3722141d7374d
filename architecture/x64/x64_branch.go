package x64

import "github.com/runeforge/x86rt/internal/asm"

// Testq computes rm & src and sets flags, discarding the result.
func (a *Assembler) Testq(rm, src asm.Operand) {
	switch {
	case rm.IsReg() && rm.Reg() == RAX && src.Kind() == asm.KindImm32:
		emitREX(a.buf, asm.EmptyOperand, asm.EmptyOperand)
		a.buf.EmitU8(0xa9)
		a.buf.EmitU32(uint32(src.Imm()))
	case rm.IsRM() && src.Kind() == asm.KindImm32:
		emitREX(a.buf, asm.EmptyOperand, rm)
		a.buf.EmitU8(0xf7)
		a.buf.EmitModRM(asm.OpN(0), rm)
		a.buf.EmitU32(uint32(src.Imm()))
	case rm.IsRM() && src.IsReg():
		emitREX(a.buf, src, rm)
		a.buf.EmitU8(0x85)
		a.buf.EmitModRM(src, rm)
	default:
		asm.Fail("Testq", "unsupported operand shape rm=%s src=%s", rm, src)
	}
}

// Cmpq compares dst against src (dst - src), setting flags only.
func (a *Assembler) Cmpq(dst, src asm.Operand) { emitArith(a.buf, cmpOp, dst, src) }

// Jmpq performs an indirect jump through rm (opcode extension /4).
func (a *Assembler) Jmpq(rm asm.Operand) {
	emitOptREX(a.buf, asm.EmptyOperand, rm)
	a.buf.EmitU8(0xff)
	a.buf.EmitModRM(asm.OpN(4), rm)
}

// Jmp emits a near relative jump to label, rel32-encoded (0xe9).
func (a *Assembler) Jmp(label *asm.Label) {
	a.buf.EmitU8(0xe9)
	a.buf.EmitUse(label, asm.RelocRelative, asm.RelocLong, -4)
}

// JumpCondition is the condition-code suffix of a Jcc instruction.
type JumpCondition byte

const (
	Overflow JumpCondition = iota
	NoOverflow
	Zero
	NotZero
	Greater
	GreaterOrEqual
	Less
	LessOrEqual
)

// Equal and NotEqual are aliases of Zero and NotZero: x86 has one flag
// (ZF) backing both the equality and zero-ness tests.
const (
	Equal    = Zero
	NotEqual = NotZero
)

var jccByte = map[JumpCondition]byte{
	Zero:           0x84,
	NotZero:        0x85,
	Overflow:       0x80,
	NoOverflow:     0x81,
	Greater:        0x8f,
	Less:           0x8c,
	GreaterOrEqual: 0x8d,
	LessOrEqual:    0x8e,
}

// Jcc emits a near conditional relative jump to label (0x0f 0x8x /rel32).
func (a *Assembler) Jcc(cond JumpCondition, label *asm.Label) {
	b, ok := jccByte[cond]
	if !ok {
		asm.Fail("Jcc", "unknown jump condition %d", cond)
	}
	a.buf.EmitU8(0x0f)
	a.buf.EmitU8(b)
	a.buf.EmitUse(label, asm.RelocRelative, asm.RelocLong, -4)
}

// Callq performs an indirect near call through rm (REX.W forced, opcode
// extension /2).
func (a *Assembler) Callq(rm asm.Operand) {
	emitREX(a.buf, asm.EmptyOperand, rm)
	a.buf.EmitU8(0xff)
	a.buf.EmitModRM(asm.OpN(2), rm)
}
