package x86

import "github.com/runeforge/x86rt/internal/asm"

// Testl computes rm & src and sets flags, discarding the result.
func (a *Assembler) Testl(rm, src asm.Operand) {
	switch {
	case rm.IsReg() && rm.Reg() == EAX && src.Kind() == asm.KindImm32:
		a.buf.EmitU8(0xa9)
		a.buf.EmitU32(uint32(src.Imm()))
	case rm.IsRM() && src.Kind() == asm.KindImm32:
		a.buf.EmitU8(0xf7)
		a.buf.EmitModRM(asm.OpN(0), rm)
		a.buf.EmitU32(uint32(src.Imm()))
	case rm.IsRM() && src.IsReg():
		a.buf.EmitU8(0x85)
		a.buf.EmitModRM(src, rm)
	default:
		asm.Fail("Testl", "unsupported operand shape rm=%s src=%s", rm, src)
	}
}

// Cmpl compares dst against src (dst - src), setting flags only.
func (a *Assembler) Cmpl(dst, src asm.Operand) { emitArith(a.buf, cmpOp, dst, src) }

// Jmp performs an indirect jump through rm (opcode extension /4).
func (a *Assembler) Jmp(rm asm.Operand) {
	a.buf.EmitU8(0xff)
	a.buf.EmitModRM(asm.OpN(4), rm)
}

// Jmpl emits a near relative jump to label, rel32-encoded.
func (a *Assembler) Jmpl(label *asm.Label) {
	a.buf.EmitU8(0xe9)
	a.buf.EmitUse(label, asm.RelocRelative, asm.RelocLong, -4)
}

// JumpCondition is the condition-code suffix of a Jccl instruction.
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

// Equal and NotEqual are aliases of Zero and NotZero.
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

// Jccl emits a near conditional relative jump to label.
func (a *Assembler) Jccl(cond JumpCondition, label *asm.Label) {
	b, ok := jccByte[cond]
	if !ok {
		asm.Fail("Jccl", "unknown jump condition %d", cond)
	}
	a.buf.EmitU8(0x0f)
	a.buf.EmitU8(b)
	a.buf.EmitUse(label, asm.RelocRelative, asm.RelocLong, -4)
}

// Call performs an indirect near call through rm (opcode extension /2).
func (a *Assembler) Call(rm asm.Operand) {
	a.buf.EmitU8(0xff)
	a.buf.EmitModRM(asm.OpN(2), rm)
}
