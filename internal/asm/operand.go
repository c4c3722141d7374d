package asm

import "fmt"

// Kind discriminates the variant an Operand currently holds. Operand is a
// closed tagged union: exactly one Kind is active at a time. The shapes
// are finite and known, so a closed variant fits better than a hierarchy.
type Kind int

const (
	KindEmpty Kind = iota
	KindOp         // opcode-extension placeholder, occupies ModR/M reg field
	KindReg        // general register
	KindXReg       // XMM register
	KindMem        // [base + disp]
	KindImm8
	KindImm16
	KindImm32
	KindImm64
)

// Operand is the single operand representation shared by the IA-32 and
// x86-64 instruction tables. Only the fields relevant to Kind are
// meaningful; callers build operands exclusively through the constructors
// below.
type Operand struct {
	kind Kind
	reg  Reg
	xreg XReg
	disp uint32 // raw bit pattern; see Mem
	imm  uint64
	opn  byte
}

// EmptyOperand is the "no operand" placeholder.
var EmptyOperand = Operand{kind: KindEmpty}

// OpN builds the opcode-extension placeholder operand that occupies the
// ModR/M reg field for single-operand instruction forms. n must be in 0..7.
func OpN(n byte) Operand {
	return Operand{kind: KindOp, opn: n & 0x7}
}

// R builds a general-register operand.
func R(r Reg) Operand {
	return Operand{kind: KindReg, reg: r}
}

// X builds an XMM-register operand.
func X(r XReg) Operand {
	return Operand{kind: KindXReg, xreg: r}
}

// Mem builds a [base + disp] memory operand. disp is stored as the raw
// two's-complement bit pattern of a 32-bit displacement: this is what lets
// ModR/M synthesis apply the spec's displacement-size rule ("d <= 0xFF"
// compares that bit pattern, not the signed value) exactly as specified.
func Mem(base Reg, disp int32) Operand {
	return Operand{kind: KindMem, reg: base, disp: uint32(disp)}
}

// Imm8 builds an 8-bit immediate operand.
func Imm8(v uint8) Operand { return Operand{kind: KindImm8, imm: uint64(v)} }

// Imm16 builds a 16-bit immediate operand.
func Imm16(v uint16) Operand { return Operand{kind: KindImm16, imm: uint64(v)} }

// Imm32 builds a 32-bit immediate operand.
func Imm32(v uint32) Operand { return Operand{kind: KindImm32, imm: uint64(v)} }

// Imm64 builds a 64-bit immediate operand.
func Imm64(v uint64) Operand { return Operand{kind: KindImm64, imm: v} }

func (o Operand) Kind() Kind { return o.kind }

func (o Operand) IsReg() bool  { return o.kind == KindReg }
func (o Operand) IsXReg() bool { return o.kind == KindXReg }
func (o Operand) IsMem() bool  { return o.kind == KindMem }
func (o Operand) IsOp() bool   { return o.kind == KindOp }
func (o Operand) IsRM() bool   { return o.IsReg() || o.IsMem() }
func (o Operand) IsXM() bool   { return o.IsXReg() || o.IsMem() }

func (o Operand) IsImm() bool {
	switch o.kind {
	case KindImm8, KindImm16, KindImm32, KindImm64:
		return true
	default:
		return false
	}
}

// Reg returns the general register of a Reg or Mem (base) operand. It
// panics if called on any other kind.
func (o Operand) Reg() Reg {
	if o.kind != KindReg && o.kind != KindMem {
		panic(EncodingError{Op: "Operand.Reg", Message: fmt.Sprintf("not a register or memory operand: %s", o)})
	}
	return o.reg
}

// XReg returns the XMM register of an XReg operand.
func (o Operand) XReg() XReg {
	if o.kind != KindXReg {
		panic(EncodingError{Op: "Operand.XReg", Message: fmt.Sprintf("not an xmm operand: %s", o)})
	}
	return o.xreg
}

// Disp returns the raw displacement bit pattern of a Mem operand.
func (o Operand) Disp() uint32 {
	if o.kind != KindMem {
		panic(EncodingError{Op: "Operand.Disp", Message: fmt.Sprintf("not a memory operand: %s", o)})
	}
	return o.disp
}

// Imm returns the immediate value as a uint64, valid for any Imm* kind.
func (o Operand) Imm() uint64 {
	if !o.IsImm() {
		panic(EncodingError{Op: "Operand.Imm", Message: fmt.Sprintf("not an immediate operand: %s", o)})
	}
	return o.imm
}

// High returns the REX-extension bit: the register's for Reg/XReg/Mem
// operands, 0 for everything else.
func (o Operand) High() byte {
	switch o.kind {
	case KindReg, KindMem:
		return o.reg.High()
	case KindXReg:
		return o.xreg.High()
	default:
		return 0
	}
}

// Low returns the low 3 bits used directly in ModR/M or an opcode's low
// nibble: the register's low bits for Reg/XReg/Mem, or n&7 for an Op(n)
// placeholder, 0 otherwise.
func (o Operand) Low() byte {
	switch o.kind {
	case KindReg, KindMem:
		return o.reg.Low()
	case KindXReg:
		return o.xreg.Low()
	case KindOp:
		return o.opn & 0x7
	default:
		return 0
	}
}

func (o Operand) String() string {
	switch o.kind {
	case KindEmpty:
		return "<empty>"
	case KindOp:
		return fmt.Sprintf("/%d", o.opn)
	case KindReg:
		return fmt.Sprintf("reg(%d)", o.reg)
	case KindXReg:
		return fmt.Sprintf("xreg(%d)", o.xreg)
	case KindMem:
		return fmt.Sprintf("[reg(%d)+%#x]", o.reg, o.disp)
	case KindImm8, KindImm16, KindImm32, KindImm64:
		return fmt.Sprintf("imm(%#x)", o.imm)
	default:
		return "<unknown operand>"
	}
}
