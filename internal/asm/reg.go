package asm

// Reg is a general-purpose register encoding. IA-32 only ever uses encodings
// 0-7; x86-64 extends the space to 0-15, with bit 3 driving the REX.B/R
// extension bit.
type Reg uint8

// High returns the REX-extension bit (0 for encodings 0-7, 1 for 8-15).
func (r Reg) High() byte { return (byte(r) >> 3) & 1 }

// Low returns the 3 bits that are packed directly into ModR/M or an opcode's
// low nibble.
func (r Reg) Low() byte { return byte(r) & 0x7 }

// XReg is an XMM register encoding (x86-64 SSE2 only), 0-15 with the same
// bit-3 extension split as Reg.
type XReg uint8

// High returns the REX-extension bit.
func (r XReg) High() byte { return (byte(r) >> 3) & 1 }

// Low returns the low 3 bits.
func (r XReg) Low() byte { return byte(r) & 0x7 }
