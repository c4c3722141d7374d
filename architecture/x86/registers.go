// Package x86 implements the IA-32 instruction tables: 32-bit
// general-purpose register forms with no REX prefix, built on the same
// shared internal/asm encoding primitives as package x64.
package x86

import "github.com/runeforge/x86rt/internal/asm"

// General purpose registers, 32-bit width. IA-32 has no extended registers
// and no REX prefix, so every encoding fits in 0-7 (Reg.High() is always 0).
const (
	EAX asm.Reg = iota
	ECX
	EDX
	EBX
	ESP
	EBP
	ESI
	EDI
)
