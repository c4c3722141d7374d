// Package x64 implements the x86-64 instruction tables: REX-prefixed
// general-purpose register forms and the SSE2 scalar-double floating point
// forms, built on top of the shared internal/asm encoding primitives.
package x64

import "github.com/runeforge/x86rt/internal/asm"

// General purpose registers, 64-bit width. Encoding follows the standard
// x86-64 register numbering; R8-R15 set the REX-extension bit on any use.
const (
	RAX asm.Reg = iota
	RCX
	RDX
	RBX
	RSP
	RBP
	RSI
	RDI
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
)

// XMM registers, used by every SSE2 scalar-double form in x64_fp.go.
const (
	XMM0 asm.XReg = iota
	XMM1
	XMM2
	XMM3
	XMM4
	XMM5
	XMM6
	XMM7
	XMM8
	XMM9
	XMM10
	XMM11
	XMM12
	XMM13
	XMM14
	XMM15
)
