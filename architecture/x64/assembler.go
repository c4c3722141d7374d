package x64

import "github.com/runeforge/x86rt/internal/asm"

// Assembler accumulates x86-64 machine code into an internal/asm.Buffer.
// Every instruction method below is a thin, checked wrapper around the
// shared ModR/M and relocation machinery: it exists to pick the right
// opcode bytes and prefixes for one mnemonic/operand-shape combination.
type Assembler struct {
	buf *asm.Buffer
}

// New returns an empty x86-64 assembler.
func New() *Assembler {
	return &Assembler{buf: asm.NewBuffer()}
}

// Buffer exposes the underlying byte sink, e.g. for handing to an executor.
func (a *Assembler) Buffer() *asm.Buffer { return a.buf }

// Label allocates a fresh unbound label scoped to this assembler's buffer.
func (a *Assembler) Label() *asm.Label { return asm.NewLabel() }

// Bind binds label at the assembler's current offset.
func (a *Assembler) Bind(label *asm.Label) { a.buf.Bind(label) }
