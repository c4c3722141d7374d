package x86

import "github.com/runeforge/x86rt/internal/asm"

// Assembler accumulates IA-32 machine code into an internal/asm.Buffer.
type Assembler struct {
	buf *asm.Buffer
}

// New returns an empty IA-32 assembler.
func New() *Assembler {
	return &Assembler{buf: asm.NewBuffer()}
}

// Buffer exposes the underlying byte sink, e.g. for handing to an executor.
func (a *Assembler) Buffer() *asm.Buffer { return a.buf }

// Label allocates a fresh unbound label scoped to this assembler's buffer.
func (a *Assembler) Label() *asm.Label { return asm.NewLabel() }

// Bind binds label at the assembler's current offset.
func (a *Assembler) Bind(label *asm.Label) { a.buf.Bind(label) }
