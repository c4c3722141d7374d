// Package executor maps an assembled instruction buffer as executable
// memory, applies its relocations against the final mapping address, and
// invokes it through an assembly trampoline (see rawCall).
package executor

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/runeforge/x86rt/internal/asm"
)

// Program is a buffer that has been mapped as executable memory but not yet
// released. Callers must call Release exactly once, on every exit path,
// including after a panic raised by the mapped code itself.
type Program struct {
	mem  []byte
	base uintptr
}

// Map copies buf's bytes into a fresh RWX anonymous mapping and patches in
// every recorded relocation against the mapping's final base address.
// Programming errors in the relocation log (an out-of-range relative
// displacement, an absolute relocation whose slot is neither Long nor Quad) panic via
// asm.Fail rather than being returned, since they indicate a bug in the
// assembler output, not a runtime resource failure.
func Map(buf *asm.Buffer) (*Program, error) {
	code := buf.Bytes()
	if len(code) == 0 {
		return nil, fmt.Errorf("executor: empty program")
	}

	mem, err := unix.Mmap(-1, 0, pageAlign(len(code)), unix.PROT_READ|unix.PROT_WRITE|unix.PROT_EXEC, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("executor: mmap: %w", err)
	}
	copy(mem, code)

	base := unsafeSliceAddr(mem)
	for _, reloc := range buf.Relocations() {
		applyRelocation(mem, base, reloc)
	}

	return &Program{mem: mem, base: base}, nil
}

// Release unmaps the program's memory. Safe to call once; calling it a
// second time, or on a nil Program, is a programming error.
func (p *Program) Release() error {
	if p == nil {
		asm.Fail("Program.Release", "called on a nil program")
	}
	if p.mem == nil {
		asm.Fail("Program.Release", "program already released")
	}
	mem := p.mem
	p.mem = nil
	return unix.Munmap(mem)
}

// Base returns the mapping's base address, primarily for tests asserting on
// relocation math.
func (p *Program) Base() uintptr { return p.base }

// pageAlign rounds n up to a whole number of host pages.
func pageAlign(n int) int {
	ps := os.Getpagesize()
	return (n + ps - 1) &^ (ps - 1)
}

func applyRelocation(mem []byte, base uintptr, r asm.RelocationInfo) {
	switch r.Kind {
	case asm.RelocAbsolute:
		applyAbsolute(mem, base, r)
	case asm.RelocRelative:
		applyRelative(mem, r)
	default:
		asm.Fail("applyRelocation", "unknown relocation kind %d", r.Kind)
	}
}

func applyAbsolute(mem []byte, base uintptr, r asm.RelocationInfo) {
	target := uint64(base) + uint64(r.To)
	switch r.Size {
	case asm.RelocQuad:
		putLE64(mem[r.From:], target)
	case asm.RelocLong:
		putLE32(mem[r.From:], uint32(target))
	default:
		asm.Fail("applyAbsolute", "absolute relocation must be Long or Quad, got size %d", r.Size)
	}
}

func applyRelative(mem []byte, r asm.RelocationInfo) {
	delta := int64(r.To) - int64(r.From) + int64(r.Nudge)
	switch r.Size {
	case asm.RelocByte:
		checkFits("applyRelative", delta, 8)
		mem[r.From] = byte(int8(delta))
	case asm.RelocWord:
		checkFits("applyRelative", delta, 16)
		putLE16(mem[r.From:], uint16(int16(delta)))
	case asm.RelocLong:
		checkFits("applyRelative", delta, 32)
		putLE32(mem[r.From:], uint32(int32(delta)))
	case asm.RelocQuad:
		putLE64(mem[r.From:], uint64(delta))
	default:
		asm.Fail("applyRelative", "unknown relocation size %d", r.Size)
	}
}

// checkFits panics if delta does not fit in a signed n-bit field. The
// bounds are the exact two's-complement range: a byte displacement must
// lie in [-128, 127], not an off-by-one approximation of it.
func checkFits(op string, delta int64, bits uint) {
	lo := -(int64(1) << (bits - 1))
	hi := (int64(1) << (bits - 1)) - 1
	if delta < lo || delta > hi {
		asm.Fail(op, "relative displacement %d does not fit in a signed %d-bit field", delta, bits)
	}
}

func putLE16(b []byte, v uint16) { b[0], b[1] = byte(v), byte(v>>8) }
func putLE32(b []byte, v uint32) {
	b[0], b[1], b[2], b[3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
}
func putLE64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}
