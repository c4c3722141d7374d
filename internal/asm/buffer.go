package asm

import "encoding/binary"

// Buffer is the append-only byte sink: the sole place raw instruction
// bytes appear, plus the relocation log produced by label binding. Growth is amortized by append; there are no bounds checks, since
// the sink is never asked to seek backwards.
type Buffer struct {
	bytes []byte
	relox []RelocationInfo
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{bytes: make([]byte, 0, 64)}
}

// Bytes returns the emitted bytes so far. The caller must not retain or
// mutate the slice past further emission, since growth may reallocate.
func (b *Buffer) Bytes() []byte { return b.bytes }

// Relocations returns the accumulated relocation log.
func (b *Buffer) Relocations() []RelocationInfo { return b.relox }

// Offset returns the number of bytes emitted so far.
func (b *Buffer) Offset() Offset { return Offset(len(b.bytes)) }

// EmitU8 appends a single byte.
func (b *Buffer) EmitU8(v uint8) { b.bytes = append(b.bytes, v) }

// EmitU16 appends a little-endian 16-bit unit.
func (b *Buffer) EmitU16(v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	b.bytes = append(b.bytes, tmp[:]...)
}

// EmitU32 appends a little-endian 32-bit unit.
func (b *Buffer) EmitU32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.bytes = append(b.bytes, tmp[:]...)
}

// EmitU64 appends a little-endian 64-bit unit.
func (b *Buffer) EmitU64(v uint64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	b.bytes = append(b.bytes, tmp[:]...)
}

// RecordRelocation appends a relocation record to the buffer's patch log.
func (b *Buffer) RecordRelocation(info RelocationInfo) {
	b.relox = append(b.relox, info)
}

// emitPlaceholder writes size zero bytes at the current offset: the slot
// a relocation will later overwrite.
func (b *Buffer) emitPlaceholder(size RelocationSize) {
	switch size {
	case RelocByte:
		b.EmitU8(0)
	case RelocWord:
		b.EmitU16(0)
	case RelocLong:
		b.EmitU32(0)
	case RelocQuad:
		b.EmitU64(0)
	default:
		Fail("Buffer.emitPlaceholder", "unknown relocation size %d", size)
	}
}

// EmitUse records a use of label at the current offset and writes a
// zero-filled placeholder slot of the declared size. If label is already
// bound, the relocation is recorded immediately; otherwise it is queued on
// the label and converted to a relocation when Bind is called.
func (b *Buffer) EmitUse(label *Label, kind RelocationKind, size RelocationSize, nudge int32) {
	from := b.Offset()
	if label.Bound() {
		b.RecordRelocation(RelocationInfo{Kind: kind, Size: size, Nudge: nudge, From: from, To: label.MustOffset()})
	} else {
		label.uses = append(label.uses, pendingUse{kind: kind, size: size, nudge: nudge, from: from})
	}
	b.emitPlaceholder(size)
}

// Bind assigns label's offset to the buffer's current offset and discharges
// every pending use recorded against it into relocations. Binding an
// already-bound label is a programming error.
func (b *Buffer) Bind(label *Label) {
	if label.Bound() {
		Fail("Buffer.Bind", "label already bound at offset %d", *label.offset)
	}
	off := b.Offset()
	label.offset = &off
	for _, use := range label.uses {
		b.RecordRelocation(RelocationInfo{Kind: use.kind, Size: use.size, Nudge: use.nudge, From: use.from, To: off})
	}
	label.uses = nil
}
