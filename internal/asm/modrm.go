package asm

// requireNoSIB rejects memory bases that need a SIB byte: rsp and r12,
// whose low 3 bits (100) are the SIB escape in the ModR/M rm field. No
// table or helper in this package emits a SIB byte, so using either as a
// memory operand's base is rejected at emit time instead of silently
// producing a different addressing mode.
func requireNoSIB(op string, base Reg) {
	if base.Low() == 4 {
		Fail(op, "register %d cannot be a ModR/M memory base without a SIB byte (rsp/r12 alias the SIB escape)", base)
	}
}

// EmitModRM synthesizes and emits the ModR/M byte for (reg, rm), followed by
// any displacement the rm operand requires. reg occupies the ModR/M reg
// field and must be a Reg, XReg, or Op(n) placeholder; rm occupies the mod
// and rm fields.
//
// The mod/disp selection follows the table every x86 encoder in this module
// is built against:
//
//	rm is Mem, disp == 0          -> mod=00, disp omitted
//	rm is Mem, disp fits in a byte -> mod=01, disp8 emitted
//	rm is Mem, otherwise           -> mod=10, disp32 emitted
//	rm is Reg or XReg              -> mod=11
//	rm is Empty or an immediate    -> mod=00, rm=000
//
// "Fits in a byte" compares the raw bit pattern of the displacement against
// 0xFF, not its signed value: this matches the literal rule the encoded
// instruction tables were built against, and a negative one-byte
// displacement like -1 (0xFFFFFFFF) takes the disp32 form under it.
func (b *Buffer) EmitModRM(reg, rm Operand) {
	var regField byte
	switch reg.Kind() {
	case KindReg, KindXReg, KindOp:
		regField = reg.Low()
	default:
		Fail("EmitModRM", "reg field operand must be a register or opcode extension, got %s", reg)
	}

	switch rm.Kind() {
	case KindMem:
		requireNoSIB("EmitModRM", rm.Reg())
		rmField := rm.Low()
		disp := rm.Disp()
		switch {
		case disp == 0:
			b.EmitU8((0 << 6) | (regField << 3) | rmField)
		case disp <= 0xFF:
			b.EmitU8((1 << 6) | (regField << 3) | rmField)
			b.EmitU8(byte(disp))
		default:
			b.EmitU8((2 << 6) | (regField << 3) | rmField)
			b.EmitU32(disp)
		}
	case KindReg, KindXReg:
		b.EmitU8((3 << 6) | (regField << 3) | rm.Low())
	case KindEmpty, KindImm8, KindImm16, KindImm32, KindImm64:
		b.EmitU8((0 << 6) | (regField << 3) | 0)
	default:
		Fail("EmitModRM", "rm field operand has no ModR/M encoding: %s", rm)
	}
}
