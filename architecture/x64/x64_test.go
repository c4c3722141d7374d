package x64_test

import (
	"testing"

	"github.com/runeforge/x86rt/architecture/x64"
	"github.com/runeforge/x86rt/internal/asm"
)

func TestAssembler_Movq_RegToReg(t *testing.T) {
	a := x64.New()
	a.Movq(asm.R(x64.RAX), asm.R(x64.RDI))

	want := []byte{0x48, 0x89, 0xf8} // REX.W, mov r/m64 r64, modrm(rdi->rax)
	if string(a.Buffer().Bytes()) != string(want) {
		t.Errorf("got % x, want % x", a.Buffer().Bytes(), want)
	}
}

func TestAssembler_Movq_ExtendedRegisterSetsREXB(t *testing.T) {
	a := x64.New()
	a.Movq(asm.R(x64.R8), asm.R(x64.RDI))

	// REX.W=1, R=0, B=1 -> 0x49
	if a.Buffer().Bytes()[0] != 0x49 {
		t.Errorf("REX byte = %#x, want 0x49", a.Buffer().Bytes()[0])
	}
}

func TestAssembler_Movq_Imm64UsesMovabs(t *testing.T) {
	a := x64.New()
	a.Movq(asm.R(x64.RAX), asm.Imm64(0x0102030405060708))

	bytes := a.Buffer().Bytes()
	if bytes[0] != 0x48 || bytes[1] != 0xb8 {
		t.Fatalf("got % x, want REX.W 0x48 then 0xb8+rd", bytes)
	}
	if len(bytes) != 10 {
		t.Errorf("len = %d, want 10 (2-byte prefix+opcode, 8-byte immediate)", len(bytes))
	}
}

func TestAssembler_Pushq_FF6Forms(t *testing.T) {
	scenarios := []struct {
		name string
		src  asm.Operand
		want []byte
	}{
		{"register", asm.R(x64.RDI), []byte{0x48, 0xff, 0xf7}},
		{"extended register sets REX.B", asm.R(x64.R9), []byte{0x49, 0xff, 0xf1}},
		{"memory", asm.Mem(x64.RBP, 8), []byte{0x48, 0xff, 0x75, 0x08}},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			a := x64.New()
			a.Pushq(scenario.src)
			if got := a.Buffer().Bytes(); string(got) != string(scenario.want) {
				t.Errorf("got % x, want % x", got, scenario.want)
			}
		})
	}
}

func TestAssembler_Subq_SupportsRmDstRegSrc(t *testing.T) {
	a := x64.New()
	a.Subq(asm.R(x64.RAX), asm.R(x64.RCX))

	want := []byte{0x48, 0x29, 0xc8}
	if got := a.Buffer().Bytes(); string(got) != string(want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestAssembler_Addq_RaxImmShortForm(t *testing.T) {
	a := x64.New()
	a.Addq(asm.R(x64.RAX), asm.Imm32(100))

	want := []byte{0x48, 0x05, 0x64, 0x00, 0x00, 0x00}
	if got := a.Buffer().Bytes(); string(got) != string(want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestAssembler_Jmp_EmitsRelativeRelocation(t *testing.T) {
	a := x64.New()
	target := a.Label()
	a.Jmp(target)
	a.Bind(target)

	relocs := a.Buffer().Relocations()
	if len(relocs) != 1 {
		t.Fatalf("expected one relocation, got %d", len(relocs))
	}
	if relocs[0].Kind != asm.RelocRelative || relocs[0].Size != asm.RelocLong || relocs[0].Nudge != -4 {
		t.Errorf("got %+v, want a relative long relocation with nudge -4", relocs[0])
	}
	if a.Buffer().Bytes()[0] != 0xe9 {
		t.Errorf("opcode = %#x, want 0xe9", a.Buffer().Bytes()[0])
	}
}

func TestAssembler_Jcc_OpcodeTable(t *testing.T) {
	scenarios := []struct {
		cond x64.JumpCondition
		want byte
	}{
		{x64.Equal, 0x84},
		{x64.NotEqual, 0x85},
		{x64.Greater, 0x8f},
		{x64.Less, 0x8c},
		{x64.GreaterOrEqual, 0x8d},
		{x64.LessOrEqual, 0x8e},
		{x64.Overflow, 0x80},
		{x64.NoOverflow, 0x81},
	}

	for _, scenario := range scenarios {
		a := x64.New()
		label := a.Label()
		a.Bind(label)
		a.Jcc(scenario.cond, label)

		got := a.Buffer().Bytes()
		if got[0] != 0x0f || got[1] != scenario.want {
			t.Errorf("condition %d: got %#x %#x, want 0x0f %#x", scenario.cond, got[0], got[1], scenario.want)
		}
	}
}

func TestAssembler_Roundsd_ImmediateByte(t *testing.T) {
	scenarios := []struct {
		mode x64.RoundMode
		want byte
	}{
		{x64.RoundNearest, 0x08},
		{x64.RoundDown, 0x09},
		{x64.RoundUp, 0x0a},
		{x64.RoundTruncate, 0x0b},
	}

	for _, scenario := range scenarios {
		a := x64.New()
		a.Roundsd(asm.X(x64.XMM0), asm.X(x64.XMM1), scenario.mode)

		got := a.Buffer().Bytes()
		last := got[len(got)-1]
		if last != scenario.want {
			t.Errorf("mode %d: trailing immediate = %#x, want %#x", scenario.mode, last, scenario.want)
		}
	}
}

func TestAssembler_Subsd_UsesCorrectOpcode(t *testing.T) {
	a := x64.New()
	a.Subsd(asm.X(x64.XMM0), asm.X(x64.XMM1))

	got := a.Buffer().Bytes()
	want := []byte{0xf2, 0x0f, 0x5c, 0xc1}
	if string(got) != string(want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestAssembler_Cvtsi2sd_ForcesREXW(t *testing.T) {
	a := x64.New()
	a.Cvtsi2sd(asm.X(x64.XMM0), asm.R(x64.RDI))

	got := a.Buffer().Bytes()
	if got[0] != 0xf2 || got[1] != 0x48 {
		t.Errorf("got % x, want F2 prefix then REX.W 0x48", got)
	}
}

func TestAssembler_NotqNegq_Group3Extensions(t *testing.T) {
	not := x64.New()
	not.Notq(asm.R(x64.RAX))
	if got := not.Buffer().Bytes(); string(got) != string([]byte{0x48, 0xf7, 0xd0}) {
		t.Errorf("Notq: got % x, want % x (/2)", got, []byte{0x48, 0xf7, 0xd0})
	}

	neg := x64.New()
	neg.Negq(asm.R(x64.RAX))
	if got := neg.Buffer().Bytes(); string(got) != string([]byte{0x48, 0xf7, 0xd8}) {
		t.Errorf("Negq: got % x, want % x (/3)", got, []byte{0x48, 0xf7, 0xd8})
	}
}

func TestAssembler_Xchgq_ShortFormWithRAXSetsREXB(t *testing.T) {
	a := x64.New()
	a.Xchgq(asm.R(x64.RAX), asm.R(x64.R15))

	// REX.W=1, B=1 (r15) -> 0x49, then 0x90+7
	want := []byte{0x49, 0x97}
	if got := a.Buffer().Bytes(); string(got) != string(want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestAssembler_Xchgq_GeneralForm(t *testing.T) {
	a := x64.New()
	a.Xchgq(asm.R(x64.RBX), asm.R(x64.RCX))

	want := []byte{0x48, 0x87, 0xcb}
	if got := a.Buffer().Bytes(); string(got) != string(want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestAssembler_Cmpsd_TrailingPredicateByte(t *testing.T) {
	a := x64.New()
	a.Cmpsd(asm.X(x64.XMM0), asm.X(x64.XMM1), x64.CmpLessOrEqual)

	got := a.Buffer().Bytes()
	want := []byte{0xf2, 0x0f, 0xc2, 0xc1, 0x02}
	if string(got) != string(want) {
		t.Errorf("got % x, want % x (F2 0F C2 /r ib)", got, want)
	}
}
