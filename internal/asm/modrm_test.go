package asm_test

import (
	"testing"

	"github.com/runeforge/x86rt/internal/asm"
)

func TestEmitModRM_DispSizeSelection(t *testing.T) {
	scenarios := []struct {
		name string
		rm   asm.Operand
		want []byte
	}{
		{"disp zero omits the displacement", asm.Mem(0, 0), []byte{0x00}},
		{"disp fits a byte uses mod01+disp8", asm.Mem(0, 0xFF), []byte{0x40, 0xFF}},
		{"disp over a byte uses mod10+disp32", asm.Mem(0, 0x100), []byte{0x80, 0x00, 0x01, 0x00, 0x00}},
		{"negative disp uses the raw bit pattern, not the signed value", asm.Mem(0, -1), []byte{0x80, 0xFF, 0xFF, 0xFF, 0xFF}},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			b := asm.NewBuffer()
			b.EmitModRM(asm.OpN(0), scenario.rm)
			if string(b.Bytes()) != string(scenario.want) {
				t.Errorf("got % x, want % x", b.Bytes(), scenario.want)
			}
		})
	}
}

func TestEmitModRM_RegisterDirect(t *testing.T) {
	b := asm.NewBuffer()
	b.EmitModRM(asm.R(1), asm.R(2))
	want := byte(0xc0 | 1<<3 | 2)
	if b.Bytes()[0] != want {
		t.Errorf("got %#x, want %#x", b.Bytes()[0], want)
	}
}

func TestEmitModRM_EmptyRM(t *testing.T) {
	b := asm.NewBuffer()
	b.EmitModRM(asm.OpN(3), asm.EmptyOperand)
	if b.Bytes()[0] != 0x18 {
		t.Errorf("got %#x, want 0x18 (mod=00 reg=3 rm=0)", b.Bytes()[0])
	}
}

func TestEmitModRM_RejectsRSPAndR12AsMemBase(t *testing.T) {
	scenarios := []struct {
		name string
		base asm.Reg
	}{
		{"rsp", 4},
		{"r12", 12},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected using %s as a memory base to panic", scenario.name)
				}
			}()
			asm.NewBuffer().EmitModRM(asm.OpN(0), asm.Mem(scenario.base, 0))
		})
	}
}

func TestEmitModRM_BadRegField_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a non-register reg field to panic")
		}
	}()
	asm.NewBuffer().EmitModRM(asm.Imm8(0), asm.R(0))
}
