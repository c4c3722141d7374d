package executor_test

import (
	"testing"

	"github.com/runeforge/x86rt/architecture/x64"
	"github.com/runeforge/x86rt/executor"
	"github.com/runeforge/x86rt/internal/asm"
	"github.com/runeforge/x86rt/internal/scenarios"
)

func runScenario(t *testing.T, name string, arg int64) int64 {
	t.Helper()
	s, err := scenarios.Find(name)
	if err != nil {
		t.Fatalf("Find(%q): %v", name, err)
	}

	prog, err := executor.Map(s.Build().Buffer())
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	defer prog.Release()

	return prog.Call(arg)
}

func TestExecutor_Identity(t *testing.T) {
	if got := runScenario(t, "identity", 13589); got != 13589 {
		t.Errorf("identity(13589) = %d, want 13589", got)
	}
}

func TestExecutor_StackMath(t *testing.T) {
	if got := runScenario(t, "stack-math", 13589); got != 40789 {
		t.Errorf("stack-math(13589) = %d, want 40789", got)
	}
}

func TestExecutor_Countdown(t *testing.T) {
	if got := runScenario(t, "countdown", 100); got != 400 {
		t.Errorf("countdown(100) = %d, want 400", got)
	}
}

func TestExecutor_ProcCall(t *testing.T) {
	if got := runScenario(t, "proc-call", 0); got != 123 {
		t.Errorf("proc-call(0) = %d, want 123", got)
	}
}

func TestExecutor_Xchg(t *testing.T) {
	if got := runScenario(t, "xchg", 0x1234); got != 0x1234 {
		t.Errorf("xchg(0x1234) = %d, want 0x1234", got)
	}
}

func TestExecutor_FPPipeline(t *testing.T) {
	if got := runScenario(t, "fp-pipeline", 13589); got != 5959 {
		t.Errorf("fp-pipeline(13589) = %d, want 5959", got)
	}
}

func TestExecutor_ReleaseTwicePanics(t *testing.T) {
	s, _ := scenarios.Find("identity")
	prog, err := executor.Map(s.Build().Buffer())
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if err := prog.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected a second Release to panic")
		}
	}()
	prog.Release()
}

func TestExecutor_Map_EmptyBufferErrors(t *testing.T) {
	if _, err := executor.Map(asm.NewBuffer()); err == nil {
		t.Error("expected Map on an empty buffer to return an error")
	}
}

func TestExecutor_MovqProcLoadsMappedAddress(t *testing.T) {
	a := x64.New()
	body := a.Label()
	a.MovqProc(asm.R(x64.RAX), body)
	a.Ret(asm.EmptyOperand)
	a.Bind(body)
	a.Movq(asm.R(x64.RAX), asm.Imm32(7))
	a.Ret(asm.EmptyOperand)

	prog, err := executor.Map(a.Buffer())
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	defer prog.Release()

	want := int64(prog.Base()) + int64(body.MustOffset())
	if got := prog.Call(0); got != want {
		t.Errorf("loaded address = %#x, want %#x", got, want)
	}
}

func TestExecutor_RelativeByteRangeCheck(t *testing.T) {
	build := func(from, to asm.Offset) *asm.Buffer {
		b := asm.NewBuffer()
		for i := 0; i < 256; i++ {
			b.EmitU8(0x90)
		}
		b.RecordRelocation(asm.RelocationInfo{Kind: asm.RelocRelative, Size: asm.RelocByte, From: from, To: to})
		return b
	}

	scenarios := []struct {
		name     string
		from, to asm.Offset
		panics   bool
	}{
		{"positive limit fits", 0, 127, false},
		{"one past the positive limit panics", 0, 128, true},
		{"negative limit fits", 128, 0, false},
		{"one past the negative limit panics", 129, 0, true},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			defer func() {
				if r := recover(); (r != nil) != scenario.panics {
					t.Errorf("recovered %v, want panic=%v", r, scenario.panics)
				}
			}()
			prog, err := executor.Map(build(scenario.from, scenario.to))
			if err != nil {
				t.Fatalf("Map: %v", err)
			}
			prog.Release()
		})
	}
}
