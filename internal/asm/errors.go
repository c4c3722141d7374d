package asm

import "fmt"

// EncodingError is a programming error: an unsupported operand shape, a
// double-bind of a label, an illegal register in an opcode-extension slot,
// or a displacement that doesn't fit its declared width. It is always
// raised via panic, never returned: there is no recovery path, and the
// caller's test suite is expected to catch it before it reaches
// production, exactly as any other static authoring mistake would be
// caught by a compiler.
type EncodingError struct {
	Op      string // mnemonic or helper that detected the problem
	Message string
}

func (e EncodingError) String() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e EncodingError) Error() string { return e.String() }

// Fail panics with an EncodingError built from op and a formatted message.
func Fail(op, format string, args ...any) {
	panic(EncodingError{Op: op, Message: fmt.Sprintf(format, args...)})
}
