// Package vm implements the thin stack evaluator: it owns the operand
// stack and the opcode dispatch loop, and leaves every array verb's
// semantics to the array package.
package vm

import (
	"fmt"

	"arraycore/internal/array"
	"arraycore/internal/bytecode"
	"arraycore/internal/reporting"
)

// Function is a compiled verb pipeline: a named, fixed-arity chunk. It
// implements array.Callable so it can sit on the operand stack
// alongside numbers, chars, and arrays; Run has no opcode that calls it.
type Function struct {
	FnName string
	Arity  int
	Chunk  *bytecode.Chunk
}

// Kind implements array.Value.
func (*Function) Kind() array.Kind { return array.KindFunction }

// Name implements array.Callable.
func (f *Function) Name() string { return f.FnName }

// PrintValue writes val to stdout the way the REPL echoes a pipeline's
// result: array.Value variants go through reporting's renderer, a
// compiled Function prints its signature.
func PrintValue(val array.Value) {
	switch v := val.(type) {
	case *Function:
		fmt.Printf("<fn %s>\n", v.FnName)
	default:
		fmt.Println(reporting.FormatValue(v))
	}
}
