// Package repl reads array-verb pipelines as JSON operation lists and
// runs them through internal/vm, both from an interactive prompt and
// (via RunJSON) from a single pipeline document handed over whole, the
// way internal/netstream and the CLI's run subcommand do.
package repl

import (
	"encoding/json"
	"fmt"

	"arraycore/internal/array"
	"arraycore/internal/bytecode"
	"arraycore/internal/vm"
)

// Op is one step of a verb pipeline: a verb name and its JSON-decoded
// explicit arguments. Mid-pipeline, a monadic verb takes zero explicit
// args (its sole operand is the piped value) and a dyadic verb takes
// one; the first op of a pipeline supplies all its operands explicitly.
type Op struct {
	Verb string            `json:"verb"`
	Args []json.RawMessage `json:"args"`
}

// ParseOps decodes a pipeline document: a JSON array of operations.
func ParseOps(data []byte) ([]Op, error) {
	var ops []Op
	if err := json.Unmarshal(data, &ops); err != nil {
		return nil, fmt.Errorf("repl: invalid pipeline document: %w", err)
	}
	return ops, nil
}

type verbInfo struct {
	op      bytecode.OpCode
	monadic bool
}

var verbTable = map[string]verbInfo{
	"range":     {bytecode.OpRange, true},
	"reshape":   {bytecode.OpReshape, false},
	"deshape":   {bytecode.OpDeshape, true},
	"transpose": {bytecode.OpTranspose, true},
	"reverse":   {bytecode.OpReverse, true},
	"enclose":   {bytecode.OpEnclose, true},
	"pair":      {bytecode.OpPair, false},
	"couple":    {bytecode.OpCouple, false},
	"join":      {bytecode.OpJoin, false},
	"take":      {bytecode.OpTake, false},
	"drop":      {bytecode.OpDrop, false},
	"pick":      {bytecode.OpPick, false},
	"select":    {bytecode.OpSelectVerb, false},
	"rotate":    {bytecode.OpRotate, false},
	"replicate": {bytecode.OpReplicate, false},
	"windows":   {bytecode.OpWindows, false},
	"grade":     {bytecode.OpGrade, true},
	"classify":  {bytecode.OpClassify, true},
	"member":    {bytecode.OpMember, false},
	"first":     {bytecode.OpFirst, true},
	"last":      {bytecode.OpLast, true},
}

// Compile turns a parsed op list into a chunk the VM can Run. The
// first op's explicit args fully determine its operands (there is
// nothing to pipe yet); every later op pipes the previous op's result
// in as its array operand, alongside its own explicit argument.
func Compile(ops []Op) (*bytecode.Chunk, error) {
	chunk := bytecode.NewChunk()
	for i, op := range ops {
		info, ok := verbTable[op.Verb]
		if !ok {
			return nil, fmt.Errorf("repl: unknown verb %q", op.Verb)
		}

		if info.monadic {
			if i == 0 {
				if len(op.Args) != 1 {
					return nil, fmt.Errorf("repl: %q needs exactly one argument to start a pipeline", op.Verb)
				}
				if err := pushConstant(chunk, op.Args[0]); err != nil {
					return nil, err
				}
			} else if len(op.Args) != 0 {
				return nil, fmt.Errorf("repl: %q is monadic and takes no explicit argument mid-pipeline", op.Verb)
			}
			chunk.WriteOp(info.op)
			continue
		}

		// Dyadic: needs exactly two operands total. mid-pipeline, the
		// piped value already sits on the stack; push the explicit
		// argument and swap so the verb sees [explicit, piped].
		switch {
		case i == 0:
			if len(op.Args) != 2 {
				return nil, fmt.Errorf("repl: %q needs two arguments to start a pipeline", op.Verb)
			}
			if err := pushConstant(chunk, op.Args[0]); err != nil {
				return nil, err
			}
			if err := pushConstant(chunk, op.Args[1]); err != nil {
				return nil, err
			}
		case len(op.Args) == 1:
			if err := pushConstant(chunk, op.Args[0]); err != nil {
				return nil, err
			}
			chunk.WriteOp(bytecode.OpSwap)
		default:
			return nil, fmt.Errorf("repl: %q needs exactly one explicit argument mid-pipeline", op.Verb)
		}
		chunk.WriteOp(info.op)
	}
	chunk.WriteOp(bytecode.OpReturn)
	return chunk, nil
}

func pushConstant(chunk *bytecode.Chunk, raw json.RawMessage) error {
	v, err := decodeJSONValue(raw)
	if err != nil {
		return err
	}
	idx := chunk.AddConstant(v)
	if idx > 255 {
		return fmt.Errorf("repl: pipeline has more than 256 distinct constants")
	}
	chunk.WriteOp(bytecode.OpConstant)
	chunk.WriteByte(byte(idx))
	return nil
}

// decodeJSONValue turns one JSON argument into an array.Value: a bare
// number becomes a scalar Number, a string becomes a rank-1 Char
// array, and a JSON list of numbers, or a list of equal-length lists
// of numbers, becomes a rank-1 or rank-2 numeric Array. Ragged input,
// non-numeric list elements and deeper nesting are errors.
func decodeJSONValue(raw json.RawMessage) (array.Value, error) {
	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("repl: invalid argument: %w", err)
	}
	return fromGeneric(generic)
}

func fromGeneric(v interface{}) (array.Value, error) {
	switch x := v.(type) {
	case float64:
		return array.Number(x), nil
	case string:
		runes := []rune(x)
		chars := make([]rune, len(runes))
		copy(chars, runes)
		return &array.Array{Shape: []int{len(chars)}, Storage: array.StorageChars, Chars: chars}, nil
	case []interface{}:
		return arrayFromSlice(x)
	default:
		return nil, fmt.Errorf("repl: unsupported JSON argument %v", v)
	}
}

// arrayFromSlice builds a rank-1 Array from a flat JSON list, or a
// rank-2 Array from a list of same-length numeric rows; it does not
// descend further than one level of nesting.
func arrayFromSlice(items []interface{}) (array.Value, error) {
	if len(items) == 0 {
		return &array.Array{Shape: []int{0}, Storage: array.StorageNumbers}, nil
	}

	if nested, ok := items[0].([]interface{}); ok {
		rowShape := len(nested)
		nums := make([]float64, 0, len(items)*rowShape)
		for _, item := range items {
			row, ok := item.([]interface{})
			if !ok || len(row) != rowShape {
				return nil, fmt.Errorf("repl: ragged array literal")
			}
			for _, cell := range row {
				f, ok := cell.(float64)
				if !ok {
					return nil, fmt.Errorf("repl: nested array literals must be numeric")
				}
				nums = append(nums, f)
			}
		}
		return &array.Array{Shape: []int{len(items), rowShape}, Storage: array.StorageNumbers, Nums: nums}, nil
	}

	nums := make([]float64, len(items))
	for i, item := range items {
		f, ok := item.(float64)
		if !ok {
			return nil, fmt.Errorf("repl: array literal element %d is not a number", i)
		}
		nums[i] = f
	}
	return &array.Array{Shape: []int{len(items)}, Storage: array.StorageNumbers, Nums: nums}, nil
}

// RunJSON compiles and runs one pipeline document against a fresh VM,
// the entry point internal/netstream and the CLI's run subcommand use.
func RunJSON(data []byte) (array.Value, int, error) {
	ops, err := ParseOps(data)
	if err != nil {
		return nil, 0, err
	}
	chunk, err := Compile(ops)
	if err != nil {
		return nil, 0, err
	}
	machine := vm.NewVM()
	machine.ResetWithChunk(chunk)
	result, err := machine.Run()
	return result, machine.OpsRun(), err
}
