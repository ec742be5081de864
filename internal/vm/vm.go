package vm

import (
	"fmt"

	"arraycore/internal/array"
	"arraycore/internal/bytecode"
	arrerrors "arraycore/internal/errors"
)

// StdEnv is the array.Env the VM hands to every verb call: it bridges
// an array-core failure into the runtime's general error taxonomy so
// it prints and propagates like any other RuntimeErr.
type StdEnv struct{}

// Error implements array.Env.
func (StdEnv) Error(kind array.ErrorKind, message string) error {
	return arrerrors.NewArrayError(kind, message)
}

// VM is the stack machine that drives a compiled chunk. It owns no
// verb semantics itself; every array-core opcode below pops its
// operands and calls straight into the array package.
type VM struct {
	stack []array.Value
	chunk *bytecode.Chunk
	ip    int
	env   array.Env
	ops   int
}

// NewVM returns a VM with no chunk loaded; call ResetWithChunk before Run.
func NewVM() *VM {
	return &VM{env: StdEnv{}}
}

// ResetWithChunk loads a new chunk and clears the stack and program
// counter, so one VM can be reused across REPL lines.
func (vm *VM) ResetWithChunk(chunk *bytecode.Chunk) {
	vm.chunk = chunk
	vm.ip = 0
	vm.stack = vm.stack[:0]
	vm.ops = 0
}

// OpsRun is how many opcodes the most recent Run dispatched, for the
// reporting package's RunSummary.
func (vm *VM) OpsRun() int { return vm.ops }

func (vm *VM) push(v array.Value) { vm.stack = append(vm.stack, v) }

func (vm *VM) pop() (array.Value, error) {
	n := len(vm.stack)
	if n == 0 {
		return nil, fmt.Errorf("vm: stack underflow")
	}
	v := vm.stack[n-1]
	vm.stack = vm.stack[:n-1]
	return v, nil
}

func (vm *VM) readByte() byte {
	b := vm.chunk.Code[vm.ip]
	vm.ip++
	return b
}

func (vm *VM) constant(idx byte) (array.Value, error) {
	if int(idx) >= len(vm.chunk.Constants) {
		return nil, fmt.Errorf("vm: constant index %d out of range", idx)
	}
	c := vm.chunk.Constants[idx]
	v, ok := c.(array.Value)
	if !ok {
		return nil, fmt.Errorf("vm: constant %v is not an array.Value", c)
	}
	return v, nil
}

// Run executes the loaded chunk to completion (an OpReturn or running
// off the end of Code) and returns the top-of-stack result, if any.
func (vm *VM) Run() (array.Value, error) {
	for vm.ip < len(vm.chunk.Code) {
		op := bytecode.OpCode(vm.readByte())
		vm.ops++

		switch op {
		case bytecode.OpConstant:
			idx := vm.readByte()
			v, err := vm.constant(idx)
			if err != nil {
				return nil, err
			}
			vm.push(v)

		case bytecode.OpPop:
			if _, err := vm.pop(); err != nil {
				return nil, err
			}

		case bytecode.OpDup:
			n := len(vm.stack)
			if n == 0 {
				return nil, fmt.Errorf("vm: stack underflow on dup")
			}
			vm.push(vm.stack[n-1])

		case bytecode.OpSwap:
			n := len(vm.stack)
			if n < 2 {
				return nil, fmt.Errorf("vm: stack underflow on swap")
			}
			vm.stack[n-1], vm.stack[n-2] = vm.stack[n-2], vm.stack[n-1]

		case bytecode.OpPrint:
			v, err := vm.pop()
			if err != nil {
				return nil, err
			}
			PrintValue(v)

		case bytecode.OpReturn:
			if len(vm.stack) == 0 {
				return nil, nil
			}
			return vm.stack[len(vm.stack)-1], nil

		// Monadic array verbs: pop one argument, push one result.
		case bytecode.OpRange, bytecode.OpDeshape,
			bytecode.OpTranspose, bytecode.OpReverse, bytecode.OpEnclose,
			bytecode.OpGrade, bytecode.OpClassify, bytecode.OpFirst,
			bytecode.OpLast:
			arg, err := vm.pop()
			if err != nil {
				return nil, err
			}
			result, err := vm.dispatchMonadic(op, arg)
			if err != nil {
				return nil, err
			}
			vm.push(result)

		// Dyadic array verbs: pop b then a (a was pushed first), push
		// one result. Each dispatch function documents argument order.
		case bytecode.OpReshape, bytecode.OpPair, bytecode.OpCouple, bytecode.OpJoin,
			bytecode.OpTake, bytecode.OpDrop, bytecode.OpPick,
			bytecode.OpSelectVerb, bytecode.OpRotate, bytecode.OpReplicate,
			bytecode.OpWindows, bytecode.OpMember:
			b, err := vm.pop()
			if err != nil {
				return nil, err
			}
			a, err := vm.pop()
			if err != nil {
				return nil, err
			}
			result, err := vm.dispatchDyadic(op, a, b)
			if err != nil {
				return nil, err
			}
			vm.push(result)

		default:
			return nil, fmt.Errorf("vm: unhandled opcode %d", op)
		}
	}

	if len(vm.stack) == 0 {
		return nil, nil
	}
	return vm.stack[len(vm.stack)-1], nil
}

func (vm *VM) dispatchMonadic(op bytecode.OpCode, arg array.Value) (array.Value, error) {
	switch op {
	case bytecode.OpRange:
		return array.Range(vm.env, arg)
	case bytecode.OpDeshape:
		return array.Deshape(vm.env, arg)
	case bytecode.OpTranspose:
		return array.Transpose(vm.env, arg)
	case bytecode.OpReverse:
		return array.Reverse(vm.env, arg)
	case bytecode.OpEnclose:
		return array.Enclose(vm.env, arg)
	case bytecode.OpGrade:
		return array.Grade(vm.env, arg)
	case bytecode.OpClassify:
		return array.Classify(vm.env, arg)
	case bytecode.OpFirst:
		return array.First(vm.env, arg)
	case bytecode.OpLast:
		return array.Last(vm.env, arg)
	case bytecode.OpReshape:
		return nil, fmt.Errorf("vm: reshape is dyadic, not monadic")
	default:
		return nil, fmt.Errorf("vm: opcode %d is not monadic", op)
	}
}

// dispatchDyadic receives a and b in push order: a was pushed before
// b, so b is the second (right-hand) operand for each verb below,
// matching normal left-to-right evaluation order.
func (vm *VM) dispatchDyadic(op bytecode.OpCode, a, b array.Value) (array.Value, error) {
	switch op {
	case bytecode.OpReshape:
		return array.Reshape(vm.env, a, b)
	case bytecode.OpPair:
		return array.Pair(vm.env, a, b)
	case bytecode.OpCouple:
		return array.Couple(vm.env, a, b)
	case bytecode.OpJoin:
		return array.Join(vm.env, a, b)
	case bytecode.OpTake:
		return array.Take(vm.env, a, b)
	case bytecode.OpDrop:
		return array.Drop(vm.env, a, b)
	case bytecode.OpPick:
		return array.Pick(vm.env, a, b)
	case bytecode.OpSelectVerb:
		return array.Select(vm.env, a, b)
	case bytecode.OpRotate:
		return array.Rotate(vm.env, a, b)
	case bytecode.OpReplicate:
		return array.Replicate(vm.env, a, b)
	case bytecode.OpWindows:
		return array.Windows(vm.env, a, b)
	case bytecode.OpMember:
		return array.Member(vm.env, a, b)
	default:
		return nil, fmt.Errorf("vm: opcode %d is not dyadic", op)
	}
}
