package vm

import (
	"testing"

	"arraycore/internal/array"
	"arraycore/internal/bytecode"
)

func TestRunRangeProducesCountingVector(t *testing.T) {
	shape := &array.Array{Shape: []int{1}, Storage: array.StorageNumbers, Nums: []float64{3}}
	c := bytecode.NewChunk()
	c.AddConstant(array.Value(shape))
	c.WriteOp(bytecode.OpConstant)
	c.WriteByte(0)
	c.WriteOp(bytecode.OpRange)
	c.WriteOp(bytecode.OpReturn)

	machine := NewVM()
	machine.ResetWithChunk(c)
	result, err := machine.Run()
	if err != nil {
		t.Fatal(err)
	}
	out := result.(*array.Array)
	want := []float64{0, 1, 2}
	for i, v := range want {
		if out.Nums[i] != v {
			t.Fatalf("range(3) = %v, want %v", out.Nums, want)
		}
	}
	if machine.OpsRun() != 3 {
		t.Fatalf("OpsRun() = %d, want 3", machine.OpsRun())
	}
}

func TestSwapReordersDyadicOperands(t *testing.T) {
	// Simulates a mid-pipeline dyadic call: the piped value (a 3-vector)
	// is already on the stack, then the explicit take-count is pushed
	// and swapped in front of it before OpTake fires.
	vec := &array.Array{Shape: []int{3}, Storage: array.StorageNumbers, Nums: []float64{5, 6, 7}}
	count := &array.Array{Shape: []int{1}, Storage: array.StorageNumbers, Nums: []float64{2}}

	c := bytecode.NewChunk()
	c.AddConstant(array.Value(vec))
	c.WriteOp(bytecode.OpConstant)
	c.WriteByte(0)
	c.AddConstant(array.Value(count))
	c.WriteOp(bytecode.OpConstant)
	c.WriteByte(1)
	c.WriteOp(bytecode.OpSwap)
	c.WriteOp(bytecode.OpTake)
	c.WriteOp(bytecode.OpReturn)

	machine := NewVM()
	machine.ResetWithChunk(c)
	result, err := machine.Run()
	if err != nil {
		t.Fatal(err)
	}
	out := result.(*array.Array)
	want := []float64{5, 6}
	for i, v := range want {
		if out.Nums[i] != v {
			t.Fatalf("take(2, [5 6 7]) = %v, want %v", out.Nums, want)
		}
	}
}

func TestStackUnderflowOnPop(t *testing.T) {
	c := bytecode.NewChunk()
	c.WriteOp(bytecode.OpPop)
	machine := NewVM()
	machine.ResetWithChunk(c)
	if _, err := machine.Run(); err == nil {
		t.Fatal("expected a stack underflow error")
	}
}
