package array

import "testing"

func TestArrayCountAndLen(t *testing.T) {
	a := &Array{Shape: []int{2, 3}, Storage: StorageNumbers, Nums: []float64{1, 2, 3, 4, 5, 6}}
	if a.Count() != 6 {
		t.Fatalf("Count() = %d, want 6", a.Count())
	}
	if a.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", a.Len())
	}
	scalar := &Array{Shape: []int{}, Storage: StorageNumbers, Nums: []float64{9}}
	if scalar.Len() != 1 {
		t.Fatalf("rank-0 Len() = %d, want 1", scalar.Len())
	}
}

func TestMajorCells(t *testing.T) {
	a := &Array{Shape: []int{2, 2}, Storage: StorageNumbers, Nums: []float64{1, 2, 3, 4}}
	cells := a.MajorCells()
	if len(cells) != 2 {
		t.Fatalf("expected 2 major cells, got %d", len(cells))
	}
	first, ok := cells[0].(*Array)
	if !ok || first.Nums[0] != 1 || first.Nums[1] != 2 {
		t.Fatalf("unexpected first major cell: %+v", cells[0])
	}
}

func TestCloneIsDeep(t *testing.T) {
	inner := &Array{Shape: []int{1}, Storage: StorageNumbers, Nums: []float64{1}}
	a := &Array{Shape: []int{1}, Storage: StorageValues, Vals: []Value{inner}}
	clone := a.Clone()
	cloneInner := clone.Vals[0].(*Array)
	cloneInner.Nums[0] = 99
	if inner.Nums[0] != 1 {
		t.Fatalf("Clone must deep-copy nested arrays; original was mutated")
	}
}

func TestNormalizeDepthZeroNeverCollapses(t *testing.T) {
	boxed := &Array{Shape: []int{}, Storage: StorageValues, Vals: []Value{Number(5)}}
	out := Normalize(boxed, 0)
	arr, ok := out.(*Array)
	if !ok || arr.Storage != StorageValues {
		t.Fatalf("depth 0 must never collapse, got %+v", out)
	}
}

func TestNormalizeCollapsesHomogeneousScalars(t *testing.T) {
	boxed := &Array{Shape: []int{2}, Storage: StorageValues, Vals: []Value{Number(1), Number(2)}}
	out := Normalize(boxed, 1)
	arr, ok := out.(*Array)
	if !ok || arr.Storage != StorageNumbers {
		t.Fatalf("depth 1 must collapse homogeneous numbers, got %+v", out)
	}
	if arr.Nums[0] != 1 || arr.Nums[1] != 2 {
		t.Fatalf("unexpected collapsed contents: %+v", arr.Nums)
	}
}

func TestNormalizeCollapsesNestedShapes(t *testing.T) {
	cellA := &Array{Shape: []int{2}, Storage: StorageNumbers, Nums: []float64{1, 2}}
	cellB := &Array{Shape: []int{2}, Storage: StorageNumbers, Nums: []float64{3, 4}}
	boxed := &Array{Shape: []int{2}, Storage: StorageValues, Vals: []Value{cellA, cellB}}
	out := Normalize(boxed, 1)
	arr, ok := out.(*Array)
	if !ok || arr.Storage != StorageNumbers {
		t.Fatalf("expected collapse to a rank-2 numeric array, got %+v", out)
	}
	wantShape := []int{2, 2}
	if !shapeEqual(arr.Shape, wantShape) {
		t.Fatalf("shape = %v, want %v", arr.Shape, wantShape)
	}
	if arr.Nums[0] != 1 || arr.Nums[3] != 4 {
		t.Fatalf("unexpected flattened contents: %v", arr.Nums)
	}
}

func TestNormalizeLeavesHeterogeneousBoxed(t *testing.T) {
	boxed := &Array{Shape: []int{2}, Storage: StorageValues, Vals: []Value{Number(1), Char('a')}}
	out := Normalize(boxed, 1)
	arr, ok := out.(*Array)
	if !ok || arr.Storage != StorageValues {
		t.Fatalf("heterogeneous cells must stay boxed, got %+v", out)
	}
}
