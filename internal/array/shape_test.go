package array

import "testing"

func numArray(shape []int, nums ...float64) *Array {
	return &Array{Shape: shape, Storage: StorageNumbers, Nums: nums}
}

func numsOf(t *testing.T, v Value) []float64 {
	t.Helper()
	a, ok := v.(*Array)
	if !ok {
		t.Fatalf("expected *Array, got %T", v)
	}
	if a.Storage != StorageNumbers {
		t.Fatalf("expected numeric storage, got %v on shape %v", a.Storage, a.Shape)
	}
	return a.Nums
}

func TestRangeRank1(t *testing.T) {
	env := SimpleEnv{}
	out, err := Range(env, numArray([]int{1}, 3))
	if err != nil {
		t.Fatal(err)
	}
	got := numsOf(t, out)
	want := []float64{0, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("range([3]) = %v, want %v", got, want)
		}
	}
}

func TestRangeRank2Scenario1(t *testing.T) {
	env := SimpleEnv{}
	out, err := Range(env, numArray([]int{1}, 2, 3))
	if err != nil {
		t.Fatal(err)
	}
	arr := out.(*Array)
	if !shapeEqual(arr.Shape, []int{2, 3}) {
		t.Fatalf("shape = %v, want [2 3]", arr.Shape)
	}
	// Each flat slot at row-major position (i0,i1) holds the 2-vector (i0,i1).
	for i0 := 0; i0 < 2; i0++ {
		for i1 := 0; i1 < 3; i1++ {
			flat := i0*3 + i1
			cell := arr.At(flat).(*Array)
			if cell.Nums[0] != float64(i0) || cell.Nums[1] != float64(i1) {
				t.Fatalf("cell at (%d,%d) = %v, want [%d %d]", i0, i1, cell.Nums, i0, i1)
			}
		}
	}
}

func TestReshapeScenario2(t *testing.T) {
	env := SimpleEnv{}
	r, err := Range(env, numArray([]int{1}, 6))
	if err != nil {
		t.Fatal(err)
	}
	out, err := Reshape(env, numArray([]int{1}, 2, 3), r)
	if err != nil {
		t.Fatal(err)
	}
	arr := out.(*Array)
	if !shapeEqual(arr.Shape, []int{2, 3}) {
		t.Fatalf("shape = %v, want [2 3]", arr.Shape)
	}
	want := []float64{0, 1, 2, 3, 4, 5}
	for i, w := range want {
		if arr.Nums[i] != w {
			t.Fatalf("storage = %v, want %v", arr.Nums, want)
		}
	}
}

func TestReshapeCyclicAndTruncate(t *testing.T) {
	env := SimpleEnv{}
	out, err := Reshape(env, numArray([]int{1}, 5), numArray([]int{2}, 1, 2))
	if err != nil {
		t.Fatal(err)
	}
	got := numsOf(t, out)
	want := []float64{1, 2, 1, 2, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cyclic reshape = %v, want %v", got, want)
		}
	}

	out2, err := Reshape(env, numArray([]int{1}, 2), numArray([]int{3}, 1, 2, 3))
	if err != nil {
		t.Fatal(err)
	}
	got2 := numsOf(t, out2)
	if got2[0] != 1 || got2[1] != 2 {
		t.Fatalf("truncating reshape = %v, want [1 2]", got2)
	}
}

func TestDeshape(t *testing.T) {
	env := SimpleEnv{}
	a := numArray([]int{2, 2}, 1, 2, 3, 4)
	out, err := Deshape(env, a)
	if err != nil {
		t.Fatal(err)
	}
	arr := out.(*Array)
	if !shapeEqual(arr.Shape, []int{4}) {
		t.Fatalf("shape = %v, want [4]", arr.Shape)
	}
}

func TestTransposeProperty(t *testing.T) {
	env := SimpleEnv{}
	a := numArray([]int{2, 3}, 1, 2, 3, 4, 5, 6)
	out, err := Transpose(env, a)
	if err != nil {
		t.Fatal(err)
	}
	arr := out.(*Array)
	if !shapeEqual(arr.Shape, []int{3, 2}) {
		t.Fatalf("shape = %v, want [3 2]", arr.Shape)
	}
	// new cell (j,i) == old cell (i,j)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			oldVal := a.Nums[i*3+j]
			newVal := arr.Nums[j*2+i]
			if oldVal != newVal {
				t.Fatalf("transpose mismatch at (i=%d,j=%d): old=%v new=%v", i, j, oldVal, newVal)
			}
		}
	}

	back, err := Transpose(env, arr)
	if err != nil {
		t.Fatal(err)
	}
	backArr := back.(*Array)
	for i, v := range backArr.Nums {
		if v != a.Nums[i] {
			t.Fatalf("transpose∘transpose did not round-trip: %v vs %v", backArr.Nums, a.Nums)
		}
	}
}

func TestTransposeRankLessThanTwoIsNoop(t *testing.T) {
	env := SimpleEnv{}
	a := numArray([]int{3}, 1, 2, 3)
	out, err := Transpose(env, a)
	if err != nil {
		t.Fatal(err)
	}
	arr := out.(*Array)
	if !shapeEqual(arr.Shape, []int{3}) {
		t.Fatalf("rank < 2 transpose must be a no-op, got shape %v", arr.Shape)
	}
}

func TestReverseProperty(t *testing.T) {
	env := SimpleEnv{}
	a := numArray([]int{4}, 1, 2, 3, 4)
	once, err := Reverse(env, a)
	if err != nil {
		t.Fatal(err)
	}
	got := numsOf(t, once)
	want := []float64{4, 3, 2, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("reverse = %v, want %v", got, want)
		}
	}
	twice, err := Reverse(env, once)
	if err != nil {
		t.Fatal(err)
	}
	got2 := numsOf(t, twice)
	for i, v := range a.Nums {
		if got2[i] != v {
			t.Fatalf("reverse∘reverse did not round-trip: %v vs %v", got2, a.Nums)
		}
	}
}
