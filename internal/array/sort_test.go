package array

import "testing"

func TestMergeSortPermStable(t *testing.T) {
	// Keys with ties: index 0 and 2 both have key 1; stability requires
	// 0 to precede 2 in the output.
	keys := []int{1, 0, 1}
	perm := mergeSortPerm(len(keys), func(i, j int) bool { return keys[i] < keys[j] })
	want := []int{1, 0, 2}
	for i := range want {
		if perm[i] != want[i] {
			t.Fatalf("mergeSortPerm = %v, want %v", perm, want)
		}
	}
}

func TestMergeSortPermEmptyAndSingle(t *testing.T) {
	if perm := mergeSortPerm(0, nil); len(perm) != 0 {
		t.Fatalf("expected empty permutation, got %v", perm)
	}
	perm := mergeSortPerm(1, func(i, j int) bool { return false })
	if len(perm) != 1 || perm[0] != 0 {
		t.Fatalf("expected [0], got %v", perm)
	}
}

func TestSortMajorCells(t *testing.T) {
	env := SimpleEnv{}
	a := numArray([]int{3}, 30, 10, 20)
	out, err := SortMajorCells(env, a)
	if err != nil {
		t.Fatal(err)
	}
	got := numsOf(t, out)
	want := []float64{10, 20, 30}
	if !floatsEqual(got, want) {
		t.Fatalf("SortMajorCells = %v, want %v", got, want)
	}
}

func TestSortMajorCellsRank2(t *testing.T) {
	env := SimpleEnv{}
	a := numArray([]int{3, 2}, 3, 0, 1, 0, 2, 0)
	out, err := SortMajorCells(env, a)
	if err != nil {
		t.Fatal(err)
	}
	arr := out.(*Array)
	if err := arr.Validate(); err != nil {
		t.Fatalf("SortMajorCells on rank-2 invalid: %v", err)
	}
	if !shapeEqual(arr.Shape, []int{3, 2}) {
		t.Fatalf("shape = %v, want [3 2]", arr.Shape)
	}
	got := numsOf(t, out)
	want := []float64{1, 0, 2, 0, 3, 0}
	if !floatsEqual(got, want) {
		t.Fatalf("SortMajorCells rank-2 = %v, want %v", got, want)
	}
}
