package array

import "testing"

func TestReplicateScenario9(t *testing.T) {
	env := SimpleEnv{}
	filter := numArray([]int{3}, 2, 0, 3)
	a := &Array{Shape: []int{3}, Storage: StorageChars, Chars: []rune{'a', 'b', 'c'}}
	out, err := Replicate(env, filter, a)
	if err != nil {
		t.Fatal(err)
	}
	arr := out.(*Array)
	if arr.Storage != StorageChars {
		t.Fatalf("expected char storage, got %v", arr.Storage)
	}
	want := []rune{'a', 'a', 'c', 'c', 'c'}
	if len(arr.Chars) != len(want) {
		t.Fatalf("replicate = %v, want %v", string(arr.Chars), string(want))
	}
	for i := range want {
		if arr.Chars[i] != want[i] {
			t.Fatalf("replicate = %v, want %v", string(arr.Chars), string(want))
		}
	}
}

func TestReplicateScalarCount(t *testing.T) {
	env := SimpleEnv{}
	a := numArray([]int{2}, 1, 2)
	out, err := Replicate(env, Number(2), a)
	if err != nil {
		t.Fatal(err)
	}
	got := numsOf(t, out)
	want := []float64{1, 1, 2, 2}
	if !floatsEqual(got, want) {
		t.Fatalf("replicate(2, A) = %v, want %v", got, want)
	}
}

func TestReplicateLengthMismatchFails(t *testing.T) {
	env := SimpleEnv{}
	a := numArray([]int{2}, 1, 2)
	filter := numArray([]int{3}, 1, 1, 1)
	if _, err := Replicate(env, filter, a); err == nil {
		t.Fatal("expected a length-mismatch error")
	}
}

func TestReplicateNegativeFilterFails(t *testing.T) {
	env := SimpleEnv{}
	a := numArray([]int{2}, 1, 2)
	filter := numArray([]int{2}, -1, 2)
	if _, err := Replicate(env, filter, a); err == nil {
		t.Fatal("expected a type error for a negative filter value")
	}
}
