package store

import (
	"path/filepath"
	"testing"

	"arraycore/internal/array"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arraycore.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveLoadRoundTripsNumericArray(t *testing.T) {
	s := openTemp(t)
	a := &array.Array{Shape: []int{2, 2}, Storage: array.StorageNumbers, Nums: []float64{1, 2, 3, 4}}

	if err := s.Save("grid", a); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load("grid")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	out := got.(*array.Array)
	if len(out.Nums) != 4 || out.Shape[0] != 2 || out.Shape[1] != 2 {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestSaveOverwritesExistingName(t *testing.T) {
	s := openTemp(t)
	first := &array.Array{Shape: []int{1}, Storage: array.StorageNumbers, Nums: []float64{1}}
	second := &array.Array{Shape: []int{1}, Storage: array.StorageNumbers, Nums: []float64{9}}

	if err := s.Save("x", first); err != nil {
		t.Fatal(err)
	}
	if err := s.Save("x", second); err != nil {
		t.Fatal(err)
	}
	got, err := s.Load("x")
	if err != nil {
		t.Fatal(err)
	}
	if got.(*array.Array).Nums[0] != 9 {
		t.Fatalf("expected overwrite to stick, got %v", got)
	}
}

func TestLoadMissingNameFails(t *testing.T) {
	s := openTemp(t)
	if _, err := s.Load("nope"); err == nil {
		t.Fatal("expected an error for a missing name")
	}
}

func TestListAndDelete(t *testing.T) {
	s := openTemp(t)
	one := &array.Array{Shape: []int{}, Storage: array.StorageNumbers, Nums: []float64{1}}
	if err := s.Save("a", one); err != nil {
		t.Fatal(err)
	}
	if err := s.Save("b", one); err != nil {
		t.Fatal(err)
	}

	names, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 {
		t.Fatalf("List() = %v, want 2 names", names)
	}

	if err := s.Delete("a"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load("a"); err == nil {
		t.Fatal("expected deleted name to be unloadable")
	}
}

func TestRoundTripsCharArrayAndScalar(t *testing.T) {
	s := openTemp(t)
	chars := &array.Array{Shape: []int{3}, Storage: array.StorageChars, Chars: []rune("cat")}
	if err := s.Save("word", chars); err != nil {
		t.Fatal(err)
	}
	got, err := s.Load("word")
	if err != nil {
		t.Fatal(err)
	}
	if string(got.(*array.Array).Chars) != "cat" {
		t.Fatalf("got %v", got)
	}

	if err := s.Save("n", array.Number(42)); err != nil {
		t.Fatal(err)
	}
	gotNum, err := s.Load("n")
	if err != nil {
		t.Fatal(err)
	}
	if gotNum.(array.Number) != 42 {
		t.Fatalf("got %v", gotNum)
	}
}

func TestBoxedArrayRoundTrips(t *testing.T) {
	s := openTemp(t)
	boxed := &array.Array{
		Shape:   []int{2},
		Storage: array.StorageValues,
		Vals: []array.Value{
			array.Number(1),
			&array.Array{Shape: []int{2}, Storage: array.StorageNumbers, Nums: []float64{2, 3}},
		},
	}
	if err := s.Save("mixed", boxed); err != nil {
		t.Fatal(err)
	}
	got, err := s.Load("mixed")
	if err != nil {
		t.Fatal(err)
	}
	out := got.(*array.Array)
	if out.Storage != array.StorageValues || len(out.Vals) != 2 {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}
