package repl

import (
	"testing"

	"arraycore/internal/array"
)

func runDoc(t *testing.T, doc string) array.Value {
	t.Helper()
	result, ops, err := RunJSON([]byte(doc))
	if err != nil {
		t.Fatalf("RunJSON(%s): %v", doc, err)
	}
	if ops == 0 {
		t.Fatalf("RunJSON(%s): expected at least one op dispatched", doc)
	}
	return result
}

func TestRangeReshapePipeline(t *testing.T) {
	doc := `[{"verb":"range","args":[[6]]},{"verb":"reshape","args":[[2,3]]}]`
	out := runDoc(t, doc).(*array.Array)
	if len(out.Shape) != 2 || out.Shape[0] != 2 || out.Shape[1] != 3 {
		t.Fatalf("shape = %v, want [2 3]", out.Shape)
	}
	want := []float64{0, 1, 2, 3, 4, 5}
	for i, v := range out.Nums {
		if v != want[i] {
			t.Fatalf("nums = %v, want %v", out.Nums, want)
		}
	}
}

func TestTakeMidPipelineArgumentOrder(t *testing.T) {
	// range(5) then take(3): the leading 3 cells.
	doc := `[{"verb":"range","args":[[5]]},{"verb":"take","args":[3]}]`
	out := runDoc(t, doc).(*array.Array)
	want := []float64{0, 1, 2}
	if len(out.Nums) != len(want) {
		t.Fatalf("nums = %v, want %v", out.Nums, want)
	}
	for i, v := range out.Nums {
		if v != want[i] {
			t.Fatalf("nums = %v, want %v", out.Nums, want)
		}
	}
}

func TestGradeStartsAPipeline(t *testing.T) {
	// grade([4 1 3 2]) = [1 3 2 0] is piped into select as its array
	// operand; selecting it in reverse gives A's descending order.
	doc := `[{"verb":"grade","args":[[4,1,3,2]]},{"verb":"select","args":[[3,2,1,0]]}]`
	out := runDoc(t, doc).(*array.Array)
	want := []float64{0, 2, 3, 1}
	for i, v := range out.Nums {
		if v != want[i] {
			t.Fatalf("select([3 2 1 0], grade(A)) = %v, want %v", out.Nums, want)
		}
	}
}

func TestUnknownVerbFails(t *testing.T) {
	_, _, err := RunJSON([]byte(`[{"verb":"frobnicate","args":[1]}]`))
	if err == nil {
		t.Fatal("expected an error for an unknown verb")
	}
}

func TestStringArgumentBecomesCharArray(t *testing.T) {
	doc := `[{"verb":"reverse","args":["abc"]}]`
	out := runDoc(t, doc).(*array.Array)
	if string(out.Chars) != "cba" {
		t.Fatalf("reverse(\"abc\") = %q, want \"cba\"", string(out.Chars))
	}
}
