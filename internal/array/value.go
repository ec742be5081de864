// Package array implements the shape-polymorphic array core: Value,
// Array, the shape kernels, and the verb surface built on top of them.
package array

import (
	"fmt"
	"math"
)

// Kind tags the four Value variants.
type Kind int

const (
	KindNumber Kind = iota
	KindChar
	KindFunction
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindChar:
		return "char"
	case KindFunction:
		return "function"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is the tagged union of §3: a scalar number, a scalar
// character, an opaque function reference, or an owned Array.
type Value interface {
	Kind() Kind
}

// Number is a scalar IEEE-754 double.
type Number float64

// Kind implements Value.
func (Number) Kind() Kind { return KindNumber }

// Char is a single Unicode scalar value.
type Char rune

// Kind implements Value.
func (Char) Kind() Kind { return KindChar }

// Callable is the opaque function handle the core carries around but
// never invokes; concrete implementations live in the evaluator.
type Callable interface {
	Value
	Name() string
}

// IsArray reports whether v is an Array.
func IsArray(v Value) bool { return v.Kind() == KindArray }

// IsNum reports whether v is a scalar Number.
func IsNum(v Value) bool { return v.Kind() == KindNumber }

const eps = 1e-9

// IsNat reports whether v is a number within eps of a non-negative integer.
func IsNat(v Value) bool {
	n, ok := v.(Number)
	if !ok {
		return false
	}
	return isNat(float64(n))
}

func isNat(f float64) bool {
	if f < -eps {
		return false
	}
	return isInt(f)
}

func isInt(f float64) bool {
	return math.Abs(f-math.Round(f)) <= eps
}

// CoerceArray lifts a scalar Value to a rank-0 Array; an Array is
// returned unchanged. Functions have no array form.
func CoerceArray(v Value) (*Array, error) {
	switch x := v.(type) {
	case *Array:
		return x, nil
	case Number:
		return &Array{Shape: []int{}, Storage: StorageNumbers, Nums: []float64{float64(x)}}, nil
	case Char:
		return &Array{Shape: []int{}, Storage: StorageChars, Chars: []rune{rune(x)}}, nil
	default:
		return nil, fmt.Errorf("cannot coerce %T to an array", v)
	}
}

// compareValues implements the total order of §3: numbers by IEEE
// order (NaN disallowed), characters by code point, arrays
// lexicographically by shape then by cells; numbers < characters <
// arrays; functions are uncomparable.
func compareValues(a, b Value) (int, error) {
	ra, err := valueOrderRank(a)
	if err != nil {
		return 0, err
	}
	rb, err := valueOrderRank(b)
	if err != nil {
		return 0, err
	}
	if ra != rb {
		if ra < rb {
			return -1, nil
		}
		return 1, nil
	}
	switch ra {
	case 0:
		x, y := float64(a.(Number)), float64(b.(Number))
		if math.IsNaN(x) || math.IsNaN(y) {
			return 0, fmt.Errorf("NaN is not orderable")
		}
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		default:
			return 0, nil
		}
	case 1:
		x, y := rune(a.(Char)), rune(b.(Char))
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		default:
			return 0, nil
		}
	default:
		aa, bb := a.(*Array), b.(*Array)
		if c := compareShapes(aa.Shape, bb.Shape); c != 0 {
			return c, nil
		}
		n := aa.Count()
		for i := 0; i < n; i++ {
			c, err := compareValues(aa.At(i), bb.At(i))
			if err != nil {
				return 0, err
			}
			if c != 0 {
				return c, nil
			}
		}
		return 0, nil
	}
}

func valueOrderRank(v Value) (int, error) {
	switch v.(type) {
	case Number:
		return 0, nil
	case Char:
		return 1, nil
	case *Array:
		return 2, nil
	default:
		return 0, fmt.Errorf("value of type %T is not orderable", v)
	}
}

func compareShapes(a, b []int) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func valuesEqual(a, b Value) (bool, error) {
	c, err := compareValues(a, b)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}
