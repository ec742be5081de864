package array

// StorageKind names which of the three flat storage variants an Array
// currently owns.
type StorageKind int

const (
	StorageNumbers StorageKind = iota
	StorageChars
	StorageValues
)

// Array is the rectangular container of §3: an ordered shape plus
// exactly one storage variant.
type Array struct {
	Shape   []int
	Storage StorageKind
	Nums    []float64
	Chars   []rune
	Vals    []Value
}

// Kind implements Value.
func (*Array) Kind() Kind { return KindArray }

// Rank is the length of the shape.
func (a *Array) Rank() int { return len(a.Shape) }

// Count is the element count, the product of the shape (1 for rank 0).
func (a *Array) Count() int { return productOf(a.Shape) }

// Len is shape[0] for rank >= 1, else 1 (a rank-0 array holds one element).
func (a *Array) Len() int {
	if a.Rank() == 0 {
		return 1
	}
	return a.Shape[0]
}

// cellSize is the element count of one major cell: product(shape[1:]).
func (a *Array) cellSize() int {
	if len(a.Shape) <= 1 {
		return 1
	}
	return productOf(a.Shape[1:])
}

// At returns the scalar or boxed Value at flat index i.
func (a *Array) At(i int) Value {
	switch a.Storage {
	case StorageNumbers:
		return Number(a.Nums[i])
	case StorageChars:
		return Char(a.Chars[i])
	default:
		return a.Vals[i]
	}
}

// setFlat writes v into flat position i; v must match the storage kind.
func (a *Array) setFlat(i int, v Value) {
	switch a.Storage {
	case StorageNumbers:
		a.Nums[i] = float64(v.(Number))
	case StorageChars:
		a.Chars[i] = rune(v.(Char))
	default:
		a.Vals[i] = v
	}
}

// emptyLike allocates a zero-valued Array of the given shape, keeping
// the receiver's storage kind.
func (a *Array) emptyLike(shape []int, count int) *Array {
	switch a.Storage {
	case StorageNumbers:
		return &Array{Shape: shape, Storage: StorageNumbers, Nums: make([]float64, count)}
	case StorageChars:
		return &Array{Shape: shape, Storage: StorageChars, Chars: make([]rune, count)}
	default:
		return &Array{Shape: shape, Storage: StorageValues, Vals: make([]Value, count)}
	}
}

// MajorCell returns the i-th cell along axis 0: a scalar if rank is 1,
// otherwise a residual Array of shape shape[1:].
func (a *Array) MajorCell(i int) Value {
	return extractCell(a, i*a.cellSize(), append([]int{}, a.Shape[1:]...))
}

// MajorCells returns every axis-0 cell, in order.
func (a *Array) MajorCells() []Value {
	n := a.Len()
	cell := a.cellSize()
	tail := append([]int{}, a.Shape[1:]...)
	out := make([]Value, n)
	for i := 0; i < n; i++ {
		out[i] = extractCell(a, i*cell, tail)
	}
	return out
}

func extractCell(a *Array, start int, tailShape []int) Value {
	size := productOf(tailShape)
	if len(tailShape) == 0 {
		return a.At(start)
	}
	switch a.Storage {
	case StorageNumbers:
		return &Array{Shape: append([]int{}, tailShape...), Storage: StorageNumbers, Nums: append([]float64{}, a.Nums[start:start+size]...)}
	case StorageChars:
		return &Array{Shape: append([]int{}, tailShape...), Storage: StorageChars, Chars: append([]rune{}, a.Chars[start:start+size]...)}
	default:
		return &Array{Shape: append([]int{}, tailShape...), Storage: StorageValues, Vals: append([]Value{}, a.Vals[start:start+size]...)}
	}
}

// Clone deep-copies the Array; nested arrays in Values storage are
// cloned recursively. There are no shared-mutable references (§9).
func (a *Array) Clone() *Array {
	shape := append([]int{}, a.Shape...)
	switch a.Storage {
	case StorageNumbers:
		return &Array{Shape: shape, Storage: StorageNumbers, Nums: append([]float64{}, a.Nums...)}
	case StorageChars:
		return &Array{Shape: shape, Storage: StorageChars, Chars: append([]rune{}, a.Chars...)}
	default:
		vals := make([]Value, len(a.Vals))
		for i, v := range a.Vals {
			if sub, ok := v.(*Array); ok {
				vals[i] = sub.Clone()
			} else {
				vals[i] = v
			}
		}
		return &Array{Shape: shape, Storage: StorageValues, Vals: vals}
	}
}

// toValues converts the receiver's flat storage into a []Value,
// regardless of its current storage kind.
func toValues(a *Array) []Value {
	n := a.Count()
	out := make([]Value, n)
	for i := 0; i < n; i++ {
		out[i] = a.At(i)
	}
	return out
}

// resizeFlat truncates or cyclically repeats the flat storage to
// exactly n elements, dropping the shape (the caller sets it).
func (a *Array) resizeFlat(n int) *Array {
	switch a.Storage {
	case StorageNumbers:
		out := make([]float64, n)
		if len(a.Nums) > 0 {
			for i := range out {
				out[i] = a.Nums[i%len(a.Nums)]
			}
		}
		return &Array{Storage: StorageNumbers, Nums: out}
	case StorageChars:
		out := make([]rune, n)
		if len(a.Chars) > 0 {
			for i := range out {
				out[i] = a.Chars[i%len(a.Chars)]
			}
		}
		return &Array{Storage: StorageChars, Chars: out}
	default:
		out := make([]Value, n)
		if len(a.Vals) > 0 {
			for i := range out {
				out[i] = a.Vals[i%len(a.Vals)]
			}
		}
		return &Array{Storage: StorageValues, Vals: out}
	}
}

// Validate checks invariant I1: storage length must equal product(shape).
func (a *Array) Validate() error {
	want := a.Count()
	var got int
	switch a.Storage {
	case StorageNumbers:
		got = len(a.Nums)
	case StorageChars:
		got = len(a.Chars)
	default:
		got = len(a.Vals)
	}
	if got != want {
		return &shapeMismatchError{want: want, got: got}
	}
	return nil
}

type shapeMismatchError struct{ want, got int }

func (e *shapeMismatchError) Error() string {
	return "array: storage length does not match shape product"
}

func productOf(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return n
}

func shapeEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func unravel(flat int, shape []int, out []int) {
	for ax := len(shape) - 1; ax >= 0; ax-- {
		if shape[ax] == 0 {
			out[ax] = 0
			continue
		}
		out[ax] = flat % shape[ax]
		flat /= shape[ax]
	}
}

func ravel(idx []int, shape []int) int {
	flat := 0
	for ax := 0; ax < len(shape); ax++ {
		flat = flat*shape[ax] + idx[ax]
	}
	return flat
}

// Normalize collapses Values storage to a homogeneous variant when
// legal. depth 0 never collapses (used by Enclose, which must keep
// its single cell boxed); depth >= 1 attempts both the scalar-cell
// collapse and the nested-array shape-extension collapse of §3.
func Normalize(a *Array, depth int) Value {
	if depth <= 0 || a.Storage != StorageValues || len(a.Vals) == 0 {
		return a
	}

	allNum, allChar := true, true
	for _, v := range a.Vals {
		switch v.(type) {
		case Number:
			allChar = false
		case Char:
			allNum = false
		default:
			allNum, allChar = false, false
		}
		if !allNum && !allChar {
			break
		}
	}
	if allNum {
		nums := make([]float64, len(a.Vals))
		for i, v := range a.Vals {
			nums[i] = float64(v.(Number))
		}
		return &Array{Shape: a.Shape, Storage: StorageNumbers, Nums: nums}
	}
	if allChar {
		chars := make([]rune, len(a.Vals))
		for i, v := range a.Vals {
			chars[i] = rune(v.(Char))
		}
		return &Array{Shape: a.Shape, Storage: StorageChars, Chars: chars}
	}

	first, ok := a.Vals[0].(*Array)
	if !ok {
		return a
	}
	tailShape, tailStorage := first.Shape, first.Storage
	if tailStorage == StorageValues {
		return a
	}
	for _, v := range a.Vals[1:] {
		sub, ok := v.(*Array)
		if !ok || !shapeEqual(sub.Shape, tailShape) || sub.Storage != tailStorage {
			return a
		}
	}
	newShape := append(append([]int{}, a.Shape...), tailShape...)
	size := productOf(tailShape)
	switch tailStorage {
	case StorageNumbers:
		nums := make([]float64, 0, len(a.Vals)*size)
		for _, v := range a.Vals {
			nums = append(nums, v.(*Array).Nums...)
		}
		return &Array{Shape: newShape, Storage: StorageNumbers, Nums: nums}
	case StorageChars:
		chars := make([]rune, 0, len(a.Vals)*size)
		for _, v := range a.Vals {
			chars = append(chars, v.(*Array).Chars...)
		}
		return &Array{Shape: newShape, Storage: StorageChars, Chars: chars}
	default:
		return a
	}
}
