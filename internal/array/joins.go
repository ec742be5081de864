package array

// Enclose implements §4.3 enclose(v): a rank-0 array whose sole cell
// is v, never collapsed (depth 0) so the box always survives.
func Enclose(env Env, v Value) (Value, error) {
	box := &Array{Shape: []int{}, Storage: StorageValues, Vals: []Value{v}}
	return Normalize(box, 0), nil
}

// Pair implements §4.3 pair(a, b): a rank-1 length-2 array, collapsed
// to homogeneous storage when both cells are a matching scalar type.
func Pair(env Env, a, b Value) (Value, error) {
	arr := &Array{Shape: []int{2}, Storage: StorageValues, Vals: []Value{a, b}}
	return Normalize(arr, 1), nil
}

// Couple implements §4.3 couple(a, b): requires matching shapes,
// stacks a and b as the two major cells of a new leading axis of 2.
func Couple(env Env, a, b Value) (Value, error) {
	aa, err := CoerceArray(a)
	if err != nil {
		return nil, env.Error(ErrTypeError, err.Error())
	}
	bb, err := CoerceArray(b)
	if err != nil {
		return nil, env.Error(ErrTypeError, err.Error())
	}
	if !shapeEqual(aa.Shape, bb.Shape) {
		return nil, env.Error(ErrLengthMismatch, "couple: operands must have identical shapes")
	}
	shape := append([]int{2}, aa.Shape...)
	switch {
	case aa.Storage == StorageNumbers && bb.Storage == StorageNumbers:
		nums := append(append([]float64{}, aa.Nums...), bb.Nums...)
		return &Array{Shape: shape, Storage: StorageNumbers, Nums: nums}, nil
	case aa.Storage == StorageChars && bb.Storage == StorageChars:
		chars := append(append([]rune{}, aa.Chars...), bb.Chars...)
		return &Array{Shape: shape, Storage: StorageChars, Chars: chars}, nil
	case aa.Storage == StorageValues && bb.Storage == StorageValues:
		vals := append(append([]Value{}, aa.Vals...), bb.Vals...)
		return &Array{Shape: shape, Storage: StorageValues, Vals: vals}, nil
	default:
		vals := append(toValues(aa), toValues(bb)...)
		return &Array{Shape: shape, Storage: StorageValues, Vals: vals}, nil
	}
}

// rowCells returns an array's major cells, treating a rank-0 array as
// a single cell holding its scalar.
func rowCells(a *Array) []Value {
	if a.Rank() == 0 {
		return []Value{a.At(0)}
	}
	return a.MajorCells()
}

// tailShape is shape[1:], or empty for rank <= 1.
func tailShape(a *Array) []int {
	if a.Rank() <= 1 {
		return []int{}
	}
	return append([]int{}, a.Shape[1:]...)
}

// Join implements §4.3 join(a, b): axis-0 concatenation when ranks
// match; when ranks differ by exactly one, the lower-rank operand is
// treated as a single cell of the other and spliced in at axis 0.
func Join(env Env, a, b Value) (Value, error) {
	aa, err := CoerceArray(a)
	if err != nil {
		return nil, env.Error(ErrTypeError, err.Error())
	}
	bb, err := CoerceArray(b)
	if err != nil {
		return nil, env.Error(ErrTypeError, err.Error())
	}
	ra, rb := aa.Rank(), bb.Rank()

	var cellsA, cellsB []Value
	var tail []int
	switch {
	case ra == rb:
		tail = tailShape(aa)
		if !shapeEqual(tail, tailShape(bb)) {
			return nil, env.Error(ErrLengthMismatch, "join: trailing shapes must match")
		}
		cellsA, cellsB = rowCells(aa), rowCells(bb)
	case ra == rb+1:
		tail = tailShape(aa)
		if !shapeEqual(bb.Shape, tail) {
			return nil, env.Error(ErrLengthMismatch, "join: lower-rank operand must match the other's cell shape")
		}
		cellB := Value(bb)
		if rb == 0 {
			cellB = bb.At(0)
		}
		cellsA, cellsB = rowCells(aa), []Value{cellB}
	case rb == ra+1:
		tail = tailShape(bb)
		if !shapeEqual(aa.Shape, tail) {
			return nil, env.Error(ErrLengthMismatch, "join: lower-rank operand must match the other's cell shape")
		}
		cellA := Value(aa)
		if ra == 0 {
			cellA = aa.At(0)
		}
		cellsA, cellsB = []Value{cellA}, rowCells(bb)
	default:
		return nil, env.Error(ErrRankMismatch, "join: ranks must match or differ by exactly one")
	}

	cells := append(append([]Value{}, cellsA...), cellsB...)
	out := &Array{Shape: []int{len(cells)}, Storage: StorageValues, Vals: cells}
	return Normalize(out, 1), nil
}
