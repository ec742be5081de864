package array

// Range implements §4.2 range(shape): for rank 1, the counting vector
// 0..s0-1; for higher rank, an array whose cell at multi-index
// (i0,...,i_{r-1}) is that index tuple itself, enumerated row-major.
func Range(env Env, shapeArg Value) (Value, error) {
	shape, err := AsShape(env, shapeArg)
	if err != nil {
		return nil, err
	}
	if len(shape) == 0 {
		return &Array{Shape: []int{}, Storage: StorageNumbers, Nums: []float64{0}}, nil
	}
	if len(shape) == 1 {
		n := shape[0]
		nums := make([]float64, n)
		for i := 0; i < n; i++ {
			nums[i] = float64(i)
		}
		return &Array{Shape: shape, Storage: StorageNumbers, Nums: nums}, nil
	}
	r := len(shape)
	count := productOf(shape)
	vals := make([]Value, count)
	idx := make([]int, r)
	for flat := 0; flat < count; flat++ {
		unravel(flat, shape, idx)
		vec := make([]float64, r)
		for k, v := range idx {
			vec[k] = float64(v)
		}
		vals[flat] = &Array{Shape: []int{r}, Storage: StorageNumbers, Nums: vec}
	}
	return &Array{Shape: shape, Storage: StorageValues, Vals: vals}, nil
}

// Reshape implements §4.2 reshape(target_shape, v).
func Reshape(env Env, targetArg, v Value) (Value, error) {
	target, err := AsShape(env, targetArg)
	if err != nil {
		return nil, err
	}
	a, cerr := CoerceArray(v)
	if cerr != nil {
		return nil, env.Error(ErrTypeError, cerr.Error())
	}
	count := productOf(target)
	resized := a.resizeFlat(count)
	resized.Shape = target
	return resized, nil
}

// Deshape implements §4.2 deshape(v): flatten to a rank-1 array of the
// element count, storage unchanged.
func Deshape(env Env, v Value) (Value, error) {
	a, err := CoerceArray(v)
	if err != nil {
		return nil, env.Error(ErrTypeError, err.Error())
	}
	out := a.Clone()
	out.Shape = []int{a.Count()}
	return out, nil
}

// Transpose implements §4.2 transpose(v): rotate the shape left by one
// axis, permuting storage so axis 0 becomes the new last axis. Rank < 2
// or an empty axis-0 is a no-op.
func Transpose(env Env, v Value) (Value, error) {
	a, err := CoerceArray(v)
	if err != nil {
		return nil, env.Error(ErrTypeError, err.Error())
	}
	r := a.Rank()
	if r < 2 || a.Shape[0] == 0 {
		return a.Clone(), nil
	}
	newShape := append(append([]int{}, a.Shape[1:]...), a.Shape[0])
	out := a.emptyLike(newShape, a.Count())
	oldIdx := make([]int, r)
	newIdx := make([]int, r)
	count := a.Count()
	for flat := 0; flat < count; flat++ {
		unravel(flat, newShape, newIdx)
		// new cell at (j=newIdx[0..r-2], i=newIdx[r-1]) == old cell at (i, j).
		oldIdx[0] = newIdx[r-1]
		for k := 1; k < r; k++ {
			oldIdx[k] = newIdx[k-1]
		}
		oldFlat := ravel(oldIdx, a.Shape)
		out.setFlat(flat, a.At(oldFlat))
	}
	return out, nil
}

// Reverse implements §4.2 reverse(v): reverse the major cells (axis 0)
// by swapping blocks of size product(shape[1:]).
func Reverse(env Env, v Value) (Value, error) {
	a, err := CoerceArray(v)
	if err != nil {
		return nil, env.Error(ErrTypeError, err.Error())
	}
	out := a.Clone()
	n := out.Len()
	cell := out.cellSize()
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swapBlocks(out, i*cell, j*cell, cell)
	}
	return out, nil
}

func swapBlocks(a *Array, x, y, n int) {
	switch a.Storage {
	case StorageNumbers:
		for k := 0; k < n; k++ {
			a.Nums[x+k], a.Nums[y+k] = a.Nums[y+k], a.Nums[x+k]
		}
	case StorageChars:
		for k := 0; k < n; k++ {
			a.Chars[x+k], a.Chars[y+k] = a.Chars[y+k], a.Chars[x+k]
		}
	default:
		for k := 0; k < n; k++ {
			a.Vals[x+k], a.Vals[y+k] = a.Vals[y+k], a.Vals[x+k]
		}
	}
}
