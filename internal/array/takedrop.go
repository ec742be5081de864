package array

// FillValue computes the neutral padding value for proto: 0 for a
// number, space for a character, a same-shape array of fills for an
// array. Functions have no fill.
func FillValue(env Env, proto Value) (Value, error) {
	switch x := proto.(type) {
	case Number:
		return Number(0), nil
	case Char:
		return Char(' '), nil
	case *Array:
		switch x.Storage {
		case StorageNumbers:
			return &Array{Shape: append([]int{}, x.Shape...), Storage: StorageNumbers, Nums: make([]float64, x.Count())}, nil
		case StorageChars:
			chars := make([]rune, x.Count())
			for i := range chars {
				chars[i] = ' '
			}
			return &Array{Shape: append([]int{}, x.Shape...), Storage: StorageChars, Chars: chars}, nil
		default:
			vals := make([]Value, len(x.Vals))
			for i, v := range x.Vals {
				fv, err := FillValue(env, v)
				if err != nil {
					return nil, err
				}
				vals[i] = fv
			}
			return &Array{Shape: append([]int{}, x.Shape...), Storage: StorageValues, Vals: vals}, nil
		}
	default:
		return nil, env.Error(ErrNoFillValue, "fill requested on a function value")
	}
}

// fillForArray derives the fill cell for one major cell of a: same
// shape (a.Shape[1:]) and element type as a's own storage.
func fillForArray(env Env, a *Array) (Value, error) {
	tail := tailShape(a)
	switch a.Storage {
	case StorageNumbers:
		if len(tail) == 0 {
			return Number(0), nil
		}
		return &Array{Shape: tail, Storage: StorageNumbers, Nums: make([]float64, productOf(tail))}, nil
	case StorageChars:
		if len(tail) == 0 {
			return Char(' '), nil
		}
		chars := make([]rune, productOf(tail))
		for i := range chars {
			chars[i] = ' '
		}
		return &Array{Shape: tail, Storage: StorageChars, Chars: chars}, nil
	default:
		if a.Len() == 0 {
			return nil, env.Error(ErrNoFillValue, "take: no fill value available for an empty heterogeneous array")
		}
		return FillValue(env, a.MajorCell(0))
	}
}

// Take implements §4.4 take(I, A).
func Take(env Env, idxArg, v Value) (Value, error) {
	idx, err := AsIndices(env, idxArg)
	if err != nil {
		return nil, err
	}
	a, cerr := CoerceArray(v)
	if cerr != nil {
		return nil, env.Error(ErrTypeError, cerr.Error())
	}
	if len(idx) > a.Rank() {
		return nil, env.Error(ErrRankMismatch, "take: index length exceeds rank")
	}
	out, terr := takeAxis(env, a, idx)
	if terr != nil {
		return nil, terr
	}
	if arr, ok := out.(*Array); ok {
		return Normalize(arr, 1), nil
	}
	return out, nil
}

// takeAxis implements the axis-0 take-with-fill step, recursing into
// each resulting cell for the remaining indices.
func takeAxis(env Env, a *Array, idx []int) (Value, error) {
	if len(idx) == 0 {
		return a, nil
	}
	n := idx[0]
	absn := n
	if absn < 0 {
		absn = -absn
	}
	s0 := a.Len()
	cells := make([]Value, absn)
	for i := 0; i < absn; i++ {
		var srcIdx int
		var inRange bool
		if n >= 0 {
			srcIdx = i
			inRange = i < s0
		} else {
			srcIdx = s0 - absn + i
			inRange = srcIdx >= 0 && srcIdx < s0
		}
		var cellVal Value
		if inRange {
			cellVal = a.MajorCell(srcIdx)
		} else {
			fv, ferr := fillForArray(env, a)
			if ferr != nil {
				return nil, ferr
			}
			cellVal = fv
		}
		if len(idx) > 1 {
			cellArr, caerr := CoerceArray(cellVal)
			if caerr != nil {
				return nil, env.Error(ErrTypeError, caerr.Error())
			}
			recursed, rerr := takeAxis(env, cellArr, idx[1:])
			if rerr != nil {
				return nil, rerr
			}
			if recArr, ok := recursed.(*Array); ok {
				cellVal = Normalize(recArr, 1)
			} else {
				cellVal = recursed
			}
		}
		cells[i] = cellVal
	}
	// Shape is rank-1 here; Normalize (called by every caller) extends
	// it by the cells' own tail shape once.
	return &Array{Shape: []int{absn}, Storage: StorageValues, Vals: cells}, nil
}

// Drop implements §4.4 drop(I, A): converts each axis index to an
// equivalent take index against that axis's own extent, then delegates.
func Drop(env Env, idxArg, v Value) (Value, error) {
	idx, err := AsIndices(env, idxArg)
	if err != nil {
		return nil, err
	}
	a, cerr := CoerceArray(v)
	if cerr != nil {
		return nil, env.Error(ErrTypeError, cerr.Error())
	}
	if len(idx) > a.Rank() {
		return nil, env.Error(ErrRankMismatch, "drop: index length exceeds rank")
	}
	converted := make([]int, len(idx))
	for j, ij := range idx {
		sj := a.Shape[j]
		if ij >= 0 {
			converted[j] = min(0, ij-sj)
		} else {
			converted[j] = max(0, sj+ij)
		}
	}
	out, terr := takeAxis(env, a, converted)
	if terr != nil {
		return nil, terr
	}
	if arr, ok := out.(*Array); ok {
		return Normalize(arr, 1), nil
	}
	return out, nil
}
