package array

// Pick implements §4.5 pick(I, A): descends one axis per index,
// returning a scalar when |I| = rank(A) or the residual array
// shape(A)[|I|:] otherwise.
func Pick(env Env, idxArg, v Value) (Value, error) {
	idx, err := AsIndices(env, idxArg)
	if err != nil {
		return nil, err
	}
	a, cerr := CoerceArray(v)
	if cerr != nil {
		return nil, env.Error(ErrTypeError, cerr.Error())
	}
	if len(idx) > a.Rank() {
		return nil, env.Error(ErrRankMismatch, "pick: index length exceeds rank")
	}
	cur := a
	var result Value = a
	for i, ij := range idx {
		s := cur.Len()
		norm := ij
		if norm < 0 {
			norm += s
		}
		if norm < 0 || norm >= s {
			return nil, env.Error(ErrIndexOutOfRange, "pick: index out of range")
		}
		cellVal := cur.MajorCell(norm)
		result = cellVal
		if i < len(idx)-1 {
			nextArr, naerr := CoerceArray(cellVal)
			if naerr != nil {
				return nil, env.Error(ErrTypeError, naerr.Error())
			}
			cur = nextArr
		}
	}
	return result, nil
}

// Select implements §4.5 select(I, A): gathers the axis-0 cell at
// each index in I into a new length-|I| array.
func Select(env Env, idxArg, v Value) (Value, error) {
	idx, err := AsIndices(env, idxArg)
	if err != nil {
		return nil, err
	}
	a, cerr := CoerceArray(v)
	if cerr != nil {
		return nil, env.Error(ErrTypeError, cerr.Error())
	}
	if a.Rank() < 1 {
		return nil, env.Error(ErrRankMismatch, "select: operand must have rank >= 1")
	}
	s0 := a.Len()
	cells := make([]Value, len(idx))
	for i, ij := range idx {
		norm := ij
		if norm < 0 {
			norm += s0
		}
		if norm < 0 || norm >= s0 {
			return nil, env.Error(ErrIndexOutOfRange, "select: index out of range")
		}
		cells[i] = a.MajorCell(norm)
	}
	out := &Array{Shape: []int{len(idx)}, Storage: StorageValues, Vals: cells}
	return Normalize(out, 1), nil
}
