package array

// Grade implements §4.9 grade(A): the stable sorting permutation of
// A's major cells under the Value total order.
func Grade(env Env, v Value) (Value, error) {
	a, cerr := CoerceArray(v)
	if cerr != nil {
		return nil, env.Error(ErrTypeError, cerr.Error())
	}
	if a.Rank() < 1 {
		return nil, env.Error(ErrRankMismatch, "grade: operand must have rank >= 1")
	}
	n := a.Len()
	perm, err := gradePerm(env, n, func(i int) Value { return a.MajorCell(i) })
	if err != nil {
		return nil, err
	}
	nums := make([]float64, n)
	for i, p := range perm {
		nums[i] = float64(p)
	}
	return &Array{Shape: []int{n}, Storage: StorageNumbers, Nums: nums}, nil
}

// Classify implements §4.9 classify(A): each major cell gets the
// ordinal of its first occurrence.
func Classify(env Env, v Value) (Value, error) {
	a, cerr := CoerceArray(v)
	if cerr != nil {
		return nil, env.Error(ErrTypeError, cerr.Error())
	}
	if a.Rank() < 1 {
		return nil, env.Error(ErrRankMismatch, "classify: operand must have rank >= 1")
	}
	n := a.Len()
	classes := make([]float64, n)
	var seenCells []Value
	for i := 0; i < n; i++ {
		cell := a.MajorCell(i)
		id := -1
		for sid, s := range seenCells {
			eq, err := valuesEqual(cell, s)
			if err != nil {
				return nil, env.Error(ErrTypeError, err.Error())
			}
			if eq {
				id = sid
				break
			}
		}
		if id == -1 {
			id = len(seenCells)
			seenCells = append(seenCells, cell)
		}
		classes[i] = float64(id)
	}
	return &Array{Shape: []int{n}, Storage: StorageNumbers, Nums: classes}, nil
}

// Member implements §4.9 member(A, B): a same-shape-as-A mask of
// whether each flat element of A occurs among B's major cells.
func Member(env Env, aVal, bVal Value) (Value, error) {
	a, aerr := CoerceArray(aVal)
	if aerr != nil {
		return nil, env.Error(ErrTypeError, aerr.Error())
	}
	b, berr := CoerceArray(bVal)
	if berr != nil {
		return nil, env.Error(ErrTypeError, berr.Error())
	}
	bCells := rowCells(b)
	flat := toValues(a)
	masks := make([]float64, len(flat))
	for i, cell := range flat {
		for _, bc := range bCells {
			eq, err := valuesEqual(cell, bc)
			if err != nil {
				return nil, env.Error(ErrTypeError, err.Error())
			}
			if eq {
				masks[i] = 1
				break
			}
		}
	}
	return &Array{Shape: append([]int{}, a.Shape...), Storage: StorageNumbers, Nums: masks}, nil
}
