package array

// mergeSortPerm returns a stable sorted permutation of 0..n-1 under
// less, via top-down merge-sort — the reference algorithm of §4.10.
func mergeSortPerm(n int, less func(i, j int) bool) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	if n < 2 {
		return perm
	}
	buf := make([]int, n)
	mergeSortRec(perm, buf, 0, n, less)
	return perm
}

func mergeSortRec(perm, buf []int, lo, hi int, less func(i, j int) bool) {
	if hi-lo < 2 {
		return
	}
	mid := (lo + hi) / 2
	mergeSortRec(perm, buf, lo, mid, less)
	mergeSortRec(perm, buf, mid, hi, less)
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if !less(perm[j], perm[i]) {
			buf[k] = perm[i]
			i++
		} else {
			buf[k] = perm[j]
			j++
		}
		k++
	}
	for i < mid {
		buf[k] = perm[i]
		i++
		k++
	}
	for j < hi {
		buf[k] = perm[j]
		j++
		k++
	}
	copy(perm[lo:hi], buf[lo:hi])
}

// gradePerm sorts n chunks (indexed 0..n-1) by the Value total order of
// cellAt, surfacing the first comparison error (only possible cause:
// an unorderable NaN or function value) rather than continuing.
func gradePerm(env Env, n int, cellAt func(i int) Value) ([]int, error) {
	var cmpErr error
	less := func(i, j int) bool {
		if cmpErr != nil {
			return false
		}
		c, err := compareValues(cellAt(i), cellAt(j))
		if err != nil {
			cmpErr = err
			return false
		}
		return c < 0
	}
	perm := mergeSortPerm(n, less)
	if cmpErr != nil {
		return nil, env.Error(ErrTypeError, cmpErr.Error())
	}
	return perm, nil
}

// SortMajorCells implements §4.10's sort_array as applied to an
// array's own major cells: returns a new array with cells reordered
// into ascending Value order, stably.
func SortMajorCells(env Env, v Value) (Value, error) {
	a, cerr := CoerceArray(v)
	if cerr != nil {
		return nil, env.Error(ErrTypeError, cerr.Error())
	}
	if a.Rank() < 1 {
		return nil, env.Error(ErrRankMismatch, "sort: operand must have rank >= 1")
	}
	n := a.Len()
	perm, err := gradePerm(env, n, func(i int) Value { return a.MajorCell(i) })
	if err != nil {
		return nil, err
	}
	cells := make([]Value, n)
	for i, p := range perm {
		cells[i] = a.MajorCell(p)
	}
	out := &Array{Shape: []int{n}, Storage: StorageValues, Vals: cells}
	return Normalize(out, 1), nil
}
