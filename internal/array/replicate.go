package array

import "math"

// Replicate implements §4.7 replicate(F, A): F is a scalar repeat
// count applied uniformly, or a per-cell repeat-count vector of
// length s0(A).
func Replicate(env Env, fArg, v Value) (Value, error) {
	a, cerr := CoerceArray(v)
	if cerr != nil {
		return nil, env.Error(ErrTypeError, cerr.Error())
	}
	s0 := a.Len()

	var counts []int
	switch f := fArg.(type) {
	case Number:
		n, err := replicateScalarCount(env, float64(f))
		if err != nil {
			return nil, err
		}
		counts = uniformCounts(s0, n)
	case *Array:
		switch f.Rank() {
		case 0:
			if f.Storage != StorageNumbers {
				return nil, env.Error(ErrTypeError, "replicate: scalar filter must be numeric")
			}
			n, err := replicateScalarCount(env, f.Nums[0])
			if err != nil {
				return nil, err
			}
			counts = uniformCounts(s0, n)
		case 1:
			if f.Storage != StorageNumbers {
				return nil, env.Error(ErrTypeError, "replicate: filter array must be numeric")
			}
			if f.Len() != s0 {
				return nil, env.Error(ErrLengthMismatch, "replicate: filter length must match target length")
			}
			decoded, derr := AsPositives(env, f)
			if derr != nil {
				return nil, env.Error(ErrTypeError, "replicate: filter values must be non-negative integers")
			}
			counts = decoded
		default:
			return nil, env.Error(ErrTypeError, "replicate: filter array must be rank 0 or rank 1")
		}
	default:
		return nil, env.Error(ErrTypeError, "replicate: filter must be a number or numeric array")
	}

	var cells []Value
	for i, c := range counts {
		cell := a.MajorCell(i)
		for k := 0; k < c; k++ {
			cells = append(cells, cell)
		}
	}
	out := &Array{Shape: []int{len(cells)}, Storage: StorageValues, Vals: cells}
	return Normalize(out, 1), nil
}

func replicateScalarCount(env Env, f float64) (int, error) {
	if !isNat(f) {
		return 0, env.Error(ErrTypeError, "replicate: scalar filter must be a non-negative integer")
	}
	return int(math.Round(f)), nil
}

func uniformCounts(n, c int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = c
	}
	return out
}
