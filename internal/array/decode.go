package array

import "math"

// decodeNumericList extracts the flat []float64 a scalar-or-rank-1
// numeric Value represents. An empty rank-1 array decodes to the empty
// list whatever its storage; any other shape or storage fails.
func decodeNumericList(env Env, v Value, caller string) ([]float64, error) {
	switch x := v.(type) {
	case Number:
		return []float64{float64(x)}, nil
	case *Array:
		if x.Rank() == 0 {
			if x.Storage != StorageNumbers {
				return nil, env.Error(ErrShapeDecode, caller+": expected a number")
			}
			return []float64{x.Nums[0]}, nil
		}
		if x.Rank() != 1 {
			return nil, env.Error(ErrShapeDecode, caller+": expected a scalar or rank-1 numeric array")
		}
		if x.Shape[0] == 0 {
			return []float64{}, nil
		}
		if x.Storage != StorageNumbers {
			return nil, env.Error(ErrShapeDecode, caller+": expected a numeric array")
		}
		return x.Nums, nil
	default:
		return nil, env.Error(ErrShapeDecode, caller+": expected a number or numeric array")
	}
}

// AsShape decodes v per §4.1: a sequence of strictly positive integers.
func AsShape(env Env, v Value) ([]int, error) {
	floats, err := decodeNumericList(env, v, "as_shape")
	if err != nil {
		return nil, err
	}
	out := make([]int, len(floats))
	for i, f := range floats {
		if f <= eps || !isInt(f) {
			return nil, env.Error(ErrShapeDecode, "as_shape: extents must be strictly positive integers")
		}
		out[i] = int(math.Round(f))
	}
	return out, nil
}

// AsIndices decodes v per §4.1: a sequence of signed integers.
func AsIndices(env Env, v Value) ([]int, error) {
	floats, err := decodeNumericList(env, v, "as_indices")
	if err != nil {
		return nil, err
	}
	out := make([]int, len(floats))
	for i, f := range floats {
		if !isInt(f) {
			return nil, env.Error(ErrShapeDecode, "as_indices: values must be integers")
		}
		out[i] = int(math.Round(f))
	}
	return out, nil
}

// AsPositives decodes v per §4.1: a sequence of non-negative integers.
func AsPositives(env Env, v Value) ([]int, error) {
	idx, err := AsIndices(env, v)
	if err != nil {
		return nil, err
	}
	for _, i := range idx {
		if i < 0 {
			return nil, env.Error(ErrShapeDecode, "as_positives: values must be non-negative")
		}
	}
	return idx, nil
}
