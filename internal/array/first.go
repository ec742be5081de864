package array

// First returns the first major cell of v, per original_source's
// first/last accessors (supplementing spec.md, which names the
// EmptyHasNoFirst error kind without spelling out the accessor).
func First(env Env, v Value) (Value, error) {
	a, cerr := CoerceArray(v)
	if cerr != nil {
		return nil, env.Error(ErrTypeError, cerr.Error())
	}
	if a.Len() == 0 {
		return nil, env.Error(ErrEmptyHasNoFirst, "first: array is empty")
	}
	return a.MajorCell(0), nil
}

// Last returns the final major cell of v.
func Last(env Env, v Value) (Value, error) {
	a, cerr := CoerceArray(v)
	if cerr != nil {
		return nil, env.Error(ErrTypeError, cerr.Error())
	}
	if a.Len() == 0 {
		return nil, env.Error(ErrEmptyHasNoFirst, "last: array is empty")
	}
	return a.MajorCell(a.Len() - 1), nil
}
