package array

// Get returns the populated element at index.
func (a *Array[T]) Get(index int) (T, error) {
	var zero T

	if index < 0 {
		return zero, a.indexError(ErrOutOfBounds, "get", index)
	}

	if index >= a.used {
		return zero, a.indexError(ErrUnusedAccess, "get", index)
	}

	return a.items[index], nil
}

// Slice returns a new array holding the elements from start to end,
// both inclusive. Its capacity is exactly end-start+1.
func (a *Array[T]) Slice(start, end int) (*Array[T], error) {
	if start < 0 {
		return nil, a.indexError(ErrOutOfBounds, "slice", start)
	}

	if end >= a.used || start > end {
		return nil, a.indexError(ErrOutOfBounds, "slice", end)
	}

	out := a.derive(end - start + 1)
	copy(out.items, a.items[start:end+1])
	out.used = len(out.items)

	return out, nil
}

// Copy returns an independent array with the same elements, capacity and
// configuration.
func (a *Array[T]) Copy() *Array[T] {
	out := a.derive(len(a.items))
	copy(out.items, a.items[:a.used])
	out.used = a.used

	return out
}

// derive makes an empty array with the same configuration and n slots. The
// size is bounded by an existing buffer, so the limit check is skipped.
func (a *Array[T]) derive(n int) *Array[T] {
	return &Array[T]{
		items: make([]T, n),
		cfg:   a.cfg,
	}
}

// Swap exchanges two populated elements. Like sort.Interface, it does no
// error reporting: an index outside [0, Len()) panics.
func (a *Array[T]) Swap(i, j int) {
	populated := a.items[:a.used]
	populated[i], populated[j] = populated[j], populated[i]
}
