package array

// Push appends v, growing the array when it is full.
func (a *Array[T]) Push(v T) error {
	if err := a.ensure("push", a.used+1); err != nil {
		return err
	}

	a.items[a.used] = v
	a.used++

	return nil
}

// Unshift prepends v, shifting every populated element up by one.
func (a *Array[T]) Unshift(v T) error {
	if err := a.ensure("unshift", a.used+1); err != nil {
		return err
	}

	copy(a.items[1:a.used+1], a.items[:a.used])
	a.items[0] = v
	a.used++

	return nil
}

// Pop removes and returns the last populated element. The vacated slot is
// reset to the zero value.
func (a *Array[T]) Pop() (T, error) {
	var zero T

	if a.used == 0 {
		return zero, a.indexError(ErrEmptyPop, "pop", -1)
	}

	a.used--
	v := a.items[a.used]
	a.items[a.used] = zero

	return v, nil
}

// Set overwrites the populated element at index.
//
// An index outside the allocated capacity is ErrOutOfBounds; an allocated
// but unpopulated one is ErrUnusedAccess.
func (a *Array[T]) Set(v T, index int) error {
	if index < 0 || index >= len(a.items) {
		return a.indexError(ErrOutOfBounds, "set", index)
	}

	if index >= a.used {
		return a.indexError(ErrUnusedAccess, "set", index)
	}

	a.items[index] = v

	return nil
}

// Insert places v at index, shifting the elements at and after it up by
// one. Inserting at or past the used length extends the array to index+1;
// any skipped slots become populated zero values.
func (a *Array[T]) Insert(v T, index int) error {
	if index < 0 {
		return a.indexError(ErrOutOfBounds, "insert", index)
	}

	if index >= a.used {
		if err := a.ensure("insert", index+1); err != nil {
			return err
		}

		// slots [used, index) are already zero
		a.items[index] = v
		a.used = index + 1

		return nil
	}

	if err := a.ensure("insert", a.used+1); err != nil {
		return err
	}

	copy(a.items[index+1:a.used+1], a.items[index:a.used])
	a.items[index] = v
	a.used++

	return nil
}

// Delete removes the populated element at index, shifting the rest down.
func (a *Array[T]) Delete(index int) error {
	if index < 0 || index >= len(a.items) {
		return a.indexError(ErrOutOfBounds, "delete", index)
	}

	if index >= a.used {
		return a.indexError(ErrUnusedAccess, "delete", index)
	}

	copy(a.items[index:a.used-1], a.items[index+1:a.used])

	var zero T

	a.used--
	a.items[a.used] = zero

	return nil
}

// Concat appends the populated elements of other. other is not modified
// and may be a itself.
func (a *Array[T]) Concat(other *Array[T]) error {
	if other == nil {
		return nil
	}

	n := other.used
	if err := a.ensure("concat", a.used+n); err != nil {
		return err
	}

	// other.items is re-read after ensure in case other == a.
	copy(a.items[a.used:a.used+n], other.items[:n])
	a.used += n

	return nil
}

// ConcatValues appends values in order.
func (a *Array[T]) ConcatValues(values ...T) error {
	if err := a.ensure("concat", a.used+len(values)); err != nil {
		return err
	}

	copy(a.items[a.used:], values)
	a.used += len(values)

	return nil
}
