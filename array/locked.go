package array

import "sync"

// Locked guards an Array with a sync.RWMutex for use from several
// goroutines. Single-element operations lock for their own duration; use
// Update or View to run a sequence of operations atomically.
//
//	safe := array.NewLocked(arr)
//	_ = safe.Push(4)
//	err := safe.Update(func(a *array.Array[int]) error {
//	    v, err := a.Pop()
//	    if err != nil {
//	        return err
//	    }
//	    return a.Unshift(v)
//	})
type Locked[T any] struct {
	mutex    sync.RWMutex
	internal *Array[T]
}

// NewLocked wraps arr. The caller must stop using arr directly.
func NewLocked[T any](arr *Array[T]) *Locked[T] {
	if arr == nil {
		return nil
	}

	return &Locked[T]{internal: arr}
}

func (l *Locked[T]) Push(v T) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return l.internal.Push(v)
}

func (l *Locked[T]) Pop() (T, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return l.internal.Pop()
}

func (l *Locked[T]) Set(v T, index int) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return l.internal.Set(v, index)
}

func (l *Locked[T]) Get(index int) (T, error) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.internal.Get(index)
}

func (l *Locked[T]) Len() int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.internal.Len()
}

// Snapshot returns an independent copy taken under the read lock.
func (l *Locked[T]) Snapshot() *Array[T] {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.internal.Copy()
}

// Update runs fn with exclusive access to the array.
func (l *Locked[T]) Update(fn func(arr *Array[T]) error) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return fn(l.internal)
}

// View runs fn with shared access. fn must not modify the array.
func (l *Locked[T]) View(fn func(arr *Array[T]) error) error {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return fn(l.internal)
}
