// SPDX-License-Identifier: MIT
//
// File: array.go
// Role: Array[T] storage, growth policy and compaction.
// Policy:
//   - Growth doubles capacity starting from MinCapacity; no shrinking unless asked.
//   - Index errors are programmer errors and panic like native slices.

package dynarray

// MinCapacity is the capacity floor applied on the first growth.
const MinCapacity = 8

// Array is a growable sequence of T owned by a single holder.
// The zero value is an empty, ready-to-use Array.
type Array[T any] struct {
	data []T // len(data) == logical size; cap(data) == reserved capacity
}

// New returns an empty Array with room for capacity elements.
// A negative capacity is treated as zero.
// Complexity: O(capacity) allocation.
func New[T any](capacity int) *Array[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Array[T]{data: make([]T, 0, capacity)}
}

// FromSlice returns an Array holding a copy of s.
// Complexity: O(len(s)).
func FromSlice[T any](s []T) *Array[T] {
	data := make([]T, len(s))
	copy(data, s)

	return &Array[T]{data: data}
}

// Len reports the number of stored elements.
func (a *Array[T]) Len() int { return len(a.data) }

// Cap reports the reserved capacity.
func (a *Array[T]) Cap() int { return cap(a.data) }

// At returns the element at index i.
func (a *Array[T]) At(i int) T { return a.data[i] }

// Set overwrites the element at index i.
func (a *Array[T]) Set(i int, v T) { a.data[i] = v }

// Values returns the stored elements as a slice aliasing the Array.
// The slice is only valid until the next mutation and must not be modified.
func (a *Array[T]) Values() []T { return a.data }

// Push appends v, doubling capacity when full.
// Complexity: amortized O(1).
func (a *Array[T]) Push(v T) {
	a.reserve(len(a.data) + 1)
	a.data = append(a.data, v)
}

// PushMany appends vs in order with at most one reallocation.
// Complexity: amortized O(len(vs)).
func (a *Array[T]) PushMany(vs ...T) {
	if len(vs) == 0 {
		return
	}
	a.reserve(len(a.data) + len(vs))
	a.data = append(a.data, vs...)
}

// reserve grows the backing buffer to hold at least need elements.
// New capacity is the smallest MinCapacity·2^k that fits.
func (a *Array[T]) reserve(need int) {
	if need <= cap(a.data) {
		return
	}
	newCap := cap(a.data) * 2
	if newCap < MinCapacity {
		newCap = MinCapacity
	}
	for newCap < need {
		newCap *= 2
	}
	grown := make([]T, len(a.data), newCap)
	copy(grown, a.data)
	a.data = grown
}

// RemoveAt deletes the element at index i, shifting the tail left.
// Relative order of the remaining elements is preserved.
// Complexity: O(Len()-i).
func (a *Array[T]) RemoveAt(i int) {
	_ = a.data[i] // bounds check with native panic semantics
	copy(a.data[i:], a.data[i+1:])
	var zero T
	a.data[len(a.data)-1] = zero
	a.data = a.data[:len(a.data)-1]
}

// Retain keeps only the elements for which keep returns true, in order.
// It returns the number of removed elements.
// Complexity: O(Len()).
func (a *Array[T]) Retain(keep func(T) bool) int {
	return a.RetainIndex(func(i int) bool { return keep(a.data[i]) })
}

// RetainIndex is Retain driven by the original element index.
// keep is called exactly once per index in ascending order, before any
// element at or after that index has been moved, so it may consult sibling
// arrays that share the same indexing.
// Complexity: O(Len()).
func (a *Array[T]) RetainIndex(keep func(i int) bool) int {
	w := 0
	for r := 0; r < len(a.data); r++ {
		if !keep(r) {
			continue
		}
		a.data[w] = a.data[r]
		w++
	}
	removed := len(a.data) - w
	var zero T
	for i := w; i < len(a.data); i++ {
		a.data[i] = zero
	}
	a.data = a.data[:w]

	return removed
}

// Truncate drops every element at index n and beyond.
// n greater than Len() is a no-op.
func (a *Array[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= len(a.data) {
		return
	}
	var zero T
	for i := n; i < len(a.data); i++ {
		a.data[i] = zero
	}
	a.data = a.data[:n]
}

// ShrinkToFit releases reserved capacity beyond Len().
// Complexity: O(Len()) copy when capacity changes.
func (a *Array[T]) ShrinkToFit() {
	if cap(a.data) == len(a.data) {
		return
	}
	fit := make([]T, len(a.data))
	copy(fit, a.data)
	a.data = fit
}

// Reset removes all elements but keeps the reserved capacity.
func (a *Array[T]) Reset() { a.Truncate(0) }

// Clone returns a deep copy with capacity equal to the source length.
// Elements are copied by value.
func (a *Array[T]) Clone() *Array[T] {
	return FromSlice(a.data)
}
