package list

import (
	"fmt"
	"iter"
	"strings"

	"github.com/emirpasic/gods/containers"
	"github.com/segmentio/arraylist/compare"
)

var _ containers.Container = (*List[int])(nil)

// ToArray returns a slice holding the elements of the list, in order.
func (l *List[T]) ToArray() []T {
	values := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// Clone returns a copy of the list. Elements are copied by assignment, so
// elements holding references share them with the original list.
//
// Complexity: O(n)
func (l *List[T]) Clone() *List[T] {
	c := new(List[T])
	for n := l.head; n != nil; n = n.next {
		c.push(n.value)
	}
	return c
}

// With returns a copy of the list where the element at the given index was
// replaced by value. The receiver is not modified.
//
// A negative index counts back from the end of the list. The method returns
// an error wrapping ErrOutOfRange if the index does not designate an element
// of the list.
func (l *List[T]) With(index int, value T) (*List[T], error) {
	i := l.index(index)
	if i < 0 || i >= l.size {
		return nil, fmt.Errorf("replacing element %d of list of length %d: %w", index, l.size, ErrOutOfRange)
	}
	c := l.Clone()
	c.nodeAt(i).value = value
	return c, nil
}

// Slice returns a new list holding the elements from index start up to, but
// not including, index end. Negative indexes count back from the end of the
// list, and both indexes are clamped to the bounds of the list. Passing Rest
// as end selects every element through the end of the list.
func (l *List[T]) Slice(start, end int) *List[T] {
	start, end = l.clamp(start), l.clamp(end)
	result := new(List[T])
	if start >= end {
		return result
	}
	n := l.nodeAt(start)
	for i := start; i < end; i++ {
		result.push(n.value)
		n = n.next
	}
	return result
}

// CopyWithin copies the elements from index start up to index end over the
// elements starting at index target, and returns the list. The length of the
// list does not change. Indexes follow the same rules as Slice.
func (l *List[T]) CopyWithin(target, start, end int) *List[T] {
	to, from, end := l.clamp(target), l.clamp(start), l.clamp(end)
	count := min(end-from, l.size-to)
	if count <= 0 {
		return l
	}

	values := l.ToArray()
	copy(values[to:to+count], values[from:from+count])

	n := l.nodeAt(to)
	for _, v := range values[to : to+count] {
		n.value = v
		n = n.next
	}
	return l
}

// Join returns the string form of the elements of the list, separated by sep.
// Elements are converted with compare.ToString.
func (l *List[T]) Join(sep string) string {
	var b strings.Builder
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteString(sep)
		}
		b.WriteString(compare.ToString(n.value))
	}
	return b.String()
}

// String returns the elements of the list joined by commas.
func (l *List[T]) String() string { return l.Join(",") }

// All returns an iterator over the elements of the list, front to back.
//
// The iterator must not be used after the list was modified.
func (l *List[T]) All() iter.Seq[T] {
	size, head := l.size, l.head
	return func(yield func(T) bool) {
		for i, n := 0, head; i < size && n != nil; i, n = i+1, n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Keys returns an iterator over the indexes of the list.
func (l *List[T]) Keys() iter.Seq[int] {
	size := l.size
	return func(yield func(int) bool) {
		for i := 0; i < size; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Entries returns an iterator over the indexes and elements of the list.
//
// The iterator must not be used after the list was modified.
func (l *List[T]) Entries() iter.Seq2[int, T] {
	size, head := l.size, l.head
	return func(yield func(int, T) bool) {
		for i, n := 0, head; i < size && n != nil; i, n = i+1, n.next {
			if !yield(i, n.value) {
				return
			}
		}
	}
}

// Empty returns true if the list has no elements.
func (l *List[T]) Empty() bool { return l.size == 0 }

// Size returns the number of elements in the list.
func (l *List[T]) Size() int { return l.size }

// Values returns the elements of the list as a slice of empty interfaces.
// Prefer ToArray, which retains the element type.
func (l *List[T]) Values() []interface{} {
	values := make([]interface{}, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}
