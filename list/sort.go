package list

import (
	"math/rand/v2"

	"github.com/segmentio/arraylist/compare"
	"golang.org/x/exp/slices"
)

// Sort sorts the elements of the list in place using cmp, and returns the
// list.
//
// If cmp is nil, elements are ordered by their string form (see
// compare.Strings), which means that 10 sorts before 9. Use NumericSort or
// pass compare.Function to order numbers by value.
//
// Sort copies the elements out of the chain, sorts them, then rebuilds the
// chain with new nodes. Elements comparing equal keep their relative order.
//
// Complexity: O(n*log(n))
func (l *List[T]) Sort(cmp func(a, b T) int) *List[T] {
	if l.size <= 1 {
		return l
	}
	if cmp == nil {
		cmp = compare.Strings[T]
	}
	return l.rebuild(func(values []T) { slices.SortStableFunc(values, cmp) })
}

// ToSorted returns a sorted copy of the list. The receiver is not modified.
func (l *List[T]) ToSorted(cmp func(a, b T) int) *List[T] {
	return l.Clone().Sort(cmp)
}

// NumericSort sorts the elements of the list in place after converting them to
// numbers, and returns the list. Strings holding numbers are ordered by value,
// and elements that do not convert to a number are moved to the back of the
// list.
func (l *List[T]) NumericSort() *List[T] {
	return l.Sort(compare.Numeric[T])
}

// RandomSort shuffles the elements of the list in place, and returns the list.
//
// The permutation is drawn uniformly from the top-level generator of
// math/rand/v2, which is not suitable for security-sensitive work.
func (l *List[T]) RandomSort() *List[T] {
	if l.size <= 1 {
		return l
	}
	return l.rebuild(func(values []T) {
		rand.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
	})
}

// RandomSortWith is like RandomSort but draws the permutation from r.
func (l *List[T]) RandomSortWith(r *rand.Rand) *List[T] {
	if l.size <= 1 {
		return l
	}
	return l.rebuild(func(values []T) {
		r.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
	})
}

// Reverse reverses the order of elements in the list, and returns the list.
//
// Unlike the sorting methods, Reverse relinks the existing nodes.
//
// Complexity: O(n)
func (l *List[T]) Reverse() *List[T] {
	if l.size <= 1 {
		return l
	}

	var prev *node[T]
	n := l.head
	l.tail = l.head

	for n != nil {
		next := n.next
		n.next = prev
		prev, n = n, next
	}

	l.head = prev
	return l
}

// ToReversed returns a reversed copy of the list. The receiver is not
// modified.
func (l *List[T]) ToReversed() *List[T] {
	return l.Clone().Reverse()
}

// rebuild discards the chain and replaces it with the elements it held, in the
// order left by transform.
func (l *List[T]) rebuild(transform func([]T)) *List[T] {
	values := l.ToArray()
	transform(values)
	l.reset()
	l.Push(values...)
	return l
}
