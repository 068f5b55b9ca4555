package list

import "github.com/segmentio/arraylist/compare"

// Includes returns true if the list contains value.
//
// Values are matched with compare.SameValue, which means that a NaN value is
// found in a list holding NaN.
func (l *List[T]) Includes(value T) bool {
	return l.IndexOfFrom(value, 0) >= 0
}

// IncludesFrom is like Includes but starts searching at index from.
func (l *List[T]) IncludesFrom(value T, from int) bool {
	return l.IndexOfFrom(value, from) >= 0
}

// IndexOf returns the index of the first occurrence of value in the list, or
// -1 if the list does not contain value.
func (l *List[T]) IndexOf(value T) int {
	return l.IndexOfFrom(value, 0)
}

// IndexOfFrom returns the index of the first occurrence of value at or after
// index from, or -1 if none was found.
//
// A negative index counts back from the end of the list, and searches the
// whole list if it goes past the front. The search is vacuous if from is
// greater or equal to the length of the list.
//
// Complexity: O(n)
func (l *List[T]) IndexOfFrom(value T, from int) int {
	i := max(l.index(from), 0)
	if i >= l.size {
		return -1
	}
	for n := l.nodeAt(i); n != nil; n, i = n.next, i+1 {
		if compare.SameValue(n.value, value) {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last occurrence of value in the list,
// or -1 if the list does not contain value.
func (l *List[T]) LastIndexOf(value T) int {
	return l.LastIndexOfFrom(value, Rest)
}

// LastIndexOfFrom returns the index of the last occurrence of value at or
// before index from, or -1 if none was found.
//
// An index greater or equal to the length of the list searches the whole
// list. A negative index counts back from the end of the list; the search is
// vacuous if it goes past the front.
//
// Complexity: O(n)
func (l *List[T]) LastIndexOfFrom(value T, from int) int {
	if from >= l.size {
		from = l.size - 1
	}
	from = l.index(from)

	// Without backward links the chain is scanned forward up to from, keeping
	// the last match.
	last := -1
	for i, n := 0, l.head; n != nil && i <= from; i, n = i+1, n.next {
		if compare.SameValue(n.value, value) {
			last = i
		}
	}
	return last
}

// Find returns the first element for which the predicate returns true, and
// false if there were none.
func (l *List[T]) Find(predicate func(T, int, *List[T]) bool) (value T, found bool) {
	for i, n := 0, l.head; n != nil; i, n = i+1, n.next {
		if predicate(n.value, i, l) {
			return n.value, true
		}
	}
	return value, false
}

// FindIndex returns the index of the first element for which the predicate
// returns true, or -1.
func (l *List[T]) FindIndex(predicate func(T, int, *List[T]) bool) int {
	for i, n := 0, l.head; n != nil; i, n = i+1, n.next {
		if predicate(n.value, i, l) {
			return i
		}
	}
	return -1
}

// FindLast returns the last element for which the predicate returns true, and
// false if there were none.
//
// The predicate is called on every element, front to back.
func (l *List[T]) FindLast(predicate func(T, int, *List[T]) bool) (value T, found bool) {
	for i, n := 0, l.head; n != nil; i, n = i+1, n.next {
		if predicate(n.value, i, l) {
			value, found = n.value, true
		}
	}
	return value, found
}

// FindLastIndex returns the index of the last element for which the predicate
// returns true, or -1.
func (l *List[T]) FindLastIndex(predicate func(T, int, *List[T]) bool) int {
	last := -1
	for i, n := 0, l.head; n != nil; i, n = i+1, n.next {
		if predicate(n.value, i, l) {
			last = i
		}
	}
	return last
}
