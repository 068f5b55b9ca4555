package list

// ForEach calls f for each element of the list, front to back.
func (l *List[T]) ForEach(f func(T, int, *List[T])) {
	for i, n := 0, l.head; n != nil; i, n = i+1, n.next {
		f(n.value, i, l)
	}
}

// Filter returns a new list holding the elements for which the predicate
// returned true.
func (l *List[T]) Filter(predicate func(T, int, *List[T]) bool) *List[T] {
	result := new(List[T])
	for i, n := 0, l.head; n != nil; i, n = i+1, n.next {
		if predicate(n.value, i, l) {
			result.push(n.value)
		}
	}
	return result
}

// Every returns true if the predicate returns true for all elements of the
// list. It stops at the first element for which the predicate returns false.
func (l *List[T]) Every(predicate func(T, int, *List[T]) bool) bool {
	for i, n := 0, l.head; n != nil; i, n = i+1, n.next {
		if !predicate(n.value, i, l) {
			return false
		}
	}
	return true
}

// Some returns true if the predicate returns true for at least one element of
// the list. It stops at the first element for which the predicate returns
// true.
func (l *List[T]) Some(predicate func(T, int, *List[T]) bool) bool {
	for i, n := 0, l.head; n != nil; i, n = i+1, n.next {
		if predicate(n.value, i, l) {
			return true
		}
	}
	return false
}

// Map returns a new list holding the results of calling f on each element of
// l.
func Map[T, U any](l *List[T], f func(T, int, *List[T]) U) *List[U] {
	result := new(List[U])
	for i, n := 0, l.head; n != nil; i, n = i+1, n.next {
		result.push(f(n.value, i, l))
	}
	return result
}

// Reduce calls f for each element of l, front to back, passing the value
// returned by the previous call as first argument. The first call receives
// initial. Reduce returns the value returned by the last call, or initial if
// the list was empty.
func Reduce[T, U any](l *List[T], f func(U, T, int, *List[T]) U, initial U) U {
	acc := initial
	for i, n := 0, l.head; n != nil; i, n = i+1, n.next {
		acc = f(acc, n.value, i, l)
	}
	return acc
}

// ReduceRight is like Reduce but visits the elements back to front. The index
// passed to f is still the position of the element from the front of the
// list.
func ReduceRight[T, U any](l *List[T], f func(U, T, int, *List[T]) U, initial U) U {
	values := l.ToArray()
	acc := initial
	for i := len(values) - 1; i >= 0; i-- {
		acc = f(acc, values[i], i, l)
	}
	return acc
}
