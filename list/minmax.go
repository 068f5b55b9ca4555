package list

import "golang.org/x/exp/constraints"

// Min returns the smallest element of l, and false if the list was empty.
func Min[T constraints.Ordered](l *List[T]) (min T, found bool) {
	for n := l.head; n != nil; n = n.next {
		if !found || n.value < min {
			min, found = n.value, true
		}
	}
	return min, found
}

// Max returns the largest element of l, and false if the list was empty.
func Max[T constraints.Ordered](l *List[T]) (max T, found bool) {
	for n := l.head; n != nil; n = n.next {
		if !found || n.value > max {
			max, found = n.value, true
		}
	}
	return max, found
}

// MinFunc is like Min but orders elements with cmp. When several elements are
// minimal, the first one is returned.
func MinFunc[T any](l *List[T], cmp func(a, b T) int) (min T, found bool) {
	for n := l.head; n != nil; n = n.next {
		if !found || cmp(n.value, min) < 0 {
			min, found = n.value, true
		}
	}
	return min, found
}

// MaxFunc is like Max but orders elements with cmp. When several elements are
// maximal, the first one is returned.
func MaxFunc[T any](l *List[T], cmp func(a, b T) int) (max T, found bool) {
	for n := l.head; n != nil; n = n.next {
		if !found || cmp(n.value, max) > 0 {
			max, found = n.value, true
		}
	}
	return max, found
}
