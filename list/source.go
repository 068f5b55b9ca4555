package list

import (
	"iter"
	"unicode/utf8"
)

type sourceKind uint8

const (
	valueSource sourceKind = iota
	sliceSource
	listSource
)

// Source is a sequence of elements inserted in a list by Concat or FlatMap.
// A Source holds either a single value, a slice, or a list, and is built by
// calling Value, Values or Of.
type Source[T any] struct {
	kind   sourceKind
	value  T
	values []T
	list   *List[T]
}

// Value returns a Source made of the single value v.
func Value[T any](v T) Source[T] {
	return Source[T]{kind: valueSource, value: v}
}

// Values returns a Source made of the elements of values. The slice is
// retained by the Source but never modified.
func Values[T any](values ...T) Source[T] {
	return Source[T]{kind: sliceSource, values: values}
}

// Of returns a Source made of the elements of l. A nil list is empty.
func Of[T any](l *List[T]) Source[T] {
	return Source[T]{kind: listSource, list: l}
}

// pushTo copies the elements of s to the back of l.
func (s Source[T]) pushTo(l *List[T]) {
	switch s.kind {
	case valueSource:
		l.push(s.value)
	case sliceSource:
		l.Push(s.values...)
	case listSource:
		if s.list != nil {
			// Capture the length first so appending a list to itself
			// terminates.
			size := s.list.size
			for i, n := 0, s.list.head; i < size; i, n = i+1, n.next {
				l.push(n.value)
			}
		}
	}
}

// Nested is an element of a list which may itself be a sequence of nested
// elements. Nested values are built by calling Leaf, Branch or Sublist, and
// flattened by Flat.
type Nested[T any] struct {
	kind  sourceKind
	value T
	items []Nested[T]
	list  *List[Nested[T]]
}

// Leaf returns a Nested value holding v, which Flat never expands.
func Leaf[T any](v T) Nested[T] {
	return Nested[T]{kind: valueSource, value: v}
}

// Branch returns a Nested value holding a slice of nested items.
func Branch[T any](items ...Nested[T]) Nested[T] {
	return Nested[T]{kind: sliceSource, items: items}
}

// Sublist returns a Nested value holding a list of nested items.
func Sublist[T any](l *List[Nested[T]]) Nested[T] {
	return Nested[T]{kind: listSource, list: l}
}

// Value returns the value held by a leaf, and false if n was not a leaf.
func (n Nested[T]) Value() (value T, leaf bool) {
	if n.kind == valueSource {
		value, leaf = n.value, true
	}
	return value, leaf
}

// Concat returns a new list holding the elements of l followed by the
// elements of each source. The receiver is not modified.
func (l *List[T]) Concat(sources ...Source[T]) *List[T] {
	result := l.Clone()
	for _, s := range sources {
		s.pushTo(result)
	}
	return result
}

// FlatMap returns a new list holding the elements of the sources returned by
// calling f on each element of l, in order. Sources are expanded one level:
// a list of lists yields lists.
func FlatMap[T, U any](l *List[T], f func(T, int, *List[T]) Source[U]) *List[U] {
	result := new(List[U])
	for i, n := 0, l.head; n != nil; i, n = i+1, n.next {
		f(n.value, i, l).pushTo(result)
	}
	return result
}

// Flat returns a new list holding the elements of l where branches and
// sublists were replaced by their items, recursively, up to the given depth.
// Leaves, and nested sequences found below depth, are inserted as they are.
// A depth of zero or less copies l.
func Flat[T any](l *List[Nested[T]], depth int) *List[Nested[T]] {
	result := new(List[Nested[T]])

	var flatten func(Nested[T], int)
	flatten = func(item Nested[T], level int) {
		switch {
		case item.kind == sliceSource && level < depth:
			for _, sub := range item.items {
				flatten(sub, level+1)
			}
		case item.kind == listSource && level < depth:
			if item.list != nil {
				for n := item.list.head; n != nil; n = n.next {
					flatten(n.value, level+1)
				}
			}
		default:
			result.push(item)
		}
	}

	for n := l.head; n != nil; n = n.next {
		flatten(n.value, 0)
	}
	return result
}

// FromSlice constructs a list holding the elements of s.
func FromSlice[T any](s []T) *List[T] {
	return New(s...)
}

// From constructs a list holding the values produced by seq.
func From[T any](seq iter.Seq[T]) *List[T] {
	l := new(List[T])
	for v := range seq {
		l.push(v)
	}
	return l
}

// FromFunc constructs a list holding the results of calling f with each
// value produced by seq and its position in the sequence.
func FromFunc[T, U any](seq iter.Seq[T], f func(T, int) U) *List[U] {
	l := new(List[U])
	i := 0
	for v := range seq {
		l.push(f(v, i))
		i++
	}
	return l
}

// FromString constructs a list holding each character of s as a string of
// its own. Invalid UTF-8 bytes produce the replacement character.
func FromString(s string) *List[string] {
	l := new(List[string])
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		l.push(string(r))
		s = s[size:]
	}
	return l
}
