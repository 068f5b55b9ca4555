// Package list contains the implementation of a generic, singly-linked list
// which offers the same methods and index rules as a dynamic array.
//
// The List type stores its elements in a chain of nodes, each node owning the
// next one. The list tracks the first and last nodes of the chain and the
// number of elements, which gives constant time insertion at both ends and
// removal at the front. Every positional operation walks the chain from the
// front, and is therefore linear in the index it reaches.
//
// Indexes follow the rules of dynamic arrays: a negative index counts back
// from the end of the list, so -1 designates the last element. Accessors
// report indexes that fall outside of the list with a sentinel result (false
// or -1), while range operations like Slice or Splice clamp them to the
// bounds of the list.
//
// Lists can be constructed by simple declaration since their zero-value
// represents an empty list:
//
//	l := list.List[int]{}
//	l.Push(1, 2, 3)
//
//	for v := range l.All() {
//		...
//	}
//
// Lists are not safe to use concurrently from multiple goroutines, and the
// iterators they produce are invalidated by mutations of the list made after
// they were created.
package list

import (
	"errors"
	"math"
)

// Rest may be passed as count or end argument of range operations to extend
// the range through the end of the list.
const Rest = math.MaxInt

var (
	// ErrOutOfRange is returned when an index does not designate an element
	// of the list.
	ErrOutOfRange = errors.New("index out of range")
)

type node[T any] struct {
	value T
	next  *node[T]
}

// List values are sequences of elements of type T, supporting the operations
// of a dynamic array.
//
// The zero-value is a valid, empty list.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New constructs a list holding the items passed as arguments, in order.
func New[T any](items ...T) *List[T] {
	l := new(List[T])
	l.Push(items...)
	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int { return l.size }

// Front returns the first element of the list, and false if the list was
// empty.
func (l *List[T]) Front() (value T, found bool) {
	if n := l.head; n != nil {
		value, found = n.value, true
	}
	return value, found
}

// Back returns the last element of the list, and false if the list was empty.
func (l *List[T]) Back() (value T, found bool) {
	if n := l.tail; n != nil {
		value, found = n.value, true
	}
	return value, found
}

// At returns the element at the given index, and a boolean indicating whether
// the index designated an element of the list.
//
// Complexity: O(n)
func (l *List[T]) At(index int) (value T, found bool) {
	if i := l.index(index); i >= 0 && i < l.size {
		value, found = l.nodeAt(i).value, true
	}
	return value, found
}

// Push appends items to the end of the list and returns its new length.
//
// Complexity: O(k) for k items
func (l *List[T]) Push(items ...T) int {
	for _, item := range items {
		l.push(item)
	}
	return l.size
}

// Pop removes the last element of the list and returns it, or returns false if
// the list was empty.
//
// The list keeps no backward links, so Pop walks the chain to find the node
// which becomes the new tail.
//
// Complexity: O(n)
func (l *List[T]) Pop() (value T, found bool) {
	switch {
	case l.head == nil:
		return value, false
	case l.head == l.tail:
		value = l.head.value
		l.reset()
		return value, true
	}

	prev := l.head
	for prev.next != l.tail {
		prev = prev.next
	}

	value = l.tail.value
	prev.next = nil
	l.tail = prev
	l.size--
	return value, true
}

// Unshift inserts items at the front of the list, preserving their order, and
// returns the new length of the list.
//
// Complexity: O(k) for k items
func (l *List[T]) Unshift(items ...T) int {
	first, last := chain(items)
	if first == nil {
		return l.size
	}
	last.next = l.head
	l.head = first
	if l.tail == nil {
		l.tail = last
	}
	l.size += len(items)
	return l.size
}

// Shift removes the first element of the list and returns it, or returns false
// if the list was empty.
//
// Complexity: O(1)
func (l *List[T]) Shift() (value T, found bool) {
	n := l.head
	if n == nil {
		return value, false
	}
	l.head = n.next
	n.next = nil
	if l.head == nil {
		l.tail = nil
	}
	l.size--
	return n.value, true
}

// Delete removes the element at the given index, returning whether an element
// was removed.
//
// Complexity: O(n)
func (l *List[T]) Delete(index int) (deleted bool) {
	i := l.index(index)
	if i < 0 || i >= l.size {
		return false
	}
	if i == 0 {
		_, deleted = l.Shift()
		return deleted
	}

	prev := l.nodeAt(i - 1)
	n := prev.next
	prev.next = n.next
	n.next = nil
	if n == l.tail {
		l.tail = prev
	}
	l.size--
	return true
}

// Splice removes count elements starting at index start, inserts items in
// their place, and returns a new list holding the removed elements.
//
// A negative start counts back from the end of the list, and is clamped to
// the bounds of the list. The count is clamped to the number of elements
// available after start; passing Rest removes every element through the end
// of the list.
//
// Complexity: O(start + count + k) for k items
func (l *List[T]) Splice(start, count int, items ...T) *List[T] {
	start = l.clamp(start)
	count = max(0, min(count, l.size-start))
	removed := new(List[T])

	if count == 0 && len(items) == 0 {
		return removed
	}

	var prev *node[T]
	next := l.head
	if start > 0 {
		prev = l.nodeAt(start - 1)
		next = prev.next
	}

	for i := 0; i < count; i++ {
		removed.push(next.value)
		n := next
		next = next.next
		n.next = nil
	}

	// next is now the first node surviving after the removed run, or nil if
	// the run reached the end of the chain.
	first, last := chain(items)
	if first == nil {
		first = next
	} else {
		last.next = next
	}

	if prev == nil {
		l.head = first
	} else {
		prev.next = first
	}

	if next == nil {
		if last != nil {
			l.tail = last
		} else {
			l.tail = prev
		}
	}

	l.size += len(items) - count
	return removed
}

// ToSpliced is like Splice but operates on a copy of the list, which it
// returns. The receiver is not modified.
func (l *List[T]) ToSpliced(start, count int, items ...T) *List[T] {
	c := l.Clone()
	c.Splice(start, count, items...)
	return c
}

// Clear removes all elements from the list. The operation runs in constant
// time.
func (l *List[T]) Clear() {
	l.reset()
}

func (l *List[T]) push(value T) {
	n := &node[T]{value: value}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

func (l *List[T]) reset() {
	l.head = nil
	l.tail = nil
	l.size = 0
}

// index converts a possibly negative index to a position relative to the
// front of the list. The result may fall outside of [0, size).
func (l *List[T]) index(i int) int {
	if i < 0 {
		i += l.size
	}
	return i
}

// clamp normalizes i and constrains it to [0, size].
func (l *List[T]) clamp(i int) int {
	return max(0, min(l.index(i), l.size))
}

// nodeAt returns the node at position i, which must be in [0, size).
func (l *List[T]) nodeAt(i int) *node[T] {
	n := l.head
	for ; i > 0; i-- {
		n = n.next
	}
	return n
}

// chain links fresh nodes holding items, returning the first and last nodes,
// or nil if items was empty.
func chain[T any](items []T) (first, last *node[T]) {
	for _, item := range items {
		n := &node[T]{value: item}
		if last == nil {
			first = n
		} else {
			last.next = n
		}
		last = n
	}
	return first, last
}
