package list

import (
	"strconv"
	"testing"
)

func TestForEach(t *testing.T) {
	l := New("a", "b", "c")
	var indexes []int
	var values []string

	l.ForEach(func(v string, i int, self *List[string]) {
		if self != l {
			t.Error("callback did not receive the list")
		}
		indexes = append(indexes, i)
		values = append(values, v)
	})

	if !equalSlices(indexes, []int{0, 1, 2}) {
		t.Errorf("wrong indexes: %v", indexes)
	}
	if !equalSlices(values, []string{"a", "b", "c"}) {
		t.Errorf("wrong values: %v", values)
	}
}

func TestMap(t *testing.T) {
	l := New(1, 2, 3)
	m := Map(l, func(v, i int, _ *List[int]) string { return strconv.Itoa(v*10 + i) })
	m.checkInvariants()
	assertList(t, m, "10", "21", "32")
	assertList(t, l, 1, 2, 3)

	empty := Map(new(List[int]), func(v, _ int, _ *List[int]) int { return v })
	assertList(t, empty)
}

func TestFilter(t *testing.T) {
	l := New(1, 2, 3, 4, 5, 6)
	even := l.Filter(func(v, _ int, _ *List[int]) bool { return v%2 == 0 })
	even.checkInvariants()
	assertList(t, even, 2, 4, 6)

	none := l.Filter(func(int, int, *List[int]) bool { return false })
	assertList(t, none)
}

func TestReduce(t *testing.T) {
	l := New(1, 2, 3, 4)
	sum := Reduce(l, func(acc, v, _ int, _ *List[int]) int { return acc + v }, 0)
	if sum != 10 {
		t.Errorf("wrong sum: got=%d want=10", sum)
	}

	initial := Reduce(new(List[int]), func(acc, v, _ int, _ *List[int]) int { return acc + v }, 42)
	if initial != 42 {
		t.Errorf("reducing an empty list: got=%d want=42", initial)
	}
}

func TestReduceRight(t *testing.T) {
	l := New("a", "b", "c")
	var indexes []int

	s := ReduceRight(l, func(acc string, v string, i int, _ *List[string]) string {
		indexes = append(indexes, i)
		return acc + v
	}, "")

	if s != "cba" {
		t.Errorf("wrong accumulation order: got=%q want=%q", s, "cba")
	}
	if !equalSlices(indexes, []int{2, 1, 0}) {
		t.Errorf("wrong indexes passed to the callback: %v", indexes)
	}
}

func TestEveryAndSome(t *testing.T) {
	l := New(2, 4, 5, 6)
	calls := 0
	isEven := func(v, _ int, _ *List[int]) bool {
		calls++
		return v%2 == 0
	}

	if l.Every(isEven) {
		t.Error("every: got=true want=false")
	}
	if calls != 3 {
		t.Errorf("every did not stop at the first failing element: %d calls", calls)
	}

	calls = 0
	if !l.Some(isEven) {
		t.Error("some: got=false want=true")
	}
	if calls != 1 {
		t.Errorf("some did not stop at the first matching element: %d calls", calls)
	}

	empty := new(List[int])
	if !empty.Every(isEven) {
		t.Error("every on an empty list: got=false want=true")
	}
	if empty.Some(isEven) {
		t.Error("some on an empty list: got=true want=false")
	}
}
