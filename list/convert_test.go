package list

import (
	"errors"
	"math"
	"testing"

	"github.com/emirpasic/gods/containers"
)

func TestWith(t *testing.T) {
	l := New(1, 2, 3)

	w, err := l.With(-1, 9)
	if err != nil {
		t.Fatal(err)
	}
	w.checkInvariants()
	assertList(t, w, 1, 2, 9)
	assertList(t, l, 1, 2, 3)

	w, err = l.With(0, 7)
	if err != nil {
		t.Fatal(err)
	}
	assertList(t, w, 7, 2, 3)
}

func TestWithOutOfRange(t *testing.T) {
	l := New(1, 2)

	for _, index := range []int{5, 2, -3} {
		w, err := l.With(index, 9)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("With(%d): got error %v want %v", index, err, ErrOutOfRange)
		}
		if w != nil {
			t.Errorf("With(%d): returned a list along with the error", index)
		}
	}
	assertList(t, l, 1, 2)

	if _, err := new(List[int]).With(0, 1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("With on an empty list: got error %v want %v", err, ErrOutOfRange)
	}
}

func TestClone(t *testing.T) {
	type object struct{ n int }
	a, b := &object{1}, &object{2}

	l := New(a, b)
	c := l.Clone()
	c.checkInvariants()
	assertList(t, c, a, b)

	c.Push(&object{3})
	assertList(t, l, a, b)

	// Elements are copied shallowly.
	first, _ := c.At(0)
	first.n = 10
	if a.n != 10 {
		t.Error("clone did not share element references with the original list")
	}
}

func TestSlice(t *testing.T) {
	l := New(1, 2, 3, 4, 5)

	tests := []struct {
		start, end int
		want       []int
	}{
		{start: 0, end: Rest, want: []int{1, 2, 3, 4, 5}},
		{start: 1, end: 3, want: []int{2, 3}},
		{start: -2, end: Rest, want: []int{4, 5}},
		{start: 1, end: -1, want: []int{2, 3, 4}},
		{start: -100, end: 2, want: []int{1, 2}},
		{start: 3, end: 1, want: []int{}},
		{start: 5, end: Rest, want: []int{}},
	}

	for _, test := range tests {
		s := l.Slice(test.start, test.end)
		s.checkInvariants()
		assertList(t, s, test.want...)
	}
	assertList(t, l, 1, 2, 3, 4, 5)
}

func TestCopyWithin(t *testing.T) {
	tests := []struct {
		target, start, end int
		want               []int
	}{
		{target: 0, start: 3, end: Rest, want: []int{4, 5, 3, 4, 5}},
		{target: 0, start: 2, end: 4, want: []int{3, 4, 3, 4, 5}},
		{target: -2, start: 0, end: 2, want: []int{1, 2, 3, 1, 2}},
		{target: 1, start: 0, end: Rest, want: []int{1, 1, 2, 3, 4}},
		{target: 0, start: 4, end: 2, want: []int{1, 2, 3, 4, 5}},
	}

	for _, test := range tests {
		l := New(1, 2, 3, 4, 5)
		if r := l.CopyWithin(test.target, test.start, test.end); r != l {
			t.Error("copy within did not return the list")
		}
		l.checkInvariants()
		assertList(t, l, test.want...)
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		list *List[any]
		sep  string
		want string
	}{
		{list: New[any](1, 2, 3), sep: ",", want: "1,2,3"},
		{list: New[any]("a", "b"), sep: " - ", want: "a - b"},
		{list: New[any](nil, 1.5, true), sep: ",", want: ",1.5,true"},
		{list: New[any](New(1, 2), 3), sep: ";", want: "1,2;3"},
		{list: New[any](), sep: ",", want: ""},
	}

	for _, test := range tests {
		if s := test.list.Join(test.sep); s != test.want {
			t.Errorf("wrong joined string: got=%q want=%q", s, test.want)
		}
	}

	if s := New(1, 2, 3).String(); s != "1,2,3" {
		t.Errorf("wrong string: got=%q want=%q", s, "1,2,3")
	}
}

func TestIterators(t *testing.T) {
	l := New("a", "b", "c")

	var keys []int
	for i := range l.Keys() {
		keys = append(keys, i)
	}
	if !equalSlices(keys, []int{0, 1, 2}) {
		t.Errorf("wrong keys: %v", keys)
	}

	var entries []string
	for i, v := range l.Entries() {
		entries = append(entries, string(rune('0'+i))+v)
	}
	if !equalSlices(entries, []string{"0a", "1b", "2c"}) {
		t.Errorf("wrong entries: %v", entries)
	}

	var values []string
	for v := range l.All() {
		values = append(values, v)
		if v == "b" {
			break
		}
	}
	if !equalSlices(values, []string{"a", "b"}) {
		t.Errorf("wrong values: %v", values)
	}

	for range new(List[int]).Entries() {
		t.Error("iterating an empty list produced an entry")
	}
}

func TestKeysSnapshotLength(t *testing.T) {
	l := New(1, 2)
	keys := l.Keys()
	l.Push(3)

	n := 0
	for range keys {
		n++
	}
	if n != 2 {
		t.Errorf("keys iterator did not capture the length: got=%d want=2", n)
	}
}

func TestContainer(t *testing.T) {
	var c containers.Container = New(1.5, math.Inf(1))

	if c.Empty() {
		t.Error("non-empty list reported as empty")
	}
	if n := c.Size(); n != 2 {
		t.Errorf("wrong size: got=%d want=2", n)
	}
	if v := c.Values(); len(v) != 2 || v[0] != 1.5 {
		t.Errorf("wrong values: %v", v)
	}
	if s := c.String(); s != "1.5,Infinity" {
		t.Errorf("wrong string: got=%q", s)
	}

	c.Clear()
	if !c.Empty() || c.Size() != 0 {
		t.Error("cleared list is not empty")
	}
}
