package list

import (
	"errors"
	"slices"
	"testing"
)

func TestListPushFront(t *testing.T) {
	t.Parallel()

	l := New[string]()

	l.PushFront("a")
	assertList(t, []string{"a"}, l)

	l.PushFront("b")
	assertList(t, []string{"b", "a"}, l)

	l.PushFront("c")
	assertList(t, []string{"c", "b", "a"}, l)
}

func TestListPushBack(t *testing.T) {
	t.Parallel()

	l := New[string]()

	l.PushBack("a")
	assertList(t, []string{"a"}, l)

	l.PushBack("b")
	assertList(t, []string{"a", "b"}, l)

	l.PushBack("c")
	assertList(t, []string{"a", "b", "c"}, l)
}

func TestListPop(t *testing.T) {
	t.Parallel()

	l := New[string]()

	if _, ok := l.PopFront(); ok {
		t.Error("want no-op pop front on empty list")
	}

	if _, ok := l.PopBack(); ok {
		t.Error("want no-op pop back on empty list")
	}

	l.PushBack("a")
	l.PushBack("b")
	l.PushBack("c")

	if v, ok := l.PopFront(); !ok || v != "a" {
		t.Errorf("want a, got %v %v", v, ok)
	}

	assertList(t, []string{"b", "c"}, l)

	if v, ok := l.PopBack(); !ok || v != "c" {
		t.Errorf("want c, got %v %v", v, ok)
	}

	assertList(t, []string{"b"}, l)

	l.PopBack()
	assertList(t, nil, l)
}

func TestListErase(t *testing.T) {
	t.Parallel()

	l := New[string]()

	a := l.PushBack("a")
	b := l.PushBack("b")
	c := l.PushBack("c")
	d := l.PushBack("d")

	// erase el from the middle
	next, err := l.Erase(b)
	if err != nil || next != c {
		t.Errorf("want c after erasing b, got %v %v", next, err)
	}

	assertList(t, []string{"a", "c", "d"}, l)

	// erase the first el
	_, _ = l.Erase(a)
	assertList(t, []string{"c", "d"}, l)

	// erase the last el
	next, _ = l.Erase(d)
	if !next.IsEnd() {
		t.Errorf("want end after erasing the last element, got %v", next.Value)
	}

	assertList(t, []string{"c"}, l)

	// erase an already erased el
	if _, err := l.Erase(d); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("want ErrInvalidPosition, got %v", err)
	}

	// erase the end marker
	if _, err := l.Erase(l.End()); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("want ErrInvalidPosition, got %v", err)
	}

	_, _ = l.Erase(c)
	assertList(t, nil, l)
}

func TestListInsert(t *testing.T) {
	t.Parallel()

	l := New[string]()

	// insert at the end marker of an empty list
	c, err := l.Insert(l.End(), "c")
	if err != nil {
		t.Fatal(err)
	}

	assertList(t, []string{"c"}, l)

	// insert before first element
	_, _ = l.Insert(c, "a")
	assertList(t, []string{"a", "c"}, l)

	// insert before last element
	_, _ = l.Insert(c, "b")
	assertList(t, []string{"a", "b", "c"}, l)

	// insert at the end marker
	_, _ = l.Insert(l.End(), "d")
	assertList(t, []string{"a", "b", "c", "d"}, l)

	other := New[string]()
	if _, err := other.Insert(c, "x"); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("want ErrInvalidPosition, got %v", err)
	}

	assertList(t, nil, other)
}

func TestListFrontBackValue(t *testing.T) {
	t.Parallel()

	l := New[int]()

	if _, err := l.FrontValue(); !errors.Is(err, ErrEmpty) {
		t.Errorf("want ErrEmpty, got %v", err)
	}

	if _, err := l.BackValue(); !errors.Is(err, ErrEmpty) {
		t.Errorf("want ErrEmpty, got %v", err)
	}

	l.PushBack(1)
	l.PushBack(2)

	if v, _ := l.FrontValue(); v != 1 {
		t.Errorf("want front 1, got %v", v)
	}

	if v, _ := l.BackValue(); v != 2 {
		t.Errorf("want back 2, got %v", v)
	}
}

func TestListIteration(t *testing.T) {
	t.Parallel()

	l := New[int]()

	if l.Begin() != l.End() {
		t.Error("want begin == end on empty list")
	}

	if l.End().Prev() != nil {
		t.Error("want nil prev of end on empty list")
	}

	first := l.PushBack(1)
	last := l.PushBack(2)

	if first.Prev() != nil {
		t.Error("want nil prev of first element")
	}

	if l.End().Prev() != last {
		t.Error("want last element before end")
	}

	if last.Next() != l.End() {
		t.Error("want end after last element")
	}

	if l.End().Next() != nil {
		t.Error("want nil after end")
	}
}

func TestListClear(t *testing.T) {
	t.Parallel()

	l := New[int]()

	a := l.PushBack(1)
	l.PushBack(2)

	l.Clear()
	assertList(t, nil, l)

	if l.Contains(a) {
		t.Error("want cleared element to be detached")
	}

	l.PushBack(3)
	assertList(t, []int{3}, l)
}

func TestListClone(t *testing.T) {
	t.Parallel()

	l := New[int]()
	l.PushBack(1)
	l.PushBack(2)

	c := l.Clone()
	assertList(t, []int{1, 2}, c)

	c.Front().Value = 10
	c.PushBack(3)

	assertList(t, []int{1, 2}, l)
	assertList(t, []int{10, 2, 3}, c)

	if c.Contains(l.Front()) {
		t.Error("want clone to own fresh elements")
	}
}

func TestListSplitAt(t *testing.T) {
	t.Parallel()

	l := New[int]()
	for i := range 5 {
		l.PushBack(i)
	}

	at := l.Front().Next().Next()

	tail, err := l.SplitAt(at)
	if err != nil {
		t.Fatal(err)
	}

	assertList(t, []int{0, 1}, l)
	assertList(t, []int{2, 3, 4}, tail)

	if !tail.Contains(at) || l.Contains(at) {
		t.Error("want moved element to belong to the new list")
	}

	empty, _ := l.SplitAt(l.End())
	assertList(t, nil, empty)
	assertList(t, []int{0, 1}, l)

	all, _ := l.SplitAt(l.Front())
	assertList(t, nil, l)
	assertList(t, []int{0, 1}, all)
}

func TestListPushBackList(t *testing.T) {
	t.Parallel()

	l := New[int]()
	l.PushBack(1)

	other := New[int]()
	x := other.PushBack(2)
	other.PushBack(3)

	l.PushBackList(other)

	assertList(t, []int{1, 2, 3}, l)
	assertList(t, nil, other)

	if !l.Contains(x) {
		t.Error("want moved element to belong to the receiving list")
	}

	l.PushBackList(New[int]())
	assertList(t, []int{1, 2, 3}, l)

	empty := New[int]()
	empty.PushBackList(l)
	assertList(t, []int{1, 2, 3}, empty)
	assertList(t, nil, l)
}

func TestListAll(t *testing.T) {
	t.Parallel()

	l := New[int]()
	for i := range 4 {
		l.PushBack(i)
	}

	if got := slices.Collect(l.All()); !slices.Equal(got, []int{0, 1, 2, 3}) {
		t.Errorf("want [0 1 2 3], got %v", got)
	}

	var got []int

	for v := range l.All() {
		if v == 2 {
			break
		}

		got = append(got, v)
	}

	if !slices.Equal(got, []int{0, 1}) {
		t.Errorf("want [0 1], got %v", got)
	}
}

func assertList[V comparable](t *testing.T, expected []V, l *List[V]) {
	t.Helper()

	if l.Len() != len(expected) {
		t.Errorf("want len %d, got %d", len(expected), l.Len())
	}

	if len(expected) == 0 {
		if l.Front() != nil {
			t.Errorf("want nil front, got %v", l.Front())
		}

		if l.Back() != nil {
			t.Errorf("want nil back, got %v", l.Back())
		}

		return
	}

	if expected[0] != l.Front().Value {
		t.Errorf("want front %v, got %v", expected[0], l.Front().Value)
	}

	if expected[len(expected)-1] != l.Back().Value {
		t.Errorf("want back %v, got %v", expected[len(expected)-1], l.Back().Value)
	}

	el := l.Front()

	for i, v := range expected {
		if v != el.Value {
			t.Errorf("want %v at %d, got %v", v, i, el.Value)
		}

		el = el.Next()
	}

	if !el.IsEnd() {
		t.Errorf("want end after %d elements", len(expected))
	}

	el = l.Back()

	for i := len(expected) - 1; i >= 0; i-- {
		if expected[i] != el.Value {
			t.Errorf("want %v at %d, got %v", expected[i], i, el.Value)
		}

		el = el.Prev()
	}
}
