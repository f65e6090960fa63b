package list

import (
	"errors"
	"iter"
)

var (
	ErrEmpty           = errors.New("list is empty")
	ErrInvalidPosition = errors.New("invalid position")
)

// Element represents a list element.
type Element[V any] struct {
	Value  V
	next   *Element[V]
	prev   *Element[V]
	list   *List[V]
	isRoot bool
}

// Next returns the following position. The last element is followed by the end
// marker, and the end marker by nil.
func (e *Element[V]) Next() *Element[V] {
	if e.isRoot {
		return nil
	}

	return e.next
}

// Prev returns the preceding position or nil if e is the first element.
// Prev of the end marker is the last element.
func (e *Element[V]) Prev() *Element[V] {
	if e.prev.isRoot {
		return nil
	}

	return e.prev
}

// IsEnd reports whether e is the end marker of its list.
func (e *Element[V]) IsEnd() bool { return e.isRoot }

// List represents a doubly linked list.
type List[V any] struct {
	n    int
	root Element[V]
}

// New returns a new doubly linked list.
func New[V any]() *List[V] {
	l := new(List[V])

	l.root.isRoot = true
	l.root.list = l
	l.root.next = &l.root
	l.root.prev = &l.root

	return l
}

func (l *List[V]) insert(e, at *Element[V]) *Element[V] {
	e.list = l
	e.prev = at
	e.next = at.next
	e.prev.next = e
	e.next.prev = e
	l.n++

	return e
}

func (l *List[V]) unlink(e *Element[V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = nil
	e.next = nil
	e.list = nil

	l.n--
}

// Back returns the last element of list or nil if the list is empty.
func (l *List[V]) Back() *Element[V] {
	if l.root.prev == &l.root {
		return nil
	}

	return l.root.prev
}

// Front returns the first element of list or nil if the list is empty.
func (l *List[V]) Front() *Element[V] {
	if l.root.next == &l.root {
		return nil
	}

	return l.root.next
}

// Begin returns the first position, which is End for an empty list.
func (l *List[V]) Begin() *Element[V] { return l.root.next }

// End returns the end marker.
func (l *List[V]) End() *Element[V] { return &l.root }

// FrontValue returns the first value.
func (l *List[V]) FrontValue() (V, error) { //nolint:ireturn
	if l.n == 0 {
		var zero V
		return zero, ErrEmpty
	}

	return l.root.next.Value, nil
}

// BackValue returns the last value.
func (l *List[V]) BackValue() (V, error) { //nolint:ireturn
	if l.n == 0 {
		var zero V
		return zero, ErrEmpty
	}

	return l.root.prev.Value, nil
}

// Contains reports whether e is a position of l, the end marker included.
func (l *List[V]) Contains(e *Element[V]) bool {
	return e != nil && e.list == l
}

// Insert inserts v before at. Inserting before the end marker appends.
func (l *List[V]) Insert(at *Element[V], v V) (*Element[V], error) {
	if !l.Contains(at) {
		return nil, ErrInvalidPosition
	}

	return l.insert(&Element[V]{Value: v}, at.prev), nil
}

// Erase removes at and returns the position that followed it.
func (l *List[V]) Erase(at *Element[V]) (*Element[V], error) {
	if !l.Contains(at) || at.isRoot {
		return nil, ErrInvalidPosition
	}

	next := at.next
	l.unlink(at)

	return next, nil
}

// Len returns the number of elements of list.
func (l *List[V]) Len() int { return l.n }

// Empty reports whether the list has no elements.
func (l *List[V]) Empty() bool { return l.n == 0 }

// PushBack inserts v at the back.
func (l *List[V]) PushBack(v V) *Element[V] {
	return l.insert(&Element[V]{Value: v}, l.root.prev)
}

// PushFront inserts v at the front.
func (l *List[V]) PushFront(v V) *Element[V] {
	return l.insert(&Element[V]{Value: v}, &l.root)
}

// PopBack removes the last element. It is a no-op on an empty list.
func (l *List[V]) PopBack() (V, bool) { //nolint:ireturn
	e := l.Back()
	if e == nil {
		var zero V
		return zero, false
	}

	l.unlink(e)

	return e.Value, true
}

// PopFront removes the first element. It is a no-op on an empty list.
func (l *List[V]) PopFront() (V, bool) { //nolint:ireturn
	e := l.Front()
	if e == nil {
		var zero V
		return zero, false
	}

	l.unlink(e)

	return e.Value, true
}

// Clear removes every element.
func (l *List[V]) Clear() {
	for e := l.root.next; e != &l.root; {
		next := e.next
		e.prev, e.next, e.list = nil, nil, nil
		e = next
	}

	l.root.next = &l.root
	l.root.prev = &l.root
	l.n = 0
}

// Clone returns a copy of the list holding the same values in fresh elements.
func (l *List[V]) Clone() *List[V] {
	c := New[V]()

	for e := l.root.next; e != &l.root; e = e.next {
		c.PushBack(e.Value)
	}

	return c
}

// SplitAt moves e and every element after it, in order, into a new list.
func (l *List[V]) SplitAt(e *Element[V]) (*List[V], error) {
	if !l.Contains(e) {
		return nil, ErrInvalidPosition
	}

	tail := New[V]()
	if e.isRoot {
		return tail, nil
	}

	last := l.root.prev
	before := e.prev

	before.next = &l.root
	l.root.prev = before

	tail.root.next = e
	tail.root.prev = last
	e.prev = &tail.root
	last.next = &tail.root

	for x := e; x != &tail.root; x = x.next {
		x.list = tail
		tail.n++
	}

	l.n -= tail.n

	return tail, nil
}

// PushBackList moves every element of other, in order, to the back of l.
// other is left empty.
func (l *List[V]) PushBackList(other *List[V]) {
	if other == l || other.n == 0 {
		return
	}

	for x := other.root.next; x != &other.root; x = x.next {
		x.list = l
	}

	first, last := other.root.next, other.root.prev

	first.prev = l.root.prev
	l.root.prev.next = first
	last.next = &l.root
	l.root.prev = last

	l.n += other.n

	other.root.next = &other.root
	other.root.prev = &other.root
	other.n = 0
}

// All returns an iterator over the values from front to back.
func (l *List[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := l.root.next; e != &l.root; e = e.next {
			if !yield(e.Value) {
				return
			}
		}
	}
}
