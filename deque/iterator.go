package deque

import (
	"fmt"

	"github.com/icycozy/Deque/internal/list"
)

// Iterator is a position in a Deque. The end position of a non-empty deque is
// the end marker of its last block; an empty deque has a single position with
// no block.
//
// Any structural change to the deque invalidates its iterators, except the
// ones returned by Insert and Erase.
type Iterator[T any] struct {
	item  *list.Element[T]
	block *list.Element[block[T]]
	d     *Deque[T]
}

// check reports whether it is a current position of d.
func (d *Deque[T]) check(it Iterator[T]) error {
	if it.d == nil {
		return fmt.Errorf("detached: %w", ErrInvalidIterator)
	}

	if it.d != d {
		return fmt.Errorf("belongs to another deque: %w", ErrInvalidIterator)
	}

	if d.blocks.Empty() {
		if it.block != nil || it.item != nil {
			return fmt.Errorf("stale position in empty deque: %w", ErrInvalidIterator)
		}

		return nil
	}

	if !d.blocks.Contains(it.block) || it.block.IsEnd() {
		return fmt.Errorf("stale block: %w", ErrInvalidIterator)
	}

	if !it.block.Value.items.Contains(it.item) {
		return fmt.Errorf("stale element: %w", ErrInvalidIterator)
	}

	if it.item.IsEnd() && it.block != d.blocks.Back() {
		return fmt.Errorf("end of inner block: %w", ErrInvalidIterator)
	}

	return nil
}

func (it Iterator[T]) valid() error {
	if it.d == nil {
		return fmt.Errorf("detached: %w", ErrInvalidIterator)
	}

	return it.d.check(it)
}

func (it Iterator[T]) isTail() bool {
	return it.block == it.d.blocks.Back()
}

func (it Iterator[T]) isHead() bool {
	return it.block == it.d.blocks.Front()
}

// IsEnd reports whether it is the end position.
func (it Iterator[T]) IsEnd() bool {
	return it.item == nil || it.item.IsEnd()
}

// Equal reports whether both iterators denote the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.d == other.d && it.block == other.block && it.item == other.item
}

// Value returns the element at it.
func (it Iterator[T]) Value() (T, error) { //nolint:ireturn
	if err := it.valid(); err != nil {
		return zeroValue[T](), err
	}

	if it.IsEnd() {
		return zeroValue[T](), fmt.Errorf("dereference end: %w", ErrInvalidIterator)
	}

	return it.item.Value, nil
}

// Set replaces the element at it.
func (it Iterator[T]) Set(v T) error {
	if err := it.valid(); err != nil {
		return err
	}

	if it.IsEnd() {
		return fmt.Errorf("assign to end: %w", ErrInvalidIterator)
	}

	it.item.Value = v

	return nil
}

// Next returns the following position.
func (it Iterator[T]) Next() (Iterator[T], error) {
	if err := it.valid(); err != nil {
		return it, err
	}

	if it.IsEnd() {
		return it, fmt.Errorf("increment end: %w", ErrIndexOutOfBound)
	}

	it.item = it.item.Next()
	if it.item.IsEnd() && !it.isTail() {
		it.block = it.block.Next()
		it.item = it.block.Value.items.Front()
	}

	return it, nil
}

// Prev returns the preceding position.
func (it Iterator[T]) Prev() (Iterator[T], error) {
	if err := it.valid(); err != nil {
		return it, err
	}

	if it.block == nil {
		return it, fmt.Errorf("decrement begin: %w", ErrIndexOutOfBound)
	}

	if p := it.item.Prev(); p != nil {
		it.item = p
		return it, nil
	}

	if it.isHead() {
		return it, fmt.Errorf("decrement begin: %w", ErrIndexOutOfBound)
	}

	it.block = it.block.Prev()
	it.item = it.block.Value.items.Back()

	return it, nil
}

// Add returns the position n elements after it. Landing exactly one past the
// last element yields End.
func (it Iterator[T]) Add(n int) (Iterator[T], error) {
	if n < 0 {
		return it.Sub(-n)
	}

	if err := it.valid(); err != nil {
		return it, err
	}

	if n == 0 {
		return it, nil
	}

	if it.block == nil {
		return it, fmt.Errorf("advance %d past end: %w", n, ErrIndexOutOfBound)
	}

	left := 0
	for e := it.item; !e.IsEnd(); e = e.Next() {
		left++
	}

	if n < left {
		for ; n > 0; n-- {
			it.item = it.item.Next()
		}

		return it, nil
	}

	rem := n - left
	if rem == 0 && it.isTail() {
		return it.d.End(), nil
	}

	if it.isTail() {
		return it, fmt.Errorf("advance %d past end: %w", n, ErrIndexOutOfBound)
	}

	b := it.block.Next()
	for rem >= b.Value.items.Len() {
		if b == it.d.blocks.Back() {
			if rem == b.Value.items.Len() {
				return it.d.End(), nil
			}

			return it, fmt.Errorf("advance %d past end: %w", n, ErrIndexOutOfBound)
		}

		rem -= b.Value.items.Len()
		b = b.Next()
	}

	e := b.Value.items.Front()
	for ; rem > 0; rem-- {
		e = e.Next()
	}

	return Iterator[T]{item: e, block: b, d: it.d}, nil
}

// Sub returns the position n elements before it.
func (it Iterator[T]) Sub(n int) (Iterator[T], error) {
	if n < 0 {
		return it.Add(-n)
	}

	if err := it.valid(); err != nil {
		return it, err
	}

	if n == 0 {
		return it, nil
	}

	if it.block == nil {
		return it, fmt.Errorf("retreat %d before begin: %w", n, ErrIndexOutOfBound)
	}

	rem := n
	if it.item.IsEnd() {
		it.item = it.block.Value.items.Back()
		rem--
	}

	before := 0
	for e := it.item.Prev(); e != nil; e = e.Prev() {
		before++
	}

	if rem <= before {
		for ; rem > 0; rem-- {
			it.item = it.item.Prev()
		}

		return it, nil
	}

	if it.isHead() {
		return it, fmt.Errorf("retreat %d before begin: %w", n, ErrIndexOutOfBound)
	}

	// Stepping onto the last element of the previous block costs before+1.
	rem -= before + 1
	b := it.block.Prev()

	for rem >= b.Value.items.Len() {
		if b == it.d.blocks.Front() {
			return it, fmt.Errorf("retreat %d before begin: %w", n, ErrIndexOutOfBound)
		}

		rem -= b.Value.items.Len()
		b = b.Prev()
	}

	e := b.Value.items.Back()
	for ; rem > 0; rem-- {
		e = e.Prev()
	}

	return Iterator[T]{item: e, block: b, d: it.d}, nil
}

// Distance returns the number of elements from other to it, negative when
// other comes after it.
func (it Iterator[T]) Distance(other Iterator[T]) (int, error) {
	if err := it.valid(); err != nil {
		return 0, err
	}

	if err := other.valid(); err != nil {
		return 0, err
	}

	if it.d != other.d {
		return 0, fmt.Errorf("distance across deques: %w", ErrInvalidIterator)
	}

	if it.block == nil {
		return 0, nil
	}

	if n, ok := forward(other, it); ok {
		return n, nil
	}

	if n, ok := forward(it, other); ok {
		return -n, nil
	}

	return 0, fmt.Errorf("positions are unordered: %w", ErrRuntime)
}

// forward counts the steps from "from" to "to", walking only forward. It
// returns false when "to" is not reached before End.
func forward[T any](from, to Iterator[T]) (int, bool) {
	n := 0

	if from.block == to.block {
		for e := from.item; ; e = e.Next() {
			if e == to.item {
				return n, true
			}

			if e.IsEnd() {
				return 0, false
			}

			n++
		}
	}

	for e := from.item; !e.IsEnd(); e = e.Next() {
		n++
	}

	b := from.block.Next()
	for ; b != to.block; b = b.Next() {
		if b.IsEnd() {
			return 0, false
		}

		n += b.Value.items.Len()
	}

	for e := b.Value.items.Front(); e != to.item; e = e.Next() {
		n++
	}

	return n, true
}

// Const returns a read-only view of the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it: it}
}

// ConstIterator is a read-only Iterator.
type ConstIterator[T any] struct {
	it Iterator[T]
}

func (c ConstIterator[T]) IsEnd() bool { return c.it.IsEnd() }

func (c ConstIterator[T]) Equal(other ConstIterator[T]) bool { return c.it.Equal(other.it) }

func (c ConstIterator[T]) Value() (T, error) { return c.it.Value() } //nolint:ireturn

func (c ConstIterator[T]) Next() (ConstIterator[T], error) {
	it, err := c.it.Next()
	return it.Const(), err
}

func (c ConstIterator[T]) Prev() (ConstIterator[T], error) {
	it, err := c.it.Prev()
	return it.Const(), err
}

func (c ConstIterator[T]) Add(n int) (ConstIterator[T], error) {
	it, err := c.it.Add(n)
	return it.Const(), err
}

func (c ConstIterator[T]) Sub(n int) (ConstIterator[T], error) {
	it, err := c.it.Sub(n)
	return it.Const(), err
}

func (c ConstIterator[T]) Distance(other ConstIterator[T]) (int, error) {
	return c.it.Distance(other.it)
}
