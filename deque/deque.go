package deque

import (
	"errors"
	"fmt"
	"iter"

	"github.com/icycozy/Deque/internal/list"
)

const defaultBlockSize = 4

var (
	ErrIndexOutOfBound = errors.New("index out of bound")
	ErrInvalidIterator = errors.New("invalid iterator")
	ErrEmpty           = errors.New("container is empty")
	ErrRuntime         = errors.New("runtime error")
)

// zeroValue returns the zero value of the type.
func zeroValue[T any]() (zero T) { //nolint:ireturn
	return
}

type block[T any] struct {
	items *list.List[T]
}

func newBlock[T any]() block[T] {
	return block[T]{items: list.New[T]()}
}

// Deque is a sequence container with O(1) access at both ends and O(√n)
// indexed access, insertion and erasure anywhere in between.
//
// Elements are stored in a list of blocks, each block being a linked list of
// elements. Block capacity follows the square root of the length.
type Deque[T any] struct {
	blocks    *list.List[block[T]]
	size      int
	blockSize int
	initBlock int
}

type Option[T any] func(*Deque[T])

// WithBlockSize sets the block capacity used until the first rebalance and
// restored by Clear.
func WithBlockSize[T any](n int) Option[T] {
	return func(d *Deque[T]) {
		if n <= 0 {
			return
		}

		d.initBlock = n

		if d.size == 0 {
			d.blockSize = n
		}
	}
}

// WithValues pushes values to the back of the deque in order.
func WithValues[T any](values ...T) Option[T] {
	return func(d *Deque[T]) {
		for _, v := range values {
			d.PushBack(v)
		}
	}
}

func New[T any](options ...Option[T]) *Deque[T] {
	d := new(Deque[T])

	d.blocks = list.New[block[T]]()
	d.initBlock = defaultBlockSize
	d.blockSize = defaultBlockSize

	for _, f := range options {
		f(d)
	}

	return d
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int { return d.size }

// Empty reports whether the deque holds no elements.
func (d *Deque[T]) Empty() bool { return d.size == 0 }

// Clear removes every element and restores the initial block capacity.
func (d *Deque[T]) Clear() {
	for e := d.blocks.Front(); e != nil; e = d.blocks.Front() {
		e.Value.items.Clear()
		_, _ = d.blocks.Erase(e)
	}

	d.size = 0
	d.blockSize = d.initBlock
}

// Clone returns a deep copy. No element or block is shared with d.
func (d *Deque[T]) Clone() *Deque[T] {
	c := &Deque[T]{
		blocks:    list.New[block[T]](),
		size:      d.size,
		blockSize: d.blockSize,
		initBlock: d.initBlock,
	}

	for b := range d.blocks.All() {
		c.blocks.PushBack(block[T]{items: b.items.Clone()})
	}

	return c
}

// locate returns the iterator at logical index i, or End if i == Len().
func (d *Deque[T]) locate(i int) Iterator[T] {
	if i >= d.size {
		return d.End()
	}

	b := d.blocks.Front()
	for i >= b.Value.items.Len() {
		i -= b.Value.items.Len()
		b = b.Next()
	}

	e := b.Value.items.Front()
	for ; i > 0; i-- {
		e = e.Next()
	}

	return Iterator[T]{item: e, block: b, d: d}
}

// offset returns the logical index of it, which must be valid.
func (d *Deque[T]) offset(it Iterator[T]) int {
	if d.size == 0 {
		return 0
	}

	n := 0
	for b := d.blocks.Front(); b != it.block; b = b.Next() {
		n += b.Value.items.Len()
	}

	for e := it.block.Value.items.Begin(); e != it.item; e = e.Next() {
		n++
	}

	return n
}

// At returns the element at index i.
func (d *Deque[T]) At(i int) (T, error) { //nolint:ireturn
	if i < 0 || i >= d.size {
		return zeroValue[T](), fmt.Errorf("at %d of %d: %w", i, d.size, ErrIndexOutOfBound)
	}

	return d.locate(i).item.Value, nil
}

// Set replaces the element at index i.
func (d *Deque[T]) Set(i int, v T) error {
	if i < 0 || i >= d.size {
		return fmt.Errorf("set %d of %d: %w", i, d.size, ErrIndexOutOfBound)
	}

	d.locate(i).item.Value = v

	return nil
}

// Front returns the first element.
func (d *Deque[T]) Front() (T, error) { //nolint:ireturn
	if d.size == 0 {
		return zeroValue[T](), fmt.Errorf("front: %w", ErrEmpty)
	}

	return d.blocks.Front().Value.items.Front().Value, nil
}

// Back returns the last element.
func (d *Deque[T]) Back() (T, error) { //nolint:ireturn
	if d.size == 0 {
		return zeroValue[T](), fmt.Errorf("back: %w", ErrEmpty)
	}

	return d.blocks.Back().Value.items.Back().Value, nil
}

// PushBack appends v, opening a new tail block when the current one is full.
func (d *Deque[T]) PushBack(v T) {
	tail := d.blocks.Back()
	if tail == nil || tail.Value.items.Len() >= d.blockSize {
		tail = d.blocks.PushBack(newBlock[T]())
	}

	tail.Value.items.PushBack(v)
	d.size++
	d.balance()
}

// PushFront prepends v, opening a new head block when the current one is full.
func (d *Deque[T]) PushFront(v T) {
	head := d.blocks.Front()
	if head == nil || head.Value.items.Len() >= d.blockSize {
		head = d.blocks.PushFront(newBlock[T]())
	}

	head.Value.items.PushFront(v)
	d.size++
	d.balance()
}

// PopBack removes and returns the last element.
func (d *Deque[T]) PopBack() (T, error) { //nolint:ireturn
	if d.size == 0 {
		return zeroValue[T](), fmt.Errorf("pop back: %w", ErrEmpty)
	}

	tail := d.blocks.Back()
	v, _ := tail.Value.items.PopBack()

	if tail.Value.items.Empty() {
		d.blocks.PopBack()
	}

	d.size--
	d.balance()

	return v, nil
}

// PopFront removes and returns the first element.
func (d *Deque[T]) PopFront() (T, error) { //nolint:ireturn
	if d.size == 0 {
		return zeroValue[T](), fmt.Errorf("pop front: %w", ErrEmpty)
	}

	head := d.blocks.Front()
	v, _ := head.Value.items.PopFront()

	if head.Value.items.Empty() {
		d.blocks.PopFront()
	}

	d.size--
	d.balance()

	return v, nil
}

// Insert inserts v before pos and returns an iterator to the inserted element.
// Inserting at End appends.
func (d *Deque[T]) Insert(pos Iterator[T], v T) (Iterator[T], error) {
	if err := d.check(pos); err != nil {
		return Iterator[T]{}, fmt.Errorf("insert: %w", err)
	}

	if d.blocks.Empty() {
		b := d.blocks.PushBack(newBlock[T]())
		b.Value.items.PushBack(v)
		d.size++
		d.balance()

		return d.Begin(), nil
	}

	off := d.offset(pos)

	if _, err := pos.block.Value.items.Insert(pos.item, v); err != nil {
		return Iterator[T]{}, fmt.Errorf("insert at %d: %w: %w", off, ErrRuntime, err)
	}

	d.size++
	d.balance()

	// Rebalancing may have moved the element to another block.
	return d.locate(off), nil
}

// Erase removes the element at pos and returns an iterator to the element
// that followed it.
func (d *Deque[T]) Erase(pos Iterator[T]) (Iterator[T], error) {
	if err := d.check(pos); err != nil {
		return Iterator[T]{}, fmt.Errorf("erase: %w", err)
	}

	if pos.IsEnd() {
		return Iterator[T]{}, fmt.Errorf("erase end: %w", ErrInvalidIterator)
	}

	off := d.offset(pos)
	items := pos.block.Value.items

	if _, err := items.Erase(pos.item); err != nil {
		return Iterator[T]{}, fmt.Errorf("erase at %d: %w: %w", off, ErrRuntime, err)
	}

	if items.Empty() {
		_, _ = d.blocks.Erase(pos.block)
	}

	d.size--

	if d.size == 0 || off == d.size {
		return d.End(), nil
	}

	d.balance()

	return d.locate(off), nil
}

// Begin returns an iterator to the first element.
func (d *Deque[T]) Begin() Iterator[T] {
	b := d.blocks.Front()
	if b == nil {
		return Iterator[T]{d: d}
	}

	return Iterator[T]{item: b.Value.items.Front(), block: b, d: d}
}

// End returns the iterator one past the last element.
func (d *Deque[T]) End() Iterator[T] {
	b := d.blocks.Back()
	if b == nil {
		return Iterator[T]{d: d}
	}

	return Iterator[T]{item: b.Value.items.End(), block: b, d: d}
}

// CBegin returns a read-only iterator to the first element.
func (d *Deque[T]) CBegin() ConstIterator[T] { return d.Begin().Const() }

// CEnd returns a read-only iterator one past the last element.
func (d *Deque[T]) CEnd() ConstIterator[T] { return d.End().Const() }

// All returns an iterator over index-value pairs from front to back.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0

		for b := range d.blocks.All() {
			for v := range b.items.All() {
				if !yield(i, v) {
					return
				}

				i++
			}
		}
	}
}

// Backward returns an iterator over index-value pairs from back to front.
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := d.size - 1

		for b := d.blocks.Back(); b != nil; b = b.Prev() {
			for e := b.Value.items.Back(); e != nil; e = e.Prev() {
				if !yield(i, e.Value) {
					return
				}

				i--
			}
		}
	}
}

// Values returns an iterator over the elements from front to back.
func (d *Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range d.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Slice returns the elements in order in a new slice.
func (d *Deque[T]) Slice() []T {
	s := make([]T, 0, d.size)
	for v := range d.Values() {
		s = append(s, v)
	}

	return s
}

// Validate checks the structural invariants of the deque and returns an
// ErrRuntime wrapped error describing the first violation found.
func (d *Deque[T]) Validate() error {
	n := 0
	i := 0

	for b := range d.blocks.All() {
		if b.items.Empty() {
			return fmt.Errorf("block %d is empty: %w", i, ErrRuntime)
		}

		n += b.items.Len()
		i++
	}

	if n != d.size {
		return fmt.Errorf("blocks hold %d elements, size is %d: %w", n, d.size, ErrRuntime)
	}

	return nil
}
