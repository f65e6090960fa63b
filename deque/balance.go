package deque

import (
	"math"

	"github.com/icycozy/Deque/internal/list"
)

// targetBlockSize returns ⌊√n⌋ + 1.
func targetBlockSize(n int) int {
	r := int(math.Sqrt(float64(n)))

	// Correct float rounding for large n.
	for r*r > n {
		r--
	}

	for (r+1)*(r+1) <= n {
		r++
	}

	return r + 1
}

// balance recomputes the block capacity and, when it changed, splits blocks
// holding more than twice the capacity and merges blocks holding less than
// half of it into their successor when the result fits in one block.
func (d *Deque[T]) balance() {
	if d.blocks.Empty() {
		return
	}

	target := targetBlockSize(d.size)
	if target == d.blockSize {
		return
	}

	d.blockSize = target

	for b := d.blocks.Front(); !b.IsEnd(); {
		n := b.Value.items.Len()

		if n > 2*target {
			d.split(b)
			continue
		}

		if 2*n < target && d.merge(b) {
			continue
		}

		b = b.Next()
	}
}

// split moves the back half of b into a new block inserted right after it.
func (d *Deque[T]) split(b *list.Element[block[T]]) {
	items := b.Value.items

	at := items.Front()
	for i := items.Len() / 2; i > 0; i-- {
		at = at.Next()
	}

	tail, _ := items.SplitAt(at)
	_, _ = d.blocks.Insert(b.Next(), block[T]{items: tail})
}

// merge appends the successor of b onto b and drops the successor. It reports
// false when there is no successor or the merged block would exceed the
// capacity.
func (d *Deque[T]) merge(b *list.Element[block[T]]) bool {
	next := b.Next()
	if next.IsEnd() {
		return false
	}

	if b.Value.items.Len()+next.Value.items.Len() > d.blockSize {
		return false
	}

	b.Value.items.PushBackList(next.Value.items)
	_, _ = d.blocks.Erase(next)

	return true
}
