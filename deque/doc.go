/*
Package deque implements a random-access double-ended queue backed by a list of blocks.

Each block is a doubly linked list of elements and the blocks themselves form a doubly
linked list. The block capacity tracks ⌊√n⌋+1, so locating an index walks at most O(√n)
blocks and O(√n) elements, while inserting or erasing in the middle only relinks a single
element. Blocks are split and merged lazily whenever the target capacity changes.

The deque is not safe for concurrent access.

# Example Usage

## Basic

The following example shows the operations at both ends and indexed access.

	func basicExample() {
		d := deque.New[int]()

		for i := range 1000 {
			d.PushBack(i)
		}

		for range 500 {
			if _, err := d.PopFront(); err != nil {
				// Handle error.
			}
		}

		first, _ := d.At(0)   // 500
		last, _ := d.At(499)  // 999
		fmt.Println(d.Len(), first, last) // 500 500 999

		// Reading past the end returns an error.
		_, err := d.At(500) // errors.Is(err, deque.ErrIndexOutOfBound)

		// So does reading from an empty deque.
		_, err = deque.New[int]().Front() // errors.Is(err, deque.ErrEmpty)
	}

## Iterators

Iterators are values. Moving one returns a new iterator and an error, and the deque
methods that change the structure return a fresh iterator for the affected position.

	func iteratorExample() {
		d := deque.New(deque.WithValues(1, 2, 4))

		it, _ := d.Begin().Add(2)

		// Insert 3 before 4. The returned iterator points to 3.
		it, err := d.Insert(it, 3)
		if err != nil {
			// Handle error.
		}

		// Erase 3 again. The returned iterator points to 4.
		it, err = d.Erase(it)
		if err != nil {
			// Handle error.
		}

		n, _ := d.End().Distance(d.Begin()) // 3

		for i, v := range d.All() {
			fmt.Println(i, v)
		}
	}
*/
package deque
