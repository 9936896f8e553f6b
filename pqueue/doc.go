// Package pqueue implements a binary max-heap that supports O(log n)
// arbitrary-element deletion, not just Pop-the-top.
//
// The standard library's container/heap gives you Push/Pop but no way
// to remove an arbitrary element without a linear scan, because it has
// no way to find that element's current position once earlier swaps
// have moved it. pqueue closes that gap: every element carries a
// mutable "index" slot that the heap keeps in sync on every swap, so a
// caller who held onto the element can ask the heap to remove it
// directly.
//
// Circle events in the sweep (package sweepevent) are invalidated far
// too often for a linear-scan "pending deletions" list to stay O(log
// n) overall, which is why this package exists instead of a thin
// wrapper around container/heap.
package pqueue
