// Package bitview provides a fixed-capacity bit-set view over a
// caller-supplied block of uint64 storage words.
//
// A BitView borrows the storage it is constructed over and holds no other
// state: it never allocates, copies, grows, or frees the words. Capacity is
// fixed at len(words) * 64 bits. Each operation is O(1).
//
// # Quick Start
//
//	words := make([]uint64, 8) // 512 bits
//	v := bitview.New(words)
//
//	if err := v.Set(42, true); err != nil {
//		log.Fatal(err)
//	}
//	ok, _ := v.Test(42) // true
//	v.Reset()           // all 512 bits back to zero
//
// # Ownership
//
// Go has no borrow checker, so the borrow contract is by convention:
//
//   - The caller owns the words and controls their lifetime; the view only
//     reads and writes through the slice it was given.
//   - Mutations are visible to the caller and to every other view over the
//     same words. Do not retain a view past the point the caller repurposes
//     the storage for something else; the slice keeps the array alive, so
//     the hazard is aliased writes, not dangling memory.
//   - There is no internal locking and no atomic word access. Concurrent use
//     of the same storage requires external synchronization.
//
// Out-of-range indices are reported with *ErrIndexOutOfRange before any
// storage access, so a failed Set leaves the words untouched.
package bitview
