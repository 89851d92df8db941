package bitview

// wordBits is the width of a storage word. Bit p of word b addresses
// logical bit index b*wordBits + p.
const wordBits = 64

// BitView is a fixed-capacity bit set over borrowed uint64 words.
//
// The zero value is a view of capacity 0. Views are cheap to copy; copies
// share the same storage.
type BitView struct {
	words []uint64
}

// New creates a BitView over words. The slice is borrowed, not copied, and
// its contents are left untouched, so any bits already set stay set. A nil
// or empty slice yields a zero-capacity view.
func New(words []uint64) BitView {
	return BitView{words: words}
}

// Cap returns the capacity in bits.
func (v BitView) Cap() int {
	return len(v.words) * wordBits
}

// Test reports whether the bit at index is set.
func (v BitView) Test(index int) (bool, error) {
	if index < 0 || index >= v.Cap() {
		return false, &ErrIndexOutOfRange{Index: index, Capacity: v.Cap()}
	}

	return v.words[index/wordBits]&(1<<(index%wordBits)) != 0, nil
}

// Set sets the bit at index when value is true and clears it when false.
// Either direction is idempotent and leaves every other bit unchanged.
// On an out-of-range index the storage is not touched.
func (v BitView) Set(index int, value bool) error {
	if index < 0 || index >= v.Cap() {
		return &ErrIndexOutOfRange{Index: index, Capacity: v.Cap()}
	}

	if value {
		v.words[index/wordBits] |= 1 << (index % wordBits)
	} else {
		v.words[index/wordBits] &^= 1 << (index % wordBits)
	}

	return nil
}

// Reset zeroes every borrowed word, clearing all bits in the capacity.
func (v BitView) Reset() {
	clear(v.words)
}
