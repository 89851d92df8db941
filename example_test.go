package bitview_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/bitview"
)

// Example demonstrates basic use over caller-owned storage.
func Example() {
	words := make([]uint64, 8) // 512 bits
	v := bitview.New(words)

	if err := v.Set(42, true); err != nil {
		log.Fatal(err)
	}

	ok, _ := v.Test(42)
	fmt.Println(ok)

	v.Reset()
	ok, _ = v.Test(42)
	fmt.Println(ok)
	// Output:
	// true
	// false
}

// Example_outOfRange demonstrates the fail-fast range check.
func Example_outOfRange() {
	v := bitview.New(make([]uint64, 1)) // 64 bits

	var oor *bitview.ErrIndexOutOfRange
	if err := v.Set(64, true); errors.As(err, &oor) {
		fmt.Println(oor)
	}
	// Output:
	// bit index out of range: 64 (capacity 64)
}
