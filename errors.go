// errors.go -- error values returned by bitvec
//
// (c) Sudhi Herle 2018
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a binary string is empty or has
	// characters other than '0' and '1'; it is also returned when a raw
	// buffer doesn't match the requested bit length.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange is returned when a bit index is >= the length of
	// the bitvector, or when a destination buffer is too small.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrOverflow is returned if the bit length is larger than MaxBitLength
	ErrOverflow = errors.New("bit length too large")
)

func errIndex(i, n uint64) error {
	return fmt.Errorf("bitvec: index %d not in [0, %d): %w", i, n, ErrIndexOutOfRange)
}

func errLength(n uint64) error {
	return fmt.Errorf("bitvec: length %d exceeds %#x: %w", n, uint64(MaxBitLength), ErrOverflow)
}
