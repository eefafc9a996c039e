// bitvector.go -- fixed length, immutable bitvectors
//
// (c) Sudhi Herle 2018
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

// Package bitvec implements a fixed length, immutable bit vector packed
// into a byte slice: one bit per element. Every operation that "changes"
// a bitvector (Set, And, Or, Xor, Not, shifts) returns a new instance and
// leaves the receiver untouched; thus a *BitVector can be shared freely
// between goroutines.
//
// The buffer is laid out big-endian: bit 0 is the least significant bit of
// the last byte and bit n-1 is in the first byte. This makes String() read
// like a binary number:
//
//	bv, _ := bitvec.NewFromString("1011")
//	bv.String()   // "00001011"
//	bv.Get(0)     // true, nil
//	bv.Get(2)     // false, nil
//
// The unused high bits of the first byte are always zero.
package bitvec

import (
	"fmt"
	"math/bits"
)

// MaxBitLength is the largest supported bitvector length; it needs a
// buffer of 0x7FFFFFC7 bytes.
const MaxBitLength = 0x3FFFFFE38

// BitVector represents a fixed length sequence of bits
type BitVector struct {
	n uint64
	b []byte
}

// New creates a bitvector of 'n' bits - all of them clear.
func New(n uint64) (*BitVector, error) {
	if n > MaxBitLength {
		return nil, errLength(n)
	}

	bv := &BitVector{
		n: n,
		b: make([]byte, nbytes(n)),
	}
	return bv, nil
}

// NewFilled creates a bitvector of 'n' bits with every bit set to 'v'.
func NewFilled(n uint64, v bool) (*BitVector, error) {
	bv, err := New(n)
	if err != nil {
		return nil, err
	}

	if v {
		bv.fill()
	}
	return bv, nil
}

// NewFromIndexes creates a bitvector of 'n' bits where only the bits in
// 'idx' are set.
func NewFromIndexes(n uint64, idx ...uint64) (*BitVector, error) {
	bv, err := New(n)
	if err != nil {
		return nil, err
	}

	for _, i := range idx {
		if i >= n {
			return nil, errIndex(i, n)
		}
		bv.put(i, true)
	}
	return bv, nil
}

// NewFromString parses a string of '0' and '1' characters. The rightmost
// character is bit 0; the length of the bitvector is len(s).
func NewFromString(s string) (*BitVector, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("bitvec: empty binary string: %w", ErrInvalidArgument)
	}

	bv, err := New(uint64(len(s)))
	if err != nil {
		return nil, err
	}

	last := len(s) - 1
	for j := 0; j < len(s); j++ {
		switch s[j] {
		case '0':
		case '1':
			bv.put(uint64(last-j), true)
		default:
			return nil, fmt.Errorf("bitvec: invalid char %q at %d: %w", s[j], j, ErrInvalidArgument)
		}
	}
	return bv, nil
}

// NewFromBytes wraps 'b' as a bitvector of 'n' bits. The slice must be
// exactly ceil(n/8) bytes and is NOT copied; callers must not modify it
// afterwards. The unused high bits of b[0] are expected to be zero.
func NewFromBytes(b []byte, n uint64) (*BitVector, error) {
	if n > MaxBitLength {
		return nil, errLength(n)
	}
	if want := nbytes(n); len(b) != want {
		return nil, fmt.Errorf("bitvec: %d bits need %d bytes, saw %d: %w",
			n, want, len(b), ErrInvalidArgument)
	}

	return &BitVector{n: n, b: b}, nil
}

// Len returns the number of bits in this bitvector
func (bv *BitVector) Len() uint64 {
	return bv.n
}

// ByteLen returns the size of the underlying buffer
func (bv *BitVector) ByteLen() int {
	return len(bv.b)
}

// Get returns the value of bit 'i'
func (bv *BitVector) Get(i uint64) (bool, error) {
	if i >= bv.n {
		return false, errIndex(i, bv.n)
	}
	return bv.bit(i), nil
}

// Set returns a copy of bv with each bit in 'idx' set to 'v'.
func (bv *BitVector) Set(v bool, idx ...uint64) (*BitVector, error) {
	r := bv.clone()
	for _, i := range idx {
		if i >= bv.n {
			return nil, errIndex(i, bv.n)
		}
		r.put(i, v)
	}
	return r, nil
}

// SetAll returns a bitvector of the same length with every bit set to 'v'
func (bv *BitVector) SetAll(v bool) *BitVector {
	r := &BitVector{
		n: bv.n,
		b: make([]byte, len(bv.b)),
	}
	if v {
		r.fill()
	}
	return r
}

// FirstSet returns the index of the lowest set bit or -1 if no bit is set.
func (bv *BitVector) FirstSet() int64 {
	for j := len(bv.b) - 1; j >= 0; j-- {
		if z := bv.b[j]; z != 0 {
			i := uint64(len(bv.b)-1-j)*8 + uint64(bits.TrailingZeros8(z))
			if i >= bv.n {
				break
			}
			return int64(i)
		}
	}
	return -1
}

// Count returns the number of set bits
func (bv *BitVector) Count() uint64 {
	var c int
	for _, z := range bv.b {
		c += bits.OnesCount8(z)
	}
	return uint64(c)
}

// Indexes returns the set bits in ascending order
func (bv *BitVector) Indexes() []uint64 {
	v := make([]uint64, 0, bv.Count())
	for j := len(bv.b) - 1; j >= 0; j-- {
		base := uint64(len(bv.b)-1-j) * 8
		for z := bv.b[j]; z != 0; z &= z - 1 {
			i := base + uint64(bits.TrailingZeros8(z))
			if i < bv.n {
				v = append(v, i)
			}
		}
	}
	return v
}

// Bytes returns a copy of the underlying buffer
func (bv *BitVector) Bytes() []byte {
	b := make([]byte, len(bv.b))
	copy(b, bv.b)
	return b
}

// CopyTo copies the underlying buffer into 'dst' starting at 'off'.
func (bv *BitVector) CopyTo(dst []byte, off int) error {
	if off < 0 || len(dst)-off < len(bv.b) {
		return fmt.Errorf("bitvec: can't copy %d bytes to offset %d of %d: %w",
			len(bv.b), off, len(dst), ErrIndexOutOfRange)
	}

	copy(dst[off:], bv.b)
	return nil
}

// String renders every byte of the buffer as 8 binary digits, most
// significant bit first.
func (bv *BitVector) String() string {
	s := make([]byte, 0, len(bv.b)*8)
	for _, z := range bv.b {
		for k := 7; k >= 0; k-- {
			s = append(s, '0'+(z>>uint(k))&1)
		}
	}
	return string(s)
}

// return byte offset and mask for bit 'i'
func (bv *BitVector) locate(i uint64) (int, byte) {
	return len(bv.b) - 1 - int(i/8), byte(1) << (i % 8)
}

func (bv *BitVector) bit(i uint64) bool {
	j, m := bv.locate(i)
	return bv.b[j]&m != 0
}

// put is only ever called on a freshly allocated bitvector
func (bv *BitVector) put(i uint64, v bool) {
	j, m := bv.locate(i)
	if v {
		bv.b[j] |= m
	} else {
		bv.b[j] &^= m
	}
}

func (bv *BitVector) fill() {
	for j := range bv.b {
		bv.b[j] = 0xff
	}
	bv.trim()
}

// clear the unused bits of the first byte
func (bv *BitVector) trim() {
	if r := bv.n % 8; r != 0 {
		bv.b[0] &= byte(1)<<r - 1
	}
}

func (bv *BitVector) clone() *BitVector {
	return &BitVector{
		n: bv.n,
		b: bv.Bytes(),
	}
}

// number of bytes to hold 'n' bits
func nbytes(n uint64) int {
	return int((n + 7) / 8)
}
