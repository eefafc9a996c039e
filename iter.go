// iter.go -- sequential traversal of a bitvector
//
// (c) Sudhi Herle 2018
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package bitvec

// Enumerator walks the bits of a bitvector from bit 0 upwards:
//
//	it := bv.Iter()
//	for it.Next() {
//		fmt.Println(it.Index(), it.Bit())
//	}
//
// An Enumerator is not safe for concurrent use.
type Enumerator struct {
	bv *BitVector
	i  int64
}

// Iter returns a new Enumerator positioned before the first bit
func (bv *BitVector) Iter() *Enumerator {
	return &Enumerator{bv: bv, i: -1}
}

// Next advances to the next bit; it returns false when there are no
// more bits.
func (e *Enumerator) Next() bool {
	n := int64(e.bv.n)
	if e.i >= n {
		return false
	}

	e.i++
	return e.i < n
}

// Bit returns the bit at the current position. It returns false before
// the first call to Next() and after Next() returns false.
func (e *Enumerator) Bit() bool {
	if e.i < 0 || e.i >= int64(e.bv.n) {
		return false
	}
	return e.bv.bit(uint64(e.i))
}

// Index returns the current position: -1 before the first call to Next()
// and Len() once the bits are exhausted.
func (e *Enumerator) Index() int64 {
	return e.i
}

// Reset rewinds the Enumerator to the start
func (e *Enumerator) Reset() {
	e.i = -1
}
