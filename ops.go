// ops.go -- bitwise algebra and shifts
//
// (c) Sudhi Herle 2018
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package bitvec

// And returns the bitwise AND of bv and 'o'. The operands are aligned at
// bit 0 and the shorter one is treated as zero extended; the result is
// as long as the longer operand.
func (bv *BitVector) And(o *BitVector) *BitVector {
	return combine(bv, o, func(x, y byte) byte { return x & y })
}

// Or returns the bitwise OR of bv and 'o'. See And() for the length rules.
func (bv *BitVector) Or(o *BitVector) *BitVector {
	return combine(bv, o, func(x, y byte) byte { return x | y })
}

// Xor returns the bitwise XOR of bv and 'o'. See And() for the length rules.
func (bv *BitVector) Xor(o *BitVector) *BitVector {
	return combine(bv, o, func(x, y byte) byte { return x ^ y })
}

// Not returns the complement of bv
func (bv *BitVector) Not() *BitVector {
	r := &BitVector{
		n: bv.n,
		b: make([]byte, len(bv.b)),
	}

	for j, z := range bv.b {
		r.b[j] = ^z
	}
	r.trim()
	return r
}

// LeftShift returns a copy of bv where bit 'i' moves to 'i+s'. Bits
// shifted past Len() are lost and the low 's' bits are zero.
func (bv *BitVector) LeftShift(s uint64) *BitVector {
	r := bv.SetAll(false)
	if s >= bv.n {
		return r
	}

	// bytes move towards the front of the buffer
	nb := len(bv.b)
	bs := int(s / 8)
	sh := uint(s % 8)
	for j := 0; j+bs < nb; j++ {
		k := j + bs
		z := bv.b[k] << sh
		if k+1 < nb {
			z |= bv.b[k+1] >> (8 - sh)
		}
		r.b[j] = z
	}
	r.trim()
	return r
}

// RightShift returns a copy of bv where bit 'i' moves to 'i-s'. The low
// 's' bits are lost and the high 's' bits are zero.
func (bv *BitVector) RightShift(s uint64) *BitVector {
	r := bv.SetAll(false)
	if s >= bv.n {
		return r
	}

	// bytes move towards the end of the buffer
	bs := int(s / 8)
	sh := uint(s % 8)
	for j := len(bv.b) - 1; j-bs >= 0; j-- {
		k := j - bs
		z := bv.b[k] >> sh
		if k > 0 {
			z |= bv.b[k-1] << (8 - sh)
		}
		r.b[j] = z
	}
	return r
}

// apply 'fp' to every pair of bytes of a and b; both are right aligned.
func combine(a, b *BitVector, fp func(x, y byte) byte) *BitVector {
	if len(a.b) < len(b.b) {
		a, b = b, a
	}

	n := a.n
	if b.n > n {
		n = b.n
	}

	r := &BitVector{
		n: n,
		b: make([]byte, len(a.b)),
	}

	// 'd' leading bytes of 'a' have no counterpart in 'b'
	d := len(a.b) - len(b.b)
	for j, x := range a.b {
		var y byte
		if j >= d {
			y = b.b[j-d]
		}
		r.b[j] = fp(x, y)
	}
	return r
}
