// bitvector_test.go -- test suite for bitvector
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
	"strings"
	"testing"
)

func TestBitVectorSimple(t *testing.T) {
	assert := newAsserter(t)

	bv, err := New(100)
	assert(err == nil, "new: %s", err)
	assert(bv.Len() == 100, "len mismatch; exp 100, saw %d", bv.Len())
	assert(bv.ByteLen() == 13, "size mismatch; exp 13, saw %d", bv.ByteLen())

	var odd []uint64
	for i := uint64(0); i < bv.Len(); i++ {
		if 1 == (i & 1) {
			odd = append(odd, i)
		}
	}

	bv, err = bv.Set(true, odd...)
	assert(err == nil, "set: %s", err)

	for i := uint64(0); i < bv.Len(); i++ {
		v, err := bv.Get(i)
		assert(err == nil, "get %d: %s", i, err)
		if 1 == (i & 1) {
			assert(v, "%d not set", i)
		} else {
			assert(!v, "%d is set", i)
		}
	}
	assert(bv.Count() == 50, "count: exp 50, saw %d", bv.Count())
	assert(bv.FirstSet() == 1, "first: exp 1, saw %d", bv.FirstSet())
}

func TestBitVectorSizes(t *testing.T) {
	assert := newAsserter(t)

	for n := uint64(0); n < 200; n++ {
		bv, err := New(n)
		assert(err == nil, "new %d: %s", n, err)
		assert(bv.ByteLen() == int((n+7)/8), "%d: size %d", n, bv.ByteLen())
		assert(bv.Count() == 0, "%d: count %d", n, bv.Count())
		assert(bv.FirstSet() == -1, "%d: first %d", n, bv.FirstSet())

		ones, err := NewFilled(n, true)
		assert(err == nil, "filled %d: %s", n, err)
		assert(ones.Count() == n, "%d: filled count %d", n, ones.Count())
		for i := uint64(0); i < n; i++ {
			v, err := ones.Get(i)
			assert(err == nil && v, "%d: bit %d not set", n, i)
		}

		_, err = ones.Get(n)
		assert(errors.Is(err, ErrIndexOutOfRange), "%d: get past end: %v", n, err)

		zeros, err := NewFilled(n, false)
		assert(err == nil, "filled %d: %s", n, err)
		assert(zeros.Equal(bv), "%d: zero filled != new", n)
	}
}

func TestBitVectorOverflow(t *testing.T) {
	assert := newAsserter(t)

	_, err := New(MaxBitLength + 1)
	assert(errors.Is(err, ErrOverflow), "exp overflow, saw %v", err)

	_, err = NewFilled(^uint64(0), true)
	assert(errors.Is(err, ErrOverflow), "exp overflow, saw %v", err)

	_, err = NewFromIndexes(MaxBitLength+8, 1)
	assert(errors.Is(err, ErrOverflow), "exp overflow, saw %v", err)

	_, err = NewFromBytes(nil, MaxBitLength+1)
	assert(errors.Is(err, ErrOverflow), "exp overflow, saw %v", err)

	assert(nbytes(MaxBitLength) == 0x7FFFFFC7, "max bytes: %#x", nbytes(MaxBitLength))
}

func TestBitVectorString(t *testing.T) {
	assert := newAsserter(t)

	bv, err := NewFromString("1011")
	assert(err == nil, "parse: %s", err)
	assert(bv.Len() == 4, "len: %d", bv.Len())
	assert(bv.ByteLen() == 1, "size: %d", bv.ByteLen())
	assert(bv.String() == "00001011", "string: %s", bv.String())

	exp := []bool{true, true, false, true}
	for i, e := range exp {
		v, err := bv.Get(uint64(i))
		assert(err == nil, "get %d: %s", i, err)
		assert(v == e, "bit %d: exp %v, saw %v", i, e, v)
	}

	for n := 1; n < 150; n++ {
		s := randString(n)
		bv, err := NewFromString(s)
		assert(err == nil, "parse %s: %s", s, err)
		assert(bv.Len() == uint64(n), "len: exp %d, saw %d", n, bv.Len())

		pad := (8 - n%8) % 8
		want := strings.Repeat("0", pad) + s
		assert(bv.String() == want, "round trip:\n exp %s\n saw %s", want, bv.String())

		for i := 0; i < n; i++ {
			v, _ := bv.Get(uint64(i))
			assert(v == charBit(s, i), "%s: bit %d mismatch", s, i)
		}

		// the padded form parses to the same data
		bp, err := NewFromString(bv.String())
		assert(err == nil, "parse %s: %s", bv.String(), err)
		assert(bp.EqualMode(bv, CompareDataOnly), "%s: padded string differs", s)
	}
}

func TestBitVectorBadString(t *testing.T) {
	assert := newAsserter(t)

	for _, s := range []string{"", "10a1", "2", " 1", "1 ", "0b101"} {
		bv, err := NewFromString(s)
		assert(bv == nil, "%q: exp nil bitvector", s)
		assert(errors.Is(err, ErrInvalidArgument), "%q: exp invalid argument, saw %v", s, err)
	}
}

func TestBitVectorIndexes(t *testing.T) {
	assert := newAsserter(t)

	bv, err := NewFromIndexes(20, 0, 3, 19, 3)
	assert(err == nil, "new: %s", err)
	assert(bv.Count() == 3, "count: %d", bv.Count())
	assert(bv.String() == "000010000000000000001001", "string: %s", bv.String())

	idx := bv.Indexes()
	assert(len(idx) == 3, "indexes: %v", idx)
	assert(idx[0] == 0 && idx[1] == 3 && idx[2] == 19, "indexes: %v", idx)

	_, err = NewFromIndexes(20, 1, 20)
	assert(errors.Is(err, ErrIndexOutOfRange), "exp out of range, saw %v", err)

	for n := uint64(1); n < 100; n++ {
		rv := randVector(n)
		bv, err := NewFromIndexes(n, rv.Indexes()...)
		assert(err == nil, "%d: new: %s", n, err)
		assert(bv.Equal(rv), "%d: indexes round trip\n exp %s\n saw %s", n, rv, bv)
		assert(uint64(len(rv.Indexes())) == rv.Count(), "%d: count mismatch", n)
	}
}

func TestBitVectorSet(t *testing.T) {
	assert := newAsserter(t)

	a, err := New(12)
	assert(err == nil, "new: %s", err)

	b, err := a.Set(true, 0, 11)
	assert(err == nil, "set: %s", err)
	assert(b.String() == "0000100000000001", "set: %s", b)
	assert(a.Count() == 0, "receiver modified: %s", a)

	c, err := b.Set(false, 11)
	assert(err == nil, "clear: %s", err)
	assert(c.String() == "0000000000000001", "clear: %s", c)
	assert(b.Count() == 2, "receiver modified: %s", b)

	d, err := b.Set(true, 1, 12)
	assert(d == nil, "exp nil on error")
	assert(errors.Is(err, ErrIndexOutOfRange), "exp out of range, saw %v", err)
	assert(b.Count() == 2, "receiver modified on error: %s", b)

	all := c.SetAll(true)
	assert(all.Count() == 12, "set all: %s", all)
	assert(all.String() == "0000111111111111", "set all: %s", all)
	none := all.SetAll(false)
	assert(none.Count() == 0 && none.Len() == 12, "clear all: %s", none)
}

func TestBitVectorFromBytes(t *testing.T) {
	assert := newAsserter(t)

	buf := []byte{0x01, 0x80}
	bv, err := NewFromBytes(buf, 9)
	assert(err == nil, "new: %s", err)
	assert(bv.String() == "0000000110000000", "string: %s", bv)
	assert(bv.Indexes()[0] == 7 && bv.Indexes()[1] == 8, "indexes: %v", bv.Indexes())

	_, err = NewFromBytes(buf, 17)
	assert(errors.Is(err, ErrInvalidArgument), "short buffer: %v", err)
	_, err = NewFromBytes(buf, 8)
	assert(errors.Is(err, ErrInvalidArgument), "long buffer: %v", err)

	z, err := NewFromBytes(nil, 0)
	assert(err == nil, "empty: %s", err)
	assert(z.Len() == 0 && z.String() == "", "empty: %d %q", z.Len(), z.String())
}

func TestBitVectorCopy(t *testing.T) {
	assert := newAsserter(t)

	bv, err := NewFromString("1111000010")
	assert(err == nil, "parse: %s", err)

	b := bv.Bytes()
	assert(len(b) == 2 && b[0] == 0x03 && b[1] == 0xc2, "bytes: %x", b)

	// mutating the copy leaves the bitvector alone
	b[1] = 0
	assert(bv.Count() == 5, "bytes aliased the buffer")

	dst := make([]byte, 4)
	err = bv.CopyTo(dst, 2)
	assert(err == nil, "copy: %s", err)
	assert(dst[0] == 0 && dst[1] == 0 && dst[2] == 0x03 && dst[3] == 0xc2, "copy: %x", dst)

	err = bv.CopyTo(dst, 3)
	assert(errors.Is(err, ErrIndexOutOfRange), "copy past end: %v", err)
	err = bv.CopyTo(dst, -1)
	assert(errors.Is(err, ErrIndexOutOfRange), "negative offset: %v", err)
}

func TestBitVectorFirstSet(t *testing.T) {
	assert := newAsserter(t)

	for n := uint64(1); n < 70; n++ {
		for i := uint64(0); i < n; i++ {
			bv, err := NewFromIndexes(n, i, n-1)
			assert(err == nil, "new: %s", err)
			assert(bv.FirstSet() == int64(i), "%d/%d: first %d", i, n, bv.FirstSet())
		}
	}
}
