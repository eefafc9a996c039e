// equal.go -- comparing and hashing bitvectors
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
	"bytes"
	"encoding/binary"

	"github.com/dchest/siphash"
	"github.com/opencoff/go-fasthash"
)

// EqualityMode selects how two bitvectors are compared
type EqualityMode int

const (
	// CompareLengthAndData requires identical lengths and identical bits
	CompareLengthAndData EqualityMode = iota

	// CompareDataOnly zero-extends the shorter bitvector before comparing
	CompareDataOnly
)

func (m EqualityMode) String() string {
	switch m {
	case CompareLengthAndData:
		return "length+data"
	case CompareDataOnly:
		return "data"
	default:
		return "unknown"
	}
}

// per-process salt for Hash()
var hashSalt = rand64()

// Equal returns true if bv and 'o' have the same length and the same bits
func (bv *BitVector) Equal(o *BitVector) bool {
	return bv.EqualMode(o, CompareLengthAndData)
}

// EqualMode compares bv and 'o' using the rules of 'm'.
func (bv *BitVector) EqualMode(o *BitVector, m EqualityMode) bool {
	if m == CompareDataOnly {
		return sameData(bv, o)
	}
	return bv.n == o.n && bytes.Equal(bv.b, o.b)
}

// Hash returns a 64-bit hash of bv. Bitvectors that are Equal() have the
// same hash within a process; the hash is not stable across processes.
func (bv *BitVector) Hash() uint64 {
	return fasthash.Hash64(hashSalt^bv.n, bv.b)
}

// KeyedHash returns the SipHash-2-4 of bv keyed by 'key'. The key must
// be at least 16 bytes long. Use this when the bitvectors come from
// untrusted sources.
func (bv *BitVector) KeyedHash(key []byte) uint64 {
	var n [8]byte

	binary.BigEndian.PutUint64(n[:], bv.n)

	h := siphash.New(key)
	h.Write(n[:])
	h.Write(bv.b)
	return h.Sum64()
}

// compare right aligned buffers; the extra leading bytes of the longer
// one must be zero.
func sameData(a, b *BitVector) bool {
	if len(a.b) < len(b.b) {
		a, b = b, a
	}

	d := len(a.b) - len(b.b)
	for _, z := range a.b[:d] {
		if z != 0 {
			return false
		}
	}
	return bytes.Equal(a.b[d:], b.b)
}
