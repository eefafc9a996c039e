// utils_test.go -- test harness utilities for bitvec
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
	"crypto/rand"
	"fmt"
	"io"
	"runtime"
	"strings"
	"testing"
)

func newAsserter(t *testing.T) func(cond bool, msg string, args ...interface{}) {
	return func(cond bool, msg string, args ...interface{}) {
		if cond {
			return
		}

		_, file, line, ok := runtime.Caller(1)
		if !ok {
			file = "???"
			line = 0
		}

		s := fmt.Sprintf(msg, args...)
		t.Fatalf("%s: %d: Assertion failed: %s\n", file, line, s)
	}
}

func randbytes(n int) []byte {
	b := make([]byte, n)

	_, err := io.ReadFull(rand.Reader, b)
	if err != nil {
		panic("can't read crypto/rand")
	}
	return b
}

// random bitvector of 'n' bits with clean padding
func randVector(n uint64) *BitVector {
	bv := &BitVector{
		n: n,
		b: randbytes(nbytes(n)),
	}
	bv.trim()
	return bv
}

// random string of '0' and '1' of length 'n'
func randString(n int) string {
	var s strings.Builder

	for _, z := range randbytes(n) {
		s.WriteByte('0' + z&1)
	}
	return s.String()
}

// the i'th bit of 's' counting from the right
func charBit(s string, i int) bool {
	return s[len(s)-1-i] == '1'
}
