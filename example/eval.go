// eval.go -- evaluate bitvector expressions read from text streams

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/opencoff/go-bitvec"
	"github.com/opencoff/golang-lru"
	"github.com/sirupsen/logrus"
)

// longest input line we will accept
const _MaxLine = 64 * 1024 * 1024

var (
	errEmpty   = errors.New("empty expression")
	errUnknown = errors.New("unknown op")
	errArgs    = errors.New("wrong number of arguments")
)

// Calc evaluates one expression per line. Operands are binary strings;
// parsed operands are kept in an ARC cache since bitvectors are immutable
// and can be shared between expressions.
type Calc struct {
	cache *lru.ARCCache
	delim string
	log   logrus.FieldLogger

	hits, misses uint64
}

// NewCalc makes a calculator that caches upto 'cache' parsed operands.
// Fields in a line are separated by any of the characters in 'delim'.
func NewCalc(cache int, delim string, log logrus.FieldLogger) (*Calc, error) {
	if cache <= 0 {
		cache = 128
	}

	if len(delim) == 0 {
		delim = " \t"
	}

	arc, err := lru.NewARC(cache)
	if err != nil {
		return nil, err
	}

	c := &Calc{
		cache: arc,
		delim: delim,
		log:   log,
	}
	return c, nil
}

// EvalFile evaluates every expression in file 'fn' and writes the results
// to 'w'. See EvalStream().
func (c *Calc) EvalFile(w io.Writer, fn string) (uint64, uint64, error) {
	fd, err := os.Open(fn)
	if err != nil {
		return 0, 0, err
	}

	defer fd.Close()

	return c.EvalStream(w, fd)
}

// EvalStream evaluates every expression in 'fd' and writes one result
// line per expression to 'w'. Empty lines and lines starting with '#' are
// skipped. Expressions that fail produce "ERR <reason>" and a warning.
// Returns the number of expressions and the number of failures.
func (c *Calc) EvalStream(w io.Writer, fd io.Reader) (uint64, uint64, error) {
	sc := bufio.NewScanner(fd)
	sc.Buffer(make([]byte, 0, 64*1024), _MaxLine)
	ch := make(chan string, 10)

	// do I/O asynchronously
	go func(sc *bufio.Scanner, ch chan string) {
		for sc.Scan() {
			s := strings.TrimSpace(sc.Text())
			if len(s) == 0 || s[0] == '#' {
				continue
			}
			ch <- s
		}
		close(ch)
	}(sc, ch)

	var n, bad uint64
	for s := range ch {
		out, err := c.Eval(s)
		if err != nil {
			c.log.WithField("expr", s).Warnf("%s", err)
			out = "ERR " + err.Error()
			bad++
		}
		n++

		if _, err := fmt.Fprintln(w, out); err != nil {
			// drain the reader so it can exit
			for range ch {
			}
			return n, bad, err
		}
	}

	return n, bad, sc.Err()
}

// Eval evaluates a single expression of the form "OP ARG..."
func (c *Calc) Eval(line string) (string, error) {
	f := strings.FieldsFunc(line, func(r rune) bool {
		return strings.ContainsRune(c.delim, r)
	})

	if len(f) == 0 {
		return "", errEmpty
	}

	op, args := strings.ToLower(f[0]), f[1:]
	switch op {
	case "and", "or", "xor", "eq", "eqdata":
		if len(args) != 2 {
			return "", fmt.Errorf("%s: %w", op, errArgs)
		}
		a, b, err := c.pair(args[0], args[1])
		if err != nil {
			return "", err
		}
		return binop(op, a, b), nil

	case "not", "count", "first", "hash", "len":
		if len(args) != 1 {
			return "", fmt.Errorf("%s: %w", op, errArgs)
		}
		a, err := c.vector(args[0])
		if err != nil {
			return "", err
		}
		return unop(op, a), nil

	case "lsh", "rsh", "get":
		if len(args) != 2 {
			return "", fmt.Errorf("%s: %w", op, errArgs)
		}
		a, err := c.vector(args[0])
		if err != nil {
			return "", err
		}
		k, err := strconv.ParseUint(args[1], 0, 64)
		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
		return shiftop(op, a, k)

	case "set", "clear":
		if len(args) < 1 {
			return "", fmt.Errorf("%s: %w", op, errArgs)
		}
		a, err := c.vector(args[0])
		if err != nil {
			return "", err
		}
		idx, err := indexes(args[1:])
		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
		r, err := a.Set(op == "set", idx...)
		if err != nil {
			return "", err
		}
		return r.String(), nil
	}

	return "", fmt.Errorf("%s: %w", op, errUnknown)
}

// Stats returns the number of cache hits and misses so far
func (c *Calc) Stats() (uint64, uint64) {
	return c.hits, c.misses
}

// parse 's' or fetch it from the cache
func (c *Calc) vector(s string) (*bitvec.BitVector, error) {
	if v, ok := c.cache.Get(s); ok {
		c.hits++
		return v.(*bitvec.BitVector), nil
	}

	c.misses++
	bv, err := bitvec.NewFromString(s)
	if err != nil {
		return nil, err
	}

	c.cache.Add(s, bv)
	return bv, nil
}

func (c *Calc) pair(x, y string) (*bitvec.BitVector, *bitvec.BitVector, error) {
	a, err := c.vector(x)
	if err != nil {
		return nil, nil, err
	}
	b, err := c.vector(y)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func binop(op string, a, b *bitvec.BitVector) string {
	switch op {
	case "and":
		return a.And(b).String()
	case "or":
		return a.Or(b).String()
	case "xor":
		return a.Xor(b).String()
	case "eq":
		return strconv.FormatBool(a.Equal(b))
	default:
		return strconv.FormatBool(a.EqualMode(b, bitvec.CompareDataOnly))
	}
}

func unop(op string, a *bitvec.BitVector) string {
	switch op {
	case "not":
		return a.Not().String()
	case "count":
		return strconv.FormatUint(a.Count(), 10)
	case "first":
		return strconv.FormatInt(a.FirstSet(), 10)
	case "hash":
		return fmt.Sprintf("%016x", a.Hash())
	default:
		return strconv.FormatUint(a.Len(), 10)
	}
}

func shiftop(op string, a *bitvec.BitVector, k uint64) (string, error) {
	switch op {
	case "lsh":
		return a.LeftShift(k).String(), nil
	case "rsh":
		return a.RightShift(k).String(), nil
	}

	v, err := a.Get(k)
	if err != nil {
		return "", err
	}
	if v {
		return "1", nil
	}
	return "0", nil
}

func indexes(v []string) ([]uint64, error) {
	idx := make([]uint64, len(v))
	for i, s := range v {
		k, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return nil, err
		}
		idx[i] = k
	}
	return idx, nil
}
