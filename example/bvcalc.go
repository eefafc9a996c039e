// bvcalc.go -- evaluate bitvector expressions
//
// Author: Sudhi Herle <sudhi@herle.net>
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

// bvcalc is an example of using the bitvec library. It reads expressions,
// one per line, from the named files or STDIN and prints one result per
// expression:
//
//	and 1100 1010       => 00001000
//	lsh 1011 1          => 00000110
//	count 1011          => 3
//	eqdata 101 00101    => true
//
// Operands are binary strings; the rightmost digit is bit 0.

package main

import (
	"fmt"
	"os"

	flag "github.com/opencoff/pflag"
	"github.com/sirupsen/logrus"
)

func main() {
	var cache int
	var delim string
	var verbose bool

	usage := fmt.Sprintf("%s [options] [INPUT ...]", os.Args[0])

	flag.IntVarP(&cache, "cache", "c", 128, "Cache upto `N` parsed operands")
	flag.StringVarP(&delim, "delim", "d", " \t", "Use characters in `S` as field separators")
	flag.BoolVarP(&verbose, "verbose", "v", false, "Show verbose progress messages")
	flag.Usage = func() {
		fmt.Printf("bvcalc - evaluate bitvector expressions\nUsage: %s\n", usage)
		flag.PrintDefaults()
	}

	flag.Parse()
	args := flag.Args()

	log := logrus.New()
	log.Out = os.Stderr
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	c, err := NewCalc(cache, delim, log)
	if err != nil {
		die(log, "can't create calculator: %s", err)
	}

	var total uint64
	if len(args) > 0 {
		for _, f := range args {
			n, bad, err := c.EvalFile(os.Stdout, f)
			if err != nil {
				log.Warnf("can't evaluate %s: %s", f, err)
				total++
				continue
			}

			log.Debugf("+ %s: %d expressions, %d failed", f, n, bad)
			total += bad
		}
	} else {
		n, bad, err := c.EvalStream(os.Stdout, os.Stdin)
		if err != nil {
			die(log, "can't read STDIN: %s", err)
		}

		log.Debugf("+ <STDIN>: %d expressions, %d failed", n, bad)
		total += bad
	}

	hits, misses := c.Stats()
	log.WithFields(logrus.Fields{
		"hits":   hits,
		"misses": misses,
	}).Debug("operand cache")

	if total > 0 {
		os.Exit(1)
	}
}

// die with error
func die(log *logrus.Logger, f string, v ...interface{}) {
	log.Fatalf(f, v...)
}

// vim: ft=go:sw=4:ts=4:noexpandtab:tw=78:
