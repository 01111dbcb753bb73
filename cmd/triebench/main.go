// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

// Command triebench builds a triematch.Tree from a newline-delimited list of
// path patterns, reports any insertion conflicts, and prints a structural
// dump of the resulting tree.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/arvalis/triematch"
	"github.com/arvalis/triematch/debug"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [patterns-file]\n\nReads patterns (one per line) from the given file, or stdin if omitted.\n", os.Args[0])
	}
	verbose := flag.Bool("v", false, "log every successful insertion, not just conflicts")
	flag.Parse()

	var in *os.File
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	} else {
		in = os.Stdin
	}

	logger := debug.DefaultLogger
	tree := triematch.New()

	scanner := bufio.NewScanner(in)
	var inserted, rejected int
	for scanner.Scan() {
		raw := scanner.Text()
		if len(raw) == 0 {
			continue
		}
		pattern := raw

		if err := tree.Insert(pattern, pattern); err != nil {
			rejected++
			var ce *triematch.ConflictError
			if ok := asConflictError(err, &ce); ok {
				debug.Conflict(logger, pattern, ce.With)
			} else {
				debug.Rejected(logger, pattern, err)
			}
			continue
		}

		inserted++
		if *verbose {
			debug.Inserted(logger, pattern, 0)
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	debug.Dump(logger, tree)
	logger.Info("summary", slog.Int("inserted", inserted), slog.Int("rejected", rejected))

	if rejected > 0 {
		os.Exit(1)
	}
}

func asConflictError(err error, target **triematch.ConflictError) bool {
	ce, ok := err.(*triematch.ConflictError)
	if ok {
		*target = ce
	}
	return ok
}
