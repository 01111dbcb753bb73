// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

// Package debug provides structured, ANSI-colored diagnostic logging for
// triematch.Tree, built around the same slog.Handler pattern the teacher
// library uses for its HTTP access log, repurposed here for insertion
// diagnostics and tree dumps. Lookups are not logged.
package debug

import (
	"log/slog"

	"github.com/arvalis/triematch/internal/slogpretty"
)

// DefaultLogger writes colorized, human-readable records to stderr/stdout
// (errors to stderr, everything else to stdout), mirroring fox's
// slogpretty.DefaultHandler wiring.
var DefaultLogger = slog.New(slogpretty.DefaultHandler)

// Inserted logs a successful Tree.Insert at debug level.
func Inserted(logger *slog.Logger, pattern string, priority uint32) {
	logger.Debug("insert", slog.String("pattern", pattern), slog.Uint64("priority", uint64(priority)))
}

// Conflict logs a failed Tree.Insert caused by a pattern collision.
func Conflict(logger *slog.Logger, pattern, with string) {
	logger.Error("conflict", slog.String("pattern", pattern), slog.String("conflict", with))
}

// Rejected logs a failed Tree.Insert caused by a malformed pattern (not a
// collision): TooManyParams, UnnamedParam, or InvalidCatchAll.
func Rejected(logger *slog.Logger, pattern string, err error) {
	logger.Warn("rejected", slog.String("pattern", pattern), slog.String("error", err.Error()))
}

// Dump pretty-prints the tree's structure.
func Dump(logger *slog.Logger, dump interface{ String() string }) {
	logger.Info(dump.String())
}
