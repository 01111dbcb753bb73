// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package debug

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/arvalis/triematch"
	"github.com/arvalis/triematch/internal/slogpretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() (*slog.Logger, *bytes.Buffer, *bytes.Buffer) {
	wo, we := bytes.NewBuffer(nil), bytes.NewBuffer(nil)
	h := &slogpretty.Handler{
		We:  we,
		Wo:  wo,
		Lvl: slog.LevelDebug,
	}
	return slog.New(h), wo, we
}

func TestInserted(t *testing.T) {
	logger, wo, _ := newTestLogger()
	Inserted(logger, "/users/:id", 2)
	assert.Contains(t, wo.String(), "/users/:id")
}

func TestConflict(t *testing.T) {
	logger, _, we := newTestLogger()
	Conflict(logger, "/a/:y", "/a/:x")
	assert.Contains(t, we.String(), "/a/:x")
}

func TestRejected(t *testing.T) {
	logger, _, _ := newTestLogger()
	tr := triematch.New()
	err := tr.Insert("/a/:x:y", "v")
	require.Error(t, err)
	Rejected(logger, "/a/:x:y", err)
}

func TestDump(t *testing.T) {
	logger, wo, _ := newTestLogger()
	tr := triematch.New()
	require.NoError(t, tr.Insert("/a", "A"))
	Dump(logger, tr)
	assert.Contains(t, wo.String(), "root: /a")
}
