// Copyright 2013 Julien Schmidt. All rights reserved.
// Mount of this source code is governed by a BSD-style license that can be found
// at https://github.com/julienschmidt/httprouter/blob/master/LICENSE.

package triematch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixTrailingSlash(t *testing.T) {
	assert.Equal(t, "/foo/", FixTrailingSlash("/foo"))
	assert.Equal(t, "/foo", FixTrailingSlash("/foo/"))
	assert.Equal(t, "/", FixTrailingSlash(""))
}

func TestFindWildcard(t *testing.T) {
	cases := []struct {
		name     string
		pattern  string
		wildcard string
		start    int
		valid    bool
	}{
		{"no wildcard", "/foo/bar", "", -1, false},
		{"param mid segment", "/users/:id/posts", ":id", 7, true},
		{"param at end", "/users/:id", ":id", 7, true},
		{"catch-all", "/static/*path", "*path", 8, true},
		{"catch-all alone", "*path", "*path", 0, true},
		{"too many params", "/users/:id:name", ":id:name", 7, false},
		{"unnamed param", "/users/:/x", ":", 7, true},
		{"unnamed catch-all", "/static/*", "*", 8, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wildcard, start, valid := findWildcard(tc.pattern)
			assert.Equal(t, tc.wildcard, wildcard)
			assert.Equal(t, tc.start, start)
			assert.Equal(t, tc.valid, valid)
		})
	}
}
