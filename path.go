// Copyright 2013 Julien Schmidt. All rights reserved.
// Mount of this source code is governed by a BSD-style license that can be found
// at https://github.com/julienschmidt/httprouter/blob/master/LICENSE.

package triematch

// FixTrailingSlash ensures a consistent trailing slash handling for a given path.
// If the path has more than one character and ends with a slash, it removes the trailing slash.
// Otherwise, it adds a trailing slash to the path.
func FixTrailingSlash(path string) string {
	if len(path) > 1 && path[len(path)-1] == '/' {
		return path[:len(path)-1]
	}
	return path + "/"
}

// findWildcard scans pattern for the first wildcard token (a run of bytes
// starting with ':' or '*' up to the next '/' or the end of pattern). It
// returns the token (including its leading ':'/'*'), the byte offset it
// starts at, and whether the token is well-formed: a second ':' or '*'
// inside the token's name makes it invalid, but the full span is still
// returned so the caller can report a precise error.
func findWildcard(pattern string) (wildcard string, start int, valid bool) {
	for start, c := range []byte(pattern) {
		if c != ':' && c != '*' {
			continue
		}

		valid = true
		for end, c := range []byte(pattern[start+1:]) {
			switch c {
			case '/':
				return pattern[start : start+1+end], start, valid
			case ':', '*':
				valid = false
			}
		}
		return pattern[start:], start, valid
	}
	return "", -1, false
}
