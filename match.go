// Copyright 2013 Julien Schmidt. All rights reserved.
// Mount of this source code is governed by a BSD-style license that can be found
// at https://github.com/julienschmidt/httprouter/blob/master/LICENSE.
//
// The backtracking descent below generalizes httprouter/gin's tree lookup
// with an explicit skipped-node stack, per this package's design notes
// (section 4.3): a static branch taken ahead of an available wildcard
// sibling can be unwound and retried if it dead-ends deeper in the tree.

package triematch

import "strings"

// skippedNode records a point where a static descent was chosen over an
// available wildcard sibling, so the wildcard alternative can be retried if
// the static branch doesn't pan out.
type skippedNode struct {
	n         *node
	path      string
	paramsLen int
}

// At resolves path to the single best-matching value and its parameter
// bindings. See spec section 4.3.
func (t *Tree) At(path string) (any, Params, error) {
	value, params, ok := t.find(path)
	if ok {
		return value, params, nil
	}

	if !t.opts.checkTrailingSlash {
		return nil, nil, ErrNotFound
	}

	if _, _, altOK := t.find(FixTrailingSlash(path)); altOK {
		if strings.HasSuffix(path, "/") {
			return nil, nil, ErrExtraTrailingSlash
		}
		return nil, nil, ErrMissingTrailingSlash
	}

	return nil, nil, ErrNotFound
}

// find walks the tree looking for an exact match of path, with wildcard
// backtracking. ok is false iff no pattern matches.
func (t *Tree) find(path string) (value any, params Params, ok bool) {
	current := t.root
	rem := path
	var skip []skippedNode
	backtracking := false

loop:
	for {
		if !backtracking {
			if len(rem) < len(current.key) || rem[:len(current.key)] != current.key {
				goto backtrack
			}
			rem = rem[len(current.key):]

			if rem == "" {
				if current.isLeaf() {
					return current.value, params, true
				}
				goto backtrack
			}

			first := rem[0]
			if idx := linearSearch(current.childKeys, first); idx >= 0 {
				if current.wildChild {
					skip = append(skip, skippedNode{current, rem, len(params)})
				}
				current = current.children[idx]
				continue loop
			}
		}
		backtracking = false

		if !current.wildChild {
			goto backtrack
		}

		switch wc := current.wildcardChild(); wc.kind {
		case param:
			end := strings.IndexByte(rem, '/')
			if end == 0 {
				goto backtrack
			}
			if end < 0 {
				params = append(params, Param{Key: wc.paramName(), Value: rem})
				if wc.isLeaf() {
					return wc.value, params, true
				}
				goto backtrack
			}
			if len(wc.children) != 1 {
				goto backtrack
			}
			params = append(params, Param{Key: wc.paramName(), Value: rem[:end]})
			current = wc.children[0]
			rem = rem[end:]
			continue loop
		case catchAll:
			params = append(params, Param{Key: wc.paramName(), Value: rem})
			if wc.isLeaf() {
				return wc.value, params, true
			}
			goto backtrack
		}

	backtrack:
		if len(skip) == 0 {
			return nil, nil, false
		}
		last := skip[len(skip)-1]
		skip = skip[:len(skip)-1]
		current = last.n
		rem = last.path
		params = params[:last.paramsLen]
		backtracking = true
		continue loop
	}
}

// UpdateAt replaces the value at the node matched by path, reusing the same
// read-only descent [Tree.At] performs. It reports whether a match was
// found. See the design note on "dual read/mutable access to values".
func (t *Tree) UpdateAt(path string, value any) bool {
	if value == nil {
		panic("triematch: value must not be nil")
	}

	current := t.root
	rem := path
	var skip []skippedNode
	backtracking := false

loop:
	for {
		if !backtracking {
			if len(rem) < len(current.key) || rem[:len(current.key)] != current.key {
				goto backtrack
			}
			rem = rem[len(current.key):]

			if rem == "" {
				if current.isLeaf() {
					current.value = value
					return true
				}
				goto backtrack
			}

			first := rem[0]
			if idx := linearSearch(current.childKeys, first); idx >= 0 {
				if current.wildChild {
					skip = append(skip, skippedNode{current, rem, 0})
				}
				current = current.children[idx]
				continue loop
			}
		}
		backtracking = false

		if !current.wildChild {
			goto backtrack
		}

		switch wc := current.wildcardChild(); wc.kind {
		case param:
			end := strings.IndexByte(rem, '/')
			if end == 0 {
				goto backtrack
			}
			if end < 0 {
				if wc.isLeaf() {
					wc.value = value
					return true
				}
				goto backtrack
			}
			if len(wc.children) != 1 {
				goto backtrack
			}
			current = wc.children[0]
			rem = rem[end:]
			continue loop
		case catchAll:
			if wc.isLeaf() {
				wc.value = value
				return true
			}
			goto backtrack
		}

	backtrack:
		if len(skip) == 0 {
			return false
		}
		last := skip[len(skip)-1]
		skip = skip[:len(skip)-1]
		current = last.n
		rem = last.path
		backtracking = true
		continue loop
	}
}
