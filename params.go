// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package triematch

// Param is a single wildcard binding produced by a match. Key and Value both
// borrow from their source: Key borrows from the tree, Value borrows from the
// path that was matched.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered, append-only sequence of [Param] bindings. Insertion
// order follows the order wildcards are encountered along the matched path,
// not lexical order of the names.
type Params []Param

// Get returns the value bound to name, or "" if name was not matched.
func (p Params) Get(name string) string {
	for i := range p {
		if p[i].Key == name {
			return p[i].Value
		}
	}
	return ""
}

// Has reports whether name was bound by the match.
func (p Params) Has(name string) bool {
	for i := range p {
		if p[i].Key == name {
			return true
		}
	}
	return false
}

// ForEach calls fn for every binding in match order. Iteration stops early if
// fn returns false.
func (p Params) ForEach(fn func(key, value string) bool) {
	for i := range p {
		if !fn(p[i].Key, p[i].Value) {
			return
		}
	}
}

// Clone returns a copy of p with its own backing array, so changing an entry
// of the copy leaves p unchanged. The Key and Value strings are shared, not
// copied.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	cloned := make(Params, len(p))
	copy(cloned, p)
	return cloned
}
