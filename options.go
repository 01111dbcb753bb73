// Copyright 2022 Sylvain Müller. All rights reserved.
// Mount of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/tigerwill90/fox/blob/master/LICENSE.txt.

package triematch

// treeOptions holds a Tree's configuration, set once at construction time
// via New's variadic Option arguments.
type treeOptions struct {
	checkTrailingSlash bool
}

func defaultTreeOptions() treeOptions {
	return treeOptions{
		checkTrailingSlash: true,
	}
}

// Option configures a Tree at construction time.
type Option interface {
	apply(*treeOptions)
}

type optionFunc func(*treeOptions)

func (f optionFunc) apply(o *treeOptions) {
	f(o)
}

// WithTrailingSlashCheck toggles whether [Tree.At] probes for a trailing-
// slash variant of the path on a miss, to distinguish [ErrNotFound] from
// [ErrMissingTrailingSlash]/[ErrExtraTrailingSlash]. Enabled by default;
// disabling it skips the extra probe walk on every miss, at the cost of
// always reporting a bare ErrNotFound.
func WithTrailingSlashCheck(enabled bool) Option {
	return optionFunc(func(o *treeOptions) {
		o.checkTrailingSlash = enabled
	})
}
