// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

// Flag installs a dynamically-scoped boolean for child's subtree,
// desugaring to the same fold-frame primitive Provide and FoldCauseM
// use. There is currently one flag identity, ClearLogOnError; Flag
// takes a bool directly rather than a named identity type since a
// second identity has never been needed.
//
// The flag is dynamically scoped: it governs the failure-path log
// retention of every fold frame that resolves while it is active —
// FoldCauseM and Provide frames nested inside child included, not only
// child's own top-level fold frame.
func Flag[W, S, R, E, A any](value bool, child Effect[W, S, R, E, A]) Effect[W, S, R, E, A] {
	return Effect[W, S, R, E, A]{node: &instr{tag: tagFlag, payload: flagPayload{
		value: value,
		child: child.node,
	}}}
}

// ClearLogOnError runs child with its dynamically-enclosing log
// discarded, rather than merged into the enclosing scope, on any
// failure that reaches out of it.
func ClearLogOnError[W, S, R, E, A any](child Effect[W, S, R, E, A]) Effect[W, S, R, E, A] {
	return Flag(true, child)
}
