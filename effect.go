// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

// Effect describes a computation with six channels: a log of W
// entries, state S threaded in and out, a read-only environment R, a
// failure channel E, and a success value A. An Effect value is
// immutable data — nothing runs until it is passed to Run or one of
// its siblings.
type Effect[W, S, R, E, A any] struct {
	node *instr
}

// Succeed lifts a pure value into an Effect that cannot fail on its
// own and does not touch state, environment, or log.
func Succeed[W, S, R, E, A any](a A) Effect[W, S, R, E, A] {
	return Effect[W, S, R, E, A]{node: &instr{tag: tagSucceed, payload: a}}
}

// Fail aborts with a single cause.
func Fail[W, S, R, E, A any](err E) Effect[W, S, R, E, A] {
	return Halt[W, S, R, E, A](Single(err))
}

// Halt aborts with an arbitrary cause tree, preserving its shape for
// whatever FoldCauseM handler eventually intercepts it.
func Halt[W, S, R, E, A any](cause Cause[E]) Effect[W, S, R, E, A] {
	return Effect[W, S, R, E, A]{node: &instr{tag: tagFail, payload: eraseCause(cause)}}
}

// Modify reads the current state and replaces it in one step, also
// producing a success value derived from the old state.
func Modify[W, S, R, E, A any](f func(S) (S, A)) Effect[W, S, R, E, A] {
	return Effect[W, S, R, E, A]{node: &instr{tag: tagModify, payload: modifyPayload{
		f: func(s Erased) (Erased, Erased) {
			newS, a := f(s.(S))
			return newS, a
		},
	}}}
}

// Get reads the current state as the success value, leaving it
// unchanged.
func Get[W, S, R, E any]() Effect[W, S, R, E, S] {
	return Modify[W, S, R, E](func(s S) (S, S) { return s, s })
}

// Set replaces the state unconditionally, succeeding with struct{}{}.
func Set[W, S, R, E any](s S) Effect[W, S, R, E, struct{}] {
	return Modify[W, S, R, E](func(S) (S, struct{}) { return s, struct{}{} })
}

// Update replaces the state with f applied to the old state,
// succeeding with struct{}{}.
func Update[W, S, R, E any](f func(S) S) Effect[W, S, R, E, struct{}] {
	return Modify[W, S, R, E](func(s S) (S, struct{}) { return f(s), struct{}{} })
}

// Log appends one entry to the innermost log scope.
func Log[W, S, R, E any](w W) Effect[W, S, R, E, struct{}] {
	return Effect[W, S, R, E, struct{}]{node: &instr{tag: tagLog, payload: w}}
}

// Access reads the environment through a pure projection.
func Access[W, S, R, E, A any](f func(R) A) Effect[W, S, R, E, A] {
	return Effect[W, S, R, E, A]{node: &instr{tag: tagAccess, payload: accessPayload{
		f: func(r Erased) Erased { return f(r.(R)) },
	}}}
}

// AccessM reads the environment and continues with an Effect computed
// from it.
func AccessM[W, S, R, E, A any](f func(R) Effect[W, S, R, E, A]) Effect[W, S, R, E, A] {
	return FlatMap(Access[W, S, R, E](func(r R) R { return r }), f)
}

// Provide installs env as the environment for child's subtree,
// restoring whatever environment was in scope before once child
// resolves, on either the success or the failure path.
func Provide[W, S, R, E, A any](env R, child Effect[W, S, R, E, A]) Effect[W, S, R, E, A] {
	return Effect[W, S, R, E, A]{node: &instr{tag: tagProvide, payload: providePayload{
		env:   env,
		child: child.node,
	}}}
}

// FlatMap sequences eff with a continuation that receives its success
// value and produces the next Effect.
func FlatMap[W, S, R, E, A, B any](eff Effect[W, S, R, E, A], k func(A) Effect[W, S, R, E, B]) Effect[W, S, R, E, B] {
	return Effect[W, S, R, E, B]{node: &instr{tag: tagFlatMap, payload: flatMapPayload{
		child: eff.node,
		cont:  func(v Erased) *instr { return k(v.(A)).node },
	}}}
}

// FoldCauseM intercepts both the success and the failure path of eff,
// and may change the error and success types. The error channel this
// Effect reports failures on (E2) need not be the same as eff's (E) —
// onCause has already converted.
func FoldCauseM[W, S, R, E, A, E2, B any](eff Effect[W, S, R, E, A], onCause func(Cause[E]) Effect[W, S, R, E2, B], onSuccess func(A) Effect[W, S, R, E2, B]) Effect[W, S, R, E2, B] {
	return Effect[W, S, R, E2, B]{node: &instr{tag: tagFold, payload: foldPayload{
		child:     eff.node,
		onSuccess: func(v Erased) *instr { return onSuccess(v.(A)).node },
		onCause:   func(c *erasedCause) *instr { return onCause(unerase[E](c)).node },
	}}}
}

// Suspend defers constructing the returned Effect until the
// interpreter actually reaches this point, which is what makes
// self-referential, recursively-defined Effects possible without
// overflowing the Go call stack at construction time.
func Suspend[W, S, R, E, A any](thunk func() Effect[W, S, R, E, A]) Effect[W, S, R, E, A] {
	return FlatMap(Succeed[W, S, R, E](struct{}{}), func(struct{}) Effect[W, S, R, E, A] {
		return thunk()
	})
}
