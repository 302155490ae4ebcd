// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package kont provides a purely-functional effect algebra in Go: a
// six-channel description of a computation (log, state, environment,
// error, success value) compiled to an immutable instruction tree and
// folded by an explicit-stack trampoline.
//
// # Design Philosophy
//
// kont provides:
//   - A closed set of nine primitive instructions, not an open effect
//     registry — every [Effect] value is one of Succeed, Fail, Modify,
//     Log, Access, Provide, FlatMap, Fold, or Flag.
//   - Defunctionalized representation: instructions are one tagged
//     struct internally, not nine Go types, so the interpreter dispatches
//     on a dense integer switch instead of a type switch.
//   - An explicit four-stack trampoline in place of host recursion —
//     continuations, environments, log scopes, and dynamic flags each
//     get their own stack; normal termination leaves only the root log
//     scope on them.
//
// # Core Type
//
// [Effect] is the public, generic computation type:
//
//	Effect[W, S, R, E, A any]
//
// W is the log element type, S the threaded state, R the read-only
// environment, E the error type, A the success value. An Effect wraps
// one internal instruction node; the interpreter loop itself only ever
// sees erased ([Erased]) payloads, and concrete types are recovered via
// assertion at the boundary of every constructor and run variant.
//
// # Primitive Constructors
//
//   - [Succeed]: Lift a pure value
//   - [Fail]: Fail with a single cause
//   - [Halt]: Fail with an arbitrary [Cause] tree
//   - [Modify]: Read and replace the state in one step
//   - [Get], [Set], [Update]: Modify specializations
//   - [Log]: Append one entry to the log
//   - [Access]: Read the environment
//   - [AccessM]: Read the environment and continue with an [Effect]
//   - [Provide]: Install a replacement environment for a subtree
//   - [FlatMap]: Sequence, threading the success value
//   - [FoldCauseM]: Intercept both success and failure
//   - [Suspend]: Defer construction of an [Effect] until run
//   - [Attempt]: Bridge a Go panic/error boundary into Cause[error]
//
// # Cause Algebra
//
// [Cause] represents possibly-multiple failures as a binary tree:
//
//   - [Single]: One failure
//   - [Then]: Sequential composition (second arose handling the first)
//   - [Both]: Independent, accumulated failures
//   - [Cause.First]: Leftmost leaf
//   - [Cause.ToList]: All leaves, in order
//   - [Equal]: Structural equality over Cause[E], E comparable
//
// # Dynamic Flags
//
// [Flag] installs a dynamically-scoped boolean for a subtree, using the
// same internal fold-frame primitive as [Provide] and [FoldCauseM]:
//
//   - [ClearLogOnError]: Discard the subtree's log on failure instead
//     of merging it into the enclosing scope
//
// # Run Facade
//
//   - [Run]: Execute a provably-infallible Effect (E is [Nothing])
//   - [RunState]: Execute with an initial state, returning (S, A)
//   - [RunEither]: Execute, returning [Either][E, A]
//   - [RunLog]: Execute an infallible Effect, returning ([]W, A)
//   - [RunValidation]: Execute, returning [Validation][W, E, A]
//
// # Either Type
//
// [Either] represents success (Right) or failure (Left) — the shape
// [RunEither] projects a Cause's leftmost leaf into:
//
//   - [Left], [Right]: Constructors
//   - [Either.IsLeft], [Either.IsRight]: Predicates
//   - [Either.GetLeft], [Either.GetRight]: Accessors
//
// # Validation
//
// [Validation] separates a successful (log, value) pair from a failed
// (log, non-empty causes) pair without collapsing the cause tree:
//
//   - [Validation.IsSuccess], [Validation.IsFailure]: Predicates
//   - [Validation.Causes]: Non-empty failure list, or nil on success
//
// # Async Bridge
//
// [ToAsync] runs an [Effect] to completion on its own goroutine and
// delivers the result on a channel — the minimal adapter for handing
// a synchronous interpreter to a caller built around goroutines and
// channels rather than calling Run inline.
//
//   - [ToAsync]: Run asynchronously, return a receive-only result channel
//   - [AsyncResult]: The (log, Outcome) pair delivered on that channel
//
// # Worked Example: AccumulateBoth
//
// [AccumulateBoth] demonstrates the accumulating-failure shape that
// [Both] exists for — two effects run in sequence, and if both
// fail their causes are combined with Both rather than the first
// short-circuiting the second. It is not part of a combinator library;
// kont stops at the primitive layer and this is the one worked example
// kept to exercise that corner of the Cause algebra end to end.
//
// # Example
//
//	e := kont.FlatMap(
//		kont.Access[string, struct{}, int, kont.Nothing](func(r int) int { return r * 2 }),
//		func(x int) kont.Effect[string, struct{}, int, kont.Nothing, int] {
//			return kont.Succeed[string, struct{}, int, kont.Nothing](x + 1)
//		},
//	)
//	value := kont.Run(e, 21)
//	// value == 43
package kont
