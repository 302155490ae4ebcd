// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

// AccumulateBoth runs left then right regardless of whether left
// fails, combining their causes with Both when both fail instead
// of letting left's failure short-circuit right. It is a worked
// example of the shape Both exists for, not the start of a
// combinator library — kont stops at the primitive layer, and
// everything past FoldCauseM is left to callers.
func AccumulateBoth[W, S, R, E, A, B any](left Effect[W, S, R, E, A], right Effect[W, S, R, E, B]) Effect[W, S, R, E, struct {
	A A
	B B
}] {
	type pair = struct {
		A A
		B B
	}
	leftEither := FoldCauseM(left,
		func(c Cause[E]) Effect[W, S, R, E, Either[Cause[E], A]] {
			return Succeed[W, S, R, E](Left[Cause[E], A](c))
		},
		func(a A) Effect[W, S, R, E, Either[Cause[E], A]] {
			return Succeed[W, S, R, E](Right[Cause[E], A](a))
		},
	)
	return FlatMap(leftEither, func(la Either[Cause[E], A]) Effect[W, S, R, E, pair] {
		return FoldCauseM(right,
			func(c Cause[E]) Effect[W, S, R, E, pair] {
				if lc, ok := la.GetLeft(); ok {
					return Halt[W, S, R, E, pair](Both(lc, c))
				}
				return Halt[W, S, R, E, pair](c)
			},
			func(b B) Effect[W, S, R, E, pair] {
				if lc, ok := la.GetLeft(); ok {
					return Halt[W, S, R, E, pair](lc)
				}
				a, _ := la.GetRight()
				return Succeed[W, S, R, E](pair{A: a, B: b})
			},
		)
	})
}
