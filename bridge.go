// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

// Outcome is the result half of an AsyncResult: either a success
// (state, value) pair or a failure Cause, mirroring what the
// interpreter itself produces before a Run* facade projects it into
// something narrower (Either, Validation, a bare value).
type Outcome[E, S, A any] struct {
	Failed bool
	State  S
	Value  A
	Cause  Cause[E]
}

// AsyncResult is what ToAsync delivers on its channel: the Effect's
// accumulated log alongside its Outcome.
type AsyncResult[W, E, S, A any] struct {
	Log     []W
	Outcome Outcome[E, S, A]
}

// ToAsync runs e on its own goroutine and returns a receive-only
// channel that receives exactly one AsyncResult before being closed.
// It is the minimal Go-native adapter for handing a synchronous
// interpreter to a caller built around goroutines and channels, in
// place of a bespoke async/fiber runtime to target. ToAsync must only
// ever be called from outside a running Run — it never invokes the
// interpreter from inside another effect's continuation.
func ToAsync[W, S, R, E, A any](e Effect[W, S, R, E, A], env R, initState S) <-chan AsyncResult[W, E, S, A] {
	out := make(chan AsyncResult[W, E, S, A], 1)
	go func() {
		defer close(out)
		log, result := run(withEnv(e.node, env), initState)
		w := eraseSliceW[W](log)
		if result.cause != nil {
			out <- AsyncResult[W, E, S, A]{Log: w, Outcome: Outcome[E, S, A]{
				Failed: true,
				Cause:  unerase[E](result.cause),
			}}
			return
		}
		out <- AsyncResult[W, E, S, A]{Log: w, Outcome: Outcome[E, S, A]{
			State: result.state.(S),
			Value: result.value.(A),
		}}
	}()
	return out
}
