// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

// Nothing is this package's uninhabited error type, by convention: a
// well-typed program never passes a Nothing value to Fail, since doing
// so requires first producing one. Go's type system cannot enforce
// that statically — Nothing{} is still a legal zero value — so this is
// a documentation-level contract rather than a compiler-checked one,
// the same way a caller is trusted never to call Run on a tree that
// can actually fail.
type Nothing struct{}

// Run executes e, which must be provably infallible by construction
// (E is Nothing), against env and the zero value of S. It panics if a
// Fail somehow still reaches the top — which Nothing makes
// unreachable in practice, but the interpreter itself has no static
// knowledge of that, so the check stays in place as a descriptive
// guard against a packaging bug rather than as expected behavior.
func Run[W, S, R, A any](e Effect[W, S, R, Nothing, A], env R) A {
	var zero S
	_, a := RunState(e, env, zero)
	return a
}

// RunState is Run with an explicit initial state, returning the final
// state alongside the value.
func RunState[W, S, R, A any](e Effect[W, S, R, Nothing, A], env R, initState S) (S, A) {
	log, result := run(withEnv(e.node, env), initState)
	if result.cause != nil {
		panic("kont: Run received a Fail on a tree typed Nothing — this should be unreachable")
	}
	_ = log
	return result.state.(S), result.value.(A)
}

// RunEither executes e and projects any failure through Cause.First,
// collapsing the cause tree to its leftmost leaf.
func RunEither[W, S, R, E, A any](e Effect[W, S, R, E, A], env R, initState S) Either[E, A] {
	_, result := run(withEnv(e.node, env), initState)
	if result.cause != nil {
		return Left[E, A](unerase[E](result.cause).First())
	}
	return Right[E, A](result.value.(A))
}

// RunLog executes an infallible e, returning its accumulated log
// alongside the value.
func RunLog[W, S, R, A any](e Effect[W, S, R, Nothing, A], env R, initState S) ([]W, A) {
	log, result := run(withEnv(e.node, env), initState)
	if result.cause != nil {
		panic("kont: Run received a Fail on a tree typed Nothing — this should be unreachable")
	}
	return eraseSliceW[W](log), result.value.(A)
}

// RunValidation executes e, returning a Validation that keeps log and
// value separate from log and causes rather than collapsing to one
// leaf the way RunEither does.
func RunValidation[W, S, R, E, A any](e Effect[W, S, R, E, A], env R, initState S) Validation[W, E, A] {
	log, result := run(withEnv(e.node, env), initState)
	w := eraseSliceW[W](log)
	if result.cause != nil {
		return Failure[W, E, A](w, unerase[E](result.cause).ToList())
	}
	return Success[W, E, A](w, result.value.(A))
}

// withEnv wraps root in the same Provide machinery used by the public
// Provide constructor, so every Run* entry point can supply the root
// environment without the interpreter needing any separate "initial
// env" concept of its own.
func withEnv(root *instr, env Erased) *instr {
	return &instr{tag: tagProvide, payload: providePayload{env: env, child: root}}
}

func eraseSliceW[W any](log []Erased) []W {
	out := make([]W, len(log))
	for i, w := range log {
		out[i] = w.(W)
	}
	return out
}
