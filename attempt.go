// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

import (
	"fmt"
	"runtime"
)

// Attempt runs thunk and bridges Go's native panic/error world into
// Cause[error]. A panic carrying a value that implements
// runtime.Error — the language's own proxy for "this is a fatal host
// fault, not an ordinary error" — is re-panicked rather than caught:
// Go's true unrecoverable runtime aborts bypass recover entirely
// regardless, so this check only ever catches the recoverable subset
// that runtime.Error covers.
//
// Attempt is the only place in the package that talks to recover; the
// interpreter itself never recovers from a panic inside a Modify,
// Access, FlatMap continuation, or FoldCauseM handler — those escape
// the run uncaught, same as any other Go function call would.
//
// thunk does not run when Attempt is called — like every other
// constructor, Attempt only builds an instruction. It runs once per
// pass through this point in the tree when the interpreter actually
// reaches it, so running the same Effect value twice calls thunk
// twice.
func Attempt[W, S, R, A any](thunk func() (A, error)) Effect[W, S, R, error, A] {
	return Suspend(func() Effect[W, S, R, error, A] {
		a, err, recovered := callProtected(thunk)
		if recovered != nil {
			return Fail[W, S, R, error, A](recovered)
		}
		if err != nil {
			return Fail[W, S, R, error, A](err)
		}
		return Succeed[W, S, R, error, A](a)
	})
}

func callProtected[A any](thunk func() (A, error)) (a A, err error, recovered error) {
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(runtime.Error); ok {
				panic(re)
			}
			if e, ok := r.(error); ok {
				recovered = e
				return
			}
			recovered = &panicError{value: r}
		}
	}()
	a, err = thunk()
	return a, err, nil
}

// panicError wraps a non-error value recovered from a panic so
// Attempt can still produce a Cause[error].
type panicError struct {
	value any
}

func (p *panicError) Error() string {
	if s, ok := p.value.(string); ok {
		return s
	}
	return fmt.Sprintf("kont: recovered panic: %v", p.value)
}
