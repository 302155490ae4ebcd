// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

// Validation separates a successful (log, value) pair from a failed
// (log, causes) pair without collapsing the cause tree into a single
// leaf the way RunEither's projection through Cause.First does.
type Validation[W, E, A any] struct {
	log     []W
	success bool
	value   A
	causes  []E
}

// Success builds a successful Validation.
func Success[W, E, A any](log []W, value A) Validation[W, E, A] {
	return Validation[W, E, A]{log: log, success: true, value: value}
}

// Failure builds a failed Validation. causes must be non-empty —
// RunValidation only ever builds one from a Cause.ToList(), which is
// non-empty by construction.
func Failure[W, E, A any](log []W, causes []E) Validation[W, E, A] {
	return Validation[W, E, A]{log: log, success: false, causes: causes}
}

// IsSuccess reports whether this Validation holds a value.
func (v Validation[W, E, A]) IsSuccess() bool {
	return v.success
}

// IsFailure reports whether this Validation holds causes.
func (v Validation[W, E, A]) IsFailure() bool {
	return !v.success
}

// Log returns the accumulated log, regardless of outcome.
func (v Validation[W, E, A]) Log() []W {
	return v.log
}

// Value returns the success value and true, or zero and false.
func (v Validation[W, E, A]) Value() (A, bool) {
	if v.success {
		return v.value, true
	}
	var zero A
	return zero, false
}

// Causes returns the non-empty failure list, or nil on success.
func (v Validation[W, E, A]) Causes() []E {
	return v.causes
}
