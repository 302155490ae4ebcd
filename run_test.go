// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gavares/zio-prelude"
)

func TestRunStateThreadsStateThroughToEnd(t *testing.T) {
	e := kont.FlatMap(
		kont.Update[string, int, struct{}, kont.Nothing](func(s int) int { return s + 1 }),
		func(struct{}) kont.Effect[string, int, struct{}, kont.Nothing, int] {
			return kont.Get[string, int, struct{}, kont.Nothing]()
		},
	)
	s, a := kont.RunState(e, struct{}{}, 9)
	if s != 10 || a != 10 {
		t.Fatalf("RunState() = (%d, %d), want (10, 10)", s, a)
	}
}

func TestRunLogCollectsEntriesInOrder(t *testing.T) {
	e := kont.FlatMap(
		kont.Log[string, struct{}, struct{}, kont.Nothing]("one"),
		func(struct{}) kont.Effect[string, struct{}, struct{}, kont.Nothing, int] {
			return kont.FlatMap(
				kont.Log[string, struct{}, struct{}, kont.Nothing]("two"),
				func(struct{}) kont.Effect[string, struct{}, struct{}, kont.Nothing, int] {
					return kont.Succeed[string, struct{}, struct{}, kont.Nothing](0)
				},
			)
		},
	)
	log, _ := kont.RunLog(e, struct{}{}, struct{}{})
	if diff := cmp.Diff([]string{"one", "two"}, log); diff != "" {
		t.Fatalf("log mismatch:\n%s", diff)
	}
}

func TestRunValidationSuccess(t *testing.T) {
	e := kont.FlatMap(
		kont.Log[string, struct{}, struct{}, string]("hi"),
		func(struct{}) kont.Effect[string, struct{}, struct{}, string, int] {
			return kont.Succeed[string, struct{}, struct{}, string](5)
		},
	)
	v := kont.RunValidation[string, struct{}, struct{}](e, struct{}{}, struct{}{})
	if !v.IsSuccess() {
		t.Fatal("expected success")
	}
	value, ok := v.Value()
	if !ok || value != 5 {
		t.Fatalf("Value() = (%d, %v), want (5, true)", value, ok)
	}
	if diff := cmp.Diff([]string{"hi"}, v.Log()); diff != "" {
		t.Fatalf("log mismatch:\n%s", diff)
	}
}

func TestRunValidationFailureKeepsNonEmptyCauses(t *testing.T) {
	e := kont.Halt[string, struct{}, struct{}, string, int](
		kont.Both(kont.Single("a"), kont.Single("b")),
	)
	v := kont.RunValidation[string, struct{}, struct{}](e, struct{}{}, struct{}{})
	if !v.IsFailure() {
		t.Fatal("expected failure")
	}
	if diff := cmp.Diff([]string{"a", "b"}, v.Causes()); diff != "" {
		t.Fatalf("causes mismatch:\n%s", diff)
	}
}

func TestRunEitherRight(t *testing.T) {
	e := kont.Succeed[string, struct{}, struct{}, string](3)
	either := kont.RunEither[string, struct{}, struct{}](e, struct{}{}, struct{}{})
	if !either.IsRight() {
		t.Fatal("expected Right")
	}
	a, _ := either.GetRight()
	if a != 3 {
		t.Fatalf("GetRight() = %d, want 3", a)
	}
}
