// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont_test

import (
	"math/rand/v2"
	"testing"

	"github.com/gavares/zio-prelude"
)

const propertyN = 1000

func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

type propEnv struct{}

// TestPropertyFlatMapLeftIdentity: FlatMap(Succeed(a), f) ≡ f(a)
func TestPropertyFlatMapLeftIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		f := func(x int) kont.Effect[string, struct{}, propEnv, kont.Nothing, int] {
			return kont.Succeed[string, struct{}, propEnv, kont.Nothing](x * 3)
		}
		left := kont.Run(kont.FlatMap(kont.Succeed[string, struct{}, propEnv, kont.Nothing](a), f), propEnv{})
		right := kont.Run(f(a), propEnv{})
		if left != right {
			t.Fatalf("left identity: %d != %d (a=%d)", left, right, a)
		}
	}
}

// TestPropertyFlatMapRightIdentity: FlatMap(m, Succeed) ≡ m
func TestPropertyFlatMapRightIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		m := kont.Succeed[string, struct{}, propEnv, kont.Nothing](a)
		left := kont.Run(kont.FlatMap(m, func(x int) kont.Effect[string, struct{}, propEnv, kont.Nothing, int] {
			return kont.Succeed[string, struct{}, propEnv, kont.Nothing](x)
		}), propEnv{})
		right := kont.Run(m, propEnv{})
		if left != right {
			t.Fatalf("right identity: %d != %d (a=%d)", left, right, a)
		}
	}
}

// TestPropertyFlatMapAssociativity: FlatMap(FlatMap(m, f), g) ≡
// FlatMap(m, func(x) FlatMap(f(x), g))
func TestPropertyFlatMapAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		a := randInt(rng)
		m := kont.Succeed[string, struct{}, propEnv, kont.Nothing](a)
		f := func(x int) kont.Effect[string, struct{}, propEnv, kont.Nothing, int] {
			return kont.Succeed[string, struct{}, propEnv, kont.Nothing](x + 3)
		}
		g := func(x int) kont.Effect[string, struct{}, propEnv, kont.Nothing, int] {
			return kont.Succeed[string, struct{}, propEnv, kont.Nothing](x * 2)
		}
		left := kont.Run(kont.FlatMap(kont.FlatMap(m, f), g), propEnv{})
		right := kont.Run(kont.FlatMap(m, func(x int) kont.Effect[string, struct{}, propEnv, kont.Nothing, int] {
			return kont.FlatMap(f(x), g)
		}), propEnv{})
		if left != right {
			t.Fatalf("associativity: %d != %d (a=%d)", left, right, a)
		}
	}
}

// TestPropertyFailShortCircuitsFlatMap: once an Effect fails, no
// downstream FlatMap continuation runs.
func TestPropertyFailShortCircuitsFlatMap(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	for range propertyN {
		a := randInt(rng)
		ran := false
		e := kont.FlatMap(
			kont.Fail[string, struct{}, propEnv, int, int](a),
			func(int) kont.Effect[string, struct{}, propEnv, int, int] {
				ran = true
				return kont.Succeed[string, struct{}, propEnv, int](0)
			},
		)
		either := kont.RunEither[string, struct{}, propEnv](e, propEnv{}, struct{}{})
		if ran {
			t.Fatal("FlatMap continuation ran after a Fail")
		}
		got, ok := either.GetLeft()
		if !ok || got != a {
			t.Fatalf("GetLeft() = (%d, %v), want (%d, true)", got, ok, a)
		}
	}
}

// TestPropertyLogOrderIsPreservedAcrossChains: Log entries appear in
// the order they were recorded, regardless of how many FlatMap links
// separate them.
func TestPropertyLogOrderIsPreservedAcrossChains(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 0))
	for range propertyN / 10 {
		n := rng.IntN(20)
		e := kont.Succeed[int, struct{}, propEnv, kont.Nothing](struct{}{})
		var effect kont.Effect[int, struct{}, propEnv, kont.Nothing, struct{}]
		effect = e
		for i := 0; i < n; i++ {
			i := i
			effect = kont.FlatMap(effect, func(struct{}) kont.Effect[int, struct{}, propEnv, kont.Nothing, struct{}] {
				return kont.Log[int, struct{}, propEnv, kont.Nothing](i)
			})
		}
		log, _ := kont.RunLog(effect, propEnv{}, struct{}{})
		if len(log) != n {
			t.Fatalf("len(log) = %d, want %d", len(log), n)
		}
		for i, w := range log {
			if w != i {
				t.Fatalf("log[%d] = %d, want %d", i, w, i)
			}
		}
	}
}
