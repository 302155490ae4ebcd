// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

// Erased is a type alias for any, marking type-erased intermediate
// values carried by an instr payload. Concrete types are recovered via
// type assertions at the boundary of every constructor and run variant —
// never inside the interpreter loop itself.
type Erased = any

// instr tags. Nine primitives, dispatched by the interpreter's dense
// integer switch rather than a type switch over nine Go types.
const (
	tagSucceed byte = iota
	tagFail
	tagModify
	tagLog
	tagAccess
	tagProvide
	tagFlatMap
	tagFold
	tagFlag
)

// instr is the single defunctionalized representation for all nine
// instruction variants. Which fields of payload are meaningful is
// determined entirely by tag; the interpreter never inspects a payload
// without first checking tag.
type instr struct {
	tag     byte
	payload Erased
}

// flatMapPayload is the payload of a tagFlatMap instr.
type flatMapPayload struct {
	child *instr
	cont  func(Erased) *instr
}

// foldPayload is the payload of a tagFold instr. tagProvide and tagFlag
// carry their own payloads; the interpreter gives their fold frames
// identity onSuccess/onCause handlers.
type foldPayload struct {
	child     *instr
	onSuccess func(Erased) *instr
	onCause   func(*erasedCause) *instr
}

// providePayload is the payload of a tagProvide instr. Provide desugars
// to a fold frame with identity onSuccess/onCause, built by the
// interpreter itself — there is nothing to intercept, only an
// env-stack push/pop to perform around running child.
type providePayload struct {
	env   Erased
	child *instr
}

// flagPayload is the payload of a tagFlag instr. Flag desugars to a
// fold frame with identity onSuccess/onCause, built by the interpreter
// itself — there is nothing to intercept, only a flag-stack push/pop
// (and the generic log-retention check it enables) around running child.
type flagPayload struct {
	value bool
	child *instr
}

// modifyPayload is the payload of a tagModify instr.
type modifyPayload struct {
	f func(Erased) (Erased, Erased) // (state) -> (newState, result)
}

// accessPayload is the payload of a tagAccess instr.
type accessPayload struct {
	f func(Erased) Erased // (env) -> result
}

// erasedCause mirrors Cause[E]'s shape with E erased to Erased, so the
// interpreter can merge, propagate, and pass failures between FoldCauseM
// boundaries that change E without knowing any concrete E.
type erasedCause struct {
	tag         byte
	leaf        Erased
	left, right *erasedCause
}

const (
	erasedSingle byte = iota
	erasedThen
	erasedBoth
)

func eraseCause[E any](c Cause[E]) *erasedCause {
	switch v := c.(type) {
	case singleCause[E]:
		return &erasedCause{tag: erasedSingle, leaf: v.err}
	case thenCause[E]:
		return &erasedCause{tag: erasedThen, left: eraseCause(v.left), right: eraseCause(v.right)}
	case bothCause[E]:
		return &erasedCause{tag: erasedBoth, left: eraseCause(v.left), right: eraseCause(v.right)}
	default:
		panic("kont: unknown Cause variant")
	}
}

func unerase[E any](c *erasedCause) Cause[E] {
	switch c.tag {
	case erasedSingle:
		return Single(c.leaf.(E))
	case erasedThen:
		return Then(unerase[E](c.left), unerase[E](c.right))
	case erasedBoth:
		return Both(unerase[E](c.left), unerase[E](c.right))
	default:
		panic("kont: unknown erasedCause tag")
	}
}
