// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

// logBuilder accumulates one scope's log entries, to be merged into
// (or discarded from) the scope below it when that scope's fold frame
// resolves.
type logBuilder struct {
	entries []Erased
}

// contEntry is one frame of the continuation stack. Plain frames (from
// FlatMap) are skipped silently during failure unwind, per the
// unwind protocol. Fold frames (from FoldCauseM, Provide, and Flag)
// stop the unwind, resolve a log merge-or-discard decision, restore
// state to the snapshot taken at fold entry, and hand control to
// onCause.
type contEntry struct {
	isFold bool

	plainCont func(Erased) *instr

	onSuccess  func(Erased) *instr
	onCause    func(*erasedCause) *instr
	savedState Erased

	hasEnv  bool
	hasFlag bool
}

// machine holds the four explicit stacks the interpreter threads in
// place of host recursion: continuations, environments, per-scope log
// builders, and dynamically-scoped flags. At normal termination the
// continuation, environment and flag stacks are empty and the log stack
// holds only its root builder (invariant I2).
type machine struct {
	contStack []contEntry
	envStack  []Erased
	logStack  []*logBuilder
	flagStack []bool
}

func identitySuccess(v Erased) *instr {
	return &instr{tag: tagSucceed, payload: v}
}

func identityFail(c *erasedCause) *instr {
	return &instr{tag: tagFail, payload: c}
}

// pushFoldFrame pushes a new log scope and a fold-shaped continuation
// frame. It is the one primitive shared by FoldCauseM, Provide, and
// Flag — Provide additionally pushes envStack, Flag additionally
// pushes flagStack, plain Fold pushes neither.
func (m *machine) pushFoldFrame(onSuccess func(Erased) *instr, onCause func(*erasedCause) *instr, savedState Erased, hasEnv, hasFlag bool) {
	m.logStack = append(m.logStack, &logBuilder{})
	m.contStack = append(m.contStack, contEntry{
		isFold:     true,
		onSuccess:  onSuccess,
		onCause:    onCause,
		savedState: savedState,
		hasEnv:     hasEnv,
		hasFlag:    hasFlag,
	})
}

func (m *machine) topEnv() Erased {
	if len(m.envStack) == 0 {
		return nil
	}
	return m.envStack[len(m.envStack)-1]
}

func (m *machine) topLog() *logBuilder {
	return m.logStack[len(m.logStack)-1]
}

// clearLogOnError reports whether the nearest dynamically-enclosing
// Flag(ClearLogOnError, ...) scope is currently set to true. ClearLogOnError
// is dynamically scoped: it governs the failure-path log retention of
// every fold frame resolving within it, not only the Flag frame itself.
func (m *machine) clearLogOnError() bool {
	return len(m.flagStack) > 0 && m.flagStack[len(m.flagStack)-1]
}

// interpResult is the erased outcome of running an instr tree to
// completion: either a success (state, value) pair or a failure cause.
type interpResult struct {
	state Erased
	value Erased
	cause *erasedCause
}

// run folds root to completion, threading state through Modify/Get/Set
// and merging per-scope logs according to the success-always-merges,
// failure-merges-unless-ClearLogOnError protocol. It is the sole entry
// point every Run* facade function funnels through.
func run(root *instr, initState Erased) ([]Erased, interpResult) {
	m := &machine{logStack: []*logBuilder{{}}}
	state := initState
	cur := root
	var val Erased

	for {
		if cur != nil {
			switch cur.tag {
			case tagSucceed:
				val = cur.payload
				cur = nil

			case tagFail:
				cause := cur.payload.(*erasedCause)
				next, done, result := m.unwind(cause, &state)
				if done {
					return m.topLog().entries, result
				}
				cur = next
				continue

			case tagModify:
				p := cur.payload.(modifyPayload)
				newState, res := p.f(state)
				state = newState
				val = res
				cur = nil

			case tagLog:
				m.topLog().entries = append(m.topLog().entries, cur.payload)
				val = nil
				cur = nil

			case tagAccess:
				p := cur.payload.(accessPayload)
				val = p.f(m.topEnv())
				cur = nil

			case tagFlatMap:
				p := cur.payload.(flatMapPayload)
				switch {
				case p.child.tag == tagSucceed:
					cur = p.cont(p.child.payload)
					continue
				case p.child.tag == tagModify:
					mp := p.child.payload.(modifyPayload)
					newState, res := mp.f(state)
					state = newState
					cur = p.cont(res)
					continue
				default:
					m.contStack = append(m.contStack, contEntry{isFold: false, plainCont: p.cont})
					cur = p.child
					continue
				}

			case tagFold:
				p := cur.payload.(foldPayload)
				m.pushFoldFrame(p.onSuccess, p.onCause, state, false, false)
				cur = p.child
				continue

			case tagProvide:
				p := cur.payload.(providePayload)
				m.envStack = append(m.envStack, p.env)
				m.pushFoldFrame(identitySuccess, identityFail, state, true, false)
				cur = p.child
				continue

			case tagFlag:
				p := cur.payload.(flagPayload)
				m.flagStack = append(m.flagStack, p.value)
				m.pushFoldFrame(identitySuccess, identityFail, state, false, true)
				cur = p.child
				continue
			}
		}

		if cur == nil {
			if len(m.contStack) == 0 {
				return m.topLog().entries, interpResult{state: state, value: val}
			}
			entry := m.contStack[len(m.contStack)-1]
			m.contStack = m.contStack[:len(m.contStack)-1]

			if !entry.isFold {
				cur = entry.plainCont(val)
				continue
			}

			inner := m.logStack[len(m.logStack)-1]
			m.logStack = m.logStack[:len(m.logStack)-1]
			m.topLog().entries = append(m.topLog().entries, inner.entries...)
			if entry.hasEnv {
				m.envStack = m.envStack[:len(m.envStack)-1]
			}
			if entry.hasFlag {
				m.flagStack = m.flagStack[:len(m.flagStack)-1]
			}
			cur = entry.onSuccess(val)
			continue
		}
	}
}

// unwind pops contStack on a failure, skipping plain frames silently
// and stopping at the first fold frame (or the bottom of the stack).
// *state is restored to the snapshot taken at that fold frame's entry
// before control passes to onCause — per spec, a handler always sees
// the state as it was when its scope began, never a partial mutation
// from the failed subtree.
func (m *machine) unwind(cause *erasedCause, state *Erased) (next *instr, done bool, result interpResult) {
	for {
		if len(m.contStack) == 0 {
			return nil, true, interpResult{state: *state, cause: cause}
		}
		entry := m.contStack[len(m.contStack)-1]
		m.contStack = m.contStack[:len(m.contStack)-1]

		if !entry.isFold {
			continue
		}

		discard := m.clearLogOnError()
		inner := m.logStack[len(m.logStack)-1]
		m.logStack = m.logStack[:len(m.logStack)-1]
		if !discard {
			m.topLog().entries = append(m.topLog().entries, inner.entries...)
		}
		*state = entry.savedState
		if entry.hasEnv {
			m.envStack = m.envStack[:len(m.envStack)-1]
		}
		if entry.hasFlag {
			m.flagStack = m.flagStack[:len(m.flagStack)-1]
		}
		return entry.onCause(cause), false, interpResult{}
	}
}
