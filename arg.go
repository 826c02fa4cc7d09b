// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mp

import (
	"sync/atomic"
)

// Arg is a concatenation input: a source tuple plus the value category
// that decides how its elements are taken.
//
//   - [Tuple]: a named source; elements are copied ([Copier] is honored).
//   - [*Moved]: a temporary source; elements are moved and the source is
//     left holding zero values.
type Arg interface {
	source() *Tuple
	take(t *Tuple, i int) any
	arg() // unexported marker method
}

func (t Tuple) source() *Tuple { return &t }

func (Tuple) take(t *Tuple, i int) any {
	if c, ok := t.vals[i].(Copier); ok {
		return c.Copy()
	}
	return t.vals[i]
}

func (Tuple) arg() {}

// Moved wraps a tuple as a move source with one-shot enforcement.
// A Moved can be consumed by at most one [Concat]; a second attempt fails
// with [ErrMovedTwice] before any element is read.
//
// After a successful concatenation the wrapped tuple keeps its shape but
// every element is reset to the zero value of its type.
type Moved struct {
	used atomic.Uintptr // movedFree, movedClaimed or movedDiscarded
	t    *Tuple
}

const (
	movedFree uintptr = iota
	movedClaimed
	movedDiscarded
)

// Move creates a move source from t. Panics if t is nil.
func Move(t *Tuple) *Moved {
	if t == nil {
		panic("mp: move of nil tuple")
	}
	return &Moved{t: t}
}

// Consumed reports whether m has been consumed.
func (m *Moved) Consumed() bool {
	return m.used.Load() != movedFree
}

// Discard marks m as consumed without moving anything.
// The wrapped tuple is left untouched.
func (m *Moved) Discard() {
	m.used.Store(movedDiscarded)
}

// acquire claims m; it reports false if m was already consumed.
func (m *Moved) acquire() bool {
	return m.used.CompareAndSwap(movedFree, movedClaimed)
}

// unclaim undoes an acquire that did not lead to a move. A Discard that
// landed in between is kept.
func (m *Moved) unclaim() {
	m.used.CompareAndSwap(movedClaimed, movedFree)
}

// release finishes a move, leaving the source in its moved-from state.
// Only the values are replaced; the shape may be read concurrently by
// callers racing to acquire m.
func (m *Moved) release() {
	m.t.vals = m.t.zeroed().vals
}

func (m *Moved) source() *Tuple { return m.t }

func (*Moved) take(t *Tuple, i int) any { return t.vals[i] }

func (*Moved) arg() {}
