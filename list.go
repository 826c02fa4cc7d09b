// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mp

import "strings"

// List is an ordered, immutable, heterogeneous sequence of element
// descriptors tagged with a container [Kind].
// No operation mutates a List; every primitive derives a new one.
// The zero List is the empty bare list.
type List struct {
	kind  Kind
	elems []Elem
}

func (List) elem() {}

// L returns a bare list of elems.
func L(elems ...Elem) List {
	return List{kind: ListKind, elems: cloneElems(elems)}
}

// Tup returns a tuple-kind list of elems.
func Tup(elems ...Elem) List {
	return List{kind: TupleKind, elems: cloneElems(elems)}
}

// Types returns a bare list of the descriptors of ts.
func Types(ts ...Type) List {
	elems := make([]Elem, len(ts))
	for i, t := range ts {
		elems[i] = t
	}
	return List{kind: ListKind, elems: elems}
}

// Kind returns the container kind of l.
func (l List) Kind() Kind {
	if l.kind.name == "" {
		return ListKind
	}
	return l.kind
}

// Len returns the number of elements in l.
func (l List) Len() int { return len(l.elems) }

// At returns element i. Panics if i is out of range.
func (l List) At(i int) Elem {
	if i < 0 || i >= len(l.elems) {
		panic("mp: list index out of range")
	}
	return l.elems[i]
}

// Elems returns a copy of the elements of l.
func (l List) Elems() []Elem {
	return cloneElems(l.elems)
}

func (l List) String() string {
	var b strings.Builder
	b.WriteString(l.Kind().name)
	b.WriteByte('<')
	for i, e := range l.elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteByte('>')
	return b.String()
}

func cloneElems(elems []Elem) []Elem {
	if len(elems) == 0 {
		return nil
	}
	out := make([]Elem, len(elems))
	copy(out, elems)
	return out
}
