// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mp

import "reflect"

// Elem is the interface for element descriptors: the things a [List] holds.
// Implementations are [Type], [Constant] and [List]; the set is closed.
// Dispatch uses type switches, not tags.
type Elem interface {
	String() string
	elem() // unexported marker method
}

// Type is an element descriptor naming an ordinary Go type.
type Type struct {
	t reflect.Type
}

func (Type) elem() {}

// TypeOf returns the descriptor for T. Interface types are kept as-is.
func TypeOf[T any]() Type {
	return Type{t: reflect.TypeFor[T]()}
}

// TypeFor wraps a reflect.Type. Panics if t is nil.
func TypeFor(t reflect.Type) Type {
	if t == nil {
		panic("mp: nil reflect.Type")
	}
	return Type{t: t}
}

// Reflect returns the underlying reflect.Type.
func (t Type) Reflect() reflect.Type {
	if t.t == nil {
		panic("mp: zero Type")
	}
	return t.t
}

func (t Type) String() string {
	if t.t == nil {
		return "<invalid>"
	}
	return t.t.String()
}

// Equal reports structural equality of two descriptors.
// Types compare by identity, Constants by scalar type and value,
// Lists by kind and pairwise element equality.
func Equal(a, b Elem) bool {
	switch x := a.(type) {
	case Type:
		y, ok := b.(Type)
		return ok && x.t == y.t
	case Constant:
		y, ok := b.(Constant)
		return ok && x == y
	case List:
		y, ok := b.(List)
		if !ok || x.Kind() != y.Kind() || len(x.elems) != len(y.elems) {
			return false
		}
		for i := range x.elems {
			if !Equal(x.elems[i], y.elems[i]) {
				return false
			}
		}
		return true
	}
	return false
}
