// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mp

import (
	"fmt"
	"reflect"
	"strings"
)

var anyType = reflect.TypeFor[any]()

// Tuple is an ordered, heterogeneous sequence of runtime values whose
// element types are described by a [TupleKind] shape.
// A Tuple passed to [Concat] by value is a named source: its elements are
// copied. See [Move] for the moving form.
type Tuple struct {
	shape List
	vals  []any
}

// NewTuple returns a Tuple of vals whose shape is their dynamic types.
// A nil value is typed any.
func NewTuple(vals ...any) Tuple {
	elems := make([]Elem, len(vals))
	for i, v := range vals {
		if v == nil {
			elems[i] = Type{t: anyType}
			continue
		}
		elems[i] = Type{t: reflect.TypeOf(v)}
	}
	if len(vals) == 0 {
		return Tuple{shape: List{kind: TupleKind}}
	}
	return Tuple{shape: List{kind: TupleKind, elems: elems}, vals: append([]any(nil), vals...)}
}

// Pack returns a Tuple with an explicit shape. The shape may be of any
// kind holding only [Type] elements; it is renamed to [TupleKind].
// Each value must be assignable to its element type; nil is accepted only
// for nilable element types.
func Pack(shape List, vals ...any) (Tuple, error) {
	if shape.Len() != len(vals) {
		return Tuple{}, resolveErr("pack", ErrShapeMismatch, "shape %s holds %d elements, got %d values", shape, shape.Len(), len(vals))
	}
	for i, e := range shape.elems {
		t, ok := e.(Type)
		if !ok || t.t == nil {
			return Tuple{}, resolveErr("pack", ErrDescriptor, "element %d: want Type, got %v", i, e)
		}
		if vals[i] == nil {
			if !nilable(t.t.Kind()) {
				return Tuple{}, resolveErr("pack", ErrDescriptor, "element %d: nil is not a %s", i, t.t)
			}
			continue
		}
		if vt := reflect.TypeOf(vals[i]); !vt.AssignableTo(t.t) {
			return Tuple{}, resolveErr("pack", ErrDescriptor, "element %d: %s is not assignable to %s", i, vt, t.t)
		}
	}
	s, err := Rename(shape, TupleKind)
	if err != nil {
		return Tuple{}, err
	}
	if len(vals) == 0 {
		return Tuple{shape: s}, nil
	}
	return Tuple{shape: s, vals: append([]any(nil), vals...)}, nil
}

func nilable(k reflect.Kind) bool {
	switch k {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}

// Len returns the number of elements of t.
func (t Tuple) Len() int { return len(t.vals) }

// At returns element i. Panics if i is out of range.
func (t Tuple) At(i int) any {
	if i < 0 || i >= len(t.vals) {
		panic("mp: tuple index out of range")
	}
	return t.vals[i]
}

// Shape returns the element-type list of t. It is always of [TupleKind].
func (t Tuple) Shape() List {
	return t.shapeOf()
}

// shapeOf reads only the shape field of t.
func (t *Tuple) shapeOf() List {
	if t.shape.kind.name == "" {
		return List{kind: TupleKind}
	}
	return t.shape
}

// Values returns a copy of the elements of t.
func (t Tuple) Values() []any {
	return append([]any(nil), t.vals...)
}

// Get returns element i of t as a T.
// Reports false if i is out of range or the element is not a T.
func Get[T any](t Tuple, i int) (T, bool) {
	if i < 0 || i >= len(t.vals) {
		var zero T
		return zero, false
	}
	v, ok := t.vals[i].(T)
	return v, ok
}

func (t Tuple) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range t.vals {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteByte(')')
	return b.String()
}

// Copier is implemented by elements that need more than a shallow
// assignment when copied out of a named source. Copy must return a value
// of the receiver's own type.
type Copier interface {
	Copy() any
}

// zeroed returns t's shape with every element reset to its zero value.
func (t Tuple) zeroed() Tuple {
	if len(t.vals) == 0 {
		return t
	}
	vals := make([]any, len(t.vals))
	for i, e := range t.shape.elems {
		vals[i] = reflect.Zero(e.(Type).t).Interface()
	}
	return Tuple{shape: t.shape, vals: vals}
}
