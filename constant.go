// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mp

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of value types a [Constant] can carry.
type Scalar interface {
	constraints.Integer | constraints.Float | ~bool
}

// Constant is an element descriptor carrying one resolved scalar value.
// Constants let counts, indices and predicate results flow through the
// same operations as types.
//
// Constant is comparable: two Constants are == exactly when both their
// scalar type and scalar value match. The zero Constant is invalid.
type Constant struct {
	v any
}

func (Constant) elem() {}

// Const wraps v as a Constant of type T.
func Const[T Scalar](v T) Constant {
	return Constant{v: v}
}

// Int returns the int Constant v. Sizes and indices are int Constants.
func Int(v int) Constant { return Constant{v: v} }

// Bool returns the bool Constant v.
func Bool(v bool) Constant { return Constant{v: v} }

// Predefined boolean Constants.
var (
	True  = Bool(true)
	False = Bool(false)
)

// Type returns the scalar type of c.
func (c Constant) Type() reflect.Type {
	if c.v == nil {
		panic("mp: zero Constant")
	}
	return reflect.TypeOf(c.v)
}

// Value returns the scalar value of c with its own dynamic type.
func (c Constant) Value() any { return c.v }

// Int returns the value of c as an int. Bools map to 0 and 1; floats
// truncate toward zero, and unsigned values above math.MaxInt wrap as in a
// Go conversion. Int is lossy; operations that need an exact length reject
// such Constants instead of calling it.
func (c Constant) Int() int {
	rv := c.rv()
	switch {
	case rv.Kind() == reflect.Bool:
		if rv.Bool() {
			return 1
		}
		return 0
	case rv.CanInt():
		return int(rv.Int())
	case rv.CanUint():
		return int(rv.Uint())
	default:
		return int(rv.Float())
	}
}

// Bool reports whether c is non-zero.
func (c Constant) Bool() bool {
	rv := c.rv()
	if rv.Kind() == reflect.Bool {
		return rv.Bool()
	}
	return !rv.IsZero()
}

func (c Constant) String() string {
	if c.v == nil {
		return "<invalid>"
	}
	return fmt.Sprintf("%s(%v)", reflect.TypeOf(c.v), c.v)
}

func (c Constant) rv() reflect.Value {
	if c.v == nil {
		panic("mp: zero Constant")
	}
	return reflect.ValueOf(c.v)
}

// class orders scalar categories for result-type selection in Plus.
type class int

const (
	classBool class = iota
	classUint
	classInt
	classFloat
)

func classOf(k reflect.Kind) class {
	switch k {
	case reflect.Bool:
		return classBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return classInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return classUint
	default:
		return classFloat
	}
}
