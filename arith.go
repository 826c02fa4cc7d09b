// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mp

import "reflect"

var (
	intType     = reflect.TypeFor[int]()
	int64Type   = reflect.TypeFor[int64]()
	uint64Type  = reflect.TypeFor[uint64]()
	float64Type = reflect.TypeFor[float64]()
)

// Plus sums the values of cs as a left-to-right fold. Plus() is Int(0).
//
// The result type never narrows: if every non-bool operand shares one type
// the sum has that type; bools alone sum to int; otherwise the widest class
// present wins, float64 over int64 over uint64. Bools count as 0 and 1.
// A signed operand mixed with a 64-bit unsigned one gives float64, since
// int64 cannot hold every uint64.
//
// Integer sums wrap on overflow of the result type, as Go's + does:
// Plus(Const(uint8(200)), Const(uint8(100))) is uint8(44).
func Plus(cs ...Constant) Constant {
	rt := plusType(cs)
	switch classOf(rt.Kind()) {
	case classFloat:
		var sum float64
		for _, c := range cs {
			sum += asFloat(c.rv())
		}
		return Constant{v: reflect.ValueOf(sum).Convert(rt).Interface()}
	case classUint:
		var sum uint64
		for _, c := range cs {
			sum += asUint(c.rv())
		}
		return Constant{v: reflect.ValueOf(sum).Convert(rt).Interface()}
	default:
		var sum int64
		for _, c := range cs {
			sum += asInt(c.rv())
		}
		return Constant{v: reflect.ValueOf(sum).Convert(rt).Interface()}
	}
}

func plusType(cs []Constant) reflect.Type {
	var same reflect.Type
	mixed, wideUint := false, false
	top := classBool
	for _, c := range cs {
		t := c.Type()
		cl := classOf(t.Kind())
		if cl == classBool {
			continue
		}
		if same == nil {
			same = t
		} else if same != t {
			mixed = true
		}
		if cl == classUint && t.Size() >= 8 {
			wideUint = true
		}
		top = max(top, cl)
	}
	switch {
	case same == nil:
		return intType
	case !mixed:
		return same
	case top == classFloat:
		return float64Type
	case top == classInt && wideUint:
		return float64Type
	case top == classInt:
		return int64Type
	default:
		return uint64Type
	}
}

func asInt(v reflect.Value) int64 {
	switch {
	case v.Kind() == reflect.Bool:
		if v.Bool() {
			return 1
		}
		return 0
	case v.CanUint():
		// narrower than 64 bits; plusType routes wider ones to float64
		return int64(v.Uint())
	default:
		return v.Int()
	}
}

func asUint(v reflect.Value) uint64 {
	if v.Kind() == reflect.Bool {
		if v.Bool() {
			return 1
		}
		return 0
	}
	return v.Uint()
}

func asFloat(v reflect.Value) float64 {
	switch {
	case v.Kind() == reflect.Bool:
		if v.Bool() {
			return 1
		}
		return 0
	case v.CanInt():
		return float64(v.Int())
	case v.CanUint():
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

// Count returns the number of elements of l equal to v, computed as Plus
// over the 0/1 indicator list Transform(IsSameAs(v), l).
func Count(l List, v Elem) Constant {
	// unary over one list with a total predicate; cannot fail
	ind, _ := Transform(IsSameAs(v), l)
	return plusElems(ind.elems)
}

// CountIf returns the number of elements of l for which p yields a true
// Constant, computed as Plus over Transform(p, l).
// Fails with [ErrDescriptor] if p yields anything but a Constant.
func CountIf(l List, p Func) (Constant, error) {
	ind, err := Transform(p, l)
	if err != nil {
		return Constant{}, wrapOp("count_if", err)
	}
	cs, err := constants("count_if", ind.elems)
	if err != nil {
		return Constant{}, err
	}
	return Plus(cs...), nil
}

// Contains reports whether l holds an element equal to v.
// It tallies the full Count rather than stopping at the first match.
func Contains(l List, v Elem) Constant {
	return Bool(Count(l, v).Int() != 0)
}

// plusElems folds Constants known to be valid.
func plusElems(elems []Elem) Constant {
	cs := make([]Constant, len(elems))
	for i, e := range elems {
		cs[i] = e.(Constant)
	}
	return Plus(cs...)
}
