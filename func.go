// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mp

import (
	"math"
	"reflect"
)

// Func is a meta-function: a deterministic, side-effect-free operation that
// maps element descriptors to a new element descriptor.
// Predicates are Funcs returning a boolean [Constant].
type Func func(args ...Elem) (Elem, error)

// Always returns a Func that ignores its arguments and yields v.
func Always(v Elem) Func {
	return func(...Elem) (Elem, error) { return v, nil }
}

// Compose returns the Func x ↦ f(g(x...)).
func Compose(f, g Func) Func {
	return func(args ...Elem) (Elem, error) {
		e, err := g(args...)
		if err != nil {
			return nil, err
		}
		return f(e)
	}
}

// IsSame is the binary predicate [Equal] lifted to a Func returning Bool.
var IsSame Func = func(args ...Elem) (Elem, error) {
	if len(args) != 2 {
		return nil, arityErr("is_same", 2, len(args))
	}
	return Bool(Equal(args[0], args[1])), nil
}

// IsSameAs returns the unary predicate "equal to v".
func IsSameAs(v Elem) Func {
	return func(args ...Elem) (Elem, error) {
		if len(args) != 1 {
			return nil, arityErr("is_same", 1, len(args))
		}
		return Bool(Equal(args[0], v)), nil
	}
}

// IsIntegral reports whether a [Type] has an integer kind.
var IsIntegral Func = func(args ...Elem) (Elem, error) {
	t, err := unaryType("is_integral", args)
	if err != nil {
		return nil, err
	}
	c := classOf(t.Kind())
	return Bool(c == classBool || c == classInt || c == classUint), nil
}

// AddPointer maps a [Type] T to *T.
var AddPointer Func = func(args ...Elem) (Elem, error) {
	t, err := unaryType("add_pointer", args)
	if err != nil {
		return nil, err
	}
	return Type{t: reflect.PointerTo(t)}, nil
}

// SliceOf maps a [Type] T to []T.
var SliceOf Func = func(args ...Elem) (Elem, error) {
	t, err := unaryType("slice_of", args)
	if err != nil {
		return nil, err
	}
	return Type{t: reflect.SliceOf(t)}, nil
}

// SizeFunc is [Size] as a Func.
var SizeFunc Func = func(args ...Elem) (Elem, error) {
	l, err := unaryList("size", args)
	if err != nil {
		return nil, err
	}
	return Size(l), nil
}

// ItoaFunc is [Itoa] as a Func over an integer [Constant].
// Bool and float lengths, and lengths that overflow int, fail with [ErrRange].
var ItoaFunc Func = func(args ...Elem) (Elem, error) {
	if len(args) != 1 {
		return nil, arityErr("itoa", 1, len(args))
	}
	cs, err := constants("itoa", args)
	if err != nil {
		return nil, err
	}
	n, err := length("itoa", cs[0])
	if err != nil {
		return nil, err
	}
	return Itoa(n)
}

// FillFunc is [Fill] as a binary Func (list, value).
var FillFunc Func = func(args ...Elem) (Elem, error) {
	if len(args) != 2 {
		return nil, arityErr("fill", 2, len(args))
	}
	l, ok := args[0].(List)
	if !ok {
		return nil, descriptorErr("fill", "List", args[0])
	}
	return Fill(l, args[1]), nil
}

// AppendFunc is [Append] as a variadic Func over Lists.
var AppendFunc Func = func(args ...Elem) (Elem, error) {
	ls := make([]List, len(args))
	for i, a := range args {
		l, ok := a.(List)
		if !ok {
			return nil, descriptorErr("append", "List", a)
		}
		ls[i] = l
	}
	return Append(ls...)
}

// PlusFunc is [Plus] as a variadic Func over Constants.
var PlusFunc Func = func(args ...Elem) (Elem, error) {
	cs, err := constants("plus", args)
	if err != nil {
		return nil, err
	}
	return Plus(cs...), nil
}

// RenameFunc returns [Rename] onto k as a unary Func.
func RenameFunc(k Kind) Func {
	return func(args ...Elem) (Elem, error) {
		l, err := unaryList("rename", args)
		if err != nil {
			return nil, err
		}
		return Rename(l, k)
	}
}

func unaryType(op string, args []Elem) (reflect.Type, error) {
	if len(args) != 1 {
		return nil, arityErr(op, 1, len(args))
	}
	t, ok := args[0].(Type)
	if !ok || t.t == nil {
		return nil, descriptorErr(op, "Type", args[0])
	}
	return t.t, nil
}

func unaryList(op string, args []Elem) (List, error) {
	if len(args) != 1 {
		return List{}, arityErr(op, 1, len(args))
	}
	l, ok := args[0].(List)
	if !ok {
		return List{}, descriptorErr(op, "List", args[0])
	}
	return l, nil
}

func constants(op string, args []Elem) ([]Constant, error) {
	cs := make([]Constant, len(args))
	for i, a := range args {
		c, ok := a.(Constant)
		if !ok || c.v == nil {
			return nil, descriptorErr(op, "Constant", a)
		}
		cs[i] = c
	}
	return cs, nil
}

// length converts an integer Constant to int without truncation or wrap.
func length(op string, c Constant) (int, error) {
	rv := c.rv()
	switch {
	case rv.CanInt():
		if n := rv.Int(); int64(int(n)) == n {
			return int(n), nil
		}
	case rv.CanUint():
		if u := rv.Uint(); u <= math.MaxInt {
			return int(u), nil
		}
	default:
		return 0, resolveErr(op, ErrRange, "length %s is not an integer", c)
	}
	return 0, resolveErr(op, ErrRange, "length %s overflows int", c)
}

func arityErr(op string, want, got int) error {
	return resolveErr(op, ErrArity, "want %d, got %d", want, got)
}

func descriptorErr(op, want string, got Elem) error {
	if got == nil {
		return resolveErr(op, ErrDescriptor, "want %s, got nil", want)
	}
	return resolveErr(op, ErrDescriptor, "want %s, got %s", want, got)
}
