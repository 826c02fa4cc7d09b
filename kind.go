// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mp

// Variadic is the arity of a kind that accepts any number of elements.
const Variadic = -1

// Kind is a container kind: the generic shape a [List] packages its
// elements in, independent of the elements themselves.
// Kinds are identified by name and arity.
type Kind struct {
	name  string
	arity int
}

// Predefined container kinds.
var (
	// ListKind is the bare type-list kind and the default for Append().
	ListKind = Kind{name: "list", arity: Variadic}

	// TupleKind is the kind of tuple shapes and of concatenation results.
	TupleKind = Kind{name: "tuple", arity: Variadic}

	// PairKind holds exactly two elements.
	PairKind = Kind{name: "pair", arity: 2}
)

// NewKind declares a container kind. arity is [Variadic] or a fixed count.
func NewKind(name string, arity int) Kind {
	if arity < Variadic {
		panic("mp: invalid kind arity")
	}
	return Kind{name: name, arity: arity}
}

// Name returns the kind's name.
func (k Kind) Name() string { return k.name }

// Arity returns the fixed arity of k, or [Variadic].
func (k Kind) Arity() int { return k.arity }

// Accepts reports whether k can hold n elements.
func (k Kind) Accepts(n int) bool {
	return k.arity == Variadic || k.arity == n
}

// Make builds a List of kind k. Fails with [ErrShapeMismatch] when k cannot
// hold len(elems) elements.
func (k Kind) Make(elems ...Elem) (List, error) {
	return k.make("make", cloneElems(elems))
}

// Empty returns the canonical empty List of kind k.
func (k Kind) Empty() (List, error) {
	return k.make("empty", nil)
}

// Func exposes k as a meta-function constructing a List of kind k
// from its arguments.
func (k Kind) Func() Func {
	return func(args ...Elem) (Elem, error) {
		return k.Make(args...)
	}
}

func (k Kind) String() string { return k.name }

// make takes ownership of elems.
func (k Kind) make(op string, elems []Elem) (List, error) {
	if k.name == "" {
		panic("mp: zero Kind")
	}
	if !k.Accepts(len(elems)) {
		return List{}, resolveErr(op, ErrShapeMismatch, "kind %s holds %d elements, got %d", k.name, k.arity, len(elems))
	}
	return List{kind: k, elems: elems}, nil
}
