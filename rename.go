// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mp

// Rename returns l's elements, in order, packaged in kind k.
// Fails with [ErrShapeMismatch] when k cannot hold l.Len() elements,
// e.g. a three-element list renamed to [PairKind].
//
// Rename(Rename(l, k), l.Kind()) is equal to l for any k accepting l.Len().
func Rename(l List, k Kind) (List, error) {
	if l.Kind() == k {
		return l, nil
	}
	return k.make("rename", cloneElems(l.elems))
}

// Size returns the number of elements of l as an int [Constant].
func Size(l List) Constant {
	return Int(len(l.elems))
}

// Length returns the number of its arguments as an int [Constant].
// Size(l) is Length applied to l's elements.
func Length(elems ...Elem) Constant {
	return Int(len(elems))
}

// Apply calls f with the elements of l as its arguments.
// Apply is Rename onto a meta-function rather than onto a kind:
// Apply(k.Func(), l) is Rename(l, k).
func Apply(f Func, l List) (Elem, error) {
	return f(cloneElems(l.elems)...)
}
