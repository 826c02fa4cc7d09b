// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mp

// Transform applies f elementwise across one or more lists of equal length:
// element i of the result is f(ls[0][i], …, ls[k-1][i]).
// The result has the kind of ls[0] and the shared length.
//
// The unary and binary forms are the common cases; any arity is accepted.
// Fails with [ErrArity] when no list is given and with [ErrShapeMismatch]
// when lengths differ. An error from f is reported with its element index.
func Transform(f Func, ls ...List) (List, error) {
	if len(ls) == 0 {
		return List{}, arityErr("transform", 1, 0)
	}
	n := ls[0].Len()
	for j, l := range ls[1:] {
		if l.Len() != n {
			return List{}, resolveErr("transform", ErrShapeMismatch, "list %d has length %d, want %d", j+1, l.Len(), n)
		}
	}
	if n == 0 {
		return ls[0].Kind().make("transform", nil)
	}
	out := make([]Elem, n)
	for i := range n {
		args := make([]Elem, len(ls))
		for j, l := range ls {
			args[j] = l.elems[i]
		}
		e, err := f(args...)
		if err != nil {
			return List{}, wrapAt("transform", i, err)
		}
		if e == nil {
			return List{}, resolveErr("transform", ErrDescriptor, "element %d: meta-function returned nil", i)
		}
		out[i] = e
	}
	return ls[0].Kind().make("transform", out)
}
