// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mp

// PushFront returns a List of l's kind holding elems, in the order given,
// followed by l's elements.
func PushFront(l List, elems ...Elem) (List, error) {
	out := make([]Elem, 0, len(elems)+len(l.elems))
	out = append(out, elems...)
	out = append(out, l.elems...)
	return l.Kind().make("push_front", out)
}

// Append concatenates lists left to right.
//
//   - Append() is the empty [ListKind] list.
//   - Append(l) is l.
//   - Otherwise Append(l1, l2, l3, …) is Append(Append(l1, l2), l3, …);
//     the result has l1's kind.
//
// Fails with [ErrShapeMismatch] when l1's kind cannot hold the total.
func Append(ls ...List) (List, error) {
	switch len(ls) {
	case 0:
		return List{kind: ListKind}, nil
	case 1:
		return ls[0], nil
	}
	total := 0
	for _, l := range ls {
		total += l.Len()
	}
	k := ls[0].Kind()
	if !k.Accepts(total) {
		return List{}, resolveErr("append", ErrShapeMismatch, "kind %s holds %d elements, got %d", k.name, k.arity, total)
	}
	acc := make([]Elem, 0, total)
	for _, l := range ls {
		acc = append(acc, l.elems...)
	}
	if total == 0 {
		acc = nil
	}
	return List{kind: k, elems: acc}, nil
}

// Fill returns a List of l's kind and length with every element replaced by v.
func Fill(l List, v Elem) List {
	// same kind, same length: cannot fail
	out, _ := Transform(Always(v), l)
	return out
}

// Itoa returns the bare list Int(0), Int(1), …, Int(n-1).
// Itoa(0) is empty; a negative n fails with [ErrRange].
func Itoa(n int) (List, error) {
	if n < 0 {
		return List{}, resolveErr("itoa", ErrRange, "negative length %d", n)
	}
	return FromRange(0, n)
}

// FromRange returns the bare list Int(lo), …, Int(hi-1).
// Fails with [ErrRange] when hi < lo.
func FromRange(lo, hi int) (List, error) {
	if hi < lo {
		return List{}, resolveErr("from_range", ErrRange, "[%d, %d)", lo, hi)
	}
	if hi == lo {
		return List{kind: ListKind}, nil
	}
	out := make([]Elem, hi-lo)
	for i := range out {
		out[i] = Int(lo + i)
	}
	return List{kind: ListKind, elems: out}, nil
}
