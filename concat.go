// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mp

// Concat concatenates the element sequences of args into one tuple.
//
// Concatenation runs in two stages. Shape resolution derives the output
// shape and index map from the input shapes only, reusing a cached [Plan]
// when one exists. Materialization then fills output position k from
// element Inner[k] of input Outer[k], copying from named sources and
// moving from [Moved] ones.
//
// Every failure is reported before any element is read or moved.
// Concat() is the empty tuple; Concat(t) is an element-wise copy of t.
func (r *Resolver) Concat(args ...Arg) (Tuple, error) {
	srcs := make([]*Tuple, len(args))
	shapes := make([]List, len(args))
	moved := make([]*Moved, 0, len(args))
	for i, a := range args {
		if a == nil {
			return Tuple{}, resolveErr("concat", ErrDescriptor, "argument %d is nil", i)
		}
		if m, ok := a.(*Moved); ok {
			if m.Consumed() {
				return Tuple{}, resolveErr("concat", ErrMovedTwice, "argument %d", i)
			}
			for _, prev := range moved {
				if prev == m || prev.t == m.t {
					return Tuple{}, resolveErr("concat", ErrShapeMismatch, "argument %d: tuple moved twice in one call", i)
				}
			}
			moved = append(moved, m)
		}
		srcs[i] = a.source()
		shapes[i] = srcs[i].shapeOf()
	}

	p, err := r.Resolve(shapes...)
	if err != nil {
		return Tuple{}, err
	}

	// claim every move source before touching data
	for j, m := range moved {
		if !m.acquire() {
			for _, c := range moved[:j] {
				c.unclaim()
			}
			return Tuple{}, &ResolveError{Op: "concat", Err: ErrMovedTwice}
		}
	}

	out := p.materialize(args, srcs)
	for _, m := range moved {
		m.release()
	}
	return out, nil
}

// materialize performs exactly p.Len() element accesses, one per output position.
func (p *Plan) materialize(args []Arg, srcs []*Tuple) Tuple {
	if p.Len() == 0 {
		return Tuple{shape: p.Result}
	}
	vals := make([]any, p.Len())
	for k := range vals {
		o, i := p.outer[k], p.inner[k]
		vals[k] = args[o].take(srcs[o], i)
	}
	return Tuple{shape: p.Result, vals: vals}
}
