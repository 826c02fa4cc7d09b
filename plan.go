// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mp

// Plan is the resolved shape of a concatenation: the output element-type
// list and the index map that sources every output position.
//
// Entry k of the index map means "output position k comes from input
// Outer[k], local position Inner[k]". A Plan depends only on the input
// shapes, is immutable, and may be shared across goroutines.
type Plan struct {
	// Result is the output shape, of TupleKind.
	Result List

	// Outer and Inner are parallel bare lists of int Constants.
	Outer List
	Inner List

	inputs int
	outer  []int
	inner  []int
	sig    string
}

// Len returns the output length N.
func (p *Plan) Len() int { return len(p.outer) }

// Inputs returns the number of input sequences the plan was resolved for.
func (p *Plan) Inputs() int { return p.inputs }

// Source returns the input index and local position feeding output k.
func (p *Plan) Source(k int) (outer, inner int) {
	return p.outer[k], p.inner[k]
}

// Signature returns the shape signature the plan was resolved for.
func (p *Plan) Signature() string { return p.sig }

// resolve computes a Plan from input shapes alone. It touches no data.
// Every shape element must be a valid [Type]: shapes describe runtime values.
func resolve(shapes []List) (*Plan, error) {
	n := len(shapes)
	elems := make([]Elem, n)
	for i, s := range shapes {
		for j, e := range s.elems {
			if t, ok := e.(Type); !ok || t.t == nil {
				return nil, resolveErr("resolve", ErrDescriptor, "input %d element %d: want Type, got %s", i, j, e)
			}
		}
		elems[i] = s
	}
	typs := List{kind: ListKind, elems: elems}

	// Step 1: the output shape is append(tuple<>, S0, …, Sn-1).
	seed, err := PushFront(typs, List{kind: TupleKind})
	if err != nil {
		return nil, wrapOp("resolve", err)
	}
	res, err := Apply(AppendFunc, seed)
	if err != nil {
		return nil, wrapOp("resolve", err)
	}

	// Step 2: outer_i = fill(S_i, i), inner_i = itoa(size(S_i)); each is
	// renamed to the bare kind so lists of any container kind concatenate.
	seq, err := Itoa(n)
	if err != nil {
		return nil, wrapOp("resolve", err)
	}
	outerLists, err := Transform(FillFunc, typs, seq)
	if err != nil {
		return nil, wrapOp("resolve", err)
	}
	innerLists, err := Transform(Compose(ItoaFunc, SizeFunc), typs)
	if err != nil {
		return nil, wrapOp("resolve", err)
	}
	outer, err := flatten(outerLists)
	if err != nil {
		return nil, err
	}
	inner, err := flatten(innerLists)
	if err != nil {
		return nil, err
	}

	p := &Plan{
		Result: res.(List),
		Outer:  outer,
		Inner:  inner,
		inputs: n,
	}
	if err := p.index(shapes); err != nil {
		return nil, err
	}
	return p, nil
}

// flatten renames each per-input list to the bare kind and appends them.
func flatten(lists List) (List, error) {
	bare, err := Transform(RenameFunc(ListKind), lists)
	if err != nil {
		return List{}, wrapOp("resolve", err)
	}
	seed, err := PushFront(bare, List{kind: ListKind})
	if err != nil {
		return List{}, wrapOp("resolve", err)
	}
	flat, err := Apply(AppendFunc, seed)
	if err != nil {
		return List{}, wrapOp("resolve", err)
	}
	return flat.(List), nil
}

// index checks the index-map invariants and caches the map as ints.
func (p *Plan) index(shapes []List) error {
	total := 0
	for _, s := range shapes {
		total += s.Len()
	}
	if p.Outer.Len() != total || p.Inner.Len() != total || p.Result.Len() != total {
		return resolveErr("resolve", ErrShapeMismatch, "index map has %d/%d entries for %d outputs", p.Outer.Len(), p.Inner.Len(), total)
	}
	p.outer = make([]int, total)
	p.inner = make([]int, total)
	for k := range total {
		o := p.Outer.elems[k].(Constant).Int()
		i := p.Inner.elems[k].(Constant).Int()
		if o < 0 || o >= len(shapes) || i < 0 || i >= shapes[o].Len() {
			return resolveErr("resolve", ErrRange, "index map entry %d = (%d, %d) out of bounds", k, o, i)
		}
		p.outer[k] = o
		p.inner[k] = i
	}
	return nil
}
