// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mp provides an algebra of type-list operations and, built from it,
// arbitrary-arity concatenation of heterogeneous tuples.
//
// The central type [List] is an ordered, immutable sequence of element
// descriptors tagged with a container [Kind]. Descriptors are ordinary types
// ([Type]), resolved scalars ([Constant]), or nested lists. Constants let
// sizes, indices and predicate results flow through the same operations as
// types.
//
// # Design Philosophy
//
// mp provides:
//   - Small composable primitives: every result is a valid input to every
//     other operation expecting a List, a Constant or a [Func]
//   - Two explicit stages for concatenation: pure shape resolution, memoized
//     by shape signature, followed by data movement
//   - Resolution-time failure only: shape errors are detected from shapes
//     alone and never during materialization
//
// # Descriptors
//
//   - [Type], [TypeOf], [TypeFor]: Ordinary Go types
//   - [Constant], [Const], [Int], [Bool], [True], [False]: Resolved scalars
//   - [Equal]: Structural equality of descriptors
//
// # Lists and Container Kinds
//
//   - [Kind]: Generic shape of a list; [ListKind], [TupleKind], [PairKind], [NewKind]
//   - [Kind.Make], [Kind.Empty]: Construct a list of a kind
//   - [Kind.Func]: A kind used as a meta-function
//   - [L], [Tup], [Types]: Shorthand constructors
//   - [Rename]: Repackage a list's elements in another kind
//   - [Size], [Length]: Element counts as Constants
//   - [Apply]: Call a meta-function with a list's elements
//
// # Meta-functions
//
// A [Func] maps descriptors to a descriptor. Built-ins:
//
//   - [Always], [Compose]: Combinators
//   - [IsSame], [IsSameAs], [IsIntegral]: Predicates
//   - [AddPointer], [SliceOf]: Type constructors
//   - [SizeFunc], [ItoaFunc], [FillFunc], [AppendFunc], [PlusFunc], [RenameFunc]:
//     Primitives lifted to Funcs
//
// # Arithmetic and Predicates
//
//   - [Plus]: Fold-sum of Constants; Plus() is Int(0)
//   - [Count]: Occurrences of a descriptor
//   - [CountIf]: Elements satisfying a predicate
//   - [Contains]: Count(l, v) != 0
//
// # Structural Primitives
//
//   - [PushFront]: Prepend elements
//   - [Append]: Variadic concatenation; Append() is the empty bare list
//   - [Fill]: Replace every element with one value
//   - [Itoa], [FromRange]: Integer ranges as lists of Constants
//   - [Transform]: Elementwise application across equal-length lists
//
// # Tuple Concatenation
//
//   - [Tuple], [NewTuple], [Pack], [Get]: Runtime heterogeneous sequences
//   - [Arg]: Concatenation input; a Tuple is copied, a [Moved] is moved
//   - [Move]: One-shot move source; the tuple is left holding zero values
//   - [Copier]: Elements needing a deep copy from named sources
//   - [Plan]: Output shape plus the Outer/Inner index map
//   - [Resolve], [Concat]: Package-level entry points
//   - [Resolver]: Plan cache with [WithLogger], [WithCacheLimit], [WithoutCache]
//
// For inputs S0, …, Sn-1 the output shape is Append(tuple<>, S0, …, Sn-1).
// The index map is built by the algebra itself:
//
//	outer = Append(Fill(S0, 0), …, Fill(Sn-1, n-1))
//	inner = Append(Itoa(Size(S0)), …, Itoa(Size(Sn-1)))
//
// so output position k holds element inner[k] of input outer[k].
//
// # Errors
//
// Failures are [*ResolveError] values wrapping one of [ErrShapeMismatch],
// [ErrRange], [ErrArity], [ErrDescriptor] or [ErrMovedTwice].
// Empty lists, Append(), and concatenations of zero, one, or empty inputs
// are not errors.
//
// # Example
//
//	a := mp.NewTuple(1, 'a')
//	b := mp.NewTuple(2.5, 100)
//	t, err := mp.Concat(a, mp.Move(&b))
//	// t == (1, 97, 2.5, 100); b now holds (0, 0)
//
//	p, _ := mp.Resolve(a.Shape(), b.Shape())
//	// p.Outer == list<int(0), int(0), int(1), int(1)>
//	// p.Inner == list<int(0), int(1), int(0), int(1)>
package mp
