// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mp_test

import (
	"bytes"
	"errors"
	"log/slog"
	"reflect"
	"slices"
	"strings"
	"sync"
	"testing"

	"code.hybscloud.com/mp"
)

func TestResolverMemoizes(t *testing.T) {
	r := mp.NewResolver()
	a, err := r.Resolve(mp.Tup(tInt, tRune), mp.Tup(tF64))
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Resolve(mp.Tup(tInt, tRune), mp.Tup(tF64))
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatal("identical shapes resolved to distinct plans")
	}
	if a.Signature() == "" {
		t.Fatal("empty signature")
	}
	st := r.Stats()
	if st.Hits != 1 || st.Misses != 1 || st.Plans != 1 {
		t.Fatalf("Stats = %+v, want 1 hit, 1 miss, 1 plan", st)
	}

	c, err := r.Resolve(mp.Tup(tInt), mp.Tup(tRune, tF64))
	if err != nil {
		t.Fatal(err)
	}
	if c == a {
		t.Fatal("different shapes share a plan")
	}
	if c.Signature() == a.Signature() {
		t.Fatalf("signature collision: %q", c.Signature())
	}
}

func TestResolverConcatReusesPlan(t *testing.T) {
	r := mp.NewResolver()
	for i := range 5 {
		out, err := r.Concat(mp.NewTuple(i, "x"), mp.NewTuple(float64(i)))
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(out.Values(), []any{i, "x", float64(i)}) {
			t.Fatalf("iteration %d: got %s", i, out)
		}
	}
	if st := r.Stats(); st.Misses != 1 || st.Hits != 4 {
		t.Fatalf("Stats = %+v, want 1 miss, 4 hits", st)
	}
}

func TestResolverConcurrent(t *testing.T) {
	r := mp.NewResolver()
	shapes := []mp.List{mp.Tup(tInt, tStr), mp.Tup(), mp.Tup(tBool)}
	const workers = 16
	plans := make([]*mp.Plan, workers)
	var wg sync.WaitGroup
	for w := range workers {
		wg.Go(func() {
			p, err := r.Resolve(shapes...)
			if err != nil {
				t.Error(err)
				return
			}
			plans[w] = p
		})
	}
	wg.Wait()
	for w, p := range plans {
		if p != plans[0] {
			t.Fatalf("worker %d got a distinct plan", w)
		}
	}
	if st := r.Stats(); st.Misses != 1 || st.Plans != 1 {
		t.Fatalf("Stats = %+v, want exactly one resolution", st)
	}
}

func TestResolverWithoutCache(t *testing.T) {
	r := mp.NewResolver(mp.WithoutCache())
	a, _ := r.Resolve(mp.Tup(tInt))
	b, _ := r.Resolve(mp.Tup(tInt))
	if a == b {
		t.Fatal("uncached resolver returned a shared plan")
	}
	if !mp.Equal(a.Outer, b.Outer) || !mp.Equal(a.Result, b.Result) {
		t.Fatal("uncached plans differ")
	}
	if st := r.Stats(); st.Plans != 0 || st.Misses != 2 {
		t.Fatalf("Stats = %+v", st)
	}
}

func TestResolverCacheLimit(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	r := mp.NewResolver(mp.WithCacheLimit(2), mp.WithLogger(log))
	for _, s := range []mp.List{mp.Tup(tInt), mp.Tup(tStr), mp.Tup(tBool)} {
		if _, err := r.Resolve(s); err != nil {
			t.Fatal(err)
		}
	}
	if st := r.Stats(); st.Plans != 1 {
		t.Fatalf("Plans = %d, want 1 after clearing", st.Plans)
	}
	if !strings.Contains(buf.String(), "plan cache full") {
		t.Fatalf("missing eviction log: %q", buf.String())
	}
}

func TestResolverReset(t *testing.T) {
	r := mp.NewResolver()
	_, _ = r.Resolve(mp.Tup(tInt))
	_, _ = r.Resolve(mp.Tup(tInt))
	r.Reset()
	if st := r.Stats(); st != (mp.Stats{}) {
		t.Fatalf("Stats after Reset = %+v", st)
	}
}

func TestResolverLogsResolution(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := mp.NewResolver(mp.WithLogger(log))
	if _, err := r.Resolve(mp.Tup(tInt, tInt)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "resolved plan") || !strings.Contains(out, "len=2") {
		t.Fatalf("log = %q", out)
	}
	buf.Reset()
	_, _ = r.Resolve(mp.Tup(tInt, tInt))
	if buf.Len() != 0 {
		t.Fatalf("cache hit logged: %q", buf.String())
	}
}

func TestSignatureKindNameCannotForgeSeparators(t *testing.T) {
	r := mp.NewResolver()
	ka, kb := mp.NewKind("a", mp.Variadic), mp.NewKind("b", mp.Variadic)
	two, err := r.Resolve(must(ka.Make(tInt)), must(kb.Make(tStr)))
	if err != nil {
		t.Fatal(err)
	}

	// a single kind whose name spells out the two-input key up to its
	// last element, so only the name separates the two signatures
	sig := two.Signature()
	odd := mp.NewKind(sig[:strings.LastIndex(sig, "/")], mp.Variadic)
	one, err := r.Resolve(must(odd.Make(tStr)))
	if err != nil {
		t.Fatal(err)
	}
	if one == two || one.Signature() == two.Signature() {
		t.Fatalf("signature collision: %q", one.Signature())
	}
	if one.Inputs() != 1 || one.Len() != 1 {
		t.Fatalf("Inputs = %d, Len = %d, want 1, 1", one.Inputs(), one.Len())
	}
	if o, i := one.Source(0); o != 0 || i != 0 {
		t.Fatalf("Source(0) = (%d, %d)", o, i)
	}
	if st := r.Stats(); st.Misses != 2 || st.Plans != 2 {
		t.Fatalf("Stats = %+v, want 2 misses, 2 plans", st)
	}
}

func TestResolverRejectsNonTypeShapes(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := mp.NewResolver(mp.WithLogger(log))

	tests := []struct {
		name  string
		shape mp.List
	}{
		{"constant", mp.Tup(tInt, mp.Int(1))},
		{"nested list", mp.Tup(mp.L(tInt))},
		{"zero type", mp.Tup(mp.Type{})},
		{"zero constant", mp.Tup(mp.Constant{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 2 {
				p, err := r.Resolve(tt.shape)
				if !errors.Is(err, mp.ErrDescriptor) || p != nil {
					t.Fatalf("Resolve(%s) = %v, %v; want ErrDescriptor", tt.shape, p, err)
				}
			}
		})
	}
	st := r.Stats()
	if st.Plans != 0 || st.Misses != uint64(2*len(tests)) || st.Hits != 0 {
		t.Fatalf("Stats = %+v, want every failure resolved afresh and none cached", st)
	}
	if !strings.Contains(buf.String(), "resolve failed") {
		t.Fatalf("missing failure log: %q", buf.String())
	}

	if _, err := mp.Concat(mp.NewTuple(1)); err != nil {
		t.Fatalf("valid shape after failures: %v", err)
	}
}

// localA and localB declare distinct types that print identically.
func localA() reflect.Type {
	type T int
	return reflect.TypeFor[T]()
}

func localB() reflect.Type {
	type T int
	return reflect.TypeFor[T]()
}

func TestSignatureDistinguishesSameNamedTypes(t *testing.T) {
	a, b := mp.TypeFor(localA()), mp.TypeFor(localB())
	if a.String() != b.String() {
		t.Skipf("types print differently: %s, %s", a, b)
	}
	r := mp.NewResolver()
	pa, _ := r.Resolve(mp.Tup(a))
	pb, _ := r.Resolve(mp.Tup(b))
	if pa == pb || pa.Signature() == pb.Signature() {
		t.Fatal("same-named types share a plan")
	}
	if !mp.Equal(pb.Result, mp.Tup(b)) {
		t.Fatalf("Result = %s", pb.Result)
	}
}

func TestPackageResolve(t *testing.T) {
	p, err := mp.Resolve(mp.Tup(tInt), mp.Tup(tStr))
	if err != nil {
		t.Fatal(err)
	}
	q, err := mp.Resolve(mp.Tup(tInt), mp.Tup(tStr))
	if err != nil {
		t.Fatal(err)
	}
	if p != q {
		t.Fatal("default resolver does not memoize")
	}
}
