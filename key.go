// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mp

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"
)

// Shape signatures key the plan cache. Types are interned to small ids so
// that distinct types with equal String() never share a signature.

var (
	typeIDs  sync.Map // reflect.Type -> uint64
	typeMu   sync.Mutex
	nextType uint64
)

func typeID(t reflect.Type) uint64 {
	if id, ok := typeIDs.Load(t); ok {
		return id.(uint64)
	}
	typeMu.Lock()
	defer typeMu.Unlock()
	if id, ok := typeIDs.Load(t); ok {
		return id.(uint64)
	}
	nextType++
	typeIDs.Store(t, nextType)
	return nextType
}

// Key buffers are pooled; a signature is built once per Resolve call.
var keyBufPool = sync.Pool{New: func() any {
	b := make([]byte, 0, 64)
	return &b
}}

func acquireKeyBuf() *[]byte {
	return keyBufPool.Get().(*[]byte)
}

// releaseKeyBuf truncates b and returns it to the pool; oversized buffers are dropped.
func releaseKeyBuf(b *[]byte) {
	if cap(*b) > 4096 {
		return
	}
	*b = (*b)[:0]
	keyBufPool.Put(b)
}

// signature returns the cache key of a sequence of input shapes.
// Kind names are length-prefixed, so no name can imitate the separators.
func signature(shapes []List) string {
	bp := acquireKeyBuf()
	b := *bp
	for i, s := range shapes {
		if i > 0 {
			b = append(b, '|')
		}
		b = appendKey(b, s)
	}
	key := string(b)
	*bp = b
	releaseKeyBuf(bp)
	return key
}

func appendKey(b []byte, e Elem) []byte {
	switch x := e.(type) {
	case Type:
		if x.t == nil {
			return append(b, "t?"...)
		}
		b = append(b, 't')
		return strconv.AppendUint(b, typeID(x.t), 10)
	case Constant:
		if x.v == nil {
			return append(b, "c?"...)
		}
		b = append(b, 'c')
		b = strconv.AppendUint(b, typeID(x.Type()), 10)
		b = append(b, ':')
		return fmt.Appendf(b, "%v", x.v)
	case List:
		k := x.Kind()
		b = strconv.AppendInt(b, int64(len(k.name)), 10)
		b = append(b, ':')
		b = append(b, k.name...)
		b = append(b, '/')
		b = strconv.AppendInt(b, int64(k.arity), 10)
		b = append(b, '<')
		for i, el := range x.elems {
			if i > 0 {
				b = append(b, ',')
			}
			b = appendKey(b, el)
		}
		return append(b, '>')
	}
	return append(b, '?')
}
