package slicesimd

import (
	"reflect"
	"sync"

	"github.com/cwbudde/algo-slicesimd/capability"
	"github.com/cwbudde/algo-slicesimd/internal/cascade"
	"github.com/cwbudde/algo-slicesimd/internal/naive"
)

// maxPooledLen is the largest scratch, in elements, returned to the pool.
const maxPooledLen = 1 << 20

// Scratch holds reusable space for repeated reductions.
//
// A Scratch is not safe for concurrent use; give each goroutine its own.
type Scratch[T Element] struct {
	space []T
}

// NewScratch returns a Scratch with room for buffers of up to capacity
// elements before it needs to grow.
func NewScratch[T Element](capacity int) *Scratch[T] {
	return &Scratch[T]{space: make([]T, capacity)}
}

// Reduce returns the sum of all elements of buf. buf is not modified.
// The scratch grows to len(buf) if needed.
func (s *Scratch[T]) Reduce(buf []T) T {
	if capability.TargetIsNaive {
		return naive.Sum(buf)
	}
	if len(s.space) < len(buf) {
		s.space = make([]T, len(buf))
	}
	return cascade.InSpace(capability.Target(), buf, s.space[:len(buf)])
}

// Len returns the number of elements the scratch can hold without growing.
func (s *Scratch[T]) Len() int {
	return len(s.space)
}

// Reset releases the scratch memory.
func (s *Scratch[T]) Reset() {
	s.space = nil
}

// pools maps an element type to its *sync.Pool of *Scratch values.
var pools sync.Map

func poolFor[T Element]() *sync.Pool {
	key := reflect.TypeFor[T]()
	if p, ok := pools.Load(key); ok {
		return p.(*sync.Pool)
	}
	p, _ := pools.LoadOrStore(key, &sync.Pool{
		New: func() any { return &Scratch[T]{} },
	})
	return p.(*sync.Pool)
}

func getScratch[T Element]() *Scratch[T] {
	return poolFor[T]().Get().(*Scratch[T])
}

func putScratch[T Element](s *Scratch[T]) {
	if s.Len() > maxPooledLen {
		return
	}
	poolFor[T]().Put(s)
}
