package heal

import "sync"

// Pool recycles working buffers between healing events.
//
// Buffers are grouped by width, height and depth. A stroke heals many
// regions of the same brush-derived size, so the solver fields of one
// motion event can be reused by the next.
//
// Thread safety: All methods are safe for concurrent use.
type Pool[T Float] struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Buffer[T]
	maxSize int // max buffers per bucket
}

// poolKey identifies a bucket of identically shaped buffers.
type poolKey struct {
	width  int
	height int
	depth  int
}

// NewPool creates a pool that retains at most maxPerBucket buffers of each
// shape. A maxPerBucket of 0 means unlimited.
func NewPool[T Float](maxPerBucket int) *Pool[T] {
	return &Pool[T]{
		buckets: make(map[poolKey][]*Buffer[T]),
		maxSize: maxPerBucket,
	}
}

// Get returns a zeroed buffer of the given shape, reusing a pooled one when
// available. It returns nil for invalid dimensions.
func (p *Pool[T]) Get(width, height, depth int) *Buffer[T] {
	key := poolKey{width: width, height: height, depth: depth}

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		buf := bucket[n-1]
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()

		buf.Clear()
		return buf
	}
	p.mu.Unlock()

	buf, err := NewBuffer[T](width, height, depth)
	if err != nil {
		return nil
	}
	return buf
}

// Put hands buf back to the pool. Sub-buffer views are not pooled since
// they alias a larger allocation. Put discards buf when its bucket is full.
func (p *Pool[T]) Put(buf *Buffer[T]) {
	if buf == nil || buf.stride != buf.width*buf.depth {
		return
	}

	key := poolKey{width: buf.width, height: buf.height, depth: buf.depth}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// Len returns the number of buffers currently held.
func (p *Pool[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}
