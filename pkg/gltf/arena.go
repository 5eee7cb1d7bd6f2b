package gltf

import "unsafe"

// StringArena is an append-only slab allocator for name and path bytes.
// A request that does not fit in the current slab starts a new slab; the
// slab size doubles until it can hold the request. Nothing is ever freed
// individually. The arena's whole lifetime is tied to the bundle
// that receives it.
type StringArena struct {
	slabs [][]byte
	used  int // bytes taken from the last slab
	size  int // capacity of the next slab to allocate
}

// NewStringArena creates an arena whose first slab holds initial bytes.
// initial must be a power of two.
func NewStringArena(initial int) *StringArena {
	return &StringArena{size: initial}
}

// Alloc bump-allocates n bytes. The returned slice has full capacity n,
// so appending to it cannot bleed into later allocations.
func (a *StringArena) Alloc(n int) []byte {
	a.grow(n)
	slab := a.slabs[len(a.slabs)-1]
	b := slab[a.used : a.used+n : a.used+n]
	a.used += n
	return b
}

func (a *StringArena) grow(n int) {
	if len(a.slabs) > 0 && a.used+n <= cap(a.slabs[len(a.slabs)-1]) {
		return
	}
	for a.size < n {
		a.size <<= 1
	}
	a.slabs = append(a.slabs, make([]byte, a.size))
	a.used = 0
}

// Intern copies src into the arena and returns it as a string. The
// string aliases arena memory, which is written exactly once, so the
// view stays valid for the bundle's lifetime.
func (a *StringArena) Intern(src []byte) string {
	if len(src) == 0 {
		return ""
	}
	dst := a.Alloc(len(src))
	copy(dst, src)
	return unsafe.String(unsafe.SliceData(dst), len(dst))
}

// Join interns the concatenation of a path prefix and a URI in one
// allocation.
func (a *StringArena) Join(prefix string, uri []byte) string {
	dst := a.Alloc(len(prefix) + len(uri))
	copy(dst, prefix)
	copy(dst[len(prefix):], uri)
	return unsafe.String(unsafe.SliceData(dst), len(dst))
}

// Free drops every slab. Strings previously interned must not be used
// afterwards.
func (a *StringArena) Free() {
	a.slabs = nil
	a.used = 0
}

// IntArena is the StringArena layout specialized to 32-bit integers. It
// backs node children, scene node lists, and skin joint lists.
type IntArena struct {
	slabs [][]int32
	used  int
	size  int
}

// NewIntArena creates an arena whose first slab holds initial ints.
// initial must be a power of two.
func NewIntArena(initial int) *IntArena {
	return &IntArena{size: initial}
}

// Alloc bump-allocates n ints with full capacity n.
func (a *IntArena) Alloc(n int) []int32 {
	if len(a.slabs) == 0 || a.used+n > cap(a.slabs[len(a.slabs)-1]) {
		for a.size < n {
			a.size <<= 1
		}
		a.slabs = append(a.slabs, make([]int32, a.size))
		a.used = 0
	}
	slab := a.slabs[len(a.slabs)-1]
	b := slab[a.used : a.used+n : a.used+n]
	a.used += n
	return b
}

// Free drops every slab. Slices previously allocated must not be used
// afterwards.
func (a *IntArena) Free() {
	a.slabs = nil
	a.used = 0
}
