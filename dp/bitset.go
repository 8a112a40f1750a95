package dp

import (
	"sort"

	"github.com/kestrelgraph/plantas/dcel"
)

// Universe fixes a dense bit position for every vertex that appears
// in a tree decomposition, so Bitset values from different bags share
// one addressing scheme.
type Universe struct {
	index map[dcel.VertexID]int
	n     int
}

func (u *Universe) bit(v dcel.VertexID) int {
	b, ok := u.index[v]
	if !ok {
		invariantf("dp: vertex %d not present in universe", v)
	}
	return b
}

// Bitset is an immutable fixed-width bit vector keyed by a Universe.
// Every mutating-looking operation (Universe.With) returns a new value, matching
// the reference implementation's immutable_bit_vec_update and letting
// Bitset serve directly as a map key via Key.
type Bitset struct {
	words []uint64
	n     int
}

func newBitset(n int) Bitset {
	return Bitset{words: make([]uint64, (n+63)/64), n: n}
}

// Empty returns the all-zero subset over u's universe.
func (u *Universe) Empty() Bitset {
	return newBitset(u.n)
}

// With returns a copy of b with v's bit set.
func (u *Universe) With(b Bitset, v dcel.VertexID) Bitset {
	out := Bitset{words: append([]uint64{}, b.words...), n: b.n}
	bit := u.bit(v)
	out.words[bit/64] |= 1 << uint(bit%64)
	return out
}

// FromVertices returns the subset containing exactly vs.
func (u *Universe) FromVertices(vs []dcel.VertexID) Bitset {
	b := u.Empty()
	for _, v := range vs {
		b = u.With(b, v)
	}
	return b
}

// Has reports whether v's bit is set in b.
func (u *Universe) Has(b Bitset, v dcel.VertexID) bool {
	bit := u.bit(v)
	return b.words[bit/64]&(1<<uint(bit%64)) != 0
}

// Key returns a value suitable for use as a Go map key.
func (b Bitset) Key() string {
	buf := make([]byte, len(b.words)*8)
	for i, w := range b.words {
		for j := 0; j < 8; j++ {
			buf[i*8+j] = byte(w >> (8 * j))
		}
	}
	return string(buf)
}

// PopCount returns the number of set bits.
func (b Bitset) PopCount() int {
	count := 0
	for _, w := range b.words {
		for w != 0 {
			w &= w - 1
			count++
		}
	}
	return count
}

// NewUniverse builds a Universe covering exactly the given vertices,
// in sorted order (so bit positions are deterministic across runs).
func NewUniverse(vertices map[dcel.VertexID]struct{}) *Universe {
	sorted := make([]dcel.VertexID, 0, len(vertices))
	for v := range vertices {
		sorted = append(sorted, v)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	index := make(map[dcel.VertexID]int, len(sorted))
	for i, v := range sorted {
		index[v] = i
	}
	return &Universe{index: index, n: len(sorted)}
}

// Powerset returns every subset of vertices, including the empty set
// and vertices itself, as Bitset values over u.
func (u *Universe) Powerset(vertices []dcel.VertexID) []Bitset {
	out := make([]Bitset, 1<<uint(len(vertices)))
	for mask := 0; mask < len(out); mask++ {
		var vs []dcel.VertexID
		for i, v := range vertices {
			if mask&(1<<uint(i)) != 0 {
				vs = append(vs, v)
			}
		}
		out[mask] = u.FromVertices(vs)
	}
	return out
}
