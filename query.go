package fmindex

import "sort"

// LFMapping implements spec section 4.5: given a BWT position i and a
// character c, return the position of the suffix one character to the
// left in the first column. Ported from
// _examples/original_source/include/fm_index.hpp's lf_mapping/get_occ.
//
// The sentinel's own suffix occupies first-column slot 0, so rank-0
// symbols outside the primary row map one slot past c[0]; rank 0 at the
// primary row maps to slot 0 (the step left from text offset 0 wraps to
// the sentinel's suffix).
//
// i must be in [0, n); c must be a symbol known to the index's rank map.
// Both are caller-guaranteed per spec section 6; out-of-range values
// panic rather than silently misbehave.
func (idx *Index) LFMapping(i int, c byte) int {
	r, ok := idx.ranks.Rank(c)
	if !ok {
		panic("fmindex: LFMapping: unknown symbol")
	}
	if i < 0 || i >= idx.n {
		panic("fmindex: LFMapping: position out of range")
	}
	if r == 0 {
		if i == idx.primary {
			return 0
		}
		return int(idx.c[0]) + 1 + idx.occAt(i, 0)
	}
	return int(idx.c[r]) + idx.occAt(i, r)
}

// occAt returns the number of positions j < i with bwt[j] having rank r,
// excluding the primary index, using the nearest occurrence checkpoint
// and scanning forward or backward to i depending on which side is
// closer (spec section 4.5).
func (idx *Index) occAt(i int, r int32) int {
	s := idx.sampleRate
	lo := i / s
	hi := lo + 1
	delta := i % s

	if delta <= s/2 || hi >= len(idx.occ) {
		count := idx.occ[lo][r]
		for j := lo * s; j < i; j++ {
			if j != idx.primary {
				if jr, _ := idx.ranks.Rank(idx.bwt[j]); jr == r {
					count++
				}
			}
		}
		return int(count)
	}

	count := idx.occ[hi][r]
	for j := hi*s - 1; j >= i; j-- {
		if j != idx.primary {
			if jr, _ := idx.ranks.Rank(idx.bwt[j]); jr == r {
				count--
			}
		}
	}
	return int(count)
}

// Locate implements spec section 4.5: given a BWT position i, return the
// corresponding offset in the original sequence by walking LF-mappings
// until a sampled (marked) position is reached, then reading off the
// sampled text offset and adding the number of steps taken.
func (idx *Index) Locate(i int) int {
	if i < 0 || i >= idx.n {
		panic("fmindex: Locate: position out of range")
	}
	steps := 0
	cur := i
	for !idx.marked[cur] {
		cur = idx.LFMapping(cur, idx.bwt[cur])
		steps++
	}
	j := sort.Search(len(idx.locate), func(k int) bool {
		return idx.locate[k].bwtPos >= int64(cur)
	})
	if j >= len(idx.locate) || idx.locate[j].bwtPos != int64(cur) {
		panic("fmindex: Locate: marked position missing from locate table")
	}
	return int(idx.locate[j].textPos) + steps
}
