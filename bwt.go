package fmindex

import "sort"

// locateEntry is one row of the sampled locate table: the BWT position
// bwtPos maps to text offset textPos. Kept sorted by bwtPos.
type locateEntry struct {
	bwtPos  int64
	textPos int64
}

// tables holds everything buildTables produces: the persisted fields of
// spec section 3, derived from a finished suffix array.
type tables struct {
	bwt     []byte
	marked  []bool
	locate  []locateEntry
	occ     [][]uint64
	c       []uint64
	primary int
}

// buildTables drives the BWT + sampled-tables producer of spec section
// 4.4 as a linear post-pass over the finished suffix array sa (the
// permitted alternative to the interleaved induced-sort streaming
// variant; see SPEC_FULL.md section 4.4 and
// _examples/original_source/include/fm_index.hpp's constructor, whose
// occurrence-recompute loop this ports directly).
func buildTables(seq []byte, ranks RankMap, sa []int32, sampleRate int) *tables {
	n := len(seq)
	k := int(ranks.Size())

	count := make([]uint64, k)
	for _, s := range seq {
		r, _ := ranks.Rank(s)
		count[r]++
	}
	c := make([]uint64, k)
	bucketHeads(count, c)

	bwt := make([]byte, n)
	marked := make([]bool, n)
	var locate []locateEntry
	primary := 0

	for i := 0; i < n; i++ {
		pos := int(sa[i])
		prev := pos - 1
		if prev < 0 {
			prev = n - 1
		}
		bwt[i] = seq[prev]
		if pos == 0 {
			primary = i
		}
		if pos%sampleRate == 0 {
			marked[i] = true
			locate = append(locate, locateEntry{bwtPos: int64(i), textPos: int64(pos)})
		}
	}
	// Produced in increasing bwtPos order already; re-sort defensively to
	// honor the documented "strictly increasing" invariant regardless of
	// future changes to the scan above.
	sort.Slice(locate, func(i, j int) bool { return locate[i].bwtPos < locate[j].bwtPos })

	numCheckpoints := (n + sampleRate - 1) / sampleRate
	occ := make([][]uint64, numCheckpoints)
	running := make([]uint64, k)
	occ[0] = make([]uint64, k)
	for i := 0; i < n; i++ {
		if i != primary {
			r, _ := ranks.Rank(bwt[i])
			running[r]++
		}
		if (i+1)%sampleRate == 0 {
			j := (i + 1) / sampleRate
			if j < numCheckpoints {
				snap := make([]uint64, k)
				copy(snap, running)
				occ[j] = snap
			}
		}
	}

	return &tables{
		bwt:     bwt,
		marked:  marked,
		locate:  locate,
		occ:     occ,
		c:       c,
		primary: primary,
	}
}
