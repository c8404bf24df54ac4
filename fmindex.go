package fmindex

// Index is a built, immutable FM-index. A *Index is safe for concurrent
// use by multiple readers: Build fully owns its workspace during
// construction and releases it before returning, and every query method
// is a pure function over the persisted tables (spec section 5).
type Index struct {
	ranks      RankMap
	n          int
	sampleRate int
	primary    int

	bwt    []byte
	c      []uint64
	occ    [][]uint64
	marked []bool
	locate []locateEntry
}

// isPowerOfTwo reports whether v is a positive power of two.
func isPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// Build constructs an FM-index over sequence using ranks as the alphabet's
// rank map and sampleRate as the locate/occurrence checkpoint density
// (spec section 6).
//
// sequence must end with the sentinel symbol (the one ranks maps to rank
// 0) and must not contain that symbol anywhere else; sampleRate must be a
// power of two; sequence must have length >= 2.
func Build(sequence []byte, ranks RankMap, sampleRate int) (*Index, error) {
	if !isPowerOfTwo(sampleRate) {
		return nil, newErr(InvalidSampleRate, "sample rate must be a positive power of two")
	}
	if len(sequence) < 2 {
		return nil, newErr(SequenceTooShort, "sequence must have at least 2 symbols")
	}

	n := len(sequence)
	text := make([]int32, n)
	sentinelSeen := false
	for i, sym := range sequence {
		r, ok := ranks.Rank(sym)
		if !ok {
			return nil, newErr(UnknownSymbol, "sequence contains a symbol absent from the rank map")
		}
		if r == 0 {
			if i != n-1 {
				return nil, newErr(InvalidSentinel, "sentinel symbol appears before the final position")
			}
			sentinelSeen = true
		}
		text[i] = r
	}
	if !sentinelSeen {
		return nil, newErr(InvalidSentinel, "sequence does not end with the sentinel symbol")
	}

	sa := buildSA(text)
	t := buildTables(sequence, ranks, sa, sampleRate)

	return &Index{
		ranks:      ranks,
		n:          n,
		sampleRate: sampleRate,
		primary:    t.primary,
		bwt:        t.bwt,
		c:          t.c,
		occ:        t.occ,
		marked:     t.marked,
		locate:     t.locate,
	}, nil
}

// Len returns the length of the indexed sequence.
func (idx *Index) Len() int { return idx.n }

// SampleRate returns the sample rate the index was built with.
func (idx *Index) SampleRate() int { return idx.sampleRate }

// PrimaryIndex returns the BWT position corresponding to the suffix
// starting at text offset 0.
func (idx *Index) PrimaryIndex() int { return idx.primary }

// BWTAt returns the BWT symbol at BWT position i.
func (idx *Index) BWTAt(i int) byte { return idx.bwt[i] }
