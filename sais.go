package fmindex

// This file implements the level-0 half of spec section 4.3's suffix-array
// builder, grounded on original_source/include/saca_k.hpp's call_impl
// (level == 0 branch) and its put_lms_substr0/induce_sal0/induce_sas0/
// put_suffix0 helpers: explicit count/bucket arrays sized to the outer
// alphabet, reused across all three stages via get_buckets' two modes
// (bucket.go's bucketHeads32/bucketTails32). Level 0's alphabet is always
// dense (rank-mapped symbols occupy {0,...,k-1} by the RankMap contract in
// rank.go), so bucket indices are the character values themselves, with
// no offset.
//
// Every recursive level (level >= 1) instead uses sais_recursive.go's
// in-place, head-as-counter SACA-K scheme: per spec section 4.3 and 9, a
// reduced level's alphabet (LMS-substring names) is always bounded by the
// length of its own reduced string, so a name doubles as a direct sa
// index and needs no separate bucket array — at the cost of the
// bucket-borrowing bookkeeping spec section 9 calls out as
// correctness-critical. Naming (nameSubstrInPlace) and LMS-position
// recovery (getSAOfLMSInPlace) are shared between level 0 and level >= 1,
// exactly as call_impl shares name_substr/get_sa_of_lms across both
// branches.

// buildSA constructs the suffix array of text, a dense integer sequence
// ending in its unique minimum (the sentinel), via recursive induced
// sorting. Returns a permutation of {0,...,len(text)-1}.
func buildSA(text []int32) []int32 {
	if len(text) == 0 {
		return []int32{}
	}
	if len(text) == 1 {
		return []int32{0}
	}
	return saisLevel0(text)
}

// saisLevel0 is the outer (level 0) entry point: explicit count/bucket
// arrays sized to the outer alphabet, per this file's comment. The
// reduced problem it hands off to (see induceSortLevel) runs through
// sais_recursive.go's in-place scheme instead.
func saisLevel0(text []int32) []int32 {
	sa := make([]int32, len(text))
	return induceSortLevel(text, sa)
}

// induceSortLevel runs call_impl's level-0 body: count the alphabet, sort
// and name LMS-substrings to form the reduced problem, recurse into
// sais_recursive.go's in-place scheme (or read names directly if already
// unique), then induce the final suffix array from the solved LMS
// suffixes.
func induceSortLevel(text, sa []int32) []int32 {
	n := int32(len(text))
	m := n

	var maxChar int32
	for _, v := range text {
		if v > maxChar {
			maxChar = v
		}
	}
	k := maxChar + 1

	count := make([]int32, k)
	bkt := make([]int32, k)
	for _, v := range text {
		count[v]++
	}

	// Stage 1: sort LMS-substrings.
	placeLMSSubstrings0(text, sa, count, bkt)
	induceL0(text, sa, count, bkt, false)
	induceS0(text, sa, count, bkt, false)

	// Compact the sorted substrings into the first n1 items of sa.
	var n1 int32
	for _, v := range sa {
		if v > 0 {
			sa[n1] = v
			n1++
		}
	}

	sa1 := sa[:n1]
	s1 := sa[m-n1 : m]
	nameCount := nameSubstrInPlace(text, sa, s1, n, m, n1)

	// Stage 2: solve the reduced problem, recursing only if names are not
	// yet unique.
	if nameCount < n1 {
		saisInPlace(s1, sa[:m-n1])
	} else {
		for i, name := range s1 {
			sa1[name] = int32(i)
		}
	}

	// Stage 3: induce SA(S) from SA(S1).
	getSAOfLMSInPlace(text, sa, s1, n, n1, false)
	putSuffix0(text, sa, count, bkt, n1)
	induceL0(text, sa, count, bkt, true)
	induceS0(text, sa, count, bkt, true)

	return sa
}

// placeLMSSubstrings0 is saca_k.hpp's put_lms_substr0: scatter each LMS
// position into the tail of its own character's bucket.
func placeLMSSubstrings0(text, sa, count, bkt []int32) {
	bucketTails32(count, bkt)
	clear(sa)

	n := int32(len(text))
	curType := false // text[n-2] must be L-type
	for i := n - 2; i > 0; i-- {
		preType := text[i-1] < text[i] || (text[i-1] == text[i] && curType)
		if curType && !preType {
			sa[bkt[text[i]]] = i
			bkt[text[i]]--
		}
		curType = preType
	}

	sa[0] = n - 1 // the single sentinel LMS-substring
}

// induceL0 is saca_k.hpp's induce_sal0: induce L-type positions
// left-to-right into the heads of their buckets. When suffix is false
// this is stage 1's LMS-substring sort and already-final cells are
// cleared behind the scan; when true it is stage 3's final induction and
// nothing is cleared.
func induceL0(text, sa, count, bkt []int32, suffix bool) {
	bucketHeads32(count, bkt)
	bkt[0]++ // skip the sentinel's own bucket head

	n := int32(len(text))
	for i := int32(0); i < n; i++ {
		if sa[i] <= 0 {
			continue
		}
		j := sa[i] - 1
		if text[j] >= text[j+1] {
			c := text[j]
			sa[bkt[c]] = j
			bkt[c]++
			if !suffix && i > 0 {
				sa[i] = 0
			}
		}
	}
}

// induceS0 is saca_k.hpp's induce_sas0: the right-to-left, S-type
// counterpart of induceL0, inducing into the tails of buckets.
func induceS0(text, sa, count, bkt []int32, suffix bool) {
	bucketTails32(count, bkt)

	n := int32(len(text))
	for i := n - 1; i > 0; i-- {
		if sa[i] <= 0 {
			continue
		}
		j := sa[i] - 1
		c := text[j]
		if text[j] < text[j+1] || (text[j] == text[j+1] && bkt[c] < i) {
			sa[bkt[c]] = j
			bkt[c]--
			if !suffix {
				sa[i] = 0
			}
		}
	}
}

// putSuffix0 is saca_k.hpp's put_suffix0: scatter the sorted LMS suffixes
// sa[0:n1] (produced by getSAOfLMSInPlace) into the ends of their
// buckets, in reverse order, so the final L/S induction sees them as
// seeds.
func putSuffix0(text, sa, count, bkt []int32, n1 int32) {
	bucketTails32(count, bkt)

	n := int32(len(text))
	for i := n1 - 1; i > 0; i-- {
		c := text[sa[i]]
		sa[bkt[c]] = sa[i]
		bkt[c]--
		sa[i] = 0
	}
	sa[0] = n - 1 // the single sentinel suffix
}
