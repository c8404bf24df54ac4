package fmindex

import "math"

// This file implements spec section 4.3's "Level >= 1" contract: the
// in-place, head-as-counter bucket-borrowing SACA-K scheme, ported from
// original_source/include/saca_k.hpp's call_impl (the level != 0 branch)
// and its put_lms_substr1/induce_sal1/induce_sas1/put_suffix1 helpers.
// Every recursive level's reduced alphabet is bounded by the length of
// its own reduced string (names are assigned 0..nameCount-1 over a string
// of that same length), so a character value doubles as a direct index
// into the very sa workspace being built — bucket heads live inside sa
// itself, with no separate bucket/count array, at the cost of the
// bucket-borrowing bookkeeping below. Level 0 keeps the explicit
// count/bucket arrays of sais.go, since the outer alphabet generally has
// nothing to do with the size of the text (see sais.go's file comment).

// emptyIndex is the EMPTY sentinel: a value distinct from every real
// index and every counter. saca_k.hpp reserves the index word's top bit
// for this; the int32 equivalent is the most negative representable
// value, unreachable by any counter magnitude in a workspace this size.
const emptyIndex int32 = math.MinInt32

// isEmptySlot reports whether sa[i] holds the EMPTY sentinel.
func isEmptySlot(v int32) bool { return v == emptyIndex }

// isCounterSlot reports whether sa[i] has been repurposed as a bucket
// head's counter: a negative value that is not EMPTY. Its magnitude
// records how many items are currently packed into that bucket.
func isCounterSlot(v int32) bool { return v < 0 && v != emptyIndex }

// isValueSlot reports whether sa[i] holds a genuine index/position value.
func isValueSlot(v int32) bool { return v >= 0 }

// moveForward copies sa[first:last] to sa[dst:dst+(last-first)], copying
// front-to-back; safe when dst <= first (the destination never runs
// ahead of the source), mirroring std::move.
func moveForward(sa []int32, first, last, dst int) {
	for k := first; k < last; k++ {
		sa[dst+(k-first)] = sa[k]
	}
}

// moveBackward copies sa[first:last] to end at index dstEnd (exclusive),
// copying back-to-front; safe when dstEnd >= last (the destination never
// runs behind the source), mirroring std::move_backward.
func moveBackward(sa []int32, first, last, dstEnd int) {
	for k := last - 1; k >= first; k-- {
		sa[dstEnd-(last-k)] = sa[k]
	}
}

// saisInPlace builds the suffix array of text (a dense, named reduced
// string produced by a parent level's LMS-substring naming) using the
// in-place SACA-K recursion. sa is a workspace of length m >= len(text);
// the region beyond len(text) is free space this level borrows to
// compact the next level's own reduced string into, exactly as
// original_source/include/saca_k.hpp's call_impl threads "m" (available
// space) down through the recursion. Returns sa[:len(text)], the
// finished suffix array.
func saisInPlace(text, sa []int32) []int32 {
	n := int32(len(text))
	m := int32(len(sa))

	placeLMSSubstringsInPlace(text, sa[:n])
	induceLInPlace(text, sa[:n], false)
	induceSInPlace(text, sa[:n], false)

	var n1 int32
	for _, v := range sa[:n] {
		if v > 0 {
			sa[n1] = v
			n1++
		}
	}

	sa1 := sa[:n1]
	s1 := sa[m-n1 : m]
	nameCount := nameSubstrInPlace(text, sa, s1, n, m, n1)

	if nameCount < n1 {
		saisInPlace(s1, sa[:m-n1])
	} else {
		for i, name := range s1 {
			sa1[name] = int32(i)
		}
	}

	getSAOfLMSInPlace(text, sa, s1, n, n1, true)

	putSuffixInPlace(text, sa, n1)
	induceLInPlace(text, sa[:n], true)
	induceSInPlace(text, sa[:n], true)

	return sa[:n]
}

// placeLMSSubstringsInPlace is saca_k.hpp's put_lms_substr1: seed each
// LMS-substring into sa using the character value itself (text[i]) as
// the bucket's home index, growing each bucket leftward with a
// head-as-counter cell. When two buckets collide, items are shifted one
// slot right: the right neighbor's items to free this bucket's home cell,
// or this bucket's own items when it runs into its left neighbor.
func placeLMSSubstringsInPlace(text, sa []int32) {
	n := int32(len(text))
	for i := range sa {
		sa[i] = emptyIndex
	}

	c, preC := int32(0), text[n-2]
	typ, preType := false, false
	for i := n - 2; i > 0; i-- {
		c = preC
		typ = preType
		preC = text[i-1]
		preType = preC < c || (preC == c && typ)

		if typ && !preType {
			if isValueSlot(sa[c]) {
				// sa[c] is borrowed by the right neighbor bucket; shift
				// that bucket's contents one slot right to free sa[c].
				cntPos := c + 1
				for isValueSlot(sa[cntPos]) {
					cntPos++
				}
				moveBackward(sa, int(c), int(cntPos), int(cntPos)+1)
				sa[c] = emptyIndex
			}

			d := sa[c]
			if isEmptySlot(d) {
				if isEmptySlot(sa[c-1]) {
					sa[c] = -1 // init the counter
					sa[c-1] = i
				} else {
					sa[c] = i // a size-1 bucket
				}
			} else {
				pos := c + d - 1
				if !isEmptySlot(sa[pos]) {
					// running into the left neighbor bucket; shift this
					// bucket's contents one slot right.
					pos++
					moveBackward(sa, int(pos), int(c), int(c)+1)
				} else {
					sa[c]--
				}
				sa[pos] = i
			}
		}
	}

	// shift-right the items of each bucket whose head is still a counter.
	for i := n - 1; i > 0; i-- {
		j := sa[i]
		if isCounterSlot(j) {
			moveBackward(sa, int(i)+int(j), int(i), int(i)+1)
			sa[i+j] = emptyIndex
		}
	}

	sa[0] = n - 1
}

// induceLInPlace is saca_k.hpp's induce_sal1: induce L-type positions
// left-to-right using the same in-place, head-as-counter buckets, now
// growing rightward. The step variable controls the loop cursor: it is
// zeroed in exactly the iterations where the current slot's contents were
// displaced by a bucket-borrowing shift, so the next iteration re-reads
// the (now shifted) slot instead of skipping past it.
func induceLInPlace(text, sa []int32, suffix bool) {
	n := int32(len(text))
	for i, step := int32(0), int32(1); i < n; i, step = i+step, 1 {
		if sa[i] <= 0 {
			continue
		}
		j := sa[i] - 1
		c, c1 := text[j], text[j+1]
		if c < c1 {
			continue // not L-type
		}

		d := sa[c]
		if d >= 0 {
			// sa[c] is borrowed by the left neighbor bucket; shift that
			// bucket's contents one slot left to free sa[c].
			cntPos := c - 1
			for isValueSlot(sa[cntPos]) || isEmptySlot(sa[cntPos]) {
				cntPos--
			}
			moveForward(sa, int(cntPos)+1, int(c)+1, int(cntPos))
			if cntPos < i {
				step = 0
			}
			d = emptyIndex
		}

		var pos int32
		if isEmptySlot(d) {
			if c < n-1 && isEmptySlot(sa[c+1]) {
				sa[c] = -1
				sa[c+1] = j
			} else {
				sa[c] = j
			}
		} else {
			pos = c - d + 1
			if pos > n-1 || !isEmptySlot(sa[pos]) {
				// running into the right neighbor bucket; shift this
				// bucket's contents one slot left.
				moveForward(sa, int(c)+1, int(pos), int(c))
				pos--
				if c < i {
					step = 0
				}
			} else {
				sa[c]--
			}
			sa[pos] = j
		}

		isL1 := j+1 < n-1 && func() bool {
			c2 := text[j+2]
			return c1 > c2 || (c1 == c2 && c1 < i)
		}()
		if (!suffix || !isL1) && i > 0 {
			i1 := i
			if step == 0 {
				i1 = i - 1
			}
			sa[i1] = emptyIndex
		}
	}

	for i := int32(1); i < n; i++ {
		j := sa[i]
		if isCounterSlot(j) {
			moveForward(sa, int(i)+1, int(i)+1-int(j), int(i))
			sa[i-j] = emptyIndex
		}
	}
}

// induceSInPlace is saca_k.hpp's induce_sas1: the right-to-left,
// S-type counterpart of induceLInPlace, growing buckets leftward.
func induceSInPlace(text, sa []int32, suffix bool) {
	n := int32(len(text))
	for i, step := n-1, int32(1); i > 0; i, step = i-step, 1 {
		if sa[i] <= 0 {
			continue
		}
		j := sa[i] - 1
		c, c1 := text[j], text[j+1]
		isSType := c < c1 || (c == c1 && c > i)
		if !isSType {
			continue
		}

		d := sa[c]
		if d >= 0 {
			// sa[c] is borrowed by the right neighbor bucket; shift that
			// bucket's contents one slot right to free sa[c].
			cntPos := c + 1
			for isValueSlot(sa[cntPos]) {
				cntPos++
			}
			moveBackward(sa, int(c), int(cntPos), int(cntPos)+1)
			if cntPos > i {
				step = 0
			}
			d = emptyIndex
		}

		var pos int32
		if isEmptySlot(d) {
			if isEmptySlot(sa[c-1]) {
				sa[c] = -1
				sa[c-1] = j
			} else {
				sa[c] = j
			}
		} else {
			pos = c + d - 1
			if !isEmptySlot(sa[pos]) {
				// running into the left neighbor bucket; shift this
				// bucket's contents one slot right.
				moveBackward(sa, int(pos)+1, int(c), int(c)+1)
				pos++
				if c > i {
					step = 0
				}
			} else {
				sa[c]--
			}
			sa[pos] = j
		}

		if !suffix {
			i1 := i
			if step == 0 {
				i1 = i + 1
			}
			sa[i1] = emptyIndex
		}
	}

	if !suffix {
		for i := n - 1; i > 0; i-- {
			j := sa[i]
			if isCounterSlot(j) {
				moveBackward(sa, int(i)+int(j), int(i), int(i)+1)
				sa[i+j] = emptyIndex
			}
		}
	}
}

// putSuffixInPlace is saca_k.hpp's put_suffix1: scatter the sorted LMS
// suffixes (sa[0:n1], produced by getSAOfLMSInPlace) into the end of
// their character's bucket, filling leftward from the character value
// itself (an S-type name marks its bucket's last slot), in reverse order.
func putSuffixInPlace(text, sa []int32, n1 int32) {
	var pos, cur, pre int32 = 0, 0, -1
	for i := n1 - 1; i > 0; i-- {
		j := sa[i]
		sa[i] = emptyIndex
		cur = text[j]
		if cur != pre {
			pre = cur
			pos = cur
		}
		sa[pos] = j
		pos--
	}
}

// getSAOfLMSInPlace is saca_k.hpp's get_sa_of_lms: reconstruct the LMS
// positions of text in left-to-right order into s1 (reusing s1's backing
// storage now that the recursive solve that consumed it as input text has
// finished), then map the solved ranks in sa[0:n1] through s1 to recover
// actual text positions. sa[n1:n] is then reset for the stage-3 induction
// that follows: fillEmpty chooses EMPTY (every recursive level, where the
// in-place bucket scheme needs to tell "untouched" from "holds position
// 0") or plain 0 (level 0, whose stage 3 uses sais.go's ordinary
// count/bucket induction and its own zero-means-untouched convention).
func getSAOfLMSInPlace(text, sa, s1 []int32, n, n1 int32, fillEmpty bool) {
	j := n1 - 1
	s1[j] = n - 1
	j--
	curType := false // text[n-2] must be L-type
	for i := n - 2; i > 0; i-- {
		preType := text[i-1] < text[i] || (text[i-1] == text[i] && curType)
		if curType && !preType {
			s1[j] = i
			j--
		}
		curType = preType
	}

	for i := int32(0); i < n1; i++ {
		sa[i] = s1[sa[i]]
	}
	fill := int32(0)
	if fillEmpty {
		fill = emptyIndex
	}
	for i := n1; i < n; i++ {
		sa[i] = fill
	}
}

// nameSubstrInPlace is saca_k.hpp's name_substr: assign a dense name to
// each LMS-substring by content, comparing adjacent entries of the
// already-sorted sa[0:n1], storing the interim per-position name at
// sa[n1+pos/2] (each LMS position's slot is unique since two LMS
// positions are always at least 2 apart), then compacting those interim
// names — in left-to-right text order — into s1. A final pass bumps every
// S-type character of a repeated name to the end of its name's range, so
// ties break the way the recursive sub-problem requires. Returns the
// number of distinct names assigned.
func nameSubstrInPlace(text, sa, s1 []int32, n, m, n1 int32) int32 {
	for i := n1; i < n; i++ {
		sa[i] = emptyIndex
	}

	var name, nameCounter int32
	var prePos, preLen int32
	for i := int32(0); i < n1; i++ {
		diff := false
		pos := sa[i]
		length := int32(lmsLen(text, int(pos)))
		if length != preLen {
			diff = true
		} else {
			for d := int32(0); d < length; d++ {
				if pos+d == n-1 || prePos+d == n-1 || text[pos+d] != text[prePos+d] {
					diff = true
					break
				}
			}
		}

		if diff {
			name = i
			nameCounter++
			sa[name] = 1 // a new name
			prePos = pos
			preLen = length
		} else {
			sa[name]++ // count this name
		}
		sa[n1+pos/2] = name
	}

	// compact the interim names sparsely stored in sa[n1:n] into s1.
	for i, j := n-1, m-1; i >= n1; i-- {
		if !isEmptySlot(sa[i]) {
			sa[j] = sa[i]
			j--
		}
	}

	// rename each S-type character of a repeated name to the end of its
	// name's range.
	curType := true
	for i := n1 - 1; i > 0; i-- {
		ch, preCh := s1[i], s1[i-1]
		preType := preCh < ch || (preCh == ch && curType)
		if preType {
			s1[i-1] += sa[s1[i-1]] - 1
		}
		curType = preType
	}

	return nameCounter
}
