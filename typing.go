package fmindex

// computeTypes classifies every position of text as S-type (true) or
// L-type (false). Position n-1 (the sentinel) is S-type by fiat; ties are
// broken by looking at the type of the following position, exactly as
// spec section 4.1 defines it. This mirrors the backward scans sais.go
// performs inline, but materializes the result for callers (tests,
// lmsPositions) that need random access rather than a single linear pass.
func computeTypes(text []int32) []bool {
	n := len(text)
	types := make([]bool, n)
	if n == 0 {
		return types
	}
	types[n-1] = true
	for i := n - 2; i >= 0; i-- {
		switch {
		case text[i] < text[i+1]:
			types[i] = true
		case text[i] > text[i+1]:
			types[i] = false
		default:
			types[i] = types[i+1]
		}
	}
	return types
}

// isLMS reports whether position i is a leftmost-S (LMS) position: S-type
// with an L-type predecessor. Position 0 is never LMS (it has no
// predecessor).
func isLMS(types []bool, i int) bool {
	return i > 0 && types[i] && !types[i-1]
}

// lmsPositions returns every LMS position of text in increasing order.
func lmsPositions(text []int32) []int32 {
	types := computeTypes(text)
	var out []int32
	for i := 1; i < len(types); i++ {
		if isLMS(types, i) {
			out = append(out, int32(i))
		}
	}
	return out
}

// lmsLen returns the length of the LMS-substring starting at pos: 1 if pos
// is the final (sentinel) position, otherwise the distance to the next LMS
// boundary inclusive of both endpoints. Ported from
// original_source/include/saca_k.hpp's get_lms_len: advance through the
// initial non-decreasing run, then through the following non-increasing
// run until the next LMS boundary.
func lmsLen(text []int32, pos int) int {
	n := len(text)
	if pos == n-1 {
		return 1
	}

	i := 1
	for text[pos+i] >= text[pos+i-1] {
		i++
	}

	var dist int
	for {
		if pos+i > n-1 || text[pos+i] > text[pos+i-1] {
			break
		}
		if pos+i == n-1 || text[pos+i] < text[pos+i-1] {
			dist = i
		}
		i++
	}
	return dist + 1
}
