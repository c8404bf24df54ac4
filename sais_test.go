package fmindex

import (
	"math/rand"
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func genRandText(size int, k int32) []int32 {
	text := make([]int32, size-1)
	for i := range text {
		text[i] = rand.Int31n(k-1) + 1
	}
	text = append(text, 0)
	return text
}

// referenceSA sorts suffixes directly, the way
// _examples/nkamenev-suffixarr/suffixarr_test.go's makeSA does, as the
// ground truth a linear-time builder is checked against.
func referenceSA(text []int32) []int32 {
	sa := make([]int32, len(text))
	for i := range sa {
		sa[i] = int32(i)
	}
	sort.Slice(sa, func(i, j int) bool {
		return slices.Compare(text[sa[i]:], text[sa[j]:]) < 0
	})
	return sa
}

func TestBuildSAAgainstReference(t *testing.T) {
	tests := map[string]struct {
		input []int32
	}{
		"empty": {
			input: []int32{},
		},
		"single character": {
			input: []int32{0},
		},
		"same characters then sentinel": {
			input: []int32{1, 1, 1, 1, 1, 1, 0},
		},
		"one LMS": {
			input: []int32{1, 1, 2, 1, 2, 0},
		},
		"repeated pattern": {
			input: []int32{2, 1, 2, 1, 2, 1, 2, 1, 0},
		},
		"reverse sorted": {
			input: []int32{5, 4, 3, 2, 1, 0},
		},
		"abracadabra": {
			input: []int32("abracadabra\x00"),
		},
		"long random small alphabet": {
			input: genRandText(2000, 5),
		},
		"long random wide alphabet": {
			input: genRandText(2000, 250),
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, referenceSA(tc.input), buildSA(tc.input))
		})
	}
}

func TestBuildSAConcreteScenarios(t *testing.T) {
	tests := map[string]struct {
		input []int32
		want  []int32
	}{
		"bananaa": {
			input: []int32{1, 0, 2, 0, 2, 0, 0},
			want:  []int32{6, 5, 3, 1, 0, 4, 2},
		},
		"banaananana forces one recursion": {
			input: []int32{1, 0, 2, 0, 0, 2, 0, 2, 0, 2, 0},
			want:  []int32{10, 3, 8, 1, 6, 4, 0, 9, 2, 7, 5},
		},
		"mississippii": {
			input: []int32{1, 0, 3, 3, 0, 3, 3, 0, 2, 2, 0, 0},
			want:  []int32{11, 10, 7, 4, 1, 0, 9, 8, 6, 3, 5, 2},
		},
		"40-char DNA string": {
			input: []int32{0, 0, 3, 1, 2, 0, 0, 2, 2, 3, 1, 2, 3, 0, 0, 2, 2, 0, 1, 0, 1, 2, 2, 3, 3, 2, 0, 2, 1, 2, 3, 3, 1, 0, 2, 1, 2, 3, 3, 0},
			want: []int32{
				39, 13, 5, 0, 17, 19, 33, 26, 14, 6, 1, 18, 32, 3, 20, 10, 35, 28, 4, 16,
				25, 34, 27, 15, 7, 21, 11, 8, 36, 29, 22, 38, 12, 31, 2, 9, 24, 37, 30, 23,
			},
		},
		"73-char DNA string": {
			input: []int32{
				3, 0, 0, 0, 2, 2, 2, 2, 1, 1, 1, 1, 1, 1, 0, 0, 3, 0, 3, 0, 0, 3, 3, 3, 3,
				2, 2, 2, 2, 1, 0, 0, 0, 2, 2, 2, 2, 1, 1, 1, 1, 1, 1, 0, 0, 3, 0, 0, 3, 3,
				3, 3, 2, 2, 2, 2, 1, 0, 0, 3, 0, 0, 0, 0, 0, 0, 0, 3, 3, 3, 3, 3, 0,
			},
			want: []int32{
				72, 60, 61, 62, 63, 30, 1, 64, 31, 2, 57, 43, 14, 19, 46, 65, 32, 3, 58, 17,
				44, 15, 20, 47, 66, 29, 56, 42, 13, 41, 12, 40, 11, 39, 10, 38, 9, 37, 8, 28,
				55, 36, 7, 27, 54, 35, 6, 26, 53, 34, 5, 25, 52, 33, 4, 71, 59, 0, 18, 45,
				16, 24, 51, 70, 23, 50, 69, 22, 49, 68, 21, 48, 67,
			},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, buildSA(tc.input))
		})
	}
}

// TestSAPermutation checks property 1 of spec section 8: sorted(SA) is
// {0,...,n-1} and SA[0] = n-1 (the sentinel's suffix sorts first).
func TestSAPermutation(t *testing.T) {
	text := genRandText(500, 5)
	sa := buildSA(text)

	seen := make([]bool, len(sa))
	for _, p := range sa {
		assert.False(t, seen[p], "duplicate SA entry %d", p)
		seen[p] = true
	}
	assert.Equal(t, int32(len(text)-1), sa[0])
}

// TestFirstColumnOrder checks property 2 of spec section 8.
func TestFirstColumnOrder(t *testing.T) {
	text := genRandText(500, 5)
	sa := buildSA(text)
	for i := 1; i < len(sa); i++ {
		assert.LessOrEqual(t, text[sa[i-1]], text[sa[i]])
	}
}
