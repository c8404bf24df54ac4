package fmindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketHeadsTails(t *testing.T) {
	// phi: $=0,A=1,C=2,G=3,T=4 counts over "banana$"-style small alphabet.
	count := []uint64{1, 3, 0, 2, 1}

	heads := make([]uint64, len(count))
	bucketHeads(count, heads)
	assert.Equal(t, []uint64{0, 1, 4, 4, 6}, heads)

	tails := make([]uint64, len(count))
	bucketTails(count, tails)
	assert.Equal(t, []uint64{0, 3, 3, 5, 6}, tails)
}

func TestBucketHeadsTailsEmptyAlphabet(t *testing.T) {
	var count, bkt []uint64
	bucketHeads(count, bkt)
	bucketTails(count, bkt)
}

func TestBucketHeadsTails32(t *testing.T) {
	count := []int32{1, 3, 0, 2, 1}

	heads := make([]int32, len(count))
	bucketHeads32(count, heads)
	assert.Equal(t, []int32{0, 1, 4, 4, 6}, heads)

	tails := make([]int32, len(count))
	bucketTails32(count, tails)
	assert.Equal(t, []int32{0, 3, 3, 5, 6}, tails)
}
