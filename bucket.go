package fmindex

// bucketHeads computes, for each rank r, the start index of rank r's
// bucket in the first column: the number of characters with rank < r.
// This is "head mode" from spec section 4.2.
func bucketHeads(count []uint64, bkt []uint64) {
	var offset uint64
	for i, n := range count {
		bkt[i] = offset
		offset += n
	}
}

// bucketTails computes, for each rank r, the last index of rank r's
// bucket: the number of characters with rank <= r, minus one. This is
// "tail mode" from spec section 4.2.
func bucketTails(count []uint64, bkt []uint64) {
	var offset uint64
	for i, n := range count {
		offset += n
		bkt[i] = offset - 1
	}
}

// bucketHeads32/bucketTails32 are the int32-counter variants the SA-IS
// builder uses internally, where counts and indices both live in the
// suffix-array workspace's integer width.
func bucketHeads32(count []int32, bkt []int32) {
	var offset int32
	for i, n := range count {
		bkt[i] = offset
		offset += n
	}
}

func bucketTails32(count []int32, bkt []int32) {
	var offset int32
	for i, n := range count {
		offset += n
		bkt[i] = offset - 1
	}
}
