// Package fmindex builds and queries a compact FM-index over a sequence
// drawn from a small alphabet (e.g. DNA with a terminal sentinel).
//
// Construction runs a linear-time SA-IS suffix-array build followed by a
// sampled BWT/occurrence/locate table pass. The resulting Index answers
// lf_mapping and locate queries without ever materializing the suffix
// array itself; only the BWT, a start-of-bucket table, and sparse
// occurrence/locate checkpoints are kept.
package fmindex
