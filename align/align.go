// Package align holds the sequence comparison primitives used to build
// distance matrices.
package align

import (
	"math"

	"github.com/jsphweid/barsim/util"
)

// Similarity scores how alike two sequence elements are, higher is closer.
type Similarity[T any] func(a, b T) float64

// Levenshtein is the unit cost edit distance between a and b.
func Levenshtein[T comparable](a, b []T) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = util.Min(util.Min(prev[j]+1, curr[j-1]+1), prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// MatchMismatch scores +1 for equal and -1 for different elements.
func MatchMismatch[T comparable](a, b T) float64 {
	if a == b {
		return 1
	}
	return -1
}

// Gotoh returns the best global alignment score of a and b with affine gap
// costs: a gap of length k costs gapOpen + (k-1)*gapExtend.
func Gotoh[T any](a, b []T, sim Similarity[T], gapOpen, gapExtend float64) float64 {
	n, m := len(a), len(b)
	gap := func(k int) float64 {
		if k == 0 {
			return 0
		}
		return -(gapOpen + float64(k-1)*gapExtend)
	}
	if n == 0 || m == 0 {
		return gap(n + m)
	}

	negInf := math.Inf(-1)
	// d: best score, p: ending in a gap in b, q: ending in a gap in a
	dPrev := make([]float64, m+1)
	pPrev := make([]float64, m+1)
	d := make([]float64, m+1)
	p := make([]float64, m+1)
	for j := 0; j <= m; j++ {
		dPrev[j] = gap(j)
		pPrev[j] = negInf
	}

	for i := 1; i <= n; i++ {
		d[0] = gap(i)
		p[0] = negInf
		q := negInf
		for j := 1; j <= m; j++ {
			p[j] = math.Max(dPrev[j]-gapOpen, pPrev[j]-gapExtend)
			q = math.Max(d[j-1]-gapOpen, q-gapExtend)
			d[j] = math.Max(dPrev[j-1]+sim(a[i-1], b[j-1]), math.Max(p[j], q))
		}
		dPrev, d = d, dPrev
		pPrev, p = p, pPrev
	}
	return dPrev[m]
}

// GotohDistance turns the Gotoh similarity into a dissimilarity that is 0
// for identical sequences and grows as they differ.
func GotohDistance[T any](a, b []T, sim Similarity[T], gapOpen, gapExtend float64) float64 {
	selfA := Gotoh(a, a, sim, gapOpen, gapExtend)
	selfB := Gotoh(b, b, sim, gapOpen, gapExtend)
	return (selfA+selfB)/2 - Gotoh(a, b, sim, gapOpen, gapExtend)
}

// JaccardIndex is |a ∩ b| / |a ∪ b| with duplicates ignored. Two empty
// inputs are identical and score 1.
func JaccardIndex[T comparable](a, b []T) float64 {
	setA := make(map[T]struct{}, len(a))
	for _, v := range a {
		setA[v] = struct{}{}
	}
	setB := make(map[T]struct{}, len(b))
	for _, v := range b {
		setB[v] = struct{}{}
	}
	if len(setA) == 0 && len(setB) == 0 {
		return 1
	}

	var intersection int
	for v := range setA {
		if _, ok := setB[v]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}
