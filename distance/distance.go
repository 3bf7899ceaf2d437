// Package distance computes normalized pairwise distance matrices between
// note collections.
package distance

import (
	"github.com/jsphweid/barsim/align"
	"github.com/jsphweid/barsim/metric"
	"github.com/jsphweid/barsim/model"
	"github.com/jsphweid/barsim/preprocess"
)

const (
	GotohGapOpen   = 1.0
	GotohGapExtend = 0.5

	// weight of the pitch part of levenshteinPitchStart
	PitchStartWeight = 0.5
)

// Matrix is a symmetric n×n distance matrix with a zero diagonal.
type Matrix [][]float64

func NewMatrix(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	return m
}

func (m Matrix) Len() int {
	return len(m)
}

// Compute returns the normalized distance matrix between all collections.
// Each collection is preprocessed once, and a row whose item was already
// found identical to an earlier one is copied instead of recomputed.
func Compute(collections [][]model.Note, kind metric.Kind) (Matrix, error) {
	return compute(collections, kind, true)
}

// ComputeNaive is Compute without reusing rows of identical items.
func ComputeNaive(collections [][]model.Note, kind metric.Kind) (Matrix, error) {
	return compute(collections, kind, false)
}

func compute(collections [][]model.Note, kind metric.Kind, reuseRows bool) (Matrix, error) {
	prepared, err := preprocess.Run(collections, kind)
	if err != nil {
		return nil, err
	}

	n := prepared.Len()
	m := NewMatrix(n)
	for i := 0; i < n; i++ {
		equal := -1
		if reuseRows {
			for k := 0; k < i; k++ {
				if m[k][i] == 0 {
					equal = k
					break
				}
			}
		}
		if equal >= 0 {
			for j := i; j < n; j++ {
				m[i][j] = m[equal][j]
				m[j][i] = m[equal][j]
			}
			continue
		}
		for j := i; j < n; j++ {
			d := pairDistance(prepared, i, j)
			m[i][j] = d
			m[j][i] = d
		}
	}
	return Normalize(m), nil
}

func pairDistance(p *preprocess.Prepared, i, j int) float64 {
	switch p.Kind {
	case metric.LevenshteinPitch:
		return float64(align.Levenshtein(p.Pitches[i], p.Pitches[j]))
	case metric.LevenshteinStringFret:
		return float64(align.Levenshtein(p.StringFrets[i], p.StringFrets[j]))
	case metric.LevenshteinPitchStart:
		pitchDist := float64(align.Levenshtein(p.Pitches[i], p.Pitches[j]))
		startDist := float64(align.Levenshtein(p.Starts[i], p.Starts[j]))
		return PitchStartWeight*pitchDist + (1-PitchStartWeight)*startDist
	case metric.GotohPitch:
		return align.GotohDistance(p.Pitches[i], p.Pitches[j], align.MatchMismatch[int], GotohGapOpen, GotohGapExtend)
	case metric.JaccardPitch:
		return 1 - align.JaccardIndex(p.PitchClasses[i], p.PitchClasses[j])
	case metric.ChordJaccard:
		return chordDistance(p, i, j)
	}
	// preprocess.Run rejects every other kind
	panic("unreachable metric " + p.Kind.String())
}

type chordView struct {
	pitches model.Pitches
	classes model.Pitches
}

func chordViews(p *preprocess.Prepared, collection int) []chordView {
	res := make([]chordView, len(p.Chords[collection]))
	for i := range res {
		res[i] = chordView{
			pitches: p.Chords[collection][i],
			classes: p.ChordClasses[collection][i],
		}
	}
	return res
}

func chordSimilarity(a, b chordView) float64 {
	return align.JaccardIndex(a.pitches, b.pitches) + align.JaccardIndex(a.classes, b.classes)
}

func chordDistance(p *preprocess.Prepared, i, j int) float64 {
	return align.GotohDistance(chordViews(p, i), chordViews(p, j), chordSimilarity, GotohGapOpen, GotohGapExtend)
}

// Normalize maps the smallest entry to 0 and the largest to 1. When all
// entries are equal every entry becomes 0.
func Normalize(m Matrix) Matrix {
	if len(m) == 0 {
		return m
	}
	lo, hi := m[0][0], m[0][0]
	for _, row := range m {
		for _, v := range row {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	res := NewMatrix(len(m))
	if hi == lo {
		return res
	}
	for i, row := range m {
		for j, v := range row {
			res[i][j] = (v - lo) / (hi - lo)
		}
	}
	return res
}
