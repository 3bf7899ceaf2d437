// Package preprocess converts note collections into the representation a
// distance metric compares.
package preprocess

import (
	"github.com/jsphweid/barsim/chord"
	"github.com/jsphweid/barsim/metric"
	"github.com/jsphweid/barsim/model"
)

// Prepared holds one representation per collection. Only the fields used
// by Kind are filled.
type Prepared struct {
	Kind metric.Kind

	Pitches      [][]int
	Starts       [][]float64
	PitchClasses [][]int
	StringFrets  [][]string

	// chords and their pitch classes, per collection
	Chords       [][]model.Pitches
	ChordClasses [][]model.Pitches
}

func (p *Prepared) Len() int {
	switch p.Kind {
	case metric.LevenshteinPitch, metric.GotohPitch, metric.LevenshteinPitchStart:
		return len(p.Pitches)
	case metric.JaccardPitch:
		return len(p.PitchClasses)
	case metric.LevenshteinStringFret:
		return len(p.StringFrets)
	case metric.ChordJaccard:
		return len(p.Chords)
	}
	return 0
}

func Pitches(notes []model.Note) []int {
	res := make([]int, len(notes))
	for i, n := range notes {
		res[i] = n.Pitch
	}
	return res
}

func PitchClasses(notes []model.Note) []int {
	res := make([]int, len(notes))
	for i, n := range notes {
		res[i] = chord.PitchClass(n.Pitch)
	}
	return res
}

func Starts(notes []model.Note) []float64 {
	res := make([]float64, len(notes))
	for i, n := range notes {
		res[i] = n.Start
	}
	return res
}

func StringFrets(notes []model.Note) []string {
	res := make([]string, len(notes))
	for i, n := range notes {
		res[i] = n.StringFret()
	}
	return res
}

// Chords returns the chords of a collection and their pitch classes.
func Chords(notes []model.Note) ([]model.Pitches, []model.Pitches) {
	detected := chord.DetectByExactStart(notes)
	chords := make([]model.Pitches, len(detected))
	classes := make([]model.Pitches, len(detected))
	for i, c := range detected {
		chords[i] = c.Pitches
		classes[i] = chord.PitchClasses(c.Pitches)
	}
	return chords, classes
}

// Run preprocesses every collection once for the given metric.
func Run(collections [][]model.Note, kind metric.Kind) (*Prepared, error) {
	p := &Prepared{Kind: kind}
	switch kind {
	case metric.LevenshteinPitch, metric.GotohPitch:
		p.Pitches = mapEach(collections, Pitches)
	case metric.LevenshteinPitchStart:
		p.Pitches = mapEach(collections, Pitches)
		p.Starts = mapEach(collections, Starts)
	case metric.LevenshteinStringFret:
		p.StringFrets = mapEach(collections, StringFrets)
	case metric.JaccardPitch:
		p.PitchClasses = mapEach(collections, PitchClasses)
	case metric.ChordJaccard:
		p.Chords = make([][]model.Pitches, len(collections))
		p.ChordClasses = make([][]model.Pitches, len(collections))
		for i, c := range collections {
			p.Chords[i], p.ChordClasses[i] = Chords(c)
		}
	default:
		return nil, &metric.InvalidMetricError{Name: kind.String()}
	}
	return p, nil
}

func mapEach[A any](collections [][]model.Note, f func([]model.Note) A) []A {
	res := make([]A, len(collections))
	for i, c := range collections {
		res[i] = f(c)
	}
	return res
}
