package chord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/barsim/model"
)

// CreateChordKey returns a canonical key such as "60-64-67".
func CreateChordKey(pitches model.Pitches) string {
	sorted := Normalize(pitches)
	parts := make([]string, len(sorted))
	for i, p := range sorted {
		parts[i] = fmt.Sprintf("%v", p)
	}
	return strings.Join(parts, "-")
}

// Normalize returns the pitches sorted ascending without duplicates.
func Normalize(pitches model.Pitches) model.Pitches {
	res := make(model.Pitches, len(pitches))
	copy(res, pitches)
	sort.Ints(res)
	out := res[:0]
	for i, p := range res {
		if i == 0 || p != res[i-1] {
			out = append(out, p)
		}
	}
	return out
}

// PitchClasses maps each pitch to its pitch class, keeping set semantics.
func PitchClasses(pitches model.Pitches) model.Pitches {
	res := make(model.Pitches, len(pitches))
	for i, p := range pitches {
		res[i] = PitchClass(p)
	}
	return Normalize(res)
}

func PitchClass(pitch int) int {
	pc := pitch % 12
	if pc < 0 {
		pc += 12
	}
	return pc
}

// DetectByExactStart groups notes that start at exactly the same time into
// chords, ordered by start time. Single notes form one-note chords.
func DetectByExactStart(notes []model.Note) []model.Chord {
	byStart := make(map[float64]model.Pitches)
	for _, n := range notes {
		byStart[n.Start] = append(byStart[n.Start], n.Pitch)
	}

	starts := make([]float64, 0, len(byStart))
	for s := range byStart {
		starts = append(starts, s)
	}
	sort.Float64s(starts)

	chords := make([]model.Chord, 0, len(starts))
	for _, s := range starts {
		chords = append(chords, model.Chord{Start: s, Pitches: Normalize(byStart[s])})
	}
	return chords
}
