package model

// Rehearsal marks the measure where a named section begins.
type Rehearsal struct {
	Measure int
	Name    string
}

type Track struct {
	Name  string
	Notes []Note

	// note indices where measures start
	MeasureIndices []int

	// NOTE: kept as a slice since insertion order is measure order
	Rehearsals []Rehearsal
}

type MusicPiece struct {
	Name   string
	Tracks []Track
}

// MeasureBoundaries returns the note index each measure starts at. The
// first measure always starts at 0; an index of 0 in MeasureIndices is an
// empty measure.
func (t Track) MeasureBoundaries() []int {
	if len(t.Notes) == 0 {
		return nil
	}
	return append([]int{0}, t.MeasureIndices...)
}

func (t Track) MeasureCount() int {
	return len(t.MeasureBoundaries())
}

func (t Track) HasStringFret() bool {
	for _, n := range t.Notes {
		if n.HasStringFret {
			return true
		}
	}
	return false
}
