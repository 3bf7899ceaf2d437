package model

import "fmt"

type Note struct {
	Pitch    int
	Start    float64
	End      float64
	Velocity uint8
	Channel  uint8

	// only meaningful when HasStringFret is set (tablature sources)
	String        int
	Fret          int
	HasStringFret bool
}

func (n Note) Duration() float64 {
	return n.End - n.Start
}

// StringFret is the tag used to compare tablature positions.
func (n Note) StringFret() string {
	return fmt.Sprintf("%d %d", n.String, n.Fret)
}

// TimePitchLess orders by start time, then pitch.
func TimePitchLess(a, b Note) bool {
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	return a.Pitch < b.Pitch
}
