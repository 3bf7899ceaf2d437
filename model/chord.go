package model

type Pitches = []int

// Chord is a set of pitches sounding from the same start time.
type Chord struct {
	Start   float64
	Pitches Pitches
}
