package color

import (
	"fmt"
	"image/color"

	"github.com/jsphweid/barsim/model"
	"github.com/jsphweid/barsim/preprocess"
	"github.com/jsphweid/barsim/util"
)

// Feature is a per-collection statistic that can be colored directly.
type Feature int

const (
	NoteCount Feature = iota
	MeanPitch
	PitchRangeSpan
	PitchVariance
)

var Features = []Feature{NoteCount, MeanPitch, PitchRangeSpan, PitchVariance}

func (f Feature) String() string {
	switch f {
	case NoteCount:
		return "noteCount"
	case MeanPitch:
		return "meanPitch"
	case PitchRangeSpan:
		return "pitchRangeSpan"
	case PitchVariance:
		return "pitchVariance"
	default:
		return fmt.Sprintf("Feature(%d)", int(f))
	}
}

func ParseFeature(name string) (Feature, error) {
	for _, f := range Features {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown feature %q", name)
}

// Value computes f for one collection; empty collections give 0.
func (f Feature) Value(notes []model.Note) float64 {
	pitches := preprocess.Pitches(notes)
	switch f {
	case NoteCount:
		return float64(len(notes))
	case MeanPitch:
		return util.Mean(pitches)
	case PitchRangeSpan:
		lo, hi, _ := util.Extent(pitches)
		return float64(hi - lo)
	case PitchVariance:
		return util.Variance(pitches)
	}
	return 0
}

// ViaMetric colors each collection by a feature value.
func ViaMetric(collections [][]model.Note, f Feature, cmap Colormap) []color.Color {
	values := make([]float64, len(collections))
	for i, c := range collections {
		values[i] = f.Value(c)
	}
	return MapToColors(values, cmap)
}
