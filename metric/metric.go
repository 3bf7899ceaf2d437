// Package metric names the distance metrics note collections can be
// compared with.
package metric

import "fmt"

type Kind int

const (
	LevenshteinPitch Kind = iota
	LevenshteinPitchStart
	LevenshteinStringFret
	GotohPitch
	JaccardPitch
	ChordJaccard
)

// All lists every supported metric in a stable order.
var All = []Kind{
	LevenshteinPitch,
	LevenshteinPitchStart,
	LevenshteinStringFret,
	GotohPitch,
	JaccardPitch,
	ChordJaccard,
}

func (k Kind) String() string {
	switch k {
	case LevenshteinPitch:
		return "levenshteinPitch"
	case LevenshteinPitchStart:
		return "levenshteinPitchStart"
	case LevenshteinStringFret:
		return "levenshteinStringFret"
	case GotohPitch:
		return "gotohPitch"
	case JaccardPitch:
		return "jaccardPitch"
	case ChordJaccard:
		return "chordJaccard"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) Valid() bool {
	return k >= LevenshteinPitch && k <= ChordJaccard
}

type InvalidMetricError struct {
	Name string
}

func (e *InvalidMetricError) Error() string {
	return fmt.Sprintf("invalid distance metric %q", e.Name)
}

// Parse maps a metric name to its Kind.
func Parse(name string) (Kind, error) {
	for _, k := range All {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, &InvalidMetricError{Name: name}
}

// Names returns the names of all metrics.
func Names() []string {
	res := make([]string, len(All))
	for i, k := range All {
		res[i] = k.String()
	}
	return res
}
