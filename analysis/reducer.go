package analysis

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownReducer     = errors.New("unknown reducer")
	ErrUnknownGranularity = errors.New("unknown granularity")
)

// Reducer is the strategy that turns a distance matrix into one value per
// item.
type Reducer int

const (
	MDS Reducer = iota
	Clustering
	Compression
	Occurrence
)

var Reducers = []Reducer{MDS, Clustering, Compression, Occurrence}

func (r Reducer) String() string {
	switch r {
	case MDS:
		return "mds"
	case Clustering:
		return "clustering"
	case Compression:
		return "compression"
	case Occurrence:
		return "occurrence"
	default:
		return fmt.Sprintf("Reducer(%d)", int(r))
	}
}

func ParseReducer(name string) (Reducer, error) {
	for _, r := range Reducers {
		if r.String() == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownReducer, name)
}

// Granularity decides whether measures or whole sections are compared.
type Granularity int

const (
	Measures Granularity = iota
	Sections
)

func (g Granularity) String() string {
	if g == Sections {
		return "sections"
	}
	return "measures"
}

func ParseGranularity(name string) (Granularity, error) {
	switch name {
	case "measures", "":
		return Measures, nil
	case "sections":
		return Sections, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGranularity, name)
}
