// Package analysis runs the whole pipeline for one track: segmentation,
// distances, reduction and coloring.
package analysis

import (
	"fmt"
	imagecolor "image/color"

	"github.com/google/uuid"
	"github.com/jsphweid/barsim/color"
	"github.com/jsphweid/barsim/distance"
	"github.com/jsphweid/barsim/logger"
	"github.com/jsphweid/barsim/model"
	"github.com/jsphweid/barsim/segment"
)

type Analyzer struct {
	cfg  *Config
	cmap color.Colormap
}

type Result struct {
	ID       uuid.UUID
	Sections []model.Section
	// one row and column per measure or section, depending on granularity
	Matrix distance.Matrix
	Colors []string
}

func New(opts ...Option) (*Analyzer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if !cfg.Metric.Valid() {
		return nil, fmt.Errorf("creating analyzer: invalid metric %d", int(cfg.Metric))
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Discard()
	}
	cmap, err := color.ColormapByName(cfg.Colormap)
	if err != nil {
		return nil, fmt.Errorf("creating analyzer: %w", err)
	}
	return &Analyzer{cfg: cfg, cmap: cmap}, nil
}

func (a *Analyzer) Config() Config {
	return *a.cfg
}

func (a *Analyzer) collections(track model.Track) ([]model.Section, [][]model.Note, error) {
	measures, err := segment.Measures(track)
	if err != nil {
		return nil, nil, fmt.Errorf("segmenting %q: %w", track.Name, err)
	}
	sections := segment.SectionInfo(track)
	if a.cfg.Granularity == Sections {
		return sections, segment.Sections(sections, measures), nil
	}
	return sections, measures, nil
}

// Analyze colors every measure (or section) of track by similarity.
func (a *Analyzer) Analyze(track model.Track) (*Result, error) {
	sections, collections, err := a.collections(track)
	if err != nil {
		return nil, err
	}

	m, err := distance.Compute(collections, a.cfg.Metric)
	if err != nil {
		return nil, fmt.Errorf("computing distances: %w", err)
	}

	colors, err := a.reduce(m)
	if err != nil {
		return nil, err
	}

	res := &Result{
		ID:       uuid.New(),
		Sections: sections,
		Matrix:   m,
		Colors:   color.HexAll(colors),
	}
	a.cfg.Logger.Debug("analyzed track",
		"id", res.ID,
		"track", track.Name,
		"items", len(collections),
		"metric", a.cfg.Metric,
		"reducer", a.cfg.Reducer)
	return res, nil
}

func (a *Analyzer) reduce(m distance.Matrix) ([]imagecolor.Color, error) {
	switch a.cfg.Reducer {
	case MDS:
		return color.ViaMDS(m, a.cmap), nil
	case Clustering:
		return color.ViaClustering(m, a.cmap, a.cfg.Threshold), nil
	case Compression:
		return color.ViaCompression(m, a.cmap, a.cfg.Depth), nil
	case Occurrence:
		return color.ViaOccurrence(m, a.cmap), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownReducer, a.cfg.Reducer)
}

// FeatureColors colors every measure (or section) by a plain statistic
// instead of by similarity.
func (a *Analyzer) FeatureColors(track model.Track, f color.Feature) ([]string, error) {
	_, collections, err := a.collections(track)
	if err != nil {
		return nil, err
	}
	return color.HexAll(color.ViaMetric(collections, f, a.cmap)), nil
}

func (r *Result) Response() model.AnalyzeResponse {
	return model.AnalyzeResponse{
		Id:       r.ID.String(),
		Sections: r.Sections,
		Colors:   r.Colors,
		Matrix:   r.Matrix,
	}
}
