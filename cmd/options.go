package cmd

import (
	"fmt"

	"github.com/jsphweid/barsim/analysis"
	"github.com/jsphweid/barsim/constants"
	"github.com/jsphweid/barsim/logger"
	"github.com/jsphweid/barsim/metric"
	"github.com/jsphweid/barsim/midi"
	"github.com/jsphweid/barsim/model"
	"github.com/spf13/cobra"
)

type pipelineFlags struct {
	metric    string
	reducer   string
	colormap  string
	threshold float64
	depth     int
	sections  bool
	track     int
}

func (f *pipelineFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.metric, "metric", constants.DefaultMetric, "distance metric")
	flags.StringVar(&f.reducer, "reducer", constants.DefaultReducer, "mds, clustering, compression or occurrence")
	flags.StringVar(&f.colormap, "colormap", constants.GetColormap(), "colormap name")
	flags.Float64Var(&f.threshold, "threshold", 0, "clustering cut as a fraction of the largest merge distance")
	flags.IntVar(&f.depth, "depth", constants.DefaultCompressionDepth, "repetition depth used by the compression reducer, 0 for all")
	flags.BoolVar(&f.sections, "sections", false, "compare whole sections instead of measures")
	flags.IntVar(&f.track, "track", 0, "index of the track to analyze among tracks with notes")
}

func (f *pipelineFlags) analyzer() (*analysis.Analyzer, error) {
	granularity := "measures"
	if f.sections {
		granularity = "sections"
	}
	opts, err := buildOptions(f.metric, f.reducer, f.colormap, granularity, f.threshold, f.depth)
	if err != nil {
		return nil, err
	}
	return analysis.New(opts...)
}

// buildOptions parses names coming from flags or request bodies. Empty
// names fall back to the defaults.
func buildOptions(metricName, reducerName, colormap, granularity string, threshold float64, depth int) ([]analysis.Option, error) {
	if metricName == "" {
		metricName = constants.DefaultMetric
	}
	if reducerName == "" {
		reducerName = constants.DefaultReducer
	}
	if colormap == "" {
		colormap = constants.GetColormap()
	}

	kind, err := metric.Parse(metricName)
	if err != nil {
		return nil, err
	}
	reducer, err := analysis.ParseReducer(reducerName)
	if err != nil {
		return nil, err
	}
	g, err := analysis.ParseGranularity(granularity)
	if err != nil {
		return nil, err
	}
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("threshold must be within [0, 1], got %v", threshold)
	}
	if depth < 0 {
		return nil, fmt.Errorf("depth must not be negative, got %d", depth)
	}

	return []analysis.Option{
		analysis.WithMetric(kind),
		analysis.WithReducer(reducer),
		analysis.WithColormap(colormap),
		analysis.WithGranularity(g),
		analysis.WithThreshold(threshold),
		analysis.WithDepth(depth),
		analysis.WithLogger(logger.GetLogger()),
	}, nil
}

func loadTrack(path string, index int) (model.Track, error) {
	piece, err := midi.ReadPiece(path)
	if err != nil {
		return model.Track{}, err
	}
	if index < 0 || index >= len(piece.Tracks) {
		return model.Track{}, fmt.Errorf("%s has %d tracks with notes, no track %d", path, len(piece.Tracks), index)
	}
	return piece.Tracks[index], nil
}
