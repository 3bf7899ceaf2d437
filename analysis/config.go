package analysis

import (
	"log/slog"

	"github.com/jsphweid/barsim/constants"
	"github.com/jsphweid/barsim/logger"
	"github.com/jsphweid/barsim/metric"
)

type Config struct {
	Metric      metric.Kind
	Reducer     Reducer
	Threshold   float64
	Depth       int
	Colormap    string
	Granularity Granularity
	Logger      *slog.Logger
}

type Option func(*Config)

func WithMetric(kind metric.Kind) Option {
	return func(c *Config) {
		c.Metric = kind
	}
}

func WithReducer(r Reducer) Option {
	return func(c *Config) {
		c.Reducer = r
	}
}

// WithThreshold sets the clustering cut as a fraction of the largest merge
// distance.
func WithThreshold(threshold float64) Option {
	return func(c *Config) {
		c.Threshold = threshold
	}
}

func WithDepth(depth int) Option {
	return func(c *Config) {
		c.Depth = depth
	}
}

func WithColormap(name string) Option {
	return func(c *Config) {
		c.Colormap = name
	}
}

func WithGranularity(g Granularity) Option {
	return func(c *Config) {
		c.Granularity = g
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = log
	}
}

func defaultConfig() *Config {
	return &Config{
		Metric:      metric.LevenshteinPitch,
		Reducer:     Clustering,
		Threshold:   0,
		Depth:       constants.DefaultCompressionDepth,
		Colormap:    constants.GetColormap(),
		Granularity: Measures,
		Logger:      logger.GetLogger(),
	}
}
