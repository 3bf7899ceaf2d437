package constants

import (
	"os"
	"time"
)

func GetAddr() string {
	addr := os.Getenv("BARSIM_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetColormap() string {
	name := os.Getenv("BARSIM_COLORMAP")
	if name != "" {
		return name
	}
	return DefaultColormap
}

func GetLogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		return level
	}
	return "info"
}

const DefaultColormap = "bluered"

const DefaultMetric = "levenshteinPitch"

const DefaultReducer = "clustering"

// depth at which the repetition hierarchy is cut when coloring, 0 walks
// the whole hierarchy
const DefaultCompressionDepth = 0

const WatchPollInterval = 500 * time.Millisecond

const WatchDebounce = 750 * time.Millisecond

// largest accepted POST /analyze body
const MaxRequestBytes = 4 << 20
