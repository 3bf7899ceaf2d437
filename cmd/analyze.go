package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jsphweid/barsim/analysis"
	"github.com/jsphweid/barsim/color"
	"github.com/jsphweid/barsim/logger"
	"github.com/jsphweid/barsim/model"
	"github.com/jsphweid/barsim/util"
	"github.com/spf13/cobra"
)

var (
	analyzeFlags pipelineFlags
	feature      string
	maxFiles     int
)

func init() {
	analyzeFlags.register(analyzeCmd)
	analyzeCmd.Flags().StringVar(&feature, "feature", "", "color by noteCount, meanPitch, pitchRangeSpan or pitchVariance instead of similarity")
	analyzeCmd.Flags().IntVar(&maxFiles, "max", 0, "maximum number of files to analyze, 0 for all")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze PATH",
	Short: "Analyzes a midi file or every midi file in a directory",
	Long: `Analyzes a midi file or every midi file below a directory and prints
one JSON document per file with sections, distances and colors.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return analyzePath(cmd.OutOrStdout(), args[0], &analyzeFlags)
	},
}

type analyzeOutput struct {
	File  string `json:"file"`
	Track string `json:"track"`
	model.AnalyzeResponse
}

func analyzePath(w io.Writer, path string, flags *pipelineFlags) error {
	paths, err := util.GatherAllMidiPaths(path, maxFiles)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no midi files found at %s", path)
	}

	a, err := flags.analyzer()
	if err != nil {
		return err
	}
	var f *color.Feature
	if feature != "" {
		parsed, err := color.ParseFeature(feature)
		if err != nil {
			return err
		}
		f = &parsed
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	for _, p := range paths {
		track, err := loadTrack(p, flags.track)
		if err == nil {
			err = writeAnalysis(enc, p, track, a, f)
		}
		if err != nil {
			// a single bad file in a directory shouldn't stop the rest
			if len(paths) == 1 {
				return err
			}
			logger.GetLogger().Warn("skipping file", "path", p, "error", err)
		}
	}
	return nil
}

// writeAnalysis colors by similarity, or by f when it is set.
func writeAnalysis(enc *json.Encoder, path string, track model.Track, a *analysis.Analyzer, f *color.Feature) error {
	res, err := a.Analyze(track)
	if err != nil {
		return err
	}
	out := analyzeOutput{File: path, Track: track.Name, AnalyzeResponse: res.Response()}
	if f != nil {
		if out.Colors, err = a.FeatureColors(track, *f); err != nil {
			return err
		}
	}
	return enc.Encode(out)
}
