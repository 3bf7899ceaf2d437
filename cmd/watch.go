package cmd

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/barsim/constants"
	"github.com/jsphweid/barsim/logger"
	"github.com/spf13/cobra"
)

var watchFlags pipelineFlags

func init() {
	watchFlags.register(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Re-analyzes a midi file whenever it changes",
	Long:  `Re-analyzes a midi file whenever it changes, until interrupted`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		a, err := watchFlags.analyzer()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		run := func() {
			track, err := loadTrack(path, watchFlags.track)
			if err == nil {
				err = writeAnalysis(enc, path, track, a, nil)
			}
			if err != nil {
				logger.GetLogger().Error("analysis failed", "path", path, "error", err)
			}
		}
		return watch(ctx, path, constants.WatchPollInterval, constants.WatchDebounce, run)
	},
}

// watch calls onChange once and then again whenever the modification time of
// path moves forward. Bursts of changes within wait collapse into one call.
func watch(ctx context.Context, path string, interval, wait time.Duration, onChange func()) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	last := info.ModTime()
	debounced := debounce.New(wait)
	// a pending call must not fire once the watch is over
	guarded := func() {
		if ctx.Err() == nil {
			onChange()
		}
	}
	onChange()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			debounced(func() {})
			return nil
		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				logger.GetLogger().Warn("could not stat watched file", "path", path, "error", err)
				continue
			}
			if info.ModTime().After(last) {
				last = info.ModTime()
				debounced(guarded)
			}
		}
	}
}
