package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jsphweid/barsim/midi"
	"github.com/jsphweid/barsim/segment"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sectionsCmd)
}

var sectionsCmd = &cobra.Command{
	Use:   "sections FILE",
	Short: "Lists the sections of every track in a midi file",
	Long:  `Lists the sections of every track in a midi file`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printSections(cmd.OutOrStdout(), args[0])
	},
}

func printSections(w io.Writer, path string) error {
	piece, err := midi.ReadPiece(path)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, track := range piece.Tracks {
		fmt.Fprintf(tw, "%d: %s (%d measures)\n", i, track.Name, track.MeasureCount())
		for _, s := range segment.SectionInfo(track) {
			name := s.Name
			if name == "" {
				name = "-"
			}
			fmt.Fprintf(tw, "\t%s\t%d-%d\t%d\n", name, s.StartMeasure, s.EndMeasure, s.Length)
		}
	}
	return tw.Flush()
}
