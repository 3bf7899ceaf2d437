package cmd

import (
	"github.com/jsphweid/barsim/constants"
	"github.com/jsphweid/barsim/logger"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "barsim",
	Short: "Colors the bars of a piece by similarity",
	Long: `barsim cuts tracks into measures or sections, compares them pairwise
and turns the distances into colors.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.InitLogger(logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.GetLogLevel(), "debug, info, warn or error")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
