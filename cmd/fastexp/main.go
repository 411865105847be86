package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/oste/fastexp/internal/demo"
	"github.com/oste/fastexp/logger"
)

var rootCmd = &cobra.Command{
	Use:           "fastexp",
	Short:         "demonstrates binary exponentiation with and without a modulus",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return demo.Run(cmd.OutOrStdout())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log := logger.Logger()
		log.Error().Err(err).Msg("fastexp failed")
		os.Exit(-1)
	}
}
