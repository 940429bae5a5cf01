package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "xenviz",
	Short: "Tuning engine for the xenviz visualizer",
	Long:  `Computes EDO, just intonation and MOS note sets as plain JSON data.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
