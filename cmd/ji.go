package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/xenviz/engine/ji"
)

var jiPrimes []int
var jiOddLimit int

func init() {
	jiCmd.Flags().IntSliceVar(&jiPrimes, "primes", []int{3, 5}, "allowed prime factors")
	jiCmd.Flags().IntVar(&jiOddLimit, "odd-limit", 9, "largest odd factor before octave reduction")
	rootCmd.AddCommand(jiCmd)
}

var jiCmd = &cobra.Command{
	Use:   "ji",
	Short: "Prints just intonation intervals within an odd limit",
	Long:  `Prints just intonation intervals within an odd limit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		intervals, err := ji.Generate(jiPrimes, jiOddLimit)
		if err != nil {
			return err
		}
		return json.NewEncoder(os.Stdout).Encode(intervals)
	},
}
