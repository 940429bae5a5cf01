package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/xenviz/engine/mos"
)

var mosGenerator string
var mosStacks int

func init() {
	mosCmd.Flags().StringVar(&mosGenerator, "generator", "3/2", `generator as cents, n/d or n\edo`)
	mosCmd.Flags().IntVar(&mosStacks, "stacks", 6, "number of generator applications")
	rootCmd.AddCommand(mosCmd)
}

var mosCmd = &cobra.Command{
	Use:   "mos",
	Short: "Stacks a generator and reports the MOS classification",
	Long:  `Stacks a generator and reports the MOS classification`,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := mos.GenerateFromExpression(mosGenerator, mosStacks)
		if err != nil {
			return err
		}
		return json.NewEncoder(os.Stdout).Encode(res)
	},
}
