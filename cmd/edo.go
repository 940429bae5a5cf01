package cmd

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/xenviz/engine/edo"
)

func init() {
	rootCmd.AddCommand(edoCmd)
}

var edoCmd = &cobra.Command{
	Use:   "edo <divisions>",
	Short: "Prints an equal division of the octave",
	Long:  `Prints an equal division of the octave`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		divisions, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		notes, err := edo.Generate(divisions)
		if err != nil {
			return err
		}
		return json.NewEncoder(os.Stdout).Encode(notes)
	},
}
