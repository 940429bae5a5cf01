package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xenviz/engine/constants"
	"github.com/xenviz/engine/edo"
	"github.com/xenviz/engine/midi"
	"github.com/xenviz/engine/mos"
	"github.com/xenviz/engine/util"
)

var exportGenerator string
var exportStacks int
var exportEdo int
var exportOut string

func init() {
	exportCmd.Flags().StringVar(&exportGenerator, "generator", "3/2", `generator as cents, n/d or n\edo`)
	exportCmd.Flags().IntVar(&exportStacks, "stacks", 6, "number of generator applications")
	exportCmd.Flags().IntVar(&exportEdo, "edo", 0, "export an EDO instead of a stacked scale")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output filename, random when empty")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exports a computed scale as a midi file",
	Long:  `Exports a computed scale as a midi file, one ascending pass with pitch bends`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cents, err := scaleCents()
		if err != nil {
			return err
		}
		filename, err := midi.WriteScale(cents, exportOut)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %v\n", filename)
		return nil
	},
}

// scaleCents collects the selected scale ascending, closing on the octave.
func scaleCents() ([]float64, error) {
	var cents []float64
	if exportEdo > 0 {
		notes, err := edo.Generate(exportEdo)
		if err != nil {
			return nil, err
		}
		for _, n := range notes {
			cents = append(cents, n.Cents)
		}
	} else {
		res, err := mos.GenerateFromExpression(exportGenerator, exportStacks)
		if err != nil {
			return nil, err
		}
		for _, n := range res.Notes {
			cents = append(cents, n.Cents)
		}
		cents = util.SortedCopy(cents)
	}
	return append(cents, constants.CentsPerOctave), nil
}
