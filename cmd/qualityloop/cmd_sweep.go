package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qualityloop/quality"
)

var (
	sweepInput   float64
	sweepChances []float64
)

// defaultSweepChances are the whole-percent chances plus four legendary
// quality modules at 6.2%.
func defaultSweepChances() []float64 {
	chances := make([]float64, 0, 25)
	for c := 1; c <= 24; c++ {
		chances = append(chances, float64(c))
	}

	return append(chances, 24.8)
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Tabulate normal items consumed per legendary across recycler chances",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		chances := sweepChances
		if len(chances) == 0 {
			chances = defaultSweepChances()
		}
		points, err := newCalculator().RecyclerSweep(cmd.Context(), chances, sweepInput)
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "chance\tlegendary\tinput/legendary")
		for _, p := range points {
			fmt.Fprintf(tw, "%g\t%.6g\t%.6g\n", p.Chance, p.Output[quality.Legendary], p.InputPerLegendary)
		}

		return tw.Flush()
	},
}

func init() {
	sweepCmd.Flags().Float64VarP(&sweepInput, "input", "i", 1, "Normal-quality items fed per unit time")
	sweepCmd.Flags().Float64SliceVarP(&sweepChances, "chances", "c", nil, "Chances in % (default 1..24 and 24.8)")
}
