package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qualityloop/quality"
)

var (
	probChance float64

	matrixChance float64
	matrixRatio  float64
	matrixKeep   string
	matrixLaTeX  bool
)

var probCmd = &cobra.Command{
	Use:   "prob <in-tier> <out-tier>",
	Short: "Print the probability of turning one tier into another",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := quality.ParseTier(args[0])
		if err != nil {
			return err
		}
		out, err := quality.ParseTier(args[1])
		if err != nil {
			return err
		}
		p, err := quality.TransitionProbability(probChance, in, out)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%.10g\n", p)

		return err
	},
}

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Print the 5x5 transition matrix for uniform parameters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		keep, err := quality.ParseTier(matrixKeep)
		if err != nil {
			return err
		}
		m, err := builder.Uniform(matrixChance, matrixRatio, keep)
		if err != nil {
			return err
		}

		if matrixLaTeX {
			return writeLaTeX(cmd.OutOrStdout(), m)
		}

		return writeMatrix(cmd.OutOrStdout(), m)
	},
}

func init() {
	probCmd.Flags().Float64VarP(&probChance, "chance", "c", 0, "Quality chance in %")

	matrixCmd.Flags().Float64VarP(&matrixChance, "chance", "c", 0, "Quality chance in %")
	matrixCmd.Flags().Float64VarP(&matrixRatio, "ratio", "r", 1, "Items out per item in")
	matrixCmd.Flags().StringVarP(&matrixKeep, "keep", "k", "none", "Lowest tier removed from the loop")
	matrixCmd.Flags().BoolVar(&matrixLaTeX, "latex", false, "Print as a LaTeX bmatrix")
}
