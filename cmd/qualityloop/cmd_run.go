package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/qualityloop/config"
)

var runConfig string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Evaluate a YAML scenario file",
	Example: `  qualityloop run --config scenario.yaml

  # scenario.yaml
  name: legendary gears
  kind: recycler-assembler
  input: 100
  assembler:
    qual_modules: 4
    cap_productivity: true # default, as in the assembler command
  recycler:
    keep_from: legendary`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := config.Load(runConfig)
		if err != nil {
			return err
		}
		logger.Info("running scenario", zap.String("name", s.Name), zap.String("kind", s.Kind))

		out, err := s.Run(newCalculator(s.LoopOptions()...))
		if err != nil {
			return err
		}
		if s.Name != "" {
			if _, err = fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", s.Name); err != nil {
				return err
			}
		}
		if err = writeVector(cmd.OutOrStdout(), out.Output); err != nil {
			return err
		}
		if verbose && out.Iterations > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "iterations: %d\n", out.Iterations)
		}

		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&runConfig, "config", "f", "", "Scenario file")
	_ = runCmd.MarkFlagRequired("config")
}
