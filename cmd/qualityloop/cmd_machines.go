package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/qualityloop/loop"
	"github.com/katalvlaran/qualityloop/params"
	"github.com/katalvlaran/qualityloop/quality"
)

var (
	recyclerInput   float64
	recyclerKeep    string
	recyclerModules int
	recyclerRecipe  float64
	recyclerExact   bool

	crusherInput   float64
	crusherKeep    string
	crusherModules int

	assemblerInput   float64
	assemblerProd    int
	assemblerQual    int
	assemblerBase    float64
	assemblerRecipe  float64
	assemblerFull    bool
	assemblerUncap   bool
	assemblerKeep    string
	assemblerRecKeep string
)

var recyclerCmd = &cobra.Command{
	Use:   "recycler",
	Short: "Accumulate a pure recycler loop",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		keep, err := quality.ParseTier(recyclerKeep)
		if err != nil {
			return err
		}
		r := params.DefaultRecycler()
		r.KeepFrom, r.Modules, r.RecipeRatio = keep, recyclerModules, recyclerRecipe

		calc := newCalculator()
		if recyclerExact {
			out, err := calc.RecyclerExact(recyclerInput, r)
			if err != nil {
				return err
			}

			return writeVector(cmd.OutOrStdout(), out)
		}
		res, err := calc.RecyclerLoop(recyclerInput, r)
		if err != nil {
			return err
		}

		return writeResult(cmd, res)
	},
}

var crusherCmd = &cobra.Command{
	Use:   "crusher",
	Short: "Accumulate an asteroid crusher loop",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		keep, err := quality.ParseTier(crusherKeep)
		if err != nil {
			return err
		}
		c := params.DefaultAsteroidCrusher()
		c.KeepFrom, c.Modules = keep, crusherModules

		res, err := newCalculator().CrusherLoop(crusherInput, c)
		if err != nil {
			return err
		}

		return writeResult(cmd, res)
	},
}

var assemblerCmd = &cobra.Command{
	Use:   "assembler",
	Short: "Accumulate an assembler coupled with a recycler",
	Long: `Couples an assembler (ingredients to items) with a recycler that sends
items below --recycler-keep back as ingredients. The input enters as normal
ingredients; the item/* rows of kept tiers are the production rates.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		keep, err := quality.ParseTier(assemblerKeep)
		if err != nil {
			return err
		}
		recKeep, err := quality.ParseTier(assemblerRecKeep)
		if err != nil {
			return err
		}
		a := params.DefaultAssembler(assemblerProd, assemblerQual)
		a.BaseProdBonus = assemblerBase
		a.RecipeRatio = assemblerRecipe
		a.FullProdInLegendary = assemblerFull
		a.CapProductivity = !assemblerUncap
		a.KeepFrom = keep
		r := params.DefaultRecycler()
		r.KeepFrom = recKeep

		v0, err := loop.FromScalarInput(assemblerInput, quality.CompositeSize)
		if err != nil {
			return err
		}
		logger.Debug("assembler setup",
			zap.Float64("chance", a.Chance()),
			zap.Float64("ratio", a.Ratio(a.ProdModules)),
		)
		res, err := newCalculator().RecyclerAssemblerLoop(v0, a, r)
		if err != nil {
			return err
		}

		return writeResult(cmd, res)
	},
}

func writeResult(cmd *cobra.Command, res loop.Result) error {
	if err := writeVector(cmd.OutOrStdout(), res.Output); err != nil {
		return err
	}
	if verbose {
		_, err := fmt.Fprintf(cmd.ErrOrStderr(), "iterations: %d, residual: %g\n", res.Iterations, res.Residual)
		return err
	}

	return nil
}

func init() {
	recyclerCmd.Flags().Float64VarP(&recyclerInput, "input", "i", 1000, "Normal-quality items fed per unit time")
	recyclerCmd.Flags().StringVarP(&recyclerKeep, "keep", "k", "legendary", "Lowest tier removed from the loop")
	recyclerCmd.Flags().IntVarP(&recyclerModules, "modules", "m", params.RecyclerSlots, "Quality modules")
	recyclerCmd.Flags().Float64Var(&recyclerRecipe, "recipe-ratio", 1, "Items produced per craft of the recycled recipe")
	recyclerCmd.Flags().BoolVar(&recyclerExact, "exact", false, "Solve in closed form instead of iterating")

	crusherCmd.Flags().Float64VarP(&crusherInput, "input", "i", 1000, "Normal-quality asteroids fed per unit time")
	crusherCmd.Flags().StringVarP(&crusherKeep, "keep", "k", "legendary", "Lowest tier removed from the loop")
	crusherCmd.Flags().IntVarP(&crusherModules, "modules", "m", params.CrusherSlots, "Quality modules")

	assemblerCmd.Flags().Float64VarP(&assemblerInput, "input", "i", 1000, "Normal-quality ingredients fed per unit time")
	assemblerCmd.Flags().IntVar(&assemblerProd, "prod", 0, "Productivity modules")
	assemblerCmd.Flags().IntVar(&assemblerQual, "qual", params.AssemblerSlots, "Quality modules")
	assemblerCmd.Flags().Float64Var(&assemblerBase, "base-prod", 0, "Built-in productivity bonus in %")
	assemblerCmd.Flags().Float64Var(&assemblerRecipe, "recipe-ratio", 1, "Items produced per ingredient")
	assemblerCmd.Flags().BoolVar(&assemblerFull, "full-prod-legendary", false, "Use full productivity for legendary ingredients")
	assemblerCmd.Flags().BoolVar(&assemblerUncap, "uncapped", false, "Ignore the productivity cap")
	assemblerCmd.Flags().StringVar(&assemblerKeep, "keep", "none", "Lowest ingredient tier not crafted")
	assemblerCmd.Flags().StringVar(&assemblerRecKeep, "recycler-keep", "legendary", "Lowest item tier not recycled")
}
