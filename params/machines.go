package params

import (
	"math"

	"github.com/katalvlaran/qualityloop/quality"
)

// Game constants used by the Default* constructors.
const (
	// RecyclerRatio is the fraction of an item a recycler returns.
	RecyclerRatio = 0.25
	// CrusherRatio is the yield of an asteroid reprocessing crusher.
	CrusherRatio = 0.8

	RecyclerSlots  = 4
	CrusherSlots   = 2
	AssemblerSlots = 4

	// QualityModuleBonus is the quality chance (%) of one quality module.
	QualityModuleBonus = 6.2
	// ProdModuleBonus is the productivity (%) of one productivity module.
	ProdModuleBonus = 25.0
	// ProductivityCap is the ceiling (%) on total bonus productivity.
	ProductivityCap = 300.0

	basePercent = 100.0
)

// RecyclerRows returns the rows of a recycler with an explicit quality
// chance: (chance, 0.25/recipeRatio) below keep, absorbing above.
func RecyclerRows(chance float64, keep quality.Tier, recipeRatio float64) (quality.RowParams, error) {
	return quality.UniformRows(chance, RecyclerRatio/recipeRatio, keep)
}

// Recycler describes a recycler stage. KeepFrom is the lowest item tier
// removed from the loop instead of recycled.
type Recycler struct {
	KeepFrom           quality.Tier `yaml:"keep_from" validate:"gte=0,lte=5"`
	RecipeRatio        float64      `yaml:"recipe_ratio" validate:"gt=0"`
	Modules            int          `yaml:"modules" validate:"gte=0"`
	Slots              int          `yaml:"slots" validate:"gt=0"`
	QualityModuleBonus float64      `yaml:"quality_module_bonus" validate:"gte=0"`
}

// DefaultRecycler keeps legendaries and fills every slot with quality modules.
func DefaultRecycler() Recycler {
	return Recycler{
		KeepFrom:           quality.Legendary,
		RecipeRatio:        1,
		Modules:            RecyclerSlots,
		Slots:              RecyclerSlots,
		QualityModuleBonus: QualityModuleBonus,
	}
}

// Chance is the recycler's total quality chance in %.
func (r Recycler) Chance() float64 { return float64(r.Modules) * r.QualityModuleBonus }

// Rows derives the recycler's transition rows.
func (r Recycler) Rows() (quality.RowParams, error) {
	if err := validateStruct(r); err != nil {
		return quality.RowParams{}, paramsErrorf(opRecycler, err)
	}
	if err := checkSlots(r.Modules, r.Slots); err != nil {
		return quality.RowParams{}, paramsErrorf(opRecycler, err)
	}
	rows, err := RecyclerRows(r.Chance(), r.KeepFrom, r.RecipeRatio)
	if err != nil {
		return quality.RowParams{}, paramsErrorf(opRecycler, err)
	}

	return rows, nil
}

// AsteroidCrusher describes an asteroid reprocessing loop: the recycler
// geometry with CrusherRatio yield per pass.
type AsteroidCrusher struct {
	KeepFrom           quality.Tier `yaml:"keep_from" validate:"gte=0,lte=5"`
	Modules            int          `yaml:"modules" validate:"gte=0"`
	Slots              int          `yaml:"slots" validate:"gt=0"`
	QualityModuleBonus float64      `yaml:"quality_module_bonus" validate:"gte=0"`
}

// DefaultAsteroidCrusher keeps legendaries with both slots on quality modules.
func DefaultAsteroidCrusher() AsteroidCrusher {
	return AsteroidCrusher{
		KeepFrom:           quality.Legendary,
		Modules:            CrusherSlots,
		Slots:              CrusherSlots,
		QualityModuleBonus: QualityModuleBonus,
	}
}

// Chance is the crusher's total quality chance in %.
func (c AsteroidCrusher) Chance() float64 { return float64(c.Modules) * c.QualityModuleBonus }

// Rows derives the crusher's transition rows.
func (c AsteroidCrusher) Rows() (quality.RowParams, error) {
	if err := validateStruct(c); err != nil {
		return quality.RowParams{}, paramsErrorf(opCrusher, err)
	}
	if err := checkSlots(c.Modules, c.Slots); err != nil {
		return quality.RowParams{}, paramsErrorf(opCrusher, err)
	}
	rows, err := quality.UniformRows(c.Chance(), CrusherRatio, c.KeepFrom)
	if err != nil {
		return quality.RowParams{}, paramsErrorf(opCrusher, err)
	}

	return rows, nil
}

// Assembler describes the crafting stage of a recycler/assembler loop.
// KeepFrom is the lowest ingredient tier kept instead of assembled.
type Assembler struct {
	ProdModules         int          `yaml:"prod_modules" validate:"gte=0"`
	QualModules         int          `yaml:"qual_modules" validate:"gte=0"`
	KeepFrom            quality.Tier `yaml:"keep_from" validate:"gte=0,lte=5"`
	BaseProdBonus       float64      `yaml:"base_prod_bonus" validate:"gte=0"`
	FullProdInLegendary bool         `yaml:"full_prod_in_legendary"`
	RecipeRatio         float64      `yaml:"recipe_ratio" validate:"gt=0"`
	Slots               int          `yaml:"slots" validate:"gt=0"`
	ProdModuleBonus     float64      `yaml:"prod_module_bonus" validate:"gte=0"`
	QualModuleBonus     float64      `yaml:"qual_module_bonus" validate:"gte=0"`
	CapProductivity     bool         `yaml:"cap_productivity"`
}

// DefaultAssembler returns a four-slot assembler with the given module split
// that keeps legendary ingredients.
func DefaultAssembler(prodModules, qualModules int) Assembler {
	return Assembler{
		ProdModules:     prodModules,
		QualModules:     qualModules,
		KeepFrom:        quality.Legendary,
		RecipeRatio:     1,
		Slots:           AssemblerSlots,
		ProdModuleBonus: ProdModuleBonus,
		QualModuleBonus: QualityModuleBonus,
	}
}

// Chance is the assembler's quality chance in %.
func (a Assembler) Chance() float64 { return float64(a.QualModules) * a.QualModuleBonus }

// Ratio is the assembler's items-per-ingredient yield for prodModules
// productivity modules.
func (a Assembler) Ratio(prodModules int) float64 {
	prod := a.BaseProdBonus + float64(prodModules)*a.ProdModuleBonus
	if a.CapProductivity {
		prod = math.Min(prod, ProductivityCap)
	}

	return (basePercent + prod) * a.RecipeRatio / basePercent
}

// Rows derives the assembler's transition rows. With FullProdInLegendary and
// legendary ingredients assembled separately, the legendary row carries no
// quality chance and every slot holds a productivity module.
func (a Assembler) Rows() (quality.RowParams, error) {
	if err := validateStruct(a); err != nil {
		return quality.RowParams{}, paramsErrorf(opAssembler, err)
	}
	if err := checkSlots(a.ProdModules+a.QualModules, a.Slots); err != nil {
		return quality.RowParams{}, paramsErrorf(opAssembler, err)
	}
	rows, err := quality.UniformRows(a.Chance(), a.Ratio(a.ProdModules), a.KeepFrom)
	if err != nil {
		return quality.RowParams{}, paramsErrorf(opAssembler, err)
	}
	if a.FullProdInLegendary && a.KeepFrom <= quality.Legendary {
		rows[quality.Legendary] = quality.RowParam{Chance: 0, Ratio: a.Ratio(a.Slots)}
	}

	return rows, nil
}
