// Package params derives transition-row parameters from machine setups
// (module counts, productivity bonuses, recipe ratios, keep thresholds) and
// runs the standard quality loops built from them.
//
// Machines:
//
//	Recycler        returns 25% of an item as ingredients; quality modules only.
//	AsteroidCrusher recycler geometry with an 80% yield.
//	Assembler       crafts items; productivity and quality modules share slots.
//
// Formulas:
//
//	chance = quality modules × per-module bonus
//	ratio  = (100 + base bonus + prod modules × per-module bonus) × recipe ratio / 100
//
// with the productivity term optionally capped at 300%, and every row at or
// above the keep tier replaced by the absorbing (0, 0).
package params
