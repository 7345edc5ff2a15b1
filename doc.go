// SPDX-License-Identifier: MIT

// Package qualityloop computes the steady-state output of quality
// production and recycling loops, modeled as absorbing Markov chains over
// five quality tiers.
//
// 🚀 What is qualityloop?
//
//	A small, deterministic calculator that brings together:
//		• The quality law: probability of turning tier i into tier j
//		• Transition matrices: per-row (chance, ratio) with kept tiers absorbing
//		• Composite chains: assembler and recycler coupled into one 10×10 matrix
//		• Accumulation: Σ v0·M^k until the flow settles, or in closed form
//		• Machine setups: recycler, asteroid crusher, assembler parameters
//		• Scenarios: YAML files evaluated by the qualityloop command
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/  dense float64 matrices, block placement, LU and inverse
//	quality/ tiers, the probability law, matrix builders and caches
//	loop/    input vectors, iterative accumulation and the exact solver
//	params/  machine parameter derivation and the scenario Calculator
//	config/  YAML scenario files
//	cmd/qualityloop the command-line front end
//
// Quick example:
//
//	calc := params.NewCalculator(nil)
//	res, _ := calc.RecyclerLoop(1000, params.DefaultRecycler())
//	fmt.Println(res.Output[quality.Legendary])
package qualityloop
