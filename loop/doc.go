// Package loop accumulates the steady-state output of a flow injected into an
// absorbing transition chain.
//
// What & Why:
//
//	Starting from an input vector v0, every application of the transition
//	matrix M moves the circulating flow one step: v_{k+1} = v_k·M. Rows that
//	are absorbing (all zero) drop their flow out of the loop, so the sequence
//	decays to zero and the total Σ v_k converges. For kept tiers the total is
//	the production rate of that tier; for circulating tiers it is the internal
//	flow magnitude (useful for sizing, not as product).
//
// Operations:
//
//	Accumulate          Σ_{k≥1} v0·M^k (injected input excluded).
//	AccumulateWithInput v0 + Σ_{k≥1} v0·M^k (injected input included).
//	Exact               the same sums in closed form, v0·M·(I−M)^{-1}.
//
// Convergence:
//
//	Iteration stops when Σ_j |v_k[j] − v_{k−1}[j]| < Tolerance (1e-10). The
//	chain must be contracting: every cycle needs a ratio below 1 or must reach
//	an absorbing row. A misconfigured chain (for example, circulating rows with
//	ratio ≥ 1 and nothing kept) is a precondition violation that usually
//	surfaces as ErrNotConverged once the iteration ceiling is hit. A chain
//	with a fixed point (v·M = v) is the exception: it settles at once with a
//	meaningless total. Exact returns matrix.ErrSingular for it.
package loop
