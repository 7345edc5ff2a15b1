// Package quality models the five quality tiers of a production/recycling
// step and turns per-row parameters into transition matrices.
//
// What & Why:
//
//	One application of a machine (assembler, recycler, crusher) moves flow
//	from an input tier to an output tier with the empirical upgrade law
//	TransitionProbability, scaled by the machine's yield ratio. A transition
//	matrix row i holds the yield of every output tier per unit of tier-i input;
//	an all-zero row is absorbing (the flow leaves the loop as product).
//
// Layout:
//
//	tier.go        Tier enumeration, names, parsing.
//	probability.go the upgrade law and its pure 5×5 probability matrix.
//	rows.go        RowParam/RowParams and uniform/threshold helpers.
//	builder.go     BuildMatrix/UniformMatrix and the cached Builder.
//	cache.go       injectable Cache implementations (map, LRU).
//	composite.go   10×10 coupling of a forward and a backward stage.
//
// Determinism:
//
//	Every constructor is a pure function of its parameters: equal inputs give
//	bit-identical matrices, which is what makes caching sound.
package quality
