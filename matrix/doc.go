// Package matrix provides the small dense linear-algebra layer behind the
// quality-loop model: a row-major Dense matrix with bounds-checked accessors,
// row-vector propagation (VecMat), block embedding for composite chains and
// an LU-based inverse for closed-form steady states.
//
// What & Why:
//
//	Transition matrices are tiny (5×5 or 10×10) but are applied thousands of
//	times per accumulation, so kernels keep a flat-slice fast path for *Dense
//	and a generic At/Set fallback for any other Matrix.
//
// Determinism:
//
//	Every kernel walks its loops in a fixed i→j(→k) order; identical inputs
//	produce bit-identical outputs.
//
// Errors:
//
//	Kernels return package sentinels (ErrNilMatrix, ErrDimensionMismatch,
//	ErrOutOfRange, ErrNaNInf, ErrSingular) wrapped with an operation tag.
package matrix
