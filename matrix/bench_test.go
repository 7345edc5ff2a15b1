// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/qualityloop/matrix"
)

var (
	sinkVec   []float64
	sinkDense *matrix.Dense
)

// benchChain returns an n×n strictly upper-triangular-plus-diagonal chain
// similar in shape to a quality transition matrix.
func benchChain(b *testing.B, n int) *matrix.Dense {
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			_ = m.Set(i, j, 0.2/float64(j-i+1))
		}
	}

	return m
}

func BenchmarkVecMat10(b *testing.B) {
	m := benchChain(b, 10)
	x := make([]float64, 10)
	x[0] = 1
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkVec, _ = matrix.VecMat(x, m)
	}
}

func BenchmarkVecMat10_Fallback(b *testing.B) {
	m := hide{benchChain(b, 10)}
	x := make([]float64, 10)
	x[0] = 1
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkVec, _ = matrix.VecMat(x, m)
	}
}

func BenchmarkInverse10(b *testing.B) {
	m := benchChain(b, 10)
	I, _ := matrix.NewIdentity(10)
	a, _ := matrix.Sub(I, m)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkDense, _ = matrix.Inverse(a)
	}
}
