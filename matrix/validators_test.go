// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qualityloop/matrix"
)

func TestValidators(t *testing.T) {
	var typedNil *matrix.Dense
	sq := MustDense(t, 3, 3)
	rect := MustDense(t, 2, 3)

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"NotNil/nil", matrix.ValidateNotNil(nil), matrix.ErrNilMatrix},
		{"NotNil/typed nil", matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix},
		{"NotNil/ok", matrix.ValidateNotNil(sq), nil},
		{"Square/rect", matrix.ValidateSquare(rect), matrix.ErrDimensionMismatch},
		{"Square/ok", matrix.ValidateSquare(sq), nil},
		{"Shape/mismatch", matrix.ValidateShape(sq, 2, 3), matrix.ErrDimensionMismatch},
		{"Shape/ok", matrix.ValidateShape(rect, 2, 3), nil},
		{"VecLen/nil", matrix.ValidateVecLen(nil, 3), matrix.ErrNilMatrix},
		{"VecLen/short", matrix.ValidateVecLen([]float64{1}, 3), matrix.ErrDimensionMismatch},
		{"BinarySameShape/mismatch", matrix.ValidateBinarySameShape(sq, rect), matrix.ErrDimensionMismatch},
		{"MulCompatible/ok", matrix.ValidateMulCompatible(rect, sq), nil},
		{"MulCompatible/mismatch", matrix.ValidateMulCompatible(sq, rect), matrix.ErrDimensionMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.want == nil {
				require.NoError(t, tc.err)
				return
			}
			require.ErrorIs(t, tc.err, tc.want)
		})
	}
}
