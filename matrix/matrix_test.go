package matrix

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestFromColumns(t *testing.T) {
	m := FromColumns(Vector3{1, 2, 3}, Vector3{4, 5, 6}, Vector3{7, 8, 9})
	want := Matrix3x3{
		1, 4, 7,
		2, 5, 8,
		3, 6, 9,
	}
	assert.Equal(t, want, m)
	assert.Equal(t, Vector3{4, 5, 6}, m.Col(1))
	assert.Equal(t, Vector3{2, 5, 8}, m.Row(1))
	assert.Equal(t, m, FromRows(m.Row(0), m.Row(1), m.Row(2)))
	assert.Equal(t, m.Transpose(), FromRows(Vector3{1, 2, 3}, Vector3{4, 5, 6}, Vector3{7, 8, 9}))
}

func TestInverse(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix3x3
	}{
		{"identity", Identity3x3()},
		{"diagonal", Diagonal3x3(Vector3{2, 4, 0.5})},
		{"srgb", Matrix3x3{
			0.4124564, 0.3575761, 0.1804375,
			0.2126729, 0.7151522, 0.0721750,
			0.0193339, 0.1191920, 0.9503041,
		}},
		{"general", Matrix3x3{
			2, -1, 0,
			-1, 2, -1,
			0, -1, 2,
		}},
		// 行列式很小，但相对于元素大小并不奇异
		{"small scale", Diagonal3x3(Vector3{1e-4, 1e-4, 1e-4})},
		{"ill conditioned", Diagonal3x3(Vector3{1, 1, 1e-11})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := tt.m.Inverse()
			require.NoError(t, err)

			if d := cmp.Diff(Identity3x3(), tt.m.Multiply(inv), cmpopts.EquateApprox(0, 1e-9)); d != "" {
				t.Errorf("m * m⁻¹ (-want +got):\n%s", d)
			}
			if d := cmp.Diff(Identity3x3(), inv.Multiply(tt.m), cmpopts.EquateApprox(0, 1e-9)); d != "" {
				t.Errorf("m⁻¹ * m (-want +got):\n%s", d)
			}
		})
	}
}

func TestInverseSingular(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix3x3
	}{
		{"zero", Matrix3x3{}},
		{"equal rows", FromRows(Vector3{1, 2, 3}, Vector3{1, 2, 3}, Vector3{0, 0, 1})},
		{"scaled equal rows", FromRows(Vector3{1e-6, 2e-6, 3e-6}, Vector3{2e-6, 4e-6, 6e-6}, Vector3{0, 0, 1e-6})},
		{"nan", Matrix3x3{math.NaN(), 0, 0, 0, 1, 0, 0, 0, 1}},
		{"collinear columns", FromColumns(
			Vector3{0.2, 0.2, 0.6},
			Vector3{0.3, 0.3, 0.4},
			Vector3{0.4, 0.4, 0.2},
		)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.m.Inverse()
			assert.ErrorIs(t, err, ErrSingular)
		})
	}
}

func TestApply(t *testing.T) {
	m := Matrix3x3{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	assert.Equal(t, Vector3{14, 32, 50}, m.Apply(Vector3{1, 2, 3}))
	assert.Equal(t, Vector3{1, 2, 3}, Identity3x3().Apply(Vector3{1, 2, 3}))
}

func TestDivRows(t *testing.T) {
	m := Matrix3x3{
		2, 4, 6,
		3, 6, 9,
		1, 1, 1,
	}
	got := m.DivRows(Vector3{2, 3, 0.5})
	want := Matrix3x3{
		1, 2, 3,
		1, 2, 3,
		2, 2, 2,
	}
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Errorf("DivRows (-want +got):\n%s", d)
	}

	// 行缩放等价于左乘对角矩阵的逆
	viaDiag := Diagonal3x3(Vector3{1.0 / 2, 1.0 / 3, 1.0 / 0.5}).Multiply(m)
	if d := cmp.Diff(viaDiag, got, approx); d != "" {
		t.Errorf("DivRows vs diag (-want +got):\n%s", d)
	}
}

func TestVector(t *testing.T) {
	v := Vector3{-0.5, 2, 1}

	assert.Equal(t, -0.5, v.Min())
	assert.Equal(t, 2.0, v.Max())
	assert.Equal(t, 2.5, v.Sum())
	assert.Equal(t, Vector3{0, 2.5, 1.5}, v.AddScalar(0.5))
	assert.Equal(t, Vector3{-1, 4, 2}, v.Scale(2))
	assert.Equal(t, Vector3{-0.25, 1, 0.5}, v.Div(2))
	assert.Equal(t, Vector3{0.5, 3, 2}, v.Add(Vector3{1, 1, 1}))
	assert.Equal(t, Vector3{-1, 6, 0}, v.ComponentMul(Vector3{2, 3, 0}))
	assert.Equal(t, 4.5, v.Dot(Vector3{1, 2, 1}))

	assert.True(t, Vector3{}.IsZero())
	assert.False(t, v.IsZero())
	assert.True(t, Vector3{1, 0, 1}.HasZero())
	assert.False(t, v.HasZero())
}

func TestScale(t *testing.T) {
	assert.Equal(t, Diagonal3x3(Vector3{3, 3, 3}), Identity3x3().Scale(3))
}
