package matrix

import (
	"errors"
	"math"
)

// ErrSingular 矩阵不可逆（行列式为 0）
var ErrSingular = errors.New("matrix is singular")

// Matrix3x3 表示 3x3 矩阵（行优先存储）
type Matrix3x3 [9]float64

// Vector3 表示 3 维向量
type Vector3 [3]float64

// FromColumns 以三个向量为列构造矩阵
func FromColumns(c0, c1, c2 Vector3) Matrix3x3 {
	return Matrix3x3{
		c0[0], c1[0], c2[0],
		c0[1], c1[1], c2[1],
		c0[2], c1[2], c2[2],
	}
}

// FromRows 以三个向量为行构造矩阵
func FromRows(r0, r1, r2 Vector3) Matrix3x3 {
	return Matrix3x3{
		r0[0], r0[1], r0[2],
		r1[0], r1[1], r1[2],
		r2[0], r2[1], r2[2],
	}
}

// Identity3x3 返回 3x3 单位矩阵
func Identity3x3() Matrix3x3 {
	return Matrix3x3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Diagonal3x3 从向量创建对角矩阵
func Diagonal3x3(v Vector3) Matrix3x3 {
	return Matrix3x3{
		v[0], 0, 0,
		0, v[1], 0,
		0, 0, v[2],
	}
}

// Row 返回第 i 行
func (m Matrix3x3) Row(i int) Vector3 {
	return Vector3{m[i*3], m[i*3+1], m[i*3+2]}
}

// Col 返回第 j 列
func (m Matrix3x3) Col(j int) Vector3 {
	return Vector3{m[j], m[3+j], m[6+j]}
}

// Multiply 矩阵乘法 (m * other)
func (m Matrix3x3) Multiply(other Matrix3x3) Matrix3x3 {
	var result Matrix3x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += m[i*3+k] * other[k*3+j]
			}
			result[i*3+j] = sum
		}
	}
	return result
}

// Apply 应用矩阵到向量 (matrix * vector)
func (m Matrix3x3) Apply(v Vector3) Vector3 {
	return Vector3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Determinant 计算行列式
func (m Matrix3x3) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// singularEps 相对容差：|det| 不超过 singularEps * maxAbs³ 时视为奇异
const singularEps = 1e-12

// maxAbs 返回绝对值最大的元素
func (m Matrix3x3) maxAbs() float64 {
	s := 0.0
	for _, x := range m {
		s = math.Max(s, math.Abs(x))
	}
	return s
}

// Inverse 计算矩阵的逆。矩阵奇异或结果含非有限值时返回 ErrSingular。
//
// 奇异判断与矩阵整体缩放无关：m 和 k*m 要么都可逆，要么都奇异。
func (m Matrix3x3) Inverse() (Matrix3x3, error) {
	det := m.Determinant()
	if math.IsNaN(det) || math.IsInf(det, 0) {
		return Matrix3x3{}, ErrSingular
	}
	scale := m.maxAbs()
	if scale == 0 || math.Abs(det) <= singularEps*scale*scale*scale {
		return Matrix3x3{}, ErrSingular
	}

	invDet := 1.0 / det

	var inv Matrix3x3
	inv[0] = (m[4]*m[8] - m[5]*m[7]) * invDet
	inv[1] = (m[2]*m[7] - m[1]*m[8]) * invDet
	inv[2] = (m[1]*m[5] - m[2]*m[4]) * invDet
	inv[3] = (m[5]*m[6] - m[3]*m[8]) * invDet
	inv[4] = (m[0]*m[8] - m[2]*m[6]) * invDet
	inv[5] = (m[2]*m[3] - m[0]*m[5]) * invDet
	inv[6] = (m[3]*m[7] - m[4]*m[6]) * invDet
	inv[7] = (m[1]*m[6] - m[0]*m[7]) * invDet
	inv[8] = (m[0]*m[4] - m[1]*m[3]) * invDet

	for _, x := range inv {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Matrix3x3{}, ErrSingular
		}
	}
	return inv, nil
}

// Transpose 转置矩阵
func (m Matrix3x3) Transpose() Matrix3x3 {
	return Matrix3x3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// DivRows 第 i 行逐元素除以 d[i]（行缩放，不是矩阵乘法）
func (m Matrix3x3) DivRows(d Vector3) Matrix3x3 {
	var result Matrix3x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			result[i*3+j] = m[i*3+j] / d[i]
		}
	}
	return result
}

// Scale 缩放矩阵的所有元素
func (m Matrix3x3) Scale(s float64) Matrix3x3 {
	var result Matrix3x3
	for i := 0; i < 9; i++ {
		result[i] = m[i] * s
	}
	return result
}
