package matrix

// Scale 缩放向量
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{v[0] * s, v[1] * s, v[2] * s}
}

// Div 每个分量除以 s
func (v Vector3) Div(s float64) Vector3 {
	return Vector3{v[0] / s, v[1] / s, v[2] / s}
}

// Add 向量加法
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v[0] + other[0], v[1] + other[1], v[2] + other[2]}
}

// AddScalar 每个分量加上同一个值
func (v Vector3) AddScalar(s float64) Vector3 {
	return Vector3{v[0] + s, v[1] + s, v[2] + s}
}

// ComponentMul 逐分量乘法
func (v Vector3) ComponentMul(other Vector3) Vector3 {
	return Vector3{v[0] * other[0], v[1] * other[1], v[2] * other[2]}
}

// Dot 点积
func (v Vector3) Dot(other Vector3) float64 {
	return v[0]*other[0] + v[1]*other[1] + v[2]*other[2]
}

// Sum 分量之和
func (v Vector3) Sum() float64 {
	return v[0] + v[1] + v[2]
}

// Min 最小分量
func (v Vector3) Min() float64 {
	return min(v[0], v[1], v[2])
}

// Max 最大分量
func (v Vector3) Max() float64 {
	return max(v[0], v[1], v[2])
}

// IsZero 所有分量都精确为 0
func (v Vector3) IsZero() bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}

// HasZero 至少一个分量为 0
func (v Vector3) HasZero() bool {
	return v[0] == 0 || v[1] == 0 || v[2] == 0
}
