// Package cie 提供 CIE 参考数据：1931 / 1964 标准观察者色匹配函数、
// D65 光源光谱，以及在 380-780nm、5nm 间隔网格上的光谱运算。
//
// 所有表格在进程内只加载一次，之后只读，可以在多个 goroutine 间共享。
package cie

import (
	"errors"
	"fmt"

	"github.com/weaming/spectrum-go/matrix"
)

// 光谱采样网格
const (
	MinWavelength = 380
	MaxWavelength = 780
	Interval      = 5
	Samples       = (MaxWavelength-MinWavelength)/Interval + 1
)

// ErrDimensionMismatch 光谱或表格长度与 81 点网格不符
var ErrDimensionMismatch = errors.New("dimension mismatch")

// ErrGridMismatch 表格的波长列与 380-780nm/5nm 网格不对齐
var ErrGridMismatch = errors.New("wavelength grid mismatch")

// ErrMissingTable 缺少色匹配函数表
var ErrMissingTable = errors.New("reference table missing")

// DimensionError 记录期望长度和实际长度
type DimensionError struct {
	Got, Want int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: got %d samples, want %d", ErrDimensionMismatch, e.Got, e.Want)
}

// Is 使 errors.Is(err, ErrDimensionMismatch) 成立
func (e *DimensionError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// Wavelength 返回第 i 个采样点的波长 (nm)
func Wavelength(i int) int {
	return MinWavelength + i*Interval
}

// Index 返回波长对应的采样下标；不在网格上时 ok=false
func Index(nm int) (i int, ok bool) {
	if nm < MinWavelength || nm > MaxWavelength || (nm-MinWavelength)%Interval != 0 {
		return 0, false
	}
	return (nm - MinWavelength) / Interval, true
}

// Spectrum 是网格上的光谱功率分布或反射率
type Spectrum [Samples]float64

// SpectrumFrom 检查长度后把切片转换为 Spectrum
func SpectrumFrom(values []float64) (Spectrum, error) {
	var s Spectrum
	if len(values) != Samples {
		return s, &DimensionError{Got: len(values), Want: Samples}
	}
	copy(s[:], values)
	return s, nil
}

// Monochromatic 返回只在 nm 处为 1 的线光谱
func Monochromatic(nm int) (Spectrum, error) {
	var s Spectrum
	i, ok := Index(nm)
	if !ok {
		return s, fmt.Errorf("%w: %dnm is not on the %d-%dnm/%dnm grid",
			ErrGridMismatch, nm, MinWavelength, MaxWavelength, Interval)
	}
	s[i] = 1
	return s, nil
}

// Sum 所有采样之和
func (s Spectrum) Sum() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v
	}
	return sum
}

// Mul 逐采样相乘
func (s Spectrum) Mul(other Spectrum) Spectrum {
	var result Spectrum
	for i := range s {
		result[i] = s[i] * other[i]
	}
	return result
}

// Scale 所有采样乘以 k
func (s Spectrum) Scale(k float64) Spectrum {
	var result Spectrum
	for i := range s {
		result[i] = s[i] * k
	}
	return result
}

// Max 最大采样值
func (s Spectrum) Max() float64 {
	m := s[0]
	for _, v := range s[1:] {
		m = max(m, v)
	}
	return m
}

// CMF 色匹配函数表，每个采样点一行 (x̄, ȳ, z̄)
type CMF [Samples]matrix.Vector3

// Column 取出一个通道 (0=X, 1=Y, 2=Z)
func (c *CMF) Column(ch int) Spectrum {
	var s Spectrum
	for i := range c {
		s[i] = c[i][ch]
	}
	return s
}

// Integrate 按采样把光谱值乘以该行的三个系数并累加，得到未归一化的 XYZ
func (c *CMF) Integrate(s Spectrum) matrix.Vector3 {
	var xyz matrix.Vector3
	for i := range c {
		xyz = xyz.Add(c[i].Scale(s[i]))
	}
	return xyz
}

// Project 把三刺激值近似投影回光谱形状：
//
//	out[i] = Σ_ch (xyz[ch] * weight) * cmf[i][ch]
//
// 这不是 Integrate 的逆运算，只是一个有损的启发式映射。
// cmf 和 weight 由调用方显式传入。
func Project(xyz matrix.Vector3, cmf *CMF, weight float64) Spectrum {
	scaled := xyz.Scale(weight)
	var s Spectrum
	for i := range cmf {
		s[i] = scaled.Dot(cmf[i])
	}
	return s
}
