package colorspace

import (
	"errors"

	"github.com/weaming/spectrum-go/cie"
	"github.com/weaming/spectrum-go/matrix"
)

var (
	// ErrConfiguration 无法识别的色匹配函数版本、缺少参考表等构造参数错误
	ErrConfiguration = errors.New("invalid colour system configuration")

	// ErrSingularMatrix 三原色共线，RGB→XYZ 基矩阵不可逆
	ErrSingularMatrix = matrix.ErrSingular

	// ErrDimensionMismatch 光谱长度与 81 点网格不符
	ErrDimensionMismatch = cie.ErrDimensionMismatch

	// ErrDegenerateInput X+Y+Z = 0，无法求色度坐标
	ErrDegenerateInput = errors.New("degenerate input: X+Y+Z is zero")
)
