package colorspace

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/weaming/spectrum-go/cie"
	"github.com/weaming/spectrum-go/matrix"
)

// Observer 选择色匹配函数表
type Observer int

const (
	// CIE1964 10° 标准观察者（默认，零值等同于它）
	CIE1964 Observer = 1964
	// CIE1931 2° 标准观察者
	CIE1931 Observer = 1931
)

func (o Observer) String() string {
	if o == 0 {
		return CIE1964.String()
	}
	return strconv.Itoa(int(o))
}

// ParseObserver 解析 "1931" / "1964"，空字符串表示默认值
func ParseObserver(s string) (Observer, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CIE1964, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: unknown CMF variant %q", ErrConfiguration, s)
	}
	obs := Observer(n)
	if obs != CIE1931 && obs != CIE1964 {
		return 0, fmt.Errorf("%w: unknown CMF variant %d", ErrConfiguration, n)
	}
	return obs, nil
}

// Chromaticity 是 CIE 色度图上的 (x, y)
type Chromaticity struct {
	X, Y float64
}

// Z 返回 1-x-y
func (c Chromaticity) Z() float64 {
	return 1 - c.X - c.Y
}

// XYZ 返回 (x, y, 1-x-y)
func (c Chromaticity) XYZ() matrix.Vector3 {
	return XYToXYZ(c.X, c.Y)
}

// Primaries 三原色的色度坐标
type Primaries struct {
	Red, Green, Blue Chromaticity
}

// System 是由三原色、白点和色匹配函数确定的色彩系统。
// 构造后不可变，可以在多个 goroutine 间共享。
type System struct {
	red, green, blue matrix.Vector3
	white            matrix.Vector3
	observer         Observer
	cmf              *cie.CMF
	tables           *cie.Tables

	m      matrix.Matrix3x3 // rgb -> xyz，列为三原色
	mi     matrix.Matrix3x3 // m 的逆
	wscale matrix.Vector3   // mi * white
	t      matrix.Matrix3x3 // xyz -> rgb
}

// New 构造色彩系统。
//
// white 是白点的 XYZ 向量，通常由 XYToXYZ 得到。obs 为 0 时使用 CIE1964。
func New(tables *cie.Tables, p Primaries, white matrix.Vector3, obs Observer) (*System, error) {
	if tables == nil {
		return nil, fmt.Errorf("%w: nil reference tables", ErrConfiguration)
	}
	if obs == 0 {
		obs = CIE1964
	}

	s := &System{
		red:      p.Red.XYZ(),
		green:    p.Green.XYZ(),
		blue:     p.Blue.XYZ(),
		white:    white,
		observer: obs,
		tables:   tables,
	}

	switch obs {
	case CIE1964:
		s.cmf = tables.CMF1964
	case CIE1931:
		s.cmf = tables.CMF1931
	default:
		return nil, fmt.Errorf("%w: unknown CMF variant %d", ErrConfiguration, int(obs))
	}
	if s.cmf == nil {
		return nil, fmt.Errorf("%w: CMF %s table not loaded", ErrConfiguration, obs)
	}

	s.m = matrix.FromColumns(s.red, s.green, s.blue)
	mi, err := s.m.Inverse()
	if err != nil {
		return nil, fmt.Errorf("primaries %v: %w", p, err)
	}
	s.mi = mi

	s.wscale = s.mi.Apply(s.white)
	if s.wscale.HasZero() {
		return nil, fmt.Errorf("white point %v lies on a gamut edge: %w", white, ErrSingularMatrix)
	}
	s.t = s.mi.DivRows(s.wscale)

	return s, nil
}

// Red 红原色的 xyz
func (s *System) Red() matrix.Vector3 { return s.red }

// Green 绿原色的 xyz
func (s *System) Green() matrix.Vector3 { return s.green }

// Blue 蓝原色的 xyz
func (s *System) Blue() matrix.Vector3 { return s.blue }

// White 白点 XYZ
func (s *System) White() matrix.Vector3 { return s.white }

// Observer 构造时选择的色匹配函数
func (s *System) Observer() Observer { return s.observer }

// CMF 当前使用的色匹配函数表
func (s *System) CMF() *cie.CMF { return s.cmf }

// Tables 构造时注入的参考数据
func (s *System) Tables() *cie.Tables { return s.tables }

// M RGB→XYZ 基矩阵
func (s *System) M() matrix.Matrix3x3 { return s.m }

// MI XYZ→RGB 基矩阵（M 的逆）
func (s *System) MI() matrix.Matrix3x3 { return s.mi }

// WScale 白点缩放向量
func (s *System) WScale() matrix.Vector3 { return s.wscale }

// T 最终的 XYZ→RGB 变换矩阵
func (s *System) T() matrix.Matrix3x3 { return s.t }

// WithObserver 用同样的原色和白点、不同的色匹配函数构造新系统
func (s *System) WithObserver(obs Observer) (*System, error) {
	p := Primaries{
		Red:   Chromaticity{s.red[0], s.red[1]},
		Green: Chromaticity{s.green[0], s.green[1]},
		Blue:  Chromaticity{s.blue[0], s.blue[1]},
	}
	return New(s.tables, p, s.white, obs)
}
