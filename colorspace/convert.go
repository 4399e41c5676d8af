package colorspace

import (
	"fmt"

	"github.com/weaming/spectrum-go/cie"
	"github.com/weaming/spectrum-go/matrix"
)

// XYToXYZ 返回向量 (x, y, 1-x-y)
func XYToXYZ(x, y float64) matrix.Vector3 {
	return matrix.Vector3{x, y, 1 - x - y}
}

// RGBToHex 把 [0,1] 范围的 rgb 转换为 HTML 风格的 "#rrggbb"。
//
// 每个分量乘以 255 后向零截断（1.0 -> ff，0.5 -> 7f）。
// 超出 [0,1] 的输入结果未定义，这里不做截断。
func RGBToHex(rgb matrix.Vector3) string {
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(int(255*rgb[0])), uint8(int(255*rgb[1])), uint8(int(255*rgb[2])))
}

// XYToXYZ 同包级函数 XYToXYZ
func (s *System) XYToXYZ(x, y float64) matrix.Vector3 {
	return XYToXYZ(x, y)
}

// XYZToRGB 把 XYZ 转换为 rgb。
//
// 超出色域时整体加上 -min(rgb) 去饱和，再除以最大分量归一化，
// 所以结果的最大分量是 1（全零除外），不保留相对亮度。
func (s *System) XYZToRGB(xyz matrix.Vector3) matrix.Vector3 {
	rgb := s.t.Apply(xyz)
	if w := rgb.Min(); w < 0 {
		rgb = rgb.AddScalar(-w)
	}
	if !rgb.IsZero() {
		rgb = rgb.Div(rgb.Max())
	}
	return rgb
}

// XYZToHex XYZToRGB 之后编码为 "#rrggbb"
func (s *System) XYZToHex(xyz matrix.Vector3) string {
	return RGBToHex(s.XYZToRGB(xyz))
}

// XYZToFormat 按输出格式编码 XYZToRGB 的结果
func (s *System) XYZToFormat(xyz matrix.Vector3, f Format) string {
	return f.Encode(s.XYZToRGB(xyz))
}

// XYToRGB 色度坐标 -> rgb
func (s *System) XYToRGB(x, y float64) matrix.Vector3 {
	return s.XYZToRGB(XYToXYZ(x, y))
}

// XYToHex 色度坐标 -> "#rrggbb"
func (s *System) XYToHex(x, y float64) string {
	return s.XYZToHex(XYToXYZ(x, y))
}

// XYToSpec 色度坐标 -> 近似光谱，见 XYZToSpec
func (s *System) XYToSpec(x, y float64) cie.Spectrum {
	return s.XYZToSpec(XYToXYZ(x, y))
}

// XYZToSpec 把三刺激值近似投影为光谱形状（有损，不是 SpecToXYZ 的逆）。
//
// 无论系统选用哪个观察者，这里固定使用 1964 色匹配函数和由它与 D65
// 得到的 Weight，与已有的数值结果保持一致。
func (s *System) XYZToSpec(xyz matrix.Vector3) cie.Spectrum {
	return cie.Project(xyz, s.tables.CMF1964, s.tables.Weight)
}

// SpecToXYZ 把 380-780nm/5nm 网格上的光谱转换为归一化 XYZ（X+Y+Z=1）。
// 全零光谱返回零向量。
func (s *System) SpecToXYZ(spec []float64) (matrix.Vector3, error) {
	sp, err := cie.SpectrumFrom(spec)
	if err != nil {
		return matrix.Vector3{}, err
	}
	return s.SpectrumToXYZ(sp), nil
}

// SpectrumToXYZ 同 SpecToXYZ，长度由类型保证
func (s *System) SpectrumToXYZ(spec cie.Spectrum) matrix.Vector3 {
	xyz := s.cmf.Integrate(spec)
	den := xyz.Sum()
	if den == 0 {
		return xyz
	}
	return xyz.Div(den)
}

// SpecToRGB 光谱 -> rgb
func (s *System) SpecToRGB(spec []float64) (matrix.Vector3, error) {
	xyz, err := s.SpecToXYZ(spec)
	if err != nil {
		return matrix.Vector3{}, err
	}
	return s.XYZToRGB(xyz), nil
}

// SpecToHex 光谱 -> "#rrggbb"
func (s *System) SpecToHex(spec []float64) (string, error) {
	rgb, err := s.SpecToRGB(spec)
	if err != nil {
		return "", err
	}
	return RGBToHex(rgb), nil
}

// SpecToXY 光谱 -> 色度坐标。X+Y+Z=0（全零光谱）时返回 ErrDegenerateInput。
func (s *System) SpecToXY(spec []float64) (x, y float64, err error) {
	xyz, err := s.SpecToXYZ(spec)
	if err != nil {
		return 0, 0, err
	}
	return XYZToXY(xyz)
}

// XYZToXY 三刺激值 -> 色度坐标
func XYZToXY(xyz matrix.Vector3) (x, y float64, err error) {
	sum := xyz.Sum()
	if sum == 0 {
		return 0, 0, ErrDegenerateInput
	}
	return xyz[0] / sum, xyz[1] / sum, nil
}
