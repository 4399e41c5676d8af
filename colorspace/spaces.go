package colorspace

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/weaming/spectrum-go/cie"
	"github.com/weaming/spectrum-go/matrix"
)

// 标准色彩系统定义

// IlluminantD65 D65 白点，由色度坐标 (0.3127, 0.3291) 得到
var IlluminantD65 = XYToXYZ(0.3127, 0.3291)

// 三原色色度坐标
var (
	HDTVPrimaries = Primaries{
		Red:   Chromaticity{0.67, 0.33},
		Green: Chromaticity{0.21, 0.71},
		Blue:  Chromaticity{0.15, 0.06},
	}
	SMPTEPrimaries = Primaries{
		Red:   Chromaticity{0.63, 0.34},
		Green: Chromaticity{0.31, 0.595},
		Blue:  Chromaticity{0.155, 0.070},
	}
	SRGBPrimaries = Primaries{
		Red:   Chromaticity{0.64, 0.33},
		Green: Chromaticity{0.30, 0.60},
		Blue:  Chromaticity{0.15, 0.06},
	}
)

// 预定义色彩系统，使用内置参考数据和 1964 观察者
var (
	HDTV  = mustNew(HDTVPrimaries)
	SMPTE = mustNew(SMPTEPrimaries)
	SRGB  = mustNew(SRGBPrimaries)
)

func mustNew(p Primaries) *System {
	s, err := New(cie.Default(), p, IlluminantD65, CIE1964)
	if err != nil {
		panic(err)
	}
	return s
}

var builtin = map[string]*System{
	"hdtv":  HDTV,
	"smpte": SMPTE,
	"srgb":  SRGB,
}

// Lookup 按名称（不区分大小写）查找预定义色彩系统
func Lookup(name string) (*System, bool) {
	s, ok := builtin[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

// Names 返回所有预定义色彩系统的名称（已排序）
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Format 输出格式
type Format string

const (
	// FormatFraction 分数形式的 rgb 分量（默认）
	FormatFraction Format = ""
	// FormatHTML "#rrggbb"
	FormatHTML Format = "html"
)

// ParseFormat 解析输出格式，"fraction" 与空字符串等价
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fraction", "rgb":
		return FormatFraction, nil
	case "html", "hex":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: unknown output format %q", ErrConfiguration, s)
	}
}

func (f Format) String() string {
	if f == FormatFraction {
		return "fraction"
	}
	return string(f)
}

// Encode 按格式编码 rgb
func (f Format) Encode(rgb matrix.Vector3) string {
	if f == FormatHTML {
		return RGBToHex(rgb)
	}
	return strconv.FormatFloat(rgb[0], 'f', 6, 64) + " " +
		strconv.FormatFloat(rgb[1], 'f', 6, 64) + " " +
		strconv.FormatFloat(rgb[2], 'f', 6, 64)
}
