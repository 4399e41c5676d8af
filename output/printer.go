// Package output 把转换结果写到终端：分数 rgb、HTML 十六进制、色块和矩阵。
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/weaming/spectrum-go/cie"
	"github.com/weaming/spectrum-go/colorspace"
	"github.com/weaming/spectrum-go/matrix"
)

// SwatchWidth 色块宽度（字符）
const SwatchWidth = 6

// Printer 按输出格式打印结果
type Printer struct {
	w      io.Writer
	out    *termenv.Output
	format colorspace.Format
	swatch bool
}

// NewPrinter 创建 Printer。swatch=true 时在 rgb 后面附加终端色块，
// 终端不支持颜色时色块退化为空白。
func NewPrinter(w io.Writer, format colorspace.Format, swatch bool, opts ...termenv.OutputOption) *Printer {
	return &Printer{
		w:      w,
		out:    termenv.NewOutput(w, opts...),
		format: format,
		swatch: swatch,
	}
}

// Swatch 返回 rgb 对应背景色的色块字符串
func (p *Printer) Swatch(rgb matrix.Vector3) string {
	block := strings.Repeat(" ", SwatchWidth)
	return p.out.String(block).Background(p.out.Color(colorspace.RGBToHex(rgb))).String()
}

// RGB 打印一个 rgb 结果
func (p *Printer) RGB(label string, rgb matrix.Vector3) {
	line := p.format.Encode(rgb)
	if p.swatch {
		line += " " + p.Swatch(rgb)
	}
	p.field(label, line)
}

// XYZ 打印三刺激值
func (p *Printer) XYZ(label string, xyz matrix.Vector3) {
	p.field(label, fmt.Sprintf("%.6f %.6f %.6f", xyz[0], xyz[1], xyz[2]))
}

// XY 打印色度坐标
func (p *Printer) XY(label string, x, y float64) {
	p.field(label, fmt.Sprintf("%.6f %.6f", x, y))
}

// Error 打印某一项的错误，不中断其余输出
func (p *Printer) Error(label string, err error) {
	p.field(label, "error: "+err.Error())
}

// Spectrum 每行打印 "波长 数值"
func (p *Printer) Spectrum(s cie.Spectrum) {
	for i, v := range s {
		fmt.Fprintf(p.w, "%d %.6f\n", cie.Wavelength(i), v)
	}
}

// Matrix 打印 3x3 矩阵
func (p *Printer) Matrix(name string, m matrix.Matrix3x3) {
	fmt.Fprintf(p.w, "  %s:\n", name)
	fmt.Fprintf(p.w, "    [%.6f, %.6f, %.6f]\n", m[0], m[1], m[2])
	fmt.Fprintf(p.w, "    [%.6f, %.6f, %.6f]\n", m[3], m[4], m[5])
	fmt.Fprintf(p.w, "    [%.6f, %.6f, %.6f]\n", m[6], m[7], m[8])
}

// Vector 打印 3 维向量
func (p *Printer) Vector(name string, v matrix.Vector3) {
	p.field(name, fmt.Sprintf("[%.6f, %.6f, %.6f]", v[0], v[1], v[2]))
}

// Section 用 BEGIN/END 包围一段输出
func (p *Printer) Section(name string, body func()) {
	fmt.Fprintf(p.w, "BEGIN: %s\n\n", name)
	body()
	fmt.Fprintf(p.w, "\nEND: %s\n\n", name)
}

// Line 打印一行原样文本
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) field(label, value string) {
	if label == "" {
		fmt.Fprintln(p.w, value)
		return
	}
	fmt.Fprintf(p.w, "%-8s = %s\n", label, value)
}
