package output

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/weaming/spectrum-go/matrix"
)

// Image 浮点 RGB 图像，Data 按行存放，每像素 3 个 [0, 1] 数值
type Image struct {
	Width  int
	Height int
	Data   []float64
}

// NewImage 创建全黑图像
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Data:   make([]float64, width*height*3),
	}
}

// Set 设置 (x, y) 处的像素
func (img *Image) Set(x, y int, rgb matrix.Vector3) {
	idx := (y*img.Width + x) * 3
	copy(img.Data[idx:idx+3], rgb[:])
}

// At 读取 (x, y) 处的像素
func (img *Image) At(x, y int) matrix.Vector3 {
	idx := (y*img.Width + x) * 3
	return matrix.Vector3{img.Data[idx], img.Data[idx+1], img.Data[idx+2]}
}

// MaxImageSize 色带图像宽、高的上限（像素）
const MaxImageSize = 16384

// Strip 把一组颜色排成色带：每个颜色占 band 像素宽，高 height 像素。
// band、height 不大于 0 时按 1 处理；宽或高超过 MaxImageSize 时返回错误。
func Strip(colors []matrix.Vector3, band, height int) (*Image, error) {
	if band <= 0 {
		band = 1
	}
	if height <= 0 {
		height = 1
	}
	if band > MaxImageSize || height > MaxImageSize || len(colors)*band > MaxImageSize {
		return nil, fmt.Errorf("图像尺寸超出上限 %d: %d 个颜色 x %d 像素, 高 %d",
			MaxImageSize, len(colors), band, height)
	}

	img := NewImage(len(colors)*band, height)
	for y := 0; y < height; y++ {
		for i, c := range colors {
			for dx := 0; dx < band; dx++ {
				img.Set(i*band+dx, y, c)
			}
		}
	}
	return img, nil
}

// ConvertToUint8 把 [0, 1] 浮点 RGB 四舍五入为 8-bit
func ConvertToUint8(rgb matrix.Vector3) [3]uint8 {
	return [3]uint8{
		uint8(math.Min(255, math.Max(0, rgb[0]*255+0.5))),
		uint8(math.Min(255, math.Max(0, rgb[1]*255+0.5))),
		uint8(math.Min(255, math.Max(0, rgb[2]*255+0.5))),
	}
}

// ImageFormat 色带图像的编码格式
type ImageFormat string

const (
	ImagePPM  ImageFormat = "ppm"
	ImageJPEG ImageFormat = "jpeg"
)

// ParseImageFormat 解析 ppm / jpeg（jpg）
func ParseImageFormat(s string) (ImageFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ppm":
		return ImagePPM, nil
	case "jpeg", "jpg":
		return ImageJPEG, nil
	}
	return "", fmt.Errorf("不支持的图像格式: %q", s)
}

// ExportImage 按格式把图像编码写入 w
func ExportImage(w io.Writer, img *Image, format ImageFormat, quality int) error {
	if img == nil {
		return fmt.Errorf("图像为空")
	}

	switch format {
	case ImagePPM:
		return WritePPM(w, img)
	case ImageJPEG:
		return WriteJPEG(w, img, JPEGOptions{Quality: quality})
	}
	return fmt.Errorf("不支持的图像格式: %q", string(format))
}
