package output

import (
	"image"
	"image/color"
	"image/jpeg"
	"io"
)

// JPEGOptions JPEG 输出选项
type JPEGOptions struct {
	Quality int // 1-100, 默认 95
}

// ToRGBA 转换为标准库的 image.RGBA
func (img *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			rgb8 := ConvertToUint8(img.At(x, y))
			rgba.SetRGBA(x, y, color.RGBA{
				R: rgb8[0],
				G: rgb8[1],
				B: rgb8[2],
				A: 255,
			})
		}
	}
	return rgba
}

// WriteJPEG 以 JPEG 格式写出图像
func WriteJPEG(w io.Writer, img *Image, opts JPEGOptions) error {
	quality := opts.Quality
	if quality <= 0 || quality > 100 {
		quality = 95
	}
	return jpeg.Encode(w, img.ToRGBA(), &jpeg.Options{Quality: quality})
}
