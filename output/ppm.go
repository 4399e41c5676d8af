package output

import (
	"bufio"
	"fmt"
	"io"
)

// WritePPM 以文本 PPM (P3, 16-bit) 格式写出图像
func WritePPM(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)

	// 写入 PPM 头部
	fmt.Fprintf(bw, "P3\n%d %d\n65535\n", img.Width, img.Height)

	// 写入像素数据（float64 [0,1] -> uint16 [0,65535]）
	for i := 0; i < len(img.Data); i += 3 {
		r := toUint16(img.Data[i])
		g := toUint16(img.Data[i+1])
		b := toUint16(img.Data[i+2])
		fmt.Fprintf(bw, "%d %d %d\n", r, g, b)
	}

	return bw.Flush()
}

func toUint16(v float64) uint16 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 65535
	}
	return uint16(v * 65535.0)
}
