package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/weaming/spectrum-go/cie"
	"github.com/weaming/spectrum-go/colorspace"
	"github.com/weaming/spectrum-go/matrix"
	"github.com/weaming/spectrum-go/output"
)

func newXYCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "xy X Y",
		Short: "色度坐标 -> RGB",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args, "x", "y")
			if err != nil {
				return err
			}
			a.printer.XYZ("xyz", a.system.XYToXYZ(v[0], v[1]))
			a.printer.RGB("rgb", a.system.XYToRGB(v[0], v[1]))
			return nil
		},
	}
}

func newXYZCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "xyz X Y Z",
		Short: "三刺激值 -> RGB",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args, "X", "Y", "Z")
			if err != nil {
				return err
			}
			a.printer.RGB("rgb", a.system.XYZToRGB(matrix.Vector3{v[0], v[1], v[2]}))
			return nil
		},
	}
}

func newSpectrumCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "spectrum [FILE|-]",
		Short: "光谱 -> XYZ / xy / RGB",
		Long: "读取 380-780nm、5nm 间隔的 81 个采样值（每行一个数值，或 \"波长 数值\" 两列），\n" +
			"输出归一化 XYZ、色度坐标和 RGB。不指定文件或为 - 时读取标准输入。",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			name := "stdin"
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("无法打开光谱文件: %w", err)
				}
				defer f.Close()
				r = f
				name = args[0]
			}

			a.logger.Step("读取光谱", name)
			spec, err := cie.ParseValues(r)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			a.logger.Done(fmt.Sprintf("峰值 %.4f", spec.Max()))

			xyz, err := a.system.SpecToXYZ(spec[:])
			if err != nil {
				return err
			}
			a.printer.XYZ("xyz", xyz)

			if x, y, err := a.system.SpecToXY(spec[:]); err != nil {
				a.printer.Error("xy", err)
			} else {
				a.printer.XY("xy", x, y)
			}

			rgb, err := a.system.SpecToRGB(spec[:])
			if err != nil {
				return err
			}
			a.printer.RGB("rgb", rgb)
			return nil
		},
	}
}

func newProjectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "project X Y",
		Short: "色度坐标 -> 近似光谱（固定使用 CIE 1964 色匹配函数）",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args, "x", "y")
			if err != nil {
				return err
			}
			if a.system.Observer() != colorspace.CIE1964 {
				a.logger.Warn("投影固定使用 CIE 1964 色匹配函数，忽略 %s", a.system.Observer())
			}
			a.printer.Spectrum(a.system.XYToSpec(v[0], v[1]))
			return nil
		},
	}
}

func newLocusCmd(a *app) *cobra.Command {
	step := 10
	var imageFormat string
	band, height, quality := 4, 32, 95

	cmd := &cobra.Command{
		Use:   "locus",
		Short: "输出单色光谱轨迹上每个波长的 RGB",
		Long: "从 380nm 到 780nm 按 --step 输出单色光的 RGB。\n" +
			"指定 --image ppm|jpeg 时改为向标准输出写色带图像。",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if step <= 0 || step%cie.Interval != 0 {
				return fmt.Errorf("--step 必须是 %d 的正整数倍", cie.Interval)
			}

			if band > output.MaxImageSize || height > output.MaxImageSize {
				return fmt.Errorf("--band 和 --height 不能超过 %d", output.MaxImageSize)
			}

			var format output.ImageFormat
			if imageFormat != "" {
				f, err := output.ParseImageFormat(imageFormat)
				if err != nil {
					return err
				}
				format = f
			}

			var colors []matrix.Vector3
			for nm := cie.MinWavelength; nm <= cie.MaxWavelength; nm += step {
				spec, err := cie.Monochromatic(nm)
				if err != nil {
					return err
				}
				rgb, err := a.system.SpecToRGB(spec[:])
				if err != nil {
					return err
				}
				colors = append(colors, rgb)
				if format == "" {
					a.printer.RGB(fmt.Sprintf("%dnm", nm), rgb)
				}
			}

			if format == "" {
				return nil
			}
			a.logger.Step("生成色带", format)
			img, err := output.Strip(colors, band, height)
			if err != nil {
				return err
			}
			if err := output.ExportImage(cmd.OutOrStdout(), img, format, quality); err != nil {
				return fmt.Errorf("写入图像失败: %w", err)
			}
			a.logger.Done(fmt.Sprintf("%dx%d", img.Width, img.Height))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&step, "step", step, "波长间隔 (nm)")
	flags.StringVar(&imageFormat, "image", "", "向标准输出写色带图像: ppm 或 jpeg")
	flags.IntVar(&band, "band", band, "每个波长的色带宽度 (像素)")
	flags.IntVar(&height, "height", height, "色带高度 (像素)")
	flags.IntVar(&quality, "quality", quality, "JPEG 质量 (1-100)")
	return cmd
}
