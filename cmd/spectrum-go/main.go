package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/weaming/spectrum-go/cie"
	"github.com/weaming/spectrum-go/colorspace"
	"github.com/weaming/spectrum-go/config"
	"github.com/weaming/spectrum-go/logger"
	"github.com/weaming/spectrum-go/output"
)

// Version 版本号
const Version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

// app 是一次命令执行的上下文
type app struct {
	config  config.Config
	logger  *logger.Logger
	tables  *cie.Tables
	system  *colorspace.System
	format  colorspace.Format
	printer *output.Printer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "spectrum-go",
		Short:         "光谱 / CIE XYZ / RGB 颜色转换",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.config.System, "system", "s", "srgb", "色彩系统: hdtv, smpte, srgb 或配置文件中的名称")
	flags.StringVar(&a.config.Observer, "observer", "", "色匹配函数: 1931, 1964 (默认使用色彩系统自己的设置)")
	flags.StringVarP(&a.config.Format, "format", "f", "", "输出格式: html 或 fraction")
	flags.StringVarP(&a.config.ConfigFile, "config", "c", "", "自定义色彩系统 TOML 文件")
	flags.BoolVar(&a.config.Swatch, "swatch", false, "在终端输出色块")
	flags.BoolVarP(&a.config.Verbose, "verbose", "v", false, "详细输出")
	flags.BoolVar(&a.config.Debug, "vv", false, "调试输出")
	flags.BoolVarP(&a.config.Quiet, "quiet", "q", false, "只输出错误")

	root.AddCommand(
		newXYCmd(a),
		newXYZCmd(a),
		newSpectrumCmd(a),
		newProjectCmd(a),
		newLocusCmd(a),
		newInfoCmd(a),
		newSystemsCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	a.logger = logger.New(cmd.ErrOrStderr(),
		logger.LevelFromFlags(a.config.Debug, a.config.Verbose, a.config.Quiet))

	format, err := colorspace.ParseFormat(a.config.Format)
	if err != nil {
		return err
	}
	a.format = format

	a.logger.Step("加载参考表")
	a.tables = cie.Default()
	a.logger.Done(fmt.Sprintf("%d 个采样点, weight=%.4f", cie.Samples, a.tables.Weight))

	a.logger.Step("选择色彩系统", a.config.System)
	a.system, err = config.Resolve(&a.config, a.tables)
	if err != nil {
		return err
	}
	a.logger.Done(fmt.Sprintf("%s, CMF %s", a.config.System, a.system.Observer()))

	a.printer = output.NewPrinter(cmd.OutOrStdout(), a.format, a.config.Swatch)
	return nil
}

// parseFloats 把命令行参数解析为浮点数
func parseFloats(args []string, names ...string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			name := arg
			if i < len(names) {
				name = names[i]
			}
			return nil, fmt.Errorf("无效的 %s: %q", name, arg)
		}
		values[i] = v
	}
	return values, nil
}
