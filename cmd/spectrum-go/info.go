package main

import (
	"github.com/spf13/cobra"

	"github.com/weaming/spectrum-go/colorspace"
	"github.com/weaming/spectrum-go/config"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "输出当前色彩系统的原色、白点和变换矩阵",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dumpSystem(a, a.config.System, a.system)
			return nil
		},
	}
}

func dumpSystem(a *app, name string, s *colorspace.System) {
	p := a.printer

	p.Section("colour system "+name, func() {
		p.Line("observer = CIE %s", s.Observer())
		p.Vector("red", s.Red())
		p.Vector("green", s.Green())
		p.Vector("blue", s.Blue())
		p.Vector("white", s.White())
		if x, y, err := colorspace.XYZToXY(s.White()); err == nil {
			p.XY("white xy", x, y)
		}
	})

	p.Section("matrices", func() {
		p.Matrix("M (rgb -> xyz)", s.M())
		p.Matrix("MI", s.MI())
		p.Vector("wscale", s.WScale())
		p.Matrix("T (xyz -> rgb)", s.T())
	})

	p.Section("reference tables", func() {
		p.Line("weight   = %.6f", s.Tables().Weight)
	})
}

func newSystemsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "systems",
		Short: "列出可用的色彩系统",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range colorspace.Names() {
				a.printer.Line("%s", name)
			}
			if a.config.ConfigFile == "" {
				return nil
			}

			f, err := config.Load(a.config.ConfigFile)
			if err != nil {
				return err
			}
			// 构造一遍，确保文件中的定义都有效
			if _, err := f.Build(a.tables); err != nil {
				return err
			}
			for _, name := range f.Names() {
				a.printer.Line("%s (%s)", name, a.config.ConfigFile)
			}
			return nil
		},
	}
}
