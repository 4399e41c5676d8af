// Package config 保存命令行选项，并从 TOML 文件加载自定义色彩系统。
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/weaming/spectrum-go/cie"
	"github.com/weaming/spectrum-go/colorspace"
)

// Config 命令行选项
type Config struct {
	System     string // 色彩系统名称
	Observer   string // 色匹配函数: 1931 / 1964
	Format     string // 输出格式: html / fraction
	ConfigFile string // 自定义色彩系统 TOML 文件
	Swatch     bool   // 在终端输出色块
	Debug      bool
	Verbose    bool
	Quiet      bool
}

// SystemDef 是 TOML 文件中的一个色彩系统
type SystemDef struct {
	Red      [2]float64 `toml:"red"`
	Green    [2]float64 `toml:"green"`
	Blue     [2]float64 `toml:"blue"`
	White    [2]float64 `toml:"white"` // 白点色度坐标
	Observer int        `toml:"observer,omitempty"`
}

// File 是配置文件内容
type File struct {
	Systems map[string]SystemDef `toml:"systems"`
}

// Parse 解析 TOML，不允许未知字段
func Parse(data []byte) (*File, error) {
	var f File
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%w: toml %d:%d: %s", colorspace.ErrConfiguration, row, col, derr.Error())
		}
		return nil, fmt.Errorf("%w: %v", colorspace.ErrConfiguration, err)
	}
	return &f, nil
}

// Load 读取并解析配置文件
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Marshal 把配置编码为 TOML
func (f *File) Marshal() ([]byte, error) {
	return toml.Marshal(f)
}

// Names 返回文件中定义的色彩系统名称（已排序）
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Systems))
	for name := range f.Systems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build 构造文件中定义的所有色彩系统
func (f *File) Build(tables *cie.Tables) (map[string]*colorspace.System, error) {
	systems := make(map[string]*colorspace.System, len(f.Systems))
	for _, name := range f.Names() {
		s, err := f.Systems[name].Build(tables)
		if err != nil {
			return nil, fmt.Errorf("system %q: %w", name, err)
		}
		systems[name] = s
	}
	return systems, nil
}

// Build 构造色彩系统，白点由色度坐标换算为 XYZ
func (d SystemDef) Build(tables *cie.Tables) (*colorspace.System, error) {
	p := colorspace.Primaries{
		Red:   colorspace.Chromaticity{X: d.Red[0], Y: d.Red[1]},
		Green: colorspace.Chromaticity{X: d.Green[0], Y: d.Green[1]},
		Blue:  colorspace.Chromaticity{X: d.Blue[0], Y: d.Blue[1]},
	}
	white := colorspace.XYToXYZ(d.White[0], d.White[1])
	return colorspace.New(tables, p, white, colorspace.Observer(d.Observer))
}

// Resolve 按配置选择色彩系统：先查配置文件，再查预定义系统；
// 指定了观察者时用它重新构造。
func Resolve(cfg *Config, tables *cie.Tables) (*colorspace.System, error) {
	name := cfg.System
	if name == "" {
		name = "srgb"
	}

	var s *colorspace.System
	if cfg.ConfigFile != "" {
		f, err := Load(cfg.ConfigFile)
		if err != nil {
			return nil, err
		}
		if def, ok := f.Systems[name]; ok {
			s, err = def.Build(tables)
			if err != nil {
				return nil, fmt.Errorf("system %q: %w", name, err)
			}
		}
	}
	if s == nil {
		builtin, ok := colorspace.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown colour system %q", colorspace.ErrConfiguration, name)
		}
		s = builtin
	}

	if cfg.Observer != "" {
		obs, err := colorspace.ParseObserver(cfg.Observer)
		if err != nil {
			return nil, err
		}
		if obs != s.Observer() {
			return s.WithObserver(obs)
		}
	}
	return s, nil
}
