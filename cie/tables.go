package cie

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"
)

//go:embed data
var dataFS embed.FS

// Files 是三张参考表在文件系统中的路径
type Files struct {
	CMF1931 string
	CMF1964 string
	D65     string
}

// DefaultFiles 内置数据文件
var DefaultFiles = Files{
	CMF1931: "data/cie-cmf-1931.txt",
	CMF1964: "data/cie-cmf-1964.txt",
	D65:     "data/IlluminantD65_5nm_380_780.csv",
}

// Tables 是不可变的参考数据集合。
// Weight = Σ CMF1964[i].Y * D65[i]，仅用于光谱投影。
type Tables struct {
	CMF1931 *CMF
	CMF1964 *CMF
	D65     Spectrum
	Weight  float64
}

// NewTables 组装参考数据并计算 Weight。两张色匹配函数表都不能为 nil。
func NewTables(cmf1931, cmf1964 *CMF, d65 Spectrum) (*Tables, error) {
	if cmf1931 == nil || cmf1964 == nil {
		return nil, ErrMissingTable
	}
	return &Tables{
		CMF1931: cmf1931,
		CMF1964: cmf1964,
		D65:     d65,
		Weight:  cmf1964.Column(1).Mul(d65).Sum(),
	}, nil
}

// Load 从 fsys 读取三张参考表
func Load(fsys fs.FS, files Files) (*Tables, error) {
	cmf1931, err := loadCMF(fsys, files.CMF1931)
	if err != nil {
		return nil, err
	}
	cmf1964, err := loadCMF(fsys, files.CMF1964)
	if err != nil {
		return nil, err
	}

	f, err := fsys.Open(files.D65)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", files.D65, err)
	}
	defer f.Close()
	d65, err := ParseSPD(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", files.D65, err)
	}

	return NewTables(cmf1931, cmf1964, d65)
}

func loadCMF(fsys fs.FS, name string) (*CMF, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	cmf, err := ParseCMF(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return cmf, nil
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default 返回内置参考数据，首次调用时解析一次
func Default() *Tables {
	defaultOnce.Do(func() {
		t, err := Load(dataFS, DefaultFiles)
		if err != nil {
			// 内置数据损坏属于构建错误
			panic(fmt.Sprintf("cie: embedded tables: %v", err))
		}
		defaultTables = t
	})
	return defaultTables
}
