package cie

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/weaming/spectrum-go/matrix"
)

// row 是表格中的一行：波长 + 数值列
type row struct {
	line   int
	values []float64
}

// readRows 读取空白或逗号分隔的数值表格，忽略空行和 # 注释
func readRows(r io.Reader, minCols int) ([]row, error) {
	var rows []row
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ';' || r == ' ' || r == '\t'
		})
		if len(fields) < minCols {
			return nil, fmt.Errorf("line %d: expected at least %d columns, got %d",
				lineNo, minCols, len(fields))
		}

		values := make([]float64, minCols)
		for i := 0; i < minCols; i++ {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %d: %w", lineNo, i+1, err)
			}
			values[i] = v
		}
		rows = append(rows, row{line: lineNo, values: values})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}

	if len(rows) != Samples {
		return nil, &DimensionError{Got: len(rows), Want: Samples}
	}
	for i, r := range rows {
		if math.Abs(r.values[0]-float64(Wavelength(i))) > 1e-9 {
			return nil, fmt.Errorf("%w: line %d has %gnm, want %dnm",
				ErrGridMismatch, r.line, r.values[0], Wavelength(i))
		}
	}
	return rows, nil
}

// ParseCMF 解析色匹配函数表（每行: 波长 x̄ ȳ z̄）
func ParseCMF(r io.Reader) (*CMF, error) {
	rows, err := readRows(r, 4)
	if err != nil {
		return nil, err
	}

	var cmf CMF
	for i, r := range rows {
		cmf[i] = matrix.Vector3{r.values[1], r.values[2], r.values[3]}
	}
	return &cmf, nil
}

// ParseSPD 解析光谱功率分布表（每行: 波长 功率）
func ParseSPD(r io.Reader) (Spectrum, error) {
	var s Spectrum
	rows, err := readRows(r, 2)
	if err != nil {
		return s, err
	}

	for i, r := range rows {
		s[i] = r.values[1]
	}
	return s, nil
}

// ParseValues 读取光谱：每行一个数值，或者 "波长 数值" 两列。
// 只有数值列时不检查波长网格，只检查采样数。
func ParseValues(r io.Reader) (Spectrum, error) {
	var s Spectrum

	data, err := io.ReadAll(r)
	if err != nil {
		return s, fmt.Errorf("failed to read spectrum: %w", err)
	}

	var values []float64
	twoCols := false
	for lineNo, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ';' || r == ' ' || r == '\t'
		})
		if len(fields) == 0 {
			return s, fmt.Errorf("line %d: no values", lineNo+1)
		}
		if len(fields) >= 2 {
			twoCols = true
			break
		}
		v, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return s, fmt.Errorf("line %d: %w", lineNo+1, err)
		}
		values = append(values, v)
	}

	if twoCols {
		return ParseSPD(strings.NewReader(string(data)))
	}
	return SpectrumFrom(values)
}
