package ml

import (
	"math"
	"sort"
	"strconv"
)

const (
	kindNumeric     = "numeric"
	kindCategorical = "categorical"
)

// Column holds the fitted transformation state for one input column.
// Fields are exported so a fitted preprocessor survives gob encoding.
type Column struct {
	Name string
	Kind string

	// Numeric state
	Mean float64
	Std  float64

	// Categorical state, in fitted order. A category not present here
	// encodes as an all-zero block.
	Categories []string
}

// Preprocessor standardizes numeric columns and one-hot encodes categorical
// columns. It is fit once on the training table and owned by the pipeline it
// is embedded in; Transform never fails on unseen or missing values.
type Preprocessor struct {
	Cols []Column
}

// NewPreprocessor classifies each table column and fits the transformation
// on the training data. A column is numeric iff every non-missing sample
// value is numeric; anything else (including booleans) is categorical.
func NewPreprocessor(t *Table) *Preprocessor {
	p := &Preprocessor{Cols: make([]Column, 0, len(t.Columns))}
	for _, name := range t.Columns {
		numeric := true
		present := 0
		for _, row := range t.Rows {
			v, ok := row[name]
			if !ok || v == nil {
				continue
			}
			present++
			if _, ok := asFloat(v); !ok {
				numeric = false
				break
			}
		}

		if numeric && present > 0 {
			p.Cols = append(p.Cols, fitNumeric(name, t))
			continue
		}
		p.Cols = append(p.Cols, fitCategorical(name, t))
	}
	return p
}

func fitNumeric(name string, t *Table) Column {
	var sum float64
	var n int
	for _, row := range t.Rows {
		if f, ok := numericValue(row, name); ok {
			sum += f
			n++
		}
	}
	mean := sum / float64(n)

	var ss float64
	for _, row := range t.Rows {
		if f, ok := numericValue(row, name); ok {
			d := f - mean
			ss += d * d
		}
	}
	std := math.Sqrt(ss / float64(n))
	if std == 0 {
		std = 1
	}
	return Column{Name: name, Kind: kindNumeric, Mean: mean, Std: std}
}

func fitCategorical(name string, t *Table) Column {
	set := map[string]bool{}
	for _, row := range t.Rows {
		v, ok := row[name]
		if !ok || v == nil {
			continue
		}
		set[categoryOf(v)] = true
	}
	cats := make([]string, 0, len(set))
	for c := range set {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return Column{Name: name, Kind: kindCategorical, Categories: cats}
}

// Width reports the length of the encoded feature vector.
func (p *Preprocessor) Width() int {
	w := 0
	for _, c := range p.Cols {
		if c.Kind == kindNumeric {
			w++
		} else {
			w += len(c.Categories)
		}
	}
	return w
}

// Transform encodes one row. Missing numeric values impute to the training
// mean (standardized zero); unseen categories encode as all zeros.
func (p *Preprocessor) Transform(row Row) []float64 {
	out := make([]float64, 0, p.Width())
	for _, c := range p.Cols {
		if c.Kind == kindNumeric {
			f, ok := numericValue(row, c.Name)
			if !ok {
				f = c.Mean
			}
			out = append(out, (f-c.Mean)/c.Std)
			continue
		}

		cat := ""
		if v, ok := row[c.Name]; ok && v != nil {
			cat = categoryOf(v)
		}
		for _, known := range c.Categories {
			if cat == known {
				out = append(out, 1)
			} else {
				out = append(out, 0)
			}
		}
	}
	return out
}

// TransformTable encodes every row of a table, preserving row order.
func (p *Preprocessor) TransformTable(t *Table) [][]float64 {
	out := make([][]float64, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = p.Transform(row)
	}
	return out
}

func numericValue(row Row, name string) (float64, bool) {
	v, ok := row[name]
	if !ok || v == nil {
		return 0, false
	}
	return asFloat(v)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// categoryOf renders a value as a category key. Numbers inside an otherwise
// categorical column share the encoding of their string form.
func categoryOf(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	}
	if f, ok := asFloat(v); ok {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return ""
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
