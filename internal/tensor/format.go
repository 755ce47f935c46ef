package tensor

import (
	"fmt"
	"strings"
)

// FormatConfig controls the textual rendering of tensors.
type FormatConfig struct {
	Width     int // Minimum width of every element, right aligned.
	Precision int // Digits after the decimal point for floats; negative means shortest.
}

// DefaultFormatConfig returns the rendering used by Tensor.String.
func DefaultFormatConfig() FormatConfig {
	return FormatConfig{
		Width:     3,
		Precision: -1,
	}
}

// Format renders t as nested bracketed rows, one innermost row per line:
//
//	[[  0,   1,   2],
//	 [  3,   4,   5]]
//
// Blocks of higher dimensions are separated by one blank line per extra
// level. Elements are visited through slices of t's view, so any
// transposed or narrowed view renders in logical order.
func Format[T DType, B Backend](t *Tensor[T, B], cfg FormatConfig) string {
	if t.released {
		return "Tensor(released)"
	}
	var sb strings.Builder
	s := t.slice()
	switch t.NumDims() {
	case 0:
		v, _ := t.AtIndex(Indices{})
		sb.WriteString(formatValue(v, cfg))
	case 1:
		formatInner(&sb, s, cfg)
	default:
		formatOuter(&sb, s, cfg)
	}
	return sb.String()
}

// formatInner writes the last dimension of s as one row.
func formatInner[T DType, B Backend](sb *strings.Builder, s *Slice[T, B], cfg FormatConfig) {
	n := s.view.Shape[len(s.view.Shape)-1]
	sb.WriteByte('[')
	for i := range n {
		offset, err := s.view.ScalarOffsetOf(i)
		if err != nil {
			panic(err) // all leading dimensions are singleton here
		}
		sb.WriteString(formatValue(s.storage.At(offset), cfg))
		if i < n-1 {
			sb.WriteString(", ")
		}
	}
	sb.WriteByte(']')
}

// formatOuter writes dimension s.Dim() of s, recursing through slices.
func formatOuter[T DType, B Backend](sb *strings.Builder, s *Slice[T, B], cfg FormatConfig) {
	depth := s.Dim()
	rank := s.NumDims()
	n := s.view.Shape[depth]
	if n == 0 {
		sb.WriteString("[]")
		return
	}

	for i := range n {
		if i == 0 {
			sb.WriteByte('[')
		} else {
			sb.WriteString(strings.Repeat(" ", depth+1))
		}

		next := s.Index(i)
		if next.Dim() == rank-1 {
			formatInner(sb, next, cfg)
		} else {
			formatOuter(sb, next, cfg)
		}

		if i == n-1 {
			sb.WriteByte(']')
		} else {
			sb.WriteByte(',')
			sb.WriteString(strings.Repeat("\n", rank-depth-1))
		}
	}
}

func formatValue[T DType](v T, cfg FormatConfig) string {
	if cfg.Precision >= 0 {
		switch f := any(v).(type) {
		case float32:
			return fmt.Sprintf("%*.*f", cfg.Width, cfg.Precision, f)
		case float64:
			return fmt.Sprintf("%*.*f", cfg.Width, cfg.Precision, f)
		}
	}
	return fmt.Sprintf("%*v", cfg.Width, v)
}
