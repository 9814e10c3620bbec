// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package numpy

import (
	"math"
	"strconv"
	"strings"

	"github.com/born-ml/numpy/internal/tensor"
)

// String renders the array as nested brackets with right-aligned columns,
// similar to NumPy's str():
//
//	[[ 1.   2.5]
//	 [10.  -3. ]]
func (a *NDArray) String() string {
	n := a.raw.NumElements()
	bitSize := 64
	if a.raw.DType() == tensor.Float32 {
		bitSize = 32
	}
	cells := make([]string, n)
	for i := range cells {
		cells[i] = formatElement(elementAt(a.raw, i), bitSize)
	}
	if a.raw.DType().IsFloat() {
		alignDecimals(cells)
	}
	if a.raw.Rank() == 0 {
		return cells[0]
	}

	width := 0
	for _, c := range cells {
		width = max(width, len(c))
	}
	var sb strings.Builder
	offset := 0
	writeNested(&sb, a.raw.Shape(), 0, cells, &offset, width)
	return sb.String()
}

func writeNested(sb *strings.Builder, shape tensor.Shape, axis int, cells []string, offset *int, width int) {
	sb.WriteByte('[')
	last := axis == len(shape)-1
	for i := 0; i < shape[axis]; i++ {
		if i > 0 {
			if last {
				sb.WriteByte(' ')
			} else {
				// One blank line per remaining outer level, then indent past the brackets.
				sb.WriteString(strings.Repeat("\n", len(shape)-axis-1))
				sb.WriteString(strings.Repeat(" ", axis+1))
			}
		}
		if last {
			cell := cells[*offset]
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
			*offset++
		} else {
			writeNested(sb, shape, axis+1, cells, offset, width)
		}
	}
	sb.WriteByte(']')
}

// formatElement prints floats with the shortest digits that round-trip at bitSize.
func formatElement(v any, bitSize int) string {
	switch x := v.(type) {
	case bool:
		if x {
			return "True"
		}
		return "False"
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		switch {
		case math.IsNaN(x):
			return "nan"
		case math.IsInf(x, 1):
			return "inf"
		case math.IsInf(x, -1):
			return "-inf"
		}
		s := strconv.FormatFloat(x, 'g', -1, bitSize)
		if !strings.ContainsAny(s, ".e") {
			s += "."
		}
		return s
	}
	return "?"
}

// alignDecimals pads float cells on the right so their decimal points line up.
func alignDecimals(cells []string) {
	frac := func(s string) int {
		if strings.ContainsAny(s, "en") { // exponent, nan, inf
			return 0
		}
		if i := strings.IndexByte(s, '.'); i >= 0 {
			return len(s) - i - 1
		}
		return 0
	}
	widest := 0
	for _, c := range cells {
		widest = max(widest, frac(c))
	}
	for i, c := range cells {
		if strings.ContainsAny(c, "en") {
			continue
		}
		cells[i] = c + strings.Repeat(" ", widest-frac(c))
	}
}
