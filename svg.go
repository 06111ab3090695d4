package cu2qu

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// MaxPrecision is the maximum number of decimal places to print.
	// Trailing zeros are dropped. Zero prints the shortest representation
	// that round-trips.
	MaxPrecision int
}

// SVG returns path elements as SVG path data, such as
// "M0,0 Q0.5,1 1,1 Z".
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	var sb strings.Builder
	// Writing to a strings.Builder doesn't fail.
	_ = WriteSVG(&sb, seq, opts)
	return sb.String()
}

// WriteSVG writes path elements to w as SVG path data, one absolute
// command per element.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	var buf []byte
	num := func(f float64) {
		if opts.MaxPrecision <= 0 {
			buf = strconv.AppendFloat(buf, f, 'f', -1, 64)
			return
		}
		start := len(buf)
		buf = strconv.AppendFloat(buf, f, 'f', opts.MaxPrecision, 64)
		for buf[len(buf)-1] == '0' {
			buf = buf[:len(buf)-1]
		}
		if buf[len(buf)-1] == '.' {
			buf = buf[:len(buf)-1]
		}
		if len(buf) == start {
			buf = append(buf, '0')
		}
	}
	pts := func(ps ...Point) {
		for i, p := range ps {
			if i > 0 {
				buf = append(buf, ' ')
			}
			num(p.X)
			buf = append(buf, ',')
			num(p.Y)
		}
	}

	for el := range seq {
		if len(buf) > 0 {
			buf = append(buf, ' ')
		}
		switch el.Kind {
		case MoveToKind:
			buf = append(buf, 'M')
			pts(el.P0)
		case LineToKind:
			buf = append(buf, 'L')
			pts(el.P0)
		case QuadToKind:
			buf = append(buf, 'Q')
			pts(el.P0, el.P1)
		case CubicToKind:
			buf = append(buf, 'C')
			pts(el.P0, el.P1, el.P2)
		case ClosePathKind:
			buf = append(buf, 'Z')
		default:
			panic(fmt.Sprintf("unhandled path element %v", el.Kind))
		}
	}
	_, err := w.Write(buf)
	return err
}
