// Command contourdemo exercises each contour variant against a few
// representative queries and prints the results: SVG-style outlines,
// arc-length samples, closest-point lookups and winding numbers.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gogpu/contour"
)

func main() {
	var tolerance = flag.Float64("tolerance", 0.1, "curve flattening tolerance")
	flag.Parse()

	shapes := buildShapes()
	for _, s := range shapes {
		describe(os.Stdout, s.name, s.c, *tolerance)
	}
}

type namedContour struct {
	name string
	c    contour.Contour
}

func buildShapes() []namedContour {
	triangle, err := contour.NewPathBuilder().
		MoveTo(contour.Pt(0, 0)).
		LineTo(contour.Pt(2, 0)).
		LineTo(contour.Pt(1, 2)).
		Close().
		Build()
	if err != nil {
		panic(err)
	}

	return []namedContour{
		{"unit-square", contour.NewRectContour(0, 0, 1, 1)},
		{"reversed-rectangle", contour.NewRectContour(0, 0, 1, 1).Reverse()},
		{"unit-circle", contour.NewCircleContour(contour.Pt(0, 0), 1, 0, 360)},
		{"quarter-arc", contour.NewCircleContour(contour.Pt(0, 0), 1, 0, 90)},
		{"rounded-rect", contour.NewRoundedRectContour(0, 0, 10, 6, 2, 2, false)},
		{"triangle", triangle},
	}
}

func describe(w *os.File, name string, c contour.Contour, tolerance float64) {
	fmt.Fprintf(w, "== %s ==\n", name)

	var sb fmtBuf
	c.Print(&sb)
	fmt.Fprintf(w, "outline: %s\n", sb.String())

	handle, length := c.InitMeasure(tolerance)
	defer handle.Release()
	fmt.Fprintf(w, "length: %g\n", length)

	start, tangent := c.Point(handle, 0, contour.DirEnd)
	fmt.Fprintf(w, "start: (%g, %g) tangent (%g, %g)\n", start.X, start.Y, tangent.X, tangent.Y)

	mid, _ := c.Point(handle, length/2, contour.DirEnd)
	fmt.Fprintf(w, "midpoint: (%g, %g)\n", mid.X, mid.Y)

	query := contour.Pt(0.5, 0.5)
	ok, dist, offset, pos, _ := c.ClosestPoint(handle, 1e-3, length+1, query)
	if ok {
		fmt.Fprintf(w, "closest to (0.5, 0.5): (%g, %g) at offset %g, distance %g\n", pos.X, pos.Y, offset, dist)
	}

	fmt.Fprintf(w, "winding at (0.5, 0.5): %d\n\n", c.Winding(handle, query))
}

// fmtBuf is a tiny io.Writer sink so describe can capture Print's output
// before labeling it.
type fmtBuf struct{ data []byte }

func (b *fmtBuf) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

func (b *fmtBuf) String() string { return string(b.data) }
