// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes view and mesh geometry to interchange formats:
// SVG and DXF for the 2D views, STL and OBJ/MTL for the 3D mesh. Writers
// take an io.Writer so callers decide where output lands. See
// docs/ARCHITECTURE § Exporters.
package export

import (
	"fmt"
	"html"
	"io"
	"math"

	"github.com/pdiddy/cad-engine/pkg/types"
)

const (
	// svgMargin is the padding around each view in drawing units.
	svgMargin = 40
	// svgGap separates the top and front views horizontally.
	svgGap = 80
	// svgFontSize is the label text height in drawing units.
	svgFontSize = 12
)

// bounds is a 2D extent in view coordinates.
type bounds struct {
	minX, minY, maxX, maxY float64
}

func (b bounds) width() float64  { return b.maxX - b.minX }
func (b bounds) height() float64 { return b.maxY - b.minY }

func viewBounds(v types.ViewGeometry) bounds {
	b := bounds{
		minX: math.Inf(1), minY: math.Inf(1),
		maxX: math.Inf(-1), maxY: math.Inf(-1),
	}
	grow := func(x, y float64) {
		b.minX = min(b.minX, x)
		b.minY = min(b.minY, y)
		b.maxX = max(b.maxX, x)
		b.maxY = max(b.maxY, y)
	}
	for _, l := range v.Lines {
		grow(l.X1, l.Y1)
		grow(l.X2, l.Y2)
	}
	for _, r := range v.Rects {
		grow(r.X, r.Y)
		grow(r.X+r.W, r.Y+r.H)
	}
	for _, c := range v.Circles {
		grow(c.X-c.R, c.Y-c.R)
		grow(c.X+c.R, c.Y+c.R)
	}
	for _, l := range v.Labels {
		grow(l.X, l.Y)
		grow(l.X+float64(len(l.Text))*svgFontSize*0.6, l.Y+svgFontSize)
	}
	if b.minX > b.maxX {
		return bounds{}
	}
	return b
}

// WriteSVG renders the top and front views side by side into a single SVG
// document. View coordinates are centimeters with Y pointing up; SVG Y
// points down, so each view is flipped about its own vertical extent.
func WriteSVG(w io.Writer, top, front types.ViewGeometry) error {
	tb, fb := viewBounds(top), viewBounds(front)

	width := tb.width() + fb.width() + 2*svgMargin + svgGap
	height := max(tb.height(), fb.height()) + 2*svgMargin

	if _, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%g\" height=\"%g\" viewBox=\"0 0 %g %g\">\n",
		width, height, width, height); err != nil {
		return err
	}

	topOffsetX := svgMargin - tb.minX
	frontOffsetX := svgMargin + tb.width() + svgGap - fb.minX
	if err := writeView(w, top, tb, topOffsetX, svgMargin); err != nil {
		return err
	}
	if err := writeView(w, front, fb, frontOffsetX, svgMargin); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "</svg>")
	return err
}

// writeView emits one view group. The Y flip maps view maxY to the top of
// the group.
func writeView(w io.Writer, v types.ViewGeometry, b bounds, offsetX, offsetY float64) error {
	flipY := func(y float64) float64 { return b.maxY - y + offsetY }

	if _, err := fmt.Fprintf(w, "  <g id=%q stroke=\"black\" fill=\"none\" stroke-width=\"1\">\n", v.Name); err != nil {
		return err
	}

	for _, l := range v.Lines {
		dash := ""
		if l.Dashed {
			dash = " stroke-dasharray=\"6 4\""
		}
		if _, err := fmt.Fprintf(w,
			"    <line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\"%s/>\n",
			l.X1+offsetX, flipY(l.Y1), l.X2+offsetX, flipY(l.Y2), dash); err != nil {
			return err
		}
	}
	for _, r := range v.Rects {
		rx := ""
		if r.Radius > 0 {
			rx = fmt.Sprintf(" rx=\"%g\"", r.Radius)
		}
		// Rect Y references the lower edge in view space, the upper edge
		// after the flip.
		if _, err := fmt.Fprintf(w,
			"    <rect x=\"%g\" y=\"%g\" width=\"%g\" height=\"%g\"%s/>\n",
			r.X+offsetX, flipY(r.Y+r.H), r.W, r.H, rx); err != nil {
			return err
		}
	}
	for _, c := range v.Circles {
		if _, err := fmt.Fprintf(w,
			"    <circle cx=\"%g\" cy=\"%g\" r=\"%g\"/>\n",
			c.X+offsetX, flipY(c.Y), c.R); err != nil {
			return err
		}
	}
	for _, l := range v.Labels {
		if _, err := fmt.Fprintf(w,
			"    <text x=\"%g\" y=\"%g\" font-size=\"%d\" fill=\"black\" stroke=\"none\">%s</text>\n",
			l.X+offsetX, flipY(l.Y), svgFontSize, html.EscapeString(l.Text)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "  </g>")
	return err
}
