// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"io"

	"github.com/pdiddy/cad-engine/pkg/types"
)

// DXF layer names for the two views and their dimension labels.
const (
	layerTop        = "TOP_VIEW"
	layerFront      = "FRONT_VIEW"
	layerDimensions = "DIMENSIONS"
)

// dxfTextHeight is the TEXT entity height in drawing units.
const dxfTextHeight = 10.0

// WriteDXF emits a minimal R12 drawing containing both views as LINE,
// CIRCLE, and TEXT entities. The top view sits on TOP_VIEW, the front view
// on FRONT_VIEW offset to the right, and annotation labels on DIMENSIONS.
// DXF shares the views' Y-up convention, so no axis flip is needed.
func WriteDXF(w io.Writer, top, front types.ViewGeometry) error {
	dw := &dxfWriter{w: w}

	dw.group(0, "SECTION")
	dw.group(2, "ENTITIES")

	dw.view(top, layerTop, 0)

	// Shift the front view clear of the top view's extent.
	tb := viewBounds(top)
	fb := viewBounds(front)
	offset := tb.maxX + svgGap - fb.minX
	dw.view(front, layerFront, offset)

	dw.group(0, "ENDSEC")
	dw.group(0, "EOF")
	return dw.err
}

// dxfWriter accumulates the first write error so entity emission can stay
// unconditional.
type dxfWriter struct {
	w   io.Writer
	err error
}

func (d *dxfWriter) group(code int, value string) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, "%d\n%s\n", code, value)
}

func (d *dxfWriter) groupf(code int, value float64) {
	d.group(code, fmt.Sprintf("%g", value))
}

func (d *dxfWriter) view(v types.ViewGeometry, layer string, offsetX float64) {
	for _, l := range v.Lines {
		d.line(layer, l.X1+offsetX, l.Y1, l.X2+offsetX, l.Y2)
	}
	for _, r := range v.Rects {
		x1, y1 := r.X+offsetX, r.Y
		x2, y2 := x1+r.W, y1+r.H
		d.line(layer, x1, y1, x2, y1)
		d.line(layer, x2, y1, x2, y2)
		d.line(layer, x2, y2, x1, y2)
		d.line(layer, x1, y2, x1, y1)
	}
	for _, c := range v.Circles {
		d.circle(layer, c.X+offsetX, c.Y, c.R)
	}
	for _, l := range v.Labels {
		d.text(layerDimensions, l.X+offsetX, l.Y, l.Text)
	}
}

func (d *dxfWriter) line(layer string, x1, y1, x2, y2 float64) {
	d.group(0, "LINE")
	d.group(8, layer)
	d.groupf(10, x1)
	d.groupf(20, y1)
	d.groupf(11, x2)
	d.groupf(21, y2)
}

func (d *dxfWriter) circle(layer string, x, y, r float64) {
	d.group(0, "CIRCLE")
	d.group(8, layer)
	d.groupf(10, x)
	d.groupf(20, y)
	d.groupf(40, r)
}

func (d *dxfWriter) text(layer string, x, y float64, value string) {
	d.group(0, "TEXT")
	d.group(8, layer)
	d.groupf(10, x)
	d.groupf(20, y)
	d.groupf(40, dxfTextHeight)
	d.group(1, value)
}
