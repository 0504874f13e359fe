// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package project flattens a scene graph into 2D view geometry. It reads
// only the scene graph, so any two identical graphs yield identical views.
// See docs/ARCHITECTURE § View Projector.
package project

import (
	"fmt"
	"sort"

	"github.com/pdiddy/cad-engine/internal/scene"
	"github.com/pdiddy/cad-engine/pkg/types"
)

// interval is a 1D extent along a wall's span axis.
type interval struct {
	lo, hi float64
}

// openingsFor collects the opening intervals cut into the named wall,
// measured along the wall's span axis.
func openingsFor(g types.SceneGraph, wallLabel string, alongX bool) []interval {
	var out []interval
	for _, p := range g.Primitives {
		if p.Kind != types.KindOpening || p.Wall != wallLabel {
			continue
		}
		c := p.Center[1]
		if alongX {
			c = p.Center[0]
		}
		out = append(out, interval{lo: c - p.Size[0]/2, hi: c + p.Size[0]/2})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].lo < out[j].lo })
	return out
}

// subtract removes the gaps from the span interval and returns the
// remaining solid segments.
func subtract(span interval, gaps []interval) []interval {
	var out []interval
	at := span.lo
	for _, gap := range gaps {
		if gap.lo > at {
			out = append(out, interval{at, gap.lo})
		}
		if gap.hi > at {
			at = gap.hi
		}
	}
	if at < span.hi {
		out = append(out, interval{at, span.hi})
	}
	return out
}

// Top projects the scene onto the floor plane: world X/Y become view X/Y.
// Wall edges are segmented around their openings; a window additionally
// draws its sill line across the gap. Interior partitions render dashed.
func Top(g types.SceneGraph) types.ViewGeometry {
	view := types.ViewGeometry{Name: "top"}

	for _, p := range g.Primitives {
		switch {
		case p.Kind == types.KindOpening:
			// Openings render as part of their host wall.
		case p.SketchOnly:
			view.Lines = append(view.Lines, partitionLine(p))
		case p.Kind == types.KindCylinder:
			view.Circles = append(view.Circles, types.Circle2D{
				X: p.Center[0], Y: p.Center[1], R: p.Size[0] / 2,
			})
		case p.Kind == types.KindBox:
			view.Rects = append(view.Rects, footprintRect(p))
		case p.Kind == types.KindPlane && p.Flat:
			// Only ground-level surfaces appear; a roof would hide the
			// interior layout.
			if p.Center[2] <= 0 {
				view.Rects = append(view.Rects, footprintRect(p))
			}
		case p.Kind == types.KindPlane:
			projectWallTop(&view, g, p)
		}
	}

	addAnnotationLabels(&view, g)
	return view
}

func footprintRect(p types.ScenePrimitive) types.Rect2D {
	w, h := p.Size[0], p.Size[1]
	if p.Rotation == 90 || p.Rotation == 270 {
		w, h = h, w
	}
	r := types.Rect2D{
		X: p.Center[0] - w/2,
		Y: p.Center[1] - h/2,
		W: w,
		H: h,
	}
	if p.Rounded {
		r.Radius = scene.CornerRadius
	}
	return r
}

func partitionLine(p types.ScenePrimitive) types.Line2D {
	half := p.Size[0] / 2
	if p.Rotation == 90 {
		return types.Line2D{
			X1: p.Center[0], Y1: p.Center[1] - half,
			X2: p.Center[0], Y2: p.Center[1] + half,
			Dashed: true,
		}
	}
	return types.Line2D{
		X1: p.Center[0] - half, Y1: p.Center[1],
		X2: p.Center[0] + half, Y2: p.Center[1],
		Dashed: true,
	}
}

// projectWallTop draws one wall as its two long edges plus end caps, with
// gaps where openings cut through.
func projectWallTop(view *types.ViewGeometry, g types.SceneGraph, p types.ScenePrimitive) {
	alongX := p.Rotation != 90 && p.Rotation != 270
	span, thickness := p.Size[0], p.Size[1]

	var axisCenter, crossCenter float64
	if alongX {
		axisCenter, crossCenter = p.Center[0], p.Center[1]
	} else {
		axisCenter, crossCenter = p.Center[1], p.Center[0]
	}

	full := interval{axisCenter - span/2, axisCenter + span/2}
	gaps := openingsFor(g, p.Label, alongX)
	segments := subtract(full, gaps)

	edge := func(cross float64, segs []interval) {
		for _, s := range segs {
			view.Lines = append(view.Lines, axisLine(alongX, s.lo, s.hi, cross))
		}
	}
	edge(crossCenter-thickness/2, segments)
	edge(crossCenter+thickness/2, segments)

	// End caps.
	view.Lines = append(view.Lines,
		crossLine(alongX, full.lo, crossCenter-thickness/2, crossCenter+thickness/2),
		crossLine(alongX, full.hi, crossCenter-thickness/2, crossCenter+thickness/2))

	// Windows get a sill line through the centerline of their gap.
	for _, o := range g.Primitives {
		if o.Kind == types.KindOpening && o.Wall == p.Label && isWindow(o.Label) {
			c := o.Center[1]
			if alongX {
				c = o.Center[0]
			}
			view.Lines = append(view.Lines, axisLine(alongX, c-o.Size[0]/2, c+o.Size[0]/2, crossCenter))
		}
	}
}

func isWindow(label string) bool {
	return len(label) >= 6 && label[:6] == "window"
}

func axisLine(alongX bool, lo, hi, cross float64) types.Line2D {
	if alongX {
		return types.Line2D{X1: lo, Y1: cross, X2: hi, Y2: cross}
	}
	return types.Line2D{X1: cross, Y1: lo, X2: cross, Y2: hi}
}

func crossLine(alongX bool, at, lo, hi float64) types.Line2D {
	if alongX {
		return types.Line2D{X1: at, Y1: lo, X2: at, Y2: hi}
	}
	return types.Line2D{X1: lo, Y1: at, X2: hi, Y2: at}
}

func addAnnotationLabels(view *types.ViewGeometry, g types.SceneGraph) {
	keys := make([]string, 0, len(g.Annotations))
	for k := range g.Annotations {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	minX, minY := viewExtentMin(*view)
	for i, k := range keys {
		view.Labels = append(view.Labels, types.Label2D{
			X:    minX,
			Y:    minY - 20 - float64(i)*15,
			Text: fmt.Sprintf("%s: %g cm", k, g.Annotations[k]),
		})
	}
}

func viewExtentMin(view types.ViewGeometry) (float64, float64) {
	minX, minY := 0.0, 0.0
	for _, l := range view.Lines {
		minX = min(minX, l.X1, l.X2)
		minY = min(minY, l.Y1, l.Y2)
	}
	for _, r := range view.Rects {
		minX = min(minX, r.X)
		minY = min(minY, r.Y)
	}
	for _, c := range view.Circles {
		minX = min(minX, c.X-c.R)
		minY = min(minY, c.Y-c.R)
	}
	return minX, minY
}

// Front projects the scene onto a vertical plane. Rooms and houses show
// their facade wall with door and window cutouts; furniture projects as an
// elevation of every solid primitive.
func Front(g types.SceneGraph) types.ViewGeometry {
	view := types.ViewGeometry{Name: "front"}

	if g.FrontWall != "" {
		projectFacade(&view, g)
		return view
	}

	for _, p := range g.Primitives {
		if p.SketchOnly || p.Kind == types.KindOpening {
			continue
		}
		view.Rects = append(view.Rects, elevationRect(p))
	}
	return view
}

func elevationRect(p types.ScenePrimitive) types.Rect2D {
	w := p.Size[0]
	if p.Rotation == 90 || p.Rotation == 270 {
		w = p.Size[1]
	}
	r := types.Rect2D{
		X: p.Center[0] - w/2,
		Y: p.Center[2] - p.Size[2]/2,
		W: w,
		H: p.Size[2],
	}
	if p.Rounded {
		r.Radius = scene.CornerRadius
	}
	return r
}

func projectFacade(view *types.ViewGeometry, g types.SceneGraph) {
	var facade types.ScenePrimitive
	found := false
	for _, p := range g.Primitives {
		if p.Label == g.FrontWall {
			facade = p
			found = true
			break
		}
	}
	if !found {
		return
	}

	alongX := facade.Rotation != 90 && facade.Rotation != 270
	axisCenter := facade.Center[1]
	if alongX {
		axisCenter = facade.Center[0]
	}

	view.Rects = append(view.Rects, types.Rect2D{
		X: axisCenter - facade.Size[0]/2,
		Y: facade.Center[2] - facade.Size[2]/2,
		W: facade.Size[0],
		H: facade.Size[2],
	})

	for _, o := range g.Primitives {
		if o.Kind != types.KindOpening || o.Wall != facade.Label {
			continue
		}
		c := o.Center[1]
		if alongX {
			c = o.Center[0]
		}
		view.Rects = append(view.Rects, types.Rect2D{
			X: c - o.Size[0]/2,
			Y: o.Center[2] - o.Size[2]/2,
			W: o.Size[0],
			H: o.Size[2],
		})
	}
}
