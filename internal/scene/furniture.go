// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scene

import (
	"fmt"
	"math"

	"github.com/pdiddy/cad-engine/pkg/types"
)

// cornerLegs places count cylinder legs inside the rectangular footprint,
// inset from the edges by LegInset. Up to four legs take the corners
// clockwise from the southwest; more form evenly spaced pairs along the
// length, so no two legs ever coincide.
func cornerLegs(g *types.SceneGraph, length, width, legHeight float64, count int) {
	x := length/2 - LegInset
	y := width/2 - LegInset

	leg := func(i int, px, py float64) {
		g.Primitives = append(g.Primitives,
			cylinder(fmt.Sprintf("leg_%d", i+1), px, py, legHeight/2, 2*LegRadius, legHeight))
	}

	if count <= 4 {
		corners := [][2]float64{{-x, -y}, {-x, y}, {x, y}, {x, -y}}
		for i := range count {
			leg(i, corners[i][0], corners[i][1])
		}
		return
	}

	rows := (count + 1) / 2
	for i := range count {
		px := -x + 2*x*float64(i/2)/float64(rows-1)
		py := y
		if i%2 == 0 {
			py = -y
		}
		leg(i, px, py)
	}
}

// ringLegs places count legs on a circle of LegRingFraction × radius,
// equally spaced with a half-step angular offset so four legs sit on the
// diagonals. It records the edge-to-leg clearance annotation.
func ringLegs(g *types.SceneGraph, radius, legHeight float64, count int) {
	ring := LegRingFraction * radius
	step := 360.0 / float64(count)
	for i := range count {
		angle := (float64(i)*step + step/2) * math.Pi / 180
		g.Primitives = append(g.Primitives,
			cylinder(fmt.Sprintf("leg_%d", i+1),
				ring*math.Cos(angle), ring*math.Sin(angle), legHeight/2,
				2*LegRadius, legHeight))
	}
	// Clearance is measured center-to-edge, so 0.3 × radius.
	g.Annotations["edge_to_leg_distance"] = radius - ring
}

func buildChair(g *types.SceneGraph, spec types.CanonicalSpec) {
	h := spec.Height.Value

	// With a backrest the seat sits at half height and the backrest rises
	// to the full height; without one the seat surface is the height.
	seatTop := h
	if spec.Features.HasBackrest {
		seatTop = h / 2
	}
	legHeight := seatTop - SeatThickness

	if spec.Circular {
		d := spec.Diameter.Value
		g.Primitives = append(g.Primitives,
			cylinder("seat", 0, 0, seatTop-SeatThickness/2, d, SeatThickness))
		ringLegs(g, d/2, legHeight, spec.Features.Legs)
		return
	}

	l, w := spec.Length.Value, spec.Width.Value
	g.Primitives = append(g.Primitives,
		box("seat", 0, 0, seatTop-SeatThickness/2, l, w, SeatThickness))
	cornerLegs(g, l, w, legHeight, spec.Features.Legs)

	if spec.Features.HasBackrest {
		backHeight := h - seatTop
		g.Primitives = append(g.Primitives,
			box("backrest", 0, -w/2+SeatThickness/2, seatTop+backHeight/2,
				l, SeatThickness, backHeight))
	}
	if spec.Features.HasArmrest {
		armHeight := seatTop / 2
		armWidth := ArmrestFraction * l
		for i, x := range []float64{-l/2 + armWidth/2, l/2 - armWidth/2} {
			side := [...]string{"armrest_left", "armrest_right"}[i]
			g.Primitives = append(g.Primitives,
				box(side, x, 0, seatTop+armHeight/2, armWidth, w, armHeight))
		}
	}
}

func buildTable(g *types.SceneGraph, spec types.CanonicalSpec) {
	h := spec.Height.Value
	legHeight := h - TopThickness

	if spec.Circular {
		d := spec.Diameter.Value
		g.Primitives = append(g.Primitives,
			cylinder("top", 0, 0, h-TopThickness/2, d, TopThickness))
		ringLegs(g, d/2, legHeight, spec.Features.Legs)
		return
	}

	l, w := spec.Length.Value, spec.Width.Value
	g.Primitives = append(g.Primitives,
		box("top", 0, 0, h-TopThickness/2, l, w, TopThickness))
	cornerLegs(g, l, w, legHeight, spec.Features.Legs)
}

func buildSofa(g *types.SceneGraph, spec types.CanonicalSpec) {
	l, w, h := spec.Length.Value, spec.Width.Value, spec.Height.Value
	seats := spec.Features.Seats

	seatHeight := 0.45 * h
	backHeight := 0.55 * h
	backDepth := BackrestFraction * w
	armWidth := ArmrestFraction * l

	rounded := func(p types.ScenePrimitive) types.ScenePrimitive {
		p.Rounded = true
		return p
	}

	g.Primitives = append(g.Primitives,
		rounded(box("base", 0, 0, seatHeight/2, l, w, seatHeight)),
		rounded(box("backrest", 0, -w/2+backDepth/2, seatHeight+backHeight/2,
			l, backDepth, backHeight)))

	inner := l
	if spec.Features.HasArmrest {
		inner = l - 2*armWidth
		armDepth := w - backDepth
		for i, x := range []float64{-l/2 + armWidth/2, l/2 - armWidth/2} {
			side := [...]string{"armrest_left", "armrest_right"}[i]
			g.Primitives = append(g.Primitives,
				rounded(box(side, x, backDepth/2, seatHeight+seatHeight/2,
					armWidth, armDepth, seatHeight)))
		}
	}

	// N equal cushions separated by fixed gaps across the inner width.
	cushionWidth := (inner - float64(seats-1)*CushionGap) / float64(seats)
	cushionDepth := w - backDepth
	cushionHeight := 0.15 * seatHeight
	for i := range seats {
		x := -inner/2 + cushionWidth/2 + float64(i)*(cushionWidth+CushionGap)
		g.Primitives = append(g.Primitives,
			rounded(box(fmt.Sprintf("cushion_%d", i+1), x, backDepth/2,
				seatHeight+cushionHeight/2, cushionWidth, cushionDepth, cushionHeight)))
	}
}

func buildCabinet(g *types.SceneGraph, spec types.CanonicalSpec) {
	l, w, h := spec.Length.Value, spec.Width.Value, spec.Height.Value
	body := h - StubLegHeight
	mid := StubLegHeight + body/2

	g.Primitives = append(g.Primitives,
		// Carcass: back, sides, top, bottom.
		box("back_panel", 0, -w/2+PanelThickness/2, mid, l, PanelThickness, body),
		box("side_left", -l/2+PanelThickness/2, 0, mid, PanelThickness, w, body),
		box("side_right", l/2-PanelThickness/2, 0, mid, PanelThickness, w, body),
		box("top_panel", 0, 0, StubLegHeight+body-PanelThickness/2, l, w, PanelThickness),
		box("bottom_panel", 0, 0, StubLegHeight+PanelThickness/2, l, w, PanelThickness))

	doors := spec.Features.Doors
	doorWidth := l / float64(doors)
	for i := range doors {
		x := -l/2 + doorWidth/2 + float64(i)*doorWidth
		g.Primitives = append(g.Primitives,
			box(fmt.Sprintf("door_%d", i+1), x, w/2-PanelThickness/2, mid,
				doorWidth-1, PanelThickness, body-2))

		// Handle near the inner edge of each door.
		handleX := x + doorWidth/2 - 6
		if x > 0 || (doors == 1 && i == 0) {
			handleX = x - doorWidth/2 + 6
		}
		g.Primitives = append(g.Primitives,
			box(fmt.Sprintf("handle_%d", i+1), handleX, w/2+1, mid, 2, 2, 10))
	}

	if spec.Features.Drawers > 0 {
		drawerHeight := body / 4 / float64(spec.Features.Drawers)
		for i := range spec.Features.Drawers {
			z := StubLegHeight + drawerHeight/2 + float64(i)*drawerHeight
			g.Primitives = append(g.Primitives,
				box(fmt.Sprintf("drawer_%d", i+1), 0, w/2-PanelThickness, z,
					l-2*PanelThickness, PanelThickness, drawerHeight-1))
		}
	}

	cornerLegs(g, l, w, StubLegHeight, 4)
}

func buildShelf(g *types.SceneGraph, spec types.CanonicalSpec) {
	l, w, h := spec.Length.Value, spec.Width.Value, spec.Height.Value
	boards := spec.Features.Shelves

	g.Primitives = append(g.Primitives,
		box("side_left", -l/2+PanelThickness/2, 0, h/2, PanelThickness, w, h),
		box("side_right", l/2-PanelThickness/2, 0, h/2, PanelThickness, w, h),
		box("back_panel", 0, -w/2+PanelThickness/2, h/2, l, PanelThickness, h))

	// Boards from bottom to top inclusive.
	span := h - PanelThickness
	for i := range boards {
		z := PanelThickness / 2
		if boards > 1 {
			z += span * float64(i) / float64(boards-1)
		}
		g.Primitives = append(g.Primitives,
			box(fmt.Sprintf("board_%d", i+1), 0, 0, z,
				l-2*PanelThickness, w, PanelThickness))
	}
}
