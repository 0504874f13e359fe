// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scene

import (
	"fmt"

	"github.com/pdiddy/cad-engine/pkg/types"
)

// wall describes one exterior wall of a rectangular footprint. Span is the
// horizontal extent of the wall face; rotation 0 runs along X, 90 along Y.
type wall struct {
	side     types.Side
	label    string
	span     float64
	center   [2]float64
	rotation float64
}

// exteriorWalls lays the four walls just outside the interior footprint.
func exteriorWalls(length, width, thickness float64) []wall {
	return []wall{
		{types.SideNorth, "wall_north", length, [2]float64{0, width/2 + thickness/2}, 0},
		{types.SideSouth, "wall_south", length, [2]float64{0, -width/2 - thickness/2}, 0},
		{types.SideEast, "wall_east", width, [2]float64{length/2 + thickness/2, 0}, 90},
		{types.SideWest, "wall_west", width, [2]float64{-length/2 - thickness/2, 0}, 90},
	}
}

func wallBySide(walls []wall, side types.Side) wall {
	for _, w := range walls {
		if w.side == side {
			return w
		}
	}
	return walls[0]
}

func placeWalls(g *types.SceneGraph, walls []wall, thickness, height float64) {
	for _, w := range walls {
		g.Primitives = append(g.Primitives, types.ScenePrimitive{
			Label:    w.label,
			Kind:     types.KindPlane,
			Center:   [3]float64{w.center[0], w.center[1], height / 2},
			Size:     [3]float64{w.span, thickness, height},
			Rotation: w.rotation,
		})
	}
}

// placeOpenings cuts count openings into the wall, evenly spaced along its
// span. Door openings rest on the floor; windows are vertically centered.
func placeOpenings(g *types.SceneGraph, host wall, kind string, count int, width, height, zCenter float64) {
	for i := range count {
		// Fractional positions 1/(n+1) .. n/(n+1) along the span.
		offset := host.span*float64(i+1)/float64(count+1) - host.span/2
		cx, cy := host.center[0], host.center[1]
		if host.rotation == 0 {
			cx += offset
		} else {
			cy += offset
		}
		g.Primitives = append(g.Primitives, types.ScenePrimitive{
			Label:    fmt.Sprintf("%s_%d", kind, i+1),
			Kind:     types.KindOpening,
			Center:   [3]float64{cx, cy, zCenter},
			Size:     [3]float64{width, 0, height},
			Rotation: host.rotation,
			Wall:     host.label,
		})
	}
}

func buildRoom(g *types.SceneGraph, spec types.CanonicalSpec) {
	l, w, h := spec.Length.Value, spec.Width.Value, spec.Height.Value
	f := spec.Features

	g.Primitives = append(g.Primitives, types.ScenePrimitive{
		Label:  "floor",
		Kind:   types.KindPlane,
		Center: [3]float64{0, 0, -FloorThickness / 2},
		Size:   [3]float64{l + 2*RoomWallThickness, w + 2*RoomWallThickness, FloorThickness},
		Flat:   true,
	})

	walls := exteriorWalls(l, w, RoomWallThickness)
	placeWalls(g, walls, RoomWallThickness, h)

	if f.Doors > 0 {
		doorHeight := RoomDoorHeightFraction * h
		placeOpenings(g, wallBySide(walls, f.DoorSide), "door", f.Doors,
			DoorWidth, doorHeight, doorHeight/2)
	}
	if f.Windows > 0 {
		windowHeight := WindowHeightFraction * h
		placeOpenings(g, wallBySide(walls, f.WindowSide), "window", f.Windows,
			WindowWidth, windowHeight, h/2)
	}

	g.FrontWall = frontWallLabel(walls, f)
}

// frontWallLabel picks the wall the front view faces: the primary window
// wall, then the door wall, then north.
func frontWallLabel(walls []wall, f types.FeatureSet) string {
	switch {
	case f.Windows > 0:
		return wallBySide(walls, f.WindowSide).label
	case f.Doors > 0:
		return wallBySide(walls, f.DoorSide).label
	}
	return wallBySide(walls, types.SideNorth).label
}

func buildHouse(g *types.SceneGraph, spec types.CanonicalSpec) {
	l, w, h := spec.Length.Value, spec.Width.Value, spec.Height.Value
	f := spec.Features

	// A house always has an entrance even when the description is silent.
	if f.Doors == 0 {
		f.Doors = 1
		f.DoorSide = types.SideSouth
	}

	g.Primitives = append(g.Primitives, types.ScenePrimitive{
		Label:  "floor",
		Kind:   types.KindPlane,
		Center: [3]float64{0, 0, -FloorThickness / 2},
		Size:   [3]float64{l + 2*HouseWallThickness, w + 2*HouseWallThickness, FloorThickness},
		Flat:   true,
	})

	walls := exteriorWalls(l, w, HouseWallThickness)
	placeWalls(g, walls, HouseWallThickness, h)

	placeOpenings(g, wallBySide(walls, f.DoorSide), "door", f.Doors,
		DoorWidth, HouseDoorHeight, HouseDoorHeight/2)

	if f.Windows > 0 {
		windowHeight := WindowHeightFraction * h
		placeOpenings(g, wallBySide(walls, f.WindowSide), "window", f.Windows,
			WindowWidth, windowHeight, h/2)
	}

	// Flat roof covering the walls.
	g.Primitives = append(g.Primitives, types.ScenePrimitive{
		Label:  "roof",
		Kind:   types.KindPlane,
		Center: [3]float64{0, 0, h + FloorThickness/2},
		Size:   [3]float64{l + 2*HouseWallThickness, w + 2*HouseWallThickness, FloorThickness},
		Flat:   true,
	})

	if f.HasGarage {
		garage := box("garage",
			l/2+GarageLengthFraction*l/2, -w/2+GarageWidthFraction*w/2, GarageHeightFraction*h/2,
			GarageLengthFraction*l, GarageWidthFraction*w, GarageHeightFraction*h)
		g.Primitives = append(g.Primitives, garage)
	}

	placePartitions(g, f.Bedrooms, l, w, h)

	// The entrance wall is the house facade.
	g.FrontWall = wallBySide(walls, f.DoorSide).label
}

// placePartitions sketches the interior layout: a corridor line separating
// the south living area from the north bedroom band, and dividers splitting
// that band into equal bedrooms. Partitions appear in the top view only.
func placePartitions(g *types.SceneGraph, bedrooms int, l, w, h float64) {
	if bedrooms <= 0 {
		return
	}

	bandSouth := -w/2 + LivingAreaFraction*w
	g.Primitives = append(g.Primitives, types.ScenePrimitive{
		Label:      "partition_corridor",
		Kind:       types.KindPlane,
		Center:     [3]float64{0, bandSouth, h / 2},
		Size:       [3]float64{l, PanelThickness, h},
		SketchOnly: true,
	})

	bandDepth := w/2 - bandSouth
	for i := 1; i < bedrooms; i++ {
		x := -l/2 + l*float64(i)/float64(bedrooms)
		g.Primitives = append(g.Primitives, types.ScenePrimitive{
			Label:      fmt.Sprintf("partition_bedroom_%d", i),
			Kind:       types.KindPlane,
			Center:     [3]float64{x, bandSouth + bandDepth/2, h / 2},
			Size:       [3]float64{bandDepth, PanelThickness, h},
			Rotation:   90,
			SketchOnly: true,
		})
	}
}
