// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"errors"
	"testing"

	"github.com/pdiddy/cad-engine/pkg/types"
)

func TestDetectType(t *testing.T) {
	tests := []struct {
		text string
		want types.ObjectType
	}{
		{"kursi dengan 4 kaki", types.ObjectChair},
		{"meja makan lingkaran", types.ObjectTable},
		{"sofa ruang tamu", types.ObjectSofa},
		{"lemari pakaian dua pintu", types.ObjectCabinet},
		{"rak buku tinggi", types.ObjectShelf},
		{"ruangan ukuran 4x5 meter", types.ObjectRoom},
		{"rumah dengan 3 kamar tidur", types.ObjectHouse},
		{"a simple chair", types.ObjectChair},
		{"modern house with garage", types.ObjectHouse},
	}
	for _, tt := range tests {
		got, err := DetectType(tt.text)
		if err != nil {
			t.Errorf("DetectType(%q) error: %v", tt.text, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DetectType(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestDetectTypeUnrecognized(t *testing.T) {
	_, err := DetectType("sesuatu yang aneh")
	if !errors.Is(err, ErrTypeNotRecognized) {
		t.Fatalf("want ErrTypeNotRecognized, got %v", err)
	}
}

func TestParseChairScenario(t *testing.T) {
	res, err := Parse("Kursi dengan 4 kaki, dudukan 40x40 cm, tinggi 45 cm")
	if err != nil {
		t.Fatal(err)
	}
	if res.Object != types.ObjectChair {
		t.Errorf("object = %s, want chair", res.Object)
	}
	d := res.Dimensions
	if d.Length != 40 || d.Width != 40 || d.Height != 45 {
		t.Errorf("dimensions = %v×%v×%v, want 40×40×45", d.Length, d.Width, d.Height)
	}
	if res.Features.Legs != 4 {
		t.Errorf("legs = %d, want 4", res.Features.Legs)
	}
	if res.Features.HasBackrest {
		t.Error("backrest should not be set")
	}
}

func TestParseCircularTableScenario(t *testing.T) {
	res, err := Parse("Meja makan lingkaran diameter 120 cm dengan 4 kaki, tinggi 75 cm")
	if err != nil {
		t.Fatal(err)
	}
	if res.Object != types.ObjectTable {
		t.Errorf("object = %s, want table", res.Object)
	}
	if res.Features.SeatShape != types.ShapeCircular {
		t.Errorf("seat shape = %q, want circular", res.Features.SeatShape)
	}
	d := res.Dimensions
	if d.Diameter != 120 {
		t.Errorf("diameter = %v, want 120", d.Diameter)
	}
	if d.Length != 0 || d.Width != 0 {
		t.Errorf("length/width = %v/%v, want cleared", d.Length, d.Width)
	}
	if d.Height != 75 {
		t.Errorf("height = %v, want 75", d.Height)
	}
	if res.Features.Legs != 4 {
		t.Errorf("legs = %d, want 4", res.Features.Legs)
	}
}

func TestParseRoomScenario(t *testing.T) {
	res, err := Parse("Ruangan ukuran 4x5 meter, dengan 1 pintu di sisi barat dan 1 jendela di sisi utara")
	if err != nil {
		t.Fatal(err)
	}
	if res.Object != types.ObjectRoom {
		t.Errorf("object = %s, want room", res.Object)
	}
	d := res.Dimensions
	if d.Length != 400 || d.Width != 500 {
		t.Errorf("length/width = %v/%v, want 400/500", d.Length, d.Width)
	}
	if d.Height != 0 {
		t.Errorf("height = %v, want unset", d.Height)
	}
	f := res.Features
	if f.Doors != 1 || f.DoorSide != types.SideWest {
		t.Errorf("doors = %d on %s, want 1 on west", f.Doors, f.DoorSide)
	}
	if f.Windows != 1 || f.WindowSide != types.SideNorth {
		t.Errorf("windows = %d on %s, want 1 on north", f.Windows, f.WindowSide)
	}
}

func TestExtractDimensions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want types.RawDimensionSet
	}{
		{
			name: "product with meters",
			text: "4x5 meter",
			want: types.RawDimensionSet{Length: 400, Width: 500, Unit: types.UnitMeter},
		},
		{
			name: "product with centimeters",
			text: "40x40 cm",
			want: types.RawDimensionSet{Length: 40, Width: 40, Unit: types.UnitCentimeter},
		},
		{
			name: "triple product",
			text: "ukuran 120x60x200 cm",
			want: types.RawDimensionSet{Length: 120, Width: 60, Height: 200, Unit: types.UnitCentimeter},
		},
		{
			name: "labeled clauses",
			text: "panjang 200 cm lebar 80 cm tinggi 85 cm",
			want: types.RawDimensionSet{Length: 200, Width: 80, Height: 85, Unit: types.UnitCentimeter},
		},
		{
			name: "millimeters",
			text: "tinggi 450 mm",
			want: types.RawDimensionSet{Height: 45, Unit: types.UnitMillimeter},
		},
		{
			name: "diameter only",
			text: "diameter 120 cm",
			want: types.RawDimensionSet{Diameter: 120, Unit: types.UnitCentimeter},
		},
		{
			name: "bare number reads as height",
			text: "sekitar 90 cm",
			want: types.RawDimensionSet{Height: 90, Unit: types.UnitCentimeter},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractDimensions(tt.text)
			if got != tt.want {
				t.Errorf("extractDimensions(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractFeatures(t *testing.T) {
	f := extractFeatures("sofa 3 dudukan dengan sandaran dan sandaran tangan, gaya modern")
	if f.Seats != 3 {
		t.Errorf("seats = %d, want 3", f.Seats)
	}
	if !f.HasBackrest {
		t.Error("backrest should be set")
	}
	if !f.HasArmrest {
		t.Error("armrest should be set")
	}
	if f.Style != "modern" {
		t.Errorf("style = %q, want modern", f.Style)
	}
}

func TestExtractFeaturesArmrestOnly(t *testing.T) {
	f := extractFeatures("kursi dengan sandaran tangan")
	if !f.HasArmrest {
		t.Error("armrest should be set")
	}
	if f.HasBackrest {
		t.Error("backrest should not be set for sandaran tangan alone")
	}
}

func TestExtractFeaturesHouse(t *testing.T) {
	f := extractFeatures("rumah modern dengan 3 kamar tidur dan garasi")
	if f.Bedrooms != 3 {
		t.Errorf("bedrooms = %d, want 3", f.Bedrooms)
	}
	if !f.HasGarage {
		t.Error("garage should be set")
	}
	if f.Style != "modern" {
		t.Errorf("style = %q, want modern", f.Style)
	}
}
