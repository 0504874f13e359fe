// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse turns a free-text description (Indonesian or English) into
// a structured object specification: object type, raw dimensions in
// centimeters, and feature counts/flags. Recognition runs as ordered rule
// lists with first-match-wins semantics so precedence is data, not control
// flow. See docs/ARCHITECTURE § Text Interpreter.
package parse

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/cad-engine/pkg/types"
)

// ErrTypeNotRecognized reports that no object-type keyword matched. The
// caller decides whether to abort or substitute a configured default type.
var ErrTypeNotRecognized = errors.New("object type not recognized")

// Result is the structured form of one description.
type Result struct {
	Object     types.ObjectType
	Dimensions types.RawDimensionSet
	Features   types.FeatureSet
}

// typeRule maps a literal phrase to an object type. Rules are evaluated in
// slice order; specific phrases and building types come before generic
// furniture words so "rumah dengan 3 kamar tidur" is a house, not a room.
type typeRule struct {
	phrase string
	object types.ObjectType
}

var typeRules = []typeRule{
	{"meja makan", types.ObjectTable},
	{"meja kopi", types.ObjectTable},
	{"meja kerja", types.ObjectTable},
	{"kursi makan", types.ObjectChair},
	{"kursi kantor", types.ObjectChair},
	{"rak buku", types.ObjectShelf},
	{"lemari pakaian", types.ObjectCabinet},

	{"rumah", types.ObjectHouse},
	{"house", types.ObjectHouse},
	{"bangunan", types.ObjectHouse},
	{"building", types.ObjectHouse},

	{"ruangan", types.ObjectRoom},
	{"kamar", types.ObjectRoom},
	{"room", types.ObjectRoom},

	{"sofa", types.ObjectSofa},
	{"couch", types.ObjectSofa},

	{"lemari", types.ObjectCabinet},
	{"wardrobe", types.ObjectCabinet},
	{"cabinet", types.ObjectCabinet},
	{"closet", types.ObjectCabinet},

	{"rak", types.ObjectShelf},
	{"shelf", types.ObjectShelf},
	{"bookshelf", types.ObjectShelf},

	{"meja", types.ObjectTable},
	{"table", types.ObjectTable},
	{"desk", types.ObjectTable},

	{"kursi", types.ObjectChair},
	{"chair", types.ObjectChair},
}

const (
	num = `(\d+(?:\.\d+)?)`
	// Longer unit tokens first so "mm" and "meter" are not eaten by "m".
	unit = `(?:(mm|cm|meter|m)\b)?`
)

var (
	reTriple = regexp.MustCompile(`panjang\s+` + num + `\s*` + unit + `.*?lebar\s+` + num + `\s*` + unit + `.*?tinggi\s+` + num + `\s*` + unit)
	rePair   = regexp.MustCompile(`panjang\s+` + num + `\s*` + unit + `.*?lebar\s+` + num + `\s*` + unit)

	reDiameter = regexp.MustCompile(`(?:diameter|dia\.?)\s*` + num + `\s*` + unit)

	reProduct = regexp.MustCompile(num + `\s*x\s*` + num + `(?:\s*x\s*` + num + `)?\s*` + unit)

	reHeight = regexp.MustCompile(`tinggi\s+` + num + `\s*` + unit)
	reLength = regexp.MustCompile(`panjang\s+` + num + `\s*` + unit)
	reWidth  = regexp.MustCompile(`lebar\s+` + num + `\s*` + unit)

	reBareHeight = regexp.MustCompile(`\b` + num + `\s*(mm|cm|meter|m)\b`)
)

// toCM normalizes a value to centimeters. An empty unit means centimeters.
func toCM(value float64, unit string) float64 {
	switch strings.TrimSpace(unit) {
	case "m", "meter":
		return value * 100
	case "mm":
		return value / 10
	default:
		return value
	}
}

func parseNum(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func unitTag(unit string) types.Unit {
	switch strings.TrimSpace(unit) {
	case "m", "meter":
		return types.UnitMeter
	case "mm":
		return types.UnitMillimeter
	case "cm":
		return types.UnitCentimeter
	}
	return ""
}

// extractDimensions runs the ordered dimension extractors. Each extractor
// only fills slots that are still unset, so the most specific clause that
// mentions a dimension wins.
func extractDimensions(text string) types.RawDimensionSet {
	var d types.RawDimensionSet
	note := func(u string) {
		if tag := unitTag(u); tag != "" {
			d.Unit = tag
		}
	}

	if m := reTriple.FindStringSubmatch(text); m != nil {
		d.Length = toCM(parseNum(m[1]), m[2])
		d.Width = toCM(parseNum(m[3]), m[4])
		d.Height = toCM(parseNum(m[5]), m[6])
		note(m[2])
		return d
	}

	if m := rePair.FindStringSubmatch(text); m != nil {
		d.Length = toCM(parseNum(m[1]), m[2])
		d.Width = toCM(parseNum(m[3]), m[4])
		note(m[2])
	}

	if m := reDiameter.FindStringSubmatch(text); m != nil && d.Diameter == 0 {
		d.Diameter = toCM(parseNum(m[1]), m[2])
		note(m[2])
	}

	// "4x5 meter" and "ukuran 40x40 cm": first number is the length.
	if m := reProduct.FindStringSubmatch(text); m != nil && d.Length == 0 && d.Width == 0 {
		unit := m[4]
		d.Length = toCM(parseNum(m[1]), unit)
		d.Width = toCM(parseNum(m[2]), unit)
		if m[3] != "" && d.Height == 0 {
			d.Height = toCM(parseNum(m[3]), unit)
		}
		note(unit)
	}

	if m := reHeight.FindStringSubmatch(text); m != nil && d.Height == 0 {
		d.Height = toCM(parseNum(m[1]), m[2])
		note(m[2])
	}
	if m := reLength.FindStringSubmatch(text); m != nil && d.Length == 0 {
		d.Length = toCM(parseNum(m[1]), m[2])
		note(m[2])
	}
	if m := reWidth.FindStringSubmatch(text); m != nil && d.Width == 0 {
		d.Width = toCM(parseNum(m[1]), m[2])
		note(m[2])
	}

	// A lone "90 cm" with no other dimension set reads as a height.
	if d.Length == 0 && d.Width == 0 && d.Height == 0 && d.Diameter == 0 {
		if m := reBareHeight.FindStringSubmatch(text); m != nil {
			d.Height = toCM(parseNum(m[1]), m[2])
			note(m[2])
		}
	}

	return d
}

var sideWords = []struct {
	word string
	side types.Side
}{
	{"utara", types.SideNorth}, {"north", types.SideNorth},
	{"selatan", types.SideSouth}, {"south", types.SideSouth},
	{"timur", types.SideEast}, {"east", types.SideEast},
	{"barat", types.SideWest}, {"west", types.SideWest},
}

var (
	reLegs     = regexp.MustCompile(`(\d+)\s*kaki`)
	reSeats    = regexp.MustCompile(`(\d+)\s*dudukan`)
	reDoors    = regexp.MustCompile(`(\d+)?\s*pintu(?:\s+di)?(?:\s+sisi)?\s*(\pL+)?`)
	reWindows  = regexp.MustCompile(`(\d+)?\s*jendela(?:\s+di)?(?:\s+sisi)?\s*(\pL+)?`)
	reDrawers  = regexp.MustCompile(`(\d+)?\s*laci`)
	reShelves  = regexp.MustCompile(`(\d+)\s*rak`)
	reBedrooms = regexp.MustCompile(`(\d+)\s*kamar(?:\s+tidur)?`)
)

func matchSide(word string) (types.Side, bool) {
	for _, sw := range sideWords {
		if word == sw.word {
			return sw.side, true
		}
	}
	return "", false
}

// countOrOne parses an optional leading count, defaulting to one.
func countOrOne(s string) int {
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func extractFeatures(text string) types.FeatureSet {
	var f types.FeatureSet

	if m := reLegs.FindStringSubmatch(text); m != nil {
		f.Legs, _ = strconv.Atoi(m[1])
	} else if strings.Contains(text, "kaki") {
		f.Legs = 1
	}
	if m := reSeats.FindStringSubmatch(text); m != nil {
		f.Seats, _ = strconv.Atoi(m[1])
	}
	if m := reDoors.FindStringSubmatch(text); m != nil {
		f.Doors = countOrOne(m[1])
		if side, ok := matchSide(m[2]); ok {
			f.DoorSide = side
		}
	}
	if m := reWindows.FindStringSubmatch(text); m != nil {
		f.Windows = countOrOne(m[1])
		if side, ok := matchSide(m[2]); ok {
			f.WindowSide = side
		}
	}
	if m := reDrawers.FindStringSubmatch(text); m != nil {
		f.Drawers = countOrOne(m[1])
	}
	if m := reShelves.FindStringSubmatch(text); m != nil {
		f.Shelves, _ = strconv.Atoi(m[1])
	}
	if m := reBedrooms.FindStringSubmatch(text); m != nil {
		f.Bedrooms, _ = strconv.Atoi(m[1])
	}

	// "sandaran tangan" is an armrest; the remaining "sandaran" mentions
	// are backrests. Strip the compound before the generic check.
	stripped := text
	for _, armrest := range []string{"sandaran tangan", "armrest", "lengan"} {
		if strings.Contains(stripped, armrest) {
			f.HasArmrest = true
			stripped = strings.ReplaceAll(stripped, armrest, "")
		}
	}
	if strings.Contains(stripped, "sandaran") || strings.Contains(stripped, "backrest") {
		f.HasBackrest = true
	}

	switch {
	case containsAny(text, "lingkaran", "bulat", "bundar", "round", "circular"):
		f.SeatShape = types.ShapeCircular
	case containsAny(text, "persegi", "square"):
		f.SeatShape = types.ShapeRectangular
	}

	if containsAny(text, "garasi", "garage") {
		f.HasGarage = true
	}
	if strings.Contains(text, "minimalis") {
		f.Style = "minimalist"
	} else if strings.Contains(text, "modern") {
		f.Style = "modern"
	}

	return f
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// DetectType returns the object type named by the description, or
// ErrTypeNotRecognized when no keyword matches.
func DetectType(description string) (types.ObjectType, error) {
	lower := strings.ToLower(description)
	for _, r := range typeRules {
		if strings.Contains(lower, r.phrase) {
			return r.object, nil
		}
	}
	return "", ErrTypeNotRecognized
}

// Parse interprets a description. The returned dimensions are in
// centimeters with unset fields left at zero; the resolver fills those
// later. Only the object type can fail.
func Parse(description string) (Result, error) {
	lower := strings.ToLower(strings.TrimSpace(description))

	object, err := DetectType(lower)
	if err != nil {
		return Result{}, err
	}
	return ParseAs(description, object), nil
}

// ParseAs interprets a description under a known object type, skipping
// keyword detection. Callers use it when a type hint or configured default
// overrides detection.
func ParseAs(description string, object types.ObjectType) Result {
	lower := strings.ToLower(strings.TrimSpace(description))

	res := Result{
		Object:     object,
		Dimensions: extractDimensions(lower),
		Features:   extractFeatures(lower),
	}

	// A circular shape word with a diameter supersedes length/width.
	if res.Features.SeatShape == types.ShapeCircular && res.Dimensions.Diameter > 0 {
		res.Dimensions.Length = 0
		res.Dimensions.Width = 0
	}

	return res
}
