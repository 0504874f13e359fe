// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package enhance validates and fills parsed dimensions against the
// knowledge index. Retrieval is strictly advisory: a missing or empty index
// degrades to a pass-through with an informational log line, never an
// error, and explicit user values are never overridden. See
// docs/ARCHITECTURE § Retrieval & Enhancement.
package enhance

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/cad-engine/internal/knowledge"
	"github.com/pdiddy/cad-engine/internal/translate"
	"github.com/pdiddy/cad-engine/pkg/types"
)

// Retriever answers similarity queries. *knowledge.Store satisfies it.
type Retriever interface {
	Query(ctx context.Context, text string, opts knowledge.QueryOptions) ([]types.RetrievalMatch, error)
}

// Range is a standard dimension interval in centimeters. A single quoted
// value yields Min == Max.
type Range struct {
	Min, Max float64
}

// Midpoint returns the center of the range.
func (r Range) Midpoint() float64 {
	return (r.Min + r.Max) / 2
}

// Contains reports whether v lies within the range inclusive.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Result carries the enhanced dimensions with per-field provenance and
// deviation notes keyed by field name.
type Result struct {
	Dimensions types.RawDimensionSet
	Provenance types.DimensionProvenance
	Notes      map[string]string
}

// Enhancer runs retrieval-backed dimension validation.
type Enhancer struct {
	retriever Retriever
}

// New creates an Enhancer over the given retriever. A nil retriever
// disables enhancement entirely.
func New(retriever Retriever) *Enhancer {
	return &Enhancer{retriever: retriever}
}

// attrPattern matches one attribute-scoped value or range, e.g.
// "seat height 42-46 cm", "height: 71 to 76 cm", "diameter 90 cm".
// A unit is required so furniture-count phrases never read as dimensions.
var attrPattern = regexp.MustCompile(
	`(seat height|tinggi dudukan|height|tinggi|length|panjang|depth|width|lebar|diameter)` +
		`s?\s*:?\s*(?:is\s+|of\s+|sekitar\s+)?` +
		`(\d+(?:\.\d+)?)` +
		`(?:\s*(?:-|–|to|sampai|hingga)\s*(\d+(?:\.\d+)?))?` +
		`\s*(mm|cm|meter|m)\b`)

// canonicalAttr maps matched keywords onto dimension field names. Seat
// height counts as height; depth counts as width, matching how the corpus
// tables describe seating.
func canonicalAttr(keyword string) string {
	switch keyword {
	case "seat height", "tinggi dudukan", "height", "tinggi":
		return types.FieldHeight
	case "length", "panjang":
		return types.FieldLength
	case "depth", "width", "lebar":
		return types.FieldWidth
	case "diameter":
		return types.FieldDiameter
	}
	return ""
}

func toCM(v float64, unit string) float64 {
	switch unit {
	case "m", "meter":
		return v * 100
	case "mm":
		return v / 10
	default:
		return v
	}
}

// ExtractRanges pulls attribute-scoped ranges out of one chunk text. The
// first occurrence of each attribute wins.
func ExtractRanges(text string) map[string]Range {
	ranges := make(map[string]Range)
	for _, m := range attrPattern.FindAllStringSubmatch(strings.ToLower(text), -1) {
		field := canonicalAttr(m[1])
		if field == "" {
			continue
		}
		if _, ok := ranges[field]; ok {
			continue
		}

		lo, _ := strconv.ParseFloat(m[2], 64)
		hi := lo
		if m[3] != "" {
			hi, _ = strconv.ParseFloat(m[3], 64)
		}
		unit := m[4]
		r := Range{Min: toCM(lo, unit), Max: toCM(hi, unit)}
		if r.Max < r.Min {
			r.Min, r.Max = r.Max, r.Min
		}
		ranges[field] = r
	}
	return ranges
}

// collectRanges merges ranges from matches in rank order; higher-ranked
// chunks win per attribute.
func collectRanges(matches []types.RetrievalMatch) map[string]Range {
	merged := make(map[string]Range)
	for _, match := range matches {
		for field, r := range ExtractRanges(match.Chunk.Text) {
			if _, ok := merged[field]; !ok {
				merged[field] = r
			}
		}
	}
	return merged
}

// Enhance validates dims for the described object against retrieved
// standards. Fields with an explicit value are kept as-is; in-range values
// and adopted midpoints are marked rag-validated, out-of-range values keep
// the user's number with a deviation note. Fields without a retrieved
// range are left untouched. Running Enhance twice against an unchanged
// index yields the same result.
func (e *Enhancer) Enhance(ctx context.Context, description string, dims types.RawDimensionSet, w io.Writer) (Result, error) {
	res := Result{
		Dimensions: dims,
		Provenance: make(types.DimensionProvenance),
		Notes:      make(map[string]string),
	}

	if e.retriever == nil {
		return res, nil
	}

	query := translate.Query(description)
	matches, err := e.retriever.Query(ctx, query, knowledge.QueryOptions{})
	if err != nil {
		return res, fmt.Errorf("querying knowledge index: %w", err)
	}
	if len(matches) == 0 {
		fmt.Fprintf(w, "retrieval miss: no standards matched %q\n", query)
		return res, nil
	}

	ranges := collectRanges(matches)
	if len(ranges) == 0 {
		fmt.Fprintf(w, "retrieval miss: matched chunks carry no dimension ranges\n")
		return res, nil
	}

	apply := func(field string, value *float64) {
		r, ok := ranges[field]
		if !ok {
			return
		}
		switch {
		case *value == 0:
			*value = r.Midpoint()
			res.Provenance[field] = types.ProvenanceRAG
		case r.Contains(*value):
			res.Provenance[field] = types.ProvenanceRAG
		default:
			res.Provenance[field] = types.ProvenanceRAG
			res.Notes[field] = fmt.Sprintf("outside standard range %g-%g cm", r.Min, r.Max)
		}
	}

	apply(types.FieldLength, &res.Dimensions.Length)
	apply(types.FieldWidth, &res.Dimensions.Width)
	apply(types.FieldHeight, &res.Dimensions.Height)

	// Diameter standards only apply when the object is circular; filling a
	// diameter for a rectangular spec would flip its shape.
	if dims.Diameter > 0 {
		apply(types.FieldDiameter, &res.Dimensions.Diameter)
	}

	return res, nil
}
