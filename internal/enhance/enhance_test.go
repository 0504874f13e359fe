// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enhance

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pdiddy/cad-engine/internal/knowledge"
	"github.com/pdiddy/cad-engine/pkg/types"
)

// fakeRetriever returns canned matches regardless of query.
type fakeRetriever struct {
	matches []types.RetrievalMatch
	err     error
}

func (f *fakeRetriever) Query(_ context.Context, _ string, _ knowledge.QueryOptions) ([]types.RetrievalMatch, error) {
	return f.matches, f.err
}

func matchWithText(text string) types.RetrievalMatch {
	return types.RetrievalMatch{
		Chunk: types.KnowledgeChunk{ID: "c1", Source: "standards.txt", Page: 1, Text: text},
		Score: 0.8,
	}
}

func TestExtractRanges(t *testing.T) {
	tests := []struct {
		name string
		text string
		want map[string]Range
	}{
		{
			name: "seat height range maps to height",
			text: "Standard dining chairs have a seat height 42-46 cm.",
			want: map[string]Range{types.FieldHeight: {42, 46}},
		},
		{
			name: "colon and to separator",
			text: "Table height: 71 to 76 cm, width 90 cm.",
			want: map[string]Range{types.FieldHeight: {71, 76}, types.FieldWidth: {90, 90}},
		},
		{
			name: "single diameter value",
			text: "Round tables are commonly diameter 90 cm.",
			want: map[string]Range{types.FieldDiameter: {90, 90}},
		},
		{
			name: "meters convert to centimeters",
			text: "Rooms have a length 4 to 6 m.",
			want: map[string]Range{types.FieldLength: {400, 600}},
		},
		{
			name: "unitless numbers ignored",
			text: "A chair has 4 legs and height varies.",
			want: map[string]Range{},
		},
		{
			name: "indonesian keywords",
			text: "tinggi 75 cm dan lebar 80-90 cm",
			want: map[string]Range{types.FieldHeight: {75, 75}, types.FieldWidth: {80, 90}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractRanges(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for field, r := range tt.want {
				if got[field] != r {
					t.Errorf("field %s = %v, want %v", field, got[field], r)
				}
			}
		})
	}
}

func TestEnhanceFillsMissingWithMidpoint(t *testing.T) {
	e := New(&fakeRetriever{matches: []types.RetrievalMatch{
		matchWithText("Chairs: seat height 42-46 cm, width 40 cm."),
	}})

	res, err := e.Enhance(context.Background(), "kursi", types.RawDimensionSet{}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Dimensions.Height != 44 {
		t.Errorf("height = %v, want midpoint 44", res.Dimensions.Height)
	}
	if res.Provenance[types.FieldHeight] != types.ProvenanceRAG {
		t.Errorf("height provenance = %s, want rag-validated", res.Provenance[types.FieldHeight])
	}
	if res.Dimensions.Width != 40 {
		t.Errorf("width = %v, want 40", res.Dimensions.Width)
	}
}

func TestEnhanceKeepsInRangeUserValue(t *testing.T) {
	e := New(&fakeRetriever{matches: []types.RetrievalMatch{
		matchWithText("Chairs: seat height 42-46 cm."),
	}})

	res, err := e.Enhance(context.Background(), "kursi tinggi 45 cm",
		types.RawDimensionSet{Height: 45}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Dimensions.Height != 45 {
		t.Errorf("height = %v, want 45 unchanged", res.Dimensions.Height)
	}
	if res.Provenance[types.FieldHeight] != types.ProvenanceRAG {
		t.Errorf("provenance = %s, want rag-validated", res.Provenance[types.FieldHeight])
	}
	if res.Notes[types.FieldHeight] != "" {
		t.Errorf("unexpected note %q", res.Notes[types.FieldHeight])
	}
}

func TestEnhanceKeepsOutOfRangeValueWithNote(t *testing.T) {
	e := New(&fakeRetriever{matches: []types.RetrievalMatch{
		matchWithText("Chairs: seat height 42-46 cm."),
	}})

	res, err := e.Enhance(context.Background(), "kursi tinggi 90 cm",
		types.RawDimensionSet{Height: 90}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Dimensions.Height != 90 {
		t.Errorf("height = %v, want user value 90 kept", res.Dimensions.Height)
	}
	if res.Provenance[types.FieldHeight] != types.ProvenanceRAG {
		t.Errorf("provenance = %s, want rag-validated", res.Provenance[types.FieldHeight])
	}
	if !strings.Contains(res.Notes[types.FieldHeight], "42-46") {
		t.Errorf("note = %q, want deviation range", res.Notes[types.FieldHeight])
	}
}

func TestEnhanceNoMatchesPassThrough(t *testing.T) {
	e := New(&fakeRetriever{})

	var buf bytes.Buffer
	dims := types.RawDimensionSet{Length: 200, Height: 80}
	res, err := e.Enhance(context.Background(), "sofa", dims, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if res.Dimensions != dims {
		t.Errorf("dimensions changed on retrieval miss: %+v", res.Dimensions)
	}
	if len(res.Provenance) != 0 {
		t.Errorf("provenance should be empty, got %v", res.Provenance)
	}
	if !strings.Contains(buf.String(), "retrieval miss") {
		t.Errorf("missing informational log, got %q", buf.String())
	}
}

func TestEnhanceNilRetriever(t *testing.T) {
	e := New(nil)
	dims := types.RawDimensionSet{Height: 45}
	res, err := e.Enhance(context.Background(), "kursi", dims, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Dimensions != dims {
		t.Errorf("dimensions changed with nil retriever: %+v", res.Dimensions)
	}
}

func TestEnhanceIdempotent(t *testing.T) {
	e := New(&fakeRetriever{matches: []types.RetrievalMatch{
		matchWithText("Sofas: length 180-220 cm, depth 80-100 cm, height 75-90 cm."),
	}})
	ctx := context.Background()

	first, err := e.Enhance(ctx, "sofa", types.RawDimensionSet{Length: 200}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.Enhance(ctx, "sofa", first.Dimensions, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if first.Dimensions != second.Dimensions {
		t.Errorf("not idempotent: %+v vs %+v", first.Dimensions, second.Dimensions)
	}
}

func TestEnhanceRankOrderWins(t *testing.T) {
	e := New(&fakeRetriever{matches: []types.RetrievalMatch{
		matchWithText("Tables: height 71-76 cm."),
		matchWithText("Old table standard: height 60-65 cm."),
	}})

	res, err := e.Enhance(context.Background(), "meja", types.RawDimensionSet{}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Dimensions.Height != 73.5 {
		t.Errorf("height = %v, want midpoint of top-ranked range 73.5", res.Dimensions.Height)
	}
}
