// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/cad-engine/internal/knowledge"
	"github.com/pdiddy/cad-engine/pkg/types"
)

// fakeRetriever returns canned matches regardless of the query.
type fakeRetriever struct {
	matches []types.RetrievalMatch
	err     error
}

func (f *fakeRetriever) Query(ctx context.Context, text string, opts knowledge.QueryOptions) ([]types.RetrievalMatch, error) {
	return f.matches, f.err
}

func generate(t *testing.T, cfg types.GenerateConfig, description string) (Artifacts, string) {
	t.Helper()
	var log bytes.Buffer
	art, err := New(nil, cfg).Generate(context.Background(), description, &log)
	if err != nil {
		t.Fatalf("Generate(%q): %v", description, err)
	}
	return art, log.String()
}

func TestGenerateChair(t *testing.T) {
	art, _ := generate(t, types.GenerateConfig{}, "kursi dengan 4 kaki tinggi 45 cm")

	if art.Spec.Object != types.ObjectChair {
		t.Errorf("object = %s, want chair", art.Spec.Object)
	}
	if art.Spec.Height.Value != 45 || art.Spec.Height.Provenance != types.ProvenanceUser {
		t.Errorf("height = %+v, want 45 user-specified", art.Spec.Height)
	}
	if art.Spec.Features.Legs != 4 {
		t.Errorf("legs = %d, want 4", art.Spec.Features.Legs)
	}
	if len(art.Scene.Primitives) == 0 {
		t.Error("scene graph is empty")
	}
	if len(art.Top.Rects)+len(art.Top.Circles) == 0 {
		t.Error("top view is empty")
	}
	if art.Mesh != nil {
		t.Error("mesh synthesized without Mesh3D")
	}
}

func TestGenerateMesh3D(t *testing.T) {
	art, log := generate(t, types.GenerateConfig{Mesh3D: true}, "meja bundar diameter 120 cm")

	if art.Mesh == nil {
		t.Fatal("no mesh synthesized")
	}
	if len(art.Mesh.Vertices) == 0 || len(art.Mesh.Faces) == 0 {
		t.Error("mesh is empty")
	}
	if !strings.Contains(log, "synthesized:") {
		t.Errorf("missing synthesis log line: %q", log)
	}
}

func TestGenerateParseFailure(t *testing.T) {
	var log bytes.Buffer
	_, err := New(nil, types.GenerateConfig{}).Generate(context.Background(), "sesuatu yang aneh", &log)

	var failure *Failure
	if !errors.As(err, &failure) {
		t.Fatalf("error = %v, want *Failure", err)
	}
	if failure.Kind != KindParseFailure {
		t.Errorf("kind = %s, want %s", failure.Kind, KindParseFailure)
	}
}

func TestGenerateDefaultType(t *testing.T) {
	art, log := generate(t,
		types.GenerateConfig{DefaultType: types.ObjectTable},
		"sesuatu dengan tinggi 75 cm")

	if art.Spec.Object != types.ObjectTable {
		t.Errorf("object = %s, want table", art.Spec.Object)
	}
	if !strings.Contains(log, "assuming table") {
		t.Errorf("missing default-type log line: %q", log)
	}
}

func TestGenerateTypeHintOverridesDetection(t *testing.T) {
	art, _ := generate(t, types.GenerateConfig{TypeHint: types.ObjectSofa}, "kursi kecil")

	if art.Spec.Object != types.ObjectSofa {
		t.Errorf("object = %s, want sofa", art.Spec.Object)
	}
}

func TestGenerateUnknownHintIsInvalidSpec(t *testing.T) {
	var log bytes.Buffer
	_, err := New(nil, types.GenerateConfig{TypeHint: "spaceship"}).
		Generate(context.Background(), "sesuatu", &log)

	var failure *Failure
	if !errors.As(err, &failure) {
		t.Fatalf("error = %v, want *Failure", err)
	}
	if failure.Kind != KindInvalidSpecification {
		t.Errorf("kind = %s, want %s", failure.Kind, KindInvalidSpecification)
	}
	if failure.Field != "object" {
		t.Errorf("field = %q, want object", failure.Field)
	}
}

func TestGenerateRetrievalFillsMissingHeight(t *testing.T) {
	retriever := &fakeRetriever{matches: []types.RetrievalMatch{{
		Chunk: types.KnowledgeChunk{Text: "standard chair seat height 40-50 cm"},
		Score: 0.9,
	}}}

	var log bytes.Buffer
	art, err := New(retriever, types.GenerateConfig{}).
		Generate(context.Background(), "kursi kayu", &log)
	if err != nil {
		t.Fatal(err)
	}

	if art.Spec.Height.Value != 45 {
		t.Errorf("height = %g, want midpoint 45", art.Spec.Height.Value)
	}
	if art.Spec.Height.Provenance != types.ProvenanceRAG {
		t.Errorf("provenance = %s, want %s", art.Spec.Height.Provenance, types.ProvenanceRAG)
	}
}

func TestGenerateSurvivesUnrankableChunk(t *testing.T) {
	store, err := knowledge.NewMemoryStore(types.KnowledgeConfig{}, knowledge.NewHashEmbedder(64))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	// A token-free chunk (markdown separator) embeds to the zero vector;
	// generation must still succeed against such a corpus.
	chunks := []types.KnowledgeChunk{
		{ID: "a", Source: "standards.txt", Page: 1, Text: "standard chair seat height 42-46 cm"},
		{ID: "b", Source: "standards.txt", Page: 1, Text: "### --- ***"},
	}
	var log bytes.Buffer
	if err := store.Index(context.Background(), chunks, &log); err != nil {
		t.Fatal(err)
	}

	art, err := New(store, types.GenerateConfig{}).
		Generate(context.Background(), "kursi kayu", &log)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if art.Spec.Height.Value != 44 {
		t.Errorf("height = %g, want midpoint 44", art.Spec.Height.Value)
	}
}

func TestGenerateDisableRetrieval(t *testing.T) {
	retriever := &fakeRetriever{err: errors.New("store offline")}

	var log bytes.Buffer
	art, err := New(retriever, types.GenerateConfig{DisableRetrieval: true}).
		Generate(context.Background(), "kursi kayu", &log)
	if err != nil {
		t.Fatal(err)
	}
	if art.Spec.Height.Provenance != types.ProvenanceDefault {
		t.Errorf("provenance = %s, want %s", art.Spec.Height.Provenance, types.ProvenanceDefault)
	}
}

func TestExportWritesFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := types.GenerateConfig{OutputDir: dir, Prefix: "order-17", Mesh3D: true}

	gen := New(nil, cfg)
	var log bytes.Buffer
	art, err := gen.Generate(context.Background(), "sofa dengan 2 dudukan", &log)
	if err != nil {
		t.Fatal(err)
	}

	paths, err := gen.Export(art, &log)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 6 {
		t.Fatalf("paths = %d, want 6: %v", len(paths), paths)
	}

	for _, ext := range []string{".spec.yaml", ".svg", ".dxf", ".stl", ".obj", ".mtl"} {
		path := filepath.Join(dir, "order-17"+ext)
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("missing output %s: %v", path, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("output %s is empty", path)
		}
	}
}
