// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline chains the generation stages: interpret the description,
// enhance dimensions against the knowledge index, resolve the canonical
// spec, build the scene, project the 2D views, and optionally synthesize
// the 3D mesh. Every error a run surfaces is a Failure whose kind tells
// the caller whether the input or the pipeline is at fault. See
// docs/ARCHITECTURE § Generation Pipeline.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/cad-engine/internal/enhance"
	"github.com/pdiddy/cad-engine/internal/export"
	"github.com/pdiddy/cad-engine/internal/mesh"
	"github.com/pdiddy/cad-engine/internal/parse"
	"github.com/pdiddy/cad-engine/internal/project"
	"github.com/pdiddy/cad-engine/internal/resolve"
	"github.com/pdiddy/cad-engine/internal/scene"
	"github.com/pdiddy/cad-engine/pkg/types"
)

// Artifacts holds everything one generation run produced.
type Artifacts struct {
	Spec  types.CanonicalSpec
	Scene types.SceneGraph
	Top   types.ViewGeometry
	Front types.ViewGeometry
	// Mesh is nil unless 3D synthesis was requested.
	Mesh *types.MeshGeometry
}

// Generator runs generation end to end. The zero retriever is valid and
// disables knowledge-index enhancement.
type Generator struct {
	retriever enhance.Retriever
	cfg       types.GenerateConfig
}

// New creates a Generator. The config is defaulted once here so every run
// sees the same settings.
func New(retriever enhance.Retriever, cfg types.GenerateConfig) *Generator {
	cfg.ApplyDefaults()
	return &Generator{retriever: retriever, cfg: cfg}
}

// Generate runs the pipeline on one description. Progress and advisory
// lines go to w; the returned error, if any, is always a *Failure.
func (g *Generator) Generate(ctx context.Context, description string, w io.Writer) (Artifacts, error) {
	object, err := g.objectType(description, w)
	if err != nil {
		return Artifacts{}, err
	}

	parsed := parse.ParseAs(description, object)
	fmt.Fprintf(w, "interpreted: %s\n", parsed.Object)

	retriever := g.retriever
	if g.cfg.DisableRetrieval {
		retriever = nil
	}
	enhanced, err := enhance.New(retriever).Enhance(ctx, description, parsed.Dimensions, w)
	if err != nil {
		return Artifacts{}, classify(err)
	}

	spec, err := resolve.Resolve(resolve.Input{
		Object:     parsed.Object,
		Dimensions: enhanced.Dimensions,
		Features:   parsed.Features,
		Provenance: enhanced.Provenance,
		Notes:      enhanced.Notes,
	})
	if err != nil {
		return Artifacts{}, classify(err)
	}

	graph, err := scene.Build(spec, g.name(spec))
	if err != nil {
		return Artifacts{}, classify(err)
	}

	art := Artifacts{
		Spec:  spec,
		Scene: graph,
		Top:   project.Top(graph),
		Front: project.Front(graph),
	}

	if g.cfg.Mesh3D {
		m, err := mesh.Synthesize(graph, g.cfg.CylinderSegments)
		if err != nil {
			return Artifacts{}, classify(err)
		}
		art.Mesh = &m
		fmt.Fprintf(w, "synthesized: %d vertices, %d faces\n", len(m.Vertices), len(m.Faces))
	}

	return art, nil
}

// objectType settles the object type before interpretation: an explicit
// hint wins, then keyword detection, then the configured default.
func (g *Generator) objectType(description string, w io.Writer) (types.ObjectType, error) {
	if g.cfg.TypeHint != "" {
		return g.cfg.TypeHint, nil
	}

	object, err := parse.DetectType(description)
	if err == nil {
		return object, nil
	}
	if g.cfg.DefaultType != "" {
		fmt.Fprintf(w, "type not recognized, assuming %s\n", g.cfg.DefaultType)
		return g.cfg.DefaultType, nil
	}
	return "", classify(err)
}

func (g *Generator) name(spec types.CanonicalSpec) string {
	if g.cfg.Prefix != "" {
		return g.cfg.Prefix
	}
	return string(spec.Object)
}

// Export writes the run's output files under the configured output
// directory: the resolved spec as YAML, an SVG and DXF drawing, plus STL
// and OBJ/MTL when a mesh was synthesized. It returns the paths written.
func (g *Generator) Export(art Artifacts, w io.Writer) ([]string, error) {
	if err := os.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	base := g.name(art.Spec)

	var paths []string
	emit := func(ext string, write func(f *os.File) error) error {
		path := filepath.Join(g.cfg.OutputDir, base+ext)
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := write(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		paths = append(paths, path)
		fmt.Fprintf(w, "wrote: %s\n", path)
		return nil
	}

	if err := emit(".spec.yaml", func(f *os.File) error {
		data, err := yaml.Marshal(art.Spec)
		if err != nil {
			return err
		}
		_, err = f.Write(data)
		return err
	}); err != nil {
		return paths, err
	}
	if err := emit(".svg", func(f *os.File) error {
		return export.WriteSVG(f, art.Top, art.Front)
	}); err != nil {
		return paths, err
	}
	if err := emit(".dxf", func(f *os.File) error {
		return export.WriteDXF(f, art.Top, art.Front)
	}); err != nil {
		return paths, err
	}

	if art.Mesh != nil {
		if err := emit(".stl", func(f *os.File) error {
			return export.WriteSTL(f, base, *art.Mesh)
		}); err != nil {
			return paths, err
		}
		if err := emit(".obj", func(f *os.File) error {
			return export.WriteOBJ(f, base, base+".mtl", art.Spec.Object, *art.Mesh)
		}); err != nil {
			return paths, err
		}
		if err := emit(".mtl", func(f *os.File) error {
			return export.WriteMTL(f, art.Spec.Object)
		}); err != nil {
			return paths, err
		}
	}

	return paths, nil
}
