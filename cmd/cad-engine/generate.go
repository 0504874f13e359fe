// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/cad-engine/internal/enhance"
	"github.com/pdiddy/cad-engine/internal/knowledge"
	"github.com/pdiddy/cad-engine/internal/pipeline"
	"github.com/pdiddy/cad-engine/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate [description]",
	Short: "Generate drawings from a text description",
	Long: `Generate interprets a furniture or building description, resolves a
complete specification, and writes an SVG and DXF drawing to the output
directory. With --3d it additionally writes an STL and OBJ/MTL mesh.

Dimensions found in the description are kept verbatim; missing ones are
filled from the knowledge index when one has been built, and from
per-type defaults otherwise.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	description := strings.Join(args, " ")

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = viper.GetString("output.dir")
	}
	name, _ := cmd.Flags().GetString("name")
	mesh3D, _ := cmd.Flags().GetBool("3d")
	typeHint, _ := cmd.Flags().GetString("type")
	defaultType, _ := cmd.Flags().GetString("default-type")
	noRAG, _ := cmd.Flags().GetBool("no-rag")
	segments, _ := cmd.Flags().GetInt("segments")

	cfg := types.GenerateConfig{
		OutputDir:        outputDir,
		Prefix:           name,
		Mesh3D:           mesh3D,
		TypeHint:         types.ObjectType(typeHint),
		DefaultType:      types.ObjectType(defaultType),
		CylinderSegments: segments,
		DisableRetrieval: noRAG,
	}

	retriever, closer := openRetriever(noRAG)
	if closer != nil {
		defer closer()
	}

	gen := pipeline.New(retriever, cfg)
	art, err := gen.Generate(context.Background(), description, os.Stdout)
	if err != nil {
		return err
	}

	_, err = gen.Export(art, os.Stdout)
	return err
}

// openRetriever opens the knowledge index when one exists. Retrieval is
// advisory, so a missing index means generation proceeds without it.
func openRetriever(noRAG bool) (enhance.Retriever, func()) {
	if noRAG {
		return nil, nil
	}

	kcfg := types.KnowledgeConfig{Dir: knowledgeDir()}
	kcfg.ApplyDefaults()
	if _, err := os.Stat(filepath.Join(kcfg.Dir, "knowledge.db")); err != nil {
		fmt.Fprintln(os.Stderr, "No knowledge index found; generating without retrieval.")
		return nil, nil
	}

	store, err := knowledge.NewStore(kcfg, knowledge.NewHashEmbedder(kcfg.EmbeddingDim))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Knowledge index unavailable (%v); generating without retrieval.\n", err)
		return nil, nil
	}
	return store, func() { store.Close() }
}

func init() {
	generateCmd.Flags().StringP("output", "o", "", "output directory for drawings and meshes")
	generateCmd.Flags().StringP("name", "n", "", "base name for output files (default: the object type)")
	generateCmd.Flags().Bool("3d", false, "also synthesize an STL and OBJ/MTL mesh")
	generateCmd.Flags().String("type", "", "force the object type, bypassing keyword detection")
	generateCmd.Flags().String("default-type", "", "object type to assume when none is recognized")
	generateCmd.Flags().Bool("no-rag", false, "skip knowledge-index enhancement")
	generateCmd.Flags().Int("segments", 0, "radial resolution for cylinder meshes (0 = default)")

	rootCmd.AddCommand(generateCmd)
}
