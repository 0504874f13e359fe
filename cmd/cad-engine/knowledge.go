// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/cad-engine/internal/ingest"
	"github.com/pdiddy/cad-engine/internal/knowledge"
	"github.com/pdiddy/cad-engine/pkg/types"
)

var knowledgeCmd = &cobra.Command{
	Use:   "knowledge",
	Short: "Manage the dimensional-standards index (build, query)",
	Long: `Knowledge manages a local SQLite index of dimensional-standards
documents. Build ingests text and Markdown files into chunked, embedded
form; query runs the same similarity search the generate pipeline uses.`,
}

// --- build subcommand ---

var knowledgeBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Index standards documents into the knowledge store",
	Long: `Build reads .txt and .md files from the documents directory, splits
them into overlapping chunks, embeds each chunk, and stores everything in
a SQLite index. Rebuilding replaces chunks from unchanged sources in
place.`,
	RunE: runKnowledgeBuild,
}

func runKnowledgeBuild(cmd *cobra.Command, args []string) error {
	cfg := knowledgeConfig(cmd)

	docsDir, _ := cmd.Flags().GetString("docs-dir")
	if docsDir == "" {
		docsDir = viper.GetString("knowledge.docs_dir")
	}

	chunker := ingest.NewChunker(
		ingest.WithChunkSize(cfg.ChunkSize),
		ingest.WithOverlap(cfg.ChunkOverlap),
	)
	chunks, summary, err := ingest.LoadDir(docsDir, chunker, os.Stdout)
	if err != nil {
		return err
	}
	if len(chunks) == 0 {
		return fmt.Errorf("no indexable documents under %s", docsDir)
	}

	store, err := knowledge.NewStore(cfg, knowledge.NewHashEmbedder(cfg.EmbeddingDim))
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Index(context.Background(), chunks, os.Stdout); err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d document(s) failed ingestion", summary.Failed)
	}
	return nil
}

// --- query subcommand ---

var knowledgeQueryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Run a similarity query against the knowledge store",
	Long: `Query embeds the given text and returns the most similar indexed
chunks with their scores. This is the same lookup the generate pipeline
performs when validating dimensions.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runKnowledgeQuery,
}

func runKnowledgeQuery(cmd *cobra.Command, args []string) error {
	cfg := knowledgeConfig(cmd)

	store, err := knowledge.NewStore(cfg, knowledge.NewHashEmbedder(cfg.EmbeddingDim))
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	minScore, _ := cmd.Flags().GetFloat64("min-score")

	matches, err := store.Query(context.Background(), strings.Join(args, " "), knowledge.QueryOptions{
		TopK:          limit,
		MinSimilarity: minScore,
	})
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatMatches(matches, jsonOutput)
}

func formatMatches(matches []types.RetrievalMatch, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(matches)
	}

	if len(matches) == 0 {
		fmt.Println("No matches found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-6s  %-30s  %-5s  %s\n",
		"Rank", "Score", "Source", "Page", "Text")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for i, m := range matches {
		text := strings.Join(strings.Fields(m.Chunk.Text), " ")
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		source := m.Chunk.Source
		if len(source) > 30 {
			source = source[:27] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-6.3f  %-30s  %-5d  %s\n",
			i+1, m.Score, source, m.Chunk.Page, text)
	}

	fmt.Fprintf(os.Stdout, "\n%d matches\n", len(matches))
	return nil
}

// --- shared helpers ---

func knowledgeConfig(cmd *cobra.Command) types.KnowledgeConfig {
	chunkSize, _ := cmd.Flags().GetInt("chunk-size")
	chunkOverlap, _ := cmd.Flags().GetInt("chunk-overlap")

	cfg := types.KnowledgeConfig{
		Dir:          knowledgeDir(),
		ChunkSize:    chunkSize,
		ChunkOverlap: chunkOverlap,
	}
	cfg.ApplyDefaults()
	return cfg
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	knowledgeCmd.PersistentFlags().Int("chunk-size", 0, "target chunk size in characters (0 = default)")
	knowledgeCmd.PersistentFlags().Int("chunk-overlap", 0, "overlap between adjacent chunks (0 = default)")

	// Build flags.
	knowledgeBuildCmd.Flags().String("docs-dir", "", "directory of .txt/.md standards documents")

	// Query flags.
	knowledgeQueryCmd.Flags().Int("limit", 0, "maximum matches (0 = use default)")
	knowledgeQueryCmd.Flags().Float64("min-score", 0, "minimum similarity score (0 = use default)")
	knowledgeQueryCmd.Flags().Bool("json", false, "output matches as JSON")

	// Wire subcommands.
	knowledgeCmd.AddCommand(knowledgeBuildCmd)
	knowledgeCmd.AddCommand(knowledgeQueryCmd)

	rootCmd.AddCommand(knowledgeCmd)
}
