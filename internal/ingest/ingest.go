// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/cad-engine/pkg/types"
)

// readableExts are the document types the loader accepts.
var readableExts = map[string]bool{
	".txt": true,
	".md":  true,
}

// LoadDir reads every text and markdown file under dir, chunks each one,
// and reports per-file progress to w. Files are visited in sorted path
// order so the resulting chunk list is deterministic. Unreadable files are
// counted as failed and skipped; only a missing directory is an error.
func LoadDir(dir string, chunker *Chunker, w io.Writer) ([]types.KnowledgeChunk, types.IngestSummary, error) {
	var summary types.IngestSummary

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if readableExts[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, summary, fmt.Errorf("scanning %s: %w", dir, err)
	}
	sort.Strings(paths)

	var chunks []types.KnowledgeChunk
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			summary.Failed++
			fmt.Fprintf(w, "failed %s: %v\n", path, err)
			continue
		}

		source, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			source = filepath.Base(path)
		}

		fileChunks := chunker.Split(source, string(data))
		if len(fileChunks) == 0 {
			summary.Skipped++
			fmt.Fprintf(w, "skipped %s: empty\n", path)
			continue
		}

		chunks = append(chunks, fileChunks...)
		summary.Indexed++
		fmt.Fprintf(w, "indexed %s: %d chunks\n", path, len(fileChunks))
	}

	return chunks, summary, nil
}
