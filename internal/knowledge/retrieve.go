// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package knowledge

import (
	"context"
	"fmt"
	"sort"

	"github.com/viant/sqlite-vec/vector"

	"github.com/pdiddy/cad-engine/pkg/types"
)

// QueryOptions holds parameters for similarity queries.
type QueryOptions struct {
	// TopK limits result count. Zero uses the store default.
	TopK int

	// MinSimilarity drops matches scoring below it. Zero uses the store
	// default; pass a negative value to disable the filter.
	MinSimilarity float64

	// Source restricts matches to chunks from one document.
	Source string
}

// Query embeds the query text, ranks every indexed chunk by cosine
// similarity, and returns the top matches in descending score order. Ties
// break on chunk ID so rankings are stable across runs. An empty index
// returns no matches and no error.
func (s *Store) Query(ctx context.Context, text string, opts QueryOptions) ([]types.RetrievalMatch, error) {
	topK := opts.TopK
	if topK <= 0 {
		topK = s.cfg.TopK
	}
	minSim := opts.MinSimilarity
	if minSim == 0 {
		minSim = s.cfg.MinSimilarity
	}

	queryVec := s.embedder.Embed(text)

	query := `SELECT id, source, page, text, embedding FROM chunks`
	var args []any
	if opts.Source != "" {
		query += ` WHERE source = ?`
		args = append(args, opts.Source)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying chunks: %w", err)
	}
	defer rows.Close()

	var matches []types.RetrievalMatch
	for rows.Next() {
		var (
			chunk types.KnowledgeChunk
			blob  []byte
		)
		if err := rows.Scan(&chunk.ID, &chunk.Source, &chunk.Page, &chunk.Text, &blob); err != nil {
			return nil, fmt.Errorf("scanning chunk: %w", err)
		}

		chunk.Embedding, err = vector.DecodeEmbedding(blob)
		if err != nil {
			return nil, fmt.Errorf("decoding embedding for chunk %s: %w", chunk.ID, err)
		}

		// A chunk with no tokens embeds to the zero vector and cannot be
		// ranked; skip it rather than failing the whole query.
		score, err := vector.CosineSimilarity(queryVec, chunk.Embedding)
		if err != nil {
			continue
		}
		if score < minSim {
			continue
		}

		matches = append(matches, types.RetrievalMatch{Chunk: chunk, Score: score})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chunks: %w", err)
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Chunk.ID < matches[j].Chunk.ID
	})

	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}
