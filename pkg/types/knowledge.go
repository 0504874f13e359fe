// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// KnowledgeChunk is one indexed passage from a reference document, with its
// embedding vector. Chunks are immutable once indexed.
type KnowledgeChunk struct {
	ID        string    `json:"id" yaml:"id"`
	Source    string    `json:"source" yaml:"source"`
	Page      int       `json:"page" yaml:"page"`
	Text      string    `json:"text" yaml:"text"`
	Embedding []float32 `json:"-" yaml:"-"`
}

// RetrievalMatch is a chunk returned from a similarity query, with its
// cosine score in [-1, 1]. Higher is more similar.
type RetrievalMatch struct {
	Chunk KnowledgeChunk `json:"chunk" yaml:"chunk"`
	Score float64        `json:"score" yaml:"score"`
}

// IngestSummary reports the outcome of an index build over a document
// directory.
type IngestSummary struct {
	Indexed int `json:"indexed" yaml:"indexed"`
	Skipped int `json:"skipped" yaml:"skipped"`
	Failed  int `json:"failed" yaml:"failed"`
}

// Total returns the number of files considered.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Skipped + s.Failed
}
