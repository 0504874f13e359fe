// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest loads reference documents and splits them into chunks for
// the knowledge index. Only plain text and markdown files are read; the
// corpus describes furniture and building standards in prose. See
// docs/ARCHITECTURE § Knowledge Index.
package ingest

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/pdiddy/cad-engine/pkg/types"
)

// Chunker packs whole sentences into chunks of at most chunkSize
// characters. Sentences never split mid-way; a sentence longer than the
// chunk size becomes its own chunk.
type Chunker struct {
	chunkSize int
	overlap   int
}

// Option configures a Chunker.
type Option func(*Chunker)

// WithChunkSize sets the maximum chunk length in characters.
func WithChunkSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// WithOverlap sets how many trailing characters of a chunk are repeated at
// the start of the next one.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// NewChunker creates a chunker with the given options.
func NewChunker(opts ...Option) *Chunker {
	c := &Chunker{
		chunkSize: types.DefaultChunkSize,
		overlap:   types.DefaultChunkOverlap,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.overlap >= c.chunkSize {
		c.overlap = c.chunkSize / 4
	}
	return c
}

var (
	reWhitespace = regexp.MustCompile(`\s+`)
	reSentence   = regexp.MustCompile(`[.!?]+`)
)

// charsPerPage approximates page numbers from running text offsets, since
// plain-text sources carry no pagination of their own.
const charsPerPage = 2000

// Split chunks the text of one source document. Chunk IDs are derived from
// the source name and chunk index, so re-ingesting an unchanged document
// yields identical IDs.
func (c *Chunker) Split(source, text string) []types.KnowledgeChunk {
	text = reWhitespace.ReplaceAllString(strings.TrimSpace(text), " ")
	if text == "" {
		return nil
	}

	var pieces []string
	var current strings.Builder
	for _, sentence := range reSentence.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		if current.Len() > 0 && current.Len()+len(sentence) >= c.chunkSize {
			pieces = append(pieces, strings.TrimSpace(current.String()))
			tail := overlapTail(current.String(), c.overlap)
			current.Reset()
			current.WriteString(tail)
		}
		current.WriteString(sentence)
		current.WriteString(". ")
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		pieces = append(pieces, s)
	}

	chunks := make([]types.KnowledgeChunk, 0, len(pieces))
	offset := 0
	for i, piece := range pieces {
		chunks = append(chunks, types.KnowledgeChunk{
			ID:     chunkID(source, i),
			Source: source,
			Page:   offset/charsPerPage + 1,
			Text:   piece,
		})
		offset += len(piece)
	}
	return chunks
}

// overlapTail returns the last n characters of s, extended left to the
// nearest sentence boundary when one is close.
func overlapTail(s string, n int) string {
	s = strings.TrimSpace(s)
	if n <= 0 || len(s) <= n {
		if n <= 0 {
			return ""
		}
		return s + " "
	}
	tail := s[len(s)-n:]
	if i := strings.Index(tail, ". "); i >= 0 && i+2 < len(tail) {
		tail = tail[i+2:]
	}
	return tail + " "
}

// chunkID is a stable UUID for (source, index).
func chunkID(source string, index int) string {
	name := source + "#" + strconv.Itoa(index)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}
