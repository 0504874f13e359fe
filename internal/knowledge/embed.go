// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package knowledge

import (
	"hash/fnv"
	"math"
	"strings"
)

// Embedder turns text into a fixed-length vector. Implementations must be
// deterministic: the same text always yields the same vector, since the
// pipeline's reproducibility rests on it.
type Embedder interface {
	Embed(text string) []float32
	Dim() int
}

// HashEmbedder projects token and token-bigram hashes into a fixed-length
// vector. It needs no model files or network access and is fully
// deterministic, which is all the dimension-standard corpus requires:
// queries and chunks that share vocabulary land close together.
type HashEmbedder struct {
	dim int
}

// NewHashEmbedder creates an embedder producing dim-length vectors.
func NewHashEmbedder(dim int) *HashEmbedder {
	if dim <= 0 {
		dim = 256
	}
	return &HashEmbedder{dim: dim}
}

// Dim returns the vector length.
func (e *HashEmbedder) Dim() int {
	return e.dim
}

// Embed hashes each token and each adjacent token pair into a bucket and
// L2-normalizes the result. Zero-content text yields the zero vector.
func (e *HashEmbedder) Embed(text string) []float32 {
	vec := make([]float32, e.dim)

	tokens := tokenize(text)
	for i, tok := range tokens {
		vec[e.bucket(tok)]++
		if i+1 < len(tokens) {
			vec[e.bucket(tokens[i]+" "+tokens[i+1])] += 0.5
		}
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		inv := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= inv
		}
	}
	return vec
}

func (e *HashEmbedder) bucket(s string) int {
	h := fnv.New32a()
	h.Write([]byte(s))
	return int(h.Sum32() % uint32(e.dim))
}

// tokenize lowercases and splits on non-alphanumeric runes, keeping
// numbers since dimension values carry most of the corpus signal.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r >= '0' && r <= '9':
			return false
		}
		return true
	})
}
