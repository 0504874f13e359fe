// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// KnowledgeConfig controls the knowledge index: where it lives, how
// documents are chunked and embedded, and how queries rank.
type KnowledgeConfig struct {
	// Dir is the directory holding the SQLite index file.
	Dir string `json:"dir" yaml:"dir"`
	// DocsDir is the reference-document directory read at build time.
	DocsDir string `json:"docs_dir" yaml:"docs_dir"`

	ChunkSize    int `json:"chunk_size" yaml:"chunk_size"`
	ChunkOverlap int `json:"chunk_overlap" yaml:"chunk_overlap"`
	EmbeddingDim int `json:"embedding_dim" yaml:"embedding_dim"`

	// TopK is the maximum number of matches a query returns.
	TopK int `json:"top_k" yaml:"top_k"`
	// MinSimilarity filters out matches scoring below it.
	MinSimilarity float64 `json:"min_similarity" yaml:"min_similarity"`
}

// Defaults for knowledge indexing and retrieval.
const (
	DefaultChunkSize     = 1000
	DefaultChunkOverlap  = 200
	DefaultEmbeddingDim  = 256
	DefaultTopK          = 5
	DefaultMinSimilarity = 0.15
)

// ApplyDefaults fills zero fields with the package defaults.
func (c *KnowledgeConfig) ApplyDefaults() {
	if c.ChunkSize <= 0 {
		c.ChunkSize = DefaultChunkSize
	}
	if c.ChunkOverlap <= 0 {
		c.ChunkOverlap = DefaultChunkOverlap
	}
	if c.EmbeddingDim <= 0 {
		c.EmbeddingDim = DefaultEmbeddingDim
	}
	if c.TopK <= 0 {
		c.TopK = DefaultTopK
	}
	if c.MinSimilarity <= 0 {
		c.MinSimilarity = DefaultMinSimilarity
	}
}

// GenerateConfig controls one generation run.
type GenerateConfig struct {
	// OutputDir receives the drawing and mesh files.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
	// Prefix is the base name for output files; derived from the object
	// type when empty.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`

	// Mesh3D enables 3D mesh synthesis alongside the 2D views.
	Mesh3D bool `json:"mesh_3d" yaml:"mesh_3d"`

	// TypeHint forces the object type, bypassing keyword detection.
	TypeHint ObjectType `json:"type_hint,omitempty" yaml:"type_hint,omitempty"`
	// DefaultType is used when no object keyword matches. Empty means a
	// parse failure aborts the run.
	DefaultType ObjectType `json:"default_type,omitempty" yaml:"default_type,omitempty"`

	// CylinderSegments is the radial resolution of cylinder meshes.
	CylinderSegments int `json:"cylinder_segments" yaml:"cylinder_segments"`

	// DisableRetrieval skips knowledge-index enhancement entirely.
	DisableRetrieval bool `json:"disable_retrieval,omitempty" yaml:"disable_retrieval,omitempty"`
}

// DefaultCylinderSegments is the radial resolution used when
// GenerateConfig.CylinderSegments is zero.
const DefaultCylinderSegments = 32

// ApplyDefaults fills zero fields with the package defaults.
func (c *GenerateConfig) ApplyDefaults() {
	if c.OutputDir == "" {
		c.OutputDir = "output"
	}
	if c.CylinderSegments <= 0 {
		c.CylinderSegments = DefaultCylinderSegments
	}
}
