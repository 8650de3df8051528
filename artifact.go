package docsite

import (
	"context"
	"time"
)

// Manifest describes a published artifact set. The page shell uses the
// fingerprints for cache busting.
type Manifest struct {
	BuildID     string            `json:"buildId"`
	GeneratedAt time.Time         `json:"generatedAt"`
	Artifacts   map[string]string `json:"artifacts"` // file name → xxhash64 hex
}

// ArtifactStore persists build artifacts with atomic publish semantics:
// saves land in a staging location, Commit publishes the whole set in one
// step, Abort discards it. A failed build must never leave partial output
// behind.
type ArtifactStore interface {
	// SaveNavTree stages the navigation tree artifact.
	SaveNavTree(ctx context.Context, forest []*TreeNode) error

	// SaveSearchIndex stages the search index artifact.
	SaveSearchIndex(ctx context.Context, index *SearchIndex) error

	// Commit writes the manifest and publishes the staged set.
	Commit(ctx context.Context, buildID string) error

	// Abort discards staged artifacts.
	Abort() error
}
