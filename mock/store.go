package mock

import (
	"context"

	"github.com/awalczuk/docsite"
)

var _ docsite.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore is a mock implementation of docsite.ArtifactStore.
type ArtifactStore struct {
	SaveNavTreeFn     func(ctx context.Context, forest []*docsite.TreeNode) error
	SaveSearchIndexFn func(ctx context.Context, index *docsite.SearchIndex) error
	CommitFn          func(ctx context.Context, buildID string) error
	AbortFn           func() error
}

func (s *ArtifactStore) SaveNavTree(ctx context.Context, forest []*docsite.TreeNode) error {
	return s.SaveNavTreeFn(ctx, forest)
}

func (s *ArtifactStore) SaveSearchIndex(ctx context.Context, index *docsite.SearchIndex) error {
	return s.SaveSearchIndexFn(ctx, index)
}

func (s *ArtifactStore) Commit(ctx context.Context, buildID string) error {
	return s.CommitFn(ctx, buildID)
}

func (s *ArtifactStore) Abort() error {
	return s.AbortFn()
}
