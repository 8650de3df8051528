package mock

import (
	"github.com/awalczuk/docsite"
)

var _ docsite.NavTreeBuilder = (*NavTreeBuilder)(nil)

// NavTreeBuilder is a mock implementation of docsite.NavTreeBuilder.
type NavTreeBuilder struct {
	BuildTreeFn func(classes, files []*docsite.Entity) ([]*docsite.TreeNode, error)
}

func (b *NavTreeBuilder) BuildTree(classes, files []*docsite.Entity) ([]*docsite.TreeNode, error) {
	return b.BuildTreeFn(classes, files)
}

var _ docsite.SearchIndexBuilder = (*SearchIndexBuilder)(nil)

// SearchIndexBuilder is a mock implementation of docsite.SearchIndexBuilder.
type SearchIndexBuilder struct {
	BuildIndexFn func(entities []*docsite.Entity) (*docsite.SearchIndex, error)
}

func (b *SearchIndexBuilder) BuildIndex(entities []*docsite.Entity) (*docsite.SearchIndex, error) {
	return b.BuildIndexFn(entities)
}
