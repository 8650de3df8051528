// Package mock provides hand-written mock implementations of the docsite
// service interfaces for use in tests.
package mock

import (
	"context"

	"github.com/awalczuk/docsite"
)

var _ docsite.EntitySource = (*EntitySource)(nil)

// EntitySource is a mock implementation of docsite.EntitySource.
type EntitySource struct {
	LoadEntitiesFn func(ctx context.Context) ([]*docsite.Entity, error)
}

func (s *EntitySource) LoadEntities(ctx context.Context) ([]*docsite.Entity, error) {
	return s.LoadEntitiesFn(ctx)
}
