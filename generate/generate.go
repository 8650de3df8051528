// Package generate orchestrates a single documentation build: it loads the
// entity collection, runs the tree and index builders over it, and
// publishes the artifacts atomically. A run either completes and publishes,
// or aborts entirely; there is no partial output and no retry.
package generate

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/awalczuk/docsite"
)

// Generator runs one build. All service fields are required.
type Generator struct {
	Source docsite.EntitySource
	Trees  docsite.NavTreeBuilder
	Index  docsite.SearchIndexBuilder
	Store  docsite.ArtifactStore

	// NewBuildID overrides build ID generation, mainly for tests.
	// Defaults to a random UUID.
	NewBuildID func() string
}

// Result summarizes a completed build.
type Result struct {
	BuildID string
	Classes int
	Files   int
	Records int
}

// Run executes the build. The builders are synchronous and run over the
// fully materialized collection; only the terminal artifact writes overlap.
// On any failure the staged artifact set is discarded.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	entities, err := g.Source.LoadEntities(ctx)
	if err != nil {
		return nil, fmt.Errorf("load entities: %w", err)
	}

	classes, files := docsite.Partition(entities)

	forest, err := g.Trees.BuildTree(classes, files)
	if err != nil {
		return nil, fmt.Errorf("build navigation tree: %w", err)
	}

	index, err := g.Index.BuildIndex(classes)
	if err != nil {
		return nil, fmt.Errorf("build search index: %w", err)
	}

	// The two artifacts are independent; write them concurrently, then
	// publish the set in one atomic step.
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error { return g.Store.SaveNavTree(egCtx, forest) })
	eg.Go(func() error { return g.Store.SaveSearchIndex(egCtx, index) })
	if err := eg.Wait(); err != nil {
		_ = g.Store.Abort()
		return nil, fmt.Errorf("write artifacts: %w", err)
	}

	buildID := g.buildID()
	if err := g.Store.Commit(ctx, buildID); err != nil {
		_ = g.Store.Abort()
		return nil, fmt.Errorf("publish artifacts: %w", err)
	}

	return &Result{
		BuildID: buildID,
		Classes: len(classes),
		Files:   len(files),
		Records: len(index.Records),
	}, nil
}

func (g *Generator) buildID() string {
	if g.NewBuildID != nil {
		return g.NewBuildID()
	}
	return uuid.New().String()
}
