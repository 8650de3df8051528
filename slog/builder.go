// Package slog provides logging decorators for the build pipeline.
package slog

import (
	"log/slog"
	"time"

	"github.com/awalczuk/docsite"
)

// Ensure LoggingTreeBuilder implements docsite.NavTreeBuilder.
var _ docsite.NavTreeBuilder = (*LoggingTreeBuilder)(nil)

// LoggingTreeBuilder wraps a NavTreeBuilder with timing and size logging.
type LoggingTreeBuilder struct {
	next   docsite.NavTreeBuilder
	logger *slog.Logger
}

// NewLoggingTreeBuilder creates a new LoggingTreeBuilder.
func NewLoggingTreeBuilder(next docsite.NavTreeBuilder, logger *slog.Logger) *LoggingTreeBuilder {
	return &LoggingTreeBuilder{next: next, logger: logger}
}

// BuildTree delegates to the wrapped builder and logs the outcome.
func (b *LoggingTreeBuilder) BuildTree(classes, files []*docsite.Entity) ([]*docsite.TreeNode, error) {
	begin := time.Now()
	forest, err := b.next.BuildTree(classes, files)
	if err != nil {
		b.logger.Error("navigation tree build failed", "error", err)
		return nil, err
	}
	b.logger.Info("navigation tree built",
		"classes", len(classes),
		"files", len(files),
		"nodes", countNodes(forest),
		"duration", time.Since(begin),
	)
	return forest, nil
}

// countNodes returns the total node count of a forest.
func countNodes(forest []*docsite.TreeNode) int {
	n := 0
	for _, node := range forest {
		n += 1 + countNodes(node.Children)
	}
	return n
}

// Ensure LoggingIndexBuilder implements docsite.SearchIndexBuilder.
var _ docsite.SearchIndexBuilder = (*LoggingIndexBuilder)(nil)

// LoggingIndexBuilder wraps a SearchIndexBuilder with timing and size logging.
type LoggingIndexBuilder struct {
	next   docsite.SearchIndexBuilder
	logger *slog.Logger
}

// NewLoggingIndexBuilder creates a new LoggingIndexBuilder.
func NewLoggingIndexBuilder(next docsite.SearchIndexBuilder, logger *slog.Logger) *LoggingIndexBuilder {
	return &LoggingIndexBuilder{next: next, logger: logger}
}

// BuildIndex delegates to the wrapped builder and logs the outcome.
func (b *LoggingIndexBuilder) BuildIndex(entities []*docsite.Entity) (*docsite.SearchIndex, error) {
	begin := time.Now()
	index, err := b.next.BuildIndex(entities)
	if err != nil {
		b.logger.Error("search index build failed", "error", err)
		return nil, err
	}
	b.logger.Info("search index built",
		"entities", len(entities),
		"records", len(index.Records),
		"duration", time.Since(begin),
	)
	return index, nil
}
