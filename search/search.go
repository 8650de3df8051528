// Package search builds the flat, client-consumable search index. Unlike
// the navigation tree, methods are not nested under their owner: the
// browser matcher scans one linear candidate list per keystroke, so the
// index is shaped for that access pattern.
package search

import (
	"sort"
	"strings"

	"github.com/awalczuk/docsite"
)

// Ensure Builder implements docsite.SearchIndexBuilder at compile time.
var _ docsite.SearchIndexBuilder = (*Builder)(nil)

// Builder flattens documented classes, modules, and their methods into the
// search index.
type Builder struct {
	// Formatter, when set, reduces method summaries to plain text before
	// they are embedded in the index.
	Formatter docsite.SummaryFormatter
}

// NewBuilder creates a new Builder without a summary formatter.
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildIndex builds the search index from the class/module collection.
// Entities are traversed sorted by full name, each entity's methods in
// declaration order; the record list is not re-sorted afterwards since
// ranking happens client-side. Only documented entities surface; the rest
// are skipped silently. File entities are ignored.
func (b *Builder) BuildIndex(entities []*docsite.Entity) (*docsite.SearchIndex, error) {
	sorted := make([]*docsite.Entity, 0, len(entities))
	for _, e := range entities {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if e.Kind == docsite.KindFile {
			continue
		}
		sorted = append(sorted, e)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].FullName < sorted[j].FullName
	})

	index := &docsite.SearchIndex{
		Records: make([]docsite.SearchRecord, 0, len(sorted)),
		Terms:   make([]string, 0, len(sorted)),
	}
	for _, e := range sorted {
		if !e.HasDocumentation {
			continue
		}
		index.Records = append(index.Records, docsite.SearchRecord{
			Type:     docsite.RecordType(e.Kind),
			FullName: e.FullName,
			Path:     e.Path,
		})
		index.Terms = append(index.Terms, strings.ToLower(e.Name))

		for _, m := range e.Methods {
			index.Records = append(index.Records, docsite.SearchRecord{
				Type:           docsite.RecordMethod,
				OwningFullName: e.FullName,
				MethodName:     m.Name,
				Summary:        b.flatten(m.Summary),
				AnchorURL:      m.AnchorURL,
			})
			index.Terms = append(index.Terms, strings.ToLower(m.Name))
		}
	}
	return index, nil
}

func (b *Builder) flatten(summary string) string {
	if b.Formatter == nil || summary == "" {
		return summary
	}
	return b.Formatter.Flatten(summary)
}
