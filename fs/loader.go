// Package fs provides file-based input and output for documentation
// builds: loading extractor-produced entity dumps and publishing the
// generated artifacts atomically.
package fs

import (
	"context"
	"encoding/json"
	"os"

	"github.com/awalczuk/docsite"
)

// entityRecord is the JSON shape of one extractor record. Containment is
// expressed by full-name references so the dump can describe graphs that
// are not strict trees.
type entityRecord struct {
	Name             string           `json:"name"`
	FullName         string           `json:"fullName"`
	Kind             docsite.Kind     `json:"kind"`
	ParentFullName   string           `json:"parentFullName"`
	ChildFullNames   []string         `json:"children"`
	HasDocumentation bool             `json:"hasDocumentation"`
	Path             string           `json:"path"`
	SuperclassName   string           `json:"superclassName"`
	Methods          []docsite.Method `json:"documentedMethods"`
}

// Ensure Loader implements docsite.EntitySource at compile time.
var _ docsite.EntitySource = (*Loader)(nil)

// Loader reads an extractor-produced JSON entity dump from disk.
type Loader struct {
	path string
}

// NewLoader creates a Loader for the given dump file.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// LoadEntities reads and resolves the entity dump.
func (l *Loader) LoadEntities(ctx context.Context) ([]*docsite.Entity, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, err
	}
	return ResolveEntities(data)
}

// ResolveEntities decodes a JSON entity dump and links parents and children
// by full name. Duplicate full names and dangling references violate the
// extractor contract and fail the whole load; nothing is repaired locally.
func ResolveEntities(data []byte) ([]*docsite.Entity, error) {
	var records []entityRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, docsite.Errorf(docsite.EINVALID, "malformed entity dump: %v", err)
	}

	entities := make([]*docsite.Entity, 0, len(records))
	byFullName := make(map[string]*docsite.Entity, len(records))
	for _, r := range records {
		e := &docsite.Entity{
			Name:             r.Name,
			FullName:         r.FullName,
			Kind:             r.Kind,
			HasDocumentation: r.HasDocumentation,
			Path:             r.Path,
			SuperclassName:   r.SuperclassName,
			Methods:          r.Methods,
		}
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if byFullName[e.FullName] != nil {
			return nil, docsite.Errorf(docsite.EINVALID, "duplicate full name %q", e.FullName)
		}
		byFullName[e.FullName] = e
		entities = append(entities, e)
	}

	for i, r := range records {
		e := entities[i]
		if r.ParentFullName != "" {
			parent := byFullName[r.ParentFullName]
			if parent == nil {
				return nil, docsite.Errorf(docsite.EINVALID, "entity %q references unknown parent %q", e.FullName, r.ParentFullName)
			}
			e.Parent = parent
		}
		for _, name := range r.ChildFullNames {
			child := byFullName[name]
			if child == nil {
				return nil, docsite.Errorf(docsite.EINVALID, "entity %q references unknown child %q", e.FullName, name)
			}
			e.Children = append(e.Children, child)
		}
	}
	return entities, nil
}
