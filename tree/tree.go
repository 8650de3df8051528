// Package tree builds the navigation tree for a generated documentation
// site. It converts the flat entity collection into an ordered, nested
// forest, pruning undocumented entities and deduplicating entities that are
// reachable through more than one parent.
package tree

import (
	"sort"

	"github.com/awalczuk/docsite"
)

// Ensure Builder implements docsite.NavTreeBuilder at compile time.
var _ docsite.NavTreeBuilder = (*Builder)(nil)

// FilesLabel is the label of the synthetic group holding the file tree.
const FilesLabel = "files"

// Builder builds navigation trees. The zero value is ready to use.
type Builder struct{}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildTree builds the combined navigation tree. The file tree (built only
// when more than one file exists) comes first, followed by the top-level
// class/module forest. The containment relation supplied by the extractor
// is treated as a general graph: a visited set shared across the whole
// class/module recursion guarantees each entity is emitted at most once,
// and an entity reachable from two parents lands under whichever parent
// sorts first. The class tree and the file tree are independent builds and
// never share dedup state.
func (b *Builder) BuildTree(classes, files []*docsite.Entity) ([]*docsite.TreeNode, error) {
	for _, e := range classes {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if e.Kind == docsite.KindFile {
			return nil, docsite.Errorf(docsite.EINVALID, "entity %q: file passed as class/module", e.FullName)
		}
	}
	for _, e := range files {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if e.Kind != docsite.KindFile {
			return nil, docsite.Errorf(docsite.EINVALID, "entity %q: %s passed as file", e.FullName, e.Kind)
		}
	}

	forest := make([]*docsite.TreeNode, 0, len(classes)+1)
	if fileTree := buildFileTree(files); fileTree != nil {
		forest = append(forest, fileTree)
	}

	visited := make(map[string]bool)
	forest = append(forest, buildForest(roots(classes), visited)...)
	return forest, nil
}

// roots selects the top-level class/module entities: those whose parent is
// not itself a class or module.
func roots(classes []*docsite.Entity) []*docsite.Entity {
	var out []*docsite.Entity
	for _, e := range classes {
		if e.Parent == nil || e.Parent.Kind == docsite.KindFile {
			out = append(out, e)
		}
	}
	return out
}

// buildForest emits one tree level from the candidate entities, recursing
// into nested classes and modules. The visited set is shared across the
// entire recursion, including sibling subtrees: when an earlier sibling's
// subtree has already claimed a candidate, the candidate is silently
// skipped here. That skip is the order-sensitive dedup policy for entities
// reachable from multiple parents.
func buildForest(candidates []*docsite.Entity, visited map[string]bool) []*docsite.TreeNode {
	keep := make([]*docsite.Entity, 0, len(candidates))
	for _, e := range candidates {
		if visited[e.FullName] {
			continue
		}
		if !documented(e, make(map[string]bool)) {
			continue
		}
		keep = append(keep, e)
	}
	sortEntities(keep)

	nodes := make([]*docsite.TreeNode, 0, len(keep))
	for _, e := range keep {
		if visited[e.FullName] {
			// Claimed by an earlier sibling's subtree.
			continue
		}
		visited[e.FullName] = true
		nodes = append(nodes, &docsite.TreeNode{
			Kind:     docsite.ClassNode,
			Name:     e.Name,
			Path:     pagePath(e),
			Suffix:   inheritanceSuffix(e),
			Children: buildForest(nested(e), visited),
		})
	}
	return nodes
}

// documented reports whether e itself carries documentation or any
// descendant does. The seen set guards against containment cycles and is
// local to one query; it must not be confused with the emission visited
// set.
func documented(e *docsite.Entity, seen map[string]bool) bool {
	if seen[e.FullName] {
		return false
	}
	seen[e.FullName] = true
	if e.HasDocumentation {
		return true
	}
	for _, c := range e.Children {
		if c.Kind == docsite.KindFile {
			continue
		}
		if documented(c, seen) {
			return true
		}
	}
	return false
}

// nested returns e's contained classes and modules.
func nested(e *docsite.Entity) []*docsite.Entity {
	var out []*docsite.Entity
	for _, c := range e.Children {
		if c.Kind == docsite.KindClass || c.Kind == docsite.KindModule {
			out = append(out, c)
		}
	}
	return out
}

// pagePath returns the entity's output path, or empty when the entity has
// no page of its own. An entity kept only for its documented descendants
// still appears as a navigation folder, but links nowhere.
func pagePath(e *docsite.Entity) string {
	if !e.HasDocumentation {
		return ""
	}
	return e.Path
}

// inheritanceSuffix returns the " < Superclass" display suffix. Modules
// never carry one.
func inheritanceSuffix(e *docsite.Entity) string {
	if e.Kind != docsite.KindClass || e.SuperclassName == "" {
		return ""
	}
	return " < " + e.SuperclassName
}

// sortEntities orders siblings by simple name, case-sensitive, with full
// name as the tie break so entities sharing a simple name serialize in a
// stable order.
func sortEntities(entities []*docsite.Entity) {
	sort.Slice(entities, func(i, j int) bool {
		if entities[i].Name != entities[j].Name {
			return entities[i].Name < entities[j].Name
		}
		return entities[i].FullName < entities[j].FullName
	})
}
