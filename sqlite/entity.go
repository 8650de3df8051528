package sqlite

import (
	"context"

	"github.com/awalczuk/docsite"
)

// Compile-time interface verification.
var _ docsite.EntitySource = (*EntityService)(nil)

// EntityService implements docsite.EntitySource using SQLite.
type EntityService struct {
	db *DB
}

// NewEntityService creates a new EntityService.
func NewEntityService(db *DB) *EntityService {
	return &EntityService{db: db}
}

// LoadEntities reads the full entity collection and resolves parent, child,
// and method links. Dangling references violate the extractor contract and
// fail the whole load.
func (s *EntityService) LoadEntities(ctx context.Context) ([]*docsite.Entity, error) {
	entities, byFullName, parentNames, err := s.loadEntityRows(ctx)
	if err != nil {
		return nil, err
	}

	for fullName, parentName := range parentNames {
		if parentName == "" {
			continue
		}
		parent := byFullName[parentName]
		if parent == nil {
			return nil, docsite.Errorf(docsite.EINVALID, "entity %q references unknown parent %q", fullName, parentName)
		}
		byFullName[fullName].Parent = parent
	}

	if err := s.loadChildren(ctx, byFullName); err != nil {
		return nil, err
	}
	if err := s.loadMethods(ctx, byFullName); err != nil {
		return nil, err
	}
	return entities, nil
}

func (s *EntityService) loadEntityRows(ctx context.Context) ([]*docsite.Entity, map[string]*docsite.Entity, map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT full_name, name, kind, parent_full_name, documented, path, superclass_name
		FROM entities
		ORDER BY full_name
	`)
	if err != nil {
		return nil, nil, nil, err
	}
	defer rows.Close()

	var entities []*docsite.Entity
	byFullName := make(map[string]*docsite.Entity)
	parentNames := make(map[string]string)
	for rows.Next() {
		var e docsite.Entity
		var kind, parentName string
		if err := rows.Scan(&e.FullName, &e.Name, &kind, &parentName, &e.HasDocumentation, &e.Path, &e.SuperclassName); err != nil {
			return nil, nil, nil, err
		}
		e.Kind = docsite.Kind(kind)
		if err := e.Validate(); err != nil {
			return nil, nil, nil, err
		}
		entities = append(entities, &e)
		byFullName[e.FullName] = &e
		parentNames[e.FullName] = parentName
	}
	if err := rows.Err(); err != nil {
		return nil, nil, nil, err
	}
	return entities, byFullName, parentNames, nil
}

func (s *EntityService) loadChildren(ctx context.Context, byFullName map[string]*docsite.Entity) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT parent_full_name, child_full_name
		FROM entity_children
		ORDER BY parent_full_name, position
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var parentName, childName string
		if err := rows.Scan(&parentName, &childName); err != nil {
			return err
		}
		parent := byFullName[parentName]
		if parent == nil {
			return docsite.Errorf(docsite.EINVALID, "child row references unknown parent %q", parentName)
		}
		child := byFullName[childName]
		if child == nil {
			return docsite.Errorf(docsite.EINVALID, "entity %q references unknown child %q", parentName, childName)
		}
		parent.Children = append(parent.Children, child)
	}
	return rows.Err()
}

func (s *EntityService) loadMethods(ctx context.Context, byFullName map[string]*docsite.Entity) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT owner_full_name, name, summary, anchor_url
		FROM methods
		ORDER BY owner_full_name, position
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var ownerName string
		var m docsite.Method
		if err := rows.Scan(&ownerName, &m.Name, &m.Summary, &m.AnchorURL); err != nil {
			return err
		}
		owner := byFullName[ownerName]
		if owner == nil {
			return docsite.Errorf(docsite.EINVALID, "method %q references unknown owner %q", m.Name, ownerName)
		}
		owner.Methods = append(owner.Methods, m)
	}
	return rows.Err()
}
