package docsite

import "context"

// Kind identifies the flavor of a documentable entity.
type Kind string

// Entity kinds.
const (
	KindClass  Kind = "class"
	KindModule Kind = "module"
	KindFile   Kind = "file"
)

// Method describes a documented method on a class or module.
type Method struct {
	Name      string `json:"name"`
	Summary   string `json:"summary"`
	AnchorURL string `json:"anchorUrl"`
}

// Entity represents a documentable entity supplied by an external
// extractor: a class, a module, or a source file. The extractor resolves
// Parent and Children before handing the collection over; the containment
// relation is not guaranteed to be a strict tree (an entity may be
// reachable through more than one parent), so consumers must dedup by
// FullName rather than assume single reachability.
type Entity struct {
	// Name is the simple identifier (e.g. "Inner").
	Name string

	// FullName is the fully qualified path (e.g. "Outer::Inner") for
	// classes and modules, or the relative source path for files. It is
	// unique across the collection and serves as the stable join key.
	FullName string

	Kind Kind

	// Parent is the enclosing entity, nil for top-level entities.
	Parent *Entity

	// Children are the contained entities, in extractor order.
	Children []*Entity

	// HasDocumentation reports whether the entity itself carries documented
	// content. Whether a descendant does is computed by the tree builder,
	// not stored here.
	HasDocumentation bool

	// Path is the entity's relative output path. It is non-empty if and
	// only if the entity is rendered as its own page.
	Path string

	// SuperclassName is the display text for a class's superclass, empty
	// when none is declared. It may be a plain placeholder rather than a
	// resolved entity's full name.
	SuperclassName string

	// Methods are the entity's documented methods, in declaration order.
	Methods []Method
}

// Validate returns an error if the entity violates the extractor contract.
func (e *Entity) Validate() error {
	if e.Name == "" {
		return Errorf(EINVALID, "entity name required")
	}
	if e.FullName == "" {
		return Errorf(EINVALID, "entity %q full name required", e.Name)
	}
	switch e.Kind {
	case KindClass, KindModule, KindFile:
	default:
		return Errorf(EINVALID, "entity %q has unknown kind %q", e.FullName, e.Kind)
	}
	return nil
}

// Partition splits an entity collection into class/module entities and file
// entities, preserving input order.
func Partition(entities []*Entity) (classes, files []*Entity) {
	for _, e := range entities {
		if e.Kind == KindFile {
			files = append(files, e)
		} else {
			classes = append(classes, e)
		}
	}
	return classes, files
}

// EntitySource supplies a fully resolved entity collection for one build.
// Implementations are the boundary to the external extractor: a JSON dump,
// an entity database, or an in-process collection.
type EntitySource interface {
	LoadEntities(ctx context.Context) ([]*Entity, error)
}
