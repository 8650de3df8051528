package docsite

import (
	"bytes"
	"encoding/json"
)

// RecordType identifies the flavor of a search record.
type RecordType string

// Search record types.
const (
	RecordClass  RecordType = "class"
	RecordModule RecordType = "module"
	RecordMethod RecordType = "method"
)

// SearchRecord is one entry of the client-side search index. Class and
// module records use FullName and Path; method records use OwningFullName,
// MethodName, Summary, and AnchorURL. The index is flat by design: the
// browser matcher scans a single linear candidate list on every keystroke
// and must not re-flatten a nested structure at query time.
type SearchRecord struct {
	Type RecordType

	// Class/module record fields.
	FullName string
	Path     string

	// Method record fields.
	OwningFullName string
	MethodName     string
	Summary        string
	AnchorURL      string
}

// classRecord and methodRecord pin the two wire shapes.
type classRecord struct {
	Type     RecordType `json:"type"`
	FullName string     `json:"fullName"`
	Path     string     `json:"path"`
}

type methodRecord struct {
	Type           RecordType `json:"type"`
	OwningFullName string     `json:"owningFullName"`
	MethodName     string     `json:"methodName"`
	Summary        string     `json:"summary"`
	AnchorURL      string     `json:"anchorUrl"`
}

// MarshalJSON emits the wire shape matching the record's type.
func (r SearchRecord) MarshalJSON() ([]byte, error) {
	var v any
	if r.Type == RecordMethod {
		v = methodRecord{
			Type:           r.Type,
			OwningFullName: r.OwningFullName,
			MethodName:     r.MethodName,
			Summary:        r.Summary,
			AnchorURL:      r.AnchorURL,
		}
	} else {
		v = classRecord{
			Type:     r.Type,
			FullName: r.FullName,
			Path:     r.Path,
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// SearchIndex is the complete search data set for one build: the flat
// record list plus the acceleration terms the client matcher uses for its
// cheap first pass.
type SearchIndex struct {
	// Records holds one entry per documented class/module and one per
	// documented method, in source traversal order. Ranking happens
	// client-side; the list is not re-sorted.
	Records []SearchRecord

	// Terms holds the lowercased short name for each record, parallel to
	// Records.
	Terms []string
}

// SearchIndexBuilder flattens the class/module collection into the search
// index. Entities without documentation are skipped silently. The result
// is never nil.
type SearchIndexBuilder interface {
	BuildIndex(entities []*Entity) (*SearchIndex, error)
}

// SummaryFormatter reduces a method summary to plain text before it is
// embedded in the search index.
type SummaryFormatter interface {
	Flatten(summary string) string
}
