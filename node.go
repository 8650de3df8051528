package docsite

import (
	"bytes"
	"encoding/json"
)

// NodeKind tags the meaning of a tree node's third wire slot, which is
// overloaded in the legacy array format: an inheritance suffix on class
// nodes, a group label on synthetic group nodes.
type NodeKind int

// Tree node kinds.
const (
	// ClassNode is a class, module, or file leaf. The third wire slot
	// carries the inheritance suffix (classes only, e.g. " < Base").
	ClassNode NodeKind = iota

	// GroupNode is a synthetic grouping with no page of its own: a
	// directory segment or the files root. The third wire slot carries
	// the group label.
	GroupNode
)

// TreeNode is one node of the navigation tree. The navigation panel
// consumes the tree as nested 4-element arrays
//
//	[name, path, suffixOrLabel, children]
//
// which MarshalJSON produces; internally the third slot's two meanings are
// kept apart by Kind.
type TreeNode struct {
	Kind NodeKind

	// Name is the displayed identifier. Empty on group nodes, whose
	// display text travels in Label instead.
	Name string

	// Path is the node's output URL, empty when the node has no page of
	// its own (group nodes, and entities with only documented descendants).
	Path string

	// Suffix is the inheritance suffix on ClassNode, e.g. " < Base".
	Suffix string

	// Label is the group label on GroupNode.
	Label string

	Children []*TreeNode
}

// MarshalJSON flattens the node to the legacy 4-element array shape.
// Children serialize as an empty array, never null, and angle brackets in
// the inheritance suffix are not HTML-escaped: the artifact is loaded as
// script, not markup.
func (n *TreeNode) MarshalJSON() ([]byte, error) {
	third := n.Suffix
	if n.Kind == GroupNode {
		third = n.Label
	}
	children := n.Children
	if children == nil {
		children = []*TreeNode{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode([]any{n.Name, n.Path, third, children}); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// NavTreeBuilder builds the combined navigation tree from the class/module
// entities and the file entities of one build. The returned forest starts
// with the synthetic files group when one was built, followed by the
// top-level classes and modules. The result is never nil.
type NavTreeBuilder interface {
	BuildTree(classes, files []*Entity) ([]*TreeNode, error)
}
