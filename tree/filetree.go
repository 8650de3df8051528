package tree

import (
	"sort"
	"strings"

	"github.com/awalczuk/docsite"
)

// fileNode is one segment of the path trie built from file entities. A
// leaf carries the file's output URL; an interior node only has children.
type fileNode struct {
	url      string
	children map[string]*fileNode
}

// buildFileTree builds the synthetic files group from the file entities'
// relative paths. A single-file project gets no files group at all, so it
// returns nil unless more than one file exists.
func buildFileTree(files []*docsite.Entity) *docsite.TreeNode {
	if len(files) < 2 {
		return nil
	}

	root := &fileNode{children: map[string]*fileNode{}}
	for _, f := range files {
		insertPath(root, strings.Split(f.FullName, "/"), f.Path)
	}

	return &docsite.TreeNode{
		Kind:     docsite.GroupNode,
		Label:    FilesLabel,
		Children: convertTrie(root),
	}
}

func insertPath(n *fileNode, segments []string, url string) {
	if len(segments) == 0 {
		n.url = url
		return
	}
	child := n.children[segments[0]]
	if child == nil {
		child = &fileNode{children: map[string]*fileNode{}}
		n.children[segments[0]] = child
	}
	insertPath(child, segments[1:], url)
}

// convertTrie flattens a trie level into tree nodes: leaf segments become
// file leaves, interior segments become labeled groups. Siblings order
// lexically by segment name; this sort domain is independent of the class
// tree's.
func convertTrie(n *fileNode) []*docsite.TreeNode {
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)

	nodes := make([]*docsite.TreeNode, 0, len(names))
	for _, name := range names {
		child := n.children[name]
		if len(child.children) == 0 {
			nodes = append(nodes, &docsite.TreeNode{
				Kind: docsite.ClassNode,
				Name: name,
				Path: child.url,
			})
			continue
		}
		nodes = append(nodes, &docsite.TreeNode{
			Kind:     docsite.GroupNode,
			Label:    name,
			Children: convertTrie(child),
		})
	}
	return nodes
}
