package domain

import (
	"io"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DefaultListLabel is how a ListMarker segment is shown in a rendered tree
const DefaultListLabel = "[] (List of Objects)"

const (
	branchMid  = "├── "
	branchLast = "└── "
	indentMid  = "│   "
	indentLast = "    "
)

// PathNode is one segment of a PathTree
type PathNode struct {
	Label    string
	children *orderedmap.OrderedMap[string, *PathNode]
}

func newPathNode(label string) *PathNode {
	return &PathNode{
		Label:    label,
		children: orderedmap.New[string, *PathNode](),
	}
}

// Children returns the node's children in insertion order
func (n *PathNode) Children() []*PathNode {
	out := make([]*PathNode, 0, n.children.Len())
	for pair := n.children.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// child returns the child with label, creating it at the end if absent
func (n *PathNode) child(label string) *PathNode {
	if c, ok := n.children.Get(label); ok {
		return c
	}
	c := newPathNode(label)
	n.children.Set(label, c)
	return c
}

// PathTree is the nested view of a Registry used for display
type PathTree struct {
	root *PathNode
}

// BuildPathTree nests paths by segment, keeping the order paths are given in.
// Each ListMarker becomes its own segment displayed as listLabel.
func BuildPathTree(paths []string, listLabel string) *PathTree {
	if listLabel == "" {
		listLabel = DefaultListLabel
	}

	root := newPathNode("")
	for _, path := range paths {
		node := root
		for _, segment := range SplitPath(path) {
			if segment == ListMarker {
				segment = listLabel
			}
			node = node.child(segment)
		}
	}
	return &PathTree{root: root}
}

// SplitPath breaks a path into its segments, isolating each ListMarker.
// "a[].c" yields ["a", "[]", "c"]. Empty segments are kept, so the empty key
// and the root of a top-level list show up as nodes with an empty label.
func SplitPath(path string) []string {
	return strings.Split(strings.ReplaceAll(path, ListMarker, "."+ListMarker), ".")
}

// Roots returns the top level nodes
func (t *PathTree) Roots() []*PathNode {
	return t.root.Children()
}

// Empty reports whether the tree has no nodes
func (t *PathTree) Empty() bool {
	return t.root.children.Len() == 0
}

// String renders the tree with box-drawing connectors, one node per line
func (t *PathTree) String() string {
	var b strings.Builder
	renderNodes(&b, t.root.Children(), "")
	return b.String()
}

// Render writes the rendered tree to w
func (t *PathTree) Render(w io.Writer) error {
	_, err := io.WriteString(w, t.String())
	return err
}

func renderNodes(b *strings.Builder, nodes []*PathNode, prefix string) {
	for i, node := range nodes {
		last := i == len(nodes)-1

		connector, indent := branchMid, indentMid
		if last {
			connector, indent = branchLast, indentLast
		}

		b.WriteString(prefix)
		b.WriteString(connector)
		b.WriteString(node.Label)
		b.WriteString("\n")

		renderNodes(b, node.Children(), prefix+indent)
	}
}
