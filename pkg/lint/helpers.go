package lint

import (
	"github.com/okralabs/bulletlint/pkg/mdast"
)

// Node query helpers.

// Lists returns all list nodes in the document.
func Lists(root *mdast.Node) []*mdast.Node {
	return mdast.FindByKind(root, mdast.NodeList)
}

// ListItems returns all list item nodes in the document, in document order.
func ListItems(root *mdast.Node) []*mdast.Node {
	return mdast.FindByKind(root, mdast.NodeListItem)
}

// CodeBlocks returns all code block nodes in the document.
func CodeBlocks(root *mdast.Node) []*mdast.Node {
	return mdast.FindByKind(root, mdast.NodeCodeBlock)
}

// Node accessor helpers.

// IsOrderedList returns true if the node is an ordered list.
func IsOrderedList(n *mdast.Node) bool {
	return n != nil && n.IsOrderedList()
}

// ListMarker returns the marker string for a list node, or empty string.
func ListMarker(n *mdast.Node) string {
	if n == nil || n.Kind != mdast.NodeList || n.List == nil {
		return ""
	}
	return n.List.Marker
}

// ItemList returns the parent list node for a list item, or nil.
func ItemList(item *mdast.Node) *mdast.Node {
	if item == nil || item.Kind != mdast.NodeListItem {
		return nil
	}
	if p := item.Parent; p != nil && p.Kind == mdast.NodeList {
		return p
	}
	return nil
}

// ListDepth returns the nesting depth of a list node.
//
// Depth counts only unordered list ancestors: a top-level list has depth 0,
// a list nested in one unordered list has depth 1, and so on. Ordered lists
// and non-list containers (blockquotes, items) neither count toward the
// depth nor stop the ancestor walk.
func ListDepth(list *mdast.Node) int {
	if list == nil {
		return 0
	}

	depth := 0
	for parent := list.Parent; parent != nil; parent = parent.Parent {
		if parent.IsUnorderedList() {
			depth++
		}
	}
	return depth
}

// Line-based helpers.

// LineContent returns the content of the specified 1-based line number.
// Returns nil if the line number is out of range.
func LineContent(file *mdast.FileSnapshot, lineNum int) []byte {
	if file == nil {
		return nil
	}
	return file.LineContent(lineNum)
}
