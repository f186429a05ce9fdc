// Package mdast provides the block-level Markdown AST used by bulletlint.
// Nodes carry byte spans into the source content directly; inline content
// is not materialised because no rule in this tool inspects it.
package mdast

// NodeKind classifies the type of an AST node.
type NodeKind uint8

// Node kinds for the block-level Markdown elements bulletlint cares about.
const (
	NodeDocument NodeKind = iota
	NodeParagraph
	NodeHeading
	NodeList
	NodeListItem
	NodeBlockquote
	NodeCodeBlock
	NodeThematicBreak
	NodeHTMLBlock

	// Fallback for block content with no dedicated kind (e.g. GFM tables).
	NodeRaw
)

// String returns a human-readable name for the node kind.
func (k NodeKind) String() string {
	switch k {
	case NodeDocument:
		return "Document"
	case NodeParagraph:
		return "Paragraph"
	case NodeHeading:
		return "Heading"
	case NodeList:
		return "List"
	case NodeListItem:
		return "ListItem"
	case NodeBlockquote:
		return "Blockquote"
	case NodeCodeBlock:
		return "CodeBlock"
	case NodeThematicBreak:
		return "ThematicBreak"
	case NodeHTMLBlock:
		return "HTMLBlock"
	case NodeRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// ListAttrs holds attributes for list nodes.
type ListAttrs struct {
	// Ordered is true for ordered lists (1., 2., etc.).
	Ordered bool

	// Marker is the bullet character for unordered lists ("-", "+", "*"),
	// or the delimiter ("." or ")") for ordered lists.
	Marker string

	// StartNumber is the starting number for ordered lists.
	StartNumber int

	// Tight is true if the list has no blank lines between items.
	Tight bool
}

// Node represents a single node in the Markdown AST.
// Nodes form a tree with parent/child/sibling relationships.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Tree structure pointers.
	Parent     *Node
	FirstChild *Node
	LastChild  *Node
	Prev       *Node
	Next       *Node

	// Span is the byte range this node covers in the source.
	// Invalid (negative offsets) for synthetic nodes with no source text.
	Span SourceRange

	// MarkerOffset is the byte offset of the list marker character for
	// NodeListItem, or -1 when the parser could not resolve one.
	// Unused (zero) for all other kinds.
	MarkerOffset int

	// List holds list-specific attributes for NodeList.
	List *ListAttrs

	// File is a back-reference to the containing FileSnapshot.
	File *FileSnapshot
}

// HasChildren returns true if this node has any children.
func (n *Node) HasChildren() bool {
	return n.FirstChild != nil
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		count++
	}
	return count
}

// Children returns a slice of all direct children.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.FirstChild; child != nil; child = child.Next {
		children = append(children, child)
	}
	return children
}

// IsOrderedList returns true if this node is an ordered list.
func (n *Node) IsOrderedList() bool {
	return n != nil && n.Kind == NodeList && n.List != nil && n.List.Ordered
}

// IsUnorderedList returns true if this node is an unordered list.
func (n *Node) IsUnorderedList() bool {
	return n != nil && n.Kind == NodeList && n.List != nil && !n.List.Ordered
}
