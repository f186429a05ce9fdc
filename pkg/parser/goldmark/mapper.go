package goldmark

import (
	"github.com/okralabs/bulletlint/pkg/mdast"
	"github.com/yuin/goldmark/ast"
)

// mapper converts a goldmark AST into a block-level mdast.Node tree.
// Inline content is not materialised; block nodes carry byte spans into
// the source instead.
type mapper struct {
	snapshot *mdast.FileSnapshot
}

// newMapper creates a new mapper for the given snapshot.
func newMapper(snapshot *mdast.FileSnapshot) *mapper {
	return &mapper{snapshot: snapshot}
}

// mapDocument converts a goldmark document node to an mdast.Node tree.
func (m *mapper) mapDocument(gmDoc ast.Node) *mdast.Node {
	doc := mdast.NewDocument()
	m.mapChildren(gmDoc, doc)
	doc.Span = unionChildSpans(doc)
	m.resolveBareMarkers(doc)
	return doc
}

// mapChildren recursively maps all block children of a goldmark node.
func (m *mapper) mapChildren(gmParent ast.Node, parent *mdast.Node) {
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		if child.Type() == ast.TypeInline {
			continue
		}
		if mdNode := m.mapNode(child); mdNode != nil {
			mdast.AppendChild(parent, mdNode)
		}
	}
}

// mapNode converts a single goldmark block node to an mdast.Node.
func (m *mapper) mapNode(gmNode ast.Node) *mdast.Node {
	var node *mdast.Node

	switch gmn := gmNode.(type) {
	case *ast.Heading:
		node = mdast.NewNode(mdast.NodeHeading)

	case *ast.Paragraph:
		node = mdast.NewNode(mdast.NodeParagraph)

	case *ast.TextBlock:
		node = mdast.NewNode(mdast.NodeParagraph)

	case *ast.List:
		node = m.mapList(gmn)

	case *ast.ListItem:
		node = m.mapListItem(gmn)

	case *ast.Blockquote:
		node = mdast.NewNode(mdast.NodeBlockquote)
		m.mapChildren(gmNode, node)
		node.Span = unionChildSpans(node)

	case *ast.FencedCodeBlock:
		node = mdast.NewNode(mdast.NodeCodeBlock)

	case *ast.CodeBlock:
		node = mdast.NewNode(mdast.NodeCodeBlock)

	case *ast.ThematicBreak:
		node = mdast.NewNode(mdast.NodeThematicBreak)

	case *ast.HTMLBlock:
		node = mdast.NewNode(mdast.NodeHTMLBlock)

	default:
		// Fallback for block content with no dedicated kind.
		node = mdast.NewNode(mdast.NodeRaw)
		m.mapChildren(gmNode, node)
		node.Span = unionChildSpans(node)
	}

	// Leaf blocks take their span straight from goldmark line segments.
	if !node.Span.IsValid() {
		node.Span = lineSpan(gmNode)
	}

	return node
}

// mapList converts a goldmark List to an mdast node.
func (m *mapper) mapList(list *ast.List) *mdast.Node {
	node := mdast.NewNode(mdast.NodeList)

	node.List = &mdast.ListAttrs{
		Ordered:     list.IsOrdered(),
		Marker:      string(list.Marker),
		StartNumber: list.Start,
		Tight:       list.IsTight,
	}

	m.mapChildren(list, node)
	node.Span = unionChildSpans(node)
	return node
}

// mapListItem converts a goldmark ListItem to an mdast node and resolves
// the byte offset of the item's marker character.
func (m *mapper) mapListItem(item *ast.ListItem) *mdast.Node {
	node := mdast.NewNode(mdast.NodeListItem)
	m.mapChildren(item, node)
	node.Span = unionChildSpans(node)

	if node.Span.IsValid() {
		node.MarkerOffset = m.resolveMarkerOffset(node.Span.StartOffset)
	}

	// Widen the span so the item covers its own marker.
	if node.MarkerOffset >= 0 && node.MarkerOffset < node.Span.StartOffset {
		node.Span.StartOffset = node.MarkerOffset
	}

	return node
}

// resolveMarkerOffset scans backward from the item's content start, over
// any spaces or tabs on the same line, to locate the marker character.
// goldmark line segments for list content begin after the marker and its
// trailing spaces, so the marker sits just left of the skipped run.
//
// For ordered items the scan continues over the delimiter and digits to
// the start of the number. Returns -1 when no marker is found on the
// content line, which happens for items whose first content starts on a
// later line; those are picked up by resolveBareMarkers.
func (m *mapper) resolveMarkerOffset(contentStart int) int {
	content := m.snapshot.Content
	pos := contentStart - 1

	// Skip spaces and tabs between marker and content.
	for pos >= 0 && (content[pos] == ' ' || content[pos] == '\t') {
		pos--
	}
	if pos < 0 || content[pos] == '\n' || content[pos] == '\r' {
		return -1
	}

	switch content[pos] {
	case '-', '*', '+':
		return pos
	case '.', ')':
		// Ordered item: back over the digits to the number start.
		end := pos
		for pos > 0 && content[pos-1] >= '0' && content[pos-1] <= '9' {
			pos--
		}
		if pos == end {
			return -1
		}
		return pos
	default:
		return -1
	}
}

// resolveBareMarkers locates markers for items the content back-scan could
// not reach: items with no content at all (a lone marker line) and items
// whose first content starts on a later line. Nodes are visited in document
// order with a cursor at the end of the last positioned node; the marker, if
// present, is the first non-blank byte after the cursor.
func (m *mapper) resolveBareMarkers(doc *mdast.Node) {
	cursor := 0

	var visit func(n *mdast.Node)
	visit = func(n *mdast.Node) {
		if n.Kind == mdast.NodeListItem {
			if n.MarkerOffset < 0 {
				if pos := m.scanMarkerForward(cursor); pos >= 0 {
					n.MarkerOffset = pos
					if !n.Span.IsValid() {
						n.Span = mdast.SourceRange{StartOffset: pos, EndOffset: pos + 1}
					} else if pos < n.Span.StartOffset {
						n.Span.StartOffset = pos
					}
				}
			}
			if n.MarkerOffset >= 0 && n.MarkerOffset+1 > cursor {
				cursor = n.MarkerOffset + 1
			}
		}
		for child := n.FirstChild; child != nil; child = child.Next {
			visit(child)
		}
		if !n.HasChildren() && n.Span.IsValid() && n.Span.EndOffset > cursor {
			cursor = n.Span.EndOffset
		}
	}
	visit(doc)
}

// scanMarkerForward returns the offset of the list marker at the first
// non-blank byte at or after start, or -1 when that byte does not form a
// marker. A marker byte only counts when followed by a blank or the end of
// input, so text that merely starts with '-' is not misread as a bullet.
func (m *mapper) scanMarkerForward(start int) int {
	content := m.snapshot.Content

	pos := start
	for pos < len(content) && isMarkerBlank(content[pos]) {
		pos++
	}
	if pos >= len(content) {
		return -1
	}

	switch c := content[pos]; {
	case c == '-' || c == '*' || c == '+':
		if pos+1 == len(content) || isMarkerBlank(content[pos+1]) {
			return pos
		}
		return -1
	case c >= '0' && c <= '9':
		// Ordered item: the number start is the marker offset.
		num := pos
		for pos < len(content) && content[pos] >= '0' && content[pos] <= '9' {
			pos++
		}
		if pos < len(content) && (content[pos] == '.' || content[pos] == ')') {
			if pos+1 == len(content) || isMarkerBlank(content[pos+1]) {
				return num
			}
		}
		return -1
	default:
		return -1
	}
}

// isMarkerBlank reports whether c is whitespace that may surround a marker.
func isMarkerBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// lineSpan extracts the byte span of a goldmark block node from its line
// segments. Returns an invalid span when the node has no lines.
func lineSpan(gmNode ast.Node) mdast.SourceRange {
	if gmNode.Type() == ast.TypeInline {
		return mdast.InvalidRange()
	}

	lines := gmNode.Lines()
	if lines.Len() == 0 {
		return mdast.InvalidRange()
	}

	first := lines.At(0)
	last := lines.At(lines.Len() - 1)
	return mdast.SourceRange{StartOffset: first.Start, EndOffset: last.Stop}
}

// unionChildSpans returns the smallest span covering all children of a
// container node. Invalid child spans are skipped.
func unionChildSpans(node *mdast.Node) mdast.SourceRange {
	span := mdast.InvalidRange()
	for child := node.FirstChild; child != nil; child = child.Next {
		span = span.Union(child.Span)
	}
	return span
}
