package mdast

// SourceRange represents a byte range in the source content.
type SourceRange struct {
	// StartOffset is the byte index where the range begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the range ends (exclusive).
	EndOffset int
}

// InvalidRange returns the sentinel range for nodes with no source text.
func InvalidRange() SourceRange {
	return SourceRange{StartOffset: -1, EndOffset: -1}
}

// Len returns the length of the range in bytes.
func (r SourceRange) Len() int {
	return r.EndOffset - r.StartOffset
}

// IsValid returns true if the range has non-negative, ordered offsets.
func (r SourceRange) IsValid() bool {
	return r.StartOffset >= 0 && r.EndOffset >= r.StartOffset
}

// Contains returns true if the given offset is within this range.
func (r SourceRange) Contains(offset int) bool {
	return offset >= r.StartOffset && offset < r.EndOffset
}

// Union returns the smallest range covering both r and other.
// An invalid operand yields the other operand unchanged.
func (r SourceRange) Union(other SourceRange) SourceRange {
	if !r.IsValid() {
		return other
	}
	if !other.IsValid() {
		return r
	}
	out := r
	if other.StartOffset < out.StartOffset {
		out.StartOffset = other.StartOffset
	}
	if other.EndOffset > out.EndOffset {
		out.EndOffset = other.EndOffset
	}
	return out
}

// SourcePosition represents a range in terms of 1-based line/column positions.
type SourcePosition struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// IsValid returns true if both start and end positions are valid.
func (sp SourcePosition) IsValid() bool {
	return sp.StartLine > 0 && sp.StartColumn > 0 &&
		sp.EndLine > 0 && sp.EndColumn > 0
}

// IsSingleLine returns true if start and end are on the same line.
func (sp SourcePosition) IsSingleLine() bool {
	return sp.StartLine == sp.EndLine
}

// SourceRange returns the byte range for this node.
func (n *Node) SourceRange() SourceRange {
	return n.Span
}

// SourcePosition returns the line/column range for this node.
// Returns an invalid position if the node has no associated file or span.
func (n *Node) SourcePosition() SourcePosition {
	if n.File == nil || !n.Span.IsValid() {
		return SourcePosition{}
	}

	startLine, startCol := n.File.LineAt(n.Span.StartOffset)
	endLine, endCol := n.File.LineAt(n.Span.EndOffset)

	return SourcePosition{
		StartLine:   startLine,
		StartColumn: startCol,
		EndLine:     endLine,
		EndColumn:   endCol,
	}
}

// Text returns the source text for this node.
// Returns nil if the node has no associated file or span.
func (n *Node) Text() []byte {
	if n.File == nil || !n.Span.IsValid() || n.Span.EndOffset > len(n.File.Content) {
		return nil
	}
	return n.File.Content[n.Span.StartOffset:n.Span.EndOffset]
}
