package mdast

// FileSnapshot is an immutable view of a Markdown file at a specific time.
// It holds the raw content, line metadata, and the AST root.
type FileSnapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// Lines contains metadata for each line in the file.
	Lines []LineInfo

	// Root is the AST root node (Document).
	Root *Node
}

// LineInfo holds metadata for a single line in a file.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// NewFileSnapshot creates a FileSnapshot from content.
// It builds the line index but does not parse (that requires a Parser).
func NewFileSnapshot(path string, content []byte) *FileSnapshot {
	return &FileSnapshot{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
	}
}

// ByteAt returns the byte at the given offset and true, or 0 and false when
// the offset is outside the content.
func (f *FileSnapshot) ByteAt(offset int) (byte, bool) {
	if offset < 0 || offset >= len(f.Content) {
		return 0, false
	}
	return f.Content[offset], true
}
