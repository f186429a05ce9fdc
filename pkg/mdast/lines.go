package mdast

import (
	"bytes"
	"sort"
)

// BuildLines constructs line metadata from file content. Both LF and CRLF
// endings are handled; NewlineStart marks where the ending begins so line
// text can be sliced without it. Content ending in a newline gets a final
// empty line entry, matching how editors number such files.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	lines := make([]LineInfo, 0, bytes.Count(content, []byte{'\n'})+1)

	start := 0
	for {
		rel := bytes.IndexByte(content[start:], '\n')
		if rel < 0 {
			lines = append(lines, LineInfo{
				StartOffset:  start,
				NewlineStart: len(content),
				EndOffset:    len(content),
			})
			return lines
		}

		nl := start + rel
		newlineStart := nl
		if nl > 0 && content[nl-1] == '\r' {
			newlineStart = nl - 1
		}

		lines = append(lines, LineInfo{
			StartOffset:  start,
			NewlineStart: newlineStart,
			EndOffset:    nl + 1,
		})
		start = nl + 1
	}
}

// LineCount returns the number of lines in the file.
func (f *FileSnapshot) LineCount() int {
	return len(f.Lines)
}

// LineAt converts a byte offset to 1-based line and column numbers.
// Column counts bytes, not runes. Offsets at or past the end of content
// map onto the last line. Returns (0, 0) for negative offsets.
func (f *FileSnapshot) LineAt(offset int) (int, int) {
	if offset < 0 || len(f.Lines) == 0 {
		return 0, 0
	}

	if offset >= len(f.Content) {
		last := f.Lines[len(f.Lines)-1]
		return len(f.Lines), offset - last.StartOffset + 1
	}

	// Lines are contiguous: the owning line is the one before the first
	// line that starts past the offset.
	idx := sort.Search(len(f.Lines), func(i int) bool {
		return f.Lines[i].StartOffset > offset
	}) - 1
	if idx < 0 {
		return 0, 0
	}

	return idx + 1, offset - f.Lines[idx].StartOffset + 1
}

// Offset converts 1-based line and column numbers to a byte offset.
// The column may point one past the end of the line. Returns (0, false)
// when the position is out of range.
func (f *FileSnapshot) Offset(line, col int) (int, bool) {
	if line < 1 || line > len(f.Lines) || col < 1 {
		return 0, false
	}

	info := f.Lines[line-1]
	offset := info.StartOffset + col - 1
	if offset > info.EndOffset {
		return 0, false
	}

	return offset, true
}

// LineContent returns the text of a 1-based line number without its line
// ending, or nil when the line number is out of range.
func (f *FileSnapshot) LineContent(line int) []byte {
	if line < 1 || line > len(f.Lines) {
		return nil
	}

	info := f.Lines[line-1]
	return f.Content[info.StartOffset:info.NewlineStart]
}
