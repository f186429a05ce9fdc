package fix

// ApplyEdits applies a sorted, validated slice of edits to content.
// Edits must be prepared with PrepareEdits or PrepareEditsFiltered first.
// The input is never modified; a fresh buffer is returned.
//
// Marker fixes swap one byte for one byte, so the common batch keeps the
// content length. Such batches are patched onto a single copy of the
// input; only length-changing edits take the splice path.
func ApplyEdits(content []byte, edits []TextEdit) []byte {
	if len(edits) == 0 {
		return content
	}

	if lengthPreserving(edits) {
		out := make([]byte, len(content))
		copy(out, content)
		for _, e := range edits {
			copy(out[e.StartOffset:e.EndOffset], e.NewText)
		}
		return out
	}

	out := make([]byte, 0, len(content)+sizeDelta(edits))
	cursor := 0
	for _, e := range edits {
		out = append(out, content[cursor:e.StartOffset]...)
		out = append(out, e.NewText...)
		cursor = e.EndOffset
	}
	return append(out, content[cursor:]...)
}

// lengthPreserving reports whether every edit replaces its range with text
// of the same length.
func lengthPreserving(edits []TextEdit) bool {
	for _, e := range edits {
		if len(e.NewText) != e.EndOffset-e.StartOffset {
			return false
		}
	}
	return true
}

// sizeDelta is the net length change the edits produce.
func sizeDelta(edits []TextEdit) int {
	delta := 0
	for _, e := range edits {
		delta += len(e.NewText) - (e.EndOffset - e.StartOffset)
	}
	return delta
}
