package fix

import (
	"fmt"
	"sort"
)

// ValidationError describes an invalid edit.
type ValidationError struct {
	Edit    TextEdit
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.StartOffset, e.Edit.EndOffset, e.Message)
}

// ConflictError describes overlapping edits.
type ConflictError struct {
	Edit1 TextEdit
	Edit2 TextEdit
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("overlapping edits: [%d:%d] and [%d:%d]",
		e.Edit1.StartOffset, e.Edit1.EndOffset,
		e.Edit2.StartOffset, e.Edit2.EndOffset)
}

// ValidateEdits checks that all edits have valid ranges for the given content length.
// Returns nil if all edits are valid, or the first validation error encountered.
func ValidateEdits(edits []TextEdit, contentLen int) error {
	for _, edit := range edits {
		if edit.StartOffset < 0 {
			return &ValidationError{Edit: edit, Message: "start offset is negative"}
		}
		if edit.EndOffset < edit.StartOffset {
			return &ValidationError{Edit: edit, Message: "end offset is before start offset"}
		}
		if edit.EndOffset > contentLen {
			return &ValidationError{
				Edit:    edit,
				Message: fmt.Sprintf("end offset %d exceeds content length %d", edit.EndOffset, contentLen),
			}
		}
	}
	return nil
}

// SortEdits sorts edits by start offset, then by end offset.
// This produces a deterministic order for edit application.
func SortEdits(edits []TextEdit) {
	sort.Slice(edits, func(i, j int) bool {
		if edits[i].StartOffset != edits[j].StartOffset {
			return edits[i].StartOffset < edits[j].StartOffset
		}
		return edits[i].EndOffset < edits[j].EndOffset
	})
}

// DetectConflicts checks for overlapping edits in a sorted slice.
// Returns nil if no conflicts, or the first conflict found.
// Edits must be sorted by SortEdits before calling.
func DetectConflicts(edits []TextEdit) error {
	for i := 1; i < len(edits); i++ {
		prev := edits[i-1]
		curr := edits[i]
		// Overlap if current starts before previous ends.
		if curr.StartOffset < prev.EndOffset {
			return &ConflictError{Edit1: prev, Edit2: curr}
		}
	}
	return nil
}

// PrepareEdits validates, sorts, and checks for conflicts.
// Returns the sorted edits and any error encountered.
func PrepareEdits(edits []TextEdit, contentLen int) ([]TextEdit, error) {
	if len(edits) == 0 {
		return edits, nil
	}

	if err := ValidateEdits(edits, contentLen); err != nil {
		return nil, err
	}

	result := make([]TextEdit, len(edits))
	copy(result, edits)
	SortEdits(result)

	if err := DetectConflicts(result); err != nil {
		return nil, err
	}

	return result, nil
}

// FilterConflicts filters out overlapping edits from a sorted slice.
// Returns the non-conflicting edits (accepted) and the conflicting edits (skipped).
// Edits must be sorted by SortEdits before calling.
// Uses a greedy algorithm: earlier edits (by start position) take precedence.
func FilterConflicts(edits []TextEdit) ([]TextEdit, []TextEdit) {
	if len(edits) == 0 {
		return nil, nil
	}

	accepted := make([]TextEdit, 0, len(edits))
	skipped := make([]TextEdit, 0)

	accepted = append(accepted, edits[0])
	lastAcceptedEnd := edits[0].EndOffset

	for i := 1; i < len(edits); i++ {
		edit := edits[i]
		if edit.StartOffset >= lastAcceptedEnd {
			accepted = append(accepted, edit)
			lastAcceptedEnd = edit.EndOffset
		} else {
			skipped = append(skipped, edit)
		}
	}

	return accepted, skipped
}

// PrepareEditsFiltered validates, sorts, and filters conflicting edits.
// Unlike PrepareEdits, it does not error on conflicts - later overlapping
// edits are dropped and reported as skipped.
// Returns (accepted edits, skipped edits, error).
// Error only for validation failures.
func PrepareEditsFiltered(edits []TextEdit, contentLen int) ([]TextEdit, []TextEdit, error) {
	if len(edits) == 0 {
		return nil, nil, nil
	}

	if err := ValidateEdits(edits, contentLen); err != nil {
		return nil, nil, err
	}

	sorted := make([]TextEdit, len(edits))
	copy(sorted, edits)
	SortEdits(sorted)

	accepted, skipped := FilterConflicts(sorted)
	return accepted, skipped, nil
}
