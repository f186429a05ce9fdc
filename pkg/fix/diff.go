package fix

import (
	"fmt"
	"strings"
)

// Diff represents a unified diff between original and modified content.
type Diff struct {
	// Path is the file path for the diff header.
	Path string

	// Hunks contains the diff hunks.
	Hunks []DiffHunk

	// Additions is the number of lines added.
	Additions int

	// Deletions is the number of lines deleted.
	Deletions int
}

// DiffHunk represents a single hunk in a unified diff.
type DiffHunk struct {
	// OriginalStart is the 1-based line number where the hunk starts in the original.
	OriginalStart int

	// OriginalCount is the number of lines from the original in this hunk.
	OriginalCount int

	// ModifiedStart is the 1-based line number where the hunk starts in the modified.
	ModifiedStart int

	// ModifiedCount is the number of lines from the modified in this hunk.
	ModifiedCount int

	// Lines contains the diff lines in this hunk.
	Lines []DiffLine
}

// DiffLine represents a single line in a diff hunk.
type DiffLine struct {
	// Kind indicates whether this is a context, add, or remove line.
	Kind DiffLineKind

	// Content is the line content (without the diff prefix).
	Content string
}

// DiffLineKind indicates the type of diff line.
type DiffLineKind int

const (
	// DiffLineContext is an unchanged context line.
	DiffLineContext DiffLineKind = iota

	// DiffLineAdd is a line added in the modified version.
	DiffLineAdd

	// DiffLineRemove is a line removed from the original version.
	DiffLineRemove
)

// contextLines is the number of context lines to show around changes.
const contextLines = 3

// GenerateDiff creates a unified diff between original and modified content.
//
// Marker fixes replace bytes in place and never change the line structure,
// so the diff is computed by pairwise line comparison. If the line counts
// differ anyway, the whole file is emitted as a single replacement hunk.
// Returns nil if there are no changes.
func GenerateDiff(path string, original, modified []byte) *Diff {
	origLines := splitLines(original)
	modLines := splitLines(modified)

	var hunks []DiffHunk
	if len(origLines) == len(modLines) {
		hunks = pairwiseHunks(origLines, modLines)
	} else {
		hunks = []DiffHunk{wholeFileHunk(origLines, modLines)}
	}
	if len(hunks) == 0 {
		return nil
	}

	var additions, deletions int
	for _, hunk := range hunks {
		for _, line := range hunk.Lines {
			switch line.Kind {
			case DiffLineAdd:
				additions++
			case DiffLineRemove:
				deletions++
			}
		}
	}

	return &Diff{
		Path:      path,
		Hunks:     hunks,
		Additions: additions,
		Deletions: deletions,
	}
}

// String returns the diff in unified diff format.
func (d *Diff) String() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var builder strings.Builder
	fmt.Fprintf(&builder, "--- a/%s\n", path)
	fmt.Fprintf(&builder, "+++ b/%s\n", path)

	for _, hunk := range d.Hunks {
		fmt.Fprintf(&builder, "@@ -%d,%d +%d,%d @@\n",
			hunk.OriginalStart, hunk.OriginalCount,
			hunk.ModifiedStart, hunk.ModifiedCount)

		for _, line := range hunk.Lines {
			switch line.Kind {
			case DiffLineContext:
				fmt.Fprintf(&builder, " %s\n", line.Content)
			case DiffLineAdd:
				fmt.Fprintf(&builder, "+%s\n", line.Content)
			case DiffLineRemove:
				fmt.Fprintf(&builder, "-%s\n", line.Content)
			}
		}
	}

	return builder.String()
}

// HasChanges returns true if the diff contains any changes.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// splitLines splits content into lines, removing the trailing newline if present.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}

	lines := strings.Split(string(content), "\n")

	// Remove trailing empty string if content ends with newline.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// pairwiseHunks diffs equal-length line slices, grouping nearby changed
// lines into hunks with surrounding context.
func pairwiseHunks(orig, mod []string) []DiffHunk {
	// Collect changed line indices.
	var changed []int
	for i := range orig {
		if orig[i] != mod[i] {
			changed = append(changed, i)
		}
	}
	if len(changed) == 0 {
		return nil
	}

	var hunks []DiffHunk
	groupStart := 0
	for i := 1; i <= len(changed); i++ {
		// Close the group when the gap exceeds twice the context width.
		if i == len(changed) || changed[i]-changed[i-1] > contextLines*2 {
			hunks = append(hunks, buildPairwiseHunk(orig, mod, changed[groupStart], changed[i-1]))
			groupStart = i
		}
	}

	return hunks
}

// buildPairwiseHunk builds one hunk covering changed lines [first, last]
// plus context.
func buildPairwiseHunk(orig, mod []string, first, last int) DiffHunk {
	start := first - contextLines
	if start < 0 {
		start = 0
	}
	end := last + contextLines + 1
	if end > len(orig) {
		end = len(orig)
	}

	hunk := DiffHunk{
		OriginalStart: start + 1,
		ModifiedStart: start + 1,
	}

	for i := start; i < end; i++ {
		if orig[i] == mod[i] {
			hunk.Lines = append(hunk.Lines, DiffLine{Kind: DiffLineContext, Content: orig[i]})
			hunk.OriginalCount++
			hunk.ModifiedCount++
			continue
		}
		hunk.Lines = append(hunk.Lines, DiffLine{Kind: DiffLineRemove, Content: orig[i]})
		hunk.Lines = append(hunk.Lines, DiffLine{Kind: DiffLineAdd, Content: mod[i]})
		hunk.OriginalCount++
		hunk.ModifiedCount++
	}

	return hunk
}

// wholeFileHunk emits all original lines as removals followed by all
// modified lines as additions.
func wholeFileHunk(orig, mod []string) DiffHunk {
	hunk := DiffHunk{
		OriginalStart: 1,
		OriginalCount: len(orig),
		ModifiedStart: 1,
		ModifiedCount: len(mod),
	}
	for _, line := range orig {
		hunk.Lines = append(hunk.Lines, DiffLine{Kind: DiffLineRemove, Content: line})
	}
	for _, line := range mod {
		hunk.Lines = append(hunk.Lines, DiffLine{Kind: DiffLineAdd, Content: line})
	}
	return hunk
}
