package goldmark

import (
	"context"
	"testing"

	"github.com/okralabs/bulletlint/pkg/mdast"
)

func TestParser_New(t *testing.T) {
	tests := []struct {
		name       string
		flavor     string
		wantFlavor string
	}{
		{"commonmark", FlavorCommonMark, FlavorCommonMark},
		{"gfm", FlavorGFM, FlavorGFM},
		{"invalid defaults to commonmark", "invalid", FlavorCommonMark},
		{"empty defaults to commonmark", "", FlavorCommonMark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.flavor)

			if p.Flavor() != tt.wantFlavor {
				t.Errorf("Flavor() = %q, want %q", p.Flavor(), tt.wantFlavor)
			}
		})
	}
}

func TestParser_Parse_Basic(t *testing.T) {
	parser := New(FlavorCommonMark)
	ctx := context.Background()

	content := []byte("# Hello\n\n- World")
	snapshot, err := parser.Parse(ctx, "test.md", content)

	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if snapshot == nil {
		t.Fatal("expected non-nil snapshot")
	}

	// Check path.
	if snapshot.Path != "test.md" {
		t.Errorf("Path = %q, want %q", snapshot.Path, "test.md")
	}

	// Check content is copied.
	if string(snapshot.Content) != string(content) {
		t.Errorf("Content mismatch")
	}

	// Verify content is a copy, not the same slice.
	if &snapshot.Content[0] == &content[0] {
		t.Error("Content should be a copy, not the same slice")
	}

	// Check lines.
	if len(snapshot.Lines) == 0 {
		t.Error("expected Lines to be populated")
	}

	// Check root.
	if snapshot.Root == nil {
		t.Fatal("expected Root to be non-nil")
	}

	if snapshot.Root.Kind != mdast.NodeDocument {
		t.Errorf("Root.Kind = %v, want NodeDocument", snapshot.Root.Kind)
	}

	// Check file back-references.
	err = mdast.Walk(snapshot.Root, func(n *mdast.Node) error {
		if n.File != snapshot {
			t.Errorf("node %v has incorrect File reference", n.Kind)
		}
		return nil
	})
	if err != nil {
		t.Errorf("Walk error: %v", err)
	}
}

func TestParser_Parse_Empty(t *testing.T) {
	parser := New(FlavorCommonMark)

	snapshot, err := parser.Parse(context.Background(), "empty.md", []byte(""))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if snapshot.Root == nil {
		t.Fatal("expected Root for empty content")
	}
	if snapshot.Root.HasChildren() {
		t.Error("expected no children for empty content")
	}
}

func TestParser_Parse_Cancelled(t *testing.T) {
	parser := New(FlavorCommonMark)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := parser.Parse(ctx, "test.md", []byte("- a\n"))
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestParser_Parse_ListMarkerOffsets(t *testing.T) {
	tests := []struct {
		name    string
		content string
		offsets []int
	}{
		{
			name:    "top-level dash list",
			content: "- a\n- b\n- c\n",
			offsets: []int{0, 4, 8},
		},
		{
			name:    "mixed markers split into separate lists",
			content: "- a\n* b\n+ c\n",
			offsets: []int{0, 4, 8},
		},
		{
			name:    "nested list",
			content: "* a\n  * b\n    * c\n",
			offsets: []int{0, 6, 14},
		},
		{
			name:    "extra spaces after marker",
			content: "-   a\n-   b\n",
			offsets: []int{0, 6},
		},
		{
			name:    "ordered list numbers",
			content: "1. a\n2. b\n",
			offsets: []int{0, 5},
		},
		{
			name:    "list inside blockquote",
			content: "> - a\n> - b\n",
			offsets: []int{2, 8},
		},
		{
			name:    "empty item between siblings",
			content: "- a\n-\n- b\n",
			offsets: []int{0, 4, 6},
		},
		{
			name:    "lone marker",
			content: "-\n",
			offsets: []int{0},
		},
		{
			name:    "consecutive lone markers",
			content: "-\n-\n",
			offsets: []int{0, 2},
		},
		{
			name:    "content on line after marker",
			content: "-\n  deferred\n",
			offsets: []int{0},
		},
	}

	parser := New(FlavorCommonMark)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot, err := parser.Parse(context.Background(), "test.md", []byte(tt.content))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			items := mdast.FindByKind(snapshot.Root, mdast.NodeListItem)
			if len(items) != len(tt.offsets) {
				t.Fatalf("expected %d list items, got %d", len(tt.offsets), len(items))
			}

			for i, item := range items {
				if item.MarkerOffset != tt.offsets[i] {
					t.Errorf("item %d: MarkerOffset = %d, want %d",
						i, item.MarkerOffset, tt.offsets[i])
				}
				if item.MarkerOffset >= 0 && !item.Span.Contains(item.MarkerOffset) {
					t.Errorf("item %d: span %+v does not cover marker offset %d",
						i, item.Span, item.MarkerOffset)
				}
			}
		})
	}
}

func TestParser_Parse_ListAttrs(t *testing.T) {
	parser := New(FlavorCommonMark)

	snapshot, err := parser.Parse(context.Background(), "test.md", []byte("* a\n* b\n\n1. x\n2. y\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	lists := mdast.FindByKind(snapshot.Root, mdast.NodeList)
	if len(lists) != 2 {
		t.Fatalf("expected 2 lists, got %d", len(lists))
	}

	bullet := lists[0]
	if !bullet.IsUnorderedList() {
		t.Error("first list should be unordered")
	}
	if bullet.List.Marker != "*" {
		t.Errorf("bullet marker = %q, want %q", bullet.List.Marker, "*")
	}

	ordered := lists[1]
	if !ordered.IsOrderedList() {
		t.Error("second list should be ordered")
	}
	if ordered.List.StartNumber != 1 {
		t.Errorf("start number = %d, want 1", ordered.List.StartNumber)
	}
}

func TestParser_Parse_SeparateListsPerMarker(t *testing.T) {
	// CommonMark starts a new list when the bullet character changes.
	parser := New(FlavorCommonMark)

	snapshot, err := parser.Parse(context.Background(), "test.md", []byte("- a\n* b\n+ c\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	lists := mdast.FindByKind(snapshot.Root, mdast.NodeList)
	if len(lists) != 3 {
		t.Fatalf("expected 3 lists, got %d", len(lists))
	}

	wantMarkers := []string{"-", "*", "+"}
	for i, list := range lists {
		if list.List.Marker != wantMarkers[i] {
			t.Errorf("list %d: marker = %q, want %q", i, list.List.Marker, wantMarkers[i])
		}
	}
}

func TestParser_Parse_CodeBlockListNotParsed(t *testing.T) {
	parser := New(FlavorCommonMark)

	content := "```\n- not a list\n```\n"
	snapshot, err := parser.Parse(context.Background(), "test.md", []byte(content))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if items := mdast.FindByKind(snapshot.Root, mdast.NodeListItem); len(items) != 0 {
		t.Errorf("expected no list items inside code block, got %d", len(items))
	}
	if blocks := mdast.FindByKind(snapshot.Root, mdast.NodeCodeBlock); len(blocks) != 1 {
		t.Errorf("expected 1 code block, got %d", len(blocks))
	}
}

func TestParser_Parse_CRLF(t *testing.T) {
	parser := New(FlavorCommonMark)

	snapshot, err := parser.Parse(context.Background(), "test.md", []byte("- a\r\n- b\r\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	items := mdast.FindByKind(snapshot.Root, mdast.NodeListItem)
	if len(items) != 2 {
		t.Fatalf("expected 2 list items, got %d", len(items))
	}
	if items[0].MarkerOffset != 0 {
		t.Errorf("first marker offset = %d, want 0", items[0].MarkerOffset)
	}
	if items[1].MarkerOffset != 5 {
		t.Errorf("second marker offset = %d, want 5", items[1].MarkerOffset)
	}
}

func TestResolveMarkerOffset_NoMarker(t *testing.T) {
	snapshot := mdast.NewFileSnapshot("test.md", []byte("plain text\n"))
	m := newMapper(snapshot)

	// Content start at the line start has nothing to the left.
	if got := m.resolveMarkerOffset(0); got != -1 {
		t.Errorf("resolveMarkerOffset(0) = %d, want -1", got)
	}

	// Backward scan must not cross the line boundary.
	snapshot = mdast.NewFileSnapshot("test.md", []byte("- a\n  x\n"))
	m = newMapper(snapshot)
	if got := m.resolveMarkerOffset(6); got != -1 {
		t.Errorf("resolveMarkerOffset(6) = %d, want -1", got)
	}
}
