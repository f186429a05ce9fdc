package mdast_test

import (
	"errors"
	"testing"

	"github.com/okralabs/bulletlint/pkg/mdast"
)

// buildListTree constructs a document containing one unordered list with two
// items, each holding a paragraph.
func buildListTree() *mdast.Node {
	doc := mdast.NewDocument()

	list := mdast.NewNode(mdast.NodeList)
	list.List = &mdast.ListAttrs{Marker: "-"}
	mdast.AppendChild(doc, list)

	for i := 0; i < 2; i++ {
		item := mdast.NewNode(mdast.NodeListItem)
		mdast.AppendChild(list, item)

		para := mdast.NewNode(mdast.NodeParagraph)
		mdast.AppendChild(item, para)
	}

	return doc
}

func TestWalk_PreOrder(t *testing.T) {
	t.Parallel()

	doc := buildListTree()

	var kinds []mdast.NodeKind
	err := mdast.Walk(doc, func(n *mdast.Node) error {
		kinds = append(kinds, n.Kind)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []mdast.NodeKind{
		mdast.NodeDocument,
		mdast.NodeList,
		mdast.NodeListItem,
		mdast.NodeParagraph,
		mdast.NodeListItem,
		mdast.NodeParagraph,
	}
	if len(kinds) != len(expected) {
		t.Fatalf("expected %d nodes, got %d", len(expected), len(kinds))
	}
	for i, kind := range expected {
		if kinds[i] != kind {
			t.Errorf("node %d: expected %v, got %v", i, kind, kinds[i])
		}
	}
}

func TestWalk_StopsOnError(t *testing.T) {
	t.Parallel()

	doc := buildListTree()
	sentinel := errors.New("stop")

	visited := 0
	err := mdast.Walk(doc, func(n *mdast.Node) error {
		visited++
		if n.Kind == mdast.NodeList {
			return sentinel
		}
		return nil
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}
	if visited != 2 {
		t.Errorf("expected 2 visits before stop, got %d", visited)
	}
}

func TestWalk_NilRoot(t *testing.T) {
	t.Parallel()

	err := mdast.Walk(nil, func(n *mdast.Node) error {
		t.Fatal("callback should not be called for nil root")
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFindByKind(t *testing.T) {
	t.Parallel()

	doc := buildListTree()

	items := mdast.FindByKind(doc, mdast.NodeListItem)
	if len(items) != 2 {
		t.Fatalf("expected 2 list items, got %d", len(items))
	}

	headings := mdast.FindByKind(doc, mdast.NodeHeading)
	if len(headings) != 0 {
		t.Errorf("expected no headings, got %d", len(headings))
	}
}

func TestFindFirst(t *testing.T) {
	t.Parallel()

	doc := buildListTree()

	first := mdast.FindFirst(doc, func(n *mdast.Node) bool {
		return n.Kind == mdast.NodeListItem
	})
	if first == nil {
		t.Fatal("expected to find a list item")
	}
	if first != doc.FirstChild.FirstChild {
		t.Error("expected the first list item in document order")
	}

	missing := mdast.FindFirst(doc, func(n *mdast.Node) bool {
		return n.Kind == mdast.NodeCodeBlock
	})
	if missing != nil {
		t.Error("expected nil for absent kind")
	}
}

func TestAppendChild_Links(t *testing.T) {
	t.Parallel()

	parent := mdast.NewNode(mdast.NodeList)
	first := mdast.NewNode(mdast.NodeListItem)
	second := mdast.NewNode(mdast.NodeListItem)

	mdast.AppendChild(parent, first)
	mdast.AppendChild(parent, second)

	if parent.FirstChild != first || parent.LastChild != second {
		t.Fatal("parent child pointers incorrect")
	}
	if first.Next != second || second.Prev != first {
		t.Fatal("sibling pointers incorrect")
	}
	if first.Parent != parent || second.Parent != parent {
		t.Fatal("parent back-pointers incorrect")
	}
	if parent.ChildCount() != 2 {
		t.Fatalf("expected 2 children, got %d", parent.ChildCount())
	}
}

func TestRemoveChild(t *testing.T) {
	t.Parallel()

	parent := mdast.NewNode(mdast.NodeList)
	first := mdast.NewNode(mdast.NodeListItem)
	second := mdast.NewNode(mdast.NodeListItem)
	mdast.AppendChild(parent, first)
	mdast.AppendChild(parent, second)

	mdast.RemoveChild(parent, first)

	if parent.FirstChild != second || parent.LastChild != second {
		t.Fatal("parent pointers not updated after removal")
	}
	if first.Parent != nil || first.Next != nil || first.Prev != nil {
		t.Fatal("removed child pointers not cleared")
	}
}

func TestNewNode_Defaults(t *testing.T) {
	t.Parallel()

	node := mdast.NewNode(mdast.NodeListItem)

	if node.Span.IsValid() {
		t.Error("new node should have an invalid span")
	}
	if node.MarkerOffset != -1 {
		t.Errorf("expected marker offset -1, got %d", node.MarkerOffset)
	}
}

func TestSetFile(t *testing.T) {
	t.Parallel()

	doc := buildListTree()
	snapshot := mdast.NewFileSnapshot("test.md", []byte("- a\n- b\n"))

	mdast.SetFile(doc, snapshot)

	err := mdast.Walk(doc, func(n *mdast.Node) error {
		if n.File != snapshot {
			t.Errorf("node %v missing file reference", n.Kind)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNode_ListPredicates(t *testing.T) {
	t.Parallel()

	unordered := mdast.NewNode(mdast.NodeList)
	unordered.List = &mdast.ListAttrs{Marker: "*"}

	ordered := mdast.NewNode(mdast.NodeList)
	ordered.List = &mdast.ListAttrs{Ordered: true, Marker: ".", StartNumber: 1}

	if !unordered.IsUnorderedList() || unordered.IsOrderedList() {
		t.Error("unordered list misclassified")
	}
	if !ordered.IsOrderedList() || ordered.IsUnorderedList() {
		t.Error("ordered list misclassified")
	}

	para := mdast.NewNode(mdast.NodeParagraph)
	if para.IsOrderedList() || para.IsUnorderedList() {
		t.Error("paragraph misclassified as list")
	}
}
