package outline

import (
	"testing"
)

const doc = "# 1 Intro\n\nSome text.\n\n## 1.a Background\n\n```\n# not a heading\n```\n\n### 1.a.i Details\n\nSetext\n======\n\n> # quoted\n"

func TestExtract(t *testing.T) {
	entries := Extract([]byte(doc))

	want := []Entry{
		{Level: 1, Title: "1 Intro", Line: 1},
		{Level: 2, Title: "1.a Background", Line: 5},
		{Level: 3, Title: "1.a.i Details", Line: 11},
		{Level: 1, Title: "Setext", Line: 13},
	}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d: %+v", len(want), len(entries), entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestExtract_Empty(t *testing.T) {
	if got := Extract([]byte("just text\n")); len(got) != 0 {
		t.Errorf("expected no entries, got %+v", got)
	}
	if got := Extract(nil); len(got) != 0 {
		t.Errorf("expected no entries for nil input, got %+v", got)
	}
}

func TestBuild(t *testing.T) {
	entries := []Entry{
		{Level: 1, Title: "A", Line: 1},
		{Level: 2, Title: "A.1", Line: 2},
		{Level: 4, Title: "A.1.x", Line: 3},
		{Level: 2, Title: "A.2", Line: 4},
		{Level: 1, Title: "B", Line: 5},
	}

	tree := Build(entries)
	if len(tree) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(tree))
	}
	a := tree[0]
	if a.Title != "A" || len(a.Children) != 2 {
		t.Fatalf("unexpected first root %+v", a)
	}
	if a.Children[0].Title != "A.1" || a.Children[1].Title != "A.2" {
		t.Errorf("unexpected children %q, %q", a.Children[0].Title, a.Children[1].Title)
	}
	if len(a.Children[0].Children) != 1 || a.Children[0].Children[0].Title != "A.1.x" {
		t.Errorf("skipped level not nested under A.1: %+v", a.Children[0].Children)
	}
	if len(tree[1].Children) != 0 {
		t.Errorf("B should have no children, got %+v", tree[1].Children)
	}
}
