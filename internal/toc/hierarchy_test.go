package toc

import "testing"

func TestBuildForest_BasicNesting(t *testing.T) {
	flat := []Heading{
		{Level: 1, Text: "A", Line: 1},
		{Level: 2, Text: "B", Line: 2},
		{Level: 1, Text: "C", Line: 3},
	}
	forest := BuildForest(flat)

	if len(forest) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(forest))
	}
	if forest[0].Text != "A" || forest[1].Text != "C" {
		t.Errorf("unexpected roots: %q, %q", forest[0].Text, forest[1].Text)
	}
	if len(forest[0].Children) != 1 || forest[0].Children[0].Text != "B" {
		t.Fatalf("expected B under A, got %+v", forest[0].Children)
	}
	if len(forest[1].Children) != 0 {
		t.Errorf("expected C to have no children")
	}
}

func TestBuildForest_SkippedLevelAdoptsDownward(t *testing.T) {
	flat := []Heading{
		{Level: 1, Text: "A", Line: 1},
		{Level: 3, Text: "B", Line: 2},
	}
	forest := BuildForest(flat)

	if len(forest) != 1 {
		t.Fatalf("expected 1 root, got %d", len(forest))
	}
	// No H2 exists to compete for ancestry, so the H3 nests under the H1.
	if len(forest[0].Children) != 1 || forest[0].Children[0].Text != "B" {
		t.Fatalf("expected B adopted by A despite the level gap, got %+v", forest[0].Children)
	}
	if forest[0].Children[0].Level != 3 {
		t.Errorf("adoption must not rewrite the heading level")
	}
}

func TestBuildForest_DeepDocumentOrder(t *testing.T) {
	flat := []Heading{
		{Level: 2, Text: "first root", Line: 1},
		{Level: 3, Text: "child", Line: 2},
		{Level: 6, Text: "deep", Line: 3},
		{Level: 2, Text: "second root", Line: 4},
		{Level: 4, Text: "under second", Line: 5},
	}
	forest := BuildForest(flat)

	if len(forest) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(forest))
	}
	child := forest[0].Children
	if len(child) != 1 || child[0].Text != "child" {
		t.Fatalf("unexpected children of first root: %+v", child)
	}
	if len(child[0].Children) != 1 || child[0].Children[0].Text != "deep" {
		t.Fatalf("expected deep under child")
	}
	if len(forest[1].Children) != 1 || forest[1].Children[0].Text != "under second" {
		t.Fatalf("expected 'under second' under second root")
	}
}

func TestBuildForest_SiblingRootsMayDiffer(t *testing.T) {
	// A root-level sibling may sit at a different level than the one
	// before it once the deeper ancestor chain closes.
	flat := []Heading{
		{Level: 3, Text: "start deep", Line: 1},
		{Level: 1, Text: "then shallow", Line: 2},
	}
	forest := BuildForest(flat)
	if len(forest) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(forest))
	}
	if forest[0].Level != 3 || forest[1].Level != 1 {
		t.Errorf("unexpected root levels: %d, %d", forest[0].Level, forest[1].Level)
	}
}

func TestBuildForest_Empty(t *testing.T) {
	if forest := BuildForest(nil); len(forest) != 0 {
		t.Errorf("expected empty forest, got %d roots", len(forest))
	}
}
