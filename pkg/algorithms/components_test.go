package algorithms

import (
	"testing"
)

func TestConnectedComponentsSingle(t *testing.T) {
	g := buildTestGraph(t, [][]string{
		{"A", "B"},
		{"B", "C"},
	})

	components := ConnectedComponents(g)
	if len(components) != 1 {
		t.Fatalf("got %d components, want 1", len(components))
	}
	if len(components[0]) != 3 {
		t.Errorf("component size = %d, want 3", len(components[0]))
	}
}

func TestConnectedComponentsMultiple(t *testing.T) {
	g := buildTestGraph(t, [][]string{
		{"A", "B"},
		{"C", "D"},
		{"E", "F"},
		{"E", "G"},
	})

	components := ConnectedComponents(g)
	if len(components) != 3 {
		t.Fatalf("got %d components, want 3", len(components))
	}
	// Ordered by lexically smallest member.
	if components[0][0] != "A" || components[1][0] != "C" || components[2][0] != "E" {
		t.Errorf("component order = %v", components)
	}
}

func TestConnectedComponentsEmpty(t *testing.T) {
	g := buildTestGraph(t, nil)
	if components := ConnectedComponents(g); len(components) != 0 {
		t.Errorf("got %d components for empty graph, want 0", len(components))
	}
	if largest := LargestComponent(g); largest != nil {
		t.Errorf("largest component of empty graph = %v, want nil", largest)
	}
}

func TestLargestComponent(t *testing.T) {
	g := buildTestGraph(t, [][]string{
		{"A", "B"},
		{"X", "Y"},
		{"Y", "Z"},
	})

	largest := LargestComponent(g)
	if len(largest) != 3 {
		t.Fatalf("largest component size = %d, want 3", len(largest))
	}
	if largest[0] != "X" {
		t.Errorf("largest component starts at %s, want X", largest[0])
	}
}

func TestConnectedComponentsDeterministic(t *testing.T) {
	build := func() [][]string {
		g := buildTestGraph(t, [][]string{
			{"M", "N"},
			{"N", "O"},
			{"A", "B"},
		})
		return ConnectedComponents(g)
	}

	first := build()
	for run := 0; run < 5; run++ {
		again := build()
		if len(again) != len(first) {
			t.Fatalf("component count changed between runs")
		}
		for i := range first {
			if len(again[i]) != len(first[i]) {
				t.Fatalf("component %d size changed between runs", i)
			}
			for j := range first[i] {
				if again[i][j] != first[i][j] {
					t.Fatalf("component member order changed between runs")
				}
			}
		}
	}
}
