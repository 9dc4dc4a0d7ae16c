package catgraph

import (
	"testing"

	"github.com/catvertex/wikigraph/pkg/dot"
)

func TestPruneChainCollapsesToRoot(t *testing.T) {
	// Root -> A -> B -> C is one standalone chain; above the threshold
	// the whole tail prunes away, leaving just the root.
	src := &fakeSource{subs: map[string][]string{
		"Root": {"A"}, "A": {"B"}, "B": {"C"},
	}}
	_, g := build(t, src, Options{Depth: 3, PruneThreshold: 1})

	if g.NodeCount() != 1 {
		t.Errorf("NodeCount = %d, want 1 (only Root survives)", g.NodeCount())
	}
	if !g.HasNode("Root") {
		t.Error("Root was pruned away")
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d, want 0", g.EdgeCount())
	}
}

func TestPruneBelowThresholdUntouched(t *testing.T) {
	src := &fakeSource{subs: map[string][]string{
		"Root": {"A"}, "A": {"B"}, "B": {"C"},
	}}
	_, g := build(t, src, Options{Depth: 3, PruneThreshold: 100})

	if g.NodeCount() != 4 {
		t.Errorf("NodeCount = %d, want 4 (below threshold, no pruning)", g.NodeCount())
	}
}

func TestPruneKeepsBranchingAncestor(t *testing.T) {
	// Root -> A -> {B, C}. With only B recorded as a prunable leaf, the
	// walk must stop at A: after removing B, A still has child C.
	g := dot.New("test", "")
	g.AddNode("Root", dot.NodeAttrs{})
	g.AddNode("A", dot.NodeAttrs{})
	g.AddNode("B", dot.NodeAttrs{})
	g.AddNode("C", dot.NodeAttrs{})
	g.AddEdge("Root", "A", dot.EdgeAttrs{})
	g.AddEdge("A", "B", dot.EdgeAttrs{})
	g.AddEdge("A", "C", dot.EdgeAttrs{})

	b := New(&fakeSource{}, g, Options{}, quietLogger())
	b.rev = map[string][]string{"A": {"Root"}, "B": {"A"}, "C": {"A"}}
	b.fw = map[string][]string{"Root": {"A"}, "A": {"B", "C"}}
	b.leaves = []string{"B"}

	b.prune()

	if g.HasNode("B") {
		t.Error("leaf B should have been pruned")
	}
	for _, id := range []string{"Root", "A", "C"} {
		if !g.HasNode(id) {
			t.Errorf("node %s should survive pruning", id)
		}
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount = %d, want 2", g.EdgeCount())
	}
}

func TestPruneBothChildrenTakesParent(t *testing.T) {
	// When every child of A is itself a prunable leaf, A ends up
	// childless and the walk continues up through it.
	g := dot.New("test", "")
	for _, id := range []string{"Root", "A", "B", "C"} {
		g.AddNode(id, dot.NodeAttrs{})
	}
	g.AddEdge("Root", "A", dot.EdgeAttrs{})
	g.AddEdge("A", "B", dot.EdgeAttrs{})
	g.AddEdge("A", "C", dot.EdgeAttrs{})

	b := New(&fakeSource{}, g, Options{}, quietLogger())
	b.rev = map[string][]string{"A": {"Root"}, "B": {"A"}, "C": {"A"}}
	b.fw = map[string][]string{"Root": {"A"}, "A": {"B", "C"}}
	b.leaves = []string{"B", "C"}

	b.prune()

	if g.NodeCount() != 1 || !g.HasNode("Root") {
		t.Errorf("want only Root to survive, graph has %d nodes", g.NodeCount())
	}
}

func TestPruneMultiParentLeafKept(t *testing.T) {
	// A leaf with two recorded parents is never a standalone chain.
	g := dot.New("test", "")
	for _, id := range []string{"Root", "A", "C"} {
		g.AddNode(id, dot.NodeAttrs{})
	}
	g.AddEdge("Root", "A", dot.EdgeAttrs{})
	g.AddEdge("Root", "C", dot.EdgeAttrs{})
	g.AddEdge("A", "C", dot.EdgeAttrs{})

	b := New(&fakeSource{}, g, Options{}, quietLogger())
	b.rev = map[string][]string{"A": {"Root"}, "C": {"A", "Root"}}
	b.fw = map[string][]string{"Root": {"A", "C"}, "A": {"C"}}
	b.leaves = []string{"C"}

	b.prune()

	if g.NodeCount() != 3 {
		t.Errorf("NodeCount = %d, want 3 (nothing prunable)", g.NodeCount())
	}
}

func TestPruneSelfLoopRootTerminates(t *testing.T) {
	// A category listing itself as a subcategory records the node as its
	// own single parent. The climb must stop there instead of spinning,
	// and the node survives with its self-edge.
	src := &fakeSource{subs: map[string][]string{
		"Root": {"Root"},
	}}
	_, g := build(t, src, Options{Depth: 1, PruneThreshold: 1})

	if !g.HasNode("Root") {
		t.Error("self-looping root should survive pruning")
	}
	if g.NodeCount() != 1 || g.EdgeCount() != 1 {
		t.Errorf("graph = %d nodes / %d edges, want 1/1", g.NodeCount(), g.EdgeCount())
	}
}

func TestPruneTwoNodeCycleTerminates(t *testing.T) {
	// Root -> A -> Root is a cycle of single-parent nodes. The climb
	// revisits a removed node after one lap and must stop there.
	src := &fakeSource{subs: map[string][]string{
		"Root": {"A"}, "A": {"Root"},
	}}
	_, g := build(t, src, Options{Depth: 2, PruneThreshold: 1})

	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d, want 0", g.EdgeCount())
	}
}

func TestPruneIdempotent(t *testing.T) {
	src := &fakeSource{subs: map[string][]string{
		"Root": {"A", "Z"}, "A": {"B"}, "B": {"C"},
	}}
	b, g := build(t, src, Options{Depth: 3, PruneThreshold: 1})

	nodes, edges := g.NodeCount(), g.EdgeCount()
	b.prune()
	if g.NodeCount() != nodes || g.EdgeCount() != edges {
		t.Errorf("second prune changed the graph: %d/%d -> %d/%d nodes/edges",
			nodes, edges, g.NodeCount(), g.EdgeCount())
	}
}
