// Package catgraph builds a visual graph from a wiki's category
// hierarchy.
//
// The [Builder] walks the category tree depth-first from a root
// category, creating one graph node per visited category and one edge
// per parent/child step. The walk is bounded two ways: a configured
// maximum depth, and a hard node cap that guards the downstream Graphviz
// layout engine, which is known to fail on graphs beyond roughly ten
// thousand nodes.
//
// Visual encoding makes the result legible: each top-level branch gets
// its own hue inherited by the whole subtree, node and edge sizes shrink
// geometrically with depth, and sibling edges are staggered across rank
// columns so wide fan-outs don't collapse into a single row.
//
// After the walk, graphs above a size threshold are reduced by pruning
// degenerate chains: a leaf whose ancestor line has no other attached
// subtree is cut back to the nearest branching ancestor. A standalone
// chain conveys no branching information, so removing it costs nothing
// in legibility.
//
// Categories reached via multiple paths are not deduplicated; two paths
// to the same title simply collide into one node in the sink, and a
// cycle in the category structure is broken by the depth bound alone.
package catgraph
