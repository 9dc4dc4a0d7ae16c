// Package dot provides a mutable directed graph that serializes to
// Graphviz DOT and renders to SVG.
//
// Unlike a general-purpose graph library, the graph here is a thin
// recording of node and edge insertions with strongly typed visual
// attributes ([NodeAttrs], [EdgeAttrs]). Serialization preserves
// insertion order, so identical insertion sequences produce
// byte-identical DOT output.
//
// Rendering goes through goccy/go-graphviz: the DOT text is parsed and
// laid out by the embedded Graphviz engine, which is why callers bound
// the graph size before rendering (the engine degrades badly on graphs
// beyond a few thousand nodes).
package dot
