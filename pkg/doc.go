// Package pkg provides the core libraries behind the wikigraph CLI.
//
// # Overview
//
// wikigraph renders a wiki's category hierarchy as a zoomable graph. The
// data flow through the packages:
//
//	MediaWiki API
//	     ↓
//	[wiki] package (fetch subcategory listings, cached)
//	     ↓
//	[catgraph] package (depth-bounded traversal, visual encoding, pruning)
//	     ↓
//	[dot] package (mutable graph, DOT serialization, SVG via Graphviz)
//	     ↓
//	[export] package (.dot / .svg / .html artifacts)
//
// # Main packages
//
// [catgraph] - The traversal core. Walks a category tree to a configured
// depth, assigns per-branch colors and per-depth sizes, and prunes
// degenerate single-child chains when the graph grows too large for the
// layout engine.
//
// [wiki] - MediaWiki API client with retry and response caching.
//
// [dot] - Typed node/edge attributes, deterministic DOT output, and SVG
// rendering through goccy/go-graphviz.
//
// [export] - Writes the DOT, SVG, and pan/zoom HTML wrapper files.
//
// [cache] - Pluggable response cache (file, redis, or none).
//
// [buildinfo] - Build-time version information.
//
// [catgraph]: https://pkg.go.dev/github.com/catvertex/wikigraph/pkg/catgraph
// [wiki]: https://pkg.go.dev/github.com/catvertex/wikigraph/pkg/wiki
// [dot]: https://pkg.go.dev/github.com/catvertex/wikigraph/pkg/dot
// [export]: https://pkg.go.dev/github.com/catvertex/wikigraph/pkg/export
// [cache]: https://pkg.go.dev/github.com/catvertex/wikigraph/pkg/cache
// [buildinfo]: https://pkg.go.dev/github.com/catvertex/wikigraph/pkg/buildinfo
package pkg
