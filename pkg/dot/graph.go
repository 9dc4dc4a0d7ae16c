package dot

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// fontName is applied to graph, node, and edge defaults so labels render
// consistently across platforms.
const fontName = "Helvetica,Arial,sans-serif"

// NodeAttrs holds the visual attributes of a single node.
type NodeAttrs struct {
	Label    string // display label, may contain newlines
	Tooltip  string // hover text, may contain newlines
	URL      string // hyperlink target for the rendered node
	FontSize int    // label font size in points
}

// EdgeAttrs holds the visual attributes of a single directed edge.
type EdgeAttrs struct {
	Tooltip        string  // hover text
	HeadLabel      string  // label placed near the edge head
	MinLen         int     // minimum rank distance between endpoints
	PenWidth       float64 // line width
	ArrowSize      float64 // arrowhead scale
	Color          string  // edge color ("H S V" triple or color name)
	LabelFontSize  int     // head label font size in points
	LabelFontColor string  // head label color
}

type node struct {
	id    string
	attrs NodeAttrs
}

type edge struct {
	from, to string
	attrs    EdgeAttrs
}

// Graph is a mutable directed graph with DOT serialization.
//
// Nodes are keyed by ID; adding a node with an existing ID overwrites its
// attributes but keeps its original position in the output. Edges are not
// deduplicated: adding the same (from, to) pair twice produces two edges.
//
// Graph is not safe for concurrent use.
type Graph struct {
	name    string
	style   string // extra style fragment appended after the base style
	nodes   []node
	nodeIdx map[string]int
	edges   []edge
}

// New creates an empty graph with the given name.
//
// The style fragment is raw DOT attribute syntax (e.g. "graph [rankdir=BT]
// node [shape=circle]") appended after the built-in base style, so user
// settings override the defaults.
func New(name, style string) *Graph {
	return &Graph{
		name:    name,
		style:   style,
		nodeIdx: make(map[string]int),
	}
}

// AddNode inserts or updates the node with the given ID.
func (g *Graph) AddNode(id string, attrs NodeAttrs) {
	if i, ok := g.nodeIdx[id]; ok {
		g.nodes[i].attrs = attrs
		return
	}
	g.nodeIdx[id] = len(g.nodes)
	g.nodes = append(g.nodes, node{id: id, attrs: attrs})
}

// AddEdge appends a directed edge from one node to another.
func (g *Graph) AddEdge(from, to string, attrs EdgeAttrs) {
	g.edges = append(g.edges, edge{from: from, to: to, attrs: attrs})
}

// RemoveNode deletes the node with the given ID. Edges referencing the
// node are not touched; callers remove those first.
func (g *Graph) RemoveNode(id string) {
	i, ok := g.nodeIdx[id]
	if !ok {
		return
	}
	g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
	delete(g.nodeIdx, id)
	for j := i; j < len(g.nodes); j++ {
		g.nodeIdx[g.nodes[j].id] = j
	}
}

// RemoveEdge deletes the first edge recorded from one node to another.
func (g *Graph) RemoveEdge(from, to string) {
	for i, e := range g.edges {
		if e.from == from && e.to == to {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			return
		}
	}
}

// NodeCount returns the number of nodes currently in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges currently in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodeIdx[id]
	return ok
}

// DOT serializes the graph to Graphviz DOT text.
//
// Nodes and edges are emitted in insertion order, so two graphs built by
// identical insertion sequences serialize to identical bytes.
func (g *Graph) DOT() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %s {\n", quote(g.name))

	fmt.Fprintf(&buf, "  graph [rankdir=LR ranksep=2 concentrate=true fontname=%q];\n", fontName)
	fmt.Fprintf(&buf, "  node [newrank=true shape=plaintext fontname=%q];\n", fontName)
	fmt.Fprintf(&buf, "  edge [arrowhead=open labeldistance=3 labelfontcolor=\"#00000080\" fontname=%q];\n", fontName)
	if g.style != "" {
		fmt.Fprintf(&buf, "  %s;\n", g.style)
	}
	buf.WriteString("\n")

	for _, n := range g.nodes {
		fmt.Fprintf(&buf, "  %s [%s];\n", quote(n.id), strings.Join(nodeAttrList(n.attrs), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.edges {
		fmt.Fprintf(&buf, "  %s -> %s [%s];\n", quote(e.from), quote(e.to), strings.Join(edgeAttrList(e.attrs), ", "))
	}

	buf.WriteString("}\n")
	return buf.Bytes()
}

func nodeAttrList(a NodeAttrs) []string {
	return []string{
		"label=" + quote(a.Label),
		"tooltip=" + quote(a.Tooltip),
		"URL=" + quote(a.URL),
		"fontsize=" + strconv.Itoa(a.FontSize),
	}
}

func edgeAttrList(a EdgeAttrs) []string {
	return []string{
		"tooltip=" + quote(a.Tooltip),
		"headlabel=" + quote(a.HeadLabel),
		"minlen=" + strconv.Itoa(a.MinLen),
		"penwidth=" + formatFloat(a.PenWidth),
		"arrowsize=" + formatFloat(a.ArrowSize),
		"color=" + quote(a.Color),
		"labelfontsize=" + strconv.Itoa(a.LabelFontSize),
		"labelfontcolor=" + quote(a.LabelFontColor),
	}
}

// quote wraps s in double quotes with DOT escaping. Literal newlines
// become \n escapes, which Graphviz renders as line breaks in labels.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// formatFloat prints a float without trailing zeros ("2" rather than
// "2.00"), matching how Graphviz itself prints attribute values.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
