// Package export writes the generated graph artifacts: the DOT source,
// the rendered SVG, and an HTML wrapper that embeds the SVG with mouse
// pan/zoom behavior.
//
// All three artifacts share one base path and differ only in extension.
// Writes are atomic: data goes to a uniquely named temp file in the
// target directory first and is renamed into place, so an interrupted
// run never leaves a torn file behind.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Artifacts groups the files written for one graph.
type Artifacts struct {
	DOT  string
	SVG  string
	HTML string
}

// Paths returns the artifact paths for a base name, e.g. "Science" ->
// Science.dot, Science.svg, Science.html.
func Paths(base string) Artifacts {
	return Artifacts{
		DOT:  base + ".dot",
		SVG:  base + ".svg",
		HTML: base + ".html",
	}
}

// WriteDOT writes the DOT source next to the other artifacts.
func WriteDOT(base string, dotSrc []byte) (string, error) {
	path := Paths(base).DOT
	return path, writeAtomic(path, dotSrc)
}

// WriteSVG writes the rendered SVG.
func WriteSVG(base string, svg []byte) (string, error) {
	path := Paths(base).SVG
	return path, writeAtomic(path, svg)
}

// WriteHTML writes an HTML page embedding the SVG with a pan/zoom
// script and a one-line usage hint. title becomes the page title.
func WriteHTML(base, title string, svg []byte) (string, error) {
	path := Paths(base).HTML
	return path, writeAtomic(path, append([]byte(htmlHeader(title)), svg...))
}

// htmlHeader builds the fixed wrapper markup above the embedded SVG.
func htmlHeader(title string) string {
	return `<head><meta charset="UTF-8"/><title>` + title + `</title> </head>
<div style="position:absolute;">Zoom and drag with mouse. Nodes are links to Wikipedia.</div>
<script src="https://unpkg.com/panzoom@9.4.0/dist/panzoom.min.js" query="#graph0" name="pz"></script>
<style> svg { height:100%; width:100%; } </style>
`
}

// writeAtomic writes data to a temp file in the destination directory
// and renames it into place.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
