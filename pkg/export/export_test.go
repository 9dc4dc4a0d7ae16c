package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPaths(t *testing.T) {
	p := Paths("out/Science")
	if p.DOT != "out/Science.dot" || p.SVG != "out/Science.svg" || p.HTML != "out/Science.html" {
		t.Errorf("Paths = %+v", p)
	}
}

func TestWriteDOT(t *testing.T) {
	base := filepath.Join(t.TempDir(), "Science")
	path, err := WriteDOT(base, []byte("digraph {}\n"))
	if err != nil {
		t.Fatalf("WriteDOT error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "digraph {}\n" {
		t.Errorf("content = %q", data)
	}
}

func TestWriteHTMLWrapper(t *testing.T) {
	base := filepath.Join(t.TempDir(), "Science")
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`)

	path, err := WriteHTML(base, "Science", svg)
	if err != nil {
		t.Fatalf("WriteHTML error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	out := string(data)

	for _, want := range []string{
		`<meta charset="UTF-8"/>`,
		"<title>Science</title>",
		"Zoom and drag with mouse",
		"panzoom@9.4.0",
		"svg { height:100%; width:100%; }",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML wrapper missing %q", want)
		}
	}
	if !strings.HasSuffix(out, string(svg)) {
		t.Error("SVG bytes must come last in the document")
	}
}

func TestWriteCreatesParentDir(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "deeper", "Science")
	if _, err := WriteSVG(base, []byte("<svg/>")); err != nil {
		t.Fatalf("WriteSVG error: %v", err)
	}
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	if _, err := WriteDOT(filepath.Join(dir, "g"), []byte("digraph {}")); err != nil {
		t.Fatalf("WriteDOT error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}
