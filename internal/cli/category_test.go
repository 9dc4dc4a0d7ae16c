package cli

import (
	"path/filepath"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Physics", "Physics"},
		{"Main topic classifications", "Main_topic_classifications"},
		{"A/B testing", "A_B_testing"},
	}

	for _, tt := range tests {
		if got := sanitizeFilename(tt.title); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestCategoryOptionsValidate(t *testing.T) {
	valid := categoryOptions{depth: 2, downsize: 4, maxNodes: 100}
	if err := valid.validate(); err != nil {
		t.Errorf("validate() rejected valid options: %v", err)
	}

	tests := []struct {
		name string
		opts categoryOptions
	}{
		{"negative depth", categoryOptions{depth: -1, downsize: 4, maxNodes: 100}},
		{"zero downsize", categoryOptions{depth: 2, downsize: 0, maxNodes: 100}},
		{"negative downsize", categoryOptions{depth: 2, downsize: -1, maxNodes: 100}},
		{"zero max-nodes", categoryOptions{depth: 2, downsize: 4, maxNodes: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.validate(); err == nil {
				t.Errorf("validate() accepted %+v", tt.opts)
			}
		})
	}
}

func TestResolvePromptsDefaults(t *testing.T) {
	opts := categoryOptions{}
	if err := resolvePrompts(&opts); err != nil {
		t.Fatalf("resolvePrompts() error: %v", err)
	}

	if opts.name != defaultCategory {
		t.Errorf("name = %q, want %q", opts.name, defaultCategory)
	}
	if opts.output != sanitizeFilename(defaultCategory) {
		t.Errorf("output = %q, want %q", opts.output, sanitizeFilename(defaultCategory))
	}
}

func TestResolvePromptsDirOutput(t *testing.T) {
	opts := categoryOptions{
		name:   "Physics",
		output: "out" + string(filepath.Separator),
	}
	if err := resolvePrompts(&opts); err != nil {
		t.Fatalf("resolvePrompts() error: %v", err)
	}

	want := filepath.Join("out", "Physics")
	if opts.output != want {
		t.Errorf("output = %q, want %q", opts.output, want)
	}
}

func TestResolvePromptsExplicitBase(t *testing.T) {
	opts := categoryOptions{
		name:   "Physics",
		output: filepath.Join("out", "custom"),
	}
	if err := resolvePrompts(&opts); err != nil {
		t.Fatalf("resolvePrompts() error: %v", err)
	}

	want := filepath.Join("out", "custom")
	if opts.output != want {
		t.Errorf("output = %q, want %q", opts.output, want)
	}
}
