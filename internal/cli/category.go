package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/catvertex/wikigraph/pkg/cache"
	"github.com/catvertex/wikigraph/pkg/catgraph"
	"github.com/catvertex/wikigraph/pkg/dot"
	"github.com/catvertex/wikigraph/pkg/export"
	"github.com/catvertex/wikigraph/pkg/wiki"
)

// defaultCategory is rendered when no category name is given.
const defaultCategory = "Main topic classifications"

// categoryOptions collects everything the category command needs after
// flags and config are merged.
type categoryOptions struct {
	name     string
	output   string
	lang     string
	style    string
	depth    int
	downsize float64
	maxNodes int
	noCache  bool
	refresh  bool
	cacheCfg CacheConfig
}

// newCategoryCmd creates the category command, the main entry point for
// rendering a category tree.
func newCategoryCmd() *cobra.Command {
	var opts categoryOptions

	cmd := &cobra.Command{
		Use:   "category [name]",
		Short: "Render a category tree to DOT, SVG, and HTML",
		Long: `Render a category tree to DOT, SVG, and HTML.

The command scans subcategories breadth-first up to --depth, colors each
top-level branch with its own hue, and shrinks nodes by --downsize per
level. Three files are written next to each other: <base>.dot, <base>.svg,
and <base>.html (a standalone page with mouse pan/zoom).

Pass '?' as the name or as --to to be asked interactively. Without a name
the command renders '` + defaultCategory + `'.

API responses are cached locally, so repeat runs of the same category are
fast. Use --refresh to bypass the cache and --no-cache to disable it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.name = args[0]
			}
			if err := mergeConfig(cmd, &opts); err != nil {
				return err
			}
			if err := opts.validate(); err != nil {
				return err
			}
			if err := resolvePrompts(&opts); err != nil {
				return err
			}
			return runCategory(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "to", "o", "", "output base path, without extension ('?' to be asked)")
	cmd.Flags().StringVar(&opts.lang, "lang", "en", "wiki language code")
	cmd.Flags().StringVar(&opts.style, "style", "", "extra DOT attribute lines appended to the default style")
	cmd.Flags().IntVarP(&opts.depth, "depth", "d", catgraph.DefaultDepth, "scan depth (0 renders the root alone)")
	cmd.Flags().Float64Var(&opts.downsize, "downsize", catgraph.DefaultDownsize, "node scale divider per level")
	cmd.Flags().IntVar(&opts.maxNodes, "max-nodes", catgraph.DefaultMaxNodes, "hard cap on scanned categories")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the API cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "refetch even on a cache hit")

	return cmd
}

// validate rejects flag values the traversal would otherwise absorb
// silently, mirroring the checks loadConfig applies to the config file.
func (o categoryOptions) validate() error {
	if o.depth < 0 {
		return fmt.Errorf("depth must be >= 0, got %d", o.depth)
	}
	if o.downsize <= 0 {
		return fmt.Errorf("downsize must be > 0, got %v", o.downsize)
	}
	if o.maxNodes < 1 {
		return fmt.Errorf("max-nodes must be >= 1, got %d", o.maxNodes)
	}
	return nil
}

// mergeConfig overlays config-file values onto options the user did not
// set explicitly on the command line.
func mergeConfig(cmd *cobra.Command, opts *categoryOptions) error {
	path, err := configPath()
	if err != nil {
		return fmt.Errorf("locate config: %w", err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("lang") {
		opts.lang = cfg.Lang
	}
	if !flags.Changed("depth") {
		opts.depth = cfg.Depth
	}
	if !flags.Changed("downsize") {
		opts.downsize = cfg.Downsize
	}
	if !flags.Changed("style") && cfg.Style != "" {
		opts.style = cfg.Style
	}
	if !flags.Changed("to") && cfg.OutputDir != "" {
		// Only the directory comes from config; the base name is derived
		// from the category in resolvePrompts.
		opts.output = cfg.OutputDir + string(filepath.Separator)
	}
	opts.cacheCfg = cfg.Cache
	return nil
}

// resolvePrompts replaces '?' placeholders interactively and fills the
// remaining defaults.
func resolvePrompts(opts *categoryOptions) error {
	if opts.name == "?" {
		name, err := promptLine("Which category?")
		if err != nil {
			return err
		}
		opts.name = name
	}
	if opts.name == "" {
		opts.name = defaultCategory
	}

	if opts.output == "?" {
		out, err := promptLine("Where to save the files?")
		if err != nil {
			return err
		}
		opts.output = out
	}
	base := sanitizeFilename(opts.name)
	switch {
	case opts.output == "":
		opts.output = base
	case isDirPath(opts.output):
		opts.output = filepath.Join(opts.output, base)
	}
	return nil
}

// sanitizeFilename turns a category title into a file-safe base name.
func sanitizeFilename(title string) string {
	s := strings.ReplaceAll(title, " ", "_")
	s = strings.ReplaceAll(s, string(filepath.Separator), "_")
	return s
}

// isDirPath reports whether the path is meant as a directory rather
// than a file base.
func isDirPath(path string) bool {
	return strings.HasSuffix(path, string(filepath.Separator)) || path == "." || path == ".."
}

// runCategory builds the graph and writes the three artifacts.
func runCategory(ctx context.Context, opts categoryOptions) error {
	logger := loggerFromContext(ctx)
	logger.Debug("rendering category",
		"name", opts.name, "lang", opts.lang, "depth", opts.depth, "out", opts.output)

	backend, err := newCacheBackend(ctx, opts)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer backend.Close()

	ttl := time.Duration(opts.cacheCfg.TTLHours) * time.Hour
	client := wiki.NewClient(opts.lang, backend, ttl)
	client.SetRefresh(opts.refresh)

	graph := dot.New(opts.name, opts.style)
	builder := catgraph.New(client, graph, catgraph.Options{
		Depth:    opts.depth,
		Downsize: opts.downsize,
		MaxNodes: opts.maxNodes,
	}, logger)

	spinner := newSpinner(ctx, fmt.Sprintf("Scanning %q (depth %d)...", opts.name, opts.depth))
	spinner.Start()
	start := time.Now()

	if err := builder.Build(ctx, opts.name); err != nil {
		spinner.StopWithError("Scan failed")
		return fmt.Errorf("build category graph: %w", err)
	}
	spinner.StopWithSuccess(fmt.Sprintf("Scanned %d categories in %s",
		builder.NodeCount(), time.Since(start).Round(time.Millisecond)))
	if builder.NodeCount() >= opts.maxNodes {
		printWarning("Hit the %d category cap, graph is truncated", opts.maxNodes)
	}
	printStats(graph.NodeCount(), graph.EdgeCount())

	dotSrc := graph.DOT()

	spinner = newSpinner(ctx, "Rendering SVG...")
	spinner.Start()
	svg, err := dot.RenderSVG(ctx, dotSrc)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render svg: %w", err)
	}
	spinner.Stop()

	dotPath, err := export.WriteDOT(opts.output, dotSrc)
	if err != nil {
		return err
	}
	svgPath, err := export.WriteSVG(opts.output, svg)
	if err != nil {
		return err
	}
	htmlPath, err := export.WriteHTML(opts.output, opts.name, svg)
	if err != nil {
		return err
	}

	printSuccess("Wrote %s", opts.name)
	printFile(dotPath)
	printFile(svgPath)
	printFile(htmlPath)
	printNextStep("Preview in a browser", fmt.Sprintf("%s serve --dir %s", appName, filepath.Dir(htmlPath)))
	return nil
}

// newCacheBackend picks the cache implementation from flags and config.
func newCacheBackend(ctx context.Context, opts categoryOptions) (cache.Cache, error) {
	if opts.noCache || opts.cacheCfg.Backend == "none" {
		return cache.NewNullCache(), nil
	}
	if opts.cacheCfg.Backend == "redis" {
		return cache.NewRedisCache(ctx, opts.cacheCfg.RedisAddr)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}
