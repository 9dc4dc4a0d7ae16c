package catgraph

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/catvertex/wikigraph/pkg/dot"
)

// Default bounds. MaxNodes guards the Graphviz layout engine, which is
// known to crash or stall on graphs beyond this order of magnitude;
// PruneThreshold is the size above which chain pruning kicks in.
const (
	DefaultDepth          = 2
	DefaultDownsize       = 4.0
	DefaultMaxNodes       = 10000
	DefaultPruneThreshold = 1000
)

// noHue marks the absence of an inherited branch hue. Fresh hues are
// only computed at the first branching level; below that the branch hue
// is passed down unchanged.
const noHue = -1.0

// Source resolves category structure. Implemented by wiki.Client.
type Source interface {
	// Subcategories returns the immediate subcategory titles of the
	// named category, in no particular order.
	Subcategories(ctx context.Context, title string) ([]string, error)

	// PageURL returns the hyperlink target for the category's node.
	PageURL(title string) string
}

// Sink is the mutable graph the traversal writes into.
// Implemented by dot.Graph.
type Sink interface {
	AddNode(id string, attrs dot.NodeAttrs)
	AddEdge(from, to string, attrs dot.EdgeAttrs)
	RemoveNode(id string)
	RemoveEdge(from, to string)
}

// Options bounds the traversal and the rendered graph size.
type Options struct {
	// Depth is the maximum recursion depth. Zero renders the root alone.
	Depth int

	// Downsize is the per-level scale divider: a node at depth d from
	// the deepest level renders with size Downsize^d. 1 keeps every
	// level the same size.
	Downsize float64

	// MaxNodes is the hard node cap. Once the counter reaches it, every
	// category still being visited becomes a forced leaf.
	MaxNodes int

	// PruneThreshold is the node count above which standalone chains
	// are pruned after traversal.
	PruneThreshold int
}

// withDefaults fills unset numeric options. Depth is taken as-is since
// zero is meaningful.
func (o Options) withDefaults() Options {
	if o.Downsize == 0 {
		o.Downsize = DefaultDownsize
	}
	if o.MaxNodes == 0 {
		o.MaxNodes = DefaultMaxNodes
	}
	if o.PruneThreshold == 0 {
		o.PruneThreshold = DefaultPruneThreshold
	}
	return o
}

// Builder walks a category tree and fills a graph sink. All traversal
// state (node counter, adjacency bookkeeping, leaf list) lives on the
// Builder, so independent runs never share state.
//
// Builder is single-use: create one per traversal.
type Builder struct {
	src    Source
	sink   Sink
	opts   Options
	logger *log.Logger

	counter int
	rev     map[string][]string // child -> parents, duplicates allowed
	fw      map[string][]string // parent -> children
	leaves  []string            // traversal-order leaf IDs
	leafSet map[string]struct{}
}

// New creates a Builder. A nil logger falls back to the default logger.
func New(src Source, sink Sink, opts Options, logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.Default()
	}
	return &Builder{
		src:     src,
		sink:    sink,
		opts:    opts.withDefaults(),
		logger:  logger,
		rev:     make(map[string][]string),
		fw:      make(map[string][]string),
		leafSet: make(map[string]struct{}),
	}
}

// NodeCount returns the number of node creations so far.
func (b *Builder) NodeCount() int { return b.counter }

// Build expands the tree from the root category, then prunes standalone
// chains if the graph came out larger than the prune threshold.
//
// Source failures abort the run and propagate; no partial recovery is
// attempted.
func (b *Builder) Build(ctx context.Context, root string) error {
	if err := b.expand(ctx, root, b.opts.Depth, noHue); err != nil {
		return err
	}
	if b.counter > b.opts.PruneThreshold {
		b.logger.Warnf("Removing standalone subcategories because graph is too big (%d nodes)", b.counter)
		b.prune()
	}
	return nil
}

// expand visits one category: creates its node, then recurses over its
// subcategories with level-1 until the level or the node cap runs out.
// level counts down from Options.Depth to zero.
func (b *Builder) expand(ctx context.Context, title string, level int, hue float64) error {
	subcats, err := b.src.Subcategories(ctx, title)
	if err != nil {
		return fmt.Errorf("list subcategories of %q: %w", title, err)
	}
	sort.Strings(subcats)

	size := math.Pow(b.opts.Downsize, float64(level))
	b.logger.Debugf("Adding %s", title)
	b.sink.AddNode(title, NodeStyle(title, b.src.PageURL(title), subcats, size))
	b.counter++

	if level == 0 || b.counter >= b.opts.MaxNodes {
		if b.counter == b.opts.MaxNodes {
			b.logger.Warnf("Number of nodes reached limit %d", b.opts.MaxNodes)
		}
		b.markLeaf(title)
		return nil
	}

	// Spread sibling edges over this many rank columns so wide levels
	// fan out instead of stacking in one row.
	columns := len(subcats)/5 + 1
	for n, sub := range subcats {
		h := hue
		if h < 0 {
			h = BranchHue(n)
		}
		b.sink.AddEdge(title, sub, EdgeStyle(title, sub, level == b.opts.Depth, n, columns, size, h))
		if err := b.expand(ctx, sub, level-1, h); err != nil {
			return err
		}
		b.rev[sub] = append(b.rev[sub], title)
		b.fw[title] = append(b.fw[title], sub)
	}
	return nil
}

// markLeaf records a node where traversal stopped, keeping the first
// visit's position so pruning runs in deterministic traversal order.
func (b *Builder) markLeaf(title string) {
	if _, seen := b.leafSet[title]; seen {
		return
	}
	b.leafSet[title] = struct{}{}
	b.leaves = append(b.leaves, title)
}
