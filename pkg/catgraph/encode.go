package catgraph

import (
	"fmt"
	"math"
	"strings"

	"github.com/catvertex/wikigraph/pkg/dot"
)

// hueStep is the fraction of the hue circle between consecutive
// top-level branches. 11/18 keeps neighboring branch colors visually
// far apart while cycling through all hues with period 18.
const hueStep = 11.0 / 18.0

// tooltipLimit caps the subcategory listing embedded in a node tooltip.
const tooltipLimit = 1000

// BranchHue returns the hue in [0, 1) assigned to the n-th top-level
// branch.
func BranchHue(n int) float64 {
	return math.Mod(hueStep*float64(n), 1)
}

// NodeStyle computes the visual attributes of a category node. size is
// the depth scale factor (downsize^level): ancestors near the root
// render larger than deep descendants.
func NodeStyle(title, pageURL string, subcats []string, size float64) dot.NodeAttrs {
	return dot.NodeAttrs{
		Label:    fmt.Sprintf("%s\n%d C", title, len(subcats)),
		Tooltip:  title + "\n\n" + subcatListing(subcats),
		URL:      pageURL,
		FontSize: int(math.Round(10 * size)),
	}
}

// EdgeStyle computes the visual attributes of a parent-to-child edge.
// ordinal is the child's position among its sorted siblings and columns
// the number of rank columns siblings are spread over; at the top level
// every edge gets minlen 1 instead.
func EdgeStyle(parent, child string, topLevel bool, ordinal, columns int, size, hue float64) dot.EdgeAttrs {
	return dot.EdgeAttrs{
		Tooltip:        parent + "  ⟶  " + child,
		HeadLabel:      parent,
		MinLen:         edgeMinLen(topLevel, ordinal, columns),
		PenWidth:       round2(size / 2),
		ArrowSize:      round2(size / 4),
		Color:          hsv(hue, "0.7"),
		LabelFontSize:  int(size),
		LabelFontColor: hsv(hue, "0.5"),
	}
}

// edgeMinLen staggers sibling edges across rank columns so they fan out
// into different ranks rather than collapsing into one tight row.
func edgeMinLen(topLevel bool, ordinal, columns int) int {
	if topLevel {
		return 1
	}
	return ordinal%columns + 1
}

// subcatListing joins subcategory titles for a tooltip, with non-breaking
// spaces inside titles and the whole listing truncated at tooltipLimit
// characters plus an ellipsis marker.
func subcatListing(subcats []string) string {
	parts := make([]string, len(subcats))
	for i, s := range subcats {
		parts[i] = strings.ReplaceAll(s, " ", "&nbsp;")
	}
	joined := strings.Join(parts, ", ")
	if runes := []rune(joined); len(runes) > tooltipLimit {
		joined = string(runes[:tooltipLimit]) + " ..."
	}
	return joined
}

// hsv formats a hue-saturation-value color triple with full saturation,
// e.g. "0.61 1 0.7".
func hsv(hue float64, value string) string {
	return fmt.Sprintf("%.2f 1 %s", hue, value)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
