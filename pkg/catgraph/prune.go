package catgraph

// prune removes degenerate chains from the sink: for every leaf whose
// chain of ancestors has exactly one parent each and no other attached
// subtree, the whole tail is cut back to the nearest branching ancestor.
//
// The stop condition is deliberately two-phase: the edge and node are
// removed first, and only then is the parent checked for remaining
// children. A parent that still has children ends the walk; a parent
// left childless becomes the next candidate.
//
// Category structures can be cyclic, so a climb also stops at a node
// whose single parent is itself and at any node this pass has already
// removed; without those guards a cycle of single-parent nodes would
// climb forever.
func (b *Builder) prune() {
	removed := make(map[string]struct{})
	for _, leaf := range b.leaves {
		n := leaf
		for len(b.rev[n]) == 1 {
			parent := b.rev[n][0]
			if parent == n {
				break
			}
			if _, gone := removed[n]; gone {
				break
			}
			b.logger.Debugf("Removing %s", n)
			b.sink.RemoveEdge(parent, n)
			b.sink.RemoveNode(n)
			removed[n] = struct{}{}
			b.fw[parent] = removeFirst(b.fw[parent], n)
			if len(b.fw[parent]) > 0 {
				break
			}
			n = parent
		}
	}
}

// removeFirst deletes the first occurrence of v, preserving order.
func removeFirst(s []string, v string) []string {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
