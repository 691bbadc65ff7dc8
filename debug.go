package framer

import (
	"fmt"
	"time"
)

// globalDebug enables disposed-node panics, tree-shape warnings and
// per-layout timing logs.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, tree operations
// on disposed nodes panic, unusually deep or wide trees are reported, and
// every Layout logs its timing at debug level.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// DebugMode reports whether debug mode is enabled.
func DebugMode() bool { return globalDebug }

// layoutStats holds timing and node counts for one Layout call.
// Only populated in debug mode.
type layoutStats struct {
	start  time.Time
	nodes  int
	stacks int
}

func startLayoutStats() *layoutStats {
	return &layoutStats{start: time.Now(), nodes: 1}
}

// count records a laid out node. Safe on a nil receiver.
func (s *layoutStats) count(n *Node) {
	if s == nil {
		return
	}
	s.nodes++
	if n.Type == NodeTypeStack {
		s.stacks++
	}
}

// log prints timing and node counts at debug level.
func (s *layoutStats) log(root *Node) {
	if root.Type == NodeTypeStack {
		s.stacks++
	}
	logger.Debug("layout",
		"root", root.Name,
		"nodes", s.nodes,
		"stacks", s.stacks,
		"elapsed", time.Since(s.start),
	)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("framer debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warn("tree depth exceeds threshold", "depth", depth, "threshold", debugMaxTreeDepth, "node", n.Name)
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		logger.Warn("node has too many children", "node", n.Name, "children", len(n.children), "threshold", debugMaxChildCount)
	}
}
