package framer

import "sync/atomic"

// NodeType identifies how a node lays out its children.
type NodeType uint8

const (
	// NodeTypeFrame positions each child by the child's own constraints.
	NodeTypeFrame NodeType = iota
	// NodeTypeStack arranges children along an axis (see Stack).
	NodeTypeStack
)

func (t NodeType) String() string {
	if t == NodeTypeStack {
		return "stack"
	}
	return "frame"
}

// nodeIDCounter is shared by every tree, whichever goroutine builds it.
var nodeIDCounter atomic.Uint32

func nextNodeID() uint32 {
	return nodeIDCounter.Add(1)
}

// DefaultFrameColor is the translucent blue new frames are filled with.
var DefaultFrameColor = Color{R: 0, G: 170.0 / 255, B: 1, A: 0.3}

// --- Node ---

// Node is a frame or a stack in a layout tree. A single flat struct is used
// for both kinds; Stack is ignored on frames.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Layout input
	Constraints Constraints
	Stack       Stack
	Visible     bool

	// Appearance, used by the preview renderer and tweens
	Color Color
	Alpha float64

	// Metadata
	UserData any

	// Computed by Layout, relative to the parent
	rect        Rect
	layoutDirty bool

	// Internal
	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Visible = true
	n.Alpha = 1
	n.Color = DefaultFrameColor
	n.layoutDirty = true
}

// NewFrame creates a frame node.
func NewFrame(name string, c Constraints) *Node {
	n := &Node{Name: name, Type: NodeTypeFrame, Constraints: c}
	nodeDefaults(n)
	return n
}

// NewStack creates a stack node.
func NewStack(name string, s Stack, c Constraints) *Node {
	n := &Node{Name: name, Type: NodeTypeStack, Stack: s, Constraints: c}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("framer: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("framer: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
		child.Parent.MarkLayoutDirty()
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.MarkLayoutDirty()
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("framer: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, n) {
		panic("framer: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
		child.Parent.MarkLayoutDirty()
	}
	if index < 0 || index > len(n.children) {
		panic("framer: child index out of range")
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	n.MarkLayoutDirty()
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("framer: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.MarkLayoutDirty()
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChildAt")
	}
	if index < 0 || index >= len(n.children) {
		panic("framer: child index out of range")
	}
	child := n.children[index]
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	child.Parent = nil
	n.MarkLayoutDirty()
	return child
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for i, child := range n.children {
		child.Parent = nil
		n.children[i] = nil
	}
	n.children = n.children[:0]
	n.MarkLayoutDirty()
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// SetChildIndex moves child to a new index among its siblings. For stacks
// this changes the layout order.
func (n *Node) SetChildIndex(child *Node, index int) {
	if child.Parent != n {
		panic("framer: child's parent is not this node")
	}
	nc := len(n.children)
	if index < 0 || index >= nc {
		panic("framer: child index out of range")
	}
	oldIndex := -1
	for i, c := range n.children {
		if c == child {
			oldIndex = i
			break
		}
	}
	if oldIndex == index {
		return
	}
	if oldIndex < index {
		copy(n.children[oldIndex:], n.children[oldIndex+1:index+1])
	} else {
		copy(n.children[index+1:], n.children[index:oldIndex])
	}
	n.children[index] = child
	n.MarkLayoutDirty()
}

// FindChild returns the first descendant named name, depth first, or nil.
func (n *Node) FindChild(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
		if found := c.FindChild(name); found != nil {
			return found
		}
	}
	return nil
}

// Walk calls fn for n and every descendant in depth-first order. Returning
// false from fn skips that node's children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.children {
		c.walk(fn, depth+1)
	}
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Layout ---

// MarkLayoutDirty flags this node and its ancestors for layout. Setters in
// this package call it; code that writes Constraints or Stack directly
// should too.
func (n *Node) MarkLayoutDirty() {
	for p := n; p != nil; p = p.Parent {
		p.layoutDirty = true
	}
}

// LayoutDirty reports whether the node changed since its last Layout.
func (n *Node) LayoutDirty() bool { return n.layoutDirty }

// SetConstraints replaces the node's constraints.
func (n *Node) SetConstraints(c Constraints) {
	n.Constraints = c
	n.MarkLayoutDirty()
}

// SetVisible shows or hides the node. Hidden stack children keep their
// slot but take no space.
func (n *Node) SetVisible(v bool) {
	if n.Visible == v {
		return
	}
	n.Visible = v
	n.MarkLayoutDirty()
}

// Rect returns the node's frame relative to its parent as computed by the
// last Layout.
func (n *Node) Rect() Rect { return n.rect }

// WorldRect returns the node's frame relative to the layout root.
func (n *Node) WorldRect() Rect {
	r := n.rect
	for p := n.Parent; p != nil; p = p.Parent {
		r = r.Offset(p.rect.X, p.rect.Y)
	}
	return r
}

// IsVisible implements StackChild.
func (n *Node) IsVisible() bool { return n.Visible }

// LayoutConstraints implements StackChild.
func (n *Node) LayoutConstraints() Constraints { return n.Constraints }

// MinSize implements StackChild. Stacks measure their children when one of
// their axes is auto.
func (n *Node) MinSize(parent *Size) Size {
	if n.Type == NodeTypeStack {
		return StackMinSize(n.Stack, n.Constraints, parent, n.stackChildren())
	}
	return FromConstraints(n.Constraints).MinSize(parent, nil)
}

// Size implements StackChild.
func (n *Node) Size(parent *Size, free *FreeSpace) Size {
	if n.Type == NodeTypeStack {
		return StackSize(n.Stack, n.Constraints, parent, free, n.stackChildren())
	}
	return FromConstraints(n.Constraints).Size(parent, nil, free)
}

func (n *Node) stackChildren() []StackChild {
	out := make([]StackChild, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// Layout resolves the node and its whole subtree against a parent of the
// given size. parent may be nil when the container size is unknown.
func (n *Node) Layout(parent *Size) {
	var stats *layoutStats
	if globalDebug {
		stats = startLayoutStats()
	}

	if n.Type == NodeTypeStack {
		l := LayoutStack(n.Stack, n.Constraints, parent, n.stackChildren())
		n.rect = l.Rect
		n.applyStackLayout(l, stats)
	} else {
		n.rect = FromConstraints(n.Constraints).Rect(parent, nil, nil, true)
		n.layoutFrameChildren(stats)
	}
	n.layoutDirty = false

	if stats != nil {
		stats.log(n)
	}
}

// LayoutIfDirty runs Layout only when something in the tree changed.
func (n *Node) LayoutIfDirty(parent *Size) bool {
	if !n.layoutDirty {
		return false
	}
	n.Layout(parent)
	return true
}

// layoutContents lays out the children of a node whose rect has already
// been assigned by its parent stack.
func (n *Node) layoutContents(stats *layoutStats) {
	if n.Type == NodeTypeStack {
		// The parent decided this stack's size; lay out inside exactly that.
		self := Constraints{Width: Fixed(n.rect.Width), Height: Fixed(n.rect.Height)}
		n.applyStackLayout(LayoutStack(n.Stack, self, nil, n.stackChildren()), stats)
	} else {
		n.layoutFrameChildren(stats)
	}
	n.layoutDirty = false
}

func (n *Node) layoutFrameChildren(stats *layoutStats) {
	size := n.rect.Size()
	for _, c := range n.children {
		if c.Type == NodeTypeStack {
			l := LayoutStack(c.Stack, c.Constraints, &size, c.stackChildren())
			c.rect = l.Rect
			c.applyStackLayout(l, stats)
		} else {
			c.rect = FromConstraints(c.Constraints).Rect(&size, nil, nil, true)
			c.layoutFrameChildren(stats)
		}
		c.layoutDirty = false
		stats.count(c)
	}
}

func (n *Node) applyStackLayout(l StackLayout, stats *layoutStats) {
	for _, e := range l.Children {
		c := n.children[e.Index]
		c.rect = e.Rect
		if e.Visible {
			c.layoutContents(stats)
		} else {
			c.layoutDirty = false
		}
		stats.count(c)
	}
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
