package decomp

import (
	"sort"

	"github.com/kestrelgraph/plantas/dcel"
)

// NiceKind classifies a NiceNode the way the four canonical
// tree-decomposition node kinds require.
type NiceKind int

const (
	NiceLeaf NiceKind = iota
	NiceIntroduce
	NiceForget
	NiceJoin
)

// NiceNode is one node of a nice tree decomposition: every node is a
// Leaf (singleton bag, no children), an Introduce or Forget node (one
// child whose bag differs from this node's by exactly one vertex,
// named in Vertex), or a Join (two children, both sharing this node's
// exact bag).
type NiceNode struct {
	Kind     NiceKind
	Vertex   dcel.VertexID
	Bag      map[dcel.VertexID]struct{}
	Children []*NiceNode
}

// wnode is the mutable working tree the four rewriting passes operate
// on in place, before the final classification pass freezes it into
// NiceNode values.
type wnode struct {
	vertices map[dcel.VertexID]struct{}
	children []*wnode
}

// NiceFrom rewrites a raw tree decomposition into nice form, following
// a four-pass pipeline: collapse any node with more than two children
// into a left-leaning binary chain, insert duplicate-bag copies above
// any node with exactly two children (so every join sees its own
// exact bag on both sides), insert an Introduce/Forget chain wherever
// a single child's bag differs from its parent's, then pad every leaf
// down to a singleton bag. A final pass classifies every node and
// fails loudly (ErrNotNiceTD) if the result does not actually satisfy
// the nice-TD shape, since that would be this package's own bug.
func NiceFrom(raw *RawTD) (*NiceNode, error) {
	if len(raw.Bags) == 0 {
		return nil, ErrEmptyGraph
	}

	root := buildWorkTree(raw, raw.Root)

	splitMultiChildren(root)
	insertDoubleChildCopies(root)
	insertIntroduceForgetChains(root)
	padLeavesToSingleton(root)

	nice, err := classify(root)
	if err != nil {
		return nil, err
	}
	return nice, nil
}

func buildWorkTree(raw *RawTD, id int) *wnode {
	bag := raw.Bags[id]
	n := &wnode{vertices: copySet(bag.Vertices)}
	for _, childID := range bag.Children {
		n.children = append(n.children, buildWorkTree(raw, childID))
	}
	return n
}

// splitMultiChildren turns any node with more than two children into
// a left-leaning chain: the first child stays directly attached, and
// every other child is re-parented under a new sibling bag carrying
// an identical copy of this node's vertex set. That sibling is then
// subject to the same rule, so a node with k children becomes a chain
// of k-1 binary splits.
func splitMultiChildren(n *wnode) {
	if len(n.children) <= 2 {
		for _, c := range n.children {
			splitMultiChildren(c)
		}
		return
	}

	right := n.children[0]
	left := &wnode{vertices: copySet(n.vertices), children: append([]*wnode{}, n.children[1:]...)}
	n.children = []*wnode{right, left}

	splitMultiChildren(right)
	splitMultiChildren(left)
}

// insertDoubleChildCopies ensures every node with exactly two children
// sees its own exact bag on both branches, by inserting a duplicate
// bag between the node and each of its two children.
func insertDoubleChildCopies(n *wnode) {
	if len(n.children) != 2 {
		for _, c := range n.children {
			insertDoubleChildCopies(c)
		}
		return
	}

	leftOrig, rightOrig := n.children[0], n.children[1]
	newLeft := &wnode{vertices: copySet(n.vertices), children: []*wnode{leftOrig}}
	newRight := &wnode{vertices: copySet(n.vertices), children: []*wnode{rightOrig}}
	n.children = []*wnode{newLeft, newRight}

	insertDoubleChildCopies(leftOrig)
	insertDoubleChildCopies(rightOrig)
}

// insertIntroduceForgetChains handles every node with exactly one
// child. If parent and child already carry the same bag (a node made
// redundant by insertDoubleChildCopies, or simply identical bags in
// the raw decomposition), it is spliced out entirely. Otherwise a
// chain of single-vertex-difference bags is inserted between them:
// going down, first dropping every vertex the parent has that the
// child lacks, one at a time (classify makes each such step an
// Introduce node), then adding every vertex the child has that the
// parent lacks, one at a time (each becomes a Forget node), until the
// chain's last bag matches the child's exactly.
func insertIntroduceForgetChains(n *wnode) {
	if len(n.children) != 1 {
		for _, c := range n.children {
			insertIntroduceForgetChains(c)
		}
		return
	}

	child := n.children[0]
	if setEqual(n.vertices, child.vertices) {
		n.children = child.children
		insertIntroduceForgetChains(n)
		return
	}

	working := copySet(n.vertices)
	tail := n

	for _, v := range sortedDifference(working, child.vertices) {
		delete(working, v)
		if setEqual(working, child.vertices) {
			break
		}
		next := &wnode{vertices: copySet(working)}
		tail.children = []*wnode{next}
		tail = next
	}

	working = copySet(tail.vertices)
	for _, v := range sortedDifference(child.vertices, working) {
		working[v] = struct{}{}
		if setEqual(working, child.vertices) {
			break
		}
		next := &wnode{vertices: copySet(working)}
		tail.children = []*wnode{next}
		tail = next
	}

	tail.children = []*wnode{child}
	insertIntroduceForgetChains(child)
}

// padLeavesToSingleton drops one vertex at a time below any leaf
// whose bag has more than one vertex (classify makes each node above
// a dropped vertex an Introduce node), until it bottoms out at a
// single-vertex bag, which is the only shape a Leaf node is allowed
// to have.
func padLeavesToSingleton(n *wnode) {
	if len(n.children) > 0 {
		for _, c := range n.children {
			padLeavesToSingleton(c)
		}
		return
	}

	working := copySet(n.vertices)
	tail := n
	for len(working) > 1 {
		v := sortedDifference(working, nil)[0]
		delete(working, v)
		next := &wnode{vertices: copySet(working)}
		tail.children = []*wnode{next}
		tail = next
	}
}

func classify(n *wnode) (*NiceNode, error) {
	switch len(n.children) {
	case 0:
		if len(n.vertices) != 1 {
			return nil, ErrNotNiceTD
		}
		return &NiceNode{Kind: NiceLeaf, Bag: n.vertices}, nil

	case 1:
		child := n.children[0]
		childNice, err := classify(child)
		if err != nil {
			return nil, err
		}
		diffUp := sortedDifference(n.vertices, child.vertices)
		diffDown := sortedDifference(child.vertices, n.vertices)
		switch {
		case len(diffUp) == 1 && len(diffDown) == 0 && len(n.vertices) == len(child.vertices)+1:
			return &NiceNode{Kind: NiceIntroduce, Vertex: diffUp[0], Bag: n.vertices, Children: []*NiceNode{childNice}}, nil
		case len(diffDown) == 1 && len(diffUp) == 0 && len(child.vertices) == len(n.vertices)+1:
			return &NiceNode{Kind: NiceForget, Vertex: diffDown[0], Bag: n.vertices, Children: []*NiceNode{childNice}}, nil
		default:
			return nil, ErrNotNiceTD
		}

	case 2:
		left, right := n.children[0], n.children[1]
		if !setEqual(n.vertices, left.vertices) || !setEqual(n.vertices, right.vertices) {
			return nil, ErrNotNiceTD
		}
		leftNice, err := classify(left)
		if err != nil {
			return nil, err
		}
		rightNice, err := classify(right)
		if err != nil {
			return nil, err
		}
		return &NiceNode{Kind: NiceJoin, Bag: n.vertices, Children: []*NiceNode{leftNice, rightNice}}, nil

	default:
		return nil, ErrNotNiceTD
	}
}

func copySet(s map[dcel.VertexID]struct{}) map[dcel.VertexID]struct{} {
	out := make(map[dcel.VertexID]struct{}, len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}

func setEqual(a, b map[dcel.VertexID]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for v := range a {
		if _, ok := b[v]; !ok {
			return false
		}
	}
	return true
}

// sortedDifference returns a\b (b may be nil, meaning the empty set),
// sorted by VertexID so chain construction is deterministic.
func sortedDifference(a, b map[dcel.VertexID]struct{}) []dcel.VertexID {
	var out []dcel.VertexID
	for v := range a {
		if _, ok := b[v]; !ok {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
