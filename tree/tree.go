package tree

// Node is one vertex of the finished tree: either a leaf wrapping a single
// entity, or an internal node with exactly two children and a mean-distance
// annotation. Nodes are built by Build and must not be mutated afterwards.
type Node struct {
	// Label is the entity label; set on leaves only.
	Label string

	// Index is the entity's position in the source matrix; set on leaves
	// only, -1 on internal nodes.
	Index int

	// Left and Right are the two children of an internal node, ordered by
	// smallest subtended leaf index. Both nil on leaves.
	Left, Right *Node

	// Mean is the mean original pairwise distance over all leaf pairs under
	// this node. Defined on internal nodes only; leaves keep it at 0 and
	// inherit their parent's value at serialization time.
	Mean float64
}

// IsLeaf reports whether n wraps a single entity.
func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// Leaves returns the leaf labels of the subtree in left-to-right order.
func (n *Node) Leaves() []string {
	var out []string
	n.walk(func(v *Node) {
		if v.IsLeaf() {
			out = append(out, v.Label)
		}
	})
	return out
}

// CountNodes returns the number of leaves and internal nodes in the subtree.
func (n *Node) CountNodes() (leaves, internal int) {
	n.walk(func(v *Node) {
		if v.IsLeaf() {
			leaves++
		} else {
			internal++
		}
	})
	return leaves, internal
}

// walk visits the subtree depth-first, children before siblings.
func (n *Node) walk(visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	n.Left.walk(visit)
	n.Right.walk(visit)
}
