package thread

// Node is one reply in the derived response tree.
type Node struct {
	Reply    *Reply
	Children []*Node
}

// BuildTree derives the reply tree implied by MessageParent -> MessageNum.
// The parser itself maintains no tree; this is a consumer convenience.
//
// A parent must precede its children in page order, which holds for any
// page this backend renders. Replies whose parent is the root sentinel
// (-1), unset, or references a sequence number not seen earlier become
// roots rather than being lost. Input order is preserved among siblings.
func BuildTree(replies []*Reply) []*Node {
	var roots []*Node
	seen := make(map[int]*Node, len(replies))
	for _, r := range replies {
		n := &Node{Reply: r}

		var parent *Node
		if p := r.MessageParent; p != nil && *p != -1 {
			parent = seen[*p]
		}
		if parent == nil {
			roots = append(roots, n)
		} else {
			parent.Children = append(parent.Children, n)
		}

		if num := r.MessageNum; num != nil {
			if _, taken := seen[*num]; !taken {
				seen[*num] = n
			}
		}
	}
	return roots
}

// Walk visits every node depth-first, calling fn with the node's depth.
func Walk(roots []*Node, fn func(n *Node, depth int)) {
	var visit func(n *Node, depth int)
	visit = func(n *Node, depth int) {
		fn(n, depth)
		for _, c := range n.Children {
			visit(c, depth+1)
		}
	}
	for _, r := range roots {
		visit(r, 0)
	}
}
