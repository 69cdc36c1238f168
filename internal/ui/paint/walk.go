package paint

// Walk visits n and its descendants depth first. Returning false from fn
// skips the node's children.
func (n Node) Walk(fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Find returns the first node with the given role.
func (n Node) Find(role string) (Node, bool) {
	var (
		found Node
		ok    bool
	)
	n.Walk(func(c Node) bool {
		if ok {
			return false
		}
		if c.Role == role {
			found, ok = c, true
			return false
		}
		return true
	})
	return found, ok
}

// FindAll returns every node with the given role in depth-first order.
func (n Node) FindAll(role string) []Node {
	var out []Node
	n.Walk(func(c Node) bool {
		if c.Role == role {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Count returns how many nodes carry every flag in s.
func (n Node) Count(s State) int {
	count := 0
	n.Walk(func(c Node) bool {
		if c.State.Has(s) {
			count++
		}
		return true
	})
	return count
}
