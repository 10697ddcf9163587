package keys

import "sort"

// KeyNode is one edge+node of the key trie. Children are kept sorted by
// rune so sibling lookup and the "is there a longer key still possible"
// question (childCount) are cheap and deterministic to walk/serialize.
type KeyNode struct {
	char     rune
	parent   *KeyNode // weak; lifetime is the tree, never touched after prune
	children []*KeyNode
	action   *Action
}

func newRoot() *KeyNode {
	return &KeyNode{}
}

// childCount is the number of descendant nodes (including itself) carrying
// a terminal action; used to answer "could this prefix still grow".
func (n *KeyNode) childCount() int {
	count := 0
	if n.action != nil && n.action.Kind != ActionNone {
		count++
	}
	for _, c := range n.children {
		count += c.childCount()
	}
	return count
}

// isAmbiguous reports whether n has both a completed action and children,
// i.e. more input could still extend the match.
func (n *KeyNode) isAmbiguous() bool {
	return n.action != nil && n.action.Kind != ActionNone && len(n.children) > 0
}

func (n *KeyNode) findChild(r rune) *KeyNode {
	i := sort.Search(len(n.children), func(i int) bool { return n.children[i].char >= r })
	if i < len(n.children) && n.children[i].char == r {
		return n.children[i]
	}
	return nil
}

// addChild inserts (or returns the existing) child edge for r, keeping
// children sorted by character.
func (n *KeyNode) addChild(r rune) *KeyNode {
	i := sort.Search(len(n.children), func(i int) bool { return n.children[i].char >= r })
	if i < len(n.children) && n.children[i].char == r {
		return n.children[i]
	}
	child := &KeyNode{char: r, parent: n}
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = child
	return child
}

func (n *KeyNode) removeChild(r rune) {
	for i, c := range n.children {
		if c.char == r {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// addPath walks/creates nodes for keys starting at root, returning the
// terminal node.
func addPath(root *KeyNode, keys []rune) *KeyNode {
	node := root
	for _, r := range keys {
		node = node.addChild(r)
	}
	return node
}

// findPath walks keys from root without creating nodes; ok is false if the
// path does not fully exist.
func findPath(root *KeyNode, keys []rune) (node *KeyNode, ok bool) {
	node = root
	for _, r := range keys {
		node = node.findChild(r)
		if node == nil {
			return nil, false
		}
	}
	return node, true
}

// prune removes dead nodes walking back up from a removed terminal: a node
// is removed once it has neither an action nor children.
func prune(leaf *KeyNode) {
	node := leaf
	for node != nil && node.parent != nil {
		if node.action == nil && len(node.children) == 0 {
			parent := node.parent
			parent.removeChild(node.char)
			node = parent
			continue
		}
		break
	}
}

// containsChain reports whether the path keys exists in root and ends on a
// node with a usable action (used by the builtin-shadow fallback).
func containsChain(root *KeyNode, keys []rune) bool {
	node, ok := findPath(root, keys)
	return ok && node.action != nil && node.action.Kind != ActionNone
}
