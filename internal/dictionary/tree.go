// Package dictionary implements the bilingual word tree: an unbalanced binary
// search tree ordered by the primary word, with the secondary word as tie-break.
//
// The tree shape depends only on insertion order. Lookups by secondary word
// cannot use the ordering and fall back to a pre-order scan.
//
// Tree is not safe for concurrent use.
package dictionary

import (
	"toeickilla/internal/domain"
)

// Node holds one entry and owns its two subtrees
type Node struct {
	entry domain.Entry
	left  *Node
	right *Node
}

// Entry returns the word pair stored in the node
func (n *Node) Entry() domain.Entry {
	return n.entry
}

// Primary returns the ordering word
func (n *Node) Primary() string {
	return n.entry.Primary
}

// Secondary returns the translation word
func (n *Node) Secondary() string {
	return n.entry.Secondary
}

// Tree is a bilingual dictionary keyed by primary word
type Tree struct {
	root *Node
}

// New creates an empty tree
func New() *Tree {
	return &Tree{}
}

// Insert adds a new leaf for the pair. Existing entries with the same
// primary word are kept; the new one lands next to them in secondary order.
func (t *Tree) Insert(primary, secondary string) {
	e := domain.Entry{Primary: primary, Secondary: secondary}

	link := &t.root
	for *link != nil {
		if e.Less((*link).entry) {
			link = &(*link).left
		} else {
			link = &(*link).right
		}
	}
	*link = &Node{entry: e}
}

// SearchPrimary returns the first node on the descent path whose primary
// word equals word, or nil
func (t *Tree) SearchPrimary(word string) *Node {
	n := t.root
	for n != nil {
		switch {
		case word == n.entry.Primary:
			return n
		case word < n.entry.Primary:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil
}

// SearchSecondary returns the first node in pre-order (node, left, right)
// whose secondary word equals word, or nil
func (t *Tree) SearchSecondary(word string) *Node {
	return searchSecondary(t.root, word)
}

func searchSecondary(n *Node, word string) *Node {
	if n == nil {
		return nil
	}
	if n.entry.Secondary == word {
		return n
	}
	if found := searchSecondary(n.left, word); found != nil {
		return found
	}
	return searchSecondary(n.right, word)
}

// Delete removes the first node reached by primary word descent.
// Deleting an absent word is a no-op.
func (t *Tree) Delete(primary string) {
	t.root = deleteNode(t.root, primary)
}

// deleteNode returns the new root of the subtree after removing primary.
func deleteNode(n *Node, primary string) *Node {
	if n == nil {
		return nil
	}

	switch {
	case primary < n.entry.Primary:
		n.left = deleteNode(n.left, primary)
	case primary > n.entry.Primary:
		n.right = deleteNode(n.right, primary)
	case n.left == nil:
		return n.right
	case n.right == nil:
		return n.left
	default:
		succ := leftmost(n.right)
		n.entry = succ.entry
		// Removal is by value: with duplicate primaries in the right subtree
		// this may drop a node other than succ.
		n.right = deleteNode(n.right, succ.entry.Primary)
	}
	return n
}

// Successor returns the leftmost node of n's right subtree, or nil
func (t *Tree) Successor(n *Node) *Node {
	if n == nil || n.right == nil {
		return nil
	}
	return leftmost(n.right)
}

// Predecessor returns the rightmost node of n's left subtree, or nil
func (t *Tree) Predecessor(n *Node) *Node {
	if n == nil || n.left == nil {
		return nil
	}
	n = n.left
	for n.right != nil {
		n = n.right
	}
	return n
}

func leftmost(n *Node) *Node {
	for n.left != nil {
		n = n.left
	}
	return n
}

// Walk visits entries in order until fn returns false
func (t *Tree) Walk(fn func(domain.Entry) bool) {
	walk(t.root, fn)
}

func walk(n *Node, fn func(domain.Entry) bool) bool {
	if n == nil {
		return true
	}
	if !walk(n.left, fn) {
		return false
	}
	if !fn(n.entry) {
		return false
	}
	return walk(n.right, fn)
}

// Entries returns all entries sorted by primary then secondary word
func (t *Tree) Entries() []domain.Entry {
	var entries []domain.Entry
	t.Walk(func(e domain.Entry) bool {
		entries = append(entries, e)
		return true
	})
	return entries
}

// Len returns the number of entries
func (t *Tree) Len() int {
	count := 0
	t.Walk(func(domain.Entry) bool {
		count++
		return true
	})
	return count
}

// Height returns the number of nodes on the longest root-to-leaf path
func (t *Tree) Height() int {
	return height(t.root)
}

func height(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// IsEmpty reports whether the tree has no root
func (t *Tree) IsEmpty() bool {
	return t.root == nil
}

// Root returns the root node, or nil for an empty tree
func (t *Tree) Root() *Node {
	return t.root
}
