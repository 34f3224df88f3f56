package menu

import "strings"

// RootID identifies the top of every tree.
const RootID = "root"

// Tree is a built menu with id lookup. Ids follow the parent:child scheme.
type Tree struct {
	root  *Node
	nodes map[string]*Node
}

func newTree(title string, children ...*Node) *Tree {
	root := &Node{Item: Item{ID: RootID, Label: title}, Children: children}
	t := &Tree{root: root, nodes: make(map[string]*Node)}
	t.index(root)
	return t
}

func (t *Tree) index(n *Node) {
	t.nodes[n.ID] = n
	for _, child := range n.Children {
		t.index(child)
	}
}

func (t *Tree) Root() *Node {
	return t.root
}

// Find locates a node by ID.
func (t *Tree) Find(id string) (*Node, bool) {
	if t == nil {
		return nil, false
	}
	node, ok := t.nodes[id]
	return node, ok
}

// Child resolves the child of parentID whose id ends in key.
func (t *Tree) Child(parentID, key string) (*Node, bool) {
	parent, ok := t.Find(parentID)
	if !ok {
		return nil, false
	}
	for _, child := range parent.Children {
		if _, k := parentKey(child.ID); k == key {
			return child, true
		}
	}
	return nil, false
}

// Items lists the entries under id, or nil when id is unknown.
func (t *Tree) Items(id string) []Item {
	node, ok := t.Find(id)
	if !ok {
		return nil
	}
	return node.Items()
}

// Actions returns the ids of every leaf that is not a separator, in menu
// order.
func (t *Tree) Actions() []string {
	var ids []string
	var walk func(*Node)
	walk = func(n *Node) {
		for _, child := range n.Children {
			if child.Separator {
				continue
			}
			if child.Leaf() {
				ids = append(ids, child.ID)
				continue
			}
			walk(child)
		}
	}
	walk(t.root)
	return ids
}

// ParentID returns the id of the menu containing id.
func ParentID(id string) string {
	parent, _ := parentKey(id)
	return parent
}

func parentKey(id string) (string, string) {
	if id == "" {
		return RootID, ""
	}
	if !strings.Contains(id, ":") {
		return RootID, id
	}
	idx := strings.LastIndex(id, ":")
	return id[:idx], id[idx+1:]
}
