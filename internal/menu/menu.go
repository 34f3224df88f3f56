// Package menu projects the current settings into the application menu and
// the per-window context menu. Building is pure: the same settings and
// platform always yield the same tree.
package menu

import "runtime"

// Platform selects platform-specific menu structure.
type Platform string

const (
	Darwin  Platform = "darwin"
	Linux   Platform = "linux"
	Windows Platform = "windows"
)

// Current returns the platform the binary runs on.
func Current() Platform {
	return Platform(runtime.GOOS)
}

// Valid reports whether p is one of the known platforms.
func (p Platform) Valid() bool {
	switch p {
	case Darwin, Linux, Windows:
		return true
	}
	return false
}

// QuitsOnLastClose reports whether closing the final window ends the
// application.
func (p Platform) QuitsOnLastClose() bool {
	return p != Darwin
}

// Role names a standard OS-provided menu behaviour.
type Role string

const (
	RoleAbout      Role = "about"
	RoleServices   Role = "services"
	RoleHide       Role = "hide"
	RoleHideOthers Role = "hideOthers"
	RoleUnhide     Role = "unhide"
	RoleQuit       Role = "quit"
	RoleClose      Role = "close"
)

// Item is a single menu entry.
type Item struct {
	ID          string
	Label       string
	Accelerator string
	Role        Role
	Separator   bool
}

// Node is an Item with its ordered submenu.
type Node struct {
	Item
	Children []*Node
}

// Leaf reports whether the node triggers an action rather than opening a
// submenu.
func (n *Node) Leaf() bool {
	return len(n.Children) == 0
}

// Items returns the node's children as plain items, separators included.
func (n *Node) Items() []Item {
	items := make([]Item, 0, len(n.Children))
	for _, child := range n.Children {
		items = append(items, child.Item)
	}
	return items
}
