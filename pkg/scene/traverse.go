package scene

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Traverse calls fn for o and every descendant in depth-first pre-order.
func (o *Object3D) Traverse(fn func(*Object3D)) {
	fn(o)
	for _, child := range o.children {
		child.Traverse(fn)
	}
}

// TraverseVisible is Traverse restricted to visible nodes. The subtree of an
// invisible node is skipped.
func (o *Object3D) TraverseVisible(fn func(*Object3D)) {
	if !o.Visible {
		return
	}
	fn(o)
	for _, child := range o.children {
		child.TraverseVisible(fn)
	}
}

// TraverseAncestors calls fn for each ancestor, nearest first.
func (o *Object3D) TraverseAncestors(fn func(*Object3D)) {
	for p := o.parent; p != nil; p = p.parent {
		fn(p)
	}
}

// FindByID returns the node in o's subtree with the given ID, or nil.
func (o *Object3D) FindByID(id uuid.UUID) *Object3D {
	return o.find(func(n *Object3D) bool { return n.id == id })
}

// FindByName returns the first node in o's subtree, in pre-order, with the
// given name, or nil.
func (o *Object3D) FindByName(name string) *Object3D {
	return o.find(func(n *Object3D) bool { return n.Name == name })
}

func (o *Object3D) find(match func(*Object3D) bool) *Object3D {
	if match(o) {
		return o
	}
	for _, child := range o.children {
		if found := child.find(match); found != nil {
			return found
		}
	}
	return nil
}

// Tree renders the hierarchy below o, one node per line with its local
// position.
func (o *Object3D) Tree() string {
	var sb strings.Builder
	var walk func(n *Object3D, level int)
	walk = func(n *Object3D, level int) {
		name := n.Name
		if name == "" {
			name = "<unnamed>"
		}
		if level == 0 {
			sb.WriteString("+: " + name + "\n")
		} else {
			p := n.Position
			sb.WriteString(strings.Repeat("    ", level))
			fmt.Fprintf(&sb, "\\-: %s : [%g, %g, %g]\n", name, p.X, p.Y, p.Z)
		}
		for _, child := range n.children {
			walk(child, level+1)
		}
	}
	walk(o, 0)
	return sb.String()
}
