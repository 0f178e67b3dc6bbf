package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsvensson/huekit"
	"github.com/zclconf/go-cty/cty"
)

var errStopWalk = errors.New("stop walk")

// Node is a palette entry that can be both a colour and a group.
// Color is nil for groups without a color attribute. Children is nil for
// leaves and keeps source order for groups.
type Node struct {
	Name     string
	Color    *huekit.Color
	Children []*Node
}

// Child returns the direct child called name.
func (n *Node) Child(name string) (*Node, bool) {
	for _, c := range n.Children {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// IsGroup reports whether the node came from a block.
func (n *Node) IsGroup() bool { return n.Children != nil }

// add appends a child, replacing one with the same name.
func (n *Node) add(child *Node) {
	for i, c := range n.Children {
		if c.Name == child.Name {
			n.Children[i] = child
			return
		}
	}
	n.Children = append(n.Children, child)
}

// Lookup resolves a path of names to a colour. A group resolves to its own
// color attribute.
func (n *Node) Lookup(path []string) (*huekit.Color, error) {
	current := n
	for _, part := range path {
		child, ok := current.Child(part)
		if !ok {
			if !current.IsGroup() {
				return nil, fmt.Errorf("path not found: %s is a leaf, cannot traverse further", part)
			}
			return nil, fmt.Errorf("path not found: %q does not exist", part)
		}
		current = child
	}
	if current.Color == nil {
		return nil, fmt.Errorf("path is a group, not a color; add a color attribute or reference a specific child")
	}
	return current.Color, nil
}

// Walk calls fn for every node below n, depth first in source order, with
// the node's path from n. Returning an error stops the walk.
func (n *Node) Walk(fn func(path []string, node *Node) error) error {
	return n.walk(nil, fn)
}

func (n *Node) walk(prefix []string, fn func([]string, *Node) error) error {
	for _, c := range n.Children {
		path := append(append([]string(nil), prefix...), c.Name)
		if err := fn(path, c); err != nil {
			return err
		}
		if err := c.walk(path, fn); err != nil {
			return err
		}
	}
	return nil
}

// PathOf returns the dotted path of the first colour in source order that
// prints to the same hex8 as c.
func (n *Node) PathOf(c *huekit.Color) (string, bool) {
	want := c.ToHex8(false)
	var found string
	_ = n.Walk(func(path []string, node *Node) error {
		if node.Color != nil && node.Color.ToHex8(false) == want {
			found = strings.Join(path, ".")
			return errStopWalk
		}
		return nil
	})
	return found, found != ""
}

// value converts the node for an HCL evaluation context. Leaves become
// strings in their own notation; groups become objects with the group's
// colour under "color".
func (n *Node) value() cty.Value {
	if !n.IsGroup() {
		if n.Color != nil {
			return cty.StringVal(encode(n.Color))
		}
		return cty.EmptyObjectVal
	}

	vals := make(map[string]cty.Value, len(n.Children)+1)
	if n.Color != nil {
		vals["color"] = cty.StringVal(encode(n.Color))
	}
	for _, c := range n.Children {
		vals[c.Name] = c.value()
	}
	return cty.ObjectVal(vals)
}
