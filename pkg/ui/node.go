package ui

import (
	"github.com/arthur-debert/cardrender/pkg/errors"
	"github.com/arthur-debert/cardrender/pkg/types"
)

// Kind identifies the visual primitive a node stands for
type Kind string

const (
	KindCard          Kind = "Card"
	KindStack         Kind = "StackPanel"
	KindGrid          Kind = "Grid"
	KindText          Kind = "TextBlock"
	KindImage         Kind = "Image"
	KindButton        Kind = "Button"
	KindFlyout        Kind = "MenuFlyout"
	KindMenuItem      Kind = "MenuFlyoutItem"
	KindSeparator     Kind = "Separator"
	KindSpacer        Kind = "Spacer"
	KindInput         Kind = "Input"
	KindMedia         Kind = "Media"
	KindTouchTarget   Kind = "TouchTarget"
	KindFactSet       Kind = "FactSet"
	KindShowCardPanel Kind = "ShowCardPanel"
	KindActionSet     Kind = "ActionSet"
)

// Orientation of a stack panel
type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// Thickness is a margin or padding in device-independent pixels. Panels
// use negative values to pull their outer children flush.
type Thickness struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// IsZero reports whether all sides are zero
func (t Thickness) IsZero() bool {
	return t == Thickness{}
}

// Negate flips the sign of every side
func (t Thickness) Negate() Thickness {
	return Thickness{Left: -t.Left, Top: -t.Top, Right: -t.Right, Bottom: -t.Bottom}
}

// Node is one primitive in the abstract UI tree produced by a render pass.
// Exporters turn a tree into terminal output, JSON or XAML markup.
type Node struct {
	Kind Kind
	// Name is the card element id, if any
	Name        string
	Text        string
	Props       map[string]string
	Style       string
	Background  string
	Foreground  string
	Margin      Thickness
	Padding     Thickness
	HAlign      types.HorizontalAlignment
	Orientation Orientation
	Visible     bool
	// Column is the grid column of the node inside its parent, -1 when unset
	Column   int
	Children []*Node
	Flyout   *Node

	// Action is the action a button or menu item invokes
	Action  types.ActionElement
	OnClick func() error
}

// NewNode returns a visible node with no grid column
func NewNode(kind Kind) *Node {
	return &Node{Kind: kind, Visible: true, Column: -1}
}

// Add appends children and returns n
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// SetProp sets a string property and returns n
func (n *Node) SetProp(key, value string) *Node {
	if n.Props == nil {
		n.Props = make(map[string]string)
	}
	n.Props[key] = value
	return n
}

// Prop returns a property or ""
func (n *Node) Prop(key string) string {
	return n.Props[key]
}

// Walk visits n and its descendants depth first, flyout contents after
// children. Returning false from fn prunes the subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
	if n.Flyout != nil {
		n.Flyout.Walk(fn)
	}
}

// Find returns the first node matching pred
func (n *Node) Find(pred func(*Node) bool) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if pred(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node matching pred in walk order
func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if pred(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// FindByName returns the first node carrying the element id
func (n *Node) FindByName(name string) *Node {
	return n.Find(func(c *Node) bool { return c.Name == name })
}

// Click invokes the node's handler. Hidden nodes and nodes without a
// handler cannot be clicked.
func (n *Node) Click() error {
	if n.OnClick == nil {
		return errors.Newf(errors.ErrInvalidInput, "%s node is not clickable", n.Kind)
	}
	if !n.Visible {
		return errors.Newf(errors.ErrInvalidInput, "%s node %q is hidden", n.Kind, n.Text)
	}
	return n.OnClick()
}
