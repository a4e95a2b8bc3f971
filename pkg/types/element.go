package types

import (
	"github.com/arthur-debert/cardrender/pkg/errors"
)

// ElementType is the schema type tag of a card element
type ElementType string

const (
	ElementTextBlock      ElementType = "TextBlock"
	ElementImage          ElementType = "Image"
	ElementContainer      ElementType = "Container"
	ElementColumnSet      ElementType = "ColumnSet"
	ElementColumn         ElementType = "Column"
	ElementFactSet        ElementType = "FactSet"
	ElementImageSet       ElementType = "ImageSet"
	ElementActionSet      ElementType = "ActionSet"
	ElementMedia          ElementType = "Media"
	ElementTextInput      ElementType = "Input.Text"
	ElementNumberInput    ElementType = "Input.Number"
	ElementToggleInput    ElementType = "Input.Toggle"
	ElementChoiceSetInput ElementType = "Input.ChoiceSet"
	ElementUnknown        ElementType = "Unknown"
)

// CardElement is a node in the parsed card tree
type CardElement interface {
	ElementType() ElementType
	// TypeName is the type tag as written in the card. It differs from
	// ElementType only for unknown elements.
	TypeName() string
	ID() string
	Spacing() Spacing
	Separator() bool
	IsVisible() bool
	Height() HeightType
	FallbackType() FallbackType
	FallbackContent() CardElement
	Requirements() []Requirement
	AdditionalProperties() map[string]any

	SetID(id string)
	SetSpacing(spacing Spacing)
	SetSeparator(separator bool)
	SetIsVisible(visible bool)
	SetHeight(height HeightType)
	SetRequirements(reqs []Requirement)
	SetAdditionalProperties(props map[string]any)
	SetFallback(fallbackType FallbackType, content CardElement) error
}

// ContainerBase is implemented by elements that paint a styled background
type ContainerBase interface {
	CardElement
	Selectable
	ContainerStyle() ContainerStyle
	Bleed() bool
	MinHeight() uint32
}

// Collection is implemented by elements that own child elements
type Collection interface {
	CardElement
	Children() []CardElement
}

// Selectable is implemented by elements that can carry a select action
type Selectable interface {
	SelectAction() ActionElement
	SetSelectAction(action ActionElement)
}

// InputElement is implemented by the Input.* elements
type InputElement interface {
	CardElement
	InputInfo() *InputProps
}

// BaseElement carries the properties shared by every card element
type BaseElement struct {
	elementType     ElementType
	typeName        string
	id              string
	spacing         Spacing
	separator       bool
	isVisible       bool
	height          HeightType
	fallbackType    FallbackType
	fallbackContent CardElement
	requirements    []Requirement
	additional      map[string]any
}

// NewBaseElement returns a visible element with default spacing and no fallback
func NewBaseElement(t ElementType) BaseElement {
	return BaseElement{
		elementType:  t,
		typeName:     string(t),
		spacing:      SpacingDefault,
		isVisible:    true,
		height:       HeightAuto,
		fallbackType: FallbackNone,
	}
}

func (b *BaseElement) ElementType() ElementType             { return b.elementType }
func (b *BaseElement) TypeName() string                     { return b.typeName }
func (b *BaseElement) ID() string                           { return b.id }
func (b *BaseElement) Spacing() Spacing                     { return b.spacing }
func (b *BaseElement) Separator() bool                      { return b.separator }
func (b *BaseElement) IsVisible() bool                      { return b.isVisible }
func (b *BaseElement) Height() HeightType                   { return b.height }
func (b *BaseElement) FallbackType() FallbackType           { return b.fallbackType }
func (b *BaseElement) FallbackContent() CardElement         { return b.fallbackContent }
func (b *BaseElement) Requirements() []Requirement          { return b.requirements }
func (b *BaseElement) AdditionalProperties() map[string]any { return b.additional }

func (b *BaseElement) SetID(id string)                              { b.id = id }
func (b *BaseElement) SetSpacing(spacing Spacing)                   { b.spacing = spacing }
func (b *BaseElement) SetSeparator(separator bool)                  { b.separator = separator }
func (b *BaseElement) SetIsVisible(visible bool)                    { b.isVisible = visible }
func (b *BaseElement) SetHeight(height HeightType)                  { b.height = height }
func (b *BaseElement) SetRequirements(reqs []Requirement)           { b.requirements = reqs }
func (b *BaseElement) SetAdditionalProperties(props map[string]any) { b.additional = props }

// SetFallback sets the fallback behavior. Content requires a non-nil
// element, every other type requires nil.
func (b *BaseElement) SetFallback(fallbackType FallbackType, content CardElement) error {
	if err := checkFallback(fallbackType, content == nil); err != nil {
		return err
	}
	b.fallbackType = fallbackType
	b.fallbackContent = content
	return nil
}

func checkFallback(fallbackType FallbackType, contentIsNil bool) error {
	switch fallbackType {
	case FallbackContent:
		if contentIsNil {
			return errors.New(errors.ErrInvalidInput, "content fallback requires fallback content")
		}
	case FallbackNone, FallbackDrop:
		if !contentIsNil {
			return errors.Newf(errors.ErrInvalidInput, "fallback type %q cannot carry fallback content", fallbackType)
		}
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown fallback type %q", fallbackType)
	}
	return nil
}

// selectable stores a select action for embedding
type selectable struct {
	selectAction ActionElement
}

func (s *selectable) SelectAction() ActionElement          { return s.selectAction }
func (s *selectable) SetSelectAction(action ActionElement) { s.selectAction = action }

// ContainerProps is embedded by containers, columns and column sets
type ContainerProps struct {
	selectable
	style     ContainerStyle
	bleed     bool
	minHeight uint32
}

func (c *ContainerProps) ContainerStyle() ContainerStyle          { return c.style }
func (c *ContainerProps) Bleed() bool                             { return c.bleed }
func (c *ContainerProps) MinHeight() uint32                       { return c.minHeight }
func (c *ContainerProps) SetContainerStyle(style ContainerStyle) { c.style = style }
func (c *ContainerProps) SetBleed(bleed bool)                     { c.bleed = bleed }
func (c *ContainerProps) SetMinHeight(px uint32)                  { c.minHeight = px }

// InputProps holds the properties common to all inputs
type InputProps struct {
	Label        string
	IsRequired   bool
	ErrorMessage string
}

func (p *InputProps) InputInfo() *InputProps { return p }
