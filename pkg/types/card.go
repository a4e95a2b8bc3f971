package types

// CardTypeName is the type tag of a card document root
const CardTypeName = "AdaptiveCard"

// Card is the root of a card document. Show cards nest further cards.
type Card struct {
	Version                  string
	Body                     []CardElement
	Actions                  []ActionElement
	SelectAction             ActionElement
	Style                    ContainerStyle
	FallbackText             string
	Speak                    string
	Lang                     string
	MinHeight                uint32
	Height                   HeightType
	VerticalContentAlignment VerticalContentAlignment
}

// NewCard returns an empty card of the given schema version
func NewCard(version string) *Card {
	return &Card{
		Version:                  version,
		Height:                   HeightAuto,
		VerticalContentAlignment: VAlignTop,
	}
}

// WalkElements visits elements depth first in document order, descending
// into collections. Returning false from fn skips the element's children.
func WalkElements(elements []CardElement, fn func(CardElement) bool) {
	for _, el := range elements {
		if el == nil {
			continue
		}
		if !fn(el) {
			continue
		}
		if c, ok := el.(Collection); ok {
			WalkElements(c.Children(), fn)
		}
	}
}

// FindElement returns the first element in the tree with the given id
func FindElement(elements []CardElement, id string) CardElement {
	var found CardElement
	WalkElements(elements, func(el CardElement) bool {
		if found != nil {
			return false
		}
		if el.ID() == id {
			found = el
			return false
		}
		return true
	})
	return found
}
