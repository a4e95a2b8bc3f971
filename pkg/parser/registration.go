package parser

import (
	"github.com/arthur-debert/cardrender/pkg/registry"
	"github.com/arthur-debert/cardrender/pkg/types"
)

// NewElementParserRegistration returns a registry holding the built-in
// element parsers. Each call returns an independent registry.
func NewElementParserRegistration() registry.Registry[ElementParser] {
	reg := registry.New[ElementParser]()
	for name, parse := range map[types.ElementType]ElementParser{
		types.ElementTextBlock:      parseTextBlock,
		types.ElementImage:          parseImage,
		types.ElementContainer:      parseContainer,
		types.ElementColumnSet:      parseColumnSet,
		types.ElementColumn:         parseColumn,
		types.ElementFactSet:        parseFactSet,
		types.ElementImageSet:       parseImageSet,
		types.ElementActionSet:      parseActionSet,
		types.ElementMedia:          parseMedia,
		types.ElementTextInput:      parseTextInput,
		types.ElementNumberInput:    parseNumberInput,
		types.ElementToggleInput:    parseToggleInput,
		types.ElementChoiceSetInput: parseChoiceSetInput,
	} {
		registry.MustRegister(reg, string(name), parse)
	}
	return reg
}

// NewActionParserRegistration returns a registry holding the built-in
// action parsers
func NewActionParserRegistration() registry.Registry[ActionParser] {
	reg := registry.New[ActionParser]()
	for name, parse := range map[types.ActionType]ActionParser{
		types.ActionOpenURL:          parseOpenURLAction,
		types.ActionSubmit:           parseSubmitAction,
		types.ActionExecute:          parseExecuteAction,
		types.ActionShowCard:         parseShowCardAction,
		types.ActionToggleVisibility: parseToggleVisibilityAction,
	} {
		registry.MustRegister(reg, string(name), parse)
	}
	return reg
}
