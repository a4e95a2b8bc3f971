// Package parser turns card documents into the typed element tree.
//
// Documents are decoded from JSON or YAML into plain maps, then each
// object is handed to the parser registered for its "type" tag. Parsers
// for elements and actions live in two registries that hosts can extend
// or override:
//
//	elements := parser.NewElementParserRegistration()
//	elements.Register("Rating", parseRating)
//	result, err := parser.Parse(data, parser.Options{Elements: elements})
//
// Unknown type tags do not fail the parse. They become UnknownElement or
// UnknownAction values that keep their fallback, so the renderer can
// still fall back or drop them.
package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/cardrender/pkg/errors"
	"github.com/arthur-debert/cardrender/pkg/logging"
	"github.com/arthur-debert/cardrender/pkg/registry"
	"github.com/arthur-debert/cardrender/pkg/types"
)

// ElementParser builds an element from its properties. Common properties
// (id, spacing, fallback, requires, ...) are read by the caller afterwards.
type ElementParser func(p *Props) (types.CardElement, error)

// ActionParser builds an action from its properties
type ActionParser func(p *Props) (types.ActionElement, error)

// Options configures a parse. Nil registries use the built-in parsers.
type Options struct {
	Elements registry.Registry[ElementParser]
	Actions  registry.Registry[ActionParser]
}

// ParseResult is a parsed card plus the warnings raised while parsing
type ParseResult struct {
	Card     *types.Card
	Warnings types.Warnings
}

// Context carries the registries and warnings of one parse
type Context struct {
	elements registry.Registry[ElementParser]
	actions  registry.Registry[ActionParser]
	warnings *types.Warnings
}

func newContext(opts Options, warnings *types.Warnings) *Context {
	ctx := &Context{elements: opts.Elements, actions: opts.Actions, warnings: warnings}
	if ctx.elements == nil {
		ctx.elements = NewElementParserRegistration()
	}
	if ctx.actions == nil {
		ctx.actions = NewActionParserRegistration()
	}
	return ctx
}

// AddWarning implements types.WarningSink
func (c *Context) AddWarning(code types.WarningStatusCode, message string) {
	c.warnings.AddWarning(code, message)
}

// Parse decodes a JSON card document
func Parse(data []byte, opts Options) (*ParseResult, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrParse, "invalid card JSON")
	}
	return ParseMap(doc, opts)
}

// ParseYAML decodes a YAML card document
func ParseYAML(data []byte, opts Options) (*ParseResult, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrParse, "invalid card YAML")
	}
	return ParseMap(doc, opts)
}

// ParseMap parses an already decoded card document
func ParseMap(doc map[string]any, opts Options) (*ParseResult, error) {
	logger := logging.GetLogger("parser")
	if doc == nil {
		return nil, errors.New(errors.ErrParse, "empty card document")
	}

	result := &ParseResult{}
	ctx := newContext(opts, &result.Warnings)

	typeName, _ := doc["type"].(string)
	if typeName != types.CardTypeName {
		return nil, errors.Newf(errors.ErrParse, "document type must be %q, got %q", types.CardTypeName, typeName).
			WithDetail("type", typeName)
	}

	card, err := ctx.parseCard(doc)
	if err != nil {
		return nil, err
	}
	result.Card = card

	logger.Debug().
		Str("version", card.Version).
		Int("body", len(card.Body)).
		Int("actions", len(card.Actions)).
		Int("warnings", len(result.Warnings)).
		Msg("parsed card")
	return result, nil
}

func (c *Context) parseCard(doc map[string]any) (*types.Card, error) {
	p := newProps(c, doc, types.CardTypeName)
	card := types.NewCard(p.String("version"))
	p.Any("$schema")

	var err error
	if card.Body, err = c.ParseElements(p.Array("body")); err != nil {
		return nil, err
	}
	if card.Actions, err = c.ParseActions(p.Array("actions")); err != nil {
		return nil, err
	}
	if card.SelectAction, err = c.parseOptionalAction(p.Object("selectAction")); err != nil {
		return nil, err
	}

	card.Style = Enum(p, "style", types.ParseContainerStyle, types.ContainerStyleNone)
	card.FallbackText = p.String("fallbackText")
	card.Speak = p.String("speak")
	card.Lang = p.String("lang")
	card.MinHeight = p.Pixels("minHeight")
	card.Height = Enum(p, "height", types.ParseHeightType, types.HeightAuto)
	card.VerticalContentAlignment = Enum(p, "verticalContentAlignment", types.ParseVerticalContentAlignment, types.VAlignTop)
	return card, nil
}

// ParseElements parses an array of element objects. Entries that are not
// objects are skipped with a warning.
func (c *Context) ParseElements(items []any) ([]types.CardElement, error) {
	if len(items) == 0 {
		return nil, nil
	}
	out := make([]types.CardElement, 0, len(items))
	for _, item := range items {
		obj, ok := asObject(item)
		if !ok {
			c.AddWarning(types.WarnInvalidValue, fmt.Sprintf("Skipping element that is not an object: %v", item))
			continue
		}
		el, err := c.ParseElement(obj)
		if err != nil {
			return nil, err
		}
		out = append(out, el)
	}
	return out, nil
}

// ParseElement parses one element object
func (c *Context) ParseElement(obj map[string]any) (types.CardElement, error) {
	typeName, err := typeOf(obj)
	if err != nil {
		return nil, err
	}
	p := newProps(c, obj, typeName)

	var el types.CardElement
	if parse, lookupErr := c.elements.Get(typeName); lookupErr == nil {
		if el, err = parse(p); err != nil {
			return nil, errors.Wrapf(err, errors.ErrParse, "parsing %s", typeName)
		}
	} else {
		c.AddWarning(types.WarnUnknownElementType, fmt.Sprintf("Unknown element type %s", typeName))
		el = types.NewUnknownElement(typeName, obj)
	}

	if err := c.readElementCommon(p, el); err != nil {
		return nil, err
	}
	return el, nil
}

func (c *Context) readElementCommon(p *Props, el types.CardElement) error {
	el.SetID(p.String("id"))
	el.SetSpacing(Enum(p, "spacing", types.ParseSpacing, types.SpacingDefault))
	el.SetSeparator(p.Bool("separator", false))
	el.SetIsVisible(p.Bool("isVisible", true))
	if !p.used["height"] {
		el.SetHeight(Enum(p, "height", types.ParseHeightType, types.HeightAuto))
	}
	el.SetRequirements(p.Requirements())

	switch fb := p.Any("fallback").(type) {
	case nil:
	case string:
		if t, ok := types.ParseFallbackType(fb); ok && t == types.FallbackDrop {
			if err := el.SetFallback(types.FallbackDrop, nil); err != nil {
				return err
			}
		} else {
			p.invalid("fallback", fb, `"drop" or an element`)
		}
	default:
		obj, ok := asObject(fb)
		if !ok {
			p.invalid("fallback", fb, `"drop" or an element`)
			break
		}
		content, err := c.ParseElement(obj)
		if err != nil {
			return err
		}
		if err := el.SetFallback(types.FallbackContent, content); err != nil {
			return err
		}
	}

	if _, unknown := el.(*types.UnknownElement); !unknown {
		el.SetAdditionalProperties(p.Rest())
	}
	return nil
}

// ParseActions parses an array of action objects
func (c *Context) ParseActions(items []any) ([]types.ActionElement, error) {
	if len(items) == 0 {
		return nil, nil
	}
	out := make([]types.ActionElement, 0, len(items))
	for _, item := range items {
		obj, ok := asObject(item)
		if !ok {
			c.AddWarning(types.WarnInvalidValue, fmt.Sprintf("Skipping action that is not an object: %v", item))
			continue
		}
		a, err := c.ParseAction(obj)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (c *Context) parseOptionalAction(obj map[string]any) (types.ActionElement, error) {
	if obj == nil {
		return nil, nil
	}
	return c.ParseAction(obj)
}

// ParseAction parses one action object
func (c *Context) ParseAction(obj map[string]any) (types.ActionElement, error) {
	typeName, err := typeOf(obj)
	if err != nil {
		return nil, err
	}
	p := newProps(c, obj, typeName)

	var a types.ActionElement
	if parse, lookupErr := c.actions.Get(typeName); lookupErr == nil {
		if a, err = parse(p); err != nil {
			return nil, errors.Wrapf(err, errors.ErrParse, "parsing %s", typeName)
		}
	} else {
		c.AddWarning(types.WarnUnknownActionElementType, fmt.Sprintf("Unknown action type %s", typeName))
		a = types.NewUnknownAction(typeName, obj)
	}

	if err := c.readActionCommon(p, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (c *Context) readActionCommon(p *Props, a types.ActionElement) error {
	a.SetID(p.String("id"))
	a.SetTitle(p.String("title"))
	a.SetIconURL(p.String("iconUrl"))
	a.SetTooltip(p.String("tooltip"))
	if style := p.String("style"); style != "" {
		a.SetStyle(style)
	}
	a.SetMode(Enum(p, "mode", types.ParseActionMode, types.ActionModePrimary))
	a.SetIsEnabled(p.Bool("isEnabled", true))
	a.SetRequirements(p.Requirements())

	switch fb := p.Any("fallback").(type) {
	case nil:
	case string:
		if t, ok := types.ParseFallbackType(fb); ok && t == types.FallbackDrop {
			if err := a.SetFallback(types.FallbackDrop, nil); err != nil {
				return err
			}
		} else {
			p.invalid("fallback", fb, `"drop" or an action`)
		}
	default:
		obj, ok := asObject(fb)
		if !ok {
			p.invalid("fallback", fb, `"drop" or an action`)
			break
		}
		content, err := c.ParseAction(obj)
		if err != nil {
			return err
		}
		if err := a.SetFallback(types.FallbackContent, content); err != nil {
			return err
		}
	}

	if _, unknown := a.(*types.UnknownAction); !unknown {
		a.SetAdditionalProperties(p.Rest())
	}
	return nil
}

func typeOf(obj map[string]any) (string, error) {
	typeName, _ := obj["type"].(string)
	if typeName == "" {
		return "", errors.New(errors.ErrParse, `object is missing its "type" property`).
			WithDetail("id", fmt.Sprint(obj["id"]))
	}
	return typeName, nil
}
