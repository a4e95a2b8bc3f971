// Package render turns a parsed card into an abstract UI tree.
//
// A Renderer holds what a host configures once: the host config, the
// element and action renderer registries, the advertised features, the
// style overrides and the action invoker. Each RenderCard call runs one
// render pass with its own Context and returns a RenderedCard, which owns
// the UI tree, the warnings of the pass and the interaction state needed
// to react to clicks (inline show cards, overflow swaps, visibility
// toggles and inputs).
//
// Element lookup goes through the registry first and the fallback chain
// second. Dropped elements produce no node; an element that cannot be
// rendered and has no fallback aborts the pass with ErrUnsupportedElement,
// returning the warnings gathered so far.
package render

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/arthur-debert/cardrender/pkg/cascade"
	"github.com/arthur-debert/cardrender/pkg/errors"
	"github.com/arthur-debert/cardrender/pkg/features"
	"github.com/arthur-debert/cardrender/pkg/hostconfig"
	"github.com/arthur-debert/cardrender/pkg/logging"
	"github.com/arthur-debert/cardrender/pkg/parser"
	"github.com/arthur-debert/cardrender/pkg/registry"
	"github.com/arthur-debert/cardrender/pkg/types"
	"github.com/arthur-debert/cardrender/pkg/ui"
)

// Renderer renders cards with a fixed host setup. It is safe for
// concurrent use as long as its registries are not modified while a
// card renders.
type Renderer struct {
	hostConfig *hostconfig.HostConfig
	elements   registry.Registry[ElementRenderer]
	actions    registry.Registry[ActionRenderer]
	features   *features.Registry
	overrides  cascade.StyleDictionary
	invoker    ActionInvoker
	parser     parser.Options
	overflow   *bool
}

// Option configures a Renderer
type Option func(*Renderer)

// WithHostConfig sets the host config, defaults otherwise
func WithHostConfig(hc *hostconfig.HostConfig) Option {
	return func(r *Renderer) { r.hostConfig = hc }
}

// WithElementRenderers replaces the element renderer registry
func WithElementRenderers(reg registry.Registry[ElementRenderer]) Option {
	return func(r *Renderer) { r.elements = reg }
}

// WithActionRenderers replaces the action renderer registry
func WithActionRenderers(reg registry.Registry[ActionRenderer]) Option {
	return func(r *Renderer) { r.actions = reg }
}

// WithFeatures sets the features requirements are checked against
func WithFeatures(f *features.Registry) Option {
	return func(r *Renderer) { r.features = f }
}

// WithOverrideStyles sets the host style dictionary consulted before the
// built-in action styles
func WithOverrideStyles(styles cascade.StyleDictionary) Option {
	return func(r *Renderer) { r.overrides = styles }
}

// WithActionInvoker sets the receiver of actions the card does not handle itself
func WithActionInvoker(invoker ActionInvoker) Option {
	return func(r *Renderer) { r.invoker = invoker }
}

// WithParserOptions sets the parser registries used by RenderJSON and RenderYAML
func WithParserOptions(opts parser.Options) Option {
	return func(r *Renderer) { r.parser = opts }
}

// WithOverflowMaxActions moves primary actions past MaxActions into the
// overflow menu instead of dropping them. It wins over the host config.
func WithOverflowMaxActions(enabled bool) Option {
	return func(r *Renderer) { r.overflow = &enabled }
}

// New returns a Renderer with the built-in renderers and default host
// config unless options say otherwise
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	if r.hostConfig == nil {
		r.hostConfig = hostconfig.Default()
	}
	if r.overflow != nil && r.hostConfig.Overflow.OverflowMaxActions != *r.overflow {
		r.hostConfig = r.hostConfig.Clone()
		r.hostConfig.Overflow.OverflowMaxActions = *r.overflow
	}
	if r.elements == nil {
		r.elements = NewElementRendererRegistration()
	}
	if r.actions == nil {
		r.actions = NewActionRendererRegistration()
	}
	if r.features == nil {
		r.features = features.NewDefault()
	}
	return r
}

// HostConfig returns the host config cards render with
func (r *Renderer) HostConfig() *hostconfig.HostConfig { return r.hostConfig }

// ElementRenderers returns the element renderer registry
func (r *Renderer) ElementRenderers() registry.Registry[ElementRenderer] { return r.elements }

// ActionRenderers returns the action renderer registry
func (r *Renderer) ActionRenderers() registry.Registry[ActionRenderer] { return r.actions }

// Features returns the feature registry
func (r *Renderer) Features() *features.Registry { return r.features }

func (r *Renderer) newContext(card *RenderedCard) *Context {
	return &Context{
		hostConfig: r.hostConfig,
		elements:   r.elements,
		actions:    r.actions,
		features:   r.features,
		styles: cascade.StyleSources{
			Overrides: r.overrides,
			Defaults:  cascade.DefaultSentimentStyles(r.hostConfig),
		},
		card: card,
	}
}

// RenderCard renders a parsed card. On error the returned RenderedCard
// is still non-nil and carries the warnings raised before the failure.
func (r *Renderer) RenderCard(card *types.Card) (*RenderedCard, error) {
	if card == nil {
		return nil, errors.New(errors.ErrInvalidInput, "no card to render")
	}
	logger := logging.GetLogger("render")
	defer logging.LogOperationStart(logger, "RenderCard")()

	rc := newRenderedCard(uuid.NewString(), card, r.invoker)
	ctx := r.newContext(rc)

	if !r.features.SupportsSchema(card.Version) {
		supported, _ := r.features.Version(features.SchemaFeature)
		ctx.AddWarning(types.WarnUnsupportedSchemaVersion,
			fmt.Sprintf("Schema version %s is newer than the supported version %s", card.Version, supported))
	}

	root, err := ctx.renderCardBody(card, Args{})
	if err != nil {
		logger.Debug().Err(err).Str("card", rc.ID).Int("warnings", len(rc.Warnings)).Msg("render aborted")
		return rc, err
	}
	rc.Root = root

	logger.Debug().
		Str("card", rc.ID).
		Int("inputs", len(rc.inputOrder)).
		Int("actionSets", len(rc.actionSets)).
		Int("warnings", len(rc.Warnings)).
		Msg("rendered card")
	return rc, nil
}

// RenderJSON parses a JSON card and renders it. Parse warnings come
// before render warnings.
func (r *Renderer) RenderJSON(data []byte) (*RenderedCard, error) {
	parsed, err := parser.Parse(data, r.parser)
	if err != nil {
		return nil, err
	}
	return r.renderParsed(parsed)
}

// RenderYAML parses a YAML card and renders it
func (r *Renderer) RenderYAML(data []byte) (*RenderedCard, error) {
	parsed, err := parser.ParseYAML(data, r.parser)
	if err != nil {
		return nil, err
	}
	return r.renderParsed(parsed)
}

func (r *Renderer) renderParsed(parsed *parser.ParseResult) (*RenderedCard, error) {
	rc, err := r.RenderCard(parsed.Card)
	if rc != nil {
		rc.Warnings = append(append(types.Warnings(nil), parsed.Warnings...), rc.Warnings...)
	}
	return rc, err
}

// renderCardBody renders a card or a show card into a card node: body,
// then actions, wrapped by the card select action
func (c *Context) renderCardBody(card *types.Card, args Args) (*ui.Node, error) {
	hc := c.hostConfig
	style := cascade.InheritStyle(card.Style, args.ContainerStyle)

	node := ui.NewNode(ui.KindCard)
	node.Style = string(style)
	node.Background = cascade.ContainerColors(hc, style).BackgroundColor
	if !args.IsInShowCard {
		p := int(hc.Spacing.Padding)
		node.Padding = ui.Thickness{Left: p, Top: p, Right: p, Bottom: p}
	}
	node.SetProp("version", card.Version)
	node.SetProp("verticalAlignment", string(card.VerticalContentAlignment))
	if card.MinHeight > 0 {
		node.SetProp("minHeight", fmt.Sprint(card.MinHeight))
	}
	if card.Lang != "" {
		node.SetProp("lang", card.Lang)
	}

	bodyArgs := Args{ContainerStyle: style, IsInShowCard: args.IsInShowCard}
	body, err := c.RenderElements(card.Body, bodyArgs)
	if err != nil {
		return nil, err
	}
	node.Add(body...)

	if len(card.Actions) > 0 {
		if !hc.SupportsInteractivity {
			c.AddWarning(types.WarnInteractivityNotSupported,
				"Actions collection was present in card, but interactivity is not supported")
		} else {
			set, err := c.RenderActionSet(card.Actions, bodyArgs)
			if err != nil {
				return nil, err
			}
			if set != nil && len(node.Children) > 0 {
				set.Margin.Top = int(cascade.ResolveSpacing(hc, hc.Actions.Spacing))
			}
			node.Add(set)
		}
	}

	if card.SelectAction != nil {
		return c.wrapTouchTarget(card.SelectAction, node), nil
	}
	return node, nil
}
