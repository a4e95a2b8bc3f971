package render

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/arthur-debert/cardrender/pkg/cascade"
	"github.com/arthur-debert/cardrender/pkg/errors"
	"github.com/arthur-debert/cardrender/pkg/fallback"
	"github.com/arthur-debert/cardrender/pkg/hostconfig"
	"github.com/arthur-debert/cardrender/pkg/registry"
	"github.com/arthur-debert/cardrender/pkg/types"
	"github.com/arthur-debert/cardrender/pkg/ui"
)

// NewElementRendererRegistration returns a registry holding a renderer
// for every built-in element type
func NewElementRendererRegistration() registry.Registry[ElementRenderer] {
	r := registry.New[ElementRenderer]()
	builtins := map[types.ElementType]ElementRendererFunc{
		types.ElementTextBlock:      renderTextBlock,
		types.ElementImage:          renderImage,
		types.ElementContainer:      renderContainer,
		types.ElementColumnSet:      renderColumnSet,
		types.ElementColumn:         renderColumn,
		types.ElementFactSet:        renderFactSet,
		types.ElementImageSet:       renderImageSet,
		types.ElementActionSet:      renderActionSetElement,
		types.ElementMedia:          renderMedia,
		types.ElementTextInput:      renderTextInput,
		types.ElementNumberInput:    renderNumberInput,
		types.ElementToggleInput:    renderToggleInput,
		types.ElementChoiceSetInput: renderChoiceSetInput,
	}
	for t, fn := range builtins {
		registry.MustRegister[ElementRenderer](r, string(t), fn)
	}
	return r
}

func unexpected(el types.CardElement, want types.ElementType) error {
	return errors.Newf(errors.ErrInvalidInput, "renderer for %s got %s", want, el.TypeName())
}

func renderTextBlock(el types.CardElement, ctx *Context, args Args) (*ui.Node, error) {
	tb, ok := el.(*types.TextBlock)
	if !ok {
		return nil, unexpected(el, types.ElementTextBlock)
	}
	hc := ctx.HostConfig()

	size, weight, color, fontType, subtle := tb.Size, tb.Weight, tb.Color, tb.FontType, tb.IsSubtle
	node := ui.NewNode(ui.KindText)
	if tb.Style == types.TextStyleHeading {
		// Heading defaults apply to whatever the element left at default
		h := hc.TextStyles.Heading
		if size == types.TextSizeDefault {
			size = h.Size
		}
		if weight == types.TextWeightDefault {
			weight = h.Weight
		}
		if color == types.ColorDefault {
			color = h.Color
		}
		if fontType == types.FontTypeDefault {
			fontType = h.FontType
		}
		subtle = subtle || h.IsSubtle
		node.SetProp(propRole, "heading")
		node.SetProp("level", fmt.Sprint(hc.TextBlock.HeadingLevel))
	}

	node.Text = tb.Text
	node.HAlign = tb.HorizontalAlignment
	node.Foreground = cascade.ForegroundColor(hc, args.ContainerStyle, color, subtle)
	node.SetProp(propSize, fmt.Sprint(cascade.FontSize(hc, fontType, size)))
	node.SetProp(propWeight, fmt.Sprint(cascade.FontWeight(hc, fontType, weight)))
	node.SetProp("fontFamily", cascade.FontFamily(hc, fontType))
	node.SetProp(propWrap, strconv.FormatBool(tb.Wrap))
	if tb.MaxLines > 0 {
		node.SetProp("maxLines", fmt.Sprint(tb.MaxLines))
	}
	return node, nil
}

// resolveURL joins relative image urls onto the host image base url
func resolveURL(base, ref string) string {
	if base == "" || ref == "" {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil || r.IsAbs() {
		return ref
	}
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}

func renderImage(el types.CardElement, ctx *Context, args Args) (*ui.Node, error) {
	img, ok := el.(*types.Image)
	if !ok {
		return nil, unexpected(el, types.ElementImage)
	}
	hc := ctx.HostConfig()

	node := ui.NewNode(ui.KindImage)
	node.HAlign = img.HorizontalAlignment
	node.Background = img.BackgroundColor
	node.SetProp(propURL, resolveURL(hc.ImageBaseURL, img.URL))
	node.SetProp(propTooltip, img.AltText)
	if img.Style == types.ImageStylePerson {
		node.SetProp("shape", "circle")
	}

	size := img.Size
	if size == types.ImageSizeAuto && hc.Image.ImageSize != "" {
		size = hc.Image.ImageSize
	}
	switch {
	case img.PixelWidth > 0 || img.PixelHeight > 0:
		if img.PixelWidth > 0 {
			node.SetProp(propWidth, fmt.Sprint(img.PixelWidth))
		}
		if img.PixelHeight > 0 {
			node.SetProp("height", fmt.Sprint(img.PixelHeight))
		}
	case size == types.ImageSizeStretch:
		node.HAlign = types.HAlignStretch
	default:
		if px := cascade.ImageSize(hc, size); px > 0 {
			node.SetProp(propWidth, fmt.Sprint(px))
		}
	}
	return node, nil
}

// styledPanel builds the stack shared by containers and columns: its
// own style paints the background, children render inside that style.
func styledPanel(ctx *Context, el types.ContainerBase, items []types.CardElement, valign types.VerticalContentAlignment, args Args) (*ui.Node, error) {
	hc := ctx.HostConfig()
	own := el.ContainerStyle()
	style := cascade.InheritStyle(own, args.ContainerStyle)

	node := ui.NewNode(ui.KindStack)
	node.Orientation = ui.Vertical
	if own != types.ContainerStyleNone && own != args.ContainerStyle {
		colors := cascade.ContainerColors(hc, own)
		node.Style = string(own)
		node.Background = colors.BackgroundColor
		node.SetProp("border", colors.BorderColor)
	}
	node.Padding = cascade.ContainerPadding(hc, own, args.ContainerStyle)
	if el.Bleed() && !node.Padding.IsZero() {
		node.Margin = node.Padding.Negate()
	}
	if el.MinHeight() > 0 {
		node.SetProp("minHeight", fmt.Sprint(el.MinHeight()))
	}
	node.SetProp("verticalAlignment", string(valign))

	children, err := ctx.RenderElements(items, Args{
		ContainerStyle: style,
		IsInShowCard:   args.IsInShowCard,
		ParentElement:  el,
	})
	if err != nil {
		return nil, err
	}
	return node.Add(children...), nil
}

func renderContainer(el types.CardElement, ctx *Context, args Args) (*ui.Node, error) {
	c, ok := el.(*types.Container)
	if !ok {
		return nil, unexpected(el, types.ElementContainer)
	}
	return styledPanel(ctx, c, c.Items, c.VerticalContentAlignment, args)
}

func renderColumn(el types.CardElement, ctx *Context, args Args) (*ui.Node, error) {
	col, ok := el.(*types.Column)
	if !ok {
		return nil, unexpected(el, types.ElementColumn)
	}
	node, err := styledPanel(ctx, col, col.Items, col.VerticalContentAlignment, args)
	if err != nil {
		return nil, err
	}
	node.SetProp(propWidth, col.Width)
	return node, nil
}

func renderColumnSet(el types.CardElement, ctx *Context, args Args) (*ui.Node, error) {
	set, ok := el.(*types.ColumnSet)
	if !ok {
		return nil, unexpected(el, types.ElementColumnSet)
	}
	hc := ctx.HostConfig()
	own := set.ContainerStyle()

	grid := ui.NewNode(ui.KindGrid)
	grid.HAlign = set.HorizontalAlignment
	if own != types.ContainerStyleNone && own != args.ContainerStyle {
		grid.Style = string(own)
		grid.Background = cascade.ContainerColors(hc, own).BackgroundColor
	}
	grid.Padding = cascade.ContainerPadding(hc, own, args.ContainerStyle)

	childArgs := Args{
		ContainerStyle: cascade.InheritStyle(own, args.ContainerStyle),
		IsInShowCard:   args.IsInShowCard,
		ParentElement:  set,
	}
	column := 0
	for _, col := range set.Columns {
		node, effective, err := ctx.renderElement(col, childArgs)
		if err != nil {
			return nil, err
		}
		if node == nil {
			continue
		}
		if column > 0 {
			if sep := ctx.applySpacing(effective, node, true); sep != nil {
				sep.Column = column
				grid.Add(sep)
				column++
			}
		}
		node.Column = column
		grid.Add(node)
		column++
	}
	grid.SetProp("columns", fmt.Sprint(column))
	return grid, nil
}

func renderFactSet(el types.CardElement, ctx *Context, args Args) (*ui.Node, error) {
	fs, ok := el.(*types.FactSet)
	if !ok {
		return nil, unexpected(el, types.ElementFactSet)
	}
	hc := ctx.HostConfig()

	text := func(s string, cfg hostconfig.FactSetTextConfig, column int) *ui.Node {
		n := ui.NewNode(ui.KindText)
		n.Text = s
		n.Column = column
		n.Foreground = cascade.ForegroundColor(hc, args.ContainerStyle, cfg.Color, cfg.IsSubtle)
		n.SetProp(propSize, fmt.Sprint(cascade.FontSize(hc, cfg.FontType, cfg.Size)))
		n.SetProp(propWeight, fmt.Sprint(cascade.FontWeight(hc, cfg.FontType, cfg.Weight)))
		n.SetProp(propWrap, strconv.FormatBool(cfg.Wrap))
		if cfg.MaxWidth > 0 {
			n.SetProp("maxWidth", fmt.Sprint(cfg.MaxWidth))
		}
		return n
	}

	node := ui.NewNode(ui.KindFactSet)
	for _, f := range fs.Facts {
		row := ui.NewNode(ui.KindGrid)
		value := text(f.Value, hc.FactSet.Value, 1)
		value.Margin.Left = int(hc.FactSet.Spacing)
		row.Add(text(f.Title, hc.FactSet.Title, 0), value)
		node.Add(row)
	}
	return node, nil
}

func renderImageSet(el types.CardElement, ctx *Context, args Args) (*ui.Node, error) {
	set, ok := el.(*types.ImageSet)
	if !ok {
		return nil, unexpected(el, types.ElementImageSet)
	}
	size := set.ImageSize
	if size == types.ImageSizeAuto || size == types.ImageSizeStretch || size == "" {
		size = ctx.HostConfig().ImageSet.ImageSize
	}

	node := ui.NewNode(ui.KindStack)
	node.Orientation = ui.Horizontal
	node.SetProp(propWrap, "true")
	childArgs := Args{ContainerStyle: args.ContainerStyle, IsInShowCard: args.IsInShowCard, ParentElement: set}
	for _, child := range set.Images {
		if img, ok := child.(*types.Image); ok {
			sized := *img
			sized.Size = size
			child = &sized
		}
		n, err := ctx.RenderElement(child, childArgs)
		if err != nil {
			return nil, err
		}
		node.Add(n)
	}
	if h := ctx.HostConfig().ImageSet.MaxImageHeight; h > 0 {
		node.SetProp("maxImageHeight", fmt.Sprint(h))
	}
	return node, nil
}

func renderActionSetElement(el types.CardElement, ctx *Context, args Args) (*ui.Node, error) {
	set, ok := el.(*types.ActionSet)
	if !ok {
		return nil, unexpected(el, types.ElementActionSet)
	}
	if !ctx.HostConfig().SupportsInteractivity {
		ctx.AddWarning(types.WarnInteractivityNotSupported,
			"Actions collection was present in card, but interactivity is not supported")
		return nil, nil
	}
	args.ParentElement = set
	return ctx.RenderActionSet(set.Actions, args)
}

func renderMedia(el types.CardElement, ctx *Context, args Args) (*ui.Node, error) {
	m, ok := el.(*types.Media)
	if !ok {
		return nil, unexpected(el, types.ElementMedia)
	}
	hc := ctx.HostConfig()

	node := ui.NewNode(ui.KindMedia)
	poster := m.Poster
	if poster == "" {
		poster = hc.Media.DefaultPoster
	}
	node.SetProp("poster", resolveURL(hc.ImageBaseURL, poster))
	node.SetProp(propTooltip, m.AltText)
	node.SetProp("playButton", hc.Media.PlayButton)
	if len(m.Sources) > 0 {
		node.SetProp(propURL, m.Sources[0].URL)
		node.SetProp("mimeType", m.Sources[0].MimeType)
	}
	node.SetProp("sources", fmt.Sprint(len(m.Sources)))
	card := ctx.card
	node.OnClick = func() error { return card.sendMedia(m) }
	return node, nil
}

// inputShell checks the interactivity policy and wraps an input control
// with its label and error message
func inputShell(ctx *Context, in types.InputElement, control *ui.Node, args Args) *ui.Node {
	hc := ctx.HostConfig()
	info := in.InputInfo()

	control.Name = in.ID()
	if info.ErrorMessage != "" {
		control.SetProp("errorMessage", info.ErrorMessage)
	}
	if info.IsRequired {
		control.SetProp("required", "true")
	}
	ctx.RegisterInput(in.ID(), control)

	if info.Label == "" {
		if info.IsRequired {
			ctx.AddWarning(types.WarnRequiredPropertyMissing,
				fmt.Sprintf("Input %q is required but has no label", in.ID()))
		}
		return control
	}

	cfg := hc.Inputs.Label.OptionalInputs
	if info.IsRequired {
		cfg = hc.Inputs.Label.RequiredInputs
	}
	label := ui.NewNode(ui.KindText)
	label.Text = info.Label + cfg.Suffix
	label.Foreground = cascade.ForegroundColor(hc, args.ContainerStyle, cfg.Color, cfg.IsSubtle)
	label.SetProp(propSize, fmt.Sprint(cascade.FontSize(hc, types.FontTypeDefault, cfg.Size)))
	label.SetProp(propWeight, fmt.Sprint(cascade.FontWeight(hc, types.FontTypeDefault, cfg.Weight)))
	label.SetProp(propRole, propLabel)
	control.SetProp(propLabel, info.Label)
	control.Margin.Top = int(cascade.ResolveSpacing(hc, hc.Inputs.Label.InputSpacing))

	shell := ui.NewNode(ui.KindStack).Add(label, control)
	shell.Orientation = ui.Vertical
	shell.Name = in.ID() + "-label"
	return shell
}

func interactive(ctx *Context, in types.InputElement) bool {
	if ctx.HostConfig().SupportsInteractivity {
		return true
	}
	ctx.AddWarning(types.WarnInteractivityNotSupported,
		fmt.Sprintf("Input %s was present in card, but interactivity is not supported", in.TypeName()))
	return false
}

func newInputNode(inputType, value, placeholder string) *ui.Node {
	n := ui.NewNode(ui.KindInput)
	n.SetProp(propInputType, inputType)
	n.SetProp(propValue, value)
	if placeholder != "" {
		n.SetProp(propPlaceholder, placeholder)
	}
	return n
}

func renderTextInput(el types.CardElement, ctx *Context, args Args) (*ui.Node, error) {
	in, ok := el.(*types.TextInput)
	if !ok {
		return nil, unexpected(el, types.ElementTextInput)
	}
	if !interactive(ctx, in) {
		return nil, nil
	}

	control := newInputNode(string(in.Style), in.Value, in.Placeholder)
	control.SetProp("multiline", strconv.FormatBool(in.IsMultiline))
	if in.MaxLength > 0 {
		control.SetProp("maxLength", fmt.Sprint(in.MaxLength))
	}
	if in.Regex != "" {
		control.SetProp("regex", in.Regex)
	}
	node := inputShell(ctx, in, control, args)

	if in.InlineAction == nil {
		return node, nil
	}
	if in.InlineAction.ActionType() == types.ActionShowCard {
		ctx.AddWarning(types.WarnUnsupportedValue, "Inline ShowCard not supported for InlineAction")
		return node, nil
	}
	button, _, err := ctx.RenderAction(in.InlineAction, args)
	if fallback.IsDropped(err) {
		return node, nil
	}
	if err != nil {
		// Inline actions are decoration, an unrenderable one is skipped
		ctx.AddWarning(types.WarnUnknownActionElementType,
			fmt.Sprintf("Inline action of type %s not rendered", in.InlineAction.TypeName()))
		return node, nil
	}
	node.Column = 0
	button.Column = 1
	button.Margin.Left = int(ctx.HostConfig().Spacing.Default)
	return ui.NewNode(ui.KindGrid).SetProp("columns", "2").Add(node, button), nil
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func renderNumberInput(el types.CardElement, ctx *Context, args Args) (*ui.Node, error) {
	in, ok := el.(*types.NumberInput)
	if !ok {
		return nil, unexpected(el, types.ElementNumberInput)
	}
	if !interactive(ctx, in) {
		return nil, nil
	}
	control := newInputNode("number", formatFloat(in.Value), in.Placeholder)
	if in.Min != nil {
		control.SetProp("min", formatFloat(in.Min))
	}
	if in.Max != nil {
		control.SetProp("max", formatFloat(in.Max))
	}
	return inputShell(ctx, in, control, args), nil
}

func renderToggleInput(el types.CardElement, ctx *Context, args Args) (*ui.Node, error) {
	in, ok := el.(*types.ToggleInput)
	if !ok {
		return nil, unexpected(el, types.ElementToggleInput)
	}
	if !interactive(ctx, in) {
		return nil, nil
	}
	value := in.Value
	if value != in.ValueOn {
		value = in.ValueOff
	}
	control := newInputNode("toggle", value, "")
	control.Text = in.Title
	control.SetProp("valueOn", in.ValueOn)
	control.SetProp("valueOff", in.ValueOff)
	control.SetProp(propWrap, strconv.FormatBool(in.Wrap))
	control.OnClick = func() error {
		if control.Prop(propValue) == in.ValueOn {
			control.SetProp(propValue, in.ValueOff)
		} else {
			control.SetProp(propValue, in.ValueOn)
		}
		return nil
	}
	return inputShell(ctx, in, control, args), nil
}

func renderChoiceSetInput(el types.CardElement, ctx *Context, args Args) (*ui.Node, error) {
	in, ok := el.(*types.ChoiceSetInput)
	if !ok {
		return nil, unexpected(el, types.ElementChoiceSetInput)
	}
	if !interactive(ctx, in) {
		return nil, nil
	}
	control := newInputNode("choiceset", in.Value, in.Placeholder)
	control.SetProp("style", string(in.Style))
	control.SetProp("multiSelect", strconv.FormatBool(in.IsMultiSelect))
	control.SetProp(propWrap, strconv.FormatBool(in.Wrap))

	selected := make(map[string]bool)
	for _, v := range strings.Split(in.Value, ",") {
		selected[strings.TrimSpace(v)] = true
	}
	for _, ch := range in.Choices {
		item := ui.NewNode(ui.KindMenuItem)
		item.Text = ch.Title
		item.SetProp(propValue, ch.Value)
		if selected[ch.Value] {
			item.SetProp("selected", "true")
		}
		control.Add(item)
	}
	return inputShell(ctx, in, control, args), nil
}
