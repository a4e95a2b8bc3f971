package parser

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/cardrender/pkg/types"
)

func parseTextBlock(p *Props) (types.CardElement, error) {
	tb := types.NewTextBlock(p.RequiredString("text"))
	tb.Size = Enum(p, "size", types.ParseTextSize, types.TextSizeDefault)
	tb.Weight = Enum(p, "weight", types.ParseTextWeight, types.TextWeightDefault)
	tb.Color = Enum(p, "color", types.ParseForegroundColor, types.ColorDefault)
	tb.IsSubtle = p.Bool("isSubtle", false)
	tb.Wrap = p.Bool("wrap", false)
	tb.MaxLines = p.Uint("maxLines")
	tb.HorizontalAlignment = Enum(p, "horizontalAlignment", types.ParseHorizontalAlignment, types.HAlignLeft)
	tb.FontType = Enum(p, "fontType", types.ParseFontType, types.FontTypeDefault)
	tb.Style = Enum(p, "style", types.ParseTextStyle, types.TextStyleDefault)
	return tb, nil
}

func parseImage(p *Props) (types.CardElement, error) {
	img := types.NewImage(p.RequiredString("url"))
	img.AltText = p.String("altText")
	img.Size = Enum(p, "size", types.ParseImageSize, types.ImageSizeAuto)
	img.Style = Enum(p, "style", types.ParseImageStyle, types.ImageStyleDefault)
	img.PixelWidth = p.Pixels("width")
	// height is either a pixel size or the common auto/stretch value
	if h, ok := p.raw["height"].(string); ok && strings.HasSuffix(h, "px") {
		img.PixelHeight = p.Pixels("height")
	}
	img.BackgroundColor = p.String("backgroundColor")
	img.HorizontalAlignment = Enum(p, "horizontalAlignment", types.ParseHorizontalAlignment, types.HAlignLeft)
	sel, err := p.ctx.parseOptionalAction(p.Object("selectAction"))
	if err != nil {
		return nil, err
	}
	img.SetSelectAction(sel)
	return img, nil
}

// readContainerProps fills the properties shared by containers, columns
// and column sets
func readContainerProps(p *Props, c *types.ContainerProps) error {
	c.SetContainerStyle(Enum(p, "style", types.ParseContainerStyle, types.ContainerStyleNone))
	c.SetBleed(p.Bool("bleed", false))
	c.SetMinHeight(p.Pixels("minHeight"))
	sel, err := p.ctx.parseOptionalAction(p.Object("selectAction"))
	if err != nil {
		return err
	}
	c.SetSelectAction(sel)
	return nil
}

func parseContainer(p *Props) (types.CardElement, error) {
	items, err := p.ctx.ParseElements(p.Array("items"))
	if err != nil {
		return nil, err
	}
	c := types.NewContainer(items...)
	if err := readContainerProps(p, &c.ContainerProps); err != nil {
		return nil, err
	}
	c.VerticalContentAlignment = Enum(p, "verticalContentAlignment", types.ParseVerticalContentAlignment, types.VAlignTop)
	return c, nil
}

func parseColumn(p *Props) (types.CardElement, error) {
	items, err := p.ctx.ParseElements(p.Array("items"))
	if err != nil {
		return nil, err
	}
	col := types.NewColumn(items...)
	if err := readContainerProps(p, &col.ContainerProps); err != nil {
		return nil, err
	}
	if w := p.String("width"); w != "" {
		col.Width = w
	}
	col.VerticalContentAlignment = Enum(p, "verticalContentAlignment", types.ParseVerticalContentAlignment, types.VAlignTop)
	return col, nil
}

func parseColumnSet(p *Props) (types.CardElement, error) {
	var columns []types.CardElement
	for _, item := range p.Array("columns") {
		obj, ok := asObject(item)
		if !ok {
			p.invalid("columns", item, "a column object")
			continue
		}
		// columns may omit their type tag
		col, err := p.ctx.ParseElement(withDefaultType(obj, types.ElementColumn))
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}
	cs := types.NewColumnSet(columns...)
	if err := readContainerProps(p, &cs.ContainerProps); err != nil {
		return nil, err
	}
	cs.HorizontalAlignment = Enum(p, "horizontalAlignment", types.ParseHorizontalAlignment, types.HAlignLeft)
	return cs, nil
}

func parseFactSet(p *Props) (types.CardElement, error) {
	fs := types.NewFactSet()
	for _, item := range p.Array("facts") {
		obj, ok := asObject(item)
		if !ok {
			p.invalid("facts", item, "a fact object")
			continue
		}
		fp := newProps(p.ctx, obj, "Fact")
		fs.Facts = append(fs.Facts, types.Fact{Title: fp.String("title"), Value: fp.String("value")})
	}
	return fs, nil
}

func parseImageSet(p *Props) (types.CardElement, error) {
	var images []types.CardElement
	for _, item := range p.Array("images") {
		obj, ok := asObject(item)
		if !ok {
			p.invalid("images", item, "an image object")
			continue
		}
		img, err := p.ctx.ParseElement(withDefaultType(obj, types.ElementImage))
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	set := types.NewImageSet(images...)
	set.ImageSize = Enum(p, "imageSize", types.ParseImageSize, types.ImageSizeMedium)
	return set, nil
}

func parseActionSet(p *Props) (types.CardElement, error) {
	actions, err := p.ctx.ParseActions(p.Array("actions"))
	if err != nil {
		return nil, err
	}
	return types.NewActionSet(actions...), nil
}

func parseMedia(p *Props) (types.CardElement, error) {
	var sources []types.MediaSource
	for _, item := range p.Array("sources") {
		obj, ok := asObject(item)
		if !ok {
			p.invalid("sources", item, "a media source object")
			continue
		}
		sp := newProps(p.ctx, obj, "MediaSource")
		sources = append(sources, types.MediaSource{MimeType: sp.String("mimeType"), URL: sp.RequiredString("url")})
	}
	if len(sources) == 0 {
		p.ctx.AddWarning(types.WarnRequiredPropertyMissing, "Required property sources missing on Media")
	}
	m := types.NewMedia(sources...)
	m.Poster = p.String("poster")
	m.AltText = p.String("altText")
	return m, nil
}

func readInputProps(p *Props, el types.CardElement, in *types.InputProps) {
	if id := p.String("id"); id == "" {
		p.ctx.AddWarning(types.WarnRequiredPropertyMissing,
			fmt.Sprintf("Required property id missing on %s", el.TypeName()))
	}
	in.Label = p.String("label")
	in.IsRequired = p.Bool("isRequired", false)
	in.ErrorMessage = p.String("errorMessage")
}

func parseTextInput(p *Props) (types.CardElement, error) {
	in := types.NewTextInput("")
	readInputProps(p, in, &in.InputProps)
	in.Placeholder = p.String("placeholder")
	in.Value = p.String("value")
	in.IsMultiline = p.Bool("isMultiline", false)
	in.MaxLength = p.Uint("maxLength")
	in.Style = Enum(p, "style", types.ParseTextInputStyle, types.TextInputText)
	in.Regex = p.String("regex")
	inline, err := p.ctx.parseOptionalAction(p.Object("inlineAction"))
	if err != nil {
		return nil, err
	}
	in.InlineAction = inline
	return in, nil
}

func parseNumberInput(p *Props) (types.CardElement, error) {
	in := types.NewNumberInput("")
	readInputProps(p, in, &in.InputProps)
	in.Placeholder = p.String("placeholder")
	in.Value = p.Float("value")
	in.Min = p.Float("min")
	in.Max = p.Float("max")
	if in.Min != nil && in.Max != nil && *in.Min > *in.Max {
		p.ctx.AddWarning(types.WarnInvalidValue,
			fmt.Sprintf("Input.Number min %v is greater than max %v", *in.Min, *in.Max))
	}
	return in, nil
}

func parseToggleInput(p *Props) (types.CardElement, error) {
	in := types.NewToggleInput("", p.RequiredString("title"))
	readInputProps(p, in, &in.InputProps)
	if v := p.String("valueOn"); v != "" {
		in.ValueOn = v
	}
	if v := p.String("valueOff"); v != "" {
		in.ValueOff = v
	}
	in.Value = in.ValueOff
	if v := p.String("value"); v != "" {
		in.Value = v
	}
	in.Wrap = p.Bool("wrap", false)
	return in, nil
}

func parseChoiceSetInput(p *Props) (types.CardElement, error) {
	in := types.NewChoiceSetInput("")
	readInputProps(p, in, &in.InputProps)
	for _, item := range p.Array("choices") {
		obj, ok := asObject(item)
		if !ok {
			p.invalid("choices", item, "a choice object")
			continue
		}
		cp := newProps(p.ctx, obj, "Choice")
		in.Choices = append(in.Choices, types.Choice{Title: cp.String("title"), Value: cp.String("value")})
	}
	in.IsMultiSelect = p.Bool("isMultiSelect", false)
	in.Style = Enum(p, "style", types.ParseChoiceSetStyle, types.ChoiceSetCompact)
	in.Placeholder = p.String("placeholder")
	in.Value = p.String("value")
	in.Wrap = p.Bool("wrap", false)
	return in, nil
}

// withDefaultType returns obj with a type tag, copying it when the tag
// has to be added
func withDefaultType(obj map[string]any, t types.ElementType) map[string]any {
	if _, ok := obj["type"]; ok {
		return obj
	}
	out := make(map[string]any, len(obj)+1)
	for k, v := range obj {
		out[k] = v
	}
	out["type"] = string(t)
	return out
}
