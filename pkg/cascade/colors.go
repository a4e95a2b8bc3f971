package cascade

import (
	"github.com/arthur-debert/cardrender/pkg/hostconfig"
	"github.com/arthur-debert/cardrender/pkg/types"
)

// ContainerColors returns the palette of a container style. Colors the
// host left empty are taken from the default style.
func ContainerColors(hc *hostconfig.HostConfig, style types.ContainerStyle) hostconfig.ContainerStyleDefinition {
	def := hc.ContainerStyles.Default
	got := hc.ContainerStyles.Get(style)
	if got.BackgroundColor == "" {
		got.BackgroundColor = def.BackgroundColor
	}
	if got.BorderColor == "" {
		got.BorderColor = def.BorderColor
	}
	got.ForegroundColors = fillColors(got.ForegroundColors, def.ForegroundColors)
	return got
}

func fillColors(c, def hostconfig.ColorsConfig) hostconfig.ColorsConfig {
	fill := func(dst *hostconfig.ColorConfig, src hostconfig.ColorConfig) {
		if dst.Default == "" {
			dst.Default = src.Default
		}
		if dst.Subtle == "" {
			dst.Subtle = src.Subtle
		}
		if dst.HighlightColors.Default == "" {
			dst.HighlightColors.Default = src.HighlightColors.Default
		}
		if dst.HighlightColors.Subtle == "" {
			dst.HighlightColors.Subtle = src.HighlightColors.Subtle
		}
	}
	fill(&c.Default, def.Default)
	fill(&c.Dark, def.Dark)
	fill(&c.Light, def.Light)
	fill(&c.Accent, def.Accent)
	fill(&c.Good, def.Good)
	fill(&c.Warning, def.Warning)
	fill(&c.Attention, def.Attention)
	return c
}

// ForegroundColor resolves a text color against the container style
func ForegroundColor(hc *hostconfig.HostConfig, style types.ContainerStyle, color types.ForegroundColor, subtle bool) string {
	pair := ContainerColors(hc, style).ForegroundColors.Get(color)
	if subtle {
		return pair.Subtle
	}
	return pair.Default
}

// HighlightColor resolves the background drawn behind highlighted text
// of the given color
func HighlightColor(hc *hostconfig.HostConfig, style types.ContainerStyle, color types.ForegroundColor, subtle bool) string {
	pair := ContainerColors(hc, style).ForegroundColors.Get(color).HighlightColors
	if subtle {
		return pair.Subtle
	}
	return pair.Default
}

// FontSize resolves a text size. The font type's own sizes win over the
// top-level sizes when set.
func FontSize(hc *hostconfig.HostConfig, fontType types.FontType, size types.TextSize) uint32 {
	if v := pickSize(hc.FontTypes.Get(fontType).FontSizes, size); v != 0 {
		return v
	}
	return pickSize(hc.FontSizes, size)
}

func pickSize(sizes hostconfig.FontSizesConfig, size types.TextSize) uint32 {
	switch size {
	case types.TextSizeSmall:
		return sizes.Small
	case types.TextSizeMedium:
		return sizes.Medium
	case types.TextSizeLarge:
		return sizes.Large
	case types.TextSizeExtraLarge:
		return sizes.ExtraLarge
	default:
		return sizes.Default
	}
}

// FontWeight resolves a text weight the same way FontSize does
func FontWeight(hc *hostconfig.HostConfig, fontType types.FontType, weight types.TextWeight) uint32 {
	if v := pickWeight(hc.FontTypes.Get(fontType).FontWeights, weight); v != 0 {
		return v
	}
	return pickWeight(hc.FontWeights, weight)
}

func pickWeight(weights hostconfig.FontWeightsConfig, weight types.TextWeight) uint32 {
	switch weight {
	case types.TextWeightLighter:
		return weights.Lighter
	case types.TextWeightBolder:
		return weights.Bolder
	default:
		return weights.Default
	}
}

// FontFamily resolves the font family of a font type
func FontFamily(hc *hostconfig.HostConfig, fontType types.FontType) string {
	if f := hc.FontTypes.Get(fontType).FontFamily; f != "" {
		return f
	}
	return hc.FontFamily
}

// ImageSize maps a symbolic image size to pixels. Auto and stretch have
// no fixed size and return 0.
func ImageSize(hc *hostconfig.HostConfig, size types.ImageSize) uint32 {
	switch size {
	case types.ImageSizeSmall:
		return hc.ImageSizes.Small
	case types.ImageSizeMedium:
		return hc.ImageSizes.Medium
	case types.ImageSizeLarge:
		return hc.ImageSizes.Large
	default:
		return 0
	}
}
