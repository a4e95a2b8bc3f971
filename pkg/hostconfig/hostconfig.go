// Package hostconfig holds the renderer-wide style and behavior
// configuration supplied by the embedding application.
//
// A HostConfig is built once from the embedded defaults, optionally
// layered with a host config file, overrides and CARDRENDER_* environment
// variables, and is treated as immutable while a card renders. Concurrent
// render passes may share one value.
package hostconfig

import "github.com/arthur-debert/cardrender/pkg/types"

// HostConfig is the resolved host configuration
type HostConfig struct {
	FontFamily            string                `koanf:"fontFamily" json:"fontFamily" yaml:"fontFamily" toml:"fontFamily"`
	SupportsInteractivity bool                  `koanf:"supportsInteractivity" json:"supportsInteractivity" yaml:"supportsInteractivity" toml:"supportsInteractivity"`
	ImageBaseURL          string                `koanf:"imageBaseUrl" json:"imageBaseUrl" yaml:"imageBaseUrl" toml:"imageBaseUrl"`
	FontSizes             FontSizesConfig       `koanf:"fontSizes" json:"fontSizes" yaml:"fontSizes" toml:"fontSizes"`
	FontWeights           FontWeightsConfig     `koanf:"fontWeights" json:"fontWeights" yaml:"fontWeights" toml:"fontWeights"`
	FontTypes             FontTypesConfig       `koanf:"fontTypes" json:"fontTypes" yaml:"fontTypes" toml:"fontTypes"`
	ContainerStyles       ContainerStylesConfig `koanf:"containerStyles" json:"containerStyles" yaml:"containerStyles" toml:"containerStyles"`
	ImageSizes            ImageSizesConfig      `koanf:"imageSizes" json:"imageSizes" yaml:"imageSizes" toml:"imageSizes"`
	Spacing               SpacingConfig         `koanf:"spacing" json:"spacing" yaml:"spacing" toml:"spacing"`
	Separator             SeparatorConfig       `koanf:"separator" json:"separator" yaml:"separator" toml:"separator"`
	AdaptiveCard          AdaptiveCardConfig    `koanf:"adaptiveCard" json:"adaptiveCard" yaml:"adaptiveCard" toml:"adaptiveCard"`
	ImageSet              ImageSetConfig        `koanf:"imageSet" json:"imageSet" yaml:"imageSet" toml:"imageSet"`
	Image                 ImageConfig           `koanf:"image" json:"image" yaml:"image" toml:"image"`
	FactSet               FactSetConfig         `koanf:"factSet" json:"factSet" yaml:"factSet" toml:"factSet"`
	Actions               ActionsConfig         `koanf:"actions" json:"actions" yaml:"actions" toml:"actions"`
	Media                 MediaConfig           `koanf:"media" json:"media" yaml:"media" toml:"media"`
	Inputs                InputsConfig          `koanf:"inputs" json:"inputs" yaml:"inputs" toml:"inputs"`
	TextBlock             TextBlockConfig       `koanf:"textBlock" json:"textBlock" yaml:"textBlock" toml:"textBlock"`
	TextStyles            TextStylesConfig      `koanf:"textStyles" json:"textStyles" yaml:"textStyles" toml:"textStyles"`
	Table                 TableConfig           `koanf:"table" json:"table" yaml:"table" toml:"table"`

	// Overflow is not part of the card host config schema. Hosts set it
	// through the renderer, it lives here so files can carry it too.
	Overflow OverflowConfig `koanf:"overflow" json:"overflow" yaml:"overflow" toml:"overflow"`
}

type FontSizesConfig struct {
	Small      uint32 `koanf:"small" json:"small" yaml:"small" toml:"small"`
	Default    uint32 `koanf:"default" json:"default" yaml:"default" toml:"default"`
	Medium     uint32 `koanf:"medium" json:"medium" yaml:"medium" toml:"medium"`
	Large      uint32 `koanf:"large" json:"large" yaml:"large" toml:"large"`
	ExtraLarge uint32 `koanf:"extraLarge" json:"extraLarge" yaml:"extraLarge" toml:"extraLarge"`
}

type FontWeightsConfig struct {
	Lighter uint32 `koanf:"lighter" json:"lighter" yaml:"lighter" toml:"lighter"`
	Default uint32 `koanf:"default" json:"default" yaml:"default" toml:"default"`
	Bolder  uint32 `koanf:"bolder" json:"bolder" yaml:"bolder" toml:"bolder"`
}

// FontTypeDefinition overrides family, sizes and weights for one font type
type FontTypeDefinition struct {
	FontFamily  string            `koanf:"fontFamily" json:"fontFamily" yaml:"fontFamily" toml:"fontFamily"`
	FontSizes   FontSizesConfig   `koanf:"fontSizes" json:"fontSizes" yaml:"fontSizes" toml:"fontSizes"`
	FontWeights FontWeightsConfig `koanf:"fontWeights" json:"fontWeights" yaml:"fontWeights" toml:"fontWeights"`
}

type FontTypesConfig struct {
	Default   FontTypeDefinition `koanf:"default" json:"default" yaml:"default" toml:"default"`
	Monospace FontTypeDefinition `koanf:"monospace" json:"monospace" yaml:"monospace" toml:"monospace"`
}

// ColorConfig is a color and its subtle variant, both #AARRGGBB or #RRGGBB
type ColorConfig struct {
	Default         string               `koanf:"default" json:"default" yaml:"default" toml:"default"`
	Subtle          string               `koanf:"subtle" json:"subtle" yaml:"subtle" toml:"subtle"`
	HighlightColors HighlightColorConfig `koanf:"highlightColors" json:"highlightColors" yaml:"highlightColors" toml:"highlightColors"`
}

// HighlightColorConfig is the background used behind highlighted text
// drawn in a foreground color
type HighlightColorConfig struct {
	Default string `koanf:"default" json:"default" yaml:"default" toml:"default"`
	Subtle  string `koanf:"subtle" json:"subtle" yaml:"subtle" toml:"subtle"`
}

type ColorsConfig struct {
	Default   ColorConfig `koanf:"default" json:"default" yaml:"default" toml:"default"`
	Dark      ColorConfig `koanf:"dark" json:"dark" yaml:"dark" toml:"dark"`
	Light     ColorConfig `koanf:"light" json:"light" yaml:"light" toml:"light"`
	Accent    ColorConfig `koanf:"accent" json:"accent" yaml:"accent" toml:"accent"`
	Good      ColorConfig `koanf:"good" json:"good" yaml:"good" toml:"good"`
	Warning   ColorConfig `koanf:"warning" json:"warning" yaml:"warning" toml:"warning"`
	Attention ColorConfig `koanf:"attention" json:"attention" yaml:"attention" toml:"attention"`
}

// ContainerStyleDefinition is the palette of one container style
type ContainerStyleDefinition struct {
	BackgroundColor  string       `koanf:"backgroundColor" json:"backgroundColor" yaml:"backgroundColor" toml:"backgroundColor"`
	BorderColor      string       `koanf:"borderColor" json:"borderColor" yaml:"borderColor" toml:"borderColor"`
	ForegroundColors ColorsConfig `koanf:"foregroundColors" json:"foregroundColors" yaml:"foregroundColors" toml:"foregroundColors"`
}

type ContainerStylesConfig struct {
	Default   ContainerStyleDefinition `koanf:"default" json:"default" yaml:"default" toml:"default"`
	Emphasis  ContainerStyleDefinition `koanf:"emphasis" json:"emphasis" yaml:"emphasis" toml:"emphasis"`
	Good      ContainerStyleDefinition `koanf:"good" json:"good" yaml:"good" toml:"good"`
	Attention ContainerStyleDefinition `koanf:"attention" json:"attention" yaml:"attention" toml:"attention"`
	Warning   ContainerStyleDefinition `koanf:"warning" json:"warning" yaml:"warning" toml:"warning"`
	Accent    ContainerStyleDefinition `koanf:"accent" json:"accent" yaml:"accent" toml:"accent"`
}

type ImageSizesConfig struct {
	Small  uint32 `koanf:"small" json:"small" yaml:"small" toml:"small"`
	Medium uint32 `koanf:"medium" json:"medium" yaml:"medium" toml:"medium"`
	Large  uint32 `koanf:"large" json:"large" yaml:"large" toml:"large"`
}

type SpacingConfig struct {
	Small      uint32 `koanf:"small" json:"small" yaml:"small" toml:"small"`
	Default    uint32 `koanf:"default" json:"default" yaml:"default" toml:"default"`
	Medium     uint32 `koanf:"medium" json:"medium" yaml:"medium" toml:"medium"`
	Large      uint32 `koanf:"large" json:"large" yaml:"large" toml:"large"`
	ExtraLarge uint32 `koanf:"extraLarge" json:"extraLarge" yaml:"extraLarge" toml:"extraLarge"`
	Padding    uint32 `koanf:"padding" json:"padding" yaml:"padding" toml:"padding"`
}

type SeparatorConfig struct {
	LineThickness uint32 `koanf:"lineThickness" json:"lineThickness" yaml:"lineThickness" toml:"lineThickness"`
	LineColor     string `koanf:"lineColor" json:"lineColor" yaml:"lineColor" toml:"lineColor"`
}

type AdaptiveCardConfig struct {
	AllowCustomStyle bool `koanf:"allowCustomStyle" json:"allowCustomStyle" yaml:"allowCustomStyle" toml:"allowCustomStyle"`
}

type ImageSetConfig struct {
	ImageSize      types.ImageSize `koanf:"imageSize" json:"imageSize" yaml:"imageSize" toml:"imageSize"`
	MaxImageHeight uint32          `koanf:"maxImageHeight" json:"maxImageHeight" yaml:"maxImageHeight" toml:"maxImageHeight"`
}

type ImageConfig struct {
	ImageSize types.ImageSize `koanf:"imageSize" json:"imageSize" yaml:"imageSize" toml:"imageSize"`
}

// FactSetTextConfig styles the title or value column of a fact set
type FactSetTextConfig struct {
	Size     types.TextSize        `koanf:"size" json:"size" yaml:"size" toml:"size"`
	Weight   types.TextWeight      `koanf:"weight" json:"weight" yaml:"weight" toml:"weight"`
	Color    types.ForegroundColor `koanf:"color" json:"color" yaml:"color" toml:"color"`
	FontType types.FontType        `koanf:"fontType" json:"fontType" yaml:"fontType" toml:"fontType"`
	IsSubtle bool                  `koanf:"isSubtle" json:"isSubtle" yaml:"isSubtle" toml:"isSubtle"`
	Wrap     bool                  `koanf:"wrap" json:"wrap" yaml:"wrap" toml:"wrap"`
	MaxWidth uint32                `koanf:"maxWidth" json:"maxWidth" yaml:"maxWidth" toml:"maxWidth"`
}

type FactSetConfig struct {
	Title   FactSetTextConfig `koanf:"title" json:"title" yaml:"title" toml:"title"`
	Value   FactSetTextConfig `koanf:"value" json:"value" yaml:"value" toml:"value"`
	Spacing uint32            `koanf:"spacing" json:"spacing" yaml:"spacing" toml:"spacing"`
}

type ShowCardActionConfig struct {
	ActionMode      types.ShowCardActionMode `koanf:"actionMode" json:"actionMode" yaml:"actionMode" toml:"actionMode"`
	Style           types.ContainerStyle     `koanf:"style" json:"style" yaml:"style" toml:"style"`
	InlineTopMargin uint32                   `koanf:"inlineTopMargin" json:"inlineTopMargin" yaml:"inlineTopMargin" toml:"inlineTopMargin"`
}

// ActionsConfig drives action set layout
type ActionsConfig struct {
	ShowCard           ShowCardActionConfig     `koanf:"showCard" json:"showCard" yaml:"showCard" toml:"showCard"`
	ActionsOrientation types.ActionsOrientation `koanf:"actionsOrientation" json:"actionsOrientation" yaml:"actionsOrientation" toml:"actionsOrientation"`
	ActionAlignment    types.ActionAlignment    `koanf:"actionAlignment" json:"actionAlignment" yaml:"actionAlignment" toml:"actionAlignment"`
	ButtonSpacing      uint32                   `koanf:"buttonSpacing" json:"buttonSpacing" yaml:"buttonSpacing" toml:"buttonSpacing"`
	// MaxActions caps the visible primary buttons, 0 means no cap
	MaxActions    uint32              `koanf:"maxActions" json:"maxActions" yaml:"maxActions" toml:"maxActions"`
	Spacing       types.Spacing       `koanf:"spacing" json:"spacing" yaml:"spacing" toml:"spacing"`
	IconPlacement types.IconPlacement `koanf:"iconPlacement" json:"iconPlacement" yaml:"iconPlacement" toml:"iconPlacement"`
	IconSize      uint32              `koanf:"iconSize" json:"iconSize" yaml:"iconSize" toml:"iconSize"`
}

type MediaConfig struct {
	DefaultPoster       string `koanf:"defaultPoster" json:"defaultPoster" yaml:"defaultPoster" toml:"defaultPoster"`
	PlayButton          string `koanf:"playButton" json:"playButton" yaml:"playButton" toml:"playButton"`
	AllowInlinePlayback bool   `koanf:"allowInlinePlayback" json:"allowInlinePlayback" yaml:"allowInlinePlayback" toml:"allowInlinePlayback"`
}

type InputLabelConfig struct {
	Color    types.ForegroundColor `koanf:"color" json:"color" yaml:"color" toml:"color"`
	IsSubtle bool                  `koanf:"isSubtle" json:"isSubtle" yaml:"isSubtle" toml:"isSubtle"`
	Size     types.TextSize        `koanf:"size" json:"size" yaml:"size" toml:"size"`
	Weight   types.TextWeight      `koanf:"weight" json:"weight" yaml:"weight" toml:"weight"`
	Suffix   string                `koanf:"suffix" json:"suffix" yaml:"suffix" toml:"suffix"`
}

type LabelConfig struct {
	InputSpacing   types.Spacing    `koanf:"inputSpacing" json:"inputSpacing" yaml:"inputSpacing" toml:"inputSpacing"`
	RequiredInputs InputLabelConfig `koanf:"requiredInputs" json:"requiredInputs" yaml:"requiredInputs" toml:"requiredInputs"`
	OptionalInputs InputLabelConfig `koanf:"optionalInputs" json:"optionalInputs" yaml:"optionalInputs" toml:"optionalInputs"`
}

type ErrorMessageConfig struct {
	Size    types.TextSize   `koanf:"size" json:"size" yaml:"size" toml:"size"`
	Spacing types.Spacing    `koanf:"spacing" json:"spacing" yaml:"spacing" toml:"spacing"`
	Weight  types.TextWeight `koanf:"weight" json:"weight" yaml:"weight" toml:"weight"`
}

type InputsConfig struct {
	Label        LabelConfig        `koanf:"label" json:"label" yaml:"label" toml:"label"`
	ErrorMessage ErrorMessageConfig `koanf:"errorMessage" json:"errorMessage" yaml:"errorMessage" toml:"errorMessage"`
}

type TextBlockConfig struct {
	HeadingLevel uint32 `koanf:"headingLevel" json:"headingLevel" yaml:"headingLevel" toml:"headingLevel"`
}

type TextStyleConfig struct {
	Size     types.TextSize        `koanf:"size" json:"size" yaml:"size" toml:"size"`
	Weight   types.TextWeight      `koanf:"weight" json:"weight" yaml:"weight" toml:"weight"`
	Color    types.ForegroundColor `koanf:"color" json:"color" yaml:"color" toml:"color"`
	FontType types.FontType        `koanf:"fontType" json:"fontType" yaml:"fontType" toml:"fontType"`
	IsSubtle bool                  `koanf:"isSubtle" json:"isSubtle" yaml:"isSubtle" toml:"isSubtle"`
}

type TextStylesConfig struct {
	Heading      TextStyleConfig `koanf:"heading" json:"heading" yaml:"heading" toml:"heading"`
	ColumnHeader TextStyleConfig `koanf:"columnHeader" json:"columnHeader" yaml:"columnHeader" toml:"columnHeader"`
}

type TableConfig struct {
	CellSpacing uint32 `koanf:"cellSpacing" json:"cellSpacing" yaml:"cellSpacing" toml:"cellSpacing"`
}

// OverflowConfig controls what happens to primary actions beyond MaxActions
type OverflowConfig struct {
	// OverflowMaxActions moves excess primary actions into the overflow
	// menu instead of dropping them
	OverflowMaxActions bool   `koanf:"overflowMaxActions" json:"overflowMaxActions" yaml:"overflowMaxActions" toml:"overflowMaxActions"`
	ButtonText         string `koanf:"buttonText" json:"buttonText" yaml:"buttonText" toml:"buttonText"`
	AccessibilityText  string `koanf:"accessibilityText" json:"accessibilityText" yaml:"accessibilityText" toml:"accessibilityText"`
}

// Clone returns a copy that can be mutated without affecting c. HostConfig
// holds only value fields so a shallow copy is a deep copy.
func (c *HostConfig) Clone() *HostConfig {
	cp := *c
	return &cp
}
