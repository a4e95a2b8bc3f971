package types

import (
	"fmt"
	"strings"
)

// parseEnum matches s case-insensitively against the allowed values
func parseEnum[T ~string](s string, values []T) (T, bool) {
	for _, v := range values {
		if strings.EqualFold(string(v), s) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// unmarshalEnum implements encoding.TextUnmarshaler for string enums. An
// empty input leaves the target untouched.
func unmarshalEnum[T ~string](target *T, text []byte, kind string, values []T) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		return nil
	}
	v, ok := parseEnum(s, values)
	if !ok {
		return fmt.Errorf("invalid %s %q", kind, s)
	}
	*target = v
	return nil
}

// FallbackType describes what happens when an element or action cannot be rendered
type FallbackType string

const (
	FallbackNone    FallbackType = "none"
	FallbackDrop    FallbackType = "drop"
	FallbackContent FallbackType = "content"
)

var fallbackTypeValues = []FallbackType{FallbackNone, FallbackDrop, FallbackContent}

func ParseFallbackType(s string) (FallbackType, bool) { return parseEnum(s, fallbackTypeValues) }

// Spacing is the gap requested before an element
type Spacing string

const (
	SpacingDefault    Spacing = "default"
	SpacingNone       Spacing = "none"
	SpacingSmall      Spacing = "small"
	SpacingMedium     Spacing = "medium"
	SpacingLarge      Spacing = "large"
	SpacingExtraLarge Spacing = "extraLarge"
	SpacingPadding    Spacing = "padding"
)

var spacingValues = []Spacing{SpacingDefault, SpacingNone, SpacingSmall, SpacingMedium, SpacingLarge, SpacingExtraLarge, SpacingPadding}

func ParseSpacing(s string) (Spacing, bool) { return parseEnum(s, spacingValues) }

func (v *Spacing) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, b, "spacing", spacingValues)
}

// HeightType controls vertical sizing of an element
type HeightType string

const (
	HeightAuto    HeightType = "auto"
	HeightStretch HeightType = "stretch"
)

var heightValues = []HeightType{HeightAuto, HeightStretch}

func ParseHeightType(s string) (HeightType, bool) { return parseEnum(s, heightValues) }

// ContainerStyle selects a color palette from the host config. The empty
// value means the container inherits its parent's style.
type ContainerStyle string

const (
	ContainerStyleNone      ContainerStyle = ""
	ContainerStyleDefault   ContainerStyle = "default"
	ContainerStyleEmphasis  ContainerStyle = "emphasis"
	ContainerStyleGood      ContainerStyle = "good"
	ContainerStyleAttention ContainerStyle = "attention"
	ContainerStyleWarning   ContainerStyle = "warning"
	ContainerStyleAccent    ContainerStyle = "accent"
)

var containerStyleValues = []ContainerStyle{
	ContainerStyleDefault, ContainerStyleEmphasis, ContainerStyleGood,
	ContainerStyleAttention, ContainerStyleWarning, ContainerStyleAccent,
}

func ParseContainerStyle(s string) (ContainerStyle, bool) { return parseEnum(s, containerStyleValues) }

func (v *ContainerStyle) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, b, "container style", containerStyleValues)
}

// ActionMode places an action in the primary row or straight into overflow
type ActionMode string

const (
	ActionModePrimary   ActionMode = "primary"
	ActionModeSecondary ActionMode = "secondary"
)

var actionModeValues = []ActionMode{ActionModePrimary, ActionModeSecondary}

func ParseActionMode(s string) (ActionMode, bool) { return parseEnum(s, actionModeValues) }

// ActionsOrientation lays action buttons out in a row or a column
type ActionsOrientation string

const (
	OrientationHorizontal ActionsOrientation = "horizontal"
	OrientationVertical   ActionsOrientation = "vertical"
)

var orientationValues = []ActionsOrientation{OrientationHorizontal, OrientationVertical}

func (v *ActionsOrientation) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, b, "actions orientation", orientationValues)
}

// ActionAlignment positions the action row inside its parent
type ActionAlignment string

const (
	ActionAlignLeft    ActionAlignment = "left"
	ActionAlignCenter  ActionAlignment = "center"
	ActionAlignRight   ActionAlignment = "right"
	ActionAlignStretch ActionAlignment = "stretch"
)

var actionAlignmentValues = []ActionAlignment{ActionAlignLeft, ActionAlignCenter, ActionAlignRight, ActionAlignStretch}

func (v *ActionAlignment) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, b, "action alignment", actionAlignmentValues)
}

// IconPlacement places an action icon relative to its title
type IconPlacement string

const (
	IconAboveTitle  IconPlacement = "aboveTitle"
	IconLeftOfTitle IconPlacement = "leftOfTitle"
)

var iconPlacementValues = []IconPlacement{IconAboveTitle, IconLeftOfTitle}

func (v *IconPlacement) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, b, "icon placement", iconPlacementValues)
}

// ShowCardActionMode decides whether show cards expand inline or are handed to the host
type ShowCardActionMode string

const (
	ShowCardInline ShowCardActionMode = "inline"
	ShowCardPopup  ShowCardActionMode = "popup"
)

var showCardModeValues = []ShowCardActionMode{ShowCardInline, ShowCardPopup}

func (v *ShowCardActionMode) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, b, "show card action mode", showCardModeValues)
}

// TextSize is a symbolic font size resolved through the host config
type TextSize string

const (
	TextSizeDefault    TextSize = "default"
	TextSizeSmall      TextSize = "small"
	TextSizeMedium     TextSize = "medium"
	TextSizeLarge      TextSize = "large"
	TextSizeExtraLarge TextSize = "extraLarge"
)

var textSizeValues = []TextSize{TextSizeDefault, TextSizeSmall, TextSizeMedium, TextSizeLarge, TextSizeExtraLarge}

func ParseTextSize(s string) (TextSize, bool) { return parseEnum(s, textSizeValues) }

func (v *TextSize) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, b, "text size", textSizeValues)
}

// TextWeight is a symbolic font weight
type TextWeight string

const (
	TextWeightDefault TextWeight = "default"
	TextWeightLighter TextWeight = "lighter"
	TextWeightBolder  TextWeight = "bolder"
)

var textWeightValues = []TextWeight{TextWeightDefault, TextWeightLighter, TextWeightBolder}

func ParseTextWeight(s string) (TextWeight, bool) { return parseEnum(s, textWeightValues) }

func (v *TextWeight) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, b, "text weight", textWeightValues)
}

// ForegroundColor is a symbolic text color resolved against the container style
type ForegroundColor string

const (
	ColorDefault   ForegroundColor = "default"
	ColorDark      ForegroundColor = "dark"
	ColorLight     ForegroundColor = "light"
	ColorAccent    ForegroundColor = "accent"
	ColorGood      ForegroundColor = "good"
	ColorWarning   ForegroundColor = "warning"
	ColorAttention ForegroundColor = "attention"
)

var colorValues = []ForegroundColor{ColorDefault, ColorDark, ColorLight, ColorAccent, ColorGood, ColorWarning, ColorAttention}

func ParseForegroundColor(s string) (ForegroundColor, bool) { return parseEnum(s, colorValues) }

func (v *ForegroundColor) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, b, "color", colorValues)
}

// FontType picks between the default and monospace font families
type FontType string

const (
	FontTypeDefault   FontType = "default"
	FontTypeMonospace FontType = "monospace"
)

var fontTypeValues = []FontType{FontTypeDefault, FontTypeMonospace}

func ParseFontType(s string) (FontType, bool) { return parseEnum(s, fontTypeValues) }

func (v *FontType) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, b, "font type", fontTypeValues)
}

// TextStyle marks a text block as a heading
type TextStyle string

const (
	TextStyleDefault TextStyle = "default"
	TextStyleHeading TextStyle = "heading"
)

var textStyleValues = []TextStyle{TextStyleDefault, TextStyleHeading}

func ParseTextStyle(s string) (TextStyle, bool) { return parseEnum(s, textStyleValues) }

// HorizontalAlignment aligns content inside its parent
type HorizontalAlignment string

const (
	HAlignLeft    HorizontalAlignment = "left"
	HAlignCenter  HorizontalAlignment = "center"
	HAlignRight   HorizontalAlignment = "right"
	HAlignStretch HorizontalAlignment = "stretch"
)

var hAlignValues = []HorizontalAlignment{HAlignLeft, HAlignCenter, HAlignRight}

func ParseHorizontalAlignment(s string) (HorizontalAlignment, bool) {
	return parseEnum(s, hAlignValues)
}

// VerticalContentAlignment aligns a container's items vertically
type VerticalContentAlignment string

const (
	VAlignTop    VerticalContentAlignment = "top"
	VAlignCenter VerticalContentAlignment = "center"
	VAlignBottom VerticalContentAlignment = "bottom"
)

var vAlignValues = []VerticalContentAlignment{VAlignTop, VAlignCenter, VAlignBottom}

func ParseVerticalContentAlignment(s string) (VerticalContentAlignment, bool) {
	return parseEnum(s, vAlignValues)
}

// ImageSize is a symbolic image size resolved through the host config
type ImageSize string

const (
	ImageSizeAuto    ImageSize = "auto"
	ImageSizeStretch ImageSize = "stretch"
	ImageSizeSmall   ImageSize = "small"
	ImageSizeMedium  ImageSize = "medium"
	ImageSizeLarge   ImageSize = "large"
)

var imageSizeValues = []ImageSize{ImageSizeAuto, ImageSizeStretch, ImageSizeSmall, ImageSizeMedium, ImageSizeLarge}

func ParseImageSize(s string) (ImageSize, bool) { return parseEnum(s, imageSizeValues) }

func (v *ImageSize) UnmarshalText(b []byte) error {
	return unmarshalEnum(v, b, "image size", imageSizeValues)
}

// ImageStyle crops an image, "person" renders it as a circle
type ImageStyle string

const (
	ImageStyleDefault ImageStyle = "default"
	ImageStylePerson  ImageStyle = "person"
)

var imageStyleValues = []ImageStyle{ImageStyleDefault, ImageStylePerson}

func ParseImageStyle(s string) (ImageStyle, bool) { return parseEnum(s, imageStyleValues) }

// TextInputStyle hints the keyboard or validation for a text input
type TextInputStyle string

const (
	TextInputText     TextInputStyle = "text"
	TextInputTel      TextInputStyle = "tel"
	TextInputURL      TextInputStyle = "url"
	TextInputEmail    TextInputStyle = "email"
	TextInputPassword TextInputStyle = "password"
)

var textInputStyleValues = []TextInputStyle{TextInputText, TextInputTel, TextInputURL, TextInputEmail, TextInputPassword}

func ParseTextInputStyle(s string) (TextInputStyle, bool) { return parseEnum(s, textInputStyleValues) }

// ChoiceSetStyle selects between a dropdown and an expanded list
type ChoiceSetStyle string

const (
	ChoiceSetCompact  ChoiceSetStyle = "compact"
	ChoiceSetExpanded ChoiceSetStyle = "expanded"
	ChoiceSetFiltered ChoiceSetStyle = "filtered"
)

var choiceSetStyleValues = []ChoiceSetStyle{ChoiceSetCompact, ChoiceSetExpanded, ChoiceSetFiltered}

func ParseChoiceSetStyle(s string) (ChoiceSetStyle, bool) { return parseEnum(s, choiceSetStyleValues) }

// Well-known action sentiments. Any other value names a custom style.
const (
	SentimentDefault     = "default"
	SentimentPositive    = "positive"
	SentimentDestructive = "destructive"
)
