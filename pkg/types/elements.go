package types

// TextBlock displays a run of text, optionally as markdown
type TextBlock struct {
	BaseElement
	Text                string
	Size                TextSize
	Weight              TextWeight
	Color               ForegroundColor
	IsSubtle            bool
	Wrap                bool
	MaxLines            uint32
	HorizontalAlignment HorizontalAlignment
	FontType            FontType
	Style               TextStyle
}

func NewTextBlock(text string) *TextBlock {
	return &TextBlock{
		BaseElement:         NewBaseElement(ElementTextBlock),
		Text:                text,
		Size:                TextSizeDefault,
		Weight:              TextWeightDefault,
		Color:               ColorDefault,
		HorizontalAlignment: HAlignLeft,
		FontType:            FontTypeDefault,
		Style:               TextStyleDefault,
	}
}

// Image displays a picture
type Image struct {
	BaseElement
	selectable
	URL                 string
	AltText             string
	Size                ImageSize
	Style               ImageStyle
	PixelWidth          uint32
	PixelHeight         uint32
	BackgroundColor     string
	HorizontalAlignment HorizontalAlignment
}

func NewImage(url string) *Image {
	return &Image{
		BaseElement:         NewBaseElement(ElementImage),
		URL:                 url,
		Size:                ImageSizeAuto,
		Style:               ImageStyleDefault,
		HorizontalAlignment: HAlignLeft,
	}
}

// Container groups elements and can paint a styled background
type Container struct {
	BaseElement
	ContainerProps
	Items                    []CardElement
	VerticalContentAlignment VerticalContentAlignment
}

func NewContainer(items ...CardElement) *Container {
	return &Container{
		BaseElement:              NewBaseElement(ElementContainer),
		Items:                    items,
		VerticalContentAlignment: VAlignTop,
	}
}

func (c *Container) Children() []CardElement { return c.Items }

// Column is one cell of a ColumnSet. Width is "auto", "stretch", a
// weight like "2" or a pixel value like "50px".
type Column struct {
	BaseElement
	ContainerProps
	Items                    []CardElement
	Width                    string
	VerticalContentAlignment VerticalContentAlignment
}

func NewColumn(items ...CardElement) *Column {
	return &Column{
		BaseElement:              NewBaseElement(ElementColumn),
		Items:                    items,
		Width:                    "auto",
		VerticalContentAlignment: VAlignTop,
	}
}

func (c *Column) Children() []CardElement { return c.Items }

// ColumnSet lays columns side by side
type ColumnSet struct {
	BaseElement
	ContainerProps
	Columns             []CardElement
	HorizontalAlignment HorizontalAlignment
}

func NewColumnSet(columns ...CardElement) *ColumnSet {
	return &ColumnSet{
		BaseElement:         NewBaseElement(ElementColumnSet),
		Columns:             columns,
		HorizontalAlignment: HAlignLeft,
	}
}

func (c *ColumnSet) Children() []CardElement { return c.Columns }

// Fact is a title/value pair inside a FactSet
type Fact struct {
	Title string `json:"title" yaml:"title"`
	Value string `json:"value" yaml:"value"`
}

// FactSet displays facts as a two-column table
type FactSet struct {
	BaseElement
	Facts []Fact
}

func NewFactSet(facts ...Fact) *FactSet {
	return &FactSet{BaseElement: NewBaseElement(ElementFactSet), Facts: facts}
}

// ImageSet displays a gallery of images at a shared size
type ImageSet struct {
	BaseElement
	Images    []CardElement
	ImageSize ImageSize
}

func NewImageSet(images ...CardElement) *ImageSet {
	return &ImageSet{
		BaseElement: NewBaseElement(ElementImageSet),
		Images:      images,
		ImageSize:   ImageSizeMedium,
	}
}

func (s *ImageSet) Children() []CardElement { return s.Images }

// ActionSet places a row of actions inside the card body
type ActionSet struct {
	BaseElement
	Actions []ActionElement
}

func NewActionSet(actions ...ActionElement) *ActionSet {
	return &ActionSet{BaseElement: NewBaseElement(ElementActionSet), Actions: actions}
}

// MediaSource is one playable source of a Media element
type MediaSource struct {
	MimeType string `json:"mimeType" yaml:"mimeType"`
	URL      string `json:"url" yaml:"url"`
}

// Media is an audio or video clip with an optional poster image
type Media struct {
	BaseElement
	Poster  string
	AltText string
	Sources []MediaSource
}

func NewMedia(sources ...MediaSource) *Media {
	return &Media{BaseElement: NewBaseElement(ElementMedia), Sources: sources}
}

// TextInput collects free text
type TextInput struct {
	BaseElement
	InputProps
	Placeholder  string
	Value        string
	IsMultiline  bool
	MaxLength    uint32
	Style        TextInputStyle
	Regex        string
	InlineAction ActionElement
}

func NewTextInput(id string) *TextInput {
	in := &TextInput{BaseElement: NewBaseElement(ElementTextInput), Style: TextInputText}
	in.SetID(id)
	return in
}

// NumberInput collects a number within optional bounds
type NumberInput struct {
	BaseElement
	InputProps
	Placeholder string
	Value       *float64
	Min         *float64
	Max         *float64
}

func NewNumberInput(id string) *NumberInput {
	in := &NumberInput{BaseElement: NewBaseElement(ElementNumberInput)}
	in.SetID(id)
	return in
}

// ToggleInput is a checkbox with configurable on/off values
type ToggleInput struct {
	BaseElement
	InputProps
	Title    string
	Value    string
	ValueOn  string
	ValueOff string
	Wrap     bool
}

func NewToggleInput(id, title string) *ToggleInput {
	in := &ToggleInput{
		BaseElement: NewBaseElement(ElementToggleInput),
		Title:       title,
		Value:       "false",
		ValueOn:     "true",
		ValueOff:    "false",
	}
	in.SetID(id)
	return in
}

// Choice is one option of a ChoiceSetInput
type Choice struct {
	Title string `json:"title" yaml:"title"`
	Value string `json:"value" yaml:"value"`
}

// ChoiceSetInput picks one or more values from a list
type ChoiceSetInput struct {
	BaseElement
	InputProps
	Choices       []Choice
	IsMultiSelect bool
	Style         ChoiceSetStyle
	Placeholder   string
	Value         string
	Wrap          bool
}

func NewChoiceSetInput(id string, choices ...Choice) *ChoiceSetInput {
	in := &ChoiceSetInput{
		BaseElement: NewBaseElement(ElementChoiceSetInput),
		Choices:     choices,
		Style:       ChoiceSetCompact,
	}
	in.SetID(id)
	return in
}

// UnknownElement preserves an element whose type tag no parser recognized
type UnknownElement struct {
	BaseElement
	Raw map[string]any
}

func NewUnknownElement(typeName string, raw map[string]any) *UnknownElement {
	base := NewBaseElement(ElementUnknown)
	base.typeName = typeName
	return &UnknownElement{BaseElement: base, Raw: raw}
}

// SetTypeName overrides the type tag. Hosts registering custom element
// parsers use it to build elements for tags outside the built-in set.
func (b *BaseElement) SetTypeName(name string) { b.typeName = name }
