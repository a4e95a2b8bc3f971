package types

// ActionType is the schema type tag of an action
type ActionType string

const (
	ActionOpenURL          ActionType = "Action.OpenUrl"
	ActionSubmit           ActionType = "Action.Submit"
	ActionExecute          ActionType = "Action.Execute"
	ActionShowCard         ActionType = "Action.ShowCard"
	ActionToggleVisibility ActionType = "Action.ToggleVisibility"
	ActionUnknown          ActionType = "Unknown"
	// ActionOverflow is the synthetic action behind the overflow menu button
	ActionOverflow ActionType = "Overflow"
)

// ActionElement is an invokable command attached to a card or element
type ActionElement interface {
	ActionType() ActionType
	TypeName() string
	ID() string
	Title() string
	IconURL() string
	Tooltip() string
	// Style is the action sentiment: "default", "positive",
	// "destructive" or a custom suffix.
	Style() string
	Mode() ActionMode
	IsEnabled() bool
	FallbackType() FallbackType
	FallbackContent() ActionElement
	Requirements() []Requirement
	AdditionalProperties() map[string]any

	SetID(id string)
	SetTitle(title string)
	SetIconURL(url string)
	SetTooltip(tooltip string)
	SetStyle(style string)
	SetMode(mode ActionMode)
	SetIsEnabled(enabled bool)
	SetRequirements(reqs []Requirement)
	SetAdditionalProperties(props map[string]any)
	SetFallback(fallbackType FallbackType, content ActionElement) error
}

// BaseAction carries the properties shared by every action
type BaseAction struct {
	actionType      ActionType
	typeName        string
	id              string
	title           string
	iconURL         string
	tooltip         string
	style           string
	mode            ActionMode
	isEnabled       bool
	fallbackType    FallbackType
	fallbackContent ActionElement
	requirements    []Requirement
	additional      map[string]any
}

// NewBaseAction returns an enabled primary action with the default sentiment
func NewBaseAction(t ActionType) BaseAction {
	return BaseAction{
		actionType:   t,
		typeName:     string(t),
		style:        SentimentDefault,
		mode:         ActionModePrimary,
		isEnabled:    true,
		fallbackType: FallbackNone,
	}
}

func (a *BaseAction) ActionType() ActionType               { return a.actionType }
func (a *BaseAction) TypeName() string                     { return a.typeName }
func (a *BaseAction) ID() string                           { return a.id }
func (a *BaseAction) Title() string                        { return a.title }
func (a *BaseAction) IconURL() string                      { return a.iconURL }
func (a *BaseAction) Tooltip() string                      { return a.tooltip }
func (a *BaseAction) Style() string                        { return a.style }
func (a *BaseAction) Mode() ActionMode                     { return a.mode }
func (a *BaseAction) IsEnabled() bool                      { return a.isEnabled }
func (a *BaseAction) FallbackType() FallbackType           { return a.fallbackType }
func (a *BaseAction) FallbackContent() ActionElement       { return a.fallbackContent }
func (a *BaseAction) Requirements() []Requirement          { return a.requirements }
func (a *BaseAction) AdditionalProperties() map[string]any { return a.additional }

func (a *BaseAction) SetID(id string)                              { a.id = id }
func (a *BaseAction) SetTitle(title string)                        { a.title = title }
func (a *BaseAction) SetIconURL(url string)                        { a.iconURL = url }
func (a *BaseAction) SetTooltip(tooltip string)                    { a.tooltip = tooltip }
func (a *BaseAction) SetStyle(style string)                        { a.style = style }
func (a *BaseAction) SetMode(mode ActionMode)                      { a.mode = mode }
func (a *BaseAction) SetIsEnabled(enabled bool)                    { a.isEnabled = enabled }
func (a *BaseAction) SetRequirements(reqs []Requirement)           { a.requirements = reqs }
func (a *BaseAction) SetAdditionalProperties(props map[string]any) { a.additional = props }
func (a *BaseAction) SetTypeName(name string)                      { a.typeName = name }

// SetFallback follows the same contract as BaseElement.SetFallback
func (a *BaseAction) SetFallback(fallbackType FallbackType, content ActionElement) error {
	if err := checkFallback(fallbackType, content == nil); err != nil {
		return err
	}
	a.fallbackType = fallbackType
	a.fallbackContent = content
	return nil
}

// OpenURLAction opens a URL in the host
type OpenURLAction struct {
	BaseAction
	URL string
}

func NewOpenURLAction(title, url string) *OpenURLAction {
	a := &OpenURLAction{BaseAction: NewBaseAction(ActionOpenURL), URL: url}
	a.SetTitle(title)
	return a
}

// SubmitAction gathers input values and hands them to the host
type SubmitAction struct {
	BaseAction
	Data             any
	AssociatedInputs string
}

func NewSubmitAction(title string) *SubmitAction {
	a := &SubmitAction{BaseAction: NewBaseAction(ActionSubmit), AssociatedInputs: "auto"}
	a.SetTitle(title)
	return a
}

// ExecuteAction is a submit with a verb for universal actions
type ExecuteAction struct {
	BaseAction
	Verb             string
	Data             any
	AssociatedInputs string
}

func NewExecuteAction(title, verb string) *ExecuteAction {
	a := &ExecuteAction{BaseAction: NewBaseAction(ActionExecute), Verb: verb, AssociatedInputs: "auto"}
	a.SetTitle(title)
	return a
}

// ShowCardAction reveals a nested card
type ShowCardAction struct {
	BaseAction
	Card *Card
}

func NewShowCardAction(title string, card *Card) *ShowCardAction {
	a := &ShowCardAction{BaseAction: NewBaseAction(ActionShowCard), Card: card}
	a.SetTitle(title)
	return a
}

// ToggleTarget names an element to toggle. A nil IsVisible flips the
// current state, otherwise the element is forced to that state.
type ToggleTarget struct {
	ElementID string `json:"elementId" yaml:"elementId"`
	IsVisible *bool  `json:"isVisible,omitempty" yaml:"isVisible,omitempty"`
}

// ToggleVisibilityAction shows or hides elements of the card
type ToggleVisibilityAction struct {
	BaseAction
	Targets []ToggleTarget
}

func NewToggleVisibilityAction(title string, targets ...ToggleTarget) *ToggleVisibilityAction {
	a := &ToggleVisibilityAction{BaseAction: NewBaseAction(ActionToggleVisibility), Targets: targets}
	a.SetTitle(title)
	return a
}

// UnknownAction preserves an action whose type tag no parser recognized
type UnknownAction struct {
	BaseAction
	Raw map[string]any
}

func NewUnknownAction(typeName string, raw map[string]any) *UnknownAction {
	base := NewBaseAction(ActionUnknown)
	base.typeName = typeName
	return &UnknownAction{BaseAction: base, Raw: raw}
}

// OverflowAction backs the "..." button that opens the overflow menu
type OverflowAction struct {
	BaseAction
}

func NewOverflowAction(title, tooltip string) *OverflowAction {
	a := &OverflowAction{BaseAction: NewBaseAction(ActionOverflow)}
	a.SetTitle(title)
	a.SetTooltip(tooltip)
	return a
}
