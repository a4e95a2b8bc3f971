package render

import "github.com/arthur-debert/cardrender/pkg/types"

// ActionEvent is sent to the host when a user invokes an action the
// renderer does not handle itself
type ActionEvent struct {
	// CardID identifies the rendered card the action came from
	CardID string
	Action types.ActionElement
	// Inputs holds the current value of every input, keyed by input id.
	// It is empty for actions whose associatedInputs is "none".
	Inputs map[string]string
}

// MediaEvent is sent to the host when a Media element is clicked. Playback
// belongs to the host.
type MediaEvent struct {
	CardID string
	Media  *types.Media
}

// ActionInvoker receives action events. Calls are synchronous and happen
// on the goroutine that clicked the node.
type ActionInvoker interface {
	SendActionEvent(event ActionEvent) error
}

// ActionInvokerFunc adapts a function to ActionInvoker
type ActionInvokerFunc func(event ActionEvent) error

func (f ActionInvokerFunc) SendActionEvent(event ActionEvent) error { return f(event) }

// MediaInvoker is implemented by invokers that also handle media clicks.
// Clicking media on a card whose invoker does not implement it returns
// ErrNotImplemented.
type MediaInvoker interface {
	SendMediaClickedEvent(event MediaEvent) error
}
