package types

// WarningStatusCode classifies a recoverable problem found while parsing or rendering
type WarningStatusCode string

const (
	WarnUnknownElementType        WarningStatusCode = "UnknownElementType"
	WarnUnknownActionElementType  WarningStatusCode = "UnknownActionElementType"
	WarnUnsupportedSchemaVersion  WarningStatusCode = "UnsupportedSchemaVersion"
	WarnMaxActionsExceeded        WarningStatusCode = "MaxActionsExceeded"
	WarnInteractivityNotSupported WarningStatusCode = "InteractivityNotSupported"
	WarnUnsupportedValue          WarningStatusCode = "UnsupportedValue"
	WarnPerformingFallback        WarningStatusCode = "PerformingFallback"
	WarnFallbackCycle             WarningStatusCode = "FallbackCycle"
	WarnRequiredPropertyMissing   WarningStatusCode = "RequiredPropertyMissing"
	WarnInvalidValue              WarningStatusCode = "InvalidValue"
	WarnCustomWarning             WarningStatusCode = "CustomWarning"
)

// Warning is a single recoverable problem
type Warning struct {
	StatusCode WarningStatusCode `json:"statusCode" yaml:"statusCode"`
	Message    string            `json:"message" yaml:"message"`
}

// WarningSink receives warnings in the order they are produced
type WarningSink interface {
	AddWarning(code WarningStatusCode, message string)
}

// Warnings is an append-only warning sequence
type Warnings []Warning

// AddWarning implements WarningSink
func (w *Warnings) AddWarning(code WarningStatusCode, message string) {
	*w = append(*w, Warning{StatusCode: code, Message: message})
}

// Count returns how many warnings carry the given code
func (w Warnings) Count(code WarningStatusCode) int {
	n := 0
	for _, warning := range w {
		if warning.StatusCode == code {
			n++
		}
	}
	return n
}

// Has reports whether any warning carries the given code
func (w Warnings) Has(code WarningStatusCode) bool {
	return w.Count(code) > 0
}

// DiscardWarnings is a sink that drops everything
type DiscardWarnings struct{}

func (DiscardWarnings) AddWarning(WarningStatusCode, string) {}
