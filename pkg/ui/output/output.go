package output

import (
	"io"
	"os"

	"github.com/arthur-debert/cardrender/pkg/errors"
	"github.com/arthur-debert/cardrender/pkg/logging"
	"github.com/arthur-debert/cardrender/pkg/ui"
	"github.com/arthur-debert/cardrender/pkg/ui/json"
	"github.com/arthur-debert/cardrender/pkg/ui/terminal"
	"github.com/arthur-debert/cardrender/pkg/ui/text"
	"github.com/arthur-debert/cardrender/pkg/ui/tree"
	"github.com/arthur-debert/cardrender/pkg/ui/xaml"
)

// NewRenderer creates a new renderer based on the specified format.
// It detects terminal capabilities when format is Auto; writers that are
// not files get plain text.
func NewRenderer(format ui.Format, w io.Writer) (ui.Renderer, error) {
	logger := logging.GetLogger("ui.output")

	switch format {
	case ui.FormatAuto:
		detected := ui.FormatText
		if file, ok := w.(*os.File); ok {
			detected = ui.DetectFormat(file)
		}
		logger.Debug().Str("format", detected.String()).Msg("Detected output format")
		return NewRenderer(detected, w)
	case ui.FormatTerminal:
		return terminal.New(w)
	case ui.FormatText:
		return text.New(w)
	case ui.FormatTree:
		if file, ok := w.(*os.File); ok && ui.DetectFormat(file) == ui.FormatTerminal {
			return tree.NewColor(w)
		}
		return tree.New(w)
	case ui.FormatJSON:
		return json.New(w)
	case ui.FormatXAML:
		return xaml.New(w)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
