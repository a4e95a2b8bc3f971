package hostconfig

import (
	"regexp"
	"sort"

	"github.com/arthur-debert/cardrender/pkg/errors"
)

var colorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// Validate reports values the renderer cannot use. Empty colors are
// allowed and fall back to the default container style at render time.
func (c *HostConfig) Validate() []error {
	var errs []error
	checkColor := func(path, value string) {
		if value != "" && !colorPattern.MatchString(value) {
			errs = append(errs, errors.Newf(errors.ErrConfigValid, "%s: invalid color %q", path, value).
				WithDetail("key", path))
		}
	}

	for _, s := range c.ContainerStyles.namedStyles() {
		prefix := "containerStyles." + s.name
		checkColor(prefix+".backgroundColor", s.def.BackgroundColor)
		checkColor(prefix+".borderColor", s.def.BorderColor)

		colors := s.def.ForegroundColors.namedColors()
		names := make([]string, 0, len(colors))
		for name := range colors {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			checkColor(prefix+".foregroundColors."+name+".default", colors[name].Default)
			checkColor(prefix+".foregroundColors."+name+".subtle", colors[name].Subtle)
			checkColor(prefix+".foregroundColors."+name+".highlightColors.default", colors[name].HighlightColors.Default)
			checkColor(prefix+".foregroundColors."+name+".highlightColors.subtle", colors[name].HighlightColors.Subtle)
		}
	}
	checkColor("separator.lineColor", c.Separator.LineColor)

	if c.TextBlock.HeadingLevel < 1 || c.TextBlock.HeadingLevel > 6 {
		errs = append(errs, errors.Newf(errors.ErrConfigValid,
			"textBlock.headingLevel: must be between 1 and 6, got %d", c.TextBlock.HeadingLevel))
	}
	if c.Overflow.ButtonText == "" {
		errs = append(errs, errors.New(errors.ErrConfigValid, "overflow.buttonText: must not be empty"))
	}
	return errs
}
