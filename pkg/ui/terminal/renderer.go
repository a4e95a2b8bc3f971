// Package terminal writes a rendered card as styled terminal output.
//
// Leaves (text, buttons, inputs) are written as lipbalm markup and
// expanded with the style registry; panels are composed with lipgloss.
// Without color support the same markup is stripped, giving plain text
// with the same layout.
package terminal

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/cardrender/pkg/logging"
	"github.com/arthur-debert/cardrender/pkg/types"
	"github.com/arthur-debert/cardrender/pkg/ui"
	"github.com/arthur-debert/cardrender/pkg/ui/lipbalm"
	"github.com/arthur-debert/cardrender/pkg/ui/output/styles"
)

// DefaultWidth is the card width used when none is configured
const DefaultWidth = 80

// Renderer writes cards with lipgloss styling
type Renderer struct {
	w        io.Writer
	lg       *lipgloss.Renderer
	color    bool
	width    int
	markdown bool
	logger   zerolog.Logger
}

// Option configures a Renderer
type Option func(*Renderer)

// WithWidth sets the total card width in cells
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// WithNoColor strips all styling
func WithNoColor() Option {
	return func(r *Renderer) {
		r.lg.SetColorProfile(termenv.Ascii)
	}
}

// WithColorProfile forces a color profile instead of detecting one
func WithColorProfile(p termenv.Profile) Option {
	return func(r *Renderer) {
		r.lg.SetColorProfile(p)
	}
}

// WithMarkdown toggles markdown rendering of text blocks in color mode
func WithMarkdown(enabled bool) Option {
	return func(r *Renderer) {
		r.markdown = enabled
	}
}

// New creates a terminal renderer writing to w
func New(w io.Writer, opts ...Option) (*Renderer, error) {
	r := &Renderer{
		w:        w,
		lg:       lipgloss.NewRenderer(w),
		width:    DefaultWidth,
		markdown: true,
		logger:   logging.GetLogger("ui.terminal"),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.color = r.lg.ColorProfile() != termenv.Ascii
	lipbalm.SetDefaultRenderer(r.lg)

	r.logger.Debug().
		Bool("color", r.color).
		Int("width", r.width).
		Msg("Terminal renderer created")
	return r, nil
}

// RenderCard writes the card followed by its warnings
func (r *Renderer) RenderCard(root *ui.Node, warnings []types.Warning) error {
	var sections []string
	if root != nil {
		if out := r.block(root, r.width); out != "" {
			sections = append(sections, out)
		}
	}
	if len(warnings) > 0 {
		sections = append(sections, r.warnings(warnings))
	}
	_, err := fmt.Fprintln(r.w, strings.Join(sections, "\n\n"))
	return err
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintln(r.w, r.markup("<Error>Error:</Error> "+lipbalm.Escape(err.Error())))
	return writeErr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.w, r.markup("<Info>"+lipbalm.Escape(msg)+"</Info>"))
	return err
}

// markup expands style tags, or strips them without color
func (r *Renderer) markup(s string) string {
	if !r.color {
		return lipbalm.StripTags(s)
	}
	out, err := lipbalm.ExpandTags(s, styles.StyleRegistry)
	if err != nil {
		r.logger.Trace().Err(err).Msg("Tag expansion failed")
		return lipbalm.StripTags(s)
	}
	return out
}

// tagged wraps escaped text in a style tag
func (r *Renderer) tagged(style, text string) string {
	return r.markup("<" + style + ">" + lipbalm.Escape(text) + "</" + style + ">")
}

// chrome returns a border style; colors only apply in color mode
func (r *Renderer) chrome(name string) lipgloss.Style {
	s := styles.GetStyle(name)
	if r.color {
		return s
	}
	return lipgloss.NewStyle().
		Border(s.GetBorderStyle()).
		Padding(s.GetPaddingTop(), s.GetPaddingRight(), s.GetPaddingBottom(), s.GetPaddingLeft())
}

func (r *Renderer) warnings(warnings []types.Warning) string {
	lines := []string{r.tagged("Warning", fmt.Sprintf("%d warning(s):", len(warnings)))}
	for _, w := range warnings {
		lines = append(lines, "  "+r.tagged("WarningCode", string(w.StatusCode))+" "+r.tagged("Warning", w.Message))
	}
	return strings.Join(lines, "\n")
}

// block renders a node into a multi-line string no wider than width
func (r *Renderer) block(n *ui.Node, width int) string {
	if n == nil || !n.Visible {
		return ""
	}
	if width < 1 {
		width = 1
	}

	switch n.Kind {
	case ui.KindCard:
		box := r.chrome("Card")
		inner := width - box.GetHorizontalFrameSize()
		return box.Render(r.vertical(n.Children, inner))
	case ui.KindShowCardPanel:
		box := r.chrome("ShowCardPanel")
		inner := width - box.GetHorizontalFrameSize()
		return box.Render(r.vertical(n.Children, inner))
	case ui.KindStack:
		if n.Orientation == ui.Horizontal {
			return r.horizontal(n.Children, width)
		}
		return r.vertical(n.Children, width)
	case ui.KindGrid:
		return r.grid(n, width)
	case ui.KindActionSet, ui.KindTouchTarget:
		return r.vertical(n.Children, width)
	case ui.KindFactSet:
		return r.factSet(n, width)
	case ui.KindText:
		return r.text(n, width)
	case ui.KindImage:
		return r.image(n, width)
	case ui.KindMedia:
		return r.tagged("Media", "▶ "+firstNonEmpty(n.Prop("url"), n.Prop("poster"), "media"))
	case ui.KindButton:
		out := r.button(n)
		if menu := r.flyout(n.Flyout); menu != "" {
			out = lipgloss.JoinVertical(lipgloss.Left, out, menu)
		}
		return out
	case ui.KindFlyout:
		return r.flyout(n)
	case ui.KindSeparator:
		if n.Orientation == ui.Vertical {
			return r.tagged("Separator", "│")
		}
		return r.tagged("Separator", strings.Repeat("─", width))
	case ui.KindInput:
		return r.input(n, width)
	case ui.KindSpacer:
		return ""
	}
	return r.vertical(n.Children, width)
}

func (r *Renderer) vertical(children []*ui.Node, width int) string {
	var parts []string
	for _, c := range children {
		if out := r.block(c, width); out != "" {
			parts = append(parts, out)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r *Renderer) horizontal(children []*ui.Node, width int) string {
	visible := visibleChildren(children)
	if len(visible) == 0 {
		return ""
	}
	each := width / len(visible)
	var parts []string
	for i, c := range visible {
		out := r.block(c, each)
		if out == "" {
			continue
		}
		if i > 0 && len(parts) > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, out)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// grid places children by their column index. Children without a column
// share column zero.
func (r *Renderer) grid(n *ui.Node, width int) string {
	byColumn := map[int][]*ui.Node{}
	for _, c := range visibleChildren(n.Children) {
		col := c.Column
		if col < 0 {
			col = 0
		}
		byColumn[col] = append(byColumn[col], c)
	}
	if len(byColumn) == 0 {
		return ""
	}
	columns := make([]int, 0, len(byColumn))
	for col := range byColumn {
		columns = append(columns, col)
	}
	sort.Ints(columns)

	each := width / len(columns)
	var parts []string
	for _, col := range columns {
		out := r.vertical(byColumn[col], each)
		if out == "" {
			continue
		}
		if len(parts) > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, out)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (r *Renderer) factSet(n *ui.Node, width int) string {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		StyleFunc(func(_, _ int) lipgloss.Style {
			return lipgloss.NewStyle().PaddingRight(1)
		})
	rows := 0
	for _, row := range visibleChildren(n.Children) {
		var title, value string
		for _, cell := range row.Children {
			if cell.Column == 1 {
				value = r.tagged("FactValue", cell.Text)
			} else {
				title = r.tagged("FactTitle", cell.Text)
			}
		}
		t.Row(title, value)
		rows++
	}
	if rows == 0 {
		return ""
	}
	return t.Width(width).String()
}

func (r *Renderer) text(n *ui.Node, width int) string {
	text := n.Text
	if text == "" {
		return ""
	}
	if r.color && r.markdown && looksLikeMarkdown(text) {
		if out, ok := r.renderMarkdown(text, width); ok {
			return out
		}
	}

	if n.Prop("wrap") == "true" {
		text = runewidth.Wrap(text, width)
	} else {
		text = runewidth.Truncate(strings.ReplaceAll(text, "\n", " "), width, "…")
	}

	style := "Text"
	switch n.Prop("role") {
	case "heading":
		style = "Heading"
	case "label":
		style = "Label"
	}
	out := r.tagged(style, text)
	if r.color && n.Foreground != "" {
		out = lipgloss.NewStyle().Foreground(lipgloss.Color(HexColor(n.Foreground))).Render(out)
	}
	return out
}

func (r *Renderer) renderMarkdown(text string, width int) (string, bool) {
	md, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		r.logger.Debug().Err(err).Msg("Markdown renderer unavailable, using plain text")
		return "", false
	}
	out, err := md.Render(text)
	if err != nil {
		r.logger.Debug().Err(err).Msg("Markdown render failed, using plain text")
		return "", false
	}
	return strings.Trim(out, "\n"), true
}

func (r *Renderer) image(n *ui.Node, width int) string {
	label := firstNonEmpty(n.Prop("tooltip"), n.Prop("url"), "image")
	return r.tagged("Image", runewidth.Truncate("[image: "+label+"]", width, "…"))
}

func (r *Renderer) button(n *ui.Node) string {
	label := "[ " + n.Text + " ]"
	if n.Prop("icon") != "" && n.Text == "" {
		label = "[ " + n.Prop("icon") + " ]"
	}
	return r.tagged(buttonStyle(n), label)
}

func buttonStyle(n *ui.Node) string {
	switch {
	case n.Prop("enabled") == "false":
		return "ButtonDisabled"
	case strings.HasSuffix(n.Style, ".Overflow"):
		return "Overflow"
	case strings.Contains(n.Style, "Positive"):
		return "ButtonPositive"
	case strings.Contains(n.Style, "Destructive"):
		return "ButtonDestructive"
	}
	return "Button"
}

// flyout lists the menu items of an open overflow menu
func (r *Renderer) flyout(n *ui.Node) string {
	if n == nil || !n.Visible || n.Prop("open") != "true" {
		return ""
	}
	var lines []string
	for _, item := range visibleChildren(n.Children) {
		style := "MenuItem"
		if item.Prop("enabled") == "false" {
			style = "ButtonDisabled"
		}
		lines = append(lines, r.tagged(style, "• "+item.Text))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) input(n *ui.Node, width int) string {
	switch n.Prop("inputType") {
	case "toggle":
		box := "[ ]"
		if n.Prop("value") == n.Prop("valueOn") {
			box = "[x]"
		}
		return r.tagged("Input", box) + " " + r.tagged("Text", n.Text)
	case "choiceset":
		var lines []string
		for _, choice := range visibleChildren(n.Children) {
			mark := "( )"
			if choice.Prop("selected") == "true" {
				mark = "(•)"
			}
			lines = append(lines, r.tagged("Input", mark)+" "+r.tagged("Text", choice.Text))
		}
		return strings.Join(lines, "\n")
	}

	field := width - 2
	if field > 30 {
		field = 30
	}
	if v := n.Prop("value"); v != "" {
		return r.tagged("Input", "["+pad(v, field)+"]")
	}
	if p := n.Prop("placeholder"); p != "" {
		return r.markup("[<Placeholder>" + lipbalm.Escape(pad(p, field)) + "</Placeholder>]")
	}
	return r.tagged("Input", "["+strings.Repeat("_", field)+"]")
}

func pad(s string, width int) string {
	if width < 1 {
		return s
	}
	s = runewidth.Truncate(s, width, "…")
	return runewidth.FillRight(s, width)
}

// HexColor converts host config colors (#AARRGGBB) to #RRGGBB
func HexColor(c string) string {
	if len(c) == 9 && c[0] == '#' {
		return "#" + c[3:]
	}
	return c
}

func looksLikeMarkdown(s string) bool {
	return strings.Contains(s, "**") || strings.Contains(s, "](") ||
		strings.HasPrefix(s, "- ") || strings.HasPrefix(s, "# ")
}

func visibleChildren(children []*ui.Node) []*ui.Node {
	out := make([]*ui.Node, 0, len(children))
	for _, c := range children {
		if c != nil && c.Visible {
			out = append(out, c)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
