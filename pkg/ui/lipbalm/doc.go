/*
Package lipbalm expands XML-like style tags into terminal styling.

Exporters write markup such as

	<Button>OK</Button> <Muted>(disabled)</Muted>

and lipbalm turns each tag into the lipgloss style registered under its
name. The same markup degrades to plain text, so one code path serves both
the terminal and the text formats.

# Core Functions

  - Render: executes a text/template, then expands style tags
  - ExpandTags: expands style tags only
  - StripTags: removes all tags, keeping their text
  - Escape: escapes text so it can be embedded in markup

# Tags

The tag name must correspond to a key in the StyleMap. Unknown tags keep
their content and lose the tag. Tags nest; the inner style is applied
first.

# Special Tags

The <no-format> tag only renders when the terminal doesn't support color:

	<Warning>Warning</Warning><no-format> (!)</no-format>

# Color Support

Styles are applied only when the renderer set with SetDefaultRenderer
(lipgloss's default renderer otherwise) has a color profile. Input that is
not well formed markup is returned unchanged.
*/
package lipbalm
