package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Render Adaptive Cards in the terminal"
	MsgRootLong        = "cardrender parses Adaptive Card documents and renders them against a host config,\nwriting the result as styled terminal output, plain text, a node tree, JSON or XAML."
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgRenderShort     = "Render one or more cards"
	MsgValidateShort   = "Check cards for errors and warnings"
	MsgWatchShort      = "Re-render cards when they or the host config change"
	MsgMCPShort        = "Serve render_card and validate_card over MCP (stdio)"
	MsgGenConfigShort  = "Print the default host config"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgCardOK         = "%s: ok"
	MsgCardWarnings   = "%s: %d warning(s)"
	MsgWatching       = "Watching %d file(s), press Ctrl-C to stop"
	MsgRenderedHeader = "==> %s <=="

	// Version output
	MsgVersionFormat = "cardrender version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Error messages
	MsgErrLoadHostConfig = "failed to load host config: %w"
	MsgErrLoadStyles     = "failed to load styles: %w"
	MsgErrReadCard       = "failed to read %s: %w"
	MsgErrInvalidSet     = "invalid --set %q, expected key=value"
	MsgErrInvalidFeature = "invalid --feature %q, expected name=version"
	MsgErrValidation     = "%d card(s) failed validation"
	MsgErrRenderFailed   = "%d card(s) failed to render"
)

// Long help texts
const (
	MsgRenderLong = `Render parses each card and writes it in the chosen format.

Cards may be JSON or YAML; "-" reads a card from stdin. The host config is
layered: built-in defaults, then --config (or the first hostconfig.{json,yaml,toml}
under $XDG_CONFIG_HOME/cardrender), then --set overrides, then CARDRENDER_*
environment variables.`

	MsgRenderExample = `  # Render a card for the terminal
  cardrender render card.json

  # Show the node tree with a stricter action limit
  cardrender render card.json -f tree --set actions.maxActions=2

  # Several cards, as XAML
  cardrender render -f xaml a.json b.yaml`

	MsgGenConfigExample = `  cardrender genconfig                 # TOML with every value commented out
  cardrender genconfig -f json         # Full defaults as JSON
  cardrender genconfig -o host.toml    # Write to a file`
)
