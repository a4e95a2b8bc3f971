// Package mcpserver exposes card rendering as Model Context Protocol tools.
//
// Tools:
//
//	render_card    {card, hostConfig?, format?}  rendered output as text
//	validate_card  {card, hostConfig?}           YAML report of warnings
package mcpserver

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/cardrender/pkg/hostconfig"
	"github.com/arthur-debert/cardrender/pkg/logging"
	"github.com/arthur-debert/cardrender/pkg/render"
	"github.com/arthur-debert/cardrender/pkg/types"
	"github.com/arthur-debert/cardrender/pkg/ui"
	"github.com/arthur-debert/cardrender/pkg/ui/output"
)

// Options configures a Server
type Options struct {
	// Version is reported to MCP clients
	Version string
	// HostConfig is used when a call passes no hostConfig; nil means defaults
	HostConfig *hostconfig.HostConfig
	// CacheSize bounds the parsed host config cache
	CacheSize int
}

// Server wraps an MCP server with the card tools registered
type Server struct {
	mcp    *server.MCPServer
	base   *hostconfig.HostConfig
	cache  *hostconfig.Cache
	logger zerolog.Logger
}

// New creates a server with render_card and validate_card registered
func New(opts Options) (*Server, error) {
	cache, err := hostconfig.NewCache(opts.CacheSize)
	if err != nil {
		return nil, err
	}
	base := opts.HostConfig
	if base == nil {
		base = hostconfig.Default()
	}
	version := opts.Version
	if version == "" {
		version = "dev"
	}

	s := &Server{
		mcp:    server.NewMCPServer("cardrender", version),
		base:   base,
		cache:  cache,
		logger: logging.GetLogger("mcpserver"),
	}
	s.registerTools()
	return s, nil
}

// MCP returns the underlying MCP server
func (s *Server) MCP() *server.MCPServer {
	return s.mcp
}

// ServeStdio serves the tools over stdin/stdout until the client disconnects
func (s *Server) ServeStdio() error {
	s.logger.Info().Msg("Serving MCP over stdio")
	return server.ServeStdio(s.mcp)
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("render_card",
			mcp.WithDescription("Render an Adaptive Card (JSON or YAML) and return the output with any warnings"),
			mcp.WithString("card", mcp.Required(), mcp.Description("Card document, JSON or YAML")),
			mcp.WithString("hostConfig", mcp.Description("Host config JSON layered over the defaults")),
			mcp.WithString("format", mcp.Description("Output format: text, tree, json or xaml (default text)")),
		),
		s.HandleRenderCard,
	)

	s.mcp.AddTool(
		mcp.NewTool("validate_card",
			mcp.WithDescription("Parse and render a card, reporting warnings and errors without output"),
			mcp.WithString("card", mcp.Required(), mcp.Description("Card document, JSON or YAML")),
			mcp.WithString("hostConfig", mcp.Description("Host config JSON layered over the defaults")),
		),
		s.HandleValidateCard,
	)
}

// ValidationReport is the validate_card result
type ValidationReport struct {
	Valid    bool            `yaml:"valid" json:"valid"`
	Error    string          `yaml:"error,omitempty" json:"error,omitempty"`
	Warnings []types.Warning `yaml:"warnings" json:"warnings"`
}

// HandleRenderCard implements the render_card tool
func (s *Server) HandleRenderCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	defer logging.LogOperationStart(s.logger, "render_card")()

	card, err := request.RequireString("card")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	format, err := toolFormat(request.GetString("format", "text"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rc, err := s.render(card, request.GetString("hostConfig", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var buf bytes.Buffer
	r, err := output.NewRenderer(format, &buf)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := r.RenderCard(rc.Root, rc.Warnings); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

// HandleValidateCard implements the validate_card tool
func (s *Server) HandleValidateCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	defer logging.LogOperationStart(s.logger, "validate_card")()

	card, err := request.RequireString("card")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	report := ValidationReport{Valid: true, Warnings: []types.Warning{}}
	rc, err := s.render(card, request.GetString("hostConfig", ""))
	if rc != nil {
		report.Warnings = append(report.Warnings, rc.Warnings...)
	}
	if err != nil {
		report.Valid = false
		report.Error = err.Error()
	}

	b, err := yaml.Marshal(report)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding report: %v", err)), nil
	}
	if !report.Valid {
		return mcp.NewToolResultError(string(b)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (s *Server) render(card, hostConfigJSON string) (*render.RenderedCard, error) {
	hc := s.base
	if strings.TrimSpace(hostConfigJSON) != "" {
		parsed, err := s.cache.Parse([]byte(hostConfigJSON), hostconfig.FormatJSON)
		if err != nil {
			return nil, err
		}
		hc = parsed
	}

	r := render.New(render.WithHostConfig(hc))
	data := []byte(card)
	if isJSON(data) {
		return r.RenderJSON(data)
	}
	return r.RenderYAML(data)
}

// toolFormat maps a format name to an exporter. Color output makes no
// sense over MCP, so terminal and auto fall back to text.
func toolFormat(name string) (ui.Format, error) {
	format, err := ui.ParseFormat(name)
	if err != nil {
		return ui.FormatText, err
	}
	if format == ui.FormatAuto || format == ui.FormatTerminal {
		return ui.FormatText, nil
	}
	return format, nil
}

func isJSON(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}
