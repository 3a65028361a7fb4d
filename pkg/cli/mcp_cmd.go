package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/mkproj/mkproj/pkg/log"
	"github.com/mkproj/mkproj/pkg/scaffold"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

// NewMCPCmd constructs the `mcp` subcommand, which serves the scaffolder to
// MCP clients. stdio is the default transport; --http serves the streamable
// HTTP transport instead.
func NewMCPCmd(deps *Deps) *cobra.Command {
	var httpAddr string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "serve the scaffolder over the Model Context Protocol",
		Long: strings.TrimSpace(`
Serve mkproj as an MCP tool server so agents can put up projects.
Exposes create_project and list_licenses. By default the server speaks
stdio; pass --http to serve the streamable HTTP transport on the given
address instead.
`),
		Example: strings.TrimSpace(`
  mkproj mcp
  mkproj mcp --http 127.0.0.1:8712
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			srv := newMCPServer(deps)
			if httpAddr != "" {
				return srv.serveHTTP(cmd.Context(), httpAddr)
			}
			return srv.server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}

	cmd.Flags().StringVar(&httpAddr, "http", "",
		"serve streamable HTTP on `ADDR` instead of stdio")

	return cmd
}

// mcpServer owns the MCP tool handlers. The handlers are plain methods so
// tests can call them without a transport in between.
type mcpServer struct {
	deps   *Deps
	server *mcp.Server
}

type createProjectArgs struct {
	Name        string   `json:"name"`
	Package     string   `json:"package,omitempty"`
	Module      string   `json:"module,omitempty"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	License     string   `json:"license,omitempty"`
	Author      string   `json:"author,omitempty"`
	Email       string   `json:"email,omitempty"`
	Force       bool     `json:"force,omitempty"`
	Update      bool     `json:"update,omitempty"`
	Pretend     bool     `json:"pretend,omitempty"`
	Extensions  []string `json:"extensions,omitempty"`
}

func newMCPServer(deps *Deps) *mcpServer {
	s := &mcpServer{deps: deps}
	s.server = mcp.NewServer(&mcp.Implementation{
		Name:    "mkproj",
		Version: Version,
	}, nil)

	s.server.AddTool(&mcp.Tool{
		Name: "create_project",
		Description: "Scaffold a new Go project directory with README, LICENSE, " +
			"go.mod, Makefile and a code skeleton. Returns one line per written file.",
		InputSchema: createProjectSchema(),
	}, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args createProjectArgs
		if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
			return errorResult(fmt.Errorf("unable to parse arguments: %w", err)), nil
		}
		text, err := s.createProject(ctx, args)
		if err != nil {
			return errorResult(err), nil
		}
		return textResult(text), nil
	})

	s.server.AddTool(&mcp.Tool{
		Name:        "list_licenses",
		Description: "List the license identifiers create_project accepts.",
		InputSchema: &jsonschema.Schema{Type: "object"},
	}, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return textResult(s.listLicenses()), nil
	})

	return s
}

func createProjectSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name":        {Type: "string", Description: "project directory name"},
			"package":     {Type: "string", Description: "Go package name (default: derived from name)"},
			"module":      {Type: "string", Description: "go.mod module path"},
			"description": {Type: "string", Description: "short project description for the README"},
			"url":         {Type: "string", Description: "project URL, also seeds the module path"},
			"license":     {Type: "string", Description: "license identifier (mit, apache, bsd3, unlicense)"},
			"author":      {Type: "string", Description: "author name for the LICENSE and README"},
			"email":       {Type: "string", Description: "contact email for the generated files"},
			"force":       {Type: "boolean", Description: "overwrite an existing directory"},
			"update":      {Type: "boolean", Description: "update an existing project, keeping files already on disk"},
			"pretend":     {Type: "boolean", Description: "report the files that would be written without writing them"},
			"extensions": {
				Type:        "array",
				Items:       &jsonschema.Schema{Type: "string"},
				Description: "extension names to activate (github-actions, no-skeleton, pre-commit)",
			},
		},
		Required: []string{"name"},
	}
}

// createProject runs one scaffold for the given arguments and renders the
// report. Domain failures surface as errors; the caller maps them onto
// IsError results so the session stays alive.
func (s *mcpServer) createProject(ctx context.Context, args createProjectArgs) (string, error) {
	svc := s.deps.Scaffold
	opts := &scaffold.ProjectOptions{
		Name:        args.Name,
		Package:     args.Package,
		Module:      args.Module,
		Description: args.Description,
		URL:         args.URL,
		License:     args.License,
		Author:      args.Author,
		Email:       args.Email,
		Force:       args.Force,
		Update:      args.Update,
		Pretend:     args.Pretend,
	}
	for _, name := range args.Extensions {
		ext, err := findExtension(svc.Extensions, name)
		if err != nil {
			return "", err
		}
		opts.Extensions = append(opts.Extensions, ext)
	}

	report, err := svc.Run(ctx, opts)
	if err != nil {
		return "", decorateError(err)
	}
	header := fmt.Sprintf("created %s\n", report.Root)
	if report.Pretend {
		header = fmt.Sprintf("pretend run for %s, nothing written\n", report.Root)
	}
	return header + report.String(), nil
}

func (s *mcpServer) listLicenses() string {
	return strings.Join(scaffold.Licenses(), "\n")
}

// serveHTTP serves the streamable HTTP transport until ctx is done, then
// shuts the listener down gracefully.
func (s *mcpServer) serveHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, &mcp.StreamableHTTPOptions{})

	mux := http.NewServeMux()
	mux.Handle("/", handler)
	srv := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	log.FromContext(ctx).Info("mcp server listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("unable to shut down mcp server: %w", err)
		}
		return nil
	}
}

func findExtension(installed []scaffold.Extension, name string) (scaffold.Extension, error) {
	name = strings.TrimSpace(name)
	for _, ext := range installed {
		if ext.Name() == name {
			return ext, nil
		}
	}
	return nil, fmt.Errorf("unknown extension: %q", name)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
