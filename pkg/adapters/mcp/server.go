// Package mcp exposes registered machines as MCP tools so agent hosts
// can run them over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/spool"
	"github.com/aretw0/spool/internal/presentation/graph"
	"github.com/aretw0/spool/pkg/domain"
	"github.com/aretw0/spool/pkg/registry"
)

// RunResponse mirrors the HTTP run payload so hosts see one shape
// across adapters.
type RunResponse struct {
	Machine    string        `json:"machine" jsonschema_description:"Name of the machine that ran"`
	Accepted   bool          `json:"accepted" jsonschema_description:"True iff the run halted in an accepting state"`
	Outcome    domain.Status `json:"outcome" jsonschema_description:"accepted, rejected or exhausted"`
	Steps      int           `json:"steps" jsonschema_description:"Number of transitions executed"`
	Tape       string        `json:"tape" jsonschema_description:"Final tape with trailing blanks stripped"`
	FinalState domain.State  `json:"final_state" jsonschema_description:"State the machine halted in"`
}

// Server wraps a machine registry and exposes it as an MCP Server.
type Server struct {
	registry  *registry.Registry
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance over the given registry.
func NewServer(reg *registry.Registry, logger *slog.Logger) *Server {
	s := &Server{
		registry:  reg,
		logger:    logger,
		mcpServer: server.NewMCPServer("spool-mcp", strings.TrimSpace(spool.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: run_machine
	runTool := mcp.NewTool("run_machine",
		mcp.WithDescription("Run a registered Turing machine on an input string and return the verdict, step count and final tape."),
		mcp.WithString("machine", mcp.Required(), mcp.Description("Name of a registered machine (see list_machines)")),
		mcp.WithString("input", mcp.Description("Input string written onto the tape (may be empty)")),
		mcp.WithNumber("max_steps", mcp.Description("Step budget for this run (default 10000)")),
		mcp.WithOutputSchema[RunResponse](),
	)
	s.mcpServer.AddTool(runTool, mcp.NewStructuredToolHandler(s.handleRun))

	// TOOL: list_machines
	s.mcpServer.AddTool(mcp.NewTool("list_machines",
		mcp.WithDescription("List the names of all registered machines."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, _ := json.Marshal(s.registry.Names())
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: describe_machine
	s.mcpServer.AddTool(mcp.NewTool("describe_machine",
		mcp.WithDescription("Get a machine's description and its transition diagram as Mermaid."),
		mcp.WithString("machine", mcp.Required(), mcp.Description("Name of a registered machine")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := request.GetString("machine", "")
		m, err := s.registry.Get(name)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("unknown machine: %s", name)), nil
		}
		var b strings.Builder
		b.WriteString(m.Description)
		b.WriteString("\n\n```mermaid\n")
		b.WriteString(graph.GenerateMermaid(m))
		b.WriteString("```\n")
		return mcp.NewToolResultText(b.String()), nil
	})
}

func (s *Server) handleRun(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (RunResponse, error) {
	name, _ := args["machine"].(string)
	input, _ := args["input"].(string)

	maxSteps := 0
	if f, ok := args["max_steps"].(float64); ok {
		maxSteps = int(f)
	}

	m, err := s.registry.Get(name)
	if err != nil {
		return RunResponse{}, fmt.Errorf("unknown machine %q: %w", name, err)
	}

	eng, err := spool.New(m, spool.WithLogger(s.logger))
	if err != nil {
		return RunResponse{}, fmt.Errorf("engine for %q: %w", name, err)
	}

	res := eng.Run(ctx, input, spool.WithStepLimit(maxSteps))

	return RunResponse{
		Machine:    name,
		Accepted:   res.Accepted,
		Outcome:    res.Outcome,
		Steps:      res.Steps,
		Tape:       res.Tape,
		FinalState: res.FinalState,
	}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: spool://machines
	s.mcpServer.AddResource(mcp.NewResource("spool://machines", "Registered Machines",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, _ := json.Marshal(s.registry.Names())
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "spool://machines",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
