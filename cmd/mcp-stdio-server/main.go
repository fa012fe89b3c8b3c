// Command mcp-stdio-server is a demo MCP server speaking newline-delimited
// JSON-RPC over stdin/stdout, wiring mcp.NewLineTransport to os.Stdin and
// os.Stdout. The stdin/stdout plumbing and signal-driven shutdown are
// adapted from the teacher's engine/acp/process.go subprocess wiring
// (there it wires a *child* process's pipes; here the same pattern wires
// this process's own stdio, since stdio transports are the application's
// responsibility, not the core's, per the transport contract non-goal).
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmora/mcpgo"
	"github.com/dmora/mcpgo/config"
	_ "github.com/dmora/mcpgo/examples/weatherserver"
)

func main() {
	cfg, err := config.LoadPeerConfig(envOptions())
	if err != nil {
		fmt.Fprintln(os.Stderr, "mcp-stdio-server: config:", err)
		os.Exit(1)
	}
	logger := mcp.NewSlogLogger(nil, cfg.LogLevel)

	transport := mcp.NewLineTransport(os.Stdin, os.Stdout, cfg.MaxMessageBytes)
	handlers := mcp.Handlers{
		Initialize:  handleInitialize,
		Ping:        handlePing,
		ToolsList:   handleToolsList,
		ToolsCall:   handleToolsCall,
		PromptsList: handlePromptsList,
		PromptsGet:  handlePromptsGet,
	}

	peer := mcp.NewPeer(mcp.RoleServer, transport, handlers, mcp.NotificationHandlers{}, mcp.WithLogger(logger))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startErr := make(chan error, 1)
	go func() { startErr <- peer.Start(ctx) }()

	select {
	case err := <-startErr:
		if err != nil {
			fmt.Fprintln(os.Stderr, "mcp-stdio-server: start:", err)
			os.Exit(1)
		}
	case <-time.After(cfg.HandshakeTimeout):
		fmt.Fprintln(os.Stderr, "mcp-stdio-server: handshake timed out after", cfg.HandshakeTimeout)
		os.Exit(1)
	}

	select {
	case <-ctx.Done():
		_ = peer.Close()
	case <-peer.Done():
	}

	if err := peer.Err(); err != nil {
		logger.Warn("mcp-stdio-server: peer exited", "error", err)
	}
}

// envOptions collects the MCP_* environment variables config.LoadPeerConfig
// recognizes into the string map it expects.
func envOptions() map[string]string {
	opts := map[string]string{}
	for _, key := range []string{"MCP_MAX_MESSAGE_BYTES", "MCP_HANDSHAKE_TIMEOUT", "MCP_LOG_LEVEL"} {
		if v, ok := os.LookupEnv(key); ok {
			opts[key] = v
		}
	}
	return opts
}

func handleInitialize(ctx context.Context, params *mcp.InitializeParams) (*mcp.InitializeResult, error) {
	return &mcp.InitializeResult{
		ProtocolVersion: mcp.ProtocolVersion,
		ServerInfo:      mcp.Implementation{Name: "mcp-stdio-server", Version: "0.1.0"},
		Capabilities: mcp.ServerCapabilities{
			Tools:   &mcp.ListChanged{},
			Prompts: &mcp.ListChanged{},
		},
	}, nil
}

func handlePing(ctx context.Context, params *mcp.PingParams) (*mcp.PingResult, error) {
	return &mcp.PingResult{}, nil
}

func handleToolsList(ctx context.Context, params *mcp.ListToolsParams) (*mcp.ListToolsResult, error) {
	var tools []mcp.Tool
	for _, name := range mcp.RegisteredToolNames() {
		tool := mcp.Tool{Name: name}
		if handler, ok := mcp.LookupTool(name); ok {
			if sp, ok := handler.(mcp.SchemaProvider); ok {
				tool.InputSchema = sp.InputSchema()
			}
		}
		tools = append(tools, tool)
	}
	return &mcp.ListToolsResult{Tools: tools}, nil
}

func handleToolsCall(ctx context.Context, params *mcp.CallToolParams) (*mcp.CallToolResult, error) {
	handler, ok := mcp.LookupTool(params.Name)
	if !ok {
		return nil, &mcp.IllegalArgument{Msg: "unknown tool: " + params.Name}
	}
	raw, err := marshalArgs(params.Arguments)
	if err != nil {
		return nil, err
	}
	result, err := handler.Call(ctx, raw)
	if err != nil {
		return &mcp.CallToolResult{
			Content: []mcp.ContentBlock{mcp.TextBlock(err.Error())},
			IsError: true,
		}, nil
	}
	toolResult, ok := result.(*mcp.CallToolResult)
	if !ok {
		return nil, &mcp.IllegalArgument{Msg: "tool handler returned an unexpected result type"}
	}
	return toolResult, nil
}

func handlePromptsList(ctx context.Context, params *mcp.ListPromptsParams) (*mcp.ListPromptsResult, error) {
	var prompts []mcp.Prompt
	for _, name := range mcp.RegisteredPromptNames() {
		prompt := mcp.Prompt{Name: name}
		if handler, ok := mcp.LookupPrompt(name); ok {
			if al, ok := handler.(mcp.PromptArgumentLister); ok {
				prompt.Arguments = al.PromptArguments()
			}
		}
		prompts = append(prompts, prompt)
	}
	return &mcp.ListPromptsResult{Prompts: prompts}, nil
}

func handlePromptsGet(ctx context.Context, params *mcp.GetPromptParams) (*mcp.GetPromptResult, error) {
	handler, ok := mcp.LookupPrompt(params.Name)
	if !ok {
		return nil, &mcp.IllegalArgument{Msg: "unknown prompt: " + params.Name}
	}
	args := make(map[string]any, len(params.Arguments))
	for k, v := range params.Arguments {
		args[k] = v
	}
	raw, err := marshalArgs(args)
	if err != nil {
		return nil, err
	}
	result, err := handler.Call(ctx, raw)
	if err != nil {
		return nil, err
	}
	promptResult, ok := result.(*mcp.GetPromptResult)
	if !ok {
		return nil, &mcp.IllegalArgument{Msg: "prompt handler returned an unexpected result type"}
	}
	return promptResult, nil
}

func marshalArgs(args map[string]any) ([]byte, error) {
	if args == nil {
		return nil, nil
	}
	return json.Marshal(args)
}
