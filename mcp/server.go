// Package mcp implements a Model Context Protocol (MCP) server that exposes
// proposal generation and fee totals as tools and resources for assistants.
//
// The server speaks newline-delimited JSON-RPC 2.0 over a reader/writer
// pair, normally stdin and stdout, and implements the tools and resources
// parts of MCP revision 2024-11-05.
//
// Example client configuration:
//
//	{
//	  "mcpServers": {
//	    "proposal": {
//	      "command": "proposal",
//	      "args": ["mcp"]
//	    }
//	  }
//	}
package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// ProtocolVersion is the MCP revision the server implements.
const ProtocolVersion = "2024-11-05"

// JSON-RPC error codes.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternalError  = -32603
)

// Server is an MCP server. Register tools and resources, then call Run.
type Server struct {
	name    string
	version string
	log     *zap.SugaredLogger

	tools     map[string]Tool
	resources map[string]Resource

	mu  sync.Mutex
	out io.Writer
}

// Tool is an MCP tool callable by the client.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
	Handler     ToolHandler    `json:"-"`
}

// ToolHandler executes a tool. A returned error is reported to the client
// as a tool result with isError set, not as a protocol error.
type ToolHandler func(ctx context.Context, args map[string]any) (ToolResult, error)

// ToolResult is the result of a tool call.
type ToolResult struct {
	Content []ContentBlock `json:"content"`
	IsError bool           `json:"isError,omitempty"`
}

// ContentBlock is one piece of a tool result.
type ContentBlock struct {
	Type     string `json:"type"` // "text"
	Text     string `json:"text,omitempty"`
	MIMEType string `json:"mimeType,omitempty"`
}

// Text returns a result holding a single text block.
func Text(format string, args ...any) ToolResult {
	return ToolResult{Content: []ContentBlock{{Type: "text", Text: fmt.Sprintf(format, args...)}}}
}

// Resource is an MCP resource. Handlers receive the full URI as requested,
// query string included.
type Resource struct {
	URI         string          `json:"uri"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	MIMEType    string          `json:"mimeType,omitempty"`
	Handler     ResourceHandler `json:"-"`
}

// ResourceHandler reads a resource.
type ResourceHandler func(ctx context.Context, uri string) ([]ResourceContent, error)

// ResourceContent is the content of a read resource.
type ResourceContent struct {
	URI      string `json:"uri"`
	MIMEType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`
	Blob     string `json:"blob,omitempty"` // base64
}

type request struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id,omitempty"`
	Method  string           `json:"method"`
	Params  json.RawMessage  `json:"params,omitempty"`
}

type response struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id"`
	Result  any              `json:"result,omitempty"`
	Error   *rpcError        `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// NewServer returns a server with no tools or resources. A nil logger
// discards log output.
func NewServer(name, version string, log *zap.SugaredLogger) *Server {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Server{
		name:      name,
		version:   version,
		log:       log,
		tools:     make(map[string]Tool),
		resources: make(map[string]Resource),
	}
}

// AddTool registers a tool, replacing any tool of the same name.
func (s *Server) AddTool(t Tool) {
	s.tools[t.Name] = t
}

// AddResource registers a resource under its URI without query string.
func (s *Server) AddResource(r Resource) {
	s.resources[r.URI] = r
}

// Run reads requests from in and writes responses to out until in is
// exhausted or ctx is canceled. Requests are handled one at a time.
func (s *Server) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	s.mu.Lock()
	s.out = out
	s.mu.Unlock()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 1<<20), 16<<20)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			s.sendError(nil, codeParseError, "Parse error", err.Error())
			continue
		}
		s.handle(ctx, req)
	}
	return scanner.Err()
}

func (s *Server) handle(ctx context.Context, req request) {
	s.log.Debugw("mcp request", "method", req.Method)

	switch req.Method {
	case "initialize":
		s.sendResult(req.ID, map[string]any{
			"protocolVersion": ProtocolVersion,
			"capabilities": map[string]any{
				"tools":     map[string]any{},
				"resources": map[string]any{},
			},
			"serverInfo": map[string]any{"name": s.name, "version": s.version},
		})
	case "ping":
		s.sendResult(req.ID, map[string]any{})
	case "tools/list":
		tools := make([]Tool, 0, len(s.tools))
		for _, name := range slices.Sorted(maps.Keys(s.tools)) {
			tools = append(tools, s.tools[name])
		}
		s.sendResult(req.ID, map[string]any{"tools": tools})
	case "tools/call":
		s.callTool(ctx, req)
	case "resources/list":
		resources := make([]Resource, 0, len(s.resources))
		for _, uri := range slices.Sorted(maps.Keys(s.resources)) {
			resources = append(resources, s.resources[uri])
		}
		s.sendResult(req.ID, map[string]any{"resources": resources})
	case "resources/read":
		s.readResource(ctx, req)
	default:
		// Notifications such as notifications/initialized carry no ID and
		// get no response.
		if req.ID == nil {
			return
		}
		s.sendError(req.ID, codeMethodNotFound, "Method not found", req.Method)
	}
}

func (s *Server) callTool(ctx context.Context, req request) {
	var params struct {
		Name      string         `json:"name"`
		Arguments map[string]any `json:"arguments"`
	}
	if err := json.Unmarshal(req.Params, &params); err != nil {
		s.sendError(req.ID, codeInvalidParams, "Invalid params", err.Error())
		return
	}
	tool, ok := s.tools[params.Name]
	if !ok {
		s.sendError(req.ID, codeInvalidParams, "Unknown tool", params.Name)
		return
	}
	if params.Arguments == nil {
		params.Arguments = map[string]any{}
	}

	result, err := tool.Handler(ctx, params.Arguments)
	if err != nil {
		s.log.Warnw("tool failed", "tool", params.Name, "error", err)
		result = Text("Error: %v", err)
		result.IsError = true
	}
	s.sendResult(req.ID, result)
}

func (s *Server) readResource(ctx context.Context, req request) {
	var params struct {
		URI string `json:"uri"`
	}
	if err := json.Unmarshal(req.Params, &params); err != nil {
		s.sendError(req.ID, codeInvalidParams, "Invalid params", err.Error())
		return
	}
	r, ok := s.resources[baseURI(params.URI)]
	if !ok {
		s.sendError(req.ID, codeInvalidParams, "Unknown resource", params.URI)
		return
	}
	contents, err := r.Handler(ctx, params.URI)
	if err != nil {
		s.sendError(req.ID, codeInternalError, "Resource error", err.Error())
		return
	}
	s.sendResult(req.ID, map[string]any{"contents": contents})
}

func (s *Server) sendResult(id *json.RawMessage, result any) {
	s.send(response{JSONRPC: "2.0", ID: id, Result: result})
}

func (s *Server) sendError(id *json.RawMessage, code int, message string, data any) {
	s.send(response{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &rpcError{Code: code, Message: message, Data: data},
	})
}

func (s *Server) send(resp response) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(resp)
	if err != nil {
		s.log.Errorw("encoding response", "error", err)
		return
	}
	data = append(data, '\n')
	if _, err := s.out.Write(data); err != nil {
		s.log.Errorw("writing response", "error", err)
	}
}
