package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/richard-senior/mcp-geometry/internal/config"
	"github.com/richard-senior/mcp-geometry/internal/logger"
	"github.com/richard-senior/mcp-geometry/pkg/protocol"
	"github.com/richard-senior/mcp-geometry/pkg/tools"
	"github.com/richard-senior/mcp-geometry/pkg/transport"
	"github.com/richard-senior/mcp-geometry/pkg/util"
)

// Server represents an MCP server
type Server struct {
	transport transport.Transport
	config    *config.Config
	handlers  map[string]HandlerFunc // protocol methods
	tools     []protocol.Tool
	toolFuncs map[string]HandlerFunc // tools by prefixed name
	mu        sync.Mutex
}

// HandlerFunc is a function that handles an MCP request
type HandlerFunc func(params any) (any, error)

// Singleton instance
var (
	instance *Server
	once     sync.Once
)

// GetInstance returns the singleton instance of the Server, creating one
// on stdin/stdout with the default config if InitInstance was never called
func GetInstance() *Server {
	if instance == nil {
		logger.Warn("Server instance requested but not initialized, using stdio and the default config")
		InitInstance(transport.NewStdioTransport(), config.DefaultConfig())
	}
	return instance
}

// InitInstance initializes the singleton instance of the Server with the specified transport
func InitInstance(t transport.Transport, c *config.Config) *Server {
	once.Do(func() {
		instance = NewServer(t, c)
	})
	return instance
}

// NewServer creates a server with the geometry tools and protocol handlers registered
func NewServer(t transport.Transport, c *config.Config) *Server {
	if c == nil {
		c = config.DefaultConfig()
	}
	s := &Server{
		transport: t,
		config:    c,
		handlers:  make(map[string]HandlerFunc),
		tools:     []protocol.Tool{},
		toolFuncs: make(map[string]HandlerFunc),
	}
	tools.Configure(c)
	s.RegisterDefaultTools()
	return s
}

// RegisterTool registers a tool with the server under the configured prefix
func (s *Server) RegisterTool(tool protocol.Tool, handler HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tool.Name = s.config.ToolPrefix + tool.Name
	s.tools = append(s.tools, tool)
	s.toolFuncs[tool.Name] = handler
	logger.Info("Registered tool:", tool.Name)
}

// GetTools returns the list of registered tools
func (s *Server) GetTools() []protocol.Tool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]protocol.Tool(nil), s.tools...)
}

// RegisterDefaultTools registers the geometry tools and the built-in protocol handlers
func (s *Server) RegisterDefaultTools() {
	logger.Info("Registering default tools...")

	s.RegisterTool(tools.NewPointTool(), tools.HandlePointTool)
	s.RegisterTool(tools.NewPathTool(), tools.HandlePathTool)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[string(protocol.MethodInitialize)] = s.handleInitialize
	s.handlers[string(protocol.MethodInitialized)] = s.handleInitialized
	s.handlers[string(protocol.MethodToolsList)] = s.handleToolsList
	s.handlers[string(protocol.MethodToolsCall)] = s.handleToolsCall
	s.handlers[string(protocol.MethodInvokeTool)] = s.handleInvokeTool
	s.handlers[string(protocol.MethodResourcesList)] = s.handleResourcesList
	s.handlers[string(protocol.MethodShutdown)] = s.handleShutdown
}

// Start starts the server and processes requests until the client goes away
// or the process is interrupted
func (s *Server) Start() error {
	logger.Info("Starting MCP server")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.ProcessRequests()
	}()

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		logger.Info("Received signal:", sig)
		return nil
	}
}

// ProcessRequests continuously processes incoming requests.
// It returns nil when the input ends and the error otherwise.
func (s *Server) ProcessRequests() error {
	for {
		req, err := s.transport.ReadRequest()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if errors.Is(err, transport.ErrMalformedRequest) {
				code := protocol.ErrParse
				if errors.Is(err, protocol.ErrNotARequest) {
					code = protocol.ErrInvalidRequest
				}
				resp := protocol.NewJsonRpcErrorResponse(code, err.Error(), nil, nil)
				if werr := s.transport.WriteResponse(resp); werr != nil {
					return werr
				}
				continue
			}
			return err
		}

		// if it is nil then this is not an error, it is just that no response is required
		resp := s.HandleRequest(req)
		if resp == nil {
			continue
		}

		if err := s.transport.WriteResponse(resp); err != nil {
			return err
		}
	}
}

// HandleRequest processes a request and returns a response, or nil for notifications
func (s *Server) HandleRequest(req *protocol.JsonRpcRequest) *protocol.JsonRpcResponse {
	logger.Info(">> ", req.Method)
	logger.Debug("Full request:", string(req.Params))

	if req.IsNotification() {
		logger.Info("Received notification:", req.Method)
		return nil
	}

	s.mu.Lock()
	handler := s.handlers[req.Method]
	s.mu.Unlock()

	if handler == nil {
		return protocol.NewJsonRpcErrorResponse(protocol.ErrMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method), nil, req.ID)
	}

	var params any
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return protocol.NewJsonRpcErrorResponse(protocol.ErrInvalidParams, "Invalid parameters: "+err.Error(), nil, req.ID)
		}
	}

	result, err := s.callHandler(req.Method, handler, params)
	if err != nil {
		logger.Error("Request failed:", req.Method, err)
		code := protocol.ErrToolExecutionFailed
		var paramsErr *invalidParamsError
		var internalErr *internalError
		switch {
		case errors.As(err, &paramsErr):
			code = protocol.ErrInvalidParams
		case errors.As(err, &internalErr):
			code = protocol.ErrInternal
		}
		return protocol.NewJsonRpcErrorResponse(code, err.Error(), nil, req.ID)
	}

	resp, err := protocol.NewJsonRpcResponse(result, req.ID)
	if err != nil {
		return protocol.NewJsonRpcErrorResponse(protocol.ErrInternal, err.Error(), nil, req.ID)
	}
	logger.Inform("output", string(resp.Result))
	return resp
}

// callHandler runs a handler, turning a panic into an internalError
func (s *Server) callHandler(method string, handler HandlerFunc, params any) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recovered from panic in", method, fmt.Sprint(r))
			result = nil
			err = &internalError{msg: fmt.Sprintf("internal error handling %s: %v", method, r)}
		}
	}()
	return handler(params)
}

// internalError marks a handler that failed unexpectedly
type internalError struct {
	msg string
}

func (e *internalError) Error() string { return e.msg }

// invalidParamsError marks request parameters that could not be understood at all
type invalidParamsError struct {
	msg string
}

func (e *invalidParamsError) Error() string { return e.msg }

// lookupTool finds a tool handler, tolerating a missing or extra prefix
func (s *Server) lookupTool(name string) HandlerFunc {
	s.mu.Lock()
	defer s.mu.Unlock()

	if h := s.toolFuncs[name]; h != nil {
		return h
	}
	prefix := s.config.ToolPrefix
	if prefix == "" {
		return nil
	}
	if strings.HasPrefix(name, prefix) {
		return s.toolFuncs[strings.TrimPrefix(name, prefix)]
	}
	return s.toolFuncs[prefix+name]
}

// handleInitialize handles the initialize method
func (s *Server) handleInitialize(params any) (any, error) {
	logger.Info("Handling initialize request with", len(s.GetTools()), "tools registered")

	requestedProtocolVersion := s.config.DefaultProtocolVersion
	if paramsMap, ok := params.(map[string]any); ok {
		if version, ok := paramsMap["protocolVersion"].(string); ok && version != "" {
			requestedProtocolVersion = version
		}
	}
	logger.Info("Final protocol version to use:", requestedProtocolVersion)

	capabilities := map[string]any{
		"tools": map[string]any{
			"listChanged": true,
		},
	}

	type serverInfo struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}
	return struct {
		ProtocolVersion string         `json:"protocolVersion"`
		Capabilities    map[string]any `json:"capabilities"`
		ServerInfo      serverInfo     `json:"serverInfo"`
	}{
		ProtocolVersion: requestedProtocolVersion,
		Capabilities:    capabilities,
		ServerInfo: serverInfo{
			Name:    s.config.ServerName,
			Version: s.config.ServerVersion,
		},
	}, nil
}

// handleInitialized handles 'initialized' sent with an id.
// Sent without one it is a notification and never reaches here.
func (s *Server) handleInitialized(params any) (any, error) {
	logger.Info("Handling initialized request")
	return map[string]any{}, nil
}

// handleToolsList handles the tools/list method
func (s *Server) handleToolsList(params any) (any, error) {
	logger.Info("Handling tools/list request")
	return protocol.ToolsResponse{
		Tools: s.GetTools(),
	}, nil
}

// handleResourcesList handles the resources/list method, there are no resources
func (s *Server) handleResourcesList(params any) (any, error) {
	return map[string]any{"resources": []any{}}, nil
}

// handleShutdown acknowledges shutdown, the server stops when the input closes
func (s *Server) handleShutdown(params any) (any, error) {
	logger.Info("Handling shutdown request")
	return map[string]any{}, nil
}

// handleToolsCall handles tools/call, {"name":..., "arguments":{...}}
func (s *Server) handleToolsCall(params any) (any, error) {
	return s.callTool(params, "arguments")
}

// handleInvokeTool handles the older invoke_tool, {"name":..., "parameters":{...}}
func (s *Server) handleInvokeTool(params any) (any, error) {
	return s.callTool(params, "parameters")
}

func (s *Server) callTool(params any, argumentsKey string) (any, error) {
	paramsMap, ok := params.(map[string]any)
	if !ok {
		return nil, &invalidParamsError{msg: "tool call parameters must be an object"}
	}
	toolName, ok := paramsMap["name"].(string)
	if !ok || toolName == "" {
		return nil, &invalidParamsError{msg: "missing tool name in tool call parameters"}
	}
	logger.Info("Tool call requested for:", toolName)

	handler := s.lookupTool(toolName)
	if handler == nil {
		var names []string
		for _, tool := range s.GetTools() {
			names = append(names, tool.Name)
		}
		return nil, fmt.Errorf("tool not found: %s%s", toolName, util.DidYouMean(toolName, names))
	}

	arguments, _ := paramsMap[argumentsKey].(map[string]any)
	if arguments == nil {
		arguments = map[string]any{}
	}
	result, err := handler(arguments)
	if err != nil {
		return nil, fmt.Errorf("tool execution failed: %w", err)
	}
	return result, nil
}
