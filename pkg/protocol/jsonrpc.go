package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

/**
The lifecycle of an MCP session over stdio:
	The client starts the server and sends 'initialize':
		{"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{}},"jsonrpc":"2.0","id":0}
	We answer with our protocol version, capabilities and server info.
	The client sends the 'notifications/initialized' notification, which needs no answer.
	The client asks 'tools/list' and we describe point_tool and path_tool.
	The client then calls 'tools/call' with {"name":"mcp___point_tool","arguments":{"command":"rotate",...}}
	and receives the tool result, or a JSON-RPC error object when the tool fails.
*/

// MethodType defines the possible JSON-RPC method types
type MethodType string

// Method types for JSON-RPC requests
const (
	MethodInitialize    MethodType = "initialize"
	MethodInitialized   MethodType = "initialized"
	MethodToolsList     MethodType = "tools/list"
	MethodToolsCall     MethodType = "tools/call"
	MethodResourcesList MethodType = "resources/list"
	MethodShutdown      MethodType = "shutdown"

	// Older clients invoke tools with invoke_tool rather than tools/call
	MethodInvokeTool MethodType = "invoke_tool"
)

// NotificationPrefix marks methods that are notifications and get no response
const NotificationPrefix = "notifications/"

// ErrNotARequest is wrapped when valid JSON is not a JSON-RPC 2.0 request object
var ErrNotARequest = errors.New("not a JSON-RPC 2.0 request")

// Version is the JSON-RPC protocol version
const JsonRpcVersion = "2.0"

// Request represents a JSON-RPC 2.0 request object
type JsonRpcRequest struct {
	// A String specifying the version of the JSON-RPC protocol. MUST be exactly "2.0".
	JsonRPC string `json:"jsonrpc"`

	// A String containing the name of the method to be invoked.
	Method string `json:"method"`

	// A Structured value that holds the parameter values to be used during the invocation of the method.
	// This member MAY be omitted.
	Params json.RawMessage `json:"params,omitempty"`

	// An identifier established by the Client that MUST contain a String, Number, or NULL value if included.
	// If it is not included it is assumed to be a notification.
	ID any `json:"id,omitempty"`
}

// Response represents a JSON-RPC 2.0 response object
type JsonRpcResponse struct {
	JsonRPC string `json:"jsonrpc"`

	// REQUIRED on success, MUST NOT exist on error.
	Result json.RawMessage `json:"result,omitempty"`

	// REQUIRED on error, MUST NOT exist on success.
	Error *JsonRpcError `json:"error,omitempty"`

	// The id of the request being answered, null if it could not be read.
	ID any `json:"id"`
}

// Error represents a JSON-RPC 2.0 error object
type JsonRpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type ToolProperty struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

type InputSchema struct {
	Type                 string                  `json:"type"`
	Properties           map[string]ToolProperty `json:"properties,omitempty"`
	Required             []string                `json:"required"`
	AdditionalProperties bool                    `json:"additionalProperties"`
}

// Tool describes a tool the client may call
type Tool struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema InputSchema `json:"inputSchema"`
}

// ToolsResponse represents the response to a tools/list request
type ToolsResponse struct {
	Tools []Tool `json:"tools"`
}

// Standard error codes defined by the JSON-RPC 2.0 specification
const (
	// Invalid JSON was received by the server.
	ErrParse = -32700

	// The JSON sent is not a valid Request object.
	ErrInvalidRequest = -32600

	// The method does not exist / is not available.
	ErrMethodNotFound = -32601

	// Invalid method parameter(s).
	ErrInvalidParams = -32602

	// Internal JSON-RPC error.
	ErrInternal = -32603

	// Tool execution failed, from the implementation defined -32000 to -32099 range
	ErrToolExecutionFailed = -32000
)

// Error returns a string representation of the error
func (e *JsonRpcError) Error() string {
	return fmt.Sprintf("jsonrpc error: code=%d message=%s", e.Code, e.Message)
}

// NewJsonRpcResponse creates a new JSON-RPC 2.0 success response
func NewJsonRpcResponse(result any, id any) (*JsonRpcResponse, error) {
	var resultJSON json.RawMessage
	if result != nil {
		var err error
		resultJSON, err = json.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal result: %w", err)
		}
	}

	return &JsonRpcResponse{
		JsonRPC: JsonRpcVersion,
		Result:  resultJSON,
		ID:      id,
	}, nil
}

// NewJsonRpcErrorResponse creates a new JSON-RPC 2.0 error response
func NewJsonRpcErrorResponse(code int, message string, data any, id any) *JsonRpcResponse {
	return &JsonRpcResponse{
		JsonRPC: JsonRpcVersion,
		Error: &JsonRpcError{
			Code:    code,
			Message: message,
			Data:    data,
		},
		ID: id,
	}
}

// ParseJsonRpcRequest parses a JSON-RPC 2.0 request from raw JSON
func ParseJsonRpcRequest(data []byte) (*JsonRpcRequest, error) {
	var req JsonRpcRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, err
	}

	if req.JsonRPC != JsonRpcVersion {
		return nil, fmt.Errorf("%w: invalid JSON-RPC version: %s", ErrNotARequest, req.JsonRPC)
	}
	if req.Method == "" {
		return nil, fmt.Errorf("%w: request has no method", ErrNotARequest)
	}

	return &req, nil
}

// IsNotification reports whether the request expects no response,
// either because it has no id or because it is a notifications/ method
func (r *JsonRpcRequest) IsNotification() bool {
	return r.ID == nil || strings.HasPrefix(r.Method, NotificationPrefix)
}

// String returns a JSON string representation of the request
func (r *JsonRpcRequest) String() string {
	bytes, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Sprintf("Error marshaling request: %v", err)
	}
	return string(bytes)
}

// String returns a JSON string representation of the response
func (r *JsonRpcResponse) String() string {
	bytes, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Sprintf("Error marshaling response: %v", err)
	}
	return string(bytes)
}
