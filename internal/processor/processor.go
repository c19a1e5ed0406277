package processor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/richard-senior/mcp-geometry/internal/logger"
	"github.com/richard-senior/mcp-geometry/pkg/protocol"
	"github.com/richard-senior/mcp-geometry/pkg/tools"
)

// MCPRequest represents a one-shot request from the command line
// The query is a tool name followed by its JSON arguments, eg.
// point_tool {"command":"rotate","point":[1,0],"angle":90}
type MCPRequest struct {
	Query     string `json:"query"`
	RequestID string `json:"requestId"`
}

// MCPResponse represents the answer to an MCPRequest
type MCPResponse struct {
	RequestID   string          `json:"requestId,omitempty"`
	Context     map[string]any  `json:"context,omitempty"`
	Tools       []protocol.Tool `json:"tools,omitempty"`
	Suggestions []string        `json:"suggestions,omitempty"`
	Metadata    map[string]any  `json:"metadata,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	RequestID string `json:"requestId,omitempty"`
	Error     struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type toolEntry struct {
	tool    protocol.Tool
	handler func(params any) (any, error)
}

var registry = []toolEntry{
	{tools.NewPointTool(), tools.HandlePointTool},
	{tools.NewPathTool(), tools.HandlePathTool},
}

// createErrorResponse creates an error response
func createErrorResponse(code, message, requestID string) ([]byte, error) {
	var response ErrorResponse
	response.RequestID = requestID
	response.Error.Code = code
	response.Error.Message = message

	return json.MarshalIndent(response, "", "  ")
}

// ProcessRequest processes a request and returns a response
func ProcessRequest(input []byte) ([]byte, error) {
	var request MCPRequest
	if err := json.Unmarshal(input, &request); err != nil {
		logger.Error("Failed to parse input JSON", err)
		return createErrorResponse("invalid_request", fmt.Sprintf("Invalid JSON: %v", err), request.RequestID)
	}

	logger.Info("Processing request", request.Query)

	name, rawArgs, _ := strings.Cut(strings.TrimSpace(request.Query), " ")
	for _, entry := range registry {
		if entry.tool.Name != name {
			continue
		}
		var args map[string]any
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return createErrorResponse("invalid_arguments", fmt.Sprintf("Arguments for %s must be a JSON object: %v", name, err), request.RequestID)
		}
		result, err := entry.handler(args)
		if err != nil {
			logger.Error("Tool error", name, err)
			return createErrorResponse("tool_error", err.Error(), request.RequestID)
		}
		return marshalResponse(MCPResponse{
			RequestID: request.RequestID,
			Context: map[string]any{
				"tool":   name,
				"result": result,
			},
			Metadata: map[string]any{
				"version": "1.0.0",
			},
		})
	}

	// Anything else gets the list of tools and some examples
	response := MCPResponse{
		RequestID: request.RequestID,
		Suggestions: []string{
			`point_tool {"command":"add","point":[1,2],"other":[3,4]}`,
			`point_tool {"command":"rotate","point":[1,0],"angle":90,"origin":[0,0]}`,
			`path_tool {"command":"middle","path":{"type":"arc","origin":[0,0],"radius":1,"startAngle":0,"endAngle":180}}`,
			`path_tool {"command":"pointalise","max_distance":0.5,"path":{"type":"line","end":[3,4]}}`,
		},
		Metadata: map[string]any{
			"version": "1.0.0",
		},
	}
	for _, entry := range registry {
		response.Tools = append(response.Tools, entry.tool)
	}
	return marshalResponse(response)
}

func marshalResponse(response MCPResponse) ([]byte, error) {
	jsonResult, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		logger.Error("Failed to marshal response to JSON", err)
		return createErrorResponse("internal_error", "Failed to create response", response.RequestID)
	}
	return jsonResult, nil
}
