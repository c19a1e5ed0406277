package transport

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/richard-senior/mcp-geometry/internal/logger"
	"github.com/richard-senior/mcp-geometry/pkg/protocol"
)

// ErrMalformedRequest is wrapped by read errors the server can answer and carry on from
var ErrMalformedRequest = errors.New("malformed request")

// StdioTransport implements communication over a pair of streams,
// normally standard input and output
type StdioTransport struct {
	reader *bufio.Reader
	writer *bufio.Writer
}

// NewStdioTransport creates a new transport that uses stdin/stdout
func NewStdioTransport() *StdioTransport {
	return NewStreamTransport(os.Stdin, os.Stdout)
}

// NewStreamTransport creates a transport reading requests from r and writing responses to w
func NewStreamTransport(r io.Reader, w io.Writer) *StdioTransport {
	return &StdioTransport{
		reader: bufio.NewReader(r),
		writer: bufio.NewWriter(w),
	}
}

// ReadRequest reads the next JSON object from the input and parses it as a JSON-RPC request.
// Objects may be separated by any whitespace, including none at all.
func (t *StdioTransport) ReadRequest() (*protocol.JsonRpcRequest, error) {
	logger.Debug("Waiting for request...")

	var requestData []byte
	var depth int
	var inString bool
	var escapeNext bool

	for {
		b, err := t.reader.ReadByte()
		if err != nil {
			if err == io.EOF {
				if strings.TrimSpace(string(requestData)) != "" {
					return nil, fmt.Errorf("incomplete request at end of input: %w", io.ErrUnexpectedEOF)
				}
				logger.Info("Received EOF, client disconnected")
				return nil, io.EOF
			}
			logger.Error("Error reading request:", err)
			return nil, err
		}

		// skip anything between objects
		if depth == 0 && b != '{' {
			if b == ' ' || b == '\n' || b == '\r' || b == '\t' {
				continue
			}
			return nil, fmt.Errorf("%w: unexpected character %q between requests", ErrMalformedRequest, b)
		}

		requestData = append(requestData, b)

		if inString {
			switch {
			case escapeNext:
				escapeNext = false
			case b == '\\':
				escapeNext = true
			case b == '"':
				inString = false
			}
			continue
		}

		switch b {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
		}
		// closing the outermost brace ends the request
		if depth == 0 {
			break
		}
	}

	logger.Debug("Received raw request:", string(requestData))

	request, err := protocol.ParseJsonRpcRequest(requestData)
	if err != nil {
		logger.Error("Failed to parse JSON-RPC request:", err)
		return nil, fmt.Errorf("%w: %w", ErrMalformedRequest, err)
	}
	logger.Debug("Parsed request:", request.String())

	return request, nil
}

// WriteResponse writes a JSON-RPC response as a single line
func (t *StdioTransport) WriteResponse(response *protocol.JsonRpcResponse) error {
	responseBytes, err := json.Marshal(response)
	if err != nil {
		logger.Error("Failed to marshal response:", err)
		return err
	}
	responseBytes = append(responseBytes, '\n')

	logger.Debug("Sending response:", response.String())

	if _, err := t.writer.Write(responseBytes); err != nil {
		logger.Error("Failed to write response:", err)
		return err
	}

	// Flush to ensure the response is sent
	if err := t.writer.Flush(); err != nil {
		logger.Error("Failed to flush response:", err)
		return err
	}

	return nil
}
