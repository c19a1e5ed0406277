package transport

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/richard-senior/mcp-geometry/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRequestSequence(t *testing.T) {
	input := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05"}}
{"jsonrpc":"2.0","method":"notifications/initialized"}{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"arguments":{"command":"ensure","point":"{not a brace}\"}"}}}
`
	tr := NewStreamTransport(strings.NewReader(input), io.Discard)

	req, err := tr.ReadRequest()
	require.NoError(t, err)
	assert.Equal(t, "initialize", req.Method)

	req, err = tr.ReadRequest()
	require.NoError(t, err)
	assert.True(t, req.IsNotification())

	req, err = tr.ReadRequest()
	require.NoError(t, err)
	assert.Equal(t, "tools/call", req.Method)
	assert.Contains(t, string(req.Params), `{not a brace}`)

	_, err = tr.ReadRequest()
	assert.Equal(t, io.EOF, err)
}

func TestReadRequestMalformed(t *testing.T) {
	tr := NewStreamTransport(strings.NewReader(`x{"jsonrpc":"1.0","method":"a"}`), io.Discard)

	_, err := tr.ReadRequest()
	assert.True(t, errors.Is(err, ErrMalformedRequest))

	// the bad character was consumed, the wrong version is reported next
	_, err = tr.ReadRequest()
	assert.True(t, errors.Is(err, ErrMalformedRequest))
	assert.ErrorIs(t, err, protocol.ErrNotARequest)

	tr = NewStreamTransport(strings.NewReader(`{"jsonrpc":"2.0"`), io.Discard)
	_, err = tr.ReadRequest()
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestWriteResponse(t *testing.T) {
	var out bytes.Buffer
	tr := NewStreamTransport(strings.NewReader(""), &out)

	resp, err := protocol.NewJsonRpcResponse(map[string]int{"x": 1}, 4)
	require.NoError(t, err)
	require.NoError(t, tr.WriteResponse(resp))

	line := out.String()
	assert.True(t, strings.HasSuffix(line, "\n"))
	assert.Equal(t, 1, strings.Count(line, "\n"))
	assert.JSONEq(t, `{"jsonrpc":"2.0","id":4,"result":{"x":1}}`, line)
}
