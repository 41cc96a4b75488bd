package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runServer starts s.Run over a pair of pipes and returns a function that
// writes one request line and reads one response line. The cleanup func
// cancels the context and waits for Run to return.
func runServer(t *testing.T, s *Server) (send func(line string) string, cleanup func()) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	pr, pw := io.Pipe()
	sr, sw := io.Pipe()
	reader := bufio.NewReader(sr)

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, pr, sw) }()

	send = func(line string) string {
		t.Helper()
		_, err := io.WriteString(pw, line+"\n")
		require.NoError(t, err)
		resp, err := reader.ReadString('\n')
		require.NoError(t, err)
		return resp
	}

	cleanup = func() {
		cancel()
		_ = pw.Close()
		_ = sr.Close()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("Run did not return after cancel+close")
		}
	}
	return send, cleanup
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func TestRun_Initialize(t *testing.T) {
	send, cleanup := runServer(t, NewServer(Options{Version: "1.2.3"}))
	defer cleanup()

	var parsed struct {
		Result struct {
			ProtocolVersion string `json:"protocolVersion"`
			ServerInfo      struct {
				Name    string `json:"name"`
				Version string `json:"version"`
			} `json:"serverInfo"`
		} `json:"result"`
	}
	resp := send(`{"jsonrpc":"2.0","id":1,"method":"initialize"}`)
	require.NoError(t, json.Unmarshal([]byte(resp), &parsed), resp)
	assert.Equal(t, protocolVersion, parsed.Result.ProtocolVersion)
	assert.Equal(t, "mindhub", parsed.Result.ServerInfo.Name)
	assert.Equal(t, "1.2.3", parsed.Result.ServerInfo.Version)
}

func TestRun_ToolsList(t *testing.T) {
	send, cleanup := runServer(t, NewServer(Options{}))
	defer cleanup()

	var parsed struct {
		Result struct {
			Tools []struct {
				Name        string          `json:"name"`
				Description string          `json:"description"`
				InputSchema json.RawMessage `json:"inputSchema"`
			} `json:"tools"`
		} `json:"result"`
	}
	resp := send(`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)
	require.NoError(t, json.Unmarshal([]byte(resp), &parsed), resp)

	var names []string
	for _, tool := range parsed.Result.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description, tool.Name)
		assert.True(t, json.Valid(tool.InputSchema), tool.Name)
	}
	assert.Equal(t, []string{"score_wellness", "tag_sentiment", "search_resources", "get_dashboard", "get_crisis_support"}, names)
}

func TestRun_ToolsCall(t *testing.T) {
	send, cleanup := runServer(t, NewServer(Options{}))
	defer cleanup()

	var parsed struct {
		Result toolsCallResult `json:"result"`
	}
	resp := send(`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"tag_sentiment","arguments":{"text":"I feel hopeless"}}}`)
	require.NoError(t, json.Unmarshal([]byte(resp), &parsed), resp)
	require.False(t, parsed.Result.IsError, resp)
	require.Len(t, parsed.Result.Content, 1)

	var out TagSentimentResult
	require.NoError(t, json.Unmarshal([]byte(parsed.Result.Content[0].Text), &out))
	assert.True(t, out.CrisisIndicator)
	assert.Equal(t, "conversation", out.Lexicon)
}

func TestRun_ToolsCallErrors(t *testing.T) {
	send, cleanup := runServer(t, NewServer(Options{}))
	defer cleanup()

	var parsed struct {
		Result toolsCallResult `json:"result"`
		Error  *rpcError       `json:"error"`
	}

	resp := send(`{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"nope"}}`)
	require.NoError(t, json.Unmarshal([]byte(resp), &parsed))
	assert.True(t, parsed.Result.IsError)
	assert.Contains(t, parsed.Result.Content[0].Text, "unknown tool: nope")

	parsed.Result = toolsCallResult{}
	resp = send(`{"jsonrpc":"2.0","id":5,"method":"tools/call","params":"bad"}`)
	require.NoError(t, json.Unmarshal([]byte(resp), &parsed))
	require.NotNil(t, parsed.Error)
	assert.Equal(t, -32602, parsed.Error.Code)
}

func TestRun_UnknownMethod(t *testing.T) {
	send, cleanup := runServer(t, NewServer(Options{}))
	defer cleanup()

	var parsed struct {
		Error *rpcError `json:"error"`
	}
	resp := send(`{"jsonrpc":"2.0","id":6,"method":"nonexistent/method"}`)
	require.NoError(t, json.Unmarshal([]byte(resp), &parsed))
	require.NotNil(t, parsed.Error, resp)
	assert.Equal(t, -32601, parsed.Error.Code)
}

func TestRun_ParseError(t *testing.T) {
	send, cleanup := runServer(t, NewServer(Options{}))
	defer cleanup()

	var parsed struct {
		Error *rpcError `json:"error"`
	}
	resp := send(`{not json`)
	require.NoError(t, json.Unmarshal([]byte(resp), &parsed))
	require.NotNil(t, parsed.Error, resp)
	assert.Equal(t, -32700, parsed.Error.Code)
}

// A notification (no id) must produce no response.
func TestRun_Notification(t *testing.T) {
	s := NewServer(Options{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pr, pw := io.Pipe()
	sr, sw := io.Pipe()
	go func() { _ = s.Run(ctx, pr, sw) }()

	_, err := io.WriteString(pw, `{"jsonrpc":"2.0","method":"notifications/initialized"}`+"\n")
	require.NoError(t, err)

	readDone := make(chan []byte, 1)
	go func() {
		buf := make([]byte, 1024)
		n, _ := sr.Read(buf)
		readDone <- buf[:n]
	}()

	select {
	case data := <-readDone:
		t.Errorf("expected no response for notification, got: %s", data)
	case <-time.After(100 * time.Millisecond):
	}

	cancel()
	_ = pw.Close()
	_ = sr.Close()
}

func TestRun_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pr, pw := io.Pipe()
	_, sw := io.Pipe()

	done := make(chan error, 1)
	go func() { done <- NewServer(Options{}).Run(ctx, pr, sw) }()

	cancel()
	_ = pw.Close()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Error("Run did not return after context cancel")
	}
}

func TestRun_EOFClean(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pr, pw := io.Pipe()
	_, sw := io.Pipe()

	done := make(chan error, 1)
	go func() { done <- NewServer(Options{}).Run(ctx, pr, sw) }()

	_ = pw.Close()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Error("Run did not return after EOF")
	}
}
