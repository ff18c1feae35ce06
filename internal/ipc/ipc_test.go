package ipc

import (
	"bytes"
	"context"
	"encoding/binary"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inputtap/internal/logging"
)

func TestMessageRoundTrip(t *testing.T) {
	var buf bytes.Buffer

	sent := StatusResponse{Version: "1.2.3", PID: 42, CaptureRunning: true, EventsCaptured: 9}
	require.NoError(t, WriteMessage(&buf, MsgStatusResp, &sent))

	typ, body, err := ReadMessage(&buf)
	require.NoError(t, err)
	assert.Equal(t, MsgStatusResp, typ)
	assert.Contains(t, string(body), `"events_captured":9`)
}

func TestMessageEmptyPayload(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMessage(&buf, MsgPing, nil))

	typ, body, err := ReadMessage(&buf)
	require.NoError(t, err)
	assert.Equal(t, MsgPing, typ)
	assert.Empty(t, body)
}

func TestReadRejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	h := header{Magic: 0xDEADBEEF, Version: ProtocolVersion, Type: MsgPing}
	require.NoError(t, binary.Write(&buf, binary.BigEndian, &h))

	_, _, err := ReadMessage(&buf)
	assert.ErrorContains(t, err, "bad magic")
}

func TestReadRejectsWrongVersion(t *testing.T) {
	var buf bytes.Buffer
	h := header{Magic: ProtocolMagic, Version: ProtocolVersion + 1, Type: MsgPing}
	require.NoError(t, binary.Write(&buf, binary.BigEndian, &h))

	_, _, err := ReadMessage(&buf)
	assert.ErrorContains(t, err, "version")
}

func TestReadRejectsOversizedPayload(t *testing.T) {
	var buf bytes.Buffer
	h := header{Magic: ProtocolMagic, Version: ProtocolVersion, Type: MsgPing, Length: MaxPayload + 1}
	require.NoError(t, binary.Write(&buf, binary.BigEndian, &h))

	_, _, err := ReadMessage(&buf)
	assert.ErrorContains(t, err, "too large")
}

func TestServerClientRequests(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("endpoint override uses XDG_RUNTIME_DIR")
	}
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	reloaded := make(chan struct{}, 1)
	srv, err := NewServer(Handlers{
		Status: func() StatusResponse {
			return StatusResponse{Version: "test", PID: 1, CaptureRunning: true}
		},
		Reload: func() { reloaded <- struct{}{} },
	}, logging.Default())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go srv.Serve(ctx)
	defer srv.Close()

	client, err := Dial()
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Ping())

	status, err := client.Status()
	require.NoError(t, err)
	assert.Equal(t, "test", status.Version)
	assert.True(t, status.CaptureRunning)

	require.NoError(t, client.Reload())
	select {
	case <-reloaded:
	case <-time.After(time.Second):
		t.Fatal("reload handler not invoked")
	}

	// Shutdown was not wired, so the daemon reports it unsupported.
	assert.ErrorContains(t, client.Shutdown(), "not supported")
}

func TestDialWithoutDaemon(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("endpoint override uses XDG_RUNTIME_DIR")
	}
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	_, err := Dial()
	assert.Error(t, err)
}
