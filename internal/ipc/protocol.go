// Package ipc is the local control channel between inputtapd and its
// clients. The daemon listens on a per-user endpoint (a unix socket, or
// a loopback port published through a port file on windows) and answers
// framed JSON requests: ping, live status, config reload and shutdown.
package ipc

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
)

const (
	// ProtocolMagic prefixes every frame.
	ProtocolMagic uint32 = 0x49544150 // "ITAP"

	// ProtocolVersion is bumped on incompatible frame or payload changes.
	ProtocolVersion uint8 = 1

	// MaxPayload bounds a frame so a broken peer cannot make the
	// daemon allocate unbounded memory.
	MaxPayload = 1 << 20
)

// MessageType identifies a frame.
type MessageType uint16

const (
	MsgPing  MessageType = 0x0001
	MsgPong  MessageType = 0x0002
	MsgError MessageType = 0x0003

	MsgStatus     MessageType = 0x0100
	MsgStatusResp MessageType = 0x0101

	MsgReload     MessageType = 0x0200
	MsgReloadResp MessageType = 0x0201

	MsgShutdown     MessageType = 0x0202
	MsgShutdownResp MessageType = 0x0203
)

// header is the fixed 12-byte frame prefix.
type header struct {
	Magic    uint32
	Version  uint8
	Reserved uint8
	Type     MessageType
	Length   uint32
}

// StatusResponse is the daemon's answer to MsgStatus.
type StatusResponse struct {
	Version       string `json:"version"`
	PID           int    `json:"pid"`
	UptimeSeconds int64  `json:"uptime_seconds"`

	CaptureRunning bool   `json:"capture_running"`
	EventsCaptured uint64 `json:"events_captured"`
	EventsDropped  uint64 `json:"events_dropped"`

	Recording        bool   `json:"recording"`
	RecordingID      int64  `json:"recording_id,omitempty"`
	RecordingEvents  uint64 `json:"recording_events,omitempty"`
	JournalPath      string `json:"journal_path,omitempty"`
	MetricsListening string `json:"metrics_listening,omitempty"`
}

// ErrorResponse carries a failure back to the client.
type ErrorResponse struct {
	Message string `json:"message"`
}

// WriteMessage frames and writes one message. A nil payload writes an
// empty body.
func WriteMessage(w io.Writer, typ MessageType, payload any) error {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
	}
	if len(body) > MaxPayload {
		return fmt.Errorf("payload too large: %d bytes", len(body))
	}

	h := header{
		Magic:   ProtocolMagic,
		Version: ProtocolVersion,
		Type:    typ,
		Length:  uint32(len(body)),
	}
	if err := binary.Write(w, binary.BigEndian, &h); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if len(body) > 0 {
		if _, err := w.Write(body); err != nil {
			return fmt.Errorf("write payload: %w", err)
		}
	}
	return nil
}

// ReadMessage reads one frame and returns its type and raw payload.
func ReadMessage(r io.Reader) (MessageType, []byte, error) {
	var h header
	if err := binary.Read(r, binary.BigEndian, &h); err != nil {
		return 0, nil, err
	}
	if h.Magic != ProtocolMagic {
		return 0, nil, fmt.Errorf("bad magic %#08x", h.Magic)
	}
	if h.Version != ProtocolVersion {
		return 0, nil, fmt.Errorf("unsupported protocol version %d", h.Version)
	}
	if h.Length > MaxPayload {
		return 0, nil, fmt.Errorf("payload too large: %d bytes", h.Length)
	}

	var body []byte
	if h.Length > 0 {
		body = make([]byte, h.Length)
		if _, err := io.ReadFull(r, body); err != nil {
			return 0, nil, fmt.Errorf("read payload: %w", err)
		}
	}
	return h.Type, body, nil
}
