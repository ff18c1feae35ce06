package ipc

import (
	"encoding/json"
	"fmt"
	"net"
	"time"
)

// Client is one connection to the daemon's control endpoint.
type Client struct {
	conn net.Conn
}

// Dial connects to the local daemon. It fails fast when no daemon is
// listening.
func Dial() (*Client, error) {
	conn, err := dialEndpoint(2 * time.Second)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn}, nil
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// roundTrip sends a request and decodes the expected response type.
func (c *Client) roundTrip(req, want MessageType, out any) error {
	c.conn.SetDeadline(time.Now().Add(5 * time.Second))

	if err := WriteMessage(c.conn, req, nil); err != nil {
		return err
	}
	typ, body, err := ReadMessage(c.conn)
	if err != nil {
		return err
	}
	if typ == MsgError {
		var e ErrorResponse
		if json.Unmarshal(body, &e) == nil && e.Message != "" {
			return fmt.Errorf("daemon: %s", e.Message)
		}
		return fmt.Errorf("daemon returned an error")
	}
	if typ != want {
		return fmt.Errorf("unexpected response type %#04x", uint16(typ))
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// Ping checks that the daemon is alive.
func (c *Client) Ping() error {
	return c.roundTrip(MsgPing, MsgPong, nil)
}

// Status fetches the daemon's live status.
func (c *Client) Status() (*StatusResponse, error) {
	var status StatusResponse
	if err := c.roundTrip(MsgStatus, MsgStatusResp, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Reload asks the daemon to re-read its config file.
func (c *Client) Reload() error {
	return c.roundTrip(MsgReload, MsgReloadResp, nil)
}

// Shutdown asks the daemon to stop.
func (c *Client) Shutdown() error {
	return c.roundTrip(MsgShutdown, MsgShutdownResp, nil)
}
