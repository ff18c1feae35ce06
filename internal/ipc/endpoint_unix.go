//go:build !windows

package ipc

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"inputtap/internal/config"
)

// SocketPath returns the per-user control socket path.
func SocketPath() string {
	return filepath.Join(config.PlatformRuntimeDir(), "inputtapd.sock")
}

// listenEndpoint binds the control socket, replacing a stale one left
// by a crashed daemon. The socket is owner-only: any client that can
// connect can replay input into the user's session.
func listenEndpoint() (net.Listener, error) {
	path := SocketPath()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create runtime directory: %w", err)
	}

	if info, err := os.Lstat(path); err == nil && info.Mode()&os.ModeSocket != 0 {
		if conn, err := net.DialTimeout("unix", path, 500*time.Millisecond); err == nil {
			conn.Close()
			return nil, fmt.Errorf("another daemon is listening on %s", path)
		}
		os.Remove(path)
	}

	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("bind control socket: %w", err)
	}
	if err := os.Chmod(path, 0600); err != nil {
		ln.Close()
		return nil, fmt.Errorf("restrict control socket: %w", err)
	}
	return ln, nil
}

func dialEndpoint(timeout time.Duration) (net.Conn, error) {
	return net.DialTimeout("unix", SocketPath(), timeout)
}

func cleanupEndpoint() {
	os.Remove(SocketPath())
}
