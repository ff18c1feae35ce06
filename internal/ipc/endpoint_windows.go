//go:build windows

package ipc

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"inputtap/internal/config"
)

// Windows has no unix-socket runtime directory convention, so the
// daemon listens on an ephemeral loopback port and publishes it
// through a port file in the per-user data directory.

func portFilePath() string {
	return filepath.Join(config.PlatformDataDir(), "inputtapd.port")
}

func listenEndpoint() (net.Listener, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("bind control port: %w", err)
	}

	path := portFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		ln.Close()
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	if err := os.WriteFile(path, []byte(strconv.Itoa(port)+"\r\n"), 0600); err != nil {
		ln.Close()
		return nil, fmt.Errorf("publish control port: %w", err)
	}
	return ln, nil
}

func dialEndpoint(timeout time.Duration) (net.Conn, error) {
	data, err := os.ReadFile(portFilePath())
	if err != nil {
		return nil, fmt.Errorf("no control port published: %w", err)
	}
	port, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("invalid control port file: %w", err)
	}
	return net.DialTimeout("tcp", fmt.Sprintf("127.0.0.1:%d", port), timeout)
}

func cleanupEndpoint() {
	os.Remove(portFilePath())
}
