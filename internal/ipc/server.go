package ipc

import (
	"context"
	"errors"
	"net"
	"time"

	"inputtap/internal/logging"
)

// Handlers supplies the daemon-side behavior behind the control
// channel. Status must be safe to call from any goroutine; Reload and
// Shutdown may be nil when the daemon does not support them.
type Handlers struct {
	Status   func() StatusResponse
	Reload   func()
	Shutdown func()
}

// Server answers control requests on the local endpoint.
type Server struct {
	ln       net.Listener
	handlers Handlers
	log      *logging.Logger
}

// NewServer binds the per-user control endpoint. A stale endpoint left
// by a crashed daemon is cleaned up first.
func NewServer(handlers Handlers, log *logging.Logger) (*Server, error) {
	ln, err := listenEndpoint()
	if err != nil {
		return nil, err
	}
	return &Server{
		ln:       ln,
		handlers: handlers,
		log:      log.WithComponent("ipc"),
	}, nil
}

// Addr returns the bound endpoint, for logging.
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// Serve accepts connections until the context ends or Close is called.
func (s *Server) Serve(ctx context.Context) {
	go func() {
		<-ctx.Done()
		s.ln.Close()
	}()

	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if ctx.Err() == nil && !errors.Is(err, net.ErrClosed) {
				s.log.Warn("accept failed", "error", err)
			}
			return
		}
		go s.handleConn(conn)
	}
}

// Close stops accepting and removes the endpoint.
func (s *Server) Close() error {
	err := s.ln.Close()
	cleanupEndpoint()
	return err
}

// handleConn serves one client. Clients are short-lived: a few
// requests, then disconnect.
func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	for {
		conn.SetReadDeadline(time.Now().Add(30 * time.Second))
		typ, _, err := ReadMessage(conn)
		if err != nil {
			return
		}

		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := s.respond(conn, typ); err != nil {
			s.log.Warn("request failed", "type", typ, "error", err)
			return
		}
		if typ == MsgShutdown {
			return
		}
	}
}

func (s *Server) respond(conn net.Conn, typ MessageType) error {
	switch typ {
	case MsgPing:
		return WriteMessage(conn, MsgPong, nil)

	case MsgStatus:
		if s.handlers.Status == nil {
			return WriteMessage(conn, MsgError, &ErrorResponse{Message: "status not supported"})
		}
		status := s.handlers.Status()
		return WriteMessage(conn, MsgStatusResp, &status)

	case MsgReload:
		if s.handlers.Reload == nil {
			return WriteMessage(conn, MsgError, &ErrorResponse{Message: "reload not supported"})
		}
		s.handlers.Reload()
		return WriteMessage(conn, MsgReloadResp, nil)

	case MsgShutdown:
		if s.handlers.Shutdown == nil {
			return WriteMessage(conn, MsgError, &ErrorResponse{Message: "shutdown not supported"})
		}
		// Acknowledge before triggering: the shutdown tears the
		// listener down and the client would miss the reply.
		if err := WriteMessage(conn, MsgShutdownResp, nil); err != nil {
			return err
		}
		s.handlers.Shutdown()
		return nil

	default:
		return WriteMessage(conn, MsgError, &ErrorResponse{Message: "unknown request"})
	}
}
