package mcwire

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/gstoney/mcwire/packet"
)

var ErrUnknownIntent = errors.New("unknown handshake intent")

const (
	minAcceptBackoff = 5 * time.Millisecond
	maxAcceptBackoff = time.Second
)

// Handler runs a connection once its Handshake has been read. The Conn is
// already in the phase the client asked for, Status or Login. Returning
// closes the connection.
type Handler func(ctx context.Context, s *Session, c *Conn) error

// A Server accepts connections and hands each one to Handler after the
// handshake.
type Server struct {
	Handler    Handler
	Dispatcher *packet.Dispatcher
	Transport  TransportConfig

	// HandshakeTimeout bounds the wait for the Handshake packet. Zero means
	// no limit.
	HandshakeTimeout time.Duration

	Logger  *slog.Logger
	Metrics *Metrics
}

// A Session stores the handshake and identity of a client.
type Session struct {
	LocalAddr  net.Addr
	RemoteAddr net.Addr

	ProtocolVersion int32
	ServerAddr      string
	ServerPort      uint16
	Intent          int32

	// Set by the handler once login starts.
	Name       string
	PlayerUUID uuid.UUID
}

func (s *Server) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

// Serve accepts incoming connections on the Listener l, creating a new
// goroutine for each. It returns once ctx is cancelled and every connection
// has finished.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	if s.Handler == nil || s.Dispatcher == nil {
		return errors.New("mcwire: Server needs a Handler and a Dispatcher")
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			l.Close()
		case <-done:
		}
	}()

	s.logger().Info("server started", "address", l.Addr())

	var g errgroup.Group
	var backoff time.Duration
	for {
		nc, err := l.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) || ctx.Err() != nil {
				break
			}

			// errors such as EMFILE clear up once connections finish
			backoff = min(max(2*backoff, minAcceptBackoff), maxAcceptBackoff)
			s.logger().Error("failed to accept connection", "error", err, "retry_in", backoff)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
			}
			continue
		}
		backoff = 0

		g.Go(func() error {
			s.serveConn(ctx, nc)
			return nil
		})
	}

	g.Wait()
	return nil
}

func (s *Server) serveConn(ctx context.Context, nc net.Conn) {
	done := make(chan struct{})
	defer close(done)
	defer nc.Close()

	go func() {
		select {
		case <-ctx.Done():
			nc.Close()
		case <-done:
		}
	}()

	s.Metrics.connOpened()
	defer s.Metrics.connClosed()

	log := s.logger().With("remote", nc.RemoteAddr())
	c := NewServerConn(nc, s.Dispatcher, s.Transport, WithMetrics(s.Metrics))

	session, err := s.handshake(nc, c)
	if err != nil {
		if !isClosed(err) {
			log.Debug("handshake failed", "error", err, "kind", packet.ErrorKind(err))
		}
		return
	}

	log = log.With("intent", session.Intent, "protocol", session.ProtocolVersion)
	log.Debug("handshake done", "phase", c.Phase())

	if err := s.Handler(ctx, session, c); err != nil && !isClosed(err) {
		log.Warn("connection ended", "phase", c.Phase(), "error", err, "kind", packet.ErrorKind(err))
	}
}

func (s *Server) handshake(nc net.Conn, c *Conn) (*Session, error) {
	if s.HandshakeTimeout > 0 {
		nc.SetReadDeadline(time.Now().Add(s.HandshakeTimeout))
		defer nc.SetReadDeadline(time.Time{})
	}

	hs, err := ReadPacketAs[packet.Handshake](c)
	if err != nil {
		return nil, err
	}

	next, ok := hs.NextPhase()
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownIntent, hs.Intent)
	}
	c.SetPhase(next)

	return &Session{
		LocalAddr:       nc.LocalAddr(),
		RemoteAddr:      nc.RemoteAddr(),
		ProtocolVersion: hs.ProtocolVersion,
		ServerAddr:      hs.ServerAddr,
		ServerPort:      hs.ServerPort,
		Intent:          hs.Intent,
	}, nil
}

// isClosed reports errors that only mean the peer or the server hung up.
func isClosed(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed)
}
