package mcwire

import (
	"errors"
	"fmt"
	"io"

	"github.com/gstoney/mcwire/packet"
)

var ErrUnexpectedPacket = errors.New("unexpected packet")

// Conn reads and writes typed packets over a Transport. It remembers which
// side of the connection it is and the phase both ends are in, which
// together decide how packet codes are read.
//
// A Conn is not safe for concurrent use.
type Conn struct {
	rw         io.ReadWriter
	transport  *Transport
	dispatcher *packet.Dispatcher
	metrics    *Metrics

	inbound packet.Direction
	phase   packet.Phase

	buf []byte
}

type ConnOption func(*Conn)

// WithMetrics makes the Conn count what it decodes and encodes.
func WithMetrics(m *Metrics) ConnOption {
	return func(c *Conn) {
		c.metrics = m
	}
}

// NewServerConn wraps the server end of a connection: it reads serverbound
// packets and writes clientbound ones. The Conn starts in the handshake phase.
func NewServerConn(rw io.ReadWriter, d *packet.Dispatcher, cfg TransportConfig, opts ...ConnOption) *Conn {
	return newConn(rw, packet.Serverbound, d, cfg, opts)
}

// NewClientConn wraps the client end of a connection.
func NewClientConn(rw io.ReadWriter, d *packet.Dispatcher, cfg TransportConfig, opts ...ConnOption) *Conn {
	return newConn(rw, packet.Clientbound, d, cfg, opts)
}

func newConn(rw io.ReadWriter, inbound packet.Direction, d *packet.Dispatcher, cfg TransportConfig, opts []ConnOption) *Conn {
	c := &Conn{
		rw:         rw,
		transport:  NewTransport(rw, rw, cfg),
		dispatcher: d,
		inbound:    inbound,
		phase:      packet.HandshakePhase,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

func (c *Conn) Phase() packet.Phase {
	return c.phase
}

// SetPhase switches both directions to p. Callers switch after the packet
// that ends a phase, e.g. once LoginAcknowledged has been read or written.
func (c *Conn) SetPhase(p packet.Phase) {
	c.phase = p
}

func (c *Conn) Inbound() packet.Direction {
	return c.inbound
}

// ReadPacket reads and decodes the next inbound packet. Decode errors leave
// the stream aligned on the next frame; transport errors do not.
func (c *Conn) ReadPacket() (packet.Packet, error) {
	frame, err := c.transport.ReadFrame()
	if err != nil {
		return nil, err
	}

	p, err := c.dispatcher.Decode(c.inbound, c.phase, frame)
	if err != nil {
		c.metrics.decodeFailed(err)
		return nil, err
	}
	c.metrics.decoded(c.inbound, c.phase)
	return p, nil
}

// WritePacket encodes p for the current phase and sends it as one frame.
func (c *Conn) WritePacket(p packet.Packet) (err error) {
	out := c.inbound.Opposite()

	c.buf, err = c.dispatcher.AppendPacket(c.buf[:0], out, c.phase, p)
	if err != nil {
		return
	}
	if err = c.transport.Send(c.buf); err != nil {
		return
	}
	c.metrics.encoded(out, c.phase)
	return
}

// EnableCompression sends SetCompression and compresses every frame after
// it. It is only valid on the server side during login.
func (c *Conn) EnableCompression(threshold int) error {
	if err := c.WritePacket(&packet.SetCompression{Threshold: int32(threshold)}); err != nil {
		return err
	}
	c.transport.CompressionThreshold = threshold
	return nil
}

// SetCompressionThreshold applies a threshold received in SetCompression.
func (c *Conn) SetCompressionThreshold(threshold int) {
	c.transport.CompressionThreshold = threshold
}

// Close closes the underlying stream if it can be closed.
func (c *Conn) Close() error {
	if cl, ok := c.rw.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

// ReadPacketAs reads the next packet and requires it to be a *T.
func ReadPacketAs[T any, PT interface {
	*T
	packet.Packet
}](c *Conn) (PT, error) {
	p, err := c.ReadPacket()
	if err != nil {
		return nil, err
	}

	v, ok := p.(PT)
	if !ok {
		var want T
		return nil, fmt.Errorf("%w: got %s in %s, want %T", ErrUnexpectedPacket, packet.PacketName(p), c.phase, want)
	}
	return v, nil
}
