package packet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Dispatcher turns frames into typed packets and back using a Registry.
// It keeps no state between calls and is safe for concurrent use.
type Dispatcher struct {
	registry *Registry
	limits   Limits
}

func NewDispatcher(reg *Registry, limits Limits) *Dispatcher {
	return &Dispatcher{registry: reg, limits: limits}
}

func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

func (d *Dispatcher) Limits() Limits {
	return d.limits
}

// Decode reads the packet code at the start of frame, picks the type
// registered for it and decodes the body. The body must use every byte of
// the frame: running short is ErrTruncatedPacket and leftovers are
// ErrTrailingBytes.
func (d *Dispatcher) Decode(dir Direction, phase Phase, frame []byte) (Packet, error) {
	r := NewFrameReader(frame).WithLimits(d.limits)

	code, err := ReadVarInt(&r)
	if err != nil {
		return nil, fmt.Errorf("reading packet code: %w", err)
	}

	entry, ok := d.registry.TypeFor(dir, phase, code)
	if !ok {
		return nil, &UnknownPacketCodeError{
			Direction: dir,
			Phase:     phase,
			Code:      code,
			Remaining: r.Remaining(),
		}
	}

	p := entry.New()
	if err := p.Decode(&r); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: %s: %w", ErrTruncatedPacket, PacketName(p), err)
		}
		return nil, fmt.Errorf("decoding %s: %w", PacketName(p), err)
	}

	if r.Remaining() != 0 {
		return nil, &TrailingBytesError{Packet: PacketName(p), Remaining: r.Remaining()}
	}
	return p, nil
}

// Encode returns the code and body of p as one frame.
func (d *Dispatcher) Encode(dir Direction, phase Phase, p Packet) ([]byte, error) {
	return d.AppendPacket(nil, dir, phase, p)
}

// AppendPacket appends the code and body of p to dst. A packet type that was
// never declared for dir and phase yields ErrUnregisteredPacketType, which
// means the caller is out of step with the protocol.
func (d *Dispatcher) AppendPacket(dst []byte, dir Direction, phase Phase, p Packet) ([]byte, error) {
	code, ok := d.registry.CodeFor(p, dir, phase)
	if !ok {
		return dst, &UnregisteredPacketTypeError{Packet: PacketName(p), Direction: dir, Phase: phase}
	}

	buf := bytes.NewBuffer(AppendVarInt(dst, code))
	if err := p.Encode(buf); err != nil {
		return dst, fmt.Errorf("encoding %s: %w", PacketName(p), err)
	}
	return buf.Bytes(), nil
}
