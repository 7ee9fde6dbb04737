//go:generate go run ../codegen/gen_packet_codec.go -- .
package packet

import (
	"io"
)

// ProtocolVersion is the protocol number of the packet set in this package
// (Minecraft 1.21 and 1.21.1).
const ProtocolVersion = 767

// Packet is a typed packet body. Encode writes the fields only; the packet
// code in front of them belongs to the Dispatcher, since the same type may
// have different codes in different phases.
type Packet interface {
	Encode(w io.Writer) error
	Decode(r *FrameReader) error
}

// Direction is the way a packet travels. Codes are independent per direction.
type Direction byte

const (
	Serverbound Direction = iota
	Clientbound
)

func (d Direction) String() string {
	switch d {
	case Serverbound:
		return "serverbound"
	case Clientbound:
		return "clientbound"
	}
	return "unknown direction"
}

// Opposite is the direction replies travel in.
func (d Direction) Opposite() Direction {
	if d == Serverbound {
		return Clientbound
	}
	return Serverbound
}

// Phase is the protocol stage of a connection. It decides which codes are
// valid.
type Phase byte

const (
	HandshakePhase Phase = iota
	StatusPhase
	LoginPhase
	ConfigurationPhase
	PlayPhase
)

func (p Phase) String() string {
	switch p {
	case HandshakePhase:
		return "handshake"
	case StatusPhase:
		return "status"
	case LoginPhase:
		return "login"
	case ConfigurationPhase:
		return "configuration"
	case PlayPhase:
		return "play"
	}
	return "unknown phase"
}

// Phases lists every phase in protocol order.
func Phases() []Phase {
	return []Phase{HandshakePhase, StatusPhase, LoginPhase, ConfigurationPhase, PlayPhase}
}
