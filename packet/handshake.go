package packet

// Intents a client may declare in its Handshake.
const (
	IntentStatus   = 1
	IntentLogin    = 2
	IntentTransfer = 3
)

// @gen:r,w
// @packet:serverbound,handshake,0x00
type Handshake struct {
	ProtocolVersion int32  `field:"VarInt"`
	ServerAddr      string `field:"String"`
	ServerPort      uint16 `field:"UnsignedShort"`
	Intent          int32  `field:"VarInt"`
}

// NextPhase is the phase the connection enters after h, or false for an
// intent this server does not know.
func (h Handshake) NextPhase() (Phase, bool) {
	switch h.Intent {
	case IntentStatus:
		return StatusPhase, true
	case IntentLogin, IntentTransfer:
		return LoginPhase, true
	}
	return HandshakePhase, false
}
