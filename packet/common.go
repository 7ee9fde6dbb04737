package packet

// Packets that keep their shape across phases. Each is registered once per
// (direction, phase) it appears in, under a different code.

// @gen:r,w
// @packet:clientbound,configuration,0x04
// @packet:serverbound,configuration,0x04
// @packet:clientbound,play,0x26
// @packet:serverbound,play,0x18
type KeepAlive struct {
	ID int64 `field:"Long"`
}

// @gen:r,w
// @packet:clientbound,configuration,0x01
// @packet:serverbound,configuration,0x02
// @packet:clientbound,play,0x19
// @packet:serverbound,play,0x12
type PluginMessage struct {
	Channel string `field:"Identifier"`
	Data    []byte `field:"RemainingBytes"`
}

// @gen:r,w
// @packet:clientbound,login,0x05
// @packet:clientbound,configuration,0x00
// @packet:clientbound,play,0x16
type CookieRequest struct {
	Key string `field:"Identifier"`
}

// @gen:r,w
// @packet:serverbound,login,0x04
// @packet:serverbound,configuration,0x01
// @packet:serverbound,play,0x11
type CookieResponse struct {
	Key     string           `field:"Identifier"`
	Payload Optional[[]byte] `field:"Optional" inner:"ByteArray"`
}
