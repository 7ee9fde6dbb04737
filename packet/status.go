package packet

// @gen:r,w
// @packet:serverbound,status,0x00
type StatusRequest struct{}

// @gen:r,w
// @packet:serverbound,status,0x01
type PingRequest struct {
	Timestamp int64 `field:"Long"`
}

// @gen:r,w
// @packet:clientbound,status,0x00
type StatusResponse struct {
	Response string `field:"String"` // JSON
}

// @gen:r,w
// @packet:clientbound,status,0x01
type PongResponse struct {
	Timestamp int64 `field:"Long"`
}
