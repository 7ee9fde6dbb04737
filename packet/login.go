package packet

import (
	"io"

	"github.com/google/uuid"
)

// @gen:r,w
// @packet:serverbound,login,0x00
type LoginStart struct {
	Name       string    `field:"String"`
	PlayerUUID uuid.UUID `field:"UUID"`
}

// @gen:r,w
// @packet:serverbound,login,0x01
type EncryptionResponse struct {
	SharedSecret []byte `field:"ByteArray"`
	VerifyToken  []byte `field:"ByteArray"`
}

// @gen:r,w
// @packet:serverbound,login,0x02
type LoginPluginResponse struct {
	MessageID int32            `field:"VarInt"`
	Data      Optional[[]byte] `field:"Optional" inner:"RemainingBytes"`
}

// @gen:r,w
// @packet:serverbound,login,0x03
type LoginAcknowledged struct{}

// @gen:r,w
// @packet:clientbound,login,0x00
type LoginDisconnect struct {
	Reason string `field:"String"` // JSON Text Component
}

// @gen:r,w
// @packet:clientbound,login,0x01
type EncryptionRequest struct {
	ServerID    string `field:"String"`
	PublicKey   []byte `field:"ByteArray"`
	VerifyToken []byte `field:"ByteArray"`
	ShouldAuth  bool   `field:"Boolean"`
}

type GameProfileProperty struct {
	Name      string
	Value     string
	Signature Optional[string]
}

func writeGameProfileProperty(w io.Writer, v GameProfileProperty) (err error) {
	if err = WriteString(w, v.Name); err != nil {
		return
	}
	if err = WriteString(w, v.Value); err != nil {
		return
	}
	err = WriteOptional(w, v.Signature, WriteString)
	return
}

func readGameProfileProperty(r Reader) (v GameProfileProperty, err error) {
	v.Name, err = ReadString(r)
	if err != nil {
		return
	}
	v.Value, err = ReadString(r)
	if err != nil {
		return
	}
	v.Signature, err = ReadOptional(r, ReadString)
	return
}

// @gen:r,w
// @packet:clientbound,login,0x02
type LoginSuccess struct {
	UUID              uuid.UUID             `field:"UUID"`
	Username          string                `field:"String"`
	Properties        []GameProfileProperty `field:"PrefixedArray" write:"writeGameProfileProperty" read:"readGameProfileProperty"`
	StrictErrHandling bool                  `field:"Boolean"`
}

// @gen:r,w
// @packet:clientbound,login,0x03
type SetCompression struct {
	Threshold int32 `field:"VarInt"`
}

// @gen:r,w
// @packet:clientbound,login,0x04
type LoginPluginRequest struct {
	MessageID int32  `field:"VarInt"`
	Channel   string `field:"Identifier"`
	Data      []byte `field:"RemainingBytes"`
}
