package packet

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()

	reg, err := NewProtocolRegistry()
	require.NoError(t, err)
	return NewDispatcher(reg, DefaultLimits())
}

// handshakeFrame is a status Handshake for localhost:25565 under protocol 767.
var handshakeFrame = []byte{
	0x00,       // code
	0xff, 0x05, // 767
	0x09, 'l', 'o', 'c', 'a', 'l', 'h', 'o', 's', 't',
	0x63, 0xdd, // 25565
	0x01,
}

func TestDecodeHandshake(t *testing.T) {
	d := newTestDispatcher(t)

	p, err := d.Decode(Serverbound, HandshakePhase, handshakeFrame)
	require.NoError(t, err)

	hs, ok := p.(*Handshake)
	require.True(t, ok, "got %T", p)
	assert.Equal(t, &Handshake{
		ProtocolVersion: ProtocolVersion,
		ServerAddr:      "localhost",
		ServerPort:      25565,
		Intent:          IntentStatus,
	}, hs)

	next, ok := hs.NextPhase()
	assert.True(t, ok)
	assert.Equal(t, StatusPhase, next)

	out, err := d.Encode(Serverbound, HandshakePhase, hs)
	require.NoError(t, err)
	assert.Equal(t, handshakeFrame, out)
}

func TestDecodeUnknownCode(t *testing.T) {
	d := newTestDispatcher(t)

	_, err := d.Decode(Serverbound, StatusPhase, []byte{0x7f, 0x01, 0x02, 0x03})
	require.ErrorIs(t, err, ErrUnknownPacketCode)

	var unknown *UnknownPacketCodeError
	require.True(t, errors.As(err, &unknown))
	assert.EqualValues(t, 0x7f, unknown.Code)
	assert.Equal(t, 3, unknown.Remaining)
	assert.Equal(t, StatusPhase, unknown.Phase)
	assert.Equal(t, Serverbound, unknown.Direction)
	assert.Equal(t, "unknown_packet_code", ErrorKind(err))

	// valid in the clientbound direction only
	_, err = d.Decode(Serverbound, LoginPhase, []byte{0x05})
	assert.ErrorIs(t, err, ErrUnknownPacketCode)
}

func TestDecodeTrailingBytes(t *testing.T) {
	d := newTestDispatcher(t)

	frame := []byte{0x01, 0, 0, 0, 0, 0, 0, 0, 42, 0xee}
	_, err := d.Decode(Serverbound, StatusPhase, frame)
	require.ErrorIs(t, err, ErrTrailingBytes)

	var trailing *TrailingBytesError
	require.True(t, errors.As(err, &trailing))
	assert.Equal(t, "PingRequest", trailing.Packet)
	assert.Equal(t, 1, trailing.Remaining)
	assert.Equal(t, "trailing_bytes", ErrorKind(err))

	// body-less packets must be exactly their code
	_, err = d.Decode(Serverbound, StatusPhase, []byte{0x00, 0x00})
	assert.ErrorIs(t, err, ErrTrailingBytes)
}

func TestDecodeTruncated(t *testing.T) {
	d := newTestDispatcher(t)

	_, err := d.Decode(Serverbound, StatusPhase, []byte{0x01, 0, 0, 0, 0})
	require.ErrorIs(t, err, ErrTruncatedPacket)
	assert.Equal(t, "truncated_packet", ErrorKind(err))

	// a string whose length runs past the frame
	_, err = d.Decode(Serverbound, LoginPhase, []byte{0x00, 0x05, 'a', 'b'})
	assert.ErrorIs(t, err, ErrTruncatedPacket)
}

func TestDecodeEmptyFrame(t *testing.T) {
	d := newTestDispatcher(t)

	_, err := d.Decode(Serverbound, HandshakePhase, nil)
	assert.ErrorIs(t, err, ErrMalformedVarInt)
	assert.Equal(t, "malformed_varint", ErrorKind(err))
}

func TestDecodeUsesLimits(t *testing.T) {
	reg, err := NewProtocolRegistry()
	require.NoError(t, err)
	d := NewDispatcher(reg, Limits{MaxStringLen: 4, MaxByteArrayLen: 4, MaxArrayLen: 4})

	_, err = d.Decode(Serverbound, HandshakePhase, handshakeFrame)
	assert.ErrorIs(t, err, ErrLengthExceedsLimit)
	assert.Equal(t, "length_exceeds_limit", ErrorKind(err))
}

func TestEncodeUnregistered(t *testing.T) {
	d := newTestDispatcher(t)

	_, err := d.Encode(Clientbound, StatusPhase, &Handshake{})
	require.ErrorIs(t, err, ErrUnregisteredPacketType)

	var unreg *UnregisteredPacketTypeError
	require.True(t, errors.As(err, &unreg))
	assert.Equal(t, "Handshake", unreg.Packet)
	assert.Equal(t, Clientbound, unreg.Direction)
	assert.Equal(t, StatusPhase, unreg.Phase)

	// right phase, wrong direction
	_, err = d.Encode(Clientbound, StatusPhase, &StatusRequest{})
	assert.ErrorIs(t, err, ErrUnregisteredPacketType)
}

func TestEncodeCodePerPhase(t *testing.T) {
	d := newTestDispatcher(t)
	ka := &KeepAlive{ID: 7}

	config, err := d.Encode(Clientbound, ConfigurationPhase, ka)
	require.NoError(t, err)
	play, err := d.Encode(Clientbound, PlayPhase, ka)
	require.NoError(t, err)

	assert.Equal(t, byte(0x04), config[0])
	assert.Equal(t, byte(0x26), play[0])
	assert.Equal(t, config[1:], play[1:])
}

func TestAppendPacket(t *testing.T) {
	d := newTestDispatcher(t)

	dst := []byte{0xaa}
	out, err := d.AppendPacket(dst, Clientbound, StatusPhase, &PongResponse{Timestamp: 1})
	require.NoError(t, err)
	assert.Equal(t, []byte{0xaa, 0x01, 0, 0, 0, 0, 0, 0, 0, 1}, out)

	out, err = d.AppendPacket(dst, Serverbound, StatusPhase, &PongResponse{})
	assert.Error(t, err)
	assert.Equal(t, dst, out)
}

func TestRoundTrip(t *testing.T) {
	d := newTestDispatcher(t)
	id := uuid.MustParse("069a79f4-44e9-4726-a5be-fca90e38aaf5")

	testCases := []struct {
		desc  string
		dir   Direction
		phase Phase
		p     Packet
	}{
		{"login start", Serverbound, LoginPhase, &LoginStart{Name: "Notch", PlayerUUID: id}},
		{"login success", Clientbound, LoginPhase, &LoginSuccess{
			UUID:     id,
			Username: "Notch",
			Properties: []GameProfileProperty{
				{Name: "textures", Value: "e30=", Signature: Some("c2ln")},
				{Name: "other", Value: "x"},
			},
			StrictErrHandling: true,
		}},
		{"plugin response without data", Serverbound, LoginPhase, &LoginPluginResponse{MessageID: 3}},
		{"plugin response with data", Serverbound, LoginPhase, &LoginPluginResponse{MessageID: 3, Data: Some([]byte{1, 2, 3})}},
		{"plugin request", Clientbound, LoginPhase, &LoginPluginRequest{MessageID: 9, Channel: "velocity:player_info", Data: []byte{1}}},
		{"cookie response", Serverbound, ConfigurationPhase, &CookieResponse{Key: "example:session", Payload: Some([]byte("abc"))}},
		{"registry data", Clientbound, ConfigurationPhase, &RegistryData{
			RegistryID: "minecraft:dimension_type",
			Entries:    []RegistryEntry{{ID: "minecraft:overworld"}, {ID: "minecraft:the_nether"}},
		}},
		{"update tags", Clientbound, ConfigurationPhase, &UpdateTags{Registries: []TagRegistry{{
			Registry: "minecraft:item",
			Tags:     []Tag{{Name: "minecraft:logs", Entries: []int32{1, 2, 300}}},
		}}}},
		{"server links", Clientbound, ConfigurationPhase, &ServerLinks{Links: []ServerLink{
			{Builtin: true, BuiltinLabel: LinkWebsite, URL: "https://example.com"},
			{Label: "Wiki", URL: "https://example.com/wiki"},
		}}},
		{"known packs", Serverbound, ConfigurationPhase, &KnownPacks{Packs: []KnownPack{{"minecraft", "core", "1.21"}}}},
		{"client information", Serverbound, ConfigurationPhase, &ClientInformation{
			Locale: "en_us", ViewDistance: 12, ChatColors: true, SkinParts: 0x7f, MainHand: MainHandRight,
		}},
		{"add resource pack", Clientbound, ConfigurationPhase, &AddResourcePack{
			UUID: id, URL: "https://example.com/pack.zip", Forced: true, Prompt: Some[TextComponent]("please"),
		}},
		{"container content", Clientbound, PlayPhase, &SetContainerContent{
			WindowID: PlayerWindow,
			StateID:  4,
			Slots:    []Slot{EmptySlot(), NewSlot(1, 64), EmptySlot(), NewSlot(800, 1)},
		}},
		{"click container", Serverbound, PlayPhase, &ClickContainer{
			StateID: 4, Slot: 36, Mode: ClickPickup,
			ChangedSlots: []ChangedSlot{{Slot: 36, Item: EmptySlot()}},
			CarriedItem:  NewSlot(1, 64),
		}},
		{"close container", Clientbound, PlayPhase, &CloseContainer{WindowID: 2}},
		{"disconnect", Clientbound, PlayPhase, &PlayDisconnect{Reason: "bye"}},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			frame, err := d.Encode(tC.dir, tC.phase, tC.p)
			require.NoError(t, err)

			got, err := d.Decode(tC.dir, tC.phase, frame)
			require.NoError(t, err)
			assert.Equal(t, tC.p, got)
		})
	}
}

func TestDecodeUnsupportedContent(t *testing.T) {
	d := newTestDispatcher(t)

	t.Run("registry entry with data", func(t *testing.T) {
		var body bytes.Buffer
		require.NoError(t, WriteIdentifier(&body, "minecraft:dimension_type"))
		require.NoError(t, WriteVarInt(&body, 1))
		require.NoError(t, WriteIdentifier(&body, "minecraft:overworld"))
		require.NoError(t, WriteBoolean(&body, true))

		_, err := d.Decode(Clientbound, ConfigurationPhase, append([]byte{0x07}, body.Bytes()...))
		assert.ErrorIs(t, err, ErrUnsupportedNBT)
		assert.Equal(t, "invalid_field", ErrorKind(err))
	})

	t.Run("slot with components", func(t *testing.T) {
		frame := []byte{0x32, 0x00, 0x24, 0x01, 0x01, 0x01, 0x00}
		_, err := d.Decode(Serverbound, PlayPhase, frame)
		assert.ErrorIs(t, err, ErrUnsupportedSlotComponents)
		assert.Equal(t, "unsupported_slot_components", ErrorKind(err))
	})
}

func TestDispatcherConcurrentDecode(t *testing.T) {
	d := newTestDispatcher(t)

	var g errgroup.Group
	for i := range 32 {
		g.Go(func() error {
			frame, err := d.Encode(Serverbound, PlayPhase, &KeepAlive{ID: int64(i)})
			if err != nil {
				return err
			}
			p, err := d.Decode(Serverbound, PlayPhase, frame)
			if err != nil {
				return err
			}
			if got := p.(*KeepAlive).ID; got != int64(i) {
				return fmt.Errorf("goroutine %d decoded %d", i, got)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
