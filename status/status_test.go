package status

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstoney/mcwire"
	"github.com/gstoney/mcwire/packet"
)

func TestResponseJSON(t *testing.T) {
	r, err := NewResponse("Hello", 20, 3)
	require.NoError(t, err)

	s, err := r.Marshal()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"version": {"name": "1.21.1", "protocol": 767},
		"players": {"max": 20, "online": 3},
		"description": {"text": "Hello"},
		"enforcesSecureChat": false
	}`, s)

	back, err := Parse(s)
	require.NoError(t, err)
	assert.Equal(t, "Hello", back.MOTD())
	assert.Equal(t, r.Players, back.Players)
}

func TestMOTD(t *testing.T) {
	testCases := []struct {
		doc  string
		motd string
	}{
		{`{"description":"plain"}`, "plain"},
		{`{"description":{"text":"a","extra":[{"text":"b"},{"text":"c"}]}}`, "abc"},
		{`{}`, ""},
	}

	for _, tC := range testCases {
		r, err := Parse(tC.doc)
		require.NoError(t, err, tC.doc)
		assert.Equal(t, tC.motd, r.MOTD(), tC.doc)
	}

	_, err := Parse("not json")
	assert.Error(t, err)
}

func testDispatcher(t *testing.T) *packet.Dispatcher {
	t.Helper()

	reg, err := packet.NewProtocolRegistry()
	require.NoError(t, err)
	return packet.NewDispatcher(reg, packet.DefaultLimits())
}

func TestQuery(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	sessions := make(chan *mcwire.Session, 1)
	srv := &mcwire.Server{
		Dispatcher: testDispatcher(t),
		Transport:  mcwire.DefaultTransportConfig(),
		Handler: func(ctx context.Context, s *mcwire.Session, c *mcwire.Conn) error {
			sessions <- s
			if _, err := mcwire.ReadPacketAs[packet.StatusRequest](c); err != nil {
				return err
			}
			r, err := NewResponse("query test", 10, 1)
			if err != nil {
				return err
			}
			doc, err := r.Marshal()
			if err != nil {
				return err
			}
			if err := c.WritePacket(&packet.StatusResponse{Response: doc}); err != nil {
				return err
			}
			ping, err := mcwire.ReadPacketAs[packet.PingRequest](c)
			if err != nil {
				return err
			}
			return c.WritePacket(&packet.PongResponse{Timestamp: ping.Timestamp})
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		srv.Serve(ctx, l)
	}()

	res, err := Query(ctx, l.Addr().String(), packet.ProtocolVersion, testDispatcher(t))
	require.NoError(t, err)
	assert.Equal(t, "query test", res.Response.MOTD())
	assert.Equal(t, 1, res.Response.Players.Online)
	assert.Positive(t, res.Latency)
	assert.Contains(t, res.Raw, "query test")

	seen := <-sessions
	assert.Equal(t, "127.0.0.1", seen.ServerAddr)
	assert.EqualValues(t, packet.IntentStatus, seen.Intent)

	cancel()
	<-done
}

func TestQueryBadAddress(t *testing.T) {
	_, err := Query(context.Background(), "no-port", packet.ProtocolVersion, testDispatcher(t))
	assert.Error(t, err)
}
