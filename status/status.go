// Package status builds and queries the server list status: the JSON
// document carried by StatusResponse and the ping that follows it.
package status

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/gstoney/mcwire"
	"github.com/gstoney/mcwire/packet"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Version struct {
	Name     string `json:"name"`
	Protocol int32  `json:"protocol"`
}

type Player struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type Players struct {
	Max    int      `json:"max"`
	Online int      `json:"online"`
	Sample []Player `json:"sample,omitempty"`
}

// Response is the JSON document of a StatusResponse.
type Response struct {
	Version            Version             `json:"version"`
	Players            Players             `json:"players"`
	Description        jsoniter.RawMessage `json:"description,omitempty"`
	Favicon            string              `json:"favicon,omitempty"`
	EnforcesSecureChat bool                `json:"enforcesSecureChat"`
}

type textComponent struct {
	Text  string          `json:"text"`
	Extra []textComponent `json:"extra,omitempty"`
}

// NewResponse describes a server running this package's protocol version.
func NewResponse(motd string, maxPlayers, online int) (Response, error) {
	desc, err := json.Marshal(textComponent{Text: motd})
	if err != nil {
		return Response{}, err
	}

	return Response{
		Version:     Version{Name: "1.21.1", Protocol: packet.ProtocolVersion},
		Players:     Players{Max: maxPlayers, Online: online},
		Description: desc,
	}, nil
}

// MOTD flattens the description, which servers send either as a bare
// string or as a text component.
func (r Response) MOTD() string {
	if len(r.Description) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(r.Description, &s); err == nil {
		return s
	}

	var c textComponent
	if err := json.Unmarshal(r.Description, &c); err != nil {
		return string(r.Description)
	}
	return c.flatten()
}

func (c textComponent) flatten() string {
	s := c.Text
	for _, e := range c.Extra {
		s += e.flatten()
	}
	return s
}

func (r Response) Marshal() (string, error) {
	b, err := json.Marshal(r)
	return string(b), err
}

func Parse(s string) (Response, error) {
	var r Response
	if err := json.UnmarshalFromString(s, &r); err != nil {
		return Response{}, fmt.Errorf("parsing status: %w", err)
	}
	return r, nil
}

// Result is what Query learned about a server.
type Result struct {
	Response Response
	Raw      string
	Latency  time.Duration
}

// Query dials addr (host:port), performs the status exchange under protocol
// and measures the ping round trip.
func Query(ctx context.Context, addr string, protocol int32, d *packet.Dispatcher) (Result, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return Result{}, err
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return Result{}, fmt.Errorf("port %q: %w", portStr, err)
	}

	var dialer net.Dialer
	nc, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return Result{}, err
	}
	defer nc.Close()
	if deadline, ok := ctx.Deadline(); ok {
		nc.SetDeadline(deadline)
	}

	c := mcwire.NewClientConn(nc, d, mcwire.DefaultTransportConfig())

	if err := c.WritePacket(&packet.Handshake{
		ProtocolVersion: protocol,
		ServerAddr:      host,
		ServerPort:      uint16(port),
		Intent:          packet.IntentStatus,
	}); err != nil {
		return Result{}, err
	}
	c.SetPhase(packet.StatusPhase)

	if err := c.WritePacket(&packet.StatusRequest{}); err != nil {
		return Result{}, err
	}
	resp, err := mcwire.ReadPacketAs[packet.StatusResponse](c)
	if err != nil {
		return Result{}, err
	}

	res := Result{Raw: resp.Response}
	if res.Response, err = Parse(resp.Response); err != nil {
		return res, err
	}

	start := time.Now()
	ts := start.UnixMilli()
	if err := c.WritePacket(&packet.PingRequest{Timestamp: ts}); err != nil {
		return res, err
	}
	pong, err := mcwire.ReadPacketAs[packet.PongResponse](c)
	if err != nil {
		return res, err
	}
	if pong.Timestamp != ts {
		return res, fmt.Errorf("pong carries %d, sent %d", pong.Timestamp, ts)
	}
	res.Latency = time.Since(start)

	return res, nil
}
