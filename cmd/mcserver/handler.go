package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/hashicorp/go-multierror"
	jsoniter "github.com/json-iterator/go"

	"github.com/gstoney/mcwire"
	"github.com/gstoney/mcwire/config"
	"github.com/gstoney/mcwire/item"
	"github.com/gstoney/mcwire/packet"
	"github.com/gstoney/mcwire/status"
)

const (
	brand = "mcwire"

	// Player inventory window layout.
	inventorySlots = 46
	hotbarStart    = 36
	hotbarSize     = 9
)

var errTooManyStarters = errors.New("starter items do not fit the hotbar")

// handler walks a client through status, or through login and configuration
// into play, where it is shown its starter inventory and disconnected.
//
// It exercises the codec and is not a joinable server: configuration sends no
// RegistryData and play starts without Login (play), so a vanilla client
// drops the connection before it reaches the disconnect message.
type handler struct {
	cfg       config.ServerConfig
	inventory []packet.Slot
	log       *slog.Logger

	online atomic.Int32
}

func (h *handler) logger() *slog.Logger {
	if h.log == nil {
		return slog.Default()
	}
	return h.log
}

func (h *handler) serve(ctx context.Context, s *mcwire.Session, c *mcwire.Conn) error {
	switch c.Phase() {
	case packet.StatusPhase:
		return h.status(c)
	case packet.LoginPhase:
		return h.login(ctx, s, c)
	}
	return fmt.Errorf("%w: handler entered in %s", mcwire.ErrUnexpectedPacket, c.Phase())
}

func (h *handler) status(c *mcwire.Conn) error {
	if _, err := mcwire.ReadPacketAs[packet.StatusRequest](c); err != nil {
		return err
	}

	resp, err := status.NewResponse(h.cfg.MOTD, h.cfg.MaxPlayers, int(h.online.Load()))
	if err != nil {
		return err
	}
	doc, err := resp.Marshal()
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
}

func (h *handler) login(ctx context.Context, s *mcwire.Session, c *mcwire.Conn) error {
	start, err := mcwire.ReadPacketAs[packet.LoginStart](c)
	if err != nil {
		return err
	}
	s.Name, s.PlayerUUID = start.Name, start.PlayerUUID

	log := h.logger().With("player", s.Name, "uuid", s.PlayerUUID, "remote", s.RemoteAddr)

	if s.ProtocolVersion != packet.ProtocolVersion {
		log.Info("rejected login", "protocol", s.ProtocolVersion)
		return disconnectLogin(c, fmt.Sprintf("Outdated client! Please use protocol %d", packet.ProtocolVersion))
	}
	if int(h.online.Add(1)) > h.cfg.MaxPlayers {
		h.online.Add(-1)
		log.Info("rejected login, server full")
		return disconnectLogin(c, "The server is full!")
	}
	defer h.online.Add(-1)

	if h.cfg.CompressionThreshold >= 0 {
		if err := c.EnableCompression(h.cfg.CompressionThreshold); err != nil {
			return err
		}
	}
	if err := c.WritePacket(&packet.LoginSuccess{
		UUID:              s.PlayerUUID,
		Username:          s.Name,
		StrictErrHandling: true,
	}); err != nil {
		return err
	}
	if _, err := mcwire.ReadPacketAs[packet.LoginAcknowledged](c); err != nil {
		return err
	}
	c.SetPhase(packet.ConfigurationPhase)
	log.Info("player logged in")

	if err := h.configure(c); err != nil {
		return err
	}
	c.SetPhase(packet.PlayPhase)

	return h.play(ctx, c)
}

func disconnectLogin(c *mcwire.Conn, msg string) error {
	reason, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalToString(map[string]string{"text": msg})
	if err != nil {
		return err
	}
	return c.WritePacket(&packet.LoginDisconnect{Reason: reason})
}

func (h *handler) configure(c *mcwire.Conn) error {
	var data bytes.Buffer
	if err := packet.WriteString(&data, brand); err != nil {
		return err
	}
	if err := c.WritePacket(&packet.PluginMessage{Channel: "minecraft:brand", Data: data.Bytes()}); err != nil {
		return err
	}
	if err := c.WritePacket(&packet.KnownPacks{
		Packs: []packet.KnownPack{{Namespace: "minecraft", ID: "core", Version: "1.21"}},
	}); err != nil {
		return err
	}

	if _, err := readSkipping[packet.KnownPacks](c); err != nil {
		return err
	}

	if err := c.WritePacket(&packet.FinishConfiguration{}); err != nil {
		return err
	}
	_, err := readSkipping[packet.AcknowledgeFinishConfiguration](c)
	return err
}

// readSkipping reads until a *T arrives, passing over the packets a client
// sends unprompted during configuration.
func readSkipping[T any, PT interface {
	*T
	packet.Packet
}](c *mcwire.Conn) (PT, error) {
	for {
		p, err := c.ReadPacket()
		if err != nil {
			return nil, err
		}

		switch v := p.(type) {
		case PT:
			return v, nil
		case *packet.ClientInformation, *packet.PluginMessage, *packet.KeepAlive:
			continue
		default:
			var want T
			return nil, fmt.Errorf("%w: got %s while waiting for %T", mcwire.ErrUnexpectedPacket, packet.PacketName(p), want)
		}
	}
}

func (h *handler) play(ctx context.Context, c *mcwire.Conn) error {
	if err := c.WritePacket(&packet.SetContainerContent{
		WindowID:    packet.PlayerWindow,
		StateID:     1,
		Slots:       h.inventory,
		CarriedItem: packet.EmptySlot(),
	}); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return c.WritePacket(&packet.PlayDisconnect{Reason: packet.TextComponent(h.cfg.DisconnectMessage)})
}

// starterInventory lays the configured stacks out along the hotbar of an
// otherwise empty player inventory.
func starterInventory(items *item.Table, stacks []config.StarterStack) ([]packet.Slot, error) {
	if len(stacks) > hotbarSize {
		return nil, fmt.Errorf("%w: %d stacks, %d slots", errTooManyStarters, len(stacks), hotbarSize)
	}

	slots := make([]packet.Slot, inventorySlots)
	for i := range slots {
		slots[i] = packet.EmptySlot()
	}

	var errs *multierror.Error
	for i, s := range stacks {
		desc, ok := items.ByName(s.Item)
		if !ok {
			errs = multierror.Append(errs, fmt.Errorf("starter item %q: %w", s.Item, item.ErrUnknownItem))
			continue
		}
		if s.Count == 0 || s.Count > desc.MaxStackSize {
			errs = multierror.Append(errs, fmt.Errorf("starter item %q: count %d outside 1..%d", s.Item, s.Count, desc.MaxStackSize))
			continue
		}
		slots[hotbarStart+i] = packet.SlotFromStack(item.Stack{Item: desc, Count: s.Count})
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return slots, nil
}
