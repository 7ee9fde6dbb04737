package packet

import "io"

// Window 0 is the player's own inventory.
const PlayerWindow = 0

// @gen:r,w
// @packet:clientbound,play,0x13
type SetContainerContent struct {
	WindowID    byte   `field:"Byte"`
	StateID     int32  `field:"VarInt"`
	Slots       []Slot `field:"PrefixedArray" inner:"Slot"`
	CarriedItem Slot   `field:"Slot"`
}

// @gen:r,w
// @packet:clientbound,play,0x15
type SetContainerSlot struct {
	WindowID byte  `field:"Byte"`
	StateID  int32 `field:"VarInt"`
	Slot     int16 `field:"Short"`
	Item     Slot  `field:"Slot"`
}

// @gen:r,w
// @packet:clientbound,play,0x1D
type PlayDisconnect struct {
	Reason TextComponent `field:"TextComponent"`
}

// Click modes of ClickContainer.
const (
	ClickPickup = iota
	ClickQuickMove
	ClickSwap
	ClickClone
	ClickThrow
	ClickQuickCraft
	ClickPickupAll
)

// ChangedSlot is the client's view of one slot after a click.
type ChangedSlot struct {
	Slot int16
	Item Slot
}

func writeChangedSlot(w io.Writer, v ChangedSlot) (err error) {
	if err = WriteShort(w, v.Slot); err != nil {
		return
	}
	err = WriteSlot(w, v.Item)
	return
}

func readChangedSlot(r Reader) (v ChangedSlot, err error) {
	if v.Slot, err = ReadShort(r); err != nil {
		return
	}
	v.Item, err = ReadSlot(r)
	return
}

// @gen:r,w
// @packet:serverbound,play,0x0E
type ClickContainer struct {
	WindowID     byte          `field:"Byte"`
	StateID      int32         `field:"VarInt"`
	Slot         int16         `field:"Short"`
	Button       byte          `field:"Byte"`
	Mode         int32         `field:"VarInt"`
	ChangedSlots []ChangedSlot `field:"PrefixedArray" write:"writeChangedSlot" read:"readChangedSlot"`
	CarriedItem  Slot          `field:"Slot"`
}

// @gen:r,w
// @packet:serverbound,play,0x0F
// @packet:clientbound,play,0x12
type CloseContainer struct {
	WindowID byte `field:"Byte"`
}

// @gen:r,w
// @packet:serverbound,play,0x2F
type SetHeldItem struct {
	Slot int16 `field:"Short"`
}

// @gen:r,w
// @packet:serverbound,play,0x32
type SetCreativeModeSlot struct {
	Slot int16 `field:"Short"`
	Item Slot  `field:"Slot"`
}
