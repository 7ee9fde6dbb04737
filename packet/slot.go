package packet

import (
	"fmt"
	"io"
	"math"

	"github.com/gstoney/mcwire/item"
)

// Slot is one inventory position on the wire. It has two shapes and the
// item count is the discriminant: a zero count is the empty slot, written as
// a single VarInt, and anything else is followed by the item id and the
// component counts.
//
// Data components are not supported yet. Their counts are still framed so a
// peer can parse the slot, but they are always zero.
type Slot struct {
	Count  int32
	ItemID int32
}

// slotIsEmpty is the shape test shared by WriteSlot and ReadSlot.
func slotIsEmpty(count int32) bool {
	return count == 0
}

func EmptySlot() Slot {
	return Slot{}
}

func NewSlot(itemID uint16, count uint8) Slot {
	return Slot{Count: int32(count), ItemID: int32(itemID)}
}

func (s Slot) IsEmpty() bool {
	return slotIsEmpty(s.Count)
}

func WriteSlot(w io.Writer, v Slot) (err error) {
	if err = WriteVarInt(w, v.Count); err != nil {
		return
	}
	if slotIsEmpty(v.Count) {
		return
	}

	if err = WriteVarInt(w, v.ItemID); err != nil {
		return
	}
	// components to add, components to remove; both lists are empty
	if err = WriteVarInt(w, 0); err != nil {
		return
	}
	err = WriteVarInt(w, 0)
	return
}

func ReadSlot(r Reader) (v Slot, err error) {
	if v.Count, err = ReadVarInt(r); err != nil {
		return
	}
	if slotIsEmpty(v.Count) {
		return EmptySlot(), nil
	}

	if v.ItemID, err = ReadVarInt(r); err != nil {
		return
	}
	add, err := ReadVarInt(r)
	if err != nil {
		return
	}
	remove, err := ReadVarInt(r)
	if err != nil {
		return
	}
	if add != 0 || remove != 0 {
		return Slot{}, fmt.Errorf("%w: %d to add, %d to remove", ErrUnsupportedSlotComponents, add, remove)
	}
	return
}

// ToStack resolves the slot against reg. An empty slot yields an absent
// stack.
func (s Slot) ToStack(reg item.Registry) (Optional[item.Stack], error) {
	if s.IsEmpty() {
		return Optional[item.Stack]{}, nil
	}

	if s.ItemID < 0 || s.ItemID > math.MaxUint16 {
		return Optional[item.Stack]{}, fmt.Errorf("%w: %d out of range", ErrInvalidItemID, s.ItemID)
	}
	desc, ok := reg.LookupItem(uint16(s.ItemID))
	if !ok {
		return Optional[item.Stack]{}, fmt.Errorf("%w: %d", ErrInvalidItemID, s.ItemID)
	}

	if s.Count > int32(desc.MaxStackSize) {
		return Optional[item.Stack]{}, fmt.Errorf("%w: %d of %s, max %d",
			ErrOversizedStack, s.Count, desc.Name, desc.MaxStackSize)
	}
	if s.Count < 0 {
		return Optional[item.Stack]{}, fmt.Errorf("%w: %d", ErrInvalidItemCount, s.Count)
	}

	return Some(item.Stack{Item: desc, Count: uint8(s.Count)}), nil
}

func SlotFromStack(s item.Stack) Slot {
	return NewSlot(s.Item.ID, s.Count)
}

func SlotFromOptionalStack(s Optional[item.Stack]) Slot {
	if !s.Exists {
		return EmptySlot()
	}
	return SlotFromStack(s.Item)
}
