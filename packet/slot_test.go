package packet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstoney/mcwire/item"
)

func testItems(t *testing.T) *item.Table {
	t.Helper()

	table, err := item.NewTable([]item.Descriptor{
		{ID: 1, Name: "minecraft:stone", MaxStackSize: 64},
		{ID: 10, Name: "minecraft:ender_pearl", MaxStackSize: 16},
		{ID: 800, Name: "minecraft:diamond_sword", MaxStackSize: 1},
	})
	require.NoError(t, err)
	return table
}

var slotTc = []TestCase[Slot]{
	{
		desc: "Empty slot",
		v:    EmptySlot(),
		ser:  []byte{0x00},
	},
	{
		desc: "Occupied slot",
		v:    NewSlot(10, 5),
		ser:  []byte{0x05, 0x0a, 0x00, 0x00},
	},
	{
		desc: "Two byte item id",
		v:    NewSlot(800, 1),
		ser:  []byte{0x01, 0xa0, 0x06, 0x00, 0x00},
	},
	{
		desc:      "Components to add",
		expectErr: ErrUnsupportedSlotComponents,
		ser:       []byte{0x05, 0x0a, 0x02, 0x00},
	},
	{
		desc:      "Components to remove",
		expectErr: ErrUnsupportedSlotComponents,
		ser:       []byte{0x05, 0x0a, 0x00, 0x01},
	},
	{
		desc:      "Missing item id",
		expectErr: ErrMalformedVarInt,
		ser:       []byte{0x05},
	},
}

func TestSlotCodec(t *testing.T) {
	for _, tC := range slotTc {
		t.Run(tC.desc, func(t *testing.T) {
			r := NewFrameReader(tC.ser)
			got, err := ReadSlot(&r)
			if tC.expectErr != nil {
				assert.ErrorIs(t, err, tC.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tC.v, got)
			assert.Zero(t, r.Remaining())

			var buf bytes.Buffer
			require.NoError(t, WriteSlot(&buf, tC.v))
			assert.Equal(t, tC.ser, buf.Bytes())
		})
	}
}

func TestEmptySlotIgnoresItemID(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSlot(&buf, Slot{Count: 0, ItemID: 42}))
	assert.Equal(t, []byte{0x00}, buf.Bytes())
	assert.True(t, Slot{ItemID: 42}.IsEmpty())
}

func TestSlotToStack(t *testing.T) {
	items := testItems(t)

	t.Run("empty slot has no stack", func(t *testing.T) {
		stack, err := EmptySlot().ToStack(items)
		require.NoError(t, err)
		assert.False(t, stack.Exists)
	})

	t.Run("full stack", func(t *testing.T) {
		stack, err := NewSlot(10, 16).ToStack(items)
		require.NoError(t, err)
		require.True(t, stack.Exists)
		assert.Equal(t, "minecraft:ender_pearl", stack.Item.Item.Name)
		assert.EqualValues(t, 16, stack.Item.Count)
	})

	t.Run("oversized stack", func(t *testing.T) {
		_, err := NewSlot(10, 17).ToStack(items)
		assert.ErrorIs(t, err, ErrOversizedStack)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := NewSlot(2, 1).ToStack(items)
		assert.ErrorIs(t, err, ErrInvalidItemID)
	})

	t.Run("item id out of range", func(t *testing.T) {
		_, err := Slot{Count: 1, ItemID: 70000}.ToStack(items)
		assert.ErrorIs(t, err, ErrInvalidItemID)

		_, err = Slot{Count: 1, ItemID: -1}.ToStack(items)
		assert.ErrorIs(t, err, ErrInvalidItemID)
	})

	t.Run("negative count", func(t *testing.T) {
		_, err := Slot{Count: -3, ItemID: 1}.ToStack(items)
		assert.ErrorIs(t, err, ErrInvalidItemCount)
	})
}

func TestSlotFromStack(t *testing.T) {
	items := testItems(t)
	sword, ok := items.ByName("minecraft:diamond_sword")
	require.True(t, ok)

	assert.Equal(t, NewSlot(800, 1), SlotFromStack(item.Stack{Item: sword, Count: 1}))
	assert.Equal(t, EmptySlot(), SlotFromOptionalStack(Optional[item.Stack]{}))

	slot := SlotFromOptionalStack(Some(item.Stack{Item: sword, Count: 1}))
	stack, err := slot.ToStack(items)
	require.NoError(t, err)
	assert.Equal(t, sword, stack.Item.Item)
}
