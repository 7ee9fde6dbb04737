package packet

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/google/uuid"
)

type WriteFn[T any] func(io.Writer, T) error
type ReadFn[T any] func(Reader) (T, error)

func WriteBoolean(w io.Writer, v bool) (err error) {
	b := byte(0)
	if v {
		b = 1
	}

	_, err = w.Write([]byte{b})
	return
}

func ReadBoolean(r Reader) (v bool, err error) {
	b, err := r.ReadByte()
	if err != nil {
		return
	}

	switch b {
	case 0:
		v = false
	case 1:
		v = true
	default:
		err = fmt.Errorf("%w: 0x%02x", ErrInvalidBoolean, b)
	}
	return
}

func WriteByte(w io.Writer, v byte) (err error) {
	_, err = w.Write([]byte{v})
	return
}

func ReadByte(r Reader) (v byte, err error) {
	return r.ReadByte()
}

func WriteShort(w io.Writer, v int16) (err error) {
	return binary.Write(w, binary.BigEndian, v)
}

func ReadShort(r Reader) (v int16, err error) {
	b, err := r.Read(2)
	if err != nil {
		return
	}

	v = int16(binary.BigEndian.Uint16(b))
	return
}

func WriteUnsignedShort(w io.Writer, v uint16) (err error) {
	return binary.Write(w, binary.BigEndian, v)
}

func ReadUnsignedShort(r Reader) (v uint16, err error) {
	b, err := r.Read(2)
	if err != nil {
		return
	}

	v = binary.BigEndian.Uint16(b)
	return
}

func WriteInt(w io.Writer, v int32) (err error) {
	return binary.Write(w, binary.BigEndian, v)
}

func ReadInt(r Reader) (v int32, err error) {
	b, err := r.Read(4)
	if err != nil {
		return
	}

	v = int32(binary.BigEndian.Uint32(b))
	return
}

func WriteLong(w io.Writer, v int64) (err error) {
	return binary.Write(w, binary.BigEndian, v)
}

func ReadLong(r Reader) (v int64, err error) {
	b, err := r.Read(8)
	if err != nil {
		return
	}

	v = int64(binary.BigEndian.Uint64(b))
	return
}

func WriteFloat(w io.Writer, v float32) (err error) {
	return binary.Write(w, binary.BigEndian, math.Float32bits(v))
}

func ReadFloat(r Reader) (v float32, err error) {
	b, err := r.Read(4)
	if err != nil {
		return
	}

	v = math.Float32frombits(binary.BigEndian.Uint32(b))
	return
}

func WriteDouble(w io.Writer, v float64) (err error) {
	return binary.Write(w, binary.BigEndian, math.Float64bits(v))
}

func ReadDouble(r Reader) (v float64, err error) {
	b, err := r.Read(8)
	if err != nil {
		return
	}

	v = math.Float64frombits(binary.BigEndian.Uint64(b))
	return
}

// readLength reads a VarInt length prefix and checks it against max.
func readLength(r Reader, max int32) (int, error) {
	length, err := ReadVarInt(r)
	if err != nil {
		return 0, err
	}
	if length < 0 {
		return 0, ErrNegativeLength
	}
	if length > max {
		return 0, fmt.Errorf("%w: %d > %d", ErrLengthExceedsLimit, length, max)
	}
	return int(length), nil
}

func WriteString(w io.Writer, v string) (err error) {
	err = WriteVarInt(w, int32(len(v)))
	if err != nil {
		return
	}
	_, err = io.WriteString(w, v)
	return
}

func ReadString(r Reader) (v string, err error) {
	length, err := readLength(r, r.Limits().MaxStringLen)
	if err != nil {
		return
	}

	buf, err := r.Read(length)
	return string(buf), err
}

// WriteByteArray writes a VarInt byte count followed by the bytes.
func WriteByteArray(w io.Writer, v []byte) (err error) {
	err = WriteVarInt(w, int32(len(v)))
	if err != nil {
		return
	}
	_, err = w.Write(v)
	return
}

func ReadByteArray(r Reader) (v []byte, err error) {
	length, err := readLength(r, r.Limits().MaxByteArrayLen)
	if err != nil {
		return
	}

	b, err := r.Read(length)
	if err != nil {
		return
	}
	return bytes.Clone(b), nil
}

// WriteRemainingBytes writes v unprefixed; it must be the last field of a
// packet, since its length is implied by the frame.
func WriteRemainingBytes(w io.Writer, v []byte) (err error) {
	_, err = w.Write(v)
	return
}

func ReadRemainingBytes(r Reader) (v []byte, err error) {
	n := r.Remaining()
	if n > int(r.Limits().MaxByteArrayLen) {
		return nil, fmt.Errorf("%w: %d > %d", ErrLengthExceedsLimit, n, r.Limits().MaxByteArrayLen)
	}

	b, err := r.Read(n)
	if err != nil {
		return
	}
	return bytes.Clone(b), nil
}

// Position's serialized form is composed of X, Z which are 26 bits each, and 12 bits of Y.
// Thus, unintended content can be written when the values are out of range
type Position struct {
	X int32
	Y int16
	Z int32
}

func WritePosition(w io.Writer, v Position) (err error) {
	packed := (uint64(v.X&0x3FFFFFF) << 38) |
		(uint64(v.Z&0x3FFFFFF) << 12) |
		(uint64(v.Y & 0xFFF))

	err = binary.Write(w, binary.BigEndian, packed)
	return
}

func ReadPosition(r Reader) (v Position, err error) {
	b, err := r.Read(8)
	if err != nil {
		return
	}

	packed := int64(binary.BigEndian.Uint64(b))

	// arithmetic shifts sign-extend each component
	v.X = int32(packed >> 38)
	v.Z = int32(packed << 26 >> 38)
	v.Y = int16(packed << 52 >> 52)
	return
}

func WriteUUID(w io.Writer, v uuid.UUID) (err error) {
	_, err = w.Write(v[:])
	return
}

func ReadUUID(r Reader) (v uuid.UUID, err error) {
	b, err := r.Read(16)
	if err != nil {
		return
	}

	v = uuid.UUID(b)
	return
}

func WritePrefixedArray[T any](w io.Writer, v []T, write WriteFn[T]) (err error) {
	err = WriteVarInt(w, int32(len(v)))
	if err != nil {
		return
	}

	for _, item := range v {
		err = write(w, item)
		if err != nil {
			return
		}
	}
	return
}

func ReadPrefixedArray[T any](r Reader, read ReadFn[T]) (v []T, err error) {
	length, err := readLength(r, r.Limits().MaxArrayLen)
	if err != nil {
		return
	}

	v = make([]T, length)
	for i := range length {
		var item T
		if item, err = read(r); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		v[i] = item
	}

	return
}

// Optional[T] represents Optional field in a packet
//
// Serialized Optional[T] is prefixed with Boolean of whether the value exists.
// If so, the value T is followed.
type Optional[T any] struct {
	Exists bool
	Item   T
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Exists: true, Item: v}
}

func WriteOptional[T any](w io.Writer, v Optional[T], write WriteFn[T]) (err error) {
	err = WriteBoolean(w, v.Exists)
	if err != nil {
		return
	}

	if v.Exists {
		err = write(w, v.Item)
	}
	return
}

func ReadOptional[T any](r Reader, read ReadFn[T]) (v Optional[T], err error) {
	if v.Exists, err = ReadBoolean(r); err != nil {
		return
	}

	if v.Exists {
		v.Item, err = read(r)
	}
	return
}
