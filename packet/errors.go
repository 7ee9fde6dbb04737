package packet

import (
	"errors"
	"fmt"
	"io"
)

var (
	ErrMalformedVarInt  = errors.New("malformed VarInt")
	ErrMalformedVarLong = errors.New("malformed VarLong")

	ErrNegativeLength     = errors.New("negative length")
	ErrLengthExceedsLimit = errors.New("length exceeds limit")
	ErrInvalidBoolean     = errors.New("invalid byte for Boolean field")
	ErrInvalidIdentifier  = errors.New("invalid identifier")
	ErrUnsupportedNBT     = errors.New("unsupported NBT payload")

	ErrMalformedModifiedUTF8 = errors.New("malformed modified UTF-8")

	ErrTruncatedPacket = errors.New("truncated packet")
	ErrTrailingBytes   = errors.New("trailing bytes after packet")

	ErrUnknownPacketCode      = errors.New("unknown packet code")
	ErrUnregisteredPacketType = errors.New("unregistered packet type")
	ErrDuplicatePacketCode    = errors.New("duplicate packet code")
	ErrDuplicatePacketType    = errors.New("duplicate packet type")

	ErrUnsupportedSlotComponents = errors.New("slot components are unsupported")
	ErrInvalidItemID             = errors.New("invalid item id")
	ErrInvalidItemCount          = errors.New("invalid item count")
	ErrOversizedStack            = errors.New("oversized stack")
)

// UnknownPacketCodeError is returned when no packet type is registered for a
// code in the connection's current direction and phase. The frame is left
// unparsed past the code.
type UnknownPacketCodeError struct {
	Direction Direction
	Phase     Phase
	Code      int32
	Remaining int
}

func (e *UnknownPacketCodeError) Error() string {
	return fmt.Sprintf("unknown packet code 0x%02X for %s %s (%d bytes unread)",
		e.Code, e.Phase, e.Direction, e.Remaining)
}

func (e *UnknownPacketCodeError) Is(target error) bool {
	return target == ErrUnknownPacketCode
}

// TrailingBytesError reports a packet whose decoder finished before the
// frame did.
type TrailingBytesError struct {
	Packet    string
	Remaining int
}

func (e *TrailingBytesError) Error() string {
	return fmt.Sprintf("%d trailing bytes after %s", e.Remaining, e.Packet)
}

func (e *TrailingBytesError) Is(target error) bool {
	return target == ErrTrailingBytes
}

// UnregisteredPacketTypeError means a packet was handed to the encoder in a
// direction and phase it was never declared for. This is a programming error.
type UnregisteredPacketTypeError struct {
	Packet    string
	Direction Direction
	Phase     Phase
}

func (e *UnregisteredPacketTypeError) Error() string {
	return fmt.Sprintf("%s is not registered for %s %s", e.Packet, e.Phase, e.Direction)
}

func (e *UnregisteredPacketTypeError) Is(target error) bool {
	return target == ErrUnregisteredPacketType
}

// ErrorKind maps a codec error to a short stable name, suitable for metric
// labels and structured logs.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnknownPacketCode):
		return "unknown_packet_code"
	case errors.Is(err, ErrTrailingBytes):
		return "trailing_bytes"
	case errors.Is(err, ErrUnsupportedSlotComponents):
		return "unsupported_slot_components"
	case errors.Is(err, ErrMalformedVarInt), errors.Is(err, ErrMalformedVarLong):
		return "malformed_varint"
	case errors.Is(err, ErrTruncatedPacket), errors.Is(err, io.ErrUnexpectedEOF):
		return "truncated_packet"
	case errors.Is(err, ErrInvalidItemID):
		return "invalid_item_id"
	case errors.Is(err, ErrOversizedStack):
		return "oversized_stack"
	case errors.Is(err, ErrUnregisteredPacketType):
		return "unregistered_packet_type"
	case errors.Is(err, ErrLengthExceedsLimit):
		return "length_exceeds_limit"
	case errors.Is(err, ErrNegativeLength), errors.Is(err, ErrInvalidBoolean),
		errors.Is(err, ErrInvalidIdentifier), errors.Is(err, ErrUnsupportedNBT),
		errors.Is(err, ErrMalformedModifiedUTF8), errors.Is(err, ErrInvalidItemCount):
		return "invalid_field"
	default:
		return "other"
	}
}
