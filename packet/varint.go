package packet

import (
	"errors"
	"fmt"
	"io"
)

const (
	MaxVarIntLen  = 5
	MaxVarLongLen = 10
)

func WriteVarInt(w io.Writer, v int32) error {
	var buf [MaxVarIntLen]byte
	_, err := w.Write(AppendVarInt(buf[:0], v))
	return err
}

// AppendVarInt appends the canonical encoding of v: 7-bit groups of its
// unsigned bit pattern, least significant first, 0x80 set on every byte
// except the last.
func AppendVarInt(dst []byte, v int32) []byte {
	uv := uint32(v)
	for uv >= 0x80 {
		dst = append(dst, byte(uv)|0x80)
		uv >>= 7
	}
	return append(dst, byte(uv))
}

func VarIntSize(v int32) int {
	uv := uint32(v)
	n := 1
	for uv >= 0x80 {
		uv >>= 7
		n++
	}
	return n
}

// ReadVarInt reads at most MaxVarIntLen bytes. A clean io.EOF before the
// first byte is returned unchanged so stream readers can detect a closed
// connection; anything else that stops the sequence early is malformed.
func ReadVarInt(r io.ByteReader) (int32, error) {
	var v uint32
	var shift uint

	for n := 0; n < MaxVarIntLen; n++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, varIntReadErr(ErrMalformedVarInt, n, err)
		}

		v |= uint32(b&0x7F) << shift
		shift += 7

		if (b & 0x80) == 0 {
			return int32(v), nil
		}
	}
	return 0, fmt.Errorf("%w: more than %d bytes", ErrMalformedVarInt, MaxVarIntLen)
}

// DecodeVarInt decodes a VarInt from the start of b and reports how many
// bytes it occupied.
func DecodeVarInt(b []byte) (v int32, n int, err error) {
	r := NewFrameReader(b)
	v, err = ReadVarInt(&r)
	if err != nil {
		return 0, 0, err
	}
	return v, r.Consumed(), nil
}

func WriteVarLong(w io.Writer, v int64) error {
	var buf [MaxVarLongLen]byte
	_, err := w.Write(AppendVarLong(buf[:0], v))
	return err
}

func AppendVarLong(dst []byte, v int64) []byte {
	uv := uint64(v)
	for uv >= 0x80 {
		dst = append(dst, byte(uv)|0x80)
		uv >>= 7
	}
	return append(dst, byte(uv))
}

func VarLongSize(v int64) int {
	uv := uint64(v)
	n := 1
	for uv >= 0x80 {
		uv >>= 7
		n++
	}
	return n
}

func ReadVarLong(r io.ByteReader) (int64, error) {
	var v uint64
	var shift uint

	for n := 0; n < MaxVarLongLen; n++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, varIntReadErr(ErrMalformedVarLong, n, err)
		}

		v |= uint64(b&0x7F) << shift
		shift += 7

		if (b & 0x80) == 0 {
			return int64(v), nil
		}
	}
	return 0, fmt.Errorf("%w: more than %d bytes", ErrMalformedVarLong, MaxVarLongLen)
}

func DecodeVarLong(b []byte) (v int64, n int, err error) {
	r := NewFrameReader(b)
	v, err = ReadVarLong(&r)
	if err != nil {
		return 0, 0, err
	}
	return v, r.Consumed(), nil
}

func varIntReadErr(kind error, read int, err error) error {
	if read == 0 && err == io.EOF {
		return io.EOF
	}
	if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", kind, io.ErrUnexpectedEOF)
	}
	return err
}
