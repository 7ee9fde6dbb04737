package packet

import (
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf16"
)

const MaxIdentifierLen = 32767

// WriteIdentifier writes a namespaced resource location such as
// "minecraft:overworld". It refuses anything ReadIdentifier would reject.
func WriteIdentifier(w io.Writer, v string) error {
	if len(v) > MaxIdentifierLen {
		return fmt.Errorf("%w: identifier of %d bytes", ErrLengthExceedsLimit, len(v))
	}
	if !ValidIdentifier(v) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, v)
	}
	return WriteString(w, v)
}

func ReadIdentifier(r Reader) (v string, err error) {
	length, err := readLength(r, min(MaxIdentifierLen, r.Limits().MaxStringLen))
	if err != nil {
		return
	}

	b, err := r.Read(length)
	if err != nil {
		return
	}

	v = string(b)
	if !ValidIdentifier(v) {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, v)
	}
	return
}

// ValidIdentifier reports whether s is "namespace:path" or a bare path,
// using the characters vanilla accepts.
func ValidIdentifier(s string) bool {
	ns, path, found := strings.Cut(s, ":")
	if !found {
		ns, path = "minecraft", s
	}
	if path == "" || ns == "" {
		return false
	}
	for _, c := range ns {
		if !identChar(c) {
			return false
		}
	}
	for _, c := range path {
		if !identChar(c) && c != '/' {
			return false
		}
	}
	return true
}

func identChar(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' || c == '-' || c == '.'
}

// TextComponent is a chat component carried as network NBT. Only the plain
// string form (a root String tag) is supported.
type TextComponent string

const nbtTagString = 0x08

func WriteTextComponent(w io.Writer, v TextComponent) (err error) {
	b := appendModifiedUTF8(nil, string(v))
	if len(b) > math.MaxUint16 {
		return fmt.Errorf("%w: text component of %d bytes", ErrLengthExceedsLimit, len(b))
	}

	if err = WriteByte(w, nbtTagString); err != nil {
		return
	}
	if err = WriteUnsignedShort(w, uint16(len(b))); err != nil {
		return
	}
	_, err = w.Write(b)
	return
}

func ReadTextComponent(r Reader) (v TextComponent, err error) {
	tag, err := r.ReadByte()
	if err != nil {
		return
	}
	if tag != nbtTagString {
		return "", fmt.Errorf("%w: text component root tag 0x%02x", ErrUnsupportedNBT, tag)
	}

	n, err := ReadUnsignedShort(r)
	if err != nil {
		return
	}
	b, err := r.Read(int(n))
	if err != nil {
		return
	}

	s, err := decodeModifiedUTF8(b)
	return TextComponent(s), err
}

// appendModifiedUTF8 encodes s the way Java's DataOutput.writeUTF does: NUL
// takes two bytes and supplementary characters are written as surrogate
// pairs of three bytes each.
func appendModifiedUTF8(dst []byte, s string) []byte {
	for _, u := range utf16.Encode([]rune(s)) {
		switch {
		case u != 0 && u < 0x80:
			dst = append(dst, byte(u))
		case u < 0x800:
			dst = append(dst, 0xC0|byte(u>>6), 0x80|byte(u&0x3F))
		default:
			dst = append(dst, 0xE0|byte(u>>12), 0x80|byte((u>>6)&0x3F), 0x80|byte(u&0x3F))
		}
	}
	return dst
}

func decodeModifiedUTF8(b []byte) (string, error) {
	units := make([]uint16, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c&0x80 == 0:
			units = append(units, uint16(c))
			i++
		case c&0xE0 == 0xC0:
			if i+1 >= len(b) || b[i+1]&0xC0 != 0x80 {
				return "", ErrMalformedModifiedUTF8
			}
			units = append(units, uint16(c&0x1F)<<6|uint16(b[i+1]&0x3F))
			i += 2
		case c&0xF0 == 0xE0:
			if i+2 >= len(b) || b[i+1]&0xC0 != 0x80 || b[i+2]&0xC0 != 0x80 {
				return "", ErrMalformedModifiedUTF8
			}
			units = append(units, uint16(c&0x0F)<<12|uint16(b[i+1]&0x3F)<<6|uint16(b[i+2]&0x3F))
			i += 3
		default:
			return "", ErrMalformedModifiedUTF8
		}
	}
	return string(utf16.Decode(units)), nil
}
