package packet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidIdentifier(t *testing.T) {
	cases := map[string]bool{
		"minecraft:brand":         true,
		"brand":                   true,
		"my_mod:items/iron-sword": true,
		"a.b:c.d":                 true,
		"Minecraft:brand":         false,
		":brand":                  false,
		"minecraft:":              false,
		"":                        false,
		"a:b:c":                   false,
		"ns/x:path":               false,
		"minecraft:white space":   false,
	}

	for s, want := range cases {
		assert.Equal(t, want, ValidIdentifier(s), "ValidIdentifier(%q)", s)
	}
}

func TestReadIdentifier(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteIdentifier(&buf, "minecraft:overworld"))

	r := NewFrameReader(buf.Bytes())
	got, err := ReadIdentifier(&r)
	require.NoError(t, err)
	assert.Equal(t, "minecraft:overworld", got)

	buf.Reset()
	require.NoError(t, WriteString(&buf, "Bad Identifier"))
	r = NewFrameReader(buf.Bytes())
	_, err = ReadIdentifier(&r)
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestWriteIdentifier(t *testing.T) {
	testCases := []TestCase[string]{
		{
			desc: "Namespaced",
			v:    "minecraft:brand",
			ser:  append([]byte{0x0f}, "minecraft:brand"...),
		},
		{
			desc: "Bare path",
			v:    "brand",
			ser:  append([]byte{0x05}, "brand"...),
		},
		{
			desc:      "Empty",
			expectErr: ErrInvalidIdentifier,
			v:         "",
		},
		{
			desc:      "Uppercase namespace",
			expectErr: ErrInvalidIdentifier,
			v:         "Minecraft:brand",
		},
		{
			desc:      "Too long",
			expectErr: ErrLengthExceedsLimit,
			v:         "a:" + strings.Repeat("b", MaxIdentifierLen),
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			var buf bytes.Buffer
			err := WriteIdentifier(&buf, tC.v)
			if tC.expectErr != nil {
				assert.ErrorIs(t, err, tC.expectErr)
				assert.Zero(t, buf.Len())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tC.ser, buf.Bytes())

			r := NewFrameReader(buf.Bytes())
			got, err := ReadIdentifier(&r)
			require.NoError(t, err)
			assert.Equal(t, tC.v, got)
		})
	}
}

func TestIdentifierPacketsEncodeOnlyWhatDecodes(t *testing.T) {
	reg, err := NewProtocolRegistry()
	require.NoError(t, err)
	d := NewDispatcher(reg, DefaultLimits())

	// a zero Channel is not an identifier and must fail before reaching the wire
	_, err = d.Encode(Clientbound, ConfigurationPhase, &PluginMessage{})
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
	_, err = d.Encode(Clientbound, ConfigurationPhase, &FeatureFlags{Flags: []string{"minecraft:vanilla", "Bad"}})
	assert.ErrorIs(t, err, ErrInvalidIdentifier)

	frame, err := d.Encode(Clientbound, ConfigurationPhase, &PluginMessage{Channel: "minecraft:brand", Data: []byte{1}})
	require.NoError(t, err)
	p, err := d.Decode(Clientbound, ConfigurationPhase, frame)
	require.NoError(t, err)
	assert.Equal(t, "minecraft:brand", p.(*PluginMessage).Channel)
}

func TestTextComponent(t *testing.T) {
	testCases := []TestCase[TextComponent]{
		{
			desc: "ASCII",
			v:    "hi",
			ser:  []byte{0x08, 0x00, 0x02, 'h', 'i'},
		},
		{
			desc: "Empty",
			v:    "",
			ser:  []byte{0x08, 0x00, 0x00},
		},
		{
			desc: "NUL takes two bytes",
			v:    "a\x00",
			ser:  []byte{0x08, 0x00, 0x03, 'a', 0xc0, 0x80},
		},
		{
			desc: "Two byte character",
			v:    "é",
			ser:  []byte{0x08, 0x00, 0x02, 0xc3, 0xa9},
		},
		{
			desc: "Supplementary character as surrogate pair",
			v:    "\U0001F389",
			ser:  []byte{0x08, 0x00, 0x06, 0xed, 0xa0, 0xbc, 0xed, 0xbe, 0x89},
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteTextComponent(&buf, tC.v))
			assert.Equal(t, tC.ser, buf.Bytes())

			r := NewFrameReader(tC.ser)
			got, err := ReadTextComponent(&r)
			require.NoError(t, err)
			assert.Equal(t, tC.v, got)
			assert.Zero(t, r.Remaining())
		})
	}
}

func TestReadTextComponentErrors(t *testing.T) {
	testCases := []TestCase[TextComponent]{
		{
			desc:      "Compound root",
			expectErr: ErrUnsupportedNBT,
			ser:       []byte{0x0a, 0x00},
		},
		{
			desc:      "Short payload",
			expectErr: ErrTruncatedPacket,
			ser:       []byte{0x08, 0x00, 0x05, 'a'},
		},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			r := NewFrameReader(tC.ser)
			_, err := ReadTextComponent(&r)
			require.Error(t, err)
			assert.Equal(t, ErrorKind(tC.expectErr), ErrorKind(err))
		})
	}

	r := NewFrameReader([]byte{0x08, 0x00, 0x01, 0xc0})
	_, err := ReadTextComponent(&r)
	assert.ErrorIs(t, err, ErrMalformedModifiedUTF8)
	assert.Equal(t, "invalid_field", ErrorKind(err))
}
