package mcwire

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/gstoney/mcwire/packet"
)

var (
	ErrPacketTooBig       = errors.New("packet too big")
	ErrInvalidDataLength  = errors.New("invalid data length")
	ErrCompressionTooWeak = errors.New("compressed packet below threshold")
)

// TransportConfig bounds what a peer may make the transport read.
type TransportConfig struct {
	MaxPacketLen       int32 // frame bytes, after the length prefix
	MaxDecompressedLen int32 // payload bytes of a compressed frame
}

// DefaultTransportConfig matches the vanilla limits: a three byte frame
// length and 8 MiB of inflated payload.
func DefaultTransportConfig() TransportConfig {
	return TransportConfig{
		MaxPacketLen:       1<<21 - 1,
		MaxDecompressedLen: 1 << 23,
	}
}

type byteReader interface {
	io.Reader
	io.ByteReader
}

type byteWriter interface {
	io.Writer
	io.ByteWriter
}

// Transport provides read and write access to a framed stream, with
// compression handled internally. Transport does not deserialize packets.
//
// A Transport is owned by one connection and is not safe for concurrent use.
type Transport struct {
	writer byteWriter

	frame   frameStream
	zReader io.ReadCloser

	zBuffer bytes.Buffer
	zWriter *zlib.Writer

	// CompressionThreshold is the smallest payload that is sent compressed.
	// A negative value disables compression on both directions.
	CompressionThreshold int

	cfg TransportConfig
}

// NewTransport creates a Transport.
//
// For readers/writers that perform syscalls (e.g. net.Conn), buffering is
// required. Indicate buffered I/O by implementing io.ByteReader/io.ByteWriter.
// If these interfaces are not implemented, the reader/writer will be wrapped
// with bufio.
func NewTransport(r io.Reader, w io.Writer, cfg TransportConfig) *Transport {
	var br byteReader
	var bw byteWriter

	if b, ok := r.(byteReader); ok {
		br = b
	} else if r != nil {
		br = bufio.NewReader(r)
	}

	if b, ok := w.(byteWriter); ok {
		bw = b
	} else if w != nil {
		bw = bufio.NewWriter(w)
	}

	return &Transport{
		writer:               bw,
		frame:                frameStream{src: br},
		CompressionThreshold: -1,
		cfg:                  cfg,
	}
}

// Recv starts reading the next frame. The previous payload must have been
// closed or discarded.
func (t *Transport) Recv() (r PayloadReader, err error) {
	frameLength, err := t.frame.next()
	if err != nil {
		return nil, err
	}

	if frameLength > t.cfg.MaxPacketLen {
		return nil, fmt.Errorf("%w: frame of %d bytes", ErrPacketTooBig, frameLength)
	}

	if t.CompressionThreshold < 0 {
		return rawPayload{&t.frame}, nil
	}

	dataLen, err := packet.ReadVarInt(&t.frame)
	if err != nil {
		return nil, err
	}

	switch {
	case dataLen == 0:
		return rawPayload{&t.frame}, nil
	case dataLen < 0:
		return nil, fmt.Errorf("%w: %d", ErrInvalidDataLength, dataLen)
	case dataLen > t.cfg.MaxDecompressedLen:
		return nil, fmt.Errorf("%w: inflates to %d bytes", ErrPacketTooBig, dataLen)
	case int(dataLen) < t.CompressionThreshold:
		return nil, fmt.Errorf("%w: %d < %d", ErrCompressionTooWeak, dataLen, t.CompressionThreshold)
	}

	if t.zReader == nil {
		t.zReader, err = zlib.NewReader(&t.frame)
	} else {
		err = t.zReader.(zlib.Resetter).Reset(&t.frame, nil)
	}
	if err != nil {
		return nil, err
	}

	return &zlibPayload{t.zReader, &t.frame, dataLen}, nil
}

// ReadFrame receives the next frame and returns its whole payload. A payload
// that fails to read is discarded so the stream stays aligned.
func (t *Transport) ReadFrame() ([]byte, error) {
	pr, err := t.Recv()
	if err != nil {
		return nil, err
	}

	b := make([]byte, pr.Remaining())
	if _, err = io.ReadFull(pr, b); err == nil {
		err = pr.Close()
	}
	if err != nil {
		pr.Discard()
		return nil, err
	}
	return b, nil
}

// Send writes b as one frame and flushes it.
func (t *Transport) Send(b []byte) (err error) {
	switch {
	case t.CompressionThreshold < 0:
		err = t.writeFrame(nil, b)
	case len(b) < t.CompressionThreshold:
		// data length 0 marks an uncompressed payload
		err = t.writeFrame([]byte{0}, b)
	default:
		err = t.sendCompressed(b)
	}
	if err != nil {
		return
	}
	return t.flush()
}

func (t *Transport) writeFrame(prefix, b []byte) (err error) {
	if err = packet.WriteVarInt(t.writer, int32(len(prefix)+len(b))); err != nil {
		return
	}
	if _, err = t.writer.Write(prefix); err != nil {
		return
	}
	_, err = t.writer.Write(b)
	return
}

func (t *Transport) sendCompressed(b []byte) (err error) {
	t.zBuffer.Reset()
	if t.zWriter == nil {
		t.zWriter = zlib.NewWriter(&t.zBuffer)
	} else {
		t.zWriter.Reset(&t.zBuffer)
	}

	if _, err = t.zWriter.Write(b); err != nil {
		return
	}
	if err = t.zWriter.Close(); err != nil {
		return
	}

	var dataLen [packet.MaxVarIntLen]byte
	return t.writeFrame(packet.AppendVarInt(dataLen[:0], int32(len(b))), t.zBuffer.Bytes())
}

func (t *Transport) flush() error {
	if f, ok := t.writer.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}
