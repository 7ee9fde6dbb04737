package mcwire

import (
	"errors"
	"fmt"
	"io"

	"github.com/gstoney/mcwire/packet"
)

var (
	ErrNotExhausted        = errors.New("payload not exhausted")
	ErrInvalidFrameLength  = errors.New("invalid frame length")
	ErrZlibPayloadOverrun  = errors.New("zlib stream exceeds declared payload length")
	ErrZlibPayloadUnderrun = errors.New("zlib stream shorter than declared payload length")
	ErrZlibTrailingData    = errors.New("trailing data in frame after zlib stream ends")
)

// PayloadReader gives access to one packet's payload: the bytes after the
// frame length and, with compression on, after the data length.
//
// Close checks that the payload and its frame were consumed exactly and
// leaves the stream where it is on error. Discard drops whatever is left of
// the frame so the next Recv starts on a frame boundary.
type PayloadReader interface {
	io.ReadCloser
	Skip() (n int32, err error)
	Discard() (n int32, err error)
	Remaining() int32
}

// boundedRead reads at most *left bytes from r into p. Running out of input
// while bytes are still owed reports short.
func boundedRead(r io.Reader, p []byte, left *int32, short error) (int, error) {
	if *left <= 0 {
		return 0, io.EOF
	}
	if int32(len(p)) > *left {
		p = p[:*left]
	}

	n, err := r.Read(p)
	*left -= int32(n)
	if err == io.EOF && *left > 0 {
		err = short
	}
	return n, err
}

func drain(r io.Reader, n int32) (int32, error) {
	skipped, err := io.CopyN(io.Discard, r, int64(n))
	return int32(skipped), err
}

// frameStream tracks the frame currently being read off a byte stream.
type frameStream struct {
	src  byteReader
	left int32
}

// next reads the length prefix of the next frame. io.EOF is passed through
// when the stream ends between frames.
func (f *frameStream) next() (int32, error) {
	if f.left > 0 {
		return f.left, ErrNotExhausted
	}

	n, err := packet.ReadVarInt(f.src)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidFrameLength, n)
	}
	f.left = n
	return n, nil
}

func (f *frameStream) Read(p []byte) (int, error) {
	return boundedRead(f.src, p, &f.left, io.ErrUnexpectedEOF)
}

func (f *frameStream) ReadByte() (byte, error) {
	if f.left <= 0 {
		return 0, io.EOF
	}

	b, err := f.src.ReadByte()
	switch err {
	case nil:
		f.left--
	case io.EOF:
		err = io.ErrUnexpectedEOF
	}
	return b, err
}

func (f *frameStream) skip() (int32, error) {
	return drain(f, f.left)
}

// rawPayload is a frame read as is, either with compression off or with a
// data length of zero.
type rawPayload struct {
	frame *frameStream
}

func (p rawPayload) Read(b []byte) (int, error) { return p.frame.Read(b) }
func (p rawPayload) Remaining() int32           { return p.frame.left }
func (p rawPayload) Skip() (int32, error)       { return p.frame.skip() }
func (p rawPayload) Discard() (int32, error)    { return p.frame.skip() }

func (p rawPayload) Close() error {
	if p.frame.left > 0 {
		return ErrNotExhausted
	}
	return nil
}

// zlibPayload inflates a compressed frame. left counts inflated bytes still
// owed against the declared data length.
type zlibPayload struct {
	z     io.ReadCloser
	frame *frameStream
	left  int32
}

func (p *zlibPayload) Read(b []byte) (int, error) {
	return boundedRead(p.z, b, &p.left, ErrZlibPayloadUnderrun)
}

func (p *zlibPayload) Remaining() int32 { return p.left }

func (p *zlibPayload) Skip() (int32, error) {
	return drain(p, p.left)
}

func (p *zlibPayload) Discard() (int32, error) {
	p.left = 0
	return p.frame.skip()
}

func (p *zlibPayload) Close() error {
	if p.left > 0 {
		return ErrNotExhausted
	}

	// the stream must end exactly at the declared length
	var extra [1]byte
	n, err := p.z.Read(extra[:])
	switch {
	case n > 0 || err == nil:
		return ErrZlibPayloadOverrun
	case err != io.EOF:
		return err
	case p.frame.left > 0:
		return ErrZlibTrailingData
	}
	return p.z.Close()
}
