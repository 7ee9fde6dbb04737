package packet

import "io"

// Limits bounds the length prefixes a decoder will honour, so that a hostile
// length field cannot make it allocate more than the frame could ever hold.
type Limits struct {
	MaxStringLen    int32 // bytes
	MaxByteArrayLen int32 // bytes
	MaxArrayLen     int32 // elements
}

// DefaultLimits mirrors the vanilla server: 32767 UTF-16 units per string
// (at most 3 UTF-8 bytes each) and a 2 MiB packet.
func DefaultLimits() Limits {
	return Limits{
		MaxStringLen:    32767 * 3,
		MaxByteArrayLen: 1 << 21,
		MaxArrayLen:     1 << 16,
	}
}

// Reader is what field decoders read from.
type Reader interface {
	io.ByteReader
	Read(n int) ([]byte, error)
	Remaining() int
	Limits() Limits
}

// FrameReader reads fields out of one complete, already unframed packet.
// Slices returned by Read alias the frame.
type FrameReader struct {
	buf    []byte
	off    int
	limits Limits
}

func NewFrameReader(buf []byte) FrameReader {
	return FrameReader{
		buf:    buf,
		off:    0,
		limits: DefaultLimits(),
	}
}

// WithLimits returns a copy of r that enforces l.
func (r FrameReader) WithLimits(l Limits) FrameReader {
	r.limits = l
	return r
}

func (r FrameReader) Limits() Limits {
	return r.limits
}

func (r FrameReader) Remaining() int {
	return len(r.buf) - r.off
}

// Consumed reports how many bytes have been read so far.
func (r FrameReader) Consumed() int {
	return r.off
}

func (r *FrameReader) ReadByte() (byte, error) {
	if r.off >= len(r.buf) {
		return 0, io.ErrUnexpectedEOF
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

func (r *FrameReader) Read(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	if n > r.Remaining() {
		return nil, io.ErrUnexpectedEOF
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}
