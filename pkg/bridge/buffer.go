package bridge

import "github.com/pkg/errors"

// ErrCapacity indicates the output would exceed the caller's buffer
var ErrCapacity = errors.New("output exceeds buffer capacity")

// boundedWriter writes into a caller-owned fixed-size buffer. Capacity is
// verified before any byte is written, so a failed write leaves the buffer
// entirely untouched.
type boundedWriter struct {
	dst []byte
}

func newBoundedWriter(dst []byte) *boundedWriter {
	return &boundedWriter{dst: dst}
}

// writeString copies s plus a NUL terminator into the buffer and returns
// the number of payload bytes written. Returns ErrCapacity without writing
// anything when s and its terminator do not fit.
func (w *boundedWriter) writeString(s string) (int, error) {
	if len(s)+1 > len(w.dst) {
		return 0, errors.Wrapf(ErrCapacity, "needed %d, available %d", len(s)+1, len(w.dst))
	}

	n := copy(w.dst, s)
	w.dst[n] = 0

	return n, nil
}
