package mkrunkore

import (
	"bytes"
	"io"
	"sync"
)

// LineWriter writes each line it receives with a prefix to an underlying
// writer. Complete lines are written with a single Write call, so several
// LineWriters can share one underlying writer without tearing lines apart.
// Incomplete lines are held back until completed or flushed.
type LineWriter struct {
	w      io.Writer
	prefix []byte

	mu   sync.Mutex
	part []byte
}

func NewLineWriter(w io.Writer, prefix string) *LineWriter {
	return &LineWriter{w: w, prefix: []byte(prefix)}
}

func (lw *LineWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	for len(p) > 0 {
		nl := bytes.IndexByte(p, '\n')
		if nl < 0 {
			lw.part = append(lw.part, p...)
			return n + len(p), nil
		}
		nl++
		if err := lw.emit(p[:nl]); err != nil {
			return n, err
		}
		n += nl
		p = p[nl:]
	}
	return n, nil
}

// Flush writes a pending incomplete line terminated by a newline.
func (lw *LineWriter) Flush() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if len(lw.part) == 0 {
		return nil
	}
	return lw.emit([]byte{'\n'})
}

func (lw *LineWriter) emit(tail []byte) error {
	line := make([]byte, 0, len(lw.prefix)+len(lw.part)+len(tail))
	line = append(line, lw.prefix...)
	line = append(line, lw.part...)
	line = append(line, tail...)
	lw.part = lw.part[:0]
	_, err := lw.w.Write(line)
	return err
}
