package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
	"unicode/utf8"
)

// RawLogger receives raw store traffic. in is true for data read from the
// store, false for data written to it.
type RawLogger interface {
	Log(in bool, data []byte)
}

// MaxRawPayload caps how many bytes of one record are written.
const MaxRawPayload = 4096

type rawLogger struct {
	w   io.Writer
	now func() time.Time
	mu  sync.Mutex
}

// NewRaw creates a RawLogger writing to w. A nil w discards everything.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w, now: time.Now}
}

// Log writes one line: timestamp, direction, length and the payload. Payloads
// that are not valid UTF-8 are hex encoded.
func (r *rawLogger) Log(in bool, data []byte) {
	if len(data) == 0 || r.w == nil {
		return
	}

	dir := "store->"
	if in {
		dir = "<-store"
	}

	payload := data
	truncated := false
	if len(payload) > MaxRawPayload {
		payload = payload[:MaxRawPayload]
		truncated = true
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %s %d bytes: ", r.now().Format("2006/01/02 15:04:05"), dir, len(data))
	if utf8.Valid(payload) {
		buf.Write(bytes.ReplaceAll(payload, []byte("\n"), []byte(`\n`)))
	} else {
		const hexdigits = "0123456789abcdef"
		for i, b := range payload {
			if i > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteByte(hexdigits[b>>4])
			buf.WriteByte(hexdigits[b&0x0f])
		}
	}
	if truncated {
		buf.WriteString(" ...")
	}
	buf.WriteByte('\n')

	r.mu.Lock()
	_, _ = r.w.Write(buf.Bytes())
	r.mu.Unlock()
}
