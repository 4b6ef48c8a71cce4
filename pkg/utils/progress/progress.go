package progress

import (
	"fmt"
	"io"
)

// Reporter prints a single in-place percentage line while bytes are written.
// When the total size is unknown (no Content-Length), the percentage step is
// skipped entirely and only the final byte count is reported.
type Reporter struct {
	out       io.Writer
	total     int64
	written   int64
	lastTenth int64
}

// New creates a reporter writing to out. total is the expected byte count,
// or a non-positive value if unknown.
func New(out io.Writer, total int64) *Reporter {
	if out == nil {
		out = io.Discard
	}
	return &Reporter{out: out, total: total, lastTenth: -1}
}

// Add records n more bytes written and reprints the percentage line whenever
// it advances by at least a tenth of a percent. Reaches exactly 100.0% when
// the written count equals the declared total.
func (r *Reporter) Add(n int) {
	r.written += int64(n)
	if r.total <= 0 {
		return
	}

	tenth := r.written * 1000 / r.total
	if tenth == r.lastTenth {
		return
	}
	r.lastTenth = tenth

	fmt.Fprintf(r.out, "\rProgress: %.1f%%", float64(r.written)/float64(r.total)*100)
}

// Finish terminates the progress line and prints the downloaded byte count
func (r *Reporter) Finish() {
	if r.total > 0 {
		fmt.Fprintln(r.out)
	}
	fmt.Fprintf(r.out, "Downloaded %s\n", FormatBytes(r.written))
}

// Written returns the bytes recorded so far
func (r *Reporter) Written() int64 {
	return r.written
}

// FormatBytes formats a byte count as a human-readable string
func FormatBytes(b int64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
	)

	switch {
	case b >= gb:
		return fmt.Sprintf("%.2f GB", float64(b)/float64(gb))
	case b >= mb:
		return fmt.Sprintf("%.2f MB", float64(b)/float64(mb))
	case b >= kb:
		return fmt.Sprintf("%.2f KB", float64(b)/float64(kb))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
