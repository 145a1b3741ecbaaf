package pdfdoc

import (
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"alquilerdocs/internal/imgfetch"
)

// ---------------------------------------------------------------------------
// Composer
// ---------------------------------------------------------------------------

// Composer renders complete documents as fixed pipelines of blocks. Each
// render owns its page state exclusively, so one composer may serve
// concurrent renders.
type Composer struct {
	Fetcher *imgfetch.Fetcher
	Log     *log.Logger

	// Now supplies the render clock; override in tests for reproducible
	// output bytes.
	Now func() time.Time
}

// NewComposer wires a composer with the given image fetcher and logger.
func NewComposer(fetcher *imgfetch.Fetcher, logger *log.Logger) *Composer {
	return &Composer{Fetcher: fetcher, Log: logger, Now: time.Now}
}

// File is a finished document ready to be saved, attached or shared.
type File struct {
	Name string
	Data []byte
}

// referenceID generates a structured document reference number, e.g.
// CT-2026-08-A7K2 for contracts or AN-2026-08-X301 for listings. The
// suffix is derived from the subject and the render clock rather than
// drawn randomly so that identical input renders identical documents.
func referenceID(kind, subject string, t time.Time) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	h := fnv.New32a()
	fmt.Fprintf(h, "%s|%s|%d", kind, subject, t.Unix())
	sum := h.Sum32()

	b := make([]byte, 4)
	for i := range b {
		b[i] = charset[sum%uint32(len(charset))]
		sum /= uint32(len(charset))
	}

	return fmt.Sprintf("%s-%d-%02d-%s", kind, t.Year(), t.Month(), string(b))
}

// fileSegment turns a display name into a filename segment.
func fileSegment(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return strings.Join(strings.Fields(s), "_")
}
