// Package imgfetch retrieves listing photos for embedding into PDF output.
// Sources are arbitrary URLs or inline data URIs; a single unreachable or
// undecodable image is reported to the caller (and skipped there), never
// allowed to abort a document render.
package imgfetch

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/http"
	"strings"
	"time"

	_ "image/gif"
	_ "image/png"

	"github.com/charmbracelet/log"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"alquilerdocs/internal/docmodel"
)

// ---------------------------------------------------------------------------
// Fetcher
// ---------------------------------------------------------------------------

const (
	// DefaultTimeout bounds a single image fetch so one hung request
	// cannot stall the whole render.
	DefaultTimeout = 8 * time.Second

	// DefaultMaxParallel bounds concurrent fetches.
	DefaultMaxParallel = 4

	// maxImageBytes caps the size of a single source image.
	maxImageBytes = 20 << 20

	// maxEmbedPx caps the pixel width of embedded images; larger sources
	// are downscaled so flyers with phone photos stay small.
	maxEmbedPx = 1600
)

// Image is a fetched, embeddable photo. Format is the registry type the
// PDF backend expects ("JPG", "PNG" or "GIF"); Width and Height are native
// pixel dimensions.
type Image struct {
	URL    string
	Data   []byte
	Format string
	Width  int
	Height int
}

// Fetcher downloads and normalizes images with a per-image timeout.
type Fetcher struct {
	Client      *http.Client
	Timeout     time.Duration
	MaxParallel int
	Log         *log.Logger
}

// New returns a fetcher with the given limits; zero values fall back to
// the package defaults.
func New(timeout time.Duration, maxParallel int, logger *log.Logger) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxParallel <= 0 {
		maxParallel = DefaultMaxParallel
	}
	return &Fetcher{
		Client:      &http.Client{},
		Timeout:     timeout,
		MaxParallel: maxParallel,
		Log:         logger,
	}
}

// Fetch retrieves one image from a URL or data URI and normalizes it for
// embedding. Sources that are not JPEG, PNG or GIF (or that exceed
// maxEmbedPx in width) are re-encoded as JPEG.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Image, error) {
	if url == "" {
		return nil, fmt.Errorf("empty image reference")
	}

	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(url, "data:") {
		data, err = decodeDataURI(url)
	} else {
		data, err = f.fetchHTTP(ctx, url)
	}
	if err != nil {
		return nil, err
	}

	img, err := normalize(data)
	if err != nil {
		return nil, fmt.Errorf("image %s: %w", url, err)
	}
	img.URL = url
	return img, nil
}

// FetchAll retrieves images for the given photo references with bounded
// parallelism, preserving the display order. Failed fetches are logged and
// omitted from the result; the error case is absorbed here because layout
// continues without the image.
func (f *Fetcher) FetchAll(ctx context.Context, refs []docmodel.PhotoRef) []*Image {
	results := make([]*Image, len(refs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.MaxParallel)
	for i, ref := range refs {
		g.Go(func() error {
			img, err := f.Fetch(gctx, ref.URL)
			if err != nil {
				f.warnf("skipping image: %v", err)
				return nil
			}
			results[i] = img
			return nil
		})
	}
	g.Wait()

	fetched := make([]*Image, 0, len(refs))
	for _, img := range results {
		if img != nil {
			fetched = append(fetched, img)
		}
	}
	return fetched
}

func (f *Fetcher) fetchHTTP(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, f.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("image %s: %w", url, err)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image %s: unexpected status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("image %s: %w", url, err)
	}
	if len(data) > maxImageBytes {
		return nil, fmt.Errorf("image %s: exceeds %d byte limit", url, maxImageBytes)
	}
	return data, nil
}

func (f *Fetcher) warnf(format string, args ...any) {
	if f.Log != nil {
		f.Log.Warnf(format, args...)
	}
}

// ---------------------------------------------------------------------------
// Decoding helpers
// ---------------------------------------------------------------------------

// fpdf image registry types by image package format name.
var embedFormats = map[string]string{
	"jpeg": "JPG",
	"png":  "PNG",
	"gif":  "GIF",
}

// normalize decodes the image dimensions and re-encodes sources the PDF
// backend cannot embed directly.
func normalize(data []byte) (*Image, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("not a decodable image: %w", err)
	}

	if embedFormat, ok := embedFormats[format]; ok && cfg.Width <= maxEmbedPx {
		return &Image{Data: data, Format: embedFormat, Width: cfg.Width, Height: cfg.Height}, nil
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s image: %w", format, err)
	}
	return reencode(src)
}

// reencode downscales to maxEmbedPx width when needed and writes JPEG.
func reencode(src image.Image) (*Image, error) {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxEmbedPx {
		scaledH := h * maxEmbedPx / w
		dst := image.NewRGBA(image.Rect(0, 0, maxEmbedPx, scaledH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src, w, h = dst, maxEmbedPx, scaledH
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: 85}); err != nil {
		return nil, fmt.Errorf("re-encoding image: %w", err)
	}
	return &Image{Data: buf.Bytes(), Format: "JPG", Width: w, Height: h}, nil
}

// decodeDataURI handles inline "data:image/...;base64,..." references.
func decodeDataURI(uri string) ([]byte, error) {
	meta, payload, ok := strings.Cut(uri, ",")
	if !ok {
		return nil, fmt.Errorf("malformed data URI")
	}
	if !strings.HasSuffix(meta, ";base64") {
		return nil, fmt.Errorf("unsupported data URI encoding in %q", meta)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decoding data URI: %w", err)
	}
	return data, nil
}
