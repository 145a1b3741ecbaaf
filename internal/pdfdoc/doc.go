// Package pdfdoc draws rental contracts and room-listing flyers as PDF
// documents. Semantic blocks (headings, paragraphs, info boxes, photo
// grids, signature lines) are placed sequentially down the page by an
// explicit layout cursor; a block that would not fit forces a page break
// first, so no block is ever split across pages.
package pdfdoc

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"alquilerdocs/internal/layout"
)

// ---------------------------------------------------------------------------
// Palette and type scale
// ---------------------------------------------------------------------------

// RGB is a display color.
type RGB struct {
	R, G, B int
}

var (
	colorPrimary   = RGB{41, 98, 255}
	colorSecondary = RGB{99, 102, 241}
	colorAccent    = RGB{16, 185, 129}
	colorDark      = RGB{17, 24, 39}
	colorGray      = RGB{107, 114, 128}
	colorLightGray = RGB{243, 244, 246}
	colorWhite     = RGB{255, 255, 255}
	colorBlack     = RGB{0, 0, 0}
)

const (
	sizeTitle    = 22
	sizeHeroName = 24
	sizeHeading  = 13
	sizeSection  = 12
	sizeBody     = 10
	sizeSmall    = 9
	sizeTiny     = 8
)

// ---------------------------------------------------------------------------
// Document
// ---------------------------------------------------------------------------

// Doc wraps an A4 portrait PDF page series with the layout cursor that
// decides its page breaks. One Doc belongs to one render.
type Doc struct {
	pdf    *fpdf.Fpdf
	cur    layout.Cursor
	tr     func(string) string
	margin float64
	imgSeq int
}

// newDoc starts a document with the given page margin (mm) and a pinned
// creation date so identical inputs produce identical bytes.
func newDoc(margin float64, now time.Time) *Doc {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(now)
	// Page breaks are the cursor's decision, not fpdf's.
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont("Helvetica", "", sizeBody)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	return &Doc{
		pdf:    pdf,
		cur:    layout.NewCursor(pageW, pageH, margin, margin),
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		margin: margin,
	}
}

func (d *Doc) pageWidth() float64    { return d.cur.PageWidth }
func (d *Doc) pageHeight() float64   { return d.cur.PageHeight }
func (d *Doc) contentWidth() float64 { return d.cur.PageWidth - 2*d.margin }

// ensure forces a page break when fewer than needed millimeters remain,
// keeping the upcoming visual group on one page.
func (d *Doc) ensure(needed float64) {
	if d.cur.WillOverflow(needed) {
		d.newPage()
	}
}

// advance moves the cursor down, appending a page when it overflows.
func (d *Doc) advance(consumed float64) {
	if d.cur.Advance(consumed) {
		d.pdf.AddPage()
	}
}

// newPage appends a page and resets the cursor to the top margin.
func (d *Doc) newPage() {
	d.pdf.AddPage()
	d.cur.Break()
}

// setFont selects a core font style: "" regular, "B" bold, "I" italic.
func (d *Doc) setFont(style string, size float64) {
	d.pdf.SetFont("Helvetica", style, size)
}

func (d *Doc) setTextColor(c RGB) { d.pdf.SetTextColor(c.R, c.G, c.B) }
func (d *Doc) setFillColor(c RGB) { d.pdf.SetFillColor(c.R, c.G, c.B) }
func (d *Doc) setDrawColor(c RGB) { d.pdf.SetDrawColor(c.R, c.G, c.B) }

// text draws a single line with its baseline at y.
func (d *Doc) text(x, y float64, s string) {
	d.pdf.Text(x, y, d.tr(s))
}

// textCentered centers a single line around x.
func (d *Doc) textCentered(x, y float64, s string) {
	t := d.tr(s)
	d.pdf.Text(x-d.pdf.GetStringWidth(t)/2, y, t)
}

// textRight right-aligns a single line against x.
func (d *Doc) textRight(x, y float64, s string) {
	t := d.tr(s)
	d.pdf.Text(x-d.pdf.GetStringWidth(t), y, t)
}

// output finalizes the document.
func (d *Doc) output() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}
