package pdfdoc

import (
	"bytes"
	"strconv"

	"github.com/go-pdf/fpdf"

	"alquilerdocs/internal/imgfetch"
	"alquilerdocs/internal/layout"
)

// ---------------------------------------------------------------------------
// Block renderers
// ---------------------------------------------------------------------------
//
// Every block draws at the current cursor position, advances the cursor by
// the height it consumed and returns that height.

const (
	sectionHeaderHeight = 12
	paragraphTrailing   = 2
)

// SectionHeader draws a primary-colored section title with a decorative
// underline that fades into a thin gray rule across the page.
func (d *Doc) SectionHeader(title string) float64 {
	d.ensure(sectionHeaderHeight + 10)
	y := d.cur.Y

	d.setFont("B", sizeSection)
	d.setTextColor(colorPrimary)
	d.text(d.margin, y, title)

	titleWidth := d.pdf.GetStringWidth(d.tr(title))
	d.setDrawColor(colorPrimary)
	d.pdf.SetLineWidth(1.2)
	d.pdf.Line(d.margin, y+3, d.margin+titleWidth, y+3)

	d.setDrawColor(colorLightGray)
	d.pdf.SetLineWidth(0.5)
	d.pdf.Line(d.margin+titleWidth+5, y+3, d.pageWidth()-d.margin, y+3)

	d.advance(sectionHeaderHeight)
	return sectionHeaderHeight
}

// Heading draws a bold one-line heading in the dark text color.
func (d *Doc) Heading(title string, size float64) float64 {
	height := size*0.5 + 3
	d.ensure(height + 10)
	d.setFont("B", size)
	d.setTextColor(colorDark)
	d.text(d.margin, d.cur.Y+size*0.4, title)
	d.advance(height)
	return height
}

// Paragraph word-wraps text against maxWidth at the given size and draws
// the resulting lines. A paragraph that fits on one page is kept together;
// one taller than a whole page overflows the boundary rather than failing.
func (d *Doc) Paragraph(text string, maxWidth, fontSize float64, color RGB, style string) float64 {
	d.setFont(style, fontSize)
	d.setTextColor(color)

	lineHeight := fontSize * 0.4
	lines := d.pdf.SplitText(d.tr(text), maxWidth)
	height := float64(len(lines))*lineHeight + paragraphTrailing

	if d.cur.WillOverflow(height) && height <= d.cur.PageBottom-d.cur.PageTop {
		d.newPage()
	}
	y := d.cur.Y + lineHeight
	for _, line := range lines {
		d.pdf.Text(d.margin, y, line)
		y += lineHeight
	}
	d.advance(height)
	return height
}

// BodyParagraph is the common body-text paragraph across the content width.
func (d *Doc) BodyParagraph(text string) float64 {
	return d.Paragraph(text, d.contentWidth(), sizeBody, colorDark, "")
}

// Box positions a block drawn at explicit coordinates.
type Box struct {
	X, Y, W, H float64
}

// LabeledInfoBox draws a rounded tile with a colored accent bar on the
// left edge, a small label in the accent color, a large value and an
// optional subtext clipped to one line inside the box. It draws at the
// given box; the composer advances the cursor for the whole tile row.
func (d *Doc) LabeledInfoBox(label, value, subtext string, accent RGB, box Box) {
	d.setFillColor(colorLightGray)
	d.pdf.RoundedRect(box.X, box.Y, box.W, box.H, 3, "1234", "F")

	d.setFillColor(accent)
	d.pdf.Rect(box.X, box.Y, 1.5, box.H, "F")

	d.setFont("B", sizeTiny)
	d.setTextColor(accent)
	d.text(box.X+6, box.Y+8, label)

	d.setFont("B", 14)
	d.setTextColor(colorDark)
	d.text(box.X+6, box.Y+19, value)

	if subtext != "" {
		d.setFont("", 7)
		d.setTextColor(colorGray)
		lines := d.pdf.SplitText(d.tr(subtext), box.W-10)
		if len(lines) > 0 {
			d.pdf.Text(box.X+6, box.Y+28, lines[0])
		}
	}
}

// PhotoGrid lays out images in a fixed-column grid, fitting each image
// into its cell with the aspect-preserving fitter. Each row is checked
// against the remaining page space before it is drawn; a row that would
// not fit starts on a fresh page, so a single photo never straddles two.
func (d *Doc) PhotoGrid(images []*imgfetch.Image, columns int, gap, maxCellHeight float64) float64 {
	if len(images) == 0 || columns < 1 {
		return 0
	}
	cellWidth := (d.contentWidth() - float64(columns-1)*gap) / float64(columns)
	consumed := 0.0

	for start := 0; start < len(images); start += columns {
		row := images[start:min(start+columns, len(images))]

		rowHeight := 0.0
		for _, img := range row {
			_, h := layout.FitImage(float64(img.Width), float64(img.Height), cellWidth, maxCellHeight)
			rowHeight = max(rowHeight, h)
		}

		d.ensure(rowHeight + gap)
		for i, img := range row {
			w, h := layout.FitImage(float64(img.Width), float64(img.Height), cellWidth, maxCellHeight)
			x := d.margin + float64(i)*(cellWidth+gap) + (cellWidth-w)/2
			d.drawImage(img, x, d.cur.Y, w, h)

			d.setDrawColor(colorLightGray)
			d.pdf.SetLineWidth(0.5)
			d.pdf.RoundedRect(x, d.cur.Y, w, h, 3, "1234", "D")
		}
		d.advance(rowHeight + gap)
		consumed += rowHeight + gap
	}
	return consumed
}

// SignatureBlock draws the two signature rules with their labels and
// names, anchored near the page bottom. When the remaining space cannot
// hold it the whole block moves to a new page.
func (d *Doc) SignatureBlock(leftLabel, leftName, rightLabel, rightName string) float64 {
	const blockHeight = 50
	d.ensure(blockHeight)

	// Anchor at the bottom unless content already reaches lower.
	y := max(d.cur.Y, d.cur.PageBottom-blockHeight)
	lineY := y + 25
	ruleWidth := 70.0

	d.setDrawColor(colorGray)
	d.pdf.SetLineWidth(0.5)
	d.pdf.Line(d.margin, lineY, d.margin+ruleWidth, lineY)
	d.pdf.Line(d.pageWidth()-d.margin-ruleWidth, lineY, d.pageWidth()-d.margin, lineY)

	d.setFont("B", sizeSmall)
	d.setTextColor(colorDark)
	d.text(d.margin, lineY+10, leftLabel)
	d.text(d.pageWidth()-d.margin-ruleWidth, lineY+10, rightLabel)

	d.setFont("", sizeSmall)
	d.setTextColor(colorGray)
	d.text(d.margin, lineY+17, leftName)
	d.text(d.pageWidth()-d.margin-ruleWidth, lineY+17, rightName)

	d.cur.Y = y
	d.advance(blockHeight)
	return blockHeight
}

// BulletList draws items as primary-colored bullets with wrapped text.
// Each item is measured before it is placed so a wrapped item never
// straddles the page break.
func (d *Doc) BulletList(items []string) float64 {
	const lineHeight = sizeBody * 0.4
	consumed := 0.0
	for _, item := range items {
		d.setFont("", sizeBody)
		lines := d.pdf.SplitText(d.tr(item), d.contentWidth()-8)
		height := float64(len(lines))*lineHeight + 3
		d.ensure(height)

		d.setFillColor(colorPrimary)
		d.pdf.Circle(d.margin+1.5, d.cur.Y+2.5, 1.2, "F")

		d.setTextColor(colorDark)
		y := d.cur.Y + lineHeight
		for _, line := range lines {
			d.pdf.Text(d.margin+8, y, line)
			y += lineHeight
		}
		d.advance(height)
		consumed += height
	}
	return consumed
}

// FeatureChips draws up to five rounded feature badges in one row.
func (d *Doc) FeatureChips(features []string) float64 {
	if len(features) == 0 {
		return 0
	}
	const chipHeight, chipRowHeight = 9.0, 14.0
	d.ensure(chipRowHeight)

	x := d.margin
	d.setFont("", sizeBody)
	for i, feat := range features {
		if i >= 5 {
			break
		}
		label := d.tr(feat)
		chipWidth := d.pdf.GetStringWidth(label) + 8

		d.setFillColor(colorLightGray)
		d.pdf.RoundedRect(x, d.cur.Y, chipWidth, chipHeight, 3, "1234", "F")

		d.setTextColor(colorDark)
		d.pdf.Text(x+4, d.cur.Y+6, label)
		x += chipWidth + 4
	}
	d.advance(chipRowHeight)
	return chipRowHeight
}

// drawImage registers and places one fetched image.
func (d *Doc) drawImage(img *imgfetch.Image, x, y, w, h float64) {
	d.imgSeq++
	name := imageName(d.imgSeq)
	opts := fpdf.ImageOptions{ImageType: img.Format}
	d.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Data))
	d.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}

func imageName(seq int) string {
	return "photo-" + strconv.Itoa(seq)
}
