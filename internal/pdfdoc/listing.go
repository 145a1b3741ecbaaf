package pdfdoc

import (
	"context"
	"fmt"
	"strings"

	"alquilerdocs/internal/docmodel"
	"alquilerdocs/internal/esformat"
	"alquilerdocs/internal/imgfetch"
	"alquilerdocs/internal/layout"
)

// ---------------------------------------------------------------------------
// Listing composer
// ---------------------------------------------------------------------------

const (
	listingMargin   = 12
	heroMaxHeight   = 120
	heroMinHeight   = 60
	galleryColumns  = 3
	galleryMaxRows  = 2
	galleryCellGap  = 6
	galleryCellMaxH = 50
	commonCellMaxH  = 45
	commonMaxGroups = 4
)

// Listing renders a room-listing flyer: hero with price badge, feature
// chips, description, photo galleries, the rental-terms panel, location
// and a contact footer. Photos that cannot be fetched are omitted; the
// rest of the flyer renders regardless.
func (c *Composer) Listing(ctx context.Context, data *docmodel.RoomListingData) (*File, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}

	now := c.Now()
	d := newDoc(listingMargin, now)

	var hero *imgfetch.Image
	var gallery []*imgfetch.Image
	if c.Fetcher != nil && len(data.Photos) > 0 {
		img, err := c.Fetcher.Fetch(ctx, data.Photos[0].URL)
		if err != nil {
			c.warnf("hero image unavailable: %v", err)
		} else {
			hero = img
		}
		// The first photo is the hero; the rest fill the gallery.
		gallery = c.Fetcher.FetchAll(ctx, data.Photos[1:])
	}

	heroHeight := c.listingHero(d, data, hero)
	d.cur.Y = heroHeight + 15

	d.FeatureChips(detectFeatures(data))
	d.advance(6)

	if strings.TrimSpace(data.Description) != "" {
		d.Heading("Sobre la habitación", sizeHeading)
		d.Paragraph(data.Description, d.contentWidth(), sizeBody, colorGray, "")
		d.advance(6)
	}

	if len(gallery) > 0 {
		d.Heading("Galería", sizeHeading)
		limit := min(len(gallery), galleryColumns*galleryMaxRows)
		d.PhotoGrid(gallery[:limit], galleryColumns, galleryCellGap, galleryCellMaxH)
		d.advance(4)
	}

	c.listingCommonRooms(ctx, d, data)
	c.listingTermsPanel(d, data)

	if data.PropertyAddress != "" {
		d.ensure(30)
		d.Heading("Ubicación", sizeHeading)
		d.Paragraph(data.PropertyAddress, d.contentWidth(), sizeBody, colorGray, "")
	}

	c.listingContactFooter(d, data)

	out, err := d.output()
	if err != nil {
		return nil, err
	}

	subject := data.LocationShort()
	if subject == "" {
		subject = data.RoomName
	}
	name := fmt.Sprintf("Anuncio_%s_%d.pdf", fileSegment(subject, "Habitacion"), now.UnixMilli())
	return &File{Name: name, Data: out}, nil
}

// listingHero draws the cover: the hero photo with a darkened band for the
// title, or a simulated gradient when no photo is usable. Returns the
// hero's height.
func (c *Composer) listingHero(d *Doc, data *docmodel.RoomListingData, hero *imgfetch.Image) float64 {
	heroHeight := 100.0

	if hero != nil {
		w, h := layout.FitImage(float64(hero.Width), float64(hero.Height), d.pageWidth(), heroMaxHeight)
		d.drawImage(hero, (d.pageWidth()-w)/2, 0, w, h)
		// A very wide panorama fits shallow; the band, badge and title
		// anchor at heroMinHeight so they stay on the page.
		heroHeight = max(h, heroMinHeight)

		// Darken the lower band so the title stays legible.
		d.pdf.SetAlpha(0.4, "Normal")
		d.setFillColor(colorBlack)
		d.pdf.Rect(0, heroHeight-50, d.pageWidth(), 50, "F")
		d.pdf.SetAlpha(1, "Normal")
	} else {
		// Vertical gradient simulated with horizontal strips.
		const strips = 20
		for i := 0; i < strips; i++ {
			ratio := float64(i) / strips
			d.pdf.SetFillColor(
				colorPrimary.R+int(float64(colorSecondary.R-colorPrimary.R)*ratio),
				colorPrimary.G+int(float64(colorSecondary.G-colorPrimary.G)*ratio),
				colorPrimary.B+int(float64(colorSecondary.B-colorPrimary.B)*ratio),
			)
			d.pdf.Rect(0, float64(i)*5, d.pageWidth(), 6, "F")
		}
	}

	// Price badge.
	const badgeW, badgeH = 70.0, 35.0
	badgeX := d.pageWidth() - d.margin - badgeW
	badgeY := heroHeight - badgeH - 10

	d.setFillColor(colorAccent)
	d.pdf.RoundedRect(badgeX, badgeY, badgeW, badgeH, 4, "1234", "F")

	d.setFont("B", sizeTitle)
	d.setTextColor(colorWhite)
	d.textCentered(badgeX+badgeW/2, badgeY+15, esformat.WholeEuros(data.MonthlyRent))
	d.setFont("", sizeSmall)
	d.textCentered(badgeX+badgeW/2, badgeY+25, "/mes")

	// Title and location over the hero.
	title := "Habitación en alquiler"
	if strings.Contains(strings.ToLower(data.PropertyName), "chalet") {
		title = "Habitación en chalet"
	}
	d.setFont("B", sizeHeroName)
	d.setTextColor(colorWhite)
	d.text(d.margin, heroHeight-25, title)

	if loc := data.LocationShort(); loc != "" {
		d.setFont("", sizeSection)
		d.text(d.margin, heroHeight-10, loc)
	}

	return heroHeight
}

// listingCommonRooms draws the shared-space groups: labeled photos two per
// row for rooms that have them, then a one-line enumeration of the rest.
func (c *Composer) listingCommonRooms(ctx context.Context, d *Doc, data *docmodel.RoomListingData) {
	if len(data.CommonRooms) == 0 {
		return
	}

	d.ensure(30)
	d.Heading("Zonas comunes", sizeHeading)

	type group struct {
		name string
		img  *imgfetch.Image
	}
	var groups []group
	var plain []string

	for _, room := range data.CommonRooms {
		if len(room.Photos) == 0 {
			plain = append(plain, room.Name)
			continue
		}
		if c.Fetcher == nil || len(groups) >= commonMaxGroups {
			continue
		}
		img, err := c.Fetcher.Fetch(ctx, room.Photos[0].URL)
		if err != nil {
			c.warnf("common room %q photo unavailable: %v", room.Name, err)
			continue
		}
		groups = append(groups, group{name: room.Name, img: img})
	}

	cellWidth := (d.contentWidth() - galleryCellGap) / 2
	for start := 0; start < len(groups); start += 2 {
		row := groups[start:min(start+2, len(groups))]

		rowHeight := 0.0
		for _, g := range row {
			_, h := layout.FitImage(float64(g.img.Width), float64(g.img.Height), cellWidth, commonCellMaxH)
			rowHeight = max(rowHeight, h)
		}

		d.ensure(rowHeight + 8)
		for i, g := range row {
			w, h := layout.FitImage(float64(g.img.Width), float64(g.img.Height), cellWidth, commonCellMaxH)
			x := d.margin + float64(i)*(cellWidth+galleryCellGap)
			d.drawImage(g.img, x, d.cur.Y, w, h)

			// Name overlay along the photo's bottom edge.
			d.pdf.SetAlpha(0.6, "Normal")
			d.setFillColor(colorBlack)
			d.pdf.Rect(x, d.cur.Y+h-12, w, 12, "F")
			d.pdf.SetAlpha(1, "Normal")

			d.setFont("B", sizeSmall)
			d.setTextColor(colorWhite)
			d.text(x+4, d.cur.Y+h-4, g.name)
		}
		d.advance(rowHeight + 8)
	}

	if len(plain) > 0 {
		d.Paragraph("Además: "+strings.Join(plain, " - "), d.contentWidth(), sizeBody, colorGray, "")
	}
	d.advance(6)
}

// listingTermsPanel draws the rent / deposit / availability panel.
func (c *Composer) listingTermsPanel(d *Doc, data *docmodel.RoomListingData) {
	const panelHeight = 55.0
	d.ensure(panelHeight + 10)
	y := d.cur.Y

	d.setFillColor(colorLightGray)
	d.pdf.RoundedRect(d.margin, y, d.contentWidth(), panelHeight, 5, "1234", "F")
	d.setFillColor(colorPrimary)
	d.pdf.Rect(d.margin, y, d.contentWidth(), 2, "F")

	colWidth := d.contentWidth() / 3
	baseline := y + 15

	column := func(i int, label, value, sub string, accent RGB) {
		x := d.margin + float64(i)*colWidth + 10
		d.setFont("", sizeSmall)
		d.setTextColor(colorGray)
		d.text(x, baseline, label)

		d.setFont("B", 18)
		d.setTextColor(accent)
		d.text(x, baseline+12, value)

		d.setFont("", sizeTiny)
		d.setTextColor(colorGray)
		d.text(x, baseline+20, sub)
	}

	deposit := "1 mes"
	if data.DepositAmount != nil {
		deposit = esformat.WholeEuros(*data.DepositAmount)
	}

	column(0, "ALQUILER MENSUAL", esformat.WholeEuros(data.MonthlyRent), data.ExpensesNote(), colorPrimary)
	column(1, "DEPÓSITO", deposit, "Reembolsable", colorSecondary)
	column(2, "ESTANCIA MÍNIMA", "6 meses", "Disponible ahora", colorAccent)

	d.advance(panelHeight + 8)
}

// listingContactFooter draws the fixed strip at the page bottom.
func (c *Composer) listingContactFooter(d *Doc, data *docmodel.RoomListingData) {
	footerY := d.pageHeight() - 25

	d.setFillColor(colorPrimary)
	d.pdf.Rect(0, footerY-5, d.pageWidth(), 30, "F")

	d.setFont("B", 11)
	d.setTextColor(colorWhite)
	d.text(d.margin, footerY+8, "¿Interesado? Contacta ahora")

	d.setFont("B", 14)
	d.textRight(d.pageWidth()-d.margin, footerY+8, data.Contact())
}

// warnf logs a skipped element without interrupting the render.
func (c *Composer) warnf(format string, args ...any) {
	if c.Log != nil {
		c.Log.Warnf(format, args...)
	}
}

// ---------------------------------------------------------------------------
// Feature detection
// ---------------------------------------------------------------------------

// amenityKeywords maps substrings of common-room names to the chip label
// they light up.
var amenityKeywords = []struct {
	keywords []string
	label    string
}{
	{[]string{"piscina"}, "Piscina"},
	{[]string{"jardín", "jardin"}, "Jardín"},
	{[]string{"terraza"}, "Terraza"},
	{[]string{"parking", "garaje"}, "Parking"},
}

// detectFeatures builds the quick-feature chip labels: the room size when
// known, amenities keyword-matched from common-room names, and WiFi.
func detectFeatures(data *docmodel.RoomListingData) []string {
	var features []string
	if data.SizeSqm > 0 {
		features = append(features, fmt.Sprintf("%g m²", data.SizeSqm))
	}

	for _, amenity := range amenityKeywords {
		for _, room := range data.CommonRooms {
			name := strings.ToLower(room.Name)
			matched := false
			for _, kw := range amenity.keywords {
				if strings.Contains(name, kw) {
					matched = true
					break
				}
			}
			if matched {
				features = append(features, amenity.label)
				break
			}
		}
	}

	return append(features, "WiFi incluido")
}
