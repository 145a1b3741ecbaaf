package pdfdoc

import (
	"fmt"
	"time"

	"alquilerdocs/internal/docmodel"
	"alquilerdocs/internal/esformat"
)

// ---------------------------------------------------------------------------
// Contract composer
// ---------------------------------------------------------------------------

const contractMargin = 20

// tenantObligations are the fixed contract clauses enumerated after the
// financial terms.
var tenantObligations = []string{
	"Hacer uso adecuado de la habitación y zonas comunes.",
	"No realizar modificaciones sin autorización escrita.",
	"Mantener la habitación en buen estado de conservación.",
	"Respetar la convivencia con otros inquilinos.",
	"No subarrendar la habitación sin autorización.",
}

// houseRules is the second-page enumeration of shared-living rules.
var houseRules = []string{
	"Repartir y asignar las distintas tareas del hogar para evitar discusiones; dejarlo a la buena voluntad de cada uno no funciona.",
	"Dejar lo más limpio y presentable posible las habitaciones comunes, como el baño o la cocina.",
	"Respetar un horario de silencio de 23:00 a 8:00; no usar lavadora, lavavajillas ni otros electrodomésticos ruidosos a partir de las 23:00.",
	"En el caso de que alguien fume, nunca se hará en el interior de la casa, sino en el patio o terraza.",
	"Se recomienda un fondo común para productos de uso compartido como lavavajillas, papel higiénico o detergente.",
	"No manipular el calentador ni la estufa; avisar en caso de que no funcionen correctamente.",
	"Organizar el espacio del frigorífico entre los compañeros y limpiar su interior al menos una vez al mes.",
	"No acumular basura dentro de la casa; es imprescindible tirarla a diario.",
}

// Contract renders a complete rental contract: title banner, parties
// cards, object paragraph, financial term tiles, deposit clause,
// obligations, optional notes, signature block and a closing house-rules
// page.
func (c *Composer) Contract(data *docmodel.ContractData) (*File, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}

	now := c.Now()
	d := newDoc(contractMargin, now)

	c.contractHeader(d, data, now)
	c.contractParties(d, data)
	c.contractObject(d, data)
	c.contractTerms(d, data)
	c.contractObligations(d, data)

	d.SignatureBlock("EL ARRENDADOR", data.Owner(), "EL ARRENDATARIO", data.TenantName)
	c.contractFooter(d, data)

	d.newPage()
	d.Heading("NORMAS DE RESPETO Y BUENA CONVIVENCIA", sizeSection)
	d.advance(5)
	d.BulletList(houseRules)

	out, err := d.output()
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("Contrato_%s_%s_%d.pdf",
		fileSegment(data.RoomName, "Habitacion"),
		fileSegment(data.TenantName, "Inquilino"),
		now.UnixMilli())
	return &File{Name: name, Data: out}, nil
}

// drawBanner fills the top-of-page title banner.
func (d *Doc) drawBanner(title, subtitle string) float64 {
	const bannerHeight = 45

	d.setFillColor(colorPrimary)
	d.pdf.Rect(0, 0, d.pageWidth(), bannerHeight, "F")

	d.setFont("B", sizeTitle)
	d.setTextColor(colorWhite)
	d.textCentered(d.pageWidth()/2, 22, title)

	d.setFont("", sizeSection)
	d.textCentered(d.pageWidth()/2, 35, subtitle)

	return bannerHeight
}

// contractHeader draws the banner plus the reference number and
// generation date beneath it.
func (c *Composer) contractHeader(d *Doc, data *docmodel.ContractData, now time.Time) {
	d.drawBanner("CONTRATO DE ALQUILER", "DE HABITACIÓN")
	d.cur.Y = 60

	d.setFont("I", sizeBody)
	d.setTextColor(colorGray)
	d.text(d.margin, d.cur.Y, "Ref: "+referenceID("CT", data.TenantName+data.RoomName, now))
	d.textRight(d.pageWidth()-d.margin, d.cur.Y,
		"Documento generado el "+esformat.FormatDateLong(now))
	d.advance(15)
}

// contractParties draws the landlord and tenant cards side by side.
func (c *Composer) contractParties(d *Doc, data *docmodel.ContractData) {
	d.SectionHeader("PARTES INTERVINIENTES")
	d.advance(3)

	const cardHeight = 35
	cardWidth := (d.contentWidth() - 10) / 2
	y := d.cur.Y

	drawCard := func(x float64, label string, accent RGB, name, detail string) {
		d.setFillColor(colorLightGray)
		d.pdf.RoundedRect(x, y, cardWidth, cardHeight, 3, "1234", "F")

		d.setFont("B", sizeSmall)
		d.setTextColor(accent)
		d.text(x+5, y+8, label)

		d.setFont("", sizeBody)
		d.setTextColor(colorDark)
		d.text(x+5, y+18, name)

		if detail != "" {
			d.setFont("", sizeSmall)
			d.setTextColor(colorGray)
			d.text(x+5, y+26, detail)
		}
	}

	ownerDetail := ""
	if data.OwnerDNI != "" {
		ownerDetail = "DNI: " + data.OwnerDNI
	}
	tenantDetail := ""
	if data.TenantDNI != "" {
		tenantDetail = "DNI: " + data.TenantDNI
	}

	drawCard(d.margin, "EL ARRENDADOR", colorPrimary, data.Owner(), ownerDetail)
	drawCard(d.margin+cardWidth+10, "EL ARRENDATARIO", colorSecondary, data.TenantName, tenantDetail)

	d.advance(cardHeight + 15)
}

// contractObject states what is being rented.
func (c *Composer) contractObject(d *Doc, data *docmodel.ContractData) {
	d.SectionHeader("OBJETO DEL CONTRATO")

	d.BodyParagraph(fmt.Sprintf(
		`Se cede en alquiler la habitación "%s" ubicada en la propiedad "%s", situada en %s, incluyendo el uso compartido de las zonas comunes de la vivienda.`,
		data.RoomName, data.PropertyName, data.PropertyAddress))
	d.advance(8)
}

// contractTerms draws the three financial tiles and the deposit clause
// with the amount spelled out in words.
func (c *Composer) contractTerms(d *Doc, data *docmodel.ContractData) {
	d.SectionHeader("CONDICIONES")

	const boxHeight = 34
	boxWidth := (d.contentWidth() - 20) / 3
	d.ensure(boxHeight + 15)
	y := d.cur.Y

	dateRange := esformat.FormatDateNumeric(data.StartDate.Time) + " - " +
		esformat.FormatDateNumeric(data.EndDate.Time)
	d.LabeledInfoBox("DURACIÓN", fmt.Sprintf("%d meses", data.Months()), dateRange,
		colorPrimary, Box{X: d.margin, Y: y, W: boxWidth, H: boxHeight})

	rentSubtext := "Pagaderos los primeros 5 días"
	if !data.StartDate.IsZero() {
		due := esformat.PaymentDue(data.StartDate.Year(), data.StartDate.Month())
		rentSubtext = "Primer pago: " + esformat.FormatDateShort(due)
	}
	d.LabeledInfoBox("RENTA MENSUAL", esformat.WholeEuros(data.MonthlyRent),
		rentSubtext, colorAccent,
		Box{X: d.margin + boxWidth + 10, Y: y, W: boxWidth, H: boxHeight})

	deposit := "1 mes"
	if data.DepositAmount > 0 {
		deposit = esformat.WholeEuros(data.DepositAmount)
	}
	d.LabeledInfoBox("FIANZA", deposit, "Reembolsable al finalizar", colorSecondary,
		Box{X: d.margin + 2*(boxWidth+10), Y: y, W: boxWidth, H: boxHeight})

	d.advance(boxHeight + 12)

	d.BodyParagraph(fmt.Sprintf(
		"El arriendo se inicia el día %s finalizando el día %s. El precio del arriendo es de %s mensuales (%s euros), estando incluidos los gastos a excepción de calefacción y electricidad, a dividir entre todos los ocupantes de la vivienda.",
		esformat.FormatDateLong(data.StartDate.Time),
		esformat.FormatDateLong(data.EndDate.Time),
		esformat.FormatEuros(data.MonthlyRent),
		esformat.NumberToWords(int(data.MonthlyRent))))
	d.advance(3)

	d.BodyParagraph(fmt.Sprintf(
		"EL DEPÓSITO que, como garantía, deberá abonar el ARRENDATARIO es de %s (%s euros), importe que le será devuelto al finalizar el contrato, bien en metálico bien por transferencia bancaria.",
		esformat.FormatEuros(data.DepositAmount),
		esformat.NumberToWords(int(data.DepositAmount))))
	d.advance(8)
}

// contractObligations enumerates the fixed clauses and any free-text notes.
func (c *Composer) contractObligations(d *Doc, data *docmodel.ContractData) {
	d.ensure(60)
	d.SectionHeader("OBLIGACIONES DEL ARRENDATARIO")
	d.BulletList(tenantObligations)

	if data.ContractNotes != "" {
		d.advance(5)
		d.SectionHeader("NOTAS ADICIONALES")
		d.BodyParagraph(data.ContractNotes)
	}
}

// contractFooter draws the page-bottom strip naming the property.
func (c *Composer) contractFooter(d *Doc, data *docmodel.ContractData) {
	d.setFillColor(colorLightGray)
	d.pdf.Rect(0, d.pageHeight()-15, d.pageWidth(), 15, "F")

	d.setFont("", sizeTiny)
	d.setTextColor(colorGray)
	d.textCentered(d.pageWidth()/2, d.pageHeight()-6,
		"Contrato generado digitalmente - "+data.PropertyAddress)
}
