package receipt

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"comercialsoares.com/app/internal/config"
	"comercialsoares.com/app/internal/modules/orders"
)

// A4 portrait, millimetres. Rows past maxY wrap onto a fresh page with the
// table header repeated.
const (
	pageWidth  = 210.0
	pageHeight = 297.0
	margin     = 10.0
	rowHeight  = 10.0
	maxY       = 250.0
)

// Generator draws the printable order receipt: bordered page, fixed company
// identity block, order data, item table, grand total and signature block.
type Generator struct {
	company config.CompanyConfig
}

func NewGenerator(company config.CompanyConfig) *Generator {
	return &Generator{company: company}
}

func (g *Generator) Generate(o orders.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	contentWidth := pageWidth - margin*2

	drawBorder := func() {
		pdf.SetDrawColor(0, 0, 0)
		pdf.SetLineWidth(0.5)
		pdf.Rect(margin, margin, contentWidth, pageHeight-margin*2, "D")
	}

	// every page of a duplicate carries the marker
	drawCopyMark := func() {
		if !o.IsCopy {
			return
		}
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(100, 100, 100)
		textRight(pdf, pageWidth-margin-2, margin+8, tr("CÓPIA"))
		pdf.SetTextColor(0, 0, 0)
	}

	sectionBar := func(y float64, title string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetFillColor(230, 230, 230)
		pdf.Rect(margin+1, y, contentWidth-2, 8, "F")
		textCenter(pdf, pageWidth/2, y+6, tr(title))
	}

	tableHeader := func(y float64) {
		pdf.SetFont("Helvetica", "B", 11)
		cell(pdf, margin, y, 40, tr("Quantidade"), "C")
		cell(pdf, margin+40, y, 90, tr("Produto"), "C")
		cell(pdf, margin+130, y, 30, tr("Unitário"), "C")
		cell(pdf, margin+160, y, 30, tr("Total"), "C")
	}

	newPage := func() {
		pdf.AddPage()
		drawBorder()
		drawCopyMark()
	}

	newPage()

	pdf.SetFont("Helvetica", "B", 16)
	textCenter(pdf, pageWidth/2, 20, tr("PEDIDO ELETRÔNICO"))

	y := 30.0
	sectionBar(y, "DADOS DA EMPRESA")
	y += 12
	pdf.SetFont("Helvetica", "", 10)
	cell(pdf, margin, y, 95, tr(g.company.Name), "L")
	cell(pdf, margin+95, y, 95, tr(g.company.TaxID), "L")
	y += rowHeight
	cell(pdf, margin, y, 95, tr(g.company.Phone), "L")
	cell(pdf, margin+95, y, 95, tr(g.company.Address), "L")

	y += 15
	sectionBar(y, "DADOS DO PEDIDO")
	y += 12
	pdf.SetFont("Helvetica", "", 10)
	cell(pdf, margin, y, 95, tr("Data: "+o.Date), "L")
	cell(pdf, margin+95, y, 95, tr(fmt.Sprintf("Pedido Nº: %d", o.Number)), "L")
	y += rowHeight
	cell(pdf, margin, y, contentWidth, tr("Cliente: "+o.Customer), "L")

	y += 15
	sectionBar(y, "PRODUTOS")
	y += 10
	tableHeader(y)
	y += rowHeight

	pdf.SetFont("Helvetica", "", 10)
	for _, it := range o.Items {
		if y > maxY {
			newPage()
			y = 20
			tableHeader(y)
			y += rowHeight
			pdf.SetFont("Helvetica", "", 10)
		}

		name := it.Product
		if len([]rune(name)) > 35 {
			name = string([]rune(name)[:32]) + "..."
		}
		cell(pdf, margin, y, 40, fmt.Sprintf("%d", it.Quantity), "C")
		cell(pdf, margin+40, y, 90, tr(name), "L")
		cell(pdf, margin+130, y, 30, "R$ "+it.Price.StringFixed(2), "C")
		cell(pdf, margin+160, y, 30, "R$ "+it.LineTotal().StringFixed(2), "C")
		y += rowHeight
	}

	if y > maxY {
		newPage()
		y = 20
		tableHeader(y)
		y += rowHeight
	}
	pdf.SetFont("Helvetica", "B", 10)
	cell(pdf, margin, y, 160, tr("TOTAL GERAL"), "C")
	cell(pdf, margin+160, y, 30, "R$ "+o.Total().StringFixed(2), "C")

	y += 20
	if y > maxY {
		newPage()
		y = 20
	}
	sectionBar(y, "ASSINATURA")
	y += 12
	pdf.Rect(margin, y, contentWidth, 30, "D")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(margin+2, y+20, tr("Ass: ___________________________________"))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("receipt pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename is the suggested download name, "pedido_<numero>.pdf".
func Filename(o orders.Order) string {
	return fmt.Sprintf("pedido_%d.pdf", o.Number)
}

func cell(pdf *gofpdf.Fpdf, x, y, w float64, text, align string) {
	pdf.Rect(x, y, w, rowHeight, "D")
	switch align {
	case "C":
		textCenter(pdf, x+w/2, y+7, text)
	default:
		pdf.Text(x+2, y+7, text)
	}
}

func textCenter(pdf *gofpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s)/2, y, s)
}

func textRight(pdf *gofpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s), y, s)
}
