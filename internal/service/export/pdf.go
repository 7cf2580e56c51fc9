package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/alamex/bitacora-backend-go/internal/domain/report"
	"github.com/go-pdf/fpdf"
)

// Page geometry in millimeters, A4 portrait.
const (
	pageWidth  = 210.0
	pageHeight = 297.0
	marginX    = 10.0
	contentW   = pageWidth - 2*marginX

	versionX = 178.0
	versionY = 22.0
	headerY  = 42.0
	lineStep = 7.0
	tableGap = 34.0

	filledBlockGap = 15.0
	emptyBlockGap  = 10.0
)

// PDFRenderer draws the report onto a page with the institutional background
// image behind it. A missing or unreachable background degrades to a plain
// page instead of failing the export.
type PDFRenderer struct {
	backgroundURL string
	assets        *assetClient
}

func NewPDFRenderer(backgroundURL string) *PDFRenderer {
	return &PDFRenderer{
		backgroundURL: backgroundURL,
		assets:        newAssetClient(),
	}
}

func imageType(content []byte) string {
	if bytes.HasPrefix(content, []byte("\x89PNG")) {
		return "PNG"
	}
	return "JPG"
}

func (p *PDFRenderer) Render(ctx context.Context, data DocumentData) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if p.backgroundURL != "" {
		if bg, err := p.assets.fetch(ctx, p.backgroundURL); err == nil {
			opt := fpdf.ImageOptions{ImageType: imageType(bg)}
			pdf.RegisterImageOptionsReader("background", opt, bytes.NewReader(bg))
			pdf.ImageOptions("background", 0, 0, pageWidth, pageHeight, false, opt, 0, "")
		} else {
			// Background is cosmetic; a plain page still exports.
			slog.Warn("PDF background unavailable", "error", err)
		}
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.Text(versionX, versionY, tr(fmt.Sprintf("Versión: %02d", data.Version)))

	// Header block: one line per field, fixed steps down the page.
	pdf.SetFont("Arial", "", 11)
	pdf.Text(marginX, headerY, tr("Nombre del aprendiz: "+orDefault(data.StudentName, defaultStudentName)))
	pdf.Text(marginX, headerY+lineStep, tr("Área: "+orDefault(data.Department, defaultDepartment)))
	pdf.Text(marginX, headerY+2*lineStep, tr("Supervisor: "+orDefault(data.Supervisor, defaultSupervisor)))
	pdf.Text(marginX, headerY+3*lineStep, tr("Periodo: "+data.PeriodLabel))

	y := p.drawActivityTable(pdf, tr, data, headerY+tableGap)
	y = p.drawClosingBlocks(pdf, tr, data, y)
	y = p.drawNote(pdf, tr, y)
	p.drawSignatures(pdf, tr, data, y)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (p *PDFRenderer) drawActivityTable(pdf *fpdf.Fpdf, tr func(string) string, data DocumentData, startY float64) float64 {
	const (
		dayW      = 25.0
		dateW     = 25.0
		timeW     = 22.0
		lineH     = 6.0
		headFill  = 230
		headerTxt = 10.0
	)
	activityW := contentW - dayW - dateW - 2*timeW

	pdf.SetXY(marginX, startY)
	pdf.SetFont("Arial", "B", headerTxt)
	pdf.SetFillColor(headFill, headFill, headFill)
	pdf.CellFormat(dayW, lineH, tr("Día"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(dateW, lineH, "Fecha", "1", 0, "C", true, 0, "")
	pdf.CellFormat(timeW, lineH, "Entrada", "1", 0, "C", true, 0, "")
	pdf.CellFormat(timeW, lineH, "Salida", "1", 0, "C", true, 0, "")
	pdf.CellFormat(activityW, lineH, "Actividades", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	y := startY + lineH
	for d := report.Monday; d <= report.Friday; d++ {
		activity := tr(data.Activities[d])
		lines := pdf.SplitText(activity, activityW-2)
		rowH := float64(len(lines)) * lineH
		if rowH < lineH {
			rowH = lineH
		}

		pdf.SetXY(marginX, y)
		pdf.CellFormat(dayW, rowH, tr(d.DisplayName()), "1", 0, "C", false, 0, "")
		pdf.CellFormat(dateW, rowH, data.Dates[d], "1", 0, "C", false, 0, "")
		pdf.CellFormat(timeW, rowH, data.entryDisplay(d), "1", 0, "C", false, 0, "")
		pdf.CellFormat(timeW, rowH, data.exitDisplay(d), "1", 0, "C", false, 0, "")

		// Bordered box first, then the wrapped text inside it.
		x := marginX + dayW + dateW + 2*timeW
		pdf.Rect(x, y, activityW, rowH, "D")
		pdf.SetXY(x+1, y)
		pdf.MultiCell(activityW-2, lineH, activity, "", "L", false)

		y += rowH
	}
	return y
}

func (p *PDFRenderer) drawClosingBlocks(pdf *fpdf.Fpdf, tr func(string) string, data DocumentData, startY float64) float64 {
	blocks := []struct {
		title string
		text  string
	}{
		{"Aprendizajes de la semana:", data.Learnings},
		{"Dificultades encontradas:", data.Difficulties},
		{"Plan para la siguiente semana:", data.NextPlan},
	}

	y := startY + emptyBlockGap
	for _, block := range blocks {
		pdf.SetFont("Arial", "B", 10)
		pdf.Text(marginX, y, tr(block.title))

		if block.text == "" {
			y += emptyBlockGap
			continue
		}

		pdf.SetFont("Arial", "", 10)
		pdf.SetXY(marginX, y+2)
		pdf.MultiCell(contentW, 5, tr(block.text), "", "L", false)
		y = pdf.GetY() + filledBlockGap - emptyBlockGap + 4
	}
	return y
}

func (p *PDFRenderer) drawNote(pdf *fpdf.Fpdf, tr func(string) string, startY float64) float64 {
	pdf.SetFont("Arial", "I", 9)
	pdf.SetXY(marginX, startY)
	pdf.MultiCell(contentW, 4, tr("Nota: Este reporte es un registro oficial de las horas y actividades de servicio realizadas durante el periodo indicado."), "", "L", false)
	return pdf.GetY()
}

func (p *PDFRenderer) drawSignatures(pdf *fpdf.Fpdf, tr func(string) string, data DocumentData, startY float64) {
	const (
		signatureW = 70.0
		rightX     = pageWidth - marginX - signatureW
	)

	y := startY + 25
	if y > pageHeight-30 {
		y = pageHeight - 30
	}

	pdf.SetFont("Arial", "", 10)
	pdf.Line(marginX, y, marginX+signatureW, y)
	pdf.Line(rightX, y, rightX+signatureW, y)

	pdf.SetXY(marginX, y+1)
	pdf.CellFormat(signatureW, 5, tr(orDefault(data.StudentName, defaultStudentName)), "", 1, "C", false, 0, "")
	pdf.SetXY(marginX, y+6)
	pdf.CellFormat(signatureW, 5, tr("Firma del aprendiz"), "", 1, "C", false, 0, "")

	pdf.SetXY(rightX, y+1)
	pdf.CellFormat(signatureW, 5, tr(orDefault(data.Supervisor, defaultSupervisor)), "", 1, "C", false, 0, "")
	pdf.SetXY(rightX, y+6)
	pdf.CellFormat(signatureW, 5, tr("Firma del supervisor"), "", 1, "C", false, 0, "")
}
