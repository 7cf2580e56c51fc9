package export

import (
	"bytes"
	"fmt"

	"github.com/alamex/bitacora-backend-go/internal/domain/hours"
	"github.com/xuri/excelize/v2"
)

const hoursSheetName = "Horas de Servicio"

// XLSXRenderer writes the hours rollup as a workbook: one row per finalized
// week plus the summary block underneath.
type XLSXRenderer struct{}

func NewXLSXRenderer() *XLSXRenderer {
	return &XLSXRenderer{}
}

func (x *XLSXRenderer) Render(summary hours.Summary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", hoursSheetName)
	f.SetColWidth(hoursSheetName, "A", "A", 32)
	f.SetColWidth(hoursSheetName, "B", "C", 16)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build header style: %w", err)
	}

	f.SetCellValue(hoursSheetName, "A1", "Periodo")
	f.SetCellValue(hoursSheetName, "B1", "Horas")
	f.SetCellValue(hoursSheetName, "C1", "Restantes")
	f.SetCellStyle(hoursSheetName, "A1", "C1", headerStyle)

	row := 2
	for _, week := range summary.Weeks {
		f.SetCellValue(hoursSheetName, fmt.Sprintf("A%d", row), week.Period)
		f.SetCellValue(hoursSheetName, fmt.Sprintf("B%d", row), week.Hours)
		f.SetCellValue(hoursSheetName, fmt.Sprintf("C%d", row), week.Remaining)
		row++
	}

	row++ // blank separator
	totals := []struct {
		label string
		value interface{}
	}{
		{"Horas acumuladas", summary.TotalHours},
		{"Horas restantes", summary.RemainingHours},
		{"Meta de horas", summary.TargetHours},
		{"Avance (%)", summary.ProgressPercent},
		{"Llegadas tempranas", summary.EarlyArrivals},
		{"Salidas tardías", summary.LateDepartures},
	}
	for _, t := range totals {
		f.SetCellValue(hoursSheetName, fmt.Sprintf("A%d", row), t.label)
		f.SetCellValue(hoursSheetName, fmt.Sprintf("B%d", row), t.value)
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
