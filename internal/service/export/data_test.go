package export

import (
	"testing"

	"github.com/alamex/bitacora-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
)

func TestPlaceholderMap_AllKeysPresent(t *testing.T) {
	t.Parallel()

	data := DocumentData{
		StudentName: "Ana Lopez",
		Department:  "Sistemas",
		Supervisor:  "Luis Mora",
		Version:     3,
		PeriodLabel: "Del 02/03/2026 al 06/03/2026",
		Learnings:   "Mucho",
	}
	data.Dates[report.Monday] = "02/03/2026"
	data.Activities[report.Monday] = "Onboarding"

	m := data.PlaceholderMap()

	assert.Equal(t, "Ana Lopez", m["nombre_aprendiz"])
	assert.Equal(t, "Sistemas", m["area"])
	assert.Equal(t, "Luis Mora", m["supervisor"])
	assert.Equal(t, "03", m["version"])
	assert.Equal(t, "Del 02/03/2026 al 06/03/2026", m["periodo"])
	assert.Equal(t, "02/03/2026", m["fecha_lunes"])
	assert.Equal(t, "Onboarding", m["act_lunes"])
	assert.Equal(t, "Mucho", m["aprendizajes"])

	// One date and one activity key per weekday plus the eight fixed keys.
	assert.Len(t, m, 8+2*report.NumWeekdays)
	for _, key := range []string{"fecha_martes", "fecha_miercoles", "fecha_jueves", "fecha_viernes", "act_viernes", "dificultades", "plan_siguiente"} {
		assert.Contains(t, m, key)
	}
}

func TestPlaceholderMap_FallbacksForEmptyProfileFields(t *testing.T) {
	t.Parallel()

	m := (&DocumentData{}).PlaceholderMap()

	assert.Equal(t, "Becario", m["nombre_aprendiz"])
	assert.Equal(t, "TI", m["area"])
	assert.Equal(t, "Supervisor", m["supervisor"])
}

func TestDocumentData_TimeDisplays(t *testing.T) {
	t.Parallel()

	data := DocumentData{}
	data.Entries[report.Monday] = "00:05"
	data.Exits[report.Monday] = "13:30"

	assert.Equal(t, "12:05 AM", data.entryDisplay(report.Monday))
	assert.Equal(t, "01:30 PM", data.exitDisplay(report.Monday))
	assert.Equal(t, "", data.entryDisplay(report.Tuesday))
}
