package auditlog

import (
	"strings"
	"time"
)

// Entry is one append-only audit row. Entries are never updated or deleted
// by this application.
type Entry struct {
	ID        string
	UserEmail string
	Action    string
	Detail    string
	CreatedAt time.Time
}

// Action labels recorded by the services. Error labels must contain the word
// "error" so the viewer classifies them.
const (
	ActionLoggedIn       = "Inició Sesión"
	ActionCreatedProfile = "Creó Perfil"
	ActionSavedProgress  = "Guardó Avance"
	ActionFinalized      = "Finalizó Reporte"

	ActionProfileError = "Error al Crear Perfil"
	ActionSaveError    = "Error al Guardar"
	ActionWordError    = "Error Generando Word"
	ActionPDFError     = "Error Generando PDF"
)

// IsError classifies an entry by its action label: anything containing
// "error", case-insensitively, renders as an error row.
func (e *Entry) IsError() bool {
	return strings.Contains(strings.ToLower(e.Action), "error")
}
