package report

import "errors"

// Report domain errors
var (
	ErrReportNotFound = errors.New("report not found")
	ErrReportReadOnly = errors.New("report is finalized and can no longer be edited")

	// Export errors. Template errors stay distinct so the client can tell a
	// broken template apart from a failed placeholder fill.
	ErrTemplateUnavailable = errors.New("no se pudo descargar la plantilla")
	ErrTemplateSyntax      = errors.New("el archivo Word tiene un error de sintaxis en sus llaves")
	ErrTemplateFill        = errors.New("error al rellenar los campos del Word")
)
