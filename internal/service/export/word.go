package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/alamex/bitacora-backend-go/internal/domain/report"
	docx "github.com/lukasjarosch/go-docx"
)

// WordRenderer fills the remote .docx template with the report data. The
// template carries {placeholder} marks; a template that fails to parse is a
// different failure than one whose placeholders cannot be replaced, and the
// errors stay distinct for the client.
type WordRenderer struct {
	templateURL string
	assets      *assetClient
}

func NewWordRenderer(templateURL string) *WordRenderer {
	return &WordRenderer{
		templateURL: templateURL,
		assets:      newAssetClient(),
	}
}

func (w *WordRenderer) Render(ctx context.Context, data DocumentData) ([]byte, error) {
	template, err := w.assets.fetch(ctx, w.templateURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", report.ErrTemplateUnavailable, err)
	}

	doc, err := docx.OpenBytes(template)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", report.ErrTemplateSyntax, err)
	}

	placeholders := docx.PlaceholderMap{}
	for key, value := range data.PlaceholderMap() {
		placeholders[key] = value
	}

	if err := doc.ReplaceAll(placeholders); err != nil {
		return nil, fmt.Errorf("%w: %v", report.ErrTemplateFill, err)
	}

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", report.ErrTemplateFill, err)
	}
	return buf.Bytes(), nil
}
