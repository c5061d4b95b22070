// Package canvas renders document canvases and stores them through the file
// service.
package canvas

import (
	"context"
	"encoding/json"
	"fmt"

	"parcours/internal/ports"
	"parcours/pkg/domain"
)

// SystemAuthor is recorded as the author of generated files.
const SystemAuthor = "parcours-doctoral"

// Renderer produces a JSON canvas consumed by the PDF generation service.
type Renderer struct {
	files ports.FileService
}

func NewRenderer(files ports.FileService) *Renderer {
	return &Renderer{files: files}
}

type canvasDocument struct {
	Template string         `json:"template"`
	Data     map[string]any `json:"data"`
}

func (r *Renderer) Render(ctx context.Context, templateID string, data map[string]any) (domain.FileID, error) {
	raw, err := json.Marshal(canvasDocument{Template: templateID, Data: data})
	if err != nil {
		return domain.FileID{}, fmt.Errorf("encode canvas %s: %w", templateID, err)
	}
	token, err := r.files.StoreRemote(ctx, raw, templateID+".json", "application/json")
	if err != nil {
		return domain.FileID{}, fmt.Errorf("store canvas %s: %w", templateID, err)
	}
	id, err := r.files.ConfirmUpload(ctx, token, SystemAuthor)
	if err != nil {
		return domain.FileID{}, fmt.Errorf("confirm canvas %s: %w", templateID, err)
	}
	return id, nil
}
