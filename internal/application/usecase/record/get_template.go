package record

import (
	"context"

	"github.com/levy-tracker/backend/internal/domain/entity"
	"github.com/levy-tracker/backend/internal/domain/template"
)

// GetTemplateOutput is the current catalogue.
type GetTemplateOutput struct {
	Version    string
	Categories []entity.CategoryTemplate
}

// GetTemplateUseCase returns the current category template.
type GetTemplateUseCase struct {
	registry *template.Registry
}

// NewGetTemplateUseCase creates a new GetTemplateUseCase instance.
func NewGetTemplateUseCase(registry *template.Registry) *GetTemplateUseCase {
	return &GetTemplateUseCase{registry: registry}
}

// Execute returns the catalogue in display order.
func (uc *GetTemplateUseCase) Execute(_ context.Context) *GetTemplateOutput {
	return &GetTemplateOutput{
		Version:    uc.registry.Version(),
		Categories: uc.registry.ListCategories(),
	}
}
