package dto

import (
	"github.com/shopspring/decimal"

	"github.com/levy-tracker/backend/internal/application/usecase/record"
)

// TemplateItemResponse represents a template item slot.
type TemplateItemResponse struct {
	Key           string          `json:"key"`
	Description   string          `json:"description"`
	DefaultAmount decimal.Decimal `json:"defaultAmount"`
}

// TemplateCategoryResponse represents a template category slot.
type TemplateCategoryResponse struct {
	Key    string                 `json:"key"`
	Type   string                 `json:"type"`
	NameEn string                 `json:"nameEn"`
	NameUr string                 `json:"nameUr"`
	Items  []TemplateItemResponse `json:"items"`
}

// TemplateResponse represents the current category template.
type TemplateResponse struct {
	Version    string                     `json:"version"`
	Categories []TemplateCategoryResponse `json:"categories"`
}

// ToTemplateResponse converts the template catalogue to a TemplateResponse DTO.
// Legacy aliases are matching data and are not exposed.
func ToTemplateResponse(output *record.GetTemplateOutput) TemplateResponse {
	response := TemplateResponse{
		Version:    output.Version,
		Categories: make([]TemplateCategoryResponse, 0, len(output.Categories)),
	}
	for _, c := range output.Categories {
		cr := TemplateCategoryResponse{
			Key:    c.Key,
			Type:   string(c.Type),
			NameEn: c.NameEn,
			NameUr: c.NameUr,
			Items:  make([]TemplateItemResponse, 0, len(c.Items)),
		}
		for _, it := range c.Items {
			cr.Items = append(cr.Items, TemplateItemResponse{
				Key:           it.Key,
				Description:   it.Description,
				DefaultAmount: it.DefaultAmount,
			})
		}
		response.Categories = append(response.Categories, cr)
	}
	return response
}
