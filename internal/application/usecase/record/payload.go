// Package record contains record-related use cases.
package record

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/levy-tracker/backend/internal/domain/entity"
	domainerror "github.com/levy-tracker/backend/internal/domain/error"
	"github.com/levy-tracker/backend/internal/domain/layout"
)

// Payload is a submitted record as it arrives from the client.
type Payload struct {
	YearLabel    string              `json:"yearLabel" validate:"required,notblank,max=32"`
	CalendarType entity.CalendarType `json:"calendarType" validate:"required,oneof=ISLAMIC GREGORIAN"`
	Categories   []CategoryPayload   `json:"categories" validate:"required,min=1,dive"`
}

// CategoryPayload is one submitted category.
type CategoryPayload struct {
	StableID string              `json:"stableId,omitempty" validate:"omitempty,max=200"`
	NameEn   string              `json:"nameEn" validate:"required,notblank,max=200"`
	NameUr   string              `json:"nameUr" validate:"required,notblank,max=200"`
	Type     entity.CategoryType `json:"type" validate:"required,oneof=ASSET LIABILITY"`
	Items    []ItemPayload       `json:"items" validate:"required,min=1,dive"`
}

// ItemPayload is one submitted line item. A missing amount is zero.
type ItemPayload struct {
	StableID    string           `json:"stableId,omitempty" validate:"omitempty,max=400"`
	Description string           `json:"description" validate:"required,notblank,max=500"`
	Amount      decimal.Decimal  `json:"amount"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
	UnitPrice   *decimal.Decimal `json:"unitPrice,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// ValidatePayload checks the payload shape. Any failure is a single
// validation error carrying one detail per offending field.
func ValidatePayload(p *Payload) error {
	if p == nil {
		return domainerror.NewValidationError([]string{"payload: required"})
	}

	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domainerror.NewValidationError([]string{err.Error()})
	}

	details := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		details = append(details, describeFieldError(fe))
	}
	return domainerror.NewValidationError(details)
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s: required", field)
	case "min":
		return fmt.Sprintf("%s: must contain at least %s entries", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s: must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s: must be one of %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s: failed %s", field, fe.Tag())
	}
}

// PayloadFromLayout turns reconciled categories into a submittable payload.
func PayloadFromLayout(yearLabel string, calendarType entity.CalendarType, categories []layout.Category) *Payload {
	p := &Payload{
		YearLabel:    yearLabel,
		CalendarType: calendarType,
		Categories:   make([]CategoryPayload, 0, len(categories)),
	}
	for _, c := range categories {
		cp := CategoryPayload{
			StableID: c.StableID,
			NameEn:   c.NameEn,
			NameUr:   c.NameUr,
			Type:     c.Type,
			Items:    make([]ItemPayload, 0, len(c.Items)),
		}
		for _, it := range c.Items {
			cp.Items = append(cp.Items, ItemPayload{
				StableID:    it.StableID,
				Description: it.Description,
				Amount:      it.Amount,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
			})
		}
		p.Categories = append(p.Categories, cp)
	}
	return p
}

// LayoutFromPayload turns submitted categories into reconciliation input.
func LayoutFromPayload(categories []CategoryPayload) []layout.Category {
	out := make([]layout.Category, 0, len(categories))
	for _, c := range categories {
		lc := layout.Category{
			StableID: c.StableID,
			Type:     c.Type,
			NameEn:   c.NameEn,
			NameUr:   c.NameUr,
			Items:    make([]layout.Item, 0, len(c.Items)),
		}
		for _, it := range c.Items {
			lc.Items = append(lc.Items, layout.Item{
				StableID:    it.StableID,
				Description: it.Description,
				Amount:      it.Amount,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
			})
		}
		out = append(out, lc)
	}
	return out
}
