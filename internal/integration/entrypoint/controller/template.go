package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/levy-tracker/backend/internal/application/usecase/record"
	"github.com/levy-tracker/backend/internal/integration/entrypoint/dto"
)

// TemplateController serves the current category template.
type TemplateController struct {
	getUseCase *record.GetTemplateUseCase
}

// NewTemplateController creates a new template controller instance.
func NewTemplateController(getUseCase *record.GetTemplateUseCase) *TemplateController {
	return &TemplateController{
		getUseCase: getUseCase,
	}
}

// Get handles GET /template requests.
func (c *TemplateController) Get(ctx *gin.Context) {
	output := c.getUseCase.Execute(ctx.Request.Context())
	ctx.JSON(http.StatusOK, dto.ToTemplateResponse(output))
}
