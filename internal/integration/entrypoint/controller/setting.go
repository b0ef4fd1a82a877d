package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/levy-tracker/backend/internal/application/usecase/setting"
	domainerror "github.com/levy-tracker/backend/internal/domain/error"
	"github.com/levy-tracker/backend/internal/integration/entrypoint/dto"
)

// SettingController handles administrator runtime setting endpoints.
type SettingController struct {
	getUseCase    *setting.GetMutationTimeoutUseCase
	updateUseCase *setting.UpdateMutationTimeoutUseCase
}

// NewSettingController creates a new setting controller instance.
func NewSettingController(
	getUseCase *setting.GetMutationTimeoutUseCase,
	updateUseCase *setting.UpdateMutationTimeoutUseCase,
) *SettingController {
	return &SettingController{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Get handles GET /admin/settings/runtime requests.
func (c *SettingController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleSettingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RuntimeSettingsResponse{
		RecordsMutationTimeoutMs: output.TimeoutMs,
		Stored:                   output.Stored,
		MinMs:                    output.Bounds.MinMs,
		MaxMs:                    output.Bounds.MaxMs,
		DefaultMs:                output.Bounds.DefaultMs,
	})
}

// Update handles PUT /admin/settings/runtime requests.
func (c *SettingController) Update(ctx *gin.Context) {
	var req dto.UpdateRuntimeSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidSetting),
			Details: []string{err.Error()},
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), setting.UpdateMutationTimeoutInput{
		TimeoutMs: *req.RecordsMutationTimeoutMs,
	})
	if err != nil {
		c.handleSettingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RuntimeSettingsResponse{
		RecordsMutationTimeoutMs: output.TimeoutMs,
		Stored:                   true,
		MinMs:                    output.Bounds.MinMs,
		MaxMs:                    output.Bounds.MaxMs,
		DefaultMs:                output.Bounds.DefaultMs,
		UpdatedAt:                &output.UpdatedAt,
	})
}

// handleSettingError handles setting errors and returns appropriate HTTP responses.
func (c *SettingController) handleSettingError(ctx *gin.Context, err error) {
	var settingErr *domainerror.SettingError
	if errors.As(err, &settingErr) {
		status := http.StatusInternalServerError
		switch settingErr.Code {
		case domainerror.ErrCodeTimeoutOutOfRange, domainerror.ErrCodeInvalidSetting:
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: settingErr.Message,
			Code:  string(settingErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
