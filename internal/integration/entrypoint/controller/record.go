package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/levy-tracker/backend/internal/application/usecase/record"
	"github.com/levy-tracker/backend/internal/domain/entity"
	domainerror "github.com/levy-tracker/backend/internal/domain/error"
	"github.com/levy-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/levy-tracker/backend/internal/integration/entrypoint/middleware"
)

// RecordController handles record endpoints.
type RecordController struct {
	listUseCase      *record.ListRecordsUseCase
	getUseCase       *record.GetRecordUseCase
	createUseCase    *record.CreateRecordUseCase
	updateUseCase    *record.UpdateRecordUseCase
	deleteUseCase    *record.DeleteRecordUseCase
	reconcileUseCase *record.ReconcileLayoutUseCase
	layoutUseCase    *record.GetRecordLayoutUseCase
	duplicateUseCase *record.DuplicateRecordUseCase
}

// NewRecordController creates a new record controller instance.
func NewRecordController(
	listUseCase *record.ListRecordsUseCase,
	getUseCase *record.GetRecordUseCase,
	createUseCase *record.CreateRecordUseCase,
	updateUseCase *record.UpdateRecordUseCase,
	deleteUseCase *record.DeleteRecordUseCase,
	reconcileUseCase *record.ReconcileLayoutUseCase,
	layoutUseCase *record.GetRecordLayoutUseCase,
	duplicateUseCase *record.DuplicateRecordUseCase,
) *RecordController {
	return &RecordController{
		listUseCase:      listUseCase,
		getUseCase:       getUseCase,
		createUseCase:    createUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		reconcileUseCase: reconcileUseCase,
		layoutUseCase:    layoutUseCase,
		duplicateUseCase: duplicateUseCase,
	}
}

// List handles GET /records requests.
func (c *RecordController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	summaries, err := c.listUseCase.Execute(ctx.Request.Context(), userID)
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecordListResponse(summaries))
}

// Get handles GET /records/:id requests.
func (c *RecordController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	recordID, ok := parseRecordID(ctx)
	if !ok {
		return
	}

	rec, err := c.getUseCase.Execute(ctx.Request.Context(), record.GetRecordInput{
		UserID:   userID,
		RecordID: recordID,
	})
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecordResponse(rec))
}

// Create handles POST /records requests.
func (c *RecordController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.RecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), record.CreateRecordInput{
		UserID:  userID,
		Payload: req.ToPayload(),
	})
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	respondMutation(ctx, http.StatusCreated, output)
}

// Update handles PUT /records/:id requests, including the delete intent.
func (c *RecordController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	recordID, ok := parseRecordID(ctx)
	if !ok {
		return
	}

	var req dto.RecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), record.UpdateRecordInput{
		UserID:   userID,
		RecordID: recordID,
		Intent:   req.Intent,
		Payload:  req.ToPayload(),
	})
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	respondMutation(ctx, http.StatusOK, output)
}

// Delete handles DELETE /records/:id requests.
func (c *RecordController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	recordID, ok := parseRecordID(ctx)
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), record.DeleteRecordInput{
		UserID:   userID,
		RecordID: recordID,
	})
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Reconcile handles POST /records/reconcile requests.
func (c *RecordController) Reconcile(ctx *gin.Context) {
	if _, ok := requireUser(ctx); !ok {
		return
	}

	var req dto.ReconcileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	output, err := c.reconcileUseCase.Execute(ctx.Request.Context(), record.ReconcileInput{
		Categories: req.Categories,
	})
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLayoutResponse(output))
}

// Layout handles GET /records/:id/layout requests.
func (c *RecordController) Layout(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	recordID, ok := parseRecordID(ctx)
	if !ok {
		return
	}

	output, err := c.layoutUseCase.Execute(ctx.Request.Context(), record.GetRecordLayoutInput{
		UserID:   userID,
		RecordID: recordID,
	})
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLayoutResponse(output))
}

// Duplicate handles POST /records/:id/duplicate requests. The body is optional.
func (c *RecordController) Duplicate(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	recordID, ok := parseRecordID(ctx)
	if !ok {
		return
	}

	var req dto.DuplicateRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondInvalidBody(ctx, err)
		return
	}

	output, err := c.duplicateUseCase.Execute(ctx.Request.Context(), record.DuplicateRecordInput{
		UserID:       userID,
		RecordID:     recordID,
		YearLabel:    req.YearLabel,
		CalendarType: entity.CalendarType(req.CalendarType),
	})
	if err != nil {
		c.handleRecordError(ctx, err)
		return
	}

	respondMutation(ctx, http.StatusCreated, output)
}

// handleRecordError handles record errors and returns appropriate HTTP responses.
func (c *RecordController) handleRecordError(ctx *gin.Context, err error) {
	if conflict, ok := domainerror.AsDuplicateYear(err); ok {
		ctx.JSON(http.StatusConflict, dto.ToConflictResponse(conflict))
		return
	}

	var recErr *domainerror.RecordError
	if errors.As(err, &recErr) {
		ctx.JSON(c.getStatusCodeForRecordError(recErr.Code), dto.ErrorResponse{
			Error:   recErr.Message,
			Code:    string(recErr.Code),
			Details: recErr.Details,
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForRecordError maps record error codes to HTTP status codes.
func (c *RecordController) getStatusCodeForRecordError(code domainerror.RecordErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidPayload:
		return http.StatusBadRequest
	case domainerror.ErrCodeRecordNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDuplicateYear:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondMutation(ctx *gin.Context, status int, output *record.MutationOutput) {
	if output.Conflict != nil {
		ctx.JSON(http.StatusConflict, dto.ToConflictResponse(output.Conflict))
		return
	}
	ctx.JSON(status, dto.MutationResponse{
		RecordID:  output.RecordID.String(),
		YearLabel: output.YearLabel,
	})
}

func respondInvalidBody(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request body",
		Code:    string(domainerror.ErrCodeInvalidPayload),
		Details: []string{err.Error()},
	})
}

func requireUser(ctx *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
	}
	return userID, ok
}

func parseRecordID(ctx *gin.Context) (uuid.UUID, bool) {
	recordID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid record ID format",
			Code:  string(domainerror.ErrCodeInvalidPayload),
		})
		return uuid.Nil, false
	}
	return recordID, true
}
