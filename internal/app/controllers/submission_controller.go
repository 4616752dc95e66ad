package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/communiteer/welcomehub/internal/app/models/dto"
	"github.com/communiteer/welcomehub/internal/app/services"
	"github.com/communiteer/welcomehub/internal/middleware"
)

// SubmissionController handles check-in and EOI submissions
type SubmissionController struct {
	submissionService services.SubmissionService
}

// NewSubmissionController creates a new SubmissionController
func NewSubmissionController(submissionService services.SubmissionService) *SubmissionController {
	return &SubmissionController{
		submissionService: submissionService,
	}
}

// Checkin accepts a student check-in
// @Summary Submit a check-in
// @Description Validates, normalizes and forwards a student check-in to the registration webhook
// @Tags submissions
// @Accept json
// @Produce json
// @Param request body models.CheckinSubmission true "Check-in details"
// @Success 200 {object} dto.SuccessResponse "Check-in forwarded"
// @Failure 400 {object} dto.ErrorResponse "Malformed body or missing required details"
// @Failure 500 {object} dto.ErrorResponse "Check-in webhook not configured"
// @Failure 502 {object} dto.ErrorResponse "Registration service unreachable or returned an error"
// @Router /checkin [post]
func (c *SubmissionController) Checkin(ctx *gin.Context) {
	if err := c.submissionService.SubmitCheckin(ctx.Request.Context(), ctx.Request.Body); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse())
}

// Eoi accepts an expression of interest
// @Summary Submit an expression of interest
// @Description Validates, normalizes and forwards an expression of interest to the EOI webhook
// @Tags submissions
// @Accept json
// @Produce json
// @Param request body models.EoiSubmission true "Expression of interest"
// @Success 200 {object} dto.SuccessResponse "EOI forwarded"
// @Failure 400 {object} dto.ErrorResponse "Malformed body or missing required details"
// @Failure 500 {object} dto.ErrorResponse "EOI webhook not configured"
// @Failure 502 {object} dto.ErrorResponse "EOI service unreachable or returned an error"
// @Router /eoi [post]
func (c *SubmissionController) Eoi(ctx *gin.Context) {
	if err := c.submissionService.SubmitEoi(ctx.Request.Context(), ctx.Request.Body); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse())
}
