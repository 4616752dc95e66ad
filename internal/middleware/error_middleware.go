package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/communiteer/welcomehub/internal/app/models/dto"
	"github.com/communiteer/welcomehub/internal/pkg/apperrors"
)

const msgInternal = "Something went wrong. Please try again later."

// HandleAPIError maps pipeline errors to status codes and writes {"error": message}
func HandleAPIError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case apperrors.Is(err, apperrors.ErrNotConfigured):
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(apperrors.PublicMessage(err, msgInternal)))
	case apperrors.Is(err, apperrors.ErrMalformedRequest, apperrors.ErrValidationFailed):
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(apperrors.PublicMessage(err, msgInternal)))
	case apperrors.Is(err, apperrors.ErrUpstreamUnreachable, apperrors.ErrUpstreamRejected):
		c.AbortWithStatusJSON(http.StatusBadGateway, dto.NewErrorResponse(apperrors.PublicMessage(err, msgInternal)))
	default:
		// unknown errors never leak their text
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(msgInternal))
	}
}
