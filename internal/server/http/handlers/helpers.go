package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/manafood/internal/domain/errors"
	"github.com/polkiloo/manafood/internal/server/http/dto"
)

const (
	msgValidationFailed = "validation failed"
	msgOrderNotFound    = "order not found"
	msgInternal         = "internal server error"
)

// respondError maps domain errors onto HTTP responses. Unknown errors are
// attached to the context for the request logger and reported as 500.
func respondError(c *gin.Context, err error) {
	var verr *domainErrors.ValidationError
	switch {
	case errors.As(err, &verr):
		fields := make([]dto.FieldError, 0, len(verr.Violations))
		for _, v := range verr.Violations {
			fields = append(fields, dto.FieldError{Field: v.Field, Message: v.Message})
		}
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: msgValidationFailed, Fields: fields})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgOrderNotFound})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgInternal})
	}
}
