package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"linkedpro/internal/domain"
)

var kindStatus = map[domain.ErrorKind]int{
	domain.KindValidation: http.StatusBadRequest,
	domain.KindAuth:       http.StatusUnauthorized,
	domain.KindNotFound:   http.StatusNotFound,
	domain.KindConflict:   http.StatusConflict,
}

type errorEnvelope struct {
	Error *domain.Error `json:"error"`
}

// respondError maps a domain error to its HTTP status and envelope.
// Anything that is not a domain error is an internal failure.
func (h *Handler) respondError(c echo.Context, err error) error {
	if domainErr := domain.AsError(err); domainErr != nil {
		status, ok := kindStatus[domainErr.Kind]
		if !ok {
			status = http.StatusInternalServerError
		}
		return c.JSON(status, errorEnvelope{Error: domainErr})
	}

	h.logger.Error("internal error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, errorEnvelope{
		Error: &domain.Error{Kind: "internal", Message: "internal server error"},
	})
}
