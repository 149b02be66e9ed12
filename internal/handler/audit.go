package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/BrunaRochaL/violet-view/internal/repository"
)

// AuditHandler exposes the audit trail, joined to the accounts that
// produced each event.
type AuditHandler struct {
	Audit repository.AuditStore
}

func NewAuditHandler(audit repository.AuditStore) *AuditHandler {
	return &AuditHandler{Audit: audit}
}

// Logins returns the flattened audit projection (action, timestamp, user
// name, user email) for all recorded events in natural storage order.
func (h *AuditHandler) Logins(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	records, err := h.Audit.ListLogins(ctx)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, records)
}
