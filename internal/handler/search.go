package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/BrunaRochaL/violet-view/internal/gateway"
	"github.com/BrunaRochaL/violet-view/internal/model"
	"github.com/BrunaRochaL/violet-view/internal/repository"
)

// SearchHandler proxies free-text queries to the external metadata API and
// keeps an audit snapshot of every attempt.
type SearchHandler struct {
	Gateway gateway.MovieSearcher
	Audit   repository.AuditStore
}

func NewSearchHandler(gw gateway.MovieSearcher, audit repository.AuditStore) *SearchHandler {
	return &SearchHandler{Gateway: gw, Audit: audit}
}

// Buscar runs one external search.  Every attempt is audited, including
// empty and failed ones; the audit write never masks a gateway error.
func (h *SearchHandler) Buscar(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("query"))
	if query == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"mensagem": "Query parameter is required"})
	}

	results, err := h.Gateway.Search(c.Request().Context(), query)

	// The audit write is detached from the request context so a client
	// that gave up on a slow gateway still leaves a trail.
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	if err != nil {
		recordAudit(ctx, h.Audit, model.AuditEvent{Acao: model.ActionSearch, Consulta: query})
		return internalError(c, err)
	}

	recordAudit(ctx, h.Audit, model.AuditEvent{
		Acao:       model.ActionSearch,
		Consulta:   query,
		Resultados: results,
	})

	if len(results) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"mensagem": "No movies found"})
	}
	return c.JSON(http.StatusOK, results)
}
