// Package handler contains the HTTP handlers, one file per route family.
// Handlers orchestrate validation, persistence or gateway calls, audit
// recording and response shaping; they hold their dependencies explicitly
// and keep no package-level state.
package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/BrunaRochaL/violet-view/internal/model"
	"github.com/BrunaRochaL/violet-view/internal/queue"
	"github.com/BrunaRochaL/violet-view/internal/repository"
	queue_publisher "github.com/BrunaRochaL/violet-view/internal/service"
)

// dbTimeout bounds every database call issued from a handler.
const dbTimeout = 5 * time.Second

// recordAudit persists an audit event and fans it out to the broker.
// Failures are logged and swallowed: audit recording never blocks or fails
// the operation that triggered it.
func recordAudit(ctx context.Context, store repository.AuditStore, e model.AuditEvent) {
	if e.Data.IsZero() {
		e.Data = time.Now().UTC()
	}
	if err := store.Record(ctx, e); err != nil {
		log.Printf("audit: record %s failed: %v", e.Acao, err)
		return
	}

	evt := queue.AuditRecordedEvent{
		Acao:       e.Acao,
		Consulta:   e.Consulta,
		Resultados: len(e.Resultados),
		RecordedAt: e.Data.Format(time.RFC3339),
	}
	if e.UserID != nil {
		evt.UsuarioID = e.UserID.Hex()
	}
	_ = queue_publisher.PublishAuditRecorded(ctx, evt)
}

// internalError reports a persistence or gateway failure.  The underlying
// error text is included in the body, which is acceptable for an internal
// tool but would need hardening for a public deployment.
func internalError(c echo.Context, err error) error {
	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, echo.Map{
		"mensagem": "Erro interno no servidor",
		"error":    err.Error(),
	})
}
