// Package queue defines message payloads exchanged over the message broker.
package queue

// AuditRecordedEvent is published after an audit event is persisted.  It
// carries enough for downstream consumers to log or feed analytics without
// querying the primary database.  Fan-out is best-effort: a lost message
// never fails the request that produced it.
type AuditRecordedEvent struct {
	Acao       string `json:"acao"`                 // login | logout | search
	UsuarioID  string `json:"usuario_id,omitempty"` // hex id, empty for search events
	Consulta   string `json:"consulta,omitempty"`   // search query text
	Resultados int    `json:"resultados"`           // number of results in the snapshot
	RecordedAt string `json:"recorded_at"`          // RFC 3339 persistence time
}
