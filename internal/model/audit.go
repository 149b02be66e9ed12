package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audit actions recorded by the service.
const (
	ActionLogin  = "login"
	ActionLogout = "logout"
	ActionSearch = "search"
)

// AuditEvent is a document in the "auditoria" collection.  Events are
// append-only: the service inserts them and never mutates or deletes them.
// UserID is nil for search events, which are keyed by the query text.
type AuditEvent struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	UserID     *primitive.ObjectID `bson:"usuario_id,omitempty" json:"usuario_id,omitempty"`
	Acao       string              `bson:"acao" json:"acao"`
	Consulta   string              `bson:"consulta,omitempty" json:"consulta,omitempty"`
	Resultados []SearchResult      `bson:"resultados,omitempty" json:"resultados,omitempty"`
	Data       time.Time           `bson:"data" json:"data"`
}

// LoginRecord is the flattened projection returned by the audit query
// endpoint: each audit event joined to the account that produced it.
// Nome and Email stay empty for events without a resolvable account.
type LoginRecord struct {
	Acao  string    `bson:"acao" json:"acao"`
	Data  time.Time `bson:"data" json:"data"`
	Nome  string    `bson:"nome,omitempty" json:"nome,omitempty"`
	Email string    `bson:"email,omitempty" json:"email,omitempty"`
}
