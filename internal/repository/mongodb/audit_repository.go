package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/BrunaRochaL/violet-view/internal/model"
)

// AuditRepo appends to the "auditoria" collection.  The collection is
// append-only: nothing in this service updates or deletes audit documents.
type AuditRepo struct {
	col *mongo.Collection
}

func NewAuditRepo(db *mongo.Database) *AuditRepo {
	return &AuditRepo{col: db.Collection("auditoria")}
}

// Record inserts one audit event, stamping the creation time when the
// caller left it zero.
func (r *AuditRepo) Record(ctx context.Context, e model.AuditEvent) error {
	if e.Data.IsZero() {
		e.Data = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, e)
	return err
}

// ListLogins joins audit events to the accounts that produced them and
// returns the flattened projection in natural storage order.  Events
// without a resolvable account (search events, deleted users) keep empty
// nome/email fields.
func (r *AuditRepo) ListLogins(ctx context.Context) ([]model.LoginRecord, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "cadastro",
			"localField":   "usuario_id",
			"foreignField": "_id",
			"as":           "usuario",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$usuario",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":   0,
			"acao":  1,
			"data":  1,
			"nome":  "$usuario.nome",
			"email": "$usuario.email",
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	records := []model.LoginRecord{}
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
