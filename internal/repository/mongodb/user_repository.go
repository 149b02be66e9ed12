// Package mongodb implements the repository interfaces on top of the
// MongoDB driver.  Each repository wraps one collection.
package mongodb

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/BrunaRochaL/violet-view/internal/model"
	"github.com/BrunaRochaL/violet-view/internal/repository"
	"github.com/BrunaRochaL/violet-view/internal/utils"
)

// UserRepo stores accounts in the "cadastro" collection.
type UserRepo struct {
	col *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{col: db.Collection("cadastro")}
}

// Create inserts an account and returns its generated id as hex.  The
// duplicate-email check and the insert are two steps, matching the
// uniqueness contract enforced at this layer.
func (r *UserRepo) Create(ctx context.Context, nome, senha, datNascimento, email string, cost int) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	err := r.col.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return "", repository.ErrEmailExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}

	hash, err := utils.HashPassword(senha, cost)
	if err != nil {
		return "", err
	}

	res, err := r.col.InsertOne(ctx, model.User{
		Nome:          nome,
		Senha:         hash,
		DatNascimento: datNascimento,
		Email:         email,
	})
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var u model.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var u model.User
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Update applies a partial $set with the supplied fields only.
func (r *UserRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// parseID converts a path identifier into an ObjectID, mapping malformed
// input onto ErrInvalidID so handlers can treat it as a missing document.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, repository.ErrInvalidID
	}
	return oid, nil
}
