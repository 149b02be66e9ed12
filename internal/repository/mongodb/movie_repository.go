package mongodb

import (
	"context"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/BrunaRochaL/violet-view/internal/model"
)

// MovieRepo reads the "filmes" collection.  The catalog has no write path
// in this service.
type MovieRepo struct {
	col *mongo.Collection
}

func NewMovieRepo(db *mongo.Database) *MovieRepo {
	return &MovieRepo{col: db.Collection("filmes")}
}

// List returns the whole catalog, or a case-insensitive substring match on
// the name when nome is non-empty.  An empty result is a normal outcome
// and comes back as an empty slice, never nil.
func (r *MovieRepo) List(ctx context.Context, nome string) ([]model.Movie, error) {
	filter := bson.M{}
	if nome = strings.TrimSpace(nome); nome != "" {
		filter["nome"] = primitive.Regex{Pattern: regexp.QuoteMeta(nome), Options: "i"}
	}

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	filmes := []model.Movie{}
	if err := cur.All(ctx, &filmes); err != nil {
		return nil, err
	}
	return filmes, nil
}
