package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Movie is a document in the "filmes" collection.  The catalog is read-only
// from the service's perspective; entries are seeded out of band.
type Movie struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Nome    string             `bson:"nome" json:"nome"`
	Ano     int                `bson:"ano,omitempty" json:"ano,omitempty"`
	Genero  string             `bson:"genero,omitempty" json:"genero,omitempty"`
	Capa    string             `bson:"capa,omitempty" json:"capa,omitempty"`
	Sinopse string             `bson:"sinopse,omitempty" json:"sinopse,omitempty"`
}

// SearchResult is one entry returned by the external metadata API.  JSON
// field names keep the upstream casing because the front end consumes them
// as-is; bson tags shape the audit snapshot stored alongside a search.
type SearchResult struct {
	Title  string `bson:"title" json:"Title"`
	Year   string `bson:"year" json:"Year"`
	ImdbID string `bson:"imdb_id" json:"imdbID"`
	Type   string `bson:"type" json:"Type"`
	Poster string `bson:"poster" json:"Poster"`
}
