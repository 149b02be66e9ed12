package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a document in the "cadastro" collection.  Field names follow the
// wire contract consumed by the front end.  The stored password is a bcrypt
// hash and is never serialized into responses.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Nome          string             `bson:"nome" json:"nome"`
	Senha         string             `bson:"senha" json:"-"`
	DatNascimento string             `bson:"dat_nascimento" json:"dat_nascimento"`
	Email         string             `bson:"email" json:"email"`
}
