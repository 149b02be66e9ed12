package handler

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/BrunaRochaL/violet-view/internal/model"
	"github.com/BrunaRochaL/violet-view/internal/repository"
	"github.com/BrunaRochaL/violet-view/internal/utils"
)

// In-memory stand-ins for the store interfaces.  Setting failWith makes
// every operation return that error, simulating a persistence outage.

type fakeUserStore struct {
	users    map[string]*model.User // keyed by hex id
	failWith error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*model.User{}}
}

// add seeds an account directly, hashing the password the way the real
// repository would.
func (s *fakeUserStore) add(nome, senha, datNascimento, email string) *model.User {
	hash, _ := utils.HashPassword(senha, bcrypt.MinCost)
	u := &model.User{
		ID:            primitive.NewObjectID(),
		Nome:          nome,
		Senha:         hash,
		DatNascimento: datNascimento,
		Email:         strings.ToLower(email),
	}
	s.users[u.ID.Hex()] = u
	return u
}

func (s *fakeUserStore) Create(_ context.Context, nome, senha, datNascimento, email string, cost int) (string, error) {
	if s.failWith != nil {
		return "", s.failWith
	}
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.users {
		if u.Email == email {
			return "", repository.ErrEmailExists
		}
	}
	hash, err := utils.HashPassword(senha, cost)
	if err != nil {
		return "", err
	}
	u := &model.User{
		ID:            primitive.NewObjectID(),
		Nome:          nome,
		Senha:         hash,
		DatNascimento: datNascimento,
		Email:         email,
	}
	s.users[u.ID.Hex()] = u
	return u.ID.Hex(), nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (s *fakeUserStore) Update(_ context.Context, id string, fields map[string]any) error {
	if s.failWith != nil {
		return s.failWith
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrInvalidID
	}
	u, ok := s.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	for k, v := range fields {
		val, _ := v.(string)
		switch k {
		case "nome":
			u.Nome = val
		case "senha":
			u.Senha = val
		case "dat_nascimento":
			u.DatNascimento = val
		case "email":
			u.Email = val
		}
	}
	return nil
}

func (s *fakeUserStore) Delete(_ context.Context, id string) error {
	if s.failWith != nil {
		return s.failWith
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return repository.ErrInvalidID
	}
	if _, ok := s.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

type fakeMovieStore struct {
	filmes   []model.Movie
	failWith error
}

func (s *fakeMovieStore) List(_ context.Context, nome string) ([]model.Movie, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	if nome = strings.TrimSpace(nome); nome == "" {
		out := []model.Movie{}
		return append(out, s.filmes...), nil
	}
	out := []model.Movie{}
	for _, m := range s.filmes {
		if strings.Contains(strings.ToLower(m.Nome), strings.ToLower(nome)) {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeAuditStore struct {
	events   []model.AuditEvent
	records  []model.LoginRecord
	failWith error
}

func (s *fakeAuditStore) Record(_ context.Context, e model.AuditEvent) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.events = append(s.events, e)
	return nil
}

func (s *fakeAuditStore) ListLogins(_ context.Context) ([]model.LoginRecord, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.records, nil
}

type fakeGateway struct {
	results  []model.SearchResult
	failWith error
	gotQuery string
}

func (g *fakeGateway) Search(_ context.Context, query string) ([]model.SearchResult, error) {
	g.gotQuery = query
	if g.failWith != nil {
		return nil, g.failWith
	}
	return g.results, nil
}
