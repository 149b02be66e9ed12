package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrunaRochaL/violet-view/internal/model"
)

func TestBuscarMissingQuery(t *testing.T) {
	for name, target := range map[string]string{
		"absent": "/search",
		"blank":  "/search?query=%20%20",
	} {
		t.Run(name, func(t *testing.T) {
			audit := &fakeAuditStore{}
			h := NewSearchHandler(&fakeGateway{}, audit)
			c, rec := newContext(http.MethodGet, target, "")

			require.NoError(t, h.Buscar(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Query parameter is required", decodeBody(t, rec)["mensagem"])
			assert.Empty(t, audit.events, "rejected requests are not audited")
		})
	}
}

func TestBuscarReturnsResults(t *testing.T) {
	gw := &fakeGateway{results: []model.SearchResult{
		{Title: "The Matrix", Year: "1999", ImdbID: "tt0133093", Type: "movie"},
		{Title: "The Matrix Reloaded", Year: "2003", ImdbID: "tt0234215", Type: "movie"},
	}}
	audit := &fakeAuditStore{}
	h := NewSearchHandler(gw, audit)
	c, rec := newContext(http.MethodGet, "/search?query=Matrix", "")

	require.NoError(t, h.Buscar(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Matrix", gw.gotQuery)

	var results []model.SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	assert.Equal(t, gw.results, results)

	require.Len(t, audit.events, 1)
	e := audit.events[0]
	assert.Equal(t, model.ActionSearch, e.Acao)
	assert.Equal(t, "Matrix", e.Consulta)
	assert.Nil(t, e.UserID, "search events are keyed by query, not user")
	assert.Equal(t, gw.results, e.Resultados)
}

func TestBuscarNoResults(t *testing.T) {
	audit := &fakeAuditStore{}
	h := NewSearchHandler(&fakeGateway{results: []model.SearchResult{}}, audit)
	c, rec := newContext(http.MethodGet, "/search?query=noResults", "")

	require.NoError(t, h.Buscar(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No movies found", decodeBody(t, rec)["mensagem"])

	require.Len(t, audit.events, 1, "empty searches are audited exactly once")
	assert.Equal(t, "noResults", audit.events[0].Consulta)
	assert.Empty(t, audit.events[0].Resultados)
}

func TestBuscarGatewayFailure(t *testing.T) {
	audit := &fakeAuditStore{}
	h := NewSearchHandler(&fakeGateway{failWith: fmt.Errorf("dial tcp: timeout")}, audit)
	c, rec := newContext(http.MethodGet, "/search?query=Matrix", "")

	require.NoError(t, h.Buscar(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Erro interno no servidor", decodeBody(t, rec)["mensagem"])

	// The failed attempt still leaves a best-effort trail.
	assert.Len(t, audit.events, 1)
}

func TestBuscarAuditFailureDoesNotMaskResults(t *testing.T) {
	gw := &fakeGateway{results: []model.SearchResult{{Title: "The Matrix"}}}
	h := NewSearchHandler(gw, &fakeAuditStore{failWith: fmt.Errorf("auditoria unavailable")})
	c, rec := newContext(http.MethodGet, "/search?query=Matrix", "")

	require.NoError(t, h.Buscar(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
