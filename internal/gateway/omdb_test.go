package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrunaRochaL/violet-view/internal/model"
)

func TestSearchDecodesResults(t *testing.T) {
	var gotKey, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("apikey")
		gotQuery = r.URL.Query().Get("s")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"Search": [
				{"Title":"The Matrix","Year":"1999","imdbID":"tt0133093","Type":"movie","Poster":"https://img/matrix.jpg"},
				{"Title":"The Matrix Reloaded","Year":"2003","imdbID":"tt0234215","Type":"movie","Poster":"N/A"}
			],
			"totalResults":"2",
			"Response":"True"
		}`))
	}))
	defer srv.Close()

	c := NewOMDbClient(srv.URL, "test-key")
	results, err := c.Search(context.Background(), "Matrix & friends")

	require.NoError(t, err)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "Matrix & friends", gotQuery, "query must be URL-escaped on the wire")
	require.Len(t, results, 2)
	assert.Equal(t, model.SearchResult{
		Title:  "The Matrix",
		Year:   "1999",
		ImdbID: "tt0133093",
		Type:   "movie",
		Poster: "https://img/matrix.jpg",
	}, results[0])
}

func TestSearchMovieNotFoundIsEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
	}))
	defer srv.Close()

	c := NewOMDbClient(srv.URL, "test-key")
	results, err := c.Search(context.Background(), "noResults")

	require.NoError(t, err, "an empty result set is a normal outcome")
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchUpstreamErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Invalid API key!"}`))
	}))
	defer srv.Close()

	c := NewOMDbClient(srv.URL, "bad-key")
	_, err := c.Search(context.Background(), "Matrix")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API key")
}

func TestSearchNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewOMDbClient(srv.URL, "test-key")
	_, err := c.Search(context.Background(), "Matrix")
	require.Error(t, err)
}

func TestSearchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"Search": [`))
	}))
	defer srv.Close()

	c := NewOMDbClient(srv.URL, "test-key")
	_, err := c.Search(context.Background(), "Matrix")
	require.Error(t, err)
}

func TestSearchRespectsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"Response":"True","Search":[]}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewOMDbClient(srv.URL, "test-key")
	_, err := c.Search(ctx, "Matrix")
	require.Error(t, err)
}
