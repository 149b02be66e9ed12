package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/BrunaRochaL/violet-view/internal/repository"
)

// MovieHandler serves the catalog listing.
type MovieHandler struct {
	Movies repository.MovieStore
}

func NewMovieHandler(movies repository.MovieStore) *MovieHandler {
	return &MovieHandler{Movies: movies}
}

// Filmes lists the catalog, optionally filtered by the nome query
// parameter.  An empty result set is a 200 with an empty list.
func (h *MovieHandler) Filmes(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	filmes, err := h.Movies.List(ctx, c.QueryParam("nome"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"filmes": filmes})
}
