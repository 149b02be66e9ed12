// Package router wires the HTTP routes to their handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/BrunaRochaL/violet-view/internal/handler"
)

// RegisterRoutes maps every route of the API onto the provided Echo
// instance.  Paths and parameter names follow the wire contract the front
// end was written against.
func RegisterRoutes(
	e *echo.Echo,
	auth *handler.AuthHandler,
	users *handler.UserHandler,
	movies *handler.MovieHandler,
	search *handler.SearchHandler,
	audit *handler.AuditHandler,
) {
	e.GET("/healthz", handler.Health)

	e.GET("/login", auth.Login)
	e.POST("/cadastro", auth.Cadastro)
	e.POST("/logout", auth.Logout)

	e.PUT("/usuario/:id", users.Atualizar)
	e.DELETE("/usuario/:id", users.Excluir)

	e.GET("/filmes", movies.Filmes)
	e.GET("/search", search.Buscar)
	e.GET("/logins", audit.Logins)
}
