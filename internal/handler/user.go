package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/BrunaRochaL/violet-view/internal/config"
	"github.com/BrunaRochaL/violet-view/internal/repository"
	"github.com/BrunaRochaL/violet-view/internal/utils"
)

// UserHandler covers profile update and account deletion.
type UserHandler struct {
	Cfg   config.Config
	Users repository.UserStore
}

func NewUserHandler(cfg config.Config, users repository.UserStore) *UserHandler {
	return &UserHandler{Cfg: cfg, Users: users}
}

type atualizarReq struct {
	Nome          string `json:"nome"`
	Senha         string `json:"senha"`
	DatNascimento string `json:"dat_nascimento"`
	Email         string `json:"email"`
}

type excluirReq struct {
	Senha string `json:"senha"`
}

// Atualizar partially updates an account: only the supplied fields are
// replaced.  An empty patch is answered with 200 "no changes"; an unknown
// or malformed id with 404.
func (h *UserHandler) Atualizar(c echo.Context) error {
	var req atualizarReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"mensagem": "Corpo da requisição inválido."})
	}

	fields := map[string]any{}
	if req.Nome != "" {
		fields["nome"] = req.Nome
	}
	if req.Senha != "" {
		hash, err := utils.HashPassword(req.Senha, h.Cfg.BcryptCost)
		if err != nil {
			return internalError(c, err)
		}
		fields["senha"] = hash
	}
	if req.DatNascimento != "" {
		fields["dat_nascimento"] = req.DatNascimento
	}
	if req.Email != "" {
		fields["email"] = strings.ToLower(strings.TrimSpace(req.Email))
	}

	if len(fields) == 0 {
		return c.JSON(http.StatusOK, echo.Map{"mensagem": "Nenhum dado foi alterado."})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	err := h.Users.Update(ctx, c.Param("id"), fields)
	if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
		return c.JSON(http.StatusNotFound, echo.Map{"mensagem": "Usuário não encontrado."})
	}
	if err != nil {
		return internalError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Excluir deletes an account after a password check.  A wrong password and
// an unknown id produce the same 401 so callers cannot probe which
// accounts exist.
func (h *UserHandler) Excluir(c echo.Context) error {
	var req excluirReq
	_ = c.Bind(&req) // a missing or malformed body behaves like a wrong password

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Users.GetByID(ctx, c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"mensagem": "Senha incorreta ou usuário não encontrado."})
	}
	if err != nil {
		return internalError(c, err)
	}
	if !utils.VerifyPassword(u.Senha, req.Senha) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"mensagem": "Senha incorreta ou usuário não encontrado."})
	}

	if err := h.Users.Delete(ctx, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"mensagem": "Senha incorreta ou usuário não encontrado."})
		}
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"mensagem": "Conta excluída com sucesso."})
}
