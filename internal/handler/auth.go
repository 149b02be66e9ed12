package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/BrunaRochaL/violet-view/internal/config"
	"github.com/BrunaRochaL/violet-view/internal/model"
	"github.com/BrunaRochaL/violet-view/internal/repository"
	"github.com/BrunaRochaL/violet-view/internal/utils"
)

// AuthHandler bundles dependencies for registration, login and logout.
type AuthHandler struct {
	Cfg   config.Config
	Users repository.UserStore
	Audit repository.AuditStore
}

func NewAuthHandler(cfg config.Config, users repository.UserStore, audit repository.AuditStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users, Audit: audit}
}

// ----- DTOs -----

type cadastroReq struct {
	Nome          string `json:"nome"`
	Senha         string `json:"senha"`
	DatNascimento string `json:"dat_nascimento"`
	Email         string `json:"email"`
}

type logoutReq struct {
	UserID string `json:"userId"`
}

// Cadastro registers a new account: required-field check, duplicate-email
// check, minimum-age gate, then persist.
func (h *AuthHandler) Cadastro(c echo.Context) error {
	var req cadastroReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"mensagem": "Nome, senha, data de nascimento e email são campos obrigatórios.",
		})
	}
	if req.Nome == "" || req.Senha == "" || req.DatNascimento == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"mensagem": "Nome, senha, data de nascimento e email são campos obrigatórios.",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	// Duplicate check runs before the age gate, matching the order the
	// front end expects when both would fail.
	_, err := h.Users.GetByEmail(ctx, req.Email)
	if err == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"mensagem": "Erro: O email já está cadastrado."})
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return internalError(c, err)
	}

	birth, err := parseBirthDate(req.DatNascimento)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"mensagem": "Erro: Data de nascimento inválida."})
	}
	// Calendar-year subtraction, not day-accurate: an account registered
	// the day before its 18th birthday passes if the years differ by 18.
	if time.Now().Year()-birth.Year() < 18 {
		return c.JSON(http.StatusBadRequest, echo.Map{"mensagem": "Erro: O cliente deve ter no mínimo 18 anos."})
	}

	if _, err := h.Users.Create(ctx, req.Nome, req.Senha, req.DatNascimento, req.Email, h.Cfg.BcryptCost); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"mensagem": "Erro: O email já está cadastrado."})
		}
		return internalError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"mensagem": "Cliente registrado com sucesso."})
}

// Login authenticates by email and password from query parameters.  A
// credential mismatch is a normal outcome, answered with 200 and
// autenticado=false; only missing parameters or store failures are errors.
func (h *AuthHandler) Login(c echo.Context) error {
	email := strings.TrimSpace(c.QueryParam("email"))
	senha := c.QueryParam("senha")
	if email == "" || senha == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"mensagem": "Email e senha são obrigatórios."})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusOK, echo.Map{"autenticado": false})
	}
	if err != nil {
		return internalError(c, err)
	}
	if !utils.VerifyPassword(u.Senha, senha) {
		return c.JSON(http.StatusOK, echo.Map{"autenticado": false})
	}

	recordAudit(ctx, h.Audit, model.AuditEvent{UserID: &u.ID, Acao: model.ActionLogin})

	token, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID.Hex(), h.Cfg.AccessTTLMin)
	if err != nil {
		return internalError(c, err)
	}

	// userInfo carries the account snapshot; the stored password never
	// leaves the service (User marshals it as "-").
	return c.JSON(http.StatusOK, echo.Map{
		"autenticado": true,
		"userInfo":    u,
		"token":       token.Token,
	})
}

// Logout records a logout audit event for the given user id.  The id is
// not verified against the accounts collection: logging is best-effort.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req logoutReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.UserID) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"mensagem": "userId é obrigatório."})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	e := model.AuditEvent{Acao: model.ActionLogout}
	if oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(req.UserID)); err == nil {
		e.UserID = &oid
	}
	recordAudit(ctx, h.Audit, e)

	return c.JSON(http.StatusOK, echo.Map{"mensagem": "Logout registrado com sucesso."})
}

// parseBirthDate accepts the wire format (YYYY-MM-DD) and a full RFC 3339
// timestamp, which some clients send for date inputs.
func parseBirthDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
