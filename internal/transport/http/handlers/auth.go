package http_handlers

import (
	"net/http"

	"github.com/mgeraldo/contact-book/internal/application/auth"
	"github.com/mgeraldo/contact-book/internal/domain"
	"github.com/mgeraldo/contact-book/internal/logger"
	"github.com/mgeraldo/contact-book/internal/metrics"
	"github.com/mgeraldo/contact-book/internal/transport/http/dto"
	"github.com/mgeraldo/contact-book/internal/transport/http/response"
)

type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	user, err := h.svc.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	log := logger.WithCtx(r.Context())
	log.Info().
		Str("user_id", user.ID).
		Str("email", user.Email).
		Msg("user_registered")
	metrics.RecordRegistration()

	response.Created(w, dto.RegisterData{User: dto.NewUserView(user)})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	toks, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if domain.Is(err, "invalid_credentials") {
			metrics.RecordLogin("invalid_credentials")
		}
		response.WriteError(w, r, err)
		return
	}

	log := logger.WithCtx(r.Context())
	log.Info().Msg("user_logged_in")
	metrics.RecordLogin("success")

	response.OK(w, dto.LoginData{
		Tokens: dto.TokensView{
			AccessToken: toks.AccessToken,
			TokenType:   toks.TokenType,
			ExpiresIn:   toks.ExpiresIn,
		},
	})
}
