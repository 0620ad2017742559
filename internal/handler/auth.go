package handler

import (
	"net/http"

	"github.com/AswiniParameswaran/GreenCart-System/internal/user"
	"github.com/AswiniParameswaran/GreenCart-System/internal/utils"
)

const tokenLifetime = "24Hr"

type AuthHandler struct {
	users user.Service
}

func NewAuthHandler(users user.Service) *AuthHandler {
	return &AuthHandler{users: users}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	// Caller is nil for anonymous registration; a signed-in admin may grant
	// the ADMIN role to the new account.
	var caller *utils.Caller
	if c, ok := utils.CallerFromContext(r.Context()); ok {
		caller = &c
	}

	u, err := h.users.Register(r.Context(), caller, user.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, Response{
		Status:  http.StatusOK,
		Message: "user registered successfully",
		User:    toUserDTO(u),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	token, u, err := h.users.Login(r.Context(), user.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, Response{
		Status:         http.StatusOK,
		Message:        "user logged in successfully",
		Token:          token,
		Role:           u.Role,
		ExpirationTime: tokenLifetime,
	})
}
