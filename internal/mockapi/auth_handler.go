package mockapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Tahancr42/parastore-frontend/internal/domain"
)

type loginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	account, ok := devUsers[req.Email]
	if !ok || req.Password == "" {
		respondError(w, http.StatusUnauthorized, "bad_credentials", "unknown email or missing password")
		return
	}

	claims := jwt.RegisteredClaims{
		Subject:   account.UserID,
		Issuer:    "parastore-mockapi",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		s.log.Error("token signing failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "could not issue token")
		return
	}

	s.log.Info("login", "email", req.Email, "role", account.Role)
	respondJSON(w, http.StatusOK, domain.Credentials{
		Token:  token,
		Role:   account.Role,
		UserID: account.UserID,
	})
}
