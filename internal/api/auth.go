package api

import (
	"errors"
	"net/http"

	"github.com/tragkas/portfolio/internal/auth"
	"github.com/tragkas/portfolio/internal/domain"
)

// login handles POST /api/login
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := s.store.GetUserByUsername(r.Context(), req.Username)
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		s.writeStoreError(w, r, "log in", err)
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := auth.NewToken(user.ID, user.Username, s.secret)
	if err != nil {
		s.writeStoreError(w, r, "issue token", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"token":    token,
		"username": user.Username,
	})
}

// updateCredentials handles PUT /api/credentials
func (s *Server) updateCredentials(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	claims, ok := claimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := s.store.GetUserByID(r.Context(), claims.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		s.writeStoreError(w, r, "update credentials", err)
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.OldPassword) {
		writeError(w, http.StatusUnauthorized, "incorrect old password")
		return
	}

	hash, err := auth.HashPassword(req.NewPassword, s.bcryptCost)
	if err != nil {
		s.writeStoreError(w, r, "update credentials", err)
		return
	}

	if err := s.store.UpdateCredentials(r.Context(), user.ID, req.NewUsername, hash); err != nil {
		s.writeStoreError(w, r, "update credentials", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Credentials updated successfully"})
}
