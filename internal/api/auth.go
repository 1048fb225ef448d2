package api

import (
	"net/http"

	"coincollector/internal/model"
	"coincollector/internal/session"

	"go.uber.org/zap"
)

type authRequest struct {
	Name string `json:"name"`
}

type authResponse struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

// handleRegister creates a user and opens a session for it.
func (s *Service) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := model.NewUser(req.Name)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if err := s.store.CreateUser(r.Context(), user); err != nil {
		writeDomainError(w, err)
		return
	}

	s.setSessionCookie(w, user.ID())
	zap.L().Info("User registered", zap.String("user_id", user.ID()))
	writeJSON(w, http.StatusCreated, authResponse{UserID: user.ID(), Name: user.Name()})
}

// handleLogin opens a session for an existing user, looked up by name.
func (s *Service) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := s.store.GetUserByName(r.Context(), req.Name)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if user == nil {
		writeNotFound(w, "user")
		return
	}

	s.setSessionCookie(w, user.ID())
	zap.L().Info("User logged in", zap.String("user_id", user.ID()))
	writeJSON(w, http.StatusOK, authResponse{UserID: user.ID(), Name: user.Name()})
}

func (s *Service) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(session.CookieName); err == nil {
		s.sessions.Invalidate(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) setSessionCookie(w http.ResponseWriter, userID string) {
	token := s.sessions.Create(userID)
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
