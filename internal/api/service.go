/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package api

import (
	"net/http"

	"coincollector/internal/session"
	"coincollector/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Service exposes the repository layer over HTTP. Handlers contain mapping
// logic only: requests become repository calls, entities become response
// projections.
type Service struct {
	store    store.Store
	sessions *session.Manager
}

func NewService(s store.Store, sessions *session.Manager) *Service {
	return &Service{store: s, sessions: sessions}
}

// Router assembles the API routes. Everything below /api except the auth
// endpoints requires a live session.
func (s *Service) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)

		r.Group(func(r chi.Router) {
			r.Use(session.Middleware(s.sessions))

			r.Get("/groups", s.handleListGroups)
			r.Post("/groups", s.handleCreateGroup)
			r.Get("/groups/{groupID}", s.handleGetGroup)
			r.Patch("/groups/{groupID}", s.handleRenameGroup)
			r.Delete("/groups/{groupID}", s.handleDeleteGroup)

			r.Post("/collections", s.handleCreateCollection)
			r.Get("/collections/{collectionID}", s.handleGetCollection)
			r.Patch("/collections/{collectionID}", s.handleRenameCollection)
			r.Delete("/collections/{collectionID}", s.handleDeleteCollection)

			r.Post("/coins", s.handleCreateCoin)
			r.Get("/coins/{coinID}", s.handleGetCoin)
			r.Patch("/coins/{coinID}", s.handleUpdateCoin)
			r.Delete("/coins/{coinID}", s.handleDeleteCoin)
		})
	})

	return r
}
