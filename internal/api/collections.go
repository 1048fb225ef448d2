package api

import (
	"context"
	"net/http"

	"coincollector/internal/model"
	"coincollector/internal/session"
	"coincollector/internal/store"

	"github.com/go-chi/chi/v5"
)

type createCollectionRequest struct {
	Name    string `json:"name"`
	GroupID string `json:"groupId"`
}

func (s *Service) handleCreateCollection(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.UserIDFromContext(r.Context())

	var req createCollectionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	// The target group must belong to the caller.
	if _, ok := s.authorizeGroup(w, r.Context(), req.GroupID, userID); !ok {
		return
	}

	collection, err := model.NewCollection(req.Name, req.GroupID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if err := s.store.CreateCollection(r.Context(), collection); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, store.CollectionResponseFromDomain(collection))
}

func (s *Service) handleGetCollection(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.UserIDFromContext(r.Context())
	collectionID := chi.URLParam(r, "collectionID")

	collection, ok := s.authorizeCollection(w, r.Context(), collectionID, userID)
	if !ok {
		return
	}

	full, err := s.store.LoadCollection(r.Context(), collection.ID())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if full == nil {
		writeNotFound(w, "collection")
		return
	}
	writeJSON(w, http.StatusOK, store.CollectionResponseFromDomain(full))
}

func (s *Service) handleRenameCollection(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.UserIDFromContext(r.Context())
	collectionID := chi.URLParam(r, "collectionID")

	var req renameRequest
	if !decodeBody(w, r, &req) {
		return
	}

	collection, ok := s.authorizeCollection(w, r.Context(), collectionID, userID)
	if !ok {
		return
	}

	if err := collection.SetName(req.Name); err != nil {
		writeDomainError(w, err)
		return
	}
	if err := s.store.UpdateCollection(r.Context(), collection); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, store.CollectionResponseFromDomain(collection))
}

func (s *Service) handleDeleteCollection(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.UserIDFromContext(r.Context())
	collectionID := chi.URLParam(r, "collectionID")

	if _, ok := s.authorizeCollection(w, r.Context(), collectionID, userID); !ok {
		return
	}

	if err := s.store.DeleteCollection(r.Context(), collectionID); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// authorizeCollection loads the collection and walks up to the group to
// verify ownership. On failure the response has already been written.
func (s *Service) authorizeCollection(w http.ResponseWriter, ctx context.Context, collectionID, userID string) (*model.Collection, bool) {
	collection, err := s.store.GetCollection(ctx, collectionID)
	if err != nil {
		writeDomainError(w, err)
		return nil, false
	}
	if collection == nil {
		writeNotFound(w, "collection")
		return nil, false
	}
	if _, ok := s.authorizeGroup(w, ctx, collection.GroupID(), userID); !ok {
		return nil, false
	}
	return collection, true
}
