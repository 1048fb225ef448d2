package api

import (
	"context"
	"net/http"

	"coincollector/internal/model"
	"coincollector/internal/session"
	"coincollector/internal/store"

	"github.com/go-chi/chi/v5"
)

type createGroupRequest struct {
	Name string `json:"name"`
}

type renameRequest struct {
	Name string `json:"name"`
}

// handleListGroups returns every group of the caller, fully populated.
func (s *Service) handleListGroups(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.UserIDFromContext(r.Context())

	groups, err := s.store.LoadUserGroups(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	responses := make([]store.GroupResponse, 0, len(groups))
	for _, group := range groups {
		responses = append(responses, store.GroupResponseFromDomain(group))
	}
	writeJSON(w, http.StatusOK, responses)
}

func (s *Service) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.UserIDFromContext(r.Context())

	var req createGroupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	group, err := model.NewCollectionGroup(req.Name, userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if err := s.store.CreateGroup(r.Context(), group); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, store.GroupResponseFromDomain(group))
}

func (s *Service) handleGetGroup(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.UserIDFromContext(r.Context())
	groupID := chi.URLParam(r, "groupID")

	group, ok := s.authorizeGroup(w, r.Context(), groupID, userID)
	if !ok {
		return
	}

	full, err := s.store.LoadGroup(r.Context(), group.ID())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if full == nil {
		writeNotFound(w, "group")
		return
	}
	writeJSON(w, http.StatusOK, store.GroupResponseFromDomain(full))
}

func (s *Service) handleRenameGroup(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.UserIDFromContext(r.Context())
	groupID := chi.URLParam(r, "groupID")

	var req renameRequest
	if !decodeBody(w, r, &req) {
		return
	}

	group, ok := s.authorizeGroup(w, r.Context(), groupID, userID)
	if !ok {
		return
	}

	if err := group.SetName(req.Name); err != nil {
		writeDomainError(w, err)
		return
	}
	if err := s.store.UpdateGroup(r.Context(), group); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, store.GroupResponseFromDomain(group))
}

// handleDeleteGroup deletes the group row only; the schema cascades the
// collections and coins away.
func (s *Service) handleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.UserIDFromContext(r.Context())
	groupID := chi.URLParam(r, "groupID")

	if _, ok := s.authorizeGroup(w, r.Context(), groupID, userID); !ok {
		return
	}

	if err := s.store.DeleteGroup(r.Context(), groupID); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// authorizeGroup loads the group and verifies the caller owns it. On
// failure the response has already been written.
func (s *Service) authorizeGroup(w http.ResponseWriter, ctx context.Context, groupID, userID string) (*model.CollectionGroup, bool) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		writeDomainError(w, err)
		return nil, false
	}
	if group == nil {
		writeNotFound(w, "group")
		return nil, false
	}
	if group.OwnerID() != userID {
		writeForbidden(w)
		return nil, false
	}
	return group, true
}
