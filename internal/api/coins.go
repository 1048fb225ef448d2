package api

import (
	"context"
	"net/http"

	"coincollector/internal/model"
	"coincollector/internal/session"
	"coincollector/internal/store"

	"github.com/go-chi/chi/v5"
)

type coinActionRequest struct {
	Year         int    `json:"year"`
	Value        int    `json:"value"`
	Country      string `json:"country"`
	CollectionID string `json:"collectionId"`
	Mint         string `json:"mint"`
	Description  string `json:"description"`
}

type updateCoinRequest struct {
	Description string `json:"description"`
}

func (s *Service) handleCreateCoin(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.UserIDFromContext(r.Context())

	var req coinActionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if _, ok := s.authorizeCollection(w, r.Context(), req.CollectionID, userID); !ok {
		return
	}

	coin, err := buildCoin(req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if err := s.store.CreateCoin(r.Context(), coin); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, store.CoinResponseFromDomain(coin))
}

func (s *Service) handleGetCoin(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.UserIDFromContext(r.Context())
	coinID := chi.URLParam(r, "coinID")

	coin, ok := s.authorizeCoin(w, r.Context(), coinID, userID)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, store.CoinResponseFromDomain(coin))
}

// handleUpdateCoin changes the description only. Structural fields are
// part of the coin's identity; changing them means delete and recreate.
func (s *Service) handleUpdateCoin(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.UserIDFromContext(r.Context())
	coinID := chi.URLParam(r, "coinID")

	var req updateCoinRequest
	if !decodeBody(w, r, &req) {
		return
	}

	coin, ok := s.authorizeCoin(w, r.Context(), coinID, userID)
	if !ok {
		return
	}

	coin.SetDescription(model.NewCoinDescription(req.Description))
	if err := s.store.UpdateCoin(r.Context(), coin); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, store.CoinResponseFromDomain(coin))
}

func (s *Service) handleDeleteCoin(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.UserIDFromContext(r.Context())
	coinID := chi.URLParam(r, "coinID")

	if _, ok := s.authorizeCoin(w, r.Context(), coinID, userID); !ok {
		return
	}

	if err := s.store.DeleteCoin(r.Context(), coinID); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// authorizeCoin loads the coin and walks the hierarchy up to the owner. On
// failure the response has already been written.
func (s *Service) authorizeCoin(w http.ResponseWriter, ctx context.Context, coinID, userID string) (*model.EuroCoin, bool) {
	coin, err := s.store.GetCoin(ctx, coinID)
	if err != nil {
		writeDomainError(w, err)
		return nil, false
	}
	if coin == nil {
		writeNotFound(w, "coin")
		return nil, false
	}
	if _, ok := s.authorizeCollection(w, ctx, coin.CollectionID(), userID); !ok {
		return nil, false
	}
	return coin, true
}

func buildCoin(req coinActionRequest) (*model.EuroCoin, error) {
	builder := model.NewCoinBuilder().
		Year(req.Year).
		CollectionID(req.CollectionID)

	if req.Value != 0 {
		value, err := model.CoinValueFromCents(req.Value)
		if err != nil {
			return nil, err
		}
		builder.Value(value)
	}
	if req.Country != "" {
		country, err := model.CoinCountryFromIsoCode(req.Country)
		if err != nil {
			return nil, err
		}
		builder.MintCountry(country)
	}
	if req.Mint != "" {
		mint, err := model.MintFromMark(req.Mint)
		if err != nil {
			return nil, err
		}
		builder.Mint(mint)
	}
	if req.Description != "" {
		builder.Description(model.NewCoinDescription(req.Description))
	}

	return builder.Build()
}
