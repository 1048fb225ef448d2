package database

import (
	"context"
	"testing"
	"time"

	"coincollector/internal/config"
	"coincollector/internal/model"
)

// setupTestDb opens an in-memory store with the real schema. A single pooled
// connection keeps every statement on the same in-memory database.
func setupTestDb(t *testing.T) (*Service, func()) {
	t.Helper()

	cfg := config.DatabaseConfig{
		Path:         ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		PingTimeout:  5 * time.Second,
	}

	service, err := NewService(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	cleanup := func() {
		service.Close()
	}

	return service, cleanup
}

func seedUser(t *testing.T, service *Service, name string) *model.User {
	t.Helper()
	user, err := model.NewUser(name)
	if err != nil {
		t.Fatalf("NewUser failed: %v", err)
	}
	if err := service.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func seedGroup(t *testing.T, service *Service, name, ownerID string) *model.CollectionGroup {
	t.Helper()
	group, err := model.NewCollectionGroup(name, ownerID)
	if err != nil {
		t.Fatalf("NewCollectionGroup failed: %v", err)
	}
	if err := service.CreateGroup(context.Background(), group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	return group
}

func seedCollection(t *testing.T, service *Service, name, groupID string) *model.Collection {
	t.Helper()
	collection, err := model.NewCollection(name, groupID)
	if err != nil {
		t.Fatalf("NewCollection failed: %v", err)
	}
	if err := service.CreateCollection(context.Background(), collection); err != nil {
		t.Fatalf("CreateCollection failed: %v", err)
	}
	return collection
}

func newCoin(t *testing.T, year int, value model.CoinValue, country model.CoinCountry, collectionID string) *model.EuroCoin {
	t.Helper()
	coin, err := model.NewCoinBuilder().
		Year(year).
		Value(value).
		MintCountry(country).
		CollectionID(collectionID).
		Build()
	if err != nil {
		t.Fatalf("Failed to build coin: %v", err)
	}
	return coin
}

func seedCoin(t *testing.T, service *Service, year int, value model.CoinValue, country model.CoinCountry, collectionID string) *model.EuroCoin {
	t.Helper()
	coin := newCoin(t, year, value, country, collectionID)
	if err := service.CreateCoin(context.Background(), coin); err != nil {
		t.Fatalf("CreateCoin failed: %v", err)
	}
	return coin
}
