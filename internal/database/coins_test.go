package database

import (
	"context"
	"errors"
	"testing"

	"coincollector/internal/model"
	"coincollector/internal/store"
)

func TestCreateCoin_AndGet(t *testing.T) {
	service, cleanup := setupTestDb(t)
	defer cleanup()

	ctx := context.Background()
	user := seedUser(t, service, "Alice")
	group := seedGroup(t, service, "Euro Coins", user.ID())
	collection := seedCollection(t, service, "Starter Set", group.ID())
	coin := seedCoin(t, service, 2024, model.OneEuro, model.Germany, collection.ID())

	got, err := service.GetCoin(ctx, coin.ID())
	if err != nil {
		t.Fatalf("GetCoin failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected coin, got nil")
	}
	if got.Year() != 2024 || got.Value() != model.OneEuro || got.MintCountry() != model.Germany {
		t.Errorf("Coin fields did not survive the round trip: %+v", got)
	}
	if got.Description().Text() != "1 Euro coin from Germany from the year 2024" {
		t.Errorf("Unexpected description: %q", got.Description().Text())
	}
}

func TestCreateCoin_MissingCollection(t *testing.T) {
	service, cleanup := setupTestDb(t)
	defer cleanup()

	coin := newCoin(t, 2024, model.OneEuro, model.Germany, "no-such-collection")
	if err := service.CreateCoin(context.Background(), coin); !errors.Is(err, store.ErrParentNotFound) {
		t.Errorf("Expected ErrParentNotFound, got %v", err)
	}
}

func TestCreateCoin_IdenticalContentRejected(t *testing.T) {
	service, cleanup := setupTestDb(t)
	defer cleanup()

	user := seedUser(t, service, "Alice")
	group := seedGroup(t, service, "Euro Coins", user.ID())
	collection := seedCollection(t, service, "Starter Set", group.ID())
	seedCoin(t, service, 2024, model.OneEuro, model.Germany, collection.ID())

	twin := newCoin(t, 2024, model.OneEuro, model.Germany, collection.ID())
	if err := service.CreateCoin(context.Background(), twin); !errors.Is(err, store.ErrAlreadyExists) {
		t.Errorf("Expected ErrAlreadyExists for content-identical coin, got %v", err)
	}
}

func TestUpdateCoin_Description(t *testing.T) {
	service, cleanup := setupTestDb(t)
	defer cleanup()

	ctx := context.Background()
	user := seedUser(t, service, "Alice")
	group := seedGroup(t, service, "Euro Coins", user.ID())
	collection := seedCollection(t, service, "Starter Set", group.ID())
	coin := seedCoin(t, service, 2024, model.OneEuro, model.Germany, collection.ID())

	coin.SetDescription(model.NewCoinDescription("Federal Eagle, slight wear"))
	if err := service.UpdateCoin(ctx, coin); err != nil {
		t.Fatalf("UpdateCoin failed: %v", err)
	}

	got, err := service.GetCoin(ctx, coin.ID())
	if err != nil {
		t.Fatalf("GetCoin failed: %v", err)
	}
	if got.Description().Text() != "Federal Eagle, slight wear" {
		t.Errorf("Expected updated description, got %q", got.Description().Text())
	}
}

func TestDeleteCoin_Missing(t *testing.T) {
	service, cleanup := setupTestDb(t)
	defer cleanup()

	if err := service.DeleteCoin(context.Background(), "no-such-coin"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestGetCoinsByCollection_Ordering(t *testing.T) {
	service, cleanup := setupTestDb(t)
	defer cleanup()

	ctx := context.Background()
	user := seedUser(t, service, "Alice")
	group := seedGroup(t, service, "Euro Coins", user.ID())
	collection := seedCollection(t, service, "Starter Set", group.ID())
	seedCoin(t, service, 2024, model.OneEuro, model.Germany, collection.ID())
	seedCoin(t, service, 2002, model.FiftyCents, model.France, collection.ID())
	seedCoin(t, service, 2010, model.TwoEuros, model.Italy, collection.ID())

	coins, err := service.GetCoinsByCollection(ctx, collection.ID())
	if err != nil {
		t.Fatalf("GetCoinsByCollection failed: %v", err)
	}
	if len(coins) != 3 {
		t.Fatalf("Expected 3 coins, got %d", len(coins))
	}
	for i, year := range []int{2002, 2010, 2024} {
		if coins[i].Year() != year {
			t.Errorf("Expected coin %d from year %d, got %d", i, year, coins[i].Year())
		}
	}
}

func TestGetCoin_NullMint(t *testing.T) {
	service, cleanup := setupTestDb(t)
	defer cleanup()

	ctx := context.Background()
	user := seedUser(t, service, "Alice")
	group := seedGroup(t, service, "Euro Coins", user.ID())
	collection := seedCollection(t, service, "Starter Set", group.ID())

	withMint, err := model.NewCoinBuilder().
		Year(2024).
		Value(model.OneEuro).
		MintCountry(model.Germany).
		Mint(model.Berlin).
		CollectionID(collection.ID()).
		Build()
	if err != nil {
		t.Fatalf("Failed to build coin: %v", err)
	}
	if err := service.CreateCoin(ctx, withMint); err != nil {
		t.Fatalf("CreateCoin failed: %v", err)
	}
	without := seedCoin(t, service, 2024, model.TwoEuros, model.France, collection.ID())

	got, err := service.GetCoin(ctx, withMint.ID())
	if err != nil {
		t.Fatalf("GetCoin failed: %v", err)
	}
	if got.Mint() != model.Berlin {
		t.Errorf("Expected mint Berlin, got %v", got.Mint())
	}

	got, err = service.GetCoin(ctx, without.ID())
	if err != nil {
		t.Fatalf("GetCoin failed: %v", err)
	}
	if !got.Mint().IsZero() {
		t.Errorf("Expected absent mint, got %v", got.Mint())
	}
}

func TestCreateCollection_DuplicateName(t *testing.T) {
	service, cleanup := setupTestDb(t)
	defer cleanup()

	user := seedUser(t, service, "Alice")
	group := seedGroup(t, service, "Euro Coins", user.ID())
	seedCollection(t, service, "Starter Set", group.ID())

	dup, err := model.NewCollection("Starter Set", group.ID())
	if err != nil {
		t.Fatalf("NewCollection failed: %v", err)
	}
	if err := service.CreateCollection(context.Background(), dup); !errors.Is(err, store.ErrAlreadyExists) {
		t.Errorf("Expected ErrAlreadyExists, got %v", err)
	}
}
