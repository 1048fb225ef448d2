package database

import (
	"context"
	"testing"

	"coincollector/internal/model"
)

func TestLoadCollection_PopulatesCoins(t *testing.T) {
	service, cleanup := setupTestDb(t)
	defer cleanup()

	ctx := context.Background()
	user := seedUser(t, service, "Alice")
	group := seedGroup(t, service, "Euro Coins", user.ID())
	collection := seedCollection(t, service, "Starter Set", group.ID())
	seedCoin(t, service, 2024, model.OneEuro, model.Germany, collection.ID())
	seedCoin(t, service, 2024, model.TwoEuros, model.France, collection.ID())

	loaded, err := service.LoadCollection(ctx, collection.ID())
	if err != nil {
		t.Fatalf("LoadCollection failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("Expected collection, got nil")
	}
	if loaded.CoinCount() != 2 {
		t.Errorf("Expected 2 coins, got %d", loaded.CoinCount())
	}
	if loaded.TotalValue() != 300 {
		t.Errorf("Expected total 300 cents, got %d", loaded.TotalValue())
	}
}

func TestLoadCollection_Missing(t *testing.T) {
	service, cleanup := setupTestDb(t)
	defer cleanup()

	loaded, err := service.LoadCollection(context.Background(), "no-such-collection")
	if err != nil {
		t.Fatalf("LoadCollection failed: %v", err)
	}
	if loaded != nil {
		t.Errorf("Expected nil for missing collection, got %+v", loaded)
	}
}

func TestSaveCollection_ReconcilesCoins(t *testing.T) {
	service, cleanup := setupTestDb(t)
	defer cleanup()

	ctx := context.Background()
	user := seedUser(t, service, "Alice")
	group := seedGroup(t, service, "Euro Coins", user.ID())
	collection := seedCollection(t, service, "Starter Set", group.ID())
	removed := seedCoin(t, service, 2024, model.OneEuro, model.Germany, collection.ID())
	kept := seedCoin(t, service, 2010, model.FiftyCents, model.Italy, collection.ID())

	// Edit the aggregate in memory: drop one coin, add another, rename.
	loaded, err := service.LoadCollection(ctx, collection.ID())
	if err != nil {
		t.Fatalf("LoadCollection failed: %v", err)
	}
	loaded.RemoveCoin(removed.ID())
	added := newCoin(t, 2002, model.TwoEuros, model.Spain, loaded.ID())
	loaded.AddCoin(added)
	if err := loaded.SetName("Starter Set v2"); err != nil {
		t.Fatalf("SetName failed: %v", err)
	}

	if err := service.SaveCollection(ctx, loaded); err != nil {
		t.Fatalf("SaveCollection failed: %v", err)
	}

	reloaded, err := service.LoadCollection(ctx, collection.ID())
	if err != nil {
		t.Fatalf("LoadCollection failed: %v", err)
	}
	if reloaded.Name() != "Starter Set v2" {
		t.Errorf("Expected renamed collection, got %q", reloaded.Name())
	}
	if reloaded.CoinCount() != 2 {
		t.Fatalf("Expected 2 coins after reconcile, got %d", reloaded.CoinCount())
	}

	ids := make(map[string]bool)
	for _, coin := range reloaded.Coins() {
		ids[coin.ID()] = true
	}
	if ids[removed.ID()] {
		t.Errorf("Expected coin %q deleted by reconcile", removed.ID())
	}
	if !ids[kept.ID()] || !ids[added.ID()] {
		t.Errorf("Expected kept and added coins present, got %v", ids)
	}
}

func TestSaveGroup_InsertsWholeSubtree(t *testing.T) {
	service, cleanup := setupTestDb(t)
	defer cleanup()

	ctx := context.Background()
	user := seedUser(t, service, "Alice")

	group, err := model.NewCollectionGroup("Euro Coins", user.ID())
	if err != nil {
		t.Fatalf("NewCollectionGroup failed: %v", err)
	}
	collection, err := model.NewCollection("Starter Set", group.ID())
	if err != nil {
		t.Fatalf("NewCollection failed: %v", err)
	}
	collection.AddCoin(newCoin(t, 2024, model.OneEuro, model.Germany, collection.ID()))
	group.AddCollection(collection)

	if err := service.SaveGroup(ctx, group); err != nil {
		t.Fatalf("SaveGroup failed: %v", err)
	}

	loaded, err := service.LoadGroup(ctx, group.ID())
	if err != nil {
		t.Fatalf("LoadGroup failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("Expected group, got nil")
	}
	if loaded.TotalCollections() != 1 || loaded.TotalCoins() != 1 {
		t.Errorf("Expected 1 collection with 1 coin, got %d/%d", loaded.TotalCollections(), loaded.TotalCoins())
	}
}

func TestSaveGroup_DeletesDroppedCollections(t *testing.T) {
	service, cleanup := setupTestDb(t)
	defer cleanup()

	ctx := context.Background()
	user := seedUser(t, service, "Alice")
	group := seedGroup(t, service, "Euro Coins", user.ID())
	dropped := seedCollection(t, service, "Starter Set", group.ID())
	coin := seedCoin(t, service, 2024, model.OneEuro, model.Germany, dropped.ID())
	seedCollection(t, service, "Commemoratives", group.ID())

	loaded, err := service.LoadGroup(ctx, group.ID())
	if err != nil {
		t.Fatalf("LoadGroup failed: %v", err)
	}
	loaded.RemoveCollection(dropped.ID())

	if err := service.SaveGroup(ctx, loaded); err != nil {
		t.Fatalf("SaveGroup failed: %v", err)
	}

	if got, err := service.GetCollection(ctx, dropped.ID()); err != nil || got != nil {
		t.Errorf("Expected dropped collection deleted, got %+v (err %v)", got, err)
	}
	// Its coins cascade away with it.
	if got, err := service.GetCoin(ctx, coin.ID()); err != nil || got != nil {
		t.Errorf("Expected coin cascaded away, got %+v (err %v)", got, err)
	}
}

func TestLoadUserGroups_EndToEnd(t *testing.T) {
	service, cleanup := setupTestDb(t)
	defer cleanup()

	ctx := context.Background()
	alice := seedUser(t, service, "Alice")
	group := seedGroup(t, service, "Euro Coins", alice.ID())
	collection := seedCollection(t, service, "2024 Starter Set", group.ID())

	coin, err := model.NewCoinBuilder().
		Year(2024).
		Value(model.OneEuro).
		MintCountry(model.Germany).
		Mint(model.Berlin).
		CollectionID(collection.ID()).
		Build()
	if err != nil {
		t.Fatalf("Failed to build coin: %v", err)
	}
	if err := service.CreateCoin(ctx, coin); err != nil {
		t.Fatalf("CreateCoin failed: %v", err)
	}

	groups, err := service.LoadUserGroups(ctx, alice.ID())
	if err != nil {
		t.Fatalf("LoadUserGroups failed: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("Expected 1 group, got %d", len(groups))
	}

	got := groups[0]
	if got.Name() != "Euro Coins" {
		t.Errorf("Expected group Euro Coins, got %q", got.Name())
	}
	if got.TotalCollections() != 1 || got.TotalCoins() != 1 {
		t.Errorf("Expected 1 collection with 1 coin, got %d/%d", got.TotalCollections(), got.TotalCoins())
	}
	if got.TotalValue() != 100 {
		t.Errorf("Expected total value 100 cents, got %d", got.TotalValue())
	}

	loadedCoin := got.Collections()[0].Coins()[0]
	if loadedCoin.Description().Text() != "1 Euro coin from Germany from the year 2024 from mint A" {
		t.Errorf("Unexpected description: %q", loadedCoin.Description().Text())
	}
}
