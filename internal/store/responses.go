package store

import "coincollector/internal/model"

// Read-only response projections handed to the UI layer. They flatten the
// aggregates and carry no behavior.

type CoinResponse struct {
	ID           string `json:"id"`
	Year         int    `json:"year"`
	Value        int    `json:"value"`
	Country      string `json:"country"`
	Mint         string `json:"mint,omitempty"`
	Description  string `json:"description"`
	CollectionID string `json:"collectionId"`
}

type CollectionResponse struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	GroupID string         `json:"groupId"`
	Coins   []CoinResponse `json:"coins"`
}

type GroupResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Collections []CollectionResponse `json:"collections"`
}

func CoinResponseFromDomain(coin *model.EuroCoin) CoinResponse {
	mint := ""
	if !coin.Mint().IsZero() {
		mint = coin.Mint().MintMark()
	}
	return CoinResponse{
		ID:           coin.ID(),
		Year:         coin.Year(),
		Value:        coin.Value().CentValue(),
		Country:      coin.MintCountry().IsoCode(),
		Mint:         mint,
		Description:  coin.Description().Text(),
		CollectionID: coin.CollectionID(),
	}
}

func CollectionResponseFromDomain(collection *model.Collection) CollectionResponse {
	coins := make([]CoinResponse, 0, collection.CoinCount())
	for _, coin := range collection.Coins() {
		coins = append(coins, CoinResponseFromDomain(coin))
	}
	return CollectionResponse{
		ID:      collection.ID(),
		Name:    collection.Name(),
		GroupID: collection.GroupID(),
		Coins:   coins,
	}
}

func GroupResponseFromDomain(group *model.CollectionGroup) GroupResponse {
	collections := make([]CollectionResponse, 0, group.TotalCollections())
	for _, collection := range group.Collections() {
		collections = append(collections, CollectionResponseFromDomain(collection))
	}
	return GroupResponse{
		ID:          group.ID(),
		Name:        group.Name(),
		Collections: collections,
	}
}
