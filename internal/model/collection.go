package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Collection holds an ordered sequence of coins belonging to one group.
// AddCoin and RemoveCoin mutate the in-memory sequence only; persisting the
// result is a separate, explicit repository call so multi-step edits can be
// batched.
type Collection struct {
	id      string
	name    string
	groupID string
	coins   []*EuroCoin
}

// NewCollection creates an empty collection with a freshly generated id.
func NewCollection(name, groupID string) (*Collection, error) {
	return newCollection(uuid.New().String(), name, groupID)
}

func newCollection(id, name, groupID string) (*Collection, error) {
	if isBlank(id) {
		return nil, fmt.Errorf("%w: collection id", ErrMissingRequiredField)
	}
	if isBlank(name) {
		return nil, fmt.Errorf("%w: collection name", ErrMissingRequiredField)
	}
	if isBlank(groupID) {
		return nil, fmt.Errorf("%w: collection group id", ErrMissingRequiredField)
	}
	return &Collection{id: id, name: name, groupID: groupID}, nil
}

func (c *Collection) ID() string {
	return c.id
}

func (c *Collection) Name() string {
	return c.name
}

func (c *Collection) SetName(name string) error {
	if isBlank(name) {
		return fmt.Errorf("%w: collection name", ErrMissingRequiredField)
	}
	c.name = name
	return nil
}

func (c *Collection) GroupID() string {
	return c.groupID
}

// Coins returns a copy of the coin sequence in insertion order.
func (c *Collection) Coins() []*EuroCoin {
	out := make([]*EuroCoin, len(c.coins))
	copy(out, c.coins)
	return out
}

// AddCoin appends a coin to the in-memory sequence and stamps it with this
// collection's id.
func (c *Collection) AddCoin(coin *EuroCoin) {
	if coin == nil {
		return
	}
	coin.SetCollectionID(c.id)
	c.coins = append(c.coins, coin)
}

// RemoveCoin removes the coin with the given id from the in-memory sequence.
func (c *Collection) RemoveCoin(coinID string) {
	for i, coin := range c.coins {
		if coin.ID() == coinID {
			c.coins = append(c.coins[:i], c.coins[i+1:]...)
			return
		}
	}
}

// CoinCount is the number of coins currently in the collection.
func (c *Collection) CoinCount() int {
	return len(c.coins)
}

// TotalValue is the summed face value of all coins in cents. Recomputed on
// every call; collections stay small enough that caching is not worth it.
func (c *Collection) TotalValue() int {
	total := 0
	for _, coin := range c.coins {
		total += coin.Value().CentValue()
	}
	return total
}
