package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// CollectionGroup bundles the collections of one user under a common name.
type CollectionGroup struct {
	id          string
	name        string
	ownerID     string
	collections []*Collection
}

// NewCollectionGroup creates an empty group with a freshly generated id.
func NewCollectionGroup(name, ownerID string) (*CollectionGroup, error) {
	return newCollectionGroup(uuid.New().String(), name, ownerID)
}

func newCollectionGroup(id, name, ownerID string) (*CollectionGroup, error) {
	if isBlank(id) {
		return nil, fmt.Errorf("%w: group id", ErrMissingRequiredField)
	}
	if isBlank(name) {
		return nil, fmt.Errorf("%w: group name", ErrMissingRequiredField)
	}
	if isBlank(ownerID) {
		return nil, fmt.Errorf("%w: group owner id", ErrMissingRequiredField)
	}
	return &CollectionGroup{id: id, name: name, ownerID: ownerID}, nil
}

func (g *CollectionGroup) ID() string {
	return g.id
}

func (g *CollectionGroup) Name() string {
	return g.name
}

func (g *CollectionGroup) SetName(name string) error {
	if isBlank(name) {
		return fmt.Errorf("%w: group name", ErrMissingRequiredField)
	}
	g.name = name
	return nil
}

func (g *CollectionGroup) OwnerID() string {
	return g.ownerID
}

// Collections returns a copy of the collection sequence in insertion order.
func (g *CollectionGroup) Collections() []*Collection {
	out := make([]*Collection, len(g.collections))
	copy(out, g.collections)
	return out
}

// AddCollection appends a collection to the in-memory sequence.
func (g *CollectionGroup) AddCollection(collection *Collection) {
	if collection == nil {
		return
	}
	g.collections = append(g.collections, collection)
}

// RemoveCollection removes the collection with the given id from the
// in-memory sequence.
func (g *CollectionGroup) RemoveCollection(collectionID string) {
	for i, collection := range g.collections {
		if collection.ID() == collectionID {
			g.collections = append(g.collections[:i], g.collections[i+1:]...)
			return
		}
	}
}

// TotalCollections is the number of collections in the group.
func (g *CollectionGroup) TotalCollections() int {
	return len(g.collections)
}

// TotalCoins sums the coin counts of all child collections.
func (g *CollectionGroup) TotalCoins() int {
	total := 0
	for _, collection := range g.collections {
		total += collection.CoinCount()
	}
	return total
}

// TotalValue sums the face values of all coins in the group, in cents.
func (g *CollectionGroup) TotalValue() int {
	total := 0
	for _, collection := range g.collections {
		total += collection.TotalValue()
	}
	return total
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
