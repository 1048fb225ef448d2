package store

import (
	"context"
	"errors"

	"coincollector/internal/model"
)

// Sentinel errors shared across all backend implementations.
var (
	// ErrNotFound: the given id has no row (update/delete paths; reads
	// return a nil entity instead).
	ErrNotFound = errors.New("entity not found")
	// ErrAlreadyExists: a create collided on id or unique name.
	ErrAlreadyExists = errors.New("entity already exists")
	// ErrParentNotFound: a create referenced a missing foreign-key parent.
	ErrParentNotFound = errors.New("parent entity not found")
	// ErrCorruptRow: a persisted row failed domain validation on read.
	ErrCorruptRow = errors.New("corrupt row")
	// ErrStorageConsistency: a write affected an unexpected row count.
	ErrStorageConsistency = errors.New("storage consistency violation")
	// ErrStoreUnavailable: the underlying engine failed at the
	// connection or transaction level.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// UserRepository provides CRUD access to users.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, userID string) (*model.User, error)
	GetUserByName(ctx context.Context, name string) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, userID string) error
	UserExists(ctx context.Context, userID string) (bool, error)
}

// GroupRepository provides CRUD access to collection groups.
type GroupRepository interface {
	CreateGroup(ctx context.Context, group *model.CollectionGroup) error
	GetGroup(ctx context.Context, groupID string) (*model.CollectionGroup, error)
	GetGroupsByOwner(ctx context.Context, ownerID string) ([]*model.CollectionGroup, error)
	UpdateGroup(ctx context.Context, group *model.CollectionGroup) error
	DeleteGroup(ctx context.Context, groupID string) error
	GroupExists(ctx context.Context, groupID string) (bool, error)
}

// CollectionRepository provides CRUD access to collections.
type CollectionRepository interface {
	CreateCollection(ctx context.Context, collection *model.Collection) error
	GetCollection(ctx context.Context, collectionID string) (*model.Collection, error)
	GetCollectionsByGroup(ctx context.Context, groupID string) ([]*model.Collection, error)
	UpdateCollection(ctx context.Context, collection *model.Collection) error
	DeleteCollection(ctx context.Context, collectionID string) error
	CollectionExists(ctx context.Context, collectionID string) (bool, error)
}

// CoinRepository provides CRUD access to coins.
type CoinRepository interface {
	CreateCoin(ctx context.Context, coin *model.EuroCoin) error
	GetCoin(ctx context.Context, coinID string) (*model.EuroCoin, error)
	GetCoinsByCollection(ctx context.Context, collectionID string) ([]*model.EuroCoin, error)
	UpdateCoin(ctx context.Context, coin *model.EuroCoin) error
	DeleteCoin(ctx context.Context, coinID string) error
	CoinExists(ctx context.Context, coinID string) (bool, error)
}

// AggregateStore loads and persists whole subtrees of the hierarchy. Loads
// populate the child sequences; saves reconcile the child rows with the
// in-memory aggregate inside one transaction.
type AggregateStore interface {
	LoadCollection(ctx context.Context, collectionID string) (*model.Collection, error)
	LoadGroup(ctx context.Context, groupID string) (*model.CollectionGroup, error)
	LoadUserGroups(ctx context.Context, ownerID string) ([]*model.CollectionGroup, error)
	SaveCollection(ctx context.Context, collection *model.Collection) error
	SaveGroup(ctx context.Context, group *model.CollectionGroup) error
}

// Store is the full contract the SQLite backend satisfies.
type Store interface {
	UserRepository
	GroupRepository
	CollectionRepository
	CoinRepository
	AggregateStore

	Close()
}
