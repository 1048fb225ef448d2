package database

import (
	"context"
	"database/sql"
	"fmt"

	"coincollector/internal/model"
	"coincollector/internal/store"

	"go.uber.org/zap"
)

// Aggregate operations. Loads populate child sequences through separate
// queries per level; saves reconcile the child rows with the in-memory
// aggregate inside one transaction, so a half-saved hierarchy is never
// observable.

// LoadCollection reads a collection together with its coins. Returns nil
// when the collection does not exist.
func (s *Service) LoadCollection(ctx context.Context, collectionID string) (*model.Collection, error) {
	collection, err := s.GetCollection(ctx, collectionID)
	if err != nil || collection == nil {
		return collection, err
	}

	coins, err := s.GetCoinsByCollection(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	for _, coin := range coins {
		collection.AddCoin(coin)
	}
	return collection, nil
}

// LoadGroup reads a group together with its collections and their coins.
// Returns nil when the group does not exist.
func (s *Service) LoadGroup(ctx context.Context, groupID string) (*model.CollectionGroup, error) {
	group, err := s.GetGroup(ctx, groupID)
	if err != nil || group == nil {
		return group, err
	}

	collections, err := s.GetCollectionsByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	for _, collection := range collections {
		coins, err := s.GetCoinsByCollection(ctx, collection.ID())
		if err != nil {
			return nil, err
		}
		for _, coin := range coins {
			collection.AddCoin(coin)
		}
		group.AddCollection(collection)
	}
	return group, nil
}

// LoadUserGroups reads every group of the given owner, fully populated.
func (s *Service) LoadUserGroups(ctx context.Context, ownerID string) ([]*model.CollectionGroup, error) {
	groups, err := s.GetGroupsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	loaded := make([]*model.CollectionGroup, 0, len(groups))
	for _, group := range groups {
		full, err := s.LoadGroup(ctx, group.ID())
		if err != nil {
			return nil, err
		}
		if full == nil {
			// Deleted between the listing and the load; skip.
			continue
		}
		loaded = append(loaded, full)
	}
	return loaded, nil
}

// SaveCollection persists the collection and reconciles its coin rows with
// the in-memory sequence: new coins are inserted, kept coins updated and
// removed coins deleted, all in one transaction.
func (s *Service) SaveCollection(ctx context.Context, collection *model.Collection) error {
	zap.L().Info("Saving collection aggregate",
		zap.String("collection_id", collection.ID()),
		zap.Int("coins", collection.CoinCount()))

	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.saveCollectionTx(ctx, tx, collection); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit collection save: %v", store.ErrStoreUnavailable, err)
	}

	zap.L().Info("Collection aggregate saved", zap.String("collection_id", collection.ID()))
	return nil
}

// SaveGroup persists the group and reconciles its collection subtree the
// same way. Collections dropped from the aggregate are deleted; their coins
// cascade away in the same transaction.
func (s *Service) SaveGroup(ctx context.Context, group *model.CollectionGroup) error {
	zap.L().Info("Saving group aggregate",
		zap.String("group_id", group.ID()),
		zap.Int("collections", group.TotalCollections()))

	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	exists, err := rowExists(ctx, tx, queryGroupExists, group.ID())
	if err != nil {
		return err
	}
	if exists {
		result, err := tx.ExecContext(ctx, queryUpdateGroup, group.Name(), group.ID())
		if err != nil {
			return translateConstraintErr(err)
		}
		if err := checkAffected(result, "group", group.ID()); err != nil {
			return err
		}
	} else {
		if ok, err := rowExists(ctx, tx, queryUserExists, group.OwnerID()); err != nil {
			return err
		} else if !ok {
			return fmt.Errorf("%w: owner %s of group %s", store.ErrParentNotFound, group.OwnerID(), group.ID())
		}
		result, err := tx.ExecContext(ctx, queryInsertGroup, group.ID(), group.Name(), group.OwnerID())
		if err != nil {
			return translateConstraintErr(err)
		}
		if err := checkAffected(result, "group", group.ID()); err != nil {
			return err
		}
	}

	stored, err := idSet(ctx, tx, queryGetCollectionIdsByGroup, group.ID())
	if err != nil {
		return err
	}

	kept := make(map[string]bool, group.TotalCollections())
	for _, collection := range group.Collections() {
		kept[collection.ID()] = true
		if err := s.saveCollectionTx(ctx, tx, collection); err != nil {
			return err
		}
	}

	for id := range stored {
		if kept[id] {
			continue
		}
		result, err := tx.ExecContext(ctx, queryDeleteCollection, id)
		if err != nil {
			return fmt.Errorf("%w: unable to delete collection %s: %v", store.ErrStoreUnavailable, id, err)
		}
		if err := checkAffected(result, "collection", id); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit group save: %v", store.ErrStoreUnavailable, err)
	}

	zap.L().Info("Group aggregate saved", zap.String("group_id", group.ID()))
	return nil
}

func (s *Service) saveCollectionTx(ctx context.Context, tx *sql.Tx, collection *model.Collection) error {
	exists, err := rowExists(ctx, tx, queryCollectionExists, collection.ID())
	if err != nil {
		return err
	}
	if exists {
		result, err := tx.ExecContext(ctx, queryUpdateCollection, collection.Name(), collection.ID())
		if err != nil {
			return translateConstraintErr(err)
		}
		if err := checkAffected(result, "collection", collection.ID()); err != nil {
			return err
		}
	} else {
		if err := s.createCollectionTx(ctx, tx, collection); err != nil {
			return err
		}
	}

	stored, err := idSet(ctx, tx, queryGetCoinIdsByCollection, collection.ID())
	if err != nil {
		return err
	}

	kept := make(map[string]bool, collection.CoinCount())
	for _, coin := range collection.Coins() {
		kept[coin.ID()] = true
		if stored[coin.ID()] {
			if err := s.updateCoinTx(ctx, tx, coin); err != nil {
				return err
			}
		} else {
			if err := s.createCoinTx(ctx, tx, coin); err != nil {
				return err
			}
		}
	}

	for id := range stored {
		if kept[id] {
			continue
		}
		result, err := tx.ExecContext(ctx, queryDeleteCoin, id)
		if err != nil {
			return fmt.Errorf("%w: unable to delete coin %s: %v", store.ErrStoreUnavailable, id, err)
		}
		if err := checkAffected(result, "coin", id); err != nil {
			return err
		}
	}

	return nil
}

func idSet(ctx context.Context, tx *sql.Tx, query, arg string) (map[string]bool, error) {
	rows, err := tx.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to query ids: %v", store.ErrStoreUnavailable, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			zap.L().Warn("Failed to close rows", zap.Error(err))
		}
	}()

	ids := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: unable to scan id row: %v", store.ErrStoreUnavailable, err)
		}
		ids[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating id rows: %v", store.ErrStoreUnavailable, err)
	}
	return ids, nil
}
