package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"coincollector/internal/model"
	"coincollector/internal/store"

	"go.uber.org/zap"
)

func (s *Service) CreateCollection(ctx context.Context, collection *model.Collection) error {
	zap.L().Info("Creating collection",
		zap.String("collection_id", collection.ID()),
		zap.String("name", collection.Name()),
		zap.String("group_id", collection.GroupID()))

	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.createCollectionTx(ctx, tx, collection); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit collection create: %v", store.ErrStoreUnavailable, err)
	}

	zap.L().Info("Collection created", zap.String("collection_id", collection.ID()))
	return nil
}

// createCollectionTx inserts the collection row inside a caller-managed
// transaction, so aggregate saves can reuse the same probes and checks.
func (s *Service) createCollectionTx(ctx context.Context, tx *sql.Tx, collection *model.Collection) error {
	if exists, err := rowExists(ctx, tx, queryGroupExists, collection.GroupID()); err != nil {
		return err
	} else if !exists {
		return fmt.Errorf("%w: group %s of collection %s", store.ErrParentNotFound, collection.GroupID(), collection.ID())
	}
	if exists, err := rowExists(ctx, tx, queryCollectionExists, collection.ID()); err != nil {
		return err
	} else if exists {
		return fmt.Errorf("%w: collection %s", store.ErrAlreadyExists, collection.ID())
	}
	if exists, err := rowExists(ctx, tx, queryCollectionNameExists, collection.Name()); err != nil {
		return err
	} else if exists {
		return fmt.Errorf("%w: collection name %q", store.ErrAlreadyExists, collection.Name())
	}

	result, err := tx.ExecContext(ctx, queryInsertCollection, collection.ID(), collection.Name(), collection.GroupID())
	if err != nil {
		zap.L().Error("Failed to insert collection", zap.String("collection_id", collection.ID()), zap.Error(err))
		return translateConstraintErr(err)
	}
	return checkAffected(result, "collection", collection.ID())
}

func (s *Service) GetCollection(ctx context.Context, collectionID string) (*model.Collection, error) {
	zap.L().Debug("Querying collection by ID", zap.String("collection_id", collectionID))

	var row model.CollectionRow
	err := s.db.QueryRowContext(ctx, queryGetCollectionById, collectionID).Scan(&row.ID, &row.Name, &row.GroupID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("Failed to query collection", zap.String("collection_id", collectionID), zap.Error(err))
		return nil, fmt.Errorf("%w: unable to query collection %s: %v", store.ErrStoreUnavailable, collectionID, err)
	}

	collection, err := model.CollectionFromRow(row)
	if err != nil {
		return nil, fmt.Errorf("%w: collection %s: %v", store.ErrCorruptRow, collectionID, err)
	}
	return collection, nil
}

func (s *Service) GetCollectionsByGroup(ctx context.Context, groupID string) ([]*model.Collection, error) {
	zap.L().Debug("Querying collections by group", zap.String("group_id", groupID))

	rows, err := s.db.QueryContext(ctx, queryGetCollectionsByGroup, groupID)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to query collections of group %s: %v", store.ErrStoreUnavailable, groupID, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			zap.L().Warn("Failed to close rows", zap.Error(err))
		}
	}()

	var collections []*model.Collection
	for rows.Next() {
		var row model.CollectionRow
		if err := rows.Scan(&row.ID, &row.Name, &row.GroupID); err != nil {
			return nil, fmt.Errorf("%w: unable to scan collection row: %v", store.ErrStoreUnavailable, err)
		}
		collection, err := model.CollectionFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: collection %s: %v", store.ErrCorruptRow, row.ID, err)
		}
		collections = append(collections, collection)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating collection rows: %v", store.ErrStoreUnavailable, err)
	}
	return collections, nil
}

func (s *Service) UpdateCollection(ctx context.Context, collection *model.Collection) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, queryUpdateCollection, collection.Name(), collection.ID())
	if err != nil {
		zap.L().Error("Failed to update collection", zap.String("collection_id", collection.ID()), zap.Error(err))
		return translateConstraintErr(err)
	}
	if err := checkAffected(result, "collection", collection.ID()); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit collection update: %v", store.ErrStoreUnavailable, err)
	}

	zap.L().Info("Collection updated", zap.String("collection_id", collection.ID()), zap.String("name", collection.Name()))
	return nil
}

// DeleteCollection removes the collection row; its coins cascade away inside
// the same transaction.
func (s *Service) DeleteCollection(ctx context.Context, collectionID string) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, queryDeleteCollection, collectionID)
	if err != nil {
		zap.L().Error("Failed to delete collection", zap.String("collection_id", collectionID), zap.Error(err))
		return fmt.Errorf("%w: unable to delete collection %s: %v", store.ErrStoreUnavailable, collectionID, err)
	}
	if err := checkAffected(result, "collection", collectionID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit collection delete: %v", store.ErrStoreUnavailable, err)
	}

	zap.L().Info("Collection deleted", zap.String("collection_id", collectionID))
	return nil
}

func (s *Service) CollectionExists(ctx context.Context, collectionID string) (bool, error) {
	return rowExists(ctx, s.db, queryCollectionExists, collectionID)
}
