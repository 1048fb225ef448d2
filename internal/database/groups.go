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

func (s *Service) CreateGroup(ctx context.Context, group *model.CollectionGroup) error {
	zap.L().Info("Creating group",
		zap.String("group_id", group.ID()),
		zap.String("name", group.Name()),
		zap.String("owner_id", group.OwnerID()))

	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if exists, err := rowExists(ctx, tx, queryUserExists, group.OwnerID()); err != nil {
		return err
	} else if !exists {
		return fmt.Errorf("%w: owner %s of group %s", store.ErrParentNotFound, group.OwnerID(), group.ID())
	}
	if exists, err := rowExists(ctx, tx, queryGroupExists, group.ID()); err != nil {
		return err
	} else if exists {
		return fmt.Errorf("%w: group %s", store.ErrAlreadyExists, group.ID())
	}
	if exists, err := rowExists(ctx, tx, queryGroupNameExists, group.Name()); err != nil {
		return err
	} else if exists {
		return fmt.Errorf("%w: group name %q", store.ErrAlreadyExists, group.Name())
	}

	result, err := tx.ExecContext(ctx, queryInsertGroup, group.ID(), group.Name(), group.OwnerID())
	if err != nil {
		zap.L().Error("Failed to insert group", zap.String("group_id", group.ID()), zap.Error(err))
		return translateConstraintErr(err)
	}
	if err := checkAffected(result, "group", group.ID()); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit group create: %v", store.ErrStoreUnavailable, err)
	}

	zap.L().Info("Group created", zap.String("group_id", group.ID()))
	return nil
}

func (s *Service) GetGroup(ctx context.Context, groupID string) (*model.CollectionGroup, error) {
	zap.L().Debug("Querying group by ID", zap.String("group_id", groupID))

	var row model.GroupRow
	err := s.db.QueryRowContext(ctx, queryGetGroupById, groupID).Scan(&row.ID, &row.Name, &row.OwnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("Failed to query group", zap.String("group_id", groupID), zap.Error(err))
		return nil, fmt.Errorf("%w: unable to query group %s: %v", store.ErrStoreUnavailable, groupID, err)
	}

	group, err := model.GroupFromRow(row)
	if err != nil {
		return nil, fmt.Errorf("%w: group %s: %v", store.ErrCorruptRow, groupID, err)
	}
	return group, nil
}

func (s *Service) GetGroupsByOwner(ctx context.Context, ownerID string) ([]*model.CollectionGroup, error) {
	zap.L().Debug("Querying groups by owner", zap.String("owner_id", ownerID))

	rows, err := s.db.QueryContext(ctx, queryGetGroupsByOwner, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to query groups of owner %s: %v", store.ErrStoreUnavailable, ownerID, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			zap.L().Warn("Failed to close rows", zap.Error(err))
		}
	}()

	var groups []*model.CollectionGroup
	for rows.Next() {
		var row model.GroupRow
		if err := rows.Scan(&row.ID, &row.Name, &row.OwnerID); err != nil {
			return nil, fmt.Errorf("%w: unable to scan group row: %v", store.ErrStoreUnavailable, err)
		}
		group, err := model.GroupFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: group %s: %v", store.ErrCorruptRow, row.ID, err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating group rows: %v", store.ErrStoreUnavailable, err)
	}
	return groups, nil
}

func (s *Service) UpdateGroup(ctx context.Context, group *model.CollectionGroup) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, queryUpdateGroup, group.Name(), group.ID())
	if err != nil {
		zap.L().Error("Failed to update group", zap.String("group_id", group.ID()), zap.Error(err))
		return translateConstraintErr(err)
	}
	if err := checkAffected(result, "group", group.ID()); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit group update: %v", store.ErrStoreUnavailable, err)
	}

	zap.L().Info("Group updated", zap.String("group_id", group.ID()), zap.String("name", group.Name()))
	return nil
}

// DeleteGroup removes the group row; collections and coins below it cascade
// away inside the same transaction.
func (s *Service) DeleteGroup(ctx context.Context, groupID string) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, queryDeleteGroup, groupID)
	if err != nil {
		zap.L().Error("Failed to delete group", zap.String("group_id", groupID), zap.Error(err))
		return fmt.Errorf("%w: unable to delete group %s: %v", store.ErrStoreUnavailable, groupID, err)
	}
	if err := checkAffected(result, "group", groupID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit group delete: %v", store.ErrStoreUnavailable, err)
	}

	zap.L().Info("Group deleted", zap.String("group_id", groupID))
	return nil
}

func (s *Service) GroupExists(ctx context.Context, groupID string) (bool, error) {
	return rowExists(ctx, s.db, queryGroupExists, groupID)
}
