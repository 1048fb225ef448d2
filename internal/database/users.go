/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

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

func (s *Service) CreateUser(ctx context.Context, user *model.User) error {
	zap.L().Info("Creating user", zap.String("user_id", user.ID()), zap.String("name", user.Name()))

	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if exists, err := rowExists(ctx, tx, queryUserExists, user.ID()); err != nil {
		return err
	} else if exists {
		return fmt.Errorf("%w: user %s", store.ErrAlreadyExists, user.ID())
	}
	if exists, err := rowExists(ctx, tx, queryUserNameExists, user.Name()); err != nil {
		return err
	} else if exists {
		return fmt.Errorf("%w: user name %q", store.ErrAlreadyExists, user.Name())
	}

	result, err := tx.ExecContext(ctx, queryInsertUser, user.ID(), user.Name())
	if err != nil {
		zap.L().Error("Failed to insert user", zap.String("user_id", user.ID()), zap.Error(err))
		return translateConstraintErr(err)
	}
	if err := checkAffected(result, "user", user.ID()); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit user create: %v", store.ErrStoreUnavailable, err)
	}

	zap.L().Info("User created", zap.String("user_id", user.ID()), zap.String("name", user.Name()))
	return nil
}

func (s *Service) GetUser(ctx context.Context, userID string) (*model.User, error) {
	zap.L().Debug("Querying user by ID", zap.String("user_id", userID))

	var row model.UserRow
	err := s.db.QueryRowContext(ctx, queryGetUserById, userID).Scan(&row.ID, &row.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("Failed to query user", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("%w: unable to query user %s: %v", store.ErrStoreUnavailable, userID, err)
	}

	user, err := model.UserFromRow(row)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s: %v", store.ErrCorruptRow, userID, err)
	}
	return user, nil
}

func (s *Service) GetUserByName(ctx context.Context, name string) (*model.User, error) {
	zap.L().Debug("Querying user by name", zap.String("name", name))

	var row model.UserRow
	err := s.db.QueryRowContext(ctx, queryGetUserByName, name).Scan(&row.ID, &row.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("Failed to query user by name", zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("%w: unable to query user %q: %v", store.ErrStoreUnavailable, name, err)
	}

	user, err := model.UserFromRow(row)
	if err != nil {
		return nil, fmt.Errorf("%w: user %q: %v", store.ErrCorruptRow, name, err)
	}
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*model.User, error) {
	rows, err := s.db.QueryContext(ctx, queryGetAllUsers)
	if err != nil {
		zap.L().Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("%w: unable to list users: %v", store.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		var row model.UserRow
		if err := rows.Scan(&row.ID, &row.Name); err != nil {
			return nil, fmt.Errorf("%w: unable to scan user row: %v", store.ErrStoreUnavailable, err)
		}
		user, err := model.UserFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: user %s: %v", store.ErrCorruptRow, row.ID, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: unable to iterate users: %v", store.ErrStoreUnavailable, err)
	}
	return users, nil
}

func (s *Service) UpdateUser(ctx context.Context, user *model.User) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, queryUpdateUser, user.Name(), user.ID())
	if err != nil {
		zap.L().Error("Failed to update user", zap.String("user_id", user.ID()), zap.Error(err))
		return translateConstraintErr(err)
	}
	if err := checkAffected(result, "user", user.ID()); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit user update: %v", store.ErrStoreUnavailable, err)
	}

	zap.L().Info("User updated", zap.String("user_id", user.ID()), zap.String("name", user.Name()))
	return nil
}

// DeleteUser removes the user row. Groups, collections and coins below it
// vanish in the same transaction through the schema's cascade constraints;
// no application-level descent happens here.
func (s *Service) DeleteUser(ctx context.Context, userID string) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, queryDeleteUser, userID)
	if err != nil {
		zap.L().Error("Failed to delete user", zap.String("user_id", userID), zap.Error(err))
		return fmt.Errorf("%w: unable to delete user %s: %v", store.ErrStoreUnavailable, userID, err)
	}
	if err := checkAffected(result, "user", userID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit user delete: %v", store.ErrStoreUnavailable, err)
	}

	zap.L().Info("User deleted", zap.String("user_id", userID))
	return nil
}

func (s *Service) UserExists(ctx context.Context, userID string) (bool, error) {
	return rowExists(ctx, s.db, queryUserExists, userID)
}
