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

func (s *Service) CreateCoin(ctx context.Context, coin *model.EuroCoin) error {
	zap.L().Info("Creating coin",
		zap.String("coin_id", coin.ID()),
		zap.String("collection_id", coin.CollectionID()))

	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.createCoinTx(ctx, tx, coin); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit coin create: %v", store.ErrStoreUnavailable, err)
	}

	zap.L().Info("Coin created", zap.String("coin_id", coin.ID()))
	return nil
}

// createCoinTx inserts the coin row inside a caller-managed transaction.
// A colliding coin id means content-identical coins: the model treats those
// as the same entity, so the insert is rejected rather than duplicated.
func (s *Service) createCoinTx(ctx context.Context, tx *sql.Tx, coin *model.EuroCoin) error {
	if exists, err := rowExists(ctx, tx, queryCollectionExists, coin.CollectionID()); err != nil {
		return err
	} else if !exists {
		return fmt.Errorf("%w: collection %s of coin %s", store.ErrParentNotFound, coin.CollectionID(), coin.ID())
	}
	if exists, err := rowExists(ctx, tx, queryCoinExists, coin.ID()); err != nil {
		return err
	} else if exists {
		return fmt.Errorf("%w: coin %s", store.ErrAlreadyExists, coin.ID())
	}

	result, err := tx.ExecContext(ctx, queryInsertCoin,
		coin.ID(), coin.Year(), coin.Value().CentValue(), coin.MintCountry().IsoCode(),
		mintMarkOrNull(coin), coin.Description().Text(), coin.CollectionID())
	if err != nil {
		zap.L().Error("Failed to insert coin", zap.String("coin_id", coin.ID()), zap.Error(err))
		return translateConstraintErr(err)
	}
	return checkAffected(result, "coin", coin.ID())
}

func (s *Service) GetCoin(ctx context.Context, coinID string) (*model.EuroCoin, error) {
	zap.L().Debug("Querying coin by ID", zap.String("coin_id", coinID))

	row, err := scanCoinRow(s.db.QueryRowContext(ctx, queryGetCoinById, coinID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("Failed to query coin", zap.String("coin_id", coinID), zap.Error(err))
		return nil, fmt.Errorf("%w: unable to query coin %s: %v", store.ErrStoreUnavailable, coinID, err)
	}

	coin, err := model.CoinFromRow(row)
	if err != nil {
		return nil, fmt.Errorf("%w: coin %s: %v", store.ErrCorruptRow, coinID, err)
	}
	return coin, nil
}

func (s *Service) GetCoinsByCollection(ctx context.Context, collectionID string) ([]*model.EuroCoin, error) {
	zap.L().Debug("Querying coins by collection", zap.String("collection_id", collectionID))

	rows, err := s.db.QueryContext(ctx, queryGetCoinsByCollection, collectionID)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to query coins of collection %s: %v", store.ErrStoreUnavailable, collectionID, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			zap.L().Warn("Failed to close rows", zap.Error(err))
		}
	}()

	var coins []*model.EuroCoin
	for rows.Next() {
		row, err := scanCoinRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: unable to scan coin row: %v", store.ErrStoreUnavailable, err)
		}
		coin, err := model.CoinFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: coin %s: %v", store.ErrCorruptRow, row.ID, err)
		}
		coins = append(coins, coin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating coin rows: %v", store.ErrStoreUnavailable, err)
	}
	return coins, nil
}

// UpdateCoin persists the coin's mutable fields: description and collection
// assignment. Structural fields participate in the id and never change.
func (s *Service) UpdateCoin(ctx context.Context, coin *model.EuroCoin) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.updateCoinTx(ctx, tx, coin); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit coin update: %v", store.ErrStoreUnavailable, err)
	}

	zap.L().Info("Coin updated", zap.String("coin_id", coin.ID()))
	return nil
}

func (s *Service) updateCoinTx(ctx context.Context, tx *sql.Tx, coin *model.EuroCoin) error {
	result, err := tx.ExecContext(ctx, queryUpdateCoin, coin.Description().Text(), coin.CollectionID(), coin.ID())
	if err != nil {
		zap.L().Error("Failed to update coin", zap.String("coin_id", coin.ID()), zap.Error(err))
		return translateConstraintErr(err)
	}
	return checkAffected(result, "coin", coin.ID())
}

func (s *Service) DeleteCoin(ctx context.Context, coinID string) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, queryDeleteCoin, coinID)
	if err != nil {
		zap.L().Error("Failed to delete coin", zap.String("coin_id", coinID), zap.Error(err))
		return fmt.Errorf("%w: unable to delete coin %s: %v", store.ErrStoreUnavailable, coinID, err)
	}
	if err := checkAffected(result, "coin", coinID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit coin delete: %v", store.ErrStoreUnavailable, err)
	}

	zap.L().Info("Coin deleted", zap.String("coin_id", coinID))
	return nil
}

func (s *Service) CoinExists(ctx context.Context, coinID string) (bool, error) {
	return rowExists(ctx, s.db, queryCoinExists, coinID)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCoinRow(scanner rowScanner) (model.CoinRow, error) {
	var row model.CoinRow
	var mint sql.NullString
	err := scanner.Scan(&row.ID, &row.Year, &row.CentValue, &row.CountryCode, &mint, &row.Description, &row.CollectionID)
	if err != nil {
		return row, err
	}
	if mint.Valid {
		row.MintMark = &mint.String
	}
	return row, nil
}

func mintMarkOrNull(coin *model.EuroCoin) any {
	if coin.Mint().IsZero() {
		return nil
	}
	return coin.Mint().MintMark()
}
