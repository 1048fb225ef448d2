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
	"fmt"

	"coincollector/internal/config"
	"coincollector/internal/store"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// Compile-time check: *Service must satisfy store.Store.
var _ store.Store = (*Service)(nil)

// Service is the SQLite-backed store. Every repository call acquires a
// pooled connection, runs one transaction and releases the connection on
// every exit path; SQLite's own locking is the sole concurrency arbiter.
type Service struct {
	db *sql.DB
}

func NewService(ctx context.Context, cfg config.DatabaseConfig) (*Service, error) {
	// Validate configuration
	if cfg.Path == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}
	if cfg.MaxOpenConns <= 0 {
		return nil, fmt.Errorf("max open connections must be positive, got %d", cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns < 0 {
		return nil, fmt.Errorf("max idle connections cannot be negative, got %d", cfg.MaxIdleConns)
	}
	if cfg.PingTimeout <= 0 {
		return nil, fmt.Errorf("ping timeout must be positive, got %v", cfg.PingTimeout)
	}

	zap.L().Info("Opening SQLite database", zap.String("file", cfg.Path))
	// _foreign_keys=on is applied to every connection the pool hands out;
	// a connection without it would silently allow orphaned rows.
	db, err := sql.Open("sqlite3", cfg.Path+"?_foreign_keys=on&_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}

	// Set connection timeouts and limits
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// Test connection with timeout
	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, closeErr
		}
		return nil, fmt.Errorf("%w: unable to ping database: %v", store.ErrStoreUnavailable, err)
	}

	service := &Service{db: db}
	if err := service.initSchema(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, closeErr
		}
		return nil, fmt.Errorf("unable to initialize schema: %w", err)
	}

	zap.L().Info("Database service initialized successfully")
	return service, nil
}

func (s *Service) Close() {
	if err := s.db.Close(); err != nil {
		zap.L().Warn("Failed to close database connection", zap.Error(err))
	}
}

// initSchema creates the four tables of the ownership hierarchy. Every child
// table cascades on parent deletion, so application code only ever deletes
// the root row. Re-running against an initialized store is a no-op.
func (s *Service) initSchema(ctx context.Context) error {
	schema := `
	-- Users: root of the ownership hierarchy
	CREATE TABLE IF NOT EXISTS users (
		user_id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	);

	-- Collection groups owned by a user
	CREATE TABLE IF NOT EXISTS groups (
		group_id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		owner_id TEXT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_groups_owner_id ON groups(owner_id);

	-- Collections within a group
	CREATE TABLE IF NOT EXISTS collections (
		collection_id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		group_id TEXT NOT NULL REFERENCES groups(group_id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_collections_group_id ON collections(group_id);

	-- Coins within a collection; coin_id is content-derived
	CREATE TABLE IF NOT EXISTS coins (
		coin_id TEXT PRIMARY KEY,
		year INTEGER NOT NULL,
		coin_value INTEGER NOT NULL,
		mint_country TEXT NOT NULL,
		mint TEXT,
		description TEXT NOT NULL,
		collection_id TEXT NOT NULL REFERENCES collections(collection_id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_coins_collection_id ON coins(collection_id);
	`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return err
	}

	zap.L().Info("Schema initialized")
	return nil
}

// begin starts a write transaction. Callers must defer tx.Rollback() and
// commit explicitly, so every exit path releases the connection.
func (s *Service) begin(ctx context.Context) (*sql.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %v", store.ErrStoreUnavailable, err)
	}
	return tx, nil
}
