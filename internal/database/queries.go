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

const (
	// User queries
	queryInsertUser = `
		INSERT INTO users (user_id, name) VALUES (?, ?)`

	queryGetUserById = `
		SELECT user_id, name
		FROM users
		WHERE user_id = ?`

	queryGetUserByName = `
		SELECT user_id, name
		FROM users
		WHERE name = ?`

	queryGetAllUsers = `
		SELECT user_id, name
		FROM users
		ORDER BY name`

	queryUpdateUser = `
		UPDATE users SET name = ? WHERE user_id = ?`

	queryDeleteUser = `
		DELETE FROM users WHERE user_id = ?`

	queryUserExists = `
		SELECT 1 FROM users WHERE user_id = ? LIMIT 1`

	queryUserNameExists = `
		SELECT 1 FROM users WHERE name = ? LIMIT 1`

	// Group queries
	queryInsertGroup = `
		INSERT INTO groups (group_id, name, owner_id) VALUES (?, ?, ?)`

	queryGetGroupById = `
		SELECT group_id, name, owner_id
		FROM groups
		WHERE group_id = ?`

	queryGetGroupsByOwner = `
		SELECT group_id, name, owner_id
		FROM groups
		WHERE owner_id = ?
		ORDER BY name`

	queryUpdateGroup = `
		UPDATE groups SET name = ? WHERE group_id = ?`

	queryDeleteGroup = `
		DELETE FROM groups WHERE group_id = ?`

	queryGroupExists = `
		SELECT 1 FROM groups WHERE group_id = ? LIMIT 1`

	queryGroupNameExists = `
		SELECT 1 FROM groups WHERE name = ? LIMIT 1`

	// Collection queries
	queryInsertCollection = `
		INSERT INTO collections (collection_id, name, group_id) VALUES (?, ?, ?)`

	queryGetCollectionById = `
		SELECT collection_id, name, group_id
		FROM collections
		WHERE collection_id = ?`

	queryGetCollectionsByGroup = `
		SELECT collection_id, name, group_id
		FROM collections
		WHERE group_id = ?
		ORDER BY name`

	queryUpdateCollection = `
		UPDATE collections SET name = ? WHERE collection_id = ?`

	queryDeleteCollection = `
		DELETE FROM collections WHERE collection_id = ?`

	queryCollectionExists = `
		SELECT 1 FROM collections WHERE collection_id = ? LIMIT 1`

	queryCollectionNameExists = `
		SELECT 1 FROM collections WHERE name = ? LIMIT 1`

	// Coin queries
	queryInsertCoin = `
		INSERT INTO coins (coin_id, year, coin_value, mint_country, mint, description, collection_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	queryGetCoinById = `
		SELECT coin_id, year, coin_value, mint_country, mint, description, collection_id
		FROM coins
		WHERE coin_id = ?`

	queryGetCoinsByCollection = `
		SELECT coin_id, year, coin_value, mint_country, mint, description, collection_id
		FROM coins
		WHERE collection_id = ?
		ORDER BY year, coin_id`

	queryUpdateCoin = `
		UPDATE coins SET description = ?, collection_id = ? WHERE coin_id = ?`

	queryDeleteCoin = `
		DELETE FROM coins WHERE coin_id = ?`

	queryGetCoinIdsByCollection = `
		SELECT coin_id FROM coins WHERE collection_id = ?`

	queryGetCollectionIdsByGroup = `
		SELECT collection_id FROM collections WHERE group_id = ?`

	queryCoinExists = `
		SELECT 1 FROM coins WHERE coin_id = ? LIMIT 1`
)
