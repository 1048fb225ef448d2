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

package main

import (
	"context"
	"flag"
	"fmt"

	"coincollector/internal/common"
	"coincollector/internal/config"
	"coincollector/internal/database"
	"coincollector/internal/model"

	"go.uber.org/zap"
)

type reportStats struct {
	totalUsers      int
	totalGroups     int
	totalCoins      int
	usersWithGroups int
}

func printCollection(collection *model.Collection, isLast bool) {
	symbol := common.BoxPrefix(isLast)
	fmt.Printf("%s %-30s: %4d coins, %12s\n",
		symbol,
		collection.Name(),
		collection.CoinCount(),
		common.FormatCents(collection.TotalValue()))
}

func printGroup(group *model.CollectionGroup) {
	fmt.Printf("│  Group: %s (%d collections, %d coins, %s)\n",
		group.Name(),
		group.TotalCollections(),
		group.TotalCoins(),
		common.FormatCents(group.TotalValue()))

	collections := group.Collections()
	for i, collection := range collections {
		printCollection(collection, i == len(collections)-1)
	}
}

func printUserHeader(user *model.User, groupCount int) {
	fmt.Printf("\n┌─ User: %s\n", user.Name())
	fmt.Printf("│  ID: %s\n", user.ID())
	fmt.Printf("│  Groups: %d\n", groupCount)
	common.PrintBoxSeparator(common.DefaultWidth - 2)
}

func processUser(ctx context.Context, user *model.User, dbService *database.Service, logger *zap.Logger) (int, int, error) {
	groups, err := dbService.LoadUserGroups(ctx, user.ID())
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load groups: %w", err)
	}

	if len(groups) == 0 {
		return 0, 0, nil
	}

	printUserHeader(user, len(groups))

	coins := 0
	for _, group := range groups {
		printGroup(group)
		coins += group.TotalCoins()
	}

	return len(groups), coins, nil
}

func resolveUsers(ctx context.Context, dbService *database.Service, nameFilter string) ([]*model.User, error) {
	if nameFilter == "" {
		return dbService.ListUsers(ctx)
	}
	user, err := dbService.GetUserByName(ctx, nameFilter)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("no user named %q", nameFilter)
	}
	return []*model.User{user}, nil
}

func processUsersAndGenerateReport(ctx context.Context, users []*model.User, dbService *database.Service, logger *zap.Logger) reportStats {
	stats := reportStats{}

	for _, user := range users {
		stats.totalUsers++

		groupCount, coinCount, err := processUser(ctx, user, dbService, logger)
		if err != nil {
			logger.Error("Failed to process user",
				zap.String("user_id", user.ID()),
				zap.String("user_name", user.Name()),
				zap.Error(err))
			continue
		}

		if groupCount > 0 {
			stats.usersWithGroups++
			stats.totalGroups += groupCount
			stats.totalCoins += coinCount
		}
	}

	return stats
}

func main() {
	ctx := context.Background()

	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	userFlag := flag.String("user", "", "Filter by specific user name (optional)")
	flag.Parse()

	logger.Info("Starting collection report")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Connecting to database", zap.String("path", cfg.Database.Path))
	dbService, err := database.NewService(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer dbService.Close()

	users, err := resolveUsers(ctx, dbService, *userFlag)
	if err != nil {
		logger.Fatal("Failed to resolve users", zap.Error(err))
	}

	common.PrintHeader("COIN COLLECTION REPORT", common.DefaultWidth)

	stats := processUsersAndGenerateReport(ctx, users, dbService, logger)

	summary := fmt.Sprintf("SUMMARY: %d users with groups (%d groups, %d coins across %d users queried)",
		stats.usersWithGroups, stats.totalGroups, stats.totalCoins, stats.totalUsers)
	common.PrintFooter(summary, common.DefaultWidth)

	logger.Info("Collection report completed",
		zap.Int("users_queried", stats.totalUsers),
		zap.Int("users_with_groups", stats.usersWithGroups),
		zap.Int("total_coins", stats.totalCoins))
}
