// Package database
package database

import (
	"context"
	. "github.com/half-nothing/adventurous-traveler/internal/interfaces/operation"
	"gorm.io/gorm"
	"time"
)

type GameLogOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewGameLogOperation(db *gorm.DB, queryTimeout time.Duration) *GameLogOperation {
	return &GameLogOperation{db: db, queryTimeout: queryTimeout}
}

func (gameLogOperation *GameLogOperation) GetGameLogs(gameId string, page, pageSize int) (gameLogs []*GameLog, total int64, err error) {
	gameLogs = make([]*GameLog, 0, pageSize)
	ctx, cancel := context.WithTimeout(context.Background(), gameLogOperation.queryTimeout)
	defer cancel()
	if err = gameLogOperation.db.WithContext(ctx).Model(&GameLog{}).Where("game_id = ?", gameId).Count(&total).Error; err != nil {
		return
	}
	err = gameLogOperation.db.WithContext(ctx).
		Where("game_id = ?", gameId).
		Offset((page - 1) * pageSize).
		Order("created_at desc").
		Order("id desc").
		Limit(pageSize).
		Find(&gameLogs).Error
	return
}
