// Package database
package database

import (
	"context"
	"errors"
	"github.com/google/uuid"
	. "github.com/half-nothing/adventurous-traveler/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"time"
)

type GameOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewGameOperation(db *gorm.DB, queryTimeout time.Duration) *GameOperation {
	return &GameOperation{db: db, queryTimeout: queryTimeout}
}

func (gameOperation *GameOperation) NewGame(playerName string, startAirportId uint, money, fuel, maxFuel int) (game *Game) {
	return &Game{
		ID:                    uuid.NewString(),
		PlayerName:            playerName,
		CurrentAirportId:      startAirportId,
		Money:                 money,
		Fuel:                  fuel,
		MaxFuelCapacity:       maxFuel,
		FuelEfficiencyBonus:   0,
		FlightDiscountPercent: 0,
		FlightsTaken:          0,
		ArtifactsDelivered:    0,
		CurrentArtifactNumber: 1,
		Status:                GameActive,
	}
}

func (gameOperation *GameOperation) NewGameArtifact(game *Game, artifact *Artifact, deliveryAirport *Airport) (gameArtifact *GameArtifact) {
	return &GameArtifact{
		GameId:            game.ID,
		ArtifactId:        artifact.ID,
		ArtifactOrder:     artifact.Order,
		DeliveryAirportId: deliveryAirport.ID,
		Delivered:         false,
		Artifact:          artifact,
		DeliveryAirport:   deliveryAirport,
	}
}

func (gameOperation *GameOperation) NewGameLog(game *Game, logType LogType, description string) (gameLog *GameLog) {
	return &GameLog{
		GameId:      game.ID,
		LogType:     logType,
		Description: description,
	}
}

func (gameOperation *GameOperation) Transaction(fc func(tx GameTransactionInterface) error) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), gameOperation.queryTimeout)
	defer cancel()
	return gameOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fc(&gameTransaction{tx: tx})
	})
}

func (gameOperation *GameOperation) GetGameById(id string) (game *Game, err error) {
	game = &Game{}
	ctx, cancel := context.WithTimeout(context.Background(), gameOperation.queryTimeout)
	defer cancel()
	err = gameOperation.db.WithContext(ctx).Where("id = ?", id).First(game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrGameNotFound
	}
	return
}

// gameTransaction 绑定在单个事务上的操作, 生命周期不超过 GameOperation.Transaction 的回调
type gameTransaction struct {
	tx *gorm.DB
}

func (t *gameTransaction) CreateGame(game *Game, gameArtifacts []*GameArtifact) (err error) {
	if err = t.tx.Omit(clause.Associations).Create(game).Error; err != nil {
		return err
	}
	if len(gameArtifacts) == 0 {
		return nil
	}
	return t.tx.Omit(clause.Associations).Create(gameArtifacts).Error
}

func (t *gameTransaction) LockGameById(id string) (game *Game, err error) {
	game = &Game{}
	err = t.tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrGameNotFound
	}
	return
}

func (t *gameTransaction) SaveGame(game *Game) (err error) {
	now := time.Now()
	result := t.tx.Model(&Game{}).
		Where("id = ? and version = ?", game.ID, game.Version).
		Updates(map[string]interface{}{
			"current_airport_id":      game.CurrentAirportId,
			"money":                   game.Money,
			"fuel":                    game.Fuel,
			"max_fuel_capacity":       game.MaxFuelCapacity,
			"fuel_efficiency_bonus":   game.FuelEfficiencyBonus,
			"flight_discount_percent": game.FlightDiscountPercent,
			"flights_taken":           game.FlightsTaken,
			"artifacts_delivered":     game.ArtifactsDelivered,
			"current_artifact_number": game.CurrentArtifactNumber,
			"status":                  game.Status,
			"version":                 game.Version + 1,
			"updated_at":              now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrConcurrentUpdate
	}
	game.Version++
	game.UpdatedAt = now
	return nil
}

func (t *gameTransaction) GetAirportById(id uint) (airport *Airport, err error) {
	airport = &Airport{}
	err = t.tx.Where("id = ?", id).First(airport).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrAirportNotFound
	}
	return
}

func (t *gameTransaction) GetAirports() (airports []*Airport, err error) {
	airports = make([]*Airport, 0)
	err = t.tx.Order("id").Find(&airports).Error
	return
}

func (t *gameTransaction) GetArtifacts() (artifacts []*Artifact, err error) {
	artifacts = make([]*Artifact, 0)
	err = t.tx.Order("artifact_order").Find(&artifacts).Error
	return
}

func (t *gameTransaction) GetShopItemById(id uint) (item *ShopItem, err error) {
	item = &ShopItem{}
	err = t.tx.Where("id = ?", id).First(item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrShopItemNotFound
	}
	return
}

func (t *gameTransaction) GetEventTypes() (eventTypes []*EventType, err error) {
	eventTypes = make([]*EventType, 0)
	err = t.tx.Order("id").Find(&eventTypes).Error
	return
}

func (t *gameTransaction) GetGameArtifact(gameId string, artifactOrder int) (gameArtifact *GameArtifact, err error) {
	gameArtifact = &GameArtifact{}
	err = t.tx.Preload("Artifact").
		Preload("DeliveryAirport").
		Where("game_id = ? and artifact_order = ?", gameId, artifactOrder).
		First(gameArtifact).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrGameArtifactNotFound
	}
	return
}

func (t *gameTransaction) GetGameArtifacts(gameId string) (gameArtifacts []*GameArtifact, err error) {
	gameArtifacts = make([]*GameArtifact, 0)
	err = t.tx.Preload("Artifact").
		Preload("DeliveryAirport").
		Where("game_id = ?", gameId).
		Order("artifact_order").
		Find(&gameArtifacts).Error
	return
}

func (t *gameTransaction) MarkArtifactDelivered(gameArtifact *GameArtifact, deliveredAt time.Time) (changed bool, err error) {
	result := t.tx.Model(&GameArtifact{}).
		Where("id = ? and delivered = ?", gameArtifact.ID, false).
		Updates(map[string]interface{}{
			"delivered":    true,
			"delivered_at": deliveredAt,
			"updated_at":   deliveredAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	gameArtifact.Delivered = true
	if result.RowsAffected == 0 {
		return false, nil
	}
	gameArtifact.DeliveredAt = &deliveredAt
	return true, nil
}

func (t *gameTransaction) AddGameLog(gameLog *GameLog) (err error) {
	return t.tx.Create(gameLog).Error
}

func (t *gameTransaction) GetRecentGameLogs(gameId string, limit int) (gameLogs []*GameLog, err error) {
	gameLogs = make([]*GameLog, 0, limit)
	err = t.tx.Where("game_id = ?", gameId).Order("created_at desc").Order("id desc").Limit(limit).Find(&gameLogs).Error
	return
}
