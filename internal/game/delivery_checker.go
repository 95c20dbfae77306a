package game

import (
	"errors"
	"fmt"
	. "github.com/half-nothing/adventurous-traveler/internal/interfaces/game"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/operation"
	"time"
)

type DeliveryChecker struct {
	gameOperation  operation.GameOperationInterface
	artifactsToWin int
	now            func() time.Time
}

func NewDeliveryChecker(gameOperation operation.GameOperationInterface, artifactsToWin int) *DeliveryChecker {
	return &DeliveryChecker{gameOperation: gameOperation, artifactsToWin: artifactsToWin, now: time.Now}
}

// Check 检查当前序号的文物是否应在airportId交付, 已交付的文物不会重复发放奖励
func (checker *DeliveryChecker) Check(
	tx operation.GameTransactionInterface,
	game *operation.Game,
	airportId uint,
) (*DeliveryResult, error) {
	if game.CurrentArtifactNumber > checker.artifactsToWin {
		return &DeliveryResult{}, nil
	}

	gameArtifact, err := tx.GetGameArtifact(game.ID, game.CurrentArtifactNumber)
	if errors.Is(err, operation.ErrGameArtifactNotFound) {
		return &DeliveryResult{}, nil
	}
	if err != nil {
		return nil, err
	}
	if gameArtifact.Delivered || gameArtifact.DeliveryAirportId != airportId {
		return &DeliveryResult{}, nil
	}

	changed, err := tx.MarkArtifactDelivered(gameArtifact, checker.now())
	if err != nil {
		return nil, err
	}
	if !changed {
		return &DeliveryResult{}, nil
	}

	artifact := gameArtifact.Artifact
	fuelBefore := game.Fuel
	game.ArtifactsDelivered++
	game.CurrentArtifactNumber++
	game.Money += artifact.RewardMoney
	game.Fuel = min(game.MaxFuelCapacity, game.Fuel+artifact.RewardFuel)

	gameLog := checker.gameOperation.NewGameLog(game, operation.LogDelivery, fmt.Sprintf("Delivered %s!", artifact.Name))
	gameLog.MoneyChange = artifact.RewardMoney
	gameLog.FuelChange = game.Fuel - fuelBefore
	if err := tx.AddGameLog(gameLog); err != nil {
		return nil, err
	}

	return &DeliveryResult{
		Delivered:   true,
		Artifact:    artifact,
		RewardMoney: artifact.RewardMoney,
		RewardFuel:  artifact.RewardFuel,
	}, nil
}
