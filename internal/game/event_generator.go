package game

import (
	"fmt"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/config"
	. "github.com/half-nothing/adventurous-traveler/internal/interfaces/game"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/operation"
	"github.com/half-nothing/adventurous-traveler/internal/utils"
)

type EventGenerator struct {
	gameOperation operation.GameOperationInterface
	policy        config.EventPolicy
	random        Random
}

func NewEventGenerator(gameOperation operation.GameOperationInterface, policy config.EventPolicy, random Random) *EventGenerator {
	return &EventGenerator{gameOperation: gameOperation, policy: policy, random: random}
}

// Select 按策略选择一个事件, eventTypes为空时返回nil
func (generator *EventGenerator) Select(eventTypes []*operation.EventType) *operation.EventType {
	if len(eventTypes) == 0 {
		return nil
	}
	if generator.policy == config.WeightedEventPolicy {
		if eventType := generator.selectWeighted(eventTypes); eventType != nil {
			return eventType
		}
	}
	return eventTypes[generator.random.IntN(len(eventTypes))]
}

func (generator *EventGenerator) selectWeighted(eventTypes []*operation.EventType) *operation.EventType {
	total := 0.0
	for _, eventType := range eventTypes {
		total += max(eventType.Weight, 0)
	}
	if total <= 0 {
		return nil
	}
	target := generator.random.Float64() * total
	var last *operation.EventType
	for _, eventType := range eventTypes {
		if eventType.Weight <= 0 {
			continue
		}
		last = eventType
		target -= eventType.Weight
		if target < 0 {
			return eventType
		}
	}
	return last
}

// Trigger 选择并应用一个随机事件, 金钱不设下限, 燃油限制在[0, 最大油量]
func (generator *EventGenerator) Trigger(
	tx operation.GameTransactionInterface,
	game *operation.Game,
	eventTypes []*operation.EventType,
) (*EventResult, error) {
	eventType := generator.Select(eventTypes)
	if eventType == nil {
		return nil, nil
	}

	moneyChange := intBetween(generator.random, eventType.MoneyMin, eventType.MoneyMax)
	fuelDraw := intBetween(generator.random, eventType.FuelMin, eventType.FuelMax)

	fuelBefore := game.Fuel
	game.Money += moneyChange
	game.Fuel = utils.Clamp(game.Fuel+fuelDraw, 0, game.MaxFuelCapacity)
	fuelChange := game.Fuel - fuelBefore

	gameLog := generator.gameOperation.NewGameLog(game, operation.LogEvent, fmt.Sprintf("%s: %s", eventType.Name, eventType.Description))
	gameLog.MoneyChange = moneyChange
	gameLog.FuelChange = fuelChange
	if err := tx.AddGameLog(gameLog); err != nil {
		return nil, err
	}

	return &EventResult{
		Name:        eventType.Name,
		Category:    eventType.Category,
		Description: eventType.Description,
		MoneyChange: moneyChange,
		FuelChange:  fuelChange,
	}, nil
}
