package game

import (
	"fmt"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/config"
	. "github.com/half-nothing/adventurous-traveler/internal/interfaces/game"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/operation"
	"strings"
)

type ShopResolver struct {
	gameOperation operation.GameOperationInterface
	lootbox       *config.LootboxConfig
	random        Random
}

func NewShopResolver(gameOperation operation.GameOperationInterface, lootbox *config.LootboxConfig, random Random) *ShopResolver {
	return &ShopResolver{gameOperation: gameOperation, lootbox: lootbox, random: random}
}

// LootboxTier 按商品名称选择奖励档位, 不含Gold或Silver的都视为Bronze
func (resolver *ShopResolver) LootboxTier(item *operation.ShopItem) *config.LootboxTier {
	switch {
	case strings.Contains(item.Name, "Gold"):
		return resolver.lootbox.Gold
	case strings.Contains(item.Name, "Silver"):
		return resolver.lootbox.Silver
	default:
		return resolver.lootbox.Bronze
	}
}

// Resolve 将商品效果应用到游戏上并写入购买日志, 调用方负责检查余额
func (resolver *ShopResolver) Resolve(
	tx operation.GameTransactionInterface,
	game *operation.Game,
	item *operation.ShopItem,
) (*PurchaseResult, error) {
	result := &PurchaseResult{Game: game, Item: item}
	fuelBefore := game.Fuel
	moneyChange := -item.Price
	description := fmt.Sprintf("Bought %s", item.Name)

	switch item.Category {
	case operation.ShopFuel:
		game.Fuel = min(game.MaxFuelCapacity, game.Fuel+item.EffectValue)
	case operation.ShopUpgrade:
		switch item.ItemType {
		case operation.UpgradeFuelCapacity:
			game.MaxFuelCapacity += item.EffectValue
		case operation.UpgradeFuelEfficiency:
			game.FuelEfficiencyBonus = min(game.FuelEfficiencyBonus+item.EffectValue, 100)
		case operation.UpgradeFlightDiscount:
			game.FlightDiscountPercent = min(game.FlightDiscountPercent+item.EffectValue, 100)
		default:
			return nil, ValidationError("shop item %s has unknown upgrade type %q", item.Name, item.ItemType)
		}
	case operation.ShopLootbox:
		tier := resolver.LootboxTier(item)
		result.LootboxMoney = intBetween(resolver.random, tier.Money.Min, tier.Money.Max)
		result.LootboxFuel = intBetween(resolver.random, tier.Fuel.Min, tier.Fuel.Max)
		moneyChange += result.LootboxMoney
		game.Fuel = min(game.MaxFuelCapacity, game.Fuel+result.LootboxFuel)
		description = fmt.Sprintf("Bought %s and found %d money and %d km of fuel", item.Name, result.LootboxMoney, result.LootboxFuel)
	default:
		return nil, ValidationError("shop item %s has unknown category %q", item.Name, item.Category)
	}
	game.Money += moneyChange

	gameLog := resolver.gameOperation.NewGameLog(game, operation.LogPurchase, description)
	gameLog.MoneyChange = moneyChange
	gameLog.FuelChange = game.Fuel - fuelBefore
	if err := tx.AddGameLog(gameLog); err != nil {
		return nil, err
	}
	return result, nil
}
