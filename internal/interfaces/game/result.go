package game

import "github.com/half-nothing/adventurous-traveler/internal/interfaces/operation"

type EventResult struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	MoneyChange int    `json:"money_change"`
	FuelChange  int    `json:"fuel_change"`
}

type DeliveryResult struct {
	Delivered   bool                `json:"delivered"`
	Artifact    *operation.Artifact `json:"artifact,omitempty"`
	RewardMoney int                 `json:"reward_money"`
	RewardFuel  int                 `json:"reward_fuel"`
}

type TravelResult struct {
	Game       *operation.Game    `json:"game"`
	From       *operation.Airport `json:"from"`
	To         *operation.Airport `json:"to"`
	DistanceKm int                `json:"distance_km"`
	FuelCost   int                `json:"fuel_cost"`
	Event      *EventResult       `json:"event"`
	Delivery   *DeliveryResult    `json:"delivery"`
}

type PurchaseResult struct {
	Game         *operation.Game     `json:"game"`
	Item         *operation.ShopItem `json:"item"`
	LootboxMoney int                 `json:"lootbox_money"`
	LootboxFuel  int                 `json:"lootbox_fuel"`
}

// GameState 游戏当前状态快照
type GameState struct {
	Game            *operation.Game           `json:"game"`
	CurrentArtifact *operation.GameArtifact   `json:"current_artifact"`
	Artifacts       []*operation.GameArtifact `json:"artifacts"`
	RecentLogs      []*operation.GameLog      `json:"recent_logs"`
}
