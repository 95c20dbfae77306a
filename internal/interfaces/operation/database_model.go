package operation

import (
	"time"
)

type GameStatus string

const (
	GameActive GameStatus = "ACTIVE"
	GameWon    GameStatus = "WON"
	GameLost   GameStatus = "LOST"
)

type Game struct {
	ID                    string          `gorm:"primarykey;size:36" json:"id"`
	PlayerName            string          `gorm:"size:64;not null" json:"player_name"`
	CurrentAirportId      uint            `gorm:"index;not null" json:"current_airport_id"`
	CurrentAirport        *Airport        `gorm:"foreignKey:CurrentAirportId;references:ID" json:"current_airport,omitempty"`
	Money                 int             `gorm:"not null" json:"money"`
	Fuel                  int             `gorm:"not null" json:"fuel_km"`
	MaxFuelCapacity       int             `gorm:"not null" json:"max_fuel_capacity"`
	FuelEfficiencyBonus   int             `gorm:"default:0;not null" json:"fuel_efficiency_bonus"`
	FlightDiscountPercent int             `gorm:"default:0;not null" json:"flight_discount_percent"`
	FlightsTaken          int             `gorm:"default:0;not null" json:"flights_taken"`
	ArtifactsDelivered    int             `gorm:"default:0;not null" json:"artifacts_delivered"`
	CurrentArtifactNumber int             `gorm:"default:1;not null" json:"current_artifact_number"`
	Status                GameStatus      `gorm:"size:8;index;not null" json:"game_status"`
	Version               int             `gorm:"default:0;not null" json:"-"`
	Artifacts             []*GameArtifact `gorm:"foreignKey:GameId;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Logs                  []*GameLog      `gorm:"foreignKey:GameId;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

func (game *Game) IsActive() bool { return game.Status == GameActive }

type Airport struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Code      string    `gorm:"size:8;uniqueIndex;not null" json:"code"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	City      string    `gorm:"size:64;not null" json:"city"`
	Country   string    `gorm:"size:64;not null" json:"country"`
	Latitude  float64   `gorm:"not null" json:"latitude"`
	Longitude float64   `gorm:"not null" json:"longitude"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type Artifact struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Order       int       `gorm:"column:artifact_order;uniqueIndex;not null" json:"artifact_order"`
	Name        string    `gorm:"size:128;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	RewardMoney int       `gorm:"default:0;not null" json:"delivery_reward_money"`
	RewardFuel  int       `gorm:"default:0;not null" json:"delivery_reward_fuel"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// GameArtifact assigns one artifact of a game to its delivery airport
type GameArtifact struct {
	ID                uint       `gorm:"primarykey" json:"id"`
	GameId            string     `gorm:"size:36;uniqueIndex:gameArtifact;index:gameArtifactOrder;not null" json:"game_id"`
	ArtifactId        uint       `gorm:"uniqueIndex:gameArtifact;not null" json:"artifact_id"`
	ArtifactOrder     int        `gorm:"index:gameArtifactOrder;not null" json:"artifact_order"`
	DeliveryAirportId uint       `gorm:"not null" json:"delivery_airport_id"`
	Delivered         bool       `gorm:"default:false;not null" json:"is_delivered"`
	DeliveredAt       *time.Time `json:"delivered_at"`
	Artifact          *Artifact  `gorm:"foreignKey:ArtifactId;references:ID" json:"artifact,omitempty"`
	DeliveryAirport   *Airport   `gorm:"foreignKey:DeliveryAirportId;references:ID" json:"delivery_airport,omitempty"`
	CreatedAt         time.Time  `json:"-"`
	UpdatedAt         time.Time  `json:"-"`
}

type ShopCategory string

const (
	ShopFuel    ShopCategory = "fuel"
	ShopUpgrade ShopCategory = "upgrade"
	ShopLootbox ShopCategory = "lootbox"
)

type UpgradeType string

const (
	UpgradeFuelCapacity   UpgradeType = "fuel_capacity"
	UpgradeFuelEfficiency UpgradeType = "fuel_efficiency"
	UpgradeFlightDiscount UpgradeType = "flight_discount"
)

type ShopItem struct {
	ID          uint         `gorm:"primarykey" json:"id"`
	Name        string       `gorm:"size:64;uniqueIndex;not null" json:"name"`
	Description string       `gorm:"type:text;not null" json:"description"`
	Category    ShopCategory `gorm:"size:16;index;not null" json:"category"`
	ItemType    UpgradeType  `gorm:"size:32;not null" json:"item_type"`
	Price       int          `gorm:"not null" json:"price"`
	EffectValue int          `gorm:"default:0;not null" json:"effect_value"`
	Permanent   bool         `gorm:"default:false;not null" json:"is_permanent"`
	CreatedAt   time.Time    `json:"-"`
	UpdatedAt   time.Time    `json:"-"`
}

type EventType struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"size:64;uniqueIndex;not null" json:"name"`
	Category    string    `gorm:"size:32;not null" json:"event_category"`
	Description string    `gorm:"type:text;not null" json:"description"`
	MoneyMin    int       `gorm:"default:0;not null" json:"effect_money_min"`
	MoneyMax    int       `gorm:"default:0;not null" json:"effect_money_max"`
	FuelMin     int       `gorm:"default:0;not null" json:"effect_fuel_min"`
	FuelMax     int       `gorm:"default:0;not null" json:"effect_fuel_max"`
	Weight      float64   `gorm:"default:1;not null" json:"weight"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

type LogType string

const (
	LogFlight   LogType = "flight"
	LogDelivery LogType = "delivery"
	LogPurchase LogType = "purchase"
	LogEvent    LogType = "event"
)

type GameLog struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	GameId      string    `gorm:"size:36;index:gameLogTime;not null" json:"game_id"`
	LogType     LogType   `gorm:"size:16;not null" json:"log_type"`
	Description string    `gorm:"size:255;not null" json:"description"`
	DistanceKm  int       `gorm:"default:0;not null" json:"distance_km"`
	MoneyChange int       `gorm:"default:0;not null" json:"money_change"`
	FuelChange  int       `gorm:"default:0;not null" json:"fuel_change"`
	CreatedAt   time.Time `gorm:"index:gameLogTime" json:"created_at"`
}
