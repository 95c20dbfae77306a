// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/log"
	"slices"
)

type EventPolicy string

const (
	UniformEventPolicy  EventPolicy = "uniform"
	WeightedEventPolicy EventPolicy = "weighted"
)

var allowedEventPolicy = []EventPolicy{UniformEventPolicy, WeightedEventPolicy}

// RewardRange is an inclusive integer range
type RewardRange struct {
	Min int `json:"min" toml:"min"`
	Max int `json:"max" toml:"max"`
}

func (r RewardRange) valid() bool { return r.Min <= r.Max }

type LootboxTier struct {
	Money RewardRange `json:"money" toml:"money"`
	Fuel  RewardRange `json:"fuel" toml:"fuel"`
}

type LootboxConfig struct {
	Gold   *LootboxTier `json:"gold" toml:"gold"`
	Silver *LootboxTier `json:"silver" toml:"silver"`
	Bronze *LootboxTier `json:"bronze" toml:"bronze"`
}

func defaultLootboxConfig() *LootboxConfig {
	return &LootboxConfig{
		Gold:   &LootboxTier{Money: RewardRange{2000, 5000}, Fuel: RewardRange{1500, 3000}},
		Silver: &LootboxTier{Money: RewardRange{800, 2000}, Fuel: RewardRange{700, 1200}},
		Bronze: &LootboxTier{Money: RewardRange{200, 800}, Fuel: RewardRange{300, 600}},
	}
}

type GameConfig struct {
	StartMoney        int            `json:"start_money" toml:"start_money"`
	StartFuel         int            `json:"start_fuel" toml:"start_fuel"`
	StartMaxFuel      int            `json:"start_max_fuel" toml:"start_max_fuel"`
	MaxFlights        int            `json:"max_flights" toml:"max_flights"`
	ArtifactsToWin    int            `json:"artifacts_to_win" toml:"artifacts_to_win"`
	MinFlightDistance int            `json:"min_flight_distance" toml:"min_flight_distance"`
	EventChance       float64        `json:"event_chance" toml:"event_chance"`
	EventPolicy       string         `json:"event_policy" toml:"event_policy"`
	SelectionPolicy   EventPolicy    `json:"-" toml:"-"`
	RecentLogCount    int            `json:"recent_log_count" toml:"recent_log_count"`
	ReadRetryAttempts int            `json:"read_retry_attempts" toml:"read_retry_attempts"`
	SeedFile          string         `json:"seed_file" toml:"seed_file"`
	SeedFileUrl       string         `json:"seed_file_url" toml:"seed_file_url"`
	Lootbox           *LootboxConfig `json:"lootbox" toml:"lootbox"`
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		StartMoney:        10000,
		StartFuel:         2500,
		StartMaxFuel:      5000,
		MaxFlights:        20,
		ArtifactsToWin:    10,
		MinFlightDistance: 200,
		EventChance:       0.3,
		EventPolicy:       string(UniformEventPolicy),
		SelectionPolicy:   UniformEventPolicy,
		RecentLogCount:    10,
		ReadRetryAttempts: 3,
		SeedFile:          "",
		SeedFileUrl:       "",
		Lootbox:           defaultLootboxConfig(),
	}
}

func checkTier(name string, tier *LootboxTier) *ValidResult {
	if tier == nil {
		return ValidFailField("game.lootbox."+name, "tier must be configured")
	}
	if !tier.Money.valid() || !tier.Fuel.valid() {
		return ValidFailField("game.lootbox."+name, "min must not be larger than max")
	}
	if tier.Money.Min < 0 || tier.Fuel.Min < 0 {
		return ValidFailField("game.lootbox."+name, "rewards must not be negative")
	}
	return ValidPass()
}

func (config *GameConfig) CheckValid(_ log.LoggerInterface) *ValidResult {
	if config.StartMoney < 0 {
		return ValidFailField("game.start_money", "value must not be negative")
	}
	if config.StartMaxFuel <= 0 {
		return ValidFailField("game.start_max_fuel", "value must larger than 0")
	}
	if config.StartFuel < 0 || config.StartFuel > config.StartMaxFuel {
		return ValidFailField("game.start_fuel", fmt.Sprintf("value must between 0 and %d", config.StartMaxFuel))
	}
	if config.MaxFlights <= 0 {
		return ValidFailField("game.max_flights", "value must larger than 0")
	}
	if config.ArtifactsToWin <= 0 {
		return ValidFailField("game.artifacts_to_win", "value must larger than 0")
	}
	if config.MinFlightDistance < 0 {
		return ValidFailField("game.min_flight_distance", "value must not be negative")
	}
	if config.EventChance < 0 || config.EventChance > 1 {
		return ValidFailField("game.event_chance", "value must between 0 and 1")
	}
	config.SelectionPolicy = EventPolicy(config.EventPolicy)
	if !slices.Contains(allowedEventPolicy, config.SelectionPolicy) {
		return ValidFail(fmt.Errorf("event policy %s is not allowed, support policy is %v", config.EventPolicy, allowedEventPolicy))
	}
	if config.RecentLogCount <= 0 {
		return ValidFailField("game.recent_log_count", "value must larger than 0")
	}
	if config.ReadRetryAttempts <= 0 {
		config.ReadRetryAttempts = 1
	}
	if config.Lootbox == nil {
		return ValidFail(errors.New("invalid json field game.lootbox, lootbox tiers must be configured"))
	}
	if result := checkTier("gold", config.Lootbox.Gold); result.IsFail() {
		return result
	}
	if result := checkTier("silver", config.Lootbox.Silver); result.IsFail() {
		return result
	}
	return checkTier("bronze", config.Lootbox.Bronze)
}
