// Package database
package database

import (
	_ "embed"
	"errors"
	"fmt"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/config"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/log"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/operation"
	"gopkg.in/yaml.v3"
)

//go:embed seed/default.yaml
var defaultSeed []byte

type seedAirport struct {
	Code      string  `yaml:"code"`
	Name      string  `yaml:"name"`
	City      string  `yaml:"city"`
	Country   string  `yaml:"country"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

type seedArtifact struct {
	Order       int    `yaml:"artifact_order"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	RewardMoney int    `yaml:"reward_money"`
	RewardFuel  int    `yaml:"reward_fuel"`
}

type seedShopItem struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	ItemType    string `yaml:"item_type"`
	Price       int    `yaml:"price"`
	EffectValue int    `yaml:"effect_value"`
	Permanent   bool   `yaml:"is_permanent"`
}

type seedEventType struct {
	Name        string  `yaml:"name"`
	Category    string  `yaml:"category"`
	Description string  `yaml:"description"`
	MoneyMin    int     `yaml:"money_min"`
	MoneyMax    int     `yaml:"money_max"`
	FuelMin     int     `yaml:"fuel_min"`
	FuelMax     int     `yaml:"fuel_max"`
	Weight      float64 `yaml:"weight"`
}

type seedFile struct {
	Airports   []seedAirport   `yaml:"airports"`
	Artifacts  []seedArtifact  `yaml:"artifacts"`
	ShopItems  []seedShopItem  `yaml:"shop_items"`
	EventTypes []seedEventType `yaml:"event_types"`
}

var (
	ErrSeedRange    = errors.New("seed event type has min larger than max")
	ErrSeedCategory = errors.New("seed shop item has an unknown category")
)

// ParseSeedData 解析YAML格式的参考数据
func ParseSeedData(content []byte) (*operation.SeedData, error) {
	file := &seedFile{}
	if err := yaml.Unmarshal(content, file); err != nil {
		return nil, fmt.Errorf("seed data is not valid yaml: %w", err)
	}

	seed := &operation.SeedData{
		Airports:   make([]*operation.Airport, 0, len(file.Airports)),
		Artifacts:  make([]*operation.Artifact, 0, len(file.Artifacts)),
		ShopItems:  make([]*operation.ShopItem, 0, len(file.ShopItems)),
		EventTypes: make([]*operation.EventType, 0, len(file.EventTypes)),
	}
	for _, a := range file.Airports {
		seed.Airports = append(seed.Airports, &operation.Airport{
			Code:      a.Code,
			Name:      a.Name,
			City:      a.City,
			Country:   a.Country,
			Latitude:  a.Latitude,
			Longitude: a.Longitude,
		})
	}
	for _, a := range file.Artifacts {
		seed.Artifacts = append(seed.Artifacts, &operation.Artifact{
			Order:       a.Order,
			Name:        a.Name,
			Description: a.Description,
			RewardMoney: a.RewardMoney,
			RewardFuel:  a.RewardFuel,
		})
	}
	for _, s := range file.ShopItems {
		category := operation.ShopCategory(s.Category)
		switch category {
		case operation.ShopFuel, operation.ShopUpgrade, operation.ShopLootbox:
		default:
			return nil, fmt.Errorf("%w: %s (%s)", ErrSeedCategory, s.Name, s.Category)
		}
		seed.ShopItems = append(seed.ShopItems, &operation.ShopItem{
			Name:        s.Name,
			Description: s.Description,
			Category:    category,
			ItemType:    operation.UpgradeType(s.ItemType),
			Price:       s.Price,
			EffectValue: s.EffectValue,
			Permanent:   s.Permanent,
		})
	}
	for _, e := range file.EventTypes {
		if e.MoneyMin > e.MoneyMax || e.FuelMin > e.FuelMax {
			return nil, fmt.Errorf("%w: %s", ErrSeedRange, e.Name)
		}
		weight := e.Weight
		if weight <= 0 {
			weight = 1
		}
		seed.EventTypes = append(seed.EventTypes, &operation.EventType{
			Name:        e.Name,
			Category:    e.Category,
			Description: e.Description,
			MoneyMin:    e.MoneyMin,
			MoneyMax:    e.MoneyMax,
			FuelMin:     e.FuelMin,
			FuelMax:     e.FuelMax,
			Weight:      weight,
		})
	}
	return seed, nil
}

// LoadSeedData 读取配置指定的种子文件, 未配置时使用内置数据
func LoadSeedData(logger log.LoggerInterface, gameConfig *config.GameConfig) (*operation.SeedData, error) {
	if gameConfig.SeedFile == "" {
		logger.Debug("No seed file configured, using built-in reference data")
		return ParseSeedData(defaultSeed)
	}
	content, err := config.CachedContent(logger, gameConfig.SeedFile, gameConfig.SeedFileUrl)
	if err != nil {
		return nil, err
	}
	return ParseSeedData(content)
}
