// Package database
package database

import (
	"context"
	"errors"
	"fmt"
	lru "github.com/hashicorp/golang-lru"
	. "github.com/half-nothing/adventurous-traveler/internal/interfaces/operation"
	"gorm.io/gorm"
	"time"
)

const (
	airportsCacheKey   = "airports"
	artifactsCacheKey  = "artifacts"
	shopItemsCacheKey  = "shop_items"
	eventTypesCacheKey = "event_types"
)

func airportCacheKey(id uint) string { return fmt.Sprintf("airport:%d", id) }

// ReferenceOperation 参考数据在运行期间不会变化, 查询结果缓存在LRU中, 重新写入种子数据时清空
type ReferenceOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
	cache        *lru.Cache
}

func NewReferenceOperation(db *gorm.DB, queryTimeout time.Duration, cacheSize int) (*ReferenceOperation, error) {
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}
	return &ReferenceOperation{db: db, queryTimeout: queryTimeout, cache: cache}, nil
}

func cachedQuery[T any](referenceOperation *ReferenceOperation, key string, query func(db *gorm.DB) (T, error)) (T, error) {
	if value, ok := referenceOperation.cache.Get(key); ok {
		return value.(T), nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), referenceOperation.queryTimeout)
	defer cancel()
	result, err := query(referenceOperation.db.WithContext(ctx))
	if err != nil {
		return result, err
	}
	referenceOperation.cache.Add(key, result)
	return result, nil
}

func (referenceOperation *ReferenceOperation) GetAirports() (airports []*Airport, err error) {
	return cachedQuery(referenceOperation, airportsCacheKey, func(db *gorm.DB) ([]*Airport, error) {
		result := make([]*Airport, 0)
		return result, db.Order("name").Find(&result).Error
	})
}

func (referenceOperation *ReferenceOperation) GetAirportById(id uint) (airport *Airport, err error) {
	return cachedQuery(referenceOperation, airportCacheKey(id), func(db *gorm.DB) (*Airport, error) {
		result := &Airport{}
		err := db.Where("id = ?", id).First(result).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAirportNotFound
		}
		return result, err
	})
}

func (referenceOperation *ReferenceOperation) GetArtifacts() (artifacts []*Artifact, err error) {
	return cachedQuery(referenceOperation, artifactsCacheKey, func(db *gorm.DB) ([]*Artifact, error) {
		result := make([]*Artifact, 0)
		return result, db.Order("artifact_order").Find(&result).Error
	})
}

func (referenceOperation *ReferenceOperation) GetShopItems() (items []*ShopItem, err error) {
	return cachedQuery(referenceOperation, shopItemsCacheKey, func(db *gorm.DB) ([]*ShopItem, error) {
		result := make([]*ShopItem, 0)
		return result, db.Order("category").Order("price").Find(&result).Error
	})
}

func (referenceOperation *ReferenceOperation) GetEventTypes() (eventTypes []*EventType, err error) {
	return cachedQuery(referenceOperation, eventTypesCacheKey, func(db *gorm.DB) ([]*EventType, error) {
		result := make([]*EventType, 0)
		return result, db.Order("id").Find(&result).Error
	})
}

func seedTable[T any](tx *gorm.DB, rows []*T) (bool, error) {
	if len(rows) == 0 {
		return false, nil
	}
	var total int64
	if err := tx.Model(new(T)).Count(&total).Error; err != nil {
		return false, err
	}
	if total > 0 {
		return false, nil
	}
	return true, tx.Create(rows).Error
}

func (referenceOperation *ReferenceOperation) SeedReferenceData(seed *SeedData) (seeded bool, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), referenceOperation.queryTimeout)
	defer cancel()
	err = referenceOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		steps := []func() (bool, error){
			func() (bool, error) { return seedTable(tx, seed.Airports) },
			func() (bool, error) { return seedTable(tx, seed.Artifacts) },
			func() (bool, error) { return seedTable(tx, seed.ShopItems) },
			func() (bool, error) { return seedTable(tx, seed.EventTypes) },
		}
		for _, step := range steps {
			inserted, err := step()
			if err != nil {
				return err
			}
			seeded = seeded || inserted
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if seeded {
		referenceOperation.cache.Purge()
	}
	return
}
