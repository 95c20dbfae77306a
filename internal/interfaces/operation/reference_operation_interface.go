// Package operation
package operation

// SeedData 参考数据种子
type SeedData struct {
	Airports   []*Airport   `yaml:"airports"`
	Artifacts  []*Artifact  `yaml:"artifacts"`
	ShopItems  []*ShopItem  `yaml:"shop_items"`
	EventTypes []*EventType `yaml:"event_types"`
}

// ReferenceOperationInterface 只读参考数据操作接口定义
type ReferenceOperationInterface interface {
	// GetAirports 获取全部机场, 按名称排序
	GetAirports() (airports []*Airport, err error)
	// GetAirportById 通过主键ID获取机场, 当err为nil时返回值airport有效
	GetAirportById(id uint) (airport *Airport, err error)
	// GetArtifacts 获取全部文物, 按序号排序
	GetArtifacts() (artifacts []*Artifact, err error)
	// GetShopItems 获取全部商品, 按分类与价格排序
	GetShopItems() (items []*ShopItem, err error)
	// GetEventTypes 获取全部随机事件定义
	GetEventTypes() (eventTypes []*EventType, err error)
	// SeedReferenceData 当参考表为空时写入种子数据, seeded表示本次是否写入
	SeedReferenceData(seed *SeedData) (seeded bool, err error)
}
