// Package operation
package operation

import (
	"errors"
	"time"
)

var (
	// ErrGameNotFound 游戏不存在
	ErrGameNotFound = errors.New("game does not exist")
	// ErrAirportNotFound 机场不存在
	ErrAirportNotFound = errors.New("airport does not exist")
	// ErrShopItemNotFound 商品不存在
	ErrShopItemNotFound = errors.New("shop item does not exist")
	// ErrGameArtifactNotFound 当前序号没有对应的文物分配
	ErrGameArtifactNotFound = errors.New("artifact assignment does not exist")
	// ErrConcurrentUpdate 乐观锁版本校验失败, 另一个请求已经修改了该游戏
	ErrConcurrentUpdate = errors.New("game was modified by another request")
)

// GameOperationInterface 游戏存储操作接口定义
type GameOperationInterface interface {
	// NewGame 创建一个新游戏(只是创建, 没有写入数据库)
	NewGame(playerName string, startAirportId uint, money, fuel, maxFuel int) (game *Game)
	// NewGameArtifact 创建一个文物分配记录(只是创建, 没有写入数据库)
	NewGameArtifact(game *Game, artifact *Artifact, deliveryAirport *Airport) (gameArtifact *GameArtifact)
	// NewGameLog 创建一条游戏日志(只是创建, 没有写入数据库)
	NewGameLog(game *Game, logType LogType, description string) (gameLog *GameLog)
	// Transaction 在同一个数据库事务中执行fc, fc返回错误时整个事务回滚
	Transaction(fc func(tx GameTransactionInterface) error) (err error)
	// GetGameById 读取游戏(不加锁), 当err为nil时返回值game有效
	GetGameById(id string) (game *Game, err error)
}

// GameTransactionInterface 事务内的游戏存储操作, 所有读写都在同一个事务内完成
type GameTransactionInterface interface {
	// CreateGame 写入游戏以及其全部文物分配
	CreateGame(game *Game, gameArtifacts []*GameArtifact) (err error)
	// LockGameById 读取游戏并加行锁, 当err为nil时返回值game有效
	LockGameById(id string) (game *Game, err error)
	// SaveGame 保存游戏, 使用版本号进行乐观锁校验, 失败时返回 ErrConcurrentUpdate
	SaveGame(game *Game) (err error)
	GetAirportById(id uint) (airport *Airport, err error)
	GetAirports() (airports []*Airport, err error)
	GetArtifacts() (artifacts []*Artifact, err error)
	GetShopItemById(id uint) (item *ShopItem, err error)
	GetEventTypes() (eventTypes []*EventType, err error)
	// GetGameArtifact 获取指定序号的文物分配, 预加载文物与交付机场
	GetGameArtifact(gameId string, artifactOrder int) (gameArtifact *GameArtifact, err error)
	// GetGameArtifacts 获取游戏全部文物分配, 按序号排序
	GetGameArtifacts(gameId string) (gameArtifacts []*GameArtifact, err error)
	// MarkArtifactDelivered 标记文物已交付, 已交付的记录不会被再次修改, changed表示本次是否发生了修改
	MarkArtifactDelivered(gameArtifact *GameArtifact, deliveredAt time.Time) (changed bool, err error)
	AddGameLog(gameLog *GameLog) (err error)
	// GetRecentGameLogs 获取最近的limit条日志, 按时间倒序
	GetRecentGameLogs(gameId string, limit int) (gameLogs []*GameLog, err error)
}
