package game

// EngineInterface 游戏状态机接口定义, 返回的错误均为 *Error
type EngineInterface interface {
	// CreateGame 为玩家创建新游戏, 随机选择起点并为每个文物分配交付机场
	CreateGame(playerName string) (state *GameState, err error)
	// Travel 飞往目标机场, 可能触发随机事件与文物交付
	Travel(gameId string, destinationAirportId uint) (result *TravelResult, err error)
	// Buy 购买商品
	Buy(gameId string, shopItemId uint) (result *PurchaseResult, err error)
	// GetCurrentState 获取游戏状态, 状态过期时会同时修正胜负状态
	GetCurrentState(gameId string) (state *GameState, err error)
}
