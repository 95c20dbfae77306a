// Package operation
package operation

// GameLogOperationInterface 游戏日志分页查询
type GameLogOperationInterface interface {
	GetGameLogs(gameId string, page, pageSize int) (gameLogs []*GameLog, total int64, err error)
}
