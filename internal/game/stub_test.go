package game

import (
	"time"

	"github.com/half-nothing/adventurous-traveler/internal/database"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/operation"
)

// scriptedRandom 按顺序返回预设值, 用完后返回0
type scriptedRandom struct {
	ints   []int
	floats []float64
}

func (r *scriptedRandom) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	value := r.ints[0]
	r.ints = r.ints[1:]
	return value % n
}

func (r *scriptedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	value := r.floats[0]
	r.floats = r.floats[1:]
	return value
}

// recordingTx 只实现日志与文物相关的方法, 其余方法调用会panic
type recordingTx struct {
	operation.GameTransactionInterface
	logs          []*operation.GameLog
	gameArtifacts map[int]*operation.GameArtifact
}

func (tx *recordingTx) AddGameLog(gameLog *operation.GameLog) error {
	tx.logs = append(tx.logs, gameLog)
	return nil
}

func (tx *recordingTx) GetGameArtifact(_ string, artifactOrder int) (*operation.GameArtifact, error) {
	gameArtifact, ok := tx.gameArtifacts[artifactOrder]
	if !ok {
		return nil, operation.ErrGameArtifactNotFound
	}
	return gameArtifact, nil
}

func (tx *recordingTx) MarkArtifactDelivered(gameArtifact *operation.GameArtifact, deliveredAt time.Time) (bool, error) {
	if gameArtifact.Delivered {
		return false, nil
	}
	gameArtifact.Delivered = true
	gameArtifact.DeliveredAt = &deliveredAt
	return true, nil
}

func newStubGameOperation() operation.GameOperationInterface {
	return database.NewGameOperation(nil, time.Second)
}

func newStubGame() *operation.Game {
	return newStubGameOperation().NewGame("Amelia", 1, 1000, 500, 1000)
}
