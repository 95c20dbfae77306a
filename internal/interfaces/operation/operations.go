// Package operation
package operation

type DatabaseOperations struct {
	gameOperation      GameOperationInterface
	referenceOperation ReferenceOperationInterface
	gameLogOperation   GameLogOperationInterface
}

func NewDatabaseOperations(
	gameOperation GameOperationInterface,
	referenceOperation ReferenceOperationInterface,
	gameLogOperation GameLogOperationInterface,
) *DatabaseOperations {
	return &DatabaseOperations{
		gameOperation:      gameOperation,
		referenceOperation: referenceOperation,
		gameLogOperation:   gameLogOperation,
	}
}

func (db *DatabaseOperations) GameOperation() GameOperationInterface {
	return db.gameOperation
}

func (db *DatabaseOperations) ReferenceOperation() ReferenceOperationInterface {
	return db.referenceOperation
}

func (db *DatabaseOperations) GameLogOperation() GameLogOperationInterface {
	return db.gameLogOperation
}
