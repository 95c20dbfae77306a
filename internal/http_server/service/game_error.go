// Package service
package service

import (
	"errors"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/game"
	. "github.com/half-nothing/adventurous-traveler/internal/interfaces/service"
)

var gameErrorStatus = map[game.ErrorKind]ApiStatus{
	game.KindValidation:           {StatusName: "VALIDATION_ERROR", HttpCode: BadRequest},
	game.KindNotFound:             {StatusName: "NOT_FOUND", HttpCode: NotFound},
	game.KindInvalidState:         {StatusName: "INVALID_STATE", HttpCode: Conflict},
	game.KindInsufficientResource: {StatusName: "INSUFFICIENT_RESOURCE", HttpCode: UnprocessableEntity},
	game.KindStore:                {StatusName: "STORE_ERROR", HttpCode: ServerInternalError},
}

// StatusFromGameError 将引擎错误转换为接口状态, 只返回错误描述, 不暴露内部错误
func StatusFromGameError(err error) *ApiStatus {
	var gameErr *game.Error
	if !errors.As(err, &gameErr) {
		return &ErrDatabaseFail
	}
	status, ok := gameErrorStatus[gameErr.Kind]
	if !ok {
		return &ErrDatabaseFail
	}
	status.Description = gameErr.Message
	return &status
}
