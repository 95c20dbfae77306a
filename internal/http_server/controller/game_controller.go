// Package controller
package controller

import (
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/log"
	. "github.com/half-nothing/adventurous-traveler/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type GameControllerInterface interface {
	CreateGame(ctx echo.Context) error
	GetCurrentState(ctx echo.Context) error
	Travel(ctx echo.Context) error
	Buy(ctx echo.Context) error
	GetGameLogs(ctx echo.Context) error
	EndSession(ctx echo.Context) error
}

type GameController struct {
	logger  log.LoggerInterface
	service GameServiceInterface
}

func NewGameController(logger log.LoggerInterface, service GameServiceInterface) *GameController {
	return &GameController{
		logger:  logger,
		service: service,
	}
}

func (controller *GameController) CreateGame(ctx echo.Context) error {
	data := &RequestCreateGame{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("GameController.CreateGame bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.CreateGame(data).Response(ctx)
}

func (controller *GameController) GetCurrentState(ctx echo.Context) error {
	data := &RequestGameState{JwtHeader: jwtHeader(ctx)}
	return controller.service.GetCurrentState(data).Response(ctx)
}

func (controller *GameController) Travel(ctx echo.Context) error {
	data := &RequestTravel{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("GameController.Travel bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeader(ctx)
	return controller.service.Travel(data).Response(ctx)
}

func (controller *GameController) Buy(ctx echo.Context) error {
	data := &RequestBuy{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("GameController.Buy bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeader(ctx)
	return controller.service.Buy(data).Response(ctx)
}

func (controller *GameController) GetGameLogs(ctx echo.Context) error {
	data := &RequestGameLogs{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("GameController.GetGameLogs bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.JwtHeader = jwtHeader(ctx)
	return controller.service.GetGameLogs(data).Response(ctx)
}

func (controller *GameController) EndSession(ctx echo.Context) error {
	data := &RequestEndSession{JwtHeader: jwtHeader(ctx)}
	return controller.service.EndSession(data).Response(ctx)
}
