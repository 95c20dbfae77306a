// Package controller
package controller

import (
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/log"
	. "github.com/half-nothing/adventurous-traveler/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type ServerControllerInterface interface {
	GetServerInfo(ctx echo.Context) error
}

type ServerController struct {
	logger        log.LoggerInterface
	serverService ServerServiceInterface
}

func NewServerController(logger log.LoggerInterface, serverService ServerServiceInterface) *ServerController {
	return &ServerController{
		logger:        logger,
		serverService: serverService,
	}
}

func (controller *ServerController) GetServerInfo(ctx echo.Context) error {
	return controller.serverService.GetServerInfo().Response(ctx)
}
