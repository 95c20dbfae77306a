// Package controller
package controller

import (
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/log"
	. "github.com/half-nothing/adventurous-traveler/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type CatalogControllerInterface interface {
	GetAirports(ctx echo.Context) error
	GetAirport(ctx echo.Context) error
	GetShopItems(ctx echo.Context) error
	GetArtifacts(ctx echo.Context) error
}

type CatalogController struct {
	logger  log.LoggerInterface
	service CatalogServiceInterface
}

func NewCatalogController(logger log.LoggerInterface, service CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		logger:  logger,
		service: service,
	}
}

func (controller *CatalogController) GetAirports(ctx echo.Context) error {
	data := &RequestAirports{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("CatalogController.GetAirports bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetAirports(data).Response(ctx)
}

func (controller *CatalogController) GetAirport(ctx echo.Context) error {
	data := &RequestAirport{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("CatalogController.GetAirport bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.GetAirport(data).Response(ctx)
}

func (controller *CatalogController) GetShopItems(ctx echo.Context) error {
	return controller.service.GetShopItems().Response(ctx)
}

func (controller *CatalogController) GetArtifacts(ctx echo.Context) error {
	return controller.service.GetArtifacts().Response(ctx)
}
