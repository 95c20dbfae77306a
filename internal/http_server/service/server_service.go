// Package service
package service

import (
	c "github.com/half-nothing/adventurous-traveler/internal/interfaces/config"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/global"
	. "github.com/half-nothing/adventurous-traveler/internal/interfaces/service"
	"github.com/half-nothing/adventurous-traveler/internal/utils"
)

type ServerService struct {
	config     *c.Config
	serverInfo *utils.CachedValue[ResponseGetServerInfo]
}

func NewServerService(config *c.Config) *ServerService {
	service := &ServerService{config: config}
	service.serverInfo = utils.NewCachedValue[ResponseGetServerInfo](0, service.getServerInfo)
	return service
}

func (serverService *ServerService) getServerInfo() *ResponseGetServerInfo {
	gameConfig := serverService.config.Game
	limits := serverService.config.Server.HttpServer.Limits
	return &ResponseGetServerInfo{
		Version: global.AppVersion,
		Rules: &GameRules{
			StartMoney:        gameConfig.StartMoney,
			StartFuel:         gameConfig.StartFuel,
			StartMaxFuel:      gameConfig.StartMaxFuel,
			MaxFlights:        gameConfig.MaxFlights,
			ArtifactsToWin:    gameConfig.ArtifactsToWin,
			MinFlightDistance: gameConfig.MinFlightDistance,
			EventChance:       gameConfig.EventChance,
			EventPolicy:       string(gameConfig.SelectionPolicy),
		},
		Limits: &ServerLimits{
			PlayerNameLengthMin: limits.PlayerNameLengthMin,
			PlayerNameLengthMax: limits.PlayerNameLengthMax,
			SearchLengthMax:     limits.SearchLengthMax,
			PageSizeMax:         limits.PageSizeMax,
		},
	}
}

var SuccessGetServerInfo = ApiStatus{StatusName: "GET_SERVER_INFO", Description: "server info loaded", HttpCode: Ok}

func (serverService *ServerService) GetServerInfo() *ApiResponse[ResponseGetServerInfo] {
	return NewApiResponse(&SuccessGetServerInfo, Unsatisfied, serverService.serverInfo.GetValue())
}
