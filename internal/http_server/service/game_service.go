// Package service
package service

import (
	c "github.com/half-nothing/adventurous-traveler/internal/interfaces/config"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/game"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/log"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/operation"
	. "github.com/half-nothing/adventurous-traveler/internal/interfaces/service"
	"strings"
)

const defaultPageSize = 20

type GameService struct {
	logger           log.LoggerInterface
	config           *c.HttpServerConfig
	engine           game.EngineInterface
	gameLogOperation operation.GameLogOperationInterface
}

func NewGameService(
	logger log.LoggerInterface,
	config *c.HttpServerConfig,
	engine game.EngineInterface,
	gameLogOperation operation.GameLogOperationInterface,
) *GameService {
	return &GameService{
		logger:           logger,
		config:           config,
		engine:           engine,
		gameLogOperation: gameLogOperation,
	}
}

var (
	ErrTokenSignFail  = ApiStatus{StatusName: "TOKEN_SIGN_FAIL", Description: "fail to issue game token", HttpCode: ServerInternalError}
	SuccessCreateGame = ApiStatus{StatusName: "CREATE_GAME", Description: "game started", HttpCode: Ok}
)

func (gameService *GameService) CreateGame(req *RequestCreateGame) *ApiResponse[ResponseCreateGame] {
	playerName := strings.TrimSpace(req.PlayerName)
	if res := playerNameValidator.CheckString(playerName); res != nil {
		return NewApiResponse[ResponseCreateGame](res, Unsatisfied, nil)
	}
	state, err := gameService.engine.CreateGame(playerName)
	if err != nil {
		return NewApiResponse[ResponseCreateGame](StatusFromGameError(err), Unsatisfied, nil)
	}
	token, err := NewClaims(gameService.config.JWT, state.Game).GenerateKey()
	if err != nil {
		gameService.logger.ErrorF("GameService.CreateGame sign token error: %v", err)
		return NewApiResponse[ResponseCreateGame](&ErrTokenSignFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessCreateGame, Unsatisfied, &ResponseCreateGame{GameState: state, Token: token})
}

var SuccessGetGameState = ApiStatus{StatusName: "GET_GAME_STATE", Description: "game state loaded", HttpCode: Ok}

func (gameService *GameService) GetCurrentState(req *RequestGameState) *ApiResponse[ResponseGameState] {
	state, err := gameService.engine.GetCurrentState(req.GameId)
	if err != nil {
		return NewApiResponse[ResponseGameState](StatusFromGameError(err), Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetGameState, Unsatisfied, (*ResponseGameState)(state))
}

var SuccessTravel = ApiStatus{StatusName: "TRAVEL", Description: "flight completed", HttpCode: Ok}

func (gameService *GameService) Travel(req *RequestTravel) *ApiResponse[ResponseTravel] {
	if req.DestinationId == 0 {
		return NewApiResponse[ResponseTravel](&ErrIllegalParam, Unsatisfied, nil)
	}
	result, err := gameService.engine.Travel(req.GameId, req.DestinationId)
	if err != nil {
		return NewApiResponse[ResponseTravel](StatusFromGameError(err), Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessTravel, Unsatisfied, (*ResponseTravel)(result))
}

var SuccessBuy = ApiStatus{StatusName: "BUY", Description: "purchase completed", HttpCode: Ok}

func (gameService *GameService) Buy(req *RequestBuy) *ApiResponse[ResponseBuy] {
	if req.ItemId == 0 {
		return NewApiResponse[ResponseBuy](&ErrIllegalParam, Unsatisfied, nil)
	}
	result, err := gameService.engine.Buy(req.GameId, req.ItemId)
	if err != nil {
		return NewApiResponse[ResponseBuy](StatusFromGameError(err), Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessBuy, Unsatisfied, (*ResponseBuy)(result))
}

var SuccessGetGameLogs = ApiStatus{StatusName: "GET_GAME_LOGS", Description: "game logs loaded", HttpCode: Ok}

func (gameService *GameService) GetGameLogs(req *RequestGameLogs) *ApiResponse[ResponseGameLogs] {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = min(defaultPageSize, pageSizeValidator.Max)
	}
	if res := pageSizeValidator.CheckInt(req.PageSize); res != nil {
		return NewApiResponse[ResponseGameLogs](res, Unsatisfied, nil)
	}
	gameLogs, total, err := gameService.gameLogOperation.GetGameLogs(req.GameId, req.Page, req.PageSize)
	if err != nil {
		gameService.logger.ErrorF("GameService.GetGameLogs error: %v", err)
		return NewApiResponse[ResponseGameLogs](&ErrDatabaseFail, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessGetGameLogs, Unsatisfied, &ResponseGameLogs{
		Items:    gameLogs,
		Page:     req.Page,
		PageSize: req.PageSize,
		Total:    total,
	})
}

var SuccessEndSession = ApiStatus{StatusName: "END_SESSION", Description: "game session ended", HttpCode: Ok}

// EndSession 令牌由客户端丢弃, 服务端不保存会话
func (gameService *GameService) EndSession(req *RequestEndSession) *ApiResponse[ResponseEndSession] {
	gameService.logger.InfoF("Session of game %s ended", req.GameId)
	data := ResponseEndSession(true)
	return NewApiResponse(&SuccessEndSession, Unsatisfied, &data)
}
