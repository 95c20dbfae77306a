// Package service
package service

import (
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/game"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/operation"
)

type GameServiceInterface interface {
	CreateGame(req *RequestCreateGame) *ApiResponse[ResponseCreateGame]
	GetCurrentState(req *RequestGameState) *ApiResponse[ResponseGameState]
	Travel(req *RequestTravel) *ApiResponse[ResponseTravel]
	Buy(req *RequestBuy) *ApiResponse[ResponseBuy]
	GetGameLogs(req *RequestGameLogs) *ApiResponse[ResponseGameLogs]
	EndSession(req *RequestEndSession) *ApiResponse[ResponseEndSession]
}

type RequestCreateGame struct {
	PlayerName string `json:"player_name"`
}

type ResponseCreateGame struct {
	*game.GameState
	Token string `json:"token"`
}

type RequestGameState struct {
	JwtHeader
}

type ResponseGameState game.GameState

type RequestTravel struct {
	JwtHeader
	DestinationId uint `json:"destination_id"`
}

type ResponseTravel game.TravelResult

type RequestBuy struct {
	JwtHeader
	ItemId uint `json:"item_id"`
}

type ResponseBuy game.PurchaseResult

type RequestGameLogs struct {
	JwtHeader
	Page     int `query:"page"`
	PageSize int `query:"page_size"`
}

type ResponseGameLogs struct {
	Items    []*operation.GameLog `json:"items"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
	Total    int64                `json:"total"`
}

type RequestEndSession struct {
	JwtHeader
}

type ResponseEndSession bool
