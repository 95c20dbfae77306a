// Package service
package service

import (
	"github.com/golang-jwt/jwt/v5"
	c "github.com/half-nothing/adventurous-traveler/internal/interfaces/config"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/global"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/operation"
	"github.com/labstack/echo/v4"
	"time"
)

type HttpCode int

const (
	Unsatisfied         HttpCode = 0
	Ok                  HttpCode = 200
	BadRequest          HttpCode = 400
	Unauthorized        HttpCode = 401
	NotFound            HttpCode = 404
	Conflict            HttpCode = 409
	UnprocessableEntity HttpCode = 422
	TooManyRequests     HttpCode = 429
	ServerInternalError HttpCode = 500
)

func (hc HttpCode) Code() int {
	return int(hc)
}

type ApiStatus struct {
	StatusName  string
	Description string
	HttpCode    HttpCode
}

type ApiResponse[T any] struct {
	HttpCode int    `json:"-"`
	Success  bool   `json:"success"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Data     *T     `json:"data"`
}

// Claims 游戏令牌, 只携带游戏ID
type Claims struct {
	GameId     string `json:"game_id"`
	PlayerName string `json:"player_name"`
	config     *c.JWTConfig
	jwt.RegisteredClaims
}

type JwtHeader struct {
	GameId string
}

func NewClaims(config *c.JWTConfig, game *operation.Game) *Claims {
	now := time.Now()
	return &Claims{
		GameId:     game.ID,
		PlayerName: game.PlayerName,
		config:     config,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    global.TokenIssuer,
			Subject:   game.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(config.ExpiresDuration)),
		},
	}
}

func (claim *Claims) GenerateKey() (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claim)
	return token.SignedString([]byte(claim.config.Secret))
}

func (res *ApiResponse[T]) Response(ctx echo.Context) error {
	return ctx.JSON(res.HttpCode, res)
}

var (
	ErrIllegalParam          = ApiStatus{"PARAM_ERROR", "invalid parameter", BadRequest}
	ErrLackParam             = ApiStatus{"PARAM_LACK_ERROR", "missing parameter", BadRequest}
	ErrDatabaseFail          = ApiStatus{"DATABASE_ERROR", "internal server error", ServerInternalError}
	ErrMissingOrMalformedJwt = ApiStatus{"MISSING_OR_MALFORMED_JWT", "missing or malformed game token", BadRequest}
	ErrInvalidOrExpiredJwt   = ApiStatus{"INVALID_OR_EXPIRED_JWT", "invalid or expired game token", Unauthorized}
	ErrUnknown               = ApiStatus{"UNKNOWN_JWT_ERROR", "unknown game token error", ServerInternalError}
	ErrRateLimitExceeded     = ApiStatus{"RATE_LIMIT_EXCEEDED", "too many requests, please try again later", TooManyRequests}
)

func NewErrorResponse(ctx echo.Context, codeStatus *ApiStatus) error {
	return NewApiResponse[any](codeStatus, Unsatisfied, nil).Response(ctx)
}

func NewApiResponse[T any](codeStatus *ApiStatus, httpCode HttpCode, data *T) *ApiResponse[T] {
	if httpCode == Unsatisfied {
		httpCode = codeStatus.HttpCode
	}
	if httpCode == Unsatisfied {
		httpCode = Ok
	}
	return &ApiResponse[T]{
		HttpCode: httpCode.Code(),
		Success:  httpCode < BadRequest,
		Code:     codeStatus.StatusName,
		Message:  codeStatus.Description,
		Data:     data,
	}
}
