// Package controller
package controller

import (
	"github.com/golang-jwt/jwt/v5"
	. "github.com/half-nothing/adventurous-traveler/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

// jwtHeader 从jwt中间件解析出的令牌中读取游戏ID
func jwtHeader(ctx echo.Context) JwtHeader {
	token := ctx.Get("user").(*jwt.Token)
	claim := token.Claims.(*Claims)
	return JwtHeader{GameId: claim.GameId}
}
