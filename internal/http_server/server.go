// Package http_server
package http_server

import (
	"context"
	"errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/half-nothing/adventurous-traveler/internal/http_server/controller"
	mid "github.com/half-nothing/adventurous-traveler/internal/http_server/middleware"
	impl "github.com/half-nothing/adventurous-traveler/internal/http_server/service"
	. "github.com/half-nothing/adventurous-traveler/internal/interfaces"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/service"
	"github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/samber/slog-echo"
	"io"
	"log/slog"
	"net/http"
	"time"
)

type HttpServerShutdownCallback struct {
	serverHandler *echo.Echo
}

func NewHttpServerShutdownCallback(serverHandler *echo.Echo) *HttpServerShutdownCallback {
	return &HttpServerShutdownCallback{
		serverHandler: serverHandler,
	}
}

func (hc *HttpServerShutdownCallback) Invoke(ctx context.Context) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return hc.serverHandler.Shutdown(timeoutCtx)
}

// NewHttpServer 创建echo实例并注册中间件与路由
func NewHttpServer(applicationContent *ApplicationContent) *echo.Echo {
	config := applicationContent.ConfigManager().Config()
	logger := applicationContent.Logger()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetOutput(io.Discard)
	e.Logger.SetLevel(log.OFF)
	httpConfig := config.Server.HttpServer

	switch httpConfig.ProxyType {
	case 0:
		e.IPExtractor = echo.ExtractIPDirect()
	case 1:
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	case 2:
		e.IPExtractor = echo.ExtractIPFromRealIPHeader()
	default:
		logger.WarnF("Invalid proxy type %d, using default (direct)", httpConfig.ProxyType)
		e.IPExtractor = echo.ExtractIPDirect()
	}

	if httpConfig.SSL.ForceSSL {
		e.Use(middleware.HTTPSRedirect())
	}

	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{Timeout: 30 * time.Second}))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(ctx echo.Context, err error, stack []byte) error {
			logger.ErrorF("Recovered from a fatal error: %v, stack: %s", err, string(stack))
			return err
		},
	}))

	loggerConfig := slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
	}
	e.Use(slogecho.NewWithConfig(slog.Default(), loggerConfig))
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		HSTSMaxAge:            httpConfig.SSL.HstsExpiredTime,
		HSTSExcludeSubdomains: !httpConfig.SSL.IncludeDomain,
	}))
	e.Use(middleware.CORS())
	if httpConfig.BodyLimit != "" {
		e.Use(middleware.BodyLimit(httpConfig.BodyLimit))
	}
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))

	if httpConfig.Limits.RateLimit <= 0 {
		logger.WarnF("Invalid rate limit value %d, using default 120", httpConfig.Limits.RateLimit)
		httpConfig.Limits.RateLimit = 120
	}
	if httpConfig.Limits.RateLimitDuration <= 0 {
		logger.WarnF("Invalid rate limit duration %v, using default 1m", httpConfig.Limits.RateLimitDuration)
		httpConfig.Limits.RateLimitDuration = time.Minute
	}

	ipPathLimiter := mid.NewSlidingWindowLimiter(
		httpConfig.Limits.RateLimitDuration,
		httpConfig.Limits.RateLimit,
	)
	cleanupInterval := min(httpConfig.Limits.RateLimitDuration*2, time.Hour)
	ipPathLimiter.StartCleanup(cleanupInterval)
	applicationContent.Cleaner().Add(ipPathLimiter)

	e.Use(mid.RateLimitMiddleware(ipPathLimiter, mid.CombinedKeyFunc))

	jwtConfig := echojwt.Config{
		SigningKey:    []byte(httpConfig.JWT.Secret),
		TokenLookup:   "header:Authorization:Bearer ",
		SigningMethod: "HS512",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(service.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var data *service.ApiResponse[any]
			switch {
			case errors.Is(err, echojwt.ErrJWTMissing):
				data = service.NewApiResponse[any](&service.ErrMissingOrMalformedJwt, service.Unsatisfied, nil)
			case errors.Is(err, echojwt.ErrJWTInvalid):
				data = service.NewApiResponse[any](&service.ErrInvalidOrExpiredJwt, service.Unsatisfied, nil)
			default:
				data = service.NewApiResponse[any](&service.ErrUnknown, service.Unsatisfied, nil)
			}
			return data.Response(c)
		},
	}

	jwtMiddleware := echojwt.WithConfig(jwtConfig)

	impl.InitValidator(httpConfig.Limits)

	operations := applicationContent.Operations()

	gameService := impl.NewGameService(logger, httpConfig, applicationContent.Engine(), operations.GameLogOperation())
	catalogService := impl.NewCatalogService(logger, operations.ReferenceOperation(), config.Game.ReadRetryAttempts)
	serverService := impl.NewServerService(config)

	gameController := controller.NewGameController(logger, gameService)
	catalogController := controller.NewCatalogController(logger, catalogService)
	serverController := controller.NewServerController(logger, serverService)

	apiGroup := e.Group("/api")
	apiGroup.DELETE("/sessions", gameController.EndSession, jwtMiddleware)

	gameGroup := apiGroup.Group("/games")
	gameGroup.POST("", gameController.CreateGame)
	gameGroup.GET("/current", gameController.GetCurrentState, jwtMiddleware)
	gameGroup.POST("/current/flights", gameController.Travel, jwtMiddleware)
	gameGroup.POST("/current/purchases", gameController.Buy, jwtMiddleware)
	gameGroup.GET("/current/logs", gameController.GetGameLogs, jwtMiddleware)

	airportGroup := apiGroup.Group("/airports")
	airportGroup.GET("", catalogController.GetAirports)
	airportGroup.GET("/:id", catalogController.GetAirport)

	apiGroup.GET("/shop-items", catalogController.GetShopItems)
	apiGroup.GET("/artifacts", catalogController.GetArtifacts)

	serverGroup := apiGroup.Group("/server")
	serverGroup.GET("/info", serverController.GetServerInfo)

	return e
}

func StartHttpServer(applicationContent *ApplicationContent) {
	config := applicationContent.ConfigManager().Config()
	logger := applicationContent.Logger()
	httpConfig := config.Server.HttpServer

	e := NewHttpServer(applicationContent)
	applicationContent.Cleaner().Add(NewHttpServerShutdownCallback(e))

	protocol := "http"
	if httpConfig.SSL.Enable {
		protocol = "https"
	}
	logger.InfoF("Starting %s server on %s", protocol, httpConfig.Address)
	logger.InfoF("Rate limit: %d requests per %v",
		httpConfig.Limits.RateLimit,
		httpConfig.Limits.RateLimitDuration)

	var err error
	if httpConfig.SSL.Enable {
		err = e.StartTLS(
			httpConfig.Address,
			httpConfig.SSL.CertFile,
			httpConfig.SSL.KeyFile,
		)
	} else {
		err = e.Start(httpConfig.Address)
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.FatalF("Http server error: %v", err)
	}
}
