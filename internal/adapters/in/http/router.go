package http

import (
	"net/http"
	"strings"

	"gestion/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
)

// RouterConfig configures NewRouter.
type RouterConfig struct {
	JWTSecret []byte
	Resolver  PrincipalResolver
	LogLevel  string
}

// NewRouter builds the echo instance serving the API under /api/v1, the
// health check and the swagger UI at /swagger/.
func NewRouter(server *Server, cfg RouterConfig, logger *zap.Logger) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validate, err := ValidateRequests(doc)
	if err != nil {
		return nil, err
	}
	if err := registerSwagger(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(echoLogLevel(cfg.LogLevel))
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(
		middleware.RequestID(),
		RequestLogger(logger),
		middleware.Recover(),
		Authenticate(cfg.JWTSecret, cfg.Resolver, "/api/"),
		validate,
	)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	servers.RegisterHandlers(e, server)

	return e, nil
}

type contractDoc string

func (d contractDoc) ReadDoc() string { return string(d) }

// registerSwagger publishes the contract to the swagger UI once per process.
func registerSwagger(doc *openapi3.T) error {
	if swag.GetSwagger(swag.Name) != nil {
		return nil
	}
	raw, err := doc.MarshalJSON()
	if err != nil {
		return err
	}
	swag.Register(swag.Name, contractDoc(raw))
	return nil
}

func echoLogLevel(level string) log.Lvl {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}
