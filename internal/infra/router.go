package infra

import (
	"errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v9"
	"github.com/labstack/echo/v4"
	"github.com/leadflow/crm/internal/cache"
	"github.com/leadflow/crm/internal/config"
	"github.com/leadflow/crm/internal/handlers"
	"github.com/leadflow/crm/internal/metrics"
	"github.com/leadflow/crm/internal/middleware"
	"github.com/leadflow/crm/internal/model"
	"github.com/leadflow/crm/internal/repository"
	"github.com/leadflow/crm/internal/service"
	"github.com/leadflow/crm/internal/validation"
	"github.com/sirupsen/logrus"
)

func Router(leadCfg config.LeadCfg, leadRepo repository.LeadRepository, redisClient *redis.Client, logger *logrus.Logger) (*echo.Echo, error) {
	e := echo.New()

	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)
	trans, ok := unvTranslator.GetTranslator("en")
	if !ok {
		return nil, errors.New("failed to build echo validator because of missing en translations")
	}
	e.Validator = validation.Echo(validator.New(), trans)

	e.HTTPErrorHandler = handlers.ErrorHandler(logger)

	e.Use(middleware.RequestLogging(logger))
	e.Use(metrics.Middleware())

	// Transition policy
	policy := model.AnyTransition
	if leadCfg.StrictTransitions {
		policy = model.AdjacentOnly
	}

	// Caches
	leadCache := cache.NewRedisLeadCache(redisClient)

	// Services
	leadSvc := service.NewLeadService(leadRepo, leadCache, policy)

	// Handlers
	leadHandler := handlers.NewLeadHTTPHandler(leadSvc)

	// API routes
	api := e.Group("/api")

	leadAPI := api.Group("/lead")
	leadAPI.POST("/create", leadHandler.Post)
	leadAPI.GET("/leads", leadHandler.GetAll)
	leadAPI.POST("/activity", leadHandler.PostActivity)
	leadAPI.GET("/:id", leadHandler.Get)
	leadAPI.PATCH("/:id/status", leadHandler.PatchStatus)

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	return e, nil
}
