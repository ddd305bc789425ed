package bootstrap

import (
	"fmt"

	httpapi "github.com/GoSim-25-26J-441/layer-stack/internal/api/http"
	"github.com/GoSim-25-26J-441/layer-stack/internal/api/http/middleware"
	lshttp "github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/http"
	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/service"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
	Service        *service.ProjectService
	Redis          *redis.Client
	Logger         *zap.Logger
}

func BuildRouter(dep RouterDeps) (*gin.Engine, error) {
	if dep.Service == nil {
		return nil, fmt.Errorf("router: project service is required")
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Logger))
	r.Use(middleware.CORS(dep.CORSOrigins))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis, dep.Service)
	healthHandler.RegisterRoutes(r)

	layers, err := lshttp.New(dep.Service, dep.Version)
	if err != nil {
		return nil, fmt.Errorf("layer stack handler: %w", err)
	}
	layers.Register(r, middleware.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst))

	return r, nil
}
