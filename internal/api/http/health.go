package http

import (
	"context"
	"net/http"
	"time"

	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/domain"
	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/validation"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	statusHealthy  = "healthy"
	statusDegraded = "degraded"
)

// ProjectInspector is the read side of the project service that the
// health check summarizes.
type ProjectInspector interface {
	Project(ctx context.Context) domain.Project
	Validate(ctx context.Context) validation.Report
}

// HealthResponse reports liveness plus the state of the change-event
// Redis and the stored project. Status is "degraded" when a configured
// Redis does not answer or the project has critical findings.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
	Redis     string    `json:"redis"`
	Project   string    `json:"project"`
	Layers    int       `json:"layers"`
}

type HealthHandler struct {
	serviceName string
	version     string
	started     time.Time
	redis       *redis.Client
	project     ProjectInspector
}

// NewHealthHandler creates the health endpoints. rdb is nil when change
// events are disabled; project may be nil in isolated tests.
func NewHealthHandler(serviceName, version string, rdb *redis.Client, project ProjectInspector) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		started:     time.Now(),
		redis:       rdb,
		project:     project,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx := c.Request.Context()
	resp := HealthResponse{
		Status:    statusHealthy,
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Uptime:    time.Since(h.started).Round(time.Second).String(),
		Redis:     h.redisStatus(ctx),
		Project:   "unknown",
	}
	if resp.Redis == "down" {
		resp.Status = statusDegraded
	}

	if h.project != nil {
		resp.Layers = len(h.project.Project(ctx).LayerIDs())
		resp.Project = "valid"
		if !h.project.Validate(ctx).Valid {
			resp.Project = "invalid"
			resp.Status = statusDegraded
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *HealthHandler) redisStatus(ctx context.Context) string {
	if h.redis == nil {
		return "disabled"
	}
	pingCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	if err := h.redis.Ping(pingCtx).Err(); err != nil {
		return "down"
	}
	return "up"
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
