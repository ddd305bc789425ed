package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/domain"
	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/repository"
	"github.com/GoSim-25-26J-441/layer-stack/internal/layerstack/service"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	log, err := NewLogger("development", "debug")
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zap.DebugLevel))

	log, err = NewLogger("production", "warn")
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.InfoLevel))

	_, err = NewLogger("development", "loud")
	assert.Error(t, err)
}

func TestOpenRedis(t *testing.T) {
	client, err := OpenRedis(context.Background(), RedisOptions{})
	require.NoError(t, err)
	assert.Nil(t, client)

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client, err = OpenRedis(context.Background(), RedisOptions{Addr: mr.Addr()})
	require.NoError(t, err)
	require.NotNil(t, client)
	require.NoError(t, client.Close())

	addr := mr.Addr()
	mr.Close()
	_, err = OpenRedis(context.Background(), RedisOptions{Addr: addr})
	assert.Error(t, err)
}

func TestSetGinMode(t *testing.T) {
	defer gin.SetMode(gin.TestMode)

	SetGinMode("production")
	assert.Equal(t, gin.ReleaseMode, gin.Mode())
	SetGinMode("development")
	assert.Equal(t, gin.DebugMode, gin.Mode())
}

func TestBuildRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := service.NewProjectService(repository.NewProjectStore(domain.SampleProject()), nil, zap.NewNop())
	r, err := BuildRouter(RouterDeps{
		ServiceName:    "layer-stack",
		Version:        "test",
		CORSOrigins:    []string{"*"},
		RateLimitRPS:   100,
		RateLimitBurst: 100,
		Service:        svc,
		Logger:         zap.NewNop(),
	})
	require.NoError(t, err)

	for _, path := range []string{"/", "/health", "/api/project", "/api/layer-types"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rr.Code, path)
		assert.NotEmpty(t, rr.Header().Get("X-Request-Id"), path)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/layer", strings.NewReader(`{"name":"Edge"}`)))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"name":"Edge"`)
}

func TestBuildRouter_RequiresService(t *testing.T) {
	_, err := BuildRouter(RouterDeps{RateLimitRPS: 1, RateLimitBurst: 1})
	assert.Error(t, err)
}
